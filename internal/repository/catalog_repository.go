package repository

import (
	"context"

	"gorm.io/gorm"

	"textilerp/internal/model"
)

// FabricRepository defines persistence operations for fabrics.
type FabricRepository interface {
	Create(ctx context.Context, fabric *model.Fabric) error
	FindByID(ctx context.Context, id uint) (*model.Fabric, error)
	List(ctx context.Context) ([]model.Fabric, error)
	Update(ctx context.Context, fabric *model.Fabric) error
	Delete(ctx context.Context, id uint) error
}

type fabricRepository struct {
	db *gorm.DB
}

// NewFabricRepository builds a GORM-backed repository.
func NewFabricRepository(db *gorm.DB) FabricRepository {
	return &fabricRepository{db: db}
}

func (r *fabricRepository) Create(ctx context.Context, fabric *model.Fabric) error {
	return r.db.WithContext(ctx).Create(fabric).Error
}

func (r *fabricRepository) FindByID(ctx context.Context, id uint) (*model.Fabric, error) {
	var fabric model.Fabric
	if err := r.db.WithContext(ctx).First(&fabric, id).Error; err != nil {
		return nil, err
	}
	return &fabric, nil
}

func (r *fabricRepository) List(ctx context.Context) ([]model.Fabric, error) {
	var fabrics []model.Fabric
	if err := r.db.WithContext(ctx).Order("id").Find(&fabrics).Error; err != nil {
		return nil, err
	}
	return fabrics, nil
}

func (r *fabricRepository) Update(ctx context.Context, fabric *model.Fabric) error {
	return r.db.WithContext(ctx).Save(fabric).Error
}

func (r *fabricRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Fabric{}, id).Error
}

// BrandRepository defines persistence operations for brands.
type BrandRepository interface {
	Create(ctx context.Context, brand *model.Brand) error
	FindByID(ctx context.Context, id uint) (*model.Brand, error)
	List(ctx context.Context) ([]model.Brand, error)
	Update(ctx context.Context, brand *model.Brand) error
	Delete(ctx context.Context, id uint) error
}

type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository builds a GORM-backed repository.
func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(ctx context.Context, brand *model.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *brandRepository) FindByID(ctx context.Context, id uint) (*model.Brand, error) {
	var brand model.Brand
	if err := r.db.WithContext(ctx).First(&brand, id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) List(ctx context.Context) ([]model.Brand, error) {
	var brands []model.Brand
	if err := r.db.WithContext(ctx).Order("id").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *brandRepository) Update(ctx context.Context, brand *model.Brand) error {
	return r.db.WithContext(ctx).Save(brand).Error
}

func (r *brandRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Brand{}, id).Error
}

// FitTypeRepository defines persistence operations for fit types.
type FitTypeRepository interface {
	Create(ctx context.Context, fit *model.FitType) error
	FindByID(ctx context.Context, id uint) (*model.FitType, error)
	List(ctx context.Context) ([]model.FitType, error)
	Update(ctx context.Context, fit *model.FitType) error
	Delete(ctx context.Context, id uint) error
}

type fitTypeRepository struct {
	db *gorm.DB
}

// NewFitTypeRepository builds a GORM-backed repository.
func NewFitTypeRepository(db *gorm.DB) FitTypeRepository {
	return &fitTypeRepository{db: db}
}

func (r *fitTypeRepository) Create(ctx context.Context, fit *model.FitType) error {
	return r.db.WithContext(ctx).Create(fit).Error
}

func (r *fitTypeRepository) FindByID(ctx context.Context, id uint) (*model.FitType, error) {
	var fit model.FitType
	if err := r.db.WithContext(ctx).First(&fit, id).Error; err != nil {
		return nil, err
	}
	return &fit, nil
}

func (r *fitTypeRepository) List(ctx context.Context) ([]model.FitType, error) {
	var fits []model.FitType
	if err := r.db.WithContext(ctx).Order("id").Find(&fits).Error; err != nil {
		return nil, err
	}
	return fits, nil
}

func (r *fitTypeRepository) Update(ctx context.Context, fit *model.FitType) error {
	return r.db.WithContext(ctx).Save(fit).Error
}

func (r *fitTypeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.FitType{}, id).Error
}

// ProductTypeRepository defines persistence operations for product types.
type ProductTypeRepository interface {
	Create(ctx context.Context, pt *model.ProductType) error
	FindByID(ctx context.Context, id uint) (*model.ProductType, error)
	List(ctx context.Context) ([]model.ProductType, error)
	Update(ctx context.Context, pt *model.ProductType) error
	Delete(ctx context.Context, id uint) error
}

type productTypeRepository struct {
	db *gorm.DB
}

// NewProductTypeRepository builds a GORM-backed repository.
func NewProductTypeRepository(db *gorm.DB) ProductTypeRepository {
	return &productTypeRepository{db: db}
}

func (r *productTypeRepository) Create(ctx context.Context, pt *model.ProductType) error {
	return r.db.WithContext(ctx).Create(pt).Error
}

func (r *productTypeRepository) FindByID(ctx context.Context, id uint) (*model.ProductType, error) {
	var pt model.ProductType
	if err := r.db.WithContext(ctx).First(&pt, id).Error; err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *productTypeRepository) List(ctx context.Context) ([]model.ProductType, error) {
	var pts []model.ProductType
	if err := r.db.WithContext(ctx).Order("id").Find(&pts).Error; err != nil {
		return nil, err
	}
	return pts, nil
}

func (r *productTypeRepository) Update(ctx context.Context, pt *model.ProductType) error {
	return r.db.WithContext(ctx).Save(pt).Error
}

func (r *productTypeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.ProductType{}, id).Error
}
