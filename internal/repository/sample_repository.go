package repository

import (
	"context"

	"gorm.io/gorm"

	"textilerp/internal/model"
)

// SampleRepository defines persistence operations for samples.
type SampleRepository interface {
	Create(ctx context.Context, sample *model.Sample) error
	FindByID(ctx context.Context, id uint) (*model.Sample, error)
	// FindByIDFull loads the sample with its reference rows and the whole
	// base variant subtree, mirroring what list/detail endpoints return.
	FindByIDFull(ctx context.Context, id uint) (*model.Sample, error)
	List(ctx context.Context) ([]model.Sample, error)
	Update(ctx context.Context, sample *model.Sample) error
	// Delete removes the sample; base variants, gradings and spec sheets go
	// with it through the cascade constraints.
	Delete(ctx context.Context, id uint) error
}

type sampleRepository struct {
	db *gorm.DB
}

// NewSampleRepository builds a GORM-backed repository.
func NewSampleRepository(db *gorm.DB) SampleRepository {
	return &sampleRepository{db: db}
}

func (r *sampleRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("ProductType").
		Preload("FitType").
		Preload("Fabric").
		Preload("Brand").
		Preload("BaseVariants").
		Preload("BaseVariants.Gradings").
		Preload("BaseVariants.SpecSheets")
}

func (r *sampleRepository) Create(ctx context.Context, sample *model.Sample) error {
	return r.db.WithContext(ctx).Create(sample).Error
}

func (r *sampleRepository) FindByID(ctx context.Context, id uint) (*model.Sample, error) {
	var sample model.Sample
	if err := r.db.WithContext(ctx).First(&sample, id).Error; err != nil {
		return nil, err
	}
	return &sample, nil
}

func (r *sampleRepository) FindByIDFull(ctx context.Context, id uint) (*model.Sample, error) {
	var sample model.Sample
	if err := r.withRelations(ctx).First(&sample, id).Error; err != nil {
		return nil, err
	}
	return &sample, nil
}

func (r *sampleRepository) List(ctx context.Context) ([]model.Sample, error) {
	var samples []model.Sample
	if err := r.withRelations(ctx).Order("id").Find(&samples).Error; err != nil {
		return nil, err
	}
	return samples, nil
}

func (r *sampleRepository) Update(ctx context.Context, sample *model.Sample) error {
	return r.db.WithContext(ctx).Save(sample).Error
}

func (r *sampleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Select("BaseVariants", "BaseVariants.Gradings", "BaseVariants.SpecSheets").
		Delete(&model.Sample{ID: id}).Error
}

// BaseVariantRepository defines persistence operations for base variants.
type BaseVariantRepository interface {
	Create(ctx context.Context, base *model.BaseVariant) error
	FindByID(ctx context.Context, id uint) (*model.BaseVariant, error)
	FindByIDFull(ctx context.Context, id uint) (*model.BaseVariant, error)
	List(ctx context.Context) ([]model.BaseVariant, error)
	Update(ctx context.Context, base *model.BaseVariant) error
	Delete(ctx context.Context, id uint) error
}

type baseVariantRepository struct {
	db *gorm.DB
}

// NewBaseVariantRepository builds a GORM-backed repository.
func NewBaseVariantRepository(db *gorm.DB) BaseVariantRepository {
	return &baseVariantRepository{db: db}
}

func (r *baseVariantRepository) Create(ctx context.Context, base *model.BaseVariant) error {
	return r.db.WithContext(ctx).Create(base).Error
}

func (r *baseVariantRepository) FindByID(ctx context.Context, id uint) (*model.BaseVariant, error) {
	var base model.BaseVariant
	if err := r.db.WithContext(ctx).First(&base, id).Error; err != nil {
		return nil, err
	}
	return &base, nil
}

func (r *baseVariantRepository) FindByIDFull(ctx context.Context, id uint) (*model.BaseVariant, error) {
	var base model.BaseVariant
	err := r.db.WithContext(ctx).
		Preload("Gradings").
		Preload("SpecSheets").
		First(&base, id).Error
	if err != nil {
		return nil, err
	}
	return &base, nil
}

func (r *baseVariantRepository) List(ctx context.Context) ([]model.BaseVariant, error) {
	var bases []model.BaseVariant
	err := r.db.WithContext(ctx).
		Preload("Gradings").
		Preload("SpecSheets").
		Order("id").Find(&bases).Error
	if err != nil {
		return nil, err
	}
	return bases, nil
}

func (r *baseVariantRepository) Update(ctx context.Context, base *model.BaseVariant) error {
	return r.db.WithContext(ctx).Save(base).Error
}

func (r *baseVariantRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Select("Gradings", "SpecSheets").
		Delete(&model.BaseVariant{ID: id}).Error
}

// GradingRepository defines persistence operations for gradings.
type GradingRepository interface {
	Create(ctx context.Context, grading *model.Grading) error
	FindByID(ctx context.Context, id uint) (*model.Grading, error)
	List(ctx context.Context) ([]model.Grading, error)
	Update(ctx context.Context, grading *model.Grading) error
	Delete(ctx context.Context, id uint) error
}

type gradingRepository struct {
	db *gorm.DB
}

// NewGradingRepository builds a GORM-backed repository.
func NewGradingRepository(db *gorm.DB) GradingRepository {
	return &gradingRepository{db: db}
}

func (r *gradingRepository) Create(ctx context.Context, grading *model.Grading) error {
	return r.db.WithContext(ctx).Create(grading).Error
}

func (r *gradingRepository) FindByID(ctx context.Context, id uint) (*model.Grading, error) {
	var grading model.Grading
	if err := r.db.WithContext(ctx).First(&grading, id).Error; err != nil {
		return nil, err
	}
	return &grading, nil
}

func (r *gradingRepository) List(ctx context.Context) ([]model.Grading, error) {
	var gradings []model.Grading
	if err := r.db.WithContext(ctx).Order("id").Find(&gradings).Error; err != nil {
		return nil, err
	}
	return gradings, nil
}

func (r *gradingRepository) Update(ctx context.Context, grading *model.Grading) error {
	return r.db.WithContext(ctx).Save(grading).Error
}

func (r *gradingRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Grading{}, id).Error
}

// SpecSheetRepository defines persistence operations for spec sheets.
type SpecSheetRepository interface {
	Create(ctx context.Context, sheet *model.SpecSheet) error
	FindByID(ctx context.Context, id uint) (*model.SpecSheet, error)
	List(ctx context.Context) ([]model.SpecSheet, error)
	Update(ctx context.Context, sheet *model.SpecSheet) error
	Delete(ctx context.Context, id uint) error
}

type specSheetRepository struct {
	db *gorm.DB
}

// NewSpecSheetRepository builds a GORM-backed repository.
func NewSpecSheetRepository(db *gorm.DB) SpecSheetRepository {
	return &specSheetRepository{db: db}
}

func (r *specSheetRepository) Create(ctx context.Context, sheet *model.SpecSheet) error {
	return r.db.WithContext(ctx).Create(sheet).Error
}

func (r *specSheetRepository) FindByID(ctx context.Context, id uint) (*model.SpecSheet, error) {
	var sheet model.SpecSheet
	if err := r.db.WithContext(ctx).First(&sheet, id).Error; err != nil {
		return nil, err
	}
	return &sheet, nil
}

func (r *specSheetRepository) List(ctx context.Context) ([]model.SpecSheet, error) {
	var sheets []model.SpecSheet
	if err := r.db.WithContext(ctx).Order("id").Find(&sheets).Error; err != nil {
		return nil, err
	}
	return sheets, nil
}

func (r *specSheetRepository) Update(ctx context.Context, sheet *model.SpecSheet) error {
	return r.db.WithContext(ctx).Save(sheet).Error
}

func (r *specSheetRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.SpecSheet{}, id).Error
}
