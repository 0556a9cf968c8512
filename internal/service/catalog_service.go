package service

import (
	"context"
	"fmt"

	"textilerp/internal/audit"
	"textilerp/internal/model"
	"textilerp/internal/repository"
)

// CatalogService handles the four reference tables. Every mutation reads the
// prior state, applies the change, then records one audit entry.
type CatalogService interface {
	ListFabrics(ctx context.Context) ([]model.Fabric, error)
	GetFabric(ctx context.Context, id uint) (*model.Fabric, error)
	CreateFabric(ctx context.Context, actor audit.Actor, fabric *model.Fabric) (*model.Fabric, error)
	UpdateFabric(ctx context.Context, actor audit.Actor, id uint, patch model.FabricPatch) (*model.Fabric, error)
	DeleteFabric(ctx context.Context, actor audit.Actor, id uint) error

	ListBrands(ctx context.Context) ([]model.Brand, error)
	GetBrand(ctx context.Context, id uint) (*model.Brand, error)
	CreateBrand(ctx context.Context, actor audit.Actor, brand *model.Brand) (*model.Brand, error)
	UpdateBrand(ctx context.Context, actor audit.Actor, id uint, patch model.BrandPatch) (*model.Brand, error)
	DeleteBrand(ctx context.Context, actor audit.Actor, id uint) error

	ListFitTypes(ctx context.Context) ([]model.FitType, error)
	GetFitType(ctx context.Context, id uint) (*model.FitType, error)
	CreateFitType(ctx context.Context, actor audit.Actor, fit *model.FitType) (*model.FitType, error)
	UpdateFitType(ctx context.Context, actor audit.Actor, id uint, patch model.FitTypePatch) (*model.FitType, error)
	DeleteFitType(ctx context.Context, actor audit.Actor, id uint) error

	ListProductTypes(ctx context.Context) ([]model.ProductType, error)
	GetProductType(ctx context.Context, id uint) (*model.ProductType, error)
	CreateProductType(ctx context.Context, actor audit.Actor, pt *model.ProductType) (*model.ProductType, error)
	UpdateProductType(ctx context.Context, actor audit.Actor, id uint, patch model.ProductTypePatch) (*model.ProductType, error)
	DeleteProductType(ctx context.Context, actor audit.Actor, id uint) error
}

type catalogService struct {
	fabrics      repository.FabricRepository
	brands       repository.BrandRepository
	fitTypes     repository.FitTypeRepository
	productTypes repository.ProductTypeRepository
	recorder     *audit.Recorder
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	fabrics repository.FabricRepository,
	brands repository.BrandRepository,
	fitTypes repository.FitTypeRepository,
	productTypes repository.ProductTypeRepository,
	recorder *audit.Recorder,
) CatalogService {
	return &catalogService{
		fabrics:      fabrics,
		brands:       brands,
		fitTypes:     fitTypes,
		productTypes: productTypes,
		recorder:     recorder,
	}
}

// Fabrics

func (s *catalogService) ListFabrics(ctx context.Context) ([]model.Fabric, error) {
	return s.fabrics.List(ctx)
}

func (s *catalogService) GetFabric(ctx context.Context, id uint) (*model.Fabric, error) {
	fabric, err := s.fabrics.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return fabric, nil
}

func (s *catalogService) CreateFabric(ctx context.Context, actor audit.Actor, fabric *model.Fabric) (*model.Fabric, error) {
	if err := s.fabrics.Create(ctx, fabric); err != nil {
		return nil, fmt.Errorf("create fabric: %w", err)
	}
	s.recorder.Create(ctx, actor, audit.CategoryFabrics, fabric.ID,
		fmt.Sprintf("created fabric '%s'", fabric.Name), fabric.Snapshot())
	return fabric, nil
}

func (s *catalogService) UpdateFabric(ctx context.Context, actor audit.Actor, id uint, patch model.FabricPatch) (*model.Fabric, error) {
	fabric, err := s.fabrics.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	before := fabric.Snapshot()
	patch.Apply(fabric)
	if err := s.fabrics.Update(ctx, fabric); err != nil {
		return nil, fmt.Errorf("update fabric: %w", err)
	}
	s.recorder.Update(ctx, actor, audit.CategoryFabrics, id,
		fmt.Sprintf("updated fabric '%s'", fabric.Name), before, fabric.Snapshot())
	return fabric, nil
}

func (s *catalogService) DeleteFabric(ctx context.Context, actor audit.Actor, id uint) error {
	fabric, err := s.fabrics.FindByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	before := fabric.Snapshot()
	if err := s.fabrics.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete fabric: %w", err)
	}
	s.recorder.Delete(ctx, actor, audit.CategoryFabrics, id,
		fmt.Sprintf("deleted fabric '%s'", fabric.Name), before)
	return nil
}

// Brands

func (s *catalogService) ListBrands(ctx context.Context) ([]model.Brand, error) {
	return s.brands.List(ctx)
}

func (s *catalogService) GetBrand(ctx context.Context, id uint) (*model.Brand, error) {
	brand, err := s.brands.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return brand, nil
}

func (s *catalogService) CreateBrand(ctx context.Context, actor audit.Actor, brand *model.Brand) (*model.Brand, error) {
	if err := s.brands.Create(ctx, brand); err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}
	s.recorder.Create(ctx, actor, audit.CategoryBrands, brand.ID,
		fmt.Sprintf("created brand '%s'", brand.Name), brand.Snapshot())
	return brand, nil
}

func (s *catalogService) UpdateBrand(ctx context.Context, actor audit.Actor, id uint, patch model.BrandPatch) (*model.Brand, error) {
	brand, err := s.brands.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	before := brand.Snapshot()
	patch.Apply(brand)
	if err := s.brands.Update(ctx, brand); err != nil {
		return nil, fmt.Errorf("update brand: %w", err)
	}
	s.recorder.Update(ctx, actor, audit.CategoryBrands, id,
		fmt.Sprintf("updated brand '%s'", brand.Name), before, brand.Snapshot())
	return brand, nil
}

func (s *catalogService) DeleteBrand(ctx context.Context, actor audit.Actor, id uint) error {
	brand, err := s.brands.FindByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	before := brand.Snapshot()
	if err := s.brands.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	s.recorder.Delete(ctx, actor, audit.CategoryBrands, id,
		fmt.Sprintf("deleted brand '%s'", brand.Name), before)
	return nil
}

// Fit types

func (s *catalogService) ListFitTypes(ctx context.Context) ([]model.FitType, error) {
	return s.fitTypes.List(ctx)
}

func (s *catalogService) GetFitType(ctx context.Context, id uint) (*model.FitType, error) {
	fit, err := s.fitTypes.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return fit, nil
}

func (s *catalogService) CreateFitType(ctx context.Context, actor audit.Actor, fit *model.FitType) (*model.FitType, error) {
	if err := s.fitTypes.Create(ctx, fit); err != nil {
		return nil, fmt.Errorf("create fit type: %w", err)
	}
	s.recorder.Create(ctx, actor, audit.CategoryFitTypes, fit.ID,
		fmt.Sprintf("created fit type '%s'", fit.Name), fit.Snapshot())
	return fit, nil
}

func (s *catalogService) UpdateFitType(ctx context.Context, actor audit.Actor, id uint, patch model.FitTypePatch) (*model.FitType, error) {
	fit, err := s.fitTypes.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	before := fit.Snapshot()
	patch.Apply(fit)
	if err := s.fitTypes.Update(ctx, fit); err != nil {
		return nil, fmt.Errorf("update fit type: %w", err)
	}
	s.recorder.Update(ctx, actor, audit.CategoryFitTypes, id,
		fmt.Sprintf("updated fit type '%s'", fit.Name), before, fit.Snapshot())
	return fit, nil
}

func (s *catalogService) DeleteFitType(ctx context.Context, actor audit.Actor, id uint) error {
	fit, err := s.fitTypes.FindByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	before := fit.Snapshot()
	if err := s.fitTypes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete fit type: %w", err)
	}
	s.recorder.Delete(ctx, actor, audit.CategoryFitTypes, id,
		fmt.Sprintf("deleted fit type '%s'", fit.Name), before)
	return nil
}

// Product types

func (s *catalogService) ListProductTypes(ctx context.Context) ([]model.ProductType, error) {
	return s.productTypes.List(ctx)
}

func (s *catalogService) GetProductType(ctx context.Context, id uint) (*model.ProductType, error) {
	pt, err := s.productTypes.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return pt, nil
}

func (s *catalogService) CreateProductType(ctx context.Context, actor audit.Actor, pt *model.ProductType) (*model.ProductType, error) {
	if err := s.productTypes.Create(ctx, pt); err != nil {
		return nil, fmt.Errorf("create product type: %w", err)
	}
	s.recorder.Create(ctx, actor, audit.CategoryProductTypes, pt.ID,
		fmt.Sprintf("created product type '%s'", pt.Name), pt.Snapshot())
	return pt, nil
}

func (s *catalogService) UpdateProductType(ctx context.Context, actor audit.Actor, id uint, patch model.ProductTypePatch) (*model.ProductType, error) {
	pt, err := s.productTypes.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	before := pt.Snapshot()
	patch.Apply(pt)
	if err := s.productTypes.Update(ctx, pt); err != nil {
		return nil, fmt.Errorf("update product type: %w", err)
	}
	s.recorder.Update(ctx, actor, audit.CategoryProductTypes, id,
		fmt.Sprintf("updated product type '%s'", pt.Name), before, pt.Snapshot())
	return pt, nil
}

func (s *catalogService) DeleteProductType(ctx context.Context, actor audit.Actor, id uint) error {
	pt, err := s.productTypes.FindByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	before := pt.Snapshot()
	if err := s.productTypes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product type: %w", err)
	}
	s.recorder.Delete(ctx, actor, audit.CategoryProductTypes, id,
		fmt.Sprintf("deleted product type '%s'", pt.Name), before)
	return nil
}
