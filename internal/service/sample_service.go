package service

import (
	"context"
	"fmt"

	"textilerp/internal/audit"
	"textilerp/internal/model"
	"textilerp/internal/repository"
)

// SampleService handles the sample → base variant → (grading, spec sheet)
// hierarchy. Deleting a sample removes its whole subtree; that cascade is a
// hard invariant of the data model.
type SampleService interface {
	ListSamples(ctx context.Context) ([]model.Sample, error)
	GetSample(ctx context.Context, id uint) (*model.Sample, error)
	CreateSample(ctx context.Context, actor audit.Actor, sample *model.Sample) (*model.Sample, error)
	UpdateSample(ctx context.Context, actor audit.Actor, id uint, patch model.SamplePatch) (*model.Sample, error)
	DeleteSample(ctx context.Context, actor audit.Actor, id uint) error

	ListBaseVariants(ctx context.Context) ([]model.BaseVariant, error)
	GetBaseVariant(ctx context.Context, id uint) (*model.BaseVariant, error)
	CreateBaseVariant(ctx context.Context, actor audit.Actor, base *model.BaseVariant) (*model.BaseVariant, error)
	UpdateBaseVariant(ctx context.Context, actor audit.Actor, id uint, patch model.BaseVariantPatch) (*model.BaseVariant, error)
	DeleteBaseVariant(ctx context.Context, actor audit.Actor, id uint) error

	ListGradings(ctx context.Context) ([]model.Grading, error)
	GetGrading(ctx context.Context, id uint) (*model.Grading, error)
	CreateGrading(ctx context.Context, actor audit.Actor, grading *model.Grading) (*model.Grading, error)
	UpdateGrading(ctx context.Context, actor audit.Actor, id uint, patch model.GradingPatch) (*model.Grading, error)
	DeleteGrading(ctx context.Context, actor audit.Actor, id uint) error

	ListSpecSheets(ctx context.Context) ([]model.SpecSheet, error)
	GetSpecSheet(ctx context.Context, id uint) (*model.SpecSheet, error)
	CreateSpecSheet(ctx context.Context, actor audit.Actor, sheet *model.SpecSheet) (*model.SpecSheet, error)
	UpdateSpecSheet(ctx context.Context, actor audit.Actor, id uint, patch model.SpecSheetPatch) (*model.SpecSheet, error)
	DeleteSpecSheet(ctx context.Context, actor audit.Actor, id uint) error
}

type sampleService struct {
	samples  repository.SampleRepository
	bases    repository.BaseVariantRepository
	gradings repository.GradingRepository
	sheets   repository.SpecSheetRepository
	recorder *audit.Recorder
}

// NewSampleService creates a new sample hierarchy service.
func NewSampleService(
	samples repository.SampleRepository,
	bases repository.BaseVariantRepository,
	gradings repository.GradingRepository,
	sheets repository.SpecSheetRepository,
	recorder *audit.Recorder,
) SampleService {
	return &sampleService{
		samples:  samples,
		bases:    bases,
		gradings: gradings,
		sheets:   sheets,
		recorder: recorder,
	}
}

// Samples

func (s *sampleService) ListSamples(ctx context.Context) ([]model.Sample, error) {
	return s.samples.List(ctx)
}

func (s *sampleService) GetSample(ctx context.Context, id uint) (*model.Sample, error) {
	sample, err := s.samples.FindByIDFull(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return sample, nil
}

func (s *sampleService) CreateSample(ctx context.Context, actor audit.Actor, sample *model.Sample) (*model.Sample, error) {
	if err := s.samples.Create(ctx, sample); err != nil {
		return nil, fmt.Errorf("create sample: %w", err)
	}
	s.recorder.Create(ctx, actor, audit.CategorySamples, sample.ID,
		fmt.Sprintf("created sample %d", sample.ID), sample.Snapshot())
	return s.samples.FindByIDFull(ctx, sample.ID)
}

func (s *sampleService) UpdateSample(ctx context.Context, actor audit.Actor, id uint, patch model.SamplePatch) (*model.Sample, error) {
	sample, err := s.samples.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	before := sample.Snapshot()
	patch.Apply(sample)
	if err := s.samples.Update(ctx, sample); err != nil {
		return nil, fmt.Errorf("update sample: %w", err)
	}
	s.recorder.Update(ctx, actor, audit.CategorySamples, id,
		fmt.Sprintf("updated sample %d", id), before, sample.Snapshot())
	return s.samples.FindByIDFull(ctx, id)
}

func (s *sampleService) DeleteSample(ctx context.Context, actor audit.Actor, id uint) error {
	sample, err := s.samples.FindByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	before := sample.Snapshot()
	if err := s.samples.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete sample: %w", err)
	}
	s.recorder.Delete(ctx, actor, audit.CategorySamples, id,
		fmt.Sprintf("deleted sample %d and its base variants", id), before)
	return nil
}

// Base variants

func (s *sampleService) ListBaseVariants(ctx context.Context) ([]model.BaseVariant, error) {
	return s.bases.List(ctx)
}

func (s *sampleService) GetBaseVariant(ctx context.Context, id uint) (*model.BaseVariant, error) {
	base, err := s.bases.FindByIDFull(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return base, nil
}

func (s *sampleService) CreateBaseVariant(ctx context.Context, actor audit.Actor, base *model.BaseVariant) (*model.BaseVariant, error) {
	if _, err := s.samples.FindByID(ctx, base.SampleID); err != nil {
		return nil, notFound(err)
	}
	if err := s.bases.Create(ctx, base); err != nil {
		return nil, fmt.Errorf("create base variant: %w", err)
	}
	s.recorder.Create(ctx, actor, audit.CategoryBases, base.ID,
		fmt.Sprintf("created base variant %d for sample %d", base.ID, base.SampleID), base.Snapshot())
	return s.bases.FindByIDFull(ctx, base.ID)
}

func (s *sampleService) UpdateBaseVariant(ctx context.Context, actor audit.Actor, id uint, patch model.BaseVariantPatch) (*model.BaseVariant, error) {
	base, err := s.bases.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	before := base.Snapshot()
	patch.Apply(base)
	if err := s.bases.Update(ctx, base); err != nil {
		return nil, fmt.Errorf("update base variant: %w", err)
	}
	s.recorder.Update(ctx, actor, audit.CategoryBases, id,
		fmt.Sprintf("updated base variant %d", id), before, base.Snapshot())
	return s.bases.FindByIDFull(ctx, id)
}

func (s *sampleService) DeleteBaseVariant(ctx context.Context, actor audit.Actor, id uint) error {
	base, err := s.bases.FindByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	before := base.Snapshot()
	if err := s.bases.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete base variant: %w", err)
	}
	s.recorder.Delete(ctx, actor, audit.CategoryBases, id,
		fmt.Sprintf("deleted base variant %d", id), before)
	return nil
}

// Gradings

func (s *sampleService) ListGradings(ctx context.Context) ([]model.Grading, error) {
	return s.gradings.List(ctx)
}

func (s *sampleService) GetGrading(ctx context.Context, id uint) (*model.Grading, error) {
	grading, err := s.gradings.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return grading, nil
}

func (s *sampleService) CreateGrading(ctx context.Context, actor audit.Actor, grading *model.Grading) (*model.Grading, error) {
	if _, err := s.bases.FindByID(ctx, grading.BaseVariantID); err != nil {
		return nil, notFound(err)
	}
	if err := s.gradings.Create(ctx, grading); err != nil {
		return nil, fmt.Errorf("create grading: %w", err)
	}
	s.recorder.Create(ctx, actor, audit.CategoryGradings, grading.ID,
		fmt.Sprintf("created grading %d for base variant %d", grading.ID, grading.BaseVariantID), grading.Snapshot())
	return grading, nil
}

func (s *sampleService) UpdateGrading(ctx context.Context, actor audit.Actor, id uint, patch model.GradingPatch) (*model.Grading, error) {
	grading, err := s.gradings.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	before := grading.Snapshot()
	patch.Apply(grading)
	if err := s.gradings.Update(ctx, grading); err != nil {
		return nil, fmt.Errorf("update grading: %w", err)
	}
	s.recorder.Update(ctx, actor, audit.CategoryGradings, id,
		fmt.Sprintf("updated grading %d", id), before, grading.Snapshot())
	return grading, nil
}

func (s *sampleService) DeleteGrading(ctx context.Context, actor audit.Actor, id uint) error {
	grading, err := s.gradings.FindByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	before := grading.Snapshot()
	if err := s.gradings.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete grading: %w", err)
	}
	s.recorder.Delete(ctx, actor, audit.CategoryGradings, id,
		fmt.Sprintf("deleted grading %d", id), before)
	return nil
}

// Spec sheets

func (s *sampleService) ListSpecSheets(ctx context.Context) ([]model.SpecSheet, error) {
	return s.sheets.List(ctx)
}

func (s *sampleService) GetSpecSheet(ctx context.Context, id uint) (*model.SpecSheet, error) {
	sheet, err := s.sheets.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return sheet, nil
}

func (s *sampleService) CreateSpecSheet(ctx context.Context, actor audit.Actor, sheet *model.SpecSheet) (*model.SpecSheet, error) {
	if _, err := s.bases.FindByID(ctx, sheet.BaseVariantID); err != nil {
		return nil, notFound(err)
	}
	if err := s.sheets.Create(ctx, sheet); err != nil {
		return nil, fmt.Errorf("create spec sheet: %w", err)
	}
	s.recorder.Create(ctx, actor, audit.CategorySpecSheets, sheet.ID,
		fmt.Sprintf("created spec sheet '%s' for base variant %d", sheet.Name, sheet.BaseVariantID), sheet.Snapshot())
	return sheet, nil
}

func (s *sampleService) UpdateSpecSheet(ctx context.Context, actor audit.Actor, id uint, patch model.SpecSheetPatch) (*model.SpecSheet, error) {
	sheet, err := s.sheets.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	before := sheet.Snapshot()
	patch.Apply(sheet)
	if err := s.sheets.Update(ctx, sheet); err != nil {
		return nil, fmt.Errorf("update spec sheet: %w", err)
	}
	s.recorder.Update(ctx, actor, audit.CategorySpecSheets, id,
		fmt.Sprintf("updated spec sheet %d", id), before, sheet.Snapshot())
	return sheet, nil
}

func (s *sampleService) DeleteSpecSheet(ctx context.Context, actor audit.Actor, id uint) error {
	sheet, err := s.sheets.FindByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	before := sheet.Snapshot()
	if err := s.sheets.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete spec sheet: %w", err)
	}
	s.recorder.Delete(ctx, actor, audit.CategorySpecSheets, id,
		fmt.Sprintf("deleted spec sheet %d", id), before)
	return nil
}
