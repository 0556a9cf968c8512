package service

import (
	"context"
	"fmt"
	"log"

	"textilerp/internal/audit"
	apperrors "textilerp/internal/errors"
	"textilerp/internal/model"
	"textilerp/internal/observability/metrics"
	"textilerp/internal/repository"
)

// ERPService bridges base variants to records in the legacy ERP.
//
// Link and unlink are two independent writes against two stores with no
// shared transaction. The local write goes first; if the remote write then
// fails the stores diverge until manually reconciled. Divergence is logged
// and counted, never auto-retried.
type ERPService interface {
	Status(ctx context.Context) error
	Models(ctx context.Context, search string, limit int) ([]repository.ERPModel, error)
	Records(ctx context.Context, search string, limit int) ([]repository.ERPRecord, error)
	Unlinked(ctx context.Context, search string, limit int) ([]repository.ERPRecord, error)
	Linked(ctx context.Context, baseID uint) ([]repository.ERPRecord, error)
	Link(ctx context.Context, actor audit.Actor, baseID uint, recordID int64) (*model.BaseVariant, error)
	Unlink(ctx context.Context, actor audit.Actor, baseID uint) (*model.BaseVariant, error)
}

type erpService struct {
	erpRepo  repository.ERPRepository
	baseRepo repository.BaseVariantRepository
	recorder *audit.Recorder
}

// NewERPService creates a new legacy-ERP bridge service.
func NewERPService(
	erpRepo repository.ERPRepository,
	baseRepo repository.BaseVariantRepository,
	recorder *audit.Recorder,
) ERPService {
	return &erpService{erpRepo: erpRepo, baseRepo: baseRepo, recorder: recorder}
}

func (s *erpService) Status(ctx context.Context) error {
	return s.erpRepo.Ping(ctx)
}

func (s *erpService) Models(ctx context.Context, search string, limit int) ([]repository.ERPModel, error) {
	return s.erpRepo.Models(ctx, search, limit)
}

func (s *erpService) Records(ctx context.Context, search string, limit int) ([]repository.ERPRecord, error) {
	return s.erpRepo.Records(ctx, search, limit)
}

func (s *erpService) Unlinked(ctx context.Context, search string, limit int) ([]repository.ERPRecord, error) {
	return s.erpRepo.UnlinkedRecords(ctx, search, limit)
}

func (s *erpService) Linked(ctx context.Context, baseID uint) ([]repository.ERPRecord, error) {
	return s.erpRepo.LinkedRecords(ctx, baseID)
}

func (s *erpService) Link(ctx context.Context, actor audit.Actor, baseID uint, recordID int64) (*model.BaseVariant, error) {
	base, err := s.baseRepo.FindByID(ctx, baseID)
	if err != nil {
		return nil, notFound(err)
	}

	// The remote record must exist before any local state changes.
	record, err := s.erpRepo.RecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	before := base.Snapshot()
	base.ERPRecordID = &recordID
	base.ERPModelID = record.ModelID
	if err := s.baseRepo.Update(ctx, base); err != nil {
		return nil, fmt.Errorf("update base variant: %w", err)
	}

	s.recorder.Update(ctx, actor, audit.CategoryBases, baseID,
		fmt.Sprintf("linked base variant %d to ERP record %d", baseID, recordID),
		before, base.Snapshot())

	approved := base.Approved
	if err := s.erpRepo.LinkRecord(ctx, recordID, baseID, &approved); err != nil {
		metrics.ObserveERPDivergence("link")
		log.Printf("erp: link divergence: base %d updated locally but record %d not updated remotely: %v", baseID, recordID, err)
		return nil, apperrors.ErrERPUnavailable
	}

	return base, nil
}

func (s *erpService) Unlink(ctx context.Context, actor audit.Actor, baseID uint) (*model.BaseVariant, error) {
	base, err := s.baseRepo.FindByID(ctx, baseID)
	if err != nil {
		return nil, notFound(err)
	}
	if base.ERPRecordID == nil {
		return nil, apperrors.ErrNotFound
	}
	recordID := *base.ERPRecordID

	before := base.Snapshot()
	base.ERPRecordID = nil
	base.ERPModelID = nil
	if err := s.baseRepo.Update(ctx, base); err != nil {
		return nil, fmt.Errorf("update base variant: %w", err)
	}

	s.recorder.Update(ctx, actor, audit.CategoryBases, baseID,
		fmt.Sprintf("unlinked base variant %d from ERP record %d", baseID, recordID),
		before, base.Snapshot())

	if err := s.erpRepo.UnlinkRecord(ctx, recordID); err != nil {
		metrics.ObserveERPDivergence("unlink")
		log.Printf("erp: unlink divergence: base %d cleared locally but record %d still linked remotely: %v", baseID, recordID, err)
		return nil, apperrors.ErrERPUnavailable
	}

	return base, nil
}
