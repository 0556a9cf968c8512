package service

import (
	"context"

	"textilerp/internal/model"
	"textilerp/internal/repository"
)

// HistoryService is the admin-gated read surface over the audit trail.
type HistoryService interface {
	List(ctx context.Context, filter repository.AuditFilter) ([]model.AuditEntry, int64, error)
	Get(ctx context.Context, id uint) (*model.AuditEntry, error)
	Stats(ctx context.Context) (*repository.AuditStats, error)
	Categories(ctx context.Context) ([]string, error)
}

type historyService struct {
	repo repository.AuditRepository
}

// NewHistoryService creates a new history service.
func NewHistoryService(repo repository.AuditRepository) HistoryService {
	return &historyService{repo: repo}
}

func (s *historyService) List(ctx context.Context, filter repository.AuditFilter) ([]model.AuditEntry, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *historyService) Get(ctx context.Context, id uint) (*model.AuditEntry, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return entry, nil
}

func (s *historyService) Stats(ctx context.Context) (*repository.AuditStats, error) {
	return s.repo.Stats(ctx)
}

func (s *historyService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}
