package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"textilerp/internal/audit"
	apperrors "textilerp/internal/errors"
	"textilerp/internal/model"
	"textilerp/internal/repository"
)

func TestERPService_Link(t *testing.T) {
	t.Run("missing remote record stops before any local write", func(t *testing.T) {
		baseRepo := new(MockBaseVariantRepository)
		erpRepo := new(MockERPRepository)
		auditRepo := new(MockAuditRepository)
		baseRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.BaseVariant{ID: 7, SampleID: 1}, nil)
		erpRepo.On("RecordByID", mock.Anything, int64(500)).Return(nil, apperrors.ErrERPRecordNotFound)

		service := NewERPService(erpRepo, baseRepo, audit.NewRecorder(auditRepo))
		_, err := service.Link(context.Background(), testActor(), 7, 500)

		assert.ErrorIs(t, err, apperrors.ErrERPRecordNotFound)
		baseRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		auditRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("successful link writes both sides", func(t *testing.T) {
		modelID := int64(42)
		baseRepo := new(MockBaseVariantRepository)
		erpRepo := new(MockERPRepository)
		auditRepo := new(MockAuditRepository)
		baseRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.BaseVariant{ID: 7, SampleID: 1, Approved: true}, nil)
		erpRepo.On("RecordByID", mock.Anything, int64(500)).Return(&repository.ERPRecord{ID: 500, ModelID: &modelID}, nil)
		baseRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.BaseVariant")).Return(nil)
		erpRepo.On("LinkRecord", mock.Anything, int64(500), uint(7), mock.AnythingOfType("*bool")).Return(nil)
		auditRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.AuditEntry")).Return(nil)

		service := NewERPService(erpRepo, baseRepo, audit.NewRecorder(auditRepo))
		base, err := service.Link(context.Background(), testActor(), 7, 500)

		assert.NoError(t, err)
		assert.NotNil(t, base.ERPRecordID)
		assert.Equal(t, int64(500), *base.ERPRecordID)
		assert.Equal(t, int64(42), *base.ERPModelID)
		erpRepo.AssertExpectations(t)
		baseRepo.AssertExpectations(t)
	})

	t.Run("remote failure after local write reports divergence", func(t *testing.T) {
		modelID := int64(42)
		baseRepo := new(MockBaseVariantRepository)
		erpRepo := new(MockERPRepository)
		auditRepo := new(MockAuditRepository)
		baseRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.BaseVariant{ID: 7, SampleID: 1}, nil)
		erpRepo.On("RecordByID", mock.Anything, int64(500)).Return(&repository.ERPRecord{ID: 500, ModelID: &modelID}, nil)
		baseRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.BaseVariant")).Return(nil)
		erpRepo.On("LinkRecord", mock.Anything, int64(500), uint(7), mock.AnythingOfType("*bool")).Return(errors.New("connection reset"))
		auditRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.AuditEntry")).Return(nil)

		service := NewERPService(erpRepo, baseRepo, audit.NewRecorder(auditRepo))
		_, err := service.Link(context.Background(), testActor(), 7, 500)

		assert.ErrorIs(t, err, apperrors.ErrERPUnavailable)
		// The local write stands; reconciliation is manual.
		baseRepo.AssertCalled(t, "Update", mock.Anything, mock.AnythingOfType("*model.BaseVariant"))
	})
}

func TestERPService_Unlink(t *testing.T) {
	t.Run("unlinked base has nothing to detach", func(t *testing.T) {
		baseRepo := new(MockBaseVariantRepository)
		baseRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.BaseVariant{ID: 7, SampleID: 1}, nil)

		service := NewERPService(new(MockERPRepository), baseRepo, audit.NewRecorder(new(MockAuditRepository)))
		_, err := service.Unlink(context.Background(), testActor(), 7)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		baseRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("successful unlink clears both ids", func(t *testing.T) {
		recordID := int64(500)
		modelID := int64(42)
		baseRepo := new(MockBaseVariantRepository)
		erpRepo := new(MockERPRepository)
		auditRepo := new(MockAuditRepository)
		baseRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.BaseVariant{
			ID: 7, SampleID: 1, ERPRecordID: &recordID, ERPModelID: &modelID,
		}, nil)
		baseRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.BaseVariant")).Return(nil)
		erpRepo.On("UnlinkRecord", mock.Anything, int64(500)).Return(nil)
		auditRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.AuditEntry")).Return(nil)

		service := NewERPService(erpRepo, baseRepo, audit.NewRecorder(auditRepo))
		base, err := service.Unlink(context.Background(), testActor(), 7)

		assert.NoError(t, err)
		assert.Nil(t, base.ERPRecordID)
		assert.Nil(t, base.ERPModelID)
		erpRepo.AssertExpectations(t)
	})
}
