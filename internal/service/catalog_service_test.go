package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"textilerp/internal/audit"
	apperrors "textilerp/internal/errors"
	"textilerp/internal/model"
)

func newTestCatalogService(fabrics *MockFabricRepository, auditRepo *MockAuditRepository) CatalogService {
	return NewCatalogService(fabrics, nil, nil, nil, audit.NewRecorder(auditRepo))
}

func TestCatalogService_FabricLifecycleAudit(t *testing.T) {
	fabrics := new(MockFabricRepository)
	auditRepo := new(MockAuditRepository)

	var entries []*model.AuditEntry
	auditRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.AuditEntry")).
		Run(func(args mock.Arguments) {
			entries = append(entries, args.Get(1).(*model.AuditEntry))
		}).Return(nil)

	fabric := &model.Fabric{Name: "Jersey"}
	fabrics.On("Create", mock.Anything, fabric).Run(func(mock.Arguments) { fabric.ID = 10 }).Return(nil)
	fabrics.On("FindByID", mock.Anything, uint(10)).Return(fabric, nil)
	fabrics.On("Update", mock.Anything, fabric).Return(nil)
	fabrics.On("Delete", mock.Anything, uint(10)).Return(nil)

	service := newTestCatalogService(fabrics, auditRepo)
	ctx := context.Background()

	_, err := service.CreateFabric(ctx, testActor(), fabric)
	assert.NoError(t, err)

	name := "Jersey 180g"
	_, err = service.UpdateFabric(ctx, testActor(), 10, model.FabricPatch{Name: &name})
	assert.NoError(t, err)

	err = service.DeleteFabric(ctx, testActor(), 10)
	assert.NoError(t, err)

	// One entry per mutation, in order, with the states each action carries.
	assert.Len(t, entries, 3)

	assert.Equal(t, model.ActionCreate, entries[0].Action)
	assert.Equal(t, audit.CategoryFabrics, entries[0].Category)
	assert.Nil(t, entries[0].BeforeState)
	assert.NotNil(t, entries[0].AfterState)

	assert.Equal(t, model.ActionUpdate, entries[1].Action)
	assert.NotNil(t, entries[1].BeforeState)
	assert.NotNil(t, entries[1].AfterState)
	assert.Contains(t, string(entries[1].AfterState), "Jersey 180g")

	assert.Equal(t, model.ActionDelete, entries[2].Action)
	assert.NotNil(t, entries[2].BeforeState)
	assert.Nil(t, entries[2].AfterState)

	for _, e := range entries {
		assert.Equal(t, "admin", e.Username)
		assert.Equal(t, uint(10), *e.RecordID)
	}
}

func TestCatalogService_AuditFailureDoesNotFailMutation(t *testing.T) {
	fabrics := new(MockFabricRepository)
	auditRepo := new(MockAuditRepository)
	auditRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("audit store down"))

	fabric := &model.Fabric{Name: "Rib"}
	fabrics.On("Create", mock.Anything, fabric).Return(nil)

	service := newTestCatalogService(fabrics, auditRepo)
	created, err := service.CreateFabric(context.Background(), testActor(), fabric)

	assert.NoError(t, err)
	assert.NotNil(t, created)
}

func TestCatalogService_GetFabricNotFound(t *testing.T) {
	fabrics := new(MockFabricRepository)
	fabrics.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	service := newTestCatalogService(fabrics, new(MockAuditRepository))
	_, err := service.GetFabric(context.Background(), 99)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
