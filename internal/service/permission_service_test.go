package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"textilerp/internal/audit"
	"textilerp/internal/auth"
	apperrors "textilerp/internal/errors"
	"textilerp/internal/model"
)

func newTestPermissionService(userRepo *MockUserRepository, permRepo *MockPermissionRepository, auditRepo *MockAuditRepository) PermissionService {
	return NewPermissionService(userRepo, permRepo, nil, audit.NewRecorder(auditRepo))
}

func TestPermissionService_Effective(t *testing.T) {
	t.Run("admin tier skips the repository entirely", func(t *testing.T) {
		permRepo := new(MockPermissionRepository)
		service := newTestPermissionService(new(MockUserRepository), permRepo, new(MockAuditRepository))

		caps, err := service.Effective(context.Background(), &model.User{ID: 1, Role: model.RoleAdmin})
		assert.NoError(t, err)
		assert.Equal(t, auth.FullCapabilities(), caps)
		permRepo.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
	})

	t.Run("editor resolves through the override row", func(t *testing.T) {
		permRepo := new(MockPermissionRepository)
		row := &model.PermissionOverride{UserID: 3, FabricsView: true}
		permRepo.On("FindByUserID", mock.Anything, uint(3)).Return(row, nil)
		service := newTestPermissionService(new(MockUserRepository), permRepo, new(MockAuditRepository))

		caps, err := service.Effective(context.Background(), &model.User{ID: 3, Role: model.RoleEditor})
		assert.NoError(t, err)
		assert.True(t, caps.FabricsView)
		assert.False(t, caps.SamplesView)
		permRepo.AssertExpectations(t)
	})

	t.Run("viewer without a row gets role defaults", func(t *testing.T) {
		permRepo := new(MockPermissionRepository)
		permRepo.On("FindByUserID", mock.Anything, uint(4)).Return(nil, nil)
		service := newTestPermissionService(new(MockUserRepository), permRepo, new(MockAuditRepository))

		caps, err := service.Effective(context.Background(), &model.User{ID: 4, Role: model.RoleViewer})
		assert.NoError(t, err)
		assert.Equal(t, auth.RoleDefaults(model.RoleViewer), caps)
	})
}

func TestPermissionService_SetOverride(t *testing.T) {
	t.Run("rejected for admin tier", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		permRepo := new(MockPermissionRepository)
		userRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Role: model.RoleAdmin}, nil)
		service := newTestPermissionService(userRepo, permRepo, new(MockAuditRepository))

		_, err := service.SetOverride(context.Background(), testActor(), 1, &model.PermissionOverride{})
		assert.ErrorIs(t, err, apperrors.ErrNoOverridableRow)
		permRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("replaces the existing row in place", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		permRepo := new(MockPermissionRepository)
		auditRepo := new(MockAuditRepository)
		userRepo.On("FindByID", mock.Anything, uint(3)).Return(&model.User{ID: 3, Username: "eve", Role: model.RoleEditor}, nil)
		permRepo.On("FindByUserID", mock.Anything, uint(3)).Return(&model.PermissionOverride{ID: 12, UserID: 3}, nil)
		permRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*model.PermissionOverride")).Return(nil)
		auditRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.AuditEntry")).Return(nil)
		service := newTestPermissionService(userRepo, permRepo, auditRepo)

		flags := &model.PermissionOverride{FabricsView: true}
		saved, err := service.SetOverride(context.Background(), testActor(), 3, flags)

		assert.NoError(t, err)
		assert.Equal(t, uint(12), saved.ID, "keeps the row identity")
		assert.Equal(t, uint(3), saved.UserID)
		permRepo.AssertExpectations(t)
		auditRepo.AssertExpectations(t)
	})
}

func TestPermissionService_CreateDefaults(t *testing.T) {
	t.Run("no row for admin tier", func(t *testing.T) {
		permRepo := new(MockPermissionRepository)
		service := newTestPermissionService(new(MockUserRepository), permRepo, new(MockAuditRepository))

		err := service.CreateDefaults(context.Background(), 1, model.RoleSuperAdmin)
		assert.NoError(t, err)
		permRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("editor row carries the role defaults", func(t *testing.T) {
		permRepo := new(MockPermissionRepository)
		permRepo.On("FindByUserID", mock.Anything, uint(5)).Return(nil, nil)

		var saved *model.PermissionOverride
		permRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*model.PermissionOverride")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*model.PermissionOverride)
			}).Return(nil)
		service := newTestPermissionService(new(MockUserRepository), permRepo, new(MockAuditRepository))

		err := service.CreateDefaults(context.Background(), 5, model.RoleEditor)
		assert.NoError(t, err)
		assert.NotNil(t, saved)
		assert.Equal(t, uint(5), saved.UserID)
		assert.Equal(t, auth.RoleDefaults(model.RoleEditor), auth.FromOverride(saved))
	})

	t.Run("second call reuses the existing row", func(t *testing.T) {
		permRepo := new(MockPermissionRepository)
		permRepo.On("FindByUserID", mock.Anything, uint(5)).Return(&model.PermissionOverride{ID: 40, UserID: 5}, nil)

		var saved *model.PermissionOverride
		permRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*model.PermissionOverride")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*model.PermissionOverride)
			}).Return(nil)
		service := newTestPermissionService(new(MockUserRepository), permRepo, new(MockAuditRepository))

		err := service.CreateDefaults(context.Background(), 5, model.RoleEditor)
		assert.NoError(t, err)
		assert.Equal(t, uint(40), saved.ID)
	})
}
