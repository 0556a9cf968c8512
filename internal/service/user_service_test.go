package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"textilerp/internal/audit"
	"textilerp/internal/auth"
	apperrors "textilerp/internal/errors"
	"textilerp/internal/model"
)

func testActor() audit.Actor {
	id := uint(99)
	return audit.Actor{UserID: &id, Username: "admin", ClientIP: "127.0.0.1"}
}

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name          string
		actingRole    model.Role
		newUser       *model.User
		setupMock     func(*MockUserRepository, *MockPermissionService, *MockAuditRepository)
		expectedError error
	}{
		{
			name:       "editor created with default override",
			actingRole: model.RoleAdmin,
			newUser:    &model.User{Username: "eve", Role: model.RoleEditor},
			setupMock: func(mRepo *MockUserRepository, mPerms *MockPermissionService, mAudit *MockAuditRepository) {
				mRepo.On("FindByUsername", mock.Anything, "eve").Return(nil, gorm.ErrRecordNotFound)
				mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				mPerms.On("CreateDefaults", mock.Anything, mock.Anything, model.RoleEditor).Return(nil)
				mAudit.On("Create", mock.Anything, mock.AnythingOfType("*model.AuditEntry")).Return(nil)
			},
		},
		{
			name:          "admin cannot create super admin",
			actingRole:    model.RoleAdmin,
			newUser:       &model.User{Username: "root2", Role: model.RoleSuperAdmin},
			setupMock:     func(*MockUserRepository, *MockPermissionService, *MockAuditRepository) {},
			expectedError: apperrors.ErrSuperAdminRequired,
		},
		{
			name:       "super admin may create super admin",
			actingRole: model.RoleSuperAdmin,
			newUser:    &model.User{Username: "root2", Role: model.RoleSuperAdmin},
			setupMock: func(mRepo *MockUserRepository, mPerms *MockPermissionService, mAudit *MockAuditRepository) {
				mRepo.On("FindByUsername", mock.Anything, "root2").Return(nil, gorm.ErrRecordNotFound)
				mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				mPerms.On("CreateDefaults", mock.Anything, mock.Anything, model.RoleSuperAdmin).Return(nil)
				mAudit.On("Create", mock.Anything, mock.AnythingOfType("*model.AuditEntry")).Return(nil)
			},
		},
		{
			name:       "username taken",
			actingRole: model.RoleAdmin,
			newUser:    &model.User{Username: "eve", Role: model.RoleViewer},
			setupMock: func(mRepo *MockUserRepository, mPerms *MockPermissionService, mAudit *MockAuditRepository) {
				mRepo.On("FindByUsername", mock.Anything, "eve").Return(&model.User{ID: 5, Username: "eve"}, nil)
			},
			expectedError: apperrors.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockPerms := new(MockPermissionService)
			mockAudit := new(MockAuditRepository)
			tt.setupMock(mockRepo, mockPerms, mockAudit)

			service := NewUserService(mockRepo, mockPerms, audit.NewRecorder(mockAudit))
			created, err := service.Create(context.Background(), testActor(), tt.actingRole, tt.newUser, "password123")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, created)
				assert.True(t, created.Active)
				assert.NotEmpty(t, created.PasswordHash)
				assert.True(t, auth.CheckPassword("password123", created.PasswordHash))
			}

			mockRepo.AssertExpectations(t)
			mockPerms.AssertExpectations(t)
			mockAudit.AssertExpectations(t)
		})
	}
}

func TestUserService_Update(t *testing.T) {
	superAdmin := &model.User{ID: 1, Username: "root", Role: model.RoleSuperAdmin}
	admin := &model.User{ID: 2, Username: "admin", Role: model.RoleAdmin}

	t.Run("admin cannot touch super admin", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(superAdmin, nil)
		service := NewUserService(mockRepo, new(MockPermissionService), audit.NewRecorder(new(MockAuditRepository)))

		active := false
		_, err := service.Update(context.Background(), testActor(), admin, 1, model.UserPatch{Active: &active})
		assert.ErrorIs(t, err, apperrors.ErrSuperAdminRequired)
	})

	t.Run("admin cannot promote to super admin", func(t *testing.T) {
		target := &model.User{ID: 3, Username: "eve", Role: model.RoleEditor}
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(3)).Return(target, nil)
		service := NewUserService(mockRepo, new(MockPermissionService), audit.NewRecorder(new(MockAuditRepository)))

		role := model.RoleSuperAdmin
		_, err := service.Update(context.Background(), testActor(), admin, 3, model.UserPatch{Role: &role})
		assert.ErrorIs(t, err, apperrors.ErrSuperAdminRequired)
	})

	t.Run("role change invalidates cached permissions", func(t *testing.T) {
		target := &model.User{ID: 3, Username: "eve", Role: model.RoleEditor}
		mockRepo := new(MockUserRepository)
		mockPerms := new(MockPermissionService)
		mockAudit := new(MockAuditRepository)
		mockRepo.On("FindByID", mock.Anything, uint(3)).Return(target, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
		mockPerms.On("Invalidate", mock.Anything, uint(3)).Return()
		mockAudit.On("Create", mock.Anything, mock.AnythingOfType("*model.AuditEntry")).Return(nil)

		service := NewUserService(mockRepo, mockPerms, audit.NewRecorder(mockAudit))
		role := model.RoleViewer
		updated, err := service.Update(context.Background(), testActor(), admin, 3, model.UserPatch{Role: &role})

		assert.NoError(t, err)
		assert.Equal(t, model.RoleViewer, updated.Role)
		mockPerms.AssertExpectations(t)
	})
}

func TestUserService_Delete(t *testing.T) {
	admin := &model.User{ID: 2, Username: "admin", Role: model.RoleAdmin}

	t.Run("self delete rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, new(MockPermissionService), audit.NewRecorder(new(MockAuditRepository)))

		err := service.Delete(context.Background(), testActor(), admin, admin.ID)
		assert.ErrorIs(t, err, apperrors.ErrSelfDelete)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("admin cannot delete super admin", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Username: "root", Role: model.RoleSuperAdmin}, nil)
		service := NewUserService(mockRepo, new(MockPermissionService), audit.NewRecorder(new(MockAuditRepository)))

		err := service.Delete(context.Background(), testActor(), admin, 1)
		assert.ErrorIs(t, err, apperrors.ErrSuperAdminRequired)
	})

	t.Run("successful delete audited with prior state", func(t *testing.T) {
		target := &model.User{ID: 3, Username: "eve", Role: model.RoleViewer}
		mockRepo := new(MockUserRepository)
		mockPerms := new(MockPermissionService)
		mockAudit := new(MockAuditRepository)
		mockRepo.On("FindByID", mock.Anything, uint(3)).Return(target, nil)
		mockRepo.On("Delete", mock.Anything, uint(3)).Return(nil)
		mockPerms.On("Invalidate", mock.Anything, uint(3)).Return()

		var captured *model.AuditEntry
		mockAudit.On("Create", mock.Anything, mock.AnythingOfType("*model.AuditEntry")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*model.AuditEntry)
			}).Return(nil)

		service := NewUserService(mockRepo, mockPerms, audit.NewRecorder(mockAudit))
		err := service.Delete(context.Background(), testActor(), admin, 3)

		assert.NoError(t, err)
		assert.NotNil(t, captured)
		assert.Equal(t, model.ActionDelete, captured.Action)
		assert.Equal(t, audit.CategoryUsers, captured.Category)
		assert.NotNil(t, captured.BeforeState)
		assert.Nil(t, captured.AfterState)
		mockRepo.AssertExpectations(t)
	})
}
