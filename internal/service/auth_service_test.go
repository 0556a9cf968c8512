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

func newTestAuthService(userRepo *MockUserRepository, auditRepo *MockAuditRepository) AuthService {
	jwtService := auth.NewJWTService("test-secret")
	tokenStore := auth.NewTokenStore(nil)
	return NewAuthService(userRepo, jwtService, tokenStore, audit.NewRecorder(auditRepo))
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := auth.HashPassword("password123")
	assert.NoError(t, err)

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository, *MockAuditRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "alice",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mAudit *MockAuditRepository) {
				mRepo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
					ID:           1,
					Username:     "alice",
					PasswordHash: hashed,
					Role:         model.RoleEditor,
					Active:       true,
				}, nil)
				mAudit.On("Create", mock.Anything, mock.AnythingOfType("*model.AuditEntry")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown username",
			username: "ghost",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mAudit *MockAuditRepository) {
				mRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong",
			setupMock: func(mRepo *MockUserRepository, mAudit *MockAuditRepository) {
				mRepo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
					ID:           1,
					Username:     "alice",
					PasswordHash: hashed,
					Active:       true,
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "disabled account",
			username: "bob",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mAudit *MockAuditRepository) {
				mRepo.On("FindByUsername", mock.Anything, "bob").Return(&model.User{
					ID:           2,
					Username:     "bob",
					PasswordHash: hashed,
					Active:       false,
				}, nil)
			},
			expectedError: apperrors.ErrAccountDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockAudit := new(MockAuditRepository)
			tt.setupMock(mockRepo, mockAudit)

			service := newTestAuthService(mockRepo, mockAudit)
			token, user, err := service.Login(context.Background(), tt.username, tt.password, "127.0.0.1", "test-agent")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, user)
				// Failed attempts never reach the audit trail.
				mockAudit.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
			}

			mockRepo.AssertExpectations(t)
			mockAudit.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginAuditEntry(t *testing.T) {
	hashed, _ := auth.HashPassword("password123")
	mockRepo := new(MockUserRepository)
	mockAudit := new(MockAuditRepository)

	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
		ID:           1,
		Username:     "alice",
		PasswordHash: hashed,
		Active:       true,
	}, nil)

	var captured *model.AuditEntry
	mockAudit.On("Create", mock.Anything, mock.AnythingOfType("*model.AuditEntry")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*model.AuditEntry)
		}).Return(nil)

	service := newTestAuthService(mockRepo, mockAudit)
	_, _, err := service.Login(context.Background(), "alice", "password123", "10.0.0.9", "test-agent")
	assert.NoError(t, err)

	assert.NotNil(t, captured)
	assert.Equal(t, audit.CategorySessions, captured.Category)
	assert.Equal(t, model.ActionLogin, captured.Action)
	assert.Equal(t, "alice", captured.Username)
	assert.Equal(t, "10.0.0.9", captured.ClientIP)
}

func TestAuthService_ResolveToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockAudit := new(MockAuditRepository)
	service := newTestAuthService(mockRepo, mockAudit)

	jwtService := auth.NewJWTService("test-secret")
	token, err := jwtService.IssueToken("alice")
	assert.NoError(t, err)

	t.Run("active user resolves", func(t *testing.T) {
		mockRepo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
			ID: 1, Username: "alice", Active: true,
		}, nil).Once()

		user, err := service.ResolveToken(context.Background(), token)
		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("inactive user rejected", func(t *testing.T) {
		mockRepo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
			ID: 1, Username: "alice", Active: false,
		}, nil).Once()

		_, err := service.ResolveToken(context.Background(), token)
		assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := service.ResolveToken(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	hashed, _ := auth.HashPassword("old-password")
	user := &model.User{ID: 1, Username: "alice", PasswordHash: hashed, Active: true}

	t.Run("wrong old password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := newTestAuthService(mockRepo, new(MockAuditRepository))

		err := service.ChangePassword(context.Background(), user, "bad-guess", "new-password")
		assert.ErrorIs(t, err, apperrors.ErrWrongPassword)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("successful change rehashes", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
		service := newTestAuthService(mockRepo, new(MockAuditRepository))

		err := service.ChangePassword(context.Background(), user, "old-password", "new-password")
		assert.NoError(t, err)
		assert.True(t, auth.CheckPassword("new-password", user.PasswordHash))
		mockRepo.AssertExpectations(t)
	})
}
