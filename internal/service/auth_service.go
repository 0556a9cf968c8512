package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"textilerp/internal/audit"
	"textilerp/internal/auth"
	apperrors "textilerp/internal/errors"
	"textilerp/internal/model"
	"textilerp/internal/repository"
)

// AuthService handles login, logout and password changes.
type AuthService interface {
	// Login authenticates and returns a session token. Bad username and bad
	// password are indistinguishable to the caller. Only successful logins
	// are audited.
	Login(ctx context.Context, username, password, clientIP, userAgent string) (string, *model.User, error)
	// Logout blacklists the presented token for its remaining lifetime.
	Logout(ctx context.Context, token string, actor audit.Actor) error
	// ChangePassword verifies the old password before setting the new one.
	ChangePassword(ctx context.Context, user *model.User, oldPassword, newPassword string) error
	// ResolveToken validates a token and loads the active user behind it.
	ResolveToken(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	tokenStore *auth.TokenStore
	recorder   *audit.Recorder
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	jwtService *auth.JWTService,
	tokenStore *auth.TokenStore,
	recorder *audit.Recorder,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
		recorder:   recorder,
	}
}

func (s *authService) Login(ctx context.Context, username, password, clientIP, userAgent string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !user.Active {
		return "", nil, apperrors.ErrAccountDisabled
	}

	token, err := s.jwtService.IssueToken(user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.recorder.Login(ctx, audit.ActorFromUser(user, clientIP, userAgent), true)

	return token, user, nil
}

func (s *authService) Logout(ctx context.Context, token string, actor audit.Actor) error {
	if err := s.tokenStore.Blacklist(ctx, token, auth.TokenTTL); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}
	s.recorder.Logout(ctx, actor)
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, user *model.User, oldPassword, newPassword string) error {
	if !auth.CheckPassword(oldPassword, user.PasswordHash) {
		return apperrors.ErrWrongPassword
	}
	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = hashed
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (s *authService) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	username, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if s.tokenStore.IsBlacklisted(ctx, token) {
		return nil, apperrors.ErrInvalidCredentials
	}
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, apperrors.ErrAccountDisabled
	}
	return user, nil
}
