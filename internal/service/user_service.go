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

// UserService handles user management. Callers are already authenticated and
// admin-gated; the escalation guards here enforce the role hierarchy on top:
// only a super admin may create, modify, delete or promote to super admin,
// and nobody deletes their own account.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	Create(ctx context.Context, actor audit.Actor, actingRole model.Role, user *model.User, password string) (*model.User, error)
	Update(ctx context.Context, actor audit.Actor, actingUser *model.User, id uint, patch model.UserPatch) (*model.User, error)
	Delete(ctx context.Context, actor audit.Actor, actingUser *model.User, id uint) error
}

type userService struct {
	userRepo repository.UserRepository
	perms    PermissionService
	recorder *audit.Recorder
}

// NewUserService creates a new user management service.
func NewUserService(userRepo repository.UserRepository, perms PermissionService, recorder *audit.Recorder) UserService {
	return &userService{userRepo: userRepo, perms: perms, recorder: recorder}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, actor audit.Actor, actingRole model.Role, user *model.User, password string) (*model.User, error) {
	if user.Role == model.RoleSuperAdmin && actingRole != model.RoleSuperAdmin {
		return nil, apperrors.ErrSuperAdminRequired
	}

	existing, err := s.userRepo.FindByUsername(ctx, user.Username)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = hashed
	user.Active = true

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.perms.CreateDefaults(ctx, user.ID, user.Role); err != nil {
		return nil, fmt.Errorf("seed permissions: %w", err)
	}

	s.recorder.Create(ctx, actor, audit.CategoryUsers, user.ID,
		fmt.Sprintf("created user '%s' with role %s", user.Username, user.Role), user.Snapshot())

	return user, nil
}

func (s *userService) Update(ctx context.Context, actor audit.Actor, actingUser *model.User, id uint, patch model.UserPatch) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	if user.Role == model.RoleSuperAdmin && actingUser.Role != model.RoleSuperAdmin {
		return nil, apperrors.ErrSuperAdminRequired
	}
	if patch.Role != nil && *patch.Role == model.RoleSuperAdmin && actingUser.Role != model.RoleSuperAdmin {
		return nil, apperrors.ErrSuperAdminRequired
	}

	before := user.Snapshot()
	roleChanged := patch.Role != nil && *patch.Role != user.Role
	patch.Apply(user)
	if patch.Password != nil && *patch.Password != "" {
		hashed, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if roleChanged {
		// A stale override row for a promoted admin is ignored by
		// resolution, but the cached set must go.
		s.perms.Invalidate(ctx, user.ID)
	}

	s.recorder.Update(ctx, actor, audit.CategoryUsers, user.ID,
		fmt.Sprintf("updated user '%s'", user.Username), before, user.Snapshot())

	return user, nil
}

func (s *userService) Delete(ctx context.Context, actor audit.Actor, actingUser *model.User, id uint) error {
	if actingUser.ID == id {
		return apperrors.ErrSelfDelete
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if user.Role == model.RoleSuperAdmin && actingUser.Role != model.RoleSuperAdmin {
		return apperrors.ErrSuperAdminRequired
	}

	before := user.Snapshot()
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.perms.Invalidate(ctx, id)

	s.recorder.Delete(ctx, actor, audit.CategoryUsers, id,
		fmt.Sprintf("deleted user '%s'", user.Username), before)

	return nil
}
