package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"textilerp/internal/audit"
	"textilerp/internal/auth"
	"textilerp/internal/cache"
	apperrors "textilerp/internal/errors"
	"textilerp/internal/model"
	"textilerp/internal/repository"
)

const (
	permCacheKeyPrefix = "perms:user:"
	permCacheTTL       = 5 * time.Minute
)

// PermissionService resolves and manages per-user capability sets.
type PermissionService interface {
	// Effective returns the user's resolved capability set (cached).
	Effective(ctx context.Context, user *model.User) (auth.CapabilitySet, error)
	// EffectiveForUser resolves by user id, for the admin permissions view.
	EffectiveForUser(ctx context.Context, userID uint) (auth.CapabilitySet, error)
	// SetOverride replaces the full flag set for an editor/viewer user.
	SetOverride(ctx context.Context, actor audit.Actor, userID uint, flags *model.PermissionOverride) (*model.PermissionOverride, error)
	// CreateDefaults materializes the role-derived defaults for a new
	// editor/viewer. Idempotent: a second call upserts the same single row.
	CreateDefaults(ctx context.Context, userID uint, role model.Role) error
	// Invalidate drops the cached capability set for a user.
	Invalidate(ctx context.Context, userID uint)
}

type permissionService struct {
	userRepo repository.UserRepository
	permRepo repository.PermissionRepository
	cache    *cache.Client
	recorder *audit.Recorder
}

// NewPermissionService creates a new permission service.
func NewPermissionService(
	userRepo repository.UserRepository,
	permRepo repository.PermissionRepository,
	cache *cache.Client,
	recorder *audit.Recorder,
) PermissionService {
	return &permissionService{
		userRepo: userRepo,
		permRepo: permRepo,
		cache:    cache,
		recorder: recorder,
	}
}

func permCacheKey(userID uint) string {
	return fmt.Sprintf("%s%d", permCacheKeyPrefix, userID)
}

func (s *permissionService) Effective(ctx context.Context, user *model.User) (auth.CapabilitySet, error) {
	// Admin tiers are maximal by construction; no row lookup, no cache.
	if user.Role.AdminTier() {
		return auth.FullCapabilities(), nil
	}

	if data, _ := s.cache.Get(ctx, permCacheKey(user.ID)); data != nil {
		var caps auth.CapabilitySet
		if err := json.Unmarshal(data, &caps); err == nil {
			return caps, nil
		}
	}

	override, err := s.permRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		return auth.CapabilitySet{}, fmt.Errorf("load override: %w", err)
	}
	caps := auth.Effective(user, override)

	if data, err := json.Marshal(caps); err == nil {
		_ = s.cache.Set(ctx, permCacheKey(user.ID), data, permCacheTTL)
	}
	return caps, nil
}

func (s *permissionService) EffectiveForUser(ctx context.Context, userID uint) (auth.CapabilitySet, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return auth.CapabilitySet{}, notFound(err)
	}
	return s.Effective(ctx, user)
}

func (s *permissionService) SetOverride(ctx context.Context, actor audit.Actor, userID uint, flags *model.PermissionOverride) (*model.PermissionOverride, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, notFound(err)
	}
	// Admin-tier users are maximal by construction; there is nothing to edit.
	if user.Role.AdminTier() {
		return nil, apperrors.ErrNoOverridableRow
	}

	previous, err := s.permRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load override: %w", err)
	}

	flags.UserID = userID
	flags.ID = 0
	if previous != nil {
		flags.ID = previous.ID
	}
	if err := s.permRepo.Upsert(ctx, flags); err != nil {
		return nil, fmt.Errorf("upsert override: %w", err)
	}
	s.Invalidate(ctx, userID)

	before := overrideSnapshot(previous)
	s.recorder.Update(ctx, actor, audit.CategoryPermissions, userID,
		fmt.Sprintf("updated permissions for user '%s'", user.Username),
		before, overrideSnapshot(flags))

	return flags, nil
}

func (s *permissionService) CreateDefaults(ctx context.Context, userID uint, role model.Role) error {
	override := auth.DefaultOverrideForRole(userID, role)
	if override == nil {
		return nil
	}
	if existing, err := s.permRepo.FindByUserID(ctx, userID); err == nil && existing != nil {
		override.ID = existing.ID
	}
	if err := s.permRepo.Upsert(ctx, override); err != nil {
		return fmt.Errorf("create default override: %w", err)
	}
	s.Invalidate(ctx, userID)
	return nil
}

func (s *permissionService) Invalidate(ctx context.Context, userID uint) {
	_ = s.cache.Delete(ctx, permCacheKey(userID))
}

// overrideSnapshot flattens an override row through its capability-set view.
func overrideSnapshot(o *model.PermissionOverride) map[string]any {
	if o == nil {
		return nil
	}
	caps := auth.FromOverride(o)
	data, err := json.Marshal(caps)
	if err != nil {
		return nil
	}
	var state map[string]any
	if err := json.Unmarshal(data, &state); err != nil {
		return nil
	}
	state["user_id"] = o.UserID
	return state
}
