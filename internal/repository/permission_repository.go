package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"textilerp/internal/model"
)

// PermissionRepository defines persistence operations for override rows.
type PermissionRepository interface {
	// FindByUserID returns nil (no error) when the user has no row.
	FindByUserID(ctx context.Context, userID uint) (*model.PermissionOverride, error)
	// Upsert inserts or replaces the row for override.UserID. Calling it
	// twice for the same user never produces two rows.
	Upsert(ctx context.Context, override *model.PermissionOverride) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository builds a GORM-backed repository.
func NewPermissionRepository(db *gorm.DB) PermissionRepository {
	return &permissionRepository{db: db}
}

func (r *permissionRepository) FindByUserID(ctx context.Context, userID uint) (*model.PermissionOverride, error) {
	var override model.PermissionOverride
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&override).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &override, nil
}

func (r *permissionRepository) Upsert(ctx context.Context, override *model.PermissionOverride) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(override).Error
}

func (r *permissionRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.PermissionOverride{}).Error
}
