package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"textilerp/internal/model"
)

const (
	// DefaultAuditPageSize applies when a listing names no page size.
	DefaultAuditPageSize = 50
	// MaxAuditPageSize caps any requested page size.
	MaxAuditPageSize = 200
)

// AuditFilter narrows an audit-trail listing. Zero values mean "no filter".
type AuditFilter struct {
	Username string // substring match on the username snapshot
	Category string // exact match
	Action   model.AuditAction
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

// CountByLabel is one bucket of an audit aggregate.
type CountByLabel struct {
	Label string `json:"label" gorm:"column:label"`
	Count int64  `json:"count" gorm:"column:cnt"`
}

// AuditStats summarizes the audit trail.
type AuditStats struct {
	Total      int64          `json:"total"`
	Last7Days  int64          `json:"last_7_days"`
	ByCategory []CountByLabel `json:"by_category"`
	ByAction   []CountByLabel `json:"by_action"`
	TopUsers   []CountByLabel `json:"top_users"`
}

// AuditRepository defines persistence operations for the audit trail.
// Entries are append-only: there is deliberately no update or delete.
type AuditRepository interface {
	Create(ctx context.Context, entry *model.AuditEntry) error
	FindByID(ctx context.Context, id uint) (*model.AuditEntry, error)
	List(ctx context.Context, filter AuditFilter) ([]model.AuditEntry, int64, error)
	Stats(ctx context.Context) (*AuditStats, error)
	Categories(ctx context.Context) ([]string, error)
}

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository builds a GORM-backed repository.
func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, entry *model.AuditEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditRepository) FindByID(ctx context.Context, id uint) (*model.AuditEntry, error) {
	var entry model.AuditEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *auditRepository) List(ctx context.Context, filter AuditFilter) ([]model.AuditEntry, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.AuditEntry{})
	if filter.Username != "" {
		q = q.Where("username LIKE ?", "%"+filter.Username+"%")
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	if filter.From != nil {
		q = q.Where("occurred_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("occurred_at <= ?", *filter.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size < 1 {
		size = DefaultAuditPageSize
	}
	if size > MaxAuditPageSize {
		size = MaxAuditPageSize
	}

	var entries []model.AuditEntry
	err := q.Order("occurred_at DESC, id DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *auditRepository) Stats(ctx context.Context) (*AuditStats, error) {
	stats := &AuditStats{}
	db := r.db.WithContext(ctx).Model(&model.AuditEntry{})

	if err := db.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	if err := db.Session(&gorm.Session{}).Where("occurred_at >= ?", weekAgo).Count(&stats.Last7Days).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).
		Select("category AS label, COUNT(*) AS cnt").
		Group("category").Order("cnt DESC").
		Scan(&stats.ByCategory).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).
		Select("action AS label, COUNT(*) AS cnt").
		Group("action").Order("cnt DESC").
		Scan(&stats.ByAction).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).
		Select("username AS label, COUNT(*) AS cnt").
		Group("username").Order("cnt DESC").Limit(10).
		Scan(&stats.TopUsers).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *auditRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&model.AuditEntry{}).
		Distinct("category").Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
