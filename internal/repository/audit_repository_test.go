package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"textilerp/internal/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func TestAuditRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `audit_entries`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	userID := uint(3)
	err := repo.Create(context.Background(), &model.AuditEntry{
		UserID:      &userID,
		Username:    "alice",
		OccurredAt:  time.Now().UTC(),
		Category:    "fabrics",
		Action:      model.ActionCreate,
		Description: "created fabric 'Jersey'",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `audit_entries` WHERE username LIKE \\? AND category = \\?").
		WithArgs("%ali%", "fabrics").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(25))

	rows := sqlmock.NewRows([]string{"id", "username", "category", "action", "description"}).
		AddRow(25, "alice", "fabrics", "update", "updated fabric 'Jersey'").
		AddRow(24, "alice", "fabrics", "create", "created fabric 'Jersey'")
	mock.ExpectQuery("SELECT \\* FROM `audit_entries` WHERE username LIKE \\? AND category = \\? ORDER BY occurred_at DESC, id DESC LIMIT 10 OFFSET 10").
		WithArgs("%ali%", "fabrics").
		WillReturnRows(rows)

	entries, total, err := repo.List(context.Background(), AuditFilter{
		Username: "ali",
		Category: "fabrics",
		Page:     2,
		PageSize: 10,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, entries, 2)
	assert.Equal(t, "alice", entries[0].Username)
	assert.Equal(t, model.AuditAction("update"), entries[0].Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_ListCapsPageSize(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `audit_entries`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1000))
	mock.ExpectQuery("SELECT \\* FROM `audit_entries` ORDER BY occurred_at DESC, id DESC LIMIT 200").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, _, err := repo.List(context.Background(), AuditFilter{PageSize: 5000})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_Categories(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditRepository(db)

	mock.ExpectQuery("SELECT DISTINCT `category` FROM `audit_entries` ORDER BY category").
		WillReturnRows(sqlmock.NewRows([]string{"category"}).
			AddRow("fabrics").
			AddRow("samples").
			AddRow("sessions"))

	categories, err := repo.Categories(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"fabrics", "samples", "sessions"}, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}
