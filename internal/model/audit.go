package model

import (
	"time"

	"gorm.io/datatypes"
)

// AuditAction enumerates the kinds of actions recorded in the audit trail.
type AuditAction string

const (
	ActionCreate       AuditAction = "create"
	ActionUpdate       AuditAction = "update"
	ActionDelete       AuditAction = "delete"
	ActionUploadFile   AuditAction = "upload_file"
	ActionDownloadFile AuditAction = "download_file"
	ActionDeleteFile   AuditAction = "delete_file"
	ActionLogin        AuditAction = "login"
	ActionLogout       AuditAction = "logout"
)

// AuditEntry is one immutable record of a state-changing action. Entries are
// append-only: nothing in the application updates or deletes them, and they
// outlive the user and the record they describe. UserID is nullable and the
// username is denormalized so history survives user deletion.
type AuditEntry struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	UserID      *uint          `json:"user_id" gorm:"index"`
	Username    string         `json:"username" gorm:"size:100;not null;index"`
	OccurredAt  time.Time      `json:"occurred_at" gorm:"not null;index"`
	Category    string         `json:"category" gorm:"size:100;not null;index"`
	Action      AuditAction    `json:"action" gorm:"type:varchar(20);not null;index"`
	RecordID    *uint          `json:"record_id"`
	Description string         `json:"description" gorm:"size:1000"`
	BeforeState datatypes.JSON `json:"before_state,omitempty"`
	AfterState  datatypes.JSON `json:"after_state,omitempty"`
	ClientIP    string         `json:"client_ip" gorm:"size:45"`
	UserAgent   string         `json:"user_agent" gorm:"size:512"`
}

// TableName overrides GORM's default pluralization.
func (AuditEntry) TableName() string {
	return "audit_entries"
}
