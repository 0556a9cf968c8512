// Package audit records a durable entry for every state-changing action.
// Writes happen after the primary mutation commits and are best-effort: a
// failing audit store is logged and counted, never surfaced to the caller.
package audit

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gorm.io/datatypes"

	"textilerp/internal/model"
	"textilerp/internal/observability/metrics"
	"textilerp/internal/repository"
)

// Resource categories used in audit entries and history filters.
const (
	CategoryBrands       = "brands"
	CategoryProductTypes = "product_types"
	CategoryFitTypes     = "fit_types"
	CategoryFabrics      = "fabrics"
	CategorySamples      = "samples"
	CategoryBases        = "bases"
	CategoryGradings     = "gradings"
	CategorySpecSheets   = "spec_sheets"
	CategoryUsers        = "users"
	CategoryPermissions  = "permissions"
	CategoryFiles        = "files"
	CategorySessions     = "sessions"
)

const maxUserAgentLen = 512

// Actor identifies who performed an action and from where. A nil UserID with
// a non-empty username is valid: the username snapshot outlives the user row.
type Actor struct {
	UserID    *uint
	Username  string
	ClientIP  string
	UserAgent string
}

// ActorFromUser builds an actor for a known user plus client metadata.
func ActorFromUser(u *model.User, clientIP, userAgent string) Actor {
	if u == nil {
		return Actor{Username: "system", ClientIP: clientIP, UserAgent: userAgent}
	}
	id := u.ID
	return Actor{UserID: &id, Username: u.Username, ClientIP: clientIP, UserAgent: userAgent}
}

// Recorder appends audit entries.
type Recorder struct {
	repo repository.AuditRepository
}

// NewRecorder creates a recorder over the given audit store.
func NewRecorder(repo repository.AuditRepository) *Recorder {
	return &Recorder{repo: repo}
}

// Record persists one audit entry. It must be called only after the primary
// mutation has committed. Failures are swallowed so the audit trail can
// never block or roll back business operations.
func (r *Recorder) Record(
	ctx context.Context,
	actor Actor,
	category string,
	action model.AuditAction,
	recordID *uint,
	description string,
	before, after map[string]any,
) {
	agent := actor.UserAgent
	if len(agent) > maxUserAgentLen {
		agent = agent[:maxUserAgentLen]
	}
	entry := &model.AuditEntry{
		UserID:      actor.UserID,
		Username:    actor.Username,
		OccurredAt:  time.Now().UTC(),
		Category:    category,
		Action:      action,
		RecordID:    recordID,
		Description: description,
		BeforeState: marshalState(before),
		AfterState:  marshalState(after),
		ClientIP:    actor.ClientIP,
		UserAgent:   agent,
	}
	if err := r.repo.Create(ctx, entry); err != nil {
		metrics.ObserveAuditWriteFailure()
		log.Printf("audit: dropping entry for %s %s: %v", action, category, err)
	}
}

func marshalState(state map[string]any) datatypes.JSON {
	if state == nil {
		return nil
	}
	data, err := json.Marshal(state)
	if err != nil {
		log.Printf("audit: marshal state: %v", err)
		return nil
	}
	return datatypes.JSON(data)
}

// Create records an entity creation with its post-commit snapshot.
func (r *Recorder) Create(ctx context.Context, actor Actor, category string, recordID uint, description string, after map[string]any) {
	r.Record(ctx, actor, category, model.ActionCreate, &recordID, description, nil, after)
}

// Update records an entity update with before and after snapshots.
func (r *Recorder) Update(ctx context.Context, actor Actor, category string, recordID uint, description string, before, after map[string]any) {
	r.Record(ctx, actor, category, model.ActionUpdate, &recordID, description, before, after)
}

// Delete records an entity deletion with its prior snapshot.
func (r *Recorder) Delete(ctx context.Context, actor Actor, category string, recordID uint, description string, before map[string]any) {
	r.Record(ctx, actor, category, model.ActionDelete, &recordID, description, before, nil)
}

// FileAction records an upload, download or deletion of a file. The related
// category names the logical table the file belongs to, when known.
func (r *Recorder) FileAction(ctx context.Context, actor Actor, action model.AuditAction, filename, relatedCategory string, recordID *uint) {
	var verb string
	switch action {
	case model.ActionUploadFile:
		verb = "uploaded"
	case model.ActionDownloadFile:
		verb = "downloaded"
	case model.ActionDeleteFile:
		verb = "deleted"
	default:
		verb = "processed"
	}
	description := verb + " file: " + filename
	if relatedCategory != "" {
		description += " (related to " + relatedCategory + ")"
	}
	state := map[string]any{"filename": filename}
	if relatedCategory != "" {
		state["related_category"] = relatedCategory
	}
	r.Record(ctx, actor, CategoryFiles, action, recordID, description, nil, state)
}

// Login records a session start. The success flag is carried in the entry so
// the call site decides whether failed attempts get audited at all.
func (r *Recorder) Login(ctx context.Context, actor Actor, success bool) {
	description := "Login successful"
	if !success {
		description = "Login failed"
	}
	r.Record(ctx, actor, CategorySessions, model.ActionLogin, nil, description, nil, map[string]any{"success": success})
}

// Logout records a session end.
func (r *Recorder) Logout(ctx context.Context, actor Actor) {
	r.Record(ctx, actor, CategorySessions, model.ActionLogout, nil, "Logged out", nil, nil)
}
