package model

import "time"

// Role is the administrative tier of a user. Super admin and admin are
// ordered above editor and viewer; editor and viewer are incomparable and
// each independently configurable through a PermissionOverride row.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleEditor     Role = "editor"
	RoleViewer     Role = "viewer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// AdminTier reports whether r carries full administrative capabilities.
func (r Role) AdminTier() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// User represents an authenticated user in the system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:100;not null"`
	Email        string    `json:"email" gorm:"size:255"`
	FullName     string    `json:"full_name" gorm:"size:255"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;default:'viewer'"`
	Active       bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Override *PermissionOverride `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// UserPatch carries a partial user update. Nil fields are left untouched.
type UserPatch struct {
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Role     *Role   `json:"role"`
	Active   *bool   `json:"active"`
	Password *string `json:"password"`
}

// Apply merges the patch into u field by field. The password is handled by
// the caller because it must be hashed first.
func (p *UserPatch) Apply(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Active != nil {
		u.Active = *p.Active
	}
}
