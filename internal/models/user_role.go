package models

import (
	"time"
)

// UserRole is a global role grant to a user. Revoking a grant soft-deactivates
// the row (is_active=false plus the deactivation audit pair); rows are never
// hard-deleted except by cascading deletion of the parent user.
//
// At most one active row may exist per (user_id, role_id); enforced by a
// partial unique index created in db.Migrate.
type UserRole struct {
	ID     int64 `gorm:"primarykey" json:"id"`
	UserID int64 `gorm:"not null;index" json:"user_id"`
	RoleID int   `gorm:"not null" json:"role_id"`

	AssignedAt          time.Time  `gorm:"not null" json:"assigned_at"`
	AssignedByUserID    *int64     `json:"assigned_by_user_id,omitempty"`
	IsActive            bool       `gorm:"not null;default:true" json:"is_active"`
	DeactivatedAt       *time.Time `json:"deactivated_at,omitempty"`
	DeactivatedByUserID *int64     `json:"deactivated_by_user_id,omitempty"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Role *Role `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"role,omitempty"`
}
