package models

import (
	"time"
)

// VenueRole is a role grant scoped to a single venue, distinct from the global
// UserRole grants. The request-time permission check never reads this table;
// venue scoping is reflected in the permission claims minted for the user.
//
// At most one active row may exist per (user_id, venue_id, role_id); enforced
// by a partial unique index created in db.Migrate. The role FK is RESTRICT so
// deleting a role cannot silently drop venue assignments.
type VenueRole struct {
	ID      int64 `gorm:"primarykey" json:"id"`
	UserID  int64 `gorm:"not null;index" json:"user_id"`
	VenueID int64 `gorm:"not null" json:"venue_id"`
	RoleID  int   `gorm:"not null" json:"role_id"`

	AssignedAt          time.Time  `gorm:"not null" json:"assigned_at"`
	AssignedByUserID    *int64     `json:"assigned_by_user_id,omitempty"`
	IsActive            bool       `gorm:"not null;default:true" json:"is_active"`
	DeactivatedAt       *time.Time `json:"deactivated_at,omitempty"`
	DeactivatedByUserID *int64     `json:"deactivated_by_user_id,omitempty"`

	User  *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Venue *Venue `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"venue,omitempty"`
	Role  *Role  `gorm:"foreignKey:RoleID;constraint:OnDelete:RESTRICT" json:"role,omitempty"`
}
