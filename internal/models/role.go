package models

import (
	"time"
)

// Role represents a named bundle of permissions
// (administrator, content-manager, venue-owner, venue-manager)
type Role struct {
	ID          int       `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null;size:50" json:"name"`
	DisplayName string    `gorm:"not null;size:100" json:"display_name"`
	Description string    `gorm:"size:500" json:"description,omitempty"`
	IsActive    bool      `gorm:"not null;default:true;index" json:"is_active"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`

	RolePermissions []RolePermission `gorm:"foreignKey:RoleID" json:"role_permissions,omitempty"`
	UserRoles       []UserRole       `gorm:"foreignKey:RoleID" json:"user_roles,omitempty"`
	VenueRoles      []VenueRole      `gorm:"foreignKey:RoleID" json:"venue_roles,omitempty"`
}
