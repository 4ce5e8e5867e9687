package models

import (
	"time"
)

// User represents a platform user, linked to an external identity provider
type User struct {
	ID          int64      `gorm:"primarykey" json:"id"`
	ProviderID  string     `gorm:"uniqueIndex;not null;size:255" json:"provider_id"`
	Email       string     `gorm:"uniqueIndex;not null;size:255" json:"email"`
	FirstName   string     `gorm:"size:100" json:"first_name,omitempty"`
	LastName    string     `gorm:"size:100" json:"last_name,omitempty"`
	DisplayName string     `gorm:"size:100" json:"display_name,omitempty"`
	IsActive    bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	VenueRoles []VenueRole `gorm:"foreignKey:UserID" json:"venue_roles,omitempty"`
	UserRoles  []UserRole  `gorm:"foreignKey:UserID" json:"user_roles,omitempty"`
}
