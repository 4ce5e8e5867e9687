package models

import (
	"time"
)

// Venue represents a venue profile. Only the fields the authorization and
// grant flows depend on are modeled here.
type Venue struct {
	ID        int64     `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	VenueRoles []VenueRole `gorm:"foreignKey:VenueID" json:"venue_roles,omitempty"`
}
