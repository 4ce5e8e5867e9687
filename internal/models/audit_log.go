package models

import (
	"time"
)

// AuditLog records grant and revoke actions for compliance
type AuditLog struct {
	ID          int64     `gorm:"primarykey" json:"id"`
	UserID      int64     `gorm:"index" json:"user_id"`
	Action      string    `gorm:"not null" json:"action"`        // e.g., "assign_user_role", "revoke_venue_role"
	Resource    string    `gorm:"not null" json:"resource"`      // e.g., "user:123", "venue:45"
	DetailsJSON string    `gorm:"type:text" json:"details_json"` // Additional context in JSON
	Timestamp   time.Time `gorm:"not null;index" json:"timestamp"`
}
