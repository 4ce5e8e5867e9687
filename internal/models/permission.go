package models

import (
	"time"
)

// Permission represents one grantable capability, named "{action}:{resource}"
type Permission struct {
	ID          int       `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null;size:100" json:"name"`
	DisplayName string    `gorm:"not null;size:200" json:"display_name"`
	Description string    `gorm:"size:500" json:"description,omitempty"`
	Category    string    `gorm:"not null;size:50;uniqueIndex:idx_permissions_category_action_resource" json:"category"`
	Action      string    `gorm:"not null;size:50;uniqueIndex:idx_permissions_category_action_resource" json:"action"`
	Resource    string    `gorm:"not null;size:50;uniqueIndex:idx_permissions_category_action_resource" json:"resource"`
	IsActive    bool      `gorm:"not null;default:true;index" json:"is_active"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`

	RolePermissions []RolePermission `gorm:"foreignKey:PermissionID" json:"role_permissions,omitempty"`
}
