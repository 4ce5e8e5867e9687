package models

// RolePermission is the many-to-many join between roles and permissions.
// Rows are removed together with either parent.
type RolePermission struct {
	RoleID       int `gorm:"primarykey" json:"role_id"`
	PermissionID int `gorm:"primarykey" json:"permission_id"`

	Role       *Role       `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"role,omitempty"`
	Permission *Permission `gorm:"foreignKey:PermissionID;constraint:OnDelete:CASCADE" json:"permission,omitempty"`
}
