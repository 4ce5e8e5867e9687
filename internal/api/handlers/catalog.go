package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/models"
)

// CatalogHandler serves the seeded permission and role reference data
type CatalogHandler struct {
	db *gorm.DB
}

// NewCatalogHandler builds a CatalogHandler
func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// ListPermissions returns the permission catalog in sort order
func (h *CatalogHandler) ListPermissions(c *gin.Context) {
	var permissions []models.Permission
	if err := h.db.Order("sort_order").Find(&permissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"permissions": permissions})
}

// ListRoles returns the built-in roles in sort order
func (h *CatalogHandler) ListRoles(c *gin.Context) {
	var roles []models.Role
	if err := h.db.Order("sort_order").Find(&roles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"roles": roles})
}

// GetRolePermissions returns the permissions granted by one role
func (h *CatalogHandler) GetRolePermissions(c *gin.Context) {
	var role models.Role
	err := h.db.Preload("RolePermissions.Permission").
		Where("name = ?", c.Param("name")).
		First(&role).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
		return
	}

	permissions := make([]models.Permission, 0, len(role.RolePermissions))
	for _, rp := range role.RolePermissions {
		if rp.Permission != nil {
			permissions = append(permissions, *rp.Permission)
		}
	}
	c.JSON(http.StatusOK, gin.H{"role": role.Name, "permissions": permissions})
}
