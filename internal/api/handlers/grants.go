package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/auth"
	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/grants"
)

// GrantHandler exposes role assignment and revocation
type GrantHandler struct {
	service *grants.Service
}

// NewGrantHandler builds a GrantHandler
func NewGrantHandler(service *grants.Service) *GrantHandler {
	return &GrantHandler{service: service}
}

type assignUserRoleRequest struct {
	RoleID int `json:"role_id" binding:"required"`
}

type assignVenueRoleRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
	RoleID int   `json:"role_id" binding:"required"`
}

// AssignUserRole grants a global role to a user
func (h *GrantHandler) AssignUserRole(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req assignUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	grant, err := h.service.AssignUserRole(userID, req.RoleID, h.actor(c))
	if err != nil {
		h.writeGrantError(c, err)
		return
	}
	c.JSON(http.StatusCreated, grant)
}

// RevokeUserRole revokes a global role from a user
func (h *GrantHandler) RevokeUserRole(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	roleID, ok := pathID(c, "roleID")
	if !ok {
		return
	}

	if err := h.service.RevokeUserRole(userID, int(roleID), h.actor(c)); err != nil {
		h.writeGrantError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AssignVenueRole grants a venue-scoped role to a user
func (h *GrantHandler) AssignVenueRole(c *gin.Context) {
	venueID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req assignVenueRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	grant, err := h.service.AssignVenueRole(req.UserID, venueID, req.RoleID, h.actor(c))
	if err != nil {
		h.writeGrantError(c, err)
		return
	}
	c.JSON(http.StatusCreated, grant)
}

// RevokeVenueRole revokes a venue-scoped role from a user
func (h *GrantHandler) RevokeVenueRole(c *gin.Context) {
	venueID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userID")
	if !ok {
		return
	}
	roleID, ok := pathID(c, "roleID")
	if !ok {
		return
	}

	if err := h.service.RevokeVenueRole(userID, venueID, int(roleID), h.actor(c)); err != nil {
		h.writeGrantError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetUserPermissions returns the permission codes a user's active grants
// expand to. This is the claims-issuance view, not a request-time check.
func (h *GrantHandler) GetUserPermissions(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	permissions, err := h.service.EffectivePermissions(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": userID, "permissions": permissions})
}

// actor maps the authenticated principal onto a user ID for the audit trail
func (h *GrantHandler) actor(c *gin.Context) *int64 {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return nil
	}
	user, err := h.service.UserByProviderID(principal.Subject)
	if err != nil {
		return nil
	}
	return &user.ID
}

func (h *GrantHandler) writeGrantError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, grants.ErrAlreadyAssigned):
		c.JSON(http.StatusConflict, gin.H{"error": "role_already_assigned", "message": "An active assignment already exists"})
	case errors.Is(err, grants.ErrUnknownRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown_role", "message": "Role does not exist"})
	case errors.Is(err, grants.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "invalid " + name})
		return 0, false
	}
	return id, true
}
