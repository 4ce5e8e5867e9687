package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/auth"
	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/grants"
)

// TokenHandler mints local development tokens. In production the identity
// provider mints tokens and this handler is never registered.
type TokenHandler struct {
	authenticator *auth.LocalAuthenticator
	service       *grants.Service
}

// NewTokenHandler builds a TokenHandler
func NewTokenHandler(authenticator *auth.LocalAuthenticator, service *grants.Service) *TokenHandler {
	return &TokenHandler{authenticator: authenticator, service: service}
}

type tokenRequest struct {
	ProviderID string `json:"provider_id" binding:"required"`
}

type tokenResponse struct {
	Token       string   `json:"token"`
	Permissions []string `json:"permissions"`
}

// Mint issues a token for a registered user, with the permissions claim
// expanded from the user's active role grants (global and venue-scoped).
func (h *TokenHandler) Mint(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	user, err := h.service.UserByProviderID(req.ProviderID)
	if err != nil {
		if errors.Is(err, grants.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
		return
	}

	permissions, err := h.service.EffectivePermissions(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
		return
	}

	token, err := h.authenticator.Mint(user.ProviderID, permissions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: token, Permissions: permissions})
}
