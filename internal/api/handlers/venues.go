package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/models"
)

// VenueHandler serves venue reads
type VenueHandler struct {
	db *gorm.DB
}

// NewVenueHandler builds a VenueHandler
func NewVenueHandler(db *gorm.DB) *VenueHandler {
	return &VenueHandler{db: db}
}

// ListVenues returns all active venues
func (h *VenueHandler) ListVenues(c *gin.Context) {
	var venues []models.Venue
	if err := h.db.Where("is_active").Order("name").Find(&venues).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": venues})
}
