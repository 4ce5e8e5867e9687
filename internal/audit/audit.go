package audit

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/models"
)

// LogAction records an audit log entry
func LogAction(db *gorm.DB, userID int64, action, resource string, details interface{}) error {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		detailsJSON = []byte("{}")
	}

	log := models.AuditLog{
		UserID:      userID,
		Action:      action,
		Resource:    resource,
		DetailsJSON: string(detailsJSON),
		Timestamp:   time.Now().UTC(),
	}

	return db.Create(&log).Error
}

// Audit actions constants
const (
	ActionAssignUserRole  = "assign_user_role"
	ActionRevokeUserRole  = "revoke_user_role"
	ActionAssignVenueRole = "assign_venue_role"
	ActionRevokeVenueRole = "revoke_venue_role"
)
