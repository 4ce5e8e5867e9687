package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/authz"
	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/models"
)

// SeedCatalog writes the permission catalog, built-in roles, and the
// role->permission matrix into the reference tables. The authz catalog is the
// single source of truth; rows are upserted by primary key so re-running is a
// no-op for unchanged data and updates display metadata in place.
func SeedCatalog(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		seededAt := time.Unix(0, 0).UTC()

		permissions := make([]models.Permission, 0, len(authz.Permissions()))
		for _, def := range authz.Permissions() {
			permissions = append(permissions, models.Permission{
				ID:          def.ID,
				Name:        def.Name,
				DisplayName: def.DisplayName,
				Description: def.Description,
				Category:    def.Category,
				Action:      def.Action,
				Resource:    def.Resource,
				IsActive:    true,
				SortOrder:   def.SortOrder,
				CreatedAt:   seededAt,
			})
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "display_name", "description", "category", "action", "resource", "sort_order"}),
		}).Create(&permissions).Error
		if err != nil {
			return fmt.Errorf("seed permissions: %w", err)
		}

		roles := make([]models.Role, 0, len(authz.Roles()))
		for _, def := range authz.Roles() {
			roles = append(roles, models.Role{
				ID:          def.ID,
				Name:        def.Name,
				DisplayName: def.DisplayName,
				Description: def.Description,
				IsActive:    true,
				SortOrder:   def.SortOrder,
				CreatedAt:   seededAt,
			})
		}
		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "display_name", "description", "sort_order"}),
		}).Create(&roles).Error
		if err != nil {
			return fmt.Errorf("seed roles: %w", err)
		}

		var assignments []models.RolePermission
		for _, role := range authz.Roles() {
			for _, permID := range authz.RolePermissionIDs(role.ID) {
				assignments = append(assignments, models.RolePermission{
					RoleID:       role.ID,
					PermissionID: permID,
				})
			}
		}
		err = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&assignments).Error
		if err != nil {
			return fmt.Errorf("seed role permissions: %w", err)
		}

		slog.Info("Permission catalog seeded",
			"permissions", len(permissions),
			"roles", len(roles),
			"assignments", len(assignments))
		return nil
	})
}
