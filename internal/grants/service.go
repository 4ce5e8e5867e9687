// Package grants manages role assignment records: global user roles and
// venue-scoped roles. Grants are soft-deactivated on revoke so the audit
// history is preserved; the one-active-row-per-key invariant is enforced by
// partial unique indexes, not application-level locking.
//
// Grant expansion into permission codes happens here, at claims-issuance
// time. The request-time permission check never reads these tables.
package grants

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/audit"
	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/authz"
	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/models"
)

var (
	// ErrNotFound indicates the requested grant or record does not exist
	ErrNotFound = errors.New("grants: not found")
	// ErrAlreadyAssigned indicates an active grant already exists for the key
	ErrAlreadyAssigned = errors.New("grants: role already assigned")
	// ErrUnknownRole indicates the role is not in the catalog
	ErrUnknownRole = errors.New("grants: unknown role")
)

// Service orchestrates grant and revoke operations
type Service struct {
	db *gorm.DB
}

// NewService constructs a Service backed by the given database
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// AssignUserRole creates an active global role grant for a user.
// Returns ErrAlreadyAssigned if an active grant for the same (user, role)
// already exists.
func (s *Service) AssignUserRole(userID int64, roleID int, assignedBy *int64) (*models.UserRole, error) {
	if _, ok := roleByID(roleID); !ok {
		return nil, ErrUnknownRole
	}

	grant := models.UserRole{
		UserID:           userID,
		RoleID:           roleID,
		AssignedAt:       time.Now().UTC(),
		AssignedByUserID: assignedBy,
		IsActive:         true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&grant).Error; err != nil {
			return translateDuplicate(err)
		}
		return audit.LogAction(tx, actorID(assignedBy), audit.ActionAssignUserRole,
			fmt.Sprintf("user:%d", userID), map[string]any{"role_id": roleID})
	})
	if err != nil {
		return nil, err
	}

	slog.Info("User role assigned", "user_id", userID, "role_id", roleID)
	return &grant, nil
}

// RevokeUserRole soft-deactivates the active global grant for (user, role).
// Returns ErrNotFound if no active grant exists.
func (s *Service) RevokeUserRole(userID int64, roleID int, revokedBy *int64) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		result := tx.Model(&models.UserRole{}).
			Where("user_id = ? AND role_id = ? AND is_active", userID, roleID).
			Updates(map[string]any{
				"is_active":              false,
				"deactivated_at":         now,
				"deactivated_by_user_id": revokedBy,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return audit.LogAction(tx, actorID(revokedBy), audit.ActionRevokeUserRole,
			fmt.Sprintf("user:%d", userID), map[string]any{"role_id": roleID})
	})
	if err != nil {
		return err
	}

	slog.Info("User role revoked", "user_id", userID, "role_id", roleID)
	return nil
}

// AssignVenueRole creates an active venue-scoped role grant.
// Returns ErrAlreadyAssigned if an active grant for the same
// (user, venue, role) already exists.
func (s *Service) AssignVenueRole(userID, venueID int64, roleID int, assignedBy *int64) (*models.VenueRole, error) {
	if _, ok := roleByID(roleID); !ok {
		return nil, ErrUnknownRole
	}

	grant := models.VenueRole{
		UserID:           userID,
		VenueID:          venueID,
		RoleID:           roleID,
		AssignedAt:       time.Now().UTC(),
		AssignedByUserID: assignedBy,
		IsActive:         true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&grant).Error; err != nil {
			return translateDuplicate(err)
		}
		return audit.LogAction(tx, actorID(assignedBy), audit.ActionAssignVenueRole,
			fmt.Sprintf("venue:%d", venueID), map[string]any{"user_id": userID, "role_id": roleID})
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Venue role assigned", "user_id", userID, "venue_id", venueID, "role_id", roleID)
	return &grant, nil
}

// RevokeVenueRole soft-deactivates the active grant for (user, venue, role).
// Returns ErrNotFound if no active grant exists.
func (s *Service) RevokeVenueRole(userID, venueID int64, roleID int, revokedBy *int64) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		result := tx.Model(&models.VenueRole{}).
			Where("user_id = ? AND venue_id = ? AND role_id = ? AND is_active", userID, venueID, roleID).
			Updates(map[string]any{
				"is_active":              false,
				"deactivated_at":         now,
				"deactivated_by_user_id": revokedBy,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return audit.LogAction(tx, actorID(revokedBy), audit.ActionRevokeVenueRole,
			fmt.Sprintf("venue:%d", venueID), map[string]any{"user_id": userID, "role_id": roleID})
	})
	if err != nil {
		return err
	}

	slog.Info("Venue role revoked", "user_id", userID, "venue_id", venueID, "role_id", roleID)
	return nil
}

// GlobalPermissions expands a user's active global role grants into a
// deduplicated, sorted list of permission codes.
func (s *Service) GlobalPermissions(userID int64) ([]string, error) {
	var roleIDs []int
	err := s.db.Model(&models.UserRole{}).
		Where("user_id = ? AND is_active", userID).
		Pluck("role_id", &roleIDs).Error
	if err != nil {
		return nil, fmt.Errorf("load user roles: %w", err)
	}
	return expandRoles(roleIDs), nil
}

// VenuePermissions expands a user's active role grants for one venue into a
// deduplicated, sorted list of permission codes.
func (s *Service) VenuePermissions(userID, venueID int64) ([]string, error) {
	var roleIDs []int
	err := s.db.Model(&models.VenueRole{}).
		Where("user_id = ? AND venue_id = ? AND is_active", userID, venueID).
		Pluck("role_id", &roleIDs).Error
	if err != nil {
		return nil, fmt.Errorf("load venue roles: %w", err)
	}
	return expandRoles(roleIDs), nil
}

// EffectivePermissions expands all of a user's active grants, global and
// venue-scoped, into one deduplicated, sorted list of permission codes.
// This is what a minted token's permissions claim carries.
func (s *Service) EffectivePermissions(userID int64) ([]string, error) {
	var roleIDs []int
	err := s.db.Model(&models.UserRole{}).
		Where("user_id = ? AND is_active", userID).
		Pluck("role_id", &roleIDs).Error
	if err != nil {
		return nil, fmt.Errorf("load user roles: %w", err)
	}

	var venueRoleIDs []int
	err = s.db.Model(&models.VenueRole{}).
		Where("user_id = ? AND is_active", userID).
		Pluck("role_id", &venueRoleIDs).Error
	if err != nil {
		return nil, fmt.Errorf("load venue roles: %w", err)
	}

	return expandRoles(append(roleIDs, venueRoleIDs...)), nil
}

// UserByProviderID loads a user by external identity-provider subject
func (s *Service) UserByProviderID(providerID string) (*models.User, error) {
	var user models.User
	err := s.db.Where("provider_id = ?", providerID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return &user, nil
}

func expandRoles(roleIDs []int) []string {
	seen := make(map[string]struct{})
	for _, id := range roleIDs {
		for _, code := range authz.RolePermissions(id) {
			seen[code] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for code := range seen {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

func roleByID(roleID int) (authz.RoleDef, bool) {
	for _, r := range authz.Roles() {
		if r.ID == roleID {
			return r, true
		}
	}
	return authz.RoleDef{}, false
}

func actorID(actor *int64) int64 {
	if actor == nil {
		return 0
	}
	return *actor
}

// translateDuplicate maps a unique-index violation onto ErrAlreadyAssigned.
// The partial unique indexes only cover active rows, so this fires exactly
// when a second active grant is attempted for the same key.
func translateDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyAssigned
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate key") {
		return ErrAlreadyAssigned
	}
	return err
}
