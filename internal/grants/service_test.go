package grants

import (
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/config"
	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/db"
	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/models"
)

func testService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	database, err := db.New(config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "grants-test.db"),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return NewService(database), database
}

func createUser(t *testing.T, database *gorm.DB, providerID, email string) *models.User {
	t.Helper()
	user := models.User{ProviderID: providerID, Email: email, IsActive: true}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

func createVenue(t *testing.T, database *gorm.DB, name string) *models.Venue {
	t.Helper()
	venue := models.Venue{Name: name, IsActive: true}
	if err := database.Create(&venue).Error; err != nil {
		t.Fatalf("create venue: %v", err)
	}
	return &venue
}

func TestAssignUserRole(t *testing.T) {
	service, database := testService(t)
	user := createUser(t, database, "auth0|u1", "u1@test.local")

	grant, err := service.AssignUserRole(user.ID, 1, nil)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if !grant.IsActive {
		t.Error("new grant is not active")
	}
	if grant.AssignedAt.IsZero() {
		t.Error("assigned_at not set")
	}

	// Second active grant for the same key must be rejected
	if _, err := service.AssignUserRole(user.ID, 1, nil); !errors.Is(err, ErrAlreadyAssigned) {
		t.Errorf("duplicate assign error = %v, want ErrAlreadyAssigned", err)
	}
}

func TestAssignUserRoleUnknownRole(t *testing.T) {
	service, database := testService(t)
	user := createUser(t, database, "auth0|u2", "u2@test.local")

	if _, err := service.AssignUserRole(user.ID, 99, nil); !errors.Is(err, ErrUnknownRole) {
		t.Errorf("assign unknown role error = %v, want ErrUnknownRole", err)
	}
}

func TestRevokeUserRole(t *testing.T) {
	service, database := testService(t)
	user := createUser(t, database, "auth0|u3", "u3@test.local")
	admin := createUser(t, database, "auth0|admin", "admin@test.local")

	if _, err := service.AssignUserRole(user.ID, 2, &admin.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := service.RevokeUserRole(user.ID, 2, &admin.ID); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	// Revoke soft-deactivates: the row survives with the audit pair set
	var row models.UserRole
	if err := database.Where("user_id = ? AND role_id = ?", user.ID, 2).First(&row).Error; err != nil {
		t.Fatalf("load revoked grant: %v", err)
	}
	if row.IsActive {
		t.Error("revoked grant still active")
	}
	if row.DeactivatedAt == nil || row.DeactivatedByUserID == nil {
		t.Error("deactivation audit pair not set")
	}

	// Revoking again finds no active grant
	if err := service.RevokeUserRole(user.ID, 2, &admin.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second revoke error = %v, want ErrNotFound", err)
	}

	// Re-assigning after revoke is allowed
	if _, err := service.AssignUserRole(user.ID, 2, &admin.ID); err != nil {
		t.Errorf("re-assign after revoke: %v", err)
	}
}

func TestAssignVenueRole(t *testing.T) {
	service, database := testService(t)
	user := createUser(t, database, "auth0|u4", "u4@test.local")
	venue := createVenue(t, database, "The Spot")
	other := createVenue(t, database, "The Other Spot")

	if _, err := service.AssignVenueRole(user.ID, venue.ID, 3, nil); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := service.AssignVenueRole(user.ID, venue.ID, 3, nil); !errors.Is(err, ErrAlreadyAssigned) {
		t.Errorf("duplicate assign error = %v, want ErrAlreadyAssigned", err)
	}

	// The same role at a different venue is a distinct grant
	if _, err := service.AssignVenueRole(user.ID, other.ID, 3, nil); err != nil {
		t.Errorf("assign at second venue: %v", err)
	}
}

func TestRevokeVenueRole(t *testing.T) {
	service, database := testService(t)
	user := createUser(t, database, "auth0|u5", "u5@test.local")
	venue := createVenue(t, database, "The Spot")

	if _, err := service.AssignVenueRole(user.ID, venue.ID, 4, nil); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := service.RevokeVenueRole(user.ID, venue.ID, 4, nil); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if err := service.RevokeVenueRole(user.ID, venue.ID, 4, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("second revoke error = %v, want ErrNotFound", err)
	}
}

func TestGlobalPermissions(t *testing.T) {
	service, database := testService(t)
	user := createUser(t, database, "auth0|u6", "u6@test.local")

	perms, err := service.GlobalPermissions(user.ID)
	if err != nil {
		t.Fatalf("global permissions: %v", err)
	}
	if len(perms) != 0 {
		t.Errorf("user with no grants has permissions %v", perms)
	}

	if _, err := service.AssignUserRole(user.ID, 1, nil); err != nil {
		t.Fatalf("assign administrator: %v", err)
	}
	perms, err = service.GlobalPermissions(user.ID)
	if err != nil {
		t.Fatalf("global permissions: %v", err)
	}
	if len(perms) != 35 {
		t.Errorf("administrator expands to %d permissions, want 35", len(perms))
	}
}

func TestVenuePermissionsScoping(t *testing.T) {
	service, database := testService(t)
	user := createUser(t, database, "auth0|u7", "u7@test.local")
	venue := createVenue(t, database, "The Spot")
	other := createVenue(t, database, "The Other Spot")

	if _, err := service.AssignVenueRole(user.ID, venue.ID, 4, nil); err != nil {
		t.Fatalf("assign venue-manager: %v", err)
	}

	perms, err := service.VenuePermissions(user.ID, venue.ID)
	if err != nil {
		t.Fatalf("venue permissions: %v", err)
	}
	if len(perms) != 14 {
		t.Errorf("venue-manager expands to %d permissions, want 14", len(perms))
	}

	// No grants at the other venue
	perms, err = service.VenuePermissions(user.ID, other.ID)
	if err != nil {
		t.Fatalf("venue permissions: %v", err)
	}
	if len(perms) != 0 {
		t.Errorf("ungranted venue yields permissions %v", perms)
	}
}

func TestEffectivePermissionsDeduplicates(t *testing.T) {
	service, database := testService(t)
	user := createUser(t, database, "auth0|u8", "u8@test.local")
	venue := createVenue(t, database, "The Spot")

	// venue-owner and venue-manager overlap heavily; the union must dedupe
	if _, err := service.AssignVenueRole(user.ID, venue.ID, 3, nil); err != nil {
		t.Fatalf("assign venue-owner: %v", err)
	}
	if _, err := service.AssignVenueRole(user.ID, venue.ID, 4, nil); err != nil {
		t.Fatalf("assign venue-manager: %v", err)
	}

	perms, err := service.EffectivePermissions(user.ID)
	if err != nil {
		t.Fatalf("effective permissions: %v", err)
	}
	// venue-manager grants are a subset of venue-owner's
	if len(perms) != 21 {
		t.Errorf("effective permissions = %d codes, want 21", len(perms))
	}

	seen := make(map[string]bool)
	for _, p := range perms {
		if seen[p] {
			t.Errorf("duplicate code %q in effective permissions", p)
		}
		seen[p] = true
	}
}

func TestEffectivePermissionsIgnoresRevoked(t *testing.T) {
	service, database := testService(t)
	user := createUser(t, database, "auth0|u9", "u9@test.local")

	if _, err := service.AssignUserRole(user.ID, 1, nil); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := service.RevokeUserRole(user.ID, 1, nil); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	perms, err := service.EffectivePermissions(user.ID)
	if err != nil {
		t.Fatalf("effective permissions: %v", err)
	}
	if len(perms) != 0 {
		t.Errorf("revoked grant still expands to %v", perms)
	}
}

func TestGrantWritesAuditTrail(t *testing.T) {
	service, database := testService(t)
	user := createUser(t, database, "auth0|u10", "u10@test.local")
	admin := createUser(t, database, "auth0|admin2", "admin2@test.local")

	if _, err := service.AssignUserRole(user.ID, 2, &admin.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}

	var count int64
	database.Model(&models.AuditLog{}).Where("action = ?", "assign_user_role").Count(&count)
	if count != 1 {
		t.Errorf("audit log has %d assign_user_role entries, want 1", count)
	}
}

func TestUserByProviderID(t *testing.T) {
	service, database := testService(t)
	created := createUser(t, database, "auth0|lookup", "lookup@test.local")

	user, err := service.UserByProviderID("auth0|lookup")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("lookup returned user %d, want %d", user.ID, created.ID)
	}

	if _, err := service.UserByProviderID("auth0|missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing user error = %v, want ErrNotFound", err)
	}
}
