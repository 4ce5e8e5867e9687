package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// principalInjector stands in for the bearer middleware in these tests
func principalInjector(permissions []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.PrincipalContextKey, &auth.Principal{
			Subject:     "auth0|test",
			Permissions: permissions,
		})
		c.Next()
	}
}

func protectedRouter(permissions []string, required string) *gin.Engine {
	router := gin.New()
	router.GET("/protected",
		principalInjector(permissions),
		RequirePermission(required),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	return router
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name        string
		permissions []string
		required    string
		wantStatus  int
	}{
		{"exact match", []string{"read:venues"}, "read:venues", http.StatusOK},
		{"among others", []string{"read:venues", "write:specials"}, "write:specials", http.StatusOK},
		{"missing code", []string{"read:venues", "write:specials"}, "delete:venues", http.StatusForbidden},
		{"no permissions", nil, "read:venues", http.StatusForbidden},
		{"case sensitive", []string{"Read:Venues"}, "read:venues", http.StatusForbidden},
		{"no hierarchy from admin", []string{"admin:system"}, "read:venues", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := protectedRouter(tt.permissions, tt.required)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestForbiddenBody(t *testing.T) {
	router := protectedRouter([]string{"read:venues", "write:specials"}, "delete:venues")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["error"] != "insufficient_permissions" {
		t.Errorf("error = %q, want insufficient_permissions", body["error"])
	}
	if body["error_description"] != "Insufficient permissions to access resource" {
		t.Errorf("error_description = %q", body["error_description"])
	}
	if body["message"] != "Permission denied" {
		t.Errorf("message = %q, want Permission denied", body["message"])
	}
}

func TestRequirePermissionWithoutPrincipal(t *testing.T) {
	router := gin.New()
	router.GET("/protected",
		RequirePermission("read:venues"),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

// A malformed policy name must fail at route registration, not per-request
func TestRequirePermissionPanicsOnEmptyCode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("RequirePermission(\"\") did not panic")
		}
	}()
	RequirePermission("")
}

func TestRequirePolicyNamed(t *testing.T) {
	RegisterNamedPolicy("always-allow", func(c *gin.Context) { c.Next() })

	router := gin.New()
	router.GET("/open",
		RequirePolicy("always-allow"),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestRequirePolicyUnknownNamedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("unknown named policy did not panic at registration")
		}
	}()
	RequirePolicy("no-such-policy")
}
