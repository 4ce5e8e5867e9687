package authz

import (
	"errors"
	"testing"
)

func TestNewRequirement(t *testing.T) {
	tests := []struct {
		name       string
		permission string
		wantErr    bool
	}{
		{"valid code", "read:venues", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"tab and newline", "\t\n", true},
		{"non-permission name still constructs", "some-policy", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewRequirement(tt.permission)
			if tt.wantErr {
				if !errors.Is(err, ErrEmptyPermission) {
					t.Fatalf("NewRequirement(%q) error = %v, want ErrEmptyPermission", tt.permission, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRequirement(%q) unexpected error: %v", tt.permission, err)
			}
			if req.Permission != tt.permission {
				t.Errorf("requirement permission = %q, want %q", req.Permission, tt.permission)
			}
		})
	}
}

func TestMustRequirementPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustRequirement(\"\") did not panic")
		}
	}()
	MustRequirement("")
}

func TestRequirementSatisfied(t *testing.T) {
	req := MustRequirement("delete:venues")

	if req.Satisfied([]string{"read:venues", "write:specials"}) {
		t.Error("requirement satisfied without the required code")
	}
	if !req.Satisfied([]string{"read:venues", "delete:venues"}) {
		t.Error("requirement not satisfied despite the required code")
	}
	if req.Satisfied(nil) {
		t.Error("requirement satisfied with no claims")
	}
}
