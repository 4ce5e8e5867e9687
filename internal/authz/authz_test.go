package authz

import "testing"

func TestHasPermissionExactMatch(t *testing.T) {
	granted := []string{"read:venues", "write:specials"}

	tests := []struct {
		name     string
		required string
		want     bool
	}{
		{"granted code", "read:venues", true},
		{"other granted code", "write:specials", true},
		{"missing code", "delete:venues", false},
		{"case differs", "Read:Venues", false},
		{"uppercase claim does not fold", "READ:VENUES", false},
		{"prefix does not match", "read:venue", false},
		{"superset does not match", "read:venues-extra", false},
		{"empty required", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasPermission(granted, tt.required); got != tt.want {
				t.Errorf("HasPermission(%v, %q) = %v, want %v", granted, tt.required, got, tt.want)
			}
		})
	}
}

func TestHasPermissionEmptyGrants(t *testing.T) {
	for _, p := range Permissions() {
		if HasPermission(nil, p.Name) {
			t.Errorf("HasPermission(nil, %q) = true, want false", p.Name)
		}
		if HasPermission([]string{}, p.Name) {
			t.Errorf("HasPermission([], %q) = true, want false", p.Name)
		}
	}
}

// Holding admin:system must not implicitly satisfy any other code.
func TestHasPermissionNoHierarchy(t *testing.T) {
	granted := []string{PermAdminSystem}
	for _, p := range Permissions() {
		want := p.Name == PermAdminSystem
		if got := HasPermission(granted, p.Name); got != want {
			t.Errorf("HasPermission([admin:system], %q) = %v, want %v", p.Name, got, want)
		}
	}
}

// A principal holding exactly one catalog code is authorized for that code
// and denied for every other.
func TestSinglePermissionIsolation(t *testing.T) {
	for _, held := range Permissions() {
		granted := []string{held.Name}
		for _, required := range Permissions() {
			want := held.Name == required.Name
			if got := HasPermission(granted, required.Name); got != want {
				t.Errorf("holding %q, required %q: got %v, want %v", held.Name, required.Name, got, want)
			}
		}
	}
}
