package authz

import (
	"testing"
)

func TestResolvePolicy(t *testing.T) {
	tests := []struct {
		name     string
		policy   string
		wantKind PolicyKind
	}{
		{"permission code", "read:venues", PolicyPermission},
		{"unseeded permission code", "write:anything", PolicyPermission},
		{"multiple colons", "a:b:c", PolicyPermission},
		{"named policy", "default", PolicyNamed},
		{"empty string", "", PolicyNamed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, err := ResolvePolicy(tt.policy)
			if err != nil {
				t.Fatalf("ResolvePolicy(%q) unexpected error: %v", tt.policy, err)
			}
			if policy.Kind != tt.wantKind {
				t.Errorf("ResolvePolicy(%q).Kind = %v, want %v", tt.policy, policy.Kind, tt.wantKind)
			}
			if policy.Name != tt.policy {
				t.Errorf("ResolvePolicy(%q).Name = %q", tt.policy, policy.Name)
			}
			if tt.wantKind == PolicyPermission && policy.Requirement.Permission != tt.policy {
				t.Errorf("requirement permission = %q, want %q", policy.Requirement.Permission, tt.policy)
			}
			if tt.wantKind == PolicyNamed && policy.Requirement.Permission != "" {
				t.Errorf("named policy carries a requirement: %q", policy.Requirement.Permission)
			}
		})
	}
}

// Resolution must be pure: equal inputs yield equal policies.
func TestResolvePolicyIdempotent(t *testing.T) {
	first, err := ResolvePolicy("read:venues")
	if err != nil {
		t.Fatal(err)
	}
	second, err := ResolvePolicy("read:venues")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("repeated resolution differs: %+v vs %+v", first, second)
	}
}
