package authz

import "strings"

// PolicyKind distinguishes dynamically resolved permission policies from
// statically registered named policies.
type PolicyKind int

const (
	// PolicyPermission requires an authenticated principal holding an exact
	// permission code.
	PolicyPermission PolicyKind = iota
	// PolicyNamed refers to a policy registered by name; no permission
	// requirement is constructed for it.
	PolicyNamed
)

// Policy is the resolved form of a policy name. A permission policy carries
// the requirement to evaluate; a named policy carries only its name and is
// looked up in the static registry by the caller.
type Policy struct {
	Kind        PolicyKind
	Name        string
	Requirement Requirement
}

// ResolvePolicy resolves a policy name without requiring every permission to
// be registered up front. Names containing ':' are permission codes and
// resolve to a permission policy; anything else falls through as a named
// policy. Resolution is pure: equal inputs always yield equal policies.
func ResolvePolicy(name string) (Policy, error) {
	if strings.Contains(name, ":") {
		req, err := NewRequirement(name)
		if err != nil {
			return Policy{}, err
		}
		return Policy{Kind: PolicyPermission, Name: name, Requirement: req}, nil
	}
	return Policy{Kind: PolicyNamed, Name: name}, nil
}
