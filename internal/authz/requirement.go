package authz

import (
	"errors"
	"strings"
)

// ErrEmptyPermission is returned when a requirement is constructed without a
// permission code. This is a configuration bug (a malformed policy name on a
// route) and surfaces at registration time, never per-request.
var ErrEmptyPermission = errors.New("authz: requirement permission must not be empty")

// Requirement is an atomic authorization condition: the principal must hold
// the exact permission code.
type Requirement struct {
	Permission string
}

// NewRequirement builds a Requirement for the given permission code.
// Empty or whitespace-only codes fail at construction.
func NewRequirement(permission string) (Requirement, error) {
	if strings.TrimSpace(permission) == "" {
		return Requirement{}, ErrEmptyPermission
	}
	return Requirement{Permission: permission}, nil
}

// MustRequirement is like NewRequirement but panics on an empty code.
// Intended for route registration, where a malformed policy name should
// fail fast at startup.
func MustRequirement(permission string) Requirement {
	req, err := NewRequirement(permission)
	if err != nil {
		panic(err)
	}
	return req
}

// Satisfied reports whether the granted permission codes meet the requirement.
// Matching is exact and case-sensitive; an empty grant set is a clean denial.
func (r Requirement) Satisfied(granted []string) bool {
	return HasPermission(granted, r.Permission)
}
