// Package middleware carries the request-time authorization and error
// boundary middleware for the API.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/auth"
	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/authz"
)

// namedPolicies is the static registry for policies whose names are not
// permission codes. Permission-coded policies never need registration.
var namedPolicies = map[string]gin.HandlerFunc{}

// RegisterNamedPolicy registers a non-permission policy by name
func RegisterNamedPolicy(name string, handler gin.HandlerFunc) {
	namedPolicies[name] = handler
}

// RequirePolicy resolves a policy name and returns the middleware enforcing
// it. Permission-coded names (containing ':') require an authenticated
// principal holding the exact code; other names are looked up in the static
// registry. Malformed policy names panic here, at route registration, so a
// bad route fails at startup instead of per-request.
func RequirePolicy(name string) gin.HandlerFunc {
	policy, err := authz.ResolvePolicy(name)
	if err != nil {
		panic(err)
	}

	if policy.Kind == authz.PolicyNamed {
		handler, ok := namedPolicies[policy.Name]
		if !ok {
			panic("unknown named policy: " + policy.Name)
		}
		return handler
	}

	requirement := policy.Requirement
	return func(c *gin.Context) {
		principal, ok := auth.PrincipalFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Requires authentication"})
			return
		}

		if !requirement.Satisfied(principal.Permissions) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":             "insufficient_permissions",
				"error_description": "Insufficient permissions to access resource",
				"message":           "Permission denied",
			})
			return
		}

		c.Next()
	}
}

// RequirePermission enforces a single permission code on an endpoint
func RequirePermission(code string) gin.HandlerFunc {
	// Validate eagerly so empty codes fail at registration
	authz.MustRequirement(code)
	return RequirePolicy(code)
}
