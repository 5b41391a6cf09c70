package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/userd/auth"
	"github.com/skillsenselab/userd/authz"
)

// Authorize returns the authorization stage for a per-request policy. The
// policy is evaluated against the Principal attached by the authentication
// stage; a missing Principal denies rather than crashing.
func Authorize(policyFor func(*gin.Context) authz.Policy, respond ErrorWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authz.Check(c.Request.Context(), policyFor(c)); err != nil {
			respond(c, err)
			return
		}
		c.Next()
	}
}

// RequireRole allows only principals holding one of the given roles.
func RequireRole(respond ErrorWriter, roles ...auth.Role) gin.HandlerFunc {
	policy := authz.RoleIn(roles...)
	return Authorize(func(*gin.Context) authz.Policy { return policy }, respond)
}

// RequireOwnerOrRole allows the principal whose id matches the named path
// parameter, or any principal holding the given role.
func RequireOwnerOrRole(param string, role auth.Role, respond ErrorWriter) gin.HandlerFunc {
	return Authorize(func(c *gin.Context) authz.Policy {
		return authz.OwnerOrRole(c.Param(param), role)
	}, respond)
}
