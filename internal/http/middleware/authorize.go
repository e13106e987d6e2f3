package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/you/jobsvc/domain"
)

// Authorize permits the request when the authenticated role is in allowed.
// It must run after the authenticator.
func Authorize(allowed domain.RoleSet) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			Fail(c, domain.Unauthenticated("", nil).At("auth.authorize"))
			return
		}
		if !allowed.Contains(p.Role) {
			Fail(c, domain.Forbidden(p.Role, allowed).At("auth.authorize"))
			return
		}
		c.Next()
	}
}
