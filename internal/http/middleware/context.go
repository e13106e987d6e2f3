package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/you/jobsvc/domain"
)

const (
	principalKey = "principal"
	userIDKey    = "user_id"
	userRoleKey  = "user_role"
)

// SetPrincipal stores the authenticated principal for the rest of the request.
func SetPrincipal(c *gin.Context, p domain.Principal) {
	c.Set(principalKey, p)
	c.Set(userIDKey, p.AccountID)
	c.Set(userRoleKey, string(p.Role))
}

// PrincipalFrom returns the principal set by the authenticator.
func PrincipalFrom(c *gin.Context) (domain.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return domain.Principal{}, false
	}
	p, ok := v.(domain.Principal)
	return p, ok
}

// Fail records err for the error handler and stops the chain.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
