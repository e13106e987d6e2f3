package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/you/jobsvc/domain"
)

// AuthMW wraps the token service and account repository for middleware
type AuthMW struct {
	tokenSvc domain.TokenService
	accounts domain.AccountRepository
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(tokenSvc domain.TokenService, accounts domain.AccountRepository) *AuthMW {
	return &AuthMW{
		tokenSvc: tokenSvc,
		accounts: accounts,
	}
}

// WithJWT returns the authenticating middleware function
func (mw *AuthMW) WithJWT() gin.HandlerFunc {
	return AuthMiddleware(mw.tokenSvc, mw.accounts)
}

// Require authenticates the request and then checks its role against allowed.
func (mw *AuthMW) Require(allowed domain.RoleSet) []gin.HandlerFunc {
	return []gin.HandlerFunc{mw.WithJWT(), Authorize(allowed)}
}
