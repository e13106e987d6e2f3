package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/you/jobsvc/domain"
)

const opAuthenticate = "auth.authenticate"

// AuthMiddleware creates authentication middleware. It resolves the bearer
// token to a stored account and fails closed on anything else.
func AuthMiddleware(tokenSvc domain.TokenService, accounts domain.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			Fail(c, domain.Unauthenticated("Authorization header required", nil).At(opAuthenticate))
			return
		}

		// Check Bearer token format
		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" || strings.TrimSpace(tokenParts[1]) == "" {
			Fail(c, domain.Unauthenticated("Invalid authorization header format", domain.ErrTokenMalformed).At(opAuthenticate))
			return
		}

		claims, err := tokenSvc.Verify(strings.TrimSpace(tokenParts[1]), domain.PurposeLogin)
		if err != nil {
			desc := "Invalid token"
			if errors.Is(err, domain.ErrTokenExpired) {
				desc = "Token expired"
			}
			Fail(c, domain.Unauthenticated(desc, err).At(opAuthenticate))
			return
		}

		// The subject must still exist; deleted accounts lose access at once.
		account, err := accounts.FindByID(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				Fail(c, domain.Unauthenticated("Please signUp first", err).At(opAuthenticate))
				return
			}
			Fail(c, domain.Unexpected(fmt.Errorf("failed to load account: %w", err)).At(opAuthenticate))
			return
		}

		SetPrincipal(c, domain.Principal{
			AccountID: account.ID,
			Role:      account.Role,
			Confirmed: account.IsConfirmed,
		})
		c.Next()
	}
}
