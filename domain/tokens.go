package domain

import (
	"fmt"
	"time"
)

// TokenPurpose scopes a token to one use; each purpose is signed with its own secret.
type TokenPurpose string

const (
	PurposeLogin        TokenPurpose = "login"
	PurposeConfirmation TokenPurpose = "confirmation"
	PurposeReset        TokenPurpose = "reset"
)

// Valid reports whether p is a known purpose.
func (p TokenPurpose) Valid() bool {
	switch p {
	case PurposeLogin, PurposeConfirmation, PurposeReset:
		return true
	}
	return false
}

// TokenClaims represents verified token claims
type TokenClaims struct {
	Subject   string       `json:"sub"`
	Purpose   TokenPurpose `json:"pur"`
	ID        string       `json:"jti"`
	IssuedAt  time.Time    `json:"iat"`
	ExpiresAt *time.Time   `json:"exp,omitempty"`
}

// Remaining returns the lifetime left at now, or zero for non-expiring tokens.
func (c *TokenClaims) Remaining(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	if d := c.ExpiresAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

// IssueOptions collects per-token settings.
type IssueOptions struct {
	TTL    time.Duration
	HasTTL bool
}

// IssueOption customises token issuance.
type IssueOption func(*IssueOptions)

// WithTTL sets the token lifetime. A non-positive ttl yields an already expired token.
func WithTTL(ttl time.Duration) IssueOption {
	return func(o *IssueOptions) {
		o.TTL = ttl
		o.HasTTL = true
	}
}

// ApplyIssueOptions folds opts into an IssueOptions value.
func ApplyIssueOptions(opts ...IssueOption) IssueOptions {
	var o IssueOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// PurposeSecrets holds the signing secret for every purpose.
type PurposeSecrets map[TokenPurpose]string

// Validate checks every purpose has a secret and no two purposes share one.
func (s PurposeSecrets) Validate() error {
	seen := make(map[string]TokenPurpose, len(s))
	for _, p := range []TokenPurpose{PurposeLogin, PurposeConfirmation, PurposeReset} {
		secret := s[p]
		if secret == "" {
			return fmt.Errorf("missing %s token secret", p)
		}
		if other, dup := seen[secret]; dup {
			return fmt.Errorf("%s and %s token secrets must differ", other, p)
		}
		seen[secret] = p
	}
	return nil
}
