package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/you/jobsvc/domain"
)

// JWTServiceImpl implements domain.TokenService with one HMAC secret per purpose
type JWTServiceImpl struct {
	secrets map[domain.TokenPurpose][]byte
	now     func() time.Time
}

// NewJWTService creates a new JWT service. Every purpose needs its own secret.
func NewJWTService(secrets domain.PurposeSecrets) (*JWTServiceImpl, error) {
	if err := secrets.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}
	keys := make(map[domain.TokenPurpose][]byte, len(secrets))
	for p, s := range secrets {
		keys[p] = []byte(s)
	}
	return &JWTServiceImpl{secrets: keys, now: time.Now}, nil
}

// Issue implements domain.TokenService
func (j *JWTServiceImpl) Issue(subject string, purpose domain.TokenPurpose, opts ...domain.IssueOption) (string, error) {
	key, ok := j.secrets[purpose]
	if !ok {
		return "", fmt.Errorf("unknown token purpose %q", purpose)
	}
	if subject == "" {
		return "", errors.New("token subject is required")
	}

	o := domain.ApplyIssueOptions(opts...)
	now := j.now()
	claims := jwt.MapClaims{
		"sub": subject,
		"pur": string(purpose),
		"iat": now.Unix(),
		"jti": uuid.NewString(),
	}
	if o.HasTTL {
		exp := now.Add(o.TTL)
		if o.TTL <= 0 {
			// exp is second-granular; step back so the token is expired right away
			exp = now.Add(-time.Second)
		}
		claims["exp"] = exp.Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// Verify implements domain.TokenService
func (j *JWTServiceImpl) Verify(tokenString string, purpose domain.TokenPurpose) (*domain.TokenClaims, error) {
	key, ok := j.secrets[purpose]
	if !ok {
		return nil, domain.ErrTokenInvalid
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(j.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}

	if pur, _ := claims["pur"].(string); domain.TokenPurpose(pur) != purpose {
		return nil, domain.ErrTokenInvalid
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, domain.ErrTokenInvalid
	}

	out := &domain.TokenClaims{Subject: sub, Purpose: purpose}
	out.ID, _ = claims["jti"].(string)
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		out.ExpiresAt = &t
	}
	return out, nil
}

var _ domain.TokenService = (*JWTServiceImpl)(nil)
