package mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/you/jobsvc/domain"
)

// MockTokenService implements domain.TokenService interface for testing.
// By default tokens look like "<purpose>:<subject>" and verify only for that purpose.
type MockTokenService struct {
	IssueFunc  func(subject string, purpose domain.TokenPurpose, opts ...domain.IssueOption) (string, error)
	VerifyFunc func(token string, purpose domain.TokenPurpose) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) Issue(subject string, purpose domain.TokenPurpose, opts ...domain.IssueOption) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(subject, purpose, opts...)
	}
	return fmt.Sprintf("%s:%s", purpose, subject), nil
}

func (m *MockTokenService) Verify(token string, purpose domain.TokenPurpose) (*domain.TokenClaims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token, purpose)
	}
	prefix := string(purpose) + ":"
	if !strings.HasPrefix(token, prefix) || len(token) == len(prefix) {
		return nil, domain.ErrTokenInvalid
	}
	exp := time.Now().Add(15 * time.Minute)
	return &domain.TokenClaims{
		Subject:   strings.TrimPrefix(token, prefix),
		Purpose:   purpose,
		ID:        "jti-" + token,
		IssuedAt:  time.Now(),
		ExpiresAt: &exp,
	}, nil
}

// MockPasswordService implements domain.PasswordService interface for testing.
// By default the hash of p is "hashed_"+p.
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed_" + password, nil
}

func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return hashedPassword == "hashed_"+password
}

// MockTokenLedger implements domain.TokenLedger interface for testing.
// The default remembers consumed ids.
type MockTokenLedger struct {
	ConsumeFunc func(ctx context.Context, id string, ttl time.Duration) error
	ReleaseFunc func(ctx context.Context, id string) error
	used        map[string]struct{}
}

// NewMockTokenLedger creates a new MockTokenLedger with default behaviors
func NewMockTokenLedger() *MockTokenLedger {
	return &MockTokenLedger{used: make(map[string]struct{})}
}

func (m *MockTokenLedger) Consume(ctx context.Context, id string, ttl time.Duration) error {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, id, ttl)
	}
	if _, ok := m.used[id]; ok {
		return domain.ErrTokenAlreadyUsed
	}
	m.used[id] = struct{}{}
	return nil
}

func (m *MockTokenLedger) Release(ctx context.Context, id string) error {
	if m.ReleaseFunc != nil {
		return m.ReleaseFunc(ctx, id)
	}
	delete(m.used, id)
	return nil
}

// Compile-time interface compliance verification
var (
	_ domain.TokenService    = (*MockTokenService)(nil)
	_ domain.PasswordService = (*MockPasswordService)(nil)
	_ domain.TokenLedger     = (*MockTokenLedger)(nil)
)
