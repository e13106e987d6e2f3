package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/you/jobsvc/domain"
)

// PasswordServiceImpl implements domain.PasswordService
type PasswordServiceImpl struct {
	cost int
}

// NewPasswordService creates a new password service. cost is clamped to
// bcrypt's accepted range; zero selects bcrypt.DefaultCost.
func NewPasswordService(cost int) *PasswordServiceImpl {
	switch {
	case cost == 0:
		cost = bcrypt.DefaultCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return &PasswordServiceImpl{cost: cost}
}

// Cost returns the work factor used for new hashes.
func (p *PasswordServiceImpl) Cost() int {
	return p.cost
}

// Hash implements domain.PasswordService
func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify implements domain.PasswordService
func (p *PasswordServiceImpl) Verify(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

var _ domain.PasswordService = (*PasswordServiceImpl)(nil)
