package mocks

import (
	"context"

	"github.com/you/jobsvc/domain"
)

// MockAccountRepository implements domain.AccountRepository interface for testing
type MockAccountRepository struct {
	CreateFunc              func(ctx context.Context, account *domain.Account) error
	FindByIDFunc            func(ctx context.Context, id string) (*domain.Account, error)
	FindByEmailFunc         func(ctx context.Context, email string) (*domain.Account, error)
	FindByMobileFunc        func(ctx context.Context, mobile string) (*domain.Account, error)
	FindByRecoveryEmailFunc func(ctx context.Context, recoveryEmail string) ([]*domain.Account, error)
	UpdateFunc              func(ctx context.Context, account *domain.Account) error
	SetStatusFunc           func(ctx context.Context, id string, status domain.AccountStatus) error
	SetPasswordFunc         func(ctx context.Context, id, passwordHash string) error
	ConfirmFunc             func(ctx context.Context, id string) error
	DeleteFunc              func(ctx context.Context, id string) error
}

// NewMockAccountRepository creates a new MockAccountRepository with default behaviors
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	return nil
}

// FindByID defaults to not found
func (m *MockAccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrRecordNotFound
}

// FindByEmail defaults to not found
func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrRecordNotFound
}

// FindByMobile defaults to not found
func (m *MockAccountRepository) FindByMobile(ctx context.Context, mobile string) (*domain.Account, error) {
	if m.FindByMobileFunc != nil {
		return m.FindByMobileFunc(ctx, mobile)
	}
	return nil, domain.ErrRecordNotFound
}

func (m *MockAccountRepository) FindByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]*domain.Account, error) {
	if m.FindByRecoveryEmailFunc != nil {
		return m.FindByRecoveryEmailFunc(ctx, recoveryEmail)
	}
	return nil, nil
}

// Update defaults to success and bumps the version like the real repository
func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	account.Version++
	return nil
}

func (m *MockAccountRepository) SetStatus(ctx context.Context, id string, status domain.AccountStatus) error {
	if m.SetStatusFunc != nil {
		return m.SetStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockAccountRepository) SetPassword(ctx context.Context, id, passwordHash string) error {
	if m.SetPasswordFunc != nil {
		return m.SetPasswordFunc(ctx, id, passwordHash)
	}
	return nil
}

func (m *MockAccountRepository) Confirm(ctx context.Context, id string) error {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, id)
	}
	return nil
}

func (m *MockAccountRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.AccountRepository = (*MockAccountRepository)(nil)
