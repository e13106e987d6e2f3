package mocks

import (
	"context"

	"github.com/you/jobsvc/domain"
)

// MockCompanyRepository implements domain.CompanyRepository interface for testing
type MockCompanyRepository struct {
	CreateFunc       func(ctx context.Context, company *domain.Company) error
	FindByIDFunc     func(ctx context.Context, id string) (*domain.Company, error)
	FindByNameFunc   func(ctx context.Context, name string) (*domain.Company, error)
	FindByEmailFunc  func(ctx context.Context, email string) (*domain.Company, error)
	FindByHRFunc     func(ctx context.Context, hrID string) (*domain.Company, error)
	SearchByNameFunc func(ctx context.Context, fragment string) ([]*domain.Company, error)
	UpdateFunc       func(ctx context.Context, company *domain.Company) error
	DeleteFunc       func(ctx context.Context, id string) error
}

// NewMockCompanyRepository creates a new MockCompanyRepository with default behaviors
func NewMockCompanyRepository() *MockCompanyRepository {
	return &MockCompanyRepository{}
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, company)
	}
	return nil
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrRecordNotFound
}

func (m *MockCompanyRepository) FindByName(ctx context.Context, name string) (*domain.Company, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, domain.ErrRecordNotFound
}

func (m *MockCompanyRepository) FindByEmail(ctx context.Context, email string) (*domain.Company, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrRecordNotFound
}

func (m *MockCompanyRepository) FindByHR(ctx context.Context, hrID string) (*domain.Company, error) {
	if m.FindByHRFunc != nil {
		return m.FindByHRFunc(ctx, hrID)
	}
	return nil, domain.ErrRecordNotFound
}

func (m *MockCompanyRepository) SearchByName(ctx context.Context, fragment string) ([]*domain.Company, error) {
	if m.SearchByNameFunc != nil {
		return m.SearchByNameFunc(ctx, fragment)
	}
	return nil, nil
}

func (m *MockCompanyRepository) Update(ctx context.Context, company *domain.Company) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, company)
	}
	company.Version++
	return nil
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.CompanyRepository = (*MockCompanyRepository)(nil)
