package mocks

import (
	"context"
	"time"

	"github.com/you/jobsvc/domain"
)

// MockJobRepository implements domain.JobRepository interface for testing
type MockJobRepository struct {
	CreateFunc        func(ctx context.Context, job *domain.Job) error
	FindByIDFunc      func(ctx context.Context, id string) (*domain.Job, error)
	ListFunc          func(ctx context.Context) ([]*domain.Job, error)
	ListByCompanyFunc func(ctx context.Context, companyID string) ([]*domain.Job, error)
	FilterFunc        func(ctx context.Context, filter domain.JobFilter) ([]*domain.Job, error)
	UpdateFunc        func(ctx context.Context, job *domain.Job) error
	DeleteFunc        func(ctx context.Context, id string) error
}

// NewMockJobRepository creates a new MockJobRepository with default behaviors
func NewMockJobRepository() *MockJobRepository {
	return &MockJobRepository{}
}

func (m *MockJobRepository) Create(ctx context.Context, job *domain.Job) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, job)
	}
	return nil
}

func (m *MockJobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrRecordNotFound
}

func (m *MockJobRepository) List(ctx context.Context) ([]*domain.Job, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockJobRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.Job, error) {
	if m.ListByCompanyFunc != nil {
		return m.ListByCompanyFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *MockJobRepository) Filter(ctx context.Context, filter domain.JobFilter) ([]*domain.Job, error) {
	if m.FilterFunc != nil {
		return m.FilterFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockJobRepository) Update(ctx context.Context, job *domain.Job) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, job)
	}
	job.Version++
	return nil
}

func (m *MockJobRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockApplicationRepository implements domain.ApplicationRepository interface for testing
type MockApplicationRepository struct {
	CreateFunc             func(ctx context.Context, application *domain.Application) error
	ListByJobFunc          func(ctx context.Context, jobID string) ([]*domain.Application, error)
	ListByCompanyOnDayFunc func(ctx context.Context, companyID string, day time.Time) ([]*domain.Application, error)
}

// NewMockApplicationRepository creates a new MockApplicationRepository with default behaviors
func NewMockApplicationRepository() *MockApplicationRepository {
	return &MockApplicationRepository{}
}

func (m *MockApplicationRepository) Create(ctx context.Context, application *domain.Application) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, application)
	}
	return nil
}

func (m *MockApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]*domain.Application, error) {
	if m.ListByJobFunc != nil {
		return m.ListByJobFunc(ctx, jobID)
	}
	return nil, nil
}

func (m *MockApplicationRepository) ListByCompanyOnDay(ctx context.Context, companyID string, day time.Time) ([]*domain.Application, error) {
	if m.ListByCompanyOnDayFunc != nil {
		return m.ListByCompanyOnDayFunc(ctx, companyID, day)
	}
	return nil, nil
}

// Compile-time interface compliance verification
var (
	_ domain.JobRepository         = (*MockJobRepository)(nil)
	_ domain.ApplicationRepository = (*MockApplicationRepository)(nil)
)
