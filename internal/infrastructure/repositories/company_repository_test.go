package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/jobsvc/domain"
	"github.com/you/jobsvc/internal/ids"
)

func TestCompanyRepositoryImpl_Lookups(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountRepository(db)
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	hr := seedAccount(t, accounts, "hr@acme.com", "+4000001", domain.RoleCompanyHR)
	company := seedCompany(t, repo, "Acme", "jobs@acme.com", hr.ID)

	tests := []struct {
		name  string
		find  func() (*domain.Company, error)
		found bool
	}{
		{"by id", func() (*domain.Company, error) { return repo.FindByID(ctx, company.ID) }, true},
		{"by name", func() (*domain.Company, error) { return repo.FindByName(ctx, "Acme") }, true},
		{"by email", func() (*domain.Company, error) { return repo.FindByEmail(ctx, "jobs@acme.com") }, true},
		{"by hr", func() (*domain.Company, error) { return repo.FindByHR(ctx, hr.ID) }, true},
		{"missing id", func() (*domain.Company, error) { return repo.FindByID(ctx, ids.New()) }, false},
		{"name is exact", func() (*domain.Company, error) { return repo.FindByName(ctx, "acm") }, false},
		{"other hr", func() (*domain.Company, error) { return repo.FindByHR(ctx, ids.New()) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.find()
			if !tt.found {
				assert.ErrorIs(t, err, domain.ErrRecordNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, company.ID, got.ID)
			assert.Equal(t, hr.ID, got.HRID)
			assert.Equal(t, domain.EmployeeBand("11-20"), got.NumberOfEmployees)
		})
	}
}

func TestCompanyRepositoryImpl_SearchByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	seedCompany(t, repo, "Acme Labs", "a@acme.com", ids.New())
	seedCompany(t, repo, "ACME Studio", "b@acme.com", ids.New())
	seedCompany(t, repo, "Globex", "c@globex.com", ids.New())
	seedCompany(t, repo, "100% Pure", "d@pure.com", ids.New())

	tests := []struct {
		fragment string
		expected int
	}{
		{"acme", 2},
		{"LABS", 1},
		{"x", 1},
		{"%", 1},
		{"_", 0},
		{"initech", 0},
	}
	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			got, err := repo.SearchByName(ctx, tt.fragment)
			require.NoError(t, err)
			assert.Len(t, got, tt.expected)
		})
	}
}

func TestCompanyRepositoryImpl_UpdateCompareAndSwap(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()
	company := seedCompany(t, repo, "Acme", "jobs@acme.com", ids.New())

	stale := *company
	company.Industry = "Robotics"
	require.NoError(t, repo.Update(ctx, company))
	assert.Equal(t, 1, company.Version)

	stale.Address = "elsewhere"
	assert.ErrorIs(t, repo.Update(ctx, &stale), domain.ErrVersionConflict)

	stored, err := repo.FindByID(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Robotics", stored.Industry)
	assert.Equal(t, "1 Main St", stored.Address)
}

func TestCompanyRepositoryImpl_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountRepository(db)
	companies := NewCompanyRepository(db)
	jobs := NewJobRepository(db)
	apps := NewApplicationRepository(db)
	ctx := context.Background()

	hr := seedAccount(t, accounts, "hr@acme.com", "+4000002", domain.RoleCompanyHR)
	user := seedAccount(t, accounts, "u@acme.com", "+4000003", domain.RoleUser)
	company := seedCompany(t, companies, "Acme", "jobs@acme.com", hr.ID)
	other := seedCompany(t, companies, "Globex", "jobs@globex.com", ids.New())
	job := seedJob(t, jobs, company.ID, "Go Engineer", "go")
	keep := seedJob(t, jobs, other.ID, "Rust Engineer", "rust")
	require.NoError(t, apps.Create(ctx, &domain.Application{ID: ids.New(), JobID: job.ID, UserID: user.ID}))
	require.NoError(t, apps.Create(ctx, &domain.Application{ID: ids.New(), JobID: keep.ID, UserID: user.ID}))

	require.NoError(t, companies.Delete(ctx, company.ID))

	_, err := companies.FindByID(ctx, company.ID)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
	_, err = jobs.FindByID(ctx, job.ID)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	kept, err := apps.ListByJob(ctx, keep.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)

	assert.ErrorIs(t, companies.Delete(ctx, company.ID), domain.ErrRecordNotFound)
}
