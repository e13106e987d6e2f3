package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/jobsvc/domain"
	"github.com/you/jobsvc/internal/ids"
)

func TestJobRepositoryImpl_FindLoadsCompany(t *testing.T) {
	db := setupTestDB(t)
	companies := NewCompanyRepository(db)
	repo := NewJobRepository(db)
	ctx := context.Background()

	company := seedCompany(t, companies, "Acme", "jobs@acme.com", ids.New())
	job := seedJob(t, repo, company.ID, "Go Engineer", "go", "sql")

	got, err := repo.FindByID(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Company)
	assert.Equal(t, company.HRID, got.Company.HRID)
	assert.Equal(t, []string{"go", "sql"}, got.TechnicalSkills)

	_, err = repo.FindByID(ctx, ids.New())
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.NotNil(t, all[0].Company)

	byCompany, err := repo.ListByCompany(ctx, company.ID)
	require.NoError(t, err)
	assert.Len(t, byCompany, 1)
}

func TestJobRepositoryImpl_Filter(t *testing.T) {
	db := setupTestDB(t)
	companies := NewCompanyRepository(db)
	repo := NewJobRepository(db)
	ctx := context.Background()
	company := seedCompany(t, companies, "Acme", "jobs@acme.com", ids.New())

	goJob := seedJob(t, repo, company.ID, "Senior Go Engineer", "go", "postgres")
	rustJob := seedJob(t, repo, company.ID, "Rust Developer", "rust")
	junior := &domain.Job{
		ID:              ids.New(),
		Title:           "Junior Gopher",
		Location:        domain.LocationOnsite,
		WorkingTime:     domain.PartTime,
		SeniorityLevel:  domain.SeniorityJunior,
		Description:     "Learn the ropes",
		TechnicalSkills: []string{"go"},
		CompanyID:       company.ID,
	}
	require.NoError(t, repo.Create(ctx, junior))

	tests := []struct {
		name     string
		filter   domain.JobFilter
		expected []string
	}{
		{"seniority", domain.JobFilter{SeniorityLevel: domain.SenioritySenior}, []string{goJob.ID, rustJob.ID}},
		{"working time", domain.JobFilter{WorkingTime: domain.PartTime}, []string{junior.ID}},
		{"location", domain.JobFilter{Location: domain.LocationOnsite}, []string{junior.ID}},
		{"title contains, case-insensitive", domain.JobFilter{TitleContains: "ENGINEER"}, []string{goJob.ID}},
		{"any technical skill", domain.JobFilter{TechnicalSkills: []string{"rust", "postgres"}}, []string{goJob.ID, rustJob.ID}},
		{"skill is exact element", domain.JobFilter{TechnicalSkills: []string{"post"}}, nil},
		{"combined", domain.JobFilter{TechnicalSkills: []string{"go"}, SeniorityLevel: domain.SeniorityJunior}, []string{junior.ID}},
		{"no match", domain.JobFilter{SeniorityLevel: domain.SeniorityCTO}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Filter(ctx, tt.filter)
			require.NoError(t, err)
			gotIDs := make([]string, 0, len(got))
			for _, j := range got {
				gotIDs = append(gotIDs, j.ID)
				assert.NotNil(t, j.Company)
			}
			assert.ElementsMatch(t, tt.expected, gotIDs)
		})
	}
}

func TestJobRepositoryImpl_UpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountRepository(db)
	companies := NewCompanyRepository(db)
	repo := NewJobRepository(db)
	apps := NewApplicationRepository(db)
	ctx := context.Background()

	user := seedAccount(t, accounts, "u@example.com", "+5000001", domain.RoleUser)
	company := seedCompany(t, companies, "Acme", "jobs@acme.com", ids.New())
	job := seedJob(t, repo, company.ID, "Go Engineer", "go")

	stale := *job
	job.TechnicalSkills = []string{"go", "grpc"}
	job.SoftSkills = []string{}
	require.NoError(t, repo.Update(ctx, job))
	assert.Equal(t, 1, job.Version)

	stored, err := repo.FindByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "grpc"}, stored.TechnicalSkills)
	assert.Empty(t, stored.SoftSkills)

	stale.Title = "Stale"
	assert.ErrorIs(t, repo.Update(ctx, &stale), domain.ErrVersionConflict)

	require.NoError(t, apps.Create(ctx, &domain.Application{
		ID: ids.New(), JobID: job.ID, UserID: user.ID, CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, repo.Delete(ctx, job.ID))

	left, err := apps.ListByJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Empty(t, left, "applications are deleted with their job")
	assert.ErrorIs(t, repo.Delete(ctx, job.ID), domain.ErrRecordNotFound)
}
