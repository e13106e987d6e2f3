package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/you/jobsvc/domain"
	"github.com/you/jobsvc/internal/ids"
)

// JobServiceImpl implements domain.JobService
type JobServiceImpl struct {
	jobs         domain.JobRepository
	companies    domain.CompanyRepository
	applications domain.ApplicationRepository
}

// NewJobService creates a new job service
func NewJobService(jobs domain.JobRepository, companies domain.CompanyRepository, applications domain.ApplicationRepository) *JobServiceImpl {
	return &JobServiceImpl{jobs: jobs, companies: companies, applications: applications}
}

// Create implements domain.JobService. The job belongs to the actor's company.
func (s *JobServiceImpl) Create(ctx context.Context, actor domain.Principal, in domain.JobInput) (*domain.Job, error) {
	company, err := s.companies.FindByHR(ctx, actor.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NotFound("Company not found", domain.ResourceCompany, "").At("job.create")
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	job := &domain.Job{
		ID:              ids.New(),
		Title:           in.Title,
		Location:        in.Location,
		WorkingTime:     in.WorkingTime,
		SeniorityLevel:  in.SeniorityLevel,
		Description:     in.Description,
		TechnicalSkills: in.TechnicalSkills,
		SoftSkills:      in.SoftSkills,
		CompanyID:       company.ID,
		Company:         company,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// Update implements domain.JobService
func (s *JobServiceImpl) Update(ctx context.Context, actor domain.Principal, jobID string, in domain.JobUpdate) (*domain.Job, error) {
	if in.Empty() {
		return nil, domain.ValidationFailed("At least one field must be provided", nil).At("job.update")
	}
	job, err := ownedJob(ctx, s.jobs, actor, jobID, "job.update")
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		job.Title = *in.Title
	}
	if in.Location != nil {
		job.Location = *in.Location
	}
	if in.WorkingTime != nil {
		job.WorkingTime = *in.WorkingTime
	}
	if in.SeniorityLevel != nil {
		job.SeniorityLevel = *in.SeniorityLevel
	}
	if in.Description != nil {
		job.Description = *in.Description
	}
	if in.TechnicalSkills != nil {
		job.TechnicalSkills = in.TechnicalSkills
	}
	if in.SoftSkills != nil {
		job.SoftSkills = in.SoftSkills
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, storeErr("update job", domain.HideMissing(err, domain.ResourceJob, jobID))
	}
	return job, nil
}

// Delete implements domain.JobService. The job's applications are removed with it.
func (s *JobServiceImpl) Delete(ctx context.Context, actor domain.Principal, jobID string) error {
	if _, err := ownedJob(ctx, s.jobs, actor, jobID, "job.delete"); err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, jobID); err != nil {
		return storeErr("delete job", domain.HideMissing(err, domain.ResourceJob, jobID))
	}
	return nil
}

// List implements domain.JobService
func (s *JobServiceImpl) List(ctx context.Context) ([]*domain.Job, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// ListForCompanyName implements domain.JobService. The name must match exactly.
func (s *JobServiceImpl) ListForCompanyName(ctx context.Context, companyName string) ([]*domain.Job, error) {
	company, err := s.companies.FindByName(ctx, companyName)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NotFound("Company not found", domain.ResourceCompany, "")
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	jobs, err := s.jobs.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company jobs: %w", err)
	}
	return jobs, nil
}

// Filter implements domain.JobService
func (s *JobServiceImpl) Filter(ctx context.Context, filter domain.JobFilter) ([]*domain.Job, error) {
	if filter.Empty() {
		return nil, domain.ValidationFailed("At least one filter must be applied", nil).At("job.filter")
	}
	jobs, err := s.jobs.Filter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to filter jobs: %w", err)
	}
	return jobs, nil
}

// Apply implements domain.JobService
func (s *JobServiceImpl) Apply(ctx context.Context, actor domain.Principal, jobID string, in domain.ApplicationInput) (*domain.Application, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NotFound("Job Not exists", domain.ResourceJob, jobID)
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	application := &domain.Application{
		ID:              ids.New(),
		JobID:           job.ID,
		UserID:          actor.AccountID,
		TechnicalSkills: in.TechnicalSkills,
		SoftSkills:      in.SoftSkills,
		Resume:          in.Resume,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return application, nil
}

var _ domain.JobService = (*JobServiceImpl)(nil)
