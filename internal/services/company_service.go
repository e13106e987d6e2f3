package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/you/jobsvc/domain"
	"github.com/you/jobsvc/internal/ids"
)

// CompanyServiceImpl implements domain.CompanyService
type CompanyServiceImpl struct {
	companies    domain.CompanyRepository
	jobs         domain.JobRepository
	applications domain.ApplicationRepository
	exporter     domain.ApplicationsExporter
}

// NewCompanyService creates a new company service
func NewCompanyService(
	companies domain.CompanyRepository,
	jobs domain.JobRepository,
	applications domain.ApplicationRepository,
	exporter domain.ApplicationsExporter,
) *CompanyServiceImpl {
	return &CompanyServiceImpl{
		companies:    companies,
		jobs:         jobs,
		applications: applications,
		exporter:     exporter,
	}
}

// Create implements domain.CompanyService. The actor must be confirmed and may own one company.
func (s *CompanyServiceImpl) Create(ctx context.Context, actor domain.Principal, in domain.CompanyInput) (*domain.Company, error) {
	if !actor.Confirmed {
		return nil, domain.NotConfirmed(actor.AccountID).At("company.create")
	}

	_, err := s.companies.FindByHR(ctx, actor.AccountID)
	if found, ferr := exists(err); ferr != nil {
		return nil, fmt.Errorf("failed to check company owner: %w", ferr)
	} else if found {
		return nil, domain.Conflict("You already own a company").At("company.create")
	}

	for _, lookup := range []func() (*domain.Company, error){
		func() (*domain.Company, error) { return s.companies.FindByName(ctx, in.Name) },
		func() (*domain.Company, error) { return s.companies.FindByEmail(ctx, in.Email) },
	} {
		_, err := lookup()
		found, ferr := exists(err)
		if ferr != nil {
			return nil, fmt.Errorf("failed to check company: %w", ferr)
		}
		if found {
			return nil, domain.Conflict("Company already exists").At("company.create")
		}
	}

	company := &domain.Company{
		ID:                ids.New(),
		Name:              in.Name,
		Description:       in.Description,
		Industry:          in.Industry,
		Address:           in.Address,
		NumberOfEmployees: in.NumberOfEmployees,
		Email:             in.Email,
		HRID:              actor.AccountID,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		if errors.Is(err, domain.ErrDuplicateRecord) {
			return nil, domain.Conflict("Company already exists").At("company.create")
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return company, nil
}

// Update implements domain.CompanyService
func (s *CompanyServiceImpl) Update(ctx context.Context, actor domain.Principal, companyID string, in domain.CompanyUpdate) (*domain.Company, error) {
	company, err := s.owned(ctx, actor, companyID, "company.update")
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != company.Email {
		other, err := s.companies.FindByEmail(ctx, *in.Email)
		found, ferr := exists(err)
		if ferr != nil {
			return nil, fmt.Errorf("failed to check company email: %w", ferr)
		}
		if found && other.ID != company.ID {
			return nil, domain.Conflict("Company Email already exists").At("company.update")
		}
		company.Email = *in.Email
	}
	if in.Name != nil && *in.Name != company.Name {
		other, err := s.companies.FindByName(ctx, *in.Name)
		found, ferr := exists(err)
		if ferr != nil {
			return nil, fmt.Errorf("failed to check company name: %w", ferr)
		}
		if found && other.ID != company.ID {
			return nil, domain.Conflict("Company name already exists").At("company.update")
		}
		company.Name = *in.Name
	}
	if in.Description != nil {
		company.Description = *in.Description
	}
	if in.Industry != nil {
		company.Industry = *in.Industry
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.NumberOfEmployees != nil {
		company.NumberOfEmployees = *in.NumberOfEmployees
	}

	if err := s.companies.Update(ctx, company); err != nil {
		if errors.Is(err, domain.ErrDuplicateRecord) {
			return nil, domain.Conflict("Company already exists").At("company.update")
		}
		return nil, storeErr("update company", domain.HideMissing(err, domain.ResourceCompany, companyID))
	}
	return company, nil
}

// Delete implements domain.CompanyService. Jobs and their applications go with the company.
func (s *CompanyServiceImpl) Delete(ctx context.Context, actor domain.Principal, companyID string) error {
	if _, err := s.owned(ctx, actor, companyID, "company.delete"); err != nil {
		return err
	}
	if err := s.companies.Delete(ctx, companyID); err != nil {
		return storeErr("delete company", domain.HideMissing(err, domain.ResourceCompany, companyID))
	}
	return nil
}

// Get implements domain.CompanyService
func (s *CompanyServiceImpl) Get(ctx context.Context, companyID string) (*domain.Company, []*domain.Job, error) {
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, nil, domain.NotFound("Company not found", domain.ResourceCompany, companyID)
		}
		return nil, nil, fmt.Errorf("failed to find company: %w", err)
	}
	jobs, err := s.jobs.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list company jobs: %w", err)
	}
	return company, jobs, nil
}

// Search implements domain.CompanyService
func (s *CompanyServiceImpl) Search(ctx context.Context, name string) ([]*domain.Company, error) {
	companies, err := s.companies.SearchByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search companies: %w", err)
	}
	return companies, nil
}

// ApplicationsForJob implements domain.CompanyService
func (s *CompanyServiceImpl) ApplicationsForJob(ctx context.Context, actor domain.Principal, jobID string) ([]*domain.Application, error) {
	if _, err := ownedJob(ctx, s.jobs, actor, jobID, "company.applications_for_job"); err != nil {
		return nil, err
	}
	applications, err := s.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}

// ApplicationsReport implements domain.CompanyService. It renders the company's
// applications received on day (UTC) as a spreadsheet.
func (s *CompanyServiceImpl) ApplicationsReport(ctx context.Context, actor domain.Principal, companyID string, day time.Time) ([]byte, error) {
	if _, err := s.owned(ctx, actor, companyID, "company.applications_report"); err != nil {
		return nil, err
	}
	applications, err := s.applications.ListByCompanyOnDay(ctx, companyID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	data, err := s.exporter.Export(applications)
	if err != nil {
		return nil, fmt.Errorf("failed to export applications: %w", err)
	}
	return data, nil
}

// owned loads a company and applies the ownership guard.
func (s *CompanyServiceImpl) owned(ctx context.Context, actor domain.Principal, companyID, op string) (*domain.Company, error) {
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NotFoundOrUnauthorized(domain.ResourceCompany, companyID).At(op)
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	if err := domain.RequireOwner(domain.ResourceCompany, companyID, company.HRID, actor.AccountID); err != nil {
		return nil, domain.AsError(err).At(op)
	}
	return company, nil
}

// ownedJob loads a job with its company and applies the ownership guard.
// A job is owned by the HR account that owns its company.
func ownedJob(ctx context.Context, jobs domain.JobRepository, actor domain.Principal, jobID, op string) (*domain.Job, error) {
	job, err := jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NotFoundOrUnauthorized(domain.ResourceJob, jobID).At(op)
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	var owner string
	if job.Company != nil {
		owner = job.Company.HRID
	}
	if err := domain.RequireOwner(domain.ResourceJob, jobID, owner, actor.AccountID); err != nil {
		return nil, domain.AsError(err).At(op)
	}
	return job, nil
}

var _ domain.CompanyService = (*CompanyServiceImpl)(nil)
