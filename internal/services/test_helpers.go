package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/you/jobsvc/domain"
	"github.com/you/jobsvc/internal/logging"
	"github.com/you/jobsvc/internal/mocks"
)

// accountMocks bundles the collaborators of an AccountService under test
type accountMocks struct {
	accounts  *mocks.MockAccountRepository
	passwords *mocks.MockPasswordService
	tokens    *mocks.MockTokenService
	ledger    *mocks.MockTokenLedger
	mailer    *mocks.MockMailer
	sms       *mocks.MockNotificationService
	audit     *mocks.MockAuditLogger
}

func newAccountMocks() *accountMocks {
	return &accountMocks{
		accounts:  mocks.NewMockAccountRepository(),
		passwords: mocks.NewMockPasswordService(),
		tokens:    mocks.NewMockTokenService(),
		ledger:    mocks.NewMockTokenLedger(),
		mailer:    mocks.NewMockMailer(),
		sms:       mocks.NewMockNotificationService(),
		audit:     mocks.NewMockAuditLogger(),
	}
}

// createAccountServiceForTest creates an AccountService over the given mocks
func createAccountServiceForTest(t *testing.T, m *accountMocks) *AccountServiceImpl {
	t.Helper()

	return NewAccountService(m.accounts, m.passwords, m.tokens, m.ledger, m.mailer, m.sms, m.audit,
		logging.Discard(), AccountConfig{
			PublicURL:       "http://jobs.test",
			LoginTTL:        24 * time.Hour,
			ConfirmationTTL: time.Hour,
			ResetTTL:        15 * time.Minute,
		})
}

// createValidAccount creates a confirmed account whose password is "Passw0rd!"
func createValidAccount(t *testing.T) *domain.Account {
	t.Helper()

	return &domain.Account{
		ID:           "acc-1",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		UserName:     "Ada Lovelace",
		Email:        "ada@example.com",
		MobileNumber: "+15550001",
		PasswordHash: "hashed_Passw0rd!",
		Role:         domain.RoleUser,
		IsConfirmed:  true,
		Status:       domain.StatusOffline,
		Version:      3,
		CreatedAt:    time.Now().Add(-24 * time.Hour),
	}
}

// createValidCompany creates a company owned by hrID
func createValidCompany(t *testing.T, hrID string) *domain.Company {
	t.Helper()

	return &domain.Company{
		ID:                "cmp-1",
		Name:              "Acme",
		Description:       "Rockets and anvils",
		Industry:          "Manufacturing",
		Address:           "1 Desert Rd",
		NumberOfEmployees: "51-100",
		Email:             "jobs@acme.com",
		HRID:              hrID,
	}
}

// createValidJob creates a job posted by company
func createValidJob(t *testing.T, company *domain.Company) *domain.Job {
	t.Helper()

	return &domain.Job{
		ID:              "job-1",
		Title:           "Backend Engineer",
		Location:        domain.LocationRemotely,
		WorkingTime:     domain.FullTime,
		SeniorityLevel:  domain.SenioritySenior,
		Description:     "Build the job board",
		TechnicalSkills: []string{"go", "sql"},
		SoftSkills:      []string{"writing"},
		CompanyID:       company.ID,
		Company:         company,
	}
}

func hrPrincipal(id string) domain.Principal {
	return domain.Principal{AccountID: id, Role: domain.RoleCompanyHR, Confirmed: true}
}

// createTestContext creates a context for testing with timeout
func createTestContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// assertKind fails unless err is a *domain.Error of the given kind
func assertKind(t *testing.T, err error, kind domain.Kind) *domain.Error {
	t.Helper()

	var de *domain.Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *domain.Error of kind %v, got %v", kind, err)
	}
	if de.Kind != kind {
		t.Fatalf("expected kind %v, got %v (%v)", kind, de.Kind, err)
	}
	return de
}
