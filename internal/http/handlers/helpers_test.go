package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/you/jobsvc/domain"
	"github.com/you/jobsvc/internal/http/middleware"
	"github.com/you/jobsvc/internal/logging"
	"github.com/you/jobsvc/internal/mocks"
	"github.com/you/jobsvc/internal/services"
)

// testDeps bundles the mocked collaborators behind the real services
type testDeps struct {
	accounts     *mocks.MockAccountRepository
	companies    *mocks.MockCompanyRepository
	jobs         *mocks.MockJobRepository
	applications *mocks.MockApplicationRepository
	passwords    *mocks.MockPasswordService
	tokens       *mocks.MockTokenService
	ledger       *mocks.MockTokenLedger
	mailer       *mocks.MockMailer
	sms          *mocks.MockNotificationService
	exporter     *mocks.MockApplicationsExporter
}

func newTestDeps() *testDeps {
	return &testDeps{
		accounts:     mocks.NewMockAccountRepository(),
		companies:    mocks.NewMockCompanyRepository(),
		jobs:         mocks.NewMockJobRepository(),
		applications: mocks.NewMockApplicationRepository(),
		passwords:    mocks.NewMockPasswordService(),
		tokens:       mocks.NewMockTokenService(),
		ledger:       mocks.NewMockTokenLedger(),
		mailer:       mocks.NewMockMailer(),
		sms:          mocks.NewMockNotificationService(),
		exporter:     mocks.NewMockApplicationsExporter(),
	}
}

func (d *testDeps) userHandlers() *UserHandlers {
	svc := services.NewAccountService(d.accounts, d.passwords, d.tokens, d.ledger, d.mailer, d.sms, nil,
		logging.Discard(), services.AccountConfig{
			PublicURL:       "http://jobs.test",
			LoginTTL:        24 * time.Hour,
			ConfirmationTTL: time.Hour,
			ResetTTL:        15 * time.Minute,
		})
	return NewUserHandlers(svc)
}

func (d *testDeps) companyHandlers() *CompanyHandlers {
	return NewCompanyHandlers(services.NewCompanyService(d.companies, d.jobs, d.applications, d.exporter))
}

func (d *testDeps) jobHandlers() *JobHandlers {
	return NewJobHandlers(services.NewJobService(d.jobs, d.companies, d.applications))
}

// newTestRouter mounts h behind the error handler; p, when set, is installed as the caller.
func newTestRouter(method, path string, p *domain.Principal, h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(logging.Discard(), nil, nil))
	chain := []gin.HandlerFunc{}
	if p != nil {
		principal := *p
		chain = append(chain, func(c *gin.Context) {
			middleware.SetPrincipal(c, principal)
			c.Next()
		})
	}
	r.Handle(method, path, append(chain, h)...)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func userPrincipal(id string) *domain.Principal {
	return &domain.Principal{AccountID: id, Role: domain.RoleUser, Confirmed: true}
}

func hrPrincipal(id string) *domain.Principal {
	return &domain.Principal{AccountID: id, Role: domain.RoleCompanyHR, Confirmed: true}
}

func storedAccount() *domain.Account {
	return &domain.Account{
		ID:            "acc-1",
		FirstName:     "Ada",
		LastName:      "Lovelace",
		UserName:      "Ada Lovelace",
		Email:         "ada@example.com",
		RecoveryEmail: "backup@example.com",
		DOB:           time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC),
		MobileNumber:  "+15550001",
		PasswordHash:  "hashed_Passw0rd!",
		Role:          domain.RoleUser,
		IsConfirmed:   true,
		Status:        domain.StatusOffline,
		Version:       1,
	}
}

func storedCompany(hrID string) *domain.Company {
	return &domain.Company{
		ID:                "cmp-1",
		Name:              "Acme",
		Description:       "Rockets and anvils",
		Industry:          "Manufacturing",
		Address:           "1 Desert Road",
		NumberOfEmployees: "11-20",
		Email:             "hr@acme.com",
		HRID:              hrID,
		Version:           1,
	}
}

func storedJob(company *domain.Company) *domain.Job {
	return &domain.Job{
		ID:              "job-1",
		Title:           "Backend Engineer",
		Location:        domain.LocationRemotely,
		WorkingTime:     domain.FullTime,
		SeniorityLevel:  domain.SenioritySenior,
		Description:     "Build the job board backend",
		TechnicalSkills: []string{"go", "postgres"},
		SoftSkills:      []string{"communication"},
		CompanyID:       company.ID,
		Company:         company,
		Version:         1,
	}
}

// accountsByID serves FindByID from the given accounts.
func accountsByID(accounts ...*domain.Account) func(ctx context.Context, id string) (*domain.Account, error) {
	return func(ctx context.Context, id string) (*domain.Account, error) {
		for _, a := range accounts {
			if a.ID == id {
				return a, nil
			}
		}
		return nil, domain.ErrRecordNotFound
	}
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("expected status %d, got %d: %s", status, w.Code, w.Body.String())
	}
}
