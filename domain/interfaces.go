package domain

import (
	"context"
	"time"
)

// AccountRepository defines account data access operations
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByID(ctx context.Context, id string) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByMobile(ctx context.Context, mobile string) (*Account, error)
	FindByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]*Account, error)
	// Update writes account if its stored version still equals account.Version,
	// then bumps account.Version.
	Update(ctx context.Context, account *Account) error
	// SetStatus and SetPassword write one column without the version check;
	// they still bump the stored version.
	SetStatus(ctx context.Context, id string, status AccountStatus) error
	SetPassword(ctx context.Context, id, passwordHash string) error
	// Confirm flips the confirmed flag of an unconfirmed account.
	Confirm(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// CompanyRepository defines company data access operations
type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	FindByID(ctx context.Context, id string) (*Company, error)
	FindByName(ctx context.Context, name string) (*Company, error)
	FindByEmail(ctx context.Context, email string) (*Company, error)
	FindByHR(ctx context.Context, hrID string) (*Company, error)
	SearchByName(ctx context.Context, fragment string) ([]*Company, error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id string) error
}

// JobRepository defines job data access operations
type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	FindByID(ctx context.Context, id string) (*Job, error)
	List(ctx context.Context) ([]*Job, error)
	ListByCompany(ctx context.Context, companyID string) ([]*Job, error)
	Filter(ctx context.Context, filter JobFilter) ([]*Job, error)
	Update(ctx context.Context, job *Job) error
	// Delete removes the job and its applications atomically.
	Delete(ctx context.Context, id string) error
}

// ApplicationRepository defines application data access operations
type ApplicationRepository interface {
	Create(ctx context.Context, application *Application) error
	ListByJob(ctx context.Context, jobID string) ([]*Application, error)
	ListByCompanyOnDay(ctx context.Context, companyID string, day time.Time) ([]*Application, error)
}

// TokenLedger records single-use token ids
type TokenLedger interface {
	// Consume marks id as used for ttl; ErrTokenAlreadyUsed if it was already consumed.
	Consume(ctx context.Context, id string, ttl time.Duration) error
	// Release drops the mark so the token can be used again.
	Release(ctx context.Context, id string) error
}

// TokenService issues and verifies purpose-scoped tokens
type TokenService interface {
	Issue(subject string, purpose TokenPurpose, opts ...IssueOption) (string, error)
	Verify(token string, purpose TokenPurpose) (*TokenClaims, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// Mail is a single outgoing message
type Mail struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers mail
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

// NotificationService defines SMS notification operations
type NotificationService interface {
	SendSMS(to, message string) error
}

// ApplicationsExporter renders applications as a spreadsheet
type ApplicationsExporter interface {
	Export(applications []*Application) ([]byte, error)
}

// AccountService defines account business logic
type AccountService interface {
	SignUp(ctx context.Context, in SignUpInput) (*Account, error)
	ConfirmEmail(ctx context.Context, token string) error
	Login(ctx context.Context, credential, password string) (*LoginResult, error)
	UpdateAccount(ctx context.Context, actor Principal, in AccountUpdate) (*Account, error)
	DeleteAccount(ctx context.Context, actor Principal) error
	GetAccount(ctx context.Context, actor Principal) (*Account, error)
	GetProfile(ctx context.Context, accountID string) (*Account, error)
	UpdatePassword(ctx context.Context, actor Principal, oldPassword, newPassword string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	AccountsByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]*Account, error)
}

// CompanyService defines company business logic
type CompanyService interface {
	Create(ctx context.Context, actor Principal, in CompanyInput) (*Company, error)
	Update(ctx context.Context, actor Principal, companyID string, in CompanyUpdate) (*Company, error)
	Delete(ctx context.Context, actor Principal, companyID string) error
	Get(ctx context.Context, companyID string) (*Company, []*Job, error)
	Search(ctx context.Context, name string) ([]*Company, error)
	ApplicationsForJob(ctx context.Context, actor Principal, jobID string) ([]*Application, error)
	ApplicationsReport(ctx context.Context, actor Principal, companyID string, day time.Time) ([]byte, error)
}

// JobService defines job business logic
type JobService interface {
	Create(ctx context.Context, actor Principal, in JobInput) (*Job, error)
	Update(ctx context.Context, actor Principal, jobID string, in JobUpdate) (*Job, error)
	Delete(ctx context.Context, actor Principal, jobID string) error
	List(ctx context.Context) ([]*Job, error)
	ListForCompanyName(ctx context.Context, companyName string) ([]*Job, error)
	Filter(ctx context.Context, filter JobFilter) ([]*Job, error)
	Apply(ctx context.Context, actor Principal, jobID string, in ApplicationInput) (*Application, error)
}
