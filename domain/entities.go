package domain

import "time"

// AccountStatus reports whether the account holder currently has a login session.
type AccountStatus string

const (
	StatusOnline  AccountStatus = "online"
	StatusOffline AccountStatus = "offline"
)

// Account represents a person using the system
type Account struct {
	ID            string
	FirstName     string
	LastName      string
	UserName      string
	Email         string
	RecoveryEmail string
	DOB           time.Time
	MobileNumber  string
	PasswordHash  string
	Role          Role
	IsConfirmed   bool
	Status        AccountStatus
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Principal is the per-request snapshot of the authenticated account
type Principal struct {
	AccountID string
	Role      Role
	Confirmed bool
}

// EmployeeBand is the bucketed head count of a company
type EmployeeBand string

var EmployeeBands = []EmployeeBand{
	"1-10", "11-20", "21-50", "51-100", "101-200", "201-500", "501-1000", "1000+",
}

// Company represents an employer registered by a Company_HR account
type Company struct {
	ID                string
	Name              string
	Description       string
	Industry          string
	Address           string
	NumberOfEmployees EmployeeBand
	Email             string
	HRID              string
	Version           int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type JobLocation string

const (
	LocationOnsite   JobLocation = "onsite"
	LocationRemotely JobLocation = "remotely"
	LocationHybrid   JobLocation = "hybrid"
)

type WorkingTime string

const (
	PartTime WorkingTime = "part-time"
	FullTime WorkingTime = "full-time"
)

type SeniorityLevel string

const (
	SeniorityJunior   SeniorityLevel = "Junior"
	SeniorityMidLevel SeniorityLevel = "Mid-Level"
	SenioritySenior   SeniorityLevel = "Senior"
	SeniorityTeamLead SeniorityLevel = "Team-Lead"
	SeniorityCTO      SeniorityLevel = "CTO"
)

// Job represents a posting owned by a company
type Job struct {
	ID              string
	Title           string
	Location        JobLocation
	WorkingTime     WorkingTime
	SeniorityLevel  SeniorityLevel
	Description     string
	TechnicalSkills []string
	SoftSkills      []string
	CompanyID       string
	Company         *Company
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Application represents an account applying to a job
type Application struct {
	ID              string
	JobID           string
	UserID          string
	TechnicalSkills []string
	SoftSkills      []string
	Resume          string
	Job             *Job
	Applicant       *Account
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// JobFilter narrows job searches; zero-valued fields are ignored
type JobFilter struct {
	WorkingTime     WorkingTime
	Location        JobLocation
	SeniorityLevel  SeniorityLevel
	TitleContains   string
	TechnicalSkills []string
}

// Empty reports whether no filter field is set.
func (f JobFilter) Empty() bool {
	return f.WorkingTime == "" && f.Location == "" && f.SeniorityLevel == "" &&
		f.TitleContains == "" && len(f.TechnicalSkills) == 0
}
