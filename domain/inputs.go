package domain

import "time"

// SignUpInput carries the fields of a new account
type SignUpInput struct {
	FirstName     string
	LastName      string
	Email         string
	Password      string
	RecoveryEmail string
	DOB           time.Time
	MobileNumber  string
	Role          Role
	// BaseURL prefixes the confirmation link sent by mail.
	BaseURL string
}

// LoginResult is returned on successful login
type LoginResult struct {
	Token   string
	Account *Account
}

// AccountUpdate holds optional account changes; nil fields are left untouched.
type AccountUpdate struct {
	Email         *string
	MobileNumber  *string
	RecoveryEmail *string
	DOB           *time.Time
	FirstName     *string
	LastName      *string
}

// Empty reports whether no field is set.
func (u AccountUpdate) Empty() bool {
	return u.Email == nil && u.MobileNumber == nil && u.RecoveryEmail == nil &&
		u.DOB == nil && u.FirstName == nil && u.LastName == nil
}

// CompanyInput carries the fields of a new company
type CompanyInput struct {
	Name              string
	Description       string
	Industry          string
	Address           string
	NumberOfEmployees EmployeeBand
	Email             string
}

// CompanyUpdate holds optional company changes
type CompanyUpdate struct {
	Name              *string
	Description       *string
	Industry          *string
	Address           *string
	NumberOfEmployees *EmployeeBand
	Email             *string
}

// JobInput carries the fields of a new job
type JobInput struct {
	Title           string
	Location        JobLocation
	WorkingTime     WorkingTime
	SeniorityLevel  SeniorityLevel
	Description     string
	TechnicalSkills []string
	SoftSkills      []string
}

// JobUpdate holds optional job changes
type JobUpdate struct {
	Title           *string
	Location        *JobLocation
	WorkingTime     *WorkingTime
	SeniorityLevel  *SeniorityLevel
	Description     *string
	TechnicalSkills []string
	SoftSkills      []string
}

// Empty reports whether no field is set.
func (u JobUpdate) Empty() bool {
	return u.Title == nil && u.Location == nil && u.WorkingTime == nil &&
		u.SeniorityLevel == nil && u.Description == nil &&
		u.TechnicalSkills == nil && u.SoftSkills == nil
}

// ApplicationInput carries an applicant's submission
type ApplicationInput struct {
	TechnicalSkills []string
	SoftSkills      []string
	Resume          string
}
