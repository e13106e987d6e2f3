package handlers

import (
	"time"

	"github.com/you/jobsvc/domain"
)

// UserResponse is the public view of an account; the password hash is never serialized.
type UserResponse struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	UserName      string    `json:"userName"`
	Email         string    `json:"email"`
	RecoveryEmail string    `json:"recoveryEmail,omitempty"`
	DOB           string    `json:"DOB"`
	MobileNumber  string    `json:"mobileNumber"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	IsConfirmed   bool      `json:"isConfirmed"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProfileResponse is the view of another user's account.
type ProfileResponse struct {
	ID           string `json:"id"`
	UserName     string `json:"userName"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Role         string `json:"role"`
	Status       string `json:"status"`
}

type CompanyResponse struct {
	ID                string    `json:"id"`
	CompanyName       string    `json:"companyName"`
	Description       string    `json:"description"`
	Industry          string    `json:"industry"`
	Address           string    `json:"address"`
	NumberOfEmployees string    `json:"numberOfEmployees"`
	CompanyEmail      string    `json:"companyEmail"`
	CompanyHR         string    `json:"companyHR"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type JobResponse struct {
	ID              string           `json:"id"`
	JobTitle        string           `json:"jobTitle"`
	JobLocation     string           `json:"jobLocation"`
	WorkingTime     string           `json:"workingTime"`
	SeniorityLevel  string           `json:"seniorityLevel"`
	JobDescription  string           `json:"jobDescription"`
	TechnicalSkills []string         `json:"technicalSkills"`
	SoftSkills      []string         `json:"softSkills"`
	CompanyID       string           `json:"companyId"`
	Company         *CompanyResponse `json:"company,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

type ApplicationResponse struct {
	ID             string           `json:"id"`
	JobID          string           `json:"jobId"`
	UserID         string           `json:"userId"`
	UserTechSkills []string         `json:"userTechSkills"`
	UserSoftSkills []string         `json:"userSoftSkills"`
	UserResume     string           `json:"userResume"`
	Applicant      *ProfileResponse `json:"applicant,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}

func newUserResponse(a *domain.Account) UserResponse {
	resp := UserResponse{
		ID:            a.ID,
		FirstName:     a.FirstName,
		LastName:      a.LastName,
		UserName:      a.UserName,
		Email:         a.Email,
		RecoveryEmail: a.RecoveryEmail,
		MobileNumber:  a.MobileNumber,
		Role:          string(a.Role),
		Status:        string(a.Status),
		IsConfirmed:   a.IsConfirmed,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if !a.DOB.IsZero() {
		resp.DOB = a.DOB.Format(dateLayout)
	}
	return resp
}

func newUserResponses(accounts []*domain.Account) []UserResponse {
	out := make([]UserResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, newUserResponse(a))
	}
	return out
}

func newProfileResponse(a *domain.Account) ProfileResponse {
	return ProfileResponse{
		ID:           a.ID,
		UserName:     a.UserName,
		Email:        a.Email,
		MobileNumber: a.MobileNumber,
		Role:         string(a.Role),
		Status:       string(a.Status),
	}
}

func newCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:                c.ID,
		CompanyName:       c.Name,
		Description:       c.Description,
		Industry:          c.Industry,
		Address:           c.Address,
		NumberOfEmployees: string(c.NumberOfEmployees),
		CompanyEmail:      c.Email,
		CompanyHR:         c.HRID,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func newCompanyResponses(companies []*domain.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, newCompanyResponse(c))
	}
	return out
}

func newJobResponse(j *domain.Job) JobResponse {
	resp := JobResponse{
		ID:              j.ID,
		JobTitle:        j.Title,
		JobLocation:     string(j.Location),
		WorkingTime:     string(j.WorkingTime),
		SeniorityLevel:  string(j.SeniorityLevel),
		JobDescription:  j.Description,
		TechnicalSkills: nonNil(j.TechnicalSkills),
		SoftSkills:      nonNil(j.SoftSkills),
		CompanyID:       j.CompanyID,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
	if j.Company != nil {
		company := newCompanyResponse(j.Company)
		resp.Company = &company
	}
	return resp
}

func newJobResponses(jobs []*domain.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, newJobResponse(j))
	}
	return out
}

func newApplicationResponse(a *domain.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:             a.ID,
		JobID:          a.JobID,
		UserID:         a.UserID,
		UserTechSkills: nonNil(a.TechnicalSkills),
		UserSoftSkills: nonNil(a.SoftSkills),
		UserResume:     a.Resume,
		CreatedAt:      a.CreatedAt,
	}
	if a.Applicant != nil {
		p := newProfileResponse(a.Applicant)
		resp.Applicant = &p
	}
	return resp
}

func newApplicationResponses(applications []*domain.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(applications))
	for _, a := range applications {
		out = append(out, newApplicationResponse(a))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
