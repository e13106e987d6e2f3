package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/you/jobsvc/domain"
)

// DBAccount represents the database model for Account (with GORM tags)
type DBAccount struct {
	ID            string    `gorm:"primaryKey;size:26"`
	FirstName     string    `gorm:"size:64"`
	LastName      string    `gorm:"size:64"`
	UserName      string    `gorm:"size:130"`
	Email         string    `gorm:"uniqueIndex;size:255"`
	RecoveryEmail string    `gorm:"index;size:255"`
	DOB           time.Time `gorm:"column:dob"`
	MobileNumber  string    `gorm:"uniqueIndex;size:32"`
	PasswordHash  string    `gorm:"column:password"`
	Role          string    `gorm:"index;size:32"`
	IsConfirmed   bool
	Status        string `gorm:"size:16"`
	Version       int    `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "accounts"
}

// DBCompany represents the database model for Company
type DBCompany struct {
	ID                string `gorm:"primaryKey;size:26"`
	Name              string `gorm:"uniqueIndex;size:255"`
	Description       string
	Industry          string `gorm:"size:255"`
	Address           string
	NumberOfEmployees string `gorm:"size:16"`
	Email             string `gorm:"uniqueIndex;size:255"`
	HRID              string `gorm:"column:hr_id;uniqueIndex;size:26"`
	Version           int    `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName returns the table name for GORM
func (DBCompany) TableName() string {
	return "companies"
}

// DBJob represents the database model for Job
type DBJob struct {
	ID              string     `gorm:"primaryKey;size:26"`
	Title           string     `gorm:"size:100"`
	Location        string     `gorm:"index;size:16"`
	WorkingTime     string     `gorm:"index;size:16"`
	SeniorityLevel  string     `gorm:"index;size:16"`
	Description     string     `gorm:"size:1000"`
	TechnicalSkills []string   `gorm:"serializer:json"`
	SoftSkills      []string   `gorm:"serializer:json"`
	CompanyID       string     `gorm:"index;size:26"`
	Company         *DBCompany `gorm:"foreignKey:CompanyID"`
	Version         int        `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName returns the table name for GORM
func (DBJob) TableName() string {
	return "jobs"
}

// DBApplication represents the database model for Application
type DBApplication struct {
	ID              string     `gorm:"primaryKey;size:26"`
	JobID           string     `gorm:"index;size:26"`
	Job             *DBJob     `gorm:"foreignKey:JobID"`
	UserID          string     `gorm:"index;size:26"`
	User            *DBAccount `gorm:"foreignKey:UserID"`
	TechnicalSkills []string   `gorm:"serializer:json"`
	SoftSkills      []string   `gorm:"serializer:json"`
	Resume          string
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName returns the table name for GORM
func (DBApplication) TableName() string {
	return "applications"
}

// translate maps gorm errors to domain sentinels; anything else passes through.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrDuplicateRecord
	}
	return err
}

// checkCAS interprets the result of an UPDATE ... WHERE id = ? AND version = ?.
func checkCAS(ctx context.Context, db *gorm.DB, res *gorm.DB, model any, id string) error {
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	var n int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrRecordNotFound
	}
	return domain.ErrVersionConflict
}

func accountToDB(a *domain.Account) *DBAccount {
	return &DBAccount{
		ID:            a.ID,
		FirstName:     a.FirstName,
		LastName:      a.LastName,
		UserName:      a.UserName,
		Email:         a.Email,
		RecoveryEmail: a.RecoveryEmail,
		DOB:           a.DOB,
		MobileNumber:  a.MobileNumber,
		PasswordHash:  a.PasswordHash,
		Role:          string(a.Role),
		IsConfirmed:   a.IsConfirmed,
		Status:        string(a.Status),
		Version:       a.Version,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func accountToDomain(m *DBAccount) *domain.Account {
	if m == nil {
		return nil
	}
	return &domain.Account{
		ID:            m.ID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		UserName:      m.UserName,
		Email:         m.Email,
		RecoveryEmail: m.RecoveryEmail,
		DOB:           m.DOB,
		MobileNumber:  m.MobileNumber,
		PasswordHash:  m.PasswordHash,
		Role:          domain.Role(m.Role),
		IsConfirmed:   m.IsConfirmed,
		Status:        domain.AccountStatus(m.Status),
		Version:       m.Version,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func companyToDB(c *domain.Company) *DBCompany {
	return &DBCompany{
		ID:                c.ID,
		Name:              c.Name,
		Description:       c.Description,
		Industry:          c.Industry,
		Address:           c.Address,
		NumberOfEmployees: string(c.NumberOfEmployees),
		Email:             c.Email,
		HRID:              c.HRID,
		Version:           c.Version,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func companyToDomain(m *DBCompany) *domain.Company {
	if m == nil {
		return nil
	}
	return &domain.Company{
		ID:                m.ID,
		Name:              m.Name,
		Description:       m.Description,
		Industry:          m.Industry,
		Address:           m.Address,
		NumberOfEmployees: domain.EmployeeBand(m.NumberOfEmployees),
		Email:             m.Email,
		HRID:              m.HRID,
		Version:           m.Version,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func jobToDB(j *domain.Job) *DBJob {
	return &DBJob{
		ID:              j.ID,
		Title:           j.Title,
		Location:        string(j.Location),
		WorkingTime:     string(j.WorkingTime),
		SeniorityLevel:  string(j.SeniorityLevel),
		Description:     j.Description,
		TechnicalSkills: j.TechnicalSkills,
		SoftSkills:      j.SoftSkills,
		CompanyID:       j.CompanyID,
		Version:         j.Version,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
}

func jobToDomain(m *DBJob) *domain.Job {
	if m == nil {
		return nil
	}
	return &domain.Job{
		ID:              m.ID,
		Title:           m.Title,
		Location:        domain.JobLocation(m.Location),
		WorkingTime:     domain.WorkingTime(m.WorkingTime),
		SeniorityLevel:  domain.SeniorityLevel(m.SeniorityLevel),
		Description:     m.Description,
		TechnicalSkills: m.TechnicalSkills,
		SoftSkills:      m.SoftSkills,
		CompanyID:       m.CompanyID,
		Company:         companyToDomain(m.Company),
		Version:         m.Version,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func jobsToDomain(rows []DBJob) []*domain.Job {
	out := make([]*domain.Job, 0, len(rows))
	for i := range rows {
		out = append(out, jobToDomain(&rows[i]))
	}
	return out
}

func applicationToDB(a *domain.Application) *DBApplication {
	return &DBApplication{
		ID:              a.ID,
		JobID:           a.JobID,
		UserID:          a.UserID,
		TechnicalSkills: a.TechnicalSkills,
		SoftSkills:      a.SoftSkills,
		Resume:          a.Resume,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func applicationToDomain(m *DBApplication) *domain.Application {
	return &domain.Application{
		ID:              m.ID,
		JobID:           m.JobID,
		UserID:          m.UserID,
		TechnicalSkills: m.TechnicalSkills,
		SoftSkills:      m.SoftSkills,
		Resume:          m.Resume,
		Job:             jobToDomain(m.Job),
		Applicant:       accountToDomain(m.User),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
