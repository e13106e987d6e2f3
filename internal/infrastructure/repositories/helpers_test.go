package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/you/jobsvc/domain"
	"github.com/you/jobsvc/internal/ids"
	"github.com/you/jobsvc/internal/infrastructure/database"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	require.NoError(t, err, "failed to connect database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every pooled connection would otherwise get its own empty database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, AutoMigrate(db), "failed to migrate database")
	return db
}

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := database.NewRedis(mr.Addr(), "", 0)
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func seedAccount(t *testing.T, repo *AccountRepositoryImpl, email, mobile string, role domain.Role) *domain.Account {
	t.Helper()
	a := &domain.Account{
		ID:           ids.New(),
		FirstName:    "Test",
		LastName:     "Person",
		UserName:     "Test Person",
		Email:        email,
		DOB:          time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC),
		MobileNumber: mobile,
		PasswordHash: "hash",
		Role:         role,
		Status:       domain.StatusOffline,
	}
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}

func seedCompany(t *testing.T, repo *CompanyRepositoryImpl, name, email, hrID string) *domain.Company {
	t.Helper()
	c := &domain.Company{
		ID:                ids.New(),
		Name:              name,
		Description:       "We build things",
		Industry:          "Software",
		Address:           "1 Main St",
		NumberOfEmployees: "11-20",
		Email:             email,
		HRID:              hrID,
	}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func seedJob(t *testing.T, repo *JobRepositoryImpl, companyID, title string, skills ...string) *domain.Job {
	t.Helper()
	j := &domain.Job{
		ID:              ids.New(),
		Title:           title,
		Location:        domain.LocationRemotely,
		WorkingTime:     domain.FullTime,
		SeniorityLevel:  domain.SenioritySenior,
		Description:     "Build and run services",
		TechnicalSkills: skills,
		SoftSkills:      []string{"communication"},
		CompanyID:       companyID,
	}
	require.NoError(t, repo.Create(context.Background(), j))
	return j
}
