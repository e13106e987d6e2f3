package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/you/jobsvc/domain"
)

// ApplicationRepositoryImpl implements domain.ApplicationRepository using GORM
type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepositoryImpl {
	return &ApplicationRepositoryImpl{db: db}
}

// Create implements domain.ApplicationRepository
func (r *ApplicationRepositoryImpl) Create(ctx context.Context, application *domain.Application) error {
	row := applicationToDB(application)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return translate(err)
	}
	application.CreatedAt = row.CreatedAt
	application.UpdatedAt = row.UpdatedAt
	return nil
}

// ListByJob implements domain.ApplicationRepository
func (r *ApplicationRepositoryImpl) ListByJob(ctx context.Context, jobID string) ([]*domain.Application, error) {
	var rows []DBApplication
	if err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("User").
		Where("job_id = ?", jobID).
		Order("created_at, id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return applicationsToDomain(rows), nil
}

// ListByCompanyOnDay implements domain.ApplicationRepository. day is reduced
// to its UTC calendar date.
func (r *ApplicationRepositoryImpl) ListByCompanyOnDay(ctx context.Context, companyID string, day time.Time) ([]*domain.Application, error) {
	y, m, d := day.UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	var rows []DBApplication
	if err := r.db.WithContext(ctx).
		Select("applications.*").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.company_id = ?", companyID).
		Where("applications.created_at >= ? AND applications.created_at < ?", start, end).
		Preload("Job").
		Preload("User").
		Order("applications.created_at, applications.id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return applicationsToDomain(rows), nil
}

func applicationsToDomain(rows []DBApplication) []*domain.Application {
	out := make([]*domain.Application, 0, len(rows))
	for i := range rows {
		out = append(out, applicationToDomain(&rows[i]))
	}
	return out
}

var _ domain.ApplicationRepository = (*ApplicationRepositoryImpl)(nil)
