package repositories

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/you/jobsvc/domain"
)

var jobUpdateColumns = []string{
	"title", "location", "working_time", "seniority_level", "description",
	"technical_skills", "soft_skills", "version", "updated_at",
}

// JobRepositoryImpl implements domain.JobRepository using GORM
type JobRepositoryImpl struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *gorm.DB) *JobRepositoryImpl {
	return &JobRepositoryImpl{db: db}
}

// Create implements domain.JobRepository
func (r *JobRepositoryImpl) Create(ctx context.Context, job *domain.Job) error {
	row := jobToDB(job)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return translate(err)
	}
	job.CreatedAt = row.CreatedAt
	job.UpdatedAt = row.UpdatedAt
	return nil
}

// FindByID implements domain.JobRepository; the owning company is loaded too.
func (r *JobRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	var row DBJob
	if err := r.db.WithContext(ctx).Preload("Company").Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translate(err)
	}
	return jobToDomain(&row), nil
}

// List implements domain.JobRepository
func (r *JobRepositoryImpl) List(ctx context.Context) ([]*domain.Job, error) {
	var rows []DBJob
	if err := r.db.WithContext(ctx).Preload("Company").Order("created_at DESC, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return jobsToDomain(rows), nil
}

// ListByCompany implements domain.JobRepository
func (r *JobRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]*domain.Job, error) {
	var rows []DBJob
	if err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Order("created_at DESC, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return jobsToDomain(rows), nil
}

// Filter implements domain.JobRepository. Set fields are ANDed; technical
// skills match when the job lists any of them.
func (r *JobRepositoryImpl) Filter(ctx context.Context, filter domain.JobFilter) ([]*domain.Job, error) {
	q := r.db.WithContext(ctx).Preload("Company")
	if filter.WorkingTime != "" {
		q = q.Where("working_time = ?", string(filter.WorkingTime))
	}
	if filter.Location != "" {
		q = q.Where("location = ?", string(filter.Location))
	}
	if filter.SeniorityLevel != "" {
		q = q.Where("seniority_level = ?", string(filter.SeniorityLevel))
	}
	if filter.TitleContains != "" {
		q = q.Where(`LOWER(title) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(filter.TitleContains))+"%")
	}
	if len(filter.TechnicalSkills) > 0 {
		var anySkill *gorm.DB
		for _, skill := range filter.TechnicalSkills {
			pattern := skillPattern(skill)
			if anySkill == nil {
				anySkill = r.db.Where(`technical_skills LIKE ? ESCAPE '\'`, pattern)
			} else {
				anySkill = anySkill.Or(`technical_skills LIKE ? ESCAPE '\'`, pattern)
			}
		}
		q = q.Where(anySkill)
	}

	var rows []DBJob
	if err := q.Order("created_at DESC, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return jobsToDomain(rows), nil
}

// Update implements domain.JobRepository
func (r *JobRepositoryImpl) Update(ctx context.Context, job *domain.Job) error {
	row := jobToDB(job)
	row.Version = job.Version + 1
	row.UpdatedAt = time.Now()

	res := r.db.WithContext(ctx).Model(&DBJob{}).
		Where("id = ? AND version = ?", job.ID, job.Version).
		Select(jobUpdateColumns).
		Updates(row)
	if err := checkCAS(ctx, r.db, res, &DBJob{}, job.ID); err != nil {
		return err
	}
	job.Version = row.Version
	job.UpdatedAt = row.UpdatedAt
	return nil
}

// Delete implements domain.JobRepository
func (r *JobRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&DBApplication{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&DBJob{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrRecordNotFound
		}
		return nil
	})
}

// skillPattern matches one element of the JSON-encoded skills column.
func skillPattern(skill string) string {
	encoded, _ := json.Marshal(skill)
	return "%" + escapeLike(string(encoded)) + "%"
}

var _ domain.JobRepository = (*JobRepositoryImpl)(nil)
