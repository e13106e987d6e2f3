package repositories

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/you/jobsvc/domain"
)

var companyUpdateColumns = []string{
	"name", "description", "industry", "address", "number_of_employees", "email", "version", "updated_at",
}

// CompanyRepositoryImpl implements domain.CompanyRepository using GORM
type CompanyRepositoryImpl struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepositoryImpl {
	return &CompanyRepositoryImpl{db: db}
}

// Create implements domain.CompanyRepository
func (r *CompanyRepositoryImpl) Create(ctx context.Context, company *domain.Company) error {
	row := companyToDB(company)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return translate(err)
	}
	company.CreatedAt = row.CreatedAt
	company.UpdatedAt = row.UpdatedAt
	return nil
}

// FindByID implements domain.CompanyRepository
func (r *CompanyRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByName implements domain.CompanyRepository
func (r *CompanyRepositoryImpl) FindByName(ctx context.Context, name string) (*domain.Company, error) {
	return r.findOne(ctx, "name = ?", name)
}

// FindByEmail implements domain.CompanyRepository
func (r *CompanyRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Company, error) {
	return r.findOne(ctx, "email = ?", email)
}

// FindByHR implements domain.CompanyRepository
func (r *CompanyRepositoryImpl) FindByHR(ctx context.Context, hrID string) (*domain.Company, error) {
	return r.findOne(ctx, "hr_id = ?", hrID)
}

// SearchByName implements domain.CompanyRepository with a case-insensitive contains match
func (r *CompanyRepositoryImpl) SearchByName(ctx context.Context, fragment string) ([]*domain.Company, error) {
	var rows []DBCompany
	pattern := "%" + escapeLike(strings.ToLower(fragment)) + "%"
	if err := r.db.WithContext(ctx).
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern).
		Order("name").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Company, 0, len(rows))
	for i := range rows {
		out = append(out, companyToDomain(&rows[i]))
	}
	return out, nil
}

// Update implements domain.CompanyRepository
func (r *CompanyRepositoryImpl) Update(ctx context.Context, company *domain.Company) error {
	row := companyToDB(company)
	row.Version = company.Version + 1
	row.UpdatedAt = time.Now()

	res := r.db.WithContext(ctx).Model(&DBCompany{}).
		Where("id = ? AND version = ?", company.ID, company.Version).
		Select(companyUpdateColumns).
		Updates(row)
	if err := checkCAS(ctx, r.db, res, &DBCompany{}, company.ID); err != nil {
		return err
	}
	company.Version = row.Version
	company.UpdatedAt = row.UpdatedAt
	return nil
}

// Delete implements domain.CompanyRepository. Jobs of the company and their
// applications are removed in the same transaction.
func (r *CompanyRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		jobIDs := tx.Model(&DBJob{}).Select("id").Where("company_id = ?", id)
		if err := tx.Where("job_id IN (?)", jobIDs).Delete(&DBApplication{}).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", id).Delete(&DBJob{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&DBCompany{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrRecordNotFound
		}
		return nil
	})
}

func (r *CompanyRepositoryImpl) findOne(ctx context.Context, query string, arg any) (*domain.Company, error) {
	var row DBCompany
	if err := r.db.WithContext(ctx).Where(query, arg).First(&row).Error; err != nil {
		return nil, translate(err)
	}
	return companyToDomain(&row), nil
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

var _ domain.CompanyRepository = (*CompanyRepositoryImpl)(nil)
