package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/you/jobsvc/domain"
)

var accountUpdateColumns = []string{
	"first_name", "last_name", "user_name", "email", "recovery_email", "dob",
	"mobile_number", "password", "role", "is_confirmed", "status", "version", "updated_at",
}

// AccountRepositoryImpl implements domain.AccountRepository using GORM
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepositoryImpl {
	return &AccountRepositoryImpl{db: db}
}

// Create implements domain.AccountRepository
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	row := accountToDB(account)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return translate(err)
	}
	account.CreatedAt = row.CreatedAt
	account.UpdatedAt = row.UpdatedAt
	return nil
}

// FindByID implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByEmail implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, "email = ?", email)
}

// FindByMobile implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByMobile(ctx context.Context, mobile string) (*domain.Account, error) {
	return r.findOne(ctx, "mobile_number = ?", mobile)
}

// FindByRecoveryEmail implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]*domain.Account, error) {
	var rows []DBAccount
	if err := r.db.WithContext(ctx).Where("recovery_email = ?", recoveryEmail).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Account, 0, len(rows))
	for i := range rows {
		out = append(out, accountToDomain(&rows[i]))
	}
	return out, nil
}

// Update implements domain.AccountRepository
func (r *AccountRepositoryImpl) Update(ctx context.Context, account *domain.Account) error {
	row := accountToDB(account)
	row.Version = account.Version + 1
	row.UpdatedAt = time.Now()

	res := r.db.WithContext(ctx).Model(&DBAccount{}).
		Where("id = ? AND version = ?", account.ID, account.Version).
		Select(accountUpdateColumns).
		Updates(row)
	if err := checkCAS(ctx, r.db, res, &DBAccount{}, account.ID); err != nil {
		return err
	}
	account.Version = row.Version
	account.UpdatedAt = row.UpdatedAt
	return nil
}

// SetStatus implements domain.AccountRepository
func (r *AccountRepositoryImpl) SetStatus(ctx context.Context, id string, status domain.AccountStatus) error {
	return r.setColumn(ctx, id, "status", string(status))
}

// SetPassword implements domain.AccountRepository
func (r *AccountRepositoryImpl) SetPassword(ctx context.Context, id, passwordHash string) error {
	return r.setColumn(ctx, id, "password", passwordHash)
}

func (r *AccountRepositoryImpl) setColumn(ctx context.Context, id, column string, value any) error {
	res := r.db.WithContext(ctx).Model(&DBAccount{}).
		Where("id = ?", id).
		Updates(map[string]any{
			column:       value,
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// Confirm implements domain.AccountRepository
func (r *AccountRepositoryImpl) Confirm(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&DBAccount{}).
		Where("id = ? AND is_confirmed = ?", id, false).
		Updates(map[string]any{
			"is_confirmed": true,
			"version":      gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// Delete implements domain.AccountRepository. The account's applications go with it.
func (r *AccountRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&DBApplication{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&DBAccount{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrRecordNotFound
		}
		return nil
	})
}

func (r *AccountRepositoryImpl) findOne(ctx context.Context, query string, arg any) (*domain.Account, error) {
	var row DBAccount
	if err := r.db.WithContext(ctx).Where(query, arg).First(&row).Error; err != nil {
		return nil, translate(err)
	}
	return accountToDomain(&row), nil
}

var _ domain.AccountRepository = (*AccountRepositoryImpl)(nil)
