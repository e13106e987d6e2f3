package repositories

import (
	"fmt"

	"gorm.io/gorm"
)

// AutoMigrate performs database migration for all required tables
func AutoMigrate(db *gorm.DB) error {
	models := []any{
		&DBAccount{},
		&DBCompany{},
		&DBJob{},
		&DBApplication{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", m, err)
		}
	}
	return nil
}
