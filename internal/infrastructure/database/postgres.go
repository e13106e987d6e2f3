package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/you/jobsvc/internal/logging"
)

// Open creates a new database connection for driver ("postgres" or "sqlite").
func Open(driver, dsn, logLevel string, log logging.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	config := &gorm.Config{
		Logger:         NewGormLogger(log, logLevel),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	}

	db, err := gorm.Open(dialector, config)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	if driver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
		}
		// sqlite allows one writer; in-memory databases are per connection
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// NewGormLogger routes gorm's log output through log at the given level.
func NewGormLogger(log logging.Logger, level string) logger.Interface {
	return logger.New(gormWriter{log: log.With("component", "gorm")}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormLevel(level),
		IgnoreRecordNotFoundError: true,
	})
}

func gormLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info", "debug":
		return logger.Info
	default:
		return logger.Warn
	}
}

type gormWriter struct {
	log logging.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Info(context.Background(), fmt.Sprintf(format, args...))
}
