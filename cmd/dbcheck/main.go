package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/you/jobsvc/internal/config"
	"github.com/you/jobsvc/internal/infrastructure/database"
	"github.com/you/jobsvc/internal/infrastructure/repositories"
	"github.com/you/jobsvc/internal/logging"
)

// dbcheck verifies the configured database and redis are reachable and
// applies the schema migrations, without starting the API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	fmt.Println("Job Search database check")
	fmt.Println("=========================")
	fmt.Printf("Driver: %s\n", cfg.DBDriver)

	db, err := database.Open(cfg.DBDriver, cfg.DSN, cfg.DBLogLevel, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying sql.DB: %v", err)
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	fmt.Println("Database connection OK")

	if err := repositories.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	fmt.Println("Migrations applied")

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer rdb.Close()
	if err := rdb.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping redis at %s: %v", cfg.RedisAddr, err)
	}
	fmt.Printf("Redis connection OK (%s)\n", cfg.RedisAddr)
}
