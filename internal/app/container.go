package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/you/jobsvc/domain"
	"github.com/you/jobsvc/internal/config"
	httpx "github.com/you/jobsvc/internal/http"
	"github.com/you/jobsvc/internal/http/handlers"
	"github.com/you/jobsvc/internal/http/middleware"
	"github.com/you/jobsvc/internal/infrastructure/auth"
	"github.com/you/jobsvc/internal/infrastructure/database"
	"github.com/you/jobsvc/internal/infrastructure/export"
	"github.com/you/jobsvc/internal/infrastructure/notifications"
	"github.com/you/jobsvc/internal/infrastructure/repositories"
	"github.com/you/jobsvc/internal/logging"
	"github.com/you/jobsvc/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config
	Log    logging.Logger

	// Infrastructure
	DB          *gorm.DB
	RedisClient *database.RedisClient

	// Repositories
	AccountRepo     domain.AccountRepository
	CompanyRepo     domain.CompanyRepository
	JobRepo         domain.JobRepository
	ApplicationRepo domain.ApplicationRepository
	TokenLedger     domain.TokenLedger

	// Services
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	Mailer          domain.Mailer
	NotificationSvc domain.NotificationService
	Exporter        domain.ApplicationsExporter
	AuditLog        domain.AuditLogger
	AccountSvc      domain.AccountService
	CompanySvc      domain.CompanyService
	JobSvc          domain.JobService

	// HTTP
	Metrics *middleware.Metrics
	Router  *gin.Engine
}

// Option overrides a dependency before the services are built.
type Option func(*Container)

// WithMailer replaces the SMTP mailer.
func WithMailer(m domain.Mailer) Option {
	return func(c *Container) { c.Mailer = m }
}

// WithNotificationService replaces the Twilio SMS sender.
func WithNotificationService(n domain.NotificationService) Option {
	return func(c *Container) { c.NotificationSvc = n }
}

// NewContainer creates and initializes all dependencies
func NewContainer(ctx context.Context, cfg *config.Config, log logging.Logger, opts ...Option) (*Container, error) {
	container := &Container{Config: cfg, Log: log}
	for _, opt := range opts {
		opt(container)
	}

	// Initialize infrastructure
	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initRedis(ctx); err != nil {
		container.Close()
		return nil, err
	}

	// Initialize repositories
	container.initRepositories()

	// Initialize services
	if err := container.initServices(); err != nil {
		container.Close()
		return nil, err
	}

	container.initRouter()
	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DBDriver, c.Config.DSN, c.Config.DBLogLevel, c.Log)
	if err != nil {
		return err
	}

	// Auto-migrate
	if err := repositories.AutoMigrate(db); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	c.DB = db
	return nil
}

func (c *Container) initRedis(ctx context.Context) error {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
	if err := c.RedisClient.Ping(ctx); err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", c.Config.RedisAddr, err)
	}
	return nil
}

func (c *Container) initRepositories() {
	c.AccountRepo = repositories.NewAccountRepository(c.DB)
	c.CompanyRepo = repositories.NewCompanyRepository(c.DB)
	c.JobRepo = repositories.NewJobRepository(c.DB)
	c.ApplicationRepo = repositories.NewApplicationRepository(c.DB)
	c.TokenLedger = repositories.NewTokenLedger(c.RedisClient)
}

func (c *Container) initServices() error {
	// Initialize basic services
	c.PasswordSvc = auth.NewPasswordService(c.Config.BcryptCost)
	tokenSvc, err := auth.NewJWTService(c.Config.Secrets())
	if err != nil {
		return fmt.Errorf("failed to create token service: %w", err)
	}
	c.TokenSvc = tokenSvc

	if c.Mailer == nil {
		c.Mailer = notifications.NewSMTPMailer(notifications.SMTPConfig{
			Host:     c.Config.SMTPHost,
			Port:     c.Config.SMTPPort,
			Username: c.Config.SMTPUsername,
			Password: c.Config.SMTPPassword,
			From:     c.Config.SMTPFrom,
		}, c.Log)
	}
	if c.NotificationSvc == nil {
		c.NotificationSvc = notifications.NewTwilioService(
			c.Config.TwilioSID,
			c.Config.TwilioToken,
			c.Config.TwilioFrom,
			c.Log,
		)
	}
	c.Exporter = export.NewApplicationsXLSX()
	c.AuditLog = logging.NewAuditLogger(c.Log)

	// Domain services
	c.AccountSvc = services.NewAccountService(
		c.AccountRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.TokenLedger,
		c.Mailer,
		c.NotificationSvc,
		c.AuditLog,
		c.Log,
		services.AccountConfig{
			PublicURL:       c.Config.PublicURL,
			LoginTTL:        c.Config.LoginTTL,
			ConfirmationTTL: c.Config.ConfirmationTTL,
			ResetTTL:        c.Config.ResetTTL,
		},
	)
	c.CompanySvc = services.NewCompanyService(c.CompanyRepo, c.JobRepo, c.ApplicationRepo, c.Exporter)
	c.JobSvc = services.NewJobService(c.JobRepo, c.CompanyRepo, c.ApplicationRepo)

	return nil
}

func (c *Container) initRouter() {
	c.Metrics = middleware.NewMetrics()

	var limiter *middleware.RateLimiter
	if c.Config.RateLimitRPS > 0 && c.Config.RateLimitBurst > 0 {
		limiter = middleware.NewRateLimiter(c.Config.RateLimitRPS, c.Config.RateLimitBurst)
	}

	c.Router = httpx.BuildRouter(
		handlers.NewUserHandlers(c.AccountSvc),
		handlers.NewCompanyHandlers(c.CompanySvc),
		handlers.NewJobHandlers(c.JobSvc),
		middleware.NewAuthMW(c.TokenSvc, c.AccountRepo),
		httpx.Deps{
			Log:     c.Log,
			Audit:   c.AuditLog,
			Metrics: c.Metrics,
			Limiter: limiter,
		},
	)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
