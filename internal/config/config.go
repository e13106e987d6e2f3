package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/you/jobsvc/domain"
)

const defaultConfigPath = "config/config.yml"

type AppConfig struct {
	Port            int    `yaml:"port"`
	GinMode         string `yaml:"gin_mode"`
	PublicURL       string `yaml:"public_url"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	DSN      string `yaml:"dsn"`
	LogLevel string `yaml:"log_level"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type TokensConfig struct {
	LoginSecret        string `yaml:"login_secret"`
	ConfirmationSecret string `yaml:"confirmation_secret"`
	ResetSecret        string `yaml:"reset_secret"`
	LoginTTL           string `yaml:"login_ttl"`
	ConfirmationTTL    string `yaml:"confirmation_ttl"`
	ResetTTL           string `yaml:"reset_ttl"`
}

type PasswordConfig struct {
	Cost int `yaml:"cost"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type ConfigFile struct {
	App       AppConfig       `yaml:"app"`
	Log       LogConfig       `yaml:"log"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Tokens    TokensConfig    `yaml:"tokens"`
	Password  PasswordConfig  `yaml:"password"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Twilio    TwilioConfig    `yaml:"twilio"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type Config struct {
	Port            string
	GinMode         string
	PublicURL       string
	ShutdownTimeout time.Duration

	LogLevel  string
	LogFormat string

	DBDriver   string
	DSN        string
	DBLogLevel string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LoginSecret        string
	ConfirmationSecret string
	ResetSecret        string
	// LoginTTL of zero issues login tokens without expiry.
	LoginTTL        time.Duration
	ConfirmationTTL time.Duration
	ResetTTL        time.Duration

	BcryptCost int

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	TwilioSID   string
	TwilioToken string
	TwilioFrom  string

	RateLimitRPS   float64
	RateLimitBurst int
}

// Secrets returns the per-purpose signing secrets.
func (c *Config) Secrets() domain.PurposeSecrets {
	return domain.PurposeSecrets{
		domain.PurposeLogin:        c.LoginSecret,
		domain.PurposeConfirmation: c.ConfirmationSecret,
		domain.PurposeReset:        c.ResetSecret,
	}
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("app port is required"))
	}
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("unsupported database driver %q", c.DBDriver))
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("unsupported gin mode %q", c.GinMode))
	}
	if c.DSN == "" {
		errs = append(errs, errors.New("database dsn is required"))
	}
	if err := c.Secrets().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.LoginTTL < 0 {
		errs = append(errs, errors.New("login ttl must not be negative"))
	}
	if c.ConfirmationTTL <= 0 || c.ResetTTL <= 0 {
		errs = append(errs, errors.New("confirmation and reset ttl must be positive"))
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		errs = append(errs, errors.New("rate limit values must not be negative"))
	}
	return errors.Join(errs...)
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads .env, the YAML file named by CONFIG_PATH and environment overrides.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()
	return LoadFrom(env("CONFIG_PATH", defaultConfigPath))
}

// LoadFrom builds a Config from the YAML file at path (optional) and the environment.
func LoadFrom(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	applyDefaults(configFile)

	cfg := &Config{
		Port:               env("APP_PORT", strconv.Itoa(configFile.App.Port)),
		GinMode:            env("GIN_MODE", configFile.App.GinMode),
		PublicURL:          strings.TrimRight(env("PUBLIC_URL", configFile.App.PublicURL), "/"),
		LogLevel:           env("LOG_LEVEL", configFile.Log.Level),
		LogFormat:          env("LOG_FORMAT", configFile.Log.Format),
		DBDriver:           env("DATABASE_DRIVER", configFile.Database.Driver),
		DSN:                env("DATABASE_DSN", configFile.Database.DSN),
		DBLogLevel:         env("DATABASE_LOG_LEVEL", configFile.Database.LogLevel),
		RedisAddr:          env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:      env("REDIS_PASSWORD", configFile.Redis.Password),
		LoginSecret:        env("LOGIN_SECRET", configFile.Tokens.LoginSecret),
		ConfirmationSecret: env("CONFIRMATION_SECRET", configFile.Tokens.ConfirmationSecret),
		ResetSecret:        env("RESET_PASSWORD_SECRET", configFile.Tokens.ResetSecret),
		SMTPHost:           env("SMTP_HOST", configFile.SMTP.Host),
		SMTPUsername:       env("SMTP_USERNAME", configFile.SMTP.Username),
		SMTPPassword:       env("SMTP_PASSWORD", configFile.SMTP.Password),
		SMTPFrom:           env("SMTP_FROM", configFile.SMTP.From),
		TwilioSID:          env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:        env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:         env("TWILIO_FROM_NUMBER", configFile.Twilio.FromNumber),
	}

	if cfg.RedisDB, err = envInt("REDIS_DB", configFile.Redis.DB); err != nil {
		return nil, err
	}
	if cfg.BcryptCost, err = envInt("SALT_ROUNDS", configFile.Password.Cost); err != nil {
		return nil, err
	}
	if cfg.SMTPPort, err = envInt("SMTP_PORT", configFile.SMTP.Port); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = envInt("RATE_LIMIT_BURST", configFile.RateLimit.Burst); err != nil {
		return nil, err
	}
	cfg.RateLimitRPS = configFile.RateLimit.RPS
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if cfg.RateLimitRPS, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
		}
	}

	// Parse duration strings
	if cfg.ShutdownTimeout, err = time.ParseDuration(env("SHUTDOWN_TIMEOUT", configFile.App.ShutdownTimeout)); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}
	if cfg.LoginTTL, err = time.ParseDuration(env("LOGIN_TTL", configFile.Tokens.LoginTTL)); err != nil {
		return nil, fmt.Errorf("invalid login token TTL: %w", err)
	}
	if cfg.ConfirmationTTL, err = time.ParseDuration(env("CONFIRMATION_TTL", configFile.Tokens.ConfirmationTTL)); err != nil {
		return nil, fmt.Errorf("invalid confirmation token TTL: %w", err)
	}
	if cfg.ResetTTL, err = time.ParseDuration(env("RESET_TTL", configFile.Tokens.ResetTTL)); err != nil {
		return nil, fmt.Errorf("invalid reset token TTL: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyDefaults(f *ConfigFile) {
	if f.App.Port == 0 {
		f.App.Port = 8080
	}
	if f.App.GinMode == "" {
		f.App.GinMode = "release"
	}
	if f.App.ShutdownTimeout == "" {
		f.App.ShutdownTimeout = "10s"
	}
	if f.Log.Level == "" {
		f.Log.Level = "info"
	}
	if f.Log.Format == "" {
		f.Log.Format = "text"
	}
	if f.Database.Driver == "" {
		f.Database.Driver = "postgres"
	}
	if f.Database.LogLevel == "" {
		f.Database.LogLevel = "warn"
	}
	if f.Tokens.LoginTTL == "" {
		f.Tokens.LoginTTL = "24h"
	}
	if f.Tokens.ConfirmationTTL == "" {
		f.Tokens.ConfirmationTTL = "1h"
	}
	if f.Tokens.ResetTTL == "" {
		f.Tokens.ResetTTL = "15m"
	}
	if f.SMTP.Port == 0 {
		f.SMTP.Port = 587
	}
	if f.RateLimit.RPS == 0 {
		f.RateLimit.RPS = 1
	}
	if f.RateLimit.Burst == 0 {
		f.RateLimit.Burst = 5
	}
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", k, err)
	}
	return i, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	var config ConfigFile
	bytes, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
