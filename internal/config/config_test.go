package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
app:
  port: 9090
  public_url: http://jobs.test/
database:
  driver: sqlite
  dsn: file::memory:
tokens:
  login_secret: l
  confirmation_secret: c
  reset_secret: r
  login_ttl: 0s
  reset_ttl: 5m
password:
  cost: 6
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFrom_File(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://jobs.test", cfg.PublicURL)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, time.Duration(0), cfg.LoginTTL)
	assert.Equal(t, time.Hour, cfg.ConfirmationTTL)
	assert.Equal(t, 5*time.Minute, cfg.ResetTTL)
	assert.Equal(t, 6, cfg.BcryptCost)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 5, cfg.RateLimitBurst)
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "7070")
	t.Setenv("RESET_PASSWORD_SECRET", "reset-from-env")
	t.Setenv("SALT_ROUNDS", "8")
	t.Setenv("LOGIN_TTL", "2h")

	cfg, err := LoadFrom(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "reset-from-env", cfg.ResetSecret)
	assert.Equal(t, 8, cfg.BcryptCost)
	assert.Equal(t, 2*time.Hour, cfg.LoginTTL)
}

func TestLoadFrom_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", "file::memory:")
	t.Setenv("LOGIN_SECRET", "a")
	t.Setenv("CONFIRMATION_SECRET", "b")
	t.Setenv("RESET_PASSWORD_SECRET", "c")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.LoginTTL)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  map[string]string
	}{
		{
			name: "shared secrets",
			yaml: testYAML,
			env:  map[string]string{"RESET_PASSWORD_SECRET": "l"},
		},
		{
			name: "bad duration",
			yaml: testYAML,
			env:  map[string]string{"RESET_TTL": "soon"},
		},
		{
			name: "bad integer",
			yaml: testYAML,
			env:  map[string]string{"SALT_ROUNDS": "ten"},
		},
		{
			name: "unknown driver",
			yaml: testYAML,
			env:  map[string]string{"DATABASE_DRIVER": "mysql"},
		},
		{
			name: "broken yaml",
			yaml: "app: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadFrom(writeConfig(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestConfigSecrets(t *testing.T) {
	cfg := &Config{LoginSecret: "a", ConfirmationSecret: "b", ResetSecret: "c"}
	assert.NoError(t, cfg.Secrets().Validate())
}
