package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTOML = `
[server]
http_port = 8090

[database]
host = "db"
port = 5432
user = "shift"
password = "shift"
dbname = "shifts"

[logs]
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "shift-service"

[auth]
mode = "jwt"
jwt_secret = "from-file"

[workday]
timezone = "Europe/Paris"

[cors]
allowed_origins = ["http://dashboard.local"]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", sampleTOML)

	cfg, err := Load(path, filepath.Join(dir, "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, 8090, cfg.Server.HTTPPort)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "Europe/Paris", cfg.Workday.Timezone)
	assert.Equal(t, "worker", cfg.Auth.WorkerRole)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://dashboard.local"}, cfg.CORS.AllowedOrigins)
	assert.Contains(t, cfg.Database.DSN(), "dbname=shifts")
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", sampleTOML)

	t.Setenv("DB_HOST", "postgres.internal")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("WORKDAY_TIMEZONE", "UTC")

	cfg, err := Load(path, filepath.Join(dir, "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "postgres.internal", cfg.Database.Host)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "UTC", cfg.Workday.Timezone)
	assert.Equal(t, "shift", cfg.Database.User)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", sampleTOML)
	envFile := writeFile(t, dir, "test.env", "DB_PASSWORD=dotenv-secret\n")

	// godotenv не перезаписывает уже выставленные переменные
	t.Setenv("DB_PASSWORD", "")
	require.NoError(t, os.Unsetenv("DB_PASSWORD"))

	cfg, err := Load(path, envFile)

	require.NoError(t, err)
	assert.Equal(t, "dotenv-secret", cfg.Database.Password)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"bad port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"bad db port", func(c *Config) { c.Database.Port = 70000 }},
		{"bad log level", func(c *Config) { c.Logs.Level = "loud" }},
		{"unknown auth mode", func(c *Config) { c.Auth.Mode = "oauth" }},
		{"missing jwt secret", func(c *Config) { c.Auth.JWTSecret = "" }},
		{"bad timezone", func(c *Config) { c.Workday.Timezone = "Mars/Olympus" }},
		{"bad rate limit", func(c *Config) { c.RateLimit.Enabled = true; c.RateLimit.RPS = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Auth.JWTSecret = "secret"
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := Default()
	cfg.Auth.Mode = AuthModeHeader
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
