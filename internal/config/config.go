package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ShiftService/pkg/logger"
)

const (
	AuthModeJWT    = "jwt"
	AuthModeHeader = "header"

	defaultEnvFile = ".env"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Auth      AuthConfig      `toml:"auth"`
	Workday   WorkdayConfig   `toml:"workday"`
	CORS      CORSConfig      `toml:"cors"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host" env:"DB_HOST"`
	Port            int    `toml:"port" env:"DB_PORT"`
	User            string `toml:"user" env:"DB_USER"`
	Password        string `toml:"password" env:"DB_PASSWORD"`
	DBName          string `toml:"dbname" env:"DB_NAME"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения к Postgres для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level" env:"LOG_LEVEL"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	Mode       string `toml:"mode"`
	JWTSecret  string `toml:"jwt_secret" env:"JWT_SECRET"`
	WorkerRole string `toml:"worker_role"`
	TokenTTL   int    `toml:"token_ttl"` // минуты, для cmd/tokengen
}

// TokenTTLDuration время жизни выпускаемых токенов
func (a AuthConfig) TokenTTLDuration() time.Duration {
	return time.Duration(a.TokenTTL) * time.Minute
}

type WorkdayConfig struct {
	// Timezone каноническая IANA зона, в которой считаются календарные дни смен
	Timezone string `toml:"timezone" env:"WORKDAY_TIMEZONE"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
	MaxAge         int      `toml:"max_age"` // секунды
}

type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "shift-service",
		},
		Auth: AuthConfig{
			Mode:       AuthModeJWT,
			WorkerRole: "worker",
			TokenTTL:   720,
		},
		Workday:   WorkdayConfig{Timezone: "UTC"},
		RateLimit: RateLimitConfig{RPS: 20, Burst: 40},
	}
}

// Load читает TOML файл поверх значений по умолчанию, затем .env (если есть)
// и переменные окружения. envFiles по умолчанию - ".env" в текущей директории.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if len(envFiles) == 0 {
		envFiles = []string{defaultEnvFile}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", file, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		return fmt.Errorf("config: invalid database.port %d", c.Database.Port)
	}
	if _, err := logger.ParseLevel(c.Logs.Level); err != nil {
		return fmt.Errorf("config: invalid logs.level: %w", err)
	}

	switch c.Auth.Mode {
	case AuthModeJWT:
		if c.Auth.JWTSecret == "" {
			return errors.New("config: auth.jwt_secret is required in jwt mode")
		}
	case AuthModeHeader:
	default:
		return fmt.Errorf("config: unknown auth.mode %q", c.Auth.Mode)
	}

	if _, err := time.LoadLocation(c.Workday.Timezone); err != nil {
		return fmt.Errorf("config: invalid workday.timezone %q: %w", c.Workday.Timezone, err)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return errors.New("config: rate_limit.rps and rate_limit.burst must be positive")
	}

	return nil
}
