// Package config loads server settings from, in increasing precedence, built-in
// defaults, an optional YAML file, a .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"event-board-api/internal/store"
)

const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Store struct {
	Driver            string `yaml:"driver" env:"STORE_DRIVER"`
	DataDir           string `yaml:"data_dir" env:"DATA_DIR"`
	PendingEventsFile string `yaml:"pending_events_file" env:"PENDING_EVENTS_FILE"`
	EventsFile        string `yaml:"events_file" env:"EVENTS_FILE"`
	RegistrationsFile string `yaml:"registrations_file" env:"REGISTRATIONS_FILE"`
	SQLiteDSN         string `yaml:"sqlite_dsn" env:"SQLITE_DSN"`
	DatabaseURL       string `yaml:"database_url" env:"DATABASE_URL"`
}

// Paths resolves the table files against DataDir.
func (s Store) Paths() store.Paths {
	join := func(name string) string {
		if filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(s.DataDir, name)
	}
	return store.Paths{
		PendingEvents: join(s.PendingEventsFile),
		Events:        join(s.EventsFile),
		Registrations: join(s.RegistrationsFile),
	}
}

type Config struct {
	GRPCPort        string        `yaml:"port" env:"PORT"`
	WebPort         string        `yaml:"web_port" env:"WEB_PORT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`

	JWTSecret         string `yaml:"jwt_secret" env:"JWT_SECRET"`
	AdminID           string `yaml:"admin_id" env:"ADMIN_ID"`
	AdminPassword     string `yaml:"admin_password" env:"ADMIN_PASSWORD"`
	AdminPasswordHash string `yaml:"admin_password_hash" env:"ADMIN_PASSWORD_HASH"`

	RateLimitRPS   float64 `yaml:"rate_limit_rps" env:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `yaml:"rate_limit_burst" env:"RATE_LIMIT_BURST"`

	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT"`

	Store Store `yaml:"store"`
}

func defaults() Config {
	return Config{
		GRPCPort:        "50051",
		WebPort:         "8080",
		ShutdownTimeout: 10 * time.Second,
		AdminID:         "admin",
		RateLimitRPS:    5,
		RateLimitBurst:  10,
		LogLevel:        "info",
		LogFormat:       "json",
		Store: Store{
			Driver:            DriverFile,
			DataDir:           ".",
			PendingEventsFile: "pending_events.csv",
			EventsFile:        "events.csv",
			RegistrationsFile: "registrations.csv",
			SQLiteDSN:         "eventboard.db",
		},
	}
}

// Load reads the YAML file at path when path is set. A missing .env file is
// not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	c := defaults()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	}
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.AdminID == "" {
		errs = append(errs, errors.New("ADMIN_ID must not be empty"))
	}
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		errs = append(errs, errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required"))
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("rate limit must be positive"))
	}
	switch c.Store.Driver {
	case DriverFile, DriverSQLite:
	case DriverPostgres:
		if c.Store.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver))
	}
	if _, err := c.level(); err != nil {
		errs = append(errs, err)
	}
	if f := strings.ToLower(c.LogFormat); f != "json" && f != "text" {
		errs = append(errs, fmt.Errorf("unknown LOG_FORMAT %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

func (c *Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return l, nil
}

// Logger builds the process logger writing to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	l, _ := c.level()
	opts := &slog.HandlerOptions{Level: l}
	if strings.EqualFold(c.LogFormat, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
