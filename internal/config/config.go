// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Source        SourceConfig        `yaml:"source"`
	Storage       StorageConfig       `yaml:"storage"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Alerts        AlertsConfig        `yaml:"alerts"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// SourceConfig defines the tcgcsv pricing source settings.
type SourceConfig struct {
	BaseURL      string          `yaml:"base_url"`
	Timeout      time.Duration   `yaml:"timeout"`
	MaxSets      int             `yaml:"max_sets"`
	SetsPerCycle int             `yaml:"sets_per_cycle"`
	FetchWorkers int             `yaml:"fetch_workers"`
	RateLimit    RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines outbound request rate limiting.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	Backend  string         `yaml:"backend"` // memory, file, postgres
	File     FileConfig     `yaml:"file"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// FileConfig defines the file backend settings.
type FileConfig struct {
	Path string `yaml:"path"`
}

// PostgresConfig defines PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns a PostgreSQL connection string.
func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		p.Host, p.Port, p.Name, p.User, p.Password, p.SSLMode,
	)
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// AlertsConfig defines alert dispatch behavior.
type AlertsConfig struct {
	DispatchWorkers int `yaml:"dispatch_workers"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings. The webhook URL set
// here seeds the settings store; the API can overwrite it at runtime.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applySourceDefaults(&cfg.Source)
	applyStorageDefaults(&cfg.Storage)
	applyScheduleDefaults(&cfg.Schedule)
	applyAlertsDefaults(&cfg.Alerts)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applySourceDefaults(s *SourceConfig) {
	if s.BaseURL == "" {
		s.BaseURL = "https://tcgcsv.com/tcgplayer/3"
	}
	if s.Timeout == 0 {
		s.Timeout = 30 * time.Second
	}
	if s.MaxSets == 0 {
		s.MaxSets = 50
	}
	if s.SetsPerCycle == 0 {
		s.SetsPerCycle = 10
	}
	if s.FetchWorkers == 0 {
		s.FetchWorkers = 4
	}
	if s.RateLimit.PerSecond == 0 {
		s.RateLimit.PerSecond = 5.0
	}
	if s.RateLimit.Burst == 0 {
		s.RateLimit.Burst = 10
	}
}

func applyStorageDefaults(s *StorageConfig) {
	if s.Backend == "" {
		s.Backend = "memory"
	}
	if s.File.Path == "" {
		s.File.Path = "data/pokepack.json"
	}
	if s.Postgres.Port == 0 {
		s.Postgres.Port = 5432
	}
	if s.Postgres.SSLMode == "" {
		s.Postgres.SSLMode = "disable"
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.RefreshInterval == 0 {
		s.RefreshInterval = 15 * time.Minute
	}
}

func applyAlertsDefaults(a *AlertsConfig) {
	if a.DispatchWorkers == 0 {
		a.DispatchWorkers = 4
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	switch cfg.Storage.Backend {
	case "memory":
	case "file":
		if cfg.Storage.File.Path == "" {
			errs = append(errs, fmt.Errorf("storage.file.path is required when backend is file"))
		}
	case "postgres":
		if cfg.Storage.Postgres.Host == "" {
			errs = append(errs, fmt.Errorf("storage.postgres.host is required when backend is postgres"))
		}
		if cfg.Storage.Postgres.Name == "" {
			errs = append(errs, fmt.Errorf("storage.postgres.name is required when backend is postgres"))
		}
		if cfg.Storage.Postgres.User == "" {
			errs = append(errs, fmt.Errorf("storage.postgres.user is required when backend is postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.backend must be memory, file, or postgres, got %q", cfg.Storage.Backend))
	}

	if cfg.Source.SetsPerCycle < 0 {
		errs = append(errs, fmt.Errorf("source.sets_per_cycle must not be negative"))
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", cfg.Logging.Level))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be text or json, got %q", cfg.Logging.Format))
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(errs, fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"))
	}

	return errors.Join(errs...)
}
