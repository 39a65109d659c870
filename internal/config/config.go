package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

type Config struct {
	Addr string `yaml:"addr"`

	DatabaseDriver string `yaml:"database_driver"`
	DatabaseURL    string `yaml:"database_url"`
	MigrationsPath string `yaml:"migrations_path"`

	RedisURL       string        `yaml:"redis_url"`
	RosterCacheTTL time.Duration `yaml:"roster_cache_ttl"`

	SessionLifetime time.Duration `yaml:"session_lifetime"`

	LeagueName string `yaml:"league_name"`
	Currency   string `yaml:"currency"`

	AllowedOrigins []string `yaml:"allowed_origins"`
}

func defaults() *Config {
	return &Config{
		Addr:            ":8080",
		DatabaseDriver:  DriverSQLite,
		DatabaseURL:     "poker_league.db?_journal_mode=WAL&_foreign_keys=on",
		RosterCacheTTL:  10 * time.Minute,
		SessionLifetime: 24 * time.Hour,
		LeagueName:      "Poker League",
		Currency:        "R",
		AllowedOrigins:  []string{"*"},
	}
}

// Load reads .env if present, then the optional YAML file named by CONFIG_FILE,
// then environment variables. Later sources win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "file://migrations/" + cfg.DatabaseDriver
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv("ADDR")); v != "" {
		c.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("DATABASE_DRIVER")); v != "" {
		c.DatabaseDriver = v
	}
	if v := strings.TrimSpace(os.Getenv("DATABASE_URL")); v != "" {
		c.DatabaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("MIGRATIONS_PATH")); v != "" {
		c.MigrationsPath = v
	}
	if v := strings.TrimSpace(os.Getenv("REDIS_URL")); v != "" {
		c.RedisURL = v
	}
	if v := strings.TrimSpace(os.Getenv("ROSTER_CACHE_TTL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid ROSTER_CACHE_TTL: %w", err)
		}
		c.RosterCacheTTL = d
	}
	if v := strings.TrimSpace(os.Getenv("SESSION_LIFETIME_HOURS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid SESSION_LIFETIME_HOURS %q", v)
		}
		c.SessionLifetime = time.Duration(n) * time.Hour
	}
	if v := strings.TrimSpace(os.Getenv("LEAGUE_NAME")); v != "" {
		c.LeagueName = v
	}
	if v := strings.TrimSpace(os.Getenv("CURRENCY")); v != "" {
		c.Currency = v
	}
	if v := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); v != "" {
		var origins []string
		for _, p := range strings.Split(v, ",") {
			if s := strings.TrimSpace(p); s != "" {
				origins = append(origins, s)
			}
		}
		c.AllowedOrigins = origins
	}
	return nil
}

func (c *Config) validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if c.Addr == "" {
		return fmt.Errorf("ADDR must not be empty")
	}
	return nil
}
