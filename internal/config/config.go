package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all application configuration.
// Values come from an optional YAML file; environment variables override them.
type Config struct {
	BindAddr        string        `yaml:"bind_addr" env:"BIND_ADDR" env-default:""`
	Port            string        `yaml:"port" env:"PORT" env-default:"8080"`
	StaticDir       string        `yaml:"static_dir" env:"STATIC_DIR" env-default:"static"`
	AssetPrefix     string        `yaml:"asset_prefix" env:"ASSET_PREFIX" env-default:"/static"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
	AllowedOrigins  []string      `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-separator:","`

	Site      SiteConfig      `yaml:"site"`
	Timeline  TimelineConfig  `yaml:"timeline"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	Log       LogConfig       `yaml:"log"`
}

// SiteConfig holds page level settings
type SiteConfig struct {
	Title   string `yaml:"title" env:"SITE_TITLE" env-default:"Portfolio"`
	Heading string `yaml:"heading" env:"SITE_HEADING" env-default:"Latest Works"`
}

// TimelineConfig holds settings for the projects section
type TimelineConfig struct {
	// Seed fixes the background layout. Zero draws a new seed at startup.
	Seed       uint64 `yaml:"seed" env:"SEED" env-default:"0"`
	Theme      string `yaml:"theme" env:"THEME" env-default:""`
	ThemesFile string `yaml:"themes_file" env:"THEMES_FILE" env-default:""`
	TrackHover bool   `yaml:"track_hover" env:"TRACK_HOVER" env-default:"false"`

	// DirectLinks writes project URLs into the page instead of /go redirects
	DirectLinks bool `yaml:"direct_links" env:"DIRECT_LINKS" env-default:"false"`
}

// AnalyticsConfig holds the optional sqlite store settings.
// An empty DSN disables analytics.
type AnalyticsConfig struct {
	DSN             string `yaml:"dsn" env:"ANALYTICS_DSN" env-default:""`
	RetentionMonths int    `yaml:"retention_months" env:"ANALYTICS_RETENTION_MONTHS" env-default:"12"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level      string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format     string `yaml:"format" env:"LOG_FORMAT" env-default:"console"`
	File       string `yaml:"file" env:"LOG_FILE" env-default:""`
	MaxSizeMB  int    `yaml:"max_size_mb" env:"LOG_MAX_SIZE_MB" env-default:"10"`
	MaxBackups int    `yaml:"max_backups" env:"LOG_MAX_BACKUPS" env-default:"3"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"28"`
	Compress   bool   `yaml:"compress" env:"LOG_COMPRESS" env-default:"false"`
}

// Load reads configuration from path (if it exists) with environment
// variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else if errors.Is(err, os.ErrNotExist) {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	} else {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.Analytics.RetentionMonths < 0 {
		return errors.New("analytics.retention_months must not be negative")
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported log format: %s", c.Log.Format)
	}
	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return net.JoinHostPort(c.BindAddr, c.Port)
}
