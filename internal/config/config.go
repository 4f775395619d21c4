package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// MinHeaderWidth is the narrowest header box that still fits a border,
// padding and at least a few characters of title.
const MinHeaderWidth = 12

// Config holds the settings for one run of the employee directory.
type Config struct {
	Storage   StorageConfig   `yaml:"storage"`
	Display   DisplayConfig   `yaml:"display"`
	Bootstrap BootstrapConfig `yaml:"bootstrap"`
	Audit     AuditConfig     `yaml:"audit"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// StorageConfig holds the location of the employee record files.
type StorageConfig struct {
	Dir string `yaml:"dir"`
}

// DisplayConfig holds console rendering settings.
type DisplayConfig struct {
	HeaderWidth int  `yaml:"header_width"`
	ANSI        bool `yaml:"ansi"`
}

// BootstrapConfig describes the record written when the storage directory
// is created on first run. These credentials are documented, not secret.
type BootstrapConfig struct {
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

// AuditConfig holds the activity log location. An empty database path
// disables the activity log.
type AuditConfig struct {
	Database string `yaml:"database"`
}

// LoggingConfig holds the diagnostics destination. An empty file means stderr.
type LoggingConfig struct {
	File string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Dir: "employees",
		},
		Display: DisplayConfig{
			HeaderWidth: 44,
			ANSI:        true,
		},
		Bootstrap: BootstrapConfig{
			Username:  "testing",
			Password:  "password",
			FirstName: "System",
			LastName:  "Administrator",
		},
		Audit: AuditConfig{
			Database: "./data/audit.db",
		},
		Logging: LoggingConfig{
			File: "./data/employees.log",
		},
	}
}

// Load reads a YAML config file over the defaults, then applies any
// EMPLOYEES_* overrides from the environment (and an optional .env file).
// A missing config file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	// .env is optional; only a malformed file is worth reporting.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("EMPLOYEES_STORAGE_DIR"); ok {
		c.Storage.Dir = v
	}
	if v, ok := os.LookupEnv("EMPLOYEES_HEADER_WIDTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("EMPLOYEES_HEADER_WIDTH: %w", err)
		}
		c.Display.HeaderWidth = n
	}
	if v, ok := os.LookupEnv("EMPLOYEES_ANSI"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("EMPLOYEES_ANSI: %w", err)
		}
		c.Display.ANSI = b
	}
	if v, ok := os.LookupEnv("EMPLOYEES_AUDIT_DB"); ok {
		c.Audit.Database = v
	}
	if v, ok := os.LookupEnv("EMPLOYEES_LOG_FILE"); ok {
		c.Logging.File = v
	}
	return nil
}

// Validate checks the settings that have no usable fallback.
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return fmt.Errorf("storage.dir must not be empty")
	}
	if c.Display.HeaderWidth < MinHeaderWidth {
		return fmt.Errorf("display.header_width must be at least %d, got %d", MinHeaderWidth, c.Display.HeaderWidth)
	}
	if c.Bootstrap.Username == "" {
		return fmt.Errorf("bootstrap.username must not be empty")
	}
	return nil
}
