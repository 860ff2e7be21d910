// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"` // Path to resume text file
	Cohort string `json:"cohort,omitempty"` // Path to cohort JSON file (alternative to database)

	// Cohort filters
	Industry  string `json:"industry,omitempty"`
	RoleLevel string `json:"role_level,omitempty"`

	// Behavior
	Pages       int    `json:"pages,omitempty"`        // Page-count hint; 0 means estimate from word count
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed report boxes
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for the reference store
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	// Validate mutually exclusive cohort sources
	if c.Cohort != "" && c.DatabaseURL != "" {
		return fmt.Errorf("config error: 'cohort' and 'database_url' are mutually exclusive")
	}

	if c.Pages < 0 {
		return fmt.Errorf("config error: 'pages' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Cohort != "" {
		if _, err := os.Stat(c.Cohort); os.IsNotExist(err) {
			return fmt.Errorf("config error: cohort file not found: %s", c.Cohort)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// DATABASE_URL from the environment is the final fallback for the database URL.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Cohort == "" {
		result.Cohort = defaults.Cohort
	}
	if result.Industry == "" {
		result.Industry = defaults.Industry
	}
	if result.RoleLevel == "" {
		result.RoleLevel = defaults.RoleLevel
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if result.Pages == 0 {
		result.Pages = defaults.Pages
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
