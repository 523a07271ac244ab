// Package config provides configuration loading and validation for the
// advisor CLI and server. Values merge in order: defaults, JSON config file,
// environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Environment variable names recognized by FromEnv.
const (
	EnvDataDir        = "ADVISOR_DATA_DIR"
	EnvDatabaseURL    = "ADVISOR_DATABASE_URL"
	EnvPort           = "ADVISOR_PORT"
	EnvFuzzyThreshold = "ADVISOR_FUZZY_THRESHOLD"
	EnvQAFloor        = "ADVISOR_QA_FLOOR"
	EnvGeminiAPIKey   = "GEMINI_API_KEY"
)

// Config holds every tunable of the advisor. DataDir and DatabaseURL are
// mutually exclusive dataset sources; exactly one must be set.
type Config struct {
	DataDir     string `json:"data_dir,omitempty"`     // Directory of dataset JSON files
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL dataset source

	Port int `json:"port,omitempty" validate:"gte=0,lte=65535"`

	FuzzyThreshold float64 `json:"fuzzy_threshold,omitempty" validate:"gte=0,lte=1"`
	QAFloor        float64 `json:"qa_floor,omitempty" validate:"gte=0,lte=1"`
	MaxMissing     int     `json:"max_missing,omitempty" validate:"gte=0"`
	MaxSuggestions int     `json:"max_suggestions,omitempty" validate:"gte=0"`

	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Enables embedding-based semantic scoring
	GeminiModel  string `json:"gemini_model,omitempty"`
}

// Default returns the built-in defaults. Threshold and floor zero-values are
// resolved by the engines themselves; only serving defaults live here.
func Default() Config {
	return Config{
		DataDir: "data",
		Port:    8080,
	}
}

// Load reads a JSON config file and layers environment variables on top of
// it. An empty path skips the file and uses defaults plus environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
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
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromEnv overrides fields from environment variables. Unset or unparseable
// variables leave the current value alone.
func (c *Config) FromEnv() {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvDatabaseURL); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv(EnvFuzzyThreshold); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.FuzzyThreshold = f
		}
	}
	if v := os.Getenv(EnvQAFloor); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.QAFloor = f
		}
	}
	if v := os.Getenv(EnvGeminiAPIKey); v != "" {
		c.GeminiAPIKey = v
	}
}

// Validate checks field ranges and the dataset source rule. The default data
// directory yields to an explicitly configured database source.
func (c *Config) Validate() error {
	if c.DatabaseURL != "" && c.DataDir == Default().DataDir {
		c.DataDir = ""
	}
	if c.DataDir != "" && c.DatabaseURL != "" {
		return fmt.Errorf("config error: 'data_dir' and 'database_url' are mutually exclusive")
	}
	if c.DataDir == "" && c.DatabaseURL == "" {
		return fmt.Errorf("config error: one of 'data_dir' or 'database_url' is required")
	}

	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			first := errs[0]
			return fmt.Errorf("config error: field %q failed %q validation", first.Field(), first.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
