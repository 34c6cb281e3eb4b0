// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Provider names accepted by the "provider" setting.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	TargetPath string `json:"target_path,omitempty"` // Path to the rune definitions JSON file

	// Completion service
	Provider string `json:"provider,omitempty"` // Completion provider: "openai" or "gemini"
	Model    string `json:"model,omitempty"`    // Model identifier override
	APIKey   string `json:"api_key,omitempty"`  // API key for the completion service

	// Behavior
	MaxRetries int  `json:"max_retries,omitempty"` // Timeout retry budget (0 = retry forever)
	Save       bool `json:"save,omitempty"`        // Write accepted results back to the source file
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging. Target path existence is not
// checked here either: a path from the config file may be overridden by
// a CLI argument before it is ever used, and the loader reports missing
// files on its own.
func (c *Config) Validate() error {
	if c.Provider != "" && c.Provider != ProviderOpenAI && c.Provider != ProviderGemini {
		return fmt.Errorf("config error: 'provider' must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.Provider)
	}

	if c.MaxRetries < 0 {
		return fmt.Errorf("config error: 'max_retries' must be non-negative")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.TargetPath == "" {
		result.TargetPath = defaults.TargetPath
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Int fields: use default if zero
	if result.MaxRetries == 0 {
		result.MaxRetries = defaults.MaxRetries
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
