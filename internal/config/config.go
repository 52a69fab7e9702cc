// Package config provides configuration loading and validation for the
// resume builder server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the server configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or
// come from environment variables and CLI flags.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// AI
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	AIEndpoint string `json:"ai_endpoint,omitempty"` // Remote generation endpoint; empty uses the local service

	// Export
	ChromePath string `json:"chrome_path,omitempty"` // Headless browser binary for PDF export

	// Persistence
	SaveDebounceMS int `json:"save_debounce_ms,omitempty"` // Quiet period before autosave fires
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

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	return Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		AIEndpoint:  os.Getenv("AI_ENDPOINT"),
		ChromePath:  os.Getenv("CHROME_PATH"),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.SaveDebounceMS < 0 {
		return fmt.Errorf("config error: 'save_debounce_ms' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to layer config file values under flags and env vars.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.AIEndpoint == "" {
		result.AIEndpoint = defaults.AIEndpoint
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.SaveDebounceMS == 0 {
		result.SaveDebounceMS = defaults.SaveDebounceMS
	}

	return result
}

// SaveDebounce returns the configured autosave quiet period, or zero
// when unset so callers fall back to their default.
func (c *Config) SaveDebounce() time.Duration {
	return time.Duration(c.SaveDebounceMS) * time.Millisecond
}
