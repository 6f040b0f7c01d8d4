// Package config provides configuration loading and validation for the
// portfolio builder service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the service configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or environment
// overrides.
type Config struct {
	Port             int    `json:"port,omitempty"`              // HTTP listen port
	BaseURL          string `json:"base_url,omitempty"`          // Public base URL for generated site links
	OutputDir        string `json:"output_dir,omitempty"`        // Root directory for generated sites
	Template         string `json:"template,omitempty"`          // Path to portfolio HTML template
	Styles           string `json:"styles,omitempty"`            // Path to stylesheet copied into sites
	Vocabulary       string `json:"vocabulary,omitempty"`        // Path to heading vocabulary YAML (optional)
	MaxUploadMB      int    `json:"max_upload_mb,omitempty"`     // Upload size cap in megabytes
	RetentionMinutes int    `json:"retention_minutes,omitempty"` // TTL for stored uploads
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:             8080,
		BaseURL:          "http://localhost:8080",
		OutputDir:        "generated_sites",
		Template:         "templates/portfolio.html.tmpl",
		Styles:           "templates/styles.css",
		MaxUploadMB:      10,
		RetentionMinutes: 30,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// FromEnv overrides config fields from environment variables.
func (c *Config) FromEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("TEMPLATE_PATH"); v != "" {
		c.Template = v
	}
	if v := os.Getenv("STYLES_PATH"); v != "" {
		c.Styles = v
	}
	if v := os.Getenv("VOCABULARY_PATH"); v != "" {
		c.Vocabulary = v
	}
}

// MergeWithDefaults returns a new Config with zero-value fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Styles == "" {
		result.Styles = defaults.Styles
	}
	if result.Vocabulary == "" {
		result.Vocabulary = defaults.Vocabulary
	}
	if result.MaxUploadMB == 0 {
		result.MaxUploadMB = defaults.MaxUploadMB
	}
	if result.RetentionMinutes == 0 {
		result.RetentionMinutes = defaults.RetentionMinutes
	}

	return result
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535")
	}
	if c.MaxUploadMB < 1 {
		return fmt.Errorf("config error: 'max_upload_mb' must be positive")
	}
	if c.RetentionMinutes < 1 {
		return fmt.Errorf("config error: 'retention_minutes' must be positive")
	}
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}
	if c.Styles != "" {
		if _, err := os.Stat(c.Styles); os.IsNotExist(err) {
			return fmt.Errorf("config error: stylesheet not found: %s", c.Styles)
		}
	}
	if c.Vocabulary != "" {
		if _, err := os.Stat(c.Vocabulary); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.Vocabulary)
		}
	}
	return nil
}
