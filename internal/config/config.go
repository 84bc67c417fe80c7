// ABOUTME: Configuration loading and parsing for the bankdesk console
// ABOUTME: Supports YAML files with environment variable expansion and defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete console configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Token   TokenConfig   `yaml:"token"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig holds the banking API endpoint configuration.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

// TokenConfig holds the persisted credential slot location.
type TokenConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no config file is present.
// The token lives under the XDG config directory, next to where other
// console state would go.
func Default() *Config {
	return &Config{
		API:     APIConfig{BaseURL: "http://localhost:8000/api/v1"},
		Token:   TokenConfig{Path: defaultTokenPath()},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads a configuration file from the given path and returns a parsed
// Config. Environment variables in the format ${VAR_NAME} are expanded.
// Missing fields fall back to Default values. An empty path returns the
// defaults with environment overrides applied.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		expanded := expandEnvVars(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding
// environment variable values. Unset variables expand to empty strings.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// applyEnvOverrides lets environment variables win over file values, so a
// deployment can repoint the console without editing config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BANKDESK_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("BANKDESK_TOKEN_PATH"); v != "" {
		cfg.Token.Path = v
	}
	if v := os.Getenv("BANKDESK_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks that all required configuration fields are present and
// valid. Returns an error describing the first validation failure.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("api.base_url must be an http(s) URL, got %q", c.API.BaseURL)
	}
	if c.Token.Path == "" {
		return fmt.Errorf("token.path is required")
	}
	return nil
}

// defaultTokenPath resolves ~/.config/bankdesk/token, honoring
// XDG_CONFIG_HOME when set.
func defaultTokenPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "bankdesk-token"
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "bankdesk", "token")
}
