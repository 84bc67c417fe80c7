// ABOUTME: Tests for configuration loading and parsing
// ABOUTME: Covers YAML loading, env var expansion, overrides, and validation

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
api:
  base_url: "https://bank.example.com/api/v1"

token:
  path: "/tmp/bankdesk-test/token"

logging:
  level: "debug"
  format: "json"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.BaseURL != "https://bank.example.com/api/v1" {
		t.Errorf("expected base URL to be set, got %q", cfg.API.BaseURL)
	}
	if cfg.Token.Path != "/tmp/bankdesk-test/token" {
		t.Errorf("expected token path to be set, got %q", cfg.Token.Path)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8000/api/v1" {
		t.Errorf("expected default base URL, got %q", cfg.API.BaseURL)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %q", cfg.Logging.Level)
	}
}

func TestLoad_EnvVarExpansion(t *testing.T) {
	t.Setenv("TEST_BANK_HOST", "bank.internal")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	configContent := `
api:
  base_url: "http://${TEST_BANK_HOST}:8000/api/v1"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.BaseURL != "http://bank.internal:8000/api/v1" {
		t.Errorf("env var not expanded, got %q", cfg.API.BaseURL)
	}
}

func TestLoad_EnvOverridesWin(t *testing.T) {
	t.Setenv("BANKDESK_API_BASE_URL", "http://override:9000/api/v1")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.BaseURL != "http://override:9000/api/v1" {
		t.Errorf("env override not applied, got %q", cfg.API.BaseURL)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate_RejectsNonHTTPBaseURL(t *testing.T) {
	cfg := Default()
	cfg.API.BaseURL = "ftp://bank.example.com"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "base_url") {
		t.Errorf("unexpected error: %v", err)
	}
}
