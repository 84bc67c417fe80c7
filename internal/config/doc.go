// Package config handles configuration loading for the operator console.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults.
//
// # Configuration File
//
// The console reads the path given with -config; with no file, built-in
// defaults apply.
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	api:
//	  base_url: "http://${BANK_HOST}:8000/api/v1"
//
// Syntax: ${VAR_NAME} or $VAR_NAME
//
// # Environment Overrides
//
// These variables override the file after loading:
//
//   - BANKDESK_API_BASE_URL
//   - BANKDESK_TOKEN_PATH
//   - BANKDESK_LOG_LEVEL
//
// # Configuration Sections
//
// API endpoint:
//
//	api:
//	  base_url: "http://localhost:8000/api/v1"
//
// Credential slot:
//
//	token:
//	  path: "~/.config/bankdesk/token"
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// # Validation
//
// Load() validates that the API base URL uses http or https.
package config
