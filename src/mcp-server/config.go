// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/Agoric/agoric-dev-mcp/src/internal/httpclient"
	"github.com/Agoric/agoric-dev-mcp/src/internal/trace"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// configSchema validates JSON configuration files before they are applied.
// Unknown top-level keys are rejected so a typo like "provider" instead of
// "providers" fails loudly instead of silently using defaults.
const configSchema = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"defaults": {
			"type": "object",
			"additionalProperties": false,
			"properties": {
				"pageSize": {"type": "integer", "minimum": 1, "maximum": 20},
				"timeoutSeconds": {"type": "integer", "minimum": 1},
				"retryAttempts": {"type": "integer", "minimum": 1, "maximum": 10},
				"retryDelayMs": {"type": "integer", "minimum": 1}
			}
		},
		"providers": {
			"type": "object",
			"additionalProperties": false,
			"properties": {
				"mintscanBaseUrl": {"type": "string"},
				"mintscanToken": {"type": "string"},
				"axelarscanGmpUrl": {"type": "string"},
				"etherscanBaseUrl": {"type": "string"},
				"etherscanApiKey": {"type": "string"}
			}
		}
	}
}`

// Config represents the MCP server configuration.
//
// Configuration can be loaded from a JSON or YAML file specified by the
// --config flag or the AGORIC_MCP_CONFIG_FILE environment variable, with
// defaults applied for any missing value. Provider credentials can also come
// from the environment (MINTSCAN_API_TOKEN, ETHERSCAN_API_KEY), including a
// .env file in the working directory.
type Config struct {
	// Defaults: Tuning for lookups and the shared HTTP client
	Defaults struct {
		// PageSize: Transactions fetched per account-history lookup (max 20)
		PageSize int `json:"pageSize" yaml:"pageSize"`
		// Timeout: Per-request timeout in seconds
		Timeout int `json:"timeoutSeconds" yaml:"timeoutSeconds"`
		// RetryAttempts: Total attempts per outbound request
		RetryAttempts int `json:"retryAttempts" yaml:"retryAttempts"`
		// RetryDelayMs: Delay before the first retry in milliseconds
		RetryDelayMs int `json:"retryDelayMs" yaml:"retryDelayMs"`
	} `json:"defaults" yaml:"defaults"`

	// Providers: Endpoints and credentials for the indexers the tools query
	Providers struct {
		// MintscanBaseURL: Mintscan API root
		MintscanBaseURL string `json:"mintscanBaseUrl,omitempty" yaml:"mintscanBaseUrl,omitempty"`
		// MintscanToken: Bearer token for Mintscan (or MINTSCAN_API_TOKEN env var)
		MintscanToken string `json:"mintscanToken,omitempty" yaml:"mintscanToken,omitempty"`
		// AxelarscanGMPURL: Axelarscan GMP API root
		AxelarscanGMPURL string `json:"axelarscanGmpUrl,omitempty" yaml:"axelarscanGmpUrl,omitempty"`
		// EtherscanBaseURL: Etherscan v2 API endpoint
		EtherscanBaseURL string `json:"etherscanBaseUrl,omitempty" yaml:"etherscanBaseUrl,omitempty"`
		// EtherscanKey: Etherscan API key (or ETHERSCAN_API_KEY env var)
		EtherscanKey string `json:"etherscanApiKey,omitempty" yaml:"etherscanApiKey,omitempty"`
	} `json:"providers" yaml:"providers"`
}

// detectConfigFormat determines the configuration file format from its
// extension. Matching is case-insensitive; anything but .yaml/.yml is
// treated as JSON.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// validateConfigSchema checks a JSON configuration document against
// configSchema and returns every violation in one error.
func validateConfigSchema(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(configSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("failed to validate config file: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("invalid config file: %s", strings.Join(problems, "; "))
}

// unmarshalConfig unmarshals configuration data based on the detected format.
// JSON documents are schema-validated first; YAML documents are converted to
// JSON and run through the same schema.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	if format == configFormatYAML {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
		jsonData, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to convert YAML config: %w", err)
		}
		data = jsonData
	}

	if err := validateConfigSchema(data); err != nil {
		return err
	}
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// loadConfig loads the server configuration or applies defaults.
//
// Configuration priority:
//  1. Default values are set
//  2. AGORIC_MCP_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults (if the file exists and validates)
//  4. Environment variables override file values (MINTSCAN_API_TOKEN, ETHERSCAN_API_KEY)
//
// A .env file in the working directory is loaded first when present, so
// local development does not require exporting credentials by hand.
func loadConfig(configPath string) (*Config, error) {
	// Best effort; a missing .env file is the normal case.
	_ = godotenv.Load()

	config := &Config{}
	config.Defaults.PageSize = trace.MaxPageSize
	config.Defaults.Timeout = 30
	config.Defaults.RetryAttempts = httpclient.DefaultMaxAttempts
	config.Defaults.RetryDelayMs = int(httpclient.DefaultBaseDelay / time.Millisecond)

	if configPath == "" {
		configPath = os.Getenv("AGORIC_MCP_CONFIG_FILE")
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
			return nil, err
		}

		if config.Defaults.PageSize <= 0 || config.Defaults.PageSize > trace.MaxPageSize {
			config.Defaults.PageSize = trace.MaxPageSize
		}
		if config.Defaults.Timeout <= 0 {
			config.Defaults.Timeout = 30
		}
		if config.Defaults.RetryAttempts <= 0 {
			config.Defaults.RetryAttempts = httpclient.DefaultMaxAttempts
		}
		if config.Defaults.RetryDelayMs <= 0 {
			config.Defaults.RetryDelayMs = int(httpclient.DefaultBaseDelay / time.Millisecond)
		}
	}

	if token := os.Getenv("MINTSCAN_API_TOKEN"); token != "" {
		config.Providers.MintscanToken = token
	}
	if key := os.Getenv("ETHERSCAN_API_KEY"); key != "" {
		config.Providers.EtherscanKey = key
	}

	return config, nil
}

// traceConfig maps the server configuration onto the trace service's
// provider settings.
func (c *Config) traceConfig() trace.Config {
	return trace.Config{
		MintscanBaseURL:  c.Providers.MintscanBaseURL,
		MintscanToken:    c.Providers.MintscanToken,
		AxelarscanGMPURL: c.Providers.AxelarscanGMPURL,
		EtherscanBaseURL: c.Providers.EtherscanBaseURL,
		EtherscanKey:     c.Providers.EtherscanKey,
		DefaultPageSize:  c.Defaults.PageSize,
	}
}

// httpConfig maps the server configuration onto the shared HTTP client
// settings.
func (c *Config) httpConfig(version string) httpclient.Config {
	return httpclient.Config{
		MaxAttempts: c.Defaults.RetryAttempts,
		BaseDelay:   time.Duration(c.Defaults.RetryDelayMs) * time.Millisecond,
		Timeout:     time.Duration(c.Defaults.Timeout) * time.Second,
		UserAgent:   "Agoric-Dev-MCP/" + version + " (+https://github.com/Agoric/agoric-dev-mcp)",
	}
}
