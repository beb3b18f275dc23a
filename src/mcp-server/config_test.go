// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agoric/agoric-dev-mcp/src/internal/httpclient"
	"github.com/Agoric/agoric-dev-mcp/src/internal/trace"
)

// clearConfigEnv neutralizes the environment variables loadConfig consults so
// tests are isolated from the developer's shell.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AGORIC_MCP_CONFIG_FILE", "")
	t.Setenv("MINTSCAN_API_TOKEN", "")
	t.Setenv("ETHERSCAN_API_KEY", "")
}

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)

	config, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, trace.MaxPageSize, config.Defaults.PageSize)
	assert.Equal(t, 30, config.Defaults.Timeout)
	assert.Equal(t, httpclient.DefaultMaxAttempts, config.Defaults.RetryAttempts)
	assert.Equal(t, int(httpclient.DefaultBaseDelay/time.Millisecond), config.Defaults.RetryDelayMs)
	assert.Empty(t, config.Providers.MintscanToken)
	assert.Empty(t, config.Providers.EtherscanKey)
}

func TestLoadConfigYAMLFile(t *testing.T) {
	clearConfigEnv(t)

	path := writeConfigFile(t, "config.yaml", `
defaults:
  pageSize: 5
  timeoutSeconds: 10
  retryAttempts: 2
  retryDelayMs: 100
providers:
  mintscanBaseUrl: https://apis.example.com/v1
  mintscanToken: file-token
  etherscanApiKey: file-key
`)

	config, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5, config.Defaults.PageSize)
	assert.Equal(t, 10, config.Defaults.Timeout)
	assert.Equal(t, 2, config.Defaults.RetryAttempts)
	assert.Equal(t, 100, config.Defaults.RetryDelayMs)
	assert.Equal(t, "https://apis.example.com/v1", config.Providers.MintscanBaseURL)
	assert.Equal(t, "file-token", config.Providers.MintscanToken)
	assert.Equal(t, "file-key", config.Providers.EtherscanKey)
}

func TestLoadConfigJSONFile(t *testing.T) {
	clearConfigEnv(t)

	path := writeConfigFile(t, "config.json", `{
		"defaults": {"pageSize": 7},
		"providers": {"axelarscanGmpUrl": "https://gmp.example.com"}
	}`)

	config, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 7, config.Defaults.PageSize)
	assert.Equal(t, "https://gmp.example.com", config.Providers.AxelarscanGMPURL)
	// Unset values keep their defaults.
	assert.Equal(t, 30, config.Defaults.Timeout)
}

func TestLoadConfigClampsOutOfRangeValues(t *testing.T) {
	clearConfigEnv(t)

	// Schema maximum for pageSize is 20, so an oversized value is rejected
	// at validation rather than silently clamped.
	path := writeConfigFile(t, "config.json", `{"defaults": {"pageSize": 50}}`)
	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	clearConfigEnv(t)

	path := writeConfigFile(t, "config.json", `{"provider": {"mintscanToken": "x"}}`)
	_, err := loadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config file")
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	clearConfigEnv(t)

	path := writeConfigFile(t, "config.yaml", "defaults: [broken")
	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	clearConfigEnv(t)

	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("MINTSCAN_API_TOKEN", "env-token")
	t.Setenv("ETHERSCAN_API_KEY", "env-key")

	path := writeConfigFile(t, "config.yaml", `
providers:
  mintscanToken: file-token
  etherscanApiKey: file-key
`)

	config, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", config.Providers.MintscanToken)
	assert.Equal(t, "env-key", config.Providers.EtherscanKey)
}

func TestLoadConfigEnvFilePath(t *testing.T) {
	clearConfigEnv(t)

	path := writeConfigFile(t, "config.json", `{"defaults": {"pageSize": 3}}`)
	t.Setenv("AGORIC_MCP_CONFIG_FILE", path)

	config, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 3, config.Defaults.PageSize)
}

func TestDetectConfigFormat(t *testing.T) {
	tests := []struct {
		path string
		want configFormat
	}{
		{"config.json", configFormatJSON},
		{"config.yaml", configFormatYAML},
		{"config.yml", configFormatYAML},
		{"config.YAML", configFormatYAML},
		{"config", configFormatJSON},
		{"config.toml", configFormatJSON},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, detectConfigFormat(tc.path), tc.path)
	}
}

func TestConfigMappers(t *testing.T) {
	config := &Config{}
	config.Defaults.PageSize = 5
	config.Defaults.Timeout = 15
	config.Defaults.RetryAttempts = 4
	config.Defaults.RetryDelayMs = 250
	config.Providers.MintscanBaseURL = "https://apis.example.com/v1"
	config.Providers.MintscanToken = "tok"
	config.Providers.EtherscanKey = "key"

	tc := config.traceConfig()
	assert.Equal(t, "https://apis.example.com/v1", tc.MintscanBaseURL)
	assert.Equal(t, "tok", tc.MintscanToken)
	assert.Equal(t, "key", tc.EtherscanKey)
	assert.Equal(t, 5, tc.DefaultPageSize)

	hc := config.httpConfig("1.2.3")
	assert.Equal(t, 4, hc.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, hc.BaseDelay)
	assert.Equal(t, 15*time.Second, hc.Timeout)
	assert.Contains(t, hc.UserAgent, "Agoric-Dev-MCP/1.2.3")
}
