package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"provider": "openai",
		"model": "gpt-4o-mini",
		"max_retries": 3,
		"save": true,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.True(t, cfg.Save)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty config is valid", cfg: Config{}},
		{name: "openai provider", cfg: Config{Provider: ProviderOpenAI}},
		{name: "gemini provider", cfg: Config{Provider: ProviderGemini}},
		{name: "unknown provider", cfg: Config{Provider: "claude"}, wantErr: "'provider' must be"},
		{name: "negative retries", cfg: Config{MaxRetries: -1}, wantErr: "'max_retries' must be non-negative"},
		// A stale target_path in the config file must not fail validation:
		// a CLI argument can still override it before it is used.
		{name: "nonexistent target deferred to loader", cfg: Config{TargetPath: "/nonexistent/runes.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Model: "gpt-4o-mini"}
	defaults := Config{
		Provider:   ProviderOpenAI,
		Model:      "gpt-3.5-turbo",
		MaxRetries: 5,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, ProviderOpenAI, merged.Provider, "unset fields take the default")
	assert.Equal(t, "gpt-4o-mini", merged.Model, "set fields win over defaults")
	assert.Equal(t, 5, merged.MaxRetries)
}
