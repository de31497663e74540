package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), dataDir)

	require.NoError(t, err)
	assert.Equal(t, "https://api.artic.edu/api/v1", cfg.API.BaseURL)
	assert.Equal(t, "artworks", cfg.API.Resource)
	assert.Contains(t, cfg.API.Fields, "id")
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 10, cfg.Pagination.PageSize)
	assert.Equal(t, []int{5, 10, 20}, cfg.Pagination.PageSizeOptions)
	assert.Equal(t, dataDir, cfg.DataDir)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
api:
  base_url: https://example.com/api
  resource: agents
  timeout: 3s
pagination:
  page_size: 20
  page_size_options: [10, 20, 50]
tui:
  theme: gruvbox
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, dir)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api", cfg.API.BaseURL)
	assert.Equal(t, "agents", cfg.API.Resource)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, 20, cfg.Pagination.PageSize)
	assert.Equal(t, []int{10, 20, 50}, cfg.Pagination.PageSizeOptions)
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.Equal(t, dir, cfg.DataDir, "data dir is not read from the file")
	// Unset fields fall back to defaults.
	assert.Contains(t, cfg.API.Fields, "title")
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [unclosed"), 0o644))

	_, err := Load(path, dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "empty data dir", mutate: func(c *Config) { c.DataDir = "" }, wantErr: "data directory"},
		{name: "empty base url", mutate: func(c *Config) { c.API.BaseURL = "" }, wantErr: "api.base_url"},
		{name: "empty resource", mutate: func(c *Config) { c.API.Resource = "" }, wantErr: "api.resource"},
		{name: "negative timeout", mutate: func(c *Config) { c.API.Timeout = -time.Second }, wantErr: "api.timeout"},
		{name: "zero page size", mutate: func(c *Config) { c.Pagination.PageSize = 0 }, wantErr: "pagination.page_size"},
		{name: "bad size option", mutate: func(c *Config) { c.Pagination.PageSizeOptions = []int{5, 0} }, wantErr: "page_size_options[1]"},
		{name: "unknown theme", mutate: func(c *Config) { c.TUI.Theme = "nope" }, wantErr: "tui.theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.DataDir = t.TempDir()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPageSizes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pagination.PageSize = 15
	cfg.Pagination.PageSizeOptions = []int{20, 5, 10}

	assert.Equal(t, []int{5, 10, 15, 20}, cfg.PageSizes())

	cfg.Pagination.PageSize = 10
	assert.Equal(t, []int{5, 10, 20}, cfg.PageSizes())
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.DataDir = dir
	cfg.API.Timeout = 7 * time.Second
	cfg.Pagination.PageSize = 20
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path, dir)
	require.NoError(t, err)
	assert.Equal(t, cfg.API, loaded.API)
	assert.Equal(t, cfg.Pagination, loaded.Pagination)
	assert.Equal(t, cfg.TUI, loaded.TUI)
}
