// Package config handles configuration loading and validation for artview.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/artview/internal/core/listing"
	"github.com/colonyops/artview/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	API        APIConfig        `yaml:"api"`
	Pagination PaginationConfig `yaml:"pagination"`
	TUI        TUIConfig        `yaml:"tui"`
	DataDir    string           `yaml:"-"` // set by caller, not from config file
}

// APIConfig describes the listing endpoint.
type APIConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Resource  string        `yaml:"resource"`
	Fields    []string      `yaml:"fields"`  // field projection; must include id
	Timeout   time.Duration `yaml:"timeout"` // per-request timeout, e.g. 10s
	UserAgent string        `yaml:"user_agent"`
}

// PaginationConfig holds the initial page size and the sizes the page
// size control cycles through.
type PaginationConfig struct {
	PageSize        int   `yaml:"page_size"`
	PageSizeOptions []int `yaml:"page_size_options"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:   "https://api.artic.edu/api/v1",
			Resource:  "artworks",
			Fields:    slices.Clone(listing.DefaultFields),
			Timeout:   10 * time.Second,
			UserAgent: "artview",
		},
		Pagination: PaginationConfig{
			PageSize:        10,
			PageSizeOptions: []int{5, 10, 20},
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaults.API.BaseURL
	}
	if c.API.Resource == "" {
		c.API.Resource = defaults.API.Resource
	}
	if len(c.API.Fields) == 0 {
		c.API.Fields = defaults.API.Fields
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = defaults.API.Timeout
	}
	if c.Pagination.PageSize == 0 {
		c.Pagination.PageSize = defaults.Pagination.PageSize
	}
	if len(c.Pagination.PageSizeOptions) == 0 {
		c.Pagination.PageSizeOptions = defaults.Pagination.PageSizeOptions
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url cannot be empty")
	}

	if c.API.Resource == "" {
		return fmt.Errorf("api.resource cannot be empty")
	}

	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout cannot be negative")
	}

	if c.Pagination.PageSize < 1 {
		return fmt.Errorf("pagination.page_size must be at least 1")
	}

	for i, size := range c.Pagination.PageSizeOptions {
		if size < 1 {
			return fmt.Errorf("pagination.page_size_options[%d] must be at least 1", i)
		}
	}

	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		return fmt.Errorf("tui.theme %q is not a known theme", c.TUI.Theme)
	}

	return nil
}

// PageSizes returns the page size options in ascending order with the
// configured page size included.
func (c *Config) PageSizes() []int {
	sizes := slices.Clone(c.Pagination.PageSizeOptions)
	if !slices.Contains(sizes, c.Pagination.PageSize) {
		sizes = append(sizes, c.Pagination.PageSize)
	}
	slices.Sort(sizes)
	return slices.Compact(sizes)
}

// LogFile returns the default log file path inside the data directory.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "artview.log")
}
