package commands

import (
	"os"
	"path/filepath"

	"github.com/colonyops/artview/internal/core/browse"
	"github.com/colonyops/artview/internal/core/config"
	"github.com/colonyops/artview/internal/core/listing"
)

type Flags struct {
	LogLevel     string
	LogFile      string
	ConfigPath   string
	DataDir      string
	ProfilerPort int

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Fetcher reads pages from the configured listing API
	Fetcher browse.Fetcher[listing.Artwork]
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "artview", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "artview")
}

// NewFetcher builds the listing client described by cfg.
func NewFetcher(cfg *config.Config) *listing.Client[listing.Artwork] {
	return listing.NewClient[listing.Artwork](listing.Options{
		BaseURL:   cfg.API.BaseURL,
		Resource:  cfg.API.Resource,
		Fields:    cfg.API.Fields,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
	})
}
