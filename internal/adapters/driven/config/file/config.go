// Package file loads the harvest configuration from a TOML file with
// environment overrides. A .env file in the working directory is loaded
// first, then HARVEST_* variables override file values.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Defaults.
const (
	DefaultPageSize        = 100
	DefaultQuotaLowWater   = 10
	DefaultPolitenessDelay = 2 * time.Second
	DefaultMonitorInterval = time.Hour
)

// Config holds the resolved pipeline configuration.
type Config struct {
	// GitHubToken is the optional bearer credential. Empty means
	// anonymous access with a reduced quota.
	GitHubToken string

	// DataDir is the SQLite data directory. Empty selects the default
	// under the home directory.
	DataDir string

	// PageSize is the listing page size.
	PageSize int

	// QuotaLowWater is the remaining-quota threshold below which the
	// quota gate waits for reset.
	QuotaLowWater int

	// PolitenessDelay is the pause between principals within a pass.
	PolitenessDelay time.Duration

	// MonitorInterval is the pause between passes in monitor mode.
	MonitorInterval time.Duration
}

// fileConfig is the TOML file shape. Durations are strings in
// time.ParseDuration format.
type fileConfig struct {
	GitHubToken     string `toml:"github_token"`
	DataDir         string `toml:"data_dir"`
	PageSize        int    `toml:"page_size"`
	QuotaLowWater   int    `toml:"quota_low_water"`
	PolitenessDelay string `toml:"politeness_delay"`
	MonitorInterval string `toml:"monitor_interval"`
}

// Load reads configuration from the TOML file at configPath (default
// ~/.harvest/config.toml), applies defaults and environment overrides.
// A missing config file is not an error.
func Load(configPath string) (*Config, error) {
	// Env files are a collaborator convenience; absence is normal.
	_ = godotenv.Load()

	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		configPath = filepath.Join(home, ".harvest", "config.toml")
	}

	var fc fileConfig
	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg := &Config{
		GitHubToken:     fc.GitHubToken,
		DataDir:         fc.DataDir,
		PageSize:        fc.PageSize,
		QuotaLowWater:   fc.QuotaLowWater,
		PolitenessDelay: DefaultPolitenessDelay,
		MonitorInterval: DefaultMonitorInterval,
	}

	if fc.PolitenessDelay != "" {
		d, err := time.ParseDuration(fc.PolitenessDelay)
		if err != nil {
			return nil, fmt.Errorf("parsing politeness_delay: %w", err)
		}
		cfg.PolitenessDelay = d
	}
	if fc.MonitorInterval != "" {
		d, err := time.ParseDuration(fc.MonitorInterval)
		if err != nil {
			return nil, fmt.Errorf("parsing monitor_interval: %w", err)
		}
		cfg.MonitorInterval = d
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.QuotaLowWater <= 0 {
		cfg.QuotaLowWater = DefaultQuotaLowWater
	}

	// Environment overrides.
	if token := os.Getenv("HARVEST_GITHUB_TOKEN"); token != "" {
		cfg.GitHubToken = token
	}
	if dir := os.Getenv("HARVEST_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}

	return cfg, nil
}
