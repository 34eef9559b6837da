package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml") // does not exist

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Empty(t, cfg.GitHubToken)
	assert.Equal(t, DefaultPageSize, cfg.PageSize)
	assert.Equal(t, DefaultQuotaLowWater, cfg.QuotaLowWater)
	assert.Equal(t, DefaultPolitenessDelay, cfg.PolitenessDelay)
	assert.Equal(t, DefaultMonitorInterval, cfg.MonitorInterval)
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
github_token = "ghp_test"
data_dir = "/tmp/harvest-test"
page_size = 50
quota_low_water = 20
politeness_delay = "500ms"
monitor_interval = "30m"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ghp_test", cfg.GitHubToken)
	assert.Equal(t, "/tmp/harvest-test", cfg.DataDir)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, 20, cfg.QuotaLowWater)
	assert.Equal(t, 500*time.Millisecond, cfg.PolitenessDelay)
	assert.Equal(t, 30*time.Minute, cfg.MonitorInterval)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `github_token = "file-token"`)

	t.Setenv("HARVEST_GITHUB_TOKEN", "env-token")
	t.Setenv("HARVEST_DATA_DIR", "/tmp/env-dir")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.GitHubToken)
	assert.Equal(t, "/tmp/env-dir", cfg.DataDir)
}

func TestLoad_InvalidDuration(t *testing.T) {
	path := writeConfig(t, `politeness_delay = "soon"`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "politeness_delay")
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, `github_token = `)

	_, err := Load(path)
	assert.Error(t, err)
}
