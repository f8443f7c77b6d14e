package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABRICKS_HOST", "https://adb-123.4.azuredatabricks.net/")
	t.Setenv("DATABRICKS_TOKEN", "dapi-test")

	cfg, err := Load("")
	require.NoError(t, err)

	// Trailing slash is stripped so path joins stay clean.
	assert.Equal(t, "https://adb-123.4.azuredatabricks.net", cfg.Host)
	assert.Equal(t, "dapi-test", cfg.Token)

	// Defaults apply when unset.
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.RetryBackoff)
	assert.Equal(t, 10*time.Second, cfg.RetryBackoffCap)
	assert.Equal(t, 60*time.Second, cfg.ToolTimeout)
	assert.Equal(t, 10*time.Minute, cfg.LongRunningTimeout)
}

func TestLoadOverridesFromEnvironment(t *testing.T) {
	t.Setenv("DATABRICKS_HOST", "https://example.cloud.databricks.com")
	t.Setenv("DATABRICKS_TOKEN", "dapi-test")
	t.Setenv("DATABRICKS_MAX_RETRIES", "5")
	t.Setenv("DATABRICKS_TOOL_TIMEOUT", "90s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, 90*time.Second, cfg.ToolTimeout)
}

func TestLoadRequiresHostAndToken(t *testing.T) {
	t.Setenv("DATABRICKS_HOST", "")
	t.Setenv("DATABRICKS_TOKEN", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABRICKS_HOST")

	t.Setenv("DATABRICKS_HOST", "https://example.cloud.databricks.com")
	_, err = Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABRICKS_TOKEN")
}

func TestLoadRejectsMissingConfigFile(t *testing.T) {
	t.Setenv("DATABRICKS_HOST", "https://example.cloud.databricks.com")
	t.Setenv("DATABRICKS_TOKEN", "dapi-test")

	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}
