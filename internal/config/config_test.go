package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgdevment/opinion-brief/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetAll(t *testing.T) {
	t.Helper()
	for _, key := range []string{"HTTP_PORT", "API_MASTER_KEY", "CATALOG_FILE", "LOG_LEVEL", "REPORT_TIMEZONE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetAll(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.False(t, cfg.EnvFileLoaded)
	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "", cfg.APIKey)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "Asia/Shanghai", cfg.Location.String())
}

func TestLoadEnvFile(t *testing.T) {
	unsetAll(t)

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=:9090\nAPI_MASTER_KEY=secret\nREPORT_TIMEZONE=UTC\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.EnvFileLoaded)
	assert.Equal(t, ":9090", cfg.Port)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "UTC", cfg.Location.String())
}

func TestLoadInvalidTimezone(t *testing.T) {
	unsetAll(t)
	t.Setenv("REPORT_TIMEZONE", "Mars/Olympus")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
