package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CHAIN_FIXTURE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.False(t, cfg.App.IsProduction())
	assert.Equal(t, "", cfg.App.LogLevel)
	assert.Equal(t, "", cfg.Fixture.Path)
}

func TestLoad_FromEnvironment(t *testing.T) {
	fixture := filepath.Join(t.TempDir(), "chain.yaml")
	require.NoError(t, os.WriteFile(fixture, []byte("products: []\n"), 0o600))

	t.Setenv("APP_ENV", "Production")
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("CHAIN_FIXTURE", fixture)

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, fixture, cfg.Fixture.Path)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("LOG_LEVEL", "chatty")
	t.Setenv("CHAIN_FIXTURE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "", cfg.App.LogLevel)
}

func TestLoad_MissingFixture(t *testing.T) {
	t.Setenv("CHAIN_FIXTURE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}
