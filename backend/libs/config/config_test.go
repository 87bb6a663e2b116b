package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	HTTP struct {
		Port string `yaml:"port" env:"SAMPLE_HTTP_PORT"`
	} `yaml:"http"`
	Defaults struct {
		BatteryKWh float64 `yaml:"batteryKwh"`
		Enabled    bool    `yaml:"enabled"`
	} `yaml:"defaults"`
	TTL    int    `yaml:"ttl"`
	Secret string `env:"-"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigRejectsNonPointer(t *testing.T) {
	assert.Error(t, LoadConfig(nil))
	assert.Error(t, LoadConfig(sampleConfig{}))
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	path := writeFile(t, "config.yaml", `
http:
  port: "9000"
defaults:
  batteryKwh: 40.5
  enabled: false
ttl: 30
`)
	t.Setenv("DOTENV_FILE", "")
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SAMPLE_HTTP_PORT", "9100")
	t.Setenv("DEFAULTS_ENABLED", "true")
	t.Setenv("SECRET", "ignored")

	var cfg sampleConfig
	require.NoError(t, LoadConfig(&cfg))

	assert.Equal(t, "9100", cfg.HTTP.Port)
	assert.InDelta(t, 40.5, cfg.Defaults.BatteryKWh, 1e-9)
	assert.True(t, cfg.Defaults.Enabled)
	assert.Equal(t, 30, cfg.TTL)
	assert.Empty(t, cfg.Secret)
}

func TestLoadConfigInvalidEnvValue(t *testing.T) {
	t.Setenv("DOTENV_FILE", "")
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("TTL", "soon")

	var cfg sampleConfig
	err := LoadConfig(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse TTL")
}

func TestLoadConfigDotenv(t *testing.T) {
	path := writeFile(t, "test.env", "DEFAULTS_BATTERYKWH=52\n")
	t.Setenv("DOTENV_FILE", path)
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("DEFAULTS_BATTERYKWH", "")
	os.Unsetenv("DEFAULTS_BATTERYKWH")
	t.Cleanup(func() { os.Unsetenv("DEFAULTS_BATTERYKWH") })

	var cfg sampleConfig
	require.NoError(t, LoadConfig(&cfg))
	assert.InDelta(t, 52, cfg.Defaults.BatteryKWh, 1e-9)
}

func TestLoadConfigMissingExplicitDotenv(t *testing.T) {
	t.Setenv("DOTENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("CONFIG_FILE", "")

	var cfg sampleConfig
	assert.Error(t, LoadConfig(&cfg))
}
