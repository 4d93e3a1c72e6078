package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	"ulascansenturk/weather-viewer/config"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "")

	conf, err := config.LoadConfigFrom(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, "weather-viewer", conf.ServiceName)
	require.Equal(t, "0.0.0.0:3000", conf.ServerAddress)
	require.Equal(t, "https://api.openweathermap.org", conf.OpenWeatherBaseURL)
	require.Equal(t, 10*time.Second, conf.OpenWeatherTimeoutDuration())
	require.Equal(t, 15*time.Second, conf.HTTPTimeoutDuration())
	require.Empty(t, conf.OpenWeatherAPIKey)
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	content := "OPENWEATHER_API_KEY=file_key\nOPENWEATHER_TIMEOUT=3\nLOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	conf, err := config.LoadConfigFrom(dir)
	require.NoError(t, err)

	require.Equal(t, "file_key", conf.OpenWeatherAPIKey)
	require.Equal(t, 3*time.Second, conf.OpenWeatherTimeoutDuration())
	require.Equal(t, "debug", conf.LogLevel)
}

func TestLoadConfigEnvironmentWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OPENWEATHER_API_KEY=file_key\n"), 0o600))
	t.Setenv("OPENWEATHER_API_KEY", "env_key")
	t.Setenv("HTTP_TIMEOUT", "30")

	conf, err := config.LoadConfigFrom(dir)
	require.NoError(t, err)

	require.Equal(t, "env_key", conf.OpenWeatherAPIKey)
	require.Equal(t, 30*time.Second, conf.HTTPTimeoutDuration())
}

func TestLoadConfigTimeoutsAreSeconds(t *testing.T) {
	t.Setenv("OPENWEATHER_TIMEOUT", "10")
	t.Setenv("HTTP_TIMEOUT", "15")

	conf, err := config.LoadConfigFrom(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, 10*time.Second, conf.OpenWeatherTimeoutDuration())
	require.Equal(t, 15*time.Second, conf.HTTPTimeoutDuration())
}
