package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	// Test with default values (without config file)
	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)
	assert.NotNil(t, config)

	assert.Equal(t, "weather-page", config.App.Name)
	assert.Equal(t, "1.0.0", config.App.Version)
	assert.Equal(t, "development", config.App.Env)
	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, 10, config.Server.ReadTimeout)
	assert.Equal(t, 10, config.Server.WriteTimeout)
	assert.Equal(t, 120, config.Server.IdleTimeout)
	assert.Equal(t, "info", config.Log.Level)

	assert.Equal(t, "https://api.open-meteo.com/v1/forecast", config.Forecast.BaseURL)
	assert.Equal(t, 8, config.Forecast.Days)
	assert.Equal(t, "fahrenheit", config.Forecast.TemperatureUnit)
	assert.Equal(t, "mph", config.Forecast.WindSpeedUnit)
	assert.Equal(t, "inch", config.Forecast.PrecipitationUnit)
	assert.Equal(t, 15*time.Second, config.Forecast.Timeout)
	assert.Equal(t, "/static/images", config.Page.IconBaseURL)
	assert.Empty(t, config.Sentry.DSN)
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	t.Setenv("APP_NAME", "test-app")
	t.Setenv("APP_VERSION", "2.0.0")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "30")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("FORECAST_BASE_URL", "http://localhost:9999/v1/forecast")
	t.Setenv("FORECAST_TIMEOUT", "3s")
	t.Setenv("PAGE_ICON_BASE_URL", "https://cdn.example.com/icons")
	t.Setenv("SENTRY_DSN", "https://key@sentry.example.com/1")

	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)

	assert.Equal(t, "test-app", config.App.Name)
	assert.Equal(t, "2.0.0", config.App.Version)
	assert.Equal(t, "production", config.App.Env)
	assert.Equal(t, "9090", config.Server.Port)
	assert.Equal(t, 30, config.Server.ReadTimeout)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "http://localhost:9999/v1/forecast", config.Forecast.BaseURL)
	assert.Equal(t, 3*time.Second, config.Forecast.Timeout)
	assert.Equal(t, "https://cdn.example.com/icons", config.Page.IconBaseURL)
	assert.Equal(t, "https://key@sentry.example.com/1", config.Sentry.DSN)
	assert.True(t, config.IsProduction())
}

func TestConfigFromYAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  name: yaml-app
server:
  port: "7070"
forecast:
  days: 3
  temperature_unit: celsius
  timeout: 2s
`), 0o600))

	t.Setenv("SERVER_PORT", "6060")

	config, err := NewConfigWithProvider(NewFileConfigProvider(path))
	require.NoError(t, err)

	assert.Equal(t, "yaml-app", config.App.Name)
	assert.Equal(t, "6060", config.Server.Port)
	assert.Equal(t, 3, config.Forecast.Days)
	assert.Equal(t, "celsius", config.Forecast.TemperatureUnit)
	assert.Equal(t, 2*time.Second, config.Forecast.Timeout)
	// untouched sections keep their defaults
	assert.Equal(t, "mph", config.Forecast.WindSpeedUnit)
	assert.Equal(t, 120, config.Server.IdleTimeout)
}

func TestConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("APP_ENV=dev\nLOG_LEVEL=warn\n"), 0o600))

	t.Setenv("APP_ENV", "production")
	t.Cleanup(func() { os.Unsetenv("LOG_LEVEL") })

	provider := NewFileConfigProvider("nonexistent.yaml").WithEnvFile(envFile)
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)

	// existing environment variables win over the dotenv file
	assert.Equal(t, "production", config.App.Env)
	assert.Equal(t, "warn", config.Log.Level)
}

func TestConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unclosed"), 0o600))

	_, err := NewFileConfigProvider(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML config")
}

func TestConfigValidation(t *testing.T) {
	provider := NewFileConfigProvider("config/config.yaml")

	config := Default()
	assert.NoError(t, provider.Validate(config))

	invalidConfig := Default()
	invalidConfig.App.Name = ""
	err := provider.Validate(invalidConfig)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "app.name is required")

	invalidConfig = Default()
	invalidConfig.Forecast.Days = 0
	invalidConfig.Forecast.TemperatureUnit = "kelvin"
	invalidConfig.Forecast.BaseURL = "not a url"
	invalidConfig.Log.Level = "verbose"
	err = provider.Validate(invalidConfig)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forecast.days must be between 1 and 16")
	assert.Contains(t, err.Error(), `forecast.temperature_unit "kelvin" is not supported`)
	assert.Contains(t, err.Error(), "forecast.base_url must be an absolute URL")
	assert.Contains(t, err.Error(), `log.level "verbose" is not supported`)
}

func TestConfigHelperMethods(t *testing.T) {
	config := &Config{App: AppConfig{Env: "development"}}

	assert.True(t, config.IsDevelopment())
	assert.False(t, config.IsProduction())

	config.App.Env = "prod"
	assert.False(t, config.IsDevelopment())
	assert.True(t, config.IsProduction())
}

func TestFileConfigProvider_LoadFromFile(t *testing.T) {
	provider := NewFileConfigProvider("nonexistent.yaml")
	config := &Config{}

	// Test loading from non-existent file (should not error)
	err := provider.loadFromFile(config)
	assert.NoError(t, err)
}

func TestNewConfigWithProvider(t *testing.T) {
	config := Default()
	config.App.Name = "test-app"

	mockProvider := &MockConfigProvider{config: config}

	loaded, err := NewConfigWithProvider(mockProvider)
	require.NoError(t, err)
	assert.Equal(t, "test-app", loaded.App.Name)

	_, err = NewConfigWithProvider(&MockConfigProvider{err: errors.New("load failed")})
	assert.EqualError(t, err, "load failed")

	_, err = NewConfigWithProvider(&MockConfigProvider{config: config, validateErr: errors.New("invalid")})
	assert.EqualError(t, err, "invalid")
}

func TestConfigFileLoading(t *testing.T) {
	config, err := NewConfigWithProvider(NewFileConfigProvider("config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "weather-page", config.App.Name)
	assert.Equal(t, 8, config.Forecast.Days)
	assert.Equal(t, 15*time.Second, config.Forecast.Timeout)
}

// MockConfigProvider for testing
type MockConfigProvider struct {
	config      *Config
	err         error
	validateErr error
}

func (m *MockConfigProvider) Load() (*Config, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.config, nil
}

func (m *MockConfigProvider) Validate(config *Config) error {
	return m.validateErr
}
