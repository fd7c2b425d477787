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
	provider := NewFileConfigProvider("nonexistent.yaml").WithEnvFile("")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)
	assert.NotNil(t, config)

	// Test default values
	assert.Equal(t, "weather-chart", config.App.Name)
	assert.Equal(t, "1.0.0", config.App.Version)
	assert.Equal(t, "development", config.App.Env)
	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, 10, config.Server.ReadTimeout)
	assert.Equal(t, 10, config.Server.WriteTimeout)
	assert.Equal(t, 120, config.Server.IdleTimeout)
	assert.Equal(t, "info", config.Log.Level)

	assert.Equal(t, "http", config.Data.Source)
	assert.Equal(t, DefaultWeatherURL, config.Data.URL)

	assert.Equal(t, 0.9, config.Chart.WidthFraction)
	assert.Equal(t, 400.0, config.Chart.Height)
	assert.Equal(t, 15.0, config.Chart.MarginTop)
	assert.Equal(t, 15.0, config.Chart.MarginRight)
	assert.Equal(t, 40.0, config.Chart.MarginBottom)
	assert.Equal(t, 60.0, config.Chart.MarginLeft)
	assert.Equal(t, 32.0, config.Chart.FreezingThreshold)
	assert.Equal(t, "#e0f3f3", config.Chart.BandColor)
	assert.Equal(t, "#af9358", config.Chart.LineColor)
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	t.Setenv("APP_NAME", "test-app")
	t.Setenv("APP_VERSION", "2.0.0")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATA_SOURCE", "fake")
	t.Setenv("DATA_BREAKER_TIMEOUT", "5s")
	t.Setenv("CHART_HEIGHT", "500")

	provider := NewFileConfigProvider("nonexistent.yaml").WithEnvFile("")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)

	assert.Equal(t, "test-app", config.App.Name)
	assert.Equal(t, "2.0.0", config.App.Version)
	assert.Equal(t, "production", config.App.Env)
	assert.Equal(t, "9090", config.Server.Port)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "fake", config.Data.Source)
	assert.Equal(t, 5*time.Second, config.Data.BreakerTimeout)
	assert.Equal(t, 500.0, config.Chart.Height)

	// Untouched values keep their defaults
	assert.Equal(t, 60.0, config.Chart.MarginLeft)
}

func TestConfigYAMLThenEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  name: from-yaml
chart:
  height: 300
  line_color: "#000000"
data:
  breaker_interval: 2m
`), 0o600))

	t.Setenv("CHART_HEIGHT", "350")

	config, err := NewConfigWithProvider(NewFileConfigProvider(path).WithEnvFile(""))
	require.NoError(t, err)

	assert.Equal(t, "from-yaml", config.App.Name)
	assert.Equal(t, "#000000", config.Chart.LineColor)
	assert.Equal(t, 2*time.Minute, config.Data.BreakerInterval)
	// Environment wins over YAML
	assert.Equal(t, 350.0, config.Chart.Height)
	// Defaults survive when YAML leaves a key out
	assert.Equal(t, "8080", config.Server.Port)
}

func TestConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("CHART_TICK_COUNT=6\n"), 0o600))

	require.NoError(t, os.Unsetenv("CHART_TICK_COUNT"))
	t.Cleanup(func() { _ = os.Unsetenv("CHART_TICK_COUNT") })

	config, err := NewConfigWithProvider(NewFileConfigProvider("nonexistent.yaml").WithEnvFile(envPath))
	require.NoError(t, err)

	assert.Equal(t, 6, config.Chart.TickCount)
}

func TestConfigInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unterminated"), 0o600))

	_, err := NewConfigWithProvider(NewFileConfigProvider(path).WithEnvFile(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse YAML config")
}

func TestConfigValidation(t *testing.T) {
	provider := NewFileConfigProvider("config/config.yaml")

	// Test valid config
	config := Default()
	err := provider.Validate(config)
	assert.NoError(t, err)

	// Test invalid config - missing app name
	invalidConfig := Default()
	invalidConfig.App.Name = ""

	err = provider.Validate(invalidConfig)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "app.name is required")
}

func TestConfigValidation_Rules(t *testing.T) {
	provider := NewFileConfigProvider("config/config.yaml")

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"unknown env", func(c *Config) { c.App.Env = "qa" }, "app.env must be one of"},
		{"unknown source", func(c *Config) { c.Data.Source = "ftp" }, "data.source must be one of"},
		{"missing url", func(c *Config) { c.Data.URL = "" }, "data.url is required"},
		{"bad url", func(c *Config) { c.Data.URL = "not a url" }, "data.url is invalid"},
		{"zero height", func(c *Config) { c.Chart.Height = 0 }, "chart.height must be gt 0"},
		{"fraction above one", func(c *Config) { c.Chart.WidthFraction = 1.5 }, "chart.width_fraction must be lte 1"},
		{"bad colour", func(c *Config) { c.Chart.LineColor = "brown" }, "chart.line_color is invalid"},
		{"bad fake start", func(c *Config) { c.Data.FakeStart = "01/02/2018" }, "data.fake_start is invalid"},
		{"bad time zone", func(c *Config) { c.Chart.TimeZone = "Mars/Olympus" }, "chart.time_zone is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.mutate(config)

			err := provider.Validate(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfigHelperMethods(t *testing.T) {
	config := Default()

	// Test IsDevelopment
	assert.True(t, config.IsDevelopment())
	assert.False(t, config.IsProduction())

	assert.Equal(t, time.UTC, config.Location())

	config.Chart.TimeZone = "Europe/Rome"
	assert.Equal(t, "Europe/Rome", config.Location().String())
}

func TestFileConfigProvider_LoadFromFile(t *testing.T) {
	provider := NewFileConfigProvider("nonexistent.yaml")
	config := &Config{}

	// Test loading from non-existent file (should not error)
	err := provider.loadFromFile(config)
	assert.NoError(t, err)
}

func TestNewConfigWithProvider(t *testing.T) {
	// Create a mock provider
	mockProvider := &MockConfigProvider{
		config: Default(),
	}
	mockProvider.config.App.Name = "test-app"

	config, err := NewConfigWithProvider(mockProvider)
	require.NoError(t, err)
	assert.Equal(t, "test-app", config.App.Name)

	failing := &MockConfigProvider{err: errors.New("disk on fire")}
	_, err = NewConfigWithProvider(failing)
	assert.ErrorContains(t, err, "disk on fire")
}

func TestConfigFileLoading(t *testing.T) {
	// Test loading from actual config file
	config, err := NewConfigWithProvider(NewFileConfigProvider("config.yaml").WithEnvFile(""))
	require.NoError(t, err)
	assert.NotNil(t, config)

	assert.Equal(t, "weather-chart", config.App.Name)
	assert.Equal(t, DefaultWeatherURL, config.Data.URL)
	assert.Equal(t, time.Minute, config.Data.BreakerInterval)
}

// MockConfigProvider for testing
type MockConfigProvider struct {
	config *Config
	err    error
}

func (m *MockConfigProvider) Load() (*Config, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.config, nil
}

func (m *MockConfigProvider) Validate(config *Config) error {
	return nil
}
