package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config/config.yaml"
	DefaultEnvFile    = ".env"
)

// Config is built from defaults, then config.yaml, then the environment.
// Environment variable names are the section and field joined with "_",
// e.g. APP_NAME, SERVER_PORT, FORECAST_BASE_URL, SENTRY_DSN.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Server   ServerConfig   `yaml:"server"`
	Forecast ForecastConfig `yaml:"forecast"`
	Page     PageConfig     `yaml:"page"`
	Log      LogConfig      `yaml:"log"`
	Sentry   SentryConfig   `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Env     string `yaml:"env"`
}

// ServerConfig timeouts are in seconds.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"read_timeout" split_words:"true"`
	WriteTimeout int    `yaml:"write_timeout" split_words:"true"`
	IdleTimeout  int    `yaml:"idle_timeout" split_words:"true"`
}

type ForecastConfig struct {
	BaseURL           string        `yaml:"base_url" split_words:"true"`
	Days              int           `yaml:"days"`
	TemperatureUnit   string        `yaml:"temperature_unit" split_words:"true"`
	WindSpeedUnit     string        `yaml:"wind_speed_unit" split_words:"true"`
	PrecipitationUnit string        `yaml:"precipitation_unit" split_words:"true"`
	Timeout           time.Duration `yaml:"timeout"`
}

type PageConfig struct {
	Title       string `yaml:"title"`
	IconBaseURL string `yaml:"icon_base_url" split_words:"true"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn"`
	Debug bool   `yaml:"debug"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-page",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		Forecast: ForecastConfig{
			BaseURL:           "https://api.open-meteo.com/v1/forecast",
			Days:              8,
			TemperatureUnit:   "fahrenheit",
			WindSpeedUnit:     "mph",
			PrecipitationUnit: "inch",
			Timeout:           15 * time.Second,
		},
		Page: PageConfig{
			Title:       "Weather Forecast",
			IconBaseURL: "/static/images",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

type FileConfigProvider struct {
	path    string
	envFile string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path, envFile: DefaultEnvFile}
}

// WithEnvFile sets the dotenv file loaded before reading the environment.
// Variables already present in the environment win.
func (p *FileConfigProvider) WithEnvFile(path string) *FileConfigProvider {
	p.envFile = path
	return p
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := Default()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	if p.envFile != "" {
		if err := godotenv.Load(p.envFile); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to load %s", p.envFile)
		}
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, errors.Wrap(err, "error environment variable parsing")
	}

	return cnf, nil
}

// loadFromFile overlays the YAML file on cnf. A missing file is not an error.
func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read %s", p.path)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return errors.Wrapf(err, "failed to parse YAML config %s", p.path)
	}

	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(strings.TrimSpace(config.App.Name) != "", "app.name is required")
	check(strings.TrimSpace(config.Server.Port) != "", "server.port is required")
	check(config.Server.ReadTimeout > 0, "server.read_timeout must be positive")
	check(config.Server.WriteTimeout > 0, "server.write_timeout must be positive")
	check(config.Server.IdleTimeout > 0, "server.idle_timeout must be positive")

	u, err := url.Parse(config.Forecast.BaseURL)
	check(err == nil && u.Scheme != "" && u.Host != "", "forecast.base_url must be an absolute URL")
	check(config.Forecast.Days >= 1 && config.Forecast.Days <= 16, "forecast.days must be between 1 and 16")
	check(oneOf(config.Forecast.TemperatureUnit, "fahrenheit", "celsius"),
		"forecast.temperature_unit %q is not supported", config.Forecast.TemperatureUnit)
	check(oneOf(config.Forecast.WindSpeedUnit, "kmh", "ms", "mph", "kn"),
		"forecast.wind_speed_unit %q is not supported", config.Forecast.WindSpeedUnit)
	check(oneOf(config.Forecast.PrecipitationUnit, "mm", "inch"),
		"forecast.precipitation_unit %q is not supported", config.Forecast.PrecipitationUnit)
	check(config.Forecast.Timeout >= 0, "forecast.timeout must not be negative")

	check(oneOf(config.Log.Level, "debug", "info", "warn", "error"), "log.level %q is not supported", config.Log.Level)

	if len(problems) > 0 {
		return errors.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, err
	}

	return cnf, nil
}

func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(DefaultConfigPath))
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development" || c.App.Env == "dev"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production" || c.App.Env == "prod"
}
