package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config/config.yaml"
	DefaultEnvPath    = ".env"

	// DefaultWeatherURL serves a year of daily observations.
	DefaultWeatherURL = "https://gist.githubusercontent.com/S4mLab/443e4c9ec734ce19b202c54b0666e7fe/raw/6d14a1d3778b39d3b3b5e9509ecb17cee738bc9a/weather_data.json"
)

type Config struct {
	App    AppConfig    `yaml:"app" envconfig:"APP"`
	Server ServerConfig `yaml:"server" envconfig:"SERVER"`
	Log    LogConfig    `yaml:"log" envconfig:"LOG"`
	Sentry SentryConfig `yaml:"sentry" envconfig:"SENTRY"`
	Data   DataConfig   `yaml:"data" envconfig:"DATA"`
	Chart  ChartConfig  `yaml:"chart" envconfig:"CHART"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"NAME" validate:"required"`
	Version string `yaml:"version" envconfig:"VERSION" validate:"required"`
	Env     string `yaml:"env" envconfig:"ENV" validate:"oneof=development staging production test"`
}

type ServerConfig struct {
	Port         string `yaml:"port" envconfig:"PORT" validate:"required,numeric"`
	ReadTimeout  int    `yaml:"read_timeout" envconfig:"READ_TIMEOUT" validate:"gte=0"`
	WriteTimeout int    `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" validate:"gte=0"`
	IdleTimeout  int    `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" validate:"gte=0"`
}

type LogConfig struct {
	Level string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
}

type SentryConfig struct {
	DSN           string `yaml:"dsn" envconfig:"DSN" validate:"omitempty,url"`
	Debug         bool   `yaml:"debug" envconfig:"DEBUG"`
	MaxErrorDepth int    `yaml:"max_error_depth" envconfig:"MAX_ERROR_DEPTH" validate:"gte=0"`
}

type DataConfig struct {
	Source             string        `yaml:"source" envconfig:"SOURCE" validate:"oneof=http fake"`
	URL                string        `yaml:"url" envconfig:"URL" validate:"omitempty,url"`
	RequestsPerSecond  float64       `yaml:"requests_per_second" envconfig:"REQUESTS_PER_SECOND" validate:"gt=0"`
	Burst              int           `yaml:"burst" envconfig:"BURST" validate:"gte=1"`
	BreakerMaxRequests uint32        `yaml:"breaker_max_requests" envconfig:"BREAKER_MAX_REQUESTS"`
	BreakerInterval    time.Duration `yaml:"breaker_interval" envconfig:"BREAKER_INTERVAL"`
	BreakerTimeout     time.Duration `yaml:"breaker_timeout" envconfig:"BREAKER_TIMEOUT"`
	FakeDays           int           `yaml:"fake_days" envconfig:"FAKE_DAYS" validate:"gte=0"`
	FakeStart          string        `yaml:"fake_start" envconfig:"FAKE_START" validate:"omitempty,datetime=2006-01-02"`
	FakeSeed           uint64        `yaml:"fake_seed" envconfig:"FAKE_SEED"`
}

type ChartConfig struct {
	ViewportWidth     float64 `yaml:"viewport_width" envconfig:"VIEWPORT_WIDTH" validate:"gt=0"`
	WidthFraction     float64 `yaml:"width_fraction" envconfig:"WIDTH_FRACTION" validate:"gt=0,lte=1"`
	Height            float64 `yaml:"height" envconfig:"HEIGHT" validate:"gt=0"`
	MarginTop         float64 `yaml:"margin_top" envconfig:"MARGIN_TOP" validate:"gte=0"`
	MarginRight       float64 `yaml:"margin_right" envconfig:"MARGIN_RIGHT" validate:"gte=0"`
	MarginBottom      float64 `yaml:"margin_bottom" envconfig:"MARGIN_BOTTOM" validate:"gte=0"`
	MarginLeft        float64 `yaml:"margin_left" envconfig:"MARGIN_LEFT" validate:"gte=0"`
	FreezingThreshold float64 `yaml:"freezing_threshold" envconfig:"FREEZING_THRESHOLD"`
	BandColor         string  `yaml:"band_color" envconfig:"BAND_COLOR" validate:"hexcolor"`
	LineColor         string  `yaml:"line_color" envconfig:"LINE_COLOR" validate:"hexcolor"`
	LineWidth         float64 `yaml:"line_width" envconfig:"LINE_WIDTH" validate:"gt=0"`
	TickCount         int     `yaml:"tick_count" envconfig:"TICK_COUNT" validate:"gte=1"`
	TimeZone          string  `yaml:"time_zone" envconfig:"TIME_ZONE" validate:"required"`
}

// ConfigProvider loads and validates configuration.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider layers defaults, a YAML file, an optional dotenv file and
// the process environment, in that order.
type FileConfigProvider struct {
	path     string
	envPath  string
	validate *validator.Validate
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{
		path:     path,
		envPath:  DefaultEnvPath,
		validate: newValidator(),
	}
}

// WithEnvFile points the provider at a dotenv file other than ./.env.
func (p *FileConfigProvider) WithEnvFile(path string) *FileConfigProvider {
	p.envPath = path
	return p
}

func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(DefaultConfigPath))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cnf, nil
}

func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-chart",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		Log: LogConfig{
			Level: "info",
		},
		Data: DataConfig{
			Source:             "http",
			URL:                DefaultWeatherURL,
			RequestsPerSecond:  5,
			Burst:              10,
			BreakerMaxRequests: 1,
			BreakerInterval:    time.Minute,
			BreakerTimeout:     30 * time.Second,
			FakeDays:           365,
			FakeStart:          "2018-01-01",
		},
		Chart: ChartConfig{
			ViewportWidth:     1280,
			WidthFraction:     0.9,
			Height:            400,
			MarginTop:         15,
			MarginRight:       15,
			MarginBottom:      40,
			MarginLeft:        60,
			FreezingThreshold: 32,
			BandColor:         "#e0f3f3",
			LineColor:         "#af9358",
			LineWidth:         2,
			TickCount:         10,
			TimeZone:          "UTC",
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := Default()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	if err := p.loadEnvFile(); err != nil {
		return nil, err
	}

	// Override with environment variables
	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

// loadFromFile treats a missing file as "use defaults".
func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("parse YAML config %s: %w", p.path, err)
	}

	return nil
}

func (p *FileConfigProvider) loadEnvFile() error {
	if p.envPath == "" {
		return nil
	}
	if _, err := os.Stat(p.envPath); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(p.envPath); err != nil {
		return fmt.Errorf("load env file %s: %w", p.envPath, err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	if err := p.validate.Struct(config); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return describeValidationErrors(verrs)
		}
		return err
	}

	if config.Data.Source == "http" && config.Data.URL == "" {
		return errors.New("data.url is required")
	}

	if _, err := time.LoadLocation(config.Chart.TimeZone); err != nil {
		return fmt.Errorf("chart.time_zone is invalid: %w", err)
	}

	return nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func describeValidationErrors(verrs validator.ValidationErrors) error {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// Namespace is "Config.app.name"; drop the root type.
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}

		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
		case "gt", "gte", "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be %s %s", field, fe.Tag(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", field, fe.Tag()))
		}
	}

	return errors.New(strings.Join(msgs, "; "))
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Location resolves the chart time zone. Validate has already rejected bad names.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Chart.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
