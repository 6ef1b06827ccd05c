package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/the-tour-club/skins/internal/observability"
)

// Config struct to hold the configuration settings
type Config struct {
	Postgres       PostgresConfig       `yaml:"postgres"`
	NATS           NATSConfig           `yaml:"nats"`
	HTTP           HTTPConfig           `yaml:"http"`
	Observability  ObservabilityConfig  `yaml:"observability"`
	CourseProvider CourseProviderConfig `yaml:"course_provider"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// NATSConfig holds NATS configuration.
type NATSConfig struct {
	URL string `yaml:"url"`
}

// HTTPConfig holds the API server configuration.
type HTTPConfig struct {
	Address           string        `yaml:"address"`
	ReadTimeout       time.Duration `yaml:"read_timeout"`
	WriteTimeout      time.Duration `yaml:"write_timeout"`
	RequestsPerMinute int           `yaml:"requests_per_minute"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	MetricsAddress string `yaml:"metrics_address"`
	Environment    string `yaml:"environment"`
}

// CourseProviderConfig holds the remote course API configuration. An empty
// base URL disables the provider.
type CourseProviderConfig struct {
	BaseURL           string        `yaml:"base_url"`
	APIKey            string        `yaml:"api_key"`
	Timeout           time.Duration `yaml:"timeout"`
	CacheTTL          time.Duration `yaml:"cache_ttl"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
}

// LoadConfig loads the configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Try reading configuration from the file first
	data, err := os.ReadFile(filename)
	if err != nil {
		// If the file is not found, try loading from environment variables
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Observability.MetricsAddress = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
	if v := os.Getenv("COURSE_API_URL"); v != "" {
		cfg.CourseProvider.BaseURL = v
	}
	if v := os.Getenv("COURSE_API_KEY"); v != "" {
		cfg.CourseProvider.APIKey = v
	}
	if v := os.Getenv("COURSE_API_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.CourseProvider.RequestsPerSecond = f
		}
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// loadConfigFromEnv loads the configuration from environment variables.
func loadConfigFromEnv() (*Config, error) {
	var cfg Config

	// Load Postgres DSN
	cfg.Postgres.DSN = os.Getenv("DATABASE_URL")
	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	// Load NATS URL
	cfg.NATS.URL = os.Getenv("NATS_URL")
	if cfg.NATS.URL == "" {
		return nil, fmt.Errorf("NATS_URL environment variable not set")
	}

	cfg.HTTP.Address = os.Getenv("HTTP_ADDRESS")

	// Load Observability settings
	cfg.Observability.MetricsAddress = os.Getenv("METRICS_ADDRESS") // optional; empty disables metrics
	cfg.Observability.Environment = os.Getenv("ENV")

	// Load remote course provider settings
	cfg.CourseProvider.BaseURL = os.Getenv("COURSE_API_URL") // optional; empty disables the provider
	cfg.CourseProvider.APIKey = os.Getenv("COURSE_API_KEY")
	if v := os.Getenv("COURSE_API_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid COURSE_API_RPS value: %v", err)
		}
		cfg.CourseProvider.RequestsPerSecond = f
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 30 * time.Second
	}
	if cfg.HTTP.RequestsPerMinute == 0 {
		cfg.HTTP.RequestsPerMinute = 300
	}
	if cfg.CourseProvider.Timeout == 0 {
		cfg.CourseProvider.Timeout = 10 * time.Second
	}
	if cfg.CourseProvider.CacheTTL == 0 {
		cfg.CourseProvider.CacheTTL = 15 * time.Minute
	}
}

func ToObsConfig(appCfg *Config) observability.Config {
	return observability.Config{
		MetricsAddress: appCfg.Observability.MetricsAddress,
		Environment:    appCfg.Observability.Environment,
	}
}
