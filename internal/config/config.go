package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server        ServerConfig
	Registry      RegistryConfig
	Database      DatabaseConfig
	CORS          CORSConfig
	Observability ObservabilityConfig
	Journal       JournalConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
	Env  string
}

// RegistryConfig holds the upstream cadastral registry settings.
type RegistryConfig struct {
	BaseURL          string
	Timeout          time.Duration
	UserAgent        string
	MaxResponseBytes int64
}

// DatabaseConfig holds PostgreSQL connection configuration for the lookup journal.
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	PoolMin  int
	PoolMax  int
}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	Origins []string
}

// ObservabilityConfig holds metrics and tracing switches.
type ObservabilityConfig struct {
	MetricsEnabled  bool
	TracingEnabled  bool
	TracingEndpoint string
}

// JournalConfig controls the lookup journal.
type JournalConfig struct {
	Enabled bool
}

// Load reads configuration from environment variables, after loading an
// optional .env file from the working directory. Variables already set in the
// environment take precedence over the file. It uses viper to read values and
// provides sensible defaults for development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// Set defaults for development
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("REGISTRY_BASE_URL", "http://rosreestr.ru/api/online")
	v.SetDefault("REGISTRY_TIMEOUT", "30s")
	v.SetDefault("REGISTRY_USER_AGENT", "cadastre/0.1.0")
	v.SetDefault("REGISTRY_MAX_RESPONSE_BYTES", 8<<20)
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_ENDPOINT", "localhost:4317")
	v.SetDefault("JOURNAL_ENABLED", false)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "cadastre")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_POOL_MIN", 1)
	v.SetDefault("DB_POOL_MAX", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001")

	// Bind environment variables
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
			Env:  v.GetString("ENV"),
		},
		Registry: RegistryConfig{
			BaseURL:          v.GetString("REGISTRY_BASE_URL"),
			Timeout:          v.GetDuration("REGISTRY_TIMEOUT"),
			UserAgent:        v.GetString("REGISTRY_USER_AGENT"),
			MaxResponseBytes: v.GetInt64("REGISTRY_MAX_RESPONSE_BYTES"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			PoolMin:  v.GetInt("DB_POOL_MIN"),
			PoolMax:  v.GetInt("DB_POOL_MAX"),
		},
		CORS: CORSConfig{
			Origins: parseOrigins(v.GetString("CORS_ORIGINS")),
		},
		Observability: ObservabilityConfig{
			MetricsEnabled:  v.GetBool("METRICS_ENABLED"),
			TracingEnabled:  v.GetBool("TRACING_ENABLED"),
			TracingEndpoint: v.GetString("TRACING_ENDPOINT"),
		},
		Journal: JournalConfig{
			Enabled: v.GetBool("JOURNAL_ENABLED"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present and valid.
// Database settings are only checked when the lookup journal is enabled.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if err := c.Registry.validate(); err != nil {
		return err
	}

	if c.Journal.Enabled {
		if err := c.Database.validate(); err != nil {
			return err
		}
	}

	if c.Observability.TracingEnabled && c.Observability.TracingEndpoint == "" {
		return fmt.Errorf("TRACING_ENDPOINT is required when tracing is enabled")
	}

	if len(c.CORS.Origins) == 0 {
		return fmt.Errorf("CORS_ORIGINS is required")
	}

	return nil
}

func (r RegistryConfig) validate() error {
	if r.BaseURL == "" {
		return fmt.Errorf("REGISTRY_BASE_URL is required")
	}
	u, err := url.Parse(r.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("REGISTRY_BASE_URL must be an absolute http(s) URL")
	}
	if r.Timeout <= 0 {
		return fmt.Errorf("REGISTRY_TIMEOUT must be positive")
	}
	if r.MaxResponseBytes <= 0 {
		return fmt.Errorf("REGISTRY_MAX_RESPONSE_BYTES must be positive")
	}
	return nil
}

func (d DatabaseConfig) validate() error {
	if d.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if d.Port == "" {
		return fmt.Errorf("DB_PORT is required")
	}
	if d.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if d.User == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if d.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if d.PoolMin < 0 {
		return fmt.Errorf("DB_POOL_MIN must be non-negative")
	}
	if d.PoolMax < 1 {
		return fmt.Errorf("DB_POOL_MAX must be at least 1")
	}
	if d.PoolMin > d.PoolMax {
		return fmt.Errorf("DB_POOL_MIN must be less than or equal to DB_POOL_MAX")
	}
	return nil
}

// parseOrigins splits a comma-separated string of origins into a slice.
func parseOrigins(origins string) []string {
	if origins == "" {
		return []string{}
	}

	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
