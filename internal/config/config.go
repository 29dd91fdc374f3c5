package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		URL             string `yaml:"url" env:"DATABASE_URL"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Auth struct {
		// URL is the public base URL of the site (redirect targets are built from it)
		URL                string `yaml:"url" env:"AUTH_URL"`
		Secret             string `yaml:"secret" env:"NEXTAUTH_SECRET"`
		Debug              string `yaml:"debug" env:"AUTH_DEBUG"`
		BackendAPIURL      string `yaml:"backend_api_url" env:"BACKEND_API_URL"`
		GoogleClientID     string `yaml:"google_client_id" env:"GOOGLE_CLIENT_ID"`
		GoogleClientSecret string `yaml:"google_client_secret" env:"GOOGLE_CLIENT_SECRET"`
		GoogleIssuer       string `yaml:"google_issuer" env:"GOOGLE_ISSUER"`
		SessionMaxAge      string `yaml:"session_max_age" env:"AUTH_SESSION_MAX_AGE"`
		SecureCookies      bool   `yaml:"secure_cookies" env:"AUTH_SECURE_COOKIES"`
	} `yaml:"auth"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from an optional .env file, a YAML file and
// environment variables, in increasing order of precedence.
func LoadConfig(configPath string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat config file %s: %w", configPath, err)
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadDotEnv loads a dotenv file if it exists; real environment variables win.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "coursehub"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"

	config.Auth.URL = "http://localhost:3000"
	config.Auth.BackendAPIURL = "http://localhost:8080/api/v1"
	config.Auth.GoogleIssuer = "https://accounts.google.com"
	config.Auth.SessionMaxAge = "720h"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig checks the settings every command needs
func validateConfig(config *Config) error {
	if config.Database.URL == "" && config.Database.Host == "" {
		return fmt.Errorf("database host or url is required")
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid connection max lifetime: %w", err)
	}

	if _, err := time.ParseDuration(config.Auth.SessionMaxAge); err != nil {
		return fmt.Errorf("invalid session max age: %w", err)
	}

	return nil
}

// ValidateAuth checks the settings the HTTP server needs to sign users in.
// The seeding CLI does not call it.
func (c *Config) ValidateAuth() error {
	if c.Auth.Secret == "" {
		return fmt.Errorf("NEXTAUTH_SECRET is required")
	}
	if c.Auth.BackendAPIURL == "" {
		return fmt.Errorf("BACKEND_API_URL is required")
	}
	if c.Auth.URL == "" {
		return fmt.Errorf("AUTH_URL is required")
	}
	return nil
}

// AuthDebug reports whether auth debug logging is on. Any non-empty value enables it.
func (c *Config) AuthDebug() bool {
	return c.Auth.Debug != ""
}

// GoogleEnabled reports whether the identity provider is configured
func (c *Config) GoogleEnabled() bool {
	return c.Auth.GoogleClientID != "" && c.Auth.GoogleClientSecret != ""
}

// BaseURL returns the public base URL without a trailing slash
func (c *Config) BaseURL() string {
	return strings.TrimRight(c.Auth.URL, "/")
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}

	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
