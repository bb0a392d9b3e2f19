// Package config provides application configuration loading from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Eureka   EurekaConfig
	Log      LogConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host    string
	Port    string
	GinMode string
}

// DatabaseConfig contains PostgreSQL connection settings.
type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	DBName      string
	SSLMode     string
	AutoMigrate bool
}

// EurekaConfig contains settings of the upstream cohort API.
type EurekaConfig struct {
	BaseURL string
	Timeout time.Duration
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables, after loading a .env
// file when one exists. Returns error if required variables are not set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	required, err := requiredEnv("SERVER_HOST", "SERVER_PORT", "EUREKA_API_URL")
	if err != nil {
		return nil, err
	}

	db, err := loadDatabase()
	if err != nil {
		return nil, err
	}

	timeout, err := time.ParseDuration(getEnv("EUREKA_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid EUREKA_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid EUREKA_TIMEOUT: must be positive")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:    required["SERVER_HOST"],
			Port:    required["SERVER_PORT"],
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Database: *db,
		Eureka: EurekaConfig{
			BaseURL: required["EUREKA_API_URL"],
			Timeout: timeout,
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}

	return cfg, nil
}

// LoadDatabase reads only the database settings.
func LoadDatabase() (*DatabaseConfig, error) {
	_ = godotenv.Load()
	return loadDatabase()
}

func loadDatabase() (*DatabaseConfig, error) {
	required, err := requiredEnv("DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE")
	if err != nil {
		return nil, err
	}

	autoMigrate, err := strconv.ParseBool(getEnv("DB_AUTO_MIGRATE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_AUTO_MIGRATE: %w", err)
	}

	return &DatabaseConfig{
		Host:        required["DB_HOST"],
		Port:        required["DB_PORT"],
		User:        required["DB_USER"],
		Password:    required["DB_PASSWORD"],
		DBName:      required["DB_NAME"],
		SSLMode:     required["DB_SSLMODE"],
		AutoMigrate: autoMigrate,
	}, nil
}

// DSN returns PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Addr returns the listen address of the HTTP server.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// getRequiredEnv reads required environment variable or returns error.
func getRequiredEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}

func requiredEnv(keys ...string) (map[string]string, error) {
	values := make(map[string]string, len(keys))
	for _, key := range keys {
		value, err := getRequiredEnv(key)
		if err != nil {
			return nil, err
		}
		values[key] = value
	}
	return values, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
