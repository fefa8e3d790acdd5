package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the confidios proxy service
type Config struct {
	// Server
	Port     string
	Host     string
	LogLevel string

	// Database
	DatabaseHost     string
	DatabasePort     string
	DatabaseName     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseSSLMode  string

	// Confidios
	ConfidiosBaseURL        string
	ConfidiosBaseUserFolder string
	ConfidiosAdminUsername  string
	ConfidiosAdminPassword  string
	ConfidiosTimeout        time.Duration
	// ConfidiosLogoutTimeout bounds the best-effort remote logout call so a
	// stalled Confidios instance cannot delay the local session clear.
	ConfidiosLogoutTimeout time.Duration

	// Identity provider used to verify callers
	KratosPublicURL string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9560")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseHost = getEnvOrDefault("DB_HOST", "confidios-postgres")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "confidios_db")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "confidios_user")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")

	// Confidios configuration
	config.ConfidiosBaseURL = os.Getenv("CONFIDIOS_BASE_URL")
	if config.ConfidiosBaseURL == "" {
		return nil, fmt.Errorf("CONFIDIOS_BASE_URL is required")
	}
	config.ConfidiosBaseUserFolder = os.Getenv("CONFIDIOS_BASE_USER_FOLDER")
	if config.ConfidiosBaseUserFolder == "" {
		return nil, fmt.Errorf("CONFIDIOS_BASE_USER_FOLDER is required")
	}
	config.ConfidiosAdminUsername = getEnvOrDefault("CONFIDIOS_ADMIN_USERNAME", "keeper")
	config.ConfidiosAdminPassword = os.Getenv("CONFIDIOS_ADMIN_PASSWORD")
	if config.ConfidiosAdminPassword == "" {
		return nil, fmt.Errorf("CONFIDIOS_ADMIN_PASSWORD is required")
	}

	var err error
	timeoutStr := getEnvOrDefault("CONFIDIOS_TIMEOUT", "30s")
	config.ConfidiosTimeout, err = time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CONFIDIOS_TIMEOUT: %w", err)
	}

	logoutTimeoutStr := getEnvOrDefault("CONFIDIOS_LOGOUT_TIMEOUT", "5s")
	config.ConfidiosLogoutTimeout, err = time.ParseDuration(logoutTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CONFIDIOS_LOGOUT_TIMEOUT: %w", err)
	}

	// Identity provider configuration
	config.KratosPublicURL = os.Getenv("KRATOS_PUBLIC_URL")
	if config.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	for name, value := range map[string]string{
		"CONFIDIOS_BASE_URL": c.ConfidiosBaseURL,
		"KRATOS_PUBLIC_URL":  c.KratosPublicURL,
	} {
		if !isValidURL(value) {
			return fmt.Errorf("%s is not a valid URL: %s", name, value)
		}
	}

	if c.ConfidiosTimeout < time.Second {
		return fmt.Errorf("confidios timeout must be at least 1 second, got: %v", c.ConfidiosTimeout)
	}
	if c.ConfidiosLogoutTimeout < 100*time.Millisecond {
		return fmt.Errorf("confidios logout timeout must be at least 100ms, got: %v", c.ConfidiosLogoutTimeout)
	}
	if c.ConfidiosLogoutTimeout > c.ConfidiosTimeout {
		return fmt.Errorf("logout timeout (%v) must not exceed the general confidios timeout (%v)",
			c.ConfidiosLogoutTimeout, c.ConfidiosTimeout)
	}

	if strings.Contains(c.ConfidiosBaseUserFolder, "..") {
		return fmt.Errorf("CONFIDIOS_BASE_USER_FOLDER must not contain relative segments: %s", c.ConfidiosBaseUserFolder)
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func isValidURL(urlStr string) bool {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}
