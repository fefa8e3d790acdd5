package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("CONFIDIOS_BASE_URL", "http://confidios:8080")
	t.Setenv("CONFIDIOS_BASE_USER_FOLDER", "home/data")
	t.Setenv("CONFIDIOS_ADMIN_PASSWORD", "keeper-secret")
	t.Setenv("KRATOS_PUBLIC_URL", "http://kratos-public:4433")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9560", cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "keeper", cfg.ConfidiosAdminUsername)
	assert.Equal(t, 30*time.Second, cfg.ConfidiosTimeout)
	assert.Equal(t, 5*time.Second, cfg.ConfidiosLogoutTimeout)
	assert.Equal(t, "home/data", cfg.ConfidiosBaseUserFolder)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		unset   string
		wantMsg string
	}{
		{"missing db password", "DB_PASSWORD", "DB_PASSWORD is required"},
		{"missing confidios url", "CONFIDIOS_BASE_URL", "CONFIDIOS_BASE_URL is required"},
		{"missing base folder", "CONFIDIOS_BASE_USER_FOLDER", "CONFIDIOS_BASE_USER_FOLDER is required"},
		{"missing admin password", "CONFIDIOS_ADMIN_PASSWORD", "CONFIDIOS_ADMIN_PASSWORD is required"},
		{"missing kratos url", "KRATOS_PUBLIC_URL", "KRATOS_PUBLIC_URL is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad port", "PORT", "not-a-port"},
		{"port out of range", "PORT", "70000"},
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"bad timeout", "CONFIDIOS_TIMEOUT", "soon"},
		{"bad logout timeout", "CONFIDIOS_LOGOUT_TIMEOUT", "later"},
		{"logout timeout above general timeout", "CONFIDIOS_LOGOUT_TIMEOUT", "60s"},
		{"bad confidios url", "CONFIDIOS_BASE_URL", "not a url"},
		{"base folder with traversal", "CONFIDIOS_BASE_USER_FOLDER", "home/../etc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate_LogoutTimeoutBound(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CONFIDIOS_TIMEOUT", "10s")
	t.Setenv("CONFIDIOS_LOGOUT_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.ConfidiosTimeout)
	assert.Equal(t, 2*time.Second, cfg.ConfidiosLogoutTimeout)
}
