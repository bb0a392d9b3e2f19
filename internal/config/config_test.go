package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishasvintus/cohort_gateway/internal/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "cohort")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "cohorts")
	t.Setenv("DB_SSLMODE", "disable")
	t.Setenv("EUREKA_API_URL", "http://eureka:8080/eureka-services/api/protected")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("EUREKA_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("DB_AUTO_MIGRATE", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, 15*time.Second, cfg.Eureka.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "host=db port=5432 user=cohort password=secret dbname=cohorts sslmode=disable", cfg.Database.DSN())
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("EUREKA_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DB_AUTO_MIGRATE", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.Eureka.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Database.AutoMigrate)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		value         string
		expectedError string
	}{
		{
			name:          "missing upstream url",
			key:           "EUREKA_API_URL",
			value:         "",
			expectedError: "required environment variable EUREKA_API_URL is not set",
		},
		{
			name:          "missing database host",
			key:           "DB_HOST",
			value:         "",
			expectedError: "required environment variable DB_HOST is not set",
		},
		{
			name:          "bad timeout",
			key:           "EUREKA_TIMEOUT",
			value:         "soon",
			expectedError: "invalid EUREKA_TIMEOUT",
		},
		{
			name:          "negative timeout",
			key:           "EUREKA_TIMEOUT",
			value:         "-1s",
			expectedError: "invalid EUREKA_TIMEOUT",
		},
		{
			name:          "bad auto migrate flag",
			key:           "DB_AUTO_MIGRATE",
			value:         "maybe",
			expectedError: "invalid DB_AUTO_MIGRATE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestLoadDatabase_IgnoresServerSettings(t *testing.T) {
	setRequired(t)
	t.Setenv("SERVER_HOST", "")
	t.Setenv("EUREKA_API_URL", "")

	db, err := config.LoadDatabase()
	require.NoError(t, err)
	assert.Equal(t, "cohorts", db.DBName)

	_, err = config.Load()
	assert.Error(t, err)
}
