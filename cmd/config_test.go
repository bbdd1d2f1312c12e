package cmd_test

import (
	"log/slog"
	"testing"
	"time"

	"orderdesk/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	config, err := cmd.ConfigFromEnv(env(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, "http://localhost:8001", config.BackendURL)
	assert.Equal(t, 15*time.Second, config.BackendTimeout)
	assert.Equal(t, "@every 30s", config.RefreshSchedule)
	assert.Equal(t, "off", config.SyncSchedule)
	assert.Equal(t, slog.LevelInfo, config.LogLevel)

	dsn, err := config.DSN()
	require.NoError(t, err)
	assert.Empty(t, dsn)
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	config, err := cmd.ConfigFromEnv(env(map[string]string{
		"HTTP_PORT":       "9090",
		"BACKEND_URL":     "https://orders.example.com/",
		"BACKEND_TIMEOUT": "3s",
		"SYNC_SCHEDULE":   "0 */5 * * * *",
		"LOG_LEVEL":       "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", config.HTTPPort)
	assert.Equal(t, "https://orders.example.com", config.BackendURL)
	assert.Equal(t, 3*time.Second, config.BackendTimeout)
	assert.Equal(t, "0 */5 * * * *", config.SyncSchedule)
	assert.Equal(t, slog.LevelDebug, config.LogLevel)
}

func TestConfigFromEnv_Invalid(t *testing.T) {
	_, err := cmd.ConfigFromEnv(env(map[string]string{"BACKEND_TIMEOUT": "soon"}))
	assert.ErrorContains(t, err, "BACKEND_TIMEOUT")

	_, err = cmd.ConfigFromEnv(env(map[string]string{"BACKEND_TIMEOUT": "-1s"}))
	assert.ErrorContains(t, err, "BACKEND_TIMEOUT")

	_, err = cmd.ConfigFromEnv(env(map[string]string{"LOG_LEVEL": "loud"}))
	assert.ErrorContains(t, err, "LOG_LEVEL")
}

func TestConfig_DSN(t *testing.T) {
	config := cmd.Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "orderdesk",
		DBPassword: "it's secret",
		DBName:     "journal",
		DBSslMode:  "disable",
	}

	dsn, err := config.DSN()
	require.NoError(t, err)
	assert.Equal(t, `host=db port=5432 user=orderdesk password='it\'s secret' dbname=journal sslmode=disable`, dsn)

	config.DatabaseURL = "postgres://u:p@db.internal:6543/orders?sslmode=require"
	dsn, err = config.DSN()
	require.NoError(t, err)
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "port=6543")
	assert.Contains(t, dsn, "dbname=orders")
	assert.Contains(t, dsn, "sslmode=require")

	config.DatabaseURL = "mysql://nope"
	_, err = config.DSN()
	assert.ErrorContains(t, err, "DATABASE_URL")
}
