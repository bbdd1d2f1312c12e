package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lib/pq"
)

const (
	defaultHTTPPort        = "8080"
	defaultBackendURL      = "http://localhost:8001"
	defaultBackendTimeout  = 15 * time.Second
	defaultRefreshSchedule = "@every 30s"
	defaultSyncSchedule    = "off"
)

type Config struct {
	HTTPPort        string
	BackendURL      string
	BackendTimeout  time.Duration
	DatabaseURL     string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	RefreshSchedule string
	SyncSchedule    string
	LogLevel        slog.Level
}

// ConfigFromEnv reads the configuration through lookup, normally
// os.LookupEnv, falling back to defaults for unset variables.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	config := Config{
		HTTPPort:        get("HTTP_PORT", defaultHTTPPort),
		BackendURL:      strings.TrimRight(get("BACKEND_URL", defaultBackendURL), "/"),
		BackendTimeout:  defaultBackendTimeout,
		DatabaseURL:     get("DATABASE_URL", ""),
		DBHost:          get("DB_HOST", ""),
		DBPort:          get("DB_PORT", "5432"),
		DBUser:          get("DB_USER", ""),
		DBPassword:      get("DB_PASSWORD", ""),
		DBName:          get("DB_NAME", ""),
		DBSslMode:       get("DB_SSLMODE", "disable"),
		RefreshSchedule: get("REFRESH_SCHEDULE", defaultRefreshSchedule),
		SyncSchedule:    get("SYNC_SCHEDULE", defaultSyncSchedule),
	}

	if raw := get("BACKEND_TIMEOUT", ""); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil || timeout <= 0 {
			return Config{}, fmt.Errorf("BACKEND_TIMEOUT: %q is not a positive duration", raw)
		}
		config.BackendTimeout = timeout
	}

	if err := config.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return config, nil
}

// DSN returns the connection string for the activity journal, or "" when no
// database is configured. DATABASE_URL wins over the DB_* parts.
func (c Config) DSN() (string, error) {
	if c.DatabaseURL != "" {
		dsn, err := pq.ParseURL(c.DatabaseURL)
		if err != nil {
			return "", fmt.Errorf("DATABASE_URL: %w", err)
		}
		return dsn, nil
	}
	if c.DBHost == "" {
		return "", nil
	}

	pairs := [][2]string{
		{"host", c.DBHost},
		{"port", c.DBPort},
		{"user", c.DBUser},
		{"password", c.DBPassword},
		{"dbname", c.DBName},
		{"sslmode", c.DBSslMode},
	}
	parts := make([]string, 0, len(pairs))
	for _, kv := range pairs {
		if kv[1] != "" {
			parts = append(parts, kv[0]+"="+quoteDSNValue(kv[1]))
		}
	}
	return strings.Join(parts, " "), nil
}

// quoteDSNValue quotes values the key/value DSN syntax cannot carry bare.
func quoteDSNValue(v string) string {
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
