package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers reported by Config.StoreDriver.
const (
	DriverNone     = "none"
	DriverHosted   = "hosted"
	DriverPostgres = "postgres"
)

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	App    AppConfig
}

type ServerConfig struct {
	Port       string
	MCPEnabled bool
}

type StoreConfig struct {
	// URL and Key address the hosted store's REST endpoint.
	URL string
	Key string
	// DatabaseURL connects straight to Postgres and wins over URL/Key when set.
	DatabaseURL string
	Table       string
	// Embed names a relation returned nested under each project's "results".
	Embed   string
	Timeout time.Duration
	// MaxConns caps the Postgres pool. Zero keeps the driver default.
	MaxConns int32
}

type AppConfig struct {
	Name        string
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnv("PORT", "8080"),
			MCPEnabled: getEnvAsBool("MCP_ENABLED", true),
		},
		Store: StoreConfig{
			URL:         strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
			Key:         getEnv("SUPABASE_KEY", ""),
			DatabaseURL: getEnv("DATABASE_URL", ""),
			Table:       getEnv("PROJECTS_TABLE", "projects"),
			Embed:       getEnv("PROJECTS_EMBED", ""),
			Timeout:     getEnvAsDuration("STORE_TIMEOUT", 0),
			MaxConns:    int32(getEnvAsInt("DB_MAX_CONNS", 0)),
		},
		App: AppConfig{
			Name:        "scout-interest",
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects malformed values. Missing store credentials are not an error:
// the service still starts and answers with a configuration error.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Store.Table == "" {
		return fmt.Errorf("PROJECTS_TABLE must not be empty")
	}
	if c.Store.Timeout < 0 {
		return fmt.Errorf("STORE_TIMEOUT must not be negative")
	}
	if c.Store.MaxConns < 0 {
		return fmt.Errorf("DB_MAX_CONNS must not be negative")
	}
	if _, err := ParseLevel(c.App.LogLevel); err != nil {
		return err
	}
	return nil
}

// StoreDriver reports which backing store adapter the credentials select.
func (c *Config) StoreDriver() string {
	switch {
	case c.Store.DatabaseURL != "":
		return DriverPostgres
	case c.Store.URL != "" && c.Store.Key != "":
		return DriverHosted
	default:
		return DriverNone
	}
}

// ParseLevel maps LOG_LEVEL onto a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
	return level, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		slog.Warn("invalid boolean, using default", "key", key, "default", defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 32)
	if err != nil {
		slog.Warn("invalid integer, using default", "key", key, "default", defaultValue)
		return defaultValue
	}
	return int(value)
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("invalid duration, using default", "key", key, "default", defaultValue)
		return defaultValue
	}
	return value
}
