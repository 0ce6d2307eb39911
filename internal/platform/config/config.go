// Package config loads application settings from the environment.
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

// Config is the explicit configuration object handed to every component at startup.
type Config struct {
	AppEnv   string
	LogLevel string
	HTTPPort int

	// CORSOrigins lists storefront origins allowed to call the API with credentials.
	CORSOrigins []string

	Content ContentConfig
	Session SessionConfig
	DB      DBConfig
	Redis   RedisConfig

	// SyncRatePerMinute caps content-service calls issued by the shadow sync job.
	SyncRatePerMinute int
}

// ContentConfig holds settings for the headless content service.
type ContentConfig struct {
	BaseURL string        // e.g. "https://cms.milsabores.cl"
	Token   string        // bearer token
	Timeout time.Duration // default per-request timeout
}

// SessionConfig holds settings for signed session cookies.
type SessionConfig struct {
	Secret     string
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// DBConfig holds relational database settings.
type DBConfig struct {
	Driver        string // "postgres" or "sqlite"
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	SSLMode       string
	SQLitePath    string
	RunMigrations bool
}

// RedisConfig holds Redis settings. An empty Host disables Redis.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// Addr returns host:port for the Redis client.
func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

// Enabled reports whether a Redis host was configured.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

// requiredKeys must be present for the server to start.
var requiredKeys = []string{"CONTENT_API_URL", "CONTENT_API_TOKEN", "SESSION_SECRET"}

// Load reads an optional .env file and then the process environment.
// It fails when any required key is missing.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env not found; using process environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	var missing []string
	for _, k := range requiredKeys {
		if strings.TrimSpace(os.Getenv(k)) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	appEnv := getEnv("APP_ENV", "dev")
	return Config{
		AppEnv:      appEnv,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPPort:    getEnvInt("HTTP_PORT", 8080),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		Content: ContentConfig{
			BaseURL: strings.TrimRight(os.Getenv("CONTENT_API_URL"), "/"),
			Token:   os.Getenv("CONTENT_API_TOKEN"),
			Timeout: getEnvDuration("CONTENT_API_TIMEOUT", 10*time.Second),
		},
		Session: SessionConfig{
			Secret:     os.Getenv("SESSION_SECRET"),
			CookieName: getEnv("SESSION_COOKIE", "mil_sabores_session"),
			TTL:        getEnvDuration("SESSION_TTL", 7*24*time.Hour),
			Secure:     appEnv == "production",
		},
		DB: DBConfig{
			Driver:        getEnv("DB_DRIVER", "postgres"),
			Host:          getEnv("DB_HOST", "localhost"),
			Port:          getEnv("DB_PORT", "5432"),
			User:          os.Getenv("DB_USER"),
			Password:      os.Getenv("DB_PASSWORD"),
			Name:          os.Getenv("DB_NAME"),
			SSLMode:       getEnv("DB_SSLMODE", "disable"),
			SQLitePath:    getEnv("SQLITE_PATH", "./mil_sabores.db"),
			RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
		},
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		SyncRatePerMinute: getEnvInt("SYNC_RATE_PER_MINUTE", 60),
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
