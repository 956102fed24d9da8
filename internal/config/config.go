package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"resume-service/internal/database"
)

type Config struct {
	Port      string
	APIPrefix string
	LogLevel  string

	DBDriver       database.Dialect
	DatabaseURL    string
	DBRetries      int
	DBRetryDelay   time.Duration
	DBMaxOpenConns int

	RateLimit        float64
	RateBurst        int
	CORSAllowOrigins []string

	RedisAddr    string
	KafkaBrokers []string
	KafkaTopic   string

	SeedOnStart     bool
	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment, after loading a .env file
// when one is present in the working directory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	dialect, err := database.ParseDialect(getenv("DB_DRIVER"))
	if err != nil {
		return nil, err
	}

	dsn := getenv("DATABASE_URL")
	if dsn == "" {
		dsn = getenv("POSTGRES_URL")
	}
	if dsn == "" && dialect == database.SQLite {
		dsn = "file:resume.db?_foreign_keys=on"
	}
	if dsn == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	cfg := &Config{
		Port:             str(getenv, "PORT", "3001"),
		APIPrefix:        strings.TrimRight(getenv("API_PREFIX"), "/"),
		LogLevel:         str(getenv, "LOG_LEVEL", "info"),
		DBDriver:         dialect,
		DatabaseURL:      dsn,
		DBRetries:        integer(getenv, "DB_CONNECT_RETRIES", 10),
		DBRetryDelay:     duration(getenv, "DB_CONNECT_RETRY_DELAY", 3*time.Second),
		DBMaxOpenConns:   integer(getenv, "DB_MAX_OPEN_CONNS", 0),
		RateLimit:        float(getenv, "RATE_LIMIT", 20),
		RateBurst:        integer(getenv, "RATE_BURST", 40),
		CORSAllowOrigins: list(getenv, "CORS_ALLOW_ORIGINS", []string{"*"}),
		RedisAddr:        getenv("REDIS_ADDR"),
		KafkaBrokers:     list(getenv, "KAFKA_BROKERS", nil),
		KafkaTopic:       str(getenv, "KAFKA_TOPIC", "resume-topic"),
		SeedOnStart:      boolean(getenv, "SEED_ON_START", true),
		ShutdownTimeout:  duration(getenv, "SHUTDOWN_TIMEOUT", 10*time.Second),
	}
	return cfg, nil
}

func str(getenv func(string) string, key, def string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return def
}

func integer(getenv func(string) string, key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func float(getenv func(string) string, key string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(getenv(key)), 64)
	if err != nil {
		return def
	}
	return v
}

func boolean(getenv func(string) string, key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func duration(getenv func(string) string, key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func list(getenv func(string) string, key string, def []string) []string {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
