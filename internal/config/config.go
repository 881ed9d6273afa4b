package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	DriverPostgres = "postgres"
	DriverPGX      = "pgx"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	// Storage
	Storage       string
	StorageFile   string
	DatabaseURL   string
	DBDriver      string
	DBAutoMigrate bool

	// RabbitMQ
	RabbitURL      string
	RabbitExchange string

	// Redis (distributed rate limiting)
	RedisURL string

	// Rate Limiting
	RLEnabled bool
	RLLimit   int
	RLWindow  time.Duration

	CORSAllowedOrigins []string

	SearchAmenityFallback string
	BcryptCost            int

	LogLevel  string
	LogFormat string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	ShutdownTimeout  time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.HTTPAddr = httpAddr()

	cfg.Storage = strings.ToLower(getEnv("STORAGE", StorageMemory))
	cfg.StorageFile = getEnv("STORAGE_FILE", "")
	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	cfg.DBDriver = strings.ToLower(getEnv("DB_DRIVER", DriverPostgres))
	cfg.DBAutoMigrate = getBool("DB_AUTO_MIGRATE", false)

	cfg.RabbitURL = getEnv("RABBIT_URL", "")
	cfg.RabbitExchange = getEnv("RABBIT_EXCHANGE", "hbnb.events")

	cfg.RedisURL = getEnv("REDIS_URL", "")

	// 100 reqs / 1 min
	cfg.RLEnabled = getBool("RL_ENABLED", true)
	cfg.RLLimit = getIntEnv("RL_IP_LIMIT", 100)
	cfg.RLWindow = getDuration("RL_IP_WINDOW", 1*time.Minute)

	cfg.CORSAllowedOrigins = getList("CORS_ALLOWED_ORIGINS", []string{"*"})

	cfg.SearchAmenityFallback = strings.ToLower(getEnv("SEARCH_AMENITY_FALLBACK", "empty"))
	cfg.BcryptCost = getIntEnv("BCRYPT_COST", 0)

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "console")

	cfg.HTTPReadTimeout = getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	cfg.HTTPWriteTimeout = getDuration("HTTP_WRITE_TIMEOUT", 20*time.Second)
	cfg.HTTPIdleTimeout = getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second)
	cfg.ShutdownTimeout = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("missing DATABASE_URL (required when STORAGE=postgres)")
		}
	default:
		return fmt.Errorf("unknown STORAGE %q", c.Storage)
	}

	switch c.DBDriver {
	case DriverPostgres, DriverPGX:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}

	switch c.SearchAmenityFallback {
	case "empty", "unfiltered":
	default:
		return fmt.Errorf("unknown SEARCH_AMENITY_FALLBACK %q", c.SearchAmenityFallback)
	}

	// Rabbit: optional in dev, required in prod
	if c.AppEnv == "prod" && c.RabbitURL == "" {
		return fmt.Errorf("missing RABBIT_URL (required when APP_ENV=prod)")
	}
	return nil
}

// httpAddr prefers HTTP_ADDR, then the legacy HBNB_API_HOST/HBNB_API_PORT pair.
func httpAddr() string {
	if v := getEnv("HTTP_ADDR", ""); v != "" {
		return v
	}
	host := getEnv("HBNB_API_HOST", "0.0.0.0")
	port := getEnv("HBNB_API_PORT", "5000")
	return net.JoinHostPort(host, port)
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getIntEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getList(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
