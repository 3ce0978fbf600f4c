package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	ClickHouse ClickHouseConfig
	Auth       AuthConfig
	Analytics  AnalyticsConfig
	Cache      CacheConfig
	RateLimit  RateLimitConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	PrimaryDSN      string
	ReplicaDSNs     []string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	StreamName string
}

type ClickHouseConfig struct {
	Addr     string
	Database string
	Username string
	Password string
	MaxConns int
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type AnalyticsConfig struct {
	ConsumerGroup string
	ConsumerName  string
	BatchSize     int
	PollInterval  time.Duration
	BlockTime     time.Duration
}

type CacheConfig struct {
	L1Capacity int
	L2TTL      time.Duration
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

func Load() (*Config, error) {
	// Load .env if it exists (local dev), ignore if not (K8s uses ConfigMaps/Secrets)
	_ = godotenv.Load()

	// The signing secret has no default on purpose: a process without one
	// must not come up.
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("TASK_SERVICE_PORT", "8080"),
		},
		Database: DatabaseConfig{
			PrimaryDSN:      getEnv("DB_PRIMARY_DSN", ""),
			ReplicaDSNs:     splitDSNs(getEnv("DB_REPLICA_DSNS", "")),
			MaxConns:        int32(getEnvAsInt("DB_MAX_CONNS", 25)),
			MinConns:        int32(getEnvAsInt("DB_MIN_CONNS", 5)),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", time.Hour),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		},
		Redis: RedisConfig{
			Addr:       getEnv("REDIS_ADDR", "localhost:6379"),
			Password:   getEnv("REDIS_PASSWORD", ""),
			DB:         getEnvAsInt("REDIS_DB", 0),
			StreamName: getEnv("REDIS_STREAM_NAME", "task-activity:stream"),
		},
		ClickHouse: ClickHouseConfig{
			Addr:     getEnv("CLICKHOUSE_ADDR", "localhost:9000"),
			Database: getEnv("CLICKHOUSE_DATABASE", "taskhub"),
			Username: getEnv("CLICKHOUSE_USERNAME", "clickhouse"),
			Password: getEnv("CLICKHOUSE_PASSWORD", ""),
			MaxConns: getEnvAsInt("CLICKHOUSE_MAX_CONNS", 10),
		},
		Auth: AuthConfig{
			JWTSecret: jwtSecret,
			TokenTTL:  getEnvAsDuration("JWT_TOKEN_TTL", 7*24*time.Hour),
		},
		Analytics: AnalyticsConfig{
			ConsumerGroup: getEnv("ANALYTICS_CONSUMER_GROUP", "activity-group"),
			ConsumerName:  getEnv("ANALYTICS_CONSUMER_NAME", "worker-1"),
			BatchSize:     getEnvAsInt("ANALYTICS_BATCH_SIZE", 100),
			PollInterval:  getEnvAsDuration("ANALYTICS_POLL_INTERVAL", time.Second),
			BlockTime:     getEnvAsDuration("ANALYTICS_BLOCK_TIME", 5*time.Second),
		},
		Cache: CacheConfig{
			L1Capacity: getEnvAsInt("CACHE_L1_CAPACITY", 1000),
			L2TTL:      getEnvAsDuration("CACHE_L2_TTL", 5*time.Minute),
		},
		RateLimit: RateLimitConfig{
			Requests: getEnvAsInt("RATE_LIMIT_REQUESTS", 100),
			Window:   getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func splitDSNs(value string) []string {
	if value == "" {
		return nil
	}

	var dsns []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			dsns = append(dsns, part)
		}
	}
	return dsns
}
