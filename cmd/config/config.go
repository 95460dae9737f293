package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Internal    InternalConfig
	RateLimit   RateLimitConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
}

type InternalConfig struct {
	APIKey string
}

type RateLimitConfig struct {
	Requests int64
	Window   time.Duration
}

// Load reads configuration from environment variables, with .env as a
// development fallback
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: envString("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         envString("SERVER_PORT", "8080"),
			ReadTimeout:  envDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: envDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  envDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            envString("DB_HOST", "localhost"),
			Port:            envInt("DB_PORT", 3306),
			User:            envString("DB_USER", "root"),
			Password:        envString("DB_PASSWORD", ""),
			Name:            envString("DB_NAME", "timetrkkr"),
			MaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: envDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     envString("REDIS_HOST", "localhost"),
			Port:     envInt("REDIS_PORT", 6379),
			Password: envString("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:  envBool("RABBITMQ_ENABLED", false),
			Host:     envString("RABBITMQ_HOST", "localhost"),
			Port:     envInt("RABBITMQ_PORT", 5672),
			User:     envString("RABBITMQ_USER", "guest"),
			Password: envString("RABBITMQ_PASSWORD", "guest"),
		},
		Internal: InternalConfig{
			APIKey: envString("INTERNAL_API_KEY", ""),
		},
		RateLimit: RateLimitConfig{
			Requests: int64(envInt("RATE_LIMIT_REQUESTS", 100)),
			Window:   envDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
	}
}

// GetDSN builds the MySQL connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=Local",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
