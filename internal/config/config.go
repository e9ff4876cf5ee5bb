package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Groq      GroqConfig
	Scheduler SchedulerConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string

	PoolMaxConns   int32
	PoolMinConns   int32
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

// GroqConfig points at the OpenAI-compatible chat-completions endpoint.
type GroqConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
}

type SchedulerConfig struct {
	// RefreshCron triggers the industry-insight refresh batch.
	RefreshCron string
}

const (
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	defaultGroqModel   = "llama-3.3-70b-versatile"
	defaultTemperature = 0.7

	// Every Sunday at midnight.
	defaultRefreshCron = "0 0 * * 0"
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "career-coach"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		Host:           opt("DB_HOST", "localhost"),
		Port:           opt("DB_PORT", "5432"),
		Name:           req("DB_NAME"),
		User:           req("DB_USER"),
		Password:       os.Getenv("DB_PASSWORD"),
		SSLMode:        opt("DB_SSL_MODE", "disable"),
		PoolMaxConns:   int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:   int32(optInt("DB_POOL_MIN_CONNS", 0)),
		ConnectTimeout: optDuration("DB_CONNECT_TIMEOUT_SECONDS", 0),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  optDuration("JWT_ACCESS_EXPIRES_IN_SECONDS", 15*time.Minute),
		RefreshExpiresIn: optDuration("JWT_REFRESH_EXPIRES_IN_SECONDS", 7*24*time.Hour),
	}

	cfg.Groq = GroqConfig{
		BaseURL:     opt("GROQ_BASE_URL", defaultGroqBaseURL),
		APIKey:      req("GROQ_API_KEY"),
		Model:       opt("GROQ_MODEL", defaultGroqModel),
		Temperature: optFloat("GROQ_TEMPERATURE", defaultTemperature),
	}

	cfg.Scheduler = SchedulerConfig{
		RefreshCron: opt("INSIGHTS_REFRESH_CRON", defaultRefreshCron),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func optFloat(key string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

func optDuration(key string, fallback time.Duration) time.Duration {
	secs := optInt(key, -1)
	if secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
