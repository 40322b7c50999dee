package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

const (
	defaultHTTPAddr         = ":8080"
	defaultDatabaseURL      = "motionklub.db"
	defaultJWTSecret        = "change-me-jwt-secret"
	defaultJWTTTL           = "24h"
	defaultSessionBackend   = "db"
	defaultRedisURL         = "localhost:6379"
	defaultMockLatency      = "0s"
	defaultResortTimezone   = "Europe/Prague"
	defaultSessionRetention = "720h"
)

type Config struct {
	AppEnv             string
	HTTPAddr           string
	DatabaseURL        string
	JWTSecret          string
	JWTTTL             time.Duration
	SessionBackend     string
	RedisURL           string
	MockLatency        time.Duration
	ResortLocation     *time.Location
	SessionRetention   time.Duration
	CORSAllowedOrigins []string
}

// Load reads the configuration from the environment. Call godotenv.Load first
// to pick up a local .env file.
func Load() (*Config, error) {
	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.SessionBackend = strings.ToLower(strings.TrimSpace(getEnv("SESSION_BACKEND", defaultSessionBackend)))
	cfg.RedisURL = strings.TrimSpace(getEnv("REDIS_URL", defaultRedisURL))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.MockLatency, err = parseDurationEnv("MOCK_LATENCY", defaultMockLatency)
	if err != nil {
		return nil, err
	}
	cfg.SessionRetention, err = parseDurationEnv("SESSION_RETENTION", defaultSessionRetention)
	if err != nil {
		return nil, err
	}

	tz := strings.TrimSpace(getEnv("RESORT_TIMEZONE", defaultResortTimezone))
	cfg.ResortLocation, err = time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid RESORT_TIMEZONE value %q: %w", tz, err)
	}

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("config loaded: env=%s addr=%s session_backend=%s mock_latency=%s tz=%s",
		cfg.AppEnv, cfg.HTTPAddr, cfg.SessionBackend, cfg.MockLatency, cfg.ResortLocation)

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.MockLatency < 0 {
		return fmt.Errorf("MOCK_LATENCY must be >= 0")
	}
	if cfg.SessionRetention <= 0 {
		return fmt.Errorf("SESSION_RETENTION must be > 0")
	}
	if cfg.SessionBackend != "db" && cfg.SessionBackend != "redis" {
		return fmt.Errorf("SESSION_BACKEND must be one of: db, redis")
	}
	if cfg.SessionBackend == "redis" && cfg.RedisURL == "" {
		return fmt.Errorf("REDIS_URL must be set when SESSION_BACKEND=redis")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.MockLatency > 0 {
			return fmt.Errorf("in prod/release MOCK_LATENCY must be 0")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
