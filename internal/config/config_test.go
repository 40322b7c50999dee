package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"APP_ENV", "ENV", "HTTP_ADDR", "DATABASE_URL", "JWT_SECRET", "JWT_TTL",
		"SESSION_BACKEND", "REDIS_URL", "MOCK_LATENCY", "RESORT_TIMEZONE",
		"SESSION_RETENTION", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "motionklub.db", cfg.DatabaseURL)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "db", cfg.SessionBackend)
	assert.Equal(t, time.Duration(0), cfg.MockLatency)
	assert.Equal(t, "Europe/Prague", cfg.ResortLocation.String())
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MOCK_LATENCY", "500ms")
	t.Setenv("SESSION_BACKEND", "Redis")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("RESORT_TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.MockLatency)
	assert.Equal(t, "redis", cfg.SessionBackend)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, time.UTC, cfg.ResortLocation)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"bad duration":   {"JWT_TTL", "soon"},
		"zero ttl":       {"JWT_TTL", "0s"},
		"bad backend":    {"SESSION_BACKEND", "memcached"},
		"bad timezone":   {"RESORT_TIMEZONE", "Mars/Olympus"},
		"negative delay": {"MOCK_LATENCY", "-1s"},
		"zero retention": {"SESSION_RETENTION", "0h"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_ProdRequiresSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "a-real-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.AppEnv)
}
