package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"TACK_ISSUER", "TACK_ACCESS_TOKEN_TTL", "PORT", "ENV", "AUTH_REVEAL_UNKNOWN_EMAIL", "REDIS_URL", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "tack", cfg.Issuer)
	require.Equal(t, 24*time.Hour, cfg.AccessTokenTTL)
	require.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "dev", cfg.Env)
	require.False(t, cfg.RevealUnknownEmail)
	require.Empty(t, cfg.RedisURL)
	require.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.AllowedOrigins)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("TACK_ACCESS_TOKEN_TTL", "15m")
	t.Setenv("HOUSEKEEPING_INTERVAL", "30")
	t.Setenv("PORT", "9090")
	t.Setenv("AUTH_REVEAL_UNKNOWN_EMAIL", "true")
	t.Setenv("SMTP_PORT", "not-a-number")
	t.Setenv("ALLOWED_ORIGINS", " https://app.example.com, ,https://admin.example.com ")

	cfg := LoadConfig()
	require.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	require.Equal(t, 30*time.Minute, cfg.HousekeepingInterval)
	require.Equal(t, 9090, cfg.Port)
	require.True(t, cfg.RevealUnknownEmail)
	require.Equal(t, 587, cfg.SMTPPort)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Port:            8080,
			DatabaseFile:    "tack.db",
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: 24 * time.Hour,
			Env:             "dev",
			AllowedOrigins:  []string{"http://localhost:3000"},
		}
	}

	t.Run("dev without secrets", func(t *testing.T) {
		require.NoError(t, base().Validate())
	})

	t.Run("prod requires secrets", func(t *testing.T) {
		cfg := base()
		cfg.Env = envProduction
		err := cfg.Validate()
		require.ErrorContains(t, err, "TACK_ACCESS_TOKEN_SECRET")
		require.ErrorContains(t, err, "TACK_REFRESH_TOKEN_SECRET")

		cfg.AccessTokenSecret = "access-secret-0123456789abcdef-0123"
		cfg.RefreshTokenSecret = "refresh-secret-0123456789abcdef-012"
		require.NoError(t, cfg.Validate())
	})

	t.Run("secrets must differ", func(t *testing.T) {
		cfg := base()
		cfg.AccessTokenSecret = "same-secret-0123456789abcdef-0123456"
		cfg.RefreshTokenSecret = cfg.AccessTokenSecret
		require.ErrorContains(t, cfg.Validate(), "must differ")
	})

	t.Run("short secret", func(t *testing.T) {
		cfg := base()
		cfg.AccessTokenSecret = "short"
		require.ErrorContains(t, cfg.Validate(), "at least 32 bytes")
	})

	t.Run("origins", func(t *testing.T) {
		cfg := base()
		cfg.AllowedOrigins = nil
		require.ErrorContains(t, cfg.Validate(), "ALLOWED_ORIGINS")

		cfg.AllowedOrigins = []string{"*"}
		require.ErrorContains(t, cfg.Validate(), "must not contain *")
	})

	t.Run("port range", func(t *testing.T) {
		cfg := base()
		cfg.Port = 70000
		require.ErrorContains(t, cfg.Validate(), "PORT")
	})
}
