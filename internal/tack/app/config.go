package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/tack/pkg/jwtx"
)

const (
	envProduction = "prod"
	minSecretLen  = 32
)

type Config struct {
	Issuer             string        // Optional: iss claim on every token (default: tack)
	AccessTokenSecret  string        // Required in prod: HS256 secret for access tokens
	RefreshTokenSecret string        // Required in prod: HS256 secret for refresh tokens, must differ from the access secret
	AccessTokenTTL     time.Duration // Optional: access token lifetime (default: 24h)
	RefreshTokenTTL    time.Duration // Optional: refresh token lifetime (default: 7 days)
	RevealUnknownEmail bool          // Optional: report unknown addresses on forgot-password and send-verification (default: false)

	DatabaseFile string // Optional: path to SQLite database file (default: ./tack.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)
	RedisURL     string // Optional: redis:// URL; refresh revocations are kept in Redis when set

	SMTPHost     string // Optional: SMTP relay; emails are only logged when unset
	SMTPPort     int    // Optional: SMTP port (default: 587)
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string // Optional: From header (default: tack <no-reply@tack.local>)
	AppBaseURL   string // Optional: web client base URL used in email links (default: http://localhost:3000)

	AllowedOrigins []string // Optional: comma separated browser origins allowed by CORS (default: http://localhost:3000,http://localhost:5173)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		Issuer:             getEnvOrDefault("TACK_ISSUER", "tack"),
		AccessTokenSecret:  os.Getenv("TACK_ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: os.Getenv("TACK_REFRESH_TOKEN_SECRET"),
		AccessTokenTTL:     getEnvDurationOrDefault("TACK_ACCESS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		RefreshTokenTTL:    getEnvDurationOrDefault("TACK_REFRESH_TOKEN_TTL", jwtx.DefaultRefreshTokenTTL),
		RevealUnknownEmail: getEnvBoolOrDefault("AUTH_REVEAL_UNKNOWN_EMAIL", false),

		DatabaseFile: getEnvOrDefault("TACK_DATABASE_FILE", "tack.db"),
		PepperFile:   getEnvOrDefault("TACK_PEPPER_FILE", "pepper"),
		RedisURL:     os.Getenv("REDIS_URL"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     getEnvOrDefault("SMTP_FROM", "tack <no-reply@tack.local>"),
		AppBaseURL:   getEnvOrDefault("APP_BASE_URL", "http://localhost:3000"),

		AllowedOrigins: getEnvListOrDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

// Production reports whether ENV is prod.
func (c Config) Production() bool { return c.Env == envProduction }

// Validate rejects configurations the server cannot start with. Outside
// prod, missing token secrets are allowed and generated at startup.
func (c Config) Validate() error {
	var errs []error

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	if c.DatabaseFile == "" {
		errs = append(errs, errors.New("TACK_DATABASE_FILE must not be empty"))
	}
	if len(c.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("ALLOWED_ORIGINS must list at least one origin"))
	}
	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			errs = append(errs, errors.New("ALLOWED_ORIGINS must not contain * because credentials are allowed"))
		}
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		errs = append(errs, errors.New("token TTLs must be positive"))
	}
	if c.Production() {
		if c.AccessTokenSecret == "" {
			errs = append(errs, errors.New("TACK_ACCESS_TOKEN_SECRET is required in prod"))
		}
		if c.RefreshTokenSecret == "" {
			errs = append(errs, errors.New("TACK_REFRESH_TOKEN_SECRET is required in prod"))
		}
	}
	for name, secret := range map[string]string{
		"TACK_ACCESS_TOKEN_SECRET":  c.AccessTokenSecret,
		"TACK_REFRESH_TOKEN_SECRET": c.RefreshTokenSecret,
	} {
		if secret != "" && len(secret) < minSecretLen {
			errs = append(errs, fmt.Errorf("%s must be at least %d bytes", name, minSecretLen))
		}
	}
	if c.AccessTokenSecret != "" && c.AccessTokenSecret == c.RefreshTokenSecret {
		errs = append(errs, errors.New("access and refresh token secrets must differ"))
	}

	return errors.Join(errs...)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvListOrDefault splits a comma separated value, dropping blanks.
func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
