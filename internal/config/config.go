package config

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultSecret is the insecure placeholder used when SECRET_KEY is unset.
const DefaultSecret = "change-me-in-production"

type Config struct {
	Port           string
	Env            string
	DataDir        string
	AudioDir       string
	JWTSecret      string
	JWTExpiry      time.Duration
	CookieSameSite http.SameSite
	CookieSecure   bool
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8000"),
		Env:            getEnv("ENV", "development"),
		DataDir:        getEnv("DATA_DIR", "DB"),
		AudioDir:       getEnv("AUDIO_DIR", "audio"),
		JWTSecret:      getEnv("SECRET_KEY", DefaultSecret),
		JWTExpiry:      time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60)) * time.Minute,
		CookieSameSite: parseSameSite(getEnv("COOKIE_SAMESITE", "lax")),
		CookieSecure:   strings.EqualFold(getEnv("COOKIE_SECURE", "false"), "true"),
	}

	if cfg.Env == "production" && cfg.JWTSecret == DefaultSecret {
		slog.Error("SECRET_KEY must be set in production environment")
		os.Exit(1)
	}
	if cfg.JWTSecret == DefaultSecret {
		slog.Warn("using default SECRET_KEY, do not run this in production")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt returns fallback when the variable is unset, malformed or not positive.
func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("ignoring invalid integer setting", "key", key, "value", v)
		return fallback
	}
	return n
}

func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
