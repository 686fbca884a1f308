package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr         string
	ShutdownTimeout  time.Duration
	CORSOrigins      []string
	GeminiEndpoint   string
	GeminiModel      string
	GeminiTimeout    time.Duration
	ChatGreeting     bool
	CatalogFile      string
	DeliveryFeeCents int64
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:         envOrDefault("HTTP_ADDR", ":8080"),
		ShutdownTimeout:  envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		CORSOrigins:      envList("CORS_ORIGINS"),
		GeminiEndpoint:   envOrDefault("GEMINI_ENDPOINT", ""),
		GeminiModel:      envOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiTimeout:    envDuration("GEMINI_TIMEOUT_SECONDS", 30*time.Second),
		ChatGreeting:     envBool("CHAT_GREETING", true),
		CatalogFile:      envOrDefault("CATALOG_FILE", ""),
		DeliveryFeeCents: envInt64("DELIVERY_FEE_CENTS", 599),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err == nil {
			return parsed
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return parsed
		}
	}
	return def
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
