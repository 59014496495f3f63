package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	BackendURL      string
	ShopDomain      string
	APIVersion      string
	AccessToken     string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration

	// RecommendationCap bounds sanitized recommendation lists served by the
	// API; zero means uncapped.
	RecommendationCap int

	// CartDebounce is the settle delay applied by cart-driven surfaces.
	CartDebounce time.Duration

	// MetricsSeed seeds the synthetic dashboard series.
	MetricsSeed int64
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:          envOrDefault("HTTP_ADDR", ":8080"),
		BackendURL:        envOrDefault("RECOMMENDATION_BACKEND_URL", "http://localhost:3000"),
		ShopDomain:        envOrDefault("SHOP_DOMAIN", ""),
		APIVersion:        envOrDefault("SHOPIFY_API_VERSION", "2025-07"),
		AccessToken:       envOrDefault("SHOPIFY_ACCESS_TOKEN", ""),
		AllowedOrigins:    envList("CORS_ALLOWED_ORIGINS"),
		ShutdownTimeout:   envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		RecommendationCap: envInt("RECOMMENDATION_CAP", 4),
		CartDebounce:      time.Duration(envInt("CART_DEBOUNCE_MS", 350)) * time.Millisecond,
		MetricsSeed:       int64(envInt("METRICS_SEED", 1)),
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

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
