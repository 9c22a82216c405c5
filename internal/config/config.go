package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Provider and store driver names accepted in the environment.
const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"

	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

type Config struct {
	HTTPAddr string
	LogLevel slog.Level

	LLMProvider       string
	LLMModel          string
	LLMFallbackModels []string
	LLMTimeout        time.Duration
	GeminiAPIKey      string
	OpenRouterAPIKey  string
	OpenRouterBaseURL string

	StoreDriver string
	SQLitePath  string
}

func Load() (Config, error) {
	c := Config{
		HTTPAddr:          envOr("HTTP_ADDR", ":8080"),
		LLMProvider:       envOr("LLM_PROVIDER", ProviderGemini),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		OpenRouterAPIKey:  os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBaseURL: envOr("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		LLMFallbackModels: parseFallbackModels(os.Getenv("LLM_FALLBACK_MODELS")),
		LLMTimeout:        30 * time.Second,
		StoreDriver:       envOr("STORE_DRIVER", StoreMemory),
		SQLitePath:        envOr("SQLITE_PATH", "tarot.db"),
	}

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v, err)
		}
		c.LLMTimeout = d
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	switch c.LLMProvider {
	case ProviderGemini:
		c.LLMModel = envOr("LLM_MODEL", "gemini-2.5-flash")
		if c.GeminiAPIKey == "" {
			return Config{}, fmt.Errorf("GEMINI_API_KEY is required when LLM_PROVIDER=%s", ProviderGemini)
		}
	case ProviderOpenRouter:
		c.LLMModel = envOr("LLM_MODEL", "openai/gpt-3.5-turbo")
		if c.OpenRouterAPIKey == "" {
			return Config{}, fmt.Errorf("OPENROUTER_API_KEY is required when LLM_PROVIDER=%s", ProviderOpenRouter)
		}
	default:
		return Config{}, fmt.Errorf("invalid LLM_PROVIDER %q", c.LLMProvider)
	}

	if c.StoreDriver != StoreMemory && c.StoreDriver != StoreSQLite {
		return Config{}, fmt.Errorf("invalid STORE_DRIVER %q", c.StoreDriver)
	}

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseFallbackModels(s string) []string {
	if s == "" {
		return nil
	}
	var models []string
	for _, m := range strings.Split(s, ",") {
		m = strings.TrimSpace(m)
		if m != "" {
			models = append(models, m)
		}
	}
	return models
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
