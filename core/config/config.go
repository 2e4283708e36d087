package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	OTel      OTelConfig
	IntentLLM LLMConfig
	ChatLLM   LLMConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	Env       string
	Port      string
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

// LLMConfig describes one remote completion endpoint. An empty APIKey is
// not an error: it selects the deterministic local fallback instead.
type LLMConfig struct {
	APIKey    string
	BaseURL   string // OpenAI-compatible endpoint (Mistral works via base URL override)
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
}

// RedisConfig is optional. When URL is set, the rate limiter uses a shared
// redis store and accepted submissions are published to Stream for the
// downstream storage/notification consumer.
type RedisConfig struct {
	URL    string
	Stream string
}

// Load loads configuration from environment variables.
// In development it reads .env.server first, falling back to .env.
func Load() (Config, error) {
	if getEnv("OUTREACH_ENV", "development") == "development" {
		if err := godotenv.Load(".env.server"); err != nil {
			_ = godotenv.Load(".env")
		}
	}

	cfg := Config{
		Env:  getEnv("OUTREACH_ENV", "development"),
		Port: getEnv("PORT", "8080"),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "outreach"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		IntentLLM: LLMConfig{
			APIKey:    getEnv("INTENT_LLM_API_KEY", os.Getenv("MISTRAL_API_KEY")),
			BaseURL:   getEnv("INTENT_LLM_BASE_URL", "https://api.mistral.ai/v1"),
			Model:     getEnv("INTENT_LLM_MODEL", "mistral-small-latest"),
			MaxTokens: getEnvInt("INTENT_LLM_MAX_TOKENS", 200),
			Timeout:   getEnvDuration("INTENT_LLM_TIMEOUT_MS", 10*time.Second),
		},
		ChatLLM: LLMConfig{
			APIKey:    getEnv("CHAT_LLM_API_KEY", os.Getenv("OPENAI_API_KEY")),
			BaseURL:   getEnv("CHAT_LLM_BASE_URL", ""),
			Model:     getEnv("CHAT_LLM_MODEL", "gpt-4o-mini"),
			MaxTokens: getEnvInt("CHAT_LLM_MAX_TOKENS", 300),
			Timeout:   getEnvDuration("CHAT_LLM_TIMEOUT_MS", 15*time.Second),
		},
		RateLimit: RateLimitConfig{
			MaxRequests: getEnvInt("RATE_LIMIT_MAX", 5),
			Window:      getEnvDuration("RATE_LIMIT_WINDOW_MS", 60*time.Second),
		},
		Redis: RedisConfig{
			URL:    getEnv("REDIS_URL", ""),
			Stream: getEnv("REDIS_STREAM", "outreach_submissions"),
		},
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c LLMConfig) Enabled() bool {
	return c.APIKey != ""
}

func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if ms, err := strconv.Atoi(value); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return fallback
}
