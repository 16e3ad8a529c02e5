// ABOUTME: Centralized configuration for the navigator backend
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the navigator.
type Config struct {
	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Retrieval settings
	ConfidenceThreshold float64
	SearchTopK          int
	VectorDimension     int

	// Conversation settings
	ResponseCacheTTL time.Duration
	HistoryLimit     int

	// Session store
	SessionDBPath string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		OpenAIKey:           os.Getenv("OPENAI_API_KEY"),
		ChatModel:           getEnv("NAVIGATOR_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel:      getEnv("NAVIGATOR_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:             getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:          getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:          getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		ConfidenceThreshold: getEnvFloat("NAVIGATOR_CONFIDENCE_THRESHOLD", 0.7),
		SearchTopK:          getEnvInt("NAVIGATOR_SEARCH_TOP_K", 3),
		VectorDimension:     getEnvInt("NAVIGATOR_VECTOR_DIMENSION", 1536),
		ResponseCacheTTL:    getEnvDuration("NAVIGATOR_CACHE_TTL", time.Hour),
		HistoryLimit:        getEnvInt("NAVIGATOR_HISTORY_LIMIT", 10),
		SessionDBPath:       os.Getenv("NAVIGATOR_SESSION_DB"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fmt.Errorf("NAVIGATOR_CONFIDENCE_THRESHOLD must be 0-1, got %f", c.ConfidenceThreshold)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.SearchTopK <= 0 {
		return fmt.Errorf("NAVIGATOR_SEARCH_TOP_K must be positive, got %d", c.SearchTopK)
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("NAVIGATOR_HISTORY_LIMIT must be positive, got %d", c.HistoryLimit)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
