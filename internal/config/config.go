// ABOUTME: Centralized configuration for the concierge assistant
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the assistant
type Config struct {
	// Weather settings
	WeatherAPIKey  string
	WeatherBaseURL string
	WeatherTimeout time.Duration
	DefaultCity    string

	// OpenAI settings
	OpenAIKey   string
	ChatModel   string
	MaxTokens   int
	Temperature float64
	AITimeout   time.Duration

	// Context settings
	ContextTurns int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		WeatherAPIKey:  os.Getenv("WEATHER_API_KEY"),
		WeatherBaseURL: getEnv("WEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5/weather"),
		WeatherTimeout: getEnvDuration("WEATHER_TIMEOUT", 5*time.Second),
		DefaultCity:    getEnv("CONCIERGE_DEFAULT_CITY", "London"),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		ChatModel:      getEnv("CONCIERGE_OPENAI_MODEL", "gpt-4o-mini"),
		MaxTokens:      getEnvInt("CONCIERGE_MAX_TOKENS", 150),
		Temperature:    getEnvFloat("CONCIERGE_TEMPERATURE", 0.7),
		AITimeout:      getEnvDuration("OPENAI_TIMEOUT", 10*time.Second),
		ContextTurns:   getEnvInt("CONCIERGE_CONTEXT_TURNS", 3),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("CONCIERGE_TEMPERATURE must be 0-2, got %f", c.Temperature)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("CONCIERGE_MAX_TOKENS must be positive, got %d", c.MaxTokens)
	}
	if c.ContextTurns < 0 {
		return fmt.Errorf("CONCIERGE_CONTEXT_TURNS must be non-negative, got %d", c.ContextTurns)
	}
	if c.DefaultCity == "" {
		return fmt.Errorf("CONCIERGE_DEFAULT_CITY must not be empty")
	}
	return nil
}

// HasWeather reports whether the weather credential is present
func (c *Config) HasWeather() bool {
	return c.WeatherAPIKey != ""
}

// HasAI reports whether the conversational AI credential is present
func (c *Config) HasAI() bool {
	return c.OpenAIKey != ""
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
