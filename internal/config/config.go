package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// ErrConfiguration is returned for missing or malformed settings
var ErrConfiguration = errors.New("invalid configuration")

// Config holds all application configuration
type Config struct {
	BotToken    string
	PollTimeout time.Duration
	Timezone    string
	MetricsAddr string
	LogLevel    string
	OpenAI      OpenAIConfig

	location *time.Location
}

// OpenAIConfig holds assistant API settings. An empty APIKey disables
// the assistant features.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		Timezone:    getEnv("BOT_TIMEZONE", "Local"),
		MetricsAddr: os.Getenv("METRICS_ADDR"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		OpenAI: OpenAIConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("%w: BOT_TOKEN is required", ErrConfiguration)
	}

	var err error
	if cfg.PollTimeout, err = getDuration("POLL_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.OpenAI.Timeout, err = getDuration("ASSISTANT_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}

	cfg.location, err = time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: BOT_TIMEZONE %q: %v", ErrConfiguration, cfg.Timezone, err)
	}

	return cfg, nil
}

// Location returns the time zone calendar days are counted in
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// AssistantEnabled reports whether an assistant credential is configured
func (c *Config) AssistantEnabled() bool {
	return c.OpenAI.APIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrConfiguration, key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", ErrConfiguration, key)
	}
	return d, nil
}
