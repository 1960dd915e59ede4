// Package config loads the application configuration from the
// environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application's configuration values.
type Config struct {
	LLMProvider  string
	ModelName    string
	GeminiAPIKey string
	OllamaHost   string
	GitHubToken  string

	// StrictSections asks the review template for machine-readable
	// section markers in the generated markdown.
	StrictSections bool

	LogLevel  string
	LogFormat string

	Retry RetryConfig
}

// RetryConfig controls the bounded retry around every model call.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Multiplier  float64
	Jitter      bool
}

// LoadConfig reads configuration from environment variables and a .env
// file, sets sensible defaults, and validates required fields. It uses
// the Viper library to handle configuration loading and precedence.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")

	v.SetDefault("LLM_PROVIDER", "ollama")
	v.SetDefault("MODEL_NAME", "gemma3:latest")
	v.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("STRICT_SECTIONS", false)
	v.SetDefault("RETRY_MAX_ATTEMPTS", 3)
	v.SetDefault("RETRY_BASE_DELAY", "2s")
	v.SetDefault("RETRY_MAX_DELAY", "30s")
	v.SetDefault("RETRY_MULTIPLIER", 2.0)
	v.SetDefault("RETRY_JITTER", true)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing .env is fine; a broken one is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !strings.Contains(err.Error(), "no such file") {
			return nil, fmt.Errorf("failed to read .env file: %w", err)
		}
	}

	provider := strings.ToLower(v.GetString("LLM_PROVIDER"))
	switch provider {
	case "ollama":
	case "gemini":
		if v.GetString("GEMINI_API_KEY") == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY must be set for the gemini provider")
		}
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}

	// Separate default for the Gemini model name so switching
	// providers does not require reconfiguring.
	modelName := v.GetString("MODEL_NAME")
	if provider == "gemini" && !v.IsSet("MODEL_NAME") {
		modelName = "gemini-2.5-flash"
	}

	cfg := &Config{
		LLMProvider:    provider,
		ModelName:      modelName,
		GeminiAPIKey:   v.GetString("GEMINI_API_KEY"),
		OllamaHost:     v.GetString("OLLAMA_HOST"),
		GitHubToken:    v.GetString("GITHUB_TOKEN"),
		StrictSections: v.GetBool("STRICT_SECTIONS"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFormat:      v.GetString("LOG_FORMAT"),
		Retry: RetryConfig{
			MaxAttempts: v.GetInt("RETRY_MAX_ATTEMPTS"),
			BaseDelay:   v.GetDuration("RETRY_BASE_DELAY"),
			MaxDelay:    v.GetDuration("RETRY_MAX_DELAY"),
			Multiplier:  v.GetFloat64("RETRY_MULTIPLIER"),
			Jitter:      v.GetBool("RETRY_JITTER"),
		},
	}

	if err := cfg.Retry.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the retry settings for values that would disable or
// break the backoff loop.
func (r RetryConfig) Validate() error {
	if r.MaxAttempts < 1 {
		return fmt.Errorf("RETRY_MAX_ATTEMPTS must be at least 1, got %d", r.MaxAttempts)
	}
	if r.BaseDelay <= 0 {
		return fmt.Errorf("RETRY_BASE_DELAY must be positive, got %s", r.BaseDelay)
	}
	if r.MaxDelay < r.BaseDelay {
		return fmt.Errorf("RETRY_MAX_DELAY (%s) must not be smaller than RETRY_BASE_DELAY (%s)", r.MaxDelay, r.BaseDelay)
	}
	if r.Multiplier < 1.0 {
		return fmt.Errorf("RETRY_MULTIPLIER must be at least 1.0, got %g", r.Multiplier)
	}
	return nil
}
