package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRetryConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  RetryConfig
		wantErr bool
	}{
		{
			name: "Valid config",
			config: RetryConfig{
				MaxAttempts: 3,
				BaseDelay:   2 * time.Second,
				MaxDelay:    30 * time.Second,
				Multiplier:  2.0,
				Jitter:      true,
			},
			wantErr: false,
		},
		{
			name: "Zero attempts",
			config: RetryConfig{
				MaxAttempts: 0,
				BaseDelay:   time.Second,
				MaxDelay:    time.Minute,
				Multiplier:  2.0,
			},
			wantErr: true,
		},
		{
			name: "Negative base delay",
			config: RetryConfig{
				MaxAttempts: 3,
				BaseDelay:   -time.Second,
				MaxDelay:    time.Minute,
				Multiplier:  2.0,
			},
			wantErr: true,
		},
		{
			name: "Max delay below base delay",
			config: RetryConfig{
				MaxAttempts: 3,
				BaseDelay:   time.Minute,
				MaxDelay:    time.Second,
				Multiplier:  2.0,
			},
			wantErr: true,
		},
		{
			name: "Shrinking multiplier",
			config: RetryConfig{
				MaxAttempts: 3,
				BaseDelay:   time.Second,
				MaxDelay:    time.Minute,
				Multiplier:  0.5,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("RetryConfig.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadRepoConfig(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("Missing file returns defaults", func(t *testing.T) {
		cfg, err := LoadRepoConfig(tempDir)
		if !errors.Is(err, ErrRepoConfigNotFound) {
			t.Fatalf("expected ErrRepoConfigNotFound, got %v", err)
		}
		if cfg == nil || len(cfg.CustomInstructions) != 0 {
			t.Errorf("expected default config, got %+v", cfg)
		}
	})

	t.Run("Valid file", func(t *testing.T) {
		content := "custom_instructions:\n  - Focus on error handling\nexclude_exts:\n  - md\n"
		path := filepath.Join(tempDir, ".reviewkit.yml")
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
		defer os.Remove(path)

		cfg, err := LoadRepoConfig(tempDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := cfg.Instructions(); got != "Focus on error handling" {
			t.Errorf("Instructions() = %q", got)
		}
		if !cfg.Excludes("README.md") {
			t.Error("expected README.md to be excluded")
		}
		if cfg.Excludes("main.go") {
			t.Error("did not expect main.go to be excluded")
		}
	})

	t.Run("Broken YAML", func(t *testing.T) {
		path := filepath.Join(tempDir, ".reviewkit.yml")
		if err := os.WriteFile(path, []byte("custom_instructions: [unclosed"), 0600); err != nil {
			t.Fatal(err)
		}
		defer os.Remove(path)

		if _, err := LoadRepoConfig(tempDir); !errors.Is(err, ErrRepoConfigParsing) {
			t.Errorf("expected ErrRepoConfigParsing, got %v", err)
		}
	})
}
