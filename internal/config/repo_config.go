package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/codariq/reviewkit/internal/core"
)

var (
	ErrRepoConfigNotFound = errors.New("repo config file not found")
	ErrRepoConfigParsing  = errors.New("repo config parsing failed")
)

// LoadRepoConfig loads and parses the .reviewkit.yml file from a
// repository checkout. A missing file is not fatal: defaults are
// returned alongside ErrRepoConfigNotFound so callers can log and
// continue.
func LoadRepoConfig(repoPath string) (*core.RepoConfig, error) {
	configPath := filepath.Join(repoPath, ".reviewkit.yml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return core.DefaultRepoConfig(), ErrRepoConfigNotFound
		}
		return nil, fmt.Errorf("failed to read .reviewkit.yml: %w", err)
	}

	return ParseRepoConfig(data)
}

// ParseRepoConfig parses raw .reviewkit.yml bytes, for example fetched
// from the GitHub contents API.
func ParseRepoConfig(data []byte) (*core.RepoConfig, error) {
	cfg := core.DefaultRepoConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRepoConfigParsing, err)
	}
	return cfg, nil
}
