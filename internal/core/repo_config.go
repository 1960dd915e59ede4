package core

import "strings"

// RepoConfig represents the structure of an optional .reviewkit.yml
// file checked into the reviewed repository.
type RepoConfig struct {
	// Custom instructions appended to the review prompt.
	CustomInstructions []string `yaml:"custom_instructions"`

	// Skip files whose path contains one of these directory names.
	// Example: ["dist", "vendor", "docs"]
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// Skip files by extension. The leading dot is optional.
	// Example: [".md", "lock", ".log"]
	ExcludeExts []string `yaml:"exclude_exts"`
}

// DefaultRepoConfig returns a config with default values.
func DefaultRepoConfig() *RepoConfig {
	return &RepoConfig{
		CustomInstructions: []string{},
		ExcludeDirs:        []string{},
		ExcludeExts:        []string{},
	}
}

// Instructions joins the custom instructions into a single prompt
// fragment. An empty or nil config yields an empty string.
func (c *RepoConfig) Instructions() string {
	if c == nil || len(c.CustomInstructions) == 0 {
		return ""
	}
	return strings.Join(c.CustomInstructions, "\n")
}

// Excludes reports whether a changed file should be skipped entirely
// based on the exclusion lists.
func (c *RepoConfig) Excludes(path string) bool {
	if c == nil {
		return false
	}
	for _, dir := range c.ExcludeDirs {
		if dir == "" {
			continue
		}
		for _, part := range strings.Split(path, "/") {
			if part == dir {
				return true
			}
		}
	}
	for _, ext := range c.ExcludeExts {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
