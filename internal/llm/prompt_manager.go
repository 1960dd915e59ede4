// Package llm renders review prompts and invokes chat models with a
// bounded retry policy.
package llm

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed prompts/*.prompt
var promptFiles embed.FS

// ModelProvider selects a provider-specific template variant.
type ModelProvider string

// PromptKey names a prompt template family.
type PromptKey string

const (
	DefaultProvider ModelProvider = "default"

	// CodeReviewPrompt is the canonical review template used for both
	// whole-file and per-hunk reviews.
	CodeReviewPrompt PromptKey = "code_review"
)

// PromptManager holds the embedded prompt templates, keyed by prompt
// key and provider. Lookups fall back to the default provider when no
// provider-specific variant exists.
type PromptManager struct {
	prompts map[PromptKey]map[ModelProvider]*template.Template
}

// NewPromptManager parses every embedded prompt file. Filenames follow
// the pattern key_provider.prompt; a malformed name or template is a
// packaging bug and fails construction.
func NewPromptManager() (*PromptManager, error) {
	pm := &PromptManager{
		prompts: make(map[PromptKey]map[ModelProvider]*template.Template),
	}

	files, err := promptFiles.ReadDir("prompts")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded prompts directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		key, provider, err := splitPromptName(file.Name())
		if err != nil {
			return nil, err
		}

		content, err := promptFiles.ReadFile("prompts/" + file.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded prompt file %s: %w", file.Name(), err)
		}

		tmpl, err := template.New(file.Name()).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("could not parse prompt template %s: %w", file.Name(), err)
		}

		if _, ok := pm.prompts[key]; !ok {
			pm.prompts[key] = make(map[ModelProvider]*template.Template)
		}
		pm.prompts[key][provider] = tmpl
	}

	return pm, nil
}

// splitPromptName splits "key_provider.prompt" at the last underscore.
func splitPromptName(fileName string) (PromptKey, ModelProvider, error) {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	idx := strings.LastIndex(base, "_")
	if idx <= 0 || idx == len(base)-1 {
		return "", "", fmt.Errorf("invalid prompt filename format: %s (expected 'key_provider.prompt')", fileName)
	}
	return PromptKey(base[:idx]), ModelProvider(base[idx+1:]), nil
}

// Render fills the template for key and provider with data. Rendering
// is pure string substitution; it fails only when the key is unknown
// or template execution fails.
func (pm *PromptManager) Render(key PromptKey, provider ModelProvider, data any) (string, error) {
	taskPrompts, ok := pm.prompts[key]
	if !ok {
		return "", fmt.Errorf("no prompts found for key '%s'", key)
	}

	tmpl, ok := taskPrompts[provider]
	if !ok {
		if tmpl, ok = taskPrompts[DefaultProvider]; !ok {
			return "", fmt.Errorf("no template found for key '%s' and provider '%s', and no default was available", key, provider)
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}

	return buf.String(), nil
}
