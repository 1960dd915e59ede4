// Package language maps filenames to human-readable programming
// language labels for use in review prompts.
package language

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/codariq/reviewkit/internal/core"
)

// Detector resolves the programming language of a changed file from
// its filename. Implementations must be safe for concurrent use.
type Detector interface {
	Detect(filename string) (string, error)
}

// extensionLabels maps lowercase file extensions to the label the
// prompt presents to the model.
var extensionLabels = map[string]string{
	".go":     "Go",
	".py":     "Python",
	".rb":     "Ruby",
	".js":     "JavaScript",
	".jsx":    "JavaScript",
	".mjs":    "JavaScript",
	".cjs":    "JavaScript",
	".ts":     "TypeScript",
	".tsx":    "TypeScript",
	".java":   "Java",
	".kt":     "Kotlin",
	".kts":    "Kotlin",
	".scala":  "Scala",
	".rs":     "Rust",
	".c":      "C",
	".h":      "C",
	".cpp":    "C++",
	".cc":     "C++",
	".cxx":    "C++",
	".hpp":    "C++",
	".cs":     "C#",
	".swift":  "Swift",
	".php":    "PHP",
	".pl":     "Perl",
	".pm":     "Perl",
	".lua":    "Lua",
	".dart":   "Dart",
	".ex":     "Elixir",
	".exs":    "Elixir",
	".erl":    "Erlang",
	".hs":     "Haskell",
	".ml":     "OCaml",
	".clj":    "Clojure",
	".groovy": "Groovy",
	".r":      "R",
	".sh":     "Shell",
	".bash":   "Shell",
	".zsh":    "Shell",
	".ps1":    "PowerShell",
	".sql":    "SQL",
	".html":   "HTML",
	".css":    "CSS",
	".scss":   "SCSS",
	".vue":    "Vue",
	".svelte": "Svelte",
	".tf":     "Terraform",
	".proto":  "Protocol Buffers",
	".yaml":   "YAML",
	".yml":    "YAML",
	".json":   "JSON",
	".toml":   "TOML",
	".md":     "Markdown",
}

// baseLabels covers well-known filenames without a useful extension.
var baseLabels = map[string]string{
	"dockerfile": "Dockerfile",
	"makefile":   "Makefile",
	"gemfile":    "Ruby",
	"rakefile":   "Ruby",
	"go.mod":     "Go Module",
	"go.sum":     "Go Module",
}

// ExtensionDetector detects the language from the file extension, with
// a fallback table for extension-less well-known files.
type ExtensionDetector struct{}

// NewExtensionDetector returns the default filename-based detector.
func NewExtensionDetector() *ExtensionDetector {
	return &ExtensionDetector{}
}

// Detect returns the language label for filename, or
// core.ErrLanguageNotFound when neither the extension nor the base
// name is recognized.
func (d *ExtensionDetector) Detect(filename string) (string, error) {
	base := strings.ToLower(filepath.Base(filename))
	if label, ok := baseLabels[base]; ok {
		return label, nil
	}

	ext := strings.ToLower(filepath.Ext(base))
	if label, ok := extensionLabels[ext]; ok {
		return label, nil
	}

	return "", fmt.Errorf("%w: %s", core.ErrLanguageNotFound, filename)
}
