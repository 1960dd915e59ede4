// Package diff splits unified-diff patches into per-hunk fragments
// using the go-gitdiff parser.
package diff

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gitleaks/go-gitdiff/gitdiff"

	"github.com/codariq/reviewkit/internal/core"
)

// Splitter parses a single file's patch into ordered hunks.
type Splitter struct {
	logger *slog.Logger
}

// NewSplitter returns a Splitter that logs skipped or malformed
// patches through the given logger.
func NewSplitter(logger *slog.Logger) *Splitter {
	return &Splitter{logger: logger}
}

// Split parses the file's patch and returns its hunks in patch order.
// GitHub delivers per-file patches without the ---/+++ file header, so
// one is synthesized before parsing. Empty, binary, or malformed
// patches yield an empty slice, never an error: a file the splitter
// cannot chunk simply has nothing to review hunk-by-hunk.
func (s *Splitter) Split(file core.PullRequestFile) ([]core.DiffHunk, error) {
	hunks := make([]core.DiffHunk, 0)

	patch := strings.TrimSpace(file.Patch)
	if patch == "" {
		return hunks, nil
	}

	parsedFiles, err := gitdiff.Parse(strings.NewReader(withFileHeader(file.Filename, file.Patch)))
	if err != nil {
		s.logger.Warn("skipping unparseable patch", "file", file.Filename, "error", err)
		return hunks, nil
	}
	var files []*gitdiff.File
	for f := range parsedFiles {
		files = append(files, f)
	}
	if len(files) == 0 {
		s.logger.Debug("patch contained no files", "file", file.Filename)
		return hunks, nil
	}

	// The patch belongs to exactly one file; anything after the first
	// parsed file would be caller error, not something to review.
	parsed := files[0]
	if len(files) > 1 {
		s.logger.Warn("patch parsed to multiple files, using the first", "file", file.Filename, "parsed", len(files))
	}

	for _, frag := range parsed.TextFragments {
		hunks = append(hunks, core.DiffHunk{
			Content:  fragmentContent(frag),
			OldStart: int(frag.OldPosition),
			OldLines: int(frag.OldLines),
			NewStart: int(frag.NewPosition),
			NewLines: int(frag.NewLines),
		})
	}

	return hunks, nil
}

// withFileHeader prepends a git-style file header when the patch
// starts directly at a hunk, which is how the GitHub API serves
// per-file patches.
func withFileHeader(filename, patch string) string {
	trimmed := strings.TrimLeft(patch, "\n")
	if !strings.HasPrefix(trimmed, "@@") {
		return patch
	}
	var b strings.Builder
	fmt.Fprintf(&b, "diff --git a/%s b/%s\n", filename, filename)
	fmt.Fprintf(&b, "--- a/%s\n", filename)
	fmt.Fprintf(&b, "+++ b/%s\n", filename)
	b.WriteString(trimmed)
	if !strings.HasSuffix(trimmed, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

// fragmentContent rebuilds the raw hunk text, header included, the way
// it appeared in the original patch.
func fragmentContent(frag *gitdiff.TextFragment) string {
	var b strings.Builder
	b.WriteString(frag.Header())
	b.WriteString("\n")
	for _, line := range frag.Lines {
		b.WriteString(line.String())
	}
	return strings.TrimRight(b.String(), "\n")
}
