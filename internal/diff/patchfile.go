package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/gitleaks/go-gitdiff/gitdiff"

	"github.com/codariq/reviewkit/internal/core"
)

// ParsePatch reads a complete unified diff, possibly spanning many
// files, and returns one entry per changed file. This is the entry
// point for reviewing a patch file from disk; per-file patches coming
// from the GitHub API go through Splitter instead.
func ParsePatch(r io.Reader) ([]core.PullRequestFile, error) {
	parsed, err := gitdiff.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse patch: %w", err)
	}

	files := make([]core.PullRequestFile, 0)
	for f := range parsed {
		name := f.NewName
		if name == "" {
			name = f.OldName
		}

		var fragments []string
		for _, frag := range f.TextFragments {
			fragments = append(fragments, fragmentContent(frag))
		}

		files = append(files, core.PullRequestFile{
			Filename: name,
			Patch:    strings.Join(fragments, "\n"),
		})
	}

	return files, nil
}
