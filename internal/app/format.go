package app

import (
	"fmt"
	"strings"

	"github.com/codariq/reviewkit/internal/gitutil"
)

// FormatComment renders the collected file reviews as a single
// markdown document suitable for a PR comment or terminal output.
func FormatComment(ref gitutil.PullRequestRef, reviews []FileReview) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Automated review for %s\n\n", ref)

	var skipped []FileReview
	for _, r := range reviews {
		if r.Skipped {
			skipped = append(skipped, r)
			continue
		}
		fmt.Fprintf(&b, "### `%s`\n\n", r.Filename)
		for i, result := range r.Results {
			if len(r.Results) > 1 {
				fmt.Fprintf(&b, "#### Hunk %d of %d\n\n", i+1, len(r.Results))
			}
			b.WriteString(strings.TrimSpace(result.Content))
			b.WriteString("\n\n")
		}
	}

	if len(skipped) > 0 {
		b.WriteString("<details>\n<summary>Skipped files</summary>\n\n")
		for _, r := range skipped {
			fmt.Fprintf(&b, "- `%s` (%s)\n", r.Filename, r.Reason)
		}
		b.WriteString("\n</details>\n")
	}

	return strings.TrimSpace(b.String()) + "\n"
}
