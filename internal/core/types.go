// Package core defines the data structures shared by the review
// pipeline: the caller-supplied pull-request file, the hunks it splits
// into, and the review the model produces.
package core

// PullRequestFile is a single changed file in a pull request, as
// delivered by the GitHub API: the path inside the repository and the
// unified-diff patch for that file. The patch may be empty for binary
// or oversized files.
type PullRequestFile struct {
	Filename string
	Patch    string
}

// DiffHunk is one contiguous change region of a file patch. Content
// holds the raw hunk text including its @@ header, exactly as it
// appeared in the patch.
type DiffHunk struct {
	Content  string
	OldStart int
	OldLines int
	NewStart int
	NewLines int
}

// ReviewResult is the model's review for one prompt. The content is
// free-form markdown; callers render or post it without interpreting
// its structure.
type ReviewResult struct {
	Content string
}

// ReviewPromptData is a type-safe struct for rendering review prompts.
type ReviewPromptData struct {
	Language           string
	Diff               string
	CustomInstructions string
	// StrictSections asks the model for machine-readable section
	// markers so downstream tooling can split the markdown.
	StrictSections bool
}
