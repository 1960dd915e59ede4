package core

import "errors"

var (
	// ErrLanguageNotFound means the filename matched no known
	// programming language. It is never retried.
	ErrLanguageNotFound = errors.New("no language mapping found for file")

	// ErrReviewFailed means the model call failed after the retry
	// budget was exhausted.
	ErrReviewFailed = errors.New("review failed after retries")
)
