// Package gitutil contains small helpers for working with GitHub
// identifiers.
package gitutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	prURLRegex   = regexp.MustCompile(`github\.com/([^/]+)/([^/]+)/pull/(\d+)$`)
	prShortRegex = regexp.MustCompile(`^([^/#]+)/([^/#]+)#(\d+)$`)
)

// PullRequestRef identifies a single pull request on GitHub.
type PullRequestRef struct {
	Owner  string
	Repo   string
	Number int
}

func (r PullRequestRef) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

// ParsePullRequestRef extracts the owner, repository and PR number from
// either a full GitHub URL (https://github.com/{owner}/{repo}/pull/{n},
// with or without scheme) or the short form {owner}/{repo}#{n}.
func ParsePullRequestRef(s string) (PullRequestRef, error) {
	s = strings.TrimSpace(strings.TrimSuffix(s, "/"))

	matches := prURLRegex.FindStringSubmatch(s)
	if matches == nil {
		matches = prShortRegex.FindStringSubmatch(s)
	}
	if len(matches) != 4 {
		return PullRequestRef{}, fmt.Errorf("invalid pull request reference: %s", s)
	}

	number, err := strconv.Atoi(matches[3])
	if err != nil {
		return PullRequestRef{}, fmt.Errorf("invalid PR number %q: %w", matches[3], err)
	}

	return PullRequestRef{
		Owner:  matches[1],
		Repo:   matches[2],
		Number: number,
	}, nil
}
