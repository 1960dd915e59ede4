// Package github provides a focused client for the pull request
// operations the reviewer needs.
package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"

	"github.com/codariq/reviewkit/internal/core"
)

// Client defines the GitHub operations used by the review flow.
type Client interface {
	// GetPullRequest retrieves a pull request's metadata.
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*github.PullRequest, error)

	// GetChangedFiles lists every file modified in a pull request,
	// with its patch. Files without textual patches (binaries, very
	// large files) come back with an empty patch.
	GetChangedFiles(ctx context.Context, owner, repo string, number int) ([]core.PullRequestFile, error)

	// GetFileContent fetches the raw content of a file at a ref.
	GetFileContent(ctx context.Context, owner, repo, path, ref string) ([]byte, error)

	// CreateComment posts a general comment on a pull request.
	CreateComment(ctx context.Context, owner, repo string, number int, body string) error
}

type gitHubClient struct {
	client *github.Client
	logger *slog.Logger
}

// NewClient wraps the official go-github client behind the narrow
// interface the review flow uses.
func NewClient(client *github.Client, logger *slog.Logger) Client {
	return &gitHubClient{client: client, logger: logger}
}

// NewPATClient builds a client authenticated with a personal access
// token. An empty token yields an unauthenticated client, which works
// for public repositories under GitHub's anonymous rate limits.
func NewPATClient(ctx context.Context, token string, logger *slog.Logger) Client {
	if token == "" {
		return &gitHubClient{client: github.NewClient(nil), logger: logger}
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	return &gitHubClient{client: github.NewClient(tc), logger: logger}
}

func (g *gitHubClient) GetPullRequest(ctx context.Context, owner, repo string, number int) (*github.PullRequest, error) {
	pr, _, err := g.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		g.logger.Error("failed to get pull request", "owner", owner, "repo", repo, "pr", number, "error", err)
		return nil, err
	}
	return pr, nil
}

// GetChangedFiles pages through the list endpoint; GitHub returns at
// most 100 files per page.
func (g *gitHubClient) GetChangedFiles(ctx context.Context, owner, repo string, number int) ([]core.PullRequestFile, error) {
	var allFiles []core.PullRequestFile
	opts := &github.ListOptions{PerPage: 100}

	for {
		files, resp, err := g.client.PullRequests.ListFiles(ctx, owner, repo, number, opts)
		if err != nil {
			g.logger.Error("failed to list files for pull request", "owner", owner, "repo", repo, "pr", number, "error", err)
			return nil, err
		}

		for _, file := range files {
			allFiles = append(allFiles, core.PullRequestFile{
				Filename: file.GetFilename(),
				Patch:    file.GetPatch(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allFiles, nil
}

func (g *gitHubClient) GetFileContent(ctx context.Context, owner, repo, path, ref string) ([]byte, error) {
	content, _, resp, err := g.client.Repositories.GetContents(ctx, owner, repo, path, &github.RepositoryContentGetOptions{Ref: ref})
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return nil, fmt.Errorf("file %s not found at ref %s: %w", path, ref, err)
		}
		g.logger.Error("failed to get file content", "owner", owner, "repo", repo, "path", path, "ref", ref, "error", err)
		return nil, err
	}
	if content == nil {
		return nil, fmt.Errorf("path %s at ref %s is not a file", path, ref)
	}

	decoded, err := content.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode content of %s: %w", path, err)
	}
	return []byte(decoded), nil
}

func (g *gitHubClient) CreateComment(ctx context.Context, owner, repo string, number int, body string) error {
	comment := &github.IssueComment{Body: &body}
	_, _, err := g.client.Issues.CreateComment(ctx, owner, repo, number, comment)
	if err != nil {
		g.logger.Error("failed to create comment", "owner", owner, "repo", repo, "pr", number, "error", err)
	}
	return err
}
