// Package app wires the application components together and exposes
// the two top-level review flows: a local patch file and a GitHub pull
// request.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/codariq/reviewkit/internal/config"
	"github.com/codariq/reviewkit/internal/core"
	"github.com/codariq/reviewkit/internal/diff"
	"github.com/codariq/reviewkit/internal/github"
	"github.com/codariq/reviewkit/internal/gitutil"
	"github.com/codariq/reviewkit/internal/language"
	"github.com/codariq/reviewkit/internal/llm"
	"github.com/codariq/reviewkit/internal/review"
)

// FileReview is the outcome of reviewing one changed file. A skipped
// file carries the reason instead of results.
type FileReview struct {
	Filename string
	Results  []core.ReviewResult
	Skipped  bool
	Reason   string
}

// App holds the long-lived components shared by every review run.
type App struct {
	cfg       *config.Config
	logger    *slog.Logger
	detector  language.Detector
	splitter  *diff.Splitter
	promptMgr *llm.PromptManager
	invoker   *llm.Invoker
	github    github.Client
}

// NewApp sets up the application with all its dependencies. Every
// collaborator is constructed and passed in explicitly.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	logger.Info("initializing reviewkit",
		"provider", cfg.LLMProvider,
		"model", cfg.ModelName)

	model, err := llm.NewChatModel(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptMgr, err := llm.NewPromptManager()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize prompt manager: %w", err)
	}

	return &App{
		cfg:       cfg,
		logger:    logger,
		detector:  language.NewExtensionDetector(),
		splitter:  diff.NewSplitter(logger),
		promptMgr: promptMgr,
		invoker:   llm.NewInvoker(model, cfg.Retry, logger),
		github:    github.NewPATClient(ctx, cfg.GitHubToken, logger),
	}, nil
}

func (a *App) newService(repoCfg *core.RepoConfig) review.Service {
	return review.NewService(a.detector, a.splitter, a.promptMgr, a.invoker, review.Options{
		Provider:       llm.ModelProvider(a.cfg.LLMProvider),
		StrictSections: a.cfg.StrictSections,
		RepoConfig:     repoCfg,
	}, a.logger)
}

// ReviewPatch reviews every file in a unified diff read from r. The
// repo config comes from the working directory's .reviewkit.yml when
// present.
func (a *App) ReviewPatch(ctx context.Context, r io.Reader, byHunks bool) ([]FileReview, error) {
	files, err := diff.ParsePatch(r)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("patch contains no reviewable files")
	}

	repoCfg, err := config.LoadRepoConfig(".")
	if err != nil {
		if !errors.Is(err, config.ErrRepoConfigNotFound) {
			return nil, err
		}
		a.logger.Debug("no .reviewkit.yml found, using defaults")
	}

	return a.reviewFiles(ctx, a.newService(repoCfg), repoCfg, files, byHunks)
}

// ReviewPullRequest reviews every changed file of a pull request. The
// repo config is read from .reviewkit.yml at the PR's head commit when
// present. With post set, the combined review is left as a PR comment.
func (a *App) ReviewPullRequest(ctx context.Context, ref gitutil.PullRequestRef, byHunks, post bool) ([]FileReview, error) {
	pr, err := a.github.GetPullRequest(ctx, ref.Owner, ref.Repo, ref.Number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pull request %s: %w", ref, err)
	}

	repoCfg := a.fetchRepoConfig(ctx, ref, pr.GetHead().GetSHA())

	files, err := a.github.GetChangedFiles(ctx, ref.Owner, ref.Repo, ref.Number)
	if err != nil {
		return nil, fmt.Errorf("failed to list changed files for %s: %w", ref, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("pull request %s has no changed files", ref)
	}

	a.logger.Info("reviewing pull request",
		"pr", ref.String(),
		"title", pr.GetTitle(),
		"files", len(files))

	reviews, err := a.reviewFiles(ctx, a.newService(repoCfg), repoCfg, files, byHunks)
	if err != nil {
		return nil, err
	}

	if post {
		body := FormatComment(ref, reviews)
		if err := a.github.CreateComment(ctx, ref.Owner, ref.Repo, ref.Number, body); err != nil {
			return reviews, fmt.Errorf("review completed but posting the comment failed: %w", err)
		}
		a.logger.Info("posted review comment", "pr", ref.String())
	}

	return reviews, nil
}

// fetchRepoConfig pulls .reviewkit.yml from the PR's head commit.
// A missing or unparseable file falls back to defaults; only the
// parse failure is worth a warning.
func (a *App) fetchRepoConfig(ctx context.Context, ref gitutil.PullRequestRef, headSHA string) *core.RepoConfig {
	data, err := a.github.GetFileContent(ctx, ref.Owner, ref.Repo, ".reviewkit.yml", headSHA)
	if err != nil {
		a.logger.Debug("no .reviewkit.yml in repository, using defaults", "pr", ref.String())
		return core.DefaultRepoConfig()
	}

	repoCfg, err := config.ParseRepoConfig(data)
	if err != nil {
		a.logger.Warn("ignoring malformed .reviewkit.yml", "pr", ref.String(), "error", err)
		return core.DefaultRepoConfig()
	}
	return repoCfg
}

// reviewFiles runs the review service over each file in order. Files
// the repo config excludes or whose language is unknown are skipped,
// not failed; a model failure aborts the run.
func (a *App) reviewFiles(ctx context.Context, svc review.Service, repoCfg *core.RepoConfig, files []core.PullRequestFile, byHunks bool) ([]FileReview, error) {
	reviews := make([]FileReview, 0, len(files))

	for _, file := range files {
		if repoCfg.Excludes(file.Filename) {
			a.logger.Info("skipping excluded file", "file", file.Filename)
			reviews = append(reviews, FileReview{Filename: file.Filename, Skipped: true, Reason: "excluded by .reviewkit.yml"})
			continue
		}
		if strings.TrimSpace(file.Patch) == "" {
			a.logger.Info("skipping file without a textual patch", "file", file.Filename)
			reviews = append(reviews, FileReview{Filename: file.Filename, Skipped: true, Reason: "no textual patch"})
			continue
		}

		results, err := a.reviewOne(ctx, svc, file, byHunks)
		if err != nil {
			if errors.Is(err, core.ErrLanguageNotFound) {
				a.logger.Warn("skipping file with unknown language", "file", file.Filename)
				reviews = append(reviews, FileReview{Filename: file.Filename, Skipped: true, Reason: "unknown language"})
				continue
			}
			return nil, fmt.Errorf("review of %s failed: %w", file.Filename, err)
		}

		reviews = append(reviews, FileReview{Filename: file.Filename, Results: results})
	}

	return reviews, nil
}

func (a *App) reviewOne(ctx context.Context, svc review.Service, file core.PullRequestFile, byHunks bool) ([]core.ReviewResult, error) {
	if byHunks {
		return svc.ReviewFileByHunks(ctx, file)
	}
	result, err := svc.ReviewFile(ctx, file)
	if err != nil {
		return nil, err
	}
	return []core.ReviewResult{result}, nil
}
