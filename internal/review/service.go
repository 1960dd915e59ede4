// Package review orchestrates the review pipeline: language
// detection, prompt rendering, and model invocation — for a whole
// file patch or hunk by hunk.
package review

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/codariq/reviewkit/internal/core"
	"github.com/codariq/reviewkit/internal/language"
	"github.com/codariq/reviewkit/internal/llm"
)

// Splitter parses a file's patch into ordered hunks.
type Splitter interface {
	Split(file core.PullRequestFile) ([]core.DiffHunk, error)
}

// Invoker sends a rendered prompt to the model with retry.
type Invoker interface {
	Invoke(ctx context.Context, prompt string) (core.ReviewResult, error)
}

// Renderer fills a prompt template. *llm.PromptManager satisfies it.
type Renderer interface {
	Render(key llm.PromptKey, provider llm.ModelProvider, data any) (string, error)
}

// Service reviews pull-request files with an LLM.
type Service interface {
	// ReviewFile reviews the file's whole patch in a single model
	// call.
	ReviewFile(ctx context.Context, file core.PullRequestFile) (core.ReviewResult, error)

	// ReviewFileByHunks reviews every hunk of the file independently
	// and returns one result per hunk, in patch order. A patch with no
	// hunks yields an empty slice without calling the model.
	ReviewFileByHunks(ctx context.Context, file core.PullRequestFile) ([]core.ReviewResult, error)
}

// Options tunes prompt rendering for a Service.
type Options struct {
	// Provider selects a provider-specific template variant; the
	// default template is used when no variant exists.
	Provider llm.ModelProvider

	// StrictSections asks the template for machine-readable section
	// markers.
	StrictSections bool

	// RepoConfig carries optional per-repository review settings.
	RepoConfig *core.RepoConfig
}

type service struct {
	detector language.Detector
	splitter Splitter
	renderer Renderer
	invoker  Invoker
	opts     Options
	logger   *slog.Logger
}

// NewService wires the review pipeline together. All collaborators are
// passed explicitly; there is no ambient registry.
func NewService(detector language.Detector, splitter Splitter, renderer Renderer, invoker Invoker, opts Options, logger *slog.Logger) Service {
	if detector == nil {
		panic("detector cannot be nil")
	}
	if splitter == nil {
		panic("splitter cannot be nil")
	}
	if renderer == nil {
		panic("renderer cannot be nil")
	}
	if invoker == nil {
		panic("invoker cannot be nil")
	}
	if opts.Provider == "" {
		opts.Provider = llm.DefaultProvider
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		detector: detector,
		splitter: splitter,
		renderer: renderer,
		invoker:  invoker,
		opts:     opts,
		logger:   logger,
	}
}

func (s *service) ReviewFile(ctx context.Context, file core.PullRequestFile) (core.ReviewResult, error) {
	lang, err := s.detector.Detect(file.Filename)
	if err != nil {
		return core.ReviewResult{}, err
	}

	prompt, err := s.renderPrompt(lang, file.Patch)
	if err != nil {
		return core.ReviewResult{}, err
	}

	s.logger.Info("reviewing file", "file", file.Filename, "language", lang)
	return s.invoker.Invoke(ctx, prompt)
}

func (s *service) ReviewFileByHunks(ctx context.Context, file core.PullRequestFile) ([]core.ReviewResult, error) {
	var (
		lang  string
		hunks []core.DiffHunk
	)

	// Language detection and patch splitting are independent; run
	// them together and wait for both before any model call.
	var g errgroup.Group
	g.Go(func() error {
		detected, err := s.detector.Detect(file.Filename)
		if err != nil {
			return err
		}
		lang = detected
		return nil
	})
	g.Go(func() error {
		split, err := s.splitter.Split(file)
		if err != nil {
			return err
		}
		hunks = split
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]core.ReviewResult, len(hunks))
	if len(hunks) == 0 {
		s.logger.Info("patch has no hunks to review", "file", file.Filename)
		return results, nil
	}

	s.logger.Info("reviewing file by hunks", "file", file.Filename, "language", lang, "hunks", len(hunks))

	// One independent invocation per hunk. The indexed result slice
	// keeps output order aligned with patch order no matter which
	// call finishes first, and any failed hunk fails the whole batch.
	hg, hctx := errgroup.WithContext(ctx)
	for i, hunk := range hunks {
		hg.Go(func() error {
			prompt, err := s.renderPrompt(lang, hunk.Content)
			if err != nil {
				return err
			}
			result, err := s.invoker.Invoke(hctx, prompt)
			if err != nil {
				return fmt.Errorf("hunk %d: %w", i+1, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := hg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (s *service) renderPrompt(lang, diff string) (string, error) {
	data := core.ReviewPromptData{
		Language:           lang,
		Diff:               diff,
		CustomInstructions: s.opts.RepoConfig.Instructions(),
		StrictSections:     s.opts.StrictSections,
	}
	prompt, err := s.renderer.Render(llm.CodeReviewPrompt, s.opts.Provider, data)
	if err != nil {
		return "", fmt.Errorf("could not render review prompt: %w", err)
	}
	return prompt, nil
}
