package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sevigo/goframe/llms"

	"github.com/codariq/reviewkit/internal/config"
	"github.com/codariq/reviewkit/internal/core"
	"github.com/codariq/reviewkit/internal/retry"
)

// ModelCaller is the narrow slice of a chat model the invoker needs.
// goframe's llms.Model satisfies it.
type ModelCaller interface {
	Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error)
}

// Invoker sends rendered prompts to a chat model, retrying failed
// calls with exponential backoff. Only the model call itself is
// retried; everything upstream of it fails fast.
type Invoker struct {
	model  ModelCaller
	policy retry.Policy
	logger *slog.Logger
}

// NewInvoker wraps model with the retry policy described by cfg.
func NewInvoker(model ModelCaller, cfg config.RetryConfig, logger *slog.Logger) *Invoker {
	return &Invoker{
		model: model,
		policy: retry.Policy{
			MaxAttempts: cfg.MaxAttempts,
			Delay:       retry.ExponentialDelay(cfg.BaseDelay, cfg.MaxDelay, cfg.Multiplier, cfg.Jitter),
			Logger:      logger,
		},
		logger: logger,
	}
}

// Invoke sends the prompt and returns the model's markdown response.
// After the retry budget is exhausted the last error is wrapped in
// core.ErrReviewFailed; context cancellation is passed through
// unwrapped so callers can tell the two apart.
func (i *Invoker) Invoke(ctx context.Context, prompt string) (core.ReviewResult, error) {
	var response string

	err := i.policy.Do(ctx, func(ctx context.Context) error {
		resp, callErr := i.model.Call(ctx, prompt)
		if callErr != nil {
			return callErr
		}
		response = resp
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return core.ReviewResult{}, err
		}
		return core.ReviewResult{}, fmt.Errorf("%w: %w", core.ErrReviewFailed, err)
	}

	i.logger.Debug("model call succeeded", "response_chars", len(response))
	return core.ReviewResult{Content: response}, nil
}
