package llm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/sevigo/goframe/llms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codariq/reviewkit/internal/config"
	"github.com/codariq/reviewkit/internal/core"
)

type fakeModel struct {
	calls     int
	failUntil int
	response  string
	err       error
}

func (m *fakeModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	m.calls++
	if m.calls <= m.failUntil {
		return "", m.err
	}
	return m.response, nil
}

func testRetryConfig() config.RetryConfig {
	return config.RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   1,
		MaxDelay:    1,
		Multiplier:  1.0,
		Jitter:      false,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInvoker_Invoke_RecoversFromTransientFailures(t *testing.T) {
	model := &fakeModel{failUntil: 2, err: errors.New("upstream 503"), response: "## Issues\nNo issues found."}
	inv := NewInvoker(model, testRetryConfig(), testLogger())

	result, err := inv.Invoke(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, core.ReviewResult{Content: "## Issues\nNo issues found."}, result)
	assert.Equal(t, 3, model.calls)
}

func TestInvoker_Invoke_ExhaustedRetriesWrapError(t *testing.T) {
	model := &fakeModel{failUntil: 100, err: errors.New("upstream down")}
	inv := NewInvoker(model, testRetryConfig(), testLogger())

	_, err := inv.Invoke(context.Background(), "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrReviewFailed)
	assert.Contains(t, err.Error(), "upstream down")
	assert.Equal(t, 3, model.calls)
}

func TestInvoker_Invoke_ContextCancellationIsNotWrapped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	model := &fakeModel{response: "never reached"}
	inv := NewInvoker(model, testRetryConfig(), testLogger())

	_, err := inv.Invoke(ctx, "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, core.ErrReviewFailed)
	assert.Equal(t, 0, model.calls)
}
