package definer

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silverhammermba/bananagrams/internal/domain"
)

func newTestRetrySource(src sourceFunc, timeout time.Duration) *retrySource {
	s := newRetrySource(newTestLogger(), src, timeout, 1)
	s.backOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return s
}

func TestRetrySource_FinalErrorWrapsLookupFailed(t *testing.T) {
	t.Parallel()

	plain := errors.New("connection reset")
	wrapped := fmt.Errorf("%w: wn exited 255", domain.ErrLookupFailed)

	tests := []struct {
		name    string
		src     sourceFunc
		timeout time.Duration
		cause   error
	}{
		{
			name: "plain error",
			src: func(context.Context, string) (domain.CandidateSet, error) {
				return nil, plain
			},
			cause: plain,
		},
		{
			name: "already wrapped",
			src: func(context.Context, string) (domain.CandidateSet, error) {
				return nil, wrapped
			},
			cause: wrapped,
		},
		{
			name: "attempt timeout",
			src: func(ctx context.Context, _ string) (domain.CandidateSet, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
			timeout: 10 * time.Millisecond,
			cause:   context.DeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newTestRetrySource(tt.src, tt.timeout).Candidates(context.Background(), "cat")
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrLookupFailed)
			assert.ErrorIs(t, err, tt.cause)
		})
	}
}

func TestRetrySource_AlreadyWrappedNotDoubled(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: wn exited 255", domain.ErrLookupFailed)
	src := sourceFunc(func(context.Context, string) (domain.CandidateSet, error) {
		return nil, wrapped
	})

	_, err := newTestRetrySource(src, 0).Candidates(context.Background(), "cat")
	assert.Same(t, wrapped, err)
}

func TestRetrySource_CancelledRunNotWrapped(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	src := sourceFunc(func(context.Context, string) (domain.CandidateSet, error) {
		cancel()
		return nil, context.Canceled
	})

	_, err := newTestRetrySource(src, 0).Candidates(ctx, "cat")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrLookupFailed)
}
