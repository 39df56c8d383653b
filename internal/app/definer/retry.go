package definer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/silverhammermba/bananagrams/internal/define"
	"github.com/silverhammermba/bananagrams/internal/domain"
)

// retrySource bounds every lookup attempt by a timeout and retries failed
// attempts with exponential backoff.
type retrySource struct {
	src     define.Source
	timeout time.Duration
	retries int
	backOff func() backoff.BackOff
	log     *slog.Logger
}

func newRetrySource(log *slog.Logger, src define.Source, timeout time.Duration, retries int) *retrySource {
	return &retrySource{
		src:     src,
		timeout: timeout,
		retries: retries,
		backOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff(
				backoff.WithInitialInterval(250*time.Millisecond),
				backoff.WithMaxInterval(5*time.Second),
				backoff.WithMaxElapsedTime(0),
			)
		},
		log: log,
	}
}

func (s *retrySource) Candidates(ctx context.Context, word string) (domain.CandidateSet, error) {
	op := func() (domain.CandidateSet, error) {
		attemptCtx := ctx
		if s.timeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}

		set, err := s.src.Candidates(attemptCtx, word)
		if err != nil && ctx.Err() != nil {
			return nil, backoff.Permanent(err)
		}
		return set, err
	}

	notify := func(err error, wait time.Duration) {
		s.log.WarnContext(ctx, "lookup retry",
			slog.String("word", word),
			slog.String("error", err.Error()),
			slog.Duration("wait", wait),
		)
	}

	b := backoff.WithContext(backoff.WithMaxRetries(s.backOff(), uint64(s.retries)), ctx)
	set, err := backoff.RetryNotifyWithData(op, b, notify)
	if err != nil {
		// Cancellation of the run is not a lookup failure.
		if ctx.Err() != nil || errors.Is(err, domain.ErrLookupFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrLookupFailed, word, err)
	}
	return set, nil
}
