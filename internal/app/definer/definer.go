package definer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v2"

	"github.com/silverhammermba/bananagrams/internal/config"
	"github.com/silverhammermba/bananagrams/internal/define"
	"github.com/silverhammermba/bananagrams/pkg/ctxutil"
)

// ErrAborted is returned when a lookup failure stops the run under the
// abort policy.
var ErrAborted = errors.New("run aborted")

// Result holds the outcome of one run.
type Result struct {
	RunID       uuid.UUID
	Pending     int // words selected for this run
	Processed   int
	Defined     int
	NotFound    int
	Failed      int // lookups that failed after all retries
	Skipped     int // failures left unresolved by the skip policy
	Checkpoints int
	Cancelled   bool
	Duration    time.Duration
}

// Definer resolves every pending word of a store and records the winners.
type Definer struct {
	log      *slog.Logger
	store    Store
	resolver *define.Resolver
	retry    *retrySource
	cfg      Config
	runID    uuid.UUID
}

// New creates a Definer. Lookups through src are retried and bounded by
// cfg.Timeout.
func New(log *slog.Logger, store Store, src define.Source, policy define.Policy, cfg Config) *Definer {
	runID := uuid.New()
	log = log.With("component", "definer", "run_id", runID.String())
	retry := newRetrySource(log, src, cfg.Timeout, cfg.Retries)
	return &Definer{
		log:      log,
		store:    store,
		resolver: define.NewResolver(log, retry, policy),
		retry:    retry,
		cfg:      cfg,
		runID:    runID,
	}
}

// RunID returns the identifier attached to this run's logs and records.
func (d *Definer) RunID() uuid.UUID {
	return d.runID
}

// Run processes the pending words in store order, one at a time. On
// cancellation it stops before the next word. The store is always flushed
// before returning, also when the run is cancelled or aborted.
func (d *Definer) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	ctx = ctxutil.WithRunID(ctx, d.runID)
	res := Result{RunID: d.runID}

	words, err := d.store.PendingWords(ctx)
	if err != nil {
		return res, fmt.Errorf("pending words: %w", err)
	}
	if d.cfg.Limit > 0 && len(words) > d.cfg.Limit {
		words = words[:d.cfg.Limit]
	}
	res.Pending = len(words)

	d.log.InfoContext(ctx, "run started",
		slog.Int("pending", len(words)),
		slog.String("on_failure", d.cfg.OnFailure),
		slog.Int("retries", d.cfg.Retries),
	)

	bar := d.newBar(len(words))
	runErr := d.process(ctx, words, bar, &res)
	if bar != nil {
		_ = bar.Finish()
	}

	// The final flush must happen even when ctx is already cancelled.
	finalCtx := context.WithoutCancel(ctx)
	if err := d.store.Flush(finalCtx); err != nil {
		return res, errors.Join(runErr, fmt.Errorf("flush: %w", err))
	}

	res.Duration = time.Since(start)
	d.logSummary(finalCtx, res)
	return res, runErr
}

func (d *Definer) process(ctx context.Context, words []string, bar *progressbar.ProgressBar, res *Result) error {
	dirty := 0
	for _, word := range words {
		if ctx.Err() != nil {
			res.Cancelled = true
			return nil
		}

		r := d.resolver.Resolve(ctx, word)
		if r.LookupErr != nil && ctx.Err() != nil {
			// Interrupted mid-lookup; the word stays pending.
			res.Cancelled = true
			return nil
		}
		res.Processed++

		record := true
		switch {
		case r.LookupErr != nil:
			res.Failed++
			d.log.WarnContext(ctx, "lookup failed",
				slog.String("word", word),
				slog.String("policy", d.cfg.OnFailure),
				slog.String("error", r.LookupErr.Error()),
			)
			switch d.cfg.OnFailure {
			case config.OnFailureSkip:
				record = false
				res.Skipped++
			case config.OnFailureAbort:
				return fmt.Errorf("%w: lookup %q: %w", ErrAborted, word, r.LookupErr)
			default:
				res.NotFound++
			}
		case r.Found():
			res.Defined++
		default:
			res.NotFound++
		}

		if record {
			if err := d.store.SetDefinition(ctx, word, r.Definition); err != nil {
				return fmt.Errorf("record %q: %w", word, err)
			}
			dirty++
		}
		if bar != nil {
			_ = bar.Add(1)
		}

		if d.cfg.LogEvery > 0 && res.Processed%d.cfg.LogEvery == 0 {
			d.log.InfoContext(ctx, "progress",
				slog.Int("processed", res.Processed),
				slog.Int("pending", res.Pending),
				slog.Int("defined", res.Defined),
				slog.Int("not_found", res.NotFound),
			)
		}

		if d.cfg.CheckpointEvery > 0 && dirty >= d.cfg.CheckpointEvery {
			if err := d.store.Flush(ctx); err != nil {
				return fmt.Errorf("checkpoint: %w", err)
			}
			dirty = 0
			res.Checkpoints++
			d.log.DebugContext(ctx, "checkpoint", slog.Int("processed", res.Processed))
		}
	}
	return nil
}

func (d *Definer) newBar(n int) *progressbar.ProgressBar {
	if d.cfg.Progress == nil || n == 0 {
		return nil
	}
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(d.cfg.Progress),
		progressbar.OptionSetDescription("defining"),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func (d *Definer) logSummary(ctx context.Context, res Result) {
	attrs := []any{
		slog.Int("processed", res.Processed),
		slog.Int("defined", res.Defined),
		slog.Int("not_found", res.NotFound),
		slog.Int("failed", res.Failed),
		slog.Int("skipped", res.Skipped),
		slog.Int("checkpoints", res.Checkpoints),
		slog.Duration("duration", res.Duration),
	}
	if counts, err := d.store.Counts(ctx); err == nil {
		attrs = append(attrs,
			slog.Int("total_resolved", counts.Resolved),
			slog.Int("total_not_found", counts.NotFound),
			slog.Int("total_unresolved", counts.Unresolved),
		)
	}

	if res.Cancelled {
		d.log.WarnContext(ctx, "run interrupted", attrs...)
		return
	}
	d.log.InfoContext(ctx, "run completed", attrs...)
}
