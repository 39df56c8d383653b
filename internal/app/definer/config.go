package definer

import (
	"io"
	"time"

	"github.com/silverhammermba/bananagrams/internal/config"
)

// Config holds run settings.
type Config struct {
	CheckpointEvery int           // flush after this many recorded words; 0 flushes only at the end
	Timeout         time.Duration // per lookup attempt
	Retries         int
	OnFailure       string // config.OnFailureMark, OnFailureSkip or OnFailureAbort
	Limit           int    // 0 processes every pending word
	LogEvery        int
	Progress        io.Writer // progress bar output; nil disables the bar
}

// ConfigFrom builds the run settings from the application config.
func ConfigFrom(cfg *config.Config, progress io.Writer) Config {
	if cfg.Progress.Quiet {
		progress = nil
	}
	return Config{
		CheckpointEvery: cfg.Dictionary.CheckpointEvery,
		Timeout:         cfg.Lookup.Timeout,
		Retries:         cfg.Lookup.Retries,
		OnFailure:       cfg.Lookup.OnFailure,
		Limit:           cfg.Lookup.Limit,
		LogEvery:        cfg.Progress.LogEvery,
		Progress:        progress,
	}
}
