// Package wn looks words up with the WordNet command line browser.
package wn

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/silverhammermba/bananagrams/internal/domain"
	"github.com/silverhammermba/bananagrams/internal/lexicon/wordnet"
)

// ErrBinaryNotFound is returned when the wn executable cannot be located.
var ErrBinaryNotFound = errors.New("wordnet binary not found")

// waitDelay bounds how long a killed wn may keep its output pipes open.
const waitDelay = time.Second

// Source runs `wn <word> -over` once per lookup.
type Source struct {
	binary string
	log    *slog.Logger
}

// NewSource creates a Source using binary (a name on PATH or a path).
func NewSource(logger *slog.Logger, binary string) *Source {
	if binary == "" {
		binary = "wn"
	}
	return &Source{
		binary: binary,
		log:    logger.With("component", "wn"),
	}
}

// Check verifies that the binary can be found.
func (s *Source) Check() error {
	if _, err := exec.LookPath(s.binary); err != nil {
		return fmt.Errorf("%w: %s", ErrBinaryNotFound, s.binary)
	}
	return nil
}

// Raw returns the overview text for word. wn exits with the number of
// senses it printed, so a non-zero status alone is not a failure.
func (s *Source) Raw(ctx context.Context, word string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.binary, word, "-over")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", fmt.Errorf("wn %q: %w", word, ctxErr)
	}
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrBinaryNotFound, s.binary)
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("wn %q: %w: %v", word, domain.ErrLookupFailed, err)
		}
		if stdout.Len() == 0 && stderr.Len() > 0 {
			return "", fmt.Errorf("wn %q: %w: %s", word, domain.ErrLookupFailed, strings.TrimSpace(stderr.String()))
		}
	}
	return stdout.String(), nil
}

// Candidates implements define.Source.
func (s *Source) Candidates(ctx context.Context, word string) (domain.CandidateSet, error) {
	raw, err := s.Raw(ctx, word)
	if err != nil {
		return nil, err
	}

	set, stats := wordnet.Parse(raw)
	s.log.DebugContext(ctx, "overview parsed",
		slog.String("word", word),
		slog.Int("lines", stats.TotalLines),
		slog.Int("entries", stats.Entries),
		slog.Int("skipped", stats.SkippedLines),
	)
	return set, nil
}
