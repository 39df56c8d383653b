package wn

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silverhammermba/bananagrams/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fakeBinary(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake wn is a shell script")
	}
	path, err := filepath.Abs(filepath.Join("testdata", "fake-wn.sh"))
	require.NoError(t, err)
	return path
}

func TestSource_Check(t *testing.T) {
	t.Parallel()

	src := NewSource(newTestLogger(), fakeBinary(t))
	assert.NoError(t, src.Check())

	missing := NewSource(newTestLogger(), "definitely-not-wordnet-binary")
	err := missing.Check()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBinaryNotFound)
}

func TestSource_Candidates_NonZeroExitWithOutput(t *testing.T) {
	t.Parallel()

	src := NewSource(newTestLogger(), fakeBinary(t))
	set, err := src.Candidates(context.Background(), "cat")
	require.NoError(t, err)

	require.Len(t, set, 1)
	assert.Equal(t, "noun", set[0].Category)
	require.Len(t, set[0].Senses, 2)
	assert.Equal(t, []string{"cat", "true cat"}, set[0].Senses[0].Synonyms)
	assert.Equal(t, []string{
		"feline mammal usually having thick soft fur and no ability to roar: domestic cats",
		"wildcats",
	}, set[0].Senses[0].Clauses)
}

func TestSource_Candidates_NoEntry(t *testing.T) {
	t.Parallel()

	src := NewSource(newTestLogger(), fakeBinary(t))
	set, err := src.Candidates(context.Background(), "xyzzy")
	require.NoError(t, err)
	assert.True(t, set.Empty())
}

func TestSource_Raw_Stderr(t *testing.T) {
	t.Parallel()

	src := NewSource(newTestLogger(), fakeBinary(t))
	_, err := src.Raw(context.Background(), "broken")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLookupFailed)
	assert.Contains(t, err.Error(), "cannot open database")
}

func TestSource_Raw_MissingBinary(t *testing.T) {
	t.Parallel()

	src := NewSource(newTestLogger(), "definitely-not-wordnet-binary")
	_, err := src.Raw(context.Background(), "cat")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBinaryNotFound)
}

func TestSource_Raw_Timeout(t *testing.T) {
	t.Parallel()

	src := NewSource(newTestLogger(), fakeBinary(t))
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := src.Raw(ctx, "sleepy")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
