package results

import (
	"context"
	"fmt"

	"github.com/VoidLight00/lemon-protocol/internal/store"
)

// Sink accepts normalized result records for storage.
type Sink interface {
	Save(ctx context.Context, rec Record) error
}

// LocalSink writes records to the SQLite-backed result store.
type LocalSink struct {
	repo store.ResultRepo
}

// NewLocalSink creates a sink over the local result store.
func NewLocalSink(repo store.ResultRepo) *LocalSink {
	return &LocalSink{repo: repo}
}

func (s *LocalSink) Save(ctx context.Context, rec Record) error {
	return s.saveWith(ctx, rec, false)
}

func (s *LocalSink) saveWith(ctx context.Context, rec Record, synced bool) error {
	row := store.ResultRecord{
		TestID:          rec.TestID,
		TestTitle:       rec.TestTitle,
		ResultType:      rec.ResultType,
		ResultTitle:     rec.ResultTitle,
		ResultEmoji:     rec.ResultEmoji,
		Tips:            rec.Tips,
		CategoryScores:  rec.CategoryScores,
		DimensionScores: rec.DimensionScores,
		MainIssue:       rec.MainIssue,
		Synced:          synced,
		CreatedAt:       rec.CreatedAt,
	}
	if rec.TotalScore != nil {
		row.TotalScore = *rec.TotalScore
		row.HasTotal = true
	}

	if err := s.repo.Save(ctx, &row); err != nil {
		return fmt.Errorf("save result locally: %w", err)
	}
	return nil
}

// FallbackSink tries the primary sink and falls back to the local store
// when the primary fails. A result is never lost: the local copy is kept
// either way, flagged by whether the primary accepted it.
type FallbackSink struct {
	primary Sink
	local   *LocalSink
}

// WithFallback composes a remote-first sink over a local safety net.
func WithFallback(primary Sink, local *LocalSink) *FallbackSink {
	return &FallbackSink{primary: primary, local: local}
}

func (s *FallbackSink) Save(ctx context.Context, rec Record) error {
	if err := s.primary.Save(ctx, rec); err != nil {
		// Remote failure is recovered locally, not surfaced to the user.
		return s.local.saveWith(ctx, rec, false)
	}
	return s.local.saveWith(ctx, rec, true)
}
