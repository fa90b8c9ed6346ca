package results

import (
	"context"
	"fmt"

	"github.com/VoidLight00/lemon-protocol/internal/store"
)

// Resync pushes locally retained records that never reached the remote
// store and marks each delivered row as synced. It stops at the first
// remote failure so the remaining rows stay queued for the next attempt.
// Returns the number of records delivered.
func Resync(ctx context.Context, repo store.ResultRepo, remote Sink) (int, error) {
	rows, err := repo.List(ctx, store.ResultQueryOpts{OnlyUnsync: true})
	if err != nil {
		return 0, fmt.Errorf("list unsynced results: %w", err)
	}

	delivered := 0
	for _, row := range rows {
		if err := remote.Save(ctx, recordFromRow(row)); err != nil {
			return delivered, err
		}
		if err := repo.MarkSynced(ctx, row.ID); err != nil {
			return delivered, fmt.Errorf("mark result %d synced: %w", row.ID, err)
		}
		delivered++
	}
	return delivered, nil
}

// recordFromRow rebuilds the wire record from a stored row.
func recordFromRow(row store.ResultRecord) Record {
	rec := Record{
		TestID:          row.TestID,
		TestTitle:       row.TestTitle,
		ResultType:      row.ResultType,
		ResultTitle:     row.ResultTitle,
		ResultEmoji:     row.ResultEmoji,
		Tips:            row.Tips,
		CategoryScores:  row.CategoryScores,
		DimensionScores: row.DimensionScores,
		MainIssue:       row.MainIssue,
		CreatedAt:       row.CreatedAt,
	}
	if row.HasTotal {
		total := row.TotalScore
		rec.TotalScore = &total
	}
	return rec
}
