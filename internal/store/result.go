package store

import (
	"context"
	"fmt"

	"github.com/VoidLight00/lemon-protocol/ent"
	"github.com/VoidLight00/lemon-protocol/ent/testresult"
)

// resultRepo implements ResultRepo using the ent client.
type resultRepo struct {
	client *ent.Client
}

func (r *resultRepo) Save(ctx context.Context, rec *ResultRecord) error {
	builder := r.client.TestResult.Create().
		SetTestID(rec.TestID).
		SetTestTitle(rec.TestTitle).
		SetResultType(rec.ResultType).
		SetResultTitle(rec.ResultTitle).
		SetResultEmoji(rec.ResultEmoji).
		SetMainIssue(rec.MainIssue).
		SetSynced(rec.Synced)

	if len(rec.Tips) > 0 {
		builder = builder.SetTips(rec.Tips)
	}
	if rec.HasTotal {
		builder = builder.SetTotalScore(rec.TotalScore)
	}
	if len(rec.CategoryScores) > 0 {
		builder = builder.SetCategoryScores(rec.CategoryScores)
	}
	if len(rec.DimensionScores) > 0 {
		builder = builder.SetDimensionScores(rec.DimensionScores)
	}
	if !rec.CreatedAt.IsZero() {
		builder = builder.SetCreatedAt(rec.CreatedAt)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	rec.ID = row.ID
	rec.CreatedAt = row.CreatedAt
	return nil
}

func (r *resultRepo) List(ctx context.Context, opts ResultQueryOpts) ([]ResultRecord, error) {
	q := r.client.TestResult.Query().
		Order(ent.Desc(testresult.FieldCreatedAt), ent.Desc(testresult.FieldID))
	if opts.TestID != "" {
		q = q.Where(testresult.TestID(opts.TestID))
	}
	if opts.OnlyUnsync {
		q = q.Where(testresult.Synced(false))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	out := make([]ResultRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, entResultToRecord(row))
	}
	return out, nil
}

func (r *resultRepo) MarkSynced(ctx context.Context, id int) error {
	err := r.client.TestResult.UpdateOneID(id).SetSynced(true).Exec(ctx)
	if err != nil {
		return fmt.Errorf("mark result %d synced: %w", id, err)
	}
	return nil
}

func (r *resultRepo) Clear(ctx context.Context) (int, error) {
	n, err := r.client.TestResult.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear results: %w", err)
	}
	return n, nil
}

func entResultToRecord(row *ent.TestResult) ResultRecord {
	rec := ResultRecord{
		ID:              row.ID,
		TestID:          row.TestID,
		TestTitle:       row.TestTitle,
		ResultType:      row.ResultType,
		ResultTitle:     row.ResultTitle,
		ResultEmoji:     row.ResultEmoji,
		Tips:            row.Tips,
		CategoryScores:  row.CategoryScores,
		DimensionScores: row.DimensionScores,
		MainIssue:       row.MainIssue,
		Synced:          row.Synced,
		CreatedAt:       row.CreatedAt,
	}
	if row.TotalScore != 0 {
		rec.TotalScore = row.TotalScore
		rec.HasTotal = true
	}
	return rec
}
