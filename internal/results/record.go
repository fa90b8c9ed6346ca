// Package results normalizes resolved diagnostic results into a storable
// record shape and routes records to a local or remote result store.
package results

import (
	"time"

	"github.com/VoidLight00/lemon-protocol/internal/catalog"
	"github.com/VoidLight00/lemon-protocol/internal/scoring"
)

// Record is the normalized storage shape for one result. The same shape is
// posted to the remote coaching service and written to the local store, so
// a locally retained record can be replayed to the remote unchanged.
type Record struct {
	TestID          string         `json:"test_id"`
	TestTitle       string         `json:"test_title"`
	ResultType      string         `json:"result_type"`
	ResultTitle     string         `json:"result_title"`
	ResultEmoji     string         `json:"result_emoji"`
	Tips            []string       `json:"tips,omitempty"`
	TotalScore      *int           `json:"total_score,omitempty"`
	CategoryScores  map[string]int `json:"category_scores,omitempty"`
	DimensionScores map[string]int `json:"dimension_scores,omitempty"`
	MainIssue       string         `json:"main_issue,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// Normalize converts a resolved result into its storage record. Optional
// score fields are populated per scoring kind and left nil otherwise.
func Normalize(in catalog.Instrument, res *scoring.Result) Record {
	rec := Record{
		TestID:      res.InstrumentID,
		TestTitle:   in.Title,
		ResultType:  res.Type,
		ResultTitle: res.Title,
		ResultEmoji: res.Emoji,
		Tips:        res.Tips,
		CreatedAt:   time.Now().UTC(),
	}

	switch res.Kind {
	case catalog.ScoringSum:
		total := res.Total
		rec.TotalScore = &total

	case catalog.ScoringCategoryMax:
		rec.CategoryScores = make(map[string]int, len(res.Categories))
		for _, cs := range res.Categories {
			rec.CategoryScores[cs.Category] = cs.Score
		}
		if res.TotalBanded {
			total := res.Total
			rec.TotalScore = &total
			rec.MainIssue = res.MainIssue
		}

	case catalog.ScoringDimension:
		rec.DimensionScores = make(map[string]int, len(res.Dimensions))
		for _, d := range res.Dimensions {
			rec.DimensionScores[d.Name] = d.Score
		}
	}

	return rec
}
