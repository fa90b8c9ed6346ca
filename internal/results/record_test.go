package results

import (
	"testing"

	"github.com/VoidLight00/lemon-protocol/internal/catalog"
	"github.com/VoidLight00/lemon-protocol/internal/scoring"
)

func mustInstrument(t *testing.T, id string) catalog.Instrument {
	t.Helper()
	in, err := catalog.Default().Get(id)
	if err != nil {
		t.Fatalf("Get(%q): %v", id, err)
	}
	return in
}

func TestNormalize_Sum(t *testing.T) {
	in := mustInstrument(t, "relationship-satisfaction")
	rec := Normalize(in, &scoring.Result{
		InstrumentID: in.ID,
		Kind:         catalog.ScoringSum,
		Type:         "high",
		Title:        "High Satisfaction",
		Emoji:        "😊",
		Total:        31,
	})

	if rec.TestID != "relationship-satisfaction" || rec.TestTitle != in.Title {
		t.Errorf("test identity = %q/%q, want instrument id and title", rec.TestID, rec.TestTitle)
	}
	if rec.TotalScore == nil || *rec.TotalScore != 31 {
		t.Errorf("total_score = %v, want 31", rec.TotalScore)
	}
	if rec.CategoryScores != nil || rec.DimensionScores != nil {
		t.Error("sum record must not carry category or dimension scores")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
}

func TestNormalize_CategoryMax(t *testing.T) {
	in := mustInstrument(t, "love-language")
	rec := Normalize(in, &scoring.Result{
		InstrumentID: in.ID,
		Kind:         catalog.ScoringCategoryMax,
		Type:         "touch",
		Categories: []scoring.CategoryScore{
			{Category: "words", Score: 6},
			{Category: "touch", Score: 15},
		},
	})

	if rec.TotalScore != nil {
		t.Error("plain category record must not carry total_score")
	}
	if rec.CategoryScores["touch"] != 15 || rec.CategoryScores["words"] != 6 {
		t.Errorf("category_scores = %v", rec.CategoryScores)
	}
	if rec.MainIssue != "" {
		t.Errorf("main_issue = %q, want empty for non-hybrid", rec.MainIssue)
	}
}

func TestNormalize_Hybrid(t *testing.T) {
	in := mustInstrument(t, "gottman-health")
	rec := Normalize(in, &scoring.Result{
		InstrumentID: in.ID,
		Kind:         catalog.ScoringCategoryMax,
		TotalBanded:  true,
		Type:         "caution",
		Total:        35,
		MainIssue:    "criticism",
		Categories: []scoring.CategoryScore{
			{Category: "criticism", Score: 15},
			{Category: "contempt", Score: 6},
			{Category: "defensiveness", Score: 7},
			{Category: "stonewalling", Score: 7},
		},
	})

	if rec.TotalScore == nil || *rec.TotalScore != 35 {
		t.Errorf("total_score = %v, want 35", rec.TotalScore)
	}
	if rec.MainIssue != "criticism" {
		t.Errorf("main_issue = %q, want criticism", rec.MainIssue)
	}
	if len(rec.CategoryScores) != 4 {
		t.Errorf("category_scores = %v, want all four sub-scales", rec.CategoryScores)
	}
}

func TestNormalize_Dimension(t *testing.T) {
	in := mustInstrument(t, "attachment-ecr")
	rec := Normalize(in, &scoring.Result{
		InstrumentID: in.ID,
		Kind:         catalog.ScoringDimension,
		Type:         "anxious",
		Dimensions: [2]scoring.DimensionScore{
			{Name: "anxiety", Score: 30, Level: scoring.LevelHigh},
			{Name: "avoidance", Score: 14, Level: scoring.LevelLow},
		},
	})

	if rec.DimensionScores["anxiety"] != 30 || rec.DimensionScores["avoidance"] != 14 {
		t.Errorf("dimension_scores = %v, want anxiety 30 / avoidance 14", rec.DimensionScores)
	}
	if rec.TotalScore != nil || rec.CategoryScores != nil {
		t.Error("dimension record must not carry total or category scores")
	}
}
