package scoring

import (
	"errors"
	"testing"

	"github.com/VoidLight00/lemon-protocol/internal/catalog"
)

func TestResolve_SumBoundaries(t *testing.T) {
	in := mustInstrument(t, "relationship-satisfaction")

	tests := []struct {
		total    int
		wantType string
	}{
		{7, "low"},
		{15, "low"},
		{16, "moderate-low"},
		{22, "moderate-low"},
		{23, "moderate-high"},
		{28, "moderate-high"},
		{29, "high"},
		{35, "high"},
	}

	for _, tt := range tests {
		res, err := Resolve(in, &Outcome{Kind: catalog.ScoringSum, Total: tt.total})
		if err != nil {
			t.Errorf("Resolve(total=%d): %v", tt.total, err)
			continue
		}
		if res.Type != tt.wantType {
			t.Errorf("Resolve(total=%d) type = %q, want %q", tt.total, res.Type, tt.wantType)
		}
	}
}

func TestResolve_SumOutOfRange(t *testing.T) {
	in := mustInstrument(t, "relationship-satisfaction")

	_, err := Resolve(in, &Outcome{Kind: catalog.ScoringSum, Total: 99})
	var noBand *ErrNoBandMatched
	if !errors.As(err, &noBand) {
		t.Fatalf("err = %v, want ErrNoBandMatched", err)
	}
}

func TestResolve_CategoryWinner(t *testing.T) {
	in := mustInstrument(t, "love-language")

	res, err := Resolve(in, &Outcome{Kind: catalog.ScoringCategoryMax, Winner: "gifts"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Type != "gifts" {
		t.Errorf("type = %q, want %q", res.Type, "gifts")
	}
	if res.Title == "" || res.Description == "" || len(res.Tips) == 0 {
		t.Error("band presentation fields not copied")
	}
}

func TestResolve_Quadrant(t *testing.T) {
	in := mustInstrument(t, "attachment-ecr")

	tests := []struct {
		quadrant string
		wantType string
	}{
		{catalog.QuadrantLowLow, "secure"},
		{catalog.QuadrantHighLow, "anxious"},
		{catalog.QuadrantLowHigh, "avoidant"},
		{catalog.QuadrantHighHigh, "fearful"},
	}

	for _, tt := range tests {
		res, err := Resolve(in, &Outcome{Kind: catalog.ScoringDimension, Quadrant: tt.quadrant})
		if err != nil {
			t.Errorf("Resolve(%q): %v", tt.quadrant, err)
			continue
		}
		if res.Type != tt.wantType {
			t.Errorf("Resolve(%q) type = %q, want %q", tt.quadrant, res.Type, tt.wantType)
		}
	}
}

func TestResolve_HybridUsesTotal(t *testing.T) {
	// A dominant category never picks the band on the hybrid: the band
	// comes from the total, the winner only names the main issue.
	in := mustInstrument(t, "gottman-health")

	res, err := Resolve(in, &Outcome{
		Kind:        catalog.ScoringCategoryMax,
		TotalBanded: true,
		Total:       35,
		Winner:      "criticism",
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Type != "caution" {
		t.Errorf("type = %q, want %q", res.Type, "caution")
	}
	if res.MainIssue != "criticism" {
		t.Errorf("main issue = %q, want %q", res.MainIssue, "criticism")
	}
}

func TestEvaluate_EndToEnd(t *testing.T) {
	in := mustInstrument(t, "gottman-health")
	res, err := Evaluate(in, answerByCategory(in, 0, map[string][]int{
		"criticism":     {5, 5, 5},
		"contempt":      {2, 2, 2},
		"defensiveness": {2, 2, 3},
		"stonewalling":  {2, 2, 3},
	}))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if res.InstrumentID != "gottman-health" {
		t.Errorf("instrument = %q, want %q", res.InstrumentID, "gottman-health")
	}
	if res.Total != 35 || res.Type != "caution" || res.MainIssue != "criticism" {
		t.Errorf("got total=%d type=%q mainIssue=%q, want 35/caution/criticism",
			res.Total, res.Type, res.MainIssue)
	}
	if len(res.Categories) != 4 {
		t.Errorf("got %d category scores, want 4", len(res.Categories))
	}
}
