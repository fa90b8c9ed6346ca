package catalog

import (
	"strings"
	"testing"
)

func sumFixture() Instrument {
	opts := []Option{{Value: 1, Text: "No"}, {Value: 2, Text: "Yes"}}
	return Instrument{
		ID:          "fixture-sum",
		Title:       "Fixture",
		ScoringType: ScoringSum,
		Questions: []Question{
			{ID: "q1", Text: "one", Options: opts},
			{ID: "q2", Text: "two", Options: opts},
		},
		ResultBands: []ResultBand{
			{Range: Range{Low: 2, High: 3}, Type: "low", Title: "Low"},
			{Range: Range{Low: 4, High: 4}, Type: "high", Title: "High"},
		},
	}
}

func TestValidate_SumOK(t *testing.T) {
	if err := validateInstruments([]Instrument{sumFixture()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_SumGap(t *testing.T) {
	in := sumFixture()
	in.ResultBands = []ResultBand{
		{Range: Range{Low: 2, High: 2}, Type: "low"},
		{Range: Range{Low: 4, High: 4}, Type: "high"},
	}
	err := validateInstruments([]Instrument{in})
	if err == nil {
		t.Fatal("expected error for gap at 3, got nil")
	}
	if !strings.Contains(err.Error(), "gap") {
		t.Errorf("error %q does not mention gap", err)
	}
}

func TestValidate_SumOverlap(t *testing.T) {
	in := sumFixture()
	in.ResultBands = []ResultBand{
		{Range: Range{Low: 2, High: 3}, Type: "low"},
		{Range: Range{Low: 3, High: 4}, Type: "high"},
	}
	err := validateInstruments([]Instrument{in})
	if err == nil {
		t.Fatal("expected error for overlap at 3, got nil")
	}
	if !strings.Contains(err.Error(), "overlap") {
		t.Errorf("error %q does not mention overlap", err)
	}
}

func TestValidate_SumShortCoverage(t *testing.T) {
	in := sumFixture()
	in.ResultBands = []ResultBand{
		{Range: Range{Low: 2, High: 3}, Type: "low"},
	}
	if err := validateInstruments([]Instrument{in}); err == nil {
		t.Fatal("expected error for missing top of range, got nil")
	}
}

func TestValidate_CategoryMissingBand(t *testing.T) {
	opts := []Option{{Value: 1, Text: "No"}, {Value: 2, Text: "Yes"}}
	in := Instrument{
		ID:          "fixture-cat",
		Title:       "Fixture",
		ScoringType: ScoringCategoryMax,
		Questions: []Question{
			{ID: "q1", Text: "one", Category: "a", Options: opts},
			{ID: "q2", Text: "two", Category: "b", Options: opts},
		},
		ResultBands: []ResultBand{
			{Category: "a", Type: "a"},
		},
	}
	err := validateInstruments([]Instrument{in})
	if err == nil {
		t.Fatal("expected error for category without band, got nil")
	}
	if !strings.Contains(err.Error(), `"b"`) {
		t.Errorf("error %q does not name the orphan category", err)
	}
}

func TestValidate_CategoryDuplicateBand(t *testing.T) {
	opts := []Option{{Value: 1, Text: "No"}}
	in := Instrument{
		ID:          "fixture-cat",
		Title:       "Fixture",
		ScoringType: ScoringCategoryMax,
		Questions: []Question{
			{ID: "q1", Text: "one", Category: "a", Options: opts},
		},
		ResultBands: []ResultBand{
			{Category: "a", Type: "a"},
			{Category: "a", Type: "a2"},
		},
	}
	if err := validateInstruments([]Instrument{in}); err == nil {
		t.Fatal("expected error for duplicate band category, got nil")
	}
}

func TestValidate_DimensionNeedsFourQuadrants(t *testing.T) {
	opts := []Option{{Value: 1, Text: "No"}, {Value: 7, Text: "Yes"}}
	in := Instrument{
		ID:          "fixture-dim",
		Title:       "Fixture",
		ScoringType: ScoringDimension,
		Dimensions:  [2]string{"anxiety", "avoidance"},
		Questions: []Question{
			{ID: "q1", Text: "one", Category: "anxiety", Options: opts},
			{ID: "q2", Text: "two", Category: "avoidance", Options: opts},
		},
		ResultBands: []ResultBand{
			{Category: QuadrantLowLow, Type: "secure"},
			{Category: QuadrantHighLow, Type: "anxious"},
			{Category: QuadrantLowHigh, Type: "avoidant"},
		},
	}
	if err := validateInstruments([]Instrument{in}); err == nil {
		t.Fatal("expected error for missing quadrant band, got nil")
	}

	in.ResultBands = append(in.ResultBands, ResultBand{Category: QuadrantHighHigh, Type: "fearful"})
	if err := validateInstruments([]Instrument{in}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_DimensionStrayCategory(t *testing.T) {
	opts := []Option{{Value: 1, Text: "No"}}
	in := Instrument{
		ID:          "fixture-dim",
		Title:       "Fixture",
		ScoringType: ScoringDimension,
		Dimensions:  [2]string{"anxiety", "avoidance"},
		Questions: []Question{
			{ID: "q1", Text: "one", Category: "anxiety", Options: opts},
			{ID: "q2", Text: "two", Category: "avoidance", Options: opts},
			{ID: "q3", Text: "three", Category: "attachment", Options: opts},
		},
		ResultBands: []ResultBand{
			{Category: QuadrantLowLow, Type: "secure"},
			{Category: QuadrantHighLow, Type: "anxious"},
			{Category: QuadrantLowHigh, Type: "avoidant"},
			{Category: QuadrantHighHigh, Type: "fearful"},
		},
	}
	if err := validateInstruments([]Instrument{in}); err == nil {
		t.Fatal("expected error for undeclared dimension category, got nil")
	}
}

func TestValidate_DuplicateQuestionID(t *testing.T) {
	in := sumFixture()
	in.Questions[1].ID = "q1"
	// Fix bands so only the duplicate triggers.
	in.ResultBands = []ResultBand{{Range: Range{Low: 2, High: 4}, Type: "all"}}
	if err := validateInstruments([]Instrument{in}); err == nil {
		t.Fatal("expected error for duplicate question ID, got nil")
	}
}

func TestValidate_SeedCoverage(t *testing.T) {
	// Exhaustive sweep: every achievable total of every range-banded seed
	// instrument must land in exactly one band.
	for _, in := range Default().All() {
		if in.ScoringType != ScoringSum && !in.TotalBanded {
			continue
		}
		for score := in.MinTotal(); score <= in.MaxTotal(); score++ {
			matches := 0
			for _, b := range in.ResultBands {
				if b.Range.Contains(score) {
					matches++
				}
			}
			if matches != 1 {
				t.Errorf("%s: score %d matches %d bands, want exactly 1", in.ID, score, matches)
			}
		}
	}
}
