package scoring

import (
	"errors"
	"testing"

	"github.com/VoidLight00/lemon-protocol/internal/attempt"
	"github.com/VoidLight00/lemon-protocol/internal/catalog"
)

func mustInstrument(t *testing.T, id string) catalog.Instrument {
	t.Helper()
	in, err := catalog.Default().Get(id)
	if err != nil {
		t.Fatalf("Get(%q): %v", id, err)
	}
	return in
}

// answerAll builds a complete answer set, choosing each value with pick.
func answerAll(in catalog.Instrument, pick func(q catalog.Question) int) []attempt.Answer {
	answers := make([]attempt.Answer, 0, len(in.Questions))
	for _, q := range in.Questions {
		answers = append(answers, attempt.Answer{
			QuestionID: q.ID,
			Value:      pick(q),
			Category:   q.Category,
		})
	}
	return answers
}

// answerByCategory picks per-category values, defaulting to def elsewhere.
func answerByCategory(in catalog.Instrument, def int, perCat map[string][]int) []attempt.Answer {
	next := make(map[string]int)
	return answerAll(in, func(q catalog.Question) int {
		vals, ok := perCat[q.Category]
		if !ok {
			return def
		}
		i := next[q.Category]
		next[q.Category] = i + 1
		return vals[i]
	})
}

func TestScore_SumTotal(t *testing.T) {
	in := mustInstrument(t, "relationship-satisfaction")

	out, err := Score(in, answerAll(in, func(catalog.Question) int { return 4 }))
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if out.Kind != catalog.ScoringSum {
		t.Errorf("kind = %q, want %q", out.Kind, catalog.ScoringSum)
	}
	if out.Total != 28 {
		t.Errorf("total = %d, want 28", out.Total)
	}
}

func TestScore_SumOrderIndependent(t *testing.T) {
	in := mustInstrument(t, "relationship-satisfaction")
	answers := answerAll(in, func(q catalog.Question) int {
		if q.Reverse {
			return 2
		}
		return 5
	})

	forward, err := Score(in, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	reversed := make([]attempt.Answer, len(answers))
	for i, a := range answers {
		reversed[len(answers)-1-i] = a
	}
	backward, err := Score(in, reversed)
	if err != nil {
		t.Fatalf("Score reversed: %v", err)
	}

	if forward.Total != backward.Total {
		t.Errorf("total depends on answer order: %d vs %d", forward.Total, backward.Total)
	}
}

func TestScore_Incomplete(t *testing.T) {
	in := mustInstrument(t, "relationship-satisfaction")
	answers := answerAll(in, func(catalog.Question) int { return 3 })

	_, err := Score(in, answers[:len(answers)-2])
	var incomplete *ErrIncompleteResponses
	if !errors.As(err, &incomplete) {
		t.Fatalf("err = %v, want ErrIncompleteResponses", err)
	}
	if incomplete.Missing != 2 {
		t.Errorf("missing = %d, want 2", incomplete.Missing)
	}
}

func TestScore_UnknownQuestion(t *testing.T) {
	in := mustInstrument(t, "relationship-satisfaction")
	answers := answerAll(in, func(catalog.Question) int { return 3 })
	answers[0].QuestionID = "bogus"

	_, err := Score(in, answers)
	var unknown *ErrUnknownQuestion
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want ErrUnknownQuestion", err)
	}
	if unknown.QuestionID != "bogus" {
		t.Errorf("question = %q, want %q", unknown.QuestionID, "bogus")
	}
}

func TestScore_CategoryMismatch(t *testing.T) {
	in := mustInstrument(t, "love-language")
	answers := answerAll(in, func(catalog.Question) int { return 3 })
	answers[0].Category = "stale"

	_, err := Score(in, answers)
	var unknown *ErrUnknownCategory
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want ErrUnknownCategory", err)
	}
}

func TestScore_CategoryMaxTally(t *testing.T) {
	in := mustInstrument(t, "love-language")
	out, err := Score(in, answerByCategory(in, 2, map[string][]int{
		"touch": {5, 5, 5},
	}))
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	if out.Winner != "touch" {
		t.Errorf("winner = %q, want %q", out.Winner, "touch")
	}
	wantOrder := []string{"words", "time", "gifts", "service", "touch"}
	if len(out.Categories) != len(wantOrder) {
		t.Fatalf("got %d categories, want %d", len(out.Categories), len(wantOrder))
	}
	for i, cs := range out.Categories {
		if cs.Category != wantOrder[i] {
			t.Errorf("categories[%d] = %q, want %q", i, cs.Category, wantOrder[i])
		}
	}
	if out.Categories[4].Score != 15 {
		t.Errorf("touch score = %d, want 15", out.Categories[4].Score)
	}
	if out.Categories[0].Score != 6 {
		t.Errorf("words score = %d, want 6", out.Categories[0].Score)
	}
}

func TestScore_CategoryMaxTieBreak(t *testing.T) {
	// words and touch tie at 15; words appears first in the instrument
	// and must win the strict greater-than scan.
	in := mustInstrument(t, "love-language")
	out, err := Score(in, answerByCategory(in, 1, map[string][]int{
		"words": {5, 5, 5},
		"touch": {5, 5, 5},
	}))
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if out.Winner != "words" {
		t.Errorf("winner = %q, want %q (first-seen tie-break)", out.Winner, "words")
	}
}

func TestScore_DimensionMidpoint(t *testing.T) {
	// Six 7-point items per axis put the midpoint at 21: a sum of exactly
	// 21 stays low, 22 flips high.
	in := mustInstrument(t, "attachment-ecr")

	tests := []struct {
		name      string
		anxiety   []int
		avoidance []int
		wantLv    [2]Level
		wantQuad  string
	}{
		{
			name:      "both at midpoint",
			anxiety:   []int{4, 4, 4, 3, 3, 3}, // 21
			avoidance: []int{4, 4, 4, 3, 3, 3}, // 21
			wantLv:    [2]Level{LevelLow, LevelLow},
			wantQuad:  catalog.QuadrantLowLow,
		},
		{
			name:      "anxiety one above midpoint",
			anxiety:   []int{4, 4, 4, 4, 3, 3}, // 22
			avoidance: []int{4, 4, 4, 3, 3, 3}, // 21
			wantLv:    [2]Level{LevelHigh, LevelLow},
			wantQuad:  catalog.QuadrantHighLow,
		},
		{
			name:      "avoidance high only",
			anxiety:   []int{1, 1, 1, 1, 1, 1}, // 6
			avoidance: []int{7, 7, 7, 7, 7, 7}, // 42
			wantLv:    [2]Level{LevelLow, LevelHigh},
			wantQuad:  catalog.QuadrantLowHigh,
		},
		{
			name:      "both high",
			anxiety:   []int{7, 7, 7, 7, 7, 7},
			avoidance: []int{4, 4, 4, 4, 3, 3}, // 22
			wantLv:    [2]Level{LevelHigh, LevelHigh},
			wantQuad:  catalog.QuadrantHighHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Score(in, answerByCategory(in, 0, map[string][]int{
				"anxiety":   tt.anxiety,
				"avoidance": tt.avoidance,
			}))
			if err != nil {
				t.Fatalf("Score: %v", err)
			}
			for i := range out.Dimensions {
				if out.Dimensions[i].Level != tt.wantLv[i] {
					t.Errorf("%s level = %q, want %q",
						out.Dimensions[i].Name, out.Dimensions[i].Level, tt.wantLv[i])
				}
			}
			if out.Quadrant != tt.wantQuad {
				t.Errorf("quadrant = %q, want %q", out.Quadrant, tt.wantQuad)
			}
		})
	}
}

func TestScore_DimensionAxisOrder(t *testing.T) {
	in := mustInstrument(t, "attachment-ecr")
	out, err := Score(in, answerAll(in, func(catalog.Question) int { return 1 }))
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if out.Dimensions[0].Name != "anxiety" || out.Dimensions[1].Name != "avoidance" {
		t.Errorf("axis order = %q/%q, want anxiety/avoidance",
			out.Dimensions[0].Name, out.Dimensions[1].Name)
	}
}

func TestScore_TotalBandedHybrid(t *testing.T) {
	in := mustInstrument(t, "gottman-health")
	out, err := Score(in, answerByCategory(in, 0, map[string][]int{
		"criticism":     {5, 5, 5}, // 15
		"contempt":      {2, 2, 2}, // 6
		"defensiveness": {2, 2, 3}, // 7
		"stonewalling":  {2, 2, 3}, // 7
	}))
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	if !out.TotalBanded {
		t.Error("TotalBanded = false, want true")
	}
	if out.Total != 35 {
		t.Errorf("total = %d, want 35", out.Total)
	}
	if out.Winner != "criticism" {
		t.Errorf("winner = %q, want %q", out.Winner, "criticism")
	}
}

func TestScoreAttempt(t *testing.T) {
	in := mustInstrument(t, "relationship-satisfaction")
	a := attempt.New(in)
	for _, q := range in.Questions {
		if err := a.RecordAnswer(q.ID, 3); err != nil {
			t.Fatalf("RecordAnswer(%q): %v", q.ID, err)
		}
	}

	out, err := ScoreAttempt(a)
	if err != nil {
		t.Fatalf("ScoreAttempt: %v", err)
	}
	if out.Total != 21 {
		t.Errorf("total = %d, want 21", out.Total)
	}
}
