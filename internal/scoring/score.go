// Package scoring turns a completed response set into a typed result.
// Scoring (computing raw score outputs) and resolution (mapping an output
// to a result band) are separate pure steps; Evaluate runs both.
package scoring

import (
	"github.com/VoidLight00/lemon-protocol/internal/attempt"
	"github.com/VoidLight00/lemon-protocol/internal/catalog"
)

// Level classifies a dimension sum relative to its derived midpoint.
type Level string

const (
	LevelLow  Level = "low"
	LevelHigh Level = "high"
)

// CategoryScore is one category's summed value. Order in a slice of
// CategoryScore is the order categories were first seen while scanning
// the instrument's questions.
type CategoryScore struct {
	Category string
	Score    int
}

// DimensionScore is one axis of a dimension instrument.
type DimensionScore struct {
	Name  string
	Score int
	Level Level
}

// Outcome is the raw output of the scoring step, before band resolution.
type Outcome struct {
	Kind        catalog.ScoringType
	TotalBanded bool

	// Total is the sum of all answer values. Set for sum instruments and
	// total-banded hybrids.
	Total int

	// Categories holds per-category sums in first-seen order. Set for
	// category-max instruments (hybrids included).
	Categories []CategoryScore

	// Winner is the dominant category, chosen with a strict greater-than
	// scan so the first-seen category keeps priority on ties.
	Winner string

	// Dimensions holds both axis sums and levels, in the instrument's
	// declared axis order. Set for dimension instruments.
	Dimensions [2]DimensionScore

	// Quadrant is the 2x2 classification label derived from the two
	// dimension levels.
	Quadrant string
}

// ScoreAttempt scores a completed attempt against its own instrument.
func ScoreAttempt(a *attempt.Attempt) (*Outcome, error) {
	return Score(a.Instrument, a.Answers())
}

// Score computes the raw outcome for a completed set of answers.
// It fails fast on incomplete sets, answers to unknown questions, and
// categories the instrument does not declare.
func Score(in catalog.Instrument, answers []attempt.Answer) (*Outcome, error) {
	byQuestion := make(map[string]attempt.Answer, len(answers))
	for _, ans := range answers {
		q, ok := in.QuestionByID(ans.QuestionID)
		if !ok {
			return nil, &ErrUnknownQuestion{InstrumentID: in.ID, QuestionID: ans.QuestionID}
		}
		if ans.Category != q.Category {
			return nil, &ErrUnknownCategory{InstrumentID: in.ID, Category: ans.Category}
		}
		byQuestion[ans.QuestionID] = ans
	}

	missing := 0
	for _, q := range in.Questions {
		if _, ok := byQuestion[q.ID]; !ok {
			missing++
		}
	}
	if missing > 0 {
		return nil, &ErrIncompleteResponses{InstrumentID: in.ID, Missing: missing}
	}

	switch in.ScoringType {
	case catalog.ScoringSum:
		return scoreSum(in, byQuestion), nil
	case catalog.ScoringCategoryMax:
		return scoreCategoryMax(in, byQuestion), nil
	case catalog.ScoringDimension:
		return scoreDimension(in, byQuestion)
	default:
		// The catalog validator rejects unknown scoring types; treat a
		// slipped-through value as a category mismatch.
		return nil, &ErrUnknownCategory{InstrumentID: in.ID, Category: string(in.ScoringType)}
	}
}

// scoreSum adds every answer value. Order-independent.
func scoreSum(in catalog.Instrument, answers map[string]attempt.Answer) *Outcome {
	total := 0
	for _, ans := range answers {
		total += ans.Value
	}
	return &Outcome{Kind: catalog.ScoringSum, Total: total}
}

// scoreCategoryMax sums answers per category and picks the winner.
// Categories are tallied in the order they first appear while scanning the
// instrument's questions, and the winner scan uses strict greater-than:
// on an exact tie, the earlier category wins. That first-seen-wins rule is
// the authoritative tie-break, not an artifact.
func scoreCategoryMax(in catalog.Instrument, answers map[string]attempt.Answer) *Outcome {
	index := make(map[string]int)
	var tally []CategoryScore
	total := 0

	for _, q := range in.Questions {
		ans := answers[q.ID]
		total += ans.Value
		i, ok := index[q.Category]
		if !ok {
			i = len(tally)
			index[q.Category] = i
			tally = append(tally, CategoryScore{Category: q.Category})
		}
		tally[i].Score += ans.Value
	}

	winner := ""
	best := 0
	for _, cs := range tally {
		if cs.Score > best {
			best = cs.Score
			winner = cs.Category
		}
	}
	if winner == "" && len(tally) > 0 {
		winner = tally[0].Category
	}

	return &Outcome{
		Kind:        catalog.ScoringCategoryMax,
		TotalBanded: in.TotalBanded,
		Total:       total,
		Categories:  tally,
		Winner:      winner,
	}
}

// scoreDimension sums the two axes independently and classifies each
// against a midpoint derived from the axis item count and scale maximum.
// A sum exactly at the midpoint is low; strictly above is high.
func scoreDimension(in catalog.Instrument, answers map[string]attempt.Answer) (*Outcome, error) {
	var dims [2]DimensionScore
	var items [2]int
	var maxVal [2]int

	axis := map[string]int{in.Dimensions[0]: 0, in.Dimensions[1]: 1}
	for i, name := range in.Dimensions {
		dims[i].Name = name
	}

	for _, q := range in.Questions {
		i, ok := axis[q.Category]
		if !ok {
			return nil, &ErrUnknownCategory{InstrumentID: in.ID, Category: q.Category}
		}
		dims[i].Score += answers[q.ID].Value
		items[i]++
		if mv := q.MaxValue(); mv > maxVal[i] {
			maxVal[i] = mv
		}
	}

	for i := range dims {
		// Midpoint is itemCount*maxValue/2; comparing doubled sums keeps
		// the boundary exact for odd products.
		dims[i].Level = LevelLow
		if 2*dims[i].Score > items[i]*maxVal[i] {
			dims[i].Level = LevelHigh
		}
	}

	return &Outcome{
		Kind:       catalog.ScoringDimension,
		Dimensions: dims,
		Quadrant:   quadrant(dims[0].Level, dims[1].Level),
	}, nil
}

// quadrant maps the two axis levels onto the 2x2 classification table.
// The table is exhaustive by construction.
func quadrant(first, second Level) string {
	switch {
	case first == LevelLow && second == LevelLow:
		return catalog.QuadrantLowLow
	case first == LevelHigh && second == LevelLow:
		return catalog.QuadrantHighLow
	case first == LevelLow && second == LevelHigh:
		return catalog.QuadrantLowHigh
	default:
		return catalog.QuadrantHighHigh
	}
}
