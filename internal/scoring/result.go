package scoring

import (
	"strconv"

	"github.com/VoidLight00/lemon-protocol/internal/attempt"
	"github.com/VoidLight00/lemon-protocol/internal/catalog"
)

// Result is the fully resolved outcome of an instrument attempt: the raw
// scores plus the matched result band's presentation fields. Which score
// fields are meaningful depends on Kind (and TotalBanded for the hybrid);
// consumers should switch on those rather than zero-checking.
type Result struct {
	InstrumentID string
	Kind         catalog.ScoringType
	TotalBanded  bool

	// Band presentation, copied from the matched catalog band.
	Type        string
	Title       string
	Emoji       string
	Description string
	Tips        []string

	// Raw scores, per scoring kind.
	Total      int
	Categories []CategoryScore
	MainIssue  string
	Dimensions [2]DimensionScore
	Quadrant   string
}

// Resolve maps a raw outcome onto one of the instrument's result bands.
//
// Sum instruments and total-banded hybrids resolve by scanning bands until
// one range contains the total; category-max instruments match the winning
// category; dimension instruments match the quadrant label. A well-formed
// catalog instrument always matches exactly one band.
func Resolve(in catalog.Instrument, out *Outcome) (*Result, error) {
	res := &Result{
		InstrumentID: in.ID,
		Kind:         out.Kind,
		TotalBanded:  out.TotalBanded,
		Total:        out.Total,
		Categories:   out.Categories,
		Dimensions:   out.Dimensions,
		Quadrant:     out.Quadrant,
	}
	if out.TotalBanded {
		res.MainIssue = out.Winner
	}

	band, err := matchBand(in, out)
	if err != nil {
		return nil, err
	}

	res.Type = band.Type
	res.Title = band.Title
	res.Emoji = band.Emoji
	res.Description = band.Description
	res.Tips = band.Tips
	return res, nil
}

func matchBand(in catalog.Instrument, out *Outcome) (catalog.ResultBand, error) {
	switch {
	case out.Kind == catalog.ScoringSum || out.TotalBanded:
		for _, b := range in.ResultBands {
			if b.Range.Contains(out.Total) {
				return b, nil
			}
		}
		return catalog.ResultBand{}, &ErrNoBandMatched{
			InstrumentID: in.ID,
			Discriminant: "total " + strconv.Itoa(out.Total),
		}

	case out.Kind == catalog.ScoringCategoryMax:
		for _, b := range in.ResultBands {
			if b.Category == out.Winner {
				return b, nil
			}
		}
		return catalog.ResultBand{}, &ErrNoBandMatched{
			InstrumentID: in.ID,
			Discriminant: "category " + out.Winner,
		}

	default: // dimension
		for _, b := range in.ResultBands {
			if b.Category == out.Quadrant {
				return b, nil
			}
		}
		return catalog.ResultBand{}, &ErrNoBandMatched{
			InstrumentID: in.ID,
			Discriminant: "quadrant " + out.Quadrant,
		}
	}
}

// Evaluate scores a completed answer set and resolves it in one call.
func Evaluate(in catalog.Instrument, answers []attempt.Answer) (*Result, error) {
	out, err := Score(in, answers)
	if err != nil {
		return nil, err
	}
	return Resolve(in, out)
}
