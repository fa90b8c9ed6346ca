package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// validateInstruments performs all structural checks on the given instruments.
// Returns a combined error describing every problem found, or nil if valid.
func validateInstruments(instruments []Instrument) error {
	var errs []string

	idSet := make(map[string]bool, len(instruments))
	for _, in := range instruments {
		if idSet[in.ID] {
			errs = append(errs, fmt.Sprintf("duplicate instrument ID: %q", in.ID))
		}
		idSet[in.ID] = true

		errs = append(errs, validateInstrument(in)...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func validateInstrument(in Instrument) []string {
	var errs []string
	prefix := fmt.Sprintf("instrument %q", in.ID)

	if len(in.Questions) == 0 {
		errs = append(errs, prefix+": no questions")
	}
	if len(in.ResultBands) == 0 {
		errs = append(errs, prefix+": no result bands")
	}

	qidSet := make(map[string]bool, len(in.Questions))
	for _, q := range in.Questions {
		if qidSet[q.ID] {
			errs = append(errs, fmt.Sprintf("%s: duplicate question ID %q", prefix, q.ID))
		}
		qidSet[q.ID] = true
		if len(q.Options) == 0 {
			errs = append(errs, fmt.Sprintf("%s: question %q has no options", prefix, q.ID))
		}
		valSet := make(map[int]bool, len(q.Options))
		for _, o := range q.Options {
			if valSet[o.Value] {
				errs = append(errs, fmt.Sprintf("%s: question %q has duplicate option value %d", prefix, q.ID, o.Value))
			}
			valSet[o.Value] = true
		}
	}

	switch in.ScoringType {
	case ScoringSum:
		errs = append(errs, validateRangeBands(in, prefix)...)

	case ScoringCategoryMax:
		for _, q := range in.Questions {
			if q.Category == "" {
				errs = append(errs, fmt.Sprintf("%s: question %q missing category", prefix, q.ID))
			}
		}
		if in.TotalBanded {
			// Hybrid: bands are total-score ranges, not category labels.
			errs = append(errs, validateRangeBands(in, prefix)...)
			break
		}
		bandCats := make(map[string]bool, len(in.ResultBands))
		for _, b := range in.ResultBands {
			if b.Category == "" {
				errs = append(errs, fmt.Sprintf("%s: band %q missing category discriminant", prefix, b.Type))
				continue
			}
			if bandCats[b.Category] {
				errs = append(errs, fmt.Sprintf("%s: duplicate band category %q", prefix, b.Category))
			}
			bandCats[b.Category] = true
		}
		for _, cat := range in.Categories() {
			if !bandCats[cat] {
				errs = append(errs, fmt.Sprintf("%s: question category %q has no result band", prefix, cat))
			}
		}

	case ScoringDimension:
		if in.Dimensions[0] == "" || in.Dimensions[1] == "" {
			errs = append(errs, prefix+": dimension instrument must declare two axis names")
		}
		allowed := map[string]bool{in.Dimensions[0]: true, in.Dimensions[1]: true}
		seen := make(map[string]bool)
		for _, q := range in.Questions {
			if !allowed[q.Category] {
				errs = append(errs, fmt.Sprintf("%s: question %q category %q is not a declared dimension", prefix, q.ID, q.Category))
				continue
			}
			seen[q.Category] = true
		}
		for _, dim := range in.Dimensions {
			if dim != "" && !seen[dim] {
				errs = append(errs, fmt.Sprintf("%s: dimension %q has no questions", prefix, dim))
			}
		}
		if len(in.ResultBands) != 4 {
			errs = append(errs, fmt.Sprintf("%s: dimension instrument needs exactly 4 bands, got %d", prefix, len(in.ResultBands)))
		} else {
			want := []string{QuadrantLowLow, QuadrantHighLow, QuadrantLowHigh, QuadrantHighHigh}
			got := make(map[string]bool, 4)
			for _, b := range in.ResultBands {
				got[b.Category] = true
			}
			for _, w := range want {
				if !got[w] {
					errs = append(errs, fmt.Sprintf("%s: missing quadrant band %q", prefix, w))
				}
			}
		}

	default:
		errs = append(errs, fmt.Sprintf("%s: unknown scoring type %q", prefix, in.ScoringType))
	}

	return errs
}

// validateRangeBands checks that band ranges partition the closed interval
// [MinTotal, MaxTotal] with no gaps or overlaps.
func validateRangeBands(in Instrument, prefix string) []string {
	var errs []string

	bands := make([]ResultBand, len(in.ResultBands))
	copy(bands, in.ResultBands)
	sort.SliceStable(bands, func(i, j int) bool { return bands[i].Range.Low < bands[j].Range.Low })

	lo, hi := in.MinTotal(), in.MaxTotal()
	next := lo
	for _, b := range bands {
		if b.Range.Low > b.Range.High {
			errs = append(errs, fmt.Sprintf("%s: band %q has inverted range [%d, %d]", prefix, b.Type, b.Range.Low, b.Range.High))
			continue
		}
		if b.Range.Low < next {
			errs = append(errs, fmt.Sprintf("%s: band %q overlaps previous band at %d", prefix, b.Type, b.Range.Low))
		} else if b.Range.Low > next {
			errs = append(errs, fmt.Sprintf("%s: gap in band ranges at %d", prefix, next))
		}
		if b.Range.High >= next {
			next = b.Range.High + 1
		}
	}
	if next != hi+1 {
		errs = append(errs, fmt.Sprintf("%s: band ranges cover up to %d, want %d", prefix, next-1, hi))
	}

	return errs
}
