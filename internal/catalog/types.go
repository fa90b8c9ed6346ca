package catalog

// ScoringType selects the algorithm used to score an instrument.
type ScoringType string

const (
	// ScoringSum adds every answer value into a single total.
	ScoringSum ScoringType = "sum"
	// ScoringCategoryMax sums answers per category; the highest category wins.
	ScoringCategoryMax ScoringType = "category-max"
	// ScoringDimension sums two dimensions independently and classifies
	// each as low/high, selecting one of four quadrant bands.
	ScoringDimension ScoringType = "dimension"
)

// Quadrant labels for dimension instruments. The first axis level comes
// first: "high-low" means axis one high, axis two low.
const (
	QuadrantLowLow   = "low-low"
	QuadrantHighLow  = "high-low"
	QuadrantLowHigh  = "low-high"
	QuadrantHighHigh = "high-high"
)

// Option is one selectable Likert response with its score value.
type Option struct {
	Value int
	Text  string
}

// Question is a single item in an instrument.
//
// Reverse marks an item whose option table is pre-inverted relative to the
// scale's natural direction. It is informational: reversal is encoded in the
// Options values themselves, never applied at scoring time.
type Question struct {
	ID       string
	Text     string
	Category string
	Reverse  bool
	Options  []Option
}

// MaxValue returns the highest option value for the question.
func (q Question) MaxValue() int {
	max := 0
	for _, o := range q.Options {
		if o.Value > max {
			max = o.Value
		}
	}
	return max
}

// MinValue returns the lowest option value for the question.
func (q Question) MinValue() int {
	if len(q.Options) == 0 {
		return 0
	}
	min := q.Options[0].Value
	for _, o := range q.Options[1:] {
		if o.Value < min {
			min = o.Value
		}
	}
	return min
}

// HasValue reports whether v is one of the question's option values.
func (q Question) HasValue(v int) bool {
	for _, o := range q.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

// Range is a closed integer interval. Both bounds are inclusive.
type Range struct {
	Low  int
	High int
}

// Contains reports whether v lies inside the range, bounds included.
func (r Range) Contains(v int) bool {
	return v >= r.Low && v <= r.High
}

// ResultBand is one qualitative outcome an instrument can produce.
//
// The discriminant depends on the instrument's scoring type: sum instruments
// (and total-banded category instruments) match Score against the band Range;
// category-max instruments match the winning category against Category;
// dimension instruments match the computed quadrant label against Category.
type ResultBand struct {
	Range       Range
	Category    string
	Type        string
	Title       string
	Emoji       string
	Description string
	Tips        []string
}

// Instrument is a named diagnostic test: its questions, scoring algorithm,
// and the bands its results resolve to.
//
// TotalBanded marks the category-max hybrid (the Gottman four-horsemen
// screen): category sums are still computed and the dominant category
// reported, but the displayed band is resolved by total score against
// sum-style ranges.
//
// Dimensions names the two axes of a dimension instrument in axis order;
// it is empty for other scoring types.
type Instrument struct {
	ID          string
	Title       string
	Description string
	Emoji       string
	Source      string
	ScoringType ScoringType
	TotalBanded bool
	Dimensions  [2]string
	Questions   []Question
	ResultBands []ResultBand
}

// QuestionByID returns the question with the given id.
func (in Instrument) QuestionByID(id string) (Question, bool) {
	for _, q := range in.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// MinTotal returns the lowest achievable total score.
func (in Instrument) MinTotal() int {
	total := 0
	for _, q := range in.Questions {
		total += q.MinValue()
	}
	return total
}

// MaxTotal returns the highest achievable total score.
func (in Instrument) MaxTotal() int {
	total := 0
	for _, q := range in.Questions {
		total += q.MaxValue()
	}
	return total
}

// Categories returns the distinct question categories in first-seen order.
func (in Instrument) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range in.Questions {
		if q.Category == "" || seen[q.Category] {
			continue
		}
		seen[q.Category] = true
		out = append(out, q.Category)
	}
	return out
}
