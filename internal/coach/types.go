package coach

import "time"

// Debrief is an LLM-generated walkthrough of one diagnostic result.
type Debrief struct {
	Summary     string
	Strengths   []string
	GrowthAreas []string
	Suggestions []string
	GeneratedAt time.Time
}
