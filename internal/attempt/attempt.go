// Package attempt tracks the answer state for a single run through one
// instrument. An Attempt lives only for the duration of the run: it is
// created empty, mutated once per user answer, and consumed by the scoring
// engine once every question has exactly one answer.
package attempt

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/VoidLight00/lemon-protocol/internal/catalog"
)

// Answer is one recorded response: the chosen option value plus the
// question's category, carried forward so scoring never has to re-join
// against the catalog.
type Answer struct {
	QuestionID string
	Value      int
	Category   string
}

// Attempt is the in-progress response set for one instrument run.
// It is not safe for concurrent use; each run owns its own Attempt.
type Attempt struct {
	ID         string
	Instrument catalog.Instrument
	StartedAt  time.Time

	// answers maps question id to the latest answer. Re-answering a
	// question overwrites; it never appends.
	answers map[string]Answer
}

// New creates an empty Attempt for the given instrument.
func New(in catalog.Instrument) *Attempt {
	return &Attempt{
		ID:         uuid.NewString(),
		Instrument: in,
		StartedAt:  time.Now(),
		answers:    make(map[string]Answer, len(in.Questions)),
	}
}

// RecordAnswer upserts the answer for a question. The value must be one of
// the question's declared option values; this is the boundary where answers
// are validated — the scoring engine trusts it afterwards.
func (a *Attempt) RecordAnswer(questionID string, value int) error {
	q, ok := a.Instrument.QuestionByID(questionID)
	if !ok {
		return fmt.Errorf("unknown question %q in instrument %q", questionID, a.Instrument.ID)
	}
	if !q.HasValue(value) {
		return fmt.Errorf("value %d is not an option of question %q", value, questionID)
	}
	a.answers[questionID] = Answer{
		QuestionID: questionID,
		Value:      value,
		Category:   q.Category,
	}
	return nil
}

// Answer returns the recorded answer for a question, if any. Used to
// re-render a previously chosen option when the user navigates backward.
func (a *Attempt) Answer(questionID string) (Answer, bool) {
	ans, ok := a.answers[questionID]
	return ans, ok
}

// IsComplete reports whether every question in the instrument has exactly
// one recorded answer. Only a complete attempt may be scored.
func (a *Attempt) IsComplete() bool {
	for _, q := range a.Instrument.Questions {
		if _, ok := a.answers[q.ID]; !ok {
			return false
		}
	}
	return true
}

// Answered returns the number of questions answered so far.
func (a *Attempt) Answered() int {
	return len(a.answers)
}

// Answers returns the recorded answers in instrument question order.
// Unanswered questions are skipped.
func (a *Attempt) Answers() []Answer {
	out := make([]Answer, 0, len(a.answers))
	for _, q := range a.Instrument.Questions {
		if ans, ok := a.answers[q.ID]; ok {
			out = append(out, ans)
		}
	}
	return out
}
