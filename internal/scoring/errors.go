package scoring

import "fmt"

// ErrIncompleteResponses indicates scoring was attempted before every
// question had an answer. Correct flows gate on Attempt.IsComplete, so
// seeing this error means a UI or programmer bug; the engine fails loudly
// rather than zero-filling.
type ErrIncompleteResponses struct {
	InstrumentID string
	Missing      int
}

func (e *ErrIncompleteResponses) Error() string {
	return fmt.Sprintf("instrument %q: %d question(s) unanswered", e.InstrumentID, e.Missing)
}

// ErrUnknownQuestion indicates a response references a question that does
// not exist in the instrument, e.g. an attempt built against a stale
// catalog version. Fatal for the attempt.
type ErrUnknownQuestion struct {
	InstrumentID string
	QuestionID   string
}

func (e *ErrUnknownQuestion) Error() string {
	return fmt.Sprintf("instrument %q: unknown question %q", e.InstrumentID, e.QuestionID)
}

// ErrUnknownCategory indicates a response carries a category the
// instrument does not declare. Fatal for the attempt.
type ErrUnknownCategory struct {
	InstrumentID string
	Category     string
}

func (e *ErrUnknownCategory) Error() string {
	return fmt.Sprintf("instrument %q: unknown category %q", e.InstrumentID, e.Category)
}

// ErrNoBandMatched indicates the resolver found no result band for a
// computed score or category. The catalog validator makes this unreachable
// for well-formed instruments, but the resolver still reports it instead of
// asserting it away.
type ErrNoBandMatched struct {
	InstrumentID string
	Discriminant string
}

func (e *ErrNoBandMatched) Error() string {
	return fmt.Sprintf("instrument %q: no result band matches %s", e.InstrumentID, e.Discriminant)
}
