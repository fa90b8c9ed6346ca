package attempt

import (
	"testing"

	"github.com/VoidLight00/lemon-protocol/internal/catalog"
)

func fixtureInstrument(t *testing.T) catalog.Instrument {
	t.Helper()
	in, err := catalog.Default().Get("relationship-satisfaction")
	if err != nil {
		t.Fatalf("get instrument: %v", err)
	}
	return in
}

func TestRecordAnswer_Valid(t *testing.T) {
	a := New(fixtureInstrument(t))
	if err := a.RecordAnswer("ras-1", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ans, ok := a.Answer("ras-1")
	if !ok {
		t.Fatal("answer not recorded")
	}
	if ans.Value != 3 {
		t.Errorf("got value %d, want 3", ans.Value)
	}
}

func TestRecordAnswer_UnknownQuestion(t *testing.T) {
	a := New(fixtureInstrument(t))
	if err := a.RecordAnswer("no-such-q", 1); err == nil {
		t.Fatal("expected error for unknown question, got nil")
	}
}

func TestRecordAnswer_InvalidValue(t *testing.T) {
	a := New(fixtureInstrument(t))
	if err := a.RecordAnswer("ras-1", 9); err == nil {
		t.Fatal("expected error for out-of-scale value, got nil")
	}
	if _, ok := a.Answer("ras-1"); ok {
		t.Error("invalid answer should not be recorded")
	}
}

func TestRecordAnswer_OverwriteKeepsOne(t *testing.T) {
	a := New(fixtureInstrument(t))
	if err := a.RecordAnswer("ras-1", 2); err != nil {
		t.Fatal(err)
	}
	if err := a.RecordAnswer("ras-1", 5); err != nil {
		t.Fatal(err)
	}
	if got := a.Answered(); got != 1 {
		t.Errorf("got %d answers, want 1", got)
	}
	ans, _ := a.Answer("ras-1")
	if ans.Value != 5 {
		t.Errorf("got value %d, want latest value 5", ans.Value)
	}
}

func TestIsComplete(t *testing.T) {
	in := fixtureInstrument(t)
	a := New(in)

	if a.IsComplete() {
		t.Error("empty attempt reported complete")
	}

	// Answer all but the last question.
	for _, q := range in.Questions[:len(in.Questions)-1] {
		if err := a.RecordAnswer(q.ID, q.Options[0].Value); err != nil {
			t.Fatal(err)
		}
	}
	if a.IsComplete() {
		t.Error("attempt with one unanswered question reported complete")
	}

	last := in.Questions[len(in.Questions)-1]
	if err := a.RecordAnswer(last.ID, last.Options[0].Value); err != nil {
		t.Fatal(err)
	}
	if !a.IsComplete() {
		t.Error("fully answered attempt reported incomplete")
	}
}

func TestAnswers_InstrumentOrder(t *testing.T) {
	in := fixtureInstrument(t)
	a := New(in)

	// Record answers in reverse to prove ordering comes from the instrument.
	for i := len(in.Questions) - 1; i >= 0; i-- {
		q := in.Questions[i]
		if err := a.RecordAnswer(q.ID, q.Options[0].Value); err != nil {
			t.Fatal(err)
		}
	}

	got := a.Answers()
	if len(got) != len(in.Questions) {
		t.Fatalf("got %d answers, want %d", len(got), len(in.Questions))
	}
	for i, q := range in.Questions {
		if got[i].QuestionID != q.ID {
			t.Errorf("answers[%d] = %q, want %q", i, got[i].QuestionID, q.ID)
		}
	}
}

func TestAnswer_CarriesCategory(t *testing.T) {
	in, err := catalog.Default().Get("love-language")
	if err != nil {
		t.Fatal(err)
	}
	a := New(in)
	if err := a.RecordAnswer("ll-t1", 4); err != nil {
		t.Fatal(err)
	}
	ans, _ := a.Answer("ll-t1")
	if ans.Category != "time" {
		t.Errorf("got category %q, want %q", ans.Category, "time")
	}
}
