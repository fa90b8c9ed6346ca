package catalog

import (
	"errors"
	"testing"
)

func TestGet_Exists(t *testing.T) {
	in, err := Default().Get("relationship-satisfaction")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Title != "Relationship Satisfaction (RAS)" {
		t.Errorf("got title %q, want %q", in.Title, "Relationship Satisfaction (RAS)")
	}
	if in.ScoringType != ScoringSum {
		t.Errorf("got scoring type %q, want %q", in.ScoringType, ScoringSum)
	}
	if len(in.Questions) != 7 {
		t.Errorf("got %d questions, want 7", len(in.Questions))
	}
}

func TestGet_NotFound(t *testing.T) {
	_, err := Default().Get("no-such-test")
	if err == nil {
		t.Fatal("expected error for unknown instrument, got nil")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error %v does not wrap ErrNotFound", err)
	}
}

func TestAll_Count(t *testing.T) {
	all := Default().All()
	if len(all) != 5 {
		t.Errorf("got %d instruments, want 5", len(all))
	}
}

func TestSeedShapes(t *testing.T) {
	tests := []struct {
		id          string
		scoringType ScoringType
		questions   int
		bands       int
	}{
		{"attachment-ecr", ScoringDimension, 12, 4},
		{"love-language", ScoringCategoryMax, 15, 5},
		{"relationship-satisfaction", ScoringSum, 7, 4},
		{"conflict-style", ScoringCategoryMax, 10, 5},
		{"gottman-health", ScoringCategoryMax, 12, 4},
	}
	for _, tt := range tests {
		in, err := Default().Get(tt.id)
		if err != nil {
			t.Fatalf("Get(%q): %v", tt.id, err)
		}
		if in.ScoringType != tt.scoringType {
			t.Errorf("%s: got scoring type %q, want %q", tt.id, in.ScoringType, tt.scoringType)
		}
		if len(in.Questions) != tt.questions {
			t.Errorf("%s: got %d questions, want %d", tt.id, len(in.Questions), tt.questions)
		}
		if len(in.ResultBands) != tt.bands {
			t.Errorf("%s: got %d bands, want %d", tt.id, len(in.ResultBands), tt.bands)
		}
	}
}

func TestGottmanIsTotalBanded(t *testing.T) {
	in, err := Default().Get("gottman-health")
	if err != nil {
		t.Fatal(err)
	}
	if !in.TotalBanded {
		t.Error("gottman-health should be total-banded")
	}
	if got := in.Categories(); len(got) != 4 {
		t.Errorf("got %d categories, want 4", len(got))
	}
}

func TestReverseItemsArePreInverted(t *testing.T) {
	in, err := Default().Get("relationship-satisfaction")
	if err != nil {
		t.Fatal(err)
	}
	for _, qid := range []string{"ras-4", "ras-7"} {
		q, ok := in.QuestionByID(qid)
		if !ok {
			t.Fatalf("question %q missing", qid)
		}
		if !q.Reverse {
			t.Errorf("%s: Reverse flag not set", qid)
		}
		// First option on a reversed item carries the highest value.
		if q.Options[0].Value != 5 {
			t.Errorf("%s: first option value = %d, want 5", qid, q.Options[0].Value)
		}
	}
}

func TestCategories_FirstSeenOrder(t *testing.T) {
	in, err := Default().Get("love-language")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"words", "time", "gifts", "service", "touch"}
	got := in.Categories()
	if len(got) != len(want) {
		t.Fatalf("got %d categories, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTotalRange(t *testing.T) {
	tests := []struct {
		id       string
		minTotal int
		maxTotal int
	}{
		{"relationship-satisfaction", 7, 35},
		{"gottman-health", 12, 60},
		{"attachment-ecr", 12, 84},
	}
	for _, tt := range tests {
		in, err := Default().Get(tt.id)
		if err != nil {
			t.Fatal(err)
		}
		if got := in.MinTotal(); got != tt.minTotal {
			t.Errorf("%s: MinTotal() = %d, want %d", tt.id, got, tt.minTotal)
		}
		if got := in.MaxTotal(); got != tt.maxTotal {
			t.Errorf("%s: MaxTotal() = %d, want %d", tt.id, got, tt.maxTotal)
		}
	}
}
