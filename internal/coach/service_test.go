package coach

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/VoidLight00/lemon-protocol/internal/catalog"
	"github.com/VoidLight00/lemon-protocol/internal/llm"
	"github.com/VoidLight00/lemon-protocol/internal/scoring"
	"github.com/VoidLight00/lemon-protocol/internal/store"
)

// memChat is an in-memory store.ChatRepo for service tests.
type memChat struct {
	turns []store.ChatTurn
	seq   int64
}

func (m *memChat) Append(_ context.Context, turn store.ChatTurn) error {
	m.seq++
	turn.Sequence = m.seq
	m.turns = append(m.turns, turn)
	return nil
}

func (m *memChat) History(_ context.Context, sessionID string) ([]store.ChatTurn, error) {
	var out []store.ChatTurn
	for _, turn := range m.turns {
		if turn.SessionID == sessionID {
			out = append(out, turn)
		}
	}
	return out, nil
}

func (m *memChat) Sessions(_ context.Context, limit int) ([]string, error) {
	seen := make(map[string]bool)
	var ids []string
	for i := len(m.turns) - 1; i >= 0; i-- {
		sid := m.turns[i].SessionID
		if seen[sid] {
			continue
		}
		seen[sid] = true
		ids = append(ids, sid)
		if limit > 0 && len(ids) == limit {
			break
		}
	}
	return ids, nil
}

func (m *memChat) Clear(_ context.Context) (int, error) {
	n := len(m.turns)
	m.turns = nil
	return n, nil
}

func TestService_Reply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Try asking how their day actually went before raising the chores."),
	})
	chat := &memChat{}
	svc := NewService(mock, chat, DefaultConfig())

	reply, err := svc.Reply(context.Background(), "sess-1", "We keep fighting about chores")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if !strings.Contains(reply, "chores") {
		t.Errorf("unexpected reply: %q", reply)
	}

	// Both turns persisted.
	if len(chat.turns) != 2 {
		t.Fatalf("got %d persisted turns, want 2", len(chat.turns))
	}
	if chat.turns[0].Role != "user" || chat.turns[1].Role != "assistant" {
		t.Errorf("turn roles = %q,%q, want user,assistant", chat.turns[0].Role, chat.turns[1].Role)
	}
}

func TestService_ReplyIncludesHistory(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("first reply")},
		llm.MockResponse{Content: json.RawMessage("second reply")},
	)
	chat := &memChat{}
	svc := NewService(mock, chat, DefaultConfig())
	ctx := context.Background()

	if _, err := svc.Reply(ctx, "sess-1", "first message"); err != nil {
		t.Fatalf("first reply: %v", err)
	}
	if _, err := svc.Reply(ctx, "sess-1", "second message"); err != nil {
		t.Fatalf("second reply: %v", err)
	}

	// The second call must replay the prior two turns plus the new message.
	second := mock.Calls[1]
	if len(second.Messages) != 3 {
		t.Fatalf("got %d messages in second request, want 3", len(second.Messages))
	}
	if second.Messages[0].Content != "first message" {
		t.Errorf("history[0] = %q, want the first user message", second.Messages[0].Content)
	}
	if second.Messages[1].Role != llm.RoleAssistant {
		t.Errorf("history[1] role = %q, want assistant", second.Messages[1].Role)
	}
	if second.System == "" {
		t.Error("system prompt missing from request")
	}
}

func TestService_ReplyProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	chat := &memChat{}
	svc := NewService(mock, chat, DefaultConfig())

	_, err := svc.Reply(context.Background(), "sess-1", "hello")
	if err == nil {
		t.Fatal("expected error from provider")
	}
	// Failed exchanges must not pollute the stored history.
	if len(chat.turns) != 0 {
		t.Errorf("got %d persisted turns after failure, want 0", len(chat.turns))
	}
}

func validDebriefJSON() json.RawMessage {
	return json.RawMessage(`{
		"summary": "You lean anxious: closeness matters a lot and silence reads as danger.",
		"strengths": ["You notice relationship shifts early", "You invest in the relationship"],
		"growth_areas": ["Sitting with uncertainty", "Self-soothing before reaching out"],
		"suggestions": ["Wait five minutes before texting when anxious", "Use the lemon protocol before assuming the worst"]
	}`)
}

func TestService_Debrief(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validDebriefJSON()})
	svc := NewService(mock, &memChat{}, DefaultConfig())

	in, err := catalog.Default().Get("attachment-ecr")
	if err != nil {
		t.Fatalf("get instrument: %v", err)
	}
	res := &scoring.Result{
		InstrumentID: in.ID,
		Kind:         catalog.ScoringDimension,
		Type:         "anxious",
		Title:        "Anxious-Preoccupied",
		Dimensions: [2]scoring.DimensionScore{
			{Name: "anxiety", Score: 30, Level: scoring.LevelHigh},
			{Name: "avoidance", Score: 14, Level: scoring.LevelLow},
		},
	}

	debrief, err := svc.Debrief(context.Background(), in, res)
	if err != nil {
		t.Fatalf("debrief: %v", err)
	}
	if debrief.Summary == "" {
		t.Error("expected non-empty summary")
	}
	if len(debrief.Strengths) != 2 || len(debrief.Suggestions) != 2 {
		t.Errorf("got %d strengths / %d suggestions, want 2/2",
			len(debrief.Strengths), len(debrief.Suggestions))
	}
	if debrief.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be set")
	}

	// The prompt must carry the dimension scores.
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "result-debrief" {
		t.Error("debrief request missing schema")
	}
	if !strings.Contains(req.Messages[0].Content, "anxiety: 30") {
		t.Errorf("prompt missing dimension scores:\n%s", req.Messages[0].Content)
	}
}
