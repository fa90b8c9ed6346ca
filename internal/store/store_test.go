package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestResultSaveAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	rec := &ResultRecord{
		TestID:      "relationship-satisfaction",
		TestTitle:   "Relationship Satisfaction",
		ResultType:  "moderate-high",
		ResultTitle: "Moderate-High Satisfaction",
		ResultEmoji: "🙂",
		Tips:        []string{"Keep doing what's already working"},
		TotalScore:  27,
		HasTotal:    true,
	}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}
	if rec.ID == 0 {
		t.Error("expected ID to be filled in after save")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be filled in after save")
	}

	got, err := repo.List(ctx, ResultQueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
	if got[0].TestID != "relationship-satisfaction" {
		t.Errorf("test_id = %q, want relationship-satisfaction", got[0].TestID)
	}
	if !got[0].HasTotal || got[0].TotalScore != 27 {
		t.Errorf("total = %d (has=%v), want 27 (has=true)", got[0].TotalScore, got[0].HasTotal)
	}
}

func TestResultListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	types := []string{"low", "moderate-low", "high"}
	for i, rt := range types {
		err := repo.Save(ctx, &ResultRecord{
			TestID:     "relationship-satisfaction",
			ResultType: rt,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	got, err := repo.List(ctx, ResultQueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
	if got[0].ResultType != "high" {
		t.Errorf("first result = %q, want the newest (high)", got[0].ResultType)
	}
}

func TestResultListFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	saved := []*ResultRecord{
		{TestID: "love-language", ResultType: "touch"},
		{TestID: "conflict-style", ResultType: "avoiding"},
		{TestID: "love-language", ResultType: "words"},
	}
	for i, rec := range saved {
		if err := repo.Save(ctx, rec); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	got, err := repo.List(ctx, ResultQueryOpts{TestID: "love-language"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d love-language results, want 2", len(got))
	}

	got, err = repo.List(ctx, ResultQueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("list limit: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d results with limit 1, want 1", len(got))
	}
}

func TestResultMarkSynced(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	rec := &ResultRecord{TestID: "gottman-health", ResultType: "caution"}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	unsynced, err := repo.List(ctx, ResultQueryOpts{OnlyUnsync: true})
	if err != nil {
		t.Fatalf("list unsynced: %v", err)
	}
	if len(unsynced) != 1 {
		t.Fatalf("got %d unsynced, want 1", len(unsynced))
	}

	if err := repo.MarkSynced(ctx, rec.ID); err != nil {
		t.Fatalf("mark synced: %v", err)
	}

	unsynced, err = repo.List(ctx, ResultQueryOpts{OnlyUnsync: true})
	if err != nil {
		t.Fatalf("list unsynced: %v", err)
	}
	if len(unsynced) != 0 {
		t.Errorf("got %d unsynced after mark, want 0", len(unsynced))
	}
}

func TestResultClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Save(ctx, &ResultRecord{TestID: "attachment-ecr", ResultType: "secure"}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	n, err := repo.Clear(ctx)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if n != 3 {
		t.Errorf("cleared %d, want 3", n)
	}

	got, err := repo.List(ctx, ResultQueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d results after clear, want 0", len(got))
	}
}

func TestChatAppendAndHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.ChatRepo()
	ctx := context.Background()

	turns := []ChatTurn{
		{SessionID: "sess-1", Role: "user", Content: "We keep fighting about chores"},
		{SessionID: "sess-1", Role: "assistant", Content: "Tell me how the last one started"},
		{SessionID: "sess-2", Role: "user", Content: "Different conversation"},
	}
	for i, turn := range turns {
		if err := repo.Append(ctx, turn); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	hist, err := repo.History(ctx, "sess-1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist) != 2 {
		t.Fatalf("got %d turns, want 2", len(hist))
	}
	if hist[0].Role != "user" || hist[1].Role != "assistant" {
		t.Errorf("turn order = %q,%q, want user,assistant", hist[0].Role, hist[1].Role)
	}
	if hist[0].Sequence >= hist[1].Sequence {
		t.Errorf("sequences not increasing: %d then %d", hist[0].Sequence, hist[1].Sequence)
	}
}

func TestChatSessionsMostRecentFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.ChatRepo()
	ctx := context.Background()

	for _, sid := range []string{"a", "b", "a", "c"} {
		if err := repo.Append(ctx, ChatTurn{SessionID: sid, Role: "user", Content: "hi"}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	ids, err := repo.Sessions(ctx, 0)
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	want := []string{"c", "a", "b"}
	if len(ids) != len(want) {
		t.Fatalf("got %d sessions, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("sessions[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestLLMEventAppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "coach-reply", Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "result-debrief", Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "coach-reply", Success: false, ErrorMessage: "rate limited"},
	}
	for i, ev := range events {
		if err := repo.AppendLLMRequest(ctx, ev); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.ListLLMRequests(ctx, EventQueryOpts{Provider: "openai"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d openai events, want 2", len(got))
	}
	// Newest first.
	if got[0].Success {
		t.Error("expected the failed request to come back first")
	}

	got, err = repo.ListLLMRequests(ctx, EventQueryOpts{Purpose: "result-debrief"})
	if err != nil {
		t.Fatalf("list by purpose: %v", err)
	}
	if len(got) != 1 || got[0].Provider != "gemini" {
		t.Errorf("result-debrief events = %+v, want one gemini event", got)
	}
}

func TestLLMEventGetBySequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-20250514",
		Purpose:      "result-debrief",
		InputTokens:  420,
		OutputTokens: 180,
		RequestBody:  `{"messages":[]}`,
		ResponseBody: `{"summary":"..."}`,
		Success:      true,
	}
	if err := repo.AppendLLMRequest(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}

	listed, err := repo.ListLLMRequests(ctx, EventQueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("got %d events, want 1", len(listed))
	}

	got, err := repo.GetLLMRequest(ctx, listed[0].Sequence)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected event, got nil")
	}
	if got.RequestBody != data.RequestBody || got.ResponseBody != data.ResponseBody {
		t.Errorf("bodies = %q/%q, want %q/%q",
			got.RequestBody, got.ResponseBody, data.RequestBody, data.ResponseBody)
	}

	missing, err := repo.GetLLMRequest(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown sequence, got %+v", missing)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "coach-reply", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "coach-reply", InputTokens: 200, OutputTokens: 70, LatencyMs: 1200, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "result-debrief", InputTokens: 500, OutputTokens: 300, LatencyMs: 2000, Success: true},
	}
	for i, ev := range events {
		if err := repo.AppendLLMRequest(ctx, ev); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purpose rows, want 2", len(byPurpose))
	}
	var coach *LLMPurposeUsage
	for i := range byPurpose {
		if byPurpose[i].Purpose == "coach-reply" {
			coach = &byPurpose[i]
		}
	}
	if coach == nil {
		t.Fatal("missing coach-reply row")
	}
	if coach.Calls != 2 || coach.InputTokens != 300 || coach.OutputTokens != 120 {
		t.Errorf("coach-reply usage = %+v, want 2 calls, 300 in, 120 out", *coach)
	}
	if coach.AvgLatencyMs != 1000 {
		t.Errorf("coach-reply avg latency = %d, want 1000", coach.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("got %d model rows, want 2", len(byModel))
	}
	for _, mu := range byModel {
		if mu.Model == "gemini-2.0-flash" && (mu.Calls != 1 || mu.InputTokens != 500) {
			t.Errorf("gemini usage = %+v, want 1 call, 500 in", mu)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"test_results", "chat_messages", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
