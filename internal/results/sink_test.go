package results

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VoidLight00/lemon-protocol/internal/store"
)

// memRepo is an in-memory store.ResultRepo for sink tests.
type memRepo struct {
	rows   []store.ResultRecord
	nextID int
}

func (m *memRepo) Save(_ context.Context, rec *store.ResultRecord) error {
	m.nextID++
	rec.ID = m.nextID
	m.rows = append(m.rows, *rec)
	return nil
}

func (m *memRepo) List(_ context.Context, opts store.ResultQueryOpts) ([]store.ResultRecord, error) {
	var out []store.ResultRecord
	for _, row := range m.rows {
		if opts.TestID != "" && row.TestID != opts.TestID {
			continue
		}
		if opts.OnlyUnsync && row.Synced {
			continue
		}
		out = append(out, row)
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

func (m *memRepo) MarkSynced(_ context.Context, id int) error {
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows[i].Synced = true
			return nil
		}
	}
	return errors.New("not found")
}

func (m *memRepo) Clear(_ context.Context) (int, error) {
	n := len(m.rows)
	m.rows = nil
	return n, nil
}

func sampleRecord() Record {
	total := 27
	return Record{
		TestID:      "relationship-satisfaction",
		TestTitle:   "Relationship Satisfaction",
		ResultType:  "moderate-high",
		ResultTitle: "Moderate-High Satisfaction",
		TotalScore:  &total,
	}
}

func TestLocalSink_Save(t *testing.T) {
	repo := &memRepo{}
	sink := NewLocalSink(repo)

	if err := sink.Save(context.Background(), sampleRecord()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(repo.rows))
	}
	row := repo.rows[0]
	if !row.HasTotal || row.TotalScore != 27 {
		t.Errorf("total = %d (has=%v), want 27", row.TotalScore, row.HasTotal)
	}
	if row.Synced {
		t.Error("direct local save must not be marked synced")
	}
}

func TestRemoteSink_Save(t *testing.T) {
	var gotAuth string
	var gotRec Record
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotRec)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	sink := NewRemoteSink(RemoteConfig{BaseURL: srv.URL, Token: "tok-123"})
	if err := sink.Save(context.Background(), sampleRecord()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("auth header = %q, want bearer token", gotAuth)
	}
	if gotRec.TestID != "relationship-satisfaction" {
		t.Errorf("posted test_id = %q", gotRec.TestID)
	}
	if gotRec.TotalScore == nil || *gotRec.TotalScore != 27 {
		t.Errorf("posted total_score = %v, want 27", gotRec.TotalScore)
	}
}

func TestRemoteSink_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sink := NewRemoteSink(RemoteConfig{BaseURL: srv.URL, Token: "tok"})
	err := sink.Save(context.Background(), sampleRecord())

	var remote *ErrRemoteWrite
	if !errors.As(err, &remote) {
		t.Fatalf("err = %v, want ErrRemoteWrite", err)
	}
	if remote.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", remote.StatusCode)
	}
}

func TestFallbackSink_PrimarySucceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	repo := &memRepo{}
	sink := WithFallback(NewRemoteSink(RemoteConfig{BaseURL: srv.URL, Token: "tok"}), NewLocalSink(repo))

	if err := sink.Save(context.Background(), sampleRecord()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("got %d local rows, want 1 (local copy always retained)", len(repo.rows))
	}
	if !repo.rows[0].Synced {
		t.Error("local copy should be marked synced after remote success")
	}
}

func TestFallbackSink_PrimaryFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	repo := &memRepo{}
	sink := WithFallback(NewRemoteSink(RemoteConfig{BaseURL: srv.URL, Token: "tok"}), NewLocalSink(repo))

	// Remote failure is recovered: no error, record kept locally.
	if err := sink.Save(context.Background(), sampleRecord()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("got %d local rows, want 1", len(repo.rows))
	}
	if repo.rows[0].Synced {
		t.Error("fallback copy must stay unsynced for later resync")
	}
}

func TestResync(t *testing.T) {
	repo := &memRepo{}
	local := NewLocalSink(repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := local.Save(ctx, sampleRecord()); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	var posted int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posted++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n, err := Resync(ctx, repo, NewRemoteSink(RemoteConfig{BaseURL: srv.URL, Token: "tok"}))
	if err != nil {
		t.Fatalf("resync: %v", err)
	}
	if n != 3 || posted != 3 {
		t.Errorf("delivered %d (posted %d), want 3", n, posted)
	}

	left, err := repo.List(ctx, store.ResultQueryOpts{OnlyUnsync: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("%d rows still unsynced after resync, want 0", len(left))
	}
}

func TestResync_StopsOnRemoteFailure(t *testing.T) {
	repo := &memRepo{}
	local := NewLocalSink(repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := local.Save(ctx, sampleRecord()); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls > 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n, err := Resync(ctx, repo, NewRemoteSink(RemoteConfig{BaseURL: srv.URL, Token: "tok"}))
	if err == nil {
		t.Fatal("expected error when the remote fails mid-resync")
	}
	if n != 1 {
		t.Errorf("delivered %d before failure, want 1", n)
	}

	left, _ := repo.List(ctx, store.ResultQueryOpts{OnlyUnsync: true})
	if len(left) != 2 {
		t.Errorf("%d rows still unsynced, want 2", len(left))
	}
}

func TestRemoteConfigEnabled(t *testing.T) {
	tests := []struct {
		cfg  RemoteConfig
		want bool
	}{
		{RemoteConfig{}, false},
		{RemoteConfig{BaseURL: "https://api.example.com/results"}, false},
		{RemoteConfig{Token: "tok"}, false},
		{RemoteConfig{BaseURL: "https://api.example.com/results", Token: "tok"}, true},
	}
	for _, tt := range tests {
		if got := tt.cfg.Enabled(); got != tt.want {
			t.Errorf("Enabled(%+v) = %v, want %v", tt.cfg, got, tt.want)
		}
	}
}
