package results

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// RemoteConfig holds configuration for the remote result store.
type RemoteConfig struct {
	// BaseURL is the results endpoint, e.g. "https://api.example.com/results".
	BaseURL string

	// Token is the per-user bearer token. Empty means no authenticated
	// user and the remote sink should not be used.
	Token string

	// Timeout bounds one write. Default: 10s.
	Timeout time.Duration
}

// RemoteConfigFromEnv builds a RemoteConfig from environment variables.
func RemoteConfigFromEnv() RemoteConfig {
	return RemoteConfig{
		BaseURL: os.Getenv("LEMON_RESULTS_URL"),
		Token:   os.Getenv("LEMON_RESULTS_TOKEN"),
		Timeout: 10 * time.Second,
	}
}

// Enabled reports whether the remote store is configured and authenticated.
func (c RemoteConfig) Enabled() bool {
	return c.BaseURL != "" && c.Token != ""
}

// ErrRemoteWrite indicates the remote store rejected or failed a write.
// The fallback sink recovers it by keeping the local copy.
type ErrRemoteWrite struct {
	StatusCode int
	Err        error
}

func (e *ErrRemoteWrite) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("remote result store returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("remote result store unreachable: %v", e.Err)
}

func (e *ErrRemoteWrite) Unwrap() error {
	return e.Err
}

// RemoteSink posts records to the per-user remote result store.
type RemoteSink struct {
	cfg    RemoteConfig
	client *http.Client
}

// NewRemoteSink creates a sink targeting the configured remote store.
func NewRemoteSink(cfg RemoteConfig) *RemoteSink {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &RemoteSink{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *RemoteSink) Save(ctx context.Context, rec Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal result record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build result request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token)

	resp, err := s.client.Do(req)
	if err != nil {
		return &ErrRemoteWrite{Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ErrRemoteWrite{StatusCode: resp.StatusCode}
	}
	return nil
}
