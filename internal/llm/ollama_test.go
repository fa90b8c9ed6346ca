package llm

import (
	"testing"
)

func TestNewOllamaProvider(t *testing.T) {
	t.Run("no API key required", func(t *testing.T) {
		p, err := NewOllamaProvider(OllamaConfig{
			Model: "llama3.2",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "llama3.2" {
			t.Errorf("model = %q, want %q", p.ModelID(), "llama3.2")
		}
	})

	t.Run("custom model pass-through", func(t *testing.T) {
		p, err := NewOllamaProvider(OllamaConfig{
			Model: "qwen2.5:14b",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Model ID should be used as-is (no friendly-name mapping).
		if p.ModelID() != "qwen2.5:14b" {
			t.Errorf("model = %q, want %q", p.ModelID(), "qwen2.5:14b")
		}
	})

	t.Run("custom base URL", func(t *testing.T) {
		p, err := NewOllamaProvider(OllamaConfig{
			Model:   "llama3.2",
			BaseURL: "http://remote-box:11434/v1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p == nil {
			t.Fatal("expected non-nil provider")
		}
	})
}
