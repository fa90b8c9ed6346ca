// Package coach turns the LLM provider into a relationship-coaching
// conversation with persisted history and structured result debriefs.
package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/VoidLight00/lemon-protocol/internal/catalog"
	"github.com/VoidLight00/lemon-protocol/internal/llm"
	"github.com/VoidLight00/lemon-protocol/internal/scoring"
	"github.com/VoidLight00/lemon-protocol/internal/store"
)

// Service generates coaching replies and result debriefs.
type Service struct {
	provider llm.Provider
	chat     store.ChatRepo
	cfg      Config
}

// NewService creates a coaching service.
func NewService(provider llm.Provider, chat store.ChatRepo, cfg Config) *Service {
	return &Service{provider: provider, chat: chat, cfg: cfg}
}

// Reply sends one user message in a session and returns the assistant's
// answer. The stored session history is replayed into the prompt, and both
// turns are persisted before returning.
func (s *Service) Reply(ctx context.Context, sessionID, userMsg string) (string, error) {
	history, err := s.chat.History(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("load chat history: %w", err)
	}
	if len(history) > HistoryLimit {
		history = history[len(history)-HistoryLimit:]
	}

	messages := make([]llm.Message, 0, len(history)+1)
	for _, turn := range history {
		role := llm.RoleUser
		if turn.Role == "assistant" {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userMsg})

	req := llm.Request{
		System:      coachSystemPrompt,
		Messages:    messages,
		MaxTokens:   s.cfg.ReplyMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(llm.WithPurpose(ctx, "coach-reply"), req)
	if err != nil {
		return "", fmt.Errorf("coach reply: %w", err)
	}
	reply := string(resp.Content)

	if err := s.chat.Append(ctx, store.ChatTurn{SessionID: sessionID, Role: "user", Content: userMsg}); err != nil {
		return "", fmt.Errorf("persist user turn: %w", err)
	}
	if err := s.chat.Append(ctx, store.ChatTurn{SessionID: sessionID, Role: "assistant", Content: reply}); err != nil {
		return "", fmt.Errorf("persist assistant turn: %w", err)
	}

	return reply, nil
}

type debriefOutput struct {
	Summary     string   `json:"summary"`
	Strengths   []string `json:"strengths"`
	GrowthAreas []string `json:"growth_areas"`
	Suggestions []string `json:"suggestions"`
}

// Debrief generates a structured walkthrough of a resolved result.
func (s *Service) Debrief(ctx context.Context, in catalog.Instrument, res *scoring.Result) (*Debrief, error) {
	req := llm.Request{
		System: coachSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildDebriefUserMessage(in, res)},
		},
		Schema:      DebriefSchema,
		MaxTokens:   s.cfg.DebriefMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(llm.WithPurpose(ctx, "result-debrief"), req)
	if err != nil {
		return nil, fmt.Errorf("result debrief: %w", err)
	}

	var out debriefOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse debrief response: %w", err)
	}

	return &Debrief{
		Summary:     out.Summary,
		Strengths:   out.Strengths,
		GrowthAreas: out.GrowthAreas,
		Suggestions: out.Suggestions,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
