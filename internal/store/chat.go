package store

import (
	"context"
	"fmt"

	"github.com/VoidLight00/lemon-protocol/ent"
	"github.com/VoidLight00/lemon-protocol/ent/chatmessage"
)

// chatRepo implements ChatRepo backed by ent and the global sequence counter.
type chatRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *chatRepo) Append(ctx context.Context, turn ChatTurn) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ChatMessage.Create().
		SetSequence(seqNum).
		SetSessionID(turn.SessionID).
		SetRole(turn.Role).
		SetContent(turn.Content).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save chat turn: %w", err)
	}
	return nil
}

func (r *chatRepo) History(ctx context.Context, sessionID string) ([]ChatTurn, error) {
	rows, err := r.client.ChatMessage.Query().
		Where(chatmessage.SessionID(sessionID)).
		Order(ent.Asc(chatmessage.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chat history: %w", err)
	}

	turns := make([]ChatTurn, 0, len(rows))
	for _, row := range rows {
		turns = append(turns, ChatTurn{
			Sequence:  row.Sequence,
			SessionID: row.SessionID,
			Role:      row.Role,
			Content:   row.Content,
			Timestamp: row.Timestamp,
		})
	}
	return turns, nil
}

func (r *chatRepo) Sessions(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.client.ChatMessage.Query().
		Order(ent.Desc(chatmessage.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chat sessions: %w", err)
	}

	seen := make(map[string]bool)
	var ids []string
	for _, row := range rows {
		if seen[row.SessionID] {
			continue
		}
		seen[row.SessionID] = true
		ids = append(ids, row.SessionID)
		if limit > 0 && len(ids) == limit {
			break
		}
	}
	return ids, nil
}

func (r *chatRepo) Clear(ctx context.Context) (int, error) {
	n, err := r.client.ChatMessage.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear chat history: %w", err)
	}
	return n, nil
}
