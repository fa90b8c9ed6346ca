package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage records one turn of a coaching conversation. Messages carry
// the shared event sequence so chat turns and LLM request events interleave
// in a single global order.
type ChatMessage struct {
	ent.Schema
}

func (ChatMessage) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping turns of one conversation"),
		field.String("role").
			NotEmpty().
			Comment("user or assistant"),
		field.Text("content").
			Comment("Message text"),
	}
}

func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("role"),
	}
}
