package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TestResult stores one resolved diagnostic result in the normalized form
// the remote coaching service accepts, so a locally saved row can be
// re-sent verbatim when the remote comes back.
type TestResult struct {
	ent.Schema
}

func (TestResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("test_id").
			NotEmpty().
			Comment("Instrument identifier, e.g. attachment-ecr"),
		field.String("test_title").
			Comment("Instrument display title at the time of the attempt"),
		field.String("result_type").
			NotEmpty().
			Comment("Matched band type, e.g. secure, caution, touch"),
		field.String("result_title").
			Comment("Band display title"),
		field.String("result_emoji").
			Comment("Band emoji"),
		field.Strings("tips").
			Optional().
			Comment("Band tips as shown to the user"),
		field.Int("total_score").
			Optional().
			Comment("Sum total; set for sum and total-banded instruments"),
		field.JSON("category_scores", map[string]int{}).
			Optional().
			Comment("Per-category sums; set for category instruments"),
		field.JSON("dimension_scores", map[string]int{}).
			Optional().
			Comment("Axis sums keyed by axis name; set for dimension instruments"),
		field.String("main_issue").
			Default("").
			Comment("Dominant category on total-banded hybrids"),
		field.Bool("synced").
			Default(false).
			Comment("Whether the result reached the remote service"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time the result was saved"),
	}
}

func (TestResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("test_id"),
		index.Fields("created_at"),
		index.Fields("synced"),
	}
}
