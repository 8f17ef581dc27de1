package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity.
// One session covers a single PRD-to-merge run (a wave of stories).
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("project_name").
			NotEmpty(),
		field.Int("wave_number").
			Default(0).
			Min(0).
			Comment("Numbered batch of stories derived from one PRD cycle"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed", "cancelled").
			Default("pending"),
		field.Float("budget_usd").
			Default(0).
			Min(0).
			Comment("Budget cap for the run"),
		field.Float("actual_cost_usd").
			Default(0),
		field.Int64("token_count").
			Default(0),
		field.Int("story_count").
			Default(0),
		field.Int("stories_completed").
			Default(0),
		field.Int("stories_failed").
			Default(0),
		field.JSON("meta_data", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("failed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("story_executions", StoryExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("checkpoints", Checkpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_name", "wave_number"),
		index.Fields("status"),
	}
}
