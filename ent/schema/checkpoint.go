package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint holds the schema definition for the Checkpoint entity.
// A durable snapshot of workflow state, written at every state transition
// and gate boundary. Checkpoints are append-only: never updated, deleted
// only by retention cleanup or session delete.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("parent_checkpoint_id").
			Optional().
			Nillable().
			Comment("Previous checkpoint in the story's chain; traversed by query, never by in-memory pointer"),
		field.Enum("checkpoint_type").
			Values("gate", "story_start", "story_complete", "agent_handoff", "error", "manual"),
		field.String("checkpoint_name").
			NotEmpty(),
		field.JSON("state", map[string]interface{}{}).
			Optional().
			Comment("Serialized workflow state snapshot"),
		field.String("story_id").
			Optional().
			Nillable(),
		field.Enum("gate").
			Values("gate-0", "gate-1", "gate-2", "gate-3", "gate-4", "gate-5",
				"gate-6", "gate-7", "gate-8", "gate-9", "gate-10", "gate-11", "gate-12").
			Optional().
			Nillable(),
		field.String("agent_id").
			Optional().
			Nillable(),
		field.String("seq").
			Unique().
			Immutable().
			Comment("Monotonic ULID; defines checkpoint order even within one clock tick"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Checkpoint.
func (Checkpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("checkpoints").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Checkpoint.
func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "seq"),
		index.Fields("session_id", "story_id"),
		index.Fields("checkpoint_type"),
	}
}
