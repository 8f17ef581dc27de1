package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StoryExecution holds the schema definition for the StoryExecution entity.
// One story executed by a single domain agent within a session.
type StoryExecution struct {
	ent.Schema
}

// Fields of the StoryExecution.
func (StoryExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("story_id").
			NotEmpty().
			Comment("Human-readable story key, e.g. AUTH-001"),
		field.String("title").
			Optional(),
		field.String("domain").
			NotEmpty().
			Comment("Owning codebase partition, e.g. auth, payments"),
		field.String("agent").
			Optional().
			Comment("Assigned domain-specialist agent"),
		field.Int("priority").
			Default(0),
		field.Int("story_points").
			Default(0),
		field.Enum("status").
			Values("pending", "in_progress", "review", "complete", "failed", "cancelled").
			Default("pending"),
		field.Enum("current_gate").
			Values("gate-0", "gate-1", "gate-2", "gate-3", "gate-4", "gate-5",
				"gate-6", "gate-7", "gate-8", "gate-9", "gate-10", "gate-11", "gate-12").
			Default("gate-0"),
		field.Int("retry_count").
			Default(0).
			Min(0),
		field.Int("acceptance_criteria_passed").
			Default(0),
		field.Int("acceptance_criteria_total").
			Default(0),
		field.JSON("files_created", []string{}).
			Optional(),
		field.JSON("files_modified", []string{}).
			Optional(),
		field.String("branch_name").
			Optional().
			Nillable(),
		field.String("commit_sha").
			Optional().
			Nillable(),
		field.String("pr_url").
			Optional().
			Nillable(),
		field.Bool("tests_passing").
			Optional().
			Nillable(),
		field.Float("coverage_achieved").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
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

// Edges of the StoryExecution.
func (StoryExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("story_executions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StoryExecution.
func (StoryExecution) Indexes() []ent.Index {
	return []ent.Index{
		// One execution per story per session
		index.Fields("session_id", "story_id").
			Unique(),
		index.Fields("session_id", "status"),
		index.Fields("domain"),
	}
}
