// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "parent_checkpoint_id", Type: field.TypeString, Nullable: true},
		{Name: "checkpoint_type", Type: field.TypeEnum, Enums: []string{"gate", "story_start", "story_complete", "agent_handoff", "error", "manual"}},
		{Name: "checkpoint_name", Type: field.TypeString},
		{Name: "state", Type: field.TypeJSON, Nullable: true},
		{Name: "story_id", Type: field.TypeString, Nullable: true},
		{Name: "gate", Type: field.TypeEnum, Nullable: true, Enums: []string{"gate-0", "gate-1", "gate-2", "gate-3", "gate-4", "gate-5", "gate-6", "gate-7", "gate-8", "gate-9", "gate-10", "gate-11", "gate-12"}},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "seq", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_sessions_checkpoints",
				Columns:    []*schema.Column{CheckpointsColumns[10]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_session_id_seq",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[10], CheckpointsColumns[8]},
			},
			{
				Name:    "checkpoint_session_id_story_id",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[10], CheckpointsColumns[5]},
			},
			{
				Name:    "checkpoint_checkpoint_type",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[2]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "project_name", Type: field.TypeString},
		{Name: "wave_number", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "budget_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "actual_cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "token_count", Type: field.TypeInt64, Default: 0},
		{Name: "story_count", Type: field.TypeInt, Default: 0},
		{Name: "stories_completed", Type: field.TypeInt, Default: 0},
		{Name: "stories_failed", Type: field.TypeInt, Default: 0},
		{Name: "meta_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_at", Type: field.TypeTime, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_project_name_wave_number",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[2]},
			},
			{
				Name:    "session_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3]},
			},
		},
	}
	// StoryExecutionsColumns holds the columns for the "story_executions" table.
	StoryExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "story_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "domain", Type: field.TypeString},
		{Name: "agent", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "story_points", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "review", "complete", "failed", "cancelled"}, Default: "pending"},
		{Name: "current_gate", Type: field.TypeEnum, Enums: []string{"gate-0", "gate-1", "gate-2", "gate-3", "gate-4", "gate-5", "gate-6", "gate-7", "gate-8", "gate-9", "gate-10", "gate-11", "gate-12"}, Default: "gate-0"},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "acceptance_criteria_passed", Type: field.TypeInt, Default: 0},
		{Name: "acceptance_criteria_total", Type: field.TypeInt, Default: 0},
		{Name: "files_created", Type: field.TypeJSON, Nullable: true},
		{Name: "files_modified", Type: field.TypeJSON, Nullable: true},
		{Name: "branch_name", Type: field.TypeString, Nullable: true},
		{Name: "commit_sha", Type: field.TypeString, Nullable: true},
		{Name: "pr_url", Type: field.TypeString, Nullable: true},
		{Name: "tests_passing", Type: field.TypeBool, Nullable: true},
		{Name: "coverage_achieved", Type: field.TypeFloat64, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "meta_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_at", Type: field.TypeTime, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// StoryExecutionsTable holds the schema information for the "story_executions" table.
	StoryExecutionsTable = &schema.Table{
		Name:       "story_executions",
		Columns:    StoryExecutionsColumns,
		PrimaryKey: []*schema.Column{StoryExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "story_executions_sessions_story_executions",
				Columns:    []*schema.Column{StoryExecutionsColumns[25]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "storyexecution_session_id_story_id",
				Unique:  true,
				Columns: []*schema.Column{StoryExecutionsColumns[25], StoryExecutionsColumns[1]},
			},
			{
				Name:    "storyexecution_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{StoryExecutionsColumns[25], StoryExecutionsColumns[7]},
			},
			{
				Name:    "storyexecution_domain",
				Unique:  false,
				Columns: []*schema.Column{StoryExecutionsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CheckpointsTable,
		SessionsTable,
		StoryExecutionsTable,
	}
)

func init() {
	CheckpointsTable.ForeignKeys[0].RefTable = SessionsTable
	StoryExecutionsTable.ForeignKeys[0].RefTable = SessionsTable
}
