// Code generated by ent, DO NOT EDIT.

package session

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldProjectName holds the string denoting the project_name field in the database.
	FieldProjectName = "project_name"
	// FieldWaveNumber holds the string denoting the wave_number field in the database.
	FieldWaveNumber = "wave_number"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldBudgetUsd holds the string denoting the budget_usd field in the database.
	FieldBudgetUsd = "budget_usd"
	// FieldActualCostUsd holds the string denoting the actual_cost_usd field in the database.
	FieldActualCostUsd = "actual_cost_usd"
	// FieldTokenCount holds the string denoting the token_count field in the database.
	FieldTokenCount = "token_count"
	// FieldStoryCount holds the string denoting the story_count field in the database.
	FieldStoryCount = "story_count"
	// FieldStoriesCompleted holds the string denoting the stories_completed field in the database.
	FieldStoriesCompleted = "stories_completed"
	// FieldStoriesFailed holds the string denoting the stories_failed field in the database.
	FieldStoriesFailed = "stories_failed"
	// FieldMetaData holds the string denoting the meta_data field in the database.
	FieldMetaData = "meta_data"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldFailedAt holds the string denoting the failed_at field in the database.
	FieldFailedAt = "failed_at"
	// EdgeStoryExecutions holds the string denoting the story_executions edge name in mutations.
	EdgeStoryExecutions = "story_executions"
	// EdgeCheckpoints holds the string denoting the checkpoints edge name in mutations.
	EdgeCheckpoints = "checkpoints"
	// StoryExecutionFieldID holds the string denoting the ID field of the StoryExecution.
	StoryExecutionFieldID = "execution_id"
	// CheckpointFieldID holds the string denoting the ID field of the Checkpoint.
	CheckpointFieldID = "checkpoint_id"
	// Table holds the table name of the session in the database.
	Table = "sessions"
	// StoryExecutionsTable is the table that holds the story_executions relation/edge.
	StoryExecutionsTable = "story_executions"
	// StoryExecutionsInverseTable is the table name for the StoryExecution entity.
	// It exists in this package in order to avoid circular dependency with the "storyexecution" package.
	StoryExecutionsInverseTable = "story_executions"
	// StoryExecutionsColumn is the table column denoting the story_executions relation/edge.
	StoryExecutionsColumn = "session_id"
	// CheckpointsTable is the table that holds the checkpoints relation/edge.
	CheckpointsTable = "checkpoints"
	// CheckpointsInverseTable is the table name for the Checkpoint entity.
	// It exists in this package in order to avoid circular dependency with the "checkpoint" package.
	CheckpointsInverseTable = "checkpoints"
	// CheckpointsColumn is the table column denoting the checkpoints relation/edge.
	CheckpointsColumn = "session_id"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldProjectName,
	FieldWaveNumber,
	FieldStatus,
	FieldBudgetUsd,
	FieldActualCostUsd,
	FieldTokenCount,
	FieldStoryCount,
	FieldStoriesCompleted,
	FieldStoriesFailed,
	FieldMetaData,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldFailedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ProjectNameValidator is a validator for the "project_name" field. It is called by the builders before save.
	ProjectNameValidator func(string) error
	// DefaultWaveNumber holds the default value on creation for the "wave_number" field.
	DefaultWaveNumber int
	// WaveNumberValidator is a validator for the "wave_number" field. It is called by the builders before save.
	WaveNumberValidator func(int) error
	// DefaultBudgetUsd holds the default value on creation for the "budget_usd" field.
	DefaultBudgetUsd float64
	// BudgetUsdValidator is a validator for the "budget_usd" field. It is called by the builders before save.
	BudgetUsdValidator func(float64) error
	// DefaultActualCostUsd holds the default value on creation for the "actual_cost_usd" field.
	DefaultActualCostUsd float64
	// DefaultTokenCount holds the default value on creation for the "token_count" field.
	DefaultTokenCount int64
	// DefaultStoryCount holds the default value on creation for the "story_count" field.
	DefaultStoryCount int
	// DefaultStoriesCompleted holds the default value on creation for the "stories_completed" field.
	DefaultStoriesCompleted int
	// DefaultStoriesFailed holds the default value on creation for the "stories_failed" field.
	DefaultStoriesFailed int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectName orders the results by the project_name field.
func ByProjectName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectName, opts...).ToFunc()
}

// ByWaveNumber orders the results by the wave_number field.
func ByWaveNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWaveNumber, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByBudgetUsd orders the results by the budget_usd field.
func ByBudgetUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBudgetUsd, opts...).ToFunc()
}

// ByActualCostUsd orders the results by the actual_cost_usd field.
func ByActualCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActualCostUsd, opts...).ToFunc()
}

// ByTokenCount orders the results by the token_count field.
func ByTokenCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenCount, opts...).ToFunc()
}

// ByStoryCount orders the results by the story_count field.
func ByStoryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoryCount, opts...).ToFunc()
}

// ByStoriesCompleted orders the results by the stories_completed field.
func ByStoriesCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoriesCompleted, opts...).ToFunc()
}

// ByStoriesFailed orders the results by the stories_failed field.
func ByStoriesFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoriesFailed, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByFailedAt orders the results by the failed_at field.
func ByFailedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedAt, opts...).ToFunc()
}

// ByStoryExecutionsCount orders the results by story_executions count.
func ByStoryExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStoryExecutionsStep(), opts...)
	}
}

// ByStoryExecutions orders the results by story_executions terms.
func ByStoryExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStoryExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCheckpointsCount orders the results by checkpoints count.
func ByCheckpointsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCheckpointsStep(), opts...)
	}
}

// ByCheckpoints orders the results by checkpoints terms.
func ByCheckpoints(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCheckpointsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStoryExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StoryExecutionsInverseTable, StoryExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StoryExecutionsTable, StoryExecutionsColumn),
	)
}
func newCheckpointsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CheckpointsInverseTable, CheckpointFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
	)
}
