// Code generated by ent, DO NOT EDIT.

package checkpoint

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the checkpoint type in the database.
	Label = "checkpoint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "checkpoint_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldParentCheckpointID holds the string denoting the parent_checkpoint_id field in the database.
	FieldParentCheckpointID = "parent_checkpoint_id"
	// FieldCheckpointType holds the string denoting the checkpoint_type field in the database.
	FieldCheckpointType = "checkpoint_type"
	// FieldCheckpointName holds the string denoting the checkpoint_name field in the database.
	FieldCheckpointName = "checkpoint_name"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldStoryID holds the string denoting the story_id field in the database.
	FieldStoryID = "story_id"
	// FieldGate holds the string denoting the gate field in the database.
	FieldGate = "gate"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// Table holds the table name of the checkpoint in the database.
	Table = "checkpoints"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "checkpoints"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for checkpoint fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldParentCheckpointID,
	FieldCheckpointType,
	FieldCheckpointName,
	FieldState,
	FieldStoryID,
	FieldGate,
	FieldAgentID,
	FieldSeq,
	FieldCreatedAt,
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
	// CheckpointNameValidator is a validator for the "checkpoint_name" field. It is called by the builders before save.
	CheckpointNameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// CheckpointType defines the type for the "checkpoint_type" enum field.
type CheckpointType string

// CheckpointType values.
const (
	CheckpointTypeGate          CheckpointType = "gate"
	CheckpointTypeStoryStart    CheckpointType = "story_start"
	CheckpointTypeStoryComplete CheckpointType = "story_complete"
	CheckpointTypeAgentHandoff  CheckpointType = "agent_handoff"
	CheckpointTypeError         CheckpointType = "error"
	CheckpointTypeManual        CheckpointType = "manual"
)

func (ct CheckpointType) String() string {
	return string(ct)
}

// CheckpointTypeValidator is a validator for the "checkpoint_type" field enum values. It is called by the builders before save.
func CheckpointTypeValidator(ct CheckpointType) error {
	switch ct {
	case CheckpointTypeGate, CheckpointTypeStoryStart, CheckpointTypeStoryComplete, CheckpointTypeAgentHandoff, CheckpointTypeError, CheckpointTypeManual:
		return nil
	default:
		return fmt.Errorf("checkpoint: invalid enum value for checkpoint_type field: %q", ct)
	}
}

// Gate defines the type for the "gate" enum field.
type Gate string

// Gate values.
const (
	GateGate0  Gate = "gate-0"
	GateGate1  Gate = "gate-1"
	GateGate2  Gate = "gate-2"
	GateGate3  Gate = "gate-3"
	GateGate4  Gate = "gate-4"
	GateGate5  Gate = "gate-5"
	GateGate6  Gate = "gate-6"
	GateGate7  Gate = "gate-7"
	GateGate8  Gate = "gate-8"
	GateGate9  Gate = "gate-9"
	GateGate10 Gate = "gate-10"
	GateGate11 Gate = "gate-11"
	GateGate12 Gate = "gate-12"
)

func (ga Gate) String() string {
	return string(ga)
}

// GateValidator is a validator for the "gate" field enum values. It is called by the builders before save.
func GateValidator(ga Gate) error {
	switch ga {
	case GateGate0, GateGate1, GateGate2, GateGate3, GateGate4, GateGate5, GateGate6, GateGate7, GateGate8, GateGate9, GateGate10, GateGate11, GateGate12:
		return nil
	default:
		return fmt.Errorf("checkpoint: invalid enum value for gate field: %q", ga)
	}
}

// OrderOption defines the ordering options for the Checkpoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByParentCheckpointID orders the results by the parent_checkpoint_id field.
func ByParentCheckpointID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentCheckpointID, opts...).ToFunc()
}

// ByCheckpointType orders the results by the checkpoint_type field.
func ByCheckpointType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckpointType, opts...).ToFunc()
}

// ByCheckpointName orders the results by the checkpoint_name field.
func ByCheckpointName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckpointName, opts...).ToFunc()
}

// ByStoryID orders the results by the story_id field.
func ByStoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoryID, opts...).ToFunc()
}

// ByGate orders the results by the gate field.
func ByGate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGate, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
