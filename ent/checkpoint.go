// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Boomerang-Apps/wave/ent/checkpoint"
	"github.com/Boomerang-Apps/wave/ent/session"
)

// Checkpoint is the model entity for the Checkpoint schema.
type Checkpoint struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Previous checkpoint in the story's chain; traversed by query, never by in-memory pointer
	ParentCheckpointID *string `json:"parent_checkpoint_id,omitempty"`
	// CheckpointType holds the value of the "checkpoint_type" field.
	CheckpointType checkpoint.CheckpointType `json:"checkpoint_type,omitempty"`
	// CheckpointName holds the value of the "checkpoint_name" field.
	CheckpointName string `json:"checkpoint_name,omitempty"`
	// Serialized workflow state snapshot
	State map[string]interface{} `json:"state,omitempty"`
	// StoryID holds the value of the "story_id" field.
	StoryID *string `json:"story_id,omitempty"`
	// Gate holds the value of the "gate" field.
	Gate *checkpoint.Gate `json:"gate,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID *string `json:"agent_id,omitempty"`
	// Monotonic ULID; defines checkpoint order even within one clock tick
	Seq string `json:"seq,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CheckpointQuery when eager-loading is set.
	Edges        CheckpointEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CheckpointEdges holds the relations/edges for other nodes in the graph.
type CheckpointEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CheckpointEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Checkpoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checkpoint.FieldState:
			values[i] = new([]byte)
		case checkpoint.FieldID, checkpoint.FieldSessionID, checkpoint.FieldParentCheckpointID, checkpoint.FieldCheckpointType, checkpoint.FieldCheckpointName, checkpoint.FieldStoryID, checkpoint.FieldGate, checkpoint.FieldAgentID, checkpoint.FieldSeq:
			values[i] = new(sql.NullString)
		case checkpoint.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Checkpoint fields.
func (_m *Checkpoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checkpoint.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case checkpoint.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case checkpoint.FieldParentCheckpointID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_checkpoint_id", values[i])
			} else if value.Valid {
				_m.ParentCheckpointID = new(string)
				*_m.ParentCheckpointID = value.String
			}
		case checkpoint.FieldCheckpointType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint_type", values[i])
			} else if value.Valid {
				_m.CheckpointType = checkpoint.CheckpointType(value.String)
			}
		case checkpoint.FieldCheckpointName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint_name", values[i])
			} else if value.Valid {
				_m.CheckpointName = value.String
			}
		case checkpoint.FieldState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.State); err != nil {
					return fmt.Errorf("unmarshal field state: %w", err)
				}
			}
		case checkpoint.FieldStoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field story_id", values[i])
			} else if value.Valid {
				_m.StoryID = new(string)
				*_m.StoryID = value.String
			}
		case checkpoint.FieldGate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gate", values[i])
			} else if value.Valid {
				_m.Gate = new(checkpoint.Gate)
				*_m.Gate = checkpoint.Gate(value.String)
			}
		case checkpoint.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = new(string)
				*_m.AgentID = value.String
			}
		case checkpoint.FieldSeq:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = value.String
			}
		case checkpoint.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Checkpoint.
// This includes values selected through modifiers, order, etc.
func (_m *Checkpoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Checkpoint entity.
func (_m *Checkpoint) QuerySession() *SessionQuery {
	return NewCheckpointClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this Checkpoint.
// Note that you need to call Checkpoint.Unwrap() before calling this method if this Checkpoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Checkpoint) Update() *CheckpointUpdateOne {
	return NewCheckpointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Checkpoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Checkpoint) Unwrap() *Checkpoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Checkpoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Checkpoint) String() string {
	var builder strings.Builder
	builder.WriteString("Checkpoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	if v := _m.ParentCheckpointID; v != nil {
		builder.WriteString("parent_checkpoint_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("checkpoint_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.CheckpointType))
	builder.WriteString(", ")
	builder.WriteString("checkpoint_name=")
	builder.WriteString(_m.CheckpointName)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	if v := _m.StoryID; v != nil {
		builder.WriteString("story_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Gate; v != nil {
		builder.WriteString("gate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AgentID; v != nil {
		builder.WriteString("agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(_m.Seq)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Checkpoints is a parsable slice of Checkpoint.
type Checkpoints []*Checkpoint
