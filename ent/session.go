// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Boomerang-Apps/wave/ent/session"
)

// Session is the model entity for the Session schema.
type Session struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectName holds the value of the "project_name" field.
	ProjectName string `json:"project_name,omitempty"`
	// Numbered batch of stories derived from one PRD cycle
	WaveNumber int `json:"wave_number,omitempty"`
	// Status holds the value of the "status" field.
	Status session.Status `json:"status,omitempty"`
	// Budget cap for the run
	BudgetUsd float64 `json:"budget_usd,omitempty"`
	// ActualCostUsd holds the value of the "actual_cost_usd" field.
	ActualCostUsd float64 `json:"actual_cost_usd,omitempty"`
	// TokenCount holds the value of the "token_count" field.
	TokenCount int64 `json:"token_count,omitempty"`
	// StoryCount holds the value of the "story_count" field.
	StoryCount int `json:"story_count,omitempty"`
	// StoriesCompleted holds the value of the "stories_completed" field.
	StoriesCompleted int `json:"stories_completed,omitempty"`
	// StoriesFailed holds the value of the "stories_failed" field.
	StoriesFailed int `json:"stories_failed,omitempty"`
	// MetaData holds the value of the "meta_data" field.
	MetaData map[string]interface{} `json:"meta_data,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// FailedAt holds the value of the "failed_at" field.
	FailedAt *time.Time `json:"failed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionQuery when eager-loading is set.
	Edges        SessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionEdges holds the relations/edges for other nodes in the graph.
type SessionEdges struct {
	// StoryExecutions holds the value of the story_executions edge.
	StoryExecutions []*StoryExecution `json:"story_executions,omitempty"`
	// Checkpoints holds the value of the checkpoints edge.
	Checkpoints []*Checkpoint `json:"checkpoints,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// StoryExecutionsOrErr returns the StoryExecutions value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) StoryExecutionsOrErr() ([]*StoryExecution, error) {
	if e.loadedTypes[0] {
		return e.StoryExecutions, nil
	}
	return nil, &NotLoadedError{edge: "story_executions"}
}

// CheckpointsOrErr returns the Checkpoints value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) CheckpointsOrErr() ([]*Checkpoint, error) {
	if e.loadedTypes[1] {
		return e.Checkpoints, nil
	}
	return nil, &NotLoadedError{edge: "checkpoints"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Session) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case session.FieldMetaData:
			values[i] = new([]byte)
		case session.FieldBudgetUsd, session.FieldActualCostUsd:
			values[i] = new(sql.NullFloat64)
		case session.FieldWaveNumber, session.FieldTokenCount, session.FieldStoryCount, session.FieldStoriesCompleted, session.FieldStoriesFailed:
			values[i] = new(sql.NullInt64)
		case session.FieldID, session.FieldProjectName, session.FieldStatus:
			values[i] = new(sql.NullString)
		case session.FieldCreatedAt, session.FieldStartedAt, session.FieldCompletedAt, session.FieldFailedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Session fields.
func (_m *Session) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case session.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case session.FieldProjectName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_name", values[i])
			} else if value.Valid {
				_m.ProjectName = value.String
			}
		case session.FieldWaveNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wave_number", values[i])
			} else if value.Valid {
				_m.WaveNumber = int(value.Int64)
			}
		case session.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = session.Status(value.String)
			}
		case session.FieldBudgetUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field budget_usd", values[i])
			} else if value.Valid {
				_m.BudgetUsd = value.Float64
			}
		case session.FieldActualCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field actual_cost_usd", values[i])
			} else if value.Valid {
				_m.ActualCostUsd = value.Float64
			}
		case session.FieldTokenCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field token_count", values[i])
			} else if value.Valid {
				_m.TokenCount = value.Int64
			}
		case session.FieldStoryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field story_count", values[i])
			} else if value.Valid {
				_m.StoryCount = int(value.Int64)
			}
		case session.FieldStoriesCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stories_completed", values[i])
			} else if value.Valid {
				_m.StoriesCompleted = int(value.Int64)
			}
		case session.FieldStoriesFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stories_failed", values[i])
			} else if value.Valid {
				_m.StoriesFailed = int(value.Int64)
			}
		case session.FieldMetaData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field meta_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MetaData); err != nil {
					return fmt.Errorf("unmarshal field meta_data: %w", err)
				}
			}
		case session.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case session.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case session.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case session.FieldFailedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field failed_at", values[i])
			} else if value.Valid {
				_m.FailedAt = new(time.Time)
				*_m.FailedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Session.
// This includes values selected through modifiers, order, etc.
func (_m *Session) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStoryExecutions queries the "story_executions" edge of the Session entity.
func (_m *Session) QueryStoryExecutions() *StoryExecutionQuery {
	return NewSessionClient(_m.config).QueryStoryExecutions(_m)
}

// QueryCheckpoints queries the "checkpoints" edge of the Session entity.
func (_m *Session) QueryCheckpoints() *CheckpointQuery {
	return NewSessionClient(_m.config).QueryCheckpoints(_m)
}

// Update returns a builder for updating this Session.
// Note that you need to call Session.Unwrap() before calling this method if this Session
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Session) Update() *SessionUpdateOne {
	return NewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Session entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Session) Unwrap() *Session {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Session is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Session) String() string {
	var builder strings.Builder
	builder.WriteString("Session(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_name=")
	builder.WriteString(_m.ProjectName)
	builder.WriteString(", ")
	builder.WriteString("wave_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.WaveNumber))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("budget_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.BudgetUsd))
	builder.WriteString(", ")
	builder.WriteString("actual_cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActualCostUsd))
	builder.WriteString(", ")
	builder.WriteString("token_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokenCount))
	builder.WriteString(", ")
	builder.WriteString("story_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.StoryCount))
	builder.WriteString(", ")
	builder.WriteString("stories_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.StoriesCompleted))
	builder.WriteString(", ")
	builder.WriteString("stories_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.StoriesFailed))
	builder.WriteString(", ")
	builder.WriteString("meta_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.MetaData))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FailedAt; v != nil {
		builder.WriteString("failed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Sessions is a parsable slice of Session.
type Sessions []*Session
