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
	"github.com/Boomerang-Apps/wave/ent/storyexecution"
)

// StoryExecution is the model entity for the StoryExecution schema.
type StoryExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Human-readable story key, e.g. AUTH-001
	StoryID string `json:"story_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Owning codebase partition, e.g. auth, payments
	Domain string `json:"domain,omitempty"`
	// Assigned domain-specialist agent
	Agent string `json:"agent,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority int `json:"priority,omitempty"`
	// StoryPoints holds the value of the "story_points" field.
	StoryPoints int `json:"story_points,omitempty"`
	// Status holds the value of the "status" field.
	Status storyexecution.Status `json:"status,omitempty"`
	// CurrentGate holds the value of the "current_gate" field.
	CurrentGate storyexecution.CurrentGate `json:"current_gate,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// AcceptanceCriteriaPassed holds the value of the "acceptance_criteria_passed" field.
	AcceptanceCriteriaPassed int `json:"acceptance_criteria_passed,omitempty"`
	// AcceptanceCriteriaTotal holds the value of the "acceptance_criteria_total" field.
	AcceptanceCriteriaTotal int `json:"acceptance_criteria_total,omitempty"`
	// FilesCreated holds the value of the "files_created" field.
	FilesCreated []string `json:"files_created,omitempty"`
	// FilesModified holds the value of the "files_modified" field.
	FilesModified []string `json:"files_modified,omitempty"`
	// BranchName holds the value of the "branch_name" field.
	BranchName *string `json:"branch_name,omitempty"`
	// CommitSha holds the value of the "commit_sha" field.
	CommitSha *string `json:"commit_sha,omitempty"`
	// PrURL holds the value of the "pr_url" field.
	PrURL *string `json:"pr_url,omitempty"`
	// TestsPassing holds the value of the "tests_passing" field.
	TestsPassing *bool `json:"tests_passing,omitempty"`
	// CoverageAchieved holds the value of the "coverage_achieved" field.
	CoverageAchieved *float64 `json:"coverage_achieved,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
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
	// The values are being populated by the StoryExecutionQuery when eager-loading is set.
	Edges        StoryExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StoryExecutionEdges holds the relations/edges for other nodes in the graph.
type StoryExecutionEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StoryExecutionEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StoryExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case storyexecution.FieldFilesCreated, storyexecution.FieldFilesModified, storyexecution.FieldMetaData:
			values[i] = new([]byte)
		case storyexecution.FieldTestsPassing:
			values[i] = new(sql.NullBool)
		case storyexecution.FieldCoverageAchieved:
			values[i] = new(sql.NullFloat64)
		case storyexecution.FieldPriority, storyexecution.FieldStoryPoints, storyexecution.FieldRetryCount, storyexecution.FieldAcceptanceCriteriaPassed, storyexecution.FieldAcceptanceCriteriaTotal:
			values[i] = new(sql.NullInt64)
		case storyexecution.FieldID, storyexecution.FieldSessionID, storyexecution.FieldStoryID, storyexecution.FieldTitle, storyexecution.FieldDomain, storyexecution.FieldAgent, storyexecution.FieldStatus, storyexecution.FieldCurrentGate, storyexecution.FieldBranchName, storyexecution.FieldCommitSha, storyexecution.FieldPrURL, storyexecution.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case storyexecution.FieldCreatedAt, storyexecution.FieldStartedAt, storyexecution.FieldCompletedAt, storyexecution.FieldFailedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StoryExecution fields.
func (_m *StoryExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case storyexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case storyexecution.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case storyexecution.FieldStoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field story_id", values[i])
			} else if value.Valid {
				_m.StoryID = value.String
			}
		case storyexecution.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case storyexecution.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case storyexecution.FieldAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent", values[i])
			} else if value.Valid {
				_m.Agent = value.String
			}
		case storyexecution.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case storyexecution.FieldStoryPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field story_points", values[i])
			} else if value.Valid {
				_m.StoryPoints = int(value.Int64)
			}
		case storyexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = storyexecution.Status(value.String)
			}
		case storyexecution.FieldCurrentGate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_gate", values[i])
			} else if value.Valid {
				_m.CurrentGate = storyexecution.CurrentGate(value.String)
			}
		case storyexecution.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case storyexecution.FieldAcceptanceCriteriaPassed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field acceptance_criteria_passed", values[i])
			} else if value.Valid {
				_m.AcceptanceCriteriaPassed = int(value.Int64)
			}
		case storyexecution.FieldAcceptanceCriteriaTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field acceptance_criteria_total", values[i])
			} else if value.Valid {
				_m.AcceptanceCriteriaTotal = int(value.Int64)
			}
		case storyexecution.FieldFilesCreated:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field files_created", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FilesCreated); err != nil {
					return fmt.Errorf("unmarshal field files_created: %w", err)
				}
			}
		case storyexecution.FieldFilesModified:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field files_modified", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FilesModified); err != nil {
					return fmt.Errorf("unmarshal field files_modified: %w", err)
				}
			}
		case storyexecution.FieldBranchName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch_name", values[i])
			} else if value.Valid {
				_m.BranchName = new(string)
				*_m.BranchName = value.String
			}
		case storyexecution.FieldCommitSha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field commit_sha", values[i])
			} else if value.Valid {
				_m.CommitSha = new(string)
				*_m.CommitSha = value.String
			}
		case storyexecution.FieldPrURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pr_url", values[i])
			} else if value.Valid {
				_m.PrURL = new(string)
				*_m.PrURL = value.String
			}
		case storyexecution.FieldTestsPassing:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field tests_passing", values[i])
			} else if value.Valid {
				_m.TestsPassing = new(bool)
				*_m.TestsPassing = value.Bool
			}
		case storyexecution.FieldCoverageAchieved:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field coverage_achieved", values[i])
			} else if value.Valid {
				_m.CoverageAchieved = new(float64)
				*_m.CoverageAchieved = value.Float64
			}
		case storyexecution.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case storyexecution.FieldMetaData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field meta_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MetaData); err != nil {
					return fmt.Errorf("unmarshal field meta_data: %w", err)
				}
			}
		case storyexecution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case storyexecution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case storyexecution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case storyexecution.FieldFailedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the StoryExecution.
// This includes values selected through modifiers, order, etc.
func (_m *StoryExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the StoryExecution entity.
func (_m *StoryExecution) QuerySession() *SessionQuery {
	return NewStoryExecutionClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this StoryExecution.
// Note that you need to call StoryExecution.Unwrap() before calling this method if this StoryExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StoryExecution) Update() *StoryExecutionUpdateOne {
	return NewStoryExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StoryExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StoryExecution) Unwrap() *StoryExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StoryExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StoryExecution) String() string {
	var builder strings.Builder
	builder.WriteString("StoryExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("story_id=")
	builder.WriteString(_m.StoryID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("agent=")
	builder.WriteString(_m.Agent)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("story_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.StoryPoints))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("current_gate=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentGate))
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("acceptance_criteria_passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.AcceptanceCriteriaPassed))
	builder.WriteString(", ")
	builder.WriteString("acceptance_criteria_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.AcceptanceCriteriaTotal))
	builder.WriteString(", ")
	builder.WriteString("files_created=")
	builder.WriteString(fmt.Sprintf("%v", _m.FilesCreated))
	builder.WriteString(", ")
	builder.WriteString("files_modified=")
	builder.WriteString(fmt.Sprintf("%v", _m.FilesModified))
	builder.WriteString(", ")
	if v := _m.BranchName; v != nil {
		builder.WriteString("branch_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CommitSha; v != nil {
		builder.WriteString("commit_sha=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PrURL; v != nil {
		builder.WriteString("pr_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TestsPassing; v != nil {
		builder.WriteString("tests_passing=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CoverageAchieved; v != nil {
		builder.WriteString("coverage_achieved=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
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

// StoryExecutions is a parsable slice of StoryExecution.
type StoryExecutions []*StoryExecution
