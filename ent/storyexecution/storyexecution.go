// Code generated by ent, DO NOT EDIT.

package storyexecution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the storyexecution type in the database.
	Label = "story_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "execution_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStoryID holds the string denoting the story_id field in the database.
	FieldStoryID = "story_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldAgent holds the string denoting the agent field in the database.
	FieldAgent = "agent"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldStoryPoints holds the string denoting the story_points field in the database.
	FieldStoryPoints = "story_points"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentGate holds the string denoting the current_gate field in the database.
	FieldCurrentGate = "current_gate"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldAcceptanceCriteriaPassed holds the string denoting the acceptance_criteria_passed field in the database.
	FieldAcceptanceCriteriaPassed = "acceptance_criteria_passed"
	// FieldAcceptanceCriteriaTotal holds the string denoting the acceptance_criteria_total field in the database.
	FieldAcceptanceCriteriaTotal = "acceptance_criteria_total"
	// FieldFilesCreated holds the string denoting the files_created field in the database.
	FieldFilesCreated = "files_created"
	// FieldFilesModified holds the string denoting the files_modified field in the database.
	FieldFilesModified = "files_modified"
	// FieldBranchName holds the string denoting the branch_name field in the database.
	FieldBranchName = "branch_name"
	// FieldCommitSha holds the string denoting the commit_sha field in the database.
	FieldCommitSha = "commit_sha"
	// FieldPrURL holds the string denoting the pr_url field in the database.
	FieldPrURL = "pr_url"
	// FieldTestsPassing holds the string denoting the tests_passing field in the database.
	FieldTestsPassing = "tests_passing"
	// FieldCoverageAchieved holds the string denoting the coverage_achieved field in the database.
	FieldCoverageAchieved = "coverage_achieved"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
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
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// Table holds the table name of the storyexecution in the database.
	Table = "story_executions"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "story_executions"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for storyexecution fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldStoryID,
	FieldTitle,
	FieldDomain,
	FieldAgent,
	FieldPriority,
	FieldStoryPoints,
	FieldStatus,
	FieldCurrentGate,
	FieldRetryCount,
	FieldAcceptanceCriteriaPassed,
	FieldAcceptanceCriteriaTotal,
	FieldFilesCreated,
	FieldFilesModified,
	FieldBranchName,
	FieldCommitSha,
	FieldPrURL,
	FieldTestsPassing,
	FieldCoverageAchieved,
	FieldErrorMessage,
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
	// StoryIDValidator is a validator for the "story_id" field. It is called by the builders before save.
	StoryIDValidator func(string) error
	// DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	DomainValidator func(string) error
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultStoryPoints holds the default value on creation for the "story_points" field.
	DefaultStoryPoints int
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	RetryCountValidator func(int) error
	// DefaultAcceptanceCriteriaPassed holds the default value on creation for the "acceptance_criteria_passed" field.
	DefaultAcceptanceCriteriaPassed int
	// DefaultAcceptanceCriteriaTotal holds the default value on creation for the "acceptance_criteria_total" field.
	DefaultAcceptanceCriteriaTotal int
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
	StatusReview     Status = "review"
	StatusComplete   Status = "complete"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusReview, StatusComplete, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("storyexecution: invalid enum value for status field: %q", s)
	}
}

// CurrentGate defines the type for the "current_gate" enum field.
type CurrentGate string

// CurrentGateGate0 is the default value of the CurrentGate enum.
const DefaultCurrentGate = CurrentGateGate0

// CurrentGate values.
const (
	CurrentGateGate0  CurrentGate = "gate-0"
	CurrentGateGate1  CurrentGate = "gate-1"
	CurrentGateGate2  CurrentGate = "gate-2"
	CurrentGateGate3  CurrentGate = "gate-3"
	CurrentGateGate4  CurrentGate = "gate-4"
	CurrentGateGate5  CurrentGate = "gate-5"
	CurrentGateGate6  CurrentGate = "gate-6"
	CurrentGateGate7  CurrentGate = "gate-7"
	CurrentGateGate8  CurrentGate = "gate-8"
	CurrentGateGate9  CurrentGate = "gate-9"
	CurrentGateGate10 CurrentGate = "gate-10"
	CurrentGateGate11 CurrentGate = "gate-11"
	CurrentGateGate12 CurrentGate = "gate-12"
)

func (cg CurrentGate) String() string {
	return string(cg)
}

// CurrentGateValidator is a validator for the "current_gate" field enum values. It is called by the builders before save.
func CurrentGateValidator(cg CurrentGate) error {
	switch cg {
	case CurrentGateGate0, CurrentGateGate1, CurrentGateGate2, CurrentGateGate3, CurrentGateGate4, CurrentGateGate5, CurrentGateGate6, CurrentGateGate7, CurrentGateGate8, CurrentGateGate9, CurrentGateGate10, CurrentGateGate11, CurrentGateGate12:
		return nil
	default:
		return fmt.Errorf("storyexecution: invalid enum value for current_gate field: %q", cg)
	}
}

// OrderOption defines the ordering options for the StoryExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStoryID orders the results by the story_id field.
func ByStoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoryID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByAgent orders the results by the agent field.
func ByAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgent, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByStoryPoints orders the results by the story_points field.
func ByStoryPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoryPoints, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentGate orders the results by the current_gate field.
func ByCurrentGate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentGate, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByAcceptanceCriteriaPassed orders the results by the acceptance_criteria_passed field.
func ByAcceptanceCriteriaPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcceptanceCriteriaPassed, opts...).ToFunc()
}

// ByAcceptanceCriteriaTotal orders the results by the acceptance_criteria_total field.
func ByAcceptanceCriteriaTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcceptanceCriteriaTotal, opts...).ToFunc()
}

// ByBranchName orders the results by the branch_name field.
func ByBranchName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchName, opts...).ToFunc()
}

// ByCommitSha orders the results by the commit_sha field.
func ByCommitSha(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommitSha, opts...).ToFunc()
}

// ByPrURL orders the results by the pr_url field.
func ByPrURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrURL, opts...).ToFunc()
}

// ByTestsPassing orders the results by the tests_passing field.
func ByTestsPassing(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestsPassing, opts...).ToFunc()
}

// ByCoverageAchieved orders the results by the coverage_achieved field.
func ByCoverageAchieved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoverageAchieved, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
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
