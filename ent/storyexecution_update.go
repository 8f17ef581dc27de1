// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Boomerang-Apps/wave/ent/predicate"
	"github.com/Boomerang-Apps/wave/ent/storyexecution"
)

// StoryExecutionUpdate is the builder for updating StoryExecution entities.
type StoryExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *StoryExecutionMutation
}

// Where appends a list predicates to the StoryExecutionUpdate builder.
func (_u *StoryExecutionUpdate) Where(ps ...predicate.StoryExecution) *StoryExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStoryID sets the "story_id" field.
func (_u *StoryExecutionUpdate) SetStoryID(v string) *StoryExecutionUpdate {
	_u.mutation.SetStoryID(v)
	return _u
}

// SetNillableStoryID sets the "story_id" field if the given value is not nil.
func (_u *StoryExecutionUpdate) SetNillableStoryID(v *string) *StoryExecutionUpdate {
	if v != nil {
		_u.SetStoryID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *StoryExecutionUpdate) SetTitle(v string) *StoryExecutionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StoryExecutionUpdate) SetNillableTitle(v *string) *StoryExecutionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *StoryExecutionUpdate) ClearTitle() *StoryExecutionUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetDomain sets the "domain" field.
func (_u *StoryExecutionUpdate) SetDomain(v string) *StoryExecutionUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *StoryExecutionUpdate) SetNillableDomain(v *string) *StoryExecutionUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetAgent sets the "agent" field.
func (_u *StoryExecutionUpdate) SetAgent(v string) *StoryExecutionUpdate {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *StoryExecutionUpdate) SetNillableAgent(v *string) *StoryExecutionUpdate {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// ClearAgent clears the value of the "agent" field.
func (_u *StoryExecutionUpdate) ClearAgent() *StoryExecutionUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *StoryExecutionUpdate) SetPriority(v int) *StoryExecutionUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *StoryExecutionUpdate) SetNillablePriority(v *int) *StoryExecutionUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *StoryExecutionUpdate) AddPriority(v int) *StoryExecutionUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStoryPoints sets the "story_points" field.
func (_u *StoryExecutionUpdate) SetStoryPoints(v int) *StoryExecutionUpdate {
	_u.mutation.ResetStoryPoints()
	_u.mutation.SetStoryPoints(v)
	return _u
}

// SetNillableStoryPoints sets the "story_points" field if the given value is not nil.
func (_u *StoryExecutionUpdate) SetNillableStoryPoints(v *int) *StoryExecutionUpdate {
	if v != nil {
		_u.SetStoryPoints(*v)
	}
	return _u
}

// AddStoryPoints adds value to the "story_points" field.
func (_u *StoryExecutionUpdate) AddStoryPoints(v int) *StoryExecutionUpdate {
	_u.mutation.AddStoryPoints(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *StoryExecutionUpdate) SetStatus(v storyexecution.Status) *StoryExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StoryExecutionUpdate) SetNillableStatus(v *storyexecution.Status) *StoryExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentGate sets the "current_gate" field.
func (_u *StoryExecutionUpdate) SetCurrentGate(v storyexecution.CurrentGate) *StoryExecutionUpdate {
	_u.mutation.SetCurrentGate(v)
	return _u
}

// SetNillableCurrentGate sets the "current_gate" field if the given value is not nil.
func (_u *StoryExecutionUpdate) SetNillableCurrentGate(v *storyexecution.CurrentGate) *StoryExecutionUpdate {
	if v != nil {
		_u.SetCurrentGate(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *StoryExecutionUpdate) SetRetryCount(v int) *StoryExecutionUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *StoryExecutionUpdate) SetNillableRetryCount(v *int) *StoryExecutionUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *StoryExecutionUpdate) AddRetryCount(v int) *StoryExecutionUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetAcceptanceCriteriaPassed sets the "acceptance_criteria_passed" field.
func (_u *StoryExecutionUpdate) SetAcceptanceCriteriaPassed(v int) *StoryExecutionUpdate {
	_u.mutation.ResetAcceptanceCriteriaPassed()
	_u.mutation.SetAcceptanceCriteriaPassed(v)
	return _u
}

// SetNillableAcceptanceCriteriaPassed sets the "acceptance_criteria_passed" field if the given value is not nil.
func (_u *StoryExecutionUpdate) SetNillableAcceptanceCriteriaPassed(v *int) *StoryExecutionUpdate {
	if v != nil {
		_u.SetAcceptanceCriteriaPassed(*v)
	}
	return _u
}

// AddAcceptanceCriteriaPassed adds value to the "acceptance_criteria_passed" field.
func (_u *StoryExecutionUpdate) AddAcceptanceCriteriaPassed(v int) *StoryExecutionUpdate {
	_u.mutation.AddAcceptanceCriteriaPassed(v)
	return _u
}

// SetAcceptanceCriteriaTotal sets the "acceptance_criteria_total" field.
func (_u *StoryExecutionUpdate) SetAcceptanceCriteriaTotal(v int) *StoryExecutionUpdate {
	_u.mutation.ResetAcceptanceCriteriaTotal()
	_u.mutation.SetAcceptanceCriteriaTotal(v)
	return _u
}

// SetNillableAcceptanceCriteriaTotal sets the "acceptance_criteria_total" field if the given value is not nil.
func (_u *StoryExecutionUpdate) SetNillableAcceptanceCriteriaTotal(v *int) *StoryExecutionUpdate {
	if v != nil {
		_u.SetAcceptanceCriteriaTotal(*v)
	}
	return _u
}

// AddAcceptanceCriteriaTotal adds value to the "acceptance_criteria_total" field.
func (_u *StoryExecutionUpdate) AddAcceptanceCriteriaTotal(v int) *StoryExecutionUpdate {
	_u.mutation.AddAcceptanceCriteriaTotal(v)
	return _u
}

// SetFilesCreated sets the "files_created" field.
func (_u *StoryExecutionUpdate) SetFilesCreated(v []string) *StoryExecutionUpdate {
	_u.mutation.SetFilesCreated(v)
	return _u
}

// AppendFilesCreated appends value to the "files_created" field.
func (_u *StoryExecutionUpdate) AppendFilesCreated(v []string) *StoryExecutionUpdate {
	_u.mutation.AppendFilesCreated(v)
	return _u
}

// ClearFilesCreated clears the value of the "files_created" field.
func (_u *StoryExecutionUpdate) ClearFilesCreated() *StoryExecutionUpdate {
	_u.mutation.ClearFilesCreated()
	return _u
}

// SetFilesModified sets the "files_modified" field.
func (_u *StoryExecutionUpdate) SetFilesModified(v []string) *StoryExecutionUpdate {
	_u.mutation.SetFilesModified(v)
	return _u
}

// AppendFilesModified appends value to the "files_modified" field.
func (_u *StoryExecutionUpdate) AppendFilesModified(v []string) *StoryExecutionUpdate {
	_u.mutation.AppendFilesModified(v)
	return _u
}

// ClearFilesModified clears the value of the "files_modified" field.
func (_u *StoryExecutionUpdate) ClearFilesModified() *StoryExecutionUpdate {
	_u.mutation.ClearFilesModified()
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *StoryExecutionUpdate) SetBranchName(v string) *StoryExecutionUpdate {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *StoryExecutionUpdate) SetNillableBranchName(v *string) *StoryExecutionUpdate {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *StoryExecutionUpdate) ClearBranchName() *StoryExecutionUpdate {
	_u.mutation.ClearBranchName()
	return _u
}

// SetCommitSha sets the "commit_sha" field.
func (_u *StoryExecutionUpdate) SetCommitSha(v string) *StoryExecutionUpdate {
	_u.mutation.SetCommitSha(v)
	return _u
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_u *StoryExecutionUpdate) SetNillableCommitSha(v *string) *StoryExecutionUpdate {
	if v != nil {
		_u.SetCommitSha(*v)
	}
	return _u
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (_u *StoryExecutionUpdate) ClearCommitSha() *StoryExecutionUpdate {
	_u.mutation.ClearCommitSha()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *StoryExecutionUpdate) SetPrURL(v string) *StoryExecutionUpdate {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *StoryExecutionUpdate) SetNillablePrURL(v *string) *StoryExecutionUpdate {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *StoryExecutionUpdate) ClearPrURL() *StoryExecutionUpdate {
	_u.mutation.ClearPrURL()
	return _u
}

// SetTestsPassing sets the "tests_passing" field.
func (_u *StoryExecutionUpdate) SetTestsPassing(v bool) *StoryExecutionUpdate {
	_u.mutation.SetTestsPassing(v)
	return _u
}

// SetNillableTestsPassing sets the "tests_passing" field if the given value is not nil.
func (_u *StoryExecutionUpdate) SetNillableTestsPassing(v *bool) *StoryExecutionUpdate {
	if v != nil {
		_u.SetTestsPassing(*v)
	}
	return _u
}

// ClearTestsPassing clears the value of the "tests_passing" field.
func (_u *StoryExecutionUpdate) ClearTestsPassing() *StoryExecutionUpdate {
	_u.mutation.ClearTestsPassing()
	return _u
}

// SetCoverageAchieved sets the "coverage_achieved" field.
func (_u *StoryExecutionUpdate) SetCoverageAchieved(v float64) *StoryExecutionUpdate {
	_u.mutation.ResetCoverageAchieved()
	_u.mutation.SetCoverageAchieved(v)
	return _u
}

// SetNillableCoverageAchieved sets the "coverage_achieved" field if the given value is not nil.
func (_u *StoryExecutionUpdate) SetNillableCoverageAchieved(v *float64) *StoryExecutionUpdate {
	if v != nil {
		_u.SetCoverageAchieved(*v)
	}
	return _u
}

// AddCoverageAchieved adds value to the "coverage_achieved" field.
func (_u *StoryExecutionUpdate) AddCoverageAchieved(v float64) *StoryExecutionUpdate {
	_u.mutation.AddCoverageAchieved(v)
	return _u
}

// ClearCoverageAchieved clears the value of the "coverage_achieved" field.
func (_u *StoryExecutionUpdate) ClearCoverageAchieved() *StoryExecutionUpdate {
	_u.mutation.ClearCoverageAchieved()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StoryExecutionUpdate) SetErrorMessage(v string) *StoryExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StoryExecutionUpdate) SetNillableErrorMessage(v *string) *StoryExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StoryExecutionUpdate) ClearErrorMessage() *StoryExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetMetaData sets the "meta_data" field.
func (_u *StoryExecutionUpdate) SetMetaData(v map[string]interface{}) *StoryExecutionUpdate {
	_u.mutation.SetMetaData(v)
	return _u
}

// ClearMetaData clears the value of the "meta_data" field.
func (_u *StoryExecutionUpdate) ClearMetaData() *StoryExecutionUpdate {
	_u.mutation.ClearMetaData()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StoryExecutionUpdate) SetStartedAt(v time.Time) *StoryExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StoryExecutionUpdate) SetNillableStartedAt(v *time.Time) *StoryExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StoryExecutionUpdate) ClearStartedAt() *StoryExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StoryExecutionUpdate) SetCompletedAt(v time.Time) *StoryExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StoryExecutionUpdate) SetNillableCompletedAt(v *time.Time) *StoryExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StoryExecutionUpdate) ClearCompletedAt() *StoryExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *StoryExecutionUpdate) SetFailedAt(v time.Time) *StoryExecutionUpdate {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *StoryExecutionUpdate) SetNillableFailedAt(v *time.Time) *StoryExecutionUpdate {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *StoryExecutionUpdate) ClearFailedAt() *StoryExecutionUpdate {
	_u.mutation.ClearFailedAt()
	return _u
}

// Mutation returns the StoryExecutionMutation object of the builder.
func (_u *StoryExecutionUpdate) Mutation() *StoryExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StoryExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StoryExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryExecutionUpdate) check() error {
	if v, ok := _u.mutation.StoryID(); ok {
		if err := storyexecution.StoryIDValidator(v); err != nil {
			return &ValidationError{Name: "story_id", err: fmt.Errorf(`ent: validator failed for field "StoryExecution.story_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := storyexecution.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "StoryExecution.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := storyexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StoryExecution.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentGate(); ok {
		if err := storyexecution.CurrentGateValidator(v); err != nil {
			return &ValidationError{Name: "current_gate", err: fmt.Errorf(`ent: validator failed for field "StoryExecution.current_gate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := storyexecution.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "StoryExecution.retry_count": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StoryExecution.session"`)
	}
	return nil
}

func (_u *StoryExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(storyexecution.Table, storyexecution.Columns, sqlgraph.NewFieldSpec(storyexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StoryID(); ok {
		_spec.SetField(storyexecution.FieldStoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(storyexecution.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(storyexecution.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(storyexecution.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(storyexecution.FieldAgent, field.TypeString, value)
	}
	if _u.mutation.AgentCleared() {
		_spec.ClearField(storyexecution.FieldAgent, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(storyexecution.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(storyexecution.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StoryPoints(); ok {
		_spec.SetField(storyexecution.FieldStoryPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStoryPoints(); ok {
		_spec.AddField(storyexecution.FieldStoryPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(storyexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentGate(); ok {
		_spec.SetField(storyexecution.FieldCurrentGate, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(storyexecution.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(storyexecution.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AcceptanceCriteriaPassed(); ok {
		_spec.SetField(storyexecution.FieldAcceptanceCriteriaPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAcceptanceCriteriaPassed(); ok {
		_spec.AddField(storyexecution.FieldAcceptanceCriteriaPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AcceptanceCriteriaTotal(); ok {
		_spec.SetField(storyexecution.FieldAcceptanceCriteriaTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAcceptanceCriteriaTotal(); ok {
		_spec.AddField(storyexecution.FieldAcceptanceCriteriaTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FilesCreated(); ok {
		_spec.SetField(storyexecution.FieldFilesCreated, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFilesCreated(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, storyexecution.FieldFilesCreated, value)
		})
	}
	if _u.mutation.FilesCreatedCleared() {
		_spec.ClearField(storyexecution.FieldFilesCreated, field.TypeJSON)
	}
	if value, ok := _u.mutation.FilesModified(); ok {
		_spec.SetField(storyexecution.FieldFilesModified, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFilesModified(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, storyexecution.FieldFilesModified, value)
		})
	}
	if _u.mutation.FilesModifiedCleared() {
		_spec.ClearField(storyexecution.FieldFilesModified, field.TypeJSON)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(storyexecution.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(storyexecution.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.CommitSha(); ok {
		_spec.SetField(storyexecution.FieldCommitSha, field.TypeString, value)
	}
	if _u.mutation.CommitShaCleared() {
		_spec.ClearField(storyexecution.FieldCommitSha, field.TypeString)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(storyexecution.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(storyexecution.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.TestsPassing(); ok {
		_spec.SetField(storyexecution.FieldTestsPassing, field.TypeBool, value)
	}
	if _u.mutation.TestsPassingCleared() {
		_spec.ClearField(storyexecution.FieldTestsPassing, field.TypeBool)
	}
	if value, ok := _u.mutation.CoverageAchieved(); ok {
		_spec.SetField(storyexecution.FieldCoverageAchieved, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoverageAchieved(); ok {
		_spec.AddField(storyexecution.FieldCoverageAchieved, field.TypeFloat64, value)
	}
	if _u.mutation.CoverageAchievedCleared() {
		_spec.ClearField(storyexecution.FieldCoverageAchieved, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(storyexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(storyexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.MetaData(); ok {
		_spec.SetField(storyexecution.FieldMetaData, field.TypeJSON, value)
	}
	if _u.mutation.MetaDataCleared() {
		_spec.ClearField(storyexecution.FieldMetaData, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(storyexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(storyexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(storyexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(storyexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(storyexecution.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(storyexecution.FieldFailedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storyexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StoryExecutionUpdateOne is the builder for updating a single StoryExecution entity.
type StoryExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StoryExecutionMutation
}

// SetStoryID sets the "story_id" field.
func (_u *StoryExecutionUpdateOne) SetStoryID(v string) *StoryExecutionUpdateOne {
	_u.mutation.SetStoryID(v)
	return _u
}

// SetNillableStoryID sets the "story_id" field if the given value is not nil.
func (_u *StoryExecutionUpdateOne) SetNillableStoryID(v *string) *StoryExecutionUpdateOne {
	if v != nil {
		_u.SetStoryID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *StoryExecutionUpdateOne) SetTitle(v string) *StoryExecutionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StoryExecutionUpdateOne) SetNillableTitle(v *string) *StoryExecutionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *StoryExecutionUpdateOne) ClearTitle() *StoryExecutionUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetDomain sets the "domain" field.
func (_u *StoryExecutionUpdateOne) SetDomain(v string) *StoryExecutionUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *StoryExecutionUpdateOne) SetNillableDomain(v *string) *StoryExecutionUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetAgent sets the "agent" field.
func (_u *StoryExecutionUpdateOne) SetAgent(v string) *StoryExecutionUpdateOne {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *StoryExecutionUpdateOne) SetNillableAgent(v *string) *StoryExecutionUpdateOne {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// ClearAgent clears the value of the "agent" field.
func (_u *StoryExecutionUpdateOne) ClearAgent() *StoryExecutionUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *StoryExecutionUpdateOne) SetPriority(v int) *StoryExecutionUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *StoryExecutionUpdateOne) SetNillablePriority(v *int) *StoryExecutionUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *StoryExecutionUpdateOne) AddPriority(v int) *StoryExecutionUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStoryPoints sets the "story_points" field.
func (_u *StoryExecutionUpdateOne) SetStoryPoints(v int) *StoryExecutionUpdateOne {
	_u.mutation.ResetStoryPoints()
	_u.mutation.SetStoryPoints(v)
	return _u
}

// SetNillableStoryPoints sets the "story_points" field if the given value is not nil.
func (_u *StoryExecutionUpdateOne) SetNillableStoryPoints(v *int) *StoryExecutionUpdateOne {
	if v != nil {
		_u.SetStoryPoints(*v)
	}
	return _u
}

// AddStoryPoints adds value to the "story_points" field.
func (_u *StoryExecutionUpdateOne) AddStoryPoints(v int) *StoryExecutionUpdateOne {
	_u.mutation.AddStoryPoints(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *StoryExecutionUpdateOne) SetStatus(v storyexecution.Status) *StoryExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StoryExecutionUpdateOne) SetNillableStatus(v *storyexecution.Status) *StoryExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentGate sets the "current_gate" field.
func (_u *StoryExecutionUpdateOne) SetCurrentGate(v storyexecution.CurrentGate) *StoryExecutionUpdateOne {
	_u.mutation.SetCurrentGate(v)
	return _u
}

// SetNillableCurrentGate sets the "current_gate" field if the given value is not nil.
func (_u *StoryExecutionUpdateOne) SetNillableCurrentGate(v *storyexecution.CurrentGate) *StoryExecutionUpdateOne {
	if v != nil {
		_u.SetCurrentGate(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *StoryExecutionUpdateOne) SetRetryCount(v int) *StoryExecutionUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *StoryExecutionUpdateOne) SetNillableRetryCount(v *int) *StoryExecutionUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *StoryExecutionUpdateOne) AddRetryCount(v int) *StoryExecutionUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetAcceptanceCriteriaPassed sets the "acceptance_criteria_passed" field.
func (_u *StoryExecutionUpdateOne) SetAcceptanceCriteriaPassed(v int) *StoryExecutionUpdateOne {
	_u.mutation.ResetAcceptanceCriteriaPassed()
	_u.mutation.SetAcceptanceCriteriaPassed(v)
	return _u
}

// SetNillableAcceptanceCriteriaPassed sets the "acceptance_criteria_passed" field if the given value is not nil.
func (_u *StoryExecutionUpdateOne) SetNillableAcceptanceCriteriaPassed(v *int) *StoryExecutionUpdateOne {
	if v != nil {
		_u.SetAcceptanceCriteriaPassed(*v)
	}
	return _u
}

// AddAcceptanceCriteriaPassed adds value to the "acceptance_criteria_passed" field.
func (_u *StoryExecutionUpdateOne) AddAcceptanceCriteriaPassed(v int) *StoryExecutionUpdateOne {
	_u.mutation.AddAcceptanceCriteriaPassed(v)
	return _u
}

// SetAcceptanceCriteriaTotal sets the "acceptance_criteria_total" field.
func (_u *StoryExecutionUpdateOne) SetAcceptanceCriteriaTotal(v int) *StoryExecutionUpdateOne {
	_u.mutation.ResetAcceptanceCriteriaTotal()
	_u.mutation.SetAcceptanceCriteriaTotal(v)
	return _u
}

// SetNillableAcceptanceCriteriaTotal sets the "acceptance_criteria_total" field if the given value is not nil.
func (_u *StoryExecutionUpdateOne) SetNillableAcceptanceCriteriaTotal(v *int) *StoryExecutionUpdateOne {
	if v != nil {
		_u.SetAcceptanceCriteriaTotal(*v)
	}
	return _u
}

// AddAcceptanceCriteriaTotal adds value to the "acceptance_criteria_total" field.
func (_u *StoryExecutionUpdateOne) AddAcceptanceCriteriaTotal(v int) *StoryExecutionUpdateOne {
	_u.mutation.AddAcceptanceCriteriaTotal(v)
	return _u
}

// SetFilesCreated sets the "files_created" field.
func (_u *StoryExecutionUpdateOne) SetFilesCreated(v []string) *StoryExecutionUpdateOne {
	_u.mutation.SetFilesCreated(v)
	return _u
}

// AppendFilesCreated appends value to the "files_created" field.
func (_u *StoryExecutionUpdateOne) AppendFilesCreated(v []string) *StoryExecutionUpdateOne {
	_u.mutation.AppendFilesCreated(v)
	return _u
}

// ClearFilesCreated clears the value of the "files_created" field.
func (_u *StoryExecutionUpdateOne) ClearFilesCreated() *StoryExecutionUpdateOne {
	_u.mutation.ClearFilesCreated()
	return _u
}

// SetFilesModified sets the "files_modified" field.
func (_u *StoryExecutionUpdateOne) SetFilesModified(v []string) *StoryExecutionUpdateOne {
	_u.mutation.SetFilesModified(v)
	return _u
}

// AppendFilesModified appends value to the "files_modified" field.
func (_u *StoryExecutionUpdateOne) AppendFilesModified(v []string) *StoryExecutionUpdateOne {
	_u.mutation.AppendFilesModified(v)
	return _u
}

// ClearFilesModified clears the value of the "files_modified" field.
func (_u *StoryExecutionUpdateOne) ClearFilesModified() *StoryExecutionUpdateOne {
	_u.mutation.ClearFilesModified()
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *StoryExecutionUpdateOne) SetBranchName(v string) *StoryExecutionUpdateOne {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *StoryExecutionUpdateOne) SetNillableBranchName(v *string) *StoryExecutionUpdateOne {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *StoryExecutionUpdateOne) ClearBranchName() *StoryExecutionUpdateOne {
	_u.mutation.ClearBranchName()
	return _u
}

// SetCommitSha sets the "commit_sha" field.
func (_u *StoryExecutionUpdateOne) SetCommitSha(v string) *StoryExecutionUpdateOne {
	_u.mutation.SetCommitSha(v)
	return _u
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_u *StoryExecutionUpdateOne) SetNillableCommitSha(v *string) *StoryExecutionUpdateOne {
	if v != nil {
		_u.SetCommitSha(*v)
	}
	return _u
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (_u *StoryExecutionUpdateOne) ClearCommitSha() *StoryExecutionUpdateOne {
	_u.mutation.ClearCommitSha()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *StoryExecutionUpdateOne) SetPrURL(v string) *StoryExecutionUpdateOne {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *StoryExecutionUpdateOne) SetNillablePrURL(v *string) *StoryExecutionUpdateOne {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *StoryExecutionUpdateOne) ClearPrURL() *StoryExecutionUpdateOne {
	_u.mutation.ClearPrURL()
	return _u
}

// SetTestsPassing sets the "tests_passing" field.
func (_u *StoryExecutionUpdateOne) SetTestsPassing(v bool) *StoryExecutionUpdateOne {
	_u.mutation.SetTestsPassing(v)
	return _u
}

// SetNillableTestsPassing sets the "tests_passing" field if the given value is not nil.
func (_u *StoryExecutionUpdateOne) SetNillableTestsPassing(v *bool) *StoryExecutionUpdateOne {
	if v != nil {
		_u.SetTestsPassing(*v)
	}
	return _u
}

// ClearTestsPassing clears the value of the "tests_passing" field.
func (_u *StoryExecutionUpdateOne) ClearTestsPassing() *StoryExecutionUpdateOne {
	_u.mutation.ClearTestsPassing()
	return _u
}

// SetCoverageAchieved sets the "coverage_achieved" field.
func (_u *StoryExecutionUpdateOne) SetCoverageAchieved(v float64) *StoryExecutionUpdateOne {
	_u.mutation.ResetCoverageAchieved()
	_u.mutation.SetCoverageAchieved(v)
	return _u
}

// SetNillableCoverageAchieved sets the "coverage_achieved" field if the given value is not nil.
func (_u *StoryExecutionUpdateOne) SetNillableCoverageAchieved(v *float64) *StoryExecutionUpdateOne {
	if v != nil {
		_u.SetCoverageAchieved(*v)
	}
	return _u
}

// AddCoverageAchieved adds value to the "coverage_achieved" field.
func (_u *StoryExecutionUpdateOne) AddCoverageAchieved(v float64) *StoryExecutionUpdateOne {
	_u.mutation.AddCoverageAchieved(v)
	return _u
}

// ClearCoverageAchieved clears the value of the "coverage_achieved" field.
func (_u *StoryExecutionUpdateOne) ClearCoverageAchieved() *StoryExecutionUpdateOne {
	_u.mutation.ClearCoverageAchieved()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StoryExecutionUpdateOne) SetErrorMessage(v string) *StoryExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StoryExecutionUpdateOne) SetNillableErrorMessage(v *string) *StoryExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StoryExecutionUpdateOne) ClearErrorMessage() *StoryExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetMetaData sets the "meta_data" field.
func (_u *StoryExecutionUpdateOne) SetMetaData(v map[string]interface{}) *StoryExecutionUpdateOne {
	_u.mutation.SetMetaData(v)
	return _u
}

// ClearMetaData clears the value of the "meta_data" field.
func (_u *StoryExecutionUpdateOne) ClearMetaData() *StoryExecutionUpdateOne {
	_u.mutation.ClearMetaData()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StoryExecutionUpdateOne) SetStartedAt(v time.Time) *StoryExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StoryExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *StoryExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StoryExecutionUpdateOne) ClearStartedAt() *StoryExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StoryExecutionUpdateOne) SetCompletedAt(v time.Time) *StoryExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StoryExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *StoryExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StoryExecutionUpdateOne) ClearCompletedAt() *StoryExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *StoryExecutionUpdateOne) SetFailedAt(v time.Time) *StoryExecutionUpdateOne {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *StoryExecutionUpdateOne) SetNillableFailedAt(v *time.Time) *StoryExecutionUpdateOne {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *StoryExecutionUpdateOne) ClearFailedAt() *StoryExecutionUpdateOne {
	_u.mutation.ClearFailedAt()
	return _u
}

// Mutation returns the StoryExecutionMutation object of the builder.
func (_u *StoryExecutionUpdateOne) Mutation() *StoryExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the StoryExecutionUpdate builder.
func (_u *StoryExecutionUpdateOne) Where(ps ...predicate.StoryExecution) *StoryExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StoryExecutionUpdateOne) Select(field string, fields ...string) *StoryExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StoryExecution entity.
func (_u *StoryExecutionUpdateOne) Save(ctx context.Context) (*StoryExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryExecutionUpdateOne) SaveX(ctx context.Context) *StoryExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StoryExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.StoryID(); ok {
		if err := storyexecution.StoryIDValidator(v); err != nil {
			return &ValidationError{Name: "story_id", err: fmt.Errorf(`ent: validator failed for field "StoryExecution.story_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := storyexecution.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "StoryExecution.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := storyexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StoryExecution.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentGate(); ok {
		if err := storyexecution.CurrentGateValidator(v); err != nil {
			return &ValidationError{Name: "current_gate", err: fmt.Errorf(`ent: validator failed for field "StoryExecution.current_gate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := storyexecution.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "StoryExecution.retry_count": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StoryExecution.session"`)
	}
	return nil
}

func (_u *StoryExecutionUpdateOne) sqlSave(ctx context.Context) (_node *StoryExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(storyexecution.Table, storyexecution.Columns, sqlgraph.NewFieldSpec(storyexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StoryExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, storyexecution.FieldID)
		for _, f := range fields {
			if !storyexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != storyexecution.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StoryID(); ok {
		_spec.SetField(storyexecution.FieldStoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(storyexecution.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(storyexecution.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(storyexecution.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(storyexecution.FieldAgent, field.TypeString, value)
	}
	if _u.mutation.AgentCleared() {
		_spec.ClearField(storyexecution.FieldAgent, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(storyexecution.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(storyexecution.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StoryPoints(); ok {
		_spec.SetField(storyexecution.FieldStoryPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStoryPoints(); ok {
		_spec.AddField(storyexecution.FieldStoryPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(storyexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentGate(); ok {
		_spec.SetField(storyexecution.FieldCurrentGate, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(storyexecution.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(storyexecution.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AcceptanceCriteriaPassed(); ok {
		_spec.SetField(storyexecution.FieldAcceptanceCriteriaPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAcceptanceCriteriaPassed(); ok {
		_spec.AddField(storyexecution.FieldAcceptanceCriteriaPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AcceptanceCriteriaTotal(); ok {
		_spec.SetField(storyexecution.FieldAcceptanceCriteriaTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAcceptanceCriteriaTotal(); ok {
		_spec.AddField(storyexecution.FieldAcceptanceCriteriaTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FilesCreated(); ok {
		_spec.SetField(storyexecution.FieldFilesCreated, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFilesCreated(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, storyexecution.FieldFilesCreated, value)
		})
	}
	if _u.mutation.FilesCreatedCleared() {
		_spec.ClearField(storyexecution.FieldFilesCreated, field.TypeJSON)
	}
	if value, ok := _u.mutation.FilesModified(); ok {
		_spec.SetField(storyexecution.FieldFilesModified, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFilesModified(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, storyexecution.FieldFilesModified, value)
		})
	}
	if _u.mutation.FilesModifiedCleared() {
		_spec.ClearField(storyexecution.FieldFilesModified, field.TypeJSON)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(storyexecution.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(storyexecution.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.CommitSha(); ok {
		_spec.SetField(storyexecution.FieldCommitSha, field.TypeString, value)
	}
	if _u.mutation.CommitShaCleared() {
		_spec.ClearField(storyexecution.FieldCommitSha, field.TypeString)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(storyexecution.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(storyexecution.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.TestsPassing(); ok {
		_spec.SetField(storyexecution.FieldTestsPassing, field.TypeBool, value)
	}
	if _u.mutation.TestsPassingCleared() {
		_spec.ClearField(storyexecution.FieldTestsPassing, field.TypeBool)
	}
	if value, ok := _u.mutation.CoverageAchieved(); ok {
		_spec.SetField(storyexecution.FieldCoverageAchieved, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoverageAchieved(); ok {
		_spec.AddField(storyexecution.FieldCoverageAchieved, field.TypeFloat64, value)
	}
	if _u.mutation.CoverageAchievedCleared() {
		_spec.ClearField(storyexecution.FieldCoverageAchieved, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(storyexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(storyexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.MetaData(); ok {
		_spec.SetField(storyexecution.FieldMetaData, field.TypeJSON, value)
	}
	if _u.mutation.MetaDataCleared() {
		_spec.ClearField(storyexecution.FieldMetaData, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(storyexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(storyexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(storyexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(storyexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(storyexecution.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(storyexecution.FieldFailedAt, field.TypeTime)
	}
	_node = &StoryExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storyexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
