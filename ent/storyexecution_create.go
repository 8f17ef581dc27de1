// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Boomerang-Apps/wave/ent/session"
	"github.com/Boomerang-Apps/wave/ent/storyexecution"
)

// StoryExecutionCreate is the builder for creating a StoryExecution entity.
type StoryExecutionCreate struct {
	config
	mutation *StoryExecutionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *StoryExecutionCreate) SetSessionID(v string) *StoryExecutionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStoryID sets the "story_id" field.
func (_c *StoryExecutionCreate) SetStoryID(v string) *StoryExecutionCreate {
	_c.mutation.SetStoryID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *StoryExecutionCreate) SetTitle(v string) *StoryExecutionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *StoryExecutionCreate) SetNillableTitle(v *string) *StoryExecutionCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetDomain sets the "domain" field.
func (_c *StoryExecutionCreate) SetDomain(v string) *StoryExecutionCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetAgent sets the "agent" field.
func (_c *StoryExecutionCreate) SetAgent(v string) *StoryExecutionCreate {
	_c.mutation.SetAgent(v)
	return _c
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_c *StoryExecutionCreate) SetNillableAgent(v *string) *StoryExecutionCreate {
	if v != nil {
		_c.SetAgent(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *StoryExecutionCreate) SetPriority(v int) *StoryExecutionCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *StoryExecutionCreate) SetNillablePriority(v *int) *StoryExecutionCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStoryPoints sets the "story_points" field.
func (_c *StoryExecutionCreate) SetStoryPoints(v int) *StoryExecutionCreate {
	_c.mutation.SetStoryPoints(v)
	return _c
}

// SetNillableStoryPoints sets the "story_points" field if the given value is not nil.
func (_c *StoryExecutionCreate) SetNillableStoryPoints(v *int) *StoryExecutionCreate {
	if v != nil {
		_c.SetStoryPoints(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StoryExecutionCreate) SetStatus(v storyexecution.Status) *StoryExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StoryExecutionCreate) SetNillableStatus(v *storyexecution.Status) *StoryExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentGate sets the "current_gate" field.
func (_c *StoryExecutionCreate) SetCurrentGate(v storyexecution.CurrentGate) *StoryExecutionCreate {
	_c.mutation.SetCurrentGate(v)
	return _c
}

// SetNillableCurrentGate sets the "current_gate" field if the given value is not nil.
func (_c *StoryExecutionCreate) SetNillableCurrentGate(v *storyexecution.CurrentGate) *StoryExecutionCreate {
	if v != nil {
		_c.SetCurrentGate(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *StoryExecutionCreate) SetRetryCount(v int) *StoryExecutionCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *StoryExecutionCreate) SetNillableRetryCount(v *int) *StoryExecutionCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetAcceptanceCriteriaPassed sets the "acceptance_criteria_passed" field.
func (_c *StoryExecutionCreate) SetAcceptanceCriteriaPassed(v int) *StoryExecutionCreate {
	_c.mutation.SetAcceptanceCriteriaPassed(v)
	return _c
}

// SetNillableAcceptanceCriteriaPassed sets the "acceptance_criteria_passed" field if the given value is not nil.
func (_c *StoryExecutionCreate) SetNillableAcceptanceCriteriaPassed(v *int) *StoryExecutionCreate {
	if v != nil {
		_c.SetAcceptanceCriteriaPassed(*v)
	}
	return _c
}

// SetAcceptanceCriteriaTotal sets the "acceptance_criteria_total" field.
func (_c *StoryExecutionCreate) SetAcceptanceCriteriaTotal(v int) *StoryExecutionCreate {
	_c.mutation.SetAcceptanceCriteriaTotal(v)
	return _c
}

// SetNillableAcceptanceCriteriaTotal sets the "acceptance_criteria_total" field if the given value is not nil.
func (_c *StoryExecutionCreate) SetNillableAcceptanceCriteriaTotal(v *int) *StoryExecutionCreate {
	if v != nil {
		_c.SetAcceptanceCriteriaTotal(*v)
	}
	return _c
}

// SetFilesCreated sets the "files_created" field.
func (_c *StoryExecutionCreate) SetFilesCreated(v []string) *StoryExecutionCreate {
	_c.mutation.SetFilesCreated(v)
	return _c
}

// SetFilesModified sets the "files_modified" field.
func (_c *StoryExecutionCreate) SetFilesModified(v []string) *StoryExecutionCreate {
	_c.mutation.SetFilesModified(v)
	return _c
}

// SetBranchName sets the "branch_name" field.
func (_c *StoryExecutionCreate) SetBranchName(v string) *StoryExecutionCreate {
	_c.mutation.SetBranchName(v)
	return _c
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_c *StoryExecutionCreate) SetNillableBranchName(v *string) *StoryExecutionCreate {
	if v != nil {
		_c.SetBranchName(*v)
	}
	return _c
}

// SetCommitSha sets the "commit_sha" field.
func (_c *StoryExecutionCreate) SetCommitSha(v string) *StoryExecutionCreate {
	_c.mutation.SetCommitSha(v)
	return _c
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_c *StoryExecutionCreate) SetNillableCommitSha(v *string) *StoryExecutionCreate {
	if v != nil {
		_c.SetCommitSha(*v)
	}
	return _c
}

// SetPrURL sets the "pr_url" field.
func (_c *StoryExecutionCreate) SetPrURL(v string) *StoryExecutionCreate {
	_c.mutation.SetPrURL(v)
	return _c
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_c *StoryExecutionCreate) SetNillablePrURL(v *string) *StoryExecutionCreate {
	if v != nil {
		_c.SetPrURL(*v)
	}
	return _c
}

// SetTestsPassing sets the "tests_passing" field.
func (_c *StoryExecutionCreate) SetTestsPassing(v bool) *StoryExecutionCreate {
	_c.mutation.SetTestsPassing(v)
	return _c
}

// SetNillableTestsPassing sets the "tests_passing" field if the given value is not nil.
func (_c *StoryExecutionCreate) SetNillableTestsPassing(v *bool) *StoryExecutionCreate {
	if v != nil {
		_c.SetTestsPassing(*v)
	}
	return _c
}

// SetCoverageAchieved sets the "coverage_achieved" field.
func (_c *StoryExecutionCreate) SetCoverageAchieved(v float64) *StoryExecutionCreate {
	_c.mutation.SetCoverageAchieved(v)
	return _c
}

// SetNillableCoverageAchieved sets the "coverage_achieved" field if the given value is not nil.
func (_c *StoryExecutionCreate) SetNillableCoverageAchieved(v *float64) *StoryExecutionCreate {
	if v != nil {
		_c.SetCoverageAchieved(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *StoryExecutionCreate) SetErrorMessage(v string) *StoryExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *StoryExecutionCreate) SetNillableErrorMessage(v *string) *StoryExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetMetaData sets the "meta_data" field.
func (_c *StoryExecutionCreate) SetMetaData(v map[string]interface{}) *StoryExecutionCreate {
	_c.mutation.SetMetaData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StoryExecutionCreate) SetCreatedAt(v time.Time) *StoryExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StoryExecutionCreate) SetNillableCreatedAt(v *time.Time) *StoryExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StoryExecutionCreate) SetStartedAt(v time.Time) *StoryExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StoryExecutionCreate) SetNillableStartedAt(v *time.Time) *StoryExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StoryExecutionCreate) SetCompletedAt(v time.Time) *StoryExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StoryExecutionCreate) SetNillableCompletedAt(v *time.Time) *StoryExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetFailedAt sets the "failed_at" field.
func (_c *StoryExecutionCreate) SetFailedAt(v time.Time) *StoryExecutionCreate {
	_c.mutation.SetFailedAt(v)
	return _c
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_c *StoryExecutionCreate) SetNillableFailedAt(v *time.Time) *StoryExecutionCreate {
	if v != nil {
		_c.SetFailedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StoryExecutionCreate) SetID(v string) *StoryExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *StoryExecutionCreate) SetSession(v *Session) *StoryExecutionCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the StoryExecutionMutation object of the builder.
func (_c *StoryExecutionCreate) Mutation() *StoryExecutionMutation {
	return _c.mutation
}

// Save creates the StoryExecution in the database.
func (_c *StoryExecutionCreate) Save(ctx context.Context) (*StoryExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StoryExecutionCreate) SaveX(ctx context.Context) *StoryExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StoryExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StoryExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StoryExecutionCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := storyexecution.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.StoryPoints(); !ok {
		v := storyexecution.DefaultStoryPoints
		_c.mutation.SetStoryPoints(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := storyexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CurrentGate(); !ok {
		v := storyexecution.DefaultCurrentGate
		_c.mutation.SetCurrentGate(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := storyexecution.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.AcceptanceCriteriaPassed(); !ok {
		v := storyexecution.DefaultAcceptanceCriteriaPassed
		_c.mutation.SetAcceptanceCriteriaPassed(v)
	}
	if _, ok := _c.mutation.AcceptanceCriteriaTotal(); !ok {
		v := storyexecution.DefaultAcceptanceCriteriaTotal
		_c.mutation.SetAcceptanceCriteriaTotal(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := storyexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StoryExecutionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "StoryExecution.session_id"`)}
	}
	if _, ok := _c.mutation.StoryID(); !ok {
		return &ValidationError{Name: "story_id", err: errors.New(`ent: missing required field "StoryExecution.story_id"`)}
	}
	if v, ok := _c.mutation.StoryID(); ok {
		if err := storyexecution.StoryIDValidator(v); err != nil {
			return &ValidationError{Name: "story_id", err: fmt.Errorf(`ent: validator failed for field "StoryExecution.story_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "StoryExecution.domain"`)}
	}
	if v, ok := _c.mutation.Domain(); ok {
		if err := storyexecution.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "StoryExecution.domain": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "StoryExecution.priority"`)}
	}
	if _, ok := _c.mutation.StoryPoints(); !ok {
		return &ValidationError{Name: "story_points", err: errors.New(`ent: missing required field "StoryExecution.story_points"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StoryExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := storyexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StoryExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentGate(); !ok {
		return &ValidationError{Name: "current_gate", err: errors.New(`ent: missing required field "StoryExecution.current_gate"`)}
	}
	if v, ok := _c.mutation.CurrentGate(); ok {
		if err := storyexecution.CurrentGateValidator(v); err != nil {
			return &ValidationError{Name: "current_gate", err: fmt.Errorf(`ent: validator failed for field "StoryExecution.current_gate": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "StoryExecution.retry_count"`)}
	}
	if v, ok := _c.mutation.RetryCount(); ok {
		if err := storyexecution.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "StoryExecution.retry_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AcceptanceCriteriaPassed(); !ok {
		return &ValidationError{Name: "acceptance_criteria_passed", err: errors.New(`ent: missing required field "StoryExecution.acceptance_criteria_passed"`)}
	}
	if _, ok := _c.mutation.AcceptanceCriteriaTotal(); !ok {
		return &ValidationError{Name: "acceptance_criteria_total", err: errors.New(`ent: missing required field "StoryExecution.acceptance_criteria_total"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StoryExecution.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "StoryExecution.session"`)}
	}
	return nil
}

func (_c *StoryExecutionCreate) sqlSave(ctx context.Context) (*StoryExecution, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected StoryExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StoryExecutionCreate) createSpec() (*StoryExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &StoryExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(storyexecution.Table, sqlgraph.NewFieldSpec(storyexecution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StoryID(); ok {
		_spec.SetField(storyexecution.FieldStoryID, field.TypeString, value)
		_node.StoryID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(storyexecution.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(storyexecution.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Agent(); ok {
		_spec.SetField(storyexecution.FieldAgent, field.TypeString, value)
		_node.Agent = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(storyexecution.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.StoryPoints(); ok {
		_spec.SetField(storyexecution.FieldStoryPoints, field.TypeInt, value)
		_node.StoryPoints = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(storyexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentGate(); ok {
		_spec.SetField(storyexecution.FieldCurrentGate, field.TypeEnum, value)
		_node.CurrentGate = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(storyexecution.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.AcceptanceCriteriaPassed(); ok {
		_spec.SetField(storyexecution.FieldAcceptanceCriteriaPassed, field.TypeInt, value)
		_node.AcceptanceCriteriaPassed = value
	}
	if value, ok := _c.mutation.AcceptanceCriteriaTotal(); ok {
		_spec.SetField(storyexecution.FieldAcceptanceCriteriaTotal, field.TypeInt, value)
		_node.AcceptanceCriteriaTotal = value
	}
	if value, ok := _c.mutation.FilesCreated(); ok {
		_spec.SetField(storyexecution.FieldFilesCreated, field.TypeJSON, value)
		_node.FilesCreated = value
	}
	if value, ok := _c.mutation.FilesModified(); ok {
		_spec.SetField(storyexecution.FieldFilesModified, field.TypeJSON, value)
		_node.FilesModified = value
	}
	if value, ok := _c.mutation.BranchName(); ok {
		_spec.SetField(storyexecution.FieldBranchName, field.TypeString, value)
		_node.BranchName = &value
	}
	if value, ok := _c.mutation.CommitSha(); ok {
		_spec.SetField(storyexecution.FieldCommitSha, field.TypeString, value)
		_node.CommitSha = &value
	}
	if value, ok := _c.mutation.PrURL(); ok {
		_spec.SetField(storyexecution.FieldPrURL, field.TypeString, value)
		_node.PrURL = &value
	}
	if value, ok := _c.mutation.TestsPassing(); ok {
		_spec.SetField(storyexecution.FieldTestsPassing, field.TypeBool, value)
		_node.TestsPassing = &value
	}
	if value, ok := _c.mutation.CoverageAchieved(); ok {
		_spec.SetField(storyexecution.FieldCoverageAchieved, field.TypeFloat64, value)
		_node.CoverageAchieved = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(storyexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.MetaData(); ok {
		_spec.SetField(storyexecution.FieldMetaData, field.TypeJSON, value)
		_node.MetaData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(storyexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(storyexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(storyexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.FailedAt(); ok {
		_spec.SetField(storyexecution.FieldFailedAt, field.TypeTime, value)
		_node.FailedAt = &value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   storyexecution.SessionTable,
			Columns: []string{storyexecution.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StoryExecutionCreateBulk is the builder for creating many StoryExecution entities in bulk.
type StoryExecutionCreateBulk struct {
	config
	err      error
	builders []*StoryExecutionCreate
}

// Save creates the StoryExecution entities in the database.
func (_c *StoryExecutionCreateBulk) Save(ctx context.Context) ([]*StoryExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StoryExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StoryExecutionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StoryExecutionCreateBulk) SaveX(ctx context.Context) []*StoryExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StoryExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StoryExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
