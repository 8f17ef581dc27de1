// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Boomerang-Apps/wave/ent/checkpoint"
	"github.com/Boomerang-Apps/wave/ent/session"
	"github.com/Boomerang-Apps/wave/ent/storyexecution"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetProjectName sets the "project_name" field.
func (_c *SessionCreate) SetProjectName(v string) *SessionCreate {
	_c.mutation.SetProjectName(v)
	return _c
}

// SetWaveNumber sets the "wave_number" field.
func (_c *SessionCreate) SetWaveNumber(v int) *SessionCreate {
	_c.mutation.SetWaveNumber(v)
	return _c
}

// SetNillableWaveNumber sets the "wave_number" field if the given value is not nil.
func (_c *SessionCreate) SetNillableWaveNumber(v *int) *SessionCreate {
	if v != nil {
		_c.SetWaveNumber(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionCreate) SetStatus(v session.Status) *SessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStatus(v *session.Status) *SessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetBudgetUsd sets the "budget_usd" field.
func (_c *SessionCreate) SetBudgetUsd(v float64) *SessionCreate {
	_c.mutation.SetBudgetUsd(v)
	return _c
}

// SetNillableBudgetUsd sets the "budget_usd" field if the given value is not nil.
func (_c *SessionCreate) SetNillableBudgetUsd(v *float64) *SessionCreate {
	if v != nil {
		_c.SetBudgetUsd(*v)
	}
	return _c
}

// SetActualCostUsd sets the "actual_cost_usd" field.
func (_c *SessionCreate) SetActualCostUsd(v float64) *SessionCreate {
	_c.mutation.SetActualCostUsd(v)
	return _c
}

// SetNillableActualCostUsd sets the "actual_cost_usd" field if the given value is not nil.
func (_c *SessionCreate) SetNillableActualCostUsd(v *float64) *SessionCreate {
	if v != nil {
		_c.SetActualCostUsd(*v)
	}
	return _c
}

// SetTokenCount sets the "token_count" field.
func (_c *SessionCreate) SetTokenCount(v int64) *SessionCreate {
	_c.mutation.SetTokenCount(v)
	return _c
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTokenCount(v *int64) *SessionCreate {
	if v != nil {
		_c.SetTokenCount(*v)
	}
	return _c
}

// SetStoryCount sets the "story_count" field.
func (_c *SessionCreate) SetStoryCount(v int) *SessionCreate {
	_c.mutation.SetStoryCount(v)
	return _c
}

// SetNillableStoryCount sets the "story_count" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStoryCount(v *int) *SessionCreate {
	if v != nil {
		_c.SetStoryCount(*v)
	}
	return _c
}

// SetStoriesCompleted sets the "stories_completed" field.
func (_c *SessionCreate) SetStoriesCompleted(v int) *SessionCreate {
	_c.mutation.SetStoriesCompleted(v)
	return _c
}

// SetNillableStoriesCompleted sets the "stories_completed" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStoriesCompleted(v *int) *SessionCreate {
	if v != nil {
		_c.SetStoriesCompleted(*v)
	}
	return _c
}

// SetStoriesFailed sets the "stories_failed" field.
func (_c *SessionCreate) SetStoriesFailed(v int) *SessionCreate {
	_c.mutation.SetStoriesFailed(v)
	return _c
}

// SetNillableStoriesFailed sets the "stories_failed" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStoriesFailed(v *int) *SessionCreate {
	if v != nil {
		_c.SetStoriesFailed(*v)
	}
	return _c
}

// SetMetaData sets the "meta_data" field.
func (_c *SessionCreate) SetMetaData(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetMetaData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SessionCreate) SetStartedAt(v time.Time) *SessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStartedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SessionCreate) SetCompletedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCompletedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetFailedAt sets the "failed_at" field.
func (_c *SessionCreate) SetFailedAt(v time.Time) *SessionCreate {
	_c.mutation.SetFailedAt(v)
	return _c
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableFailedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetFailedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStoryExecutionIDs adds the "story_executions" edge to the StoryExecution entity by IDs.
func (_c *SessionCreate) AddStoryExecutionIDs(ids ...string) *SessionCreate {
	_c.mutation.AddStoryExecutionIDs(ids...)
	return _c
}

// AddStoryExecutions adds the "story_executions" edges to the StoryExecution entity.
func (_c *SessionCreate) AddStoryExecutions(v ...*StoryExecution) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStoryExecutionIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_c *SessionCreate) AddCheckpointIDs(ids ...string) *SessionCreate {
	_c.mutation.AddCheckpointIDs(ids...)
	return _c
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_c *SessionCreate) AddCheckpoints(v ...*Checkpoint) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCheckpointIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.WaveNumber(); !ok {
		v := session.DefaultWaveNumber
		_c.mutation.SetWaveNumber(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := session.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.BudgetUsd(); !ok {
		v := session.DefaultBudgetUsd
		_c.mutation.SetBudgetUsd(v)
	}
	if _, ok := _c.mutation.ActualCostUsd(); !ok {
		v := session.DefaultActualCostUsd
		_c.mutation.SetActualCostUsd(v)
	}
	if _, ok := _c.mutation.TokenCount(); !ok {
		v := session.DefaultTokenCount
		_c.mutation.SetTokenCount(v)
	}
	if _, ok := _c.mutation.StoryCount(); !ok {
		v := session.DefaultStoryCount
		_c.mutation.SetStoryCount(v)
	}
	if _, ok := _c.mutation.StoriesCompleted(); !ok {
		v := session.DefaultStoriesCompleted
		_c.mutation.SetStoriesCompleted(v)
	}
	if _, ok := _c.mutation.StoriesFailed(); !ok {
		v := session.DefaultStoriesFailed
		_c.mutation.SetStoriesFailed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.ProjectName(); !ok {
		return &ValidationError{Name: "project_name", err: errors.New(`ent: missing required field "Session.project_name"`)}
	}
	if v, ok := _c.mutation.ProjectName(); ok {
		if err := session.ProjectNameValidator(v); err != nil {
			return &ValidationError{Name: "project_name", err: fmt.Errorf(`ent: validator failed for field "Session.project_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WaveNumber(); !ok {
		return &ValidationError{Name: "wave_number", err: errors.New(`ent: missing required field "Session.wave_number"`)}
	}
	if v, ok := _c.mutation.WaveNumber(); ok {
		if err := session.WaveNumberValidator(v); err != nil {
			return &ValidationError{Name: "wave_number", err: fmt.Errorf(`ent: validator failed for field "Session.wave_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Session.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BudgetUsd(); !ok {
		return &ValidationError{Name: "budget_usd", err: errors.New(`ent: missing required field "Session.budget_usd"`)}
	}
	if v, ok := _c.mutation.BudgetUsd(); ok {
		if err := session.BudgetUsdValidator(v); err != nil {
			return &ValidationError{Name: "budget_usd", err: fmt.Errorf(`ent: validator failed for field "Session.budget_usd": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActualCostUsd(); !ok {
		return &ValidationError{Name: "actual_cost_usd", err: errors.New(`ent: missing required field "Session.actual_cost_usd"`)}
	}
	if _, ok := _c.mutation.TokenCount(); !ok {
		return &ValidationError{Name: "token_count", err: errors.New(`ent: missing required field "Session.token_count"`)}
	}
	if _, ok := _c.mutation.StoryCount(); !ok {
		return &ValidationError{Name: "story_count", err: errors.New(`ent: missing required field "Session.story_count"`)}
	}
	if _, ok := _c.mutation.StoriesCompleted(); !ok {
		return &ValidationError{Name: "stories_completed", err: errors.New(`ent: missing required field "Session.stories_completed"`)}
	}
	if _, ok := _c.mutation.StoriesFailed(); !ok {
		return &ValidationError{Name: "stories_failed", err: errors.New(`ent: missing required field "Session.stories_failed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Session.created_at"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
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
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectName(); ok {
		_spec.SetField(session.FieldProjectName, field.TypeString, value)
		_node.ProjectName = value
	}
	if value, ok := _c.mutation.WaveNumber(); ok {
		_spec.SetField(session.FieldWaveNumber, field.TypeInt, value)
		_node.WaveNumber = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.BudgetUsd(); ok {
		_spec.SetField(session.FieldBudgetUsd, field.TypeFloat64, value)
		_node.BudgetUsd = value
	}
	if value, ok := _c.mutation.ActualCostUsd(); ok {
		_spec.SetField(session.FieldActualCostUsd, field.TypeFloat64, value)
		_node.ActualCostUsd = value
	}
	if value, ok := _c.mutation.TokenCount(); ok {
		_spec.SetField(session.FieldTokenCount, field.TypeInt64, value)
		_node.TokenCount = value
	}
	if value, ok := _c.mutation.StoryCount(); ok {
		_spec.SetField(session.FieldStoryCount, field.TypeInt, value)
		_node.StoryCount = value
	}
	if value, ok := _c.mutation.StoriesCompleted(); ok {
		_spec.SetField(session.FieldStoriesCompleted, field.TypeInt, value)
		_node.StoriesCompleted = value
	}
	if value, ok := _c.mutation.StoriesFailed(); ok {
		_spec.SetField(session.FieldStoriesFailed, field.TypeInt, value)
		_node.StoriesFailed = value
	}
	if value, ok := _c.mutation.MetaData(); ok {
		_spec.SetField(session.FieldMetaData, field.TypeJSON, value)
		_node.MetaData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(session.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(session.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.FailedAt(); ok {
		_spec.SetField(session.FieldFailedAt, field.TypeTime, value)
		_node.FailedAt = &value
	}
	if nodes := _c.mutation.StoryExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.StoryExecutionsTable,
			Columns: []string{session.StoryExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(storyexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.CheckpointsTable,
			Columns: []string{session.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
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
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
