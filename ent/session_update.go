// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Boomerang-Apps/wave/ent/checkpoint"
	"github.com/Boomerang-Apps/wave/ent/predicate"
	"github.com/Boomerang-Apps/wave/ent/session"
	"github.com/Boomerang-Apps/wave/ent/storyexecution"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectName sets the "project_name" field.
func (_u *SessionUpdate) SetProjectName(v string) *SessionUpdate {
	_u.mutation.SetProjectName(v)
	return _u
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableProjectName(v *string) *SessionUpdate {
	if v != nil {
		_u.SetProjectName(*v)
	}
	return _u
}

// SetWaveNumber sets the "wave_number" field.
func (_u *SessionUpdate) SetWaveNumber(v int) *SessionUpdate {
	_u.mutation.ResetWaveNumber()
	_u.mutation.SetWaveNumber(v)
	return _u
}

// SetNillableWaveNumber sets the "wave_number" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableWaveNumber(v *int) *SessionUpdate {
	if v != nil {
		_u.SetWaveNumber(*v)
	}
	return _u
}

// AddWaveNumber adds value to the "wave_number" field.
func (_u *SessionUpdate) AddWaveNumber(v int) *SessionUpdate {
	_u.mutation.AddWaveNumber(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdate) SetStatus(v session.Status) *SessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatus(v *session.Status) *SessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBudgetUsd sets the "budget_usd" field.
func (_u *SessionUpdate) SetBudgetUsd(v float64) *SessionUpdate {
	_u.mutation.ResetBudgetUsd()
	_u.mutation.SetBudgetUsd(v)
	return _u
}

// SetNillableBudgetUsd sets the "budget_usd" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableBudgetUsd(v *float64) *SessionUpdate {
	if v != nil {
		_u.SetBudgetUsd(*v)
	}
	return _u
}

// AddBudgetUsd adds value to the "budget_usd" field.
func (_u *SessionUpdate) AddBudgetUsd(v float64) *SessionUpdate {
	_u.mutation.AddBudgetUsd(v)
	return _u
}

// SetActualCostUsd sets the "actual_cost_usd" field.
func (_u *SessionUpdate) SetActualCostUsd(v float64) *SessionUpdate {
	_u.mutation.ResetActualCostUsd()
	_u.mutation.SetActualCostUsd(v)
	return _u
}

// SetNillableActualCostUsd sets the "actual_cost_usd" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableActualCostUsd(v *float64) *SessionUpdate {
	if v != nil {
		_u.SetActualCostUsd(*v)
	}
	return _u
}

// AddActualCostUsd adds value to the "actual_cost_usd" field.
func (_u *SessionUpdate) AddActualCostUsd(v float64) *SessionUpdate {
	_u.mutation.AddActualCostUsd(v)
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *SessionUpdate) SetTokenCount(v int64) *SessionUpdate {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTokenCount(v *int64) *SessionUpdate {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *SessionUpdate) AddTokenCount(v int64) *SessionUpdate {
	_u.mutation.AddTokenCount(v)
	return _u
}

// SetStoryCount sets the "story_count" field.
func (_u *SessionUpdate) SetStoryCount(v int) *SessionUpdate {
	_u.mutation.ResetStoryCount()
	_u.mutation.SetStoryCount(v)
	return _u
}

// SetNillableStoryCount sets the "story_count" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStoryCount(v *int) *SessionUpdate {
	if v != nil {
		_u.SetStoryCount(*v)
	}
	return _u
}

// AddStoryCount adds value to the "story_count" field.
func (_u *SessionUpdate) AddStoryCount(v int) *SessionUpdate {
	_u.mutation.AddStoryCount(v)
	return _u
}

// SetStoriesCompleted sets the "stories_completed" field.
func (_u *SessionUpdate) SetStoriesCompleted(v int) *SessionUpdate {
	_u.mutation.ResetStoriesCompleted()
	_u.mutation.SetStoriesCompleted(v)
	return _u
}

// SetNillableStoriesCompleted sets the "stories_completed" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStoriesCompleted(v *int) *SessionUpdate {
	if v != nil {
		_u.SetStoriesCompleted(*v)
	}
	return _u
}

// AddStoriesCompleted adds value to the "stories_completed" field.
func (_u *SessionUpdate) AddStoriesCompleted(v int) *SessionUpdate {
	_u.mutation.AddStoriesCompleted(v)
	return _u
}

// SetStoriesFailed sets the "stories_failed" field.
func (_u *SessionUpdate) SetStoriesFailed(v int) *SessionUpdate {
	_u.mutation.ResetStoriesFailed()
	_u.mutation.SetStoriesFailed(v)
	return _u
}

// SetNillableStoriesFailed sets the "stories_failed" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStoriesFailed(v *int) *SessionUpdate {
	if v != nil {
		_u.SetStoriesFailed(*v)
	}
	return _u
}

// AddStoriesFailed adds value to the "stories_failed" field.
func (_u *SessionUpdate) AddStoriesFailed(v int) *SessionUpdate {
	_u.mutation.AddStoriesFailed(v)
	return _u
}

// SetMetaData sets the "meta_data" field.
func (_u *SessionUpdate) SetMetaData(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetMetaData(v)
	return _u
}

// ClearMetaData clears the value of the "meta_data" field.
func (_u *SessionUpdate) ClearMetaData() *SessionUpdate {
	_u.mutation.ClearMetaData()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionUpdate) SetStartedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStartedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SessionUpdate) ClearStartedAt() *SessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionUpdate) SetCompletedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCompletedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SessionUpdate) ClearCompletedAt() *SessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *SessionUpdate) SetFailedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableFailedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *SessionUpdate) ClearFailedAt() *SessionUpdate {
	_u.mutation.ClearFailedAt()
	return _u
}

// AddStoryExecutionIDs adds the "story_executions" edge to the StoryExecution entity by IDs.
func (_u *SessionUpdate) AddStoryExecutionIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddStoryExecutionIDs(ids...)
	return _u
}

// AddStoryExecutions adds the "story_executions" edges to the StoryExecution entity.
func (_u *SessionUpdate) AddStoryExecutions(v ...*StoryExecution) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStoryExecutionIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *SessionUpdate) AddCheckpointIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *SessionUpdate) AddCheckpoints(v ...*Checkpoint) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearStoryExecutions clears all "story_executions" edges to the StoryExecution entity.
func (_u *SessionUpdate) ClearStoryExecutions() *SessionUpdate {
	_u.mutation.ClearStoryExecutions()
	return _u
}

// RemoveStoryExecutionIDs removes the "story_executions" edge to StoryExecution entities by IDs.
func (_u *SessionUpdate) RemoveStoryExecutionIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveStoryExecutionIDs(ids...)
	return _u
}

// RemoveStoryExecutions removes "story_executions" edges to StoryExecution entities.
func (_u *SessionUpdate) RemoveStoryExecutions(v ...*StoryExecution) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStoryExecutionIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *SessionUpdate) ClearCheckpoints() *SessionUpdate {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *SessionUpdate) RemoveCheckpointIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *SessionUpdate) RemoveCheckpoints(v ...*Checkpoint) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.ProjectName(); ok {
		if err := session.ProjectNameValidator(v); err != nil {
			return &ValidationError{Name: "project_name", err: fmt.Errorf(`ent: validator failed for field "Session.project_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WaveNumber(); ok {
		if err := session.WaveNumberValidator(v); err != nil {
			return &ValidationError{Name: "wave_number", err: fmt.Errorf(`ent: validator failed for field "Session.wave_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BudgetUsd(); ok {
		if err := session.BudgetUsdValidator(v); err != nil {
			return &ValidationError{Name: "budget_usd", err: fmt.Errorf(`ent: validator failed for field "Session.budget_usd": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectName(); ok {
		_spec.SetField(session.FieldProjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.WaveNumber(); ok {
		_spec.SetField(session.FieldWaveNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWaveNumber(); ok {
		_spec.AddField(session.FieldWaveNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BudgetUsd(); ok {
		_spec.SetField(session.FieldBudgetUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBudgetUsd(); ok {
		_spec.AddField(session.FieldBudgetUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ActualCostUsd(); ok {
		_spec.SetField(session.FieldActualCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedActualCostUsd(); ok {
		_spec.AddField(session.FieldActualCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(session.FieldTokenCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(session.FieldTokenCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StoryCount(); ok {
		_spec.SetField(session.FieldStoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStoryCount(); ok {
		_spec.AddField(session.FieldStoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StoriesCompleted(); ok {
		_spec.SetField(session.FieldStoriesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStoriesCompleted(); ok {
		_spec.AddField(session.FieldStoriesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StoriesFailed(); ok {
		_spec.SetField(session.FieldStoriesFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStoriesFailed(); ok {
		_spec.AddField(session.FieldStoriesFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MetaData(); ok {
		_spec.SetField(session.FieldMetaData, field.TypeJSON, value)
	}
	if _u.mutation.MetaDataCleared() {
		_spec.ClearField(session.FieldMetaData, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(session.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(session.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(session.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(session.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(session.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(session.FieldFailedAt, field.TypeTime)
	}
	if _u.mutation.StoryExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStoryExecutionsIDs(); len(nodes) > 0 && !_u.mutation.StoryExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StoryExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetProjectName sets the "project_name" field.
func (_u *SessionUpdateOne) SetProjectName(v string) *SessionUpdateOne {
	_u.mutation.SetProjectName(v)
	return _u
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableProjectName(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetProjectName(*v)
	}
	return _u
}

// SetWaveNumber sets the "wave_number" field.
func (_u *SessionUpdateOne) SetWaveNumber(v int) *SessionUpdateOne {
	_u.mutation.ResetWaveNumber()
	_u.mutation.SetWaveNumber(v)
	return _u
}

// SetNillableWaveNumber sets the "wave_number" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableWaveNumber(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetWaveNumber(*v)
	}
	return _u
}

// AddWaveNumber adds value to the "wave_number" field.
func (_u *SessionUpdateOne) AddWaveNumber(v int) *SessionUpdateOne {
	_u.mutation.AddWaveNumber(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdateOne) SetStatus(v session.Status) *SessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatus(v *session.Status) *SessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBudgetUsd sets the "budget_usd" field.
func (_u *SessionUpdateOne) SetBudgetUsd(v float64) *SessionUpdateOne {
	_u.mutation.ResetBudgetUsd()
	_u.mutation.SetBudgetUsd(v)
	return _u
}

// SetNillableBudgetUsd sets the "budget_usd" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableBudgetUsd(v *float64) *SessionUpdateOne {
	if v != nil {
		_u.SetBudgetUsd(*v)
	}
	return _u
}

// AddBudgetUsd adds value to the "budget_usd" field.
func (_u *SessionUpdateOne) AddBudgetUsd(v float64) *SessionUpdateOne {
	_u.mutation.AddBudgetUsd(v)
	return _u
}

// SetActualCostUsd sets the "actual_cost_usd" field.
func (_u *SessionUpdateOne) SetActualCostUsd(v float64) *SessionUpdateOne {
	_u.mutation.ResetActualCostUsd()
	_u.mutation.SetActualCostUsd(v)
	return _u
}

// SetNillableActualCostUsd sets the "actual_cost_usd" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableActualCostUsd(v *float64) *SessionUpdateOne {
	if v != nil {
		_u.SetActualCostUsd(*v)
	}
	return _u
}

// AddActualCostUsd adds value to the "actual_cost_usd" field.
func (_u *SessionUpdateOne) AddActualCostUsd(v float64) *SessionUpdateOne {
	_u.mutation.AddActualCostUsd(v)
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *SessionUpdateOne) SetTokenCount(v int64) *SessionUpdateOne {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTokenCount(v *int64) *SessionUpdateOne {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *SessionUpdateOne) AddTokenCount(v int64) *SessionUpdateOne {
	_u.mutation.AddTokenCount(v)
	return _u
}

// SetStoryCount sets the "story_count" field.
func (_u *SessionUpdateOne) SetStoryCount(v int) *SessionUpdateOne {
	_u.mutation.ResetStoryCount()
	_u.mutation.SetStoryCount(v)
	return _u
}

// SetNillableStoryCount sets the "story_count" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStoryCount(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetStoryCount(*v)
	}
	return _u
}

// AddStoryCount adds value to the "story_count" field.
func (_u *SessionUpdateOne) AddStoryCount(v int) *SessionUpdateOne {
	_u.mutation.AddStoryCount(v)
	return _u
}

// SetStoriesCompleted sets the "stories_completed" field.
func (_u *SessionUpdateOne) SetStoriesCompleted(v int) *SessionUpdateOne {
	_u.mutation.ResetStoriesCompleted()
	_u.mutation.SetStoriesCompleted(v)
	return _u
}

// SetNillableStoriesCompleted sets the "stories_completed" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStoriesCompleted(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetStoriesCompleted(*v)
	}
	return _u
}

// AddStoriesCompleted adds value to the "stories_completed" field.
func (_u *SessionUpdateOne) AddStoriesCompleted(v int) *SessionUpdateOne {
	_u.mutation.AddStoriesCompleted(v)
	return _u
}

// SetStoriesFailed sets the "stories_failed" field.
func (_u *SessionUpdateOne) SetStoriesFailed(v int) *SessionUpdateOne {
	_u.mutation.ResetStoriesFailed()
	_u.mutation.SetStoriesFailed(v)
	return _u
}

// SetNillableStoriesFailed sets the "stories_failed" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStoriesFailed(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetStoriesFailed(*v)
	}
	return _u
}

// AddStoriesFailed adds value to the "stories_failed" field.
func (_u *SessionUpdateOne) AddStoriesFailed(v int) *SessionUpdateOne {
	_u.mutation.AddStoriesFailed(v)
	return _u
}

// SetMetaData sets the "meta_data" field.
func (_u *SessionUpdateOne) SetMetaData(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetMetaData(v)
	return _u
}

// ClearMetaData clears the value of the "meta_data" field.
func (_u *SessionUpdateOne) ClearMetaData() *SessionUpdateOne {
	_u.mutation.ClearMetaData()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionUpdateOne) SetStartedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStartedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SessionUpdateOne) ClearStartedAt() *SessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionUpdateOne) SetCompletedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCompletedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SessionUpdateOne) ClearCompletedAt() *SessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *SessionUpdateOne) SetFailedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableFailedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *SessionUpdateOne) ClearFailedAt() *SessionUpdateOne {
	_u.mutation.ClearFailedAt()
	return _u
}

// AddStoryExecutionIDs adds the "story_executions" edge to the StoryExecution entity by IDs.
func (_u *SessionUpdateOne) AddStoryExecutionIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddStoryExecutionIDs(ids...)
	return _u
}

// AddStoryExecutions adds the "story_executions" edges to the StoryExecution entity.
func (_u *SessionUpdateOne) AddStoryExecutions(v ...*StoryExecution) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStoryExecutionIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *SessionUpdateOne) AddCheckpointIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *SessionUpdateOne) AddCheckpoints(v ...*Checkpoint) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearStoryExecutions clears all "story_executions" edges to the StoryExecution entity.
func (_u *SessionUpdateOne) ClearStoryExecutions() *SessionUpdateOne {
	_u.mutation.ClearStoryExecutions()
	return _u
}

// RemoveStoryExecutionIDs removes the "story_executions" edge to StoryExecution entities by IDs.
func (_u *SessionUpdateOne) RemoveStoryExecutionIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveStoryExecutionIDs(ids...)
	return _u
}

// RemoveStoryExecutions removes "story_executions" edges to StoryExecution entities.
func (_u *SessionUpdateOne) RemoveStoryExecutions(v ...*StoryExecution) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStoryExecutionIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *SessionUpdateOne) ClearCheckpoints() *SessionUpdateOne {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *SessionUpdateOne) RemoveCheckpointIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *SessionUpdateOne) RemoveCheckpoints(v ...*Checkpoint) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.ProjectName(); ok {
		if err := session.ProjectNameValidator(v); err != nil {
			return &ValidationError{Name: "project_name", err: fmt.Errorf(`ent: validator failed for field "Session.project_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WaveNumber(); ok {
		if err := session.WaveNumberValidator(v); err != nil {
			return &ValidationError{Name: "wave_number", err: fmt.Errorf(`ent: validator failed for field "Session.wave_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BudgetUsd(); ok {
		if err := session.BudgetUsdValidator(v); err != nil {
			return &ValidationError{Name: "budget_usd", err: fmt.Errorf(`ent: validator failed for field "Session.budget_usd": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
	if value, ok := _u.mutation.ProjectName(); ok {
		_spec.SetField(session.FieldProjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.WaveNumber(); ok {
		_spec.SetField(session.FieldWaveNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWaveNumber(); ok {
		_spec.AddField(session.FieldWaveNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BudgetUsd(); ok {
		_spec.SetField(session.FieldBudgetUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBudgetUsd(); ok {
		_spec.AddField(session.FieldBudgetUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ActualCostUsd(); ok {
		_spec.SetField(session.FieldActualCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedActualCostUsd(); ok {
		_spec.AddField(session.FieldActualCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(session.FieldTokenCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(session.FieldTokenCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StoryCount(); ok {
		_spec.SetField(session.FieldStoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStoryCount(); ok {
		_spec.AddField(session.FieldStoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StoriesCompleted(); ok {
		_spec.SetField(session.FieldStoriesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStoriesCompleted(); ok {
		_spec.AddField(session.FieldStoriesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StoriesFailed(); ok {
		_spec.SetField(session.FieldStoriesFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStoriesFailed(); ok {
		_spec.AddField(session.FieldStoriesFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MetaData(); ok {
		_spec.SetField(session.FieldMetaData, field.TypeJSON, value)
	}
	if _u.mutation.MetaDataCleared() {
		_spec.ClearField(session.FieldMetaData, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(session.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(session.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(session.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(session.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(session.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(session.FieldFailedAt, field.TypeTime)
	}
	if _u.mutation.StoryExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStoryExecutionsIDs(); len(nodes) > 0 && !_u.mutation.StoryExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StoryExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
