// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Boomerang-Apps/wave/ent/checkpoint"
	"github.com/Boomerang-Apps/wave/ent/predicate"
)

// CheckpointUpdate is the builder for updating Checkpoint entities.
type CheckpointUpdate struct {
	config
	hooks    []Hook
	mutation *CheckpointMutation
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdate) Where(ps ...predicate.Checkpoint) *CheckpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParentCheckpointID sets the "parent_checkpoint_id" field.
func (_u *CheckpointUpdate) SetParentCheckpointID(v string) *CheckpointUpdate {
	_u.mutation.SetParentCheckpointID(v)
	return _u
}

// SetNillableParentCheckpointID sets the "parent_checkpoint_id" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableParentCheckpointID(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetParentCheckpointID(*v)
	}
	return _u
}

// ClearParentCheckpointID clears the value of the "parent_checkpoint_id" field.
func (_u *CheckpointUpdate) ClearParentCheckpointID() *CheckpointUpdate {
	_u.mutation.ClearParentCheckpointID()
	return _u
}

// SetCheckpointType sets the "checkpoint_type" field.
func (_u *CheckpointUpdate) SetCheckpointType(v checkpoint.CheckpointType) *CheckpointUpdate {
	_u.mutation.SetCheckpointType(v)
	return _u
}

// SetNillableCheckpointType sets the "checkpoint_type" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableCheckpointType(v *checkpoint.CheckpointType) *CheckpointUpdate {
	if v != nil {
		_u.SetCheckpointType(*v)
	}
	return _u
}

// SetCheckpointName sets the "checkpoint_name" field.
func (_u *CheckpointUpdate) SetCheckpointName(v string) *CheckpointUpdate {
	_u.mutation.SetCheckpointName(v)
	return _u
}

// SetNillableCheckpointName sets the "checkpoint_name" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableCheckpointName(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetCheckpointName(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *CheckpointUpdate) SetState(v map[string]interface{}) *CheckpointUpdate {
	_u.mutation.SetState(v)
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *CheckpointUpdate) ClearState() *CheckpointUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetStoryID sets the "story_id" field.
func (_u *CheckpointUpdate) SetStoryID(v string) *CheckpointUpdate {
	_u.mutation.SetStoryID(v)
	return _u
}

// SetNillableStoryID sets the "story_id" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableStoryID(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetStoryID(*v)
	}
	return _u
}

// ClearStoryID clears the value of the "story_id" field.
func (_u *CheckpointUpdate) ClearStoryID() *CheckpointUpdate {
	_u.mutation.ClearStoryID()
	return _u
}

// SetGate sets the "gate" field.
func (_u *CheckpointUpdate) SetGate(v checkpoint.Gate) *CheckpointUpdate {
	_u.mutation.SetGate(v)
	return _u
}

// SetNillableGate sets the "gate" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableGate(v *checkpoint.Gate) *CheckpointUpdate {
	if v != nil {
		_u.SetGate(*v)
	}
	return _u
}

// ClearGate clears the value of the "gate" field.
func (_u *CheckpointUpdate) ClearGate() *CheckpointUpdate {
	_u.mutation.ClearGate()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *CheckpointUpdate) SetAgentID(v string) *CheckpointUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableAgentID(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *CheckpointUpdate) ClearAgentID() *CheckpointUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdate) Mutation() *CheckpointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckpointUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointUpdate) check() error {
	if v, ok := _u.mutation.CheckpointType(); ok {
		if err := checkpoint.CheckpointTypeValidator(v); err != nil {
			return &ValidationError{Name: "checkpoint_type", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.checkpoint_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CheckpointName(); ok {
		if err := checkpoint.CheckpointNameValidator(v); err != nil {
			return &ValidationError{Name: "checkpoint_name", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.checkpoint_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gate(); ok {
		if err := checkpoint.GateValidator(v); err != nil {
			return &ValidationError{Name: "gate", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.gate": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Checkpoint.session"`)
	}
	return nil
}

func (_u *CheckpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentCheckpointID(); ok {
		_spec.SetField(checkpoint.FieldParentCheckpointID, field.TypeString, value)
	}
	if _u.mutation.ParentCheckpointIDCleared() {
		_spec.ClearField(checkpoint.FieldParentCheckpointID, field.TypeString)
	}
	if value, ok := _u.mutation.CheckpointType(); ok {
		_spec.SetField(checkpoint.FieldCheckpointType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CheckpointName(); ok {
		_spec.SetField(checkpoint.FieldCheckpointName, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(checkpoint.FieldState, field.TypeJSON, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(checkpoint.FieldState, field.TypeJSON)
	}
	if value, ok := _u.mutation.StoryID(); ok {
		_spec.SetField(checkpoint.FieldStoryID, field.TypeString, value)
	}
	if _u.mutation.StoryIDCleared() {
		_spec.ClearField(checkpoint.FieldStoryID, field.TypeString)
	}
	if value, ok := _u.mutation.Gate(); ok {
		_spec.SetField(checkpoint.FieldGate, field.TypeEnum, value)
	}
	if _u.mutation.GateCleared() {
		_spec.ClearField(checkpoint.FieldGate, field.TypeEnum)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(checkpoint.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(checkpoint.FieldAgentID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckpointUpdateOne is the builder for updating a single Checkpoint entity.
type CheckpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckpointMutation
}

// SetParentCheckpointID sets the "parent_checkpoint_id" field.
func (_u *CheckpointUpdateOne) SetParentCheckpointID(v string) *CheckpointUpdateOne {
	_u.mutation.SetParentCheckpointID(v)
	return _u
}

// SetNillableParentCheckpointID sets the "parent_checkpoint_id" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableParentCheckpointID(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetParentCheckpointID(*v)
	}
	return _u
}

// ClearParentCheckpointID clears the value of the "parent_checkpoint_id" field.
func (_u *CheckpointUpdateOne) ClearParentCheckpointID() *CheckpointUpdateOne {
	_u.mutation.ClearParentCheckpointID()
	return _u
}

// SetCheckpointType sets the "checkpoint_type" field.
func (_u *CheckpointUpdateOne) SetCheckpointType(v checkpoint.CheckpointType) *CheckpointUpdateOne {
	_u.mutation.SetCheckpointType(v)
	return _u
}

// SetNillableCheckpointType sets the "checkpoint_type" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableCheckpointType(v *checkpoint.CheckpointType) *CheckpointUpdateOne {
	if v != nil {
		_u.SetCheckpointType(*v)
	}
	return _u
}

// SetCheckpointName sets the "checkpoint_name" field.
func (_u *CheckpointUpdateOne) SetCheckpointName(v string) *CheckpointUpdateOne {
	_u.mutation.SetCheckpointName(v)
	return _u
}

// SetNillableCheckpointName sets the "checkpoint_name" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableCheckpointName(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetCheckpointName(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *CheckpointUpdateOne) SetState(v map[string]interface{}) *CheckpointUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *CheckpointUpdateOne) ClearState() *CheckpointUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetStoryID sets the "story_id" field.
func (_u *CheckpointUpdateOne) SetStoryID(v string) *CheckpointUpdateOne {
	_u.mutation.SetStoryID(v)
	return _u
}

// SetNillableStoryID sets the "story_id" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableStoryID(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetStoryID(*v)
	}
	return _u
}

// ClearStoryID clears the value of the "story_id" field.
func (_u *CheckpointUpdateOne) ClearStoryID() *CheckpointUpdateOne {
	_u.mutation.ClearStoryID()
	return _u
}

// SetGate sets the "gate" field.
func (_u *CheckpointUpdateOne) SetGate(v checkpoint.Gate) *CheckpointUpdateOne {
	_u.mutation.SetGate(v)
	return _u
}

// SetNillableGate sets the "gate" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableGate(v *checkpoint.Gate) *CheckpointUpdateOne {
	if v != nil {
		_u.SetGate(*v)
	}
	return _u
}

// ClearGate clears the value of the "gate" field.
func (_u *CheckpointUpdateOne) ClearGate() *CheckpointUpdateOne {
	_u.mutation.ClearGate()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *CheckpointUpdateOne) SetAgentID(v string) *CheckpointUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableAgentID(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *CheckpointUpdateOne) ClearAgentID() *CheckpointUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdateOne) Mutation() *CheckpointMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdateOne) Where(ps ...predicate.Checkpoint) *CheckpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckpointUpdateOne) Select(field string, fields ...string) *CheckpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Checkpoint entity.
func (_u *CheckpointUpdateOne) Save(ctx context.Context) (*Checkpoint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdateOne) SaveX(ctx context.Context) *Checkpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointUpdateOne) check() error {
	if v, ok := _u.mutation.CheckpointType(); ok {
		if err := checkpoint.CheckpointTypeValidator(v); err != nil {
			return &ValidationError{Name: "checkpoint_type", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.checkpoint_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CheckpointName(); ok {
		if err := checkpoint.CheckpointNameValidator(v); err != nil {
			return &ValidationError{Name: "checkpoint_name", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.checkpoint_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gate(); ok {
		if err := checkpoint.GateValidator(v); err != nil {
			return &ValidationError{Name: "gate", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.gate": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Checkpoint.session"`)
	}
	return nil
}

func (_u *CheckpointUpdateOne) sqlSave(ctx context.Context) (_node *Checkpoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Checkpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkpoint.FieldID)
		for _, f := range fields {
			if !checkpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkpoint.FieldID {
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
	if value, ok := _u.mutation.ParentCheckpointID(); ok {
		_spec.SetField(checkpoint.FieldParentCheckpointID, field.TypeString, value)
	}
	if _u.mutation.ParentCheckpointIDCleared() {
		_spec.ClearField(checkpoint.FieldParentCheckpointID, field.TypeString)
	}
	if value, ok := _u.mutation.CheckpointType(); ok {
		_spec.SetField(checkpoint.FieldCheckpointType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CheckpointName(); ok {
		_spec.SetField(checkpoint.FieldCheckpointName, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(checkpoint.FieldState, field.TypeJSON, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(checkpoint.FieldState, field.TypeJSON)
	}
	if value, ok := _u.mutation.StoryID(); ok {
		_spec.SetField(checkpoint.FieldStoryID, field.TypeString, value)
	}
	if _u.mutation.StoryIDCleared() {
		_spec.ClearField(checkpoint.FieldStoryID, field.TypeString)
	}
	if value, ok := _u.mutation.Gate(); ok {
		_spec.SetField(checkpoint.FieldGate, field.TypeEnum, value)
	}
	if _u.mutation.GateCleared() {
		_spec.ClearField(checkpoint.FieldGate, field.TypeEnum)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(checkpoint.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(checkpoint.FieldAgentID, field.TypeString)
	}
	_node = &Checkpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
