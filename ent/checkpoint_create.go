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
)

// CheckpointCreate is the builder for creating a Checkpoint entity.
type CheckpointCreate struct {
	config
	mutation *CheckpointMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *CheckpointCreate) SetSessionID(v string) *CheckpointCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetParentCheckpointID sets the "parent_checkpoint_id" field.
func (_c *CheckpointCreate) SetParentCheckpointID(v string) *CheckpointCreate {
	_c.mutation.SetParentCheckpointID(v)
	return _c
}

// SetNillableParentCheckpointID sets the "parent_checkpoint_id" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableParentCheckpointID(v *string) *CheckpointCreate {
	if v != nil {
		_c.SetParentCheckpointID(*v)
	}
	return _c
}

// SetCheckpointType sets the "checkpoint_type" field.
func (_c *CheckpointCreate) SetCheckpointType(v checkpoint.CheckpointType) *CheckpointCreate {
	_c.mutation.SetCheckpointType(v)
	return _c
}

// SetCheckpointName sets the "checkpoint_name" field.
func (_c *CheckpointCreate) SetCheckpointName(v string) *CheckpointCreate {
	_c.mutation.SetCheckpointName(v)
	return _c
}

// SetState sets the "state" field.
func (_c *CheckpointCreate) SetState(v map[string]interface{}) *CheckpointCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetStoryID sets the "story_id" field.
func (_c *CheckpointCreate) SetStoryID(v string) *CheckpointCreate {
	_c.mutation.SetStoryID(v)
	return _c
}

// SetNillableStoryID sets the "story_id" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableStoryID(v *string) *CheckpointCreate {
	if v != nil {
		_c.SetStoryID(*v)
	}
	return _c
}

// SetGate sets the "gate" field.
func (_c *CheckpointCreate) SetGate(v checkpoint.Gate) *CheckpointCreate {
	_c.mutation.SetGate(v)
	return _c
}

// SetNillableGate sets the "gate" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableGate(v *checkpoint.Gate) *CheckpointCreate {
	if v != nil {
		_c.SetGate(*v)
	}
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *CheckpointCreate) SetAgentID(v string) *CheckpointCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableAgentID(v *string) *CheckpointCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetSeq sets the "seq" field.
func (_c *CheckpointCreate) SetSeq(v string) *CheckpointCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CheckpointCreate) SetCreatedAt(v time.Time) *CheckpointCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableCreatedAt(v *time.Time) *CheckpointCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CheckpointCreate) SetID(v string) *CheckpointCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *CheckpointCreate) SetSession(v *Session) *CheckpointCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the CheckpointMutation object of the builder.
func (_c *CheckpointCreate) Mutation() *CheckpointMutation {
	return _c.mutation
}

// Save creates the Checkpoint in the database.
func (_c *CheckpointCreate) Save(ctx context.Context) (*Checkpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckpointCreate) SaveX(ctx context.Context) *Checkpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckpointCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := checkpoint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckpointCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Checkpoint.session_id"`)}
	}
	if _, ok := _c.mutation.CheckpointType(); !ok {
		return &ValidationError{Name: "checkpoint_type", err: errors.New(`ent: missing required field "Checkpoint.checkpoint_type"`)}
	}
	if v, ok := _c.mutation.CheckpointType(); ok {
		if err := checkpoint.CheckpointTypeValidator(v); err != nil {
			return &ValidationError{Name: "checkpoint_type", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.checkpoint_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CheckpointName(); !ok {
		return &ValidationError{Name: "checkpoint_name", err: errors.New(`ent: missing required field "Checkpoint.checkpoint_name"`)}
	}
	if v, ok := _c.mutation.CheckpointName(); ok {
		if err := checkpoint.CheckpointNameValidator(v); err != nil {
			return &ValidationError{Name: "checkpoint_name", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.checkpoint_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Gate(); ok {
		if err := checkpoint.GateValidator(v); err != nil {
			return &ValidationError{Name: "gate", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.gate": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "Checkpoint.seq"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Checkpoint.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Checkpoint.session"`)}
	}
	return nil
}

func (_c *CheckpointCreate) sqlSave(ctx context.Context) (*Checkpoint, error) {
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
			return nil, fmt.Errorf("unexpected Checkpoint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CheckpointCreate) createSpec() (*Checkpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &Checkpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkpoint.Table, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ParentCheckpointID(); ok {
		_spec.SetField(checkpoint.FieldParentCheckpointID, field.TypeString, value)
		_node.ParentCheckpointID = &value
	}
	if value, ok := _c.mutation.CheckpointType(); ok {
		_spec.SetField(checkpoint.FieldCheckpointType, field.TypeEnum, value)
		_node.CheckpointType = value
	}
	if value, ok := _c.mutation.CheckpointName(); ok {
		_spec.SetField(checkpoint.FieldCheckpointName, field.TypeString, value)
		_node.CheckpointName = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(checkpoint.FieldState, field.TypeJSON, value)
		_node.State = value
	}
	if value, ok := _c.mutation.StoryID(); ok {
		_spec.SetField(checkpoint.FieldStoryID, field.TypeString, value)
		_node.StoryID = &value
	}
	if value, ok := _c.mutation.Gate(); ok {
		_spec.SetField(checkpoint.FieldGate, field.TypeEnum, value)
		_node.Gate = &value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(checkpoint.FieldAgentID, field.TypeString, value)
		_node.AgentID = &value
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(checkpoint.FieldSeq, field.TypeString, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(checkpoint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkpoint.SessionTable,
			Columns: []string{checkpoint.SessionColumn},
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

// CheckpointCreateBulk is the builder for creating many Checkpoint entities in bulk.
type CheckpointCreateBulk struct {
	config
	err      error
	builders []*CheckpointCreate
}

// Save creates the Checkpoint entities in the database.
func (_c *CheckpointCreateBulk) Save(ctx context.Context) ([]*Checkpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Checkpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckpointMutation)
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
func (_c *CheckpointCreateBulk) SaveX(ctx context.Context) []*Checkpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
