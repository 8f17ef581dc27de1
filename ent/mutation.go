// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Boomerang-Apps/wave/ent/checkpoint"
	"github.com/Boomerang-Apps/wave/ent/predicate"
	"github.com/Boomerang-Apps/wave/ent/session"
	"github.com/Boomerang-Apps/wave/ent/storyexecution"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCheckpoint     = "Checkpoint"
	TypeSession        = "Session"
	TypeStoryExecution = "StoryExecution"
)

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	parent_checkpoint_id *string
	checkpoint_type      *checkpoint.CheckpointType
	checkpoint_name      *string
	state                *map[string]interface{}
	story_id             *string
	gate                 *checkpoint.Gate
	agent_id             *string
	seq                  *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	session              *string
	clearedsession       bool
	done                 bool
	oldValue             func(context.Context) (*Checkpoint, error)
	predicates           []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id string) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkpoint entities.
func (m *CheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *CheckpointMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *CheckpointMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *CheckpointMutation) ResetSessionID() {
	m.session = nil
}

// SetParentCheckpointID sets the "parent_checkpoint_id" field.
func (m *CheckpointMutation) SetParentCheckpointID(s string) {
	m.parent_checkpoint_id = &s
}

// ParentCheckpointID returns the value of the "parent_checkpoint_id" field in the mutation.
func (m *CheckpointMutation) ParentCheckpointID() (r string, exists bool) {
	v := m.parent_checkpoint_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentCheckpointID returns the old "parent_checkpoint_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldParentCheckpointID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentCheckpointID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentCheckpointID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentCheckpointID: %w", err)
	}
	return oldValue.ParentCheckpointID, nil
}

// ClearParentCheckpointID clears the value of the "parent_checkpoint_id" field.
func (m *CheckpointMutation) ClearParentCheckpointID() {
	m.parent_checkpoint_id = nil
	m.clearedFields[checkpoint.FieldParentCheckpointID] = struct{}{}
}

// ParentCheckpointIDCleared returns if the "parent_checkpoint_id" field was cleared in this mutation.
func (m *CheckpointMutation) ParentCheckpointIDCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldParentCheckpointID]
	return ok
}

// ResetParentCheckpointID resets all changes to the "parent_checkpoint_id" field.
func (m *CheckpointMutation) ResetParentCheckpointID() {
	m.parent_checkpoint_id = nil
	delete(m.clearedFields, checkpoint.FieldParentCheckpointID)
}

// SetCheckpointType sets the "checkpoint_type" field.
func (m *CheckpointMutation) SetCheckpointType(ct checkpoint.CheckpointType) {
	m.checkpoint_type = &ct
}

// CheckpointType returns the value of the "checkpoint_type" field in the mutation.
func (m *CheckpointMutation) CheckpointType() (r checkpoint.CheckpointType, exists bool) {
	v := m.checkpoint_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpointType returns the old "checkpoint_type" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCheckpointType(ctx context.Context) (v checkpoint.CheckpointType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpointType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpointType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpointType: %w", err)
	}
	return oldValue.CheckpointType, nil
}

// ResetCheckpointType resets all changes to the "checkpoint_type" field.
func (m *CheckpointMutation) ResetCheckpointType() {
	m.checkpoint_type = nil
}

// SetCheckpointName sets the "checkpoint_name" field.
func (m *CheckpointMutation) SetCheckpointName(s string) {
	m.checkpoint_name = &s
}

// CheckpointName returns the value of the "checkpoint_name" field in the mutation.
func (m *CheckpointMutation) CheckpointName() (r string, exists bool) {
	v := m.checkpoint_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpointName returns the old "checkpoint_name" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCheckpointName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpointName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpointName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpointName: %w", err)
	}
	return oldValue.CheckpointName, nil
}

// ResetCheckpointName resets all changes to the "checkpoint_name" field.
func (m *CheckpointMutation) ResetCheckpointName() {
	m.checkpoint_name = nil
}

// SetState sets the "state" field.
func (m *CheckpointMutation) SetState(value map[string]interface{}) {
	m.state = &value
}

// State returns the value of the "state" field in the mutation.
func (m *CheckpointMutation) State() (r map[string]interface{}, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ClearState clears the value of the "state" field.
func (m *CheckpointMutation) ClearState() {
	m.state = nil
	m.clearedFields[checkpoint.FieldState] = struct{}{}
}

// StateCleared returns if the "state" field was cleared in this mutation.
func (m *CheckpointMutation) StateCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldState]
	return ok
}

// ResetState resets all changes to the "state" field.
func (m *CheckpointMutation) ResetState() {
	m.state = nil
	delete(m.clearedFields, checkpoint.FieldState)
}

// SetStoryID sets the "story_id" field.
func (m *CheckpointMutation) SetStoryID(s string) {
	m.story_id = &s
}

// StoryID returns the value of the "story_id" field in the mutation.
func (m *CheckpointMutation) StoryID() (r string, exists bool) {
	v := m.story_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStoryID returns the old "story_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldStoryID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoryID: %w", err)
	}
	return oldValue.StoryID, nil
}

// ClearStoryID clears the value of the "story_id" field.
func (m *CheckpointMutation) ClearStoryID() {
	m.story_id = nil
	m.clearedFields[checkpoint.FieldStoryID] = struct{}{}
}

// StoryIDCleared returns if the "story_id" field was cleared in this mutation.
func (m *CheckpointMutation) StoryIDCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldStoryID]
	return ok
}

// ResetStoryID resets all changes to the "story_id" field.
func (m *CheckpointMutation) ResetStoryID() {
	m.story_id = nil
	delete(m.clearedFields, checkpoint.FieldStoryID)
}

// SetGate sets the "gate" field.
func (m *CheckpointMutation) SetGate(c checkpoint.Gate) {
	m.gate = &c
}

// Gate returns the value of the "gate" field in the mutation.
func (m *CheckpointMutation) Gate() (r checkpoint.Gate, exists bool) {
	v := m.gate
	if v == nil {
		return
	}
	return *v, true
}

// OldGate returns the old "gate" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldGate(ctx context.Context) (v *checkpoint.Gate, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGate: %w", err)
	}
	return oldValue.Gate, nil
}

// ClearGate clears the value of the "gate" field.
func (m *CheckpointMutation) ClearGate() {
	m.gate = nil
	m.clearedFields[checkpoint.FieldGate] = struct{}{}
}

// GateCleared returns if the "gate" field was cleared in this mutation.
func (m *CheckpointMutation) GateCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldGate]
	return ok
}

// ResetGate resets all changes to the "gate" field.
func (m *CheckpointMutation) ResetGate() {
	m.gate = nil
	delete(m.clearedFields, checkpoint.FieldGate)
}

// SetAgentID sets the "agent_id" field.
func (m *CheckpointMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *CheckpointMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *CheckpointMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[checkpoint.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *CheckpointMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *CheckpointMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, checkpoint.FieldAgentID)
}

// SetSeq sets the "seq" field.
func (m *CheckpointMutation) SetSeq(s string) {
	m.seq = &s
}

// Seq returns the value of the "seq" field in the mutation.
func (m *CheckpointMutation) Seq() (r string, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldSeq(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// ResetSeq resets all changes to the "seq" field.
func (m *CheckpointMutation) ResetSeq() {
	m.seq = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *CheckpointMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[checkpoint.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *CheckpointMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *CheckpointMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *CheckpointMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.session != nil {
		fields = append(fields, checkpoint.FieldSessionID)
	}
	if m.parent_checkpoint_id != nil {
		fields = append(fields, checkpoint.FieldParentCheckpointID)
	}
	if m.checkpoint_type != nil {
		fields = append(fields, checkpoint.FieldCheckpointType)
	}
	if m.checkpoint_name != nil {
		fields = append(fields, checkpoint.FieldCheckpointName)
	}
	if m.state != nil {
		fields = append(fields, checkpoint.FieldState)
	}
	if m.story_id != nil {
		fields = append(fields, checkpoint.FieldStoryID)
	}
	if m.gate != nil {
		fields = append(fields, checkpoint.FieldGate)
	}
	if m.agent_id != nil {
		fields = append(fields, checkpoint.FieldAgentID)
	}
	if m.seq != nil {
		fields = append(fields, checkpoint.FieldSeq)
	}
	if m.created_at != nil {
		fields = append(fields, checkpoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldSessionID:
		return m.SessionID()
	case checkpoint.FieldParentCheckpointID:
		return m.ParentCheckpointID()
	case checkpoint.FieldCheckpointType:
		return m.CheckpointType()
	case checkpoint.FieldCheckpointName:
		return m.CheckpointName()
	case checkpoint.FieldState:
		return m.State()
	case checkpoint.FieldStoryID:
		return m.StoryID()
	case checkpoint.FieldGate:
		return m.Gate()
	case checkpoint.FieldAgentID:
		return m.AgentID()
	case checkpoint.FieldSeq:
		return m.Seq()
	case checkpoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldSessionID:
		return m.OldSessionID(ctx)
	case checkpoint.FieldParentCheckpointID:
		return m.OldParentCheckpointID(ctx)
	case checkpoint.FieldCheckpointType:
		return m.OldCheckpointType(ctx)
	case checkpoint.FieldCheckpointName:
		return m.OldCheckpointName(ctx)
	case checkpoint.FieldState:
		return m.OldState(ctx)
	case checkpoint.FieldStoryID:
		return m.OldStoryID(ctx)
	case checkpoint.FieldGate:
		return m.OldGate(ctx)
	case checkpoint.FieldAgentID:
		return m.OldAgentID(ctx)
	case checkpoint.FieldSeq:
		return m.OldSeq(ctx)
	case checkpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case checkpoint.FieldParentCheckpointID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentCheckpointID(v)
		return nil
	case checkpoint.FieldCheckpointType:
		v, ok := value.(checkpoint.CheckpointType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpointType(v)
		return nil
	case checkpoint.FieldCheckpointName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpointName(v)
		return nil
	case checkpoint.FieldState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case checkpoint.FieldStoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoryID(v)
		return nil
	case checkpoint.FieldGate:
		v, ok := value.(checkpoint.Gate)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGate(v)
		return nil
	case checkpoint.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case checkpoint.FieldSeq:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case checkpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkpoint.FieldParentCheckpointID) {
		fields = append(fields, checkpoint.FieldParentCheckpointID)
	}
	if m.FieldCleared(checkpoint.FieldState) {
		fields = append(fields, checkpoint.FieldState)
	}
	if m.FieldCleared(checkpoint.FieldStoryID) {
		fields = append(fields, checkpoint.FieldStoryID)
	}
	if m.FieldCleared(checkpoint.FieldGate) {
		fields = append(fields, checkpoint.FieldGate)
	}
	if m.FieldCleared(checkpoint.FieldAgentID) {
		fields = append(fields, checkpoint.FieldAgentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	switch name {
	case checkpoint.FieldParentCheckpointID:
		m.ClearParentCheckpointID()
		return nil
	case checkpoint.FieldState:
		m.ClearState()
		return nil
	case checkpoint.FieldStoryID:
		m.ClearStoryID()
		return nil
	case checkpoint.FieldGate:
		m.ClearGate()
		return nil
	case checkpoint.FieldAgentID:
		m.ClearAgentID()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldSessionID:
		m.ResetSessionID()
		return nil
	case checkpoint.FieldParentCheckpointID:
		m.ResetParentCheckpointID()
		return nil
	case checkpoint.FieldCheckpointType:
		m.ResetCheckpointType()
		return nil
	case checkpoint.FieldCheckpointName:
		m.ResetCheckpointName()
		return nil
	case checkpoint.FieldState:
		m.ResetState()
		return nil
	case checkpoint.FieldStoryID:
		m.ResetStoryID()
		return nil
	case checkpoint.FieldGate:
		m.ResetGate()
		return nil
	case checkpoint.FieldAgentID:
		m.ResetAgentID()
		return nil
	case checkpoint.FieldSeq:
		m.ResetSeq()
		return nil
	case checkpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, checkpoint.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkpoint.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, checkpoint.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case checkpoint.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	switch name {
	case checkpoint.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	switch name {
	case checkpoint.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	project_name            *string
	wave_number             *int
	addwave_number          *int
	status                  *session.Status
	budget_usd              *float64
	addbudget_usd           *float64
	actual_cost_usd         *float64
	addactual_cost_usd      *float64
	token_count             *int64
	addtoken_count          *int64
	story_count             *int
	addstory_count          *int
	stories_completed       *int
	addstories_completed    *int
	stories_failed          *int
	addstories_failed       *int
	meta_data               *map[string]interface{}
	created_at              *time.Time
	started_at              *time.Time
	completed_at            *time.Time
	failed_at               *time.Time
	clearedFields           map[string]struct{}
	story_executions        map[string]struct{}
	removedstory_executions map[string]struct{}
	clearedstory_executions bool
	checkpoints             map[string]struct{}
	removedcheckpoints      map[string]struct{}
	clearedcheckpoints      bool
	done                    bool
	oldValue                func(context.Context) (*Session, error)
	predicates              []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectName sets the "project_name" field.
func (m *SessionMutation) SetProjectName(s string) {
	m.project_name = &s
}

// ProjectName returns the value of the "project_name" field in the mutation.
func (m *SessionMutation) ProjectName() (r string, exists bool) {
	v := m.project_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectName returns the old "project_name" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldProjectName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectName: %w", err)
	}
	return oldValue.ProjectName, nil
}

// ResetProjectName resets all changes to the "project_name" field.
func (m *SessionMutation) ResetProjectName() {
	m.project_name = nil
}

// SetWaveNumber sets the "wave_number" field.
func (m *SessionMutation) SetWaveNumber(i int) {
	m.wave_number = &i
	m.addwave_number = nil
}

// WaveNumber returns the value of the "wave_number" field in the mutation.
func (m *SessionMutation) WaveNumber() (r int, exists bool) {
	v := m.wave_number
	if v == nil {
		return
	}
	return *v, true
}

// OldWaveNumber returns the old "wave_number" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldWaveNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWaveNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWaveNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWaveNumber: %w", err)
	}
	return oldValue.WaveNumber, nil
}

// AddWaveNumber adds i to the "wave_number" field.
func (m *SessionMutation) AddWaveNumber(i int) {
	if m.addwave_number != nil {
		*m.addwave_number += i
	} else {
		m.addwave_number = &i
	}
}

// AddedWaveNumber returns the value that was added to the "wave_number" field in this mutation.
func (m *SessionMutation) AddedWaveNumber() (r int, exists bool) {
	v := m.addwave_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetWaveNumber resets all changes to the "wave_number" field.
func (m *SessionMutation) ResetWaveNumber() {
	m.wave_number = nil
	m.addwave_number = nil
}

// SetStatus sets the "status" field.
func (m *SessionMutation) SetStatus(s session.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionMutation) Status() (r session.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStatus(ctx context.Context) (v session.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionMutation) ResetStatus() {
	m.status = nil
}

// SetBudgetUsd sets the "budget_usd" field.
func (m *SessionMutation) SetBudgetUsd(f float64) {
	m.budget_usd = &f
	m.addbudget_usd = nil
}

// BudgetUsd returns the value of the "budget_usd" field in the mutation.
func (m *SessionMutation) BudgetUsd() (r float64, exists bool) {
	v := m.budget_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldBudgetUsd returns the old "budget_usd" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldBudgetUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBudgetUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBudgetUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBudgetUsd: %w", err)
	}
	return oldValue.BudgetUsd, nil
}

// AddBudgetUsd adds f to the "budget_usd" field.
func (m *SessionMutation) AddBudgetUsd(f float64) {
	if m.addbudget_usd != nil {
		*m.addbudget_usd += f
	} else {
		m.addbudget_usd = &f
	}
}

// AddedBudgetUsd returns the value that was added to the "budget_usd" field in this mutation.
func (m *SessionMutation) AddedBudgetUsd() (r float64, exists bool) {
	v := m.addbudget_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetBudgetUsd resets all changes to the "budget_usd" field.
func (m *SessionMutation) ResetBudgetUsd() {
	m.budget_usd = nil
	m.addbudget_usd = nil
}

// SetActualCostUsd sets the "actual_cost_usd" field.
func (m *SessionMutation) SetActualCostUsd(f float64) {
	m.actual_cost_usd = &f
	m.addactual_cost_usd = nil
}

// ActualCostUsd returns the value of the "actual_cost_usd" field in the mutation.
func (m *SessionMutation) ActualCostUsd() (r float64, exists bool) {
	v := m.actual_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldActualCostUsd returns the old "actual_cost_usd" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldActualCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualCostUsd: %w", err)
	}
	return oldValue.ActualCostUsd, nil
}

// AddActualCostUsd adds f to the "actual_cost_usd" field.
func (m *SessionMutation) AddActualCostUsd(f float64) {
	if m.addactual_cost_usd != nil {
		*m.addactual_cost_usd += f
	} else {
		m.addactual_cost_usd = &f
	}
}

// AddedActualCostUsd returns the value that was added to the "actual_cost_usd" field in this mutation.
func (m *SessionMutation) AddedActualCostUsd() (r float64, exists bool) {
	v := m.addactual_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetActualCostUsd resets all changes to the "actual_cost_usd" field.
func (m *SessionMutation) ResetActualCostUsd() {
	m.actual_cost_usd = nil
	m.addactual_cost_usd = nil
}

// SetTokenCount sets the "token_count" field.
func (m *SessionMutation) SetTokenCount(i int64) {
	m.token_count = &i
	m.addtoken_count = nil
}

// TokenCount returns the value of the "token_count" field in the mutation.
func (m *SessionMutation) TokenCount() (r int64, exists bool) {
	v := m.token_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenCount returns the old "token_count" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTokenCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenCount: %w", err)
	}
	return oldValue.TokenCount, nil
}

// AddTokenCount adds i to the "token_count" field.
func (m *SessionMutation) AddTokenCount(i int64) {
	if m.addtoken_count != nil {
		*m.addtoken_count += i
	} else {
		m.addtoken_count = &i
	}
}

// AddedTokenCount returns the value that was added to the "token_count" field in this mutation.
func (m *SessionMutation) AddedTokenCount() (r int64, exists bool) {
	v := m.addtoken_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokenCount resets all changes to the "token_count" field.
func (m *SessionMutation) ResetTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
}

// SetStoryCount sets the "story_count" field.
func (m *SessionMutation) SetStoryCount(i int) {
	m.story_count = &i
	m.addstory_count = nil
}

// StoryCount returns the value of the "story_count" field in the mutation.
func (m *SessionMutation) StoryCount() (r int, exists bool) {
	v := m.story_count
	if v == nil {
		return
	}
	return *v, true
}

// OldStoryCount returns the old "story_count" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStoryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoryCount: %w", err)
	}
	return oldValue.StoryCount, nil
}

// AddStoryCount adds i to the "story_count" field.
func (m *SessionMutation) AddStoryCount(i int) {
	if m.addstory_count != nil {
		*m.addstory_count += i
	} else {
		m.addstory_count = &i
	}
}

// AddedStoryCount returns the value that was added to the "story_count" field in this mutation.
func (m *SessionMutation) AddedStoryCount() (r int, exists bool) {
	v := m.addstory_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetStoryCount resets all changes to the "story_count" field.
func (m *SessionMutation) ResetStoryCount() {
	m.story_count = nil
	m.addstory_count = nil
}

// SetStoriesCompleted sets the "stories_completed" field.
func (m *SessionMutation) SetStoriesCompleted(i int) {
	m.stories_completed = &i
	m.addstories_completed = nil
}

// StoriesCompleted returns the value of the "stories_completed" field in the mutation.
func (m *SessionMutation) StoriesCompleted() (r int, exists bool) {
	v := m.stories_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldStoriesCompleted returns the old "stories_completed" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStoriesCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoriesCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoriesCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoriesCompleted: %w", err)
	}
	return oldValue.StoriesCompleted, nil
}

// AddStoriesCompleted adds i to the "stories_completed" field.
func (m *SessionMutation) AddStoriesCompleted(i int) {
	if m.addstories_completed != nil {
		*m.addstories_completed += i
	} else {
		m.addstories_completed = &i
	}
}

// AddedStoriesCompleted returns the value that was added to the "stories_completed" field in this mutation.
func (m *SessionMutation) AddedStoriesCompleted() (r int, exists bool) {
	v := m.addstories_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetStoriesCompleted resets all changes to the "stories_completed" field.
func (m *SessionMutation) ResetStoriesCompleted() {
	m.stories_completed = nil
	m.addstories_completed = nil
}

// SetStoriesFailed sets the "stories_failed" field.
func (m *SessionMutation) SetStoriesFailed(i int) {
	m.stories_failed = &i
	m.addstories_failed = nil
}

// StoriesFailed returns the value of the "stories_failed" field in the mutation.
func (m *SessionMutation) StoriesFailed() (r int, exists bool) {
	v := m.stories_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldStoriesFailed returns the old "stories_failed" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStoriesFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoriesFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoriesFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoriesFailed: %w", err)
	}
	return oldValue.StoriesFailed, nil
}

// AddStoriesFailed adds i to the "stories_failed" field.
func (m *SessionMutation) AddStoriesFailed(i int) {
	if m.addstories_failed != nil {
		*m.addstories_failed += i
	} else {
		m.addstories_failed = &i
	}
}

// AddedStoriesFailed returns the value that was added to the "stories_failed" field in this mutation.
func (m *SessionMutation) AddedStoriesFailed() (r int, exists bool) {
	v := m.addstories_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetStoriesFailed resets all changes to the "stories_failed" field.
func (m *SessionMutation) ResetStoriesFailed() {
	m.stories_failed = nil
	m.addstories_failed = nil
}

// SetMetaData sets the "meta_data" field.
func (m *SessionMutation) SetMetaData(value map[string]interface{}) {
	m.meta_data = &value
}

// MetaData returns the value of the "meta_data" field in the mutation.
func (m *SessionMutation) MetaData() (r map[string]interface{}, exists bool) {
	v := m.meta_data
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaData returns the old "meta_data" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldMetaData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaData: %w", err)
	}
	return oldValue.MetaData, nil
}

// ClearMetaData clears the value of the "meta_data" field.
func (m *SessionMutation) ClearMetaData() {
	m.meta_data = nil
	m.clearedFields[session.FieldMetaData] = struct{}{}
}

// MetaDataCleared returns if the "meta_data" field was cleared in this mutation.
func (m *SessionMutation) MetaDataCleared() bool {
	_, ok := m.clearedFields[session.FieldMetaData]
	return ok
}

// ResetMetaData resets all changes to the "meta_data" field.
func (m *SessionMutation) ResetMetaData() {
	m.meta_data = nil
	delete(m.clearedFields, session.FieldMetaData)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *SessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[session.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *SessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, session.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[session.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, session.FieldCompletedAt)
}

// SetFailedAt sets the "failed_at" field.
func (m *SessionMutation) SetFailedAt(t time.Time) {
	m.failed_at = &t
}

// FailedAt returns the value of the "failed_at" field in the mutation.
func (m *SessionMutation) FailedAt() (r time.Time, exists bool) {
	v := m.failed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedAt returns the old "failed_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldFailedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedAt: %w", err)
	}
	return oldValue.FailedAt, nil
}

// ClearFailedAt clears the value of the "failed_at" field.
func (m *SessionMutation) ClearFailedAt() {
	m.failed_at = nil
	m.clearedFields[session.FieldFailedAt] = struct{}{}
}

// FailedAtCleared returns if the "failed_at" field was cleared in this mutation.
func (m *SessionMutation) FailedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldFailedAt]
	return ok
}

// ResetFailedAt resets all changes to the "failed_at" field.
func (m *SessionMutation) ResetFailedAt() {
	m.failed_at = nil
	delete(m.clearedFields, session.FieldFailedAt)
}

// AddStoryExecutionIDs adds the "story_executions" edge to the StoryExecution entity by ids.
func (m *SessionMutation) AddStoryExecutionIDs(ids ...string) {
	if m.story_executions == nil {
		m.story_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.story_executions[ids[i]] = struct{}{}
	}
}

// ClearStoryExecutions clears the "story_executions" edge to the StoryExecution entity.
func (m *SessionMutation) ClearStoryExecutions() {
	m.clearedstory_executions = true
}

// StoryExecutionsCleared reports if the "story_executions" edge to the StoryExecution entity was cleared.
func (m *SessionMutation) StoryExecutionsCleared() bool {
	return m.clearedstory_executions
}

// RemoveStoryExecutionIDs removes the "story_executions" edge to the StoryExecution entity by IDs.
func (m *SessionMutation) RemoveStoryExecutionIDs(ids ...string) {
	if m.removedstory_executions == nil {
		m.removedstory_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.story_executions, ids[i])
		m.removedstory_executions[ids[i]] = struct{}{}
	}
}

// RemovedStoryExecutions returns the removed IDs of the "story_executions" edge to the StoryExecution entity.
func (m *SessionMutation) RemovedStoryExecutionsIDs() (ids []string) {
	for id := range m.removedstory_executions {
		ids = append(ids, id)
	}
	return
}

// StoryExecutionsIDs returns the "story_executions" edge IDs in the mutation.
func (m *SessionMutation) StoryExecutionsIDs() (ids []string) {
	for id := range m.story_executions {
		ids = append(ids, id)
	}
	return
}

// ResetStoryExecutions resets all changes to the "story_executions" edge.
func (m *SessionMutation) ResetStoryExecutions() {
	m.story_executions = nil
	m.clearedstory_executions = false
	m.removedstory_executions = nil
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by ids.
func (m *SessionMutation) AddCheckpointIDs(ids ...string) {
	if m.checkpoints == nil {
		m.checkpoints = make(map[string]struct{})
	}
	for i := range ids {
		m.checkpoints[ids[i]] = struct{}{}
	}
}

// ClearCheckpoints clears the "checkpoints" edge to the Checkpoint entity.
func (m *SessionMutation) ClearCheckpoints() {
	m.clearedcheckpoints = true
}

// CheckpointsCleared reports if the "checkpoints" edge to the Checkpoint entity was cleared.
func (m *SessionMutation) CheckpointsCleared() bool {
	return m.clearedcheckpoints
}

// RemoveCheckpointIDs removes the "checkpoints" edge to the Checkpoint entity by IDs.
func (m *SessionMutation) RemoveCheckpointIDs(ids ...string) {
	if m.removedcheckpoints == nil {
		m.removedcheckpoints = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.checkpoints, ids[i])
		m.removedcheckpoints[ids[i]] = struct{}{}
	}
}

// RemovedCheckpoints returns the removed IDs of the "checkpoints" edge to the Checkpoint entity.
func (m *SessionMutation) RemovedCheckpointsIDs() (ids []string) {
	for id := range m.removedcheckpoints {
		ids = append(ids, id)
	}
	return
}

// CheckpointsIDs returns the "checkpoints" edge IDs in the mutation.
func (m *SessionMutation) CheckpointsIDs() (ids []string) {
	for id := range m.checkpoints {
		ids = append(ids, id)
	}
	return
}

// ResetCheckpoints resets all changes to the "checkpoints" edge.
func (m *SessionMutation) ResetCheckpoints() {
	m.checkpoints = nil
	m.clearedcheckpoints = false
	m.removedcheckpoints = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.project_name != nil {
		fields = append(fields, session.FieldProjectName)
	}
	if m.wave_number != nil {
		fields = append(fields, session.FieldWaveNumber)
	}
	if m.status != nil {
		fields = append(fields, session.FieldStatus)
	}
	if m.budget_usd != nil {
		fields = append(fields, session.FieldBudgetUsd)
	}
	if m.actual_cost_usd != nil {
		fields = append(fields, session.FieldActualCostUsd)
	}
	if m.token_count != nil {
		fields = append(fields, session.FieldTokenCount)
	}
	if m.story_count != nil {
		fields = append(fields, session.FieldStoryCount)
	}
	if m.stories_completed != nil {
		fields = append(fields, session.FieldStoriesCompleted)
	}
	if m.stories_failed != nil {
		fields = append(fields, session.FieldStoriesFailed)
	}
	if m.meta_data != nil {
		fields = append(fields, session.FieldMetaData)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, session.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, session.FieldCompletedAt)
	}
	if m.failed_at != nil {
		fields = append(fields, session.FieldFailedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldProjectName:
		return m.ProjectName()
	case session.FieldWaveNumber:
		return m.WaveNumber()
	case session.FieldStatus:
		return m.Status()
	case session.FieldBudgetUsd:
		return m.BudgetUsd()
	case session.FieldActualCostUsd:
		return m.ActualCostUsd()
	case session.FieldTokenCount:
		return m.TokenCount()
	case session.FieldStoryCount:
		return m.StoryCount()
	case session.FieldStoriesCompleted:
		return m.StoriesCompleted()
	case session.FieldStoriesFailed:
		return m.StoriesFailed()
	case session.FieldMetaData:
		return m.MetaData()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldStartedAt:
		return m.StartedAt()
	case session.FieldCompletedAt:
		return m.CompletedAt()
	case session.FieldFailedAt:
		return m.FailedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldProjectName:
		return m.OldProjectName(ctx)
	case session.FieldWaveNumber:
		return m.OldWaveNumber(ctx)
	case session.FieldStatus:
		return m.OldStatus(ctx)
	case session.FieldBudgetUsd:
		return m.OldBudgetUsd(ctx)
	case session.FieldActualCostUsd:
		return m.OldActualCostUsd(ctx)
	case session.FieldTokenCount:
		return m.OldTokenCount(ctx)
	case session.FieldStoryCount:
		return m.OldStoryCount(ctx)
	case session.FieldStoriesCompleted:
		return m.OldStoriesCompleted(ctx)
	case session.FieldStoriesFailed:
		return m.OldStoriesFailed(ctx)
	case session.FieldMetaData:
		return m.OldMetaData(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case session.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case session.FieldFailedAt:
		return m.OldFailedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldProjectName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectName(v)
		return nil
	case session.FieldWaveNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWaveNumber(v)
		return nil
	case session.FieldStatus:
		v, ok := value.(session.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case session.FieldBudgetUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBudgetUsd(v)
		return nil
	case session.FieldActualCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualCostUsd(v)
		return nil
	case session.FieldTokenCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenCount(v)
		return nil
	case session.FieldStoryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoryCount(v)
		return nil
	case session.FieldStoriesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoriesCompleted(v)
		return nil
	case session.FieldStoriesFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoriesFailed(v)
		return nil
	case session.FieldMetaData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaData(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case session.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case session.FieldFailedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addwave_number != nil {
		fields = append(fields, session.FieldWaveNumber)
	}
	if m.addbudget_usd != nil {
		fields = append(fields, session.FieldBudgetUsd)
	}
	if m.addactual_cost_usd != nil {
		fields = append(fields, session.FieldActualCostUsd)
	}
	if m.addtoken_count != nil {
		fields = append(fields, session.FieldTokenCount)
	}
	if m.addstory_count != nil {
		fields = append(fields, session.FieldStoryCount)
	}
	if m.addstories_completed != nil {
		fields = append(fields, session.FieldStoriesCompleted)
	}
	if m.addstories_failed != nil {
		fields = append(fields, session.FieldStoriesFailed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldWaveNumber:
		return m.AddedWaveNumber()
	case session.FieldBudgetUsd:
		return m.AddedBudgetUsd()
	case session.FieldActualCostUsd:
		return m.AddedActualCostUsd()
	case session.FieldTokenCount:
		return m.AddedTokenCount()
	case session.FieldStoryCount:
		return m.AddedStoryCount()
	case session.FieldStoriesCompleted:
		return m.AddedStoriesCompleted()
	case session.FieldStoriesFailed:
		return m.AddedStoriesFailed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldWaveNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWaveNumber(v)
		return nil
	case session.FieldBudgetUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBudgetUsd(v)
		return nil
	case session.FieldActualCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActualCostUsd(v)
		return nil
	case session.FieldTokenCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenCount(v)
		return nil
	case session.FieldStoryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStoryCount(v)
		return nil
	case session.FieldStoriesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStoriesCompleted(v)
		return nil
	case session.FieldStoriesFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStoriesFailed(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldMetaData) {
		fields = append(fields, session.FieldMetaData)
	}
	if m.FieldCleared(session.FieldStartedAt) {
		fields = append(fields, session.FieldStartedAt)
	}
	if m.FieldCleared(session.FieldCompletedAt) {
		fields = append(fields, session.FieldCompletedAt)
	}
	if m.FieldCleared(session.FieldFailedAt) {
		fields = append(fields, session.FieldFailedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldMetaData:
		m.ClearMetaData()
		return nil
	case session.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case session.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case session.FieldFailedAt:
		m.ClearFailedAt()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldProjectName:
		m.ResetProjectName()
		return nil
	case session.FieldWaveNumber:
		m.ResetWaveNumber()
		return nil
	case session.FieldStatus:
		m.ResetStatus()
		return nil
	case session.FieldBudgetUsd:
		m.ResetBudgetUsd()
		return nil
	case session.FieldActualCostUsd:
		m.ResetActualCostUsd()
		return nil
	case session.FieldTokenCount:
		m.ResetTokenCount()
		return nil
	case session.FieldStoryCount:
		m.ResetStoryCount()
		return nil
	case session.FieldStoriesCompleted:
		m.ResetStoriesCompleted()
		return nil
	case session.FieldStoriesFailed:
		m.ResetStoriesFailed()
		return nil
	case session.FieldMetaData:
		m.ResetMetaData()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case session.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case session.FieldFailedAt:
		m.ResetFailedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.story_executions != nil {
		edges = append(edges, session.EdgeStoryExecutions)
	}
	if m.checkpoints != nil {
		edges = append(edges, session.EdgeCheckpoints)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeStoryExecutions:
		ids := make([]ent.Value, 0, len(m.story_executions))
		for id := range m.story_executions {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.checkpoints))
		for id := range m.checkpoints {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedstory_executions != nil {
		edges = append(edges, session.EdgeStoryExecutions)
	}
	if m.removedcheckpoints != nil {
		edges = append(edges, session.EdgeCheckpoints)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeStoryExecutions:
		ids := make([]ent.Value, 0, len(m.removedstory_executions))
		for id := range m.removedstory_executions {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.removedcheckpoints))
		for id := range m.removedcheckpoints {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedstory_executions {
		edges = append(edges, session.EdgeStoryExecutions)
	}
	if m.clearedcheckpoints {
		edges = append(edges, session.EdgeCheckpoints)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeStoryExecutions:
		return m.clearedstory_executions
	case session.EdgeCheckpoints:
		return m.clearedcheckpoints
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeStoryExecutions:
		m.ResetStoryExecutions()
		return nil
	case session.EdgeCheckpoints:
		m.ResetCheckpoints()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// StoryExecutionMutation represents an operation that mutates the StoryExecution nodes in the graph.
type StoryExecutionMutation struct {
	config
	op                            Op
	typ                           string
	id                            *string
	story_id                      *string
	title                         *string
	domain                        *string
	agent                         *string
	priority                      *int
	addpriority                   *int
	story_points                  *int
	addstory_points               *int
	status                        *storyexecution.Status
	current_gate                  *storyexecution.CurrentGate
	retry_count                   *int
	addretry_count                *int
	acceptance_criteria_passed    *int
	addacceptance_criteria_passed *int
	acceptance_criteria_total     *int
	addacceptance_criteria_total  *int
	files_created                 *[]string
	appendfiles_created           []string
	files_modified                *[]string
	appendfiles_modified          []string
	branch_name                   *string
	commit_sha                    *string
	pr_url                        *string
	tests_passing                 *bool
	coverage_achieved             *float64
	addcoverage_achieved          *float64
	error_message                 *string
	meta_data                     *map[string]interface{}
	created_at                    *time.Time
	started_at                    *time.Time
	completed_at                  *time.Time
	failed_at                     *time.Time
	clearedFields                 map[string]struct{}
	session                       *string
	clearedsession                bool
	done                          bool
	oldValue                      func(context.Context) (*StoryExecution, error)
	predicates                    []predicate.StoryExecution
}

var _ ent.Mutation = (*StoryExecutionMutation)(nil)

// storyexecutionOption allows management of the mutation configuration using functional options.
type storyexecutionOption func(*StoryExecutionMutation)

// newStoryExecutionMutation creates new mutation for the StoryExecution entity.
func newStoryExecutionMutation(c config, op Op, opts ...storyexecutionOption) *StoryExecutionMutation {
	m := &StoryExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeStoryExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStoryExecutionID sets the ID field of the mutation.
func withStoryExecutionID(id string) storyexecutionOption {
	return func(m *StoryExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *StoryExecution
		)
		m.oldValue = func(ctx context.Context) (*StoryExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StoryExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStoryExecution sets the old StoryExecution of the mutation.
func withStoryExecution(node *StoryExecution) storyexecutionOption {
	return func(m *StoryExecutionMutation) {
		m.oldValue = func(context.Context) (*StoryExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StoryExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StoryExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StoryExecution entities.
func (m *StoryExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StoryExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StoryExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StoryExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *StoryExecutionMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *StoryExecutionMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *StoryExecutionMutation) ResetSessionID() {
	m.session = nil
}

// SetStoryID sets the "story_id" field.
func (m *StoryExecutionMutation) SetStoryID(s string) {
	m.story_id = &s
}

// StoryID returns the value of the "story_id" field in the mutation.
func (m *StoryExecutionMutation) StoryID() (r string, exists bool) {
	v := m.story_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStoryID returns the old "story_id" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldStoryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoryID: %w", err)
	}
	return oldValue.StoryID, nil
}

// ResetStoryID resets all changes to the "story_id" field.
func (m *StoryExecutionMutation) ResetStoryID() {
	m.story_id = nil
}

// SetTitle sets the "title" field.
func (m *StoryExecutionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *StoryExecutionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *StoryExecutionMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[storyexecution.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *StoryExecutionMutation) TitleCleared() bool {
	_, ok := m.clearedFields[storyexecution.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *StoryExecutionMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, storyexecution.FieldTitle)
}

// SetDomain sets the "domain" field.
func (m *StoryExecutionMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *StoryExecutionMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *StoryExecutionMutation) ResetDomain() {
	m.domain = nil
}

// SetAgent sets the "agent" field.
func (m *StoryExecutionMutation) SetAgent(s string) {
	m.agent = &s
}

// Agent returns the value of the "agent" field in the mutation.
func (m *StoryExecutionMutation) Agent() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ClearAgent clears the value of the "agent" field.
func (m *StoryExecutionMutation) ClearAgent() {
	m.agent = nil
	m.clearedFields[storyexecution.FieldAgent] = struct{}{}
}

// AgentCleared returns if the "agent" field was cleared in this mutation.
func (m *StoryExecutionMutation) AgentCleared() bool {
	_, ok := m.clearedFields[storyexecution.FieldAgent]
	return ok
}

// ResetAgent resets all changes to the "agent" field.
func (m *StoryExecutionMutation) ResetAgent() {
	m.agent = nil
	delete(m.clearedFields, storyexecution.FieldAgent)
}

// SetPriority sets the "priority" field.
func (m *StoryExecutionMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *StoryExecutionMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *StoryExecutionMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *StoryExecutionMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *StoryExecutionMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStoryPoints sets the "story_points" field.
func (m *StoryExecutionMutation) SetStoryPoints(i int) {
	m.story_points = &i
	m.addstory_points = nil
}

// StoryPoints returns the value of the "story_points" field in the mutation.
func (m *StoryExecutionMutation) StoryPoints() (r int, exists bool) {
	v := m.story_points
	if v == nil {
		return
	}
	return *v, true
}

// OldStoryPoints returns the old "story_points" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldStoryPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoryPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoryPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoryPoints: %w", err)
	}
	return oldValue.StoryPoints, nil
}

// AddStoryPoints adds i to the "story_points" field.
func (m *StoryExecutionMutation) AddStoryPoints(i int) {
	if m.addstory_points != nil {
		*m.addstory_points += i
	} else {
		m.addstory_points = &i
	}
}

// AddedStoryPoints returns the value that was added to the "story_points" field in this mutation.
func (m *StoryExecutionMutation) AddedStoryPoints() (r int, exists bool) {
	v := m.addstory_points
	if v == nil {
		return
	}
	return *v, true
}

// ResetStoryPoints resets all changes to the "story_points" field.
func (m *StoryExecutionMutation) ResetStoryPoints() {
	m.story_points = nil
	m.addstory_points = nil
}

// SetStatus sets the "status" field.
func (m *StoryExecutionMutation) SetStatus(s storyexecution.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StoryExecutionMutation) Status() (r storyexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldStatus(ctx context.Context) (v storyexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StoryExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentGate sets the "current_gate" field.
func (m *StoryExecutionMutation) SetCurrentGate(sg storyexecution.CurrentGate) {
	m.current_gate = &sg
}

// CurrentGate returns the value of the "current_gate" field in the mutation.
func (m *StoryExecutionMutation) CurrentGate() (r storyexecution.CurrentGate, exists bool) {
	v := m.current_gate
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentGate returns the old "current_gate" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldCurrentGate(ctx context.Context) (v storyexecution.CurrentGate, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentGate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentGate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentGate: %w", err)
	}
	return oldValue.CurrentGate, nil
}

// ResetCurrentGate resets all changes to the "current_gate" field.
func (m *StoryExecutionMutation) ResetCurrentGate() {
	m.current_gate = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *StoryExecutionMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *StoryExecutionMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *StoryExecutionMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *StoryExecutionMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *StoryExecutionMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetAcceptanceCriteriaPassed sets the "acceptance_criteria_passed" field.
func (m *StoryExecutionMutation) SetAcceptanceCriteriaPassed(i int) {
	m.acceptance_criteria_passed = &i
	m.addacceptance_criteria_passed = nil
}

// AcceptanceCriteriaPassed returns the value of the "acceptance_criteria_passed" field in the mutation.
func (m *StoryExecutionMutation) AcceptanceCriteriaPassed() (r int, exists bool) {
	v := m.acceptance_criteria_passed
	if v == nil {
		return
	}
	return *v, true
}

// OldAcceptanceCriteriaPassed returns the old "acceptance_criteria_passed" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldAcceptanceCriteriaPassed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcceptanceCriteriaPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcceptanceCriteriaPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcceptanceCriteriaPassed: %w", err)
	}
	return oldValue.AcceptanceCriteriaPassed, nil
}

// AddAcceptanceCriteriaPassed adds i to the "acceptance_criteria_passed" field.
func (m *StoryExecutionMutation) AddAcceptanceCriteriaPassed(i int) {
	if m.addacceptance_criteria_passed != nil {
		*m.addacceptance_criteria_passed += i
	} else {
		m.addacceptance_criteria_passed = &i
	}
}

// AddedAcceptanceCriteriaPassed returns the value that was added to the "acceptance_criteria_passed" field in this mutation.
func (m *StoryExecutionMutation) AddedAcceptanceCriteriaPassed() (r int, exists bool) {
	v := m.addacceptance_criteria_passed
	if v == nil {
		return
	}
	return *v, true
}

// ResetAcceptanceCriteriaPassed resets all changes to the "acceptance_criteria_passed" field.
func (m *StoryExecutionMutation) ResetAcceptanceCriteriaPassed() {
	m.acceptance_criteria_passed = nil
	m.addacceptance_criteria_passed = nil
}

// SetAcceptanceCriteriaTotal sets the "acceptance_criteria_total" field.
func (m *StoryExecutionMutation) SetAcceptanceCriteriaTotal(i int) {
	m.acceptance_criteria_total = &i
	m.addacceptance_criteria_total = nil
}

// AcceptanceCriteriaTotal returns the value of the "acceptance_criteria_total" field in the mutation.
func (m *StoryExecutionMutation) AcceptanceCriteriaTotal() (r int, exists bool) {
	v := m.acceptance_criteria_total
	if v == nil {
		return
	}
	return *v, true
}

// OldAcceptanceCriteriaTotal returns the old "acceptance_criteria_total" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldAcceptanceCriteriaTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcceptanceCriteriaTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcceptanceCriteriaTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcceptanceCriteriaTotal: %w", err)
	}
	return oldValue.AcceptanceCriteriaTotal, nil
}

// AddAcceptanceCriteriaTotal adds i to the "acceptance_criteria_total" field.
func (m *StoryExecutionMutation) AddAcceptanceCriteriaTotal(i int) {
	if m.addacceptance_criteria_total != nil {
		*m.addacceptance_criteria_total += i
	} else {
		m.addacceptance_criteria_total = &i
	}
}

// AddedAcceptanceCriteriaTotal returns the value that was added to the "acceptance_criteria_total" field in this mutation.
func (m *StoryExecutionMutation) AddedAcceptanceCriteriaTotal() (r int, exists bool) {
	v := m.addacceptance_criteria_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetAcceptanceCriteriaTotal resets all changes to the "acceptance_criteria_total" field.
func (m *StoryExecutionMutation) ResetAcceptanceCriteriaTotal() {
	m.acceptance_criteria_total = nil
	m.addacceptance_criteria_total = nil
}

// SetFilesCreated sets the "files_created" field.
func (m *StoryExecutionMutation) SetFilesCreated(s []string) {
	m.files_created = &s
	m.appendfiles_created = nil
}

// FilesCreated returns the value of the "files_created" field in the mutation.
func (m *StoryExecutionMutation) FilesCreated() (r []string, exists bool) {
	v := m.files_created
	if v == nil {
		return
	}
	return *v, true
}

// OldFilesCreated returns the old "files_created" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldFilesCreated(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilesCreated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilesCreated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilesCreated: %w", err)
	}
	return oldValue.FilesCreated, nil
}

// AppendFilesCreated adds s to the "files_created" field.
func (m *StoryExecutionMutation) AppendFilesCreated(s []string) {
	m.appendfiles_created = append(m.appendfiles_created, s...)
}

// AppendedFilesCreated returns the list of values that were appended to the "files_created" field in this mutation.
func (m *StoryExecutionMutation) AppendedFilesCreated() ([]string, bool) {
	if len(m.appendfiles_created) == 0 {
		return nil, false
	}
	return m.appendfiles_created, true
}

// ClearFilesCreated clears the value of the "files_created" field.
func (m *StoryExecutionMutation) ClearFilesCreated() {
	m.files_created = nil
	m.appendfiles_created = nil
	m.clearedFields[storyexecution.FieldFilesCreated] = struct{}{}
}

// FilesCreatedCleared returns if the "files_created" field was cleared in this mutation.
func (m *StoryExecutionMutation) FilesCreatedCleared() bool {
	_, ok := m.clearedFields[storyexecution.FieldFilesCreated]
	return ok
}

// ResetFilesCreated resets all changes to the "files_created" field.
func (m *StoryExecutionMutation) ResetFilesCreated() {
	m.files_created = nil
	m.appendfiles_created = nil
	delete(m.clearedFields, storyexecution.FieldFilesCreated)
}

// SetFilesModified sets the "files_modified" field.
func (m *StoryExecutionMutation) SetFilesModified(s []string) {
	m.files_modified = &s
	m.appendfiles_modified = nil
}

// FilesModified returns the value of the "files_modified" field in the mutation.
func (m *StoryExecutionMutation) FilesModified() (r []string, exists bool) {
	v := m.files_modified
	if v == nil {
		return
	}
	return *v, true
}

// OldFilesModified returns the old "files_modified" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldFilesModified(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilesModified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilesModified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilesModified: %w", err)
	}
	return oldValue.FilesModified, nil
}

// AppendFilesModified adds s to the "files_modified" field.
func (m *StoryExecutionMutation) AppendFilesModified(s []string) {
	m.appendfiles_modified = append(m.appendfiles_modified, s...)
}

// AppendedFilesModified returns the list of values that were appended to the "files_modified" field in this mutation.
func (m *StoryExecutionMutation) AppendedFilesModified() ([]string, bool) {
	if len(m.appendfiles_modified) == 0 {
		return nil, false
	}
	return m.appendfiles_modified, true
}

// ClearFilesModified clears the value of the "files_modified" field.
func (m *StoryExecutionMutation) ClearFilesModified() {
	m.files_modified = nil
	m.appendfiles_modified = nil
	m.clearedFields[storyexecution.FieldFilesModified] = struct{}{}
}

// FilesModifiedCleared returns if the "files_modified" field was cleared in this mutation.
func (m *StoryExecutionMutation) FilesModifiedCleared() bool {
	_, ok := m.clearedFields[storyexecution.FieldFilesModified]
	return ok
}

// ResetFilesModified resets all changes to the "files_modified" field.
func (m *StoryExecutionMutation) ResetFilesModified() {
	m.files_modified = nil
	m.appendfiles_modified = nil
	delete(m.clearedFields, storyexecution.FieldFilesModified)
}

// SetBranchName sets the "branch_name" field.
func (m *StoryExecutionMutation) SetBranchName(s string) {
	m.branch_name = &s
}

// BranchName returns the value of the "branch_name" field in the mutation.
func (m *StoryExecutionMutation) BranchName() (r string, exists bool) {
	v := m.branch_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchName returns the old "branch_name" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldBranchName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchName: %w", err)
	}
	return oldValue.BranchName, nil
}

// ClearBranchName clears the value of the "branch_name" field.
func (m *StoryExecutionMutation) ClearBranchName() {
	m.branch_name = nil
	m.clearedFields[storyexecution.FieldBranchName] = struct{}{}
}

// BranchNameCleared returns if the "branch_name" field was cleared in this mutation.
func (m *StoryExecutionMutation) BranchNameCleared() bool {
	_, ok := m.clearedFields[storyexecution.FieldBranchName]
	return ok
}

// ResetBranchName resets all changes to the "branch_name" field.
func (m *StoryExecutionMutation) ResetBranchName() {
	m.branch_name = nil
	delete(m.clearedFields, storyexecution.FieldBranchName)
}

// SetCommitSha sets the "commit_sha" field.
func (m *StoryExecutionMutation) SetCommitSha(s string) {
	m.commit_sha = &s
}

// CommitSha returns the value of the "commit_sha" field in the mutation.
func (m *StoryExecutionMutation) CommitSha() (r string, exists bool) {
	v := m.commit_sha
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitSha returns the old "commit_sha" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldCommitSha(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitSha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitSha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitSha: %w", err)
	}
	return oldValue.CommitSha, nil
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (m *StoryExecutionMutation) ClearCommitSha() {
	m.commit_sha = nil
	m.clearedFields[storyexecution.FieldCommitSha] = struct{}{}
}

// CommitShaCleared returns if the "commit_sha" field was cleared in this mutation.
func (m *StoryExecutionMutation) CommitShaCleared() bool {
	_, ok := m.clearedFields[storyexecution.FieldCommitSha]
	return ok
}

// ResetCommitSha resets all changes to the "commit_sha" field.
func (m *StoryExecutionMutation) ResetCommitSha() {
	m.commit_sha = nil
	delete(m.clearedFields, storyexecution.FieldCommitSha)
}

// SetPrURL sets the "pr_url" field.
func (m *StoryExecutionMutation) SetPrURL(s string) {
	m.pr_url = &s
}

// PrURL returns the value of the "pr_url" field in the mutation.
func (m *StoryExecutionMutation) PrURL() (r string, exists bool) {
	v := m.pr_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPrURL returns the old "pr_url" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldPrURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrURL: %w", err)
	}
	return oldValue.PrURL, nil
}

// ClearPrURL clears the value of the "pr_url" field.
func (m *StoryExecutionMutation) ClearPrURL() {
	m.pr_url = nil
	m.clearedFields[storyexecution.FieldPrURL] = struct{}{}
}

// PrURLCleared returns if the "pr_url" field was cleared in this mutation.
func (m *StoryExecutionMutation) PrURLCleared() bool {
	_, ok := m.clearedFields[storyexecution.FieldPrURL]
	return ok
}

// ResetPrURL resets all changes to the "pr_url" field.
func (m *StoryExecutionMutation) ResetPrURL() {
	m.pr_url = nil
	delete(m.clearedFields, storyexecution.FieldPrURL)
}

// SetTestsPassing sets the "tests_passing" field.
func (m *StoryExecutionMutation) SetTestsPassing(b bool) {
	m.tests_passing = &b
}

// TestsPassing returns the value of the "tests_passing" field in the mutation.
func (m *StoryExecutionMutation) TestsPassing() (r bool, exists bool) {
	v := m.tests_passing
	if v == nil {
		return
	}
	return *v, true
}

// OldTestsPassing returns the old "tests_passing" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldTestsPassing(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestsPassing is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestsPassing requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestsPassing: %w", err)
	}
	return oldValue.TestsPassing, nil
}

// ClearTestsPassing clears the value of the "tests_passing" field.
func (m *StoryExecutionMutation) ClearTestsPassing() {
	m.tests_passing = nil
	m.clearedFields[storyexecution.FieldTestsPassing] = struct{}{}
}

// TestsPassingCleared returns if the "tests_passing" field was cleared in this mutation.
func (m *StoryExecutionMutation) TestsPassingCleared() bool {
	_, ok := m.clearedFields[storyexecution.FieldTestsPassing]
	return ok
}

// ResetTestsPassing resets all changes to the "tests_passing" field.
func (m *StoryExecutionMutation) ResetTestsPassing() {
	m.tests_passing = nil
	delete(m.clearedFields, storyexecution.FieldTestsPassing)
}

// SetCoverageAchieved sets the "coverage_achieved" field.
func (m *StoryExecutionMutation) SetCoverageAchieved(f float64) {
	m.coverage_achieved = &f
	m.addcoverage_achieved = nil
}

// CoverageAchieved returns the value of the "coverage_achieved" field in the mutation.
func (m *StoryExecutionMutation) CoverageAchieved() (r float64, exists bool) {
	v := m.coverage_achieved
	if v == nil {
		return
	}
	return *v, true
}

// OldCoverageAchieved returns the old "coverage_achieved" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldCoverageAchieved(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoverageAchieved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoverageAchieved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoverageAchieved: %w", err)
	}
	return oldValue.CoverageAchieved, nil
}

// AddCoverageAchieved adds f to the "coverage_achieved" field.
func (m *StoryExecutionMutation) AddCoverageAchieved(f float64) {
	if m.addcoverage_achieved != nil {
		*m.addcoverage_achieved += f
	} else {
		m.addcoverage_achieved = &f
	}
}

// AddedCoverageAchieved returns the value that was added to the "coverage_achieved" field in this mutation.
func (m *StoryExecutionMutation) AddedCoverageAchieved() (r float64, exists bool) {
	v := m.addcoverage_achieved
	if v == nil {
		return
	}
	return *v, true
}

// ClearCoverageAchieved clears the value of the "coverage_achieved" field.
func (m *StoryExecutionMutation) ClearCoverageAchieved() {
	m.coverage_achieved = nil
	m.addcoverage_achieved = nil
	m.clearedFields[storyexecution.FieldCoverageAchieved] = struct{}{}
}

// CoverageAchievedCleared returns if the "coverage_achieved" field was cleared in this mutation.
func (m *StoryExecutionMutation) CoverageAchievedCleared() bool {
	_, ok := m.clearedFields[storyexecution.FieldCoverageAchieved]
	return ok
}

// ResetCoverageAchieved resets all changes to the "coverage_achieved" field.
func (m *StoryExecutionMutation) ResetCoverageAchieved() {
	m.coverage_achieved = nil
	m.addcoverage_achieved = nil
	delete(m.clearedFields, storyexecution.FieldCoverageAchieved)
}

// SetErrorMessage sets the "error_message" field.
func (m *StoryExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *StoryExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *StoryExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[storyexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *StoryExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[storyexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *StoryExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, storyexecution.FieldErrorMessage)
}

// SetMetaData sets the "meta_data" field.
func (m *StoryExecutionMutation) SetMetaData(value map[string]interface{}) {
	m.meta_data = &value
}

// MetaData returns the value of the "meta_data" field in the mutation.
func (m *StoryExecutionMutation) MetaData() (r map[string]interface{}, exists bool) {
	v := m.meta_data
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaData returns the old "meta_data" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldMetaData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaData: %w", err)
	}
	return oldValue.MetaData, nil
}

// ClearMetaData clears the value of the "meta_data" field.
func (m *StoryExecutionMutation) ClearMetaData() {
	m.meta_data = nil
	m.clearedFields[storyexecution.FieldMetaData] = struct{}{}
}

// MetaDataCleared returns if the "meta_data" field was cleared in this mutation.
func (m *StoryExecutionMutation) MetaDataCleared() bool {
	_, ok := m.clearedFields[storyexecution.FieldMetaData]
	return ok
}

// ResetMetaData resets all changes to the "meta_data" field.
func (m *StoryExecutionMutation) ResetMetaData() {
	m.meta_data = nil
	delete(m.clearedFields, storyexecution.FieldMetaData)
}

// SetCreatedAt sets the "created_at" field.
func (m *StoryExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StoryExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StoryExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *StoryExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StoryExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *StoryExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[storyexecution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *StoryExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[storyexecution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StoryExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, storyexecution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *StoryExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StoryExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StoryExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[storyexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StoryExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[storyexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StoryExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, storyexecution.FieldCompletedAt)
}

// SetFailedAt sets the "failed_at" field.
func (m *StoryExecutionMutation) SetFailedAt(t time.Time) {
	m.failed_at = &t
}

// FailedAt returns the value of the "failed_at" field in the mutation.
func (m *StoryExecutionMutation) FailedAt() (r time.Time, exists bool) {
	v := m.failed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedAt returns the old "failed_at" field's value of the StoryExecution entity.
// If the StoryExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryExecutionMutation) OldFailedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedAt: %w", err)
	}
	return oldValue.FailedAt, nil
}

// ClearFailedAt clears the value of the "failed_at" field.
func (m *StoryExecutionMutation) ClearFailedAt() {
	m.failed_at = nil
	m.clearedFields[storyexecution.FieldFailedAt] = struct{}{}
}

// FailedAtCleared returns if the "failed_at" field was cleared in this mutation.
func (m *StoryExecutionMutation) FailedAtCleared() bool {
	_, ok := m.clearedFields[storyexecution.FieldFailedAt]
	return ok
}

// ResetFailedAt resets all changes to the "failed_at" field.
func (m *StoryExecutionMutation) ResetFailedAt() {
	m.failed_at = nil
	delete(m.clearedFields, storyexecution.FieldFailedAt)
}

// ClearSession clears the "session" edge to the Session entity.
func (m *StoryExecutionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[storyexecution.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *StoryExecutionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *StoryExecutionMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *StoryExecutionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the StoryExecutionMutation builder.
func (m *StoryExecutionMutation) Where(ps ...predicate.StoryExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StoryExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StoryExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StoryExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StoryExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StoryExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StoryExecution).
func (m *StoryExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StoryExecutionMutation) Fields() []string {
	fields := make([]string, 0, 25)
	if m.session != nil {
		fields = append(fields, storyexecution.FieldSessionID)
	}
	if m.story_id != nil {
		fields = append(fields, storyexecution.FieldStoryID)
	}
	if m.title != nil {
		fields = append(fields, storyexecution.FieldTitle)
	}
	if m.domain != nil {
		fields = append(fields, storyexecution.FieldDomain)
	}
	if m.agent != nil {
		fields = append(fields, storyexecution.FieldAgent)
	}
	if m.priority != nil {
		fields = append(fields, storyexecution.FieldPriority)
	}
	if m.story_points != nil {
		fields = append(fields, storyexecution.FieldStoryPoints)
	}
	if m.status != nil {
		fields = append(fields, storyexecution.FieldStatus)
	}
	if m.current_gate != nil {
		fields = append(fields, storyexecution.FieldCurrentGate)
	}
	if m.retry_count != nil {
		fields = append(fields, storyexecution.FieldRetryCount)
	}
	if m.acceptance_criteria_passed != nil {
		fields = append(fields, storyexecution.FieldAcceptanceCriteriaPassed)
	}
	if m.acceptance_criteria_total != nil {
		fields = append(fields, storyexecution.FieldAcceptanceCriteriaTotal)
	}
	if m.files_created != nil {
		fields = append(fields, storyexecution.FieldFilesCreated)
	}
	if m.files_modified != nil {
		fields = append(fields, storyexecution.FieldFilesModified)
	}
	if m.branch_name != nil {
		fields = append(fields, storyexecution.FieldBranchName)
	}
	if m.commit_sha != nil {
		fields = append(fields, storyexecution.FieldCommitSha)
	}
	if m.pr_url != nil {
		fields = append(fields, storyexecution.FieldPrURL)
	}
	if m.tests_passing != nil {
		fields = append(fields, storyexecution.FieldTestsPassing)
	}
	if m.coverage_achieved != nil {
		fields = append(fields, storyexecution.FieldCoverageAchieved)
	}
	if m.error_message != nil {
		fields = append(fields, storyexecution.FieldErrorMessage)
	}
	if m.meta_data != nil {
		fields = append(fields, storyexecution.FieldMetaData)
	}
	if m.created_at != nil {
		fields = append(fields, storyexecution.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, storyexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, storyexecution.FieldCompletedAt)
	}
	if m.failed_at != nil {
		fields = append(fields, storyexecution.FieldFailedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StoryExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case storyexecution.FieldSessionID:
		return m.SessionID()
	case storyexecution.FieldStoryID:
		return m.StoryID()
	case storyexecution.FieldTitle:
		return m.Title()
	case storyexecution.FieldDomain:
		return m.Domain()
	case storyexecution.FieldAgent:
		return m.Agent()
	case storyexecution.FieldPriority:
		return m.Priority()
	case storyexecution.FieldStoryPoints:
		return m.StoryPoints()
	case storyexecution.FieldStatus:
		return m.Status()
	case storyexecution.FieldCurrentGate:
		return m.CurrentGate()
	case storyexecution.FieldRetryCount:
		return m.RetryCount()
	case storyexecution.FieldAcceptanceCriteriaPassed:
		return m.AcceptanceCriteriaPassed()
	case storyexecution.FieldAcceptanceCriteriaTotal:
		return m.AcceptanceCriteriaTotal()
	case storyexecution.FieldFilesCreated:
		return m.FilesCreated()
	case storyexecution.FieldFilesModified:
		return m.FilesModified()
	case storyexecution.FieldBranchName:
		return m.BranchName()
	case storyexecution.FieldCommitSha:
		return m.CommitSha()
	case storyexecution.FieldPrURL:
		return m.PrURL()
	case storyexecution.FieldTestsPassing:
		return m.TestsPassing()
	case storyexecution.FieldCoverageAchieved:
		return m.CoverageAchieved()
	case storyexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case storyexecution.FieldMetaData:
		return m.MetaData()
	case storyexecution.FieldCreatedAt:
		return m.CreatedAt()
	case storyexecution.FieldStartedAt:
		return m.StartedAt()
	case storyexecution.FieldCompletedAt:
		return m.CompletedAt()
	case storyexecution.FieldFailedAt:
		return m.FailedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StoryExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case storyexecution.FieldSessionID:
		return m.OldSessionID(ctx)
	case storyexecution.FieldStoryID:
		return m.OldStoryID(ctx)
	case storyexecution.FieldTitle:
		return m.OldTitle(ctx)
	case storyexecution.FieldDomain:
		return m.OldDomain(ctx)
	case storyexecution.FieldAgent:
		return m.OldAgent(ctx)
	case storyexecution.FieldPriority:
		return m.OldPriority(ctx)
	case storyexecution.FieldStoryPoints:
		return m.OldStoryPoints(ctx)
	case storyexecution.FieldStatus:
		return m.OldStatus(ctx)
	case storyexecution.FieldCurrentGate:
		return m.OldCurrentGate(ctx)
	case storyexecution.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case storyexecution.FieldAcceptanceCriteriaPassed:
		return m.OldAcceptanceCriteriaPassed(ctx)
	case storyexecution.FieldAcceptanceCriteriaTotal:
		return m.OldAcceptanceCriteriaTotal(ctx)
	case storyexecution.FieldFilesCreated:
		return m.OldFilesCreated(ctx)
	case storyexecution.FieldFilesModified:
		return m.OldFilesModified(ctx)
	case storyexecution.FieldBranchName:
		return m.OldBranchName(ctx)
	case storyexecution.FieldCommitSha:
		return m.OldCommitSha(ctx)
	case storyexecution.FieldPrURL:
		return m.OldPrURL(ctx)
	case storyexecution.FieldTestsPassing:
		return m.OldTestsPassing(ctx)
	case storyexecution.FieldCoverageAchieved:
		return m.OldCoverageAchieved(ctx)
	case storyexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case storyexecution.FieldMetaData:
		return m.OldMetaData(ctx)
	case storyexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case storyexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case storyexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case storyexecution.FieldFailedAt:
		return m.OldFailedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StoryExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoryExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case storyexecution.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case storyexecution.FieldStoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoryID(v)
		return nil
	case storyexecution.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case storyexecution.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case storyexecution.FieldAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case storyexecution.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case storyexecution.FieldStoryPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoryPoints(v)
		return nil
	case storyexecution.FieldStatus:
		v, ok := value.(storyexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case storyexecution.FieldCurrentGate:
		v, ok := value.(storyexecution.CurrentGate)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentGate(v)
		return nil
	case storyexecution.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case storyexecution.FieldAcceptanceCriteriaPassed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcceptanceCriteriaPassed(v)
		return nil
	case storyexecution.FieldAcceptanceCriteriaTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcceptanceCriteriaTotal(v)
		return nil
	case storyexecution.FieldFilesCreated:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilesCreated(v)
		return nil
	case storyexecution.FieldFilesModified:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilesModified(v)
		return nil
	case storyexecution.FieldBranchName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchName(v)
		return nil
	case storyexecution.FieldCommitSha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitSha(v)
		return nil
	case storyexecution.FieldPrURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrURL(v)
		return nil
	case storyexecution.FieldTestsPassing:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestsPassing(v)
		return nil
	case storyexecution.FieldCoverageAchieved:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoverageAchieved(v)
		return nil
	case storyexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case storyexecution.FieldMetaData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaData(v)
		return nil
	case storyexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case storyexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case storyexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case storyexecution.FieldFailedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StoryExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StoryExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, storyexecution.FieldPriority)
	}
	if m.addstory_points != nil {
		fields = append(fields, storyexecution.FieldStoryPoints)
	}
	if m.addretry_count != nil {
		fields = append(fields, storyexecution.FieldRetryCount)
	}
	if m.addacceptance_criteria_passed != nil {
		fields = append(fields, storyexecution.FieldAcceptanceCriteriaPassed)
	}
	if m.addacceptance_criteria_total != nil {
		fields = append(fields, storyexecution.FieldAcceptanceCriteriaTotal)
	}
	if m.addcoverage_achieved != nil {
		fields = append(fields, storyexecution.FieldCoverageAchieved)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StoryExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case storyexecution.FieldPriority:
		return m.AddedPriority()
	case storyexecution.FieldStoryPoints:
		return m.AddedStoryPoints()
	case storyexecution.FieldRetryCount:
		return m.AddedRetryCount()
	case storyexecution.FieldAcceptanceCriteriaPassed:
		return m.AddedAcceptanceCriteriaPassed()
	case storyexecution.FieldAcceptanceCriteriaTotal:
		return m.AddedAcceptanceCriteriaTotal()
	case storyexecution.FieldCoverageAchieved:
		return m.AddedCoverageAchieved()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoryExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case storyexecution.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case storyexecution.FieldStoryPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStoryPoints(v)
		return nil
	case storyexecution.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case storyexecution.FieldAcceptanceCriteriaPassed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAcceptanceCriteriaPassed(v)
		return nil
	case storyexecution.FieldAcceptanceCriteriaTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAcceptanceCriteriaTotal(v)
		return nil
	case storyexecution.FieldCoverageAchieved:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCoverageAchieved(v)
		return nil
	}
	return fmt.Errorf("unknown StoryExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StoryExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(storyexecution.FieldTitle) {
		fields = append(fields, storyexecution.FieldTitle)
	}
	if m.FieldCleared(storyexecution.FieldAgent) {
		fields = append(fields, storyexecution.FieldAgent)
	}
	if m.FieldCleared(storyexecution.FieldFilesCreated) {
		fields = append(fields, storyexecution.FieldFilesCreated)
	}
	if m.FieldCleared(storyexecution.FieldFilesModified) {
		fields = append(fields, storyexecution.FieldFilesModified)
	}
	if m.FieldCleared(storyexecution.FieldBranchName) {
		fields = append(fields, storyexecution.FieldBranchName)
	}
	if m.FieldCleared(storyexecution.FieldCommitSha) {
		fields = append(fields, storyexecution.FieldCommitSha)
	}
	if m.FieldCleared(storyexecution.FieldPrURL) {
		fields = append(fields, storyexecution.FieldPrURL)
	}
	if m.FieldCleared(storyexecution.FieldTestsPassing) {
		fields = append(fields, storyexecution.FieldTestsPassing)
	}
	if m.FieldCleared(storyexecution.FieldCoverageAchieved) {
		fields = append(fields, storyexecution.FieldCoverageAchieved)
	}
	if m.FieldCleared(storyexecution.FieldErrorMessage) {
		fields = append(fields, storyexecution.FieldErrorMessage)
	}
	if m.FieldCleared(storyexecution.FieldMetaData) {
		fields = append(fields, storyexecution.FieldMetaData)
	}
	if m.FieldCleared(storyexecution.FieldStartedAt) {
		fields = append(fields, storyexecution.FieldStartedAt)
	}
	if m.FieldCleared(storyexecution.FieldCompletedAt) {
		fields = append(fields, storyexecution.FieldCompletedAt)
	}
	if m.FieldCleared(storyexecution.FieldFailedAt) {
		fields = append(fields, storyexecution.FieldFailedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StoryExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StoryExecutionMutation) ClearField(name string) error {
	switch name {
	case storyexecution.FieldTitle:
		m.ClearTitle()
		return nil
	case storyexecution.FieldAgent:
		m.ClearAgent()
		return nil
	case storyexecution.FieldFilesCreated:
		m.ClearFilesCreated()
		return nil
	case storyexecution.FieldFilesModified:
		m.ClearFilesModified()
		return nil
	case storyexecution.FieldBranchName:
		m.ClearBranchName()
		return nil
	case storyexecution.FieldCommitSha:
		m.ClearCommitSha()
		return nil
	case storyexecution.FieldPrURL:
		m.ClearPrURL()
		return nil
	case storyexecution.FieldTestsPassing:
		m.ClearTestsPassing()
		return nil
	case storyexecution.FieldCoverageAchieved:
		m.ClearCoverageAchieved()
		return nil
	case storyexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case storyexecution.FieldMetaData:
		m.ClearMetaData()
		return nil
	case storyexecution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case storyexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case storyexecution.FieldFailedAt:
		m.ClearFailedAt()
		return nil
	}
	return fmt.Errorf("unknown StoryExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StoryExecutionMutation) ResetField(name string) error {
	switch name {
	case storyexecution.FieldSessionID:
		m.ResetSessionID()
		return nil
	case storyexecution.FieldStoryID:
		m.ResetStoryID()
		return nil
	case storyexecution.FieldTitle:
		m.ResetTitle()
		return nil
	case storyexecution.FieldDomain:
		m.ResetDomain()
		return nil
	case storyexecution.FieldAgent:
		m.ResetAgent()
		return nil
	case storyexecution.FieldPriority:
		m.ResetPriority()
		return nil
	case storyexecution.FieldStoryPoints:
		m.ResetStoryPoints()
		return nil
	case storyexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case storyexecution.FieldCurrentGate:
		m.ResetCurrentGate()
		return nil
	case storyexecution.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case storyexecution.FieldAcceptanceCriteriaPassed:
		m.ResetAcceptanceCriteriaPassed()
		return nil
	case storyexecution.FieldAcceptanceCriteriaTotal:
		m.ResetAcceptanceCriteriaTotal()
		return nil
	case storyexecution.FieldFilesCreated:
		m.ResetFilesCreated()
		return nil
	case storyexecution.FieldFilesModified:
		m.ResetFilesModified()
		return nil
	case storyexecution.FieldBranchName:
		m.ResetBranchName()
		return nil
	case storyexecution.FieldCommitSha:
		m.ResetCommitSha()
		return nil
	case storyexecution.FieldPrURL:
		m.ResetPrURL()
		return nil
	case storyexecution.FieldTestsPassing:
		m.ResetTestsPassing()
		return nil
	case storyexecution.FieldCoverageAchieved:
		m.ResetCoverageAchieved()
		return nil
	case storyexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case storyexecution.FieldMetaData:
		m.ResetMetaData()
		return nil
	case storyexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case storyexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case storyexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case storyexecution.FieldFailedAt:
		m.ResetFailedAt()
		return nil
	}
	return fmt.Errorf("unknown StoryExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StoryExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, storyexecution.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StoryExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case storyexecution.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StoryExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StoryExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StoryExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, storyexecution.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StoryExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case storyexecution.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StoryExecutionMutation) ClearEdge(name string) error {
	switch name {
	case storyexecution.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown StoryExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StoryExecutionMutation) ResetEdge(name string) error {
	switch name {
	case storyexecution.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown StoryExecution edge %s", name)
}
