// Code generated by ent, DO NOT EDIT.

package checkpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Boomerang-Apps/wave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldSessionID, v))
}

// ParentCheckpointID applies equality check predicate on the "parent_checkpoint_id" field. It's identical to ParentCheckpointIDEQ.
func ParentCheckpointID(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldParentCheckpointID, v))
}

// CheckpointName applies equality check predicate on the "checkpoint_name" field. It's identical to CheckpointNameEQ.
func CheckpointName(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldCheckpointName, v))
}

// StoryID applies equality check predicate on the "story_id" field. It's identical to StoryIDEQ.
func StoryID(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldStoryID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldAgentID, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldSeq, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldSessionID, v))
}

// ParentCheckpointIDEQ applies the EQ predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldParentCheckpointID, v))
}

// ParentCheckpointIDNEQ applies the NEQ predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldParentCheckpointID, v))
}

// ParentCheckpointIDIn applies the In predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldParentCheckpointID, vs...))
}

// ParentCheckpointIDNotIn applies the NotIn predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldParentCheckpointID, vs...))
}

// ParentCheckpointIDGT applies the GT predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldParentCheckpointID, v))
}

// ParentCheckpointIDGTE applies the GTE predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldParentCheckpointID, v))
}

// ParentCheckpointIDLT applies the LT predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldParentCheckpointID, v))
}

// ParentCheckpointIDLTE applies the LTE predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldParentCheckpointID, v))
}

// ParentCheckpointIDContains applies the Contains predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldParentCheckpointID, v))
}

// ParentCheckpointIDHasPrefix applies the HasPrefix predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldParentCheckpointID, v))
}

// ParentCheckpointIDHasSuffix applies the HasSuffix predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldParentCheckpointID, v))
}

// ParentCheckpointIDIsNil applies the IsNil predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldParentCheckpointID))
}

// ParentCheckpointIDNotNil applies the NotNil predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldParentCheckpointID))
}

// ParentCheckpointIDEqualFold applies the EqualFold predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldParentCheckpointID, v))
}

// ParentCheckpointIDContainsFold applies the ContainsFold predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldParentCheckpointID, v))
}

// CheckpointTypeEQ applies the EQ predicate on the "checkpoint_type" field.
func CheckpointTypeEQ(v CheckpointType) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldCheckpointType, v))
}

// CheckpointTypeNEQ applies the NEQ predicate on the "checkpoint_type" field.
func CheckpointTypeNEQ(v CheckpointType) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldCheckpointType, v))
}

// CheckpointTypeIn applies the In predicate on the "checkpoint_type" field.
func CheckpointTypeIn(vs ...CheckpointType) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldCheckpointType, vs...))
}

// CheckpointTypeNotIn applies the NotIn predicate on the "checkpoint_type" field.
func CheckpointTypeNotIn(vs ...CheckpointType) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldCheckpointType, vs...))
}

// CheckpointNameEQ applies the EQ predicate on the "checkpoint_name" field.
func CheckpointNameEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldCheckpointName, v))
}

// CheckpointNameNEQ applies the NEQ predicate on the "checkpoint_name" field.
func CheckpointNameNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldCheckpointName, v))
}

// CheckpointNameIn applies the In predicate on the "checkpoint_name" field.
func CheckpointNameIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldCheckpointName, vs...))
}

// CheckpointNameNotIn applies the NotIn predicate on the "checkpoint_name" field.
func CheckpointNameNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldCheckpointName, vs...))
}

// CheckpointNameGT applies the GT predicate on the "checkpoint_name" field.
func CheckpointNameGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldCheckpointName, v))
}

// CheckpointNameGTE applies the GTE predicate on the "checkpoint_name" field.
func CheckpointNameGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldCheckpointName, v))
}

// CheckpointNameLT applies the LT predicate on the "checkpoint_name" field.
func CheckpointNameLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldCheckpointName, v))
}

// CheckpointNameLTE applies the LTE predicate on the "checkpoint_name" field.
func CheckpointNameLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldCheckpointName, v))
}

// CheckpointNameContains applies the Contains predicate on the "checkpoint_name" field.
func CheckpointNameContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldCheckpointName, v))
}

// CheckpointNameHasPrefix applies the HasPrefix predicate on the "checkpoint_name" field.
func CheckpointNameHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldCheckpointName, v))
}

// CheckpointNameHasSuffix applies the HasSuffix predicate on the "checkpoint_name" field.
func CheckpointNameHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldCheckpointName, v))
}

// CheckpointNameEqualFold applies the EqualFold predicate on the "checkpoint_name" field.
func CheckpointNameEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldCheckpointName, v))
}

// CheckpointNameContainsFold applies the ContainsFold predicate on the "checkpoint_name" field.
func CheckpointNameContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldCheckpointName, v))
}

// StateIsNil applies the IsNil predicate on the "state" field.
func StateIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldState))
}

// StateNotNil applies the NotNil predicate on the "state" field.
func StateNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldState))
}

// StoryIDEQ applies the EQ predicate on the "story_id" field.
func StoryIDEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldStoryID, v))
}

// StoryIDNEQ applies the NEQ predicate on the "story_id" field.
func StoryIDNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldStoryID, v))
}

// StoryIDIn applies the In predicate on the "story_id" field.
func StoryIDIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldStoryID, vs...))
}

// StoryIDNotIn applies the NotIn predicate on the "story_id" field.
func StoryIDNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldStoryID, vs...))
}

// StoryIDGT applies the GT predicate on the "story_id" field.
func StoryIDGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldStoryID, v))
}

// StoryIDGTE applies the GTE predicate on the "story_id" field.
func StoryIDGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldStoryID, v))
}

// StoryIDLT applies the LT predicate on the "story_id" field.
func StoryIDLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldStoryID, v))
}

// StoryIDLTE applies the LTE predicate on the "story_id" field.
func StoryIDLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldStoryID, v))
}

// StoryIDContains applies the Contains predicate on the "story_id" field.
func StoryIDContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldStoryID, v))
}

// StoryIDHasPrefix applies the HasPrefix predicate on the "story_id" field.
func StoryIDHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldStoryID, v))
}

// StoryIDHasSuffix applies the HasSuffix predicate on the "story_id" field.
func StoryIDHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldStoryID, v))
}

// StoryIDIsNil applies the IsNil predicate on the "story_id" field.
func StoryIDIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldStoryID))
}

// StoryIDNotNil applies the NotNil predicate on the "story_id" field.
func StoryIDNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldStoryID))
}

// StoryIDEqualFold applies the EqualFold predicate on the "story_id" field.
func StoryIDEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldStoryID, v))
}

// StoryIDContainsFold applies the ContainsFold predicate on the "story_id" field.
func StoryIDContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldStoryID, v))
}

// GateEQ applies the EQ predicate on the "gate" field.
func GateEQ(v Gate) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldGate, v))
}

// GateNEQ applies the NEQ predicate on the "gate" field.
func GateNEQ(v Gate) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldGate, v))
}

// GateIn applies the In predicate on the "gate" field.
func GateIn(vs ...Gate) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldGate, vs...))
}

// GateNotIn applies the NotIn predicate on the "gate" field.
func GateNotIn(vs ...Gate) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldGate, vs...))
}

// GateIsNil applies the IsNil predicate on the "gate" field.
func GateIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldGate))
}

// GateNotNil applies the NotNil predicate on the "gate" field.
func GateNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldGate))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldAgentID))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldAgentID, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldSeq, v))
}

// SeqContains applies the Contains predicate on the "seq" field.
func SeqContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldSeq, v))
}

// SeqHasPrefix applies the HasPrefix predicate on the "seq" field.
func SeqHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldSeq, v))
}

// SeqHasSuffix applies the HasSuffix predicate on the "seq" field.
func SeqHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldSeq, v))
}

// SeqEqualFold applies the EqualFold predicate on the "seq" field.
func SeqEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldSeq, v))
}

// SeqContainsFold applies the ContainsFold predicate on the "seq" field.
func SeqContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldSeq, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Checkpoint {
	return predicate.Checkpoint(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.Checkpoint {
	return predicate.Checkpoint(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Checkpoint) predicate.Checkpoint {
	return predicate.Checkpoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Checkpoint) predicate.Checkpoint {
	return predicate.Checkpoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Checkpoint) predicate.Checkpoint {
	return predicate.Checkpoint(sql.NotPredicates(p))
}
