// Code generated by ent, DO NOT EDIT.

package storyexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Boomerang-Apps/wave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldSessionID, v))
}

// StoryID applies equality check predicate on the "story_id" field. It's identical to StoryIDEQ.
func StoryID(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldStoryID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldTitle, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldDomain, v))
}

// Agent applies equality check predicate on the "agent" field. It's identical to AgentEQ.
func Agent(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldAgent, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldPriority, v))
}

// StoryPoints applies equality check predicate on the "story_points" field. It's identical to StoryPointsEQ.
func StoryPoints(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldStoryPoints, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldRetryCount, v))
}

// AcceptanceCriteriaPassed applies equality check predicate on the "acceptance_criteria_passed" field. It's identical to AcceptanceCriteriaPassedEQ.
func AcceptanceCriteriaPassed(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldAcceptanceCriteriaPassed, v))
}

// AcceptanceCriteriaTotal applies equality check predicate on the "acceptance_criteria_total" field. It's identical to AcceptanceCriteriaTotalEQ.
func AcceptanceCriteriaTotal(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldAcceptanceCriteriaTotal, v))
}

// BranchName applies equality check predicate on the "branch_name" field. It's identical to BranchNameEQ.
func BranchName(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldBranchName, v))
}

// CommitSha applies equality check predicate on the "commit_sha" field. It's identical to CommitShaEQ.
func CommitSha(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldCommitSha, v))
}

// PrURL applies equality check predicate on the "pr_url" field. It's identical to PrURLEQ.
func PrURL(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldPrURL, v))
}

// TestsPassing applies equality check predicate on the "tests_passing" field. It's identical to TestsPassingEQ.
func TestsPassing(v bool) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldTestsPassing, v))
}

// CoverageAchieved applies equality check predicate on the "coverage_achieved" field. It's identical to CoverageAchievedEQ.
func CoverageAchieved(v float64) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldCoverageAchieved, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// FailedAt applies equality check predicate on the "failed_at" field. It's identical to FailedAtEQ.
func FailedAt(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldFailedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldContainsFold(FieldSessionID, v))
}

// StoryIDEQ applies the EQ predicate on the "story_id" field.
func StoryIDEQ(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldStoryID, v))
}

// StoryIDNEQ applies the NEQ predicate on the "story_id" field.
func StoryIDNEQ(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldStoryID, v))
}

// StoryIDIn applies the In predicate on the "story_id" field.
func StoryIDIn(vs ...string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldStoryID, vs...))
}

// StoryIDNotIn applies the NotIn predicate on the "story_id" field.
func StoryIDNotIn(vs ...string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldStoryID, vs...))
}

// StoryIDGT applies the GT predicate on the "story_id" field.
func StoryIDGT(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGT(FieldStoryID, v))
}

// StoryIDGTE applies the GTE predicate on the "story_id" field.
func StoryIDGTE(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGTE(FieldStoryID, v))
}

// StoryIDLT applies the LT predicate on the "story_id" field.
func StoryIDLT(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLT(FieldStoryID, v))
}

// StoryIDLTE applies the LTE predicate on the "story_id" field.
func StoryIDLTE(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLTE(FieldStoryID, v))
}

// StoryIDContains applies the Contains predicate on the "story_id" field.
func StoryIDContains(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldContains(FieldStoryID, v))
}

// StoryIDHasPrefix applies the HasPrefix predicate on the "story_id" field.
func StoryIDHasPrefix(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldHasPrefix(FieldStoryID, v))
}

// StoryIDHasSuffix applies the HasSuffix predicate on the "story_id" field.
func StoryIDHasSuffix(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldHasSuffix(FieldStoryID, v))
}

// StoryIDEqualFold applies the EqualFold predicate on the "story_id" field.
func StoryIDEqualFold(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEqualFold(FieldStoryID, v))
}

// StoryIDContainsFold applies the ContainsFold predicate on the "story_id" field.
func StoryIDContainsFold(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldContainsFold(FieldStoryID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldContainsFold(FieldTitle, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldContainsFold(FieldDomain, v))
}

// AgentEQ applies the EQ predicate on the "agent" field.
func AgentEQ(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldAgent, v))
}

// AgentNEQ applies the NEQ predicate on the "agent" field.
func AgentNEQ(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldAgent, v))
}

// AgentIn applies the In predicate on the "agent" field.
func AgentIn(vs ...string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldAgent, vs...))
}

// AgentNotIn applies the NotIn predicate on the "agent" field.
func AgentNotIn(vs ...string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldAgent, vs...))
}

// AgentGT applies the GT predicate on the "agent" field.
func AgentGT(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGT(FieldAgent, v))
}

// AgentGTE applies the GTE predicate on the "agent" field.
func AgentGTE(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGTE(FieldAgent, v))
}

// AgentLT applies the LT predicate on the "agent" field.
func AgentLT(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLT(FieldAgent, v))
}

// AgentLTE applies the LTE predicate on the "agent" field.
func AgentLTE(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLTE(FieldAgent, v))
}

// AgentContains applies the Contains predicate on the "agent" field.
func AgentContains(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldContains(FieldAgent, v))
}

// AgentHasPrefix applies the HasPrefix predicate on the "agent" field.
func AgentHasPrefix(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldHasPrefix(FieldAgent, v))
}

// AgentHasSuffix applies the HasSuffix predicate on the "agent" field.
func AgentHasSuffix(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldHasSuffix(FieldAgent, v))
}

// AgentIsNil applies the IsNil predicate on the "agent" field.
func AgentIsNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIsNull(FieldAgent))
}

// AgentNotNil applies the NotNil predicate on the "agent" field.
func AgentNotNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotNull(FieldAgent))
}

// AgentEqualFold applies the EqualFold predicate on the "agent" field.
func AgentEqualFold(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEqualFold(FieldAgent, v))
}

// AgentContainsFold applies the ContainsFold predicate on the "agent" field.
func AgentContainsFold(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldContainsFold(FieldAgent, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLTE(FieldPriority, v))
}

// StoryPointsEQ applies the EQ predicate on the "story_points" field.
func StoryPointsEQ(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldStoryPoints, v))
}

// StoryPointsNEQ applies the NEQ predicate on the "story_points" field.
func StoryPointsNEQ(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldStoryPoints, v))
}

// StoryPointsIn applies the In predicate on the "story_points" field.
func StoryPointsIn(vs ...int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldStoryPoints, vs...))
}

// StoryPointsNotIn applies the NotIn predicate on the "story_points" field.
func StoryPointsNotIn(vs ...int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldStoryPoints, vs...))
}

// StoryPointsGT applies the GT predicate on the "story_points" field.
func StoryPointsGT(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGT(FieldStoryPoints, v))
}

// StoryPointsGTE applies the GTE predicate on the "story_points" field.
func StoryPointsGTE(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGTE(FieldStoryPoints, v))
}

// StoryPointsLT applies the LT predicate on the "story_points" field.
func StoryPointsLT(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLT(FieldStoryPoints, v))
}

// StoryPointsLTE applies the LTE predicate on the "story_points" field.
func StoryPointsLTE(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLTE(FieldStoryPoints, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentGateEQ applies the EQ predicate on the "current_gate" field.
func CurrentGateEQ(v CurrentGate) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldCurrentGate, v))
}

// CurrentGateNEQ applies the NEQ predicate on the "current_gate" field.
func CurrentGateNEQ(v CurrentGate) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldCurrentGate, v))
}

// CurrentGateIn applies the In predicate on the "current_gate" field.
func CurrentGateIn(vs ...CurrentGate) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldCurrentGate, vs...))
}

// CurrentGateNotIn applies the NotIn predicate on the "current_gate" field.
func CurrentGateNotIn(vs ...CurrentGate) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldCurrentGate, vs...))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLTE(FieldRetryCount, v))
}

// AcceptanceCriteriaPassedEQ applies the EQ predicate on the "acceptance_criteria_passed" field.
func AcceptanceCriteriaPassedEQ(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldAcceptanceCriteriaPassed, v))
}

// AcceptanceCriteriaPassedNEQ applies the NEQ predicate on the "acceptance_criteria_passed" field.
func AcceptanceCriteriaPassedNEQ(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldAcceptanceCriteriaPassed, v))
}

// AcceptanceCriteriaPassedIn applies the In predicate on the "acceptance_criteria_passed" field.
func AcceptanceCriteriaPassedIn(vs ...int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldAcceptanceCriteriaPassed, vs...))
}

// AcceptanceCriteriaPassedNotIn applies the NotIn predicate on the "acceptance_criteria_passed" field.
func AcceptanceCriteriaPassedNotIn(vs ...int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldAcceptanceCriteriaPassed, vs...))
}

// AcceptanceCriteriaPassedGT applies the GT predicate on the "acceptance_criteria_passed" field.
func AcceptanceCriteriaPassedGT(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGT(FieldAcceptanceCriteriaPassed, v))
}

// AcceptanceCriteriaPassedGTE applies the GTE predicate on the "acceptance_criteria_passed" field.
func AcceptanceCriteriaPassedGTE(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGTE(FieldAcceptanceCriteriaPassed, v))
}

// AcceptanceCriteriaPassedLT applies the LT predicate on the "acceptance_criteria_passed" field.
func AcceptanceCriteriaPassedLT(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLT(FieldAcceptanceCriteriaPassed, v))
}

// AcceptanceCriteriaPassedLTE applies the LTE predicate on the "acceptance_criteria_passed" field.
func AcceptanceCriteriaPassedLTE(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLTE(FieldAcceptanceCriteriaPassed, v))
}

// AcceptanceCriteriaTotalEQ applies the EQ predicate on the "acceptance_criteria_total" field.
func AcceptanceCriteriaTotalEQ(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldAcceptanceCriteriaTotal, v))
}

// AcceptanceCriteriaTotalNEQ applies the NEQ predicate on the "acceptance_criteria_total" field.
func AcceptanceCriteriaTotalNEQ(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldAcceptanceCriteriaTotal, v))
}

// AcceptanceCriteriaTotalIn applies the In predicate on the "acceptance_criteria_total" field.
func AcceptanceCriteriaTotalIn(vs ...int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldAcceptanceCriteriaTotal, vs...))
}

// AcceptanceCriteriaTotalNotIn applies the NotIn predicate on the "acceptance_criteria_total" field.
func AcceptanceCriteriaTotalNotIn(vs ...int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldAcceptanceCriteriaTotal, vs...))
}

// AcceptanceCriteriaTotalGT applies the GT predicate on the "acceptance_criteria_total" field.
func AcceptanceCriteriaTotalGT(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGT(FieldAcceptanceCriteriaTotal, v))
}

// AcceptanceCriteriaTotalGTE applies the GTE predicate on the "acceptance_criteria_total" field.
func AcceptanceCriteriaTotalGTE(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGTE(FieldAcceptanceCriteriaTotal, v))
}

// AcceptanceCriteriaTotalLT applies the LT predicate on the "acceptance_criteria_total" field.
func AcceptanceCriteriaTotalLT(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLT(FieldAcceptanceCriteriaTotal, v))
}

// AcceptanceCriteriaTotalLTE applies the LTE predicate on the "acceptance_criteria_total" field.
func AcceptanceCriteriaTotalLTE(v int) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLTE(FieldAcceptanceCriteriaTotal, v))
}

// FilesCreatedIsNil applies the IsNil predicate on the "files_created" field.
func FilesCreatedIsNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIsNull(FieldFilesCreated))
}

// FilesCreatedNotNil applies the NotNil predicate on the "files_created" field.
func FilesCreatedNotNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotNull(FieldFilesCreated))
}

// FilesModifiedIsNil applies the IsNil predicate on the "files_modified" field.
func FilesModifiedIsNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIsNull(FieldFilesModified))
}

// FilesModifiedNotNil applies the NotNil predicate on the "files_modified" field.
func FilesModifiedNotNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotNull(FieldFilesModified))
}

// BranchNameEQ applies the EQ predicate on the "branch_name" field.
func BranchNameEQ(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldBranchName, v))
}

// BranchNameNEQ applies the NEQ predicate on the "branch_name" field.
func BranchNameNEQ(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldBranchName, v))
}

// BranchNameIn applies the In predicate on the "branch_name" field.
func BranchNameIn(vs ...string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldBranchName, vs...))
}

// BranchNameNotIn applies the NotIn predicate on the "branch_name" field.
func BranchNameNotIn(vs ...string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldBranchName, vs...))
}

// BranchNameGT applies the GT predicate on the "branch_name" field.
func BranchNameGT(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGT(FieldBranchName, v))
}

// BranchNameGTE applies the GTE predicate on the "branch_name" field.
func BranchNameGTE(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGTE(FieldBranchName, v))
}

// BranchNameLT applies the LT predicate on the "branch_name" field.
func BranchNameLT(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLT(FieldBranchName, v))
}

// BranchNameLTE applies the LTE predicate on the "branch_name" field.
func BranchNameLTE(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLTE(FieldBranchName, v))
}

// BranchNameContains applies the Contains predicate on the "branch_name" field.
func BranchNameContains(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldContains(FieldBranchName, v))
}

// BranchNameHasPrefix applies the HasPrefix predicate on the "branch_name" field.
func BranchNameHasPrefix(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldHasPrefix(FieldBranchName, v))
}

// BranchNameHasSuffix applies the HasSuffix predicate on the "branch_name" field.
func BranchNameHasSuffix(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldHasSuffix(FieldBranchName, v))
}

// BranchNameIsNil applies the IsNil predicate on the "branch_name" field.
func BranchNameIsNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIsNull(FieldBranchName))
}

// BranchNameNotNil applies the NotNil predicate on the "branch_name" field.
func BranchNameNotNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotNull(FieldBranchName))
}

// BranchNameEqualFold applies the EqualFold predicate on the "branch_name" field.
func BranchNameEqualFold(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEqualFold(FieldBranchName, v))
}

// BranchNameContainsFold applies the ContainsFold predicate on the "branch_name" field.
func BranchNameContainsFold(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldContainsFold(FieldBranchName, v))
}

// CommitShaEQ applies the EQ predicate on the "commit_sha" field.
func CommitShaEQ(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldCommitSha, v))
}

// CommitShaNEQ applies the NEQ predicate on the "commit_sha" field.
func CommitShaNEQ(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldCommitSha, v))
}

// CommitShaIn applies the In predicate on the "commit_sha" field.
func CommitShaIn(vs ...string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldCommitSha, vs...))
}

// CommitShaNotIn applies the NotIn predicate on the "commit_sha" field.
func CommitShaNotIn(vs ...string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldCommitSha, vs...))
}

// CommitShaGT applies the GT predicate on the "commit_sha" field.
func CommitShaGT(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGT(FieldCommitSha, v))
}

// CommitShaGTE applies the GTE predicate on the "commit_sha" field.
func CommitShaGTE(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGTE(FieldCommitSha, v))
}

// CommitShaLT applies the LT predicate on the "commit_sha" field.
func CommitShaLT(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLT(FieldCommitSha, v))
}

// CommitShaLTE applies the LTE predicate on the "commit_sha" field.
func CommitShaLTE(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLTE(FieldCommitSha, v))
}

// CommitShaContains applies the Contains predicate on the "commit_sha" field.
func CommitShaContains(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldContains(FieldCommitSha, v))
}

// CommitShaHasPrefix applies the HasPrefix predicate on the "commit_sha" field.
func CommitShaHasPrefix(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldHasPrefix(FieldCommitSha, v))
}

// CommitShaHasSuffix applies the HasSuffix predicate on the "commit_sha" field.
func CommitShaHasSuffix(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldHasSuffix(FieldCommitSha, v))
}

// CommitShaIsNil applies the IsNil predicate on the "commit_sha" field.
func CommitShaIsNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIsNull(FieldCommitSha))
}

// CommitShaNotNil applies the NotNil predicate on the "commit_sha" field.
func CommitShaNotNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotNull(FieldCommitSha))
}

// CommitShaEqualFold applies the EqualFold predicate on the "commit_sha" field.
func CommitShaEqualFold(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEqualFold(FieldCommitSha, v))
}

// CommitShaContainsFold applies the ContainsFold predicate on the "commit_sha" field.
func CommitShaContainsFold(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldContainsFold(FieldCommitSha, v))
}

// PrURLEQ applies the EQ predicate on the "pr_url" field.
func PrURLEQ(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldPrURL, v))
}

// PrURLNEQ applies the NEQ predicate on the "pr_url" field.
func PrURLNEQ(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldPrURL, v))
}

// PrURLIn applies the In predicate on the "pr_url" field.
func PrURLIn(vs ...string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldPrURL, vs...))
}

// PrURLNotIn applies the NotIn predicate on the "pr_url" field.
func PrURLNotIn(vs ...string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldPrURL, vs...))
}

// PrURLGT applies the GT predicate on the "pr_url" field.
func PrURLGT(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGT(FieldPrURL, v))
}

// PrURLGTE applies the GTE predicate on the "pr_url" field.
func PrURLGTE(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGTE(FieldPrURL, v))
}

// PrURLLT applies the LT predicate on the "pr_url" field.
func PrURLLT(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLT(FieldPrURL, v))
}

// PrURLLTE applies the LTE predicate on the "pr_url" field.
func PrURLLTE(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLTE(FieldPrURL, v))
}

// PrURLContains applies the Contains predicate on the "pr_url" field.
func PrURLContains(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldContains(FieldPrURL, v))
}

// PrURLHasPrefix applies the HasPrefix predicate on the "pr_url" field.
func PrURLHasPrefix(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldHasPrefix(FieldPrURL, v))
}

// PrURLHasSuffix applies the HasSuffix predicate on the "pr_url" field.
func PrURLHasSuffix(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldHasSuffix(FieldPrURL, v))
}

// PrURLIsNil applies the IsNil predicate on the "pr_url" field.
func PrURLIsNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIsNull(FieldPrURL))
}

// PrURLNotNil applies the NotNil predicate on the "pr_url" field.
func PrURLNotNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotNull(FieldPrURL))
}

// PrURLEqualFold applies the EqualFold predicate on the "pr_url" field.
func PrURLEqualFold(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEqualFold(FieldPrURL, v))
}

// PrURLContainsFold applies the ContainsFold predicate on the "pr_url" field.
func PrURLContainsFold(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldContainsFold(FieldPrURL, v))
}

// TestsPassingEQ applies the EQ predicate on the "tests_passing" field.
func TestsPassingEQ(v bool) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldTestsPassing, v))
}

// TestsPassingNEQ applies the NEQ predicate on the "tests_passing" field.
func TestsPassingNEQ(v bool) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldTestsPassing, v))
}

// TestsPassingIsNil applies the IsNil predicate on the "tests_passing" field.
func TestsPassingIsNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIsNull(FieldTestsPassing))
}

// TestsPassingNotNil applies the NotNil predicate on the "tests_passing" field.
func TestsPassingNotNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotNull(FieldTestsPassing))
}

// CoverageAchievedEQ applies the EQ predicate on the "coverage_achieved" field.
func CoverageAchievedEQ(v float64) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldCoverageAchieved, v))
}

// CoverageAchievedNEQ applies the NEQ predicate on the "coverage_achieved" field.
func CoverageAchievedNEQ(v float64) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldCoverageAchieved, v))
}

// CoverageAchievedIn applies the In predicate on the "coverage_achieved" field.
func CoverageAchievedIn(vs ...float64) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldCoverageAchieved, vs...))
}

// CoverageAchievedNotIn applies the NotIn predicate on the "coverage_achieved" field.
func CoverageAchievedNotIn(vs ...float64) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldCoverageAchieved, vs...))
}

// CoverageAchievedGT applies the GT predicate on the "coverage_achieved" field.
func CoverageAchievedGT(v float64) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGT(FieldCoverageAchieved, v))
}

// CoverageAchievedGTE applies the GTE predicate on the "coverage_achieved" field.
func CoverageAchievedGTE(v float64) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGTE(FieldCoverageAchieved, v))
}

// CoverageAchievedLT applies the LT predicate on the "coverage_achieved" field.
func CoverageAchievedLT(v float64) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLT(FieldCoverageAchieved, v))
}

// CoverageAchievedLTE applies the LTE predicate on the "coverage_achieved" field.
func CoverageAchievedLTE(v float64) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLTE(FieldCoverageAchieved, v))
}

// CoverageAchievedIsNil applies the IsNil predicate on the "coverage_achieved" field.
func CoverageAchievedIsNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIsNull(FieldCoverageAchieved))
}

// CoverageAchievedNotNil applies the NotNil predicate on the "coverage_achieved" field.
func CoverageAchievedNotNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotNull(FieldCoverageAchieved))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldContainsFold(FieldErrorMessage, v))
}

// MetaDataIsNil applies the IsNil predicate on the "meta_data" field.
func MetaDataIsNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIsNull(FieldMetaData))
}

// MetaDataNotNil applies the NotNil predicate on the "meta_data" field.
func MetaDataNotNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotNull(FieldMetaData))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotNull(FieldCompletedAt))
}

// FailedAtEQ applies the EQ predicate on the "failed_at" field.
func FailedAtEQ(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldEQ(FieldFailedAt, v))
}

// FailedAtNEQ applies the NEQ predicate on the "failed_at" field.
func FailedAtNEQ(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNEQ(FieldFailedAt, v))
}

// FailedAtIn applies the In predicate on the "failed_at" field.
func FailedAtIn(vs ...time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIn(FieldFailedAt, vs...))
}

// FailedAtNotIn applies the NotIn predicate on the "failed_at" field.
func FailedAtNotIn(vs ...time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotIn(FieldFailedAt, vs...))
}

// FailedAtGT applies the GT predicate on the "failed_at" field.
func FailedAtGT(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGT(FieldFailedAt, v))
}

// FailedAtGTE applies the GTE predicate on the "failed_at" field.
func FailedAtGTE(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldGTE(FieldFailedAt, v))
}

// FailedAtLT applies the LT predicate on the "failed_at" field.
func FailedAtLT(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLT(FieldFailedAt, v))
}

// FailedAtLTE applies the LTE predicate on the "failed_at" field.
func FailedAtLTE(v time.Time) predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldLTE(FieldFailedAt, v))
}

// FailedAtIsNil applies the IsNil predicate on the "failed_at" field.
func FailedAtIsNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldIsNull(FieldFailedAt))
}

// FailedAtNotNil applies the NotNil predicate on the "failed_at" field.
func FailedAtNotNil() predicate.StoryExecution {
	return predicate.StoryExecution(sql.FieldNotNull(FieldFailedAt))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.StoryExecution {
	return predicate.StoryExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.StoryExecution {
	return predicate.StoryExecution(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StoryExecution) predicate.StoryExecution {
	return predicate.StoryExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StoryExecution) predicate.StoryExecution {
	return predicate.StoryExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StoryExecution) predicate.StoryExecution {
	return predicate.StoryExecution(sql.NotPredicates(p))
}
