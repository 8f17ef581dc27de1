// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Boomerang-Apps/wave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// ProjectName applies equality check predicate on the "project_name" field. It's identical to ProjectNameEQ.
func ProjectName(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProjectName, v))
}

// WaveNumber applies equality check predicate on the "wave_number" field. It's identical to WaveNumberEQ.
func WaveNumber(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldWaveNumber, v))
}

// BudgetUsd applies equality check predicate on the "budget_usd" field. It's identical to BudgetUsdEQ.
func BudgetUsd(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldBudgetUsd, v))
}

// ActualCostUsd applies equality check predicate on the "actual_cost_usd" field. It's identical to ActualCostUsdEQ.
func ActualCostUsd(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldActualCostUsd, v))
}

// TokenCount applies equality check predicate on the "token_count" field. It's identical to TokenCountEQ.
func TokenCount(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTokenCount, v))
}

// StoryCount applies equality check predicate on the "story_count" field. It's identical to StoryCountEQ.
func StoryCount(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStoryCount, v))
}

// StoriesCompleted applies equality check predicate on the "stories_completed" field. It's identical to StoriesCompletedEQ.
func StoriesCompleted(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStoriesCompleted, v))
}

// StoriesFailed applies equality check predicate on the "stories_failed" field. It's identical to StoriesFailedEQ.
func StoriesFailed(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStoriesFailed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCompletedAt, v))
}

// FailedAt applies equality check predicate on the "failed_at" field. It's identical to FailedAtEQ.
func FailedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldFailedAt, v))
}

// ProjectNameEQ applies the EQ predicate on the "project_name" field.
func ProjectNameEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProjectName, v))
}

// ProjectNameNEQ applies the NEQ predicate on the "project_name" field.
func ProjectNameNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldProjectName, v))
}

// ProjectNameIn applies the In predicate on the "project_name" field.
func ProjectNameIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldProjectName, vs...))
}

// ProjectNameNotIn applies the NotIn predicate on the "project_name" field.
func ProjectNameNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldProjectName, vs...))
}

// ProjectNameGT applies the GT predicate on the "project_name" field.
func ProjectNameGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldProjectName, v))
}

// ProjectNameGTE applies the GTE predicate on the "project_name" field.
func ProjectNameGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldProjectName, v))
}

// ProjectNameLT applies the LT predicate on the "project_name" field.
func ProjectNameLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldProjectName, v))
}

// ProjectNameLTE applies the LTE predicate on the "project_name" field.
func ProjectNameLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldProjectName, v))
}

// ProjectNameContains applies the Contains predicate on the "project_name" field.
func ProjectNameContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldProjectName, v))
}

// ProjectNameHasPrefix applies the HasPrefix predicate on the "project_name" field.
func ProjectNameHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldProjectName, v))
}

// ProjectNameHasSuffix applies the HasSuffix predicate on the "project_name" field.
func ProjectNameHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldProjectName, v))
}

// ProjectNameEqualFold applies the EqualFold predicate on the "project_name" field.
func ProjectNameEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldProjectName, v))
}

// ProjectNameContainsFold applies the ContainsFold predicate on the "project_name" field.
func ProjectNameContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldProjectName, v))
}

// WaveNumberEQ applies the EQ predicate on the "wave_number" field.
func WaveNumberEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldWaveNumber, v))
}

// WaveNumberNEQ applies the NEQ predicate on the "wave_number" field.
func WaveNumberNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldWaveNumber, v))
}

// WaveNumberIn applies the In predicate on the "wave_number" field.
func WaveNumberIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldWaveNumber, vs...))
}

// WaveNumberNotIn applies the NotIn predicate on the "wave_number" field.
func WaveNumberNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldWaveNumber, vs...))
}

// WaveNumberGT applies the GT predicate on the "wave_number" field.
func WaveNumberGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldWaveNumber, v))
}

// WaveNumberGTE applies the GTE predicate on the "wave_number" field.
func WaveNumberGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldWaveNumber, v))
}

// WaveNumberLT applies the LT predicate on the "wave_number" field.
func WaveNumberLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldWaveNumber, v))
}

// WaveNumberLTE applies the LTE predicate on the "wave_number" field.
func WaveNumberLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldWaveNumber, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStatus, vs...))
}

// BudgetUsdEQ applies the EQ predicate on the "budget_usd" field.
func BudgetUsdEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldBudgetUsd, v))
}

// BudgetUsdNEQ applies the NEQ predicate on the "budget_usd" field.
func BudgetUsdNEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldBudgetUsd, v))
}

// BudgetUsdIn applies the In predicate on the "budget_usd" field.
func BudgetUsdIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldBudgetUsd, vs...))
}

// BudgetUsdNotIn applies the NotIn predicate on the "budget_usd" field.
func BudgetUsdNotIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldBudgetUsd, vs...))
}

// BudgetUsdGT applies the GT predicate on the "budget_usd" field.
func BudgetUsdGT(v float64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldBudgetUsd, v))
}

// BudgetUsdGTE applies the GTE predicate on the "budget_usd" field.
func BudgetUsdGTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldBudgetUsd, v))
}

// BudgetUsdLT applies the LT predicate on the "budget_usd" field.
func BudgetUsdLT(v float64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldBudgetUsd, v))
}

// BudgetUsdLTE applies the LTE predicate on the "budget_usd" field.
func BudgetUsdLTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldBudgetUsd, v))
}

// ActualCostUsdEQ applies the EQ predicate on the "actual_cost_usd" field.
func ActualCostUsdEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldActualCostUsd, v))
}

// ActualCostUsdNEQ applies the NEQ predicate on the "actual_cost_usd" field.
func ActualCostUsdNEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldActualCostUsd, v))
}

// ActualCostUsdIn applies the In predicate on the "actual_cost_usd" field.
func ActualCostUsdIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldActualCostUsd, vs...))
}

// ActualCostUsdNotIn applies the NotIn predicate on the "actual_cost_usd" field.
func ActualCostUsdNotIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldActualCostUsd, vs...))
}

// ActualCostUsdGT applies the GT predicate on the "actual_cost_usd" field.
func ActualCostUsdGT(v float64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldActualCostUsd, v))
}

// ActualCostUsdGTE applies the GTE predicate on the "actual_cost_usd" field.
func ActualCostUsdGTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldActualCostUsd, v))
}

// ActualCostUsdLT applies the LT predicate on the "actual_cost_usd" field.
func ActualCostUsdLT(v float64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldActualCostUsd, v))
}

// ActualCostUsdLTE applies the LTE predicate on the "actual_cost_usd" field.
func ActualCostUsdLTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldActualCostUsd, v))
}

// TokenCountEQ applies the EQ predicate on the "token_count" field.
func TokenCountEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTokenCount, v))
}

// TokenCountNEQ applies the NEQ predicate on the "token_count" field.
func TokenCountNEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTokenCount, v))
}

// TokenCountIn applies the In predicate on the "token_count" field.
func TokenCountIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTokenCount, vs...))
}

// TokenCountNotIn applies the NotIn predicate on the "token_count" field.
func TokenCountNotIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTokenCount, vs...))
}

// TokenCountGT applies the GT predicate on the "token_count" field.
func TokenCountGT(v int64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTokenCount, v))
}

// TokenCountGTE applies the GTE predicate on the "token_count" field.
func TokenCountGTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTokenCount, v))
}

// TokenCountLT applies the LT predicate on the "token_count" field.
func TokenCountLT(v int64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTokenCount, v))
}

// TokenCountLTE applies the LTE predicate on the "token_count" field.
func TokenCountLTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTokenCount, v))
}

// StoryCountEQ applies the EQ predicate on the "story_count" field.
func StoryCountEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStoryCount, v))
}

// StoryCountNEQ applies the NEQ predicate on the "story_count" field.
func StoryCountNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStoryCount, v))
}

// StoryCountIn applies the In predicate on the "story_count" field.
func StoryCountIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStoryCount, vs...))
}

// StoryCountNotIn applies the NotIn predicate on the "story_count" field.
func StoryCountNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStoryCount, vs...))
}

// StoryCountGT applies the GT predicate on the "story_count" field.
func StoryCountGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStoryCount, v))
}

// StoryCountGTE applies the GTE predicate on the "story_count" field.
func StoryCountGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStoryCount, v))
}

// StoryCountLT applies the LT predicate on the "story_count" field.
func StoryCountLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStoryCount, v))
}

// StoryCountLTE applies the LTE predicate on the "story_count" field.
func StoryCountLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStoryCount, v))
}

// StoriesCompletedEQ applies the EQ predicate on the "stories_completed" field.
func StoriesCompletedEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStoriesCompleted, v))
}

// StoriesCompletedNEQ applies the NEQ predicate on the "stories_completed" field.
func StoriesCompletedNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStoriesCompleted, v))
}

// StoriesCompletedIn applies the In predicate on the "stories_completed" field.
func StoriesCompletedIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStoriesCompleted, vs...))
}

// StoriesCompletedNotIn applies the NotIn predicate on the "stories_completed" field.
func StoriesCompletedNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStoriesCompleted, vs...))
}

// StoriesCompletedGT applies the GT predicate on the "stories_completed" field.
func StoriesCompletedGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStoriesCompleted, v))
}

// StoriesCompletedGTE applies the GTE predicate on the "stories_completed" field.
func StoriesCompletedGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStoriesCompleted, v))
}

// StoriesCompletedLT applies the LT predicate on the "stories_completed" field.
func StoriesCompletedLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStoriesCompleted, v))
}

// StoriesCompletedLTE applies the LTE predicate on the "stories_completed" field.
func StoriesCompletedLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStoriesCompleted, v))
}

// StoriesFailedEQ applies the EQ predicate on the "stories_failed" field.
func StoriesFailedEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStoriesFailed, v))
}

// StoriesFailedNEQ applies the NEQ predicate on the "stories_failed" field.
func StoriesFailedNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStoriesFailed, v))
}

// StoriesFailedIn applies the In predicate on the "stories_failed" field.
func StoriesFailedIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStoriesFailed, vs...))
}

// StoriesFailedNotIn applies the NotIn predicate on the "stories_failed" field.
func StoriesFailedNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStoriesFailed, vs...))
}

// StoriesFailedGT applies the GT predicate on the "stories_failed" field.
func StoriesFailedGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStoriesFailed, v))
}

// StoriesFailedGTE applies the GTE predicate on the "stories_failed" field.
func StoriesFailedGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStoriesFailed, v))
}

// StoriesFailedLT applies the LT predicate on the "stories_failed" field.
func StoriesFailedLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStoriesFailed, v))
}

// StoriesFailedLTE applies the LTE predicate on the "stories_failed" field.
func StoriesFailedLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStoriesFailed, v))
}

// MetaDataIsNil applies the IsNil predicate on the "meta_data" field.
func MetaDataIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldMetaData))
}

// MetaDataNotNil applies the NotNil predicate on the "meta_data" field.
func MetaDataNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldMetaData))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldCompletedAt))
}

// FailedAtEQ applies the EQ predicate on the "failed_at" field.
func FailedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldFailedAt, v))
}

// FailedAtNEQ applies the NEQ predicate on the "failed_at" field.
func FailedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldFailedAt, v))
}

// FailedAtIn applies the In predicate on the "failed_at" field.
func FailedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldFailedAt, vs...))
}

// FailedAtNotIn applies the NotIn predicate on the "failed_at" field.
func FailedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldFailedAt, vs...))
}

// FailedAtGT applies the GT predicate on the "failed_at" field.
func FailedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldFailedAt, v))
}

// FailedAtGTE applies the GTE predicate on the "failed_at" field.
func FailedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldFailedAt, v))
}

// FailedAtLT applies the LT predicate on the "failed_at" field.
func FailedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldFailedAt, v))
}

// FailedAtLTE applies the LTE predicate on the "failed_at" field.
func FailedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldFailedAt, v))
}

// FailedAtIsNil applies the IsNil predicate on the "failed_at" field.
func FailedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldFailedAt))
}

// FailedAtNotNil applies the NotNil predicate on the "failed_at" field.
func FailedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldFailedAt))
}

// HasStoryExecutions applies the HasEdge predicate on the "story_executions" edge.
func HasStoryExecutions() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StoryExecutionsTable, StoryExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStoryExecutionsWith applies the HasEdge predicate on the "story_executions" edge with a given conditions (other predicates).
func HasStoryExecutionsWith(preds ...predicate.StoryExecution) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newStoryExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCheckpoints applies the HasEdge predicate on the "checkpoints" edge.
func HasCheckpoints() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCheckpointsWith applies the HasEdge predicate on the "checkpoints" edge with a given conditions (other predicates).
func HasCheckpointsWith(preds ...predicate.Checkpoint) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newCheckpointsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
