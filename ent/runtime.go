// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Boomerang-Apps/wave/ent/checkpoint"
	"github.com/Boomerang-Apps/wave/ent/schema"
	"github.com/Boomerang-Apps/wave/ent/session"
	"github.com/Boomerang-Apps/wave/ent/storyexecution"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescCheckpointName is the schema descriptor for checkpoint_name field.
	checkpointDescCheckpointName := checkpointFields[4].Descriptor()
	// checkpoint.CheckpointNameValidator is a validator for the "checkpoint_name" field. It is called by the builders before save.
	checkpoint.CheckpointNameValidator = checkpointDescCheckpointName.Validators[0].(func(string) error)
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointFields[10].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescProjectName is the schema descriptor for project_name field.
	sessionDescProjectName := sessionFields[1].Descriptor()
	// session.ProjectNameValidator is a validator for the "project_name" field. It is called by the builders before save.
	session.ProjectNameValidator = sessionDescProjectName.Validators[0].(func(string) error)
	// sessionDescWaveNumber is the schema descriptor for wave_number field.
	sessionDescWaveNumber := sessionFields[2].Descriptor()
	// session.DefaultWaveNumber holds the default value on creation for the wave_number field.
	session.DefaultWaveNumber = sessionDescWaveNumber.Default.(int)
	// session.WaveNumberValidator is a validator for the "wave_number" field. It is called by the builders before save.
	session.WaveNumberValidator = sessionDescWaveNumber.Validators[0].(func(int) error)
	// sessionDescBudgetUsd is the schema descriptor for budget_usd field.
	sessionDescBudgetUsd := sessionFields[4].Descriptor()
	// session.DefaultBudgetUsd holds the default value on creation for the budget_usd field.
	session.DefaultBudgetUsd = sessionDescBudgetUsd.Default.(float64)
	// session.BudgetUsdValidator is a validator for the "budget_usd" field. It is called by the builders before save.
	session.BudgetUsdValidator = sessionDescBudgetUsd.Validators[0].(func(float64) error)
	// sessionDescActualCostUsd is the schema descriptor for actual_cost_usd field.
	sessionDescActualCostUsd := sessionFields[5].Descriptor()
	// session.DefaultActualCostUsd holds the default value on creation for the actual_cost_usd field.
	session.DefaultActualCostUsd = sessionDescActualCostUsd.Default.(float64)
	// sessionDescTokenCount is the schema descriptor for token_count field.
	sessionDescTokenCount := sessionFields[6].Descriptor()
	// session.DefaultTokenCount holds the default value on creation for the token_count field.
	session.DefaultTokenCount = sessionDescTokenCount.Default.(int64)
	// sessionDescStoryCount is the schema descriptor for story_count field.
	sessionDescStoryCount := sessionFields[7].Descriptor()
	// session.DefaultStoryCount holds the default value on creation for the story_count field.
	session.DefaultStoryCount = sessionDescStoryCount.Default.(int)
	// sessionDescStoriesCompleted is the schema descriptor for stories_completed field.
	sessionDescStoriesCompleted := sessionFields[8].Descriptor()
	// session.DefaultStoriesCompleted holds the default value on creation for the stories_completed field.
	session.DefaultStoriesCompleted = sessionDescStoriesCompleted.Default.(int)
	// sessionDescStoriesFailed is the schema descriptor for stories_failed field.
	sessionDescStoriesFailed := sessionFields[9].Descriptor()
	// session.DefaultStoriesFailed holds the default value on creation for the stories_failed field.
	session.DefaultStoriesFailed = sessionDescStoriesFailed.Default.(int)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[11].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	storyexecutionFields := schema.StoryExecution{}.Fields()
	_ = storyexecutionFields
	// storyexecutionDescStoryID is the schema descriptor for story_id field.
	storyexecutionDescStoryID := storyexecutionFields[2].Descriptor()
	// storyexecution.StoryIDValidator is a validator for the "story_id" field. It is called by the builders before save.
	storyexecution.StoryIDValidator = storyexecutionDescStoryID.Validators[0].(func(string) error)
	// storyexecutionDescDomain is the schema descriptor for domain field.
	storyexecutionDescDomain := storyexecutionFields[4].Descriptor()
	// storyexecution.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	storyexecution.DomainValidator = storyexecutionDescDomain.Validators[0].(func(string) error)
	// storyexecutionDescPriority is the schema descriptor for priority field.
	storyexecutionDescPriority := storyexecutionFields[6].Descriptor()
	// storyexecution.DefaultPriority holds the default value on creation for the priority field.
	storyexecution.DefaultPriority = storyexecutionDescPriority.Default.(int)
	// storyexecutionDescStoryPoints is the schema descriptor for story_points field.
	storyexecutionDescStoryPoints := storyexecutionFields[7].Descriptor()
	// storyexecution.DefaultStoryPoints holds the default value on creation for the story_points field.
	storyexecution.DefaultStoryPoints = storyexecutionDescStoryPoints.Default.(int)
	// storyexecutionDescRetryCount is the schema descriptor for retry_count field.
	storyexecutionDescRetryCount := storyexecutionFields[10].Descriptor()
	// storyexecution.DefaultRetryCount holds the default value on creation for the retry_count field.
	storyexecution.DefaultRetryCount = storyexecutionDescRetryCount.Default.(int)
	// storyexecution.RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	storyexecution.RetryCountValidator = storyexecutionDescRetryCount.Validators[0].(func(int) error)
	// storyexecutionDescAcceptanceCriteriaPassed is the schema descriptor for acceptance_criteria_passed field.
	storyexecutionDescAcceptanceCriteriaPassed := storyexecutionFields[11].Descriptor()
	// storyexecution.DefaultAcceptanceCriteriaPassed holds the default value on creation for the acceptance_criteria_passed field.
	storyexecution.DefaultAcceptanceCriteriaPassed = storyexecutionDescAcceptanceCriteriaPassed.Default.(int)
	// storyexecutionDescAcceptanceCriteriaTotal is the schema descriptor for acceptance_criteria_total field.
	storyexecutionDescAcceptanceCriteriaTotal := storyexecutionFields[12].Descriptor()
	// storyexecution.DefaultAcceptanceCriteriaTotal holds the default value on creation for the acceptance_criteria_total field.
	storyexecution.DefaultAcceptanceCriteriaTotal = storyexecutionDescAcceptanceCriteriaTotal.Default.(int)
	// storyexecutionDescCreatedAt is the schema descriptor for created_at field.
	storyexecutionDescCreatedAt := storyexecutionFields[22].Descriptor()
	// storyexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	storyexecution.DefaultCreatedAt = storyexecutionDescCreatedAt.Default.(func() time.Time)
}
