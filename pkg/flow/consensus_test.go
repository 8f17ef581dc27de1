package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	t.Run("empty panel requires human review", func(t *testing.T) {
		result := Aggregate(nil)
		assert.Equal(t, ConsensusHumanReview, result.Consensus)
		assert.Equal(t, "no reviews submitted", result.Reason)
	})

	t.Run("any score below 0.5 forces human review", func(t *testing.T) {
		result := Aggregate([]ReviewResult{
			{Reviewer: "cto", Approved: true, Score: 0.9},
			{Reviewer: "qa", Approved: true, Score: 0.9},
			{Reviewer: "safety", Approved: true, Score: 0.49},
		})
		assert.Equal(t, ConsensusHumanReview, result.Consensus)
	})

	t.Run("unanimous approval at threshold approves", func(t *testing.T) {
		result := Aggregate([]ReviewResult{
			{Reviewer: "cto", Approved: true, Score: 0.8},
			{Reviewer: "qa", Approved: true, Score: 0.8},
			{Reviewer: "safety", Approved: true, Score: 0.8},
		})
		assert.Equal(t, ConsensusApproved, result.Consensus)
		assert.InDelta(t, 0.8, result.AverageScore, 1e-9)
	})

	t.Run("rejection names the rejecting reviewers", func(t *testing.T) {
		result := Aggregate([]ReviewResult{
			{Reviewer: "cto", Approved: false, Score: 0.7},
			{Reviewer: "qa", Approved: true, Score: 0.9},
			{Reviewer: "safety", Approved: false, Score: 0.6},
		})
		assert.Equal(t, ConsensusRejected, result.Consensus)
		assert.Equal(t, "Rejected by: cto, safety", result.Reason)
	})

	t.Run("approved but average below threshold rejects", func(t *testing.T) {
		result := Aggregate([]ReviewResult{
			{Reviewer: "cto", Approved: true, Score: 0.7},
			{Reviewer: "qa", Approved: true, Score: 0.75},
		})
		assert.Equal(t, ConsensusRejected, result.Consensus)
		assert.Contains(t, result.Reason, "below threshold")
	})
}

func TestRouteConsensus(t *testing.T) {
	assert.Equal(t, "merge", RouteConsensus(ConsensusApproved))
	assert.Equal(t, "escalate_human", RouteConsensus(ConsensusHumanReview))
	assert.Equal(t, "failed", RouteConsensus(ConsensusRejected))
}
