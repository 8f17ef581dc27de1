package flow

import (
	"fmt"
	"strings"
)

// Consensus is the aggregated verdict of the reviewer panel.
type Consensus string

const (
	ConsensusApproved    Consensus = "approved"
	ConsensusRejected    Consensus = "rejected"
	ConsensusHumanReview Consensus = "human_review"
)

// approvalThreshold is the minimum average score for approval; scores below
// lowScoreFloor from any reviewer force a human look.
const (
	approvalThreshold = 0.8
	lowScoreFloor     = 0.5
)

// ReviewResult is one reviewer's verdict.
type ReviewResult struct {
	Reviewer string  `json:"reviewer"`
	Approved bool    `json:"approved"`
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback,omitempty"`
}

// ConsensusResult is the aggregator's output.
type ConsensusResult struct {
	Consensus    Consensus      `json:"consensus"`
	AverageScore float64        `json:"average_score"`
	Reason       string         `json:"reason,omitempty"`
	Reviews      []ReviewResult `json:"reviews"`
}

// Aggregate combines reviewer verdicts. Any score below 0.5 routes to human
// review; unanimous approval with average ≥ 0.8 approves; any unapproved
// reviewer rejects with their names; otherwise the average fell short.
func Aggregate(reviews []ReviewResult) ConsensusResult {
	result := ConsensusResult{Reviews: reviews}
	if len(reviews) == 0 {
		result.Consensus = ConsensusHumanReview
		result.Reason = "no reviews submitted"
		return result
	}

	var (
		sum        float64
		lowScore   bool
		rejectedBy []string
	)
	for _, r := range reviews {
		sum += r.Score
		if r.Score < lowScoreFloor {
			lowScore = true
		}
		if !r.Approved {
			rejectedBy = append(rejectedBy, r.Reviewer)
		}
	}
	result.AverageScore = sum / float64(len(reviews))

	switch {
	case lowScore:
		result.Consensus = ConsensusHumanReview
		result.Reason = "reviewer score below 0.5"
	case len(rejectedBy) == 0 && result.AverageScore >= approvalThreshold:
		result.Consensus = ConsensusApproved
	case len(rejectedBy) > 0:
		result.Consensus = ConsensusRejected
		result.Reason = "Rejected by: " + strings.Join(rejectedBy, ", ")
	default:
		result.Consensus = ConsensusRejected
		result.Reason = fmt.Sprintf("Average score %.2f below threshold %.1f", result.AverageScore, approvalThreshold)
	}
	return result
}

// RouteConsensus maps a verdict to the next workflow node.
func RouteConsensus(c Consensus) string {
	switch c {
	case ConsensusApproved:
		return "merge"
	case ConsensusHumanReview:
		return "escalate_human"
	default:
		return "failed"
	}
}
