package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Boomerang-Apps/wave/ent/storyexecution"
)

func TestValidateTransition(t *testing.T) {
	allowed := []struct {
		from, to storyexecution.Status
	}{
		{storyexecution.StatusPending, storyexecution.StatusInProgress},
		{storyexecution.StatusInProgress, storyexecution.StatusReview},
		{storyexecution.StatusInProgress, storyexecution.StatusComplete},
		{storyexecution.StatusInProgress, storyexecution.StatusFailed},
		{storyexecution.StatusInProgress, storyexecution.StatusCancelled},
		{storyexecution.StatusReview, storyexecution.StatusInProgress},
		{storyexecution.StatusReview, storyexecution.StatusComplete},
		{storyexecution.StatusReview, storyexecution.StatusFailed},
		{storyexecution.StatusFailed, storyexecution.StatusInProgress},
	}
	for _, tc := range allowed {
		assert.NoError(t, ValidateTransition(tc.from, tc.to),
			"%s → %s should be allowed", tc.from, tc.to)
	}

	denied := []struct {
		from, to storyexecution.Status
	}{
		{storyexecution.StatusPending, storyexecution.StatusComplete},
		{storyexecution.StatusPending, storyexecution.StatusReview},
		{storyexecution.StatusComplete, storyexecution.StatusInProgress},
		{storyexecution.StatusComplete, storyexecution.StatusFailed},
		{storyexecution.StatusCancelled, storyexecution.StatusInProgress},
		{storyexecution.StatusFailed, storyexecution.StatusComplete},
		{storyexecution.StatusInProgress, storyexecution.StatusPending},
	}
	for _, tc := range denied {
		err := ValidateTransition(tc.from, tc.to)
		assert.ErrorIs(t, err, ErrInvalidTransition,
			"%s → %s should be denied", tc.from, tc.to)
	}
}
