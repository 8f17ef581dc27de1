package engine

import (
	"fmt"

	"github.com/Boomerang-Apps/wave/ent/storyexecution"
)

// allowedTransitions is the story status graph. failed → in_progress is
// reserved for the recovery manager.
var allowedTransitions = map[storyexecution.Status][]storyexecution.Status{
	storyexecution.StatusPending: {
		storyexecution.StatusInProgress,
	},
	storyexecution.StatusInProgress: {
		storyexecution.StatusReview,
		storyexecution.StatusComplete,
		storyexecution.StatusFailed,
		storyexecution.StatusCancelled,
	},
	storyexecution.StatusReview: {
		storyexecution.StatusInProgress,
		storyexecution.StatusComplete,
		storyexecution.StatusFailed,
	},
	storyexecution.StatusFailed: {
		storyexecution.StatusInProgress,
	},
	// complete and cancelled are terminal
	storyexecution.StatusComplete:  {},
	storyexecution.StatusCancelled: {},
}

// ValidateTransition rejects story status transitions outside the graph.
func ValidateTransition(from, to storyexecution.Status) error {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, from, to)
}
