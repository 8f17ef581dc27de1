// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// StoryExecution is the predicate function for storyexecution builders.
type StoryExecution func(*sql.Selector)
