// Package gates defines the ordered launch-gate sequence every story must
// pass through, from design validation to deployment, and the rules for
// advancing through it.
package gates

import (
	"fmt"
	"sort"
)

// Gate is an ordered position in the launch sequence. Gate n requires all
// gates [0..n-1] passed; transitions are strictly n→n+1.
type Gate int

// Mode selects the deployed gate ordering.
type Mode string

// Gate orderings. Standard is the canonical deployment default; TDD inserts
// TESTS_RED after PLAN_APPROVED and REFACTOR after DEV_COMPLETE.
const (
	ModeStandard Mode = "standard"
	ModeTDD      Mode = "tdd"
)

var standardNames = []string{
	"DESIGN_VALIDATED",
	"STORY_ASSIGNED",
	"PLAN_APPROVED",
	"DEV_STARTED",
	"DEV_COMPLETE",
	"QA_PASSED",
	"SAFETY_CLEARED",
	"REVIEW_APPROVED",
	"MERGED",
	"DEPLOYED",
}

var tddNames = []string{
	"DESIGN_VALIDATED",
	"STORY_ASSIGNED",
	"PLAN_APPROVED",
	"TESTS_RED",
	"DEV_STARTED",
	"DEV_COMPLETE",
	"REFACTOR",
	"QA_PASSED",
	"SAFETY_CLEARED",
	"REVIEW_APPROVED",
	"MERGED",
	"DEPLOYED",
}

// System validates gate progression for one configured ordering.
// A single System instance is shared by the execution engine and the
// recovery manager; it carries no per-story state.
type System struct {
	mode  Mode
	names []string
}

// NewSystem returns a gate system for the given mode.
func NewSystem(mode Mode) (*System, error) {
	switch mode {
	case ModeStandard:
		return &System{mode: mode, names: standardNames}, nil
	case ModeTDD:
		return &System{mode: mode, names: tddNames}, nil
	default:
		return nil, fmt.Errorf("unknown gate mode %q", mode)
	}
}

// Mode returns the configured ordering.
func (s *System) Mode() Mode { return s.mode }

// Count returns the number of gates in the ordering.
func (s *System) Count() int { return len(s.names) }

// Terminal returns the last gate in the ordering.
func (s *System) Terminal() Gate { return Gate(len(s.names) - 1) }

// Name returns the human name bound to a gate, or an error when the gate is
// outside the ordering.
func (s *System) Name(g Gate) (string, error) {
	if g < 0 || int(g) >= len(s.names) {
		return "", fmt.Errorf("gate %d out of range [0, %d]", g, len(s.names)-1)
	}
	return s.names[g], nil
}

// Tag returns the "gate-N" label used for checkpoints and persisted rows.
func (g Gate) Tag() string { return fmt.Sprintf("gate-%d", g) }

// CanPass reports whether gate can be passed given the set of already-passed
// gates: every gate below it must be in the set.
func (s *System) CanPass(gate Gate, passed map[Gate]bool) bool {
	if gate < 0 || int(gate) >= len(s.names) {
		return false
	}
	for g := Gate(0); g < gate; g++ {
		if !passed[g] {
			return false
		}
	}
	return true
}

// NextGate returns the lowest gate not yet passed, or (Terminal()+1, false)
// when every gate has been passed.
func (s *System) NextGate(passed map[Gate]bool) (Gate, bool) {
	for g := Gate(0); int(g) < len(s.names); g++ {
		if !passed[g] {
			return g, true
		}
	}
	return Gate(len(s.names)), false
}

// ValidateTransition accepts only the single forward step n→n+1.
func (s *System) ValidateTransition(from, to Gate) error {
	if from < 0 || int(from) >= len(s.names) {
		return fmt.Errorf("gate %d out of range [0, %d]", from, len(s.names)-1)
	}
	if to != from+1 {
		return fmt.Errorf("invalid gate transition %d→%d: gates advance strictly one at a time", from, to)
	}
	return nil
}

// MissingPrerequisites returns, in order, the gates below gate that have not
// been passed yet.
func (s *System) MissingPrerequisites(gate Gate, passed map[Gate]bool) []Gate {
	var missing []Gate
	for g := Gate(0); g < gate && int(g) < len(s.names); g++ {
		if !passed[g] {
			missing = append(missing, g)
		}
	}
	return missing
}

// PassedSet builds a passed-gate set from a list of gates, for replaying
// recorded progress.
func PassedSet(passed []Gate) map[Gate]bool {
	set := make(map[Gate]bool, len(passed))
	for _, g := range passed {
		set[g] = true
	}
	return set
}

// SortedGates returns the gates of a passed set in ascending order.
func SortedGates(passed map[Gate]bool) []Gate {
	out := make([]Gate, 0, len(passed))
	for g := range passed {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
