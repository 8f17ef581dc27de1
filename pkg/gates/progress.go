package gates

import (
	"fmt"
	"sync"
	"time"
)

// Transition is one recorded gate passage. The history doubles as a
// lightweight audit artefact.
type Transition struct {
	Gate      Gate      `json:"gate"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
	PassedBy  string    `json:"passed_by"`
}

// Progress tracks per-session gate passage for one story, with a replayable
// history of transitions.
type Progress struct {
	mu      sync.Mutex
	system  *System
	passed  map[Gate]bool
	history []Transition
}

// NewProgress creates an empty progress tracker bound to a gate system.
func NewProgress(system *System) *Progress {
	return &Progress{
		system: system,
		passed: make(map[Gate]bool),
	}
}

// MarkGatePassed records a gate passage. The gate's prerequisites must all
// be passed; re-marking an already-passed gate is rejected.
func (p *Progress) MarkGatePassed(gate Gate, passedBy string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.passed[gate] {
		return fmt.Errorf("gate %d already passed", gate)
	}
	if !p.system.CanPass(gate, p.passed) {
		missing := p.system.MissingPrerequisites(gate, p.passed)
		return fmt.Errorf("gate %d missing prerequisites %v", gate, missing)
	}

	name, err := p.system.Name(gate)
	if err != nil {
		return err
	}
	p.passed[gate] = true
	p.history = append(p.history, Transition{
		Gate:      gate,
		Name:      name,
		Timestamp: time.Now().UTC(),
		PassedBy:  passedBy,
	})
	return nil
}

// Passed returns a copy of the passed-gate set.
func (p *Progress) Passed() map[Gate]bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[Gate]bool, len(p.passed))
	for g := range p.passed {
		out[g] = true
	}
	return out
}

// History returns a copy of the transition history in passage order.
func (p *Progress) History() []Transition {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Transition, len(p.history))
	copy(out, p.history)
	return out
}

// Replay rebuilds a Progress from a recorded history, re-validating every
// transition. The resulting passed set must match what the history implies.
func Replay(system *System, history []Transition) (*Progress, error) {
	p := NewProgress(system)
	for _, tr := range history {
		if err := p.MarkGatePassed(tr.Gate, tr.PassedBy); err != nil {
			return nil, fmt.Errorf("replaying gate %d: %w", tr.Gate, err)
		}
	}
	return p, nil
}
