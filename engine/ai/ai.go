// Package ai drives non-player actors through a priority-ordered stack of
// behaviors, evaluated once per frame.
package ai

import (
	"sort"

	"github.com/1siamBot/arena-engine/engine/ability"
	"github.com/1siamBot/arena-engine/engine/core"
)

// State is the status a behavior reports for display and debugging
type State uint8

const (
	StateIdle State = iota
	StateRoaming
	StateChasing
	StateAttacking
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRoaming:
		return "roaming"
	case StateChasing:
		return "chasing"
	case StateAttacking:
		return "attacking"
	default:
		return "unknown"
	}
}

// Body is the actor a behavior steers
type Body interface {
	Position() core.Vec2
	Direction() float64
	SetDirection(angle float64)
	Radius() float64
	IsDead() bool
	MoveForward(dt float64)
	UseAbility(id ability.ID)
}

// Target is something a behavior can pursue
type Target interface {
	Position() core.Vec2
	Radius() float64
	IsDead() bool
}

// Behavior is one pluggable decision module
type Behavior interface {
	// Start runs once when the behavior is attached
	Start()
	// Update reports whether the behavior made this frame's decision
	Update(dt float64) bool
	State() State
	Weight() int
}

// Brain is an ordered behavior stack, highest weight first
type Brain struct {
	behaviors []Behavior
}

func NewBrain() *Brain {
	return &Brain{}
}

// Add attaches b, starts it, and re-sorts the stack by descending weight.
// Equal weights keep insertion order.
func (br *Brain) Add(b Behavior) {
	br.behaviors = append(br.behaviors, b)
	b.Start()
	sort.SliceStable(br.behaviors, func(i, j int) bool {
		return br.behaviors[i].Weight() > br.behaviors[j].Weight()
	})
}

// Process runs behaviors in order until one claims the frame. It returns
// false when none did.
func (br *Brain) Process(dt float64) bool {
	for _, b := range br.behaviors {
		if b.Update(dt) {
			return true
		}
	}
	return false
}

// Len returns the number of attached behaviors
func (br *Brain) Len() int {
	return len(br.behaviors)
}

// Thought returns the state of the behavior at index i in evaluation order
func (br *Brain) Thought(i int) State {
	return br.behaviors[i].State()
}

// Behaviors returns the stack in evaluation order
func (br *Brain) Behaviors() []Behavior {
	out := make([]Behavior, len(br.behaviors))
	copy(out, br.behaviors)
	return out
}
