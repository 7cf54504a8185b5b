package core

import "sync/atomic"

// EntityID is a unique identifier for simulated actors. Actors are compared
// by pointer; the id only labels them in logs and events.
type EntityID uint64

var entityCounter uint64

// NewEntityID generates a unique entity ID
func NewEntityID() EntityID {
	return EntityID(atomic.AddUint64(&entityCounter, 1))
}

// Stepper advances a simulation by a fixed time step
type Stepper interface {
	Tick(dt float64)
}

// StepFunc adapts a plain function to Stepper
type StepFunc func(dt float64)

// Tick calls f(dt)
func (f StepFunc) Tick(dt float64) { f(dt) }
