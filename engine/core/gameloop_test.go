package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSim struct {
	ticks int
	dts   []float64
}

func (s *countingSim) Tick(dt float64) {
	s.ticks++
	s.dts = append(s.dts, dt)
}

func TestGameLoop_AdvanceRunsFixedSteps(t *testing.T) {
	sim := &countingSim{}
	gl := NewGameLoop(sim, 10)
	gl.Play()

	alpha := gl.Advance(0.25)
	assert.Equal(t, 2, sim.ticks)
	assert.Equal(t, uint64(2), gl.CurrentTick())
	assert.InDelta(t, 0.5, alpha, 1e-9)
	for _, dt := range sim.dts {
		assert.InDelta(t, 0.1, dt, 1e-12)
	}

	gl.Advance(0.06)
	assert.Equal(t, 3, sim.ticks)
}

func TestGameLoop_CapsFrameTime(t *testing.T) {
	sim := &countingSim{}
	gl := NewGameLoop(sim, 20)
	gl.Play()

	gl.Advance(10)
	assert.Equal(t, 5, sim.ticks)
}

func TestGameLoop_PausedDoesNotTick(t *testing.T) {
	sim := &countingSim{}
	gl := NewGameLoop(sim, 20)

	gl.Advance(0.2)
	require.Equal(t, 0, sim.ticks)

	gl.Play()
	gl.Pause()
	gl.Advance(0.2)
	assert.Equal(t, 0, sim.ticks)
}

func TestEventBus_DispatchDeliversQueued(t *testing.T) {
	bus := NewEventBus()
	var got []EntityID
	bus.On(EvtActorDied, func(e Event) { got = append(got, e.Source) })

	bus.Emit(Event{Type: EvtActorDied, Source: 7})
	bus.Emit(Event{Type: EvtActorDamaged, Source: 8})
	assert.Empty(t, got)
	assert.Equal(t, 2, bus.Pending())

	bus.Dispatch()
	assert.Equal(t, []EntityID{7}, got)
	assert.Equal(t, 0, bus.Pending())
}

func TestEventBus_EmitDuringDispatchWaitsForNextDispatch(t *testing.T) {
	bus := NewEventBus()
	var got []EventType
	bus.On(EvtActorDamaged, func(e Event) {
		got = append(got, e.Type)
		bus.Emit(Event{Type: EvtActorDied, Source: e.Source})
	})
	bus.On(EvtActorDied, func(e Event) { got = append(got, e.Type) })

	bus.Emit(Event{Type: EvtActorDamaged, Source: 3})
	bus.Dispatch()
	assert.Equal(t, []EventType{EvtActorDamaged}, got)
	assert.Equal(t, 1, bus.Pending())

	bus.Dispatch()
	assert.Equal(t, []EventType{EvtActorDamaged, EvtActorDied}, got)
	assert.Zero(t, bus.Pending())
}

func TestEventBus_NilEmitIsNoop(t *testing.T) {
	var bus *EventBus
	assert.NotPanics(t, func() { bus.Emit(Event{Type: EvtActorSpawned}) })
}

func TestStepFunc_DrivesLoop(t *testing.T) {
	var got []float64
	gl := NewGameLoop(StepFunc(func(dt float64) { got = append(got, dt) }), 4)
	gl.Play()
	gl.Advance(0.25)
	assert.Equal(t, []float64{0.25}, got)
}
