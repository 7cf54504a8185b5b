package core

import "time"

// GameState represents the overall run state
type GameState uint8

const (
	StatePaused GameState = iota
	StatePlaying
	StateGameOver
)

// maxFrameTime caps a single frame's contribution to the accumulator
const maxFrameTime = 0.25

// GameLoop manages the fixed-timestep loop for deterministic simulation
type GameLoop struct {
	Sim         Stepper
	State       GameState
	TickRate    float64 // fixed ticks per second
	TickCount   uint64
	accumulator float64
	lastTime    time.Time
}

// NewGameLoop creates a game loop with fixed tick rate
func NewGameLoop(sim Stepper, tickRate float64) *GameLoop {
	return &GameLoop{
		Sim:      sim,
		TickRate: tickRate,
		lastTime: time.Now(),
	}
}

// Update should be called every render frame. It runs the simulation
// at fixed timestep and returns the interpolation alpha for rendering.
func (gl *GameLoop) Update() float64 {
	now := time.Now()
	frameTime := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now
	return gl.Advance(frameTime)
}

// Advance feeds frameTime seconds of wall time into the loop and runs as
// many fixed steps as fit.
func (gl *GameLoop) Advance(frameTime float64) float64 {
	// Cap frame time to avoid spiral of death
	if frameTime > maxFrameTime {
		frameTime = maxFrameTime
	}

	dt := gl.Step()
	gl.accumulator += frameTime

	for gl.accumulator >= dt {
		if gl.State == StatePlaying {
			gl.Sim.Tick(dt)
			gl.TickCount++
		}
		gl.accumulator -= dt
	}

	return gl.accumulator / dt
}

// Step returns the fixed simulation step in seconds
func (gl *GameLoop) Step() float64 {
	return 1.0 / gl.TickRate
}

// Play starts or resumes the game
func (gl *GameLoop) Play() {
	gl.State = StatePlaying
	gl.lastTime = time.Now()
}

// Pause pauses the game
func (gl *GameLoop) Pause() {
	gl.State = StatePaused
}

// End stops ticking for good
func (gl *GameLoop) End() {
	gl.State = StateGameOver
}

// CurrentTick returns the current simulation tick
func (gl *GameLoop) CurrentTick() uint64 {
	return gl.TickCount
}
