package actor

import (
	"github.com/1siamBot/arena-engine/engine/core"
	"github.com/1siamBot/arena-engine/engine/physics"
)

// Accelerate adds v*dt to the velocity and clamps the result to the global
// maximum velocity.
func (a *Actor) Accelerate(v core.Vec2, dt float64) {
	v.Scale(dt)
	a.vel.Add(v)
	physics.ClampMagnitude(&a.vel, physics.MaxVelocity)
}

// MoveForward pushes the actor along its facing for dt seconds. When the
// actor is already moving faster than the global cap (a knockback, say) the
// call is ignored so voluntary input cannot cancel it.
func (a *Actor) MoveForward(dt float64) {
	if a.vel.Magnitude() > physics.MaxVelocity {
		return
	}
	// friction is added so the net gain matches maxAccel once decay runs
	a.Accelerate(core.FromPolar(a.maxAccel+physics.Friction, a.dir), dt)
	physics.ClampMagnitude(&a.vel, a.maxSpeed)
}

// Stop zeroes the velocity
func (a *Actor) Stop() {
	a.vel = core.Vec2{}
}

// SetVelocity overwrites the velocity
func (a *Actor) SetVelocity(v core.Vec2) {
	a.vel = v
}

// Place teleports the actor
func (a *Actor) Place(pos core.Vec2) {
	a.pos = pos
}

// PlaceAt teleports the actor to (x, y)
func (a *Actor) PlaceAt(x, y float64) {
	a.pos = core.Vec2{X: x, Y: y}
}
