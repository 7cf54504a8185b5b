package physics

import "github.com/1siamBot/arena-engine/engine/core"

// Global motion limits, in world units (one unit ≈ one tile)
const (
	MaxVelocity = 12.0 // hard cap on any actor's speed, units/sec
	Friction    = 10.0 // speed lost per second while moving, units/sec²
)

// Knockback tuning
const (
	KnockbackRefSize   = 0.25 // body radius the knockback curve is calibrated against
	KnockbackMaxFactor = 2.0
	KnockbackImpulse   = 5.0 // units/sec per knockback factor
)

// Decelerate applies friction to v over dt seconds. The speed shrinks toward
// zero and stops there; the heading never flips.
func Decelerate(v *core.Vec2, dt float64) {
	mag := v.Magnitude()
	if mag == 0 {
		return
	}
	next := mag - Friction*dt
	if next <= 0 {
		*v = core.Vec2{}
		return
	}
	v.SetMagnitude(next)
}

// ClampMagnitude limits v to maxMag while preserving direction
func ClampMagnitude(v *core.Vec2, maxMag float64) {
	if v.Magnitude() > maxMag {
		v.SetMagnitude(maxMag)
	}
}

// KnockbackFactor returns how hard a body of the given radius is thrown by a
// weapon hit. Larger bodies are pushed less; at or beyond twice the reference
// size the factor drops to zero or below and no knockback applies.
func KnockbackFactor(radius float64) float64 {
	k := KnockbackMaxFactor - KnockbackMaxFactor*(radius-0.5*KnockbackRefSize)/(1.5*KnockbackRefSize)
	if k > KnockbackMaxFactor {
		k = KnockbackMaxFactor
	}
	return k
}
