package actor

import "github.com/1siamBot/arena-engine/engine/core"

// Hitscan tests target's body against this one and, when they overlap,
// pushes both centers apart by half the penetration each. Velocities are
// left untouched, so bodies still closing on each other overlap again next
// frame. Coincident centers separate along +X.
func (a *Actor) Hitscan(target *Actor) bool {
	dist := a.pos
	dist.Sub(target.pos)
	penetration := dist.Magnitude() - (a.radius + target.radius)
	if penetration >= 0 {
		return false
	}
	if dist.IsZero() {
		dist = core.Vec2{X: 1}
	}
	// negative length flips dist to point from a toward target
	dist.SetMagnitude(penetration / 2)
	a.pos.Sub(dist)
	target.pos.Add(dist)
	return true
}
