package actor

import (
	"github.com/1siamBot/arena-engine/engine/ability"
	"github.com/1siamBot/arena-engine/engine/core"
	"github.com/1siamBot/arena-engine/engine/physics"
)

// Scene is the live actor set of the current frame. Update reads it but
// must not change its membership.
type Scene interface {
	Entities() []*Actor
}

// Update advances the actor by dt seconds against scene, in fixed order:
// invulnerability decay, behaviors, collision sweep, friction and
// integration, ability timers. Dead actors skip behaviors and collisions.
func (a *Actor) Update(dt float64, scene Scene) {
	a.decayImmunity(dt)

	if a.brain != nil && !a.IsDead() {
		a.brain.Process(dt)
	}

	if scene != nil && !a.IsDead() {
		a.sweep(scene)
	}

	if a.vel.Magnitude() != 0 {
		physics.Decelerate(&a.vel, dt)
	}
	step := a.vel
	step.Scale(dt)
	a.pos.Add(step)

	view := targetView{scene: scene}
	for _, ab := range a.abilities {
		if ab != nil && !ab.IsReady() {
			ab.Update(dt, view)
		}
	}
}

func (a *Actor) decayImmunity(dt float64) {
	if a.immuneTime > 0 {
		a.immuneTime -= dt
		if a.immuneTime < 0 {
			a.immuneTime = 0
		}
	}
	if a.immuneTime == 0 && a.state.Has(StateDamaged) {
		a.state &^= StateDamaged | StateStaggered
	}
}

func (a *Actor) sweep(scene Scene) {
	for _, other := range scene.Entities() {
		if other == a || other.IsDead() {
			continue
		}
		if other.Hitscan(a) {
			a.emit(core.EvtCollision, other.id)
		}
	}
}

// targetView adapts a Scene for ability effects
type targetView struct {
	scene Scene
}

func (v targetView) EachTarget(fn func(ability.Target)) {
	if v.scene == nil {
		return
	}
	for _, e := range v.scene.Entities() {
		fn(e)
	}
}
