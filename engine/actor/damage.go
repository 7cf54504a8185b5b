package actor

import (
	"github.com/1siamBot/arena-engine/engine/core"
	"github.com/1siamBot/arena-engine/engine/physics"
)

// TakeDamage applies generic damage with no source
func (a *Actor) TakeDamage(amount float64) {
	a.ResolveDamage(amount, core.DmgGeneric, nil)
}

// ResolveDamage applies one damage instance.
//
// Dead actors, non-positive amounts, and actors still inside an
// invulnerability window ignore the call entirely. Otherwise weapon damage
// with a known source knocks the actor away from it, the actor becomes
// DAMAGED (and STAGGERED if its kind staggers) for its kind's window, and
// health drops by the truncated amount. Reaching zero health cancels all
// abilities and leaves the actor exactly DEAD.
func (a *Actor) ResolveDamage(amount float64, dmgType core.DamageType, source *core.Vec2) {
	if a.IsDead() || amount <= 0 || a.state.Has(StateDamaged) {
		return
	}
	if dmgType.IsWeapon() && source != nil {
		a.knockback(*source)
	}

	a.state |= StateDamaged
	if a.kind.Staggers() {
		a.state |= StateStaggered
	}
	a.immuneTime = a.kind.ImmuneWindow()

	dealt := int(amount)
	a.health -= dealt
	a.emit(core.EvtActorDamaged, core.DamagePayload{Amount: dealt, Health: a.health})

	if a.health <= 0 {
		a.StopAbilities()
		a.state = StateDead
		a.emit(core.EvtActorDied, nil)
	}
}

// knockback replaces the current velocity with a kick away from source,
// scaled down for larger bodies.
func (a *Actor) knockback(source core.Vec2) {
	k := physics.KnockbackFactor(a.radius)
	if k <= 0 {
		return
	}
	kick := core.FromPolar(k*physics.KnockbackImpulse, core.AngleBetween(source, a.pos))
	a.Stop()
	a.Accelerate(kick, 1)
}
