// Package ability implements cooldown-gated timed actions owned by a single actor.
package ability

import "github.com/1siamBot/arena-engine/engine/core"

// State is a phase of the ability lifecycle
type State uint8

const (
	Ready   State = iota // usable
	Init                 // winding up; the effect fires when this phase ends
	Recover              // effect done, owner recovering
	Spent                // cancelled before finishing, cooling down
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Init:
		return "init"
	case Recover:
		return "recover"
	case Spent:
		return "spent"
	default:
		return "unknown"
	}
}

// Owner is the actor an ability acts on behalf of
type Owner interface {
	ID() core.EntityID
	Position() core.Vec2
	Direction() float64
	Radius() float64
	AttackPower() int
	Accelerate(v core.Vec2, dt float64)
}

// Target is anything an effect can hit
type Target interface {
	ID() core.EntityID
	Position() core.Vec2
	Radius() float64
	IsDead() bool
	ResolveDamage(amount float64, dmgType core.DamageType, source *core.Vec2)
}

// Scene exposes the live targets of the current frame
type Scene interface {
	EachTarget(fn func(Target))
}

// Effect is the main action of an ability
type Effect interface {
	Fire(owner Owner, scene Scene)
}

// Ability is one timed effect. An instance belongs to exactly one owner;
// construct a new one per actor with New.
type Ability struct {
	id       ID
	owner    Owner
	effect   Effect
	windup   float64 // seconds in Init
	recovery float64 // seconds in Recover
	cooldown float64 // seconds in Spent
	state    State
	timer    float64
}

// ID returns the slot identifier
func (a *Ability) ID() ID { return a.id }

// State returns the current lifecycle phase
func (a *Ability) State() State { return a.state }

// Remaining returns seconds left in the current phase
func (a *Ability) Remaining() float64 { return a.timer }

// IsReady reports whether the ability can be used
func (a *Ability) IsReady() bool { return a.state == Ready }

// Active reports whether the ability is in Init or Recover
func (a *Ability) Active() bool { return a.state == Init || a.state == Recover }

// Use starts the ability. Calls outside Ready are ignored.
func (a *Ability) Use() {
	if a.state != Ready {
		return
	}
	a.state = Init
	a.timer = a.windup
}

// Spend cancels an Init or Recover ability into cooldown without firing its
// effect. Other states are left alone.
func (a *Ability) Spend() {
	if !a.Active() {
		return
	}
	a.state = Spent
	a.timer = a.cooldown
}

// Update advances the phase timer by dt, moving at most one phase forward.
// Leaving Init fires the effect against scene.
func (a *Ability) Update(dt float64, scene Scene) {
	if a.state == Ready {
		return
	}
	a.timer -= dt
	if a.timer > 0 {
		return
	}
	switch a.state {
	case Init:
		if a.effect != nil {
			a.effect.Fire(a.owner, scene)
		}
		a.state = Recover
		a.timer = a.recovery
	case Recover, Spent:
		a.state = Ready
		a.timer = 0
	}
}
