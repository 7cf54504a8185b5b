// Package actor implements the simulated creatures of a level: movement,
// collision, damage, invulnerability and abilities.
package actor

import (
	"fmt"

	"github.com/1siamBot/arena-engine/engine/ability"
	"github.com/1siamBot/arena-engine/engine/ai"
	"github.com/1siamBot/arena-engine/engine/core"
	"github.com/1siamBot/arena-engine/engine/stats"
)

// Actor is a circular body with stats, abilities and, for AI-driven kinds,
// a behavior stack.
type Actor struct {
	id        core.EntityID
	kind      Kind
	name      string
	animation string
	lootTable string

	pos core.Vec2
	dir float64
	vel core.Vec2

	health    int
	maxHealth int
	attack    int
	armor     int

	radius   float64
	maxSpeed float64
	maxAccel float64

	abilities  [ability.Count]*ability.Ability
	state      State
	immuneTime float64

	brain *ai.Brain
	bus   *core.EventBus
}

// New builds an actor of the given kind from a template. Every ability
// listed in the template gets a fresh instance owned by the new actor.
func New(kind Kind, t stats.Template, pos core.Vec2, dir float64) (*Actor, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("new %s: %w", kind, err)
	}
	a := &Actor{
		id:        core.NewEntityID(),
		kind:      kind,
		name:      t.Name,
		animation: t.Animation,
		lootTable: t.LootTable,
		pos:       pos,
		dir:       dir,
		health:    t.Health,
		maxHealth: t.Health,
		attack:    t.Attack,
		armor:     t.Armor,
		radius:    t.Radius,
		maxSpeed:  t.MaxSpeed,
		maxAccel:  t.MaxAccel,
	}
	for _, id := range t.Abilities {
		ab, err := ability.New(id, a)
		if err != nil {
			return nil, fmt.Errorf("new %s %s: %w", kind, t.Name, err)
		}
		a.abilities[id] = ab
	}
	if kind.AIDriven() {
		a.brain = ai.NewBrain()
	}
	return a, nil
}

// NewPlayer builds the player-controlled actor
func NewPlayer(t stats.Template, pos core.Vec2, dir float64) (*Actor, error) {
	return New(KindPlayer, t, pos, dir)
}

// NewEnemy builds an AI-driven actor with an empty behavior stack
func NewEnemy(t stats.Template, pos core.Vec2, dir float64) (*Actor, error) {
	return New(KindEnemy, t, pos, dir)
}

func (a *Actor) ID() core.EntityID   { return a.id }
func (a *Actor) Kind() Kind          { return a.kind }
func (a *Actor) Name() string        { return a.name }
func (a *Actor) Animation() string   { return a.animation }
func (a *Actor) LootTable() string   { return a.lootTable }
func (a *Actor) Position() core.Vec2 { return a.pos }
func (a *Actor) Direction() float64  { return a.dir }
func (a *Actor) Velocity() core.Vec2 { return a.vel }
func (a *Actor) Health() int         { return a.health }
func (a *Actor) MaxHealth() int      { return a.maxHealth }
func (a *Actor) AttackPower() int    { return a.attack }
func (a *Actor) ArmorValue() int     { return a.armor }
func (a *Actor) Radius() float64     { return a.radius }
func (a *Actor) MaxSpeed() float64   { return a.maxSpeed }
func (a *Actor) MaxAccel() float64   { return a.maxAccel }
func (a *Actor) State() State        { return a.state }
func (a *Actor) ImmuneTime() float64 { return a.immuneTime }

// HasState reports whether all flags in f are set
func (a *Actor) HasState(f State) bool { return a.state.Has(f) }

// IsDead reports whether the actor has died
func (a *Actor) IsDead() bool { return a.state.Has(StateDead) }

// CanAct reports whether the actor may start an ability
func (a *Actor) CanAct() bool {
	return a.state&(StateDead|StateStaggered) == 0
}

// SetDirection turns the actor to face angle
func (a *Actor) SetDirection(angle float64) { a.dir = angle }

// SetHealth overwrites current health. Death is only applied by damage.
func (a *Actor) SetHealth(v int) { a.health = v }

// SetAttackPower overwrites attack power
func (a *Actor) SetAttackPower(v int) { a.attack = v }

// SetArmorValue overwrites armor
func (a *Actor) SetArmorValue(v int) { a.armor = v }

// Attach wires the actor to an event bus; nil detaches
func (a *Actor) Attach(bus *core.EventBus) { a.bus = bus }

// Brain returns the behavior stack, or nil for kinds without AI
func (a *Actor) Brain() *ai.Brain { return a.brain }

// AddBehavior appends b to the behavior stack. Actors without AI ignore it.
func (a *Actor) AddBehavior(b ai.Behavior) {
	if a.brain == nil {
		return
	}
	a.brain.Add(b)
}

func (a *Actor) emit(t core.EventType, payload interface{}) {
	a.bus.Emit(core.Event{Type: t, Source: a.id, Payload: payload})
}

func (a *Actor) String() string {
	return fmt.Sprintf("%s#%d", a.name, a.id)
}
