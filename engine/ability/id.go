package ability

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownAbility is returned when no definition exists for an id
var ErrUnknownAbility = errors.New("unknown ability")

// ID identifies an ability slot
type ID uint8

const (
	MeleeAttack ID = iota
	Dash

	// Count is the number of ability slots
	Count
)

func (id ID) String() string {
	switch id {
	case MeleeAttack:
		return "melee_attack"
	case Dash:
		return "dash"
	default:
		return fmt.Sprintf("ability(%d)", uint8(id))
	}
}

// ParseID maps a template name to an ID
func ParseID(name string) (ID, error) {
	for id := range definitions {
		if id.String() == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAbility, name)
}

// Def is the static timing and effect of an ability kind
type Def struct {
	Windup   float64
	Recovery float64
	Cooldown float64
	Effect   Effect
}

var definitions = map[ID]Def{
	MeleeAttack: {Windup: 0.15, Recovery: 0.35, Cooldown: 0.5, Effect: Melee{Reach: 0.5, Arc: math.Pi / 2}},
	Dash:        {Windup: 0.05, Recovery: 0.4, Cooldown: 1.0, Effect: Lunge{Impulse: 10}},
}

// Lookup returns the definition for id
func Lookup(id ID) (Def, bool) {
	d, ok := definitions[id]
	return d, ok
}

// New builds a fresh Ability of kind id bound to owner
func New(id ID, owner Owner) (*Ability, error) {
	d, ok := definitions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAbility, id)
	}
	return NewCustom(id, owner, d), nil
}

// NewCustom builds an Ability from an explicit definition
func NewCustom(id ID, owner Owner, d Def) *Ability {
	return &Ability{
		id:       id,
		owner:    owner,
		effect:   d.Effect,
		windup:   d.Windup,
		recovery: d.Recovery,
		cooldown: d.Cooldown,
	}
}
