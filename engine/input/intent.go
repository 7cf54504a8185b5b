package input

import (
	"math"

	"github.com/1siamBot/arena-engine/engine/ability"
	"github.com/1siamBot/arena-engine/engine/core"
)

// Controllable is the slice of an actor that player input drives
type Controllable interface {
	Position() core.Vec2
	CanAct() bool
	SetDirection(angle float64)
	MoveForward(dt float64)
	UseAbility(id ability.ID)
}

// Intent is what the player asked for during one simulation step
type Intent struct {
	MoveX, MoveY float64 // each in [-1, 1]
	Aim          *core.Vec2
	Attack       bool
	Dash         bool
}

// Moving reports whether a movement direction is held
func (in Intent) Moving() bool {
	return in.MoveX != 0 || in.MoveY != 0
}

// Apply turns an intent into actor calls. Staggered or dead actors ignore
// it. Movement faces the walk direction; otherwise an aim point turns the
// actor toward it. Abilities fire after facing is settled.
func Apply(c Controllable, in Intent, dt float64) {
	if !c.CanAct() {
		return
	}
	switch {
	case in.Moving():
		c.SetDirection(math.Atan2(in.MoveY, in.MoveX))
		c.MoveForward(dt)
	case in.Aim != nil:
		c.SetDirection(core.AngleBetween(c.Position(), *in.Aim))
	}
	if in.Dash {
		c.UseAbility(ability.Dash)
	} else if in.Attack {
		c.UseAbility(ability.MeleeAttack)
	}
}
