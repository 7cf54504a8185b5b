package ability

import (
	"math"

	"github.com/1siamBot/arena-engine/engine/core"
)

// Melee hits every live target whose body touches the owner's reach inside
// a frontal arc, for the owner's attack power.
type Melee struct {
	Reach float64 // distance beyond the owner's body
	Arc   float64 // full cone width in radians
}

func (m Melee) Fire(owner Owner, scene Scene) {
	if scene == nil {
		return
	}
	pos := owner.Position()
	facing := owner.Direction()
	damage := float64(owner.AttackPower())
	scene.EachTarget(func(t Target) {
		if t.ID() == owner.ID() || t.IsDead() {
			return
		}
		tp := t.Position()
		if pos.DistanceTo(tp) > owner.Radius()+m.Reach+t.Radius() {
			return
		}
		if math.Abs(angleDiff(core.AngleBetween(pos, tp), facing)) > m.Arc/2 {
			return
		}
		src := pos
		t.ResolveDamage(damage, core.DmgWeaponMelee, &src)
	})
}

// Lunge throws the owner forward along its facing
type Lunge struct {
	Impulse float64
}

func (l Lunge) Fire(owner Owner, _ Scene) {
	owner.Accelerate(core.FromPolar(l.Impulse, owner.Direction()), 1)
}

// angleDiff returns a-b wrapped into [-π, π]
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
