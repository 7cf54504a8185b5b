package ai

import (
	"github.com/1siamBot/arena-engine/engine/ability"
	"github.com/1siamBot/arena-engine/engine/core"
)

// Chase hunts a single target once it comes within aggro range: it turns to
// face it, closes in, and swings when in reach. Out of range it yields the
// frame to lower behaviors.
type Chase struct {
	body   Body
	target Target
	weight int
	aggro  float64 // engagement distance between centers
	reach  float64 // attack distance beyond both bodies
	state  State
}

func NewChase(body Body, target Target, weight int, aggro, reach float64) *Chase {
	return &Chase{
		body:   body,
		target: target,
		weight: weight,
		aggro:  aggro,
		reach:  reach,
	}
}

func (c *Chase) Start() {
	c.state = StateIdle
}

func (c *Chase) Update(dt float64) bool {
	if c.target == nil || c.target.IsDead() || c.body.IsDead() {
		c.state = StateIdle
		return false
	}
	pos := c.body.Position()
	tp := c.target.Position()
	d := pos.DistanceTo(tp)
	if d > c.aggro {
		c.state = StateIdle
		return false
	}

	c.body.SetDirection(core.AngleBetween(pos, tp))
	if d <= c.body.Radius()+c.target.Radius()+c.reach {
		c.body.UseAbility(ability.MeleeAttack)
		c.state = StateAttacking
		return true
	}
	c.body.MoveForward(dt)
	c.state = StateChasing
	return true
}

func (c *Chase) State() State { return c.state }
func (c *Chase) Weight() int  { return c.weight }
