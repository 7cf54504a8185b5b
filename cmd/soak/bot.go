package main

import (
	"github.com/1siamBot/arena-engine/engine/ability"
	"github.com/1siamBot/arena-engine/engine/actor"
	"github.com/1siamBot/arena-engine/engine/core"
)

// Bot tuning
const (
	botDashRange = 3.0 // dash when the target is farther than this
	botReach     = 0.3
)

// bot drives a player actor toward the nearest living enemy and swings
// when in reach.
type bot struct {
	player *actor.Actor
}

func (b *bot) step(actors []*actor.Actor, dt float64) {
	p := b.player
	if !p.CanAct() {
		return
	}
	target := nearestEnemy(p, actors)
	if target == nil {
		return
	}

	p.SetDirection(core.AngleBetween(p.Position(), target.Position()))
	gap := p.Position().DistanceTo(target.Position()) - p.Radius() - target.Radius()
	switch {
	case gap <= botReach:
		p.UseAbility(ability.MeleeAttack)
	case gap > botDashRange:
		p.UseAbility(ability.Dash)
		p.MoveForward(dt)
	default:
		p.MoveForward(dt)
	}
}

func nearestEnemy(p *actor.Actor, actors []*actor.Actor) *actor.Actor {
	var best *actor.Actor
	bestDist := 0.0
	for _, a := range actors {
		if a == p || a.IsDead() {
			continue
		}
		d := p.Position().DistanceTo(a.Position())
		if best == nil || d < bestDist {
			best, bestDist = a, d
		}
	}
	return best
}
