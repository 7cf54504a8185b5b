package ai

import (
	"math"
	"math/rand"
)

// Roam wanders: every interval it picks a random heading and either walks
// that way or stands still. It always claims the frame, so it belongs at
// the bottom of the stack.
type Roam struct {
	body     Body
	weight   int
	interval float64
	rng      *rand.Rand

	timer   float64
	walking bool
	state   State
}

func NewRoam(body Body, weight int, interval float64, rng *rand.Rand) *Roam {
	return &Roam{
		body:     body,
		weight:   weight,
		interval: interval,
		rng:      rng,
	}
}

func (r *Roam) Start() {
	r.timer = 0
	r.state = StateIdle
}

func (r *Roam) Update(dt float64) bool {
	if r.body.IsDead() {
		r.state = StateIdle
		return false
	}
	r.timer -= dt
	if r.timer <= 0 {
		r.timer = r.interval
		r.walking = r.rng.Intn(2) == 0
		if r.walking {
			r.body.SetDirection(r.rng.Float64() * 2 * math.Pi)
		}
	}
	if r.walking {
		r.body.MoveForward(dt)
		r.state = StateRoaming
	} else {
		r.state = StateIdle
	}
	return true
}

func (r *Roam) State() State { return r.state }
func (r *Roam) Weight() int  { return r.weight }
