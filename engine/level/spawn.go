package level

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/1siamBot/arena-engine/engine/actor"
	"github.com/1siamBot/arena-engine/engine/ai"
	"github.com/1siamBot/arena-engine/engine/core"
)

// Default enemy brain tuning
const (
	RoamWeight   = 1
	RoamInterval = 1.5 // seconds between wander decisions
	ChaseWeight  = 3
	ChaseAggro   = 4.0 // units between centers
	ChaseReach   = 0.3 // units beyond both bodies
)

// ErrPlayerExists is returned when a level already has its player
var ErrPlayerExists = errors.New("level already has a player")

// SpawnPlayer builds the player from the named template and adds it. A
// level holds one player for its lifetime, dead or alive.
func (l *Level) SpawnPlayer(template string, pos core.Vec2) (*actor.Actor, error) {
	if l.player != nil {
		return nil, fmt.Errorf("spawn player: %w", ErrPlayerExists)
	}
	t, ok := l.Templates.Get(template)
	if !ok {
		return nil, fmt.Errorf("spawn player: unknown template %q", template)
	}
	p, err := actor.NewPlayer(t, pos, 0)
	if err != nil {
		return nil, fmt.Errorf("spawn player: %w", err)
	}
	l.player = p
	l.Spawn(p)
	return p, nil
}

// SpawnEnemy builds an enemy from the named template with the default
// brain: wander, and hunt the player when it comes close.
func (l *Level) SpawnEnemy(template string, pos core.Vec2, dir float64) (*actor.Actor, error) {
	t, ok := l.Templates.Get(template)
	if !ok {
		return nil, fmt.Errorf("spawn enemy: unknown template %q", template)
	}
	e, err := actor.NewEnemy(t, pos, dir)
	if err != nil {
		return nil, fmt.Errorf("spawn enemy: %w", err)
	}
	e.AddBehavior(ai.NewRoam(e, RoamWeight, RoamInterval, rand.New(rand.NewSource(l.rng.Int63()))))
	if l.player != nil {
		e.AddBehavior(ai.NewChase(e, l.player, ChaseWeight, ChaseAggro, ChaseReach))
	}
	l.Spawn(e)
	return e, nil
}

// SpawnWave scatters n enemies of the named template on a ring between
// minDist and maxDist around center.
func (l *Level) SpawnWave(template string, n int, center core.Vec2, minDist, maxDist float64) ([]*actor.Actor, error) {
	out := make([]*actor.Actor, 0, n)
	for i := 0; i < n; i++ {
		angle := l.rng.Float64() * 2 * math.Pi
		dist := minDist + l.rng.Float64()*(maxDist-minDist)
		pos := center
		pos.Add(core.FromPolar(dist, angle))
		e, err := l.SpawnEnemy(template, pos, l.rng.Float64()*2*math.Pi)
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, nil
}
