// Package level owns the live actor set and drives one simulation frame at
// a time.
package level

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/1siamBot/arena-engine/engine/actor"
	"github.com/1siamBot/arena-engine/engine/core"
	"github.com/1siamBot/arena-engine/engine/logger"
	"github.com/1siamBot/arena-engine/engine/stats"
)

// Level holds the actors of one play area. It is single-threaded: a Tick
// updates every actor in insertion order, and membership changes requested
// during a tick are applied after the last actor has updated.
type Level struct {
	RunID     string
	Name      string
	Bus       *core.EventBus
	Templates *stats.Registry
	TickCount uint64

	actors   []*actor.Actor
	byID     map[core.EntityID]*actor.Actor
	toSpawn  []*actor.Actor
	toRemove []core.EntityID
	ticking  bool

	player *actor.Actor
	rng    *rand.Rand
	log    *logrus.Entry
}

// New creates an empty level. seed drives every random choice made by the
// level and the behaviors it wires.
func New(name string, seed int64, templates *stats.Registry) *Level {
	if templates == nil {
		templates = stats.NewRegistry()
	}
	l := &Level{
		RunID:     uuid.NewString(),
		Name:      name,
		Bus:       core.NewEventBus(),
		Templates: templates,
		byID:      make(map[core.EntityID]*actor.Actor),
		rng:       rand.New(rand.NewSource(seed)),
	}
	l.log = logger.Log.WithFields(logrus.Fields{
		"run_id": l.RunID,
		"level":  name,
	})
	l.Bus.On(core.EvtActorDied, l.onDeath)
	return l
}

// Entities returns the live actors for this frame. Callers must not modify
// the slice.
func (l *Level) Entities() []*actor.Actor {
	return l.actors
}

// Player returns the player actor, or nil before one is spawned
func (l *Level) Player() *actor.Actor {
	return l.player
}

// Find looks up a live actor by id
func (l *Level) Find(id core.EntityID) (*actor.Actor, bool) {
	a, ok := l.byID[id]
	return a, ok
}

// Alive counts live actors that are not dead
func (l *Level) Alive() int {
	n := 0
	for _, a := range l.actors {
		if !a.IsDead() {
			n++
		}
	}
	return n
}

// EnemiesAlive counts living actors other than the player
func (l *Level) EnemiesAlive() int {
	n := 0
	for _, a := range l.actors {
		if !a.IsDead() && a != l.player {
			n++
		}
	}
	return n
}

// Spawn adds a to the level. During a tick the addition is deferred to the
// end of the tick.
func (l *Level) Spawn(a *actor.Actor) {
	a.Attach(l.Bus)
	if l.ticking {
		l.toSpawn = append(l.toSpawn, a)
		return
	}
	l.add(a)
}

// Destroy removes a from the level. During a tick the removal is deferred
// to the end of the tick.
func (l *Level) Destroy(a *actor.Actor) {
	if l.ticking {
		l.toRemove = append(l.toRemove, a.ID())
		return
	}
	l.remove(a.ID())
}

// Reap removes every dead actor except the player and returns how many
// were queued.
func (l *Level) Reap() int {
	var dead []*actor.Actor
	for _, a := range l.actors {
		if a.IsDead() && a != l.player {
			dead = append(dead, a)
		}
	}
	for _, a := range dead {
		l.Destroy(a)
	}
	return len(dead)
}

// Tick advances every actor by dt, then applies deferred spawns and
// removals, in that order, and dispatches the frame's events. An actor
// spawned and destroyed in the same tick never stays in the level.
func (l *Level) Tick(dt float64) {
	l.ticking = true
	for _, a := range l.actors {
		a.Update(dt, l)
	}
	l.ticking = false

	for _, a := range l.toSpawn {
		l.add(a)
	}
	l.toSpawn = l.toSpawn[:0]
	for _, id := range l.toRemove {
		l.remove(id)
	}
	l.toRemove = l.toRemove[:0]

	l.Bus.Dispatch()
	l.TickCount++
}

func (l *Level) add(a *actor.Actor) {
	if _, ok := l.byID[a.ID()]; ok {
		return
	}
	l.actors = append(l.actors, a)
	l.byID[a.ID()] = a
	l.Bus.Emit(core.Event{Type: core.EvtActorSpawned, Source: a.ID()})
	l.log.WithFields(logrus.Fields{
		"actor_id":   a.ID(),
		"actor_name": a.Name(),
		"kind":       a.Kind(),
	}).Debug("actor spawned")
}

func (l *Level) remove(id core.EntityID) {
	a, ok := l.byID[id]
	if !ok {
		return
	}
	delete(l.byID, id)
	for i, other := range l.actors {
		if other == a {
			l.actors = append(l.actors[:i], l.actors[i+1:]...)
			break
		}
	}
	a.Attach(nil)
	l.Bus.Emit(core.Event{Type: core.EvtActorRemoved, Source: id})
}

func (l *Level) onDeath(e core.Event) {
	fields := logrus.Fields{"actor_id": e.Source, "tick": l.TickCount}
	if a, ok := l.byID[e.Source]; ok {
		fields["actor_name"] = a.Name()
		fields["kind"] = a.Kind()
	}
	l.log.WithFields(fields).Debug("actor died")
}
