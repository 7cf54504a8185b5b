package actor

import (
	"github.com/1siamBot/arena-engine/engine/ability"
	"github.com/1siamBot/arena-engine/engine/core"
)

// AddAbility gives the actor a fresh instance of ability id, replacing any
// existing one in that slot.
func (a *Actor) AddAbility(id ability.ID) error {
	ab, err := ability.New(id, a)
	if err != nil {
		return err
	}
	a.abilities[id] = ab
	return nil
}

// HasAbility reports whether slot id is filled
func (a *Actor) HasAbility(id ability.ID) bool {
	return id < ability.Count && a.abilities[id] != nil
}

// AbilityState returns the lifecycle phase of slot id
func (a *Actor) AbilityState(id ability.ID) (ability.State, bool) {
	if !a.HasAbility(id) {
		return ability.Ready, false
	}
	return a.abilities[id].State(), true
}

// UseAbility starts ability id after cancelling whatever is in progress.
// Unknown or empty slots, abilities that are not ready, and actors that
// are dead or staggered are ignored.
func (a *Actor) UseAbility(id ability.ID) {
	if !a.CanAct() || !a.HasAbility(id) {
		return
	}
	ab := a.abilities[id]
	if !ab.IsReady() {
		return
	}
	a.StopAbilities()
	ab.Use()
	a.emit(core.EvtAbilityUsed, id)
}

// StopAbilities puts every ability in Init or Recover into cooldown
func (a *Actor) StopAbilities() {
	for _, ab := range a.abilities {
		if ab != nil && ab.Active() {
			ab.Spend()
		}
	}
}

// ActiveAbilities counts abilities in Init or Recover
func (a *Actor) ActiveAbilities() int {
	n := 0
	for _, ab := range a.abilities {
		if ab != nil && ab.Active() {
			n++
		}
	}
	return n
}
