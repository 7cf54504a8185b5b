// Package stats holds the immutable construction templates for each actor kind.
package stats

import (
	"errors"
	"fmt"
	"sort"

	"github.com/1siamBot/arena-engine/engine/ability"
	"github.com/1siamBot/arena-engine/engine/physics"
)

// ErrInvalidTemplate marks a template that cannot build a valid actor
var ErrInvalidTemplate = errors.New("invalid template")

// Template is the static stat block an actor is built from. It is read once
// at construction and never consulted again.
type Template struct {
	Name      string       `yaml:"name"`
	Animation string       `yaml:"animation"` // sprite sheet key for the renderer
	Health    int          `yaml:"health"`
	Attack    int          `yaml:"attack"`
	Armor     int          `yaml:"armor"`
	Radius    float64      `yaml:"radius"`
	MaxSpeed  float64      `yaml:"max_speed"`
	MaxAccel  float64      `yaml:"max_acceleration"`
	Abilities []ability.ID `yaml:"-"`
	LootTable string       `yaml:"loot_table"`
}

// Validate rejects stat blocks that cannot build a working actor
func (t Template) Validate() error {
	switch {
	case t.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalidTemplate)
	case t.Health <= 0:
		return fmt.Errorf("%w: %s: health %d must be positive", ErrInvalidTemplate, t.Name, t.Health)
	case t.Radius <= 0:
		return fmt.Errorf("%w: %s: radius %v must be positive", ErrInvalidTemplate, t.Name, t.Radius)
	case t.MaxSpeed < 0 || t.MaxAccel < 0:
		return fmt.Errorf("%w: %s: speed and acceleration must not be negative", ErrInvalidTemplate, t.Name)
	case t.MaxSpeed > physics.MaxVelocity:
		return fmt.Errorf("%w: %s: max speed %v exceeds global cap %v", ErrInvalidTemplate, t.Name, t.MaxSpeed, physics.MaxVelocity)
	case t.Attack < 0 || t.Armor < 0:
		return fmt.Errorf("%w: %s: attack and armor must not be negative", ErrInvalidTemplate, t.Name)
	}
	for _, id := range t.Abilities {
		if _, ok := ability.Lookup(id); !ok {
			return fmt.Errorf("%w: %s: %w", ErrInvalidTemplate, t.Name, ability.ErrUnknownAbility)
		}
	}
	return nil
}

// Built-in templates
var (
	Hero = Template{
		Name: "hero", Animation: "hero",
		Health: 100, Attack: 25, Armor: 0,
		Radius: 0.25, MaxSpeed: 5, MaxAccel: 15,
		Abilities: []ability.ID{ability.MeleeAttack, ability.Dash},
	}
	GiantRat = Template{
		Name: "giant_rat", Animation: "giant_rat",
		Health: 100, Attack: 10, Armor: 0,
		Radius: 0.25, MaxSpeed: 6, MaxAccel: 10,
		Abilities: []ability.ID{ability.MeleeAttack},
		LootTable: "vermin",
	}
	CaveTroll = Template{
		Name: "cave_troll", Animation: "cave_troll",
		Health: 300, Attack: 30, Armor: 5,
		Radius: 0.5, MaxSpeed: 2.5, MaxAccel: 6,
		Abilities: []ability.ID{ability.MeleeAttack},
		LootTable: "brute",
	}
)

// Registry maps template names to templates
type Registry struct {
	templates map[string]Template
}

// NewRegistry returns a registry seeded with the built-in templates
func NewRegistry() *Registry {
	r := &Registry{templates: make(map[string]Template)}
	for _, t := range []Template{Hero, GiantRat, CaveTroll} {
		r.templates[t.Name] = t
	}
	return r
}

// Register validates and stores t, replacing any template with the same name
func (r *Registry) Register(t Template) error {
	if err := t.Validate(); err != nil {
		return err
	}
	r.templates[t.Name] = t
	return nil
}

// Get looks up a template by name
func (r *Registry) Get(name string) (Template, bool) {
	t, ok := r.templates[name]
	return t, ok
}

// Len returns the number of registered templates
func (r *Registry) Len() int {
	return len(r.templates)
}

// Animations returns the distinct animation keys in sorted order
func (r *Registry) Animations() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, t := range r.templates {
		if t.Animation == "" || seen[t.Animation] {
			continue
		}
		seen[t.Animation] = true
		keys = append(keys, t.Animation)
	}
	sort.Strings(keys)
	return keys
}
