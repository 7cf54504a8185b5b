package stats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/arena-engine/engine/ability"
)

func TestBuiltinsAreValid(t *testing.T) {
	for _, tmpl := range []Template{Hero, GiantRat, CaveTroll} {
		assert.NoError(t, tmpl.Validate(), tmpl.Name)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Template)
	}{
		{"zero radius", func(t *Template) { t.Radius = 0 }},
		{"negative radius", func(t *Template) { t.Radius = -1 }},
		{"no health", func(t *Template) { t.Health = 0 }},
		{"negative speed", func(t *Template) { t.MaxSpeed = -1 }},
		{"too fast", func(t *Template) { t.MaxSpeed = 100 }},
		{"negative armor", func(t *Template) { t.Armor = -3 }},
		{"no name", func(t *Template) { t.Name = "" }},
		{"unknown ability", func(t *Template) { t.Abilities = []ability.ID{ability.ID(99)} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := GiantRat
			tmpl.Abilities = append([]ability.ID(nil), GiantRat.Abilities...)
			tt.mutate(&tmpl)
			assert.ErrorIs(t, tmpl.Validate(), ErrInvalidTemplate)
		})
	}
}

func TestRegistry_Builtins(t *testing.T) {
	r := NewRegistry()
	rat, ok := r.Get("giant_rat")
	require.True(t, ok)
	assert.Equal(t, 100, rat.Health)
	assert.Equal(t, 0.25, rat.Radius)
	assert.Equal(t, 3, r.Len())
}

const templatesYAML = `
templates:
  - name: giant_rat
    animation: giant_rat
    health: 40
    attack: 8
    radius: 0.2
    max_speed: 7
    max_acceleration: 12
    abilities: [melee_attack]
    loot_table: vermin
  - name: skeleton
    health: 60
    attack: 12
    armor: 2
    radius: 0.3
    max_speed: 3
    max_acceleration: 8
    abilities: [melee_attack, dash]
`

func TestRegistry_Load(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Load(strings.NewReader(templatesYAML)))

	rat, _ := r.Get("giant_rat")
	assert.Equal(t, 40, rat.Health)
	assert.Equal(t, []ability.ID{ability.MeleeAttack}, rat.Abilities)

	sk, ok := r.Get("skeleton")
	require.True(t, ok)
	assert.Equal(t, 2, sk.Armor)
	assert.Equal(t, []ability.ID{ability.MeleeAttack, ability.Dash}, sk.Abilities)
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, []string{"cave_troll", "giant_rat", "hero"}, r.Animations())
}

func TestRegistry_LoadRejectsBadEntries(t *testing.T) {
	r := NewRegistry()
	err := r.Load(strings.NewReader("templates:\n  - name: blob\n    health: 5\n    radius: -1\n"))
	assert.ErrorIs(t, err, ErrInvalidTemplate)

	err = r.Load(strings.NewReader("templates:\n  - name: mage\n    health: 5\n    radius: 0.2\n    abilities: [fireball]\n"))
	assert.ErrorIs(t, err, ErrInvalidTemplate)
	assert.ErrorIs(t, err, ability.ErrUnknownAbility)
}

func TestRegistry_LoadFileMissing(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.LoadFile("does-not-exist.yaml"))
}
