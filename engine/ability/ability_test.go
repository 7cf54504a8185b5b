package ability

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/arena-engine/engine/core"
)

type fakeBody struct {
	id     core.EntityID
	pos    core.Vec2
	dir    float64
	radius float64
	attack int
	dead   bool
	vel    core.Vec2
	hits   []float64
}

func (b *fakeBody) ID() core.EntityID   { return b.id }
func (b *fakeBody) Position() core.Vec2 { return b.pos }
func (b *fakeBody) Direction() float64  { return b.dir }
func (b *fakeBody) Radius() float64     { return b.radius }
func (b *fakeBody) AttackPower() int    { return b.attack }
func (b *fakeBody) IsDead() bool        { return b.dead }
func (b *fakeBody) Accelerate(v core.Vec2, dt float64) {
	v.Scale(dt)
	b.vel.Add(v)
}
func (b *fakeBody) ResolveDamage(amount float64, _ core.DamageType, _ *core.Vec2) {
	b.hits = append(b.hits, amount)
}

type fakeScene []*fakeBody

func (s fakeScene) EachTarget(fn func(Target)) {
	for _, b := range s {
		fn(b)
	}
}

type countEffect struct{ fired int }

func (c *countEffect) Fire(Owner, Scene) { c.fired++ }

func newTestAbility(eff Effect) *Ability {
	return NewCustom(MeleeAttack, &fakeBody{id: 1}, Def{Windup: 0.1, Recovery: 0.2, Cooldown: 0.5, Effect: eff})
}

func TestAbility_FullCycle(t *testing.T) {
	eff := &countEffect{}
	a := newTestAbility(eff)
	require.True(t, a.IsReady())

	a.Use()
	assert.Equal(t, Init, a.State())
	assert.False(t, a.IsReady())

	a.Update(0.05, nil)
	assert.Equal(t, Init, a.State())
	assert.Equal(t, 0, eff.fired)

	a.Update(0.06, nil)
	assert.Equal(t, Recover, a.State())
	assert.Equal(t, 1, eff.fired)

	a.Update(0.2, nil)
	assert.Equal(t, Ready, a.State())
	assert.Equal(t, 1, eff.fired)
}

func TestAbility_UseWhenNotReadyIsNoop(t *testing.T) {
	eff := &countEffect{}
	a := newTestAbility(eff)
	a.Use()
	a.Update(0.05, nil)
	remaining := a.Remaining()

	a.Use()
	assert.Equal(t, Init, a.State())
	assert.InDelta(t, remaining, a.Remaining(), 1e-12)
}

func TestAbility_SpendSkipsEffect(t *testing.T) {
	eff := &countEffect{}
	a := newTestAbility(eff)
	a.Use()
	a.Spend()
	assert.Equal(t, Spent, a.State())
	assert.False(t, a.Active())
	assert.InDelta(t, 0.5, a.Remaining(), 1e-12)

	a.Use()
	assert.Equal(t, Spent, a.State())

	a.Update(0.3, nil)
	assert.Equal(t, Spent, a.State())
	a.Update(0.3, nil)
	assert.Equal(t, Ready, a.State())
	assert.Equal(t, 0, eff.fired)
}

func TestAbility_SpendFromRecover(t *testing.T) {
	a := newTestAbility(&countEffect{})
	a.Use()
	a.Update(0.1, nil)
	require.Equal(t, Recover, a.State())

	a.Spend()
	assert.Equal(t, Spent, a.State())
}

func TestAbility_SpendWhenReadyIsNoop(t *testing.T) {
	a := newTestAbility(&countEffect{})
	a.Spend()
	assert.Equal(t, Ready, a.State())
}

func TestNew_UnknownID(t *testing.T) {
	_, err := New(ID(200), &fakeBody{})
	assert.ErrorIs(t, err, ErrUnknownAbility)
}

func TestNew_DistinctInstances(t *testing.T) {
	a, err := New(Dash, &fakeBody{id: 1})
	require.NoError(t, err)
	b, err := New(Dash, &fakeBody{id: 2})
	require.NoError(t, err)

	a.Use()
	assert.Equal(t, Init, a.State())
	assert.Equal(t, Ready, b.State())
}

func TestParseID(t *testing.T) {
	id, err := ParseID("dash")
	require.NoError(t, err)
	assert.Equal(t, Dash, id)

	_, err = ParseID("fireball")
	assert.ErrorIs(t, err, ErrUnknownAbility)
}

func TestMelee_HitsOnlyTargetsInFrontWithinReach(t *testing.T) {
	owner := &fakeBody{id: 1, radius: 0.25, attack: 12}
	front := &fakeBody{id: 2, pos: core.Vec2{X: 0.8}, radius: 0.25}
	behind := &fakeBody{id: 3, pos: core.Vec2{X: -0.8}, radius: 0.25}
	far := &fakeBody{id: 4, pos: core.Vec2{X: 2}, radius: 0.25}
	corpse := &fakeBody{id: 5, pos: core.Vec2{X: 0.5}, radius: 0.25, dead: true}

	Melee{Reach: 0.5, Arc: math.Pi / 2}.Fire(owner, fakeScene{owner, front, behind, far, corpse})

	assert.Equal(t, []float64{12}, front.hits)
	assert.Empty(t, behind.hits)
	assert.Empty(t, far.hits)
	assert.Empty(t, corpse.hits)
	assert.Empty(t, owner.hits)
}

func TestLunge_PushesAlongFacing(t *testing.T) {
	owner := &fakeBody{id: 1, dir: math.Pi / 2}
	Lunge{Impulse: 10}.Fire(owner, nil)
	assert.InDelta(t, 0.0, owner.vel.X, 1e-9)
	assert.InDelta(t, 10.0, owner.vel.Y, 1e-9)
}

func TestAngleDiff(t *testing.T) {
	assert.InDelta(t, 0.2, angleDiff(math.Pi-0.1, -math.Pi+0.1)*-1, 1e-9)
	assert.InDelta(t, 0.5, angleDiff(0.5, 0), 1e-9)
}
