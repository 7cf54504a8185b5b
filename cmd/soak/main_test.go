package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/arena-engine/engine/actor"
	"github.com/1siamBot/arena-engine/engine/config"
	"github.com/1siamBot/arena-engine/engine/core"
	"github.com/1siamBot/arena-engine/engine/stats"
)

func TestRun_FinishesWithinBudget(t *testing.T) {
	cfg := config.Default()
	cfg.SoakSeconds = 2
	cfg.Enemies = 2

	r, err := run(context.Background(), cfg, stats.NewRegistry(), 7)
	require.NoError(t, err)
	assert.NotEmpty(t, r.RunID)
	assert.Equal(t, int64(7), r.Seed)
	assert.GreaterOrEqual(t, r.Waves, 1)
	assert.LessOrEqual(t, r.Ticks, uint64(120))
	if !r.PlayerDied {
		assert.Equal(t, uint64(120), r.Ticks)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := run(ctx, config.Default(), stats.NewRegistry(), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBot_AttacksInReach(t *testing.T) {
	p, err := actor.NewPlayer(stats.Hero, core.Vec2{}, 0)
	require.NoError(t, err)
	e, err := actor.NewEnemy(stats.GiantRat, core.Vec2{Y: 0.6}, 0)
	require.NoError(t, err)

	b := &bot{player: p}
	b.step([]*actor.Actor{p, e}, 1.0/60)

	assert.Greater(t, p.Direction(), 1.5)
	assert.Equal(t, 1, p.ActiveAbilities())
	assert.True(t, p.Velocity().IsZero())
}

func TestBot_ChasesDistantEnemy(t *testing.T) {
	p, err := actor.NewPlayer(stats.Hero, core.Vec2{}, 0)
	require.NoError(t, err)
	e, err := actor.NewEnemy(stats.GiantRat, core.Vec2{X: 2}, 0)
	require.NoError(t, err)

	b := &bot{player: p}
	b.step([]*actor.Actor{p, e}, 1.0/60)

	assert.Greater(t, p.Velocity().X, 0.0)
	assert.Zero(t, p.ActiveAbilities())
}

func TestNearestEnemy_SkipsDeadAndSelf(t *testing.T) {
	p, _ := actor.NewPlayer(stats.Hero, core.Vec2{}, 0)
	near, _ := actor.NewEnemy(stats.GiantRat, core.Vec2{X: 1}, 0)
	far, _ := actor.NewEnemy(stats.GiantRat, core.Vec2{X: 5}, 0)
	near.TakeDamage(1000)

	assert.Same(t, far, nearestEnemy(p, []*actor.Actor{p, near, far}))
	assert.Nil(t, nearestEnemy(p, []*actor.Actor{p, near}))
}
