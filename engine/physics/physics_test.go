package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/1siamBot/arena-engine/engine/core"
)

func TestDecelerate_ReducesSpeedKeepingHeading(t *testing.T) {
	v := core.Vec2{X: 6, Y: 8}
	Decelerate(&v, 0.1)
	assert.InDelta(t, 9.0, v.Magnitude(), 1e-9)
	assert.InDelta(t, 0.6, v.X/v.Magnitude(), 1e-9)
}

func TestDecelerate_StopsAtZero(t *testing.T) {
	v := core.Vec2{X: 0.5}
	Decelerate(&v, 1)
	assert.True(t, v.IsZero())

	Decelerate(&v, 1)
	assert.True(t, v.IsZero())
}

func TestClampMagnitude(t *testing.T) {
	v := core.Vec2{X: 30, Y: 40}
	ClampMagnitude(&v, MaxVelocity)
	assert.InDelta(t, MaxVelocity, v.Magnitude(), 1e-9)

	w := core.Vec2{X: 1}
	ClampMagnitude(&w, MaxVelocity)
	assert.Equal(t, core.Vec2{X: 1}, w)
}

func TestKnockbackFactor(t *testing.T) {
	tests := []struct {
		radius float64
		want   float64
	}{
		{0.0, 2.0}, // would be 2.67, clamped
		{0.125, 2.0},
		{0.25, 2.0 - 2.0/3.0},
		{0.5, 0.0},
		{1.0, -8.0 / 3.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, KnockbackFactor(tt.radius), 1e-9, "radius %v", tt.radius)
	}
}
