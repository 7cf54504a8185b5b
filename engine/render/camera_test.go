package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamera_RoundTrip(t *testing.T) {
	c := NewCamera(800, 600)
	c.CenterOn(3, -2)
	c.SetZoom(2)

	sx, sy := c.WorldToScreen(4, -1.5)
	assert.InDelta(t, 400+128.0, sx, 1e-9)
	assert.InDelta(t, 300+64.0, sy, 1e-9)

	wx, wy := c.ScreenToWorld(int(sx), int(sy))
	assert.InDelta(t, 4.0, wx, 1e-9)
	assert.InDelta(t, -1.5, wy, 1e-9)
}

func TestCamera_ZoomClamped(t *testing.T) {
	c := NewCamera(800, 600)
	c.SetZoom(100)
	assert.Equal(t, c.MaxZoom, c.Zoom)
	c.SetZoom(0)
	assert.Equal(t, c.MinZoom, c.Zoom)
}

func TestCamera_ZoomAtKeepsPointFixed(t *testing.T) {
	c := NewCamera(800, 600)
	before, beforeY := c.ScreenToWorld(600, 100)
	c.ZoomAt(0.5, 600, 100)
	after, afterY := c.ScreenToWorld(600, 100)
	assert.InDelta(t, before, after, 1e-9)
	assert.InDelta(t, beforeY, afterY, 1e-9)
}

func TestCamera_Pan(t *testing.T) {
	c := NewCamera(800, 600)
	c.Pan(64, -128)
	assert.InDelta(t, 1.0, c.X, 1e-9)
	assert.InDelta(t, -2.0, c.Y, 1e-9)
}

func TestDirectionIndex(t *testing.T) {
	assert.Equal(t, 0, DirectionIndex(0))
	assert.Equal(t, 2, DirectionIndex(1.5708))
	assert.Equal(t, 4, DirectionIndex(-3.14159))
	assert.Equal(t, 6, DirectionIndex(-1.5708))
	assert.Equal(t, 7, DirectionIndex(-0.7))
}
