package render

import "math"

// Camera is a top-down viewport. World units map to Scale pixels at zoom 1.
type Camera struct {
	X, Y    float64 // camera center position (world units)
	Zoom    float64 // zoom level (1.0 = default)
	MinZoom float64
	MaxZoom float64
	Scale   float64 // pixels per world unit at zoom 1
	ScreenW int     // viewport width in pixels
	ScreenH int     // viewport height in pixels
}

// NewCamera creates a camera with default settings
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		Zoom:    1.0,
		MinZoom: 0.25,
		MaxZoom: 4.0,
		Scale:   64,
		ScreenW: screenW,
		ScreenH: screenH,
	}
}

// Pan moves the camera by pixel delta
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx / c.pixelsPerUnit()
	c.Y += dy / c.pixelsPerUnit()
}

// SetZoom sets zoom level with clamping
func (c *Camera) SetZoom(z float64) {
	c.Zoom = math.Max(c.MinZoom, math.Min(c.MaxZoom, z))
}

// ZoomAt zooms toward a screen point
func (c *Camera) ZoomAt(delta float64, screenX, screenY int) {
	// Convert screen point to world before zoom
	wx, wy := c.ScreenToWorld(screenX, screenY)
	c.SetZoom(c.Zoom + delta)
	// Convert same screen point to world after zoom
	wx2, wy2 := c.ScreenToWorld(screenX, screenY)
	// Adjust camera to keep the point stationary
	c.X += wx - wx2
	c.Y += wy - wy2
}

// CenterOn centers the camera on a world position
func (c *Camera) CenterOn(wx, wy float64) {
	c.X = wx
	c.Y = wy
}

// WorldToScreen converts a world position to screen pixels
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	ppu := c.pixelsPerUnit()
	sx := (wx-c.X)*ppu + float64(c.ScreenW)/2
	sy := (wy-c.Y)*ppu + float64(c.ScreenH)/2
	return sx, sy
}

// ScreenToWorld converts screen pixels to a world position
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	ppu := c.pixelsPerUnit()
	wx := (float64(sx)-float64(c.ScreenW)/2)/ppu + c.X
	wy := (float64(sy)-float64(c.ScreenH)/2)/ppu + c.Y
	return wx, wy
}

// WorldLength converts a world distance to pixels
func (c *Camera) WorldLength(d float64) float64 {
	return d * c.pixelsPerUnit()
}

func (c *Camera) pixelsPerUnit() float64 {
	return c.Scale * c.Zoom
}
