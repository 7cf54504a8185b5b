package core

import "math"

// Vec2 is a 2D vector in world units. Angles are radians (0 = east, π/2 = south).
type Vec2 struct {
	X, Y float64
}

// FromPolar builds a vector with the given length pointing along angle
func FromPolar(magnitude, angle float64) Vec2 {
	return Vec2{X: magnitude * math.Cos(angle), Y: magnitude * math.Sin(angle)}
}

// Magnitude returns the euclidean length
func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Direction returns the heading of the vector. The zero vector has direction 0.
func (v Vec2) Direction() float64 {
	return math.Atan2(v.Y, v.X)
}

// DistanceTo returns euclidean distance to another point
func (v Vec2) DistanceTo(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// IsZero reports whether both components are zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Add adds o to v in place
func (v *Vec2) Add(o Vec2) {
	v.X += o.X
	v.Y += o.Y
}

// Sub subtracts o from v in place
func (v *Vec2) Sub(o Vec2) {
	v.X -= o.X
	v.Y -= o.Y
}

// Scale multiplies both components by s
func (v *Vec2) Scale(s float64) {
	v.X *= s
	v.Y *= s
}

// SetMagnitude rescales v to the given length keeping its heading.
// A zero vector has no heading and stays zero. A negative length points
// the result the opposite way.
func (v *Vec2) SetMagnitude(length float64) {
	mag := v.Magnitude()
	if mag == 0 {
		return
	}
	v.Scale(length / mag)
}

// SetDirection rotates v to the given heading keeping its length
func (v *Vec2) SetDirection(angle float64) {
	*v = FromPolar(v.Magnitude(), angle)
}

// AngleBetween returns the heading of the vector from a to b
func AngleBetween(a, b Vec2) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}
