// Package vecmath holds the 2D vector and scalar primitives the collision
// and solver packages build on: dot and cross products, a normalise that
// doesn't blow up on near-zero vectors, and the point-to-segment query that
// contact extraction reduces to.
//
// Vec2 itself is github.com/go-gl/mathgl's mgl32.Vec2 — a plain [2]float32
// value type — rather than a hand-rolled struct; the functions here are the
// pieces mathgl doesn't provide for two dimensions (Cross has no scalar
// form outside Vec3, and Normalize is not guarded against the zero vector).
package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// EqualTolerance is the fixed tolerance used by FloatEqual and VecEqual
// (one millimetre, with world units in metres).
const EqualTolerance = 1e-3

// normaliseEpsilon is the minimum length below which Normalise reports the
// zero vector instead of dividing by a near-zero length.
const normaliseEpsilon = 1e-6

// Dot returns a.X*b.X + a.Y*b.Y.
func Dot(a, b mgl32.Vec2) float32 {
	return a.X()*b.X() + a.Y()*b.Y()
}

// Cross returns the scalar z-component of the 3D cross product of a and b.
func Cross(a, b mgl32.Vec2) float32 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// FloatCross returns the cross product of a scalar (treated as a z-axis
// vector) with v: (-s*v.Y, s*v.X). Used to turn an angular velocity into a
// point's tangential linear velocity.
func FloatCross(s float32, v mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{-s * v.Y(), s * v.X()}
}

// Normalise returns v/|v|, or the zero vector when |v| is at or below
// normaliseEpsilon.
func Normalise(v mgl32.Vec2) mgl32.Vec2 {
	length := v.Len()
	if length > normaliseEpsilon {
		return v.Mul(1 / length)
	}
	return mgl32.Vec2{}
}

// FloatEqual reports whether a and b are within EqualTolerance of each
// other.
func FloatEqual(a, b float32) bool {
	return float32(math.Abs(float64(a-b))) < EqualTolerance
}

// VecEqual reports componentwise FloatEqual.
func VecEqual(a, b mgl32.Vec2) bool {
	return FloatEqual(a.X(), b.X()) && FloatEqual(a.Y(), b.Y())
}

// PointSegmentDistance returns the point on segment [a,b] closest to p, and
// the squared distance from p to that point. A degenerate (zero-length)
// segment collapses to a.
func PointSegmentDistance(a, b, p mgl32.Vec2) (closest mgl32.Vec2, distSq float32) {
	ab := b.Sub(a)
	ap := p.Sub(a)

	abLenSq := Dot(ab, ab)
	if abLenSq <= 0 {
		d := p.Sub(a)
		return a, Dot(d, d)
	}

	t := Dot(ap, ab) / abLenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest = a.Add(ab.Mul(t))
	d := p.Sub(closest)
	return closest, Dot(d, d)
}
