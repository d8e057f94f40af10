package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a 2D rigid transform: rotation then translation. It is a
// pure value type used to convert a body's local-space vertices to
// world space.
type Transform struct {
	Position mgl32.Vec2
	Rotation float32 // radians
}

// Apply rotates p by Rotation and translates by Position.
func (t Transform) Apply(p mgl32.Vec2) mgl32.Vec2 {
	c := float32(math.Cos(float64(t.Rotation)))
	s := float32(math.Sin(float64(t.Rotation)))

	rotated := mgl32.Vec2{
		p.X()*c - p.Y()*s,
		p.X()*s + p.Y()*c,
	}
	return rotated.Add(t.Position)
}

// Rebuild refreshes body's TransformedVertices from its local Vertices when
// Dirty is set or the cache has never been built, then clears Dirty. It is
// idempotent: calling it again before any further pose mutation is a no-op.
func Rebuild(body *RigidBody) {
	if !body.Dirty && body.TransformedVertices != nil {
		return
	}

	t := Transform{Position: body.Position, Rotation: body.Rotation}

	if cap(body.TransformedVertices) < len(body.Vertices) {
		body.TransformedVertices = make([]mgl32.Vec2, len(body.Vertices))
	} else {
		body.TransformedVertices = body.TransformedVertices[:len(body.Vertices)]
	}

	for i, local := range body.Vertices {
		body.TransformedVertices[i] = t.Apply(local)
	}

	body.Dirty = false
}
