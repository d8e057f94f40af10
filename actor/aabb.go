package actor

import "github.com/go-gl/mathgl/mgl32"

// AABB is an axis-aligned bounding box, derived per tick from a body's
// world-space vertices and never persisted.
type AABB struct {
	Min, Max mgl32.Vec2
}

// ComputeAABB returns the bounding box of body's TransformedVertices.
// Precondition: body's world-space cache is current (Dirty is false); call
// Rebuild first.
func ComputeAABB(body *RigidBody) AABB {
	verts := body.TransformedVertices
	box := AABB{Min: verts[0], Max: verts[0]}

	for _, v := range verts[1:] {
		if v.X() < box.Min.X() {
			box.Min[0] = v.X()
		}
		if v.Y() < box.Min.Y() {
			box.Min[1] = v.Y()
		}
		if v.X() > box.Max.X() {
			box.Max[0] = v.X()
		}
		if v.Y() > box.Max.Y() {
			box.Max[1] = v.Y()
		}
	}

	return box
}

// Overlaps reports whether a and b intersect, treating touching edges as
// overlap. Symmetric: a.Overlaps(b) == b.Overlaps(a).
func (a AABB) Overlaps(b AABB) bool {
	if a.Max.X() < b.Min.X() || b.Max.X() < a.Min.X() {
		return false
	}
	if a.Max.Y() < b.Min.Y() || b.Max.Y() < a.Min.Y() {
		return false
	}
	return true
}
