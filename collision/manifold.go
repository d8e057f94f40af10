// Package collision implements the SAT narrow phase: separating-axis
// projection, minimum-translation-vector extraction, and contact-point
// generation for convex polygon pairs. It replaces the teacher's GJK/EPA
// pipeline (gjk, epa packages) — the spec calls for SAT over polygons, not
// a general-purpose support-function distance algorithm.
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/kestrelphys/polygon2d/actor"
	"github.com/kestrelphys/polygon2d/vecmath"
)

// contactEpsilon is the tolerance added to the minimum squared distance when
// selecting which candidate contact points survive.
const contactEpsilon = 1e-4

// MaxContacts bounds a Manifold's contact points; polygon-polygon contact is
// either a single vertex-on-edge point or an edge-on-edge pair.
const MaxContacts = 2

// Manifold describes how two bodies touch in a single tick. A and B are
// non-owning references valid only for the duration of the resolution step
// that produced them.
type Manifold struct {
	A, B *actor.RigidBody

	Normal      mgl32.Vec2 // unit, points from A toward B
	Penetration float32

	Contacts     [MaxContacts]mgl32.Vec2
	ContactCount int

	InCollision bool
}

// SAT runs the separating-axis test between A and B and, on overlap,
// extracts contact points. The manifold's normal and penetration are only
// meaningful when InCollision is true.
func SAT(a, b *actor.RigidBody) Manifold {
	m := Manifold{A: a, B: b, Penetration: float32(math.Inf(1)), InCollision: true}

	if !satLoop(a.TransformedVertices, b.TransformedVertices, &m) {
		m.InCollision = false
	}
	if !satLoop(b.TransformedVertices, a.TransformedVertices, &m) {
		m.InCollision = false
	}

	if !m.InCollision {
		m.ContactCount = 0
		return m
	}

	if vecmath.Dot(m.Normal, b.Position.Sub(a.Position)) < 0 {
		m.Normal = m.Normal.Mul(-1)
	}

	extractContacts(a.TransformedVertices, b.TransformedVertices, &m)
	m.InCollision = m.ContactCount > 0
	return m
}

// projectAxis returns the [min,max] interval of verts projected onto axis.
func projectAxis(verts []mgl32.Vec2, axis mgl32.Vec2) (min, max float32) {
	min = vecmath.Dot(verts[0], axis)
	max = min
	for _, v := range verts[1:] {
		p := vecmath.Dot(v, axis)
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	return min, max
}

// satLoop walks each edge of from, testing the candidate separating axis
// perpendicular to it against both polygons. Returns false the instant a
// separating axis is found; otherwise it keeps the running minimum
// penetration depth and its axis in m.
func satLoop(from, other []mgl32.Vec2, m *Manifold) bool {
	n := len(from)
	for i := 0; i < n; i++ {
		v0 := from[i]
		v1 := from[(i+1)%n]
		edge := v1.Sub(v0)

		axis := vecmath.Normalise(mgl32.Vec2{-edge.Y(), edge.X()})
		if axis == (mgl32.Vec2{}) {
			// zero-length edge: the projection interval degenerates to a
			// point on every axis, which would otherwise report a spurious
			// gap. Skip it and let the remaining edges decide.
			continue
		}

		minA, maxA := projectAxis(from, axis)
		minB, maxB := projectAxis(other, axis)

		if maxA <= minB || maxB <= minA {
			return false
		}

		axisDepth := maxA - minB
		if d := maxB - minA; d < axisDepth {
			axisDepth = d
		}

		if axisDepth < m.Penetration {
			m.Penetration = axisDepth
			m.Normal = axis
		}
	}
	return true
}

type contactCandidate struct {
	point   mgl32.Vec2
	distSq  float32
}

// extractContacts fills m.Contacts/m.ContactCount from the closest
// vertex-to-edge points between the two polygons, per the spec's
// two-candidate contact manifold rule.
func extractContacts(vertsA, vertsB []mgl32.Vec2, m *Manifold) {
	if len(vertsA) == 0 || len(vertsB) == 0 {
		m.ContactCount = 0
		return
	}

	candidates := make([]contactCandidate, 0, len(vertsA)*len(vertsB)*2)
	candidates = appendVertexOnEdgeCandidates(candidates, vertsA, vertsB)
	candidates = appendVertexOnEdgeCandidates(candidates, vertsB, vertsA)

	if len(candidates) == 0 {
		m.ContactCount = 0
		return
	}

	dMin := candidates[0].distSq
	for _, c := range candidates[1:] {
		if c.distSq < dMin {
			dMin = c.distSq
		}
	}
	threshold := dMin + contactEpsilon

	count := 0
	for _, c := range candidates {
		if c.distSq > threshold {
			continue
		}
		if count == 0 {
			m.Contacts[0] = c.point
			count = 1
			continue
		}
		if !vecmath.VecEqual(c.point, m.Contacts[0]) {
			m.Contacts[1] = c.point
			count = 2
			break
		}
	}

	m.ContactCount = count
}

// appendVertexOnEdgeCandidates appends, for every vertex of verts, the
// closest point on every edge of edgeVerts.
func appendVertexOnEdgeCandidates(candidates []contactCandidate, verts, edgeVerts []mgl32.Vec2) []contactCandidate {
	n := len(edgeVerts)
	for _, v := range verts {
		for i := 0; i < n; i++ {
			a := edgeVerts[i]
			b := edgeVerts[(i+1)%n]
			closest, distSq := vecmath.PointSegmentDistance(a, b, v)
			candidates = append(candidates, contactCandidate{point: closest, distSq: distSq})
		}
	}
	return candidates
}
