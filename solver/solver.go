// Package solver resolves a collision manifold into velocity impulses
// (restitution + Coulomb friction) and a positional correction, replacing
// the teacher's XPBD-style constraint package with the spec's sequential
// impulse solver.
package solver

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kestrelphys/polygon2d/collision"
	"github.com/kestrelphys/polygon2d/vecmath"
)

// PositionalCorrectionPercent and PositionalCorrectionSlop are the
// Baumgarte-style correction constants applied after every velocity
// resolve.
const (
	PositionalCorrectionPercent = 0.8
	PositionalCorrectionSlop    = 0.01
)

// tangentEpsilon is the minimum tangential speed below which friction is
// skipped for a contact, letting resting contacts settle without jitter.
const tangentEpsilon = 1e-6

type recordedImpulse struct {
	impulse mgl32.Vec2
	rA, rB  mgl32.Vec2
}

// Resolve applies velocity impulses and positional correction for m.
// No-op when m is not in collision.
func Resolve(m *collision.Manifold) {
	if !m.InCollision || m.ContactCount == 0 {
		return
	}

	a, b := m.A, m.B

	restitution := min32(a.Material.Restitution, b.Material.Restitution)
	muS := min32(a.Material.StaticFriction, b.Material.StaticFriction)
	muD := min32(a.Material.DynamicFriction, b.Material.DynamicFriction)

	invMassSum := a.InverseMass + b.InverseMass

	impulses := make([]recordedImpulse, 0, m.ContactCount)

	for i := 0; i < m.ContactCount; i++ {
		p := m.Contacts[i]
		rA := p.Sub(a.Position)
		rB := p.Sub(b.Position)
		rAPerp := mgl32.Vec2{-rA.Y(), rA.X()}
		rBPerp := mgl32.Vec2{-rB.Y(), rB.X()}

		vA := a.LinearVelocity.Add(rAPerp.Mul(a.AngularVelocity))
		vB := b.LinearVelocity.Add(rBPerp.Mul(b.AngularVelocity))
		vRel := vB.Sub(vA)

		vn := vecmath.Dot(vRel, m.Normal)
		if vn > 0 {
			continue
		}

		angularTermNormal := sq(vecmath.Dot(rAPerp, m.Normal))*a.InverseInertia +
			sq(vecmath.Dot(rBPerp, m.Normal))*b.InverseInertia
		denom := invMassSum + angularTermNormal
		if denom == 0 {
			continue
		}

		j := -(1 + restitution) * vn / denom
		j /= float32(m.ContactCount)

		impulse := m.Normal.Mul(j)

		tangent := vRel.Sub(m.Normal.Mul(vecmath.Dot(vRel, m.Normal)))
		if tangent.Len() > tangentEpsilon {
			tangent = vecmath.Normalise(tangent)

			angularTermTangent := sq(vecmath.Dot(rAPerp, tangent))*a.InverseInertia +
				sq(vecmath.Dot(rBPerp, tangent))*b.InverseInertia
			tDenom := invMassSum + angularTermTangent

			if tDenom != 0 {
				jt := -vecmath.Dot(vRel, tangent) / tDenom
				jt /= float32(m.ContactCount)

				var frictionImpulse mgl32.Vec2
				if abs32(jt) <= j*muS {
					frictionImpulse = tangent.Mul(jt)
				} else {
					frictionImpulse = tangent.Mul(-j * muD)
				}
				impulse = impulse.Add(frictionImpulse)
			}
		}

		impulses = append(impulses, recordedImpulse{impulse: impulse, rA: rA, rB: rB})
	}

	for _, ri := range impulses {
		a.LinearVelocity = a.LinearVelocity.Sub(ri.impulse.Mul(a.InverseMass))
		b.LinearVelocity = b.LinearVelocity.Add(ri.impulse.Mul(b.InverseMass))
		a.AngularVelocity += -vecmath.Cross(ri.rA, ri.impulse) * a.InverseInertia
		b.AngularVelocity += vecmath.Cross(ri.rB, ri.impulse) * b.InverseInertia
	}

	positionalCorrection(m, invMassSum)
}

// positionalCorrection pushes A and B apart along the contact normal,
// proportioned by inverse mass, to counter residual penetration left by the
// velocity-only resolve.
func positionalCorrection(m *collision.Manifold, invMassSum float32) {
	if invMassSum <= 0 {
		return
	}

	depth := m.Penetration - PositionalCorrectionSlop
	if depth < 0 {
		depth = 0
	}

	corr := m.Normal.Mul(depth / invMassSum * PositionalCorrectionPercent)

	m.A.Position = m.A.Position.Sub(corr.Mul(m.A.InverseMass))
	m.A.Dirty = true

	m.B.Position = m.B.Position.Add(corr.Mul(m.B.InverseMass))
	m.B.Dirty = true
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func sq(v float32) float32 {
	return v * v
}
