package solver

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/kestrelphys/polygon2d/actor"
	"github.com/kestrelphys/polygon2d/collision"
)

func floatEqual(a, b, tolerance float32) bool {
	return float32(math.Abs(float64(a-b))) < tolerance
}

func dynamicBox(x, y float32, restitution float32) *actor.RigidBody {
	body := actor.NewPolygon(4, 1, 2)
	body.Position = mgl32.Vec2{x, y}
	body.Material.Restitution = restitution
	actor.Rebuild(body)
	return body
}

func TestResolve_NoOpWhenNotInCollision(t *testing.T) {
	m := &collision.Manifold{InCollision: false}
	Resolve(m)
}

func TestResolve_HeadOnMomentumConserved(t *testing.T) {
	a := dynamicBox(-0.9, 0, 1.0)
	b := dynamicBox(0.9, 0, 1.0)
	a.LinearVelocity = mgl32.Vec2{10, 0}
	b.LinearVelocity = mgl32.Vec2{-10, 0}

	m := collision.SAT(a, b)
	if !m.InCollision {
		t.Fatal("expected collision between overlapping bodies")
	}

	momentumBefore := a.Mass*a.LinearVelocity.X() + b.Mass*b.LinearVelocity.X()

	Resolve(&m)

	momentumAfter := a.Mass*a.LinearVelocity.X() + b.Mass*b.LinearVelocity.X()

	if !floatEqual(momentumBefore, momentumAfter, 1e-2) {
		t.Errorf("momentum before = %v, after = %v; not conserved", momentumBefore, momentumAfter)
	}
}

func TestResolve_RestitutionBound(t *testing.T) {
	// Dynamic body falling onto a static floor head-on; rebound speed should
	// equal e * incoming speed.
	floor := &actor.RigidBody{Position: mgl32.Vec2{0, -1}, IsStatic: true}
	floor.SetBoxVertices(10, 2)
	floor.Material.Restitution = 1.0
	floor.Recompute()
	actor.Rebuild(floor)

	body := actor.NewPolygon(4, 1, 2)
	body.Position = mgl32.Vec2{0, 0.9}
	body.Material.Restitution = 1.0
	body.LinearVelocity = mgl32.Vec2{0, -5}
	actor.Rebuild(body)

	m := collision.SAT(body, floor)
	if !m.InCollision {
		t.Fatal("expected body to overlap floor")
	}

	Resolve(&m)

	if !floatEqual(body.LinearVelocity.Y(), 5, 0.2) {
		t.Errorf("LinearVelocity.Y = %v, want approx 5 (e=1 rebound of incoming 5)", body.LinearVelocity.Y())
	}
}

func TestResolve_SeparatingContactSkipped(t *testing.T) {
	a := dynamicBox(-0.9, 0, 0)
	b := dynamicBox(0.9, 0, 0)
	// already separating: A moving left, B moving right
	a.LinearVelocity = mgl32.Vec2{-10, 0}
	b.LinearVelocity = mgl32.Vec2{10, 0}

	m := collision.SAT(a, b)
	if !m.InCollision {
		t.Fatal("expected overlap")
	}

	velABefore := a.LinearVelocity
	velBBefore := b.LinearVelocity

	Resolve(&m)

	if a.LinearVelocity != velABefore || b.LinearVelocity != velBBefore {
		t.Error("expected velocities unchanged for an already-separating contact")
	}
}

func TestResolve_StaticBodyNeverMoves(t *testing.T) {
	floor := &actor.RigidBody{Position: mgl32.Vec2{0, -1}, IsStatic: true}
	floor.SetBoxVertices(10, 2)
	floor.Recompute()
	actor.Rebuild(floor)

	body := actor.NewPolygon(4, 1, 2)
	body.Position = mgl32.Vec2{0, 0.5}
	body.LinearVelocity = mgl32.Vec2{0, -5}
	actor.Rebuild(body)

	m := collision.SAT(body, floor)
	if !m.InCollision {
		t.Fatal("expected overlap")
	}

	posBefore := floor.Position
	velBefore := floor.LinearVelocity

	Resolve(&m)

	if floor.Position != posBefore {
		t.Errorf("static body position changed: %v -> %v", posBefore, floor.Position)
	}
	if floor.LinearVelocity != velBefore {
		t.Errorf("static body velocity changed: %v -> %v", velBefore, floor.LinearVelocity)
	}
}

func TestResolve_ZeroInverseMassSumSkipsPositionalCorrection(t *testing.T) {
	a := &actor.RigidBody{Position: mgl32.Vec2{0, 0}, IsStatic: true}
	a.SetBoxVertices(2, 2)
	a.Recompute()
	actor.Rebuild(a)

	b := &actor.RigidBody{Position: mgl32.Vec2{1, 0}, IsStatic: true}
	b.SetBoxVertices(2, 2)
	b.Recompute()
	actor.Rebuild(b)

	m := collision.Manifold{A: a, B: b, InCollision: true, ContactCount: 1, Penetration: 1, Normal: mgl32.Vec2{1, 0}}
	m.Contacts[0] = mgl32.Vec2{0.5, 0}

	posA, posB := a.Position, b.Position
	Resolve(&m)

	if a.Position != posA || b.Position != posB {
		t.Error("expected no positional correction when both bodies have zero inverse mass")
	}
}
