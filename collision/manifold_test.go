package collision

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/kestrelphys/polygon2d/actor"
)

func boxAt(x, y, width, height float32) *actor.RigidBody {
	body := &actor.RigidBody{Position: mgl32.Vec2{x, y}}
	body.SetBoxVertices(width, height)
	actor.Rebuild(body)
	return body
}

func floatEqual(a, b, tolerance float32) bool {
	return float32(math.Abs(float64(a-b))) < tolerance
}

func TestSAT_Overlapping(t *testing.T) {
	a := boxAt(0, 0, 2, 2)
	b := boxAt(1, 0, 2, 2)

	m := SAT(a, b)

	if !m.InCollision {
		t.Fatal("expected collision")
	}
	if m.ContactCount == 0 {
		t.Fatal("expected InCollision to imply ContactCount > 0")
	}
	if !floatEqual(m.Normal.Len(), 1, 1e-4) {
		t.Errorf("|Normal| = %v, want 1", m.Normal.Len())
	}
	// normal must point from A toward B, i.e. positive x here.
	if m.Normal.X() < 0 {
		t.Errorf("Normal = %v, want positive x component", m.Normal)
	}
	if m.Penetration < 0 {
		t.Errorf("Penetration = %v, want >= 0", m.Penetration)
	}
}

func TestSAT_Separated(t *testing.T) {
	a := boxAt(0, 0, 2, 2)
	b := boxAt(10, 0, 2, 2)

	m := SAT(a, b)

	if m.InCollision {
		t.Error("expected no collision")
	}
	if m.ContactCount != 0 {
		t.Errorf("ContactCount = %d, want 0", m.ContactCount)
	}
}

func TestSAT_ExactTouchIsSeparated(t *testing.T) {
	// Two unit-half-width boxes touching edge-to-edge exactly: maxA == minB
	// on the separating axis, which the spec treats as separated (strict <).
	a := boxAt(0, 0, 2, 2)
	b := boxAt(2, 0, 2, 2)

	m := SAT(a, b)
	if m.InCollision {
		t.Error("expected exact-touch to be reported as separated")
	}
}

func TestSAT_InvariantHolds(t *testing.T) {
	cases := []struct {
		name string
		a, b *actor.RigidBody
	}{
		{"overlapping", boxAt(0, 0, 2, 2), boxAt(0.5, 0.5, 2, 2)},
		{"separated", boxAt(0, 0, 2, 2), boxAt(100, 100, 2, 2)},
		{"deep overlap", boxAt(0, 0, 4, 4), boxAt(0, 0, 4, 4)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := SAT(tc.a, tc.b)
			if m.InCollision != (m.ContactCount > 0) {
				t.Errorf("InCollision=%v but ContactCount=%d; invariant violated",
					m.InCollision, m.ContactCount)
			}
			if m.InCollision {
				if !floatEqual(m.Normal.Len(), 1, 1e-3) {
					t.Errorf("|Normal| = %v, want ~1", m.Normal.Len())
				}
				diff := tc.b.Position.Sub(tc.a.Position)
				if dot := m.Normal.X()*diff.X() + m.Normal.Y()*diff.Y(); dot < -1e-4 {
					t.Errorf("Normal . (B-A) = %v, want >= 0", dot)
				}
				if m.Penetration < 0 {
					t.Errorf("Penetration = %v, want >= 0", m.Penetration)
				}
			}
		})
	}
}

func TestProjectAxis(t *testing.T) {
	verts := []mgl32.Vec2{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	min, max := projectAxis(verts, mgl32.Vec2{1, 0})
	if !floatEqual(min, 0, 1e-4) || !floatEqual(max, 2, 1e-4) {
		t.Errorf("projectAxis = [%v, %v], want [0, 2]", min, max)
	}
}
