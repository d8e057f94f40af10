package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestComputeAABB(t *testing.T) {
	body := &RigidBody{}
	body.SetBoxVertices(4, 2)
	body.Position = mgl32.Vec2{10, 5}
	Rebuild(body)

	box := ComputeAABB(body)

	if !floatEqual(box.Min.X(), 8, 1e-4) || !floatEqual(box.Min.Y(), 4, 1e-4) {
		t.Errorf("Min = %v, want (8, 4)", box.Min)
	}
	if !floatEqual(box.Max.X(), 12, 1e-4) || !floatEqual(box.Max.Y(), 6, 1e-4) {
		t.Errorf("Max = %v, want (12, 6)", box.Max)
	}
}

func TestAABBOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b AABB
		want bool
	}{
		{
			"disjoint on x",
			AABB{Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{1, 1}},
			AABB{Min: mgl32.Vec2{2, 0}, Max: mgl32.Vec2{3, 1}},
			false,
		},
		{
			"disjoint on y",
			AABB{Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{1, 1}},
			AABB{Min: mgl32.Vec2{0, 2}, Max: mgl32.Vec2{1, 3}},
			false,
		},
		{
			"overlapping",
			AABB{Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{2, 2}},
			AABB{Min: mgl32.Vec2{1, 1}, Max: mgl32.Vec2{3, 3}},
			true,
		},
		{
			"touching edges count as overlap",
			AABB{Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{1, 1}},
			AABB{Min: mgl32.Vec2{1, 0}, Max: mgl32.Vec2{2, 1}},
			true,
		},
		{
			"contained",
			AABB{Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{10, 10}},
			AABB{Min: mgl32.Vec2{2, 2}, Max: mgl32.Vec2{3, 3}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("a.Overlaps(b) = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("b.Overlaps(a) = %v, want %v (not symmetric)", got, tt.want)
			}
		})
	}
}
