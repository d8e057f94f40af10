package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/kestrelphys/polygon2d/actor"
	"github.com/kestrelphys/polygon2d/world"
)

// Builtin is a named scene constructor, one per end-to-end scenario the
// original prototype exercised.
type Builtin func() *world.World

// Builtins lists every named scene by the name a host CLI can select with.
var Builtins = map[string]Builtin{
	"rest":       Rest,
	"head-on":    HeadOn,
	"incline":    Incline,
	"broadphase": Broadphase,
	"two-static": TwoStatic,
}

func staticBox(x, y, width, height, rotation float32, colour actor.Colour) *actor.RigidBody {
	body := &actor.RigidBody{Position: mgl32.Vec2{x, y}, Rotation: rotation, IsStatic: true, Colour: colour}
	body.SetBoxVertices(width, height)
	body.Material.Restitution = 1.0
	body.Recompute()
	return body
}

// Rest reproduces the spec's "rest on floor" scenario: a dynamic square
// dropped onto a large static floor should settle on top of it.
func Rest() *world.World {
	w := world.New()

	floor := staticBox(0, -27, 30, 30, math.Pi/2, actor.Colour{R: 0, G: 255, B: 255})
	w.AddBody(floor)

	body := actor.NewPolygon(4, 1, 2)
	body.Position = mgl32.Vec2{0, 3}
	body.Material.Restitution = 0 // pair restitution is the smaller one, so the drop is inelastic
	w.AddBody(body)

	return w
}

// HeadOn reproduces the spec's "perpendicular head-on" scenario: two
// identical frictionless squares approaching each other at equal speed.
func HeadOn() *world.World {
	w := world.New()
	w.Gravity = mgl32.Vec2{} // pure-x scenario; gravity would bleed into |v|

	a := actor.NewPolygon(4, 1, 2)
	a.Position = mgl32.Vec2{-5, 0}
	a.LinearVelocity = mgl32.Vec2{10, 0}
	a.Material.Restitution = 1.0
	w.AddBody(a)

	b := actor.NewPolygon(4, 1, 2)
	b.Position = mgl32.Vec2{5, 0}
	b.LinearVelocity = mgl32.Vec2{-10, 0}
	b.Material.Restitution = 1.0
	w.AddBody(b)

	return w
}

// Incline reproduces the spec's "oblique incline" scenario: a static floor
// plus a static ramp, with a dynamic polygon dropped from above. The ramp's
// box lies entirely inside the floor's box (the floor's top edge is at
// y = -12), so the polygon never touches the ramp: it lands on the floor's
// top edge, where the pair's friction is zero, and comes to rest there.
func Incline() *world.World {
	w := world.New()

	floor := staticBox(0, -27, 30, 30, math.Pi/2, actor.Colour{R: 0, G: 255, B: 255})
	w.AddBody(floor)

	incline := staticBox(5, -20, 20, 1, 0.2*math.Pi/2, actor.Colour{R: 200, G: 200, B: 0})
	incline.Material.Restitution = 0.2
	incline.Material.StaticFriction = 0.6
	incline.Material.DynamicFriction = 0.4
	w.AddBody(incline)

	body := actor.NewPolygon(4, 1, 2)
	body.Position = mgl32.Vec2{5, 10}
	body.Material.Restitution = 0.2
	body.Material.StaticFriction = 0.6
	body.Material.DynamicFriction = 0.4
	w.AddBody(body)

	return w
}

// Broadphase reproduces the spec's "broad-phase distinct" scenario: 50
// bodies spread along x, each further apart than a grid cell so the pairing
// stays linear instead of quadratic.
func Broadphase() *world.World {
	w := world.New()
	w.Gravity = mgl32.Vec2{}

	for i := 0; i < 50; i++ {
		body := actor.NewPolygon(4, 0.1, 1)
		body.Position = mgl32.Vec2{float32(i) * 3.0, 0}
		body.IsStatic = true
		body.Recompute()
		w.AddBody(body)
	}

	return w
}

// TwoStatic reproduces the spec's "two-static skip" scenario: two
// overlapping static boxes that the broad+narrow phase must leave alone.
func TwoStatic() *world.World {
	w := world.New()

	a := staticBox(0, 0, 4, 4, 0, actor.Colour{R: 255})
	b := staticBox(1, 0, 4, 4, 0, actor.Colour{R: 0, G: 255})
	w.AddBody(a)
	w.AddBody(b)

	return w
}
