package actor

import "github.com/go-gl/mathgl/mgl32"

// Material groups the properties that govern how a body responds to
// contact: how much it rebounds (Restitution) and how much it resists
// sliding (StaticFriction, DynamicFriction). It carries no physics state of
// its own.
type Material struct {
	Restitution     float32 // 0 = perfectly inelastic, 1 = perfectly elastic
	StaticFriction  float32
	DynamicFriction float32
}

// RigidBody is the central simulation entity: a convex polygon with a pose,
// linear/angular kinematics, and the derived mass properties needed by the
// solver. World-space vertices are cached and only rebuilt when Dirty is
// set — see Rebuild.
type RigidBody struct {
	Shape ShapeType
	Sides int     // polygon vertex count (4 for a body built via SetBoxVertices)
	Radius float32 // circumradius used to build Vertices, for diagnostics only

	// Geometry
	Vertices            []mgl32.Vec2 // local space, relative to the centre of mass
	TransformedVertices []mgl32.Vec2 // world-space cache
	Dirty               bool         // true when TransformedVertices needs a rebuild

	// Pose
	Position mgl32.Vec2
	Rotation float32 // radians

	// Kinematics
	LinearVelocity     mgl32.Vec2
	LinearAcceleration mgl32.Vec2
	AngularVelocity    float32
	AngularAcceleration float32
	Force              mgl32.Vec2

	// Material / mass
	Mass        float32
	InverseMass float32
	Inertia     float32
	InverseInertia float32
	Material    Material

	IsStatic bool
	Colour   Colour
}

// NewPolygon builds a regular n-gon inscribed in the given radius, with the
// given mass. Per spec: n < 3 or mass <= 0 yields zero inertia and zero
// inverse mass (the body behaves as if static for impulse purposes, but
// IsStatic itself is left to the caller).
func NewPolygon(sides int, radius, mass float32) *RigidBody {
	body := &RigidBody{
		Shape:  ShapePolygon,
		Sides:  sides,
		Radius: radius,
		Mass:   mass,
	}

	body.Vertices = regularPolygonVertices(sides, radius)
	body.Inertia = regularPolygonInertia(sides, mass, radius)
	if sides >= 3 {
		body.InverseMass = computeInverseMass(mass, body.IsStatic)
	}
	if body.Inertia > 0 {
		body.InverseInertia = 1 / body.Inertia
	}

	body.Dirty = true
	return body
}

// SetBoxVertices replaces the body's local geometry with a centred,
// axis-aligned rectangle and marks the world-space cache dirty. Mass
// properties are left untouched; callers that want box-shaped dynamics set
// Mass/Inertia themselves (the box path exists for static/kinematic
// geometry — floors, walls, ramps — where inertia is irrelevant).
func (rb *RigidBody) SetBoxVertices(width, height float32) {
	rb.Shape = ShapeRectangle
	rb.Sides = 4
	rb.Vertices = boxVertices(width, height)
	rb.Dirty = true
}

// computeInverseMass returns 0 when the body is static or has non-positive
// mass, else 1/mass.
func computeInverseMass(mass float32, isStatic bool) float32 {
	if isStatic || mass <= 0 {
		return 0
	}
	return 1 / mass
}

// Move offsets the body's position and marks it dirty.
func (rb *RigidBody) Move(delta mgl32.Vec2) {
	rb.Position = rb.Position.Add(delta)
	rb.Dirty = true
}

// Rotate adds radians to the body's rotation and marks it dirty.
func (rb *RigidBody) Rotate(radians float32) {
	rb.Rotation += radians
	rb.Dirty = true
}

// SnapTo sets the body's position outright and marks it dirty.
func (rb *RigidBody) SnapTo(position mgl32.Vec2) {
	rb.Position = position
	rb.Dirty = true
}

// Recompute derives InverseMass and InverseInertia from the current Mass,
// Inertia and IsStatic fields. Call after mutating Mass/Inertia/IsStatic
// directly (e.g. the host marking a body static after construction).
func (rb *RigidBody) Recompute() {
	rb.InverseMass = computeInverseMass(rb.Mass, rb.IsStatic)
	if rb.Inertia > 0 && !rb.IsStatic {
		rb.InverseInertia = 1 / rb.Inertia
	} else {
		rb.InverseInertia = 0
	}
}
