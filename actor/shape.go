package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ShapeType discerns the kind of geometry a RigidBody carries. Circle and
// Rectangle are reserved for future specialised collision routines; the
// current collision and solver packages only walk the polygon path (a
// rectangle is just a 4-vertex polygon, and regular polygons already cover
// the construction needed for both).
type ShapeType int

const (
	ShapeCircle ShapeType = iota
	ShapeRectangle
	ShapePolygon
)

// Colour is opaque to the physics engine — it is never read by collision or
// solving code, only by a rendering front-end.
type Colour struct {
	R, G, B uint8
}

// regularPolygonVertices returns the local-space vertices of a regular
// n-gon inscribed in radius r, wound counter-clockwise, with the first
// vertex rotated to point straight up. Returns nil for n < 3.
func regularPolygonVertices(sides int, radius float32) []mgl32.Vec2 {
	if sides < 3 {
		return nil
	}

	verts := make([]mgl32.Vec2, sides)
	dTheta := 2 * math.Pi / float64(sides)
	// -pi/2 in the original source's screen-space (y-down) convention; this
	// engine is y-up (gravity is (0,-9.81), i.e. down is -y), so the angle
	// that actually puts a vertex at (0, radius) — "up" — is +pi/2 here.
	startAngle := math.Pi / 2

	for i := 0; i < sides; i++ {
		theta := startAngle + float64(i)*dTheta
		verts[i] = mgl32.Vec2{
			radius * float32(math.Cos(theta)),
			radius * float32(math.Sin(theta)),
		}
	}

	return verts
}

// boxVertices returns the four local-space corners of a centred,
// axis-aligned rectangle, wound counter-clockwise starting at top-left.
func boxVertices(width, height float32) []mgl32.Vec2 {
	left := -width / 2
	right := left + width
	bottom := -height / 2
	top := bottom + height

	return []mgl32.Vec2{
		{left, top},
		{left, bottom},
		{right, bottom},
		{right, top},
	}
}

// regularPolygonInertia computes the moment of inertia of a regular n-gon
// of the given mass and circumradius: (m*r^2/12)*(3 + cos(2*pi/n)).
// Returns 0 for degenerate input (n < 3 or mass <= 0).
func regularPolygonInertia(sides int, mass, radius float32) float32 {
	if sides < 3 || mass <= 0 {
		return 0
	}
	angle := 2 * math.Pi / float64(sides)
	return (mass * radius * radius / 12) * (3 + float32(math.Cos(angle)))
}
