// Package scene loads world and body configuration from YAML, falling back
// to embedded defaults exactly as pthm-soup's config package does, and
// builds a world.World from the result.
package scene

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/kestrelphys/polygon2d/actor"
	"github.com/kestrelphys/polygon2d/world"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// WorldConfig holds the world-level parameters a scene file can override.
type WorldConfig struct {
	GravityX         float32 `yaml:"gravity_x"`
	GravityY         float32 `yaml:"gravity_y"`
	SolverIterations int     `yaml:"solver_iterations"`
	YBounds          float32 `yaml:"y_bounds"`
	CellSize         float32 `yaml:"cell_size"`
}

// BodyConfig describes one body. Sides >= 3 builds a regular polygon of that
// many sides; any smaller value (including 0) builds a box from Width/Height
// instead.
type BodyConfig struct {
	Sides  int     `yaml:"sides"`
	Radius float32 `yaml:"radius"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	Mass   float32 `yaml:"mass"`

	PositionX float32 `yaml:"position_x"`
	PositionY float32 `yaml:"position_y"`
	Rotation  float32 `yaml:"rotation"`
	VelocityX float32 `yaml:"velocity_x"`
	VelocityY float32 `yaml:"velocity_y"`

	Static          bool    `yaml:"static"`
	Restitution     float32 `yaml:"restitution"`
	StaticFriction  float32 `yaml:"static_friction"`
	DynamicFriction float32 `yaml:"dynamic_friction"`

	ColourR uint8 `yaml:"colour_r"`
	ColourG uint8 `yaml:"colour_g"`
	ColourB uint8 `yaml:"colour_b"`
}

// Config is a complete scene: world parameters plus the bodies to populate
// it with.
type Config struct {
	World WorldConfig  `yaml:"world"`
	Bodies []BodyConfig `yaml:"bodies"`
}

// Load reads a scene from path, merging it over the embedded defaults. An
// empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded scene defaults: %w", err)
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing scene file %q: %w", path, err)
	}

	return cfg, nil
}

// Build constructs a world.World and populates it per cfg.
func Build(cfg *Config) *world.World {
	w := world.New()

	if cfg.World.SolverIterations > 0 {
		w.SolverIterations = cfg.World.SolverIterations
	}
	if cfg.World.YBounds > 0 {
		w.YBounds = cfg.World.YBounds
	}
	if cfg.World.CellSize > 0 {
		w.CellSize = cfg.World.CellSize
	}
	w.Gravity = mgl32.Vec2{cfg.World.GravityX, cfg.World.GravityY}

	for _, bc := range cfg.Bodies {
		w.AddBody(buildBody(bc))
	}

	return w
}

func buildBody(bc BodyConfig) *actor.RigidBody {
	var body *actor.RigidBody
	if bc.Sides >= 3 {
		body = actor.NewPolygon(bc.Sides, bc.Radius, bc.Mass)
	} else {
		body = &actor.RigidBody{Mass: bc.Mass}
		body.SetBoxVertices(bc.Width, bc.Height)
	}

	body.Position = mgl32.Vec2{bc.PositionX, bc.PositionY}
	body.Rotation = bc.Rotation
	body.LinearVelocity = mgl32.Vec2{bc.VelocityX, bc.VelocityY}
	body.IsStatic = bc.Static
	body.Material = actor.Material{
		Restitution:     bc.Restitution,
		StaticFriction:  bc.StaticFriction,
		DynamicFriction: bc.DynamicFriction,
	}
	body.Colour = actor.Colour{R: bc.ColourR, G: bc.ColourG, B: bc.ColourB}
	body.Recompute()
	body.Dirty = true

	return body
}
