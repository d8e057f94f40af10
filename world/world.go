// Package world ties the actor, broadphase, collision and solver packages
// together into the per-tick step loop, replacing the teacher's
// goroutine/channel pipeline (pipeline.go, world.go) with the spec's
// single-threaded, cooperative loop: integrate, cull, then iterate the
// solver a fixed number of times per tick.
package world

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kestrelphys/polygon2d/actor"
	"github.com/kestrelphys/polygon2d/broadphase"
	"github.com/kestrelphys/polygon2d/collision"
	"github.com/kestrelphys/polygon2d/solver"
)

// Defaults mirror the end-to-end scenarios in the spec.
const (
	DefaultGravityY         float32 = -9.81
	DefaultSolverIterations int     = 10
	DefaultYBounds          float32 = 100
	DefaultCellSize         float32 = broadphase.DefaultCellSize
)

// World owns the body collection and the per-tick parameters governing a
// step. Bodies are appended via Bodies (host setup) or AddBody; the engine
// itself never creates or removes a body mid-step except culling.
type World struct {
	Bodies []*actor.RigidBody

	Gravity          mgl32.Vec2
	SolverIterations int
	YBounds          float32
	CellSize         float32

	grid   *broadphase.Grid
	stats  Stats
	Events *Events // optional; nil unless the host opts in via EnableEvents
}

// EnableEvents allocates the world's collision event tracker and returns it
// so the host can Subscribe before the next Step.
func (w *World) EnableEvents() *Events {
	w.Events = NewEvents()
	return w.Events
}

// New returns a World configured with the spec's defaults.
func New() *World {
	return &World{
		Gravity:          mgl32.Vec2{0, DefaultGravityY},
		SolverIterations: DefaultSolverIterations,
		YBounds:          DefaultYBounds,
		CellSize:         DefaultCellSize,
		grid:             broadphase.New(DefaultCellSize),
	}
}

// AddBody appends body to the world's collection. The collection holds
// pointers, so a *RigidBody the caller keeps stays valid when the collection
// grows; indices into Bodies shift when Step culls bodies.
func (w *World) AddBody(body *actor.RigidBody) {
	w.Bodies = append(w.Bodies, body)
}

// Stats returns the world's diagnostic counters as of the last completed
// step.
func (w *World) Stats() Stats {
	return w.stats
}

// RecordStepDuration feeds a host-measured step wall-clock time (seconds)
// into the rolling step-duration diagnostic. The core never times itself.
func (w *World) RecordStepDuration(seconds float64) {
	w.stats.RecordStepDuration(seconds)
}

// Step advances the simulation by dt. dt must be positive; the core places
// no other constraint on it and performs no validation.
func (w *World) Step(dt float32) {
	w.stats.resetTick()

	w.integrate(dt)
	w.cull()

	if w.grid == nil || w.grid.CellSize() != w.CellSize {
		w.grid = broadphase.New(w.CellSize)
	}

	for i := 0; i < w.SolverIterations; i++ {
		w.solveIteration()
	}

	if w.Events != nil {
		w.Events.Flush()
	}

	w.stats.Steps++
}

// integrate advances every non-static body's velocity then position under
// gravity, and marks it dirty.
func (w *World) integrate(dt float32) {
	for _, body := range w.Bodies {
		if body.IsStatic {
			continue
		}

		body.LinearAcceleration = w.Gravity
		body.LinearVelocity = body.LinearVelocity.Add(body.LinearAcceleration.Mul(dt))
		body.Position = body.Position.Add(body.LinearVelocity.Mul(dt))

		body.AngularVelocity += body.AngularAcceleration * dt
		body.Rotation += body.AngularVelocity * dt

		body.Force = mgl32.Vec2{}
		body.Dirty = true

		w.stats.BodiesUpdated++
	}
}

// cull removes bodies that have fallen below the world's y bound.
func (w *World) cull() {
	floor := -w.YBounds

	kept := w.Bodies[:0]
	for _, body := range w.Bodies {
		if body.Position.Y() < floor {
			w.stats.BodiesCulled++
			continue
		}
		kept = append(kept, body)
	}
	w.Bodies = kept
}

// solveIteration rebuilds world-space geometry, re-pairs bodies via the
// spatial hash, and resolves every colliding candidate pair once.
func (w *World) solveIteration() {
	aabbs := make([]actor.AABB, len(w.Bodies))

	w.grid.Reset()
	for i, body := range w.Bodies {
		actor.Rebuild(body)
		aabbs[i] = actor.ComputeAABB(body)
		w.grid.Insert(i, aabbs[i])
	}

	pairs := w.grid.Pairs()
	w.stats.BroadPairs += len(pairs)

	for _, pair := range pairs {
		a, b := w.Bodies[pair.A], w.Bodies[pair.B]

		if a.IsStatic && b.IsStatic {
			continue
		}
		if !aabbs[pair.A].Overlaps(aabbs[pair.B]) {
			continue
		}

		w.stats.NarrowChecks++

		m := collision.SAT(a, b)
		if !m.InCollision {
			continue
		}

		solver.Resolve(&m)
		w.stats.ContactsResolved++

		if w.Events != nil {
			w.Events.RecordPair(a, b)
		}
	}
}
