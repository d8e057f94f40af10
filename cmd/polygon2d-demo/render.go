package main

import (
	"fmt"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/kestrelphys/polygon2d/actor"
	"github.com/kestrelphys/polygon2d/world"
)

const (
	screenWidth   = 1280
	screenHeight  = 720
	pixelsPerUnit = 10
)

// runWindowed opens a raylib window and renders w's bodies each frame,
// consuming only the read-only transformed-vertex snapshot a step leaves
// behind. A left click appends a new dynamic body at the cursor, exercising
// the append-only insertion contract.
func runWindowed(w *world.World, dt float32, maxTicks int, logStats bool, rng *rand.Rand) {
	rl.InitWindow(screenWidth, screenHeight, "polygon2d demo")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	lastLog := time.Now()
	tick := 0

	for !rl.WindowShouldClose() {
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			spawnAtCursor(w, rng)
		}

		start := time.Now()
		w.Step(dt)
		w.RecordStepDuration(time.Since(start).Seconds())
		tick++

		if logStats && time.Since(lastLog) >= time.Second {
			logWorldStats(w, tick)
			lastLog = time.Now()
		}

		draw(w, tick)

		if maxTicks > 0 && tick >= maxTicks {
			break
		}
	}
}

// spawnAtCursor appends a small dynamic polygon at the current mouse
// position, converted from screen to world space.
func spawnAtCursor(w *world.World, rng *rand.Rand) {
	pos := rl.GetMousePosition()
	sides := 3 + rng.Intn(5)

	body := actor.NewPolygon(sides, 1, 1)
	body.Position[0] = screenToWorld(pos.X, screenWidth/2)
	body.Position[1] = -screenToWorld(pos.Y, screenHeight/2)
	body.Material.Restitution = 0.3
	body.Colour = actor.Colour{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
	}

	w.AddBody(body)
}

func screenToWorld(screen, halfExtent float32) float32 {
	return (screen - halfExtent) / pixelsPerUnit
}

func worldToScreen(coord, halfExtent float32) float32 {
	return coord*pixelsPerUnit + halfExtent
}

func draw(w *world.World, tick int) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	for _, body := range w.Bodies {
		drawBody(body)
	}

	rl.DrawText(fmt.Sprintf("tick: %d  bodies: %d", tick, len(w.Bodies)), 10, 10, 20, rl.White)
	stats := w.Stats()
	rl.DrawText(
		fmt.Sprintf("contacts: %d  broad pairs: %d", stats.ContactsResolved, stats.BroadPairs),
		10, 35, 20, rl.White,
	)

	rl.EndDrawing()
}

func drawBody(body *actor.RigidBody) {
	verts := body.TransformedVertices
	if len(verts) < 3 {
		return
	}

	colour := rl.Color{R: body.Colour.R, G: body.Colour.G, B: body.Colour.B, A: 255}

	for i := 0; i < len(verts); i++ {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		start := rl.Vector2{X: worldToScreen(a.X(), screenWidth/2), Y: worldToScreen(-a.Y(), screenHeight/2)}
		end := rl.Vector2{X: worldToScreen(b.X(), screenWidth/2), Y: worldToScreen(-b.Y(), screenHeight/2)}
		rl.DrawLineEx(start, end, 2, colour)
	}
}
