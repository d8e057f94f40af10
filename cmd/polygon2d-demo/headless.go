package main

import (
	"log/slog"
	"time"

	"github.com/kestrelphys/polygon2d/world"
)

// runHeadless steps w at a fixed dt with no window, optionally logging
// WorldStats via slog roughly once a second.
func runHeadless(w *world.World, dt float32, maxTicks int, logStats bool) {
	lastLog := time.Now()

	for tick := 0; maxTicks == 0 || tick < maxTicks; tick++ {
		start := time.Now()
		w.Step(dt)
		w.RecordStepDuration(time.Since(start).Seconds())

		if logStats && time.Since(lastLog) >= time.Second {
			logWorldStats(w, tick)
			lastLog = time.Now()
		}
	}

	slog.Info("headless run complete", "steps", w.Stats().Steps)
}

func logWorldStats(w *world.World, tick int) {
	stats := w.Stats()
	slog.Info("world stats",
		"tick", tick,
		"steps", stats.Steps,
		"bodies_updated", stats.BodiesUpdated,
		"bodies_culled", stats.BodiesCulled,
		"broad_pairs", stats.BroadPairs,
		"narrow_checks", stats.NarrowChecks,
		"contacts_resolved", stats.ContactsResolved,
	)
}
