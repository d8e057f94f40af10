package world

import (
	"unsafe"

	"github.com/kestrelphys/polygon2d/actor"
)

// EventType discerns the kind of collision transition an Event reports. The
// core never sleeps bodies and has no trigger volumes, so only the plain
// collision Enter/Stay/Exit transitions survive from the teacher's broader
// event set.
type EventType uint8

const (
	CollisionEnter EventType = iota
	CollisionStay
	CollisionExit
)

// Event is a single collision-pair transition, delivered to subscribers
// after a Step completes.
type Event struct {
	Type        EventType
	BodyA, BodyB *actor.RigidBody
}

// EventListener receives events as Events.Flush delivers them.
type EventListener func(Event)

type pairKey struct {
	a, b *actor.RigidBody
}

// makePairKey orders the two bodies by address so the same colliding pair
// always hashes to the same key regardless of which body a caller names
// first.
func makePairKey(a, b *actor.RigidBody) pairKey {
	if uintptr(unsafe.Pointer(b)) < uintptr(unsafe.Pointer(a)) {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// Events tracks which body pairs were in collision last step versus this
// step and turns the difference into Enter/Stay/Exit notifications. It is
// optional diagnostic/gameplay plumbing: a host opts in via
// World.EnableEvents, and World.Step records a pair for every resolved
// contact and flushes the tracker once the solver-iteration loop finishes.
// Until EnableEvents is called, World.Events is nil and Step skips it
// entirely.
type Events struct {
	listeners []EventListener

	previous map[pairKey]bool
	current  map[pairKey]bool
}

// NewEvents returns an empty Events tracker.
func NewEvents() *Events {
	return &Events{
		previous: make(map[pairKey]bool),
		current:  make(map[pairKey]bool),
	}
}

// Subscribe registers listener to receive every event Flush emits.
func (e *Events) Subscribe(listener EventListener) {
	e.listeners = append(e.listeners, listener)
}

// RecordPair marks (a,b) as in collision for the step in progress. Call once
// per resolved contact, before Flush.
func (e *Events) RecordPair(a, b *actor.RigidBody) {
	e.current[makePairKey(a, b)] = true
}

// Flush compares this step's recorded pairs against the previous step's,
// delivers Enter/Stay/Exit events to every subscriber, then rolls the
// current set into the previous one for the next step.
func (e *Events) Flush() {
	for pair := range e.current {
		eventType := CollisionStay
		if !e.previous[pair] {
			eventType = CollisionEnter
		}
		e.emit(Event{Type: eventType, BodyA: pair.a, BodyB: pair.b})
	}

	for pair := range e.previous {
		if !e.current[pair] {
			e.emit(Event{Type: CollisionExit, BodyA: pair.a, BodyB: pair.b})
		}
	}

	e.previous, e.current = e.current, e.previous
	clear(e.current)
}

func (e *Events) emit(event Event) {
	for _, listener := range e.listeners {
		listener(event)
	}
}
