// Package ecs implements a small entity-component arena with per-frame
// systems. Entities are generational handles, components live in typed
// stores, and systems run once per frame in registration order. Destruction
// is deferred to the end of the frame, so systems always observe a consistent
// snapshot and double-despawns are harmless.
package ecs

import "time"

// Entity identifies a record in the world. The zero Entity is never valid.
// A generation counter guards against stale handles: once an entity is
// despawned, handles to it stop resolving.
type Entity struct {
	index      uint32
	generation uint32
}

// System is a per-frame callback given the frame's elapsed time.
type System func(w *World, dt time.Duration)

// RunIf wraps a system so it only runs on frames where cond returns true.
func RunIf(sys System, cond func() bool) System {
	return func(w *World, dt time.Duration) {
		if cond() {
			sys(w, dt)
		}
	}
}

// World owns entities, their component stores, and the registered systems.
// It is confined to the frame thread; only event queues may be fed from
// other goroutines.
type World struct {
	generations []uint32
	alive       []bool
	free        []uint32

	systems []System
	stores  []componentRemover

	pendingDespawn []Entity
}

// componentRemover lets the world clear components on despawn without
// knowing their types.
type componentRemover interface {
	remove(e Entity)
}

// NewWorld creates an empty world.
func NewWorld() *World {
	// Index 0 is reserved so the zero Entity never resolves.
	return &World{
		generations: []uint32{0},
		alive:       []bool{false},
	}
}

// Spawn creates a new live entity.
func (w *World) Spawn() Entity {
	if n := len(w.free); n > 0 {
		idx := w.free[n-1]
		w.free = w.free[:n-1]
		w.alive[idx] = true
		return Entity{index: idx, generation: w.generations[idx]}
	}

	idx := uint32(len(w.generations))
	w.generations = append(w.generations, 1)
	w.alive = append(w.alive, true)
	return Entity{index: idx, generation: 1}
}

// Alive reports whether the handle still refers to a live entity.
func (w *World) Alive(e Entity) bool {
	return int(e.index) < len(w.alive) &&
		w.alive[e.index] &&
		w.generations[e.index] == e.generation
}

// Despawn queues the entity for destruction at the end of the current frame.
// Despawning a dead or already-queued entity is a no-op.
func (w *World) Despawn(e Entity) {
	if !w.Alive(e) {
		return
	}
	w.pendingDespawn = append(w.pendingDespawn, e)
}

// AddSystem registers a per-frame system. Systems run in registration order.
func (w *World) AddSystem(sys System) {
	w.systems = append(w.systems, sys)
}

// Step advances the world by one frame: every system runs once with dt, then
// deferred despawns are applied.
func (w *World) Step(dt time.Duration) {
	for _, sys := range w.systems {
		sys(w, dt)
	}
	w.flush()
}

// flush applies queued despawns. Duplicate entries resolve to a single
// destruction because Alive fails after the first.
func (w *World) flush() {
	for _, e := range w.pendingDespawn {
		if !w.Alive(e) {
			continue
		}
		for _, s := range w.stores {
			s.remove(e)
		}
		w.alive[e.index] = false
		w.generations[e.index]++
		w.free = append(w.free, e.index)
	}
	w.pendingDespawn = w.pendingDespawn[:0]
}

// LiveCount returns the number of live entities.
func (w *World) LiveCount() int {
	n := 0
	for i := 1; i < len(w.alive); i++ {
		if w.alive[i] {
			n++
		}
	}
	return n
}
