package toast

import (
	"crypto/rand"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/toastbox/internal/ecs"
)

// Systems binds the toast component stores and request queue to one world.
// It is created by Plugin.Register and is the host's handle for sending
// requests, reporting pointer state, and iterating live boxes for rendering.
type Systems struct {
	logger *slog.Logger
	fade   time.Duration

	requests     *ecs.Queue[Request]
	records      *ecs.Store[Record]
	boxes        *ecs.Store[Box]
	interactions *ecs.Store[Interaction]
}

func newSystems(w *ecs.World, logger *slog.Logger, fade time.Duration) *Systems {
	if logger == nil {
		logger = slog.Default()
	}
	if fade <= 0 {
		fade = DefaultFade
	}
	return &Systems{
		logger:       logger,
		fade:         fade,
		requests:     ecs.NewQueue[Request](),
		records:      ecs.NewStore[Record](w),
		boxes:        ecs.NewStore[Box](w),
		interactions: ecs.NewStore[Interaction](w),
	}
}

// Send enqueues a request for the listener system. Safe to call from any
// goroutine; the toast appears on the next frame.
func (s *Systems) Send(req Request) {
	s.requests.Send(req)
}

// SetInteraction reports the pointer state for a toast entity. Reporting on
// a despawned entity is a silent no-op.
func (s *Systems) SetInteraction(e ecs.Entity, state InteractionState) {
	if in, ok := s.interactions.Get(e); ok {
		in.Set(state)
	}
}

// InteractionState returns the current pointer state of a toast entity.
func (s *Systems) InteractionState(e ecs.Entity) (InteractionState, bool) {
	if in, ok := s.interactions.Get(e); ok {
		return in.State(), true
	}
	return InteractionNone, false
}

// Box returns the visual component of a toast entity.
func (s *Systems) Box(e ecs.Entity) (*Box, bool) {
	return s.boxes.Get(e)
}

// Record returns the animation record of a toast entity.
func (s *Systems) Record(e ecs.Entity) (*Record, bool) {
	return s.records.Get(e)
}

// EachBox visits every live toast's visual component, for rendering.
func (s *Systems) EachBox(fn func(e ecs.Entity, b *Box)) {
	s.boxes.Each(fn)
}

// Count returns the number of live toasts.
func (s *Systems) Count() int {
	return s.records.Len()
}

// listen drains the frame's pending requests and spawns one toast entity per
// request, in delivery order. No deduplication and no cap on concurrent
// toasts.
func (s *Systems) listen(w *ecs.World, _ time.Duration) {
	for _, req := range s.requests.Drain() {
		s.spawn(w, req)
	}
}

func (s *Systems) spawn(w *ecs.World, req Request) {
	ps := ResolveAnchor(req.Anchor)
	if req.Width.Value > 0 {
		ps.Width = req.Width
	}
	if req.Height.Value > 0 {
		ps.Height = req.Height
	}

	id := ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
	rec := newRecord(id, req.ShowTime, s.fade)

	e := w.Spawn()
	s.boxes.Set(e, newBox(req, ps, rec.Indefinite()))
	s.interactions.Set(e, Interaction{})
	s.records.Set(e, rec)

	s.logger.Debug("spawned toast",
		"id", id,
		"anchor", req.Anchor.String(),
		"show_time", req.ShowTime,
		"sections", len(req.Sections),
	)
}

// dismiss despawns any toast whose pointer state changed to pressed this
// frame, regardless of its animation phase. Destruction is deferred to the
// end of the frame, so pressing a toast the countdown also expires this
// frame resolves to a single despawn.
func (s *Systems) dismiss(w *ecs.World, _ time.Duration) {
	s.interactions.Each(func(e ecs.Entity, in *Interaction) {
		if !in.JustPressed() {
			return
		}
		if rec, ok := s.records.Get(e); ok {
			s.logger.Debug("toast dismissed", "id", rec.ID)
		}
		w.Despawn(e)
	})
}

// countdown advances each timed record's active phase by dt, projects the
// resulting opacity into the box, and despawns the toast when its fade-out
// completes. Indefinite records are untouched.
func (s *Systems) countdown(w *ecs.World, dt time.Duration) {
	s.records.Each(func(e ecs.Entity, rec *Record) {
		if rec.Indefinite() {
			return
		}

		opacity, finished := rec.Advance(dt)
		if box, ok := s.boxes.Get(e); ok {
			box.Opacity = opacity
		}
		if finished {
			s.logger.Debug("toast expired", "id", rec.ID)
			w.Despawn(e)
		}
	})
}

// latchInteractions runs after the other systems so that "changed to
// pressed" holds for exactly one frame.
func (s *Systems) latchInteractions(_ *ecs.World, _ time.Duration) {
	s.interactions.Each(func(_ ecs.Entity, in *Interaction) {
		in.latch()
	})
}
