package toast

import (
	"time"

	"github.com/jmylchreest/toastbox/internal/timer"
)

// Phase is one stage of a timed toast's visual lifecycle.
type Phase int

const (
	// PhaseFadeIn ramps opacity from 0 to 1 over the fade duration.
	PhaseFadeIn Phase = iota
	// PhaseHold keeps the toast fully opaque for the requested show time.
	PhaseHold
	// PhaseFadeOut ramps opacity from 1 back to 0, then the toast is gone.
	PhaseFadeOut
)

func (p Phase) String() string {
	switch p {
	case PhaseFadeIn:
		return "fade-in"
	case PhaseHold:
		return "hold"
	case PhaseFadeOut:
		return "fade-out"
	default:
		return "unknown"
	}
}

// phaseTimer pairs a phase with its one-shot countdown.
type phaseTimer struct {
	phase Phase
	timer *timer.Timer
}

// Record is the animation state attached to one live toast entity. A timed
// toast carries the fixed fade-in / hold / fade-out sequence; an indefinite
// toast carries no phases and is immune to the countdown system.
//
// Invariant: phases are processed strictly in order and at most one phase
// advances per tick.
type Record struct {
	// ID identifies the toast in logs.
	ID string

	phases []phaseTimer
}

// newRecord builds the phase list for a toast. showTime <= 0 produces an
// indefinite record with no phases.
func newRecord(id string, showTime, fade time.Duration) Record {
	rec := Record{ID: id}
	if showTime <= 0 {
		return rec
	}

	rec.phases = []phaseTimer{
		{phase: PhaseFadeIn, timer: timer.New(fade, timer.Once)},
		{phase: PhaseHold, timer: timer.New(showTime, timer.Once)},
		{phase: PhaseFadeOut, timer: timer.New(fade, timer.Once)},
	}
	return rec
}

// Indefinite reports whether the record never auto-dismisses.
func (r *Record) Indefinite() bool {
	return len(r.phases) == 0
}

// ActivePhase returns the first unfinished phase. The second return is false
// once every phase has completed or the record is indefinite.
func (r *Record) ActivePhase() (Phase, bool) {
	for i := range r.phases {
		if !r.phases[i].timer.Finished() {
			return r.phases[i].phase, true
		}
	}
	return 0, false
}

// Advance ticks the first unfinished phase by dt and derives the opacity the
// toast should display this frame. finished is true exactly on the tick the
// fade-out completes; the caller destroys the entity then.
//
// Calling Advance on an indefinite record reports full opacity and never
// finishes.
func (r *Record) Advance(dt time.Duration) (opacity float64, finished bool) {
	for i := range r.phases {
		pt := &r.phases[i]
		if pt.timer.Finished() {
			continue
		}

		pt.timer.Tick(dt)
		switch pt.phase {
		case PhaseFadeIn:
			return pt.timer.Fraction(), false
		case PhaseHold:
			return 1, false
		case PhaseFadeOut:
			return 1 - pt.timer.Fraction(), pt.timer.JustFinished()
		}
	}
	return 1, false
}
