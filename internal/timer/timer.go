// Package timer provides frame-tick countdown timers.
package timer

import "time"

// Mode controls what happens when a timer reaches its duration.
type Mode int

const (
	// Once timers stop at their duration and stay finished.
	Once Mode = iota
	// Repeating timers wrap around and start over.
	Repeating
)

// Timer tracks elapsed time against a fixed duration. It only advances when
// Tick is called, so a paused host simply stops ticking it.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	mode     Mode

	finished     bool
	justFinished bool
}

// New creates a timer with zero elapsed time.
func New(duration time.Duration, mode Mode) *Timer {
	return &Timer{duration: duration, mode: mode}
}

// FromSeconds creates a timer from a duration given in seconds.
func FromSeconds(seconds float64, mode Mode) *Timer {
	return New(time.Duration(seconds*float64(time.Second)), mode)
}

// Tick advances the timer by dt. A dt of zero is a no-op. For Once timers
// elapsed is clamped to the duration; for Repeating timers it wraps.
func (t *Timer) Tick(dt time.Duration) {
	if t.mode == Once && t.finished {
		t.justFinished = false
		return
	}

	t.elapsed += dt
	t.justFinished = t.elapsed >= t.duration

	if t.justFinished {
		if t.mode == Repeating {
			if t.duration > 0 {
				t.elapsed %= t.duration
			} else {
				t.elapsed = 0
			}
		} else {
			t.finished = true
			t.elapsed = t.duration
		}
	}
}

// Duration returns the configured duration.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Elapsed returns the time accumulated so far.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining returns the time left before the timer finishes.
func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

// Fraction returns elapsed/duration in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}
	f := float64(t.elapsed) / float64(t.duration)
	if f > 1 {
		return 1
	}
	return f
}

// Finished reports whether a Once timer has reached its duration.
// Repeating timers never report finished.
func (t *Timer) Finished() bool {
	return t.finished
}

// JustFinished reports whether the timer reached its duration on the most
// recent Tick. It is true for exactly one tick.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Reset rewinds the timer to zero elapsed time.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.justFinished = false
}
