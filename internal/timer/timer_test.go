package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimer_Once(t *testing.T) {
	tm := New(time.Second, Once)

	tm.Tick(400 * time.Millisecond)
	assert.False(t, tm.Finished())
	assert.False(t, tm.JustFinished())
	assert.Equal(t, 400*time.Millisecond, tm.Elapsed())
	assert.Equal(t, 600*time.Millisecond, tm.Remaining())

	tm.Tick(600 * time.Millisecond)
	assert.True(t, tm.Finished())
	assert.True(t, tm.JustFinished())
}

func TestTimer_JustFinishedSingleTick(t *testing.T) {
	tm := New(time.Second, Once)

	tm.Tick(time.Second)
	assert.True(t, tm.JustFinished())

	// Subsequent ticks no longer report the edge.
	tm.Tick(time.Second)
	assert.True(t, tm.Finished())
	assert.False(t, tm.JustFinished())
}

func TestTimer_OnceClampsElapsed(t *testing.T) {
	tm := New(time.Second, Once)

	tm.Tick(5 * time.Second)
	assert.Equal(t, time.Second, tm.Elapsed())
	assert.Equal(t, time.Duration(0), tm.Remaining())
	assert.Equal(t, 1.0, tm.Fraction())
}

func TestTimer_ZeroDtNoAdvance(t *testing.T) {
	tm := New(time.Second, Once)

	tm.Tick(0)
	assert.Equal(t, time.Duration(0), tm.Elapsed())
	assert.False(t, tm.Finished())
}

func TestTimer_Repeating(t *testing.T) {
	tm := New(time.Second, Repeating)

	tm.Tick(1500 * time.Millisecond)
	assert.True(t, tm.JustFinished())
	assert.False(t, tm.Finished())
	assert.Equal(t, 500*time.Millisecond, tm.Elapsed())

	tm.Tick(200 * time.Millisecond)
	assert.False(t, tm.JustFinished())
}

func TestTimer_Fraction(t *testing.T) {
	tm := New(2*time.Second, Once)

	tm.Tick(500 * time.Millisecond)
	assert.InDelta(t, 0.25, tm.Fraction(), 1e-9)

	tm.Tick(500 * time.Millisecond)
	assert.InDelta(t, 0.5, tm.Fraction(), 1e-9)
}

func TestTimer_Reset(t *testing.T) {
	tm := New(time.Second, Once)
	tm.Tick(time.Second)
	assert.True(t, tm.Finished())

	tm.Reset()
	assert.False(t, tm.Finished())
	assert.Equal(t, time.Duration(0), tm.Elapsed())
}

func TestFromSeconds(t *testing.T) {
	tm := FromSeconds(0.5, Once)
	assert.Equal(t, 500*time.Millisecond, tm.Duration())
}
