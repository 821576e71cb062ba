package ecs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type health struct {
	HP int
}

func TestWorld_SpawnAlive(t *testing.T) {
	w := NewWorld()

	e := w.Spawn()
	assert.True(t, w.Alive(e))
	assert.Equal(t, 1, w.LiveCount())
}

func TestWorld_ZeroEntityNeverAlive(t *testing.T) {
	w := NewWorld()
	w.Spawn()

	assert.False(t, w.Alive(Entity{}))
}

func TestWorld_DespawnDeferredToEndOfFrame(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()

	w.Despawn(e)
	// Still alive until the frame flushes.
	assert.True(t, w.Alive(e))

	w.Step(0)
	assert.False(t, w.Alive(e))
	assert.Equal(t, 0, w.LiveCount())
}

func TestWorld_DoubleDespawnIsNoop(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()

	w.Despawn(e)
	w.Despawn(e)
	w.Step(0)

	assert.False(t, w.Alive(e))
	assert.Equal(t, 0, w.LiveCount())

	// Despawning after death is also harmless.
	w.Despawn(e)
	w.Step(0)
}

func TestWorld_StaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	e1 := w.Spawn()
	w.Despawn(e1)
	w.Step(0)

	// The slot is reused with a new generation.
	e2 := w.Spawn()
	assert.True(t, w.Alive(e2))
	assert.False(t, w.Alive(e1))
}

func TestWorld_SystemsRunInOrder(t *testing.T) {
	w := NewWorld()

	var order []string
	w.AddSystem(func(w *World, dt time.Duration) { order = append(order, "a") })
	w.AddSystem(func(w *World, dt time.Duration) { order = append(order, "b") })

	w.Step(16 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestRunIf_GatesSystem(t *testing.T) {
	w := NewWorld()

	enabled := false
	runs := 0
	w.AddSystem(RunIf(func(w *World, dt time.Duration) { runs++ }, func() bool { return enabled }))

	w.Step(0)
	assert.Equal(t, 0, runs)

	enabled = true
	w.Step(0)
	assert.Equal(t, 1, runs)
}

func TestStore_SetGetRemove(t *testing.T) {
	w := NewWorld()
	hs := NewStore[health](w)

	e := w.Spawn()
	hs.Set(e, health{HP: 10})

	h, ok := hs.Get(e)
	require.True(t, ok)
	assert.Equal(t, 10, h.HP)

	// In-place mutation through the pointer.
	h.HP = 7
	h2, _ := hs.Get(e)
	assert.Equal(t, 7, h2.HP)

	hs.Remove(e)
	_, ok = hs.Get(e)
	assert.False(t, ok)
}

func TestStore_SetOnDeadEntityIgnored(t *testing.T) {
	w := NewWorld()
	hs := NewStore[health](w)

	e := w.Spawn()
	w.Despawn(e)
	w.Step(0)

	hs.Set(e, health{HP: 1})
	assert.Equal(t, 0, hs.Len())
}

func TestStore_ClearedOnDespawn(t *testing.T) {
	w := NewWorld()
	hs := NewStore[health](w)

	e := w.Spawn()
	hs.Set(e, health{HP: 10})

	w.Despawn(e)
	w.Step(0)

	assert.Equal(t, 0, hs.Len())
	_, ok := hs.Get(e)
	assert.False(t, ok)
}

func TestQueue_DrainOrderAndClear(t *testing.T) {
	q := NewQueue[int]()
	q.Send(1)
	q.Send(2)
	q.Send(3)

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []int{1, 2, 3}, q.Drain())
	assert.Nil(t, q.Drain())
}
