package ecs

import "sync"

// Queue is a frame-ordered event queue. Senders may be off-thread (a D-Bus
// source, a scenario player goroutine); draining happens on the frame thread.
// Delivery is at-least-once and preserves send order. Events sent during a
// frame are seen by the next Drain, which may be the same or a later frame.
type Queue[T any] struct {
	mu      sync.Mutex
	pending []T
}

// NewQueue creates an empty event queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Send appends an event. Safe for concurrent use.
func (q *Queue[T]) Send(v T) {
	q.mu.Lock()
	q.pending = append(q.pending, v)
	q.mu.Unlock()
}

// Drain returns all pending events in send order and clears the queue.
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}

// Len returns the number of pending events.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
