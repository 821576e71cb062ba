package ecs

// Store holds one component type across entities. Create stores once at
// setup time with NewStore; lookups by stale entity handles simply miss.
type Store[T any] struct {
	w     *World
	items map[Entity]*T
}

// NewStore creates a component store and registers it with the world so
// components are dropped when their entity is despawned.
func NewStore[T any](w *World) *Store[T] {
	s := &Store[T]{
		w:     w,
		items: make(map[Entity]*T),
	}
	w.stores = append(w.stores, s)
	return s
}

// Set attaches (or replaces) the component on a live entity. Setting on a
// dead entity is a silent no-op.
func (s *Store[T]) Set(e Entity, v T) {
	if !s.w.Alive(e) {
		return
	}
	s.items[e] = &v
}

// Get returns a pointer to the entity's component for in-place mutation.
func (s *Store[T]) Get(e Entity) (*T, bool) {
	v, ok := s.items[e]
	return v, ok
}

// Remove detaches the component from the entity if present.
func (s *Store[T]) Remove(e Entity) {
	delete(s.items, e)
}

// Len returns the number of entities carrying this component.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Each visits every (entity, component) pair. Mutating components in place
// is fine; structural changes must go through the world's deferred Despawn.
func (s *Store[T]) Each(fn func(e Entity, v *T)) {
	for e, v := range s.items {
		fn(e, v)
	}
}

func (s *Store[T]) remove(e Entity) {
	delete(s.items, e)
}
