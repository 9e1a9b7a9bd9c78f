package util

import "sync"

// Ring is a fixed-capacity circular buffer holding the most recent items
// pushed into it. Safe for concurrent use.
type Ring[T any] struct {
	mu    sync.RWMutex
	items []T
	next  int
	full  bool
}

// NewRing creates a ring holding at most capacity items. Capacity must be
// positive.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{items: make([]T, 0, capacity)}
}

// Push records an item, evicting the oldest one once the ring is full.
func (r *Ring[T]) Push(item T) {
	r.mu.Lock()
	if !r.full {
		r.items = append(r.items, item)
		if len(r.items) == cap(r.items) {
			r.full = true
		}
	} else {
		r.items[r.next] = item
		r.next = (r.next + 1) % len(r.items)
	}
	r.mu.Unlock()
}

// Items returns a copy of the stored items, oldest first.
func (r *Ring[T]) Items() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, 0, len(r.items))
	out = append(out, r.items[r.next:]...)
	out = append(out, r.items[:r.next]...)
	return out
}

// Len returns the number of stored items.
func (r *Ring[T]) Len() int {
	r.mu.RLock()
	n := len(r.items)
	r.mu.RUnlock()
	return n
}
