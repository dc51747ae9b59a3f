// Package history keeps a linear undo/redo stack of value snapshots.
//
// Pushing after an undo discards every entry above the cursor, so the
// stack never branches. A History is not safe for concurrent use.
package history

import "slices"

type History[T comparable] struct {
	entries  []T
	cursor   int
	capacity int
}

type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity bounds the number of stored snapshots. When full, the
// oldest snapshot is evicted. n <= 0 means unbounded.
func WithCapacity(n int) Option {
	return func(c *config) { c.capacity = n }
}

// New returns a history holding a single initial snapshot.
func New[T comparable](initial T, opts ...Option) *History[T] {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.capacity < 0 {
		cfg.capacity = 0
	}
	return &History[T]{entries: []T{initial}, capacity: cfg.capacity}
}

func (h *History[T]) Current() T {
	return h.entries[h.cursor]
}

// Push records v as the new current snapshot. It returns false and leaves
// the stack untouched when v equals the current snapshot.
func (h *History[T]) Push(v T) bool {
	if v == h.Current() {
		return false
	}

	h.entries = append(h.entries[:h.cursor+1], v)
	h.cursor = len(h.entries) - 1

	if h.capacity > 0 && len(h.entries) > h.capacity {
		drop := len(h.entries) - h.capacity
		h.entries = slices.Delete(h.entries, 0, drop)
		h.cursor -= drop
	}
	return true
}

// Undo moves the cursor one step back and returns the new current value.
// At the oldest snapshot it is a no-op.
func (h *History[T]) Undo() T {
	if h.cursor > 0 {
		h.cursor--
	}
	return h.Current()
}

// Redo moves the cursor one step forward. At the newest snapshot it is a
// no-op.
func (h *History[T]) Redo() T {
	if h.cursor < len(h.entries)-1 {
		h.cursor++
	}
	return h.Current()
}

func (h *History[T]) CanUndo() bool { return h.cursor > 0 }
func (h *History[T]) CanRedo() bool { return h.cursor < len(h.entries)-1 }

func (h *History[T]) Len() int    { return len(h.entries) }
func (h *History[T]) Cursor() int { return h.cursor }

// Reset drops every snapshot and starts over from v.
func (h *History[T]) Reset(v T) {
	clear(h.entries)
	h.entries = append(h.entries[:0], v)
	h.cursor = 0
}

// Snapshot returns a copy of the stored values, oldest first.
func (h *History[T]) Snapshot() []T {
	return slices.Clone(h.entries)
}
