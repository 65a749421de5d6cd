// Package ringlog provides a fixed-capacity, most-recent-first log.
package ringlog

// Buffer keeps at most capacity entries, newest first. Pushing beyond
// capacity evicts the oldest entry.
type Buffer[T any] struct {
	capacity int
	entries  []T
}

// New creates a buffer with the given capacity. Capacity below 1 is
// treated as 1.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer[T]{capacity: capacity}
}

// NewFrom seeds a buffer with existing entries, assumed newest first.
// Entries beyond capacity are discarded from the tail.
func NewFrom[T any](capacity int, entries []T) *Buffer[T] {
	b := New[T](capacity)
	if len(entries) > b.capacity {
		entries = entries[:b.capacity]
	}
	b.entries = append(b.entries, entries...)
	return b
}

// Push inserts an entry at the front, evicting the oldest entry when the
// buffer is full.
func (b *Buffer[T]) Push(entry T) {
	if len(b.entries) == b.capacity {
		b.entries = b.entries[:b.capacity-1]
	}
	b.entries = append([]T{entry}, b.entries...)
}

// Items returns a copy of the entries, newest first.
func (b *Buffer[T]) Items() []T {
	out := make([]T, len(b.entries))
	copy(out, b.entries)
	return out
}

// Recent returns a copy of up to n newest entries. A non-positive or
// oversized n returns everything.
func (b *Buffer[T]) Recent(n int) []T {
	if n <= 0 || n > len(b.entries) {
		n = len(b.entries)
	}
	out := make([]T, n)
	copy(out, b.entries[:n])
	return out
}

// Len reports the number of stored entries.
func (b *Buffer[T]) Len() int {
	return len(b.entries)
}

// Capacity reports the maximum number of stored entries.
func (b *Buffer[T]) Capacity() int {
	return b.capacity
}
