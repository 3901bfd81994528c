package sequencex

import (
	"fmt"
	"strings"
)

// DefaultCapacity is the slot count allocated when no explicit capacity is
// requested.
const DefaultCapacity = 10

// Sequence is a contiguous, dynamically-resizable container of E.
//
// The buffer is allocated to exact capacity up front; len(buf) is the
// physical capacity and n is the logical length. Slots [n, len(buf)) are
// allocated but hold unspecified values.
type Sequence[E any] struct {
	buf []E // exclusively-owned storage; len(buf) == Cap()
	n   int // live element count; 0 <= n <= len(buf)
}

// New creates an empty Sequence with DefaultCapacity slots.
func New[E any]() *Sequence[E] {
	return NewWithCapacity[E](DefaultCapacity)
}

// NewWithCapacity creates an empty Sequence with exactly capacity slots.
// A negative capacity is a programming error and panics.
func NewWithCapacity[E any](capacity int) *Sequence[E] {
	if capacity < 0 {
		panic(fmt.Sprintf("sequencex: negative capacity %d", capacity))
	}
	return &Sequence[E]{buf: make([]E, capacity)}
}

// Clone returns an independent copy of s: a fresh buffer sized to s's
// capacity with the live prefix copied element-wise. Mutating the clone
// never affects s.
func (s *Sequence[E]) Clone() *Sequence[E] {
	dst := &Sequence[E]{buf: make([]E, len(s.buf)), n: s.n}
	copy(dst.buf, s.buf[:s.n])
	return dst
}

// Move transfers ownership of s's buffer and counters to a newly returned
// Sequence. Afterwards s is valid, empty and has zero capacity; it may be
// reused (the next insertion grows it) or discarded.
func (s *Sequence[E]) Move() *Sequence[E] {
	moved := &Sequence[E]{buf: s.buf, n: s.n}
	s.buf = nil
	s.n = 0
	return moved
}

// Assign replaces s's contents with a copy of other, via copy-and-swap:
// the replacement is constructed independently, then swapped into place in
// O(1). Self-assignment is a no-op-equivalent and is safe.
func (s *Sequence[E]) Assign(other *Sequence[E]) {
	tmp := other.Clone()
	s.Swap(tmp)
}

// reserve reallocates the buffer to exactly capacity slots and moves the
// live prefix across. Length is unchanged. Calling it with capacity below
// the current length is a contract violation and panics rather than
// corrupting the bookkeeping.
func (s *Sequence[E]) reserve(capacity int) {
	if capacity < s.n {
		panic(fmt.Sprintf("sequencex: reserve(%d) below length %d", capacity, s.n))
	}
	next := make([]E, capacity)
	copy(next, s.buf[:s.n])
	s.buf = next
}

// grow doubles capacity ahead of an insertion into a full buffer.
func (s *Sequence[E]) grow() {
	target := len(s.buf) * 2
	if target == 0 {
		target = 1 // zero-capacity sequences must still be able to grow
	}
	s.reserve(target)
}

// shrinkAfterRemove halves capacity when a removal lands the length exactly
// on the 25%-load boundary. The check is deliberately == and not <=: length
// changes by one per removal, so the boundary is never skipped, and capacity
// halves immediately upon crossing it, which prevents re-triggering on every
// subsequent removal.
func (s *Sequence[E]) shrinkAfterRemove() {
	if s.n > 0 && s.n == len(s.buf)/4 {
		s.reserve(len(s.buf) / 2)
	}
}

// Len returns the count of live elements.
func (s *Sequence[E]) Len() int { return s.n }

// Cap returns the allocated slot count.
func (s *Sequence[E]) Cap() int { return len(s.buf) }

// Empty reports whether the sequence holds no live elements.
func (s *Sequence[E]) Empty() bool { return s.n == 0 }

// Append places v after the last live element, doubling capacity first if
// the buffer is full. Amortized O(1).
func (s *Sequence[E]) Append(v E) {
	if s.n == len(s.buf) {
		s.grow()
	}
	s.buf[s.n] = v
	s.n++
}

// Insert places v at index i, shifting elements [i, Len()) one slot toward
// the tail. i == Len() is equivalent to Append. Any other index outside
// [0, Len()) returns ErrOutOfRange with no mutation.
func (s *Sequence[E]) Insert(i int, v E) error {
	if i == s.n {
		s.Append(v)
		return nil
	}
	if i < 0 || i >= s.n {
		return fmt.Errorf("insert at %d with length %d: %w", i, s.n, ErrOutOfRange)
	}
	if s.n == len(s.buf) {
		s.grow()
	}
	// copy has memmove semantics, so the overlapping tail shift is safe.
	copy(s.buf[i+1:s.n+1], s.buf[i:s.n])
	s.buf[i] = v
	s.n++
	return nil
}

// RemoveBack discards the last live element. Returns ErrEmpty if the
// sequence has no elements; length stays at 0 in that case.
func (s *Sequence[E]) RemoveBack() error {
	if s.n == 0 {
		return fmt.Errorf("remove back: %w", ErrEmpty)
	}
	s.n--
	var zero E
	s.buf[s.n] = zero // drop references held by the vacated slot
	s.shrinkAfterRemove()
	return nil
}

// Remove discards the element at index i, shifting elements [i+1, Len())
// one slot toward the head. i == Len()-1 is equivalent to RemoveBack. Any
// other index outside [0, Len()) returns ErrOutOfRange with no mutation.
func (s *Sequence[E]) Remove(i int) error {
	if i == s.n-1 {
		return s.RemoveBack()
	}
	if i < 0 || i >= s.n {
		return fmt.Errorf("remove at %d with length %d: %w", i, s.n, ErrOutOfRange)
	}
	copy(s.buf[i:s.n-1], s.buf[i+1:s.n])
	s.n--
	var zero E
	s.buf[s.n] = zero
	s.shrinkAfterRemove()
	return nil
}

// At returns the element at index i, or ErrOutOfRange if i is outside
// [0, Len()).
func (s *Sequence[E]) At(i int) (E, error) {
	if i < 0 || i >= s.n {
		var zero E
		return zero, fmt.Errorf("at %d with length %d: %w", i, s.n, ErrOutOfRange)
	}
	return s.buf[i], nil
}

// Set overwrites the element at index i, or returns ErrOutOfRange if i is
// outside [0, Len()). This is the checked mutable counterpart of At.
func (s *Sequence[E]) Set(i int, v E) error {
	if i < 0 || i >= s.n {
		return fmt.Errorf("set %d with length %d: %w", i, s.n, ErrOutOfRange)
	}
	s.buf[i] = v
	return nil
}

// Get returns the element at index i with no bounds validation against the
// logical length. The caller must guarantee 0 <= i < Len(); violating that
// contract is undefined behavior by design.
func (s *Sequence[E]) Get(i int) E { return s.buf[i] }

// Put overwrites the slot at index i with no bounds validation against the
// logical length. Same caller contract as Get.
func (s *Sequence[E]) Put(i int, v E) { s.buf[i] = v }

// Front returns the first live element, or ErrEmpty.
func (s *Sequence[E]) Front() (E, error) {
	if s.n == 0 {
		var zero E
		return zero, fmt.Errorf("front: %w", ErrEmpty)
	}
	return s.buf[0], nil
}

// Back returns the last live element, or ErrEmpty.
func (s *Sequence[E]) Back() (E, error) {
	if s.n == 0 {
		var zero E
		return zero, fmt.Errorf("back: %w", ErrEmpty)
	}
	return s.buf[s.n-1], nil
}

// Clear discards all live elements without releasing or shrinking storage.
// Live slots are zeroed so element-owned resources become collectable.
func (s *Sequence[E]) Clear() {
	var zero E
	for i := 0; i < s.n; i++ {
		s.buf[i] = zero
	}
	s.n = 0
}

// Swap exchanges contents, length and storage ownership with other in O(1).
// No elements are copied or moved.
func (s *Sequence[E]) Swap(other *Sequence[E]) {
	s.buf, other.buf = other.buf, s.buf
	s.n, other.n = other.n, s.n
}

// Extend appends copies of other's live elements to s, reserving the sum of
// both capacities first. other is unchanged. Extending a sequence with
// itself is safe.
func (s *Sequence[E]) Extend(other *Sequence[E]) {
	s.reserve(len(s.buf) + len(other.buf))
	// If other == s the reserve above already rebound other.buf, so the
	// copy below reads from the new buffer; regions do not overlap.
	copy(s.buf[s.n:s.n+other.n], other.buf[:other.n])
	s.n += other.n
}

// String renders the live elements in index order, space-separated.
// Implements fmt.Stringer for diagnostic output.
func (s *Sequence[E]) String() string {
	var sb strings.Builder
	for i := 0; i < s.n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, s.buf[i])
	}
	return sb.String()
}
