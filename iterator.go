package sequencex

import "iter"

// Iterator is a restartable random-access position over the live elements
// of a Sequence. The position is an index, not a memory address, but it
// supports the same arithmetic: advance by N (negative N moves backward),
// seek to an absolute index, and distance between two positions.
//
// Any mutating operation that may reallocate the buffer (Insert, Append,
// Remove, RemoveBack, Extend, Assign, Restore) invalidates outstanding
// iterators; continuing to use one afterwards reads unspecified slots.
type Iterator[E any] struct {
	s   *Sequence[E]
	pos int
}

// Iter returns an iterator positioned at the first live element.
func (s *Sequence[E]) Iter() *Iterator[E] {
	return &Iterator[E]{s: s}
}

// Valid reports whether the iterator points at a live element.
func (it *Iterator[E]) Valid() bool {
	return it.pos >= 0 && it.pos < it.s.n
}

// Value returns the element at the current position with no validation.
// Caller contract: Valid() is true.
func (it *Iterator[E]) Value() E { return it.s.buf[it.pos] }

// Next returns the element at the current position and advances by one.
// The second return is false once the position passes the last live element.
func (it *Iterator[E]) Next() (E, bool) {
	if !it.Valid() {
		var zero E
		return zero, false
	}
	v := it.s.buf[it.pos]
	it.pos++
	return v, true
}

// Pos returns the current position as an index into the sequence.
func (it *Iterator[E]) Pos() int { return it.pos }

// Seek moves the iterator to absolute index i.
func (it *Iterator[E]) Seek(i int) { it.pos = i }

// Advance moves the iterator by k positions; k may be negative.
func (it *Iterator[E]) Advance(k int) { it.pos += k }

// Distance returns the number of positions from it to other, positive when
// other is closer to the tail.
func (it *Iterator[E]) Distance(other *Iterator[E]) int {
	return other.pos - it.pos
}

// Reset moves the iterator back to the first live element.
func (it *Iterator[E]) Reset() { it.pos = 0 }

// All returns an index/element view over the live elements for use with
// range. The sequence must not be mutated during traversal.
func (s *Sequence[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := 0; i < s.n; i++ {
			if !yield(i, s.buf[i]) {
				return
			}
		}
	}
}

// Values returns an element-only view over the live elements for use with
// range. The sequence must not be mutated during traversal.
func (s *Sequence[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := 0; i < s.n; i++ {
			if !yield(s.buf[i]) {
				return
			}
		}
	}
}
