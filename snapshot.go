package sequencex

import "fmt"

// Snapshot is a serializable copy of a Sequence's observable state, suitable
// for JSON or YAML persistence. Capacity is recorded so a restored sequence
// reproduces the original's load factor, not just its contents.
type Snapshot[E any] struct {
	Length   int `json:"length" yaml:"length"`
	Capacity int `json:"capacity" yaml:"capacity"`
	Elements []E `json:"elements,omitempty" yaml:"elements,omitempty"`
}

// Snapshot returns a copy of the live elements plus the current counters.
// The returned slice is independent of the sequence's buffer.
func (s *Sequence[E]) Snapshot() Snapshot[E] {
	elems := make([]E, s.n)
	copy(elems, s.buf[:s.n])
	return Snapshot[E]{Length: s.n, Capacity: len(s.buf), Elements: elems}
}

// Restore replaces s's contents from a snapshot. The snapshot is validated
// first and s is untouched on error; the replacement is built independently
// and swapped into place, same as Assign.
func (s *Sequence[E]) Restore(snap Snapshot[E]) error {
	if snap.Length < 0 {
		return fmt.Errorf("restore: negative length %d", snap.Length)
	}
	if snap.Capacity < snap.Length {
		return fmt.Errorf("restore: capacity %d below length %d", snap.Capacity, snap.Length)
	}
	if len(snap.Elements) != snap.Length {
		return fmt.Errorf("restore: %d elements for declared length %d", len(snap.Elements), snap.Length)
	}
	tmp := &Sequence[E]{buf: make([]E, snap.Capacity), n: snap.Length}
	copy(tmp.buf, snap.Elements)
	s.Swap(tmp)
	return nil
}
