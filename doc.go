// Package sequencex provides a generic, contiguous, dynamically-resizable
// sequence container with an explicit growth/shrink policy.
//
// A Sequence owns a single heap-allocated buffer of element slots and tracks
// a logical length separately from the physical capacity. Capacity doubles
// when an insertion overflows the buffer and halves when a removal drops the
// load factor to exactly 25%, keeping the load factor roughly within
// [25%, 100%] without thrashing at the shrink boundary.
//
// # Example Usage
//
//	s := sequencex.New[int]()
//	s.Append(1)
//	s.Append(2)
//	s.Insert(0, 0)      // 0 1 2
//	v, _ := s.At(1)     // 1
//	s.RemoveBack()      // 0 1
//
// # Checked vs Unchecked Access
//
// At, Set, Front and Back validate the index/state and return ErrOutOfRange
// or ErrEmpty on violation, leaving the container untouched. Get and Put are
// the unvalidated fast path: the caller must guarantee 0 <= i < Len(), and
// violating that contract is undefined behavior, not a recoverable error.
//
// # Invariants
//
//   - 0 <= Len() <= Cap() after every operation
//   - Slots [0, Len()) hold live elements; slots [Len(), Cap()) are
//     allocated but logically empty and never observable through the API
//   - Reallocation preserves Len() exactly and invalidates all iterators
//
// # Concurrency
//
// A Sequence performs no internal synchronization. Concurrent use of the
// same instance requires external locking by the caller.
package sequencex
