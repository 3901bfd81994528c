package sequencex

// Equal reports whether a and b hold element-wise equal values in the same
// order. Identity is a fast path, not a separate semantic: a sequence always
// equals itself. Inequality is the strict negation !Equal(a, b).
func Equal[E comparable](a, b *Sequence[E]) bool {
	if a == b {
		return true
	}
	if a.n != b.n {
		return false
	}
	for i := 0; i < a.n; i++ {
		if a.buf[i] != b.buf[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal for element types that are not comparable, using eq to
// compare element pairs.
func EqualFunc[E any](a, b *Sequence[E], eq func(E, E) bool) bool {
	if a == b {
		return true
	}
	if a.n != b.n {
		return false
	}
	for i := 0; i < a.n; i++ {
		if !eq(a.buf[i], b.buf[i]) {
			return false
		}
	}
	return true
}

// Concat returns a new Sequence holding a's elements followed by b's.
// Neither input is modified.
func Concat[E any](a, b *Sequence[E]) *Sequence[E] {
	out := a.Clone()
	out.Extend(b)
	return out
}
