package testutil

import (
	"fmt"
	"strings"

	"github.com/comalice/sequencex"
)

// Container provides a common interface over different sequence
// implementations. This allows running the same op stream against the real
// container and a plain-slice reference model and comparing observable
// state.
type Container interface {
	Append(v int)
	Insert(i, v int) error
	Remove(i int) error
	RemoveBack() error
	At(i int) (int, error)
	Len() int
	Clear()
	Render() string
}

// SequenceAdapter wraps the real Sequence container.
type SequenceAdapter struct {
	S *sequencex.Sequence[int]
}

// NewSequenceAdapter creates an adapter over a fresh default-capacity
// Sequence.
func NewSequenceAdapter() *SequenceAdapter {
	return &SequenceAdapter{S: sequencex.New[int]()}
}

func (a *SequenceAdapter) Append(v int) { a.S.Append(v) }

func (a *SequenceAdapter) Insert(i, v int) error { return a.S.Insert(i, v) }

func (a *SequenceAdapter) Remove(i int) error { return a.S.Remove(i) }

func (a *SequenceAdapter) RemoveBack() error { return a.S.RemoveBack() }

func (a *SequenceAdapter) At(i int) (int, error) { return a.S.At(i) }

func (a *SequenceAdapter) Len() int { return a.S.Len() }

func (a *SequenceAdapter) Clear() { a.S.Clear() }

func (a *SequenceAdapter) Render() string { return a.S.String() }

// SliceAdapter is the reference model: the same observable contract
// implemented directly on a Go slice, with no capacity policy of its own.
type SliceAdapter struct {
	data []int
}

// NewSliceAdapter creates an empty reference model.
func NewSliceAdapter() *SliceAdapter {
	return &SliceAdapter{}
}

func (a *SliceAdapter) Append(v int) {
	a.data = append(a.data, v)
}

func (a *SliceAdapter) Insert(i, v int) error {
	if i == len(a.data) {
		a.Append(v)
		return nil
	}
	if i < 0 || i >= len(a.data) {
		return sequencex.ErrOutOfRange
	}
	a.data = append(a.data, 0)
	copy(a.data[i+1:], a.data[i:])
	a.data[i] = v
	return nil
}

func (a *SliceAdapter) Remove(i int) error {
	if i == len(a.data)-1 {
		return a.RemoveBack()
	}
	if i < 0 || i >= len(a.data) {
		return sequencex.ErrOutOfRange
	}
	a.data = append(a.data[:i], a.data[i+1:]...)
	return nil
}

func (a *SliceAdapter) RemoveBack() error {
	if len(a.data) == 0 {
		return sequencex.ErrEmpty
	}
	a.data = a.data[:len(a.data)-1]
	return nil
}

func (a *SliceAdapter) At(i int) (int, error) {
	if i < 0 || i >= len(a.data) {
		return 0, sequencex.ErrOutOfRange
	}
	return a.data[i], nil
}

func (a *SliceAdapter) Len() int { return len(a.data) }

func (a *SliceAdapter) Clear() { a.data = a.data[:0] }

func (a *SliceAdapter) Render() string {
	var sb strings.Builder
	for i, v := range a.data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}
