package workload

import (
	"errors"
	"fmt"

	"github.com/comalice/sequencex"
)

// Result summarizes a script replay.
type Result struct {
	Applied  int // ops that mutated or read the container successfully
	Rejected int // ops refused with out-of-range or empty-container errors
	Length   int // final logical length
	Capacity int // final physical capacity
}

// NewSequence allocates the container a script asks for: the script's
// capacity if set, the library default otherwise.
func NewSequence(s Script) *sequencex.Sequence[int] {
	if s.Capacity > 0 {
		return sequencex.NewWithCapacity[int](s.Capacity)
	}
	return sequencex.New[int]()
}

// Run replays every op of the script against seq in order. Recoverable
// rejections (out-of-range, empty) are tallied and replay continues; any
// other error aborts with the offending op's position.
func Run(seq *sequencex.Sequence[int], s Script) (Result, error) {
	var res Result
	for i, op := range s.Ops {
		var err error
		switch op.Op {
		case Append:
			seq.Append(op.Value)
		case Insert:
			err = seq.Insert(op.Index, op.Value)
		case Remove:
			err = seq.Remove(op.Index)
		case RemoveBack:
			err = seq.RemoveBack()
		case Set:
			err = seq.Set(op.Index, op.Value)
		case Clear:
			seq.Clear()
		default:
			return res, fmt.Errorf("script %s: op %d has unknown kind %q", s.Name, i, op.Op)
		}
		switch {
		case err == nil:
			res.Applied++
		case errors.Is(err, sequencex.ErrOutOfRange) || errors.Is(err, sequencex.ErrEmpty):
			res.Rejected++
		default:
			return res, fmt.Errorf("script %s: op %d (%s): %w", s.Name, i, op.Op, err)
		}
	}
	res.Length = seq.Len()
	res.Capacity = seq.Cap()
	return res, nil
}
