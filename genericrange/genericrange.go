package genericrange

import (
	"fmt"

	"github.com/chemacortes/lazyseq"
)

// Mapping computes the element for a position of the underlying progression.
type Mapping func(pos int) int64

// Range is a bounded, indexable view over an integer arithmetic progression.
// Each position of the progression is passed through a Mapping to produce
// the element, so a Range is a cheap O(1)-sized projection rather than a
// materialized slice. Slicing a Range yields another Range sharing the same
// mapping.
type Range struct {
	start, stop, step int
	mapping           Mapping
}

// New creates a range over the progression start, start+step, ... bounded by
// stop (exclusive). step must not be zero. A nil mapping means the identity.
func New(start, stop, step int, m Mapping) (*Range, error) {
	if step == 0 {
		return nil, &lazyseq.IndexError{Index: step, Sequence: "Range"}
	}
	if m == nil {
		m = func(pos int) int64 { return int64(pos) }
	}
	return &Range{start: start, stop: stop, step: step, mapping: m}, nil
}

// Len returns the number of positions in the range.
func (r *Range) Len() int {
	if r.step > 0 {
		if r.stop <= r.start {
			return 0
		}
		return (r.stop - r.start + r.step - 1) / r.step
	}
	if r.stop >= r.start {
		return 0
	}
	return (r.start - r.stop - r.step - 1) / -r.step
}

// At returns the mapped element at index i. Since the length is known,
// negative indices count back from the end. Out-of-range indices report an
// IndexError.
func (r *Range) At(i int) (int64, error) {
	n := r.Len()
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, &lazyseq.IndexError{Index: i, Sequence: "Range"}
	}
	return r.mapping(r.start + idx*r.step), nil
}

// Values returns every mapped element of the range as a slice.
func (r *Range) Values() []int64 {
	n := r.Len()
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		out[i] = r.mapping(r.start + i*r.step)
	}
	return out
}

// Slice returns a sub-range selected by start:stop:step over the indices of
// r. Negative bounds count back from the end and out-of-range bounds clamp,
// so any combination of bounds is valid; step must not be zero. The
// resulting Range shares r's mapping.
func (r *Range) Slice(start, stop, step int) (*Range, error) {
	if step == 0 {
		return nil, &lazyseq.IndexError{Index: step, Sequence: "Range"}
	}

	n := r.Len()
	lo, hi := clampSliceBounds(n, start, stop, step)

	var count int
	if step > 0 {
		if hi > lo {
			count = (hi - lo + step - 1) / step
		}
	} else {
		if lo > hi {
			count = (lo - hi - step - 1) / -step
		}
	}

	newStart := r.start + lo*r.step
	newStep := r.step * step
	newStop := newStart + count*newStep

	return &Range{start: newStart, stop: newStop, step: newStep, mapping: r.mapping}, nil
}

// clampSliceBounds resolves negative bounds against a length of n and clamps
// them to the valid window for the step direction.
func clampSliceBounds(n, start, stop, step int) (lo, hi int) {
	if step > 0 {
		lo = clamp(start, n, 0, n)
		hi = clamp(stop, n, 0, n)
		return lo, hi
	}
	lo = clamp(start, n, -1, n-1)
	hi = clamp(stop, n, -1, n-1)
	return lo, hi
}

// clamp resolves a possibly negative index against length n and clamps it to
// [low, high].
func clamp(i, n, low, high int) int {
	if i < 0 {
		i += n
		if i < low {
			i = low
		}
		return i
	}
	if i > high {
		i = high
	}
	return i
}

// String implements fmt.Stringer in the spirit of a range repr.
func (r *Range) String() string {
	return fmt.Sprintf("Range(%d, %d, %d)", r.start, r.stop, r.step)
}
