package lazyseq

import (
	"cmp"
	"iter"
	"sort"
)

// Sorted is a lazy sequence whose producer yields values in non-decreasing
// order. The ordering is required, not verified: all search operations assume
// it. On top of the Sequence operations it supports membership and search by
// value, forcing production only up to the point the answer needs.
type Sorted[E cmp.Ordered] struct {
	*Sequence[E]
}

// NewSorted creates a sorted sequence over a non-decreasing producer.
func NewSorted[E cmp.Ordered](producer iter.Seq[E], opts ...Option) *Sorted[E] {
	opts = append([]Option{WithName("SortedSequence")}, opts...)
	return &Sorted[E]{Sequence: New(producer, opts...)}
}

// NewSortedWithPrefix creates a sorted sequence pre-seeded with prefix.
func NewSortedWithPrefix[E cmp.Ordered](prefix []E, producer iter.Seq[E], opts ...Option) *Sorted[E] {
	opts = append([]Option{WithName("SortedSequence")}, opts...)
	return &Sorted[E]{Sequence: NewWithPrefix(prefix, producer, opts...)}
}

// InsertionPoint returns the leftmost index whose value is >= x, forcing the
// producer only when x lies beyond everything cached. When the answer is
// already within the cache it is found by binary search without any forcing;
// otherwise the producer is advanced one value at a time until a value >= x
// appears, and the index of that value is the answer.
func (s *Sorted[E]) InsertionPoint(x E) (int, error) {
	if last, ok := s.Last(); ok && x <= last {
		idx := sort.Search(s.Size(), func(i int) bool {
			return s.cache[i] >= x
		})
		return idx, nil
	}
	for {
		v, err := s.PullNext()
		if err != nil {
			return 0, err
		}
		if v >= x {
			return s.Size() - 1, nil
		}
	}
}

// Contains reports whether x occurs in the sequence. It can return
// ErrExhausted for a finite producer when x is beyond the last value.
func (s *Sorted[E]) Contains(x E) (bool, error) {
	idx, err := s.InsertionPoint(x)
	if err != nil {
		return false, err
	}
	return s.cache[idx] == x, nil
}

// Find returns the index of x in the sequence. It reports a NotFoundError
// when the sequence skips over x.
func (s *Sorted[E]) Find(x E) (int, error) {
	idx, err := s.InsertionPoint(x)
	if err != nil {
		return 0, err
	}
	if s.cache[idx] != x {
		return 0, &NotFoundError{Value: x, Sequence: s.name()}
	}
	return idx, nil
}
