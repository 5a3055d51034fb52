package lazyseq

import (
	"iter"
	"slices"
)

// Sequence is a lazy sequence created from an iterator. Every value pulled
// from the producer is appended to an internal cache, so any index that has
// been forced once is served from memory afterwards. The cache is the only
// mutable state and grows monotonically; it never shrinks or reorders.
type Sequence[T any] struct {
	cache []T
	next  func() (T, bool)
	stop  func()
	cfg   config
}

// New creates a sequence over the given producer. The producer is consumed
// exclusively by the sequence and must not be iterated elsewhere.
func New[T any](producer iter.Seq[T], opts ...Option) *Sequence[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	next, stop := iter.Pull(producer)
	return &Sequence[T]{next: next, stop: stop, cfg: cfg}
}

// NewWithPrefix creates a sequence whose cache is pre-seeded with prefix, as
// if those values had already been pulled from the producer. The producer is
// expected to continue the sequence after the prefix.
func NewWithPrefix[T any](prefix []T, producer iter.Seq[T], opts ...Option) *Sequence[T] {
	s := New(producer, opts...)
	s.cache = slices.Clone(prefix)
	return s
}

// Size returns the number of cached values. It never forces the producer.
func (s *Sequence[T]) Size() int {
	return len(s.cache)
}

// Last returns the most recently cached value, or false if nothing has been
// cached yet. It never forces the producer.
func (s *Sequence[T]) Last() (T, bool) {
	if len(s.cache) == 0 {
		var zero T
		return zero, false
	}
	return s.cache[len(s.cache)-1], true
}

// Cached returns the value at index i only if it is already cached. It never
// forces the producer, which makes it safe to call from a producer that reads
// its own sequence's output (see the primes package).
func (s *Sequence[T]) Cached(i int) (T, bool) {
	if i < 0 || i >= len(s.cache) {
		var zero T
		return zero, false
	}
	return s.cache[i], true
}

// PullNext advances the producer exactly once, appends the produced value to
// the cache and returns it. It returns ErrExhausted if the producer is done.
// This is the single forcing path: all other operations extend the cache only
// through PullNext.
func (s *Sequence[T]) PullNext() (T, error) {
	v, ok := s.next()
	if !ok {
		var zero T
		return zero, ErrExhausted
	}
	s.cache = append(s.cache, v)
	s.cfg.metrics.Pull()
	s.cfg.metrics.Size(len(s.cache))
	return v, nil
}

// At returns the value at index i, forcing the producer forward until the
// index is cached. Cached indices are served in O(1) without touching the
// producer. Negative indices are invalid and report an IndexError.
func (s *Sequence[T]) At(i int) (T, error) {
	var zero T
	if i < 0 {
		return zero, &IndexError{Index: i, Sequence: s.cfg.name}
	}
	if i < len(s.cache) {
		s.cfg.metrics.Hit()
		return s.cache[i], nil
	}
	from := len(s.cache)
	for len(s.cache) <= i {
		if _, err := s.PullNext(); err != nil {
			return zero, err
		}
	}
	s.cfg.logger.Debug("forced producer", Fields{
		"sequence": s.cfg.name,
		"from":     from,
		"to":       len(s.cache),
	})
	return s.cache[i], nil
}

// Slice returns the values at indices start, start+step, ... below stop,
// implemented purely in terms of At so it shares the single forcing path.
// start and stop must be non-negative and step must be positive; anything
// else reports an IndexError. A stop at or before start yields an empty
// slice, not an error.
func (s *Sequence[T]) Slice(start, stop, step int) ([]T, error) {
	if start < 0 {
		return nil, &IndexError{Index: start, Sequence: s.cfg.name}
	}
	if stop < 0 {
		return nil, &IndexError{Index: stop, Sequence: s.cfg.name}
	}
	if step < 1 {
		return nil, &IndexError{Index: step, Sequence: s.cfg.name}
	}
	n := 0
	if stop > start {
		n = (stop - start + step - 1) / step
	}
	out := make([]T, 0, n)
	for i := start; i < stop; i += step {
		v, err := s.At(i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

/// All returns an iterator over the whole sequence: it first re-yields every
// cached value, then keeps forcing the producer for successive indices. For
// an infinite producer the iterator never terminates on its own; the caller
// is expected to break. Each call starts again at index 0.
func (s *Sequence[T]) All() iter.Seq[T] {
	return s.From(0)
}

// From returns an iterator over the sequence starting at index start.
func (s *Sequence[T]) From(start int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := start; ; i++ {
			v, err := s.At(i)
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Stop releases the producer. The cache stays readable, but any operation
// that would force the producer reports ErrExhausted from then on.
func (s *Sequence[T]) Stop() {
	s.stop()
}

func (s *Sequence[T]) name() string {
	return s.cfg.name
}
