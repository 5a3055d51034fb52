// Package lazyseq implements cached lazy sequences backed by unbounded
// iterators. A sequence wraps a producer (an iter.Seq) and memoizes every
// value the producer ever yields, so random access by index, slicing and
// open-ended iteration all share one append-only cache and only ever force
// the producer as far as a query strictly requires.
//
// Two sequence kinds are provided:
//   - Sequence[T] caches an arbitrary producer and supports index access,
//     slicing and iteration.
//   - Sorted[E] requires a non-decreasing producer and adds binary-search
//     accelerated membership, value search and insertion-point computation.
//
// Key properties:
//   - Forcing is exactly "as much as needed": At(i) pulls the producer until
//     index i is cached, never further, and never speculatively.
//   - The cache is append-only and never reordered; repeated queries are
//     idempotent and served in O(1) (or O(log n) for sorted searches).
//   - Producers are conceptually infinite; finite producers are supported
//     and report ErrExhausted when forced past their end.
//
// Basic usage:
//
//	squares := lazyseq.NewSorted(func(yield func(int64) bool) {
//	    for i := int64(0); ; i++ {
//	        if !yield(i * i) {
//	            return
//	        }
//	    }
//	})
//
//	v, _ := squares.At(100)        // 10000, forces 101 values
//	ok, _ := squares.Contains(625) // true, binary search over the cache
//	idx, _ := squares.Find(625)    // 25
//
// Sequences are not safe for concurrent use. The cache is mutated only
// through the single forcing path, and the design assumes a single-writer,
// single-reader discipline; wrap forcing operations in a mutex if a sequence
// must be shared across goroutines.
package lazyseq
