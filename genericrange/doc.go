// Package genericrange provides a bounded, indexable view over an integer
// arithmetic progression, with an abstract per-position mapping.
//
// A Range never materializes its elements: indexing computes the underlying
// position and passes it through the Mapping, and slicing produces another
// Range over the composed progression. It is the bounded counterpart to the
// unbounded sequences of the lazyseq package, useful for presenting a
// closed-form sequence (squares, multiples, offsets into another structure)
// through the same indexed access style.
//
// Basic usage:
//
//	squares, _ := genericrange.New(0, 10, 1, func(pos int) int64 {
//	    return int64(pos) * int64(pos)
//	})
//
//	squares.Len()        // 10
//	v, _ := squares.At(3) // 9
//	odd, _ := squares.Slice(1, 10, 2)
//	odd.Values()         // [1 9 25 49 81]
package genericrange
