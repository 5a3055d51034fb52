// Package loser implements a tournament tree (also known as a loser tree) for
// efficiently merging multiple sorted sequences. The implementation is based
// on the work by Bryan Boreham (https://github.com/bboreham/go-loser),
// specialized to ordered element types.
//
// A loser tree is a binary tree structure where each internal node holds the
// "loser" of a comparison between its children, and the root holds the
// overall "winner". Merging M sorted sequences this way costs O(log M)
// comparisons per element, against O(M) for a naive scan over the heads.
//
// The tree merges a finite family of sequences. For merging an unbounded
// family of sorted sequences see fermidirac.Flatten, which unrolls lazily
// instead of materializing every branch up front.
//
// Basic usage:
//
//	tree := loser.New(
//	    []loser.Sequence[int64]{seqA, seqB, seqC},
//	    math.MaxInt64,
//	)
//
//	for v := range tree.All() {
//	    // values arrive in non-decreasing order
//	}
//
// Any type with an All() iter.Seq[E] method is a Sequence; lazyseq.Sorted
// satisfies the interface directly.
//
// Implementation details:
//   - For node N, its children are at positions 2N and 2N+1
//   - Leaf nodes are stored in positions M to 2M-1 (where M is the number of sequences)
//   - Internal nodes are stored in positions 1 to M-1
//   - Node 0 is special, containing the current winner
//
// The tree maintains the invariant that each internal node contains the
// larger (losing) value of its children, so the smallest (winning) value
// propagates to the root.
package loser
