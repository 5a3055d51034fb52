// Package fermidirac generates the Fermi-Dirac powers: numbers of the form
// p^(2^k) where p is prime and k is a natural number, in increasing order.
// The first terms are 2, 3, 4, 5, 7, 9, 11, 13, 16, 17, 19, 23, 25, 29.
//
// The sequence is assembled from combinators over sorted iterators:
//   - Powers(p, k) yields p^(2^k) over all primes for one fixed exponent.
//   - Join merges two sorted sequences pairwise.
//   - Flatten folds the infinite family Powers(0), Powers(1), ... into one
//     sorted sequence; the fold unrolls lazily, one level per demand, so the
//     infinitely many levels cost nothing until a merge actually needs them.
//
// The merged output feeds a lazyseq.Sorted, so the usual index and search
// operations apply:
//
//	fd := fermidirac.New()
//
//	v, _ := fd.At(60)            // 241
//	idx, _ := fd.Find(15476303)  // 1000000
//	s, _ := fd.Slice(0, 14, 1)   // 2 3 4 5 7 9 11 13 16 17 19 23 25 29
//
// No value occurs twice: p^(2^k) = q^(2^j) forces p = q and k = j by unique
// factorization, so the per-level sequences are pairwise disjoint and the
// merge never has to deduplicate.
//
// For bounded extractions Below merges only the finitely many levels that
// can contribute values up to a limit, using a loser tree instead of the
// lazy fold.
package fermidirac
