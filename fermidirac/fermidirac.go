package fermidirac

import (
	"cmp"
	"iter"
	"math"

	"github.com/chemacortes/lazyseq"
	"github.com/chemacortes/lazyseq/loser"
	"github.com/chemacortes/lazyseq/primes"
)

// Sequence is the lazy sorted sequence of Fermi-Dirac powers: numbers of the
// form p^(2^k) with p prime and k a natural number, in increasing order.
type Sequence struct {
	*lazyseq.Sorted[int64]
	primes *primes.Primes
}

// New creates a Fermi-Dirac sequence over its own prime sequence.
func New(opts ...lazyseq.Option) *Sequence {
	return NewFrom(primes.New(), opts...)
}

// NewFrom creates a Fermi-Dirac sequence reading primes from p. The prime
// sequence is only iterated, never mutated beyond the forcing its own reads
// imply, so it can be shared with other consumers.
func NewFrom(p *primes.Primes, opts ...lazyseq.Option) *Sequence {
	opts = append([]lazyseq.Option{lazyseq.WithName("FermiDirac")}, opts...)
	return &Sequence{
		Sorted: lazyseq.NewSorted(Flatten(family(p)), opts...),
		primes: p,
	}
}

// Primes returns the prime sequence feeding the powers.
func (s *Sequence) Primes() *primes.Primes {
	return s.primes
}

// Powers yields p^(2^k) for every prime p in increasing order. For a fixed k
// the mapping is strictly increasing in p, so the output is sorted. Once
// p^(2^k) no longer fits in int64 the value saturates at math.MaxInt64, so
// the tail of a level is a run of sentinels rather than wrapped garbage and
// the level stays non-decreasing. 2^63-1 is not itself a prime power, so the
// sentinel never collides with a genuine value: merges over saturated levels
// remain correct for every representable power, and the sentinels sort after
// all of them. For k >= 6 every value saturates (the smallest, 2^64, is
// already out of range).
func Powers(p *primes.Primes, k int) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for q := range p.All() {
			if !yield(pow2k(q, k)) {
				return
			}
		}
	}
}

// maxSquarable is the largest int64 whose square is still representable.
const maxSquarable = 3037000499

// pow2k computes base^(2^k) by squaring k times, saturating at
// math.MaxInt64 as soon as a square would overflow.
func pow2k(base int64, k int) int64 {
	r := base
	for ; k > 0; k-- {
		if r > maxSquarable {
			return math.MaxInt64
		}
		r *= r
	}
	return r
}

// family yields Powers(p, 0), Powers(p, 1), Powers(p, 2), ... forever.
// Levels from k=6 on consist only of the saturation sentinel, which sorts
// after every representable power, so a merge over the family pulls the
// head of level 6 at most once and never descends further.
func family(p *primes.Primes) iter.Seq[iter.Seq[int64]] {
	return func(yield func(iter.Seq[int64]) bool) {
		for k := 0; ; k++ {
			if !yield(Powers(p, k)) {
				return
			}
		}
	}
}

// Join merges two sorted sequences into one sorted sequence. On a tie the
// left side is yielded and advanced; the equal value on the right side stays
// and is yielded on a later round, so duplicates across the two inputs are
// preserved. The merge ends as soon as either input ends.
func Join[E cmp.Ordered](a, b iter.Seq[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		nextA, stopA := iter.Pull(a)
		defer stopA()
		nextB, stopB := iter.Pull(b)
		defer stopB()

		x, okA := nextA()
		y, okB := nextB()
		for okA && okB {
			if x <= y {
				if !yield(x) {
					return
				}
				x, okA = nextA()
			} else {
				if !yield(y) {
					return
				}
				y, okB = nextB()
			}
		}
	}
}

// Flatten merges an unbounded family of sorted sequences into one sorted
// sequence, provided the families' first elements are themselves increasing
// across the family (true for Powers: the head of level k is 2^(2^k)).
//
// It is a lazy right fold over Join: yield the head of the first sequence,
// then merge its tail against the flattening of the rest. The recursive
// flattening only runs when the enclosing Join actually pulls from it, so
// the live depth is bounded by the number of family members whose values
// have been demanded, not by the (infinite) size of the family.
func Flatten[E cmp.Ordered](fam iter.Seq[iter.Seq[E]]) iter.Seq[E] {
	return func(yield func(E) bool) {
		nextSeq, stopSeq := iter.Pull(fam)
		defer stopSeq()

		s1, ok := nextSeq()
		if !ok {
			return
		}
		next1, stop1 := iter.Pull(s1)
		defer stop1()

		head, ok := next1()
		if !ok {
			return
		}
		if !yield(head) {
			return
		}

		rest := Flatten(resume(nextSeq))
		for v := range Join(resume(next1), rest) {
			if !yield(v) {
				return
			}
		}
	}
}

// resume adapts an in-progress pull function back into a sequence, yielding
// whatever the pull function has not produced yet.
func resume[E any](next func() (E, bool)) iter.Seq[E] {
	return func(yield func(E) bool) {
		for v, ok := next(); ok; v, ok = next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Below returns every Fermi-Dirac power up to and including limit, merged
// eagerly. For a finite limit only the levels whose first power 2^(2^k) is
// within range contribute, so the family is finite and a loser tree merges
// it in O(log k) comparisons per element.
func Below(p *primes.Primes, limit int64) []int64 {
	var seqs []loser.Sequence[int64]
	for k := 0; ; k++ {
		if k >= 6 || int64(1)<<(1<<uint(k)) > limit {
			break
		}
		seqs = append(seqs, boundedPowers{p: p, k: k, limit: limit})
	}

	tree := loser.New(seqs, math.MaxInt64)
	var out []int64
	for v := range tree.All() {
		out = append(out, v)
	}
	return out
}

// boundedPowers is the prefix of Powers(p, k) not exceeding limit.
type boundedPowers struct {
	p     *primes.Primes
	k     int
	limit int64
}

func (s boundedPowers) All() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for v := range Powers(s.p, s.k) {
			// The saturation sentinel is never a genuine power, so it is
			// dropped even when limit is math.MaxInt64.
			if v > s.limit || v == math.MaxInt64 {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
