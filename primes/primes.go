package primes

import (
	"iter"

	"github.com/chemacortes/lazyseq"
)

// Primes is a lazy sorted sequence of prime numbers. The producer is an
// incremental segmented trial-division sieve that reads the sequence's own
// cache as its divisor source, so the set of known primes and the set of
// divisors grow together.
type Primes struct {
	*lazyseq.Sorted[int64]
}

// New creates a prime sequence seeded with [2, 3].
func New(opts ...lazyseq.Option) *Primes {
	p := &Primes{}
	opts = append([]lazyseq.Option{lazyseq.WithName("Primes")}, opts...)
	p.Sorted = lazyseq.NewSortedWithPrefix([]int64{2, 3}, p.sieve(), opts...)
	return p
}

// sieve yields primes from 5 on, one segment at a time. The segment tested
// against the divisor window cache[1:top] is [start, cache[top]^2): every
// prime below the square root of the segment boundary is already cached by
// the time the segment is reached, so trial division against exactly that
// window is sufficient.
func (p *Primes) sieve() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		top := 1
		start := int64(5)
		for {
			pt, _ := p.Cached(top)
			boundary := pt * pt
		candidates:
			for n := start; n < boundary; n += 2 {
				for i := 1; i < top; i++ {
					d, _ := p.Cached(i)
					if n%d == 0 {
						continue candidates
					}
				}
				if !yield(n) {
					return
				}
			}
			start = boundary + 2
			top++
		}
	}
}

// Contains reports whether n is prime. For n within the cached range it
// delegates to the sorted membership check. For larger n it trial-divides
// against the cached primes up to sqrt(n), then closes the gap between the
// largest cached prime and sqrt(n) with a one-shot scan over odd divisors.
// The check never feeds n into the cache, though delegation may force the
// sieve forward as a side effect.
func (p *Primes) Contains(n int64) (bool, error) {
	last, _ := p.Last()
	if n <= last {
		return p.Sorted.Contains(n)
	}
	if n%2 == 0 {
		return false, nil
	}

	root := isqrt(n)
	var top int
	if root > last {
		top = p.Size()
	} else {
		var err error
		top, err = p.InsertionPoint(root)
		if err != nil {
			return false, err
		}
		// The window must cover root itself when root is a cached prime,
		// or n = root^2 would slip through as a false prime.
		if d, ok := p.Cached(top); ok && d == root {
			top++
		}
	}

	for i := 1; i < top; i++ {
		d, _ := p.Cached(i)
		if n%d == 0 {
			return false, nil
		}
	}

	// One-shot check over the odd candidates the sieve has not reached yet.
	for d := last + 2; d <= root; d += 2 {
		if n%d == 0 {
			return false, nil
		}
	}

	return true, nil
}

// Nth returns the n-th prime, forcing the sieve as far as needed.
func (p *Primes) Nth(n int) (int64, error) {
	return p.At(n)
}

// Default is a process-wide shared prime sequence. Queries against it build
// up one common cache, so repeated primality checks get cheaper over time.
var Default = New()

// IsPrime reports whether n is prime, using the Default sequence.
func IsPrime(n int64) (bool, error) {
	return Default.Contains(n)
}

// isqrt returns the integer square root of n by Newton iteration.
func isqrt(n int64) int64 {
	if n < 2 {
		return n
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
