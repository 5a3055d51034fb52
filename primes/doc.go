// Package primes provides a lazy, cached sequence of prime numbers.
//
// The sequence is backed by an incremental segmented sieve: candidates are
// tested by trial division against the primes already produced, one segment
// [p_top^2, p_top+1^2) at a time, so producing the n-th prime touches no
// candidate beyond what that prime requires. The sieve is self-referential —
// its divisor source is the very cache it extends — which keeps exactly one
// copy of the primes in memory.
//
// Membership checks are cheaper than production. For a candidate beyond the
// cached range, Contains trial-divides against the cached primes up to
// sqrt(n) and scans the remaining odd divisors directly instead of forcing
// the sieve to catch up, so a one-off primality test of a large number does
// not pay for materializing every prime below it.
//
// Basic usage:
//
//	p := primes.New()
//
//	v, _ := p.At(90000)        // 1159531
//	idx, _ := p.Find(1159531)  // 90000
//	ok, _ := p.Contains(1<<31 - 1)
//
//	// Or through the shared Default sequence:
//	ok, _ = primes.IsPrime(1<<31 - 1)
//
// The sequence is not safe for concurrent use; see the lazyseq package
// documentation.
package primes
