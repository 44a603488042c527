package lattice

import (
	"math/bits"

	"gonum.org/v1/gonum/stat/combin"
)

// IntPow returns base**exp by iterated squaring over uint64.
// Overflow is the caller's responsibility; dimension bounds in this package
// keep every in-library use inside the domain.
func IntPow(base, exp uint64) uint64 {
	result := uint64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}

	return result
}

// Fibonacci returns the n-th Fibonacci number with F(0)=0, F(1)=1.
// The PXP order of dimension N is Fibonacci(N+2).
func Fibonacci(n int) uint64 {
	a, b := uint64(0), uint64(1)
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}

	return a
}

// HammingDistance returns the number of bit positions at which the patterns
// of a and b differ, i.e. the hop distance between hypercube sites.
func HammingDistance(a, b Site) int {
	return bits.OnesCount64(uint64(a) ^ uint64(b))
}

// HammingShells returns, for the hypercube of dimension n, the number of
// sites at each Hamming distance k from any fixed site: C(n, k) for
// k = 0..n. This is the exact hop-distance distribution at full bond
// retention, used to cross-check distance computations.
func HammingShells(n int) []int {
	shells := make([]int, n+1)
	for k := 0; k <= n; k++ {
		shells[k] = combin.Binomial(n, k)
	}

	return shells
}
