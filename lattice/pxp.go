package lattice

import "sort"

// PXP is the constrained Hilbert-space graph of the PXP model, also known
// as the Fibonacci cube: the hypercube subgraph induced by bitstrings with
// no two adjacent set bits. Sites are compact ranks into the ascending
// table of valid patterns; Order() == Fibonacci(N+2). Immutable once built.
type PXP struct {
	n     int
	table []Site // ascending bit patterns satisfying the blockade
}

// NewPXP enumerates, once, every length-n bitstring satisfying the blockade
// constraint and returns the resulting lattice.
// Returns ErrDimension unless MinDim ≤ n ≤ MaxPXPDim.
//
// Time: O(2^n) for the enumeration scan. Memory: O(Fibonacci(n+2)).
func NewPXP(n int) (*PXP, error) {
	if n < MinDim || n > MaxPXPDim {
		return nil, ErrDimension
	}

	table := make([]Site, 0, Fibonacci(n+2))
	limit := uint64(1) << uint(n)
	for pattern := uint64(0); pattern < limit; pattern++ {
		if blockadeOK(pattern) {
			table = append(table, Site(pattern))
		}
	}

	return &PXP{n: n, table: table}, nil
}

// blockadeOK reports whether pattern has no two adjacent set bits.
func blockadeOK(pattern uint64) bool {
	return pattern&(pattern>>1) == 0
}

// Dim returns the chain length N.
func (x *PXP) Dim() int { return x.n }

// Order returns the number of blockade-respecting patterns, Fibonacci(N+2).
func (x *PXP) Order() uint64 { return uint64(len(x.table)) }

// Pattern returns the bit pattern of site s. Callers must keep s < Order().
func (x *PXP) Pattern(s Site) Site { return x.table[s] }

// SiteTable returns a copy of the ordered pattern table, rank → pattern.
func (x *PXP) SiteTable() []Site {
	out := make([]Site, len(x.table))
	copy(out, x.table)

	return out
}

// Neighbor flips the given bit of site s's pattern. The flip is an edge
// only when the flipped pattern still satisfies the blockade constraint;
// otherwise the boolean is false and no edge exists.
//
// Time: O(log Order) for the rank lookup.
func (x *PXP) Neighbor(s Site, bit int) (Site, bool) {
	flipped := uint64(x.table[s]) ^ (uint64(1) << uint(bit))
	if !blockadeOK(flipped) {
		return 0, false
	}
	rank, ok := x.rank(Site(flipped))
	if !ok {
		// The table contains every valid pattern, so a valid flip always
		// resolves; reaching here means the table is corrupt.
		return 0, false
	}

	return rank, true
}

// rank binary-searches the ascending table for pattern and returns its
// compact index.
func (x *PXP) rank(pattern Site) (Site, bool) {
	i := sort.Search(len(x.table), func(k int) bool { return x.table[k] >= pattern })
	if i == len(x.table) || x.table[i] != pattern {
		return 0, false
	}

	return Site(i), true
}
