package lattice

// Hypercube is the N-dimensional hypercube graph: 2^N sites, one per
// length-N bitstring, with an edge between every pair differing in exactly
// one bit. Immutable once built.
type Hypercube struct {
	n     int
	order uint64
}

// NewHypercube returns the hypercube of dimension n.
// Returns ErrDimension unless MinDim ≤ n ≤ MaxHypercubeDim.
func NewHypercube(n int) (*Hypercube, error) {
	if n < MinDim || n > MaxHypercubeDim {
		return nil, ErrDimension
	}

	return &Hypercube{n: n, order: uint64(1) << uint(n)}, nil
}

// Dim returns the dimension N.
func (h *Hypercube) Dim() int { return h.n }

// Order returns 2^N.
func (h *Hypercube) Order() uint64 { return h.order }

// Neighbor flips the given bit of s. Every flip is an edge, so the boolean
// is always true for bit in [0, Dim).
func (h *Hypercube) Neighbor(s Site, bit int) (Site, bool) {
	return s ^ Site(uint64(1)<<uint(bit)), true
}
