package percolation

import "github.com/percolab/hyperperc/lattice"

// FullHamiltonian builds the adjacency matrix of the complete
// randomly-thinned graph: every (site, bit) edge slot is enumerated exactly
// once with one uniform draw, and the decision is written symmetrically. No
// traversal and no stack are involved, so the result covers all clusters at
// once.
//
// Each undirected edge appears in two slots (once from either endpoint);
// the later draw overwrites the earlier one in both cells, so the matrix
// stays symmetric throughout.
//
// Time: O(order · N). Memory: O(order²).
func FullHamiltonian(lat lattice.Lattice, p float64, opts ...Option) (*Hamiltonian, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	order, err := checkLattice(lat, p)
	if err != nil {
		return nil, err
	}
	if err = checkMatrixOrder(order); err != nil {
		return nil, err
	}

	ham := newHamiltonian(order)
	dim := lat.Dim()
	for site := 0; site < order; site++ {
		for bit := 0; bit < dim; bit++ {
			v, ok := lat.Neighbor(lattice.Site(site), bit)
			if !ok {
				// No edge slot here (constrained topology); nothing to draw.
				continue
			}
			ham.SetSym(site, int(v), o.Rand.Float64() < p)
		}
	}

	return ham, nil
}
