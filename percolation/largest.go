package percolation

import (
	"github.com/percolab/hyperperc/bounded"
	"github.com/percolab/hyperperc/lattice"
)

// clusterScan drives a full enumeration of clusters: every site is taken in
// ascending order, unvisited sites seed a fresh cluster with a fresh index,
// and the largest cluster seen is tracked.
//
// Early-exit rule: enumeration stops once largestSize ≥ order − totalVisited,
// since the remaining unvisited sites could not form a strictly larger
// cluster even if they were all connected. Tests disable earlyExit to prove
// the pruned and exhaustive scans select the same winner.
type clusterScan struct {
	order        uint64
	earlyExit    bool
	clusterCount uint64 // next cluster index to assign
	totalVisited uint64 // sites consumed so far
	largestSize  uint64
	largestIndex uint64
}

// run enumerates clusters, calling growFn for each unvisited seed.
func (cs *clusterScan) run(visited []bool, growFn func(seed lattice.Site, index uint64) (uint64, error)) error {
	for site := uint64(0); site < cs.order; site++ {
		if visited[site] {
			continue
		}

		size, err := growFn(lattice.Site(site), cs.clusterCount)
		if err != nil {
			return err
		}

		cs.totalVisited += size
		if size > cs.largestSize {
			cs.largestSize = size
			cs.largestIndex = cs.clusterCount
		}
		cs.clusterCount++

		if cs.earlyExit && cs.largestSize >= cs.order-cs.totalVisited {
			break
		}
	}

	return nil
}

// LargestClusterHamiltonian enumerates every cluster of one realization,
// then returns the adjacency matrix restricted to the largest cluster (full
// graph order, rows and columns outside the winner all zero) together with
// its size.
//
// Time: O(order²) for the matrices plus O(graph edges) for the enumeration.
func LargestClusterHamiltonian(lat lattice.Lattice, p float64, opts ...Option) (*Hamiltonian, uint64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, 0, err
	}

	return largestClusterHamiltonian(lat, p, o, true)
}

// largestClusterHamiltonian carries the earlyExit knob for equivalence
// tests against the exhaustive scan.
func largestClusterHamiltonian(lat lattice.Lattice, p float64, o Options, earlyExit bool) (*Hamiltonian, uint64, error) {
	order, err := checkLattice(lat, p)
	if err != nil {
		return nil, 0, err
	}
	if err = checkMatrixOrder(order); err != nil {
		return nil, 0, err
	}

	stack, err := bounded.NewStack(order)
	if err != nil {
		return nil, 0, err
	}
	all := newHamiltonian(order) // every cluster lands here first
	g := &grower{
		lat:     lat,
		p:       p,
		rng:     o.Rand,
		stack:   stack,
		visited: make([]bool, order),
		ham:     all,
		labels:  newLabels(order),
	}

	cs := &clusterScan{order: uint64(order), earlyExit: earlyExit}
	if err = cs.run(g.visited, g.grow); err != nil {
		return nil, 0, err
	}

	// Second pass: copy only the rows of the winning cluster, mirroring
	// each cell to keep the result symmetric.
	winner := newHamiltonian(order)
	for i := 0; i < order; i++ {
		if g.labels[i] != cs.largestIndex {
			continue
		}
		for k := 0; k < order; k++ {
			if all.At(i, k) != 0 {
				winner.SetSym(i, k, true)
			}
		}
	}

	return winner, cs.largestSize, nil
}

// LargestClusterDistances enumerates every cluster of one realization with
// the relaxation traversal, then returns the hop distances (from the
// cluster's own seed) of the largest cluster's members, in ascending site
// order. The result length equals the largest cluster size.
//
// Time: O(graph edges). Memory: O(order).
func LargestClusterDistances(lat lattice.Lattice, p float64, opts ...Option) ([]uint64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return largestClusterDistances(lat, p, o, true)
}

// largestClusterDistances carries the earlyExit knob for equivalence tests.
func largestClusterDistances(lat lattice.Lattice, p float64, o Options, earlyExit bool) ([]uint64, error) {
	order, err := checkLattice(lat, p)
	if err != nil {
		return nil, err
	}

	queue, err := bounded.NewQueue(order)
	if err != nil {
		return nil, err
	}
	dist := newDistances(order)
	r := &relaxer{
		lat:     lat,
		p:       p,
		rng:     o.Rand,
		queue:   queue,
		visited: make([]bool, order),
		dist:    dist,
		labels:  newLabels(order),
	}

	cs := &clusterScan{order: uint64(order), earlyExit: earlyExit}
	err = cs.run(r.visited, func(seed lattice.Site, index uint64) (uint64, error) {
		// Each cluster measures distances from its own seed.
		dist[seed] = 0

		return r.run(seed, index)
	})
	if err != nil {
		return nil, err
	}

	// Second pass: copy out the distances of the winning cluster only.
	out := make([]uint64, 0, cs.largestSize)
	for i := 0; i < order; i++ {
		if r.labels[i] == cs.largestIndex {
			out = append(out, dist[i])
		}
	}

	return out, nil
}

// newLabels allocates a label buffer with every site Unlabeled.
func newLabels(order int) []uint64 {
	labels := make([]uint64, order)
	for i := range labels {
		labels[i] = Unlabeled
	}

	return labels
}
