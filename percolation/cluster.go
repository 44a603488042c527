package percolation

import (
	"math/rand"

	"github.com/percolab/hyperperc/bounded"
	"github.com/percolab/hyperperc/lattice"
)

// grower encapsulates the mutable state of one depth-first cluster growth.
// The stack and visited buffer are sized to the graph order; ham and labels
// are optional sinks and may be nil.
type grower struct {
	lat     lattice.Lattice
	p       float64
	rng     *rand.Rand
	stack   *bounded.Stack
	visited []bool
	ham     *Hamiltonian // optional: record every edge decision symmetrically
	labels  []uint64     // optional: first-visit cluster label per site
}

// grow runs the depth-first growth from seed and returns the cluster size.
//
// Pops deduplicate against visited: a site may sit on the stack several
// times but is consumed once. Each unvisited neighbour costs exactly one
// uniform draw; when a Hamiltonian sink is present the decision is recorded
// whether or not the edge is retained.
//
// Precondition: the stack must be empty (ErrDirtyTraversal otherwise).
func (g *grower) grow(seed lattice.Site, clusterIndex uint64) (uint64, error) {
	// 1. Reentrancy guard
	if !g.stack.Empty() {
		return 0, ErrDirtyTraversal
	}

	// 2. Seed the stack
	if err := g.stack.Push(uint64(seed)); err != nil {
		return 0, err
	}

	var size uint64
	dim := g.lat.Dim()
	for !g.stack.Empty() {
		raw, err := g.stack.Pop()
		if err != nil {
			return 0, err
		}
		u := lattice.Site(raw)

		// 3. Duplicate entry: discard on consumption
		if g.visited[u] {
			continue
		}
		g.visited[u] = true
		if g.labels != nil {
			g.labels[u] = clusterIndex
		}
		size++

		// 4. Decide each incident edge toward an unvisited neighbour
		for bit := 0; bit < dim; bit++ {
			v, ok := g.lat.Neighbor(u, bit)
			if !ok || g.visited[v] {
				continue
			}

			if g.rng.Float64() < g.p {
				if err = g.stack.Push(uint64(v)); err != nil {
					return 0, err
				}
				if g.ham != nil {
					g.ham.SetSym(int(u), int(v), true)
				}
			} else if g.ham != nil {
				// Absent edges are recorded, never left implicit.
				g.ham.SetSym(int(u), int(v), false)
			}
		}
	}

	return size, nil
}

// ClusterSizes grows one percolation cluster from the root site in each of
// `realizations` independent trials and returns the resulting sizes.
// The visited buffer is reset between trials; the stack is reused.
//
// Returns ErrNilLattice, ErrProbability, ErrRealizations, ErrRootOutOfRange
// or ErrOptionViolation on invalid input, all before any buffer is
// allocated.
//
// Time: O(realizations · cluster edges). Memory: O(order).
func ClusterSizes(lat lattice.Lattice, realizations int, p float64, opts ...Option) ([]uint64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	order, err := checkLattice(lat, p)
	if err != nil {
		return nil, err
	}
	if realizations < 1 {
		return nil, ErrRealizations
	}
	if err = checkRoot(o, order); err != nil {
		return nil, err
	}

	stack, err := bounded.NewStack(order)
	if err != nil {
		return nil, err
	}
	visited := make([]bool, order)
	g := &grower{lat: lat, p: p, rng: o.Rand, stack: stack, visited: visited}

	sizes := make([]uint64, realizations)
	for r := 0; r < realizations; r++ {
		resetVisited(visited)
		sizes[r], err = g.grow(o.Root, 0)
		if err != nil {
			return nil, err
		}
	}

	return sizes, nil
}

// SingleClusterHamiltonian grows the cluster containing the root site and
// returns its adjacency matrix (full graph order, rows outside the cluster
// all zero) together with the cluster size.
//
// Time: O(order² ) for the matrix zeroing plus O(cluster edges).
func SingleClusterHamiltonian(lat lattice.Lattice, p float64, opts ...Option) (*Hamiltonian, uint64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, 0, err
	}
	order, err := checkLattice(lat, p)
	if err != nil {
		return nil, 0, err
	}
	if err = checkMatrixOrder(order); err != nil {
		return nil, 0, err
	}
	if err = checkRoot(o, order); err != nil {
		return nil, 0, err
	}

	stack, err := bounded.NewStack(order)
	if err != nil {
		return nil, 0, err
	}
	ham := newHamiltonian(order)
	g := &grower{
		lat:     lat,
		p:       p,
		rng:     o.Rand,
		stack:   stack,
		visited: make([]bool, order),
		ham:     ham,
	}

	size, err := g.grow(o.Root, 0)
	if err != nil {
		return nil, 0, err
	}

	return ham, size, nil
}

// resetVisited marks every site unvisited between independent realizations.
func resetVisited(visited []bool) {
	for i := range visited {
		visited[i] = false
	}
}
