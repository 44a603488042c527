package percolation

import (
	"math/rand"

	"github.com/percolab/hyperperc/bounded"
	"github.com/percolab/hyperperc/lattice"
)

// relaxer encapsulates the mutable state of one queue-driven distance
// traversal. dist holds hop counts from the current seed, Unreached for
// untouched sites; labels is an optional sink and may be nil.
type relaxer struct {
	lat     lattice.Lattice
	p       float64
	rng     *rand.Rand
	queue   *bounded.Queue
	visited []bool
	dist    []uint64
	labels  []uint64
}

// run performs the relaxation traversal from seed and returns the number of
// sites consumed. The caller presets dist[seed] = 0.
//
// This is not a priority-queue search: edges are unweighted but
// probabilistically present per draw, and a neighbour is re-examined (one
// fresh draw each time) only while it remains unvisited. A candidate
// distance dist[u]+1 is applied only when strictly smaller than the current
// value, and the improved site is re-enqueued. Under unit weights the FIFO
// frontier is processed in non-decreasing distance order, so a site's
// distance is final once it is dequeued; the visited check on dequeue
// discards any stale duplicate defensively.
//
// Precondition: the queue must be empty (ErrDirtyTraversal otherwise).
func (r *relaxer) run(seed lattice.Site, clusterIndex uint64) (uint64, error) {
	// 1. Reentrancy guard
	if !r.queue.Empty() {
		return 0, ErrDirtyTraversal
	}

	// 2. Seed the frontier
	if err := r.queue.Enqueue(uint64(seed)); err != nil {
		return 0, err
	}

	var size uint64
	dim := r.lat.Dim()
	for !r.queue.Empty() {
		raw, err := r.queue.Dequeue()
		if err != nil {
			return 0, err
		}
		u := lattice.Site(raw)

		// 3. Stale duplicate: discard on consumption
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		if r.labels != nil {
			r.labels[u] = clusterIndex
		}
		size++

		// 4. Relax every retained edge toward an unvisited neighbour
		du := r.dist[u]
		for bit := 0; bit < dim; bit++ {
			v, ok := r.lat.Neighbor(u, bit)
			if !ok || r.visited[v] {
				continue
			}
			if r.rng.Float64() >= r.p {
				continue
			}
			if du+1 < r.dist[v] {
				if err = r.queue.Enqueue(uint64(v)); err != nil {
					return 0, err
				}
				r.dist[v] = du + 1
			}
		}
	}

	return size, nil
}

// RootDistances computes hop distances from the root site to every site of
// its percolation cluster, in one realization. The result lists the
// distances of cluster members only, in ascending site order, so its length
// equals the root cluster size (the root contributes distance 0).
//
// Time: O(cluster edges). Memory: O(order).
func RootDistances(lat lattice.Lattice, p float64, opts ...Option) ([]uint64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	order, err := checkLattice(lat, p)
	if err != nil {
		return nil, err
	}
	if err = checkRoot(o, order); err != nil {
		return nil, err
	}

	queue, err := bounded.NewQueue(order)
	if err != nil {
		return nil, err
	}
	visited := make([]bool, order)
	dist := newDistances(order)
	dist[o.Root] = 0

	r := &relaxer{lat: lat, p: p, rng: o.Rand, queue: queue, visited: visited, dist: dist}
	size, err := r.run(o.Root, 0)
	if err != nil {
		return nil, err
	}

	// Copy out the finite distances of visited sites only.
	out := make([]uint64, 0, size)
	for i := 0; i < order; i++ {
		if visited[i] {
			out = append(out, dist[i])
		}
	}

	return out, nil
}

// newDistances allocates a distance buffer with every site Unreached.
func newDistances(order int) []uint64 {
	dist := make([]uint64, order)
	for i := range dist {
		dist[i] = Unreached
	}

	return dist
}
