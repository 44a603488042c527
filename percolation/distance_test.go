package percolation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/percolab/hyperperc/bounded"
	"github.com/percolab/hyperperc/lattice"
)

// bruteForceBFS computes hop distances from root over the full lattice
// (every edge present) with a plain breadth-first search, independent of
// the production engine.
func bruteForceBFS(lat lattice.Lattice, root lattice.Site) []uint64 {
	order := int(lat.Order())
	dist := newDistances(order)
	dist[root] = 0

	frontier := []lattice.Site{root}
	for len(frontier) > 0 {
		var next []lattice.Site
		for _, u := range frontier {
			for bit := 0; bit < lat.Dim(); bit++ {
				v, ok := lat.Neighbor(u, bit)
				if !ok || dist[v] != Unreached {
					continue
				}
				dist[v] = dist[u] + 1
				next = append(next, v)
			}
		}
		frontier = next
	}

	return dist
}

// TestRootDistances_POne_Hypercube: at full retention the relaxation must
// agree exactly with breadth-first search, which on the hypercube is the
// Hamming distance from the root. Checked for N ≤ 6.
func TestRootDistances_POne_Hypercube(t *testing.T) {
	for n := 1; n <= 6; n++ {
		h := mustHypercube(t, n)
		got, err := RootDistances(h, 1)
		require.NoError(t, err)
		require.Len(t, got, int(h.Order()))

		// All sites visited, so entry s is site s's distance.
		for s := 0; s < int(h.Order()); s++ {
			require.Equal(t, uint64(lattice.HammingDistance(0, lattice.Site(s))), got[s],
				"dimension %d site %d", n, s)
		}

		// Shell profile: C(n, k) sites at distance k.
		shells := lattice.HammingShells(n)
		counts := make([]int, n+1)
		for _, d := range got {
			counts[d]++
		}
		require.Equal(t, shells, counts, "dimension %d", n)
	}
}

// TestRootDistances_POne_PXP: same BFS agreement on the constrained
// topology, where distances are not simply Hamming weights.
func TestRootDistances_POne_PXP(t *testing.T) {
	for n := 1; n <= 6; n++ {
		x := mustPXP(t, n)
		got, err := RootDistances(x, 1)
		require.NoError(t, err)
		require.Len(t, got, int(x.Order()))

		want := bruteForceBFS(x, 0)
		for s, d := range got {
			require.Equal(t, want[s], d, "dimension %d site %d", n, s)
		}
	}
}

// TestRootDistances_PZero: the root cluster is a singleton at distance 0.
func TestRootDistances_PZero(t *testing.T) {
	h := mustHypercube(t, 5)
	got, err := RootDistances(h, 0)
	require.NoError(t, err)
	require.Equal(t, []uint64{0}, got)

	got, err = RootDistances(h, 0, WithRoot(17))
	require.NoError(t, err)
	require.Equal(t, []uint64{0}, got)
}

// TestRootDistances_CustomRoot: at p=1 distances from any root are Hamming
// distances to it.
func TestRootDistances_CustomRoot(t *testing.T) {
	h := mustHypercube(t, 4)
	root := lattice.Site(11)
	got, err := RootDistances(h, 1, WithRoot(root))
	require.NoError(t, err)
	require.Len(t, got, int(h.Order()))
	for s, d := range got {
		require.Equal(t, uint64(lattice.HammingDistance(root, lattice.Site(s))), d)
	}
}

// TestRelaxer_NeighborWitness: in any realization, every visited site with
// distance d > 0 has a visited neighbour at distance d−1, and the seed is
// the only site at distance 0. This is the relaxation invariant without
// reference to the random stream.
func TestRelaxer_NeighborWitness(t *testing.T) {
	h := mustHypercube(t, 7)
	order := int(h.Order())
	queue, err := bounded.NewQueue(order)
	require.NoError(t, err)

	dist := newDistances(order)
	dist[0] = 0
	r := &relaxer{
		lat:     h,
		p:       0.5,
		rng:     rngFromSeed(123),
		queue:   queue,
		visited: make([]bool, order),
		dist:    dist,
	}
	size, err := r.run(0, 0)
	require.NoError(t, err)
	require.GreaterOrEqual(t, size, uint64(1))

	for s := 0; s < order; s++ {
		if !r.visited[s] {
			require.Equal(t, Unreached, dist[s])

			continue
		}
		if dist[s] == 0 {
			require.Equal(t, 0, s)

			continue
		}
		witness := false
		for bit := 0; bit < h.Dim(); bit++ {
			v, ok := h.Neighbor(lattice.Site(s), bit)
			if ok && r.visited[v] && dist[v] == dist[s]-1 {
				witness = true

				break
			}
		}
		require.True(t, witness, "site %d at distance %d has no witness", s, dist[s])
	}
}

// TestRelaxer_DirtyQueue: the reentrancy guard fires when the queue is not
// empty on entry.
func TestRelaxer_DirtyQueue(t *testing.T) {
	h := mustHypercube(t, 3)
	queue, err := bounded.NewQueue(int(h.Order()))
	require.NoError(t, err)
	require.NoError(t, queue.Enqueue(2))

	r := &relaxer{
		lat:     h,
		p:       1,
		rng:     rngFromSeed(1),
		queue:   queue,
		visited: make([]bool, h.Order()),
		dist:    newDistances(int(h.Order())),
	}
	_, err = r.run(0, 0)
	require.ErrorIs(t, err, ErrDirtyTraversal)
}

// TestRootDistances_Deterministic: a fixed seed reproduces identical
// distance lists.
func TestRootDistances_Deterministic(t *testing.T) {
	x := mustPXP(t, 9)
	a, err := RootDistances(x, 0.6, WithSeed(5))
	require.NoError(t, err)
	b, err := RootDistances(x, 0.6, WithSeed(5))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

// TestRootDistances_Validation mirrors the shared argument contract.
func TestRootDistances_Validation(t *testing.T) {
	h := mustHypercube(t, 3)

	_, err := RootDistances(nil, 0.5)
	require.ErrorIs(t, err, ErrNilLattice)

	_, err = RootDistances(h, 2)
	require.ErrorIs(t, err, ErrProbability)

	_, err = RootDistances(h, 0.5, WithRoot(1000))
	require.ErrorIs(t, err, ErrRootOutOfRange)
}
