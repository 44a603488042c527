// Package percolation implements bond percolation on implicit lattices:
// depth-first cluster growth, queue-driven hop-distance relaxation, and
// construction of randomly-thinned adjacency ("Hamiltonian") matrices.
//
// Every operation works against a lattice.Lattice, so the hypercube and the
// PXP constrained Hilbert space share one engine. During traversal each
// candidate edge is retained independently with probability p, drawing one
// uniform variate per decision from an explicit random source.
//
// Operations:
//   - ClusterSizes(lat, realizations, p): size of the cluster grown from
//     the root, sampled over independent realizations
//   - FullHamiltonian(lat, p): the complete thinned graph, visiting every
//     (site, bit) edge slot once with no traversal
//   - SingleClusterHamiltonian(lat, p): matrix and size of the root cluster
//   - LargestClusterHamiltonian(lat, p): matrix restricted to the largest
//     cluster of one realization, found by enumerating all clusters with
//     early-exit pruning
//   - RootDistances(lat, p): hop distances within the root cluster
//   - LargestClusterDistances(lat, p): hop distances within the largest
//     cluster
//
// Invariants the engines maintain:
//   - Matrices are symmetric by construction: every edge decision, retained
//     or not, is written to [u][v] and [v][u] in the same step.
//   - Traversal containers are sized to the graph order and never grow;
//     duplicate insertions are legal and filtered at consumption against
//     the visited array. Overflow is a structural error, not a retry.
//   - Distances only decrease while a site is unvisited (strict-improvement
//     relaxation); once a site is dequeued its distance is final.
//
// Randomness is deterministic by default: without WithRand or WithSeed,
// operations use a fixed-seed stream, so repeated runs reproduce identical
// sizes, labels, distances, and matrices. A *rand.Rand is not safe for
// concurrent use; give each goroutine its own.
package percolation
