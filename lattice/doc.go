// Package lattice defines the implicit graph topologies used by the
// percolation engines: the N-dimensional hypercube and the PXP
// (Fibonacci-cube) constrained Hilbert space.
//
// Neither topology stores adjacency. A site's neighbours are derived from
// bit arithmetic on demand:
//
//   - Hypercube: sites are the 2^N bitstrings of length N; flipping any bit
//     yields a neighbour unconditionally.
//   - PXP: sites are the bitstrings with no two adjacent set bits (the
//     Rydberg blockade constraint, pattern & (pattern>>1) == 0), indexed
//     compactly by their rank in ascending pattern order. Flipping a bit
//     yields a neighbour only when the flipped pattern still satisfies the
//     constraint. The PXP order grows as Fibonacci(N+2).
//
// Both satisfy the Lattice interface consumed by package percolation.
// The package also carries the site arithmetic the topologies rest on:
// integer powers, Fibonacci numbers, Hamming distance, and the binomial
// shell profile of the hypercube.
package lattice
