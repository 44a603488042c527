// Package hyperperc grows random percolation clusters and computes
// shortest-hop distances on implicit graph families from many-body physics:
// the N-dimensional hypercube and the PXP (Fibonacci-cube) constrained
// Hilbert space.
//
// 🚀 What is hyperperc?
//
//	A small, deterministic library for bond percolation on graphs that are
//	never stored explicitly — neighbours are derived from bit arithmetic:
//	  • Hypercube: vertices = length-N bitstrings, edges = single-bit flips
//	  • PXP: the hypercube restricted to bitstrings with no two adjacent
//	    set bits (Rydberg blockade); edges are constraint-preserving flips
//
// ✨ What you can do:
//   - Sample cluster sizes over many independent realizations
//   - Build the randomly-thinned adjacency ("Hamiltonian") matrix for the
//     whole graph, the cluster containing the root, or the largest cluster
//   - Compute hop distances from the root within its cluster, or within
//     the largest cluster of a realization
//
// Everything is organized under three subpackages:
//
//	bounded/     — fixed-capacity stack & ring-buffer queue primitives
//	lattice/     — implicit topologies: Hypercube, PXP, and site arithmetic
//	percolation/ — cluster growth, distance relaxation, and Hamiltonians
//
// Randomness is always explicit: operations accept a *rand.Rand via
// percolation.WithRand (or a seed via percolation.WithSeed) and default to a
// fixed-seed deterministic stream, so every result is reproducible.
package hyperperc
