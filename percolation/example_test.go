package percolation_test

import (
	"fmt"

	"github.com/percolab/hyperperc/lattice"
	"github.com/percolab/hyperperc/percolation"
)

// ExampleClusterSizes samples cluster sizes at p=0, where every cluster is
// a singleton regardless of the random stream.
func ExampleClusterSizes() {
	h, _ := lattice.NewHypercube(2)
	sizes, _ := percolation.ClusterSizes(h, 3, 0)
	fmt.Println(sizes)
	// Output: [1 1 1]
}

// ExampleRootDistances computes hop distances on the full square (N=2,
// p=1): one site at distance 0, two at 1, one at 2.
func ExampleRootDistances() {
	h, _ := lattice.NewHypercube(2)
	dist, _ := percolation.RootDistances(h, 1)
	fmt.Println(dist)
	// Output: [0 1 1 2]
}

// ExampleFullHamiltonian builds the exact adjacency of the square at p=1;
// every vertex has degree N=2.
func ExampleFullHamiltonian() {
	h, _ := lattice.NewHypercube(2)
	ham, _ := percolation.FullHamiltonian(h, 1)
	fmt.Println(ham.Order(), ham.Degree(0))
	// Output: 4 2
}

// ExampleLargestClusterDistances: at p=0 the largest cluster is any single
// site, contributing one zero distance.
func ExampleLargestClusterDistances() {
	h, _ := lattice.NewHypercube(2)
	dist, _ := percolation.LargestClusterDistances(h, 0)
	fmt.Println(dist)
	// Output: [0]
}

// ExampleSingleClusterHamiltonian grows the root cluster of the PXP chain
// of length 4 at p=1: the whole Fibonacci cube of order 8 appears.
func ExampleSingleClusterHamiltonian() {
	x, _ := lattice.NewPXP(4)
	_, size, _ := percolation.SingleClusterHamiltonian(x, 1)
	fmt.Println(size)
	// Output: 8
}
