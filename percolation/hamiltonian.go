package percolation

import "gonum.org/v1/gonum/mat"

// Hamiltonian is the order×order 0/1 adjacency matrix of a randomly-thinned
// graph. It is symmetric by construction: SetSym, the only mutator, writes
// every edge decision to both [i][j] and [j][i] in the same step
// (hermiticity).
//
// Cells are stored row-major as int8; a cell is 1 when the edge was
// retained and 0 otherwise, including edges explicitly decided absent.
type Hamiltonian struct {
	order int
	cells []int8
}

// newHamiltonian returns a zeroed order×order matrix. Callers validate the
// order through checkMatrixOrder first.
func newHamiltonian(order int) *Hamiltonian {
	return &Hamiltonian{
		order: order,
		cells: make([]int8, order*order),
	}
}

// Order returns the number of rows (== columns).
func (h *Hamiltonian) Order() int { return h.order }

// At returns the cell (i, j). Panics if either index is out of range, like
// a slice access.
func (h *Hamiltonian) At(i, j int) int8 {
	if i < 0 || i >= h.order || j < 0 || j >= h.order {
		panic("percolation: Hamiltonian index out of range")
	}

	return h.cells[i*h.order+j]
}

// SetSym records an edge decision between i and j symmetrically: both
// (i, j) and (j, i) become 1 when connected, 0 otherwise.
func (h *Hamiltonian) SetSym(i, j int, connected bool) {
	var v int8
	if connected {
		v = 1
	}
	h.cells[i*h.order+j] = v
	h.cells[j*h.order+i] = v
}

// Degree returns the number of retained edges incident to site i.
func (h *Hamiltonian) Degree(i int) int {
	row := h.cells[i*h.order : (i+1)*h.order]
	d := 0
	for _, c := range row {
		d += int(c)
	}

	return d
}

// Clone returns a deep copy, independent of the original.
func (h *Hamiltonian) Clone() *Hamiltonian {
	out := newHamiltonian(h.order)
	copy(out.cells, h.cells)

	return out
}

// Dense exports the matrix as a gonum *mat.Dense for downstream numeric
// work (spectra, sparsity statistics).
//
// Complexity: O(order²) time and memory.
func (h *Hamiltonian) Dense() *mat.Dense {
	data := make([]float64, len(h.cells))
	for i, c := range h.cells {
		data[i] = float64(c)
	}

	return mat.NewDense(h.order, h.order, data)
}
