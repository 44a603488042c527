package percolation

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestHamiltonian_SetSym: one call decides both cells, retained or absent.
func TestHamiltonian_SetSym(t *testing.T) {
	h := newHamiltonian(4)

	h.SetSym(1, 2, true)
	require.Equal(t, int8(1), h.At(1, 2))
	require.Equal(t, int8(1), h.At(2, 1))

	h.SetSym(1, 2, false)
	require.Equal(t, int8(0), h.At(1, 2))
	require.Equal(t, int8(0), h.At(2, 1))
}

// TestHamiltonian_Degree counts retained edges per row.
func TestHamiltonian_Degree(t *testing.T) {
	h := newHamiltonian(3)
	h.SetSym(0, 1, true)
	h.SetSym(0, 2, true)
	h.SetSym(1, 2, false)

	require.Equal(t, 2, h.Degree(0))
	require.Equal(t, 1, h.Degree(1))
	require.Equal(t, 1, h.Degree(2))
}

// TestHamiltonian_AtBounds: out-of-range access panics like a slice.
func TestHamiltonian_AtBounds(t *testing.T) {
	h := newHamiltonian(2)
	require.Panics(t, func() { h.At(2, 0) })
	require.Panics(t, func() { h.At(0, -1) })
}

// TestHamiltonian_Clone: deep copy, mutations do not propagate.
func TestHamiltonian_Clone(t *testing.T) {
	h := newHamiltonian(3)
	h.SetSym(0, 1, true)

	c := h.Clone()
	require.Equal(t, h, c)

	c.SetSym(1, 2, true)
	require.Equal(t, int8(0), h.At(1, 2))
	require.Equal(t, int8(1), c.At(1, 2))
}

// TestHamiltonian_Dense: the gonum export carries the same cells and is
// symmetric whenever the source is.
func TestHamiltonian_Dense(t *testing.T) {
	h := newHamiltonian(3)
	h.SetSym(0, 2, true)
	h.SetSym(1, 2, true)

	d := h.Dense()
	r, c := d.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, float64(h.At(i, j)), d.At(i, j))
		}
	}
	require.True(t, mat.Equal(d, d.T()))
}
