package lattice

import "errors"

// Sentinel errors for lattice construction.
var (
	// ErrDimension is returned when a dimension lies outside the supported
	// range for the requested topology.
	ErrDimension = errors.New("lattice: dimension out of range")
)

// Dimension bounds. Orders must stay representable in the Site domain;
// construction rejects anything larger before allocating.
const (
	// MinDim is the smallest supported dimension for either topology.
	MinDim = 1
	// MaxHypercubeDim keeps the hypercube order 2^N inside uint64.
	MaxHypercubeDim = 62
	// MaxPXPDim bounds the one-time 2^N enumeration that builds the PXP
	// site table.
	MaxPXPDim = 62
)

// Site identifies a vertex as a non-negative integer in [0, Order).
// For the hypercube the site IS the bit pattern; for PXP it is a compact
// rank into the ascending table of blockade-respecting patterns.
type Site uint64

// Lattice is an implicit graph family: a fixed number of sites whose
// neighbours are computed, not stored.
type Lattice interface {
	// Dim returns the number of bits N, and so the maximum degree.
	Dim() int

	// Order returns the number of sites.
	Order() uint64

	// Neighbor returns the site reached from s by flipping the given bit
	// position in [0, Dim). The boolean is false when the topology forbids
	// that flip (no such edge).
	Neighbor(s Site, bit int) (Site, bool)
}
