package percolation

import (
	"errors"
	"math"
	"math/rand"

	"github.com/percolab/hyperperc/lattice"
)

// Sentinel errors for percolation operations.
var (
	// ErrNilLattice is returned when the lattice argument is nil.
	ErrNilLattice = errors.New("percolation: lattice is nil")

	// ErrProbability is returned when p lies outside [0, 1] or is NaN.
	ErrProbability = errors.New("percolation: probability must lie in [0,1]")

	// ErrRealizations is returned when the realization count is not positive.
	ErrRealizations = errors.New("percolation: realization count must be positive")

	// ErrOrderTooLarge is returned when the graph order (or, for matrix
	// operations, order squared) exceeds the addressable range.
	ErrOrderTooLarge = errors.New("percolation: graph order exceeds addressable range")

	// ErrRootOutOfRange is returned when the configured root site is not a
	// valid site of the lattice.
	ErrRootOutOfRange = errors.New("percolation: root site outside graph order")

	// ErrDirtyTraversal is returned when a traversal container is not empty
	// on entry to an engine. It indicates a bookkeeping bug, not user error.
	ErrDirtyTraversal = errors.New("percolation: traversal container not empty on entry")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("percolation: invalid option supplied")
)

// Unreached is the sentinel distance of a site the relaxation never touched.
const Unreached uint64 = math.MaxUint64

// Unlabeled is the sentinel cluster label of a site no traversal visited.
// Labels default to it so an early exit never mislabels untouched sites as
// belonging to cluster 0.
const Unlabeled uint64 = math.MaxUint64

// defaultRNGSeed is the fixed seed used when the caller supplies no random
// source. Arbitrary but stable, to keep default runs reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// Option configures an operation via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when the
// operation is invoked.
type Option func(*Options)

// Options holds the tunable parameters shared by every operation.
type Options struct {
	// Rand is the uniform [0,1) variate source consumed sequentially by
	// every edge decision. Not safe for concurrent use.
	Rand *rand.Rand

	// Root is the seed site for single-cluster and root-distance
	// operations. Defaults to site 0.
	Root lattice.Site

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a fixed-seed deterministic random
// source and root site 0.
func DefaultOptions() Options {
	return Options{
		Rand: rngFromSeed(0),
		Root: 0,
	}
}

// WithRand sets the random source. A nil source leaves the default intact.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed replaces the random source with a deterministic stream seeded by
// seed (seed==0 selects the default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rngFromSeed(seed)
	}
}

// WithRoot sets the seed site for single-cluster and root-distance
// operations. Validated against the lattice order at call time.
func WithRoot(s lattice.Site) Option {
	return func(o *Options) {
		o.Root = s
	}
}

// buildOptions applies opts over the defaults and surfaces recorded
// violations.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// checkLattice validates the shared (lattice, p) argument pair and returns
// the order as an int, before any buffer is allocated.
func checkLattice(lat lattice.Lattice, p float64) (int, error) {
	if lat == nil {
		return 0, ErrNilLattice
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, ErrProbability
	}
	order := lat.Order()
	if order == 0 || order > uint64(math.MaxInt) {
		return 0, ErrOrderTooLarge
	}

	return int(order), nil
}

// checkMatrixOrder additionally requires order×order cells to be
// addressable for matrix-producing operations.
func checkMatrixOrder(order int) error {
	if uint64(order) > uint64(math.MaxInt)/uint64(order) {
		return ErrOrderTooLarge
	}

	return nil
}

// checkRoot validates the configured root against the graph order.
func checkRoot(o Options, order int) error {
	if uint64(o.Root) >= uint64(order) {
		return ErrRootOutOfRange
	}

	return nil
}
