// Package lattice implements recombining binomial lattices for short rates
// and asset prices, together with the elementary-price forward recursion
// used to strip zero-coupon bond prices and spot rates out of a rate lattice.
package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Lattice is a recombining binomial tree with levels 0..steps. Level i holds
// i+1 nodes; node (i, j) is reached after j up-moves and i-j down-moves. The
// nodes live in the lower triangle of a dense square matrix, which keeps row
// access contiguous for the forward recursions.
type Lattice struct {
	steps int
	v     *mat.Dense
}

/*
New builds a multiplicative recombining lattice.

Args:

	initial: value at the root node (0, 0)
	n: number of time steps; the lattice has n+1 levels
	u, d: per-step up and down factors, both strictly positive

Returns the lattice, or ErrInvalidArgument when n is negative or a factor
is not strictly positive.
*/
func New(initial float64, n int, u, d float64) (*Lattice, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: steps must be non-negative, got %d", ErrInvalidArgument, n)
	}
	if math.IsNaN(initial) || math.IsInf(initial, 0) {
		return nil, fmt.Errorf("%w: initial value must be finite, got %v", ErrInvalidArgument, initial)
	}
	if u <= 0.0 || d <= 0.0 || math.IsNaN(u) || math.IsNaN(d) || math.IsInf(u, 0) || math.IsInf(d, 0) {
		return nil, fmt.Errorf("%w: factors must be positive and finite, got u=%v d=%v", ErrInvalidArgument, u, d)
	}
	l := &Lattice{steps: n, v: mat.NewDense(n+1, n+1, nil)}
	l.v.Set(0, 0, initial)
	for i := 1; i <= n; i++ {
		l.v.Set(i, 0, l.v.At(i-1, 0)*d)
		for j := 1; j <= i; j++ {
			l.v.Set(i, j, l.v.At(i-1, j-1)*u)
		}
	}
	return l, nil
}

// NewBDT builds a Black-Derman-Toy short-rate lattice from per-period drifts
// a (quoted in percent) and a common volatility parameter b. The rate at node
// (i, j) is a[i]/100 * exp(b*j), stored as a decimal.
func NewBDT(a []float64, b float64) (*Lattice, error) {
	if len(a) == 0 {
		return nil, fmt.Errorf("%w: need at least one drift parameter", ErrInvalidArgument)
	}
	n := len(a) - 1
	l := &Lattice{steps: n, v: mat.NewDense(n+1, n+1, nil)}
	for i := 0; i <= n; i++ {
		for j := 0; j <= i; j++ {
			l.v.Set(i, j, a[i]/100.0*math.Exp(b*float64(j)))
		}
	}
	return l, nil
}

// Steps reports the number of time steps n; levels run 0..n.
func (l *Lattice) Steps() int {
	return l.steps
}

// At returns the value at node (i, j). It panics when the node lies outside
// the tree, matching the out-of-bounds behaviour of the underlying matrix.
func (l *Lattice) At(i, j int) float64 {
	if j > i {
		panic(fmt.Sprintf("lattice: node (%d,%d) above the diagonal", i, j))
	}
	return l.v.At(i, j)
}

// Level returns the i+1 node values at level i as a slice backed by the
// lattice storage. Callers must not modify it.
func (l *Lattice) Level(i int) []float64 {
	return l.v.RawRowView(i)[: i+1 : i+1]
}
