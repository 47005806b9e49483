package pricer

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/banachtech/binomial/lattice"
)

// Risk-neutral up probability for short-rate lattices. Fixed by modeling
// convention, not derived from no-arbitrage.
const q = 0.5

// swapValues fills the per-unit valuation lattice of a payer swap paying in
// arrears over a rate lattice with levels 0..m. Level m is the last
// rate-bearing period: its value is the discounted final net cash flow, and
// earlier levels accrue the period coupon before discounting at the node
// rate. The returned arena has the same m+1 levels as the rate lattice.
func swapValues(rates *lattice.Lattice, fixed float64) (*mat.Dense, error) {
	m := rates.Steps()
	for i := 0; i <= m; i++ {
		for j := 0; j <= i; j++ {
			if 1.0+rates.At(i, j) == 0.0 {
				return nil, fmt.Errorf("%w: short rate %v at node (%d,%d) makes discounting singular",
					lattice.ErrNumericalDegeneracy, rates.At(i, j), i, j)
			}
		}
	}
	v := mat.NewDense(m+1, m+1, nil)
	for j := 0; j <= m; j++ {
		r := rates.At(m, j)
		v.Set(m, j, (r-fixed)/(1.0+r))
	}
	for i := m - 1; i >= 0; i-- {
		for j := 0; j <= i; j++ {
			r := rates.At(i, j)
			v.Set(i, j, ((r-fixed)+q*v.At(i+1, j+1)+(1.0-q)*v.At(i+1, j))/(1.0+r))
		}
	}
	return v, nil
}

/*
Swap prices a payer interest-rate swap with payment in arrears.

Args:

	notional: contract notional; the per-unit root value scales by it
	fixedPct: fixed leg rate in percent
	r0Pct: initial short rate in percent
	n: swap length in periods; the rate lattice spans periods 0..n-1
	u, d: per-step factors of the short-rate lattice

Percent inputs are normalized to decimals once, here at the boundary.
*/
func Swap(notional, fixedPct, r0Pct float64, n int, u, d float64) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: swap needs at least one period, got %d", lattice.ErrInvalidArgument, n)
	}
	rates, err := lattice.New(r0Pct/100.0, n-1, u, d)
	if err != nil {
		return 0, err
	}
	v, err := swapValues(rates, fixedPct/100.0)
	if err != nil {
		return 0, err
	}
	return notional * v.At(0, 0), nil
}
