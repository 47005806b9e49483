package pricer

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/banachtech/binomial/lattice"
)

/*
Swaption prices a European payer swaption: the right to enter at period no
into the remaining legs of a swap running to period n.

Args:

	strikePct: strike on the per-unit swap value, in percent
	fixedPct: fixed leg rate of the underlying swap, in percent
	r0Pct: initial short rate in percent
	no: swaption expiry in periods, 0 <= no < n
	n: underlying swap length in periods
	u, d: per-step factors of the short-rate lattice

The underlying swap's per-unit valuation lattice is computed first over the
full tenor (levels 0..n-1); the swaption's own valuation lattice spans only
levels 0..no, exercising into level no of the swap lattice. Swaption nodes
discount at the node short rate and accrue no coupon. The result is per unit
of notional.
*/
func Swaption(strikePct, fixedPct, r0Pct float64, no, n int, u, d float64) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: swap needs at least one period, got %d", lattice.ErrInvalidArgument, n)
	}
	if no < 0 || no >= n {
		return 0, fmt.Errorf("%w: swaption expiry %d must lie inside the swap tenor %d", lattice.ErrInvalidArgument, no, n)
	}
	rates, err := lattice.New(r0Pct/100.0, n-1, u, d)
	if err != nil {
		return 0, err
	}
	swap, err := swapValues(rates, fixedPct/100.0)
	if err != nil {
		return 0, err
	}

	strike := strikePct / 100.0
	v := mat.NewDense(no+1, no+1, nil)
	for j := 0; j <= no; j++ {
		v.Set(no, j, math.Max(0.0, swap.At(no, j)-strike))
	}
	for i := no - 1; i >= 0; i-- {
		for j := 0; j <= i; j++ {
			v.Set(i, j, (q*v.At(i+1, j+1)+(1.0-q)*v.At(i+1, j))/(1.0+rates.At(i, j)))
		}
	}
	return v.At(0, 0), nil
}
