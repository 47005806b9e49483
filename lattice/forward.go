package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

/*
ElementaryQ runs the forward recursion for elementary (Arrow-Debreu) prices
over a short-rate lattice under up-probability q.

The elementary price e(i, j) is the time-0 value of a claim paying 1 at node
(i, j) and 0 everywhere else. Cash flows at level i are discounted through
the short rates at level i-1, so the returned lattice has one more step than
the rate lattice.

Args:

	rates: short-rate lattice with rates as decimals
	q: risk-neutral up probability, strictly inside (0, 1)

Returns the elementary-price lattice with rates.Steps()+1 steps.
*/
func ElementaryQ(rates *Lattice, q float64) (*Lattice, error) {
	if rates == nil {
		return nil, fmt.Errorf("%w: nil rate lattice", ErrInvalidArgument)
	}
	if q <= 0.0 || q >= 1.0 {
		return nil, fmt.Errorf("%w: probability must lie in (0,1), got %v", ErrInvalidArgument, q)
	}
	m := rates.steps
	for i := 0; i <= m; i++ {
		for j := 0; j <= i; j++ {
			if 1.0+rates.v.At(i, j) == 0.0 {
				return nil, fmt.Errorf("%w: short rate %v at node (%d,%d) makes discounting singular",
					ErrNumericalDegeneracy, rates.v.At(i, j), i, j)
			}
		}
	}
	e, err := New(1.0, m+1, 1.0, 1.0)
	if err != nil {
		return nil, err
	}
	e.v.Zero()
	e.v.Set(0, 0, 1.0)
	for i := 1; i <= m+1; i++ {
		e.v.Set(i, 0, (1.0-q)*e.v.At(i-1, 0)/(1.0+rates.v.At(i-1, 0)))
		e.v.Set(i, i, q*e.v.At(i-1, i-1)/(1.0+rates.v.At(i-1, i-1)))
		for j := 1; j < i; j++ {
			up := q * e.v.At(i-1, j-1) / (1.0 + rates.v.At(i-1, j-1))
			down := (1.0 - q) * e.v.At(i-1, j) / (1.0 + rates.v.At(i-1, j))
			e.v.Set(i, j, up+down)
		}
	}
	return e, nil
}

// Elementary runs the forward recursion under the symmetric measure q = 1/2,
// the convention used throughout the pricing routines.
func Elementary(rates *Lattice) (*Lattice, error) {
	return ElementaryQ(rates, 0.5)
}

// ZCB prices a zero-coupon bond with the given face value maturing at step k
// by summing the elementary prices across level k.
func ZCB(elem *Lattice, k int, face float64) (float64, error) {
	if elem == nil {
		return 0, fmt.Errorf("%w: nil elementary lattice", ErrInvalidArgument)
	}
	if k < 0 || k > elem.steps {
		return 0, fmt.Errorf("%w: maturity %d outside lattice with %d steps", ErrInvalidArgument, k, elem.steps)
	}
	return face * floats.Sum(elem.Level(k)), nil
}

// Spot converts a zero-coupon bond price into the annually compounded spot
// rate for maturity k, as a decimal: price = face / (1+s)^k. A non-positive
// price has no finite yield and reports ErrNumericalDegeneracy.
func Spot(price float64, k int, face float64) (float64, error) {
	if k < 1 {
		return 0, fmt.Errorf("%w: maturity must be at least 1, got %d", ErrInvalidArgument, k)
	}
	if face <= 0.0 {
		return 0, fmt.Errorf("%w: face must be positive, got %v", ErrInvalidArgument, face)
	}
	if price <= 0.0 {
		return 0, fmt.Errorf("%w: bond price %v is not positive", ErrNumericalDegeneracy, price)
	}
	return math.Pow(face/price, 1.0/float64(k)) - 1.0, nil
}

// SpotCurve strips the full zero curve out of an elementary-price lattice:
// unit ZCB prices and spot rates in percent for maturities 1..elem.Steps().
func SpotCurve(elem *Lattice) (prices, spots []float64, err error) {
	if elem == nil {
		return nil, nil, fmt.Errorf("%w: nil elementary lattice", ErrInvalidArgument)
	}
	n := elem.steps
	if n < 1 {
		return nil, nil, fmt.Errorf("%w: lattice has no maturities to strip", ErrInvalidArgument)
	}
	prices = make([]float64, n)
	spots = make([]float64, n)
	for k := 1; k <= n; k++ {
		p, err := ZCB(elem, k, 1.0)
		if err != nil {
			return nil, nil, err
		}
		s, err := Spot(p, k, 1.0)
		if err != nil {
			return nil, nil, err
		}
		prices[k-1] = p
		spots[k-1] = s * 100.0
	}
	return prices, spots, nil
}

/*
TermStructure builds the multiplicative short-rate lattice with root rate r0
(in percent) and factors u, d, and strips the implied term structure for
maturities 1..n.

Args:

	r0: initial short rate in percent
	n: longest maturity in periods, at least 1
	u, d: per-step factors of the rate lattice

Returns unit zero-coupon bond prices and spot rates in percent, both indexed
by maturity-1.
*/
func TermStructure(r0 float64, n int, u, d float64) (prices, spots []float64, err error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("%w: need at least one period, got %d", ErrInvalidArgument, n)
	}
	rates, err := New(r0/100.0, n-1, u, d)
	if err != nil {
		return nil, nil, err
	}
	elem, err := Elementary(rates)
	if err != nil {
		return nil, nil, err
	}
	return SpotCurve(elem)
}
