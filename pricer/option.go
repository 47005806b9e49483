// Package pricer implements backward-induction valuation of options, swaps
// and swaptions over recombining binomial lattices. Equity options discount
// at a constant per-period rate with the no-arbitrage risk-neutral
// probability; interest-rate instruments discount at the stochastic node
// short rate under the symmetric measure q = 1/2.
package pricer

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/banachtech/binomial/lattice"
)

// OptionType selects the payoff of an equity option.
type OptionType string

// ExerciseStyle selects when an option may be exercised.
type ExerciseStyle string

const (
	Call OptionType = "call"
	Put  OptionType = "put"

	European ExerciseStyle = "european"
	American ExerciseStyle = "american"
)

// payoff resolves the option type to its intrinsic-value function once per
// pricing call, so the induction loop carries no tag dispatch.
func payoff(typ OptionType, strike float64) (func(s float64) float64, error) {
	switch typ {
	case Call:
		return func(s float64) float64 { return math.Max(0.0, s-strike) }, nil
	case Put:
		return func(s float64) float64 { return math.Max(0.0, strike-s) }, nil
	default:
		return nil, fmt.Errorf("%w: unknown option type %q", lattice.ErrInvalidArgument, typ)
	}
}

/*
Option prices a European or American equity option on a Cox-Ross-Rubinstein
lattice.

Args:

	n: number of periods to expiry
	rf: per-period risk-free rate as a decimal (0.01 for 1%)
	s0: price of the underlying at the root
	k: strike
	u, d: per-step factors of the underlying lattice
	typ: Call or Put
	style: European or American

The risk-neutral up probability is q = ((1+rf)-d)/(u-d); u = d makes the
denominator vanish and reports ErrDegenerateLattice. American nodes take the
larger of continuation and intrinsic value.
*/
func Option(n int, rf, s0, k, u, d float64, typ OptionType, style ExerciseStyle) (float64, error) {
	intrinsic, err := payoff(typ, k)
	if err != nil {
		return 0, err
	}
	if style != European && style != American {
		return 0, fmt.Errorf("%w: unknown exercise style %q", lattice.ErrInvalidArgument, style)
	}
	if rf <= -1.0 {
		return 0, fmt.Errorf("%w: risk-free rate %v makes discounting singular", lattice.ErrInvalidArgument, rf)
	}
	if u == d {
		return 0, fmt.Errorf("%w: u = d = %v leaves the risk-neutral probability undefined", lattice.ErrDegenerateLattice, u)
	}
	under, err := lattice.New(s0, n, u, d)
	if err != nil {
		return 0, err
	}

	q := ((1.0 + rf) - d) / (u - d)
	early := style == American

	v := mat.NewDense(n+1, n+1, nil)
	for j := 0; j <= n; j++ {
		v.Set(n, j, intrinsic(under.At(n, j)))
	}
	for i := n - 1; i >= 0; i-- {
		for j := 0; j <= i; j++ {
			cont := (q*v.At(i+1, j+1) + (1.0-q)*v.At(i+1, j)) / (1.0 + rf)
			if early {
				cont = math.Max(cont, intrinsic(under.At(i, j)))
			}
			v.Set(i, j, cont)
		}
	}
	return v.At(0, 0), nil
}
