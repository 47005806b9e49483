// Package bsm prices European options under Black-Scholes-Merton, both in
// closed form and by Monte Carlo, and inverts the closed form for implied
// volatility. It serves as the continuous-time cross-check for the lattice
// pricers.
package bsm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/banachtech/binomial/lattice"
	"github.com/banachtech/binomial/pricer"
)

func checkArgs(s, k, t, sigma float64) error {
	if s <= 0.0 || k <= 0.0 {
		return fmt.Errorf("%w: spot and strike must be positive, got s=%v k=%v", lattice.ErrInvalidArgument, s, k)
	}
	if t <= 0.0 {
		return fmt.Errorf("%w: expiry must be positive, got %v", lattice.ErrInvalidArgument, t)
	}
	if sigma <= 0.0 {
		return fmt.Errorf("%w: volatility must be positive, got %v", lattice.ErrInvalidArgument, sigma)
	}
	return nil
}

// Price returns the Black-Scholes-Merton value of a European option. Rates
// and volatility are annualized decimals, t is in years.
func Price(s, k, t, r, sigma float64, typ pricer.OptionType) (float64, error) {
	if err := checkArgs(s, k, t, sigma); err != nil {
		return 0, err
	}
	dist := distuv.Normal{Mu: 0, Sigma: 1}
	d1 := (math.Log(s/k) + (r+0.5*math.Pow(sigma, 2))*t) / (sigma * math.Sqrt(t))
	d2 := d1 - sigma*math.Sqrt(t)
	switch typ {
	case pricer.Call:
		return s*dist.CDF(d1) - k*math.Exp(-r*t)*dist.CDF(d2), nil
	case pricer.Put:
		return k*math.Exp(-r*t)*dist.CDF(-d2) - s*dist.CDF(-d1), nil
	default:
		return 0, fmt.Errorf("%w: unknown option type %q", lattice.ErrInvalidArgument, typ)
	}
}

// ImpliedVol inverts Price for the volatility that reproduces the observed
// option price. The fit runs over log-volatility so the minimizer can roam
// the whole real line while sigma stays positive.
func ImpliedVol(price, s, k, t, r float64, typ pricer.OptionType) (float64, error) {
	if price <= 0.0 {
		return 0, fmt.Errorf("%w: option price must be positive, got %v", lattice.ErrInvalidArgument, price)
	}
	if typ != pricer.Call && typ != pricer.Put {
		return 0, fmt.Errorf("%w: unknown option type %q", lattice.ErrInvalidArgument, typ)
	}
	if err := checkArgs(s, k, t, 1.0); err != nil {
		return 0, err
	}
	problem := optimize.Problem{
		Func: func(par []float64) float64 {
			sigma := math.Exp(par[0])
			bs, err := Price(s, k, t, r, sigma, typ)
			if err != nil {
				return math.Inf(1)
			}
			return math.Pow(price-bs, 2)
		},
	}
	res, err := optimize.Minimize(problem, []float64{math.Log(0.5)}, nil, &optimize.NelderMead{})
	if err != nil {
		return 0, fmt.Errorf("bsm: implied vol fit failed: %w", err)
	}
	sigma := math.Exp(res.X[0])
	check, err := Price(s, k, t, r, sigma, typ)
	if err != nil {
		return 0, err
	}
	if math.Abs(check-price) > 1e-4*math.Max(1.0, price) {
		return sigma, fmt.Errorf("%w: no volatility reproduces price %v", lattice.ErrCalibrationNonConvergence, price)
	}
	return sigma, nil
}
