// Package bdt calibrates a Black-Derman-Toy short-rate lattice to a market
// spot-rate curve by least squares over the per-period drift parameters.
package bdt

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/banachtech/binomial/lattice"
)

// Convergence window of the function converger: the minimizer stops once the
// best objective value improves by less than the tolerance over this many
// iterations.
const convergeWindow = 100

type settings struct {
	guess    []float64
	tol      float64
	maxIter  int
	restarts int
}

// Option adjusts the calibration defaults.
type Option func(*settings)

// WithInitialGuess seeds the minimizer with the given drift vector (percent)
// instead of the uniform 5.0 start. Its length must match the market curve.
func WithInitialGuess(a []float64) Option {
	return func(s *settings) { s.guess = a }
}

// WithTolerance sets the absolute function-convergence tolerance.
func WithTolerance(tol float64) Option {
	return func(s *settings) { s.tol = tol }
}

// WithMaxIterations caps the major iterations of each minimizer run.
func WithMaxIterations(n int) Option {
	return func(s *settings) { s.maxIter = n }
}

// WithRestarts sets how many extra minimizer runs polish the fit, each
// starting from the previous run's terminal vector.
func WithRestarts(n int) Option {
	return func(s *settings) { s.restarts = n }
}

// Result carries the terminal state of a calibration, converged or not.
type Result struct {
	// Drifts are the fitted per-period parameters a, in percent.
	Drifts []float64
	// Fitted is the model spot curve implied by Drifts, in percent.
	Fitted []float64
	// SSE is the terminal sum of squared residuals, in percent squared.
	SSE float64
	// Converged reports whether the final minimizer run terminated on a
	// convergence status rather than a budget limit.
	Converged bool
	// Evaluations counts objective evaluations across all runs.
	Evaluations int
}

/*
Calibrate fits the drift vector of the lattice rate(i,j) = a[i]*exp(b*j)
so that its implied spot curve matches the market curve.

Args:

	curvePct: market spot rates in percent, one per maturity 1..n
	b: volatility parameter, held fixed
	opts: optional overrides; defaults are a uniform 5.0 initial guess,
	      1e-10 absolute tolerance, 50000 iterations per run and 1 restart

The objective is the sum of squared spot-rate residuals in percent. It
never mutates the trial vector or the market curve. Minimization is
Nelder-Mead; each restart re-runs it from the previous terminal vector.
On a budget-limited final run the terminal state is still returned,
together with ErrCalibrationNonConvergence.
*/
func Calibrate(curvePct []float64, b float64, opts ...Option) (Result, error) {
	cfg := settings{tol: 1e-10, maxIter: 50000, restarts: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	n := len(curvePct)
	if n == 0 {
		return Result{}, fmt.Errorf("%w: empty market curve", lattice.ErrInvalidArgument)
	}
	if cfg.guess != nil && len(cfg.guess) != n {
		return Result{}, fmt.Errorf("%w: initial guess has %d entries for a %d-point curve",
			lattice.ErrInvalidArgument, len(cfg.guess), n)
	}
	if cfg.tol <= 0.0 || cfg.maxIter < 1 || cfg.restarts < 0 {
		return Result{}, fmt.Errorf("%w: tolerance, iterations and restarts must be positive",
			lattice.ErrInvalidArgument)
	}

	x := make([]float64, n)
	if cfg.guess != nil {
		copy(x, cfg.guess)
	} else {
		for i := range x {
			x[i] = 5.0
		}
	}

	problem := optimize.Problem{
		Func: func(a []float64) float64 {
			spots, err := modelCurve(a, b)
			if err != nil {
				return math.Inf(1)
			}
			var sse float64
			for k := range curvePct {
				sse += math.Pow(spots[k]-curvePct[k], 2)
			}
			return sse
		},
	}

	var res Result
	var status optimize.Status
	for run := 0; run <= cfg.restarts; run++ {
		st := &optimize.Settings{
			Converger: &optimize.FunctionConverge{
				Absolute:   cfg.tol,
				Iterations: convergeWindow,
			},
			MajorIterations: cfg.maxIter,
		}
		out, err := optimize.Minimize(problem, x, st, &optimize.NelderMead{})
		if err != nil {
			return Result{}, fmt.Errorf("bdt: minimizer failed: %w", err)
		}
		x = out.X
		status = out.Status
		res.SSE = out.F
		res.Evaluations += out.FuncEvaluations
	}
	res.Drifts = x
	res.Converged = converged(status)

	fitted, err := modelCurve(x, b)
	if err != nil {
		return res, fmt.Errorf("bdt: fitted lattice does not price: %w", err)
	}
	res.Fitted = fitted

	if !res.Converged {
		return res, fmt.Errorf("%w: status %v after %d evaluations",
			lattice.ErrCalibrationNonConvergence, status, res.Evaluations)
	}
	return res, nil
}

// converged reports whether a minimizer status means convergence rather
// than an exhausted budget.
func converged(s optimize.Status) bool {
	switch s {
	case optimize.NotTerminated, optimize.Failure, optimize.IterationLimit,
		optimize.RuntimeLimit, optimize.FunctionEvaluationLimit:
		return false
	}
	return true
}

// modelCurve prices the spot curve implied by drift vector a (percent) and
// volatility b: short-rate lattice, elementary prices, then one ZCB and spot
// rate per maturity.
func modelCurve(a []float64, b float64) ([]float64, error) {
	rates, err := lattice.NewBDT(a, b)
	if err != nil {
		return nil, err
	}
	elem, err := lattice.Elementary(rates)
	if err != nil {
		return nil, err
	}
	_, spots, err := lattice.SpotCurve(elem)
	if err != nil {
		return nil, err
	}
	return spots, nil
}
