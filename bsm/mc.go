package bsm

import (
	"fmt"
	"math"
	"runtime"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/banachtech/binomial/lattice"
	"github.com/banachtech/binomial/pricer"
)

/*
MC prices a European option by Monte Carlo over the lognormal terminal
price, sampling S_T = s*exp((r-sigma^2/2)t + sigma*sqrt(t)*Z).

Args:

	s, k, t, r, sigma: as in Price
	typ: Call or Put
	iters: number of sample paths, at least 2

Sampling fans out over one batch per CPU, each with its own source; the
discounted payoffs are reduced to the estimate and its standard error.
*/
func MC(s, k, t, r, sigma float64, typ pricer.OptionType, iters int) (price, stderr float64, err error) {
	if err := checkArgs(s, k, t, sigma); err != nil {
		return 0, 0, err
	}
	if iters < 2 {
		return 0, 0, fmt.Errorf("%w: need at least two samples, got %d", lattice.ErrInvalidArgument, iters)
	}
	var intrinsic func(x float64) float64
	switch typ {
	case pricer.Call:
		intrinsic = func(x float64) float64 { return math.Max(0.0, x-k) }
	case pricer.Put:
		intrinsic = func(x float64) float64 { return math.Max(0.0, k-x) }
	default:
		return 0, 0, fmt.Errorf("%w: unknown option type %q", lattice.ErrInvalidArgument, typ)
	}

	drift := (r - 0.5*math.Pow(sigma, 2)) * t
	vol := sigma * math.Sqrt(t)
	disc := math.Exp(-r * t)

	workers := runtime.NumCPU()
	if workers > iters {
		workers = iters
	}
	out := make(chan []float64, workers)
	seed := uint64(time.Now().UnixNano())
	for w := 0; w < workers; w++ {
		n := iters / workers
		if w < iters%workers {
			n++
		}
		go func(n int, seed uint64) {
			z := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
			vals := make([]float64, n)
			for i := range vals {
				st := s * math.Exp(drift+vol*z.Rand())
				vals[i] = disc * intrinsic(st)
			}
			out <- vals
		}(n, seed+uint64(w))
	}
	samples := make([]float64, 0, iters)
	for w := 0; w < workers; w++ {
		samples = append(samples, <-out...)
	}
	mean, std := stat.MeanStdDev(samples, nil)
	return mean, std / math.Sqrt(float64(len(samples))), nil
}
