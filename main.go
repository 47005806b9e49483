package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/leekchan/accounting"
	"github.com/schollz/progressbar/v3"

	"github.com/banachtech/binomial/api"
	"github.com/banachtech/binomial/bdt"
	"github.com/banachtech/binomial/bsm"
	"github.com/banachtech/binomial/chart"
	"github.com/banachtech/binomial/config"
	db "github.com/banachtech/binomial/db/sqlc"
	"github.com/banachtech/binomial/lattice"
	"github.com/banachtech/binomial/pricer"
)

// marketCurve is the sample spot curve used by the demo, in percent.
var marketCurve = []float64{7.3, 7.62, 8.10, 8.45, 9.2, 9.64, 10.12, 10.45, 10.75, 11.22, 11.55, 11.92, 12.20, 12.32}

func main() {
	demo := flag.Bool("demo", false, "run the pricing showcase instead of the server")
	flag.Parse()

	if *demo {
		if err := runDemo(); err != nil {
			log.Fatal("demo failed: ", err)
		}
		return
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal("cannot load config: ", err)
	}

	conn, err := db.ConnectDB(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		log.Fatal("cannot connect to db: ", err)
	}

	store := db.NewStore(conn)
	server := api.NewServer(store)

	if err := server.Start(cfg.ServerAddress); err != nil {
		log.Fatal("cannot start server: ", err)
	}
}

func runDemo() error {
	ac := accounting.Accounting{Symbol: "$", Precision: 2}

	put, err := pricer.Option(3, 0.01, 100.0, 100.0, 1.07, 1.0/1.07, pricer.Put, pricer.American)
	if err != nil {
		return err
	}
	swap, err := pricer.Swap(1e6, 5.0, 6.0, 10, 1.25, 0.9)
	if err != nil {
		return err
	}
	swaption, err := pricer.Swaption(0.0, 5.0, 6.0, 3, 6, 1.25, 0.9)
	if err != nil {
		return err
	}

	fmt.Println("American put, 3 periods:      ", ac.FormatMoney(put))
	fmt.Println("Payer swap on $1m notional:   ", ac.FormatMoney(swap))
	fmt.Println("3-into-6 swaption, $1m:       ", ac.FormatMoney(1e6*swaption))

	call, err := bsm.Price(100.0, 100.0, 1.0, 0.05, 0.2, pricer.Call)
	if err != nil {
		return err
	}
	mcCall, se, err := bsm.MC(100.0, 100.0, 1.0, 0.05, 0.2, pricer.Call, 200000)
	if err != nil {
		return err
	}
	fmt.Printf("BSM call %s, MC %s (se %.4f)\n", ac.FormatMoney(call), ac.FormatMoney(mcCall), se)

	// Fit the lattice drifts to the sample curve, restarting from the
	// previous terminal vector each pass.
	const runs = 4
	bar := progressbar.Default(int64(runs), "calibrating")
	var (
		out   bdt.Result
		guess []float64
	)
	for i := 0; i < runs; i++ {
		opts := []bdt.Option{bdt.WithRestarts(0)}
		if guess != nil {
			opts = append(opts, bdt.WithInitialGuess(guess))
		}
		out, err = bdt.Calibrate(marketCurve, 0.005, opts...)
		if err != nil && !errors.Is(err, lattice.ErrCalibrationNonConvergence) {
			return err
		}
		guess = out.Drifts
		bar.Add(1)
	}

	fmt.Printf("converged=%v sse=%.3e evaluations=%d\n", out.Converged, out.SSE, out.Evaluations)
	for i := range out.Drifts {
		fmt.Printf("period %2d: market %6.2f%%  fitted %6.2f%%  drift %7.4f\n",
			i+1, marketCurve[i], out.Fitted[i], out.Drifts[i])
	}

	_, spots, err := lattice.TermStructure(6.0, 6, 1.25, 0.9)
	if err != nil {
		return err
	}
	tp, err := chart.TermStructure(spots, "Term Structure")
	if err != nil {
		return err
	}
	if err := chart.Save(tp, "term_structure.png"); err != nil {
		return err
	}

	fp, err := chart.CalibrationFit(marketCurve, out.Fitted)
	if err != nil {
		return err
	}
	if err := chart.Save(fp, "calibration_fit.png"); err != nil {
		return err
	}

	fmt.Println("wrote term_structure.png and calibration_fit.png")
	return nil
}
