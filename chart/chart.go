// Package chart renders term structure curves as line plots.
package chart

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/banachtech/binomial/lattice"
)

const (
	width  = 8 * vg.Inch
	height = 6 * vg.Inch
)

// points maps a curve to XY pairs with maturities 1..n on the x axis.
func points(curve []float64) plotter.XYs {
	pts := make(plotter.XYs, len(curve))
	for i := range pts {
		pts[i].X = float64(i + 1)
		pts[i].Y = curve[i]
	}
	return pts
}

// TermStructure draws a spot rate curve in percent against maturity.
func TermStructure(spotsPct []float64, title string) (*plot.Plot, error) {
	if len(spotsPct) == 0 {
		return nil, fmt.Errorf("%w: empty curve", lattice.ErrInvalidArgument)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Maturity (periods)"
	p.Y.Label.Text = "Spot rate (%)"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(points(spotsPct))
	if err != nil {
		return nil, err
	}
	line.Color = color.RGBA{B: 255, A: 255}
	p.Add(line)

	return p, nil
}

// CalibrationFit overlays the fitted model curve on the market curve.
func CalibrationFit(marketPct, fittedPct []float64) (*plot.Plot, error) {
	if len(marketPct) == 0 || len(marketPct) != len(fittedPct) {
		return nil, fmt.Errorf("%w: market and fitted curves must have matching lengths", lattice.ErrInvalidArgument)
	}

	p := plot.New()
	p.Title.Text = "Calibration Fit"
	p.X.Label.Text = "Maturity (periods)"
	p.Y.Label.Text = "Spot rate (%)"
	p.Add(plotter.NewGrid())

	market, err := plotter.NewLine(points(marketPct))
	if err != nil {
		return nil, err
	}
	market.Color = color.RGBA{G: 255, A: 255}

	fitted, err := plotter.NewLine(points(fittedPct))
	if err != nil {
		return nil, err
	}
	fitted.Color = plotutil.Color(6)
	fitted.Dashes = plotutil.Dashes(1)

	p.Add(market, fitted)
	p.Legend.Add("market", market)
	p.Legend.Add("fitted", fitted)
	p.Legend.Top = true

	return p, nil
}

// PNG renders the plot to PNG bytes.
func PNG(p *plot.Plot) ([]byte, error) {
	w, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the plot to a PNG file.
func Save(p *plot.Plot, path string) error {
	return p.Save(width, height, path)
}
