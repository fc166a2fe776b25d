// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out implements presentation surfaces: P-v isotherm and
// saturation-dome plots, and property tables in LaTeX and XLSX form.
package out

import (
	"math"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/cameronabrams/sandlercubics/eos"
)

// PlotIsotherms draws P(v) isotherms of the family's pressure-explicit form
// on a log-v axis and saves the figure (format follows the file extension).
// Points where the pressure-explicit form blows up (v inside the co-volume)
// are skipped.
func PlotIsotherms(f eos.Family, Ts []float64, vmin, vmax float64, npts int, fname string) error {
	p := plot.New()
	p.Title.Text = io.Sf("%s isotherms", f.Name())
	p.X.Label.Text = "v [m³/mol]"
	p.Y.Label.Text = "P [Pa]"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}

	args := make([]interface{}, 0, 2*len(Ts))
	for _, T := range Ts {
		pts := make(plotter.XYs, 0, npts)
		dlv := (math.Log10(vmax) - math.Log10(vmin)) / float64(npts-1)
		for i := 0; i < npts; i++ {
			v := math.Pow(10, math.Log10(vmin)+float64(i)*dlv)
			P := f.Pressure(T, v)
			if math.IsNaN(P) || math.IsInf(P, 0) || P <= 0 {
				continue
			}
			pts = append(pts, plotter.XY{X: v, Y: P})
		}
		args = append(args, io.Sf("T=%g K", T), pts)
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, fname)
}

// PlotDome draws the saturation curve Psat(T) from Tmin up to just below
// the critical temperature. Temperatures where the saturation solve fails
// (the near-critical root merge) are skipped.
func PlotDome(f eos.Family, Tmin float64, npts int, fname string) error {
	Tc, Pc, _ := f.Critical()
	if Tc <= 0 {
		return eos.ErrParameter("%s: no saturation dome without critical constants", f.Name())
	}
	p := plot.New()
	p.Title.Text = io.Sf("%s saturation curve", f.Name())
	p.X.Label.Text = "T [K]"
	p.Y.Label.Text = "Psat [Pa]"

	dT := (0.99*Tc - Tmin) / float64(npts-1)
	pts := make(plotter.XYs, 0, npts)
	for i := 0; i < npts; i++ {
		T := Tmin + float64(i)*dT
		res, err := eos.SaturationP(f, T)
		if err != nil {
			continue
		}
		pts = append(pts, plotter.XY{X: T, Y: res.P})
	}
	if len(pts) < 2 {
		return eos.ErrConvergence(0, "saturation solve failed over the whole range [%g, %g]", Tmin, 0.99*Tc)
	}
	pts = append(pts, plotter.XY{X: Tc, Y: Pc}) // the dome closes at the critical point
	if err := plotutil.AddLines(p, "saturation", pts); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, fname)
}
