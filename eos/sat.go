// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"
)

// saturation solver settings. The tolerance applies to the residual
// ln(φ_vapor/φ_liquid); the iteration ceilings bound the Newton loop and
// the pre-walk into the two-phase region. No wall-clock timeout: cost is
// bounded by iteration count alone.
const (
	SatTol    = 1e-8
	SatMaxIt  = 50
	walkMaxIt = 50
)

// SatResult holds a converged saturation state
type SatResult struct {
	T    float64 // saturation temperature [K]
	P    float64 // saturation pressure [Pa]
	Hvap float64 // enthalpy of vaporisation Hdep_v - Hdep_l [J/mol]
	Svap float64 // entropy of vaporisation Sdep_v - Sdep_l [J/(mol·K)]
	It   int     // Newton iterations spent
	Pt   *Point  // the converged two-phase point (vapor-first)
}

// SaturationP finds the saturation pressure at the given temperature by
// equalising the vapor and liquid fugacity coefficients. The first iterate
// comes from Wilson's vapor pressure correlation
//   ln(Psat/Pc) = 5.373·(1+ω)·(1 - Tc/T)
func SaturationP(f Family, T float64) (SatResult, error) {
	Tc, Pc, ω := f.Critical()
	if Tc <= 0 || Pc <= 0 {
		return SatResult{}, ErrParameter("%s: no two-phase region without critical constants", f.Name())
	}
	if T <= 0 {
		return SatResult{}, ErrDomain("", "temperature must be positive; got T=%g", T)
	}
	if T >= Tc {
		return SatResult{}, ErrDomain("", "no saturation above the critical temperature: T=%g ≥ Tc=%g", T, Tc)
	}
	guess := Pc * math.Exp(5.373*(1.0+ω)*(1.0-Tc/T))
	if guess >= Pc {
		guess = 0.99 * Pc
	}
	eval := func(P float64) (*Point, error) { return Eval(f, T, P) }
	adjust := func(P float64, vaporLike bool) float64 {
		// a lone vapor-like root means the trial pressure is below the
		// two-phase band; a liquid-like root means it is above
		if vaporLike {
			return P * 1.25
		}
		return P * 0.8
	}
	res, err := solveSat(eval, adjust, guess, Pc)
	if err != nil {
		return res, err
	}
	res.T = T
	res.P = res.Pt.P
	return res, nil
}

// SaturationT finds the saturation temperature at the given pressure. The
// first iterate inverts Wilson's correlation.
func SaturationT(f Family, P float64) (SatResult, error) {
	Tc, Pc, ω := f.Critical()
	if Tc <= 0 || Pc <= 0 {
		return SatResult{}, ErrParameter("%s: no two-phase region without critical constants", f.Name())
	}
	if P <= 0 {
		return SatResult{}, ErrDomain("", "pressure must be positive; got P=%g", P)
	}
	if P >= Pc {
		return SatResult{}, ErrDomain("", "no saturation above the critical pressure: P=%g ≥ Pc=%g", P, Pc)
	}
	c := 5.373 * (1.0 + ω)
	guess := Tc * c / (c - math.Log(P/Pc))
	if guess >= Tc {
		guess = 0.99 * Tc
	}
	eval := func(T float64) (*Point, error) { return Eval(f, T, P) }
	adjust := func(T float64, vaporLike bool) float64 {
		// a lone vapor-like root means the trial temperature is above the
		// two-phase band; a liquid-like root means it is below
		if vaporLike {
			return T * 0.97
		}
		return T * 1.03
	}
	res, err := solveSat(eval, adjust, guess, Tc)
	if err != nil {
		return res, err
	}
	res.T = res.Pt.T
	res.P = P
	return res, nil
}

// vaporLike tells whether a lone root looks like a vapor root. The critical
// compressibility of the cubic families lies near 0.3; well inside either
// single-phase band the distinction is sharp.
func vaporLike(pt *Point) bool {
	return pt.Phases.All[0].Z > 0.3
}

// walkTwoPhase nudges the trial value until the cubic yields both phases
func walkTwoPhase(eval func(x float64) (*Point, error), adjust func(x float64, vaporLike bool) float64, x0, xmax float64) (x float64, pt *Point, err error) {
	x = x0
	for it := 0; it < walkMaxIt; it++ {
		pt, err = evalPos(eval, x)
		if err != nil {
			return
		}
		if pt.Phases.Two() {
			return
		}
		xnext := adjust(x, vaporLike(pt))
		if xnext >= xmax {
			xnext = 0.5 * (x + xmax)
		}
		x = xnext
	}
	return 0, nil, ErrConvergence(walkMaxIt, "could not locate the two-phase region from initial guess %g (near-critical conditions?)", x0)
}

// evalPos wraps eval, rejecting non-positive trial values
func evalPos(eval func(x float64) (*Point, error), x float64) (*Point, error) {
	if x <= 0 {
		return nil, ErrDomain("", "trial value fell to %g during saturation solve", x)
	}
	return eval(x)
}

// solveSat runs bounded Newton iteration on the residual
//   g = ln φ_vapor - ln φ_liquid
// with a numerical derivative and a bisection safeguard once the residual
// has been bracketed. A failed solve returns no partial result.
func solveSat(eval func(x float64) (*Point, error), adjust func(x float64, vaporLike bool) float64, x0, xmax float64) (res SatResult, err error) {

	// move the first iterate into the two-phase region
	x, pt, err := walkTwoPhase(eval, adjust, x0, xmax)
	if err != nil {
		return SatResult{}, err
	}

	residual := func(p *Point) float64 { return p.LnPhis[0] - p.LnPhis[1] }

	var xneg, xpos float64 // bracket endpoints by residual sign
	haveNeg, havePos := false, false
	bracketed := func() bool { return haveNeg && havePos }
	bisect := func() float64 { return 0.5 * (xneg + xpos) }

	for it := 1; it <= SatMaxIt; it++ {

		// re-evaluate unless the walk/previous step already did
		if pt == nil {
			var e error
			pt, e = evalPos(eval, x)
			if e != nil || !pt.Phases.Two() {
				// stepped out of the two-phase region
				if bracketed() {
					x, pt = bisect(), nil
					continue
				}
				return SatResult{}, ErrConvergence(it, "saturation iteration left the two-phase region at trial value %g", x)
			}
		}
		g := residual(pt)
		if math.Abs(g) < SatTol {
			res = SatResult{
				Hvap: pt.Deps[0].Hdep - pt.Deps[1].Hdep,
				Svap: pt.Deps[0].Sdep - pt.Deps[1].Sdep,
				It:   it,
				Pt:   pt,
			}
			return res, nil
		}
		if g < 0 {
			xneg, haveNeg = x, true
		} else {
			xpos, havePos = x, true
		}

		// numerical derivative
		h := x * 1e-6
		pt2, e2 := evalPos(eval, x+h)
		var xnew float64
		ok := e2 == nil && pt2.Phases.Two()
		if ok {
			dg := (residual(pt2) - g) / h
			if dg != 0 {
				xnew = x - g/dg
			} else {
				ok = false
			}
		}
		if !ok {
			if !bracketed() {
				return SatResult{}, ErrConvergence(it, "residual derivative vanished before the saturation point was bracketed (trial value %g)", x)
			}
			xnew = bisect()
		}
		// keep Newton inside an established bracket
		if bracketed() {
			lo, hi := math.Min(xneg, xpos), math.Max(xneg, xpos)
			if xnew <= lo || xnew >= hi {
				xnew = bisect()
			}
		}
		if xnew <= 0 {
			xnew = 0.5 * x
		}
		x, pt = xnew, nil
	}
	return SatResult{}, ErrConvergence(SatMaxIt, "saturation solve did not converge within %d iterations", SatMaxIt)
}
