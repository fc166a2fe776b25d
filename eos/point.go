// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

// Departure holds the enthalpy and entropy departures of one phase
type Departure struct {
	Hdep float64 // enthalpy departure [J/mol]
	Sdep float64 // entropy departure [J/(mol·K)]
}

// Point holds one fully resolved thermodynamic point. Deps and LnPhis run
// parallel to Phases.All, vapor-first.
type Point struct {
	T, P   float64 // conditions [K], [Pa]
	A, B   float64 // dimensionless EOS parameters
	Phases PhaseSet
	Deps   []Departure
	LnPhis []float64
}

// Eval resolves the thermodynamic point at (T, P): dimensionless
// parameters, cubic roots, phase classification, departure functions and
// fugacity coefficients, all in vapor-first order.
func Eval(f Family, T, P float64) (*Point, error) {
	if T <= 0 {
		return nil, ErrDomain("", "temperature must be positive; got T=%g", T)
	}
	if P <= 0 {
		return nil, ErrDomain("", "pressure must be positive; got P=%g", P)
	}
	A, B := f.AB(T, P)
	zs, err := PhysicalRoots(f, A, B)
	if err != nil {
		return nil, err
	}
	ps, err := ResolvePhases(zs)
	if err != nil {
		return nil, err
	}
	pt := &Point{T: T, P: P, A: A, B: B, Phases: ps}
	pt.Deps = make([]Departure, len(ps.All))
	pt.LnPhis = make([]float64, len(ps.All))
	for i, ph := range ps.All {
		h, s := f.Departure(T, ph.Z, A, B)
		pt.Deps[i] = Departure{Hdep: h, Sdep: s}
		pt.LnPhis[i] = f.LnPhi(ph.Z, A, B)
	}
	return pt, nil
}

// V returns the molar volume v = Z·R·T/P [m³/mol] of the i-th phase
func (o *Point) V(i int) float64 {
	return o.Phases.All[i].Z * Rgas * o.T / o.P
}
