// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package state implements the thermodynamic state orchestrator: it owns an
// equation-of-state family and the current (T, P), lazily computes and
// caches roots, phases and departures, and invalidates the cache on any
// mutation. A State is not safe for concurrent mutation; use one State per
// goroutine or hold external synchronisation.
package state

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cameronabrams/sandlercubics/eos"
)

// Status is the specification state machine position
type Status int

const (
	// Unset means no fluid parameters have been given
	Unset Status = iota

	// ParametersSet means the fluid is defined but neither T nor P is
	ParametersSet

	// PartiallySpecified means exactly one of T, P is set
	PartiallySpecified

	// FullySpecified means T and P are both set; properties are readable
	FullySpecified
)

// String returns the status label
func (s Status) String() string {
	switch s {
	case ParametersSet:
		return "parameters-set"
	case PartiallySpecified:
		return "partially-specified"
	case FullySpecified:
		return "fully-specified"
	}
	return "unset"
}

// State orchestrates property calculations for one pure fluid
type State struct {

	// fluid definition
	family eos.Family
	cp     eos.CpPoly
	hasCp  bool

	// independent variables
	T, P       float64
	hasT, hasP bool

	// lazy cache; cleared on any mutation
	pt *eos.Point
}

// New returns a state with the named equation-of-state family initialised
// from the given parameters (Tc, Pc, omega)
func New(familyName string, prms utl.Params) (*State, error) {
	o := new(State)
	if err := o.SetFluid(familyName, prms); err != nil {
		return nil, err
	}
	return o, nil
}

// SetFluid (re)defines the fluid. The state machine drops back to
// ParametersSet: T and P must be given again and all caches are cleared.
func (o *State) SetFluid(familyName string, prms utl.Params) error {
	f, err := eos.New(familyName)
	if err != nil {
		return err
	}
	if err := f.Init(prms); err != nil {
		return err
	}
	o.family = f
	o.hasT, o.hasP = false, false
	o.hasCp = false
	o.pt = nil
	return nil
}

// SetCp attaches the ideal-gas heat capacity polynomial, needed for
// absolute properties and state-to-state deltas
func (o *State) SetCp(cp eos.CpPoly) {
	o.cp = cp
	o.hasCp = true
}

// SetT sets the temperature [K] and invalidates cached results
func (o *State) SetT(T float64) error {
	if o.family == nil {
		return eos.ErrDomain("", "fluid parameters must be set before the temperature")
	}
	if T <= 0 {
		return eos.ErrDomain("", "temperature must be positive; got T=%g", T)
	}
	o.T, o.hasT = T, true
	o.pt = nil
	return nil
}

// SetP sets the pressure [Pa] and invalidates cached results
func (o *State) SetP(P float64) error {
	if o.family == nil {
		return eos.ErrDomain("", "fluid parameters must be set before the pressure")
	}
	if P <= 0 {
		return eos.ErrDomain("", "pressure must be positive; got P=%g", P)
	}
	o.P, o.hasP = P, true
	o.pt = nil
	return nil
}

// Family returns the equation-of-state family (nil while Unset)
func (o *State) Family() eos.Family { return o.family }

// T0 returns the current temperature and whether it is set
func (o *State) T0() (float64, bool) { return o.T, o.hasT }

// P0 returns the current pressure and whether it is set
func (o *State) P0() (float64, bool) { return o.P, o.hasP }

// Status reports the specification state machine position
func (o *State) Status() Status {
	switch {
	case o.family == nil:
		return Unset
	case o.hasT && o.hasP:
		return FullySpecified
	case o.hasT || o.hasP:
		return PartiallySpecified
	}
	return ParametersSet
}

// Point returns the resolved point at the current (T, P), computing it on
// first access and caching it until the next mutation
func (o *State) Point() (*eos.Point, error) {
	if o.pt != nil {
		return o.pt, nil
	}
	switch o.Status() {
	case Unset:
		return nil, eos.ErrDomain("", "no fluid parameters set")
	case ParametersSet:
		return nil, eos.ErrDomain("T", "state is under-specified: temperature and pressure are required")
	case PartiallySpecified:
		if o.hasT {
			return nil, eos.ErrDomain("P", "state is under-specified: pressure is required")
		}
		return nil, eos.ErrDomain("T", "state is under-specified: temperature is required")
	}
	pt, err := eos.Eval(o.family, o.T, o.P)
	if err != nil {
		return nil, err
	}
	o.pt = pt
	return pt, nil
}

// TwoPhase tells whether both vapor and liquid phases exist at (T, P)
func (o *State) TwoPhase() (bool, error) {
	pt, err := o.Point()
	if err != nil {
		return false, err
	}
	return pt.Phases.Two(), nil
}

// Z returns the compressibility factor(s), vapor-first
func (o *State) Z() ([]float64, error) {
	pt, err := o.Point()
	if err != nil {
		return nil, err
	}
	zs := make([]float64, len(pt.Phases.All))
	for i, ph := range pt.Phases.All {
		zs[i] = ph.Z
	}
	return zs, nil
}

// V returns the molar volume(s) [m³/mol], vapor-first
func (o *State) V() ([]float64, error) {
	pt, err := o.Point()
	if err != nil {
		return nil, err
	}
	vs := make([]float64, len(pt.Phases.All))
	for i := range pt.Phases.All {
		vs[i] = pt.V(i)
	}
	return vs, nil
}

// Hdep returns the enthalpy departure(s) [J/mol], vapor-first
func (o *State) Hdep() ([]float64, error) {
	pt, err := o.Point()
	if err != nil {
		return nil, err
	}
	hs := make([]float64, len(pt.Deps))
	for i, d := range pt.Deps {
		hs[i] = d.Hdep
	}
	return hs, nil
}

// Sdep returns the entropy departure(s) [J/(mol·K)], vapor-first
func (o *State) Sdep() ([]float64, error) {
	pt, err := o.Point()
	if err != nil {
		return nil, err
	}
	ss := make([]float64, len(pt.Deps))
	for i, d := range pt.Deps {
		ss[i] = d.Sdep
	}
	return ss, nil
}

// Phi returns the fugacity coefficient(s), vapor-first
func (o *State) Phi() ([]float64, error) {
	pt, err := o.Point()
	if err != nil {
		return nil, err
	}
	phis := make([]float64, len(pt.LnPhis))
	for i, lnφ := range pt.LnPhis {
		phis[i] = math.Exp(lnφ)
	}
	return phis, nil
}

// SatP solves for the saturation pressure at the current temperature
func (o *State) SatP() (eos.SatResult, error) {
	if o.family == nil {
		return eos.SatResult{}, eos.ErrDomain("", "no fluid parameters set")
	}
	if !o.hasT {
		return eos.SatResult{}, eos.ErrDomain("T", "saturation pressure requires the temperature")
	}
	return eos.SaturationP(o.family, o.T)
}

// SatT solves for the saturation temperature at the current pressure
func (o *State) SatT() (eos.SatResult, error) {
	if o.family == nil {
		return eos.SatResult{}, eos.ErrDomain("", "no fluid parameters set")
	}
	if !o.hasP {
		return eos.SatResult{}, eos.ErrDomain("P", "saturation temperature requires the pressure")
	}
	return eos.SaturationT(o.family, o.P)
}

// Report builds a plain-text property report at the current conditions
func (o *State) Report() (string, error) {
	pt, err := o.Point()
	if err != nil {
		return "", err
	}
	l := io.Sf("eos   : %s\n", o.family.Name())
	l += io.Sf("T     : %g K\n", o.T)
	l += io.Sf("P     : %g Pa\n", o.P)
	for i, ph := range pt.Phases.All {
		l += io.Sf("phase : %s\n", ph.Kind)
		l += io.Sf("  Z    = %.6f\n", ph.Z)
		l += io.Sf("  v    = %.8g m³/mol\n", pt.V(i))
		l += io.Sf("  Hdep = %.6g J/mol\n", pt.Deps[i].Hdep)
		l += io.Sf("  Sdep = %.6g J/mol·K\n", pt.Deps[i].Sdep)
	}
	return l, nil
}
