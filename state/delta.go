// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"math"

	"github.com/cameronabrams/sandlercubics/eos"
)

// DeltaResult holds state-to-state property changes
type DeltaResult struct {
	Dh float64 // enthalpy change [J/mol]
	Ds float64 // entropy change [J/(mol·K)]
	Du float64 // internal energy change [J/mol]
}

// Delta computes the property changes from state 1 to state 2 of the same
// fluid: the departure difference plus the ideal-gas contribution
//   Δh = ∫Cp·dT + Hdep₂ - Hdep₁
//   Δs = ∫(Cp/T)·dT - R·ln(P₂/P₁) + Sdep₂ - Sdep₁
//   Δu = Δh - Δ(P·v) = Δh - R·(Z₂·T₂ - Z₁·T₁)
// Both states must be fully specified and single-phase; the heat capacity
// polynomial is taken from state 1.
func Delta(st1, st2 *State) (DeltaResult, error) {
	if !st1.hasCp {
		return DeltaResult{}, eos.ErrParameter("delta requires a heat capacity polynomial on state 1")
	}
	pt1, err := st1.Point()
	if err != nil {
		return DeltaResult{}, err
	}
	pt2, err := st2.Point()
	if err != nil {
		return DeltaResult{}, err
	}
	ph1, err := singlePhase(pt1)
	if err != nil {
		return DeltaResult{}, err
	}
	ph2, err := singlePhase(pt2)
	if err != nil {
		return DeltaResult{}, err
	}
	cp := st1.cp
	dh := cp.DeltaH(pt1.T, pt2.T) + pt2.Deps[0].Hdep - pt1.Deps[0].Hdep
	ds := cp.DeltaS(pt1.T, pt2.T) - eos.Rgas*math.Log(pt2.P/pt1.P) +
		pt2.Deps[0].Sdep - pt1.Deps[0].Sdep
	du := dh - eos.Rgas*(ph2.Z*pt2.T-ph1.Z*pt1.T)
	return DeltaResult{Dh: dh, Ds: ds, Du: du}, nil
}

// H computes the absolute enthalpy(ies) [J/mol] relative to an ideal-gas
// reference state, vapor-first
func (o *State) H(ref Reference) ([]float64, error) {
	if !o.hasCp {
		return nil, eos.ErrParameter("absolute enthalpy requires a heat capacity polynomial")
	}
	pt, err := o.Point()
	if err != nil {
		return nil, err
	}
	hig := o.cp.DeltaH(ref.T, pt.T)
	hs := make([]float64, len(pt.Deps))
	for i, d := range pt.Deps {
		hs[i] = hig + d.Hdep
	}
	return hs, nil
}

// S computes the absolute entropy(ies) [J/(mol·K)] relative to an ideal-gas
// reference state, vapor-first
func (o *State) S(ref Reference) ([]float64, error) {
	if !o.hasCp {
		return nil, eos.ErrParameter("absolute entropy requires a heat capacity polynomial")
	}
	pt, err := o.Point()
	if err != nil {
		return nil, err
	}
	sig := o.cp.DeltaS(ref.T, pt.T) - eos.Rgas*math.Log(pt.P/ref.P)
	ss := make([]float64, len(pt.Deps))
	for i, d := range pt.Deps {
		ss[i] = sig + d.Sdep
	}
	return ss, nil
}

// U computes the absolute internal energy(ies) [J/mol] relative to the same
// ideal-gas reference state as H, vapor-first: u = h - (Z·R·T - R·Tref)
func (o *State) U(ref Reference) ([]float64, error) {
	hs, err := o.H(ref)
	if err != nil {
		return nil, err
	}
	pt, _ := o.Point()
	us := make([]float64, len(hs))
	for i, ph := range pt.Phases.All {
		us[i] = hs[i] - eos.Rgas*(ph.Z*pt.T-ref.T)
	}
	return us, nil
}

// singlePhase returns the lone phase of a single-phase point
func singlePhase(pt *eos.Point) (eos.Phase, error) {
	if pt.Phases.Two() {
		return eos.Phase{}, eos.ErrPhase(eos.Fluid,
			"state at T=%g, P=%g is two-phase: the delta is ambiguous without a quality", pt.T, pt.P)
	}
	return pt.Phases.All[0], nil
}
