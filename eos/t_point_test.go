// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// methanePR returns the Peng-Robinson family initialised for methane
func methanePR(tst *testing.T) Family {
	f, err := New("pr")
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	if err := f.Init(examplePrms()); err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	return f
}

func Test_point01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("point01. methane, supercritical single phase")

	// Sandler example: PR methane at T=400 K, P=0.5 MPa
	f := methanePR(tst)
	pt, err := Eval(f, 400, 0.5e6)
	if err != nil {
		tst.Errorf("Eval failed: %v\n", err)
		return
	}
	chk.IntAssert(len(pt.Phases.All), 1)
	chk.StrAssert(pt.Phases.All[0].Kind.String(), "fluid")
	io.Pforan("Z    = %.6f\n", pt.Phases.All[0].Z)
	io.Pforan("v    = %.8g\n", pt.V(0))
	io.Pforan("Hdep = %.6g\n", pt.Deps[0].Hdep)
	io.Pforan("Sdep = %.6g\n", pt.Deps[0].Sdep)
	chk.Float64(tst, "Z", 1e-5, pt.Phases.All[0].Z, 0.996444)
	chk.Float64(tst, "v", 1e-7, pt.V(0), 0.00662792)
	chk.Float64(tst, "Hdep", 1e-2, pt.Deps[0].Hdep, -54.7512)
	chk.Float64(tst, "Sdep", 1e-5, pt.Deps[0].Sdep, -0.107042)
}

func Test_point02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("point02. methane, two-phase, vapor-first ordering")

	// PR methane at T=180 K, P=3.0 MPa: inside the two-phase envelope
	f := methanePR(tst)
	pt, err := Eval(f, 180, 3.0e6)
	if err != nil {
		tst.Errorf("Eval failed: %v\n", err)
		return
	}
	chk.IntAssert(len(pt.Phases.All), 2)
	chk.StrAssert(pt.Phases.All[0].Kind.String(), "vapor")
	chk.StrAssert(pt.Phases.All[1].Kind.String(), "liquid")
	if pt.Phases.All[0].Z <= pt.Phases.All[1].Z {
		tst.Errorf("vapor Z must exceed liquid Z\n")
		return
	}
	chk.Float64(tst, "Zv", 1e-5, pt.Phases.All[0].Z, 0.625886)
	chk.Float64(tst, "Zl", 1e-5, pt.Phases.All[1].Z, 0.124374)
	chk.Float64(tst, "Hdep_v", 5e-2, pt.Deps[0].Hdep, -1597.87)
	chk.Float64(tst, "Hdep_l", 5e-2, pt.Deps[1].Hdep, -5524.61)
	chk.Float64(tst, "Sdep_v", 1e-4, pt.Deps[0].Sdep, -6.21915)
	chk.Float64(tst, "Sdep_l", 1e-4, pt.Deps[1].Sdep, -28.4326)

	// the discarded middle root never appears
	A, B := f.AB(180, 3.0e6)
	p, q, r := f.CubicCoefs(A, B)
	all := SolveCubic(p, q, r)
	chk.IntAssert(len(all), 3)
	mid := all[1]
	for _, ph := range pt.Phases.All {
		if ph.Z == mid {
			tst.Errorf("middle root %g leaked into the phase set\n", mid)
			return
		}
	}
}

func Test_point03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("point03. domain checks and ideal family")

	f := methanePR(tst)
	if _, err := Eval(f, -10, 1e5); err == nil {
		tst.Errorf("Eval must reject T ≤ 0\n")
		return
	}
	if _, err := Eval(f, 300, 0); err == nil {
		tst.Errorf("Eval must reject P ≤ 0\n")
		return
	}

	ideal, _ := New("ideal")
	if err := ideal.Init(nil); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	pt, err := Eval(ideal, 300, 1e5)
	if err != nil {
		tst.Errorf("Eval failed: %v\n", err)
		return
	}
	chk.IntAssert(len(pt.Phases.All), 1)
	chk.Float64(tst, "Z", 1e-14, pt.Phases.All[0].Z, 1.0)
	chk.Float64(tst, "Hdep", 1e-14, pt.Deps[0].Hdep, 0)
	chk.Float64(tst, "Sdep", 1e-14, pt.Deps[0].Sdep, 0)

	// the degenerate cubic must never leak a near-zero root as a second
	// phase, at any conditions
	for _, tp := range [][2]float64{{400, 0.5e6}, {250, 2.0e6}, {180, 3.0e6}} {
		pt, err = Eval(ideal, tp[0], tp[1])
		if err != nil {
			tst.Errorf("Eval failed: %v\n", err)
			return
		}
		chk.IntAssert(len(pt.Phases.All), 1)
		chk.Float64(tst, io.Sf("Z @ T=%g,P=%g", tp[0], tp[1]), 1e-14, pt.Phases.All[0].Z, 1.0)
		chk.Float64(tst, "v = R·T/P", 1e-12, pt.V(0), Rgas*tp[0]/tp[1])
	}
}

func Test_point04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("point04. departure continuity toward the phase boundary")

	// approaching the saturation pressure from below, the vapor branch
	// departures converge to the saturation vapor values
	f := methanePR(tst)
	sat, err := SaturationP(f, 180)
	if err != nil {
		tst.Errorf("SaturationP failed: %v\n", err)
		return
	}
	below, err := Eval(f, 180, sat.P*(1-1e-6))
	if err != nil {
		tst.Errorf("Eval failed: %v\n", err)
		return
	}
	// just below Psat the vapor-first entry governs either way
	chk.Float64(tst, "Hdep continuity", 1.0, below.Deps[0].Hdep, sat.Pt.Deps[0].Hdep)
	chk.Float64(tst, "Sdep continuity", 1e-2, below.Deps[0].Sdep, sat.Pt.Deps[0].Sdep)
}

func Test_point05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("point05. phase requests")

	f := methanePR(tst)
	pt, err := Eval(f, 400, 0.5e6)
	if err != nil {
		tst.Errorf("Eval failed: %v\n", err)
		return
	}
	_, err = pt.Phases.Get(Liquid)
	if err == nil {
		tst.Errorf("requesting the liquid phase of a single-root state must fail\n")
		return
	}
	var perr *PhaseError
	if !errors.As(err, &perr) {
		tst.Errorf("expected PhaseError; got %T\n", err)
		return
	}
	chk.IntAssert(int(perr.Kind), int(Liquid))

	pt2, err := Eval(f, 180, 3.0e6)
	if err != nil {
		tst.Errorf("Eval failed: %v\n", err)
		return
	}
	vap, err := pt2.Phases.Get(Vapor)
	if err != nil {
		tst.Errorf("Get(Vapor) failed: %v\n", err)
		return
	}
	liq, err := pt2.Phases.Get(Liquid)
	if err != nil {
		tst.Errorf("Get(Liquid) failed: %v\n", err)
		return
	}
	if vap.Z <= liq.Z {
		tst.Errorf("vapor Z must exceed liquid Z\n")
	}
}
