// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_families01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("families01. registry")

	for _, name := range []string{"ideal", "vdw", "srk", "pr"} {
		f, err := New(name)
		if err != nil {
			tst.Errorf("New(%q) failed: %v\n", name, err)
			return
		}
		chk.StrAssert(f.Name(), name)
	}

	_, err := New("rk")
	if err == nil {
		tst.Errorf("New should fail for unknown family\n")
		return
	}
	var perr *ParameterError
	if !errors.As(err, &perr) {
		tst.Errorf("unknown family must give ParameterError; got %T\n", err)
	}
}

func Test_families02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("families02. parameter derivation")

	// methane example parameters
	for _, fc := range []struct {
		name   string
		ca, cb float64
	}{
		{"vdw", 27.0 / 64.0, 1.0 / 8.0},
		{"srk", 0.42748, 0.08664},
		{"pr", 0.45724, 0.07780},
	} {
		f, err := New(fc.name)
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}
		if err := f.Init(examplePrms()); err != nil {
			tst.Errorf("Init failed: %v\n", err)
			return
		}
		Tc, Pc, _ := f.Critical()
		chk.Float64(tst, fc.name+": Tc", 1e-15, Tc, 190.4)
		chk.Float64(tst, fc.name+": Pc", 1e-15, Pc, 4.60e6)

		// a and b against the published closed forms
		a := fc.ca * Rgas * Rgas * Tc * Tc / Pc
		b := fc.cb * Rgas * Tc / Pc
		A, B := f.AB(Tc, Pc)
		chk.Float64(tst, fc.name+": A(Tc,Pc)", 1e-12, A, a*f.Alpha(Tc)*Pc/(Rgas*Rgas*Tc*Tc))
		chk.Float64(tst, fc.name+": B(Tc,Pc)", 1e-12, B, b*Pc/(Rgas*Tc))

		// α(Tc) = 1 for every family
		chk.Float64(tst, fc.name+": alpha(Tc)", 1e-12, f.Alpha(Tc), 1.0)
	}
}

func Test_families03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("families03. invalid parameters")

	for _, name := range []string{"vdw", "srk", "pr"} {
		f, _ := New(name)
		err := f.Init(utl.Params{
			&utl.P{N: "Tc", V: -1},
			&utl.P{N: "Pc", V: 4.6e6},
		})
		if err == nil {
			tst.Errorf("%s: Init should fail for Tc ≤ 0\n", name)
			return
		}
		err = f.Init(utl.Params{
			&utl.P{N: "Tc", V: 190.4},
			&utl.P{N: "Pc", V: 0},
		})
		if err == nil {
			tst.Errorf("%s: Init should fail for Pc ≤ 0\n", name)
			return
		}
		err = f.Init(utl.Params{&utl.P{N: "Tboil", V: 111.6}})
		if err == nil {
			tst.Errorf("%s: Init should fail for unknown parameter\n", name)
			return
		}
	}
}

func Test_families04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("families04. dα/dT against numerical derivative")

	for _, name := range []string{"srk", "pr"} {
		f, _ := New(name)
		if err := f.Init(examplePrms()); err != nil {
			tst.Errorf("Init failed: %v\n", err)
			return
		}
		for _, T := range []float64{120, 180, 250, 400} {
			h := 1e-3
			dnum := (f.Alpha(T+h) - f.Alpha(T-h)) / (2 * h)
			chk.AnaNum(tst, io.Sf("%s: dα/dT @ %g", name, T), 1e-8, f.DalphaDT(T), dnum, chk.Verbose)
		}
	}
}

func Test_families05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("families05. cubic and pressure forms agree")

	// a root of the cubic must reproduce the trial pressure through the
	// pressure-explicit form with v = Z·R·T/P
	for _, name := range []string{"ideal", "vdw", "srk", "pr"} {
		f, _ := New(name)
		if err := f.Init(examplePrms()); err != nil {
			tst.Errorf("Init failed: %v\n", err)
			return
		}
		for _, tp := range [][2]float64{{400, 0.5e6}, {250, 2.0e6}, {180, 3.0e6}} {
			T, P := tp[0], tp[1]
			A, B := f.AB(T, P)
			zs, err := PhysicalRoots(f, A, B)
			if err != nil {
				tst.Errorf("PhysicalRoots failed: %v\n", err)
				return
			}
			for _, z := range zs {
				v := z * Rgas * T / P
				chk.Float64(tst, io.Sf("%s: P(T=%g,v(Z=%.4f))", name, T, z), P*1e-9, f.Pressure(T, v), P)
			}
		}
	}
}
