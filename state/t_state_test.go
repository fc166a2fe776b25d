// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cameronabrams/sandlercubics/eos"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// methanePrms are the critical constants of methane
func methanePrms() utl.Params {
	return utl.Params{
		&utl.P{N: "Tc", V: 190.4},
		&utl.P{N: "Pc", V: 4.60e6},
		&utl.P{N: "omega", V: 0.011},
	}
}

// methaneCp is the Sandler appendix polynomial for methane [J/(mol·K)]
var methaneCp = eos.CpPoly{A: 19.25, B: 5.213e-2, C: 1.197e-5, D: -1.132e-8}

func Test_state01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state01. specification state machine")

	st, err := New("pr", methanePrms())
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.StrAssert(st.Status().String(), "parameters-set")

	// reading while under-specified names the missing variable
	_, err = st.Z()
	var derr *eos.DomainError
	if !errors.As(err, &derr) {
		tst.Errorf("expected DomainError; got %T\n", err)
		return
	}
	chk.StrAssert(derr.Missing, "T")

	if err := st.SetT(400); err != nil {
		tst.Errorf("SetT failed: %v\n", err)
		return
	}
	chk.StrAssert(st.Status().String(), "partially-specified")
	_, err = st.Z()
	if !errors.As(err, &derr) {
		tst.Errorf("expected DomainError; got %T\n", err)
		return
	}
	chk.StrAssert(derr.Missing, "P")

	if err := st.SetP(0.5e6); err != nil {
		tst.Errorf("SetP failed: %v\n", err)
		return
	}
	chk.StrAssert(st.Status().String(), "fully-specified")
	zs, err := st.Z()
	if err != nil {
		tst.Errorf("Z failed: %v\n", err)
		return
	}
	chk.IntAssert(len(zs), 1)
	chk.Float64(tst, "Z", 1e-5, zs[0], 0.996444)

	// redefining the fluid drops back to parameters-set
	if err := st.SetFluid("srk", methanePrms()); err != nil {
		tst.Errorf("SetFluid failed: %v\n", err)
		return
	}
	chk.StrAssert(st.Status().String(), "parameters-set")
	if _, err := st.Z(); err == nil {
		tst.Errorf("reads must fail after SetFluid until T and P are given again\n")
	}
}

func Test_state02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state02. cache idempotence and invalidation")

	st, err := New("pr", methanePrms())
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	st.SetT(400)
	st.SetP(0.5e6)

	pt1, err := st.Point()
	if err != nil {
		tst.Errorf("Point failed: %v\n", err)
		return
	}
	pt2, err := st.Point()
	if err != nil {
		tst.Errorf("Point failed: %v\n", err)
		return
	}
	if pt1 != pt2 {
		tst.Errorf("repeated reads at unchanged (T,P) must hit the cache\n")
		return
	}
	z1, _ := st.Z()
	z2, _ := st.Z()
	chk.Float64(tst, "cache does not drift", 0, z1[0], z2[0])

	// mutating P invalidates and recomputes lazily
	st.SetP(3.0e6)
	pt3, err := st.Point()
	if err != nil {
		tst.Errorf("Point failed: %v\n", err)
		return
	}
	if pt3 == pt1 {
		tst.Errorf("mutation must invalidate the cached point\n")
		return
	}
	chk.Float64(tst, "new P", 1e-12, pt3.P, 3.0e6)
}

func Test_state03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state03. two-phase readers, vapor first")

	st, err := New("pr", methanePrms())
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	st.SetT(180)
	st.SetP(3.0e6)

	two, err := st.TwoPhase()
	if err != nil {
		tst.Errorf("TwoPhase failed: %v\n", err)
		return
	}
	if !two {
		tst.Errorf("expected a two-phase state\n")
		return
	}
	zs, _ := st.Z()
	hs, _ := st.Hdep()
	ss, _ := st.Sdep()
	vs, _ := st.V()
	chk.IntAssert(len(zs), 2)
	chk.Float64(tst, "Zv", 1e-5, zs[0], 0.625886)
	chk.Float64(tst, "Zl", 1e-5, zs[1], 0.124374)
	chk.Float64(tst, "Hdep_v", 5e-2, hs[0], -1597.87)
	chk.Float64(tst, "Hdep_l", 5e-2, hs[1], -5524.61)
	chk.Float64(tst, "Sdep_v", 1e-4, ss[0], -6.21915)
	chk.Float64(tst, "Sdep_l", 1e-4, ss[1], -28.4326)
	if vs[0] <= vs[1] {
		tst.Errorf("vapor volume must exceed liquid volume\n")
		return
	}

	report, err := st.Report()
	if err != nil {
		tst.Errorf("Report failed: %v\n", err)
		return
	}
	io.Pf("%s", report)
}

func Test_state04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state04. delta between two single-phase states")

	// Sandler example: methane from (350 K, 7.5 MPa) to (400 K, 15.5 MPa)
	st1, err := New("pr", methanePrms())
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	st1.SetCp(methaneCp)
	st1.SetT(350)
	st1.SetP(7.5e6)

	st2, err := New("pr", methanePrms())
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	st2.SetT(400)
	st2.SetP(15.5e6)

	res, err := Delta(st1, st2)
	if err != nil {
		tst.Errorf("Delta failed: %v\n", err)
		return
	}
	io.Pforan("Δh = %.6g J/mol\n", res.Dh)
	io.Pforan("Δs = %.6g J/mol·K\n", res.Ds)
	io.Pforan("Δu = %.6g J/mol\n", res.Du)
	chk.Float64(tst, "Δh", 0.5, res.Dh, 1571.86)
	chk.Float64(tst, "Δs", 1e-3, res.Ds, -1.44983)
	chk.Float64(tst, "Δu", 0.5, res.Du, 1104.74)
}

func Test_state05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state05. delta guards")

	st1, _ := New("pr", methanePrms())
	st1.SetT(350)
	st1.SetP(7.5e6)
	st2, _ := New("pr", methanePrms())
	st2.SetT(400)
	st2.SetP(15.5e6)

	// no Cp polynomial
	_, err := Delta(st1, st2)
	var perr *eos.ParameterError
	if !errors.As(err, &perr) {
		tst.Errorf("expected ParameterError without Cp; got %T\n", err)
		return
	}

	// two-phase endpoint
	st1.SetCp(methaneCp)
	st2.SetT(180)
	st2.SetP(3.0e6)
	_, err = Delta(st1, st2)
	var pherr *eos.PhaseError
	if !errors.As(err, &pherr) {
		tst.Errorf("expected PhaseError for a two-phase endpoint; got %T\n", err)
	}
}

func Test_state06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state06. absolute properties against the reference state")

	st, _ := New("pr", methanePrms())
	st.SetCp(methaneCp)
	ref := DefaultReference()

	// at the reference conditions the ideal-gas parts vanish and only the
	// departures remain
	st.SetT(ref.T)
	st.SetP(ref.P)
	hs, err := st.H(ref)
	if err != nil {
		tst.Errorf("H failed: %v\n", err)
		return
	}
	ss, _ := st.S(ref)
	hdep, _ := st.Hdep()
	sdep, _ := st.Sdep()
	chk.Float64(tst, "h(ref)", 1e-10, hs[0], hdep[0])
	chk.Float64(tst, "s(ref)", 1e-12, ss[0], sdep[0])

	// deltas of absolute properties reproduce Delta
	st1, _ := New("pr", methanePrms())
	st1.SetCp(methaneCp)
	st1.SetT(350)
	st1.SetP(7.5e6)
	st2, _ := New("pr", methanePrms())
	st2.SetCp(methaneCp)
	st2.SetT(400)
	st2.SetP(15.5e6)
	res, err := Delta(st1, st2)
	if err != nil {
		tst.Errorf("Delta failed: %v\n", err)
		return
	}
	h1, _ := st1.H(ref)
	h2, _ := st2.H(ref)
	s1, _ := st1.S(ref)
	s2, _ := st2.S(ref)
	u1, _ := st1.U(ref)
	u2, _ := st2.U(ref)
	chk.Float64(tst, "Δh consistency", 1e-8, h2[0]-h1[0], res.Dh)
	chk.Float64(tst, "Δs consistency", 1e-10, s2[0]-s1[0], res.Ds)
	chk.Float64(tst, "Δu consistency", 1e-8, u2[0]-u1[0], res.Du)
}

func Test_state07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state07. saturation through the orchestrator")

	st, _ := New("pr", methanePrms())
	st.SetT(180)
	res, err := st.SatP()
	if err != nil {
		tst.Errorf("SatP failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Psat", 0.01e6, res.P, 3.33e6)
	chk.Float64(tst, "Hvap", 2.0, res.Hvap, 3686.60)

	// saturation temperature needs P, not T
	st2, _ := New("pr", methanePrms())
	_, err = st2.SatT()
	var derr *eos.DomainError
	if !errors.As(err, &derr) {
		tst.Errorf("expected DomainError; got %T\n", err)
		return
	}
	chk.StrAssert(derr.Missing, "P")
}
