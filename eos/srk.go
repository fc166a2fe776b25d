// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// SoaveRedlichKwong implements the Soave modification of the Redlich-Kwong
// equation of state
//   P = R·T/(v-b) - a·α(T)/(v·(v+b))
// with a = 0.42748·R²·Tc²/Pc, b = 0.08664·R·Tc/Pc and
//   α(T) = [1 + m·(1-√Tr)]²   m = 0.480 + 1.574·ω - 0.176·ω²
type SoaveRedlichKwong struct {
	critical
	m float64 // acentric-factor polynomial
}

// add family to factory
func init() {
	allocators["srk"] = func() Family { return new(SoaveRedlichKwong) }
}

// Init initialises the family from Tc, Pc and omega
func (o *SoaveRedlichKwong) Init(prms utl.Params) error {
	if err := o.set("srk", 0.42748, 0.08664, prms); err != nil {
		return err
	}
	o.m = 0.480 + 1.574*o.omega - 0.176*o.omega*o.omega
	return nil
}

// GetPrms gets (an example of) parameters
func (o SoaveRedlichKwong) GetPrms(example bool) utl.Params {
	if example {
		return examplePrms()
	}
	return o.prms()
}

// Name returns the family name
func (o SoaveRedlichKwong) Name() string { return "srk" }

// Alpha computes α(T)
func (o SoaveRedlichKwong) Alpha(T float64) float64 {
	c := 1.0 + o.m*(1.0-math.Sqrt(T/o.Tc))
	return c * c
}

// DalphaDT computes dα/dT = -m·[1 + m·(1-√Tr)]/√(T·Tc)
func (o SoaveRedlichKwong) DalphaDT(T float64) float64 {
	c := 1.0 + o.m*(1.0-math.Sqrt(T/o.Tc))
	return -o.m * c / math.Sqrt(T*o.Tc)
}

// AB computes the dimensionless parameters
func (o SoaveRedlichKwong) AB(T, P float64) (A, B float64) {
	A = o.a * o.Alpha(T) * P / (Rgas * Rgas * T * T)
	B = o.b * P / (Rgas * T)
	return
}

// CubicCoefs returns the coefficients of
//   Z³ - Z² + (A-B-B²)·Z - A·B = 0
func (o SoaveRedlichKwong) CubicCoefs(A, B float64) (p, q, r float64) {
	return -1.0, A - B - B*B, -A * B
}

// Pressure computes the pressure-explicit form
func (o SoaveRedlichKwong) Pressure(T, v float64) float64 {
	return Rgas*T/(v-o.b) - o.a*o.Alpha(T)/(v*(v+o.b))
}

// Departure computes the closed-form departures at one root:
//   Hdep = R·T·(Z-1) + (T·a·α' - a·α)/b · ln(1 + B/Z)
//   Sdep = R·ln(Z-B) + (a·α'/b) · ln(1 + B/Z)
func (o SoaveRedlichKwong) Departure(T, Z, A, B float64) (hdep, sdep float64) {
	aα := o.a * o.Alpha(T)
	daαdT := o.a * o.DalphaDT(T)
	lnt := math.Log(1.0 + B/Z)
	hdep = Rgas*T*(Z-1.0) + (T*daαdT-aα)/o.b*lnt
	sdep = Rgas*math.Log(Z-B) + daαdT/o.b*lnt
	return
}

// LnPhi computes ln φ = Z - 1 - ln(Z-B) - (A/B)·ln(1 + B/Z)
func (o SoaveRedlichKwong) LnPhi(Z, A, B float64) float64 {
	return Z - 1.0 - math.Log(Z-B) - A/B*math.Log(1.0+B/Z)
}
