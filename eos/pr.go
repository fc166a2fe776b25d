// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// sqrt2 shorthand
const sqrt2 = math.Sqrt2

// PengRobinson implements the Peng-Robinson equation of state
//   P = R·T/(v-b) - a·α(T)/(v·(v+b) + b·(v-b))
// with a = 0.45724·R²·Tc²/Pc, b = 0.07780·R·Tc/Pc and
//   α(T) = [1 + κ·(1-√Tr)]²   κ = 0.37464 + 1.54226·ω - 0.26992·ω²
type PengRobinson struct {
	critical
	κ float64 // acentric-factor polynomial
}

// add family to factory
func init() {
	allocators["pr"] = func() Family { return new(PengRobinson) }
}

// Init initialises the family from Tc, Pc and omega
func (o *PengRobinson) Init(prms utl.Params) error {
	if err := o.set("pr", 0.45724, 0.07780, prms); err != nil {
		return err
	}
	o.κ = 0.37464 + 1.54226*o.omega - 0.26992*o.omega*o.omega
	return nil
}

// GetPrms gets (an example of) parameters
func (o PengRobinson) GetPrms(example bool) utl.Params {
	if example {
		return examplePrms()
	}
	return o.prms()
}

// Name returns the family name
func (o PengRobinson) Name() string { return "pr" }

// Alpha computes α(T)
func (o PengRobinson) Alpha(T float64) float64 {
	c := 1.0 + o.κ*(1.0-math.Sqrt(T/o.Tc))
	return c * c
}

// DalphaDT computes dα/dT = -κ·[1 + κ·(1-√Tr)]/√(T·Tc)
func (o PengRobinson) DalphaDT(T float64) float64 {
	c := 1.0 + o.κ*(1.0-math.Sqrt(T/o.Tc))
	return -o.κ * c / math.Sqrt(T*o.Tc)
}

// AB computes the dimensionless parameters
func (o PengRobinson) AB(T, P float64) (A, B float64) {
	A = o.a * o.Alpha(T) * P / (Rgas * Rgas * T * T)
	B = o.b * P / (Rgas * T)
	return
}

// CubicCoefs returns the coefficients of
//   Z³ - (1-B)·Z² + (A-3B²-2B)·Z - (AB-B²-B³) = 0
func (o PengRobinson) CubicCoefs(A, B float64) (p, q, r float64) {
	p = -(1.0 - B)
	q = A - 3.0*B*B - 2.0*B
	r = -(A*B - B*B - B*B*B)
	return
}

// Pressure computes the pressure-explicit form
func (o PengRobinson) Pressure(T, v float64) float64 {
	return Rgas*T/(v-o.b) - o.a*o.Alpha(T)/(v*(v+o.b)+o.b*(v-o.b))
}

// Departure computes the closed-form departures at one root:
//   Hdep = R·T·(Z-1) + (T·a·α' - a·α)/(2√2·b) · L
//   Sdep = R·ln(Z-B) + (a·α'/(2√2·b)) · L
// with L = ln[(Z+(1+√2)·B)/(Z+(1-√2)·B)]
func (o PengRobinson) Departure(T, Z, A, B float64) (hdep, sdep float64) {
	aα := o.a * o.Alpha(T)
	daαdT := o.a * o.DalphaDT(T)
	lnt := math.Log((Z + (1.0+sqrt2)*B) / (Z + (1.0-sqrt2)*B))
	den := 2.0 * sqrt2 * o.b
	hdep = Rgas*T*(Z-1.0) + (T*daαdT-aα)/den*lnt
	sdep = Rgas*math.Log(Z-B) + daαdT/den*lnt
	return
}

// LnPhi computes
//   ln φ = Z - 1 - ln(Z-B) - A/(2√2·B) · ln[(Z+(1+√2)·B)/(Z+(1-√2)·B)]
func (o PengRobinson) LnPhi(Z, A, B float64) float64 {
	lnt := math.Log((Z + (1.0+sqrt2)*B) / (Z + (1.0-sqrt2)*B))
	return Z - 1.0 - math.Log(Z-B) - A/(2.0*sqrt2*B)*lnt
}
