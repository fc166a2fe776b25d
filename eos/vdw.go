// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// VanDerWaals implements the van der Waals equation of state
//   P = R·T/(v-b) - a/v²
// with a = 27·R²·Tc²/(64·Pc) and b = R·Tc/(8·Pc). α(T) ≡ 1.
type VanDerWaals struct {
	critical
}

// add family to factory
func init() {
	allocators["vdw"] = func() Family { return new(VanDerWaals) }
}

// Init initialises the family from Tc, Pc and omega
func (o *VanDerWaals) Init(prms utl.Params) error {
	return o.set("vdw", 27.0/64.0, 1.0/8.0, prms)
}

// GetPrms gets (an example of) parameters
func (o VanDerWaals) GetPrms(example bool) utl.Params {
	if example {
		return examplePrms()
	}
	return o.prms()
}

// Name returns the family name
func (o VanDerWaals) Name() string { return "vdw" }

// Alpha returns 1: the van der Waals attraction has no temperature correction
func (o VanDerWaals) Alpha(T float64) float64 { return 1 }

// DalphaDT returns 0
func (o VanDerWaals) DalphaDT(T float64) float64 { return 0 }

// AB computes the dimensionless parameters
func (o VanDerWaals) AB(T, P float64) (A, B float64) {
	A = o.a * P / (Rgas * Rgas * T * T)
	B = o.b * P / (Rgas * T)
	return
}

// CubicCoefs returns the coefficients of
//   Z³ - (1+B)·Z² + A·Z - A·B = 0
func (o VanDerWaals) CubicCoefs(A, B float64) (p, q, r float64) {
	return -(1.0 + B), A, -A * B
}

// Pressure computes the pressure-explicit form
func (o VanDerWaals) Pressure(T, v float64) float64 {
	return Rgas*T/(v-o.b) - o.a/(v*v)
}

// Departure computes the closed-form departures at one root:
//   Hdep = R·T·(Z - 1 - A/Z)
//   Sdep = R·ln(Z - B)
func (o VanDerWaals) Departure(T, Z, A, B float64) (hdep, sdep float64) {
	hdep = Rgas * T * (Z - 1.0 - A/Z)
	sdep = Rgas * math.Log(Z-B)
	return
}

// LnPhi computes ln φ = Z - 1 - ln(Z-B) - A/Z
func (o VanDerWaals) LnPhi(Z, A, B float64) float64 {
	return Z - 1.0 - math.Log(Z-B) - A/Z
}
