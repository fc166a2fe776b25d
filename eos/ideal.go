// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/gosl/utl"
)

// Ideal implements the ideal gas limit: Z ≡ 1 with zero departures. It
// needs no critical constants and has no two-phase region.
type Ideal struct{}

// add family to factory
func init() {
	allocators["ideal"] = func() Family { return new(Ideal) }
}

// Init initialises the family; the ideal gas takes no parameters
func (o *Ideal) Init(prms utl.Params) error {
	for _, p := range prms {
		switch p.N {
		case "Tc", "Pc", "omega": // accepted and ignored
		default:
			return ErrParameter("ideal: parameter named %q is incorrect", p.N)
		}
	}
	return nil
}

// GetPrms gets (an example of) parameters
func (o Ideal) GetPrms(example bool) utl.Params {
	return utl.Params{}
}

// Name returns the family name
func (o Ideal) Name() string { return "ideal" }

// Critical returns zeros: the ideal gas has no critical point
func (o Ideal) Critical() (Tc, Pc, omega float64) { return }

// Alpha returns 1
func (o Ideal) Alpha(T float64) float64 { return 1 }

// DalphaDT returns 0
func (o Ideal) DalphaDT(T float64) float64 { return 0 }

// AB returns zero dimensionless parameters
func (o Ideal) AB(T, P float64) (A, B float64) { return }

// CubicCoefs returns (Z-1)·(Z²+1) = Z³ - Z² + Z - 1. The quadratic factor
// has no real roots, so the solver yields the single root Z = 1; the naive
// choice Z³ - Z² = 0 carries a double root at zero whose roundoff can leak
// through the positive-root filter as a spurious liquid phase.
func (o Ideal) CubicCoefs(A, B float64) (p, q, r float64) {
	return -1, 1, -1
}

// Pressure computes P = R·T/v
func (o Ideal) Pressure(T, v float64) float64 {
	return Rgas * T / v
}

// Departure returns zero departures
func (o Ideal) Departure(T, Z, A, B float64) (hdep, sdep float64) { return }

// LnPhi returns 0: the ideal gas fugacity coefficient is unity
func (o Ideal) LnPhi(Z, A, B float64) float64 { return 0 }
