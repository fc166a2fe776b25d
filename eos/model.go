// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eos implements cubic equations of state for pure fluids.
// Supported families are the ideal gas, van der Waals, Soave-Redlich-Kwong
// and Peng-Robinson equations. Each family turns the critical constants
// (Tc, Pc) and the acentric factor into the attraction/repulsion parameters
// (a, b), builds the dimensionless cubic in the compressibility factor Z,
// and supplies closed-form departure functions and fugacity coefficients.
//  References:
//   [1] Sandler SI (2017) Chemical, Biochemical, and Engineering
//       Thermodynamics, 5th ed, Wiley. Chapters 6 and 7.
//   [2] Peng DY and Robinson DB (1976) A new two-constant equation of
//       state. Ind Eng Chem Fundam, 15(1), 59-64.
//   [3] Soave G (1972) Equilibrium constants from a modified Redlich-Kwong
//       equation of state. Chem Eng Sci, 27(6), 1197-1203.
package eos

import (
	"sort"

	"github.com/cpmech/gosl/utl"
)

// Rgas is the universal gas constant [J/(mol·K)] (CODATA 2018)
const Rgas = 8.31446261815324

// Family implements one cubic equation-of-state family
//  AB computes the dimensionless parameters:
//    A = a·α(T)·P / (R·T)²
//    B = b·P / (R·T)
//  CubicCoefs returns p, q, r such that the compressibility factor
//  satisfies Z³ + p·Z² + q·Z + r = 0
//  Departure returns the enthalpy [J/mol] and entropy [J/(mol·K)]
//  departures at one retained root, and LnPhi the log fugacity coefficient
type Family interface {
	Init(prms utl.Params) error                          // initialises family from Tc, Pc, omega parameters
	GetPrms(example bool) utl.Params                     // gets (an example of) parameters
	Name() string                                        // short family name; e.g. "pr"
	Critical() (Tc, Pc, omega float64)                   // critical constants and acentric factor
	Alpha(T float64) float64                             // temperature correction α(T)
	DalphaDT(T float64) float64                          // dα/dT
	AB(T, P float64) (A, B float64)                      // dimensionless EOS parameters
	CubicCoefs(A, B float64) (p, q, r float64)           // coefficients of cubic in Z
	Pressure(T, v float64) float64                       // pressure-explicit form P(T,v)
	Departure(T, Z, A, B float64) (hdep, sdep float64)   // departure functions at one root
	LnPhi(Z, A, B float64) float64                       // log fugacity coefficient at one root
}

// New returns a new equation-of-state family model
func New(name string) (Family, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, ErrParameter("equation of state %q is not available in 'eos' database", name)
	}
	return allocator(), nil
}

// Families returns the names of all available families
func Families() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available families
var allocators = map[string]func() Family{}
