// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"
)

// CpPoly is the ideal-gas heat capacity polynomial
//   Cp(T) = A + B·T + C·T² + D·T³   [J/(mol·K)], T in [K]
// Property changes are integrated in closed form; no quadrature.
type CpPoly struct {
	A, B, C, D float64
}

// Value computes Cp(T)
func (o CpPoly) Value(T float64) float64 {
	return o.A + T*(o.B+T*(o.C+T*o.D))
}

// DeltaH computes the ideal-gas enthalpy change ∫Cp·dT from T1 to T2 [J/mol]
func (o CpPoly) DeltaH(T1, T2 float64) float64 {
	return o.A*(T2-T1) +
		o.B/2.0*(T2*T2-T1*T1) +
		o.C/3.0*(T2*T2*T2-T1*T1*T1) +
		o.D/4.0*(T2*T2*T2*T2-T1*T1*T1*T1)
}

// DeltaS computes the temperature part of the ideal-gas entropy change
// ∫(Cp/T)·dT from T1 to T2 [J/(mol·K)]. The pressure part -R·ln(P2/P1) is
// the caller's to add.
func (o CpPoly) DeltaS(T1, T2 float64) float64 {
	return o.A*math.Log(T2/T1) +
		o.B*(T2-T1) +
		o.C/2.0*(T2*T2-T1*T1) +
		o.D/3.0*(T2*T2*T2-T1*T1*T1)
}
