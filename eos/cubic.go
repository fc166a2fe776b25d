// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"
	"sort"
)

// SolveCubic returns all real roots of
//   Z³ + p·Z² + q·Z + r = 0
// sorted in descending order. The three-real-root branch uses the
// trigonometric (Viète) formula rather than Cardano radicals: near the
// critical point the discriminant vanishes and the radical form suffers
// catastrophic cancellation as the roots merge.
func SolveCubic(p, q, r float64) []float64 {

	// depressed cubic x³ + m·x + n = 0 with Z = x - p/3
	m := q - p*p/3.0
	n := 2.0*p*p*p/27.0 - p*q/3.0 + r
	shift := -p / 3.0

	// discriminant
	disc := n*n/4.0 + m*m*m/27.0

	if disc > 0 {
		// one real root
		s := math.Sqrt(disc)
		x := math.Cbrt(-n/2.0+s) + math.Cbrt(-n/2.0-s)
		return []float64{x + shift}
	}

	// three real roots (two coincide when disc == 0)
	ρ := math.Sqrt(-m * m * m / 27.0)
	if ρ == 0 {
		// m == n == 0: triple root
		return []float64{shift, shift, shift}
	}
	cosθ := -n / (2.0 * ρ)
	if cosθ > 1 {
		cosθ = 1
	}
	if cosθ < -1 {
		cosθ = -1
	}
	θ := math.Acos(cosθ)
	fac := 2.0 * math.Sqrt(-m/3.0)
	zs := []float64{
		fac*math.Cos(θ/3.0) + shift,
		fac*math.Cos((θ+2.0*math.Pi)/3.0) + shift,
		fac*math.Cos((θ+4.0*math.Pi)/3.0) + shift,
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(zs)))
	return zs
}

// PhysicalRoots solves the cubic for the given family at dimensionless
// (A, B) and filters out roots with Z ≤ 0, which are non-physical. Filtering
// can reduce a nominal three-root case to fewer retained roots. An error
// here signals invalid parameters: every physically valid (T, P) keeps at
// least one positive root.
func PhysicalRoots(f Family, A, B float64) ([]float64, error) {
	p, q, r := f.CubicCoefs(A, B)
	all := SolveCubic(p, q, r)
	zs := make([]float64, 0, len(all))
	for _, z := range all {
		if z > 0 {
			zs = append(zs, z)
		}
	}
	if len(zs) < 1 {
		return nil, ErrConvergence(0, "%s: no physical root remains after filtering (A=%g, B=%g)", f.Name(), A, B)
	}
	return zs, nil
}
