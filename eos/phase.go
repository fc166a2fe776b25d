// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

// PhaseKind labels a retained compressibility root
type PhaseKind int

const (
	// Fluid is the single-root case: supercritical fluid or a single-phase
	// subcritical state
	Fluid PhaseKind = iota

	// Vapor is the largest root of a three-root solution
	Vapor

	// Liquid is the smallest positive root of a three-root solution
	Liquid
)

// String returns the phase label
func (k PhaseKind) String() string {
	switch k {
	case Vapor:
		return "vapor"
	case Liquid:
		return "liquid"
	}
	return "fluid"
}

// Phase pairs a retained root with its label
type Phase struct {
	Kind PhaseKind // vapor, liquid or fluid
	Z    float64   // compressibility factor
}

// PhaseSet holds the retained phases at one (T, P) point.
// Ordering is part of the external contract: when two phases exist, the
// vapor phase always comes first and the liquid phase second; the middle
// root of a three-root solution is never exposed.
type PhaseSet struct {
	All []Phase
}

// ResolvePhases classifies filtered roots into phases.
// One root gives a single Fluid phase. Three roots give Vapor (largest) and
// Liquid (smallest); the middle root is discarded as non-physical.
func ResolvePhases(zs []float64) (ps PhaseSet, err error) {
	switch len(zs) {
	case 1:
		ps.All = []Phase{{Kind: Fluid, Z: zs[0]}}
	case 2:
		// root filtering removed the smallest of a nominal three; the
		// smallest positive root left is the liquid one
		ps.All = []Phase{{Kind: Vapor, Z: zs[0]}, {Kind: Liquid, Z: zs[1]}}
	case 3:
		ps.All = []Phase{{Kind: Vapor, Z: zs[0]}, {Kind: Liquid, Z: zs[2]}}
	default:
		err = ErrConvergence(0, "cannot classify %d roots into phases", len(zs))
	}
	return
}

// Two tells whether both vapor and liquid phases exist
func (o PhaseSet) Two() bool {
	return len(o.All) == 2
}

// Get returns the phase with the given label.
// Fluid requests match the single-phase root only.
func (o PhaseSet) Get(kind PhaseKind) (Phase, error) {
	for _, ph := range o.All {
		if ph.Kind == kind {
			return ph, nil
		}
	}
	return Phase{}, ErrPhase(kind, "no %s phase exists at the current conditions", kind)
}
