// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/gosl/utl"
)

// critical holds the critical constants and the derived attraction and
// repulsion coefficients shared by the van der Waals, Soave-Redlich-Kwong
// and Peng-Robinson families:
//   a = ca·R²·Tc²/Pc   b = cb·R·Tc/Pc
// where ca and cb are the family's published constants. Immutable once set.
type critical struct {
	Tc    float64 // critical temperature [K]
	Pc    float64 // critical pressure [Pa]
	omega float64 // acentric factor [-]
	a     float64 // attraction coefficient [Pa·m⁶/mol²]
	b     float64 // repulsion (co-volume) coefficient [m³/mol]
}

// set parses Tc, Pc and omega and derives a and b with the family's ca, cb
func (o *critical) set(name string, ca, cb float64, prms utl.Params) error {
	o.Tc, o.Pc, o.omega = 0, 0, 0
	for _, p := range prms {
		switch p.N {
		case "Tc":
			o.Tc = p.V
		case "Pc":
			o.Pc = p.V
		case "omega":
			o.omega = p.V
		default:
			return ErrParameter("%s: parameter named %q is incorrect", name, p.N)
		}
	}
	if o.Tc <= 0 {
		return ErrParameter("%s: critical temperature must be positive; got Tc=%g", name, o.Tc)
	}
	if o.Pc <= 0 {
		return ErrParameter("%s: critical pressure must be positive; got Pc=%g", name, o.Pc)
	}
	o.a = ca * Rgas * Rgas * o.Tc * o.Tc / o.Pc
	o.b = cb * Rgas * o.Tc / o.Pc
	return nil
}

// Critical returns the critical constants and the acentric factor
func (o critical) Critical() (Tc, Pc, omega float64) {
	return o.Tc, o.Pc, o.omega
}

// prms returns the current parameters
func (o critical) prms() utl.Params {
	return utl.Params{
		&utl.P{N: "Tc", V: o.Tc},
		&utl.P{N: "Pc", V: o.Pc},
		&utl.P{N: "omega", V: o.omega},
	}
}

// examplePrms returns example parameters (methane)
func examplePrms() utl.Params {
	return utl.Params{
		&utl.P{N: "Tc", V: 190.4},    // [K]
		&utl.P{N: "Pc", V: 4.60e6},   // [Pa]
		&utl.P{N: "omega", V: 0.011}, // [-]
	}
}
