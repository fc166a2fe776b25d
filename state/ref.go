// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

// Reference is the ideal-gas reference state for absolute enthalpy and
// entropy. It is an explicit immutable value threaded into absolute
// property calculations; there is no module-wide mutable default.
type Reference struct {
	T float64 // reference temperature [K]
	P float64 // reference pressure [Pa]
}

// DefaultReference returns 298.15 K and 1 bar
func DefaultReference() Reference {
	return Reference{T: 298.15, P: 1e5}
}
