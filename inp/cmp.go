// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the compound database: critical constants,
// acentric factors and ideal-gas heat capacity polynomials by compound
// name, read from a JSON file or from the embedded default table.
package inp

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cameronabrams/sandlercubics/eos"
)

// Compound holds one fluid's data. Critical constants are SI (K, Pa); the
// heat capacity polynomial is J/(mol·K) with T in K.
type Compound struct {
	Name    string  `json:"name"`    // compound name; e.g. "methane"
	Formula string  `json:"formula"` // chemical formula; e.g. "CH4"
	M       float64 `json:"M"`       // molar mass [g/mol]
	Tc      float64 `json:"Tc"`      // critical temperature [K]
	Pc      float64 `json:"Pc"`      // critical pressure [Pa]
	Omega   float64 `json:"omega"`   // acentric factor [-]
	CpA     float64 `json:"cpa"`     // Cp polynomial: constant term
	CpB     float64 `json:"cpb"`     // Cp polynomial: linear term
	CpC     float64 `json:"cpc"`     // Cp polynomial: quadratic term
	CpD     float64 `json:"cpd"`     // Cp polynomial: cubic term
}

// CmpDb implements a database of compounds
type CmpDb struct {
	Compounds []*Compound `json:"compounds"`
}

//go:embed data/compounds.json
var defaultData []byte

// DefaultDb returns the embedded default compound table
func DefaultDb() *CmpDb {
	db := new(CmpDb)
	if err := json.Unmarshal(defaultData, db); err != nil {
		panic(io.Sf("embedded compound table is corrupt: %v", err))
	}
	return db
}

// ReadCmpDb reads a compound database from a JSON file
func ReadCmpDb(dir, fn string) (*CmpDb, error) {
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	db := new(CmpDb)
	if err := json.Unmarshal(b, db); err != nil {
		return nil, err
	}
	for _, c := range db.Compounds {
		if c.Tc <= 0 || c.Pc <= 0 {
			return nil, eos.ErrParameter("compound %q has non-positive critical constants (Tc=%g, Pc=%g)", c.Name, c.Tc, c.Pc)
		}
	}
	return db, nil
}

// Get returns a compound by name, or a ParameterError when it is not in
// the database
func (o *CmpDb) Get(name string) (*Compound, error) {
	for _, c := range o.Compounds {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, eos.ErrParameter("compound %q not found in database", name)
}

// Names returns all compound names in database order
func (o *CmpDb) Names() (names []string) {
	for _, c := range o.Compounds {
		names = append(names, c.Name)
	}
	return
}

// EOSPrms returns the parameters needed to initialise an eos.Family
func (o *Compound) EOSPrms() utl.Params {
	return utl.Params{
		&utl.P{N: "Tc", V: o.Tc},
		&utl.P{N: "Pc", V: o.Pc},
		&utl.P{N: "omega", V: o.Omega},
	}
}

// Cp returns the ideal-gas heat capacity polynomial
func (o *Compound) Cp() eos.CpPoly {
	return eos.CpPoly{A: o.CpA, B: o.CpB, C: o.CpC, D: o.CpD}
}

// String prints one compound
func (o *Compound) String() string {
	return io.Sf("%-16s %-8s Tc=%7.2f K  Pc=%8.4g Pa  ω=%6.3f", o.Name, o.Formula, o.Tc, o.Pc, o.Omega)
}
