// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/utl"
	"github.com/spf13/cobra"

	"github.com/cameronabrams/sandlercubics/eos"
	"github.com/cameronabrams/sandlercubics/inp"
	"github.com/cameronabrams/sandlercubics/state"
)

// fluid selection flags, shared by all calculation subcommands
var (
	flagEOS      string
	flagCompound string
	flagDbDir    string
	flagDbFile   string
	flagTc       float64
	flagPc       float64
	flagOmega    float64
)

func addFluidFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&flagEOS, "eos", "e", "pr", "equation of state family: ideal, vdw, srk or pr")
	pf.StringVarP(&flagCompound, "compound", "c", "", "compound name from the database")
	pf.StringVar(&flagDbDir, "dbdir", "", "directory of a compound database JSON file (default: embedded table)")
	pf.StringVar(&flagDbFile, "dbfile", "compounds.json", "file name of the compound database")
	pf.Float64Var(&flagTc, "Tc", 0, "critical temperature override [K]")
	pf.Float64Var(&flagPc, "Pc", 0, "critical pressure override [Pa]")
	pf.Float64Var(&flagOmega, "omega", 0, "acentric factor override")
}

// database opens the selected compound database
func database() (*inp.CmpDb, error) {
	if flagDbDir != "" {
		return inp.ReadCmpDb(flagDbDir, flagDbFile)
	}
	return inp.DefaultDb(), nil
}

// newState builds a state from the fluid flags: a database compound when
// --compound is given, explicit --Tc/--Pc/--omega overrides otherwise
func newState() (*state.State, error) {
	if flagCompound != "" {
		db, err := database()
		if err != nil {
			return nil, err
		}
		c, err := db.Get(flagCompound)
		if err != nil {
			return nil, err
		}
		st, err := state.New(flagEOS, c.EOSPrms())
		if err != nil {
			return nil, err
		}
		st.SetCp(c.Cp())
		return st, nil
	}
	prms := utl.Params{
		&utl.P{N: "Tc", V: flagTc},
		&utl.P{N: "Pc", V: flagPc},
		&utl.P{N: "omega", V: flagOmega},
	}
	if flagEOS == "ideal" {
		prms = utl.Params{}
	}
	return state.New(flagEOS, prms)
}

// family builds the bare family without the state wrapper
func family() (eos.Family, error) {
	st, err := newState()
	if err != nil {
		return nil, err
	}
	return st.Family(), nil
}
