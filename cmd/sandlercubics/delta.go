// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cameronabrams/sandlercubics/eos"
	"github.com/cameronabrams/sandlercubics/state"
)

func deltaCmd() *cobra.Command {
	var T1, P1, T2, P2 float64
	var cpa, cpb, cpc, cpd float64
	cmd := &cobra.Command{
		Use:   "delta",
		Short: "property changes between two single-phase states",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st1, err := newState()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("cpa") {
				st1.SetCp(eos.CpPoly{A: cpa, B: cpb, C: cpc, D: cpd})
			}
			st2, err := newState()
			if err != nil {
				return err
			}
			if err := st1.SetT(T1); err != nil {
				return err
			}
			if err := st1.SetP(P1); err != nil {
				return err
			}
			if err := st2.SetT(T2); err != nil {
				return err
			}
			if err := st2.SetP(P2); err != nil {
				return err
			}
			res, err := state.Delta(st1, st2)
			if err != nil {
				return err
			}
			fmt.Printf("Δh = %.6g J/mol\n", res.Dh)
			fmt.Printf("Δs = %.6g J/mol·K\n", res.Ds)
			fmt.Printf("Δu = %.6g J/mol\n", res.Du)
			return nil
		},
	}
	cmd.Flags().Float64Var(&cpa, "cpa", 0, "Cp polynomial constant term [J/mol·K]")
	cmd.Flags().Float64Var(&cpb, "cpb", 0, "Cp polynomial linear term")
	cmd.Flags().Float64Var(&cpc, "cpc", 0, "Cp polynomial quadratic term")
	cmd.Flags().Float64Var(&cpd, "cpd", 0, "Cp polynomial cubic term")
	cmd.Flags().Float64Var(&T1, "T1", 0, "temperature of state 1 [K]")
	cmd.Flags().Float64Var(&P1, "P1", 0, "pressure of state 1 [Pa]")
	cmd.Flags().Float64Var(&T2, "T2", 0, "temperature of state 2 [K]")
	cmd.Flags().Float64Var(&P2, "P2", 0, "pressure of state 2 [Pa]")
	cmd.MarkFlagRequired("T1")
	cmd.MarkFlagRequired("P1")
	cmd.MarkFlagRequired("T2")
	cmd.MarkFlagRequired("P2")
	return cmd
}
