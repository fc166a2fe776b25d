// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cameronabrams/sandlercubics/eos"
)

func satCmd() *cobra.Command {
	var T, P float64
	cmd := &cobra.Command{
		Use:   "sat",
		Short: "solve vapor-liquid saturation conditions (give -T or -P)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := family()
			if err != nil {
				return err
			}
			var res eos.SatResult
			switch {
			case cmd.Flags().Changed("temperature"):
				res, err = eos.SaturationP(f, T)
			case cmd.Flags().Changed("pressure"):
				res, err = eos.SaturationT(f, P)
			default:
				return fmt.Errorf("either -T or -P must be given")
			}
			if err != nil {
				return err
			}
			fmt.Printf("Tsat = %.4f K\n", res.T)
			fmt.Printf("Psat = %.6g Pa\n", res.P)
			fmt.Printf("Hvap = %.6g J/mol\n", res.Hvap)
			fmt.Printf("Svap = %.6g J/mol·K\n", res.Svap)
			for i, ph := range res.Pt.Phases.All {
				fmt.Printf("%-6s: Z = %.6f  v = %.6g m³/mol\n", ph.Kind, ph.Z, res.Pt.V(i))
			}
			return nil
		},
	}
	cmd.Flags().Float64VarP(&T, "temperature", "T", 0, "temperature [K]: solve for Psat")
	cmd.Flags().Float64VarP(&P, "pressure", "P", 0, "pressure [Pa]: solve for Tsat")
	return cmd
}
