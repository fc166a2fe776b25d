// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cameronabrams/sandlercubics/out"
)

func isothermCmd() *cobra.Command {
	var Ts []float64
	var vmin, vmax float64
	var npts int
	var dome bool
	var output string
	cmd := &cobra.Command{
		Use:   "isotherm",
		Short: "plot P-v isotherms or the saturation dome",
		RunE: func(_ *cobra.Command, _ []string) error {
			f, err := family()
			if err != nil {
				return err
			}
			if dome {
				if len(Ts) != 1 {
					return fmt.Errorf("the dome plot takes exactly one -T: the lower temperature bound")
				}
				if err := out.PlotDome(f, Ts[0], npts, output); err != nil {
					return err
				}
			} else {
				if len(Ts) == 0 {
					return fmt.Errorf("at least one -T is required")
				}
				if err := out.PlotIsotherms(f, Ts, vmin, vmax, npts, output); err != nil {
					return err
				}
			}
			fmt.Printf("wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().Float64SliceVarP(&Ts, "temperature", "T", nil, "isotherm temperature(s) [K]; repeatable")
	cmd.Flags().Float64Var(&vmin, "vmin", 1e-4, "lower molar volume bound [m³/mol]")
	cmd.Flags().Float64Var(&vmax, "vmax", 1e-1, "upper molar volume bound [m³/mol]")
	cmd.Flags().IntVarP(&npts, "npts", "n", 201, "points per curve")
	cmd.Flags().BoolVar(&dome, "dome", false, "plot Psat(T) instead of isotherms")
	cmd.Flags().StringVarP(&output, "output", "o", "isotherms.png", "output image file")
	return cmd
}
