// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cpmech/gosl/utl"
	"github.com/spf13/cobra"

	"github.com/cameronabrams/sandlercubics/out"
)

func tableCmd() *cobra.Command {
	var P, Tmin, Tmax float64
	var npts int
	var output string
	cmd := &cobra.Command{
		Use:   "table",
		Short: "write a property table along an isobar (LaTeX or XLSX)",
		RunE: func(_ *cobra.Command, _ []string) error {
			f, err := family()
			if err != nil {
				return err
			}
			tab, err := out.Isobar(f, P, utl.LinSpace(Tmin, Tmax, npts))
			if err != nil {
				return err
			}
			if output == "" {
				return tab.WriteLaTeX(os.Stdout)
			}
			if strings.HasSuffix(output, ".xlsx") {
				if err := tab.SaveXLSX(output); err != nil {
					return err
				}
			} else {
				w, err := os.Create(output)
				if err != nil {
					return err
				}
				defer w.Close()
				if err := tab.WriteLaTeX(w); err != nil {
					return err
				}
			}
			fmt.Printf("wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().Float64VarP(&P, "pressure", "P", 0, "pressure [Pa]")
	cmd.Flags().Float64Var(&Tmin, "Tmin", 0, "lower temperature bound [K]")
	cmd.Flags().Float64Var(&Tmax, "Tmax", 0, "upper temperature bound [K]")
	cmd.Flags().IntVarP(&npts, "npts", "n", 11, "number of temperatures")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file: .tex/.xlsx (default: LaTeX to stdout)")
	cmd.MarkFlagRequired("pressure")
	cmd.MarkFlagRequired("Tmin")
	cmd.MarkFlagRequired("Tmax")
	return cmd
}
