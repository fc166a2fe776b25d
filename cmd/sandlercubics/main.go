// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sandlercubics computes pure-fluid thermodynamic properties from
// cubic equations of state.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

const banner = `
                      ____
   _______  __/ /_  (_)_________
  / ___/ / / / __ \/ / ___/ ___/
 / /__/ /_/ / /_/ / / /__(__  )
 \___/\__,_/_.___/_/\___/____/  v` + version + `
`

var showBanner bool

func main() {
	rootCmd := &cobra.Command{
		Use:     "sandlercubics",
		Short:   "cubic equation-of-state calculations for pure fluids",
		Long:    "Compute compressibility, molar volume, departure functions and\nvapor-liquid saturation conditions from cubic equations of state\n(van der Waals, Soave-Redlich-Kwong, Peng-Robinson).",
		Version: version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if showBanner {
				fmt.Print(banner)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&showBanner, "banner", "b", false, "toggle banner message")
	addFluidFlags(rootCmd)

	rootCmd.AddCommand(stateCmd())
	rootCmd.AddCommand(satCmd())
	rootCmd.AddCommand(deltaCmd())
	rootCmd.AddCommand(availCmd())
	rootCmd.AddCommand(isothermCmd())
	rootCmd.AddCommand(tableCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
