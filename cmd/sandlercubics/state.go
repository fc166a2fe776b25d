// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func stateCmd() *cobra.Command {
	var T, P float64
	cmd := &cobra.Command{
		Use:   "state",
		Short: "display the thermodynamic state at given T and P",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := newState()
			if err != nil {
				return err
			}
			if err := st.SetT(T); err != nil {
				return err
			}
			if err := st.SetP(P); err != nil {
				return err
			}
			report, err := st.Report()
			if err != nil {
				return err
			}
			fmt.Print(report)
			return nil
		},
	}
	cmd.Flags().Float64VarP(&T, "temperature", "T", 0, "temperature [K]")
	cmd.Flags().Float64VarP(&P, "pressure", "P", 0, "pressure [Pa]")
	cmd.MarkFlagRequired("temperature")
	cmd.MarkFlagRequired("pressure")
	return cmd
}
