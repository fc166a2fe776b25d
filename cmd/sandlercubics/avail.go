// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cameronabrams/sandlercubics/eos"
)

func availCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "avail",
		Short: "list available compounds and equation-of-state families",
		RunE: func(_ *cobra.Command, _ []string) error {
			db, err := database()
			if err != nil {
				return err
			}
			fmt.Printf("families : %s\n", strings.Join(eos.Families(), ", "))
			fmt.Println("compounds:")
			for _, c := range db.Compounds {
				fmt.Printf("  %v\n", c)
			}
			return nil
		},
	}
}
