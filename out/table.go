// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/cameronabrams/sandlercubics/eos"
)

// Row is one line of a property table. Two-phase temperatures produce two
// rows, vapor first.
type Row struct {
	T     float64 // [K]
	P     float64 // [Pa]
	Phase string
	Z     float64
	V     float64 // [m³/mol]
	Hdep  float64 // [J/mol]
	Sdep  float64 // [J/(mol·K)]
}

// Table is a property table over a sweep of conditions
type Table struct {
	Title string
	EOS   string
	Rows  []Row
}

// Isobar evaluates the family along a temperature sweep at constant
// pressure and collects the retained phases into table rows
func Isobar(f eos.Family, P float64, Ts []float64) (*Table, error) {
	tab := &Table{
		Title: fmt.Sprintf("Isobar at P = %g Pa", P),
		EOS:   f.Name(),
	}
	for _, T := range Ts {
		pt, err := eos.Eval(f, T, P)
		if err != nil {
			return nil, err
		}
		for i, ph := range pt.Phases.All {
			tab.Rows = append(tab.Rows, Row{
				T: T, P: P, Phase: ph.Kind.String(),
				Z: ph.Z, V: pt.V(i),
				Hdep: pt.Deps[i].Hdep, Sdep: pt.Deps[i].Sdep,
			})
		}
	}
	return tab, nil
}

// WriteLaTeX writes the table as a LaTeX tabular environment
func (o *Table) WriteLaTeX(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%% %s (%s)\n", o.Title, o.EOS); err != nil {
		return err
	}
	fmt.Fprintln(w, `\begin{tabular}{rrlrrrr}`)
	fmt.Fprintln(w, `\hline`)
	fmt.Fprintln(w, `$T$ [K] & $P$ [Pa] & phase & $Z$ & $v$ [m$^3$/mol] & $h^{dep}$ [J/mol] & $s^{dep}$ [J/mol\,K] \\`)
	fmt.Fprintln(w, `\hline`)
	for _, r := range o.Rows {
		_, err := fmt.Fprintf(w, "%.2f & %.4g & %s & %.6f & %.6g & %.6g & %.6g \\\\\n",
			r.T, r.P, r.Phase, r.Z, r.V, r.Hdep, r.Sdep)
		if err != nil {
			return err
		}
	}
	fmt.Fprintln(w, `\hline`)
	_, err := fmt.Fprintln(w, `\end{tabular}`)
	return err
}

// SaveXLSX writes the table as a spreadsheet
func (o *Table) SaveXLSX(path string) error {
	fx := excelize.NewFile()
	defer fx.Close()
	const sheet = "Sheet1"
	header := []interface{}{"T [K]", "P [Pa]", "phase", "Z", "v [m3/mol]", "Hdep [J/mol]", "Sdep [J/mol.K]"}
	for j, h := range header {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := fx.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for i, r := range o.Rows {
		vals := []interface{}{r.T, r.P, r.Phase, r.Z, r.V, r.Hdep, r.Sdep}
		for j, v := range vals {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := fx.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return fx.SaveAs(path)
}
