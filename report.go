/*
Copyright © 2017 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package o3mort

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/spatialmodel/o3mort/epi"
	"github.com/tealeg/xlsx"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// reportColumns are the column headings of tables and spreadsheets.
var reportColumns = []string{
	"Scenario", "Region", "Ozone (ppb)", "Population",
	"Respiratory", "Cardiovascular", "Lung cancer", "Total",
}

// WriteTable writes an aligned plain-text table of estimates to w, in
// premature deaths per year.
func WriteTable(w io.Writer, estimates []*Estimate) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(reportColumns, "\t"))
	for _, e := range estimates {
		row := []string{
			e.Name,
			strings.ToUpper(e.Region.String()),
			fmt.Sprintf("%.6g", e.Concentration),
			p.Sprintf("%d", int64(math.Round(e.Population))),
		}
		for _, c := range epi.Causes() {
			row = append(row, fmt.Sprintf("%.2f", e.ByCause(c)))
		}
		row = append(row, fmt.Sprintf("%.2f", e.Total()))
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// WriteXLSX saves estimates to a new spreadsheet at path.
func WriteXLSX(path string, estimates []*Estimate) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Estimates")
	if err != nil {
		return fmt.Errorf("o3mort: creating spreadsheet: %v", err)
	}
	header := sheet.AddRow()
	for _, c := range reportColumns {
		header.AddCell().SetString(c)
	}
	for _, e := range estimates {
		row := sheet.AddRow()
		row.AddCell().SetString(e.Name)
		row.AddCell().SetString(e.Region.String())
		row.AddCell().SetFloat(e.Concentration)
		row.AddCell().SetFloat(e.Population)
		for _, c := range epi.Causes() {
			row.AddCell().SetFloat(e.ByCause(c))
		}
		row.AddCell().SetFloat(e.Total())
	}
	if err := f.Save(path); err != nil {
		return fmt.Errorf("o3mort: saving spreadsheet: %v", err)
	}
	return nil
}
