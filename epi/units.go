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

package epi

import (
	"fmt"

	"github.com/ctessum/unit"
)

const (
	ugPerKg = 1.0e9
	ppbPer1 = 1.0e9
)

// ConcentrationPPB converts an ozone concentration to ppb. c can either be
// a mass concentration [kg m-3], which is converted using UGM3PerPPB, or
// a dimensionless mixing ratio [mol/mol].
func ConcentrationPPB(c *unit.Unit) (float64, error) {
	switch {
	case c == nil:
		return 0, fmt.Errorf("epi: missing ozone concentration")
	case c.Dimensions().Matches(unit.KilogramPerMeter3):
		return c.Value() * ugPerKg / UGM3PerPPB, nil
	case c.Dimensions().Matches(unit.Dimless):
		return c.Value() * ppbPer1, nil
	default:
		return 0, fmt.Errorf("epi: ozone concentration units (%s) should be %s or dimensionless",
			c.Dimensions().String(), unit.KilogramPerMeter3.String())
	}
}

// UGM3 returns a mass concentration of v μg/m³.
func UGM3(v float64) *unit.Unit {
	return unit.New(v/ugPerKg, unit.KilogramPerMeter3)
}

// PPB returns a mixing ratio of v ppb.
func PPB(v float64) *unit.Unit {
	return unit.New(v/ppbPer1, unit.Dimless)
}
