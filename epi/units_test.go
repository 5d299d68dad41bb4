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
	"testing"

	"github.com/ctessum/unit"
	"github.com/gonum/floats"
)

func TestConcentrationPPB(t *testing.T) {
	var tests = []struct {
		in   *unit.Unit
		want float64
	}{
		{in: UGM3(WHOThresholdUGM3), want: ThresholdPPB},
		{in: UGM3(120), want: 60},
		{in: PPB(75), want: 75},
		{in: unit.New(6.0e-8, unit.Dimless), want: 60},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%v", test.in), func(t *testing.T) {
			have, err := ConcentrationPPB(test.in)
			if err != nil {
				t.Fatal(err)
			}
			if !floats.EqualWithinRel(have, test.want, 1e-12) {
				t.Errorf("have %g, want %g", have, test.want)
			}
		})
	}
}

func TestConcentrationPPBBadUnits(t *testing.T) {
	if _, err := ConcentrationPPB(unit.New(1, unit.Meter3)); err == nil {
		t.Error("expected an error for volume units")
	}
	if _, err := ConcentrationPPB(nil); err == nil {
		t.Error("expected an error for a nil concentration")
	}
}
