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
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestLipsett2011(t *testing.T) {
	var tests = []struct {
		in, out float64
	}{
		{in: -10, out: 1},
		{in: 0, out: 1},
		{in: 50, out: 1},
		{in: 60, out: 1.11},
		{in: 70, out: 1.11 * 1.11},
	}

	for _, test := range tests {
		t.Run(fmt.Sprint(test.in), func(t *testing.T) {
			have := Lipsett2011.HR(test.in)
			if !floats.EqualWithinAbsOrRel(have, test.out, 1e-12, 1e-12) {
				t.Errorf("%g = %g, want %g", test.in, have, test.out)
			}
		})
	}
}

func TestCoxThreshold(t *testing.T) {
	c := Cox{Beta: 0.1, Threshold: 10}
	a := c.HR(10)
	if a != 1 {
		t.Errorf("for z=%g: %g != %g", 10.0, a, 1.0)
	}
	b := c.HR(10.001)
	if b <= 1 {
		t.Errorf("for z just above threshold: %g should be > 1", b)
	}
	d := c.HR(20)
	if !floats.EqualWithinRel(d, math.E, 1e-15) {
		t.Errorf("for z=%g: %g != %g", 20.0, d, math.Exp(1))
	}
}

func TestAttributableMortalityMatchesOutcome(t *testing.T) {
	const y0 = 800.0 / 100000
	for _, z := range []float64{40, 55, 80, 150} {
		t.Run(fmt.Sprint(z), func(t *testing.T) {
			have := AttributableMortality(z, 250000, y0, Turner2016)
			want := Outcome(250000, z, Io(z, Turner2016, y0), Turner2016)
			if !floats.EqualWithinAbsOrRel(have, want, 1e-10, 1e-12) {
				t.Errorf("AttributableMortality = %g, Outcome = %g", have, want)
			}
		})
	}
}

func TestAttributableFraction(t *testing.T) {
	have := AttributableFraction(60, Lipsett2011)
	want := 0.11 / 1.11
	if !floats.EqualWithinRel(have, want, 1e-12) {
		t.Errorf("%g != %g", have, want)
	}
	if f := AttributableFraction(50, Lipsett2011); f != 0 {
		t.Errorf("fraction at threshold = %g, want 0", f)
	}
}

// This example calculates deaths caused by ambient ozone in a
// city using a model other than the default one for the cause.
func Example() {
	var (
		// I represents currently observed respiratory deaths per 100,000
		// people in this region.
		I = 80.0

		// p is the number of people in the city.
		p = 2000000.0

		// z is the AMDA8 ozone concentration in ppb.
		z = 68.0
	)

	deaths := AttributableMortality(z, p, I/100000, Lipsett2011WarmSeason)
	fmt.Printf("respiratory deaths (warm season model): %.0f\n", deaths)

	deaths = AttributableMortality(z, p, I/100000, Lipsett2011)
	fmt.Printf("respiratory deaths (all year model): %.0f\n", deaths)

	// Output:
	// respiratory deaths (warm season model): 109
	// respiratory deaths (all year model): 274
}
