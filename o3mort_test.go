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
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/gonum/floats"
	"github.com/spatialmodel/o3mort/epi"
)

const testTolerance = 1.e-10

func TestCalculate(t *testing.T) {
	var tests = []struct {
		s                  Scenario
		resp, cardio, lung float64
		total              float64
	}{
		{
			s:    Scenario{Name: "china", Concentration: 60, Population: 1000000, Region: epi.China},
			resp: 78.33618380480934, cardio: 62.17790198447079, lung: 18.072643411044975,
			total: 78.33618380480934 + 62.17790198447079 + 18.072643411044975,
		},
		{
			s:    Scenario{Name: "us", Concentration: 75, Population: 500000, Region: epi.US},
			resp: 111.65631482879797, cardio: 62.75633954912258, lung: 12.753123367944417,
			total: 111.65631482879797 + 62.75633954912258 + 12.753123367944417,
		},
		{
			s: Scenario{Name: "low", Concentration: 40, Population: 1000000, Region: epi.US},
		},
	}
	for _, test := range tests {
		t.Run(test.s.Name, func(t *testing.T) {
			e, err := Calculate(test.s)
			if err != nil {
				t.Fatal(err)
			}
			for _, x := range []struct {
				name       string
				have, want float64
			}{
				{"respiratory", e.Respiratory, test.resp},
				{"cardiovascular", e.Cardiovascular, test.cardio},
				{"lung cancer", e.LungCancer, test.lung},
				{"total", e.Total(), test.total},
			} {
				if !floats.EqualWithinAbsOrRel(x.have, x.want, testTolerance, testTolerance) {
					t.Errorf("%s: have %v, want %v", x.name, x.have, x.want)
				}
			}
			if e.Scenario != test.s {
				t.Errorf("scenario not carried into estimate: %+v", e.Scenario)
			}
		})
	}
}

func TestCalculateMatchesEpi(t *testing.T) {
	s := Scenario{Name: "x", Concentration: 83.2, Population: 7654321, Region: epi.US}
	e, err := Calculate(s)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range epi.Causes() {
		want, err := epi.Mortality(c, s.Concentration, s.Population, s.Region)
		if err != nil {
			t.Fatal(err)
		}
		if have := e.ByCause(c); have != want {
			t.Errorf("%v: have %v, want %v", c, have, want)
		}
	}
}

func TestCalculateInvalidRegion(t *testing.T) {
	_, err := CalculateAll([]Scenario{
		{Name: "ok", Concentration: 60, Population: 1, Region: epi.China},
		{Name: "brazil", Concentration: 60, Population: 1000000, Region: epi.Region(9)},
	})
	if !errors.Is(err, epi.ErrInvalidRegion) {
		t.Fatalf("error = %v, want ErrInvalidRegion", err)
	}
}

func TestDemoScenarios(t *testing.T) {
	estimates, err := CalculateAll(DemoScenarios())
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{158.59, 187.17, 0, 234.19, 232.58}
	if len(estimates) != len(want) {
		t.Fatalf("have %d estimates, want %d", len(estimates), len(want))
	}
	for i, e := range estimates {
		if have := fmt.Sprintf("%.2f", e.Total()); have != fmt.Sprintf("%.2f", want[i]) {
			t.Errorf("%s: total = %s, want %.2f", e.Name, have, want[i])
		}
	}
}

func TestCompareRegions(t *testing.T) {
	s := CompareRegions(65, 1000000)
	if len(s) != len(epi.Regions()) {
		t.Fatalf("have %d scenarios", len(s))
	}
	for i, r := range epi.Regions() {
		if s[i].Region != r || s[i].Concentration != 65 || s[i].Population != 1000000 {
			t.Errorf("scenario %d = %+v", i, s[i])
		}
	}
}

// This example reproduces a regional comparison of ozone deaths
// at equal exposure and population.
func Example() {
	estimates, err := CalculateAll(CompareRegions(65, 1000000))
	if err != nil {
		panic(err)
	}
	if err := WriteTable(os.Stdout, estimates); err != nil {
		panic(err)
	}
	// Output:
	// Scenario         Region  Ozone (ppb)  Population  Respiratory  Cardiovascular  Lung cancer  Total
	// china at 65 ppb  CHINA   65           1,000,000   114.54       92.81           26.84        234.19
	// us at 65 ppb     US      65           1,000,000   140.91       76.05           15.61        232.58
}
