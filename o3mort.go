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

// Package o3mort estimates premature deaths caused by ground-level ozone
// for population scenarios. The exposure-response calculations themselves
// are in package epi; this package combines them across causes of death
// and reads and writes scenarios and results.
package o3mort

import (
	"fmt"

	"github.com/gonum/floats"
	"github.com/spatialmodel/o3mort/epi"
)

// Version gives the version number.
const Version = "1.0.0"

// Scenario is a population exposed to a single ozone concentration.
type Scenario struct {
	Name string

	// Concentration is the AMDA8 ozone concentration in ppb.
	Concentration float64

	// Population is the number of people exposed.
	Population float64

	Region epi.Region
}

// Estimate holds premature deaths per year caused by ozone in a scenario.
type Estimate struct {
	Scenario

	Respiratory, Cardiovascular, LungCancer float64
}

// ByCause returns the deaths from cause c.
func (e *Estimate) ByCause(c epi.Cause) float64 {
	switch c {
	case epi.Respiratory:
		return e.Respiratory
	case epi.Cardiovascular:
		return e.Cardiovascular
	case epi.LungCancer:
		return e.LungCancer
	default:
		panic(fmt.Errorf("o3mort: invalid cause %v", c))
	}
}

// Total returns deaths from all causes.
func (e *Estimate) Total() float64 {
	return floats.Sum([]float64{e.Respiratory, e.Cardiovascular, e.LungCancer})
}

// Calculate estimates premature deaths for scenario s.
func Calculate(s Scenario) (*Estimate, error) {
	e := &Estimate{Scenario: s}
	for _, c := range epi.Causes() {
		m, err := epi.Mortality(c, s.Concentration, s.Population, s.Region)
		if err != nil {
			return nil, fmt.Errorf("o3mort: scenario %q: %w", s.Name, err)
		}
		switch c {
		case epi.Respiratory:
			e.Respiratory = m
		case epi.Cardiovascular:
			e.Cardiovascular = m
		case epi.LungCancer:
			e.LungCancer = m
		}
	}
	return e, nil
}

// CalculateAll estimates premature deaths for each scenario, stopping at
// the first error.
func CalculateAll(scenarios []Scenario) ([]*Estimate, error) {
	o := make([]*Estimate, len(scenarios))
	for i, s := range scenarios {
		e, err := Calculate(s)
		if err != nil {
			return nil, err
		}
		o[i] = e
	}
	return o, nil
}

// CompareRegions returns one scenario for each region, all with
// concentration z (ppb) and population p.
func CompareRegions(z, p float64) []Scenario {
	var o []Scenario
	for _, r := range epi.Regions() {
		o = append(o, Scenario{
			Name:          fmt.Sprintf("%s at %g ppb", r, z),
			Concentration: z,
			Population:    p,
			Region:        r,
		})
	}
	return o
}

// DemoScenarios returns example scenarios: moderate exposure in China,
// high exposure in the US, exposure below the threshold, and a regional
// comparison.
func DemoScenarios() []Scenario {
	s := []Scenario{
		{Name: "China, moderate exposure", Concentration: 60, Population: 1000000, Region: epi.China},
		{Name: "US, high exposure", Concentration: 75, Population: 500000, Region: epi.US},
		{Name: "US, below threshold", Concentration: 40, Population: 1000000, Region: epi.US},
	}
	return append(s, CompareRegions(65, 1000000)...)
}
