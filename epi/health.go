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

// Package epi holds a collection of functions for calculating the health
// impacts of ground-level ozone.
package epi

import "math"

// HRer is an interface for any type that can calculate the hazard ratio
// caused by concentration z.
type HRer interface {
	HR(z float64) float64
	Name() string
}

// Cox implements a Cox proportional hazards model.
type Cox struct {
	// Beta is the model coefficient
	Beta float64

	// Threshold is the concentration below which health effects are assumed
	// to be zero.
	Threshold float64

	// Label is the name of the function.
	Label string
}

// HR calculates the hazard ratio caused by concentration z.
func (c Cox) HR(z float64) float64 {
	if z > c.Threshold {
		return math.Exp(c.Beta * (z - c.Threshold))
	}
	return 1
}

// Name returns the label for this function.
func (c Cox) Name() string { return c.Label }

// Io returns the underlying incidence rate where
// the reported incidence rate is I, concentration is z,
// and hr specifies the hazard ratio as a function of z.
func Io(z float64, hr HRer, I float64) float64 {
	return I / hr.HR(z)
}

// Outcome returns the number of incidences occuring in population p when
// exposed to concentration z given underlying incidence rate Io and
// hazard relationship hr(z), as presented in Equation 2 of:
//
// Apte JS, Marshall JD, Cohen AJ, Brauer M (2015) Addressing Global
// Mortality from Ambient PM2.5. Environmental Science and Technology
// 49(13):8057–8066.
func Outcome(p, z, Io float64, hr HRer) float64 {
	return p * Io * (hr.HR(z) - 1)
}

// AttributableFraction returns the fraction of the baseline incidence at
// concentration z that is caused by the exposure, (RR-1)/RR.
func AttributableFraction(z float64, hr HRer) float64 {
	rr := hr.HR(z)
	return (rr - 1) / rr
}

// AttributableMortality returns the number of deaths per year in
// population p attributable to concentration z, where y0 is the
// baseline mortality rate in deaths per person per year.
//
// It is algebraically equal to Outcome(p, z, Io(z, hr, y0), hr) and is
// exactly zero whenever hr(z) == 1.
func AttributableMortality(z, p, y0 float64, hr HRer) float64 {
	return y0 * AttributableFraction(z, hr) * p
}
