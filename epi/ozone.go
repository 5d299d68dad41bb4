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
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gonum/floats"
)

// Concentrations in this package are AMDA8 (annual average of the daily
// maximum 8-hour ozone concentration) in ppb.
const (
	// ThresholdPPB is the concentration at or below which no excess
	// mortality is modeled. It is the WHO guideline of 100 μg/m³.
	ThresholdPPB = WHOThresholdUGM3 / UGM3PerPPB

	// BetaUnitWidth is the concentration increment, in ppb, that
	// published relative risks are reported for (20 μg/m³).
	BetaUnitWidth = 20 / UGM3PerPPB

	// WHOThresholdUGM3 is the WHO AMDA8 ozone guideline in μg/m³.
	WHOThresholdUGM3 = 100.0

	// UGM3PerPPB converts ozone ppb to μg/m³ at EU standard
	// conditions (20°C).
	UGM3PerPPB = 2.0
)

// Alternative no-effect thresholds reported for China.
const (
	// Turner2016ThresholdPPB is an AMDA8 threshold (range 26.7-31.1 ppb)
	// from Turner et al. 2016.
	Turner2016ThresholdPPB = 26.7

	// Jerrett2009ThresholdPPB is a 6mMDA1 threshold (range 33.3-41.9 ppb)
	// from Jerrett et al. 2009. 6mMDA1 is the average daily maximum
	// 1-hour concentration from April to September.
	Jerrett2009ThresholdPPB = 33.3
)

// ErrInvalidRegion is returned when a region is not one of the regions
// that baseline mortality rates are available for.
var ErrInvalidRegion = errors.New("invalid region")

// Region is a geographic region with its own baseline mortality rates.
type Region int

// Regions with WHO 2016 baseline mortality rates.
const (
	China Region = iota
	US
	numRegions
)

var regionNames = [numRegions]string{
	China: "china",
	US:    "us",
}

func (r Region) valid() bool { return r >= 0 && r < numRegions }

func (r Region) String() string {
	if !r.valid() {
		return fmt.Sprintf("Region(%d)", int(r))
	}
	return regionNames[r]
}

// Regions returns all valid regions.
func Regions() []Region { return []Region{China, US} }

// ParseRegion returns the region named s. Matching is case-insensitive.
func ParseRegion(s string) (Region, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for r, n := range regionNames {
		if n == name {
			return Region(r), nil
		}
	}
	return 0, fmt.Errorf("epi: %w %q: must be one of %q", ErrInvalidRegion, s, regionNames[:])
}

// Cause is a cause of death that ozone exposure contributes to.
type Cause int

// Causes of death.
const (
	Respiratory Cause = iota
	Cardiovascular
	LungCancer
	numCauses
)

var causeNames = [numCauses]string{
	Respiratory:    "Respiratory",
	Cardiovascular: "Cardiovascular",
	LungCancer:     "LungCancer",
}

func (c Cause) String() string {
	if c < 0 || c >= numCauses {
		return fmt.Sprintf("Cause(%d)", int(c))
	}
	return causeNames[c]
}

// Causes returns all causes of death in the model.
func Causes() []Cause { return []Cause{Respiratory, Cardiovascular, LungCancer} }

// Lipsett2011 is a Cox proportional-hazards model for respiratory
// mortality from the study:
//
// Lipsett, M. J., Ostro, B. D., Reynolds, P., Goldberg, D., Hertz, A.,
// Jerrett, M., … Bernstein, L. (2011). Long-term exposure to air pollution
// and cardiorespiratory disease in the California Teachers Study cohort.
// American Journal of Respiratory and Critical Care Medicine, 184(7), 828–835.
var Lipsett2011 = Cox{
	Beta:      math.Log(1.11) / BetaUnitWidth,
	Threshold: ThresholdPPB,
	Label:     "Lipsett2011",
}

// Lipsett2011WarmSeason is the warm-season-only version of Lipsett2011.
var Lipsett2011WarmSeason = Cox{
	Beta:      math.Log(1.04) / BetaUnitWidth,
	Threshold: ThresholdPPB,
	Label:     "Lipsett2011WarmSeason",
}

// Krewski2009Cardiovascular is a Cox proportional-hazards model for
// cardiovascular mortality from the studies:
//
// Krewski, D., Jerrett, M., Burnett, R. T., Ma, R., Hughes, E., Shi, Y., … Thun, M. J. (2009).
// Extended Follow-Up and Spatial Analysis of the American Cancer Society Study Linking
// Particulate Air Pollution and Mortality. Retrieved from http://www.ncbi.nlm.nih.gov/pubmed/19627030
//
// Smith, K. R., Jerrett, M., Anderson, H. R., Burnett, R. T., Stone, V.,
// Derwent, R., … Thurston, G. (2009). Public health benefits of strategies to
// reduce greenhouse-gas emissions: health implications of short-lived
// greenhouse pollutants. The Lancet, 374(9707), 2104–2114.
var Krewski2009Cardiovascular = Cox{
	Beta:      math.Log(1.02) / BetaUnitWidth,
	Threshold: ThresholdPPB,
	Label:     "Krewski2009Cardiovascular",
}

// Jerrett2009WarmSeason is a warm-season-only cardiovascular model from:
//
// Jerrett, M., Burnett, R. T., Pope, C. A., Ito, K., Thurston, G., Krewski, D.,
// … Thun, M. (2009). Long-term ozone exposure and mortality. New England
// Journal of Medicine, 360(11), 1085–1095.
var Jerrett2009WarmSeason = Cox{
	Beta:      math.Abs(math.Log(0.98)) / BetaUnitWidth,
	Threshold: ThresholdPPB,
	Label:     "Jerrett2009WarmSeason",
}

// Turner2016 is a Cox proportional-hazards model for lung cancer
// mortality from the study:
//
// Turner, M. C., Jerrett, M., Pope, C. A., Krewski, D., Gapstur, S. M.,
// Diver, W. R., … Burnett, R. T. (2016). Long-Term Ozone Exposure and
// Mortality in a Large Prospective Study. American Journal of Respiratory
// and Critical Care Medicine, 193(10), 1134–1142.
//
// The published hazard ratio is below one; its magnitude is used.
var Turner2016 = Cox{
	Beta:      math.Abs(math.Log(0.96)) / BetaUnitWidth,
	Threshold: ThresholdPPB,
	Label:     "Turner2016",
}

// Krewski2009LungCancer is the lung cancer hazard ratio reported by
// Krewski et al. (2009). Beta is negative, as published.
var Krewski2009LungCancer = Cox{
	Beta:      math.Log(0.97) / BetaUnitWidth,
	Threshold: ThresholdPPB,
	Label:     "Krewski2009LungCancer",
}

// Jerrett2013LungCancer is the lung cancer hazard ratio from:
//
// Jerrett, M., Burnett, R. T., Beckerman, B. S., Turner, M. C., Krewski, D.,
// Thurston, G., … Thun, M. J. (2013). Spatial analysis of air pollution and
// mortality in California. American Journal of Respiratory and Critical
// Care Medicine, 188(5), 593–599.
//
// Beta is negative, as published.
var Jerrett2013LungCancer = Cox{
	Beta:      math.Log(0.93) / BetaUnitWidth,
	Threshold: ThresholdPPB,
	Label:     "Jerrett2013LungCancer",
}

// whoDeaths holds WHO 2016 annual deaths (thousands) for one cause in one
// region, and the population (thousands) those deaths were counted in.
//
// WHO methods and data sources for global causes of death 2000-2016.
// Global Health Estimates Technical Paper WHO/HIS/IER/GHE/2018.3.
// Geneva: World Health Organization; 2018.
type whoDeaths struct {
	deaths     []float64
	population float64
}

func (w whoDeaths) rate() float64 {
	return floats.Sum(w.deaths) / w.population
}

const (
	chinaPop2016 = 1411415
	usPop2016    = 322180
)

type causeParams struct {
	hr       Cox
	baseline [numRegions]whoDeaths
}

var params = [numCauses]causeParams{
	Respiratory: {
		hr: Lipsett2011,
		baseline: [numRegions]whoDeaths{
			// COPD 895.4, asthma 24.3, other 18.6;
			// lower respiratory infections 177.3, upper 0.2.
			China: {deaths: []float64{938.2, 177.5}, population: chinaPop2016},
			// COPD 193.2, asthma 4.2, other 49.6;
			// lower respiratory infections 66.2, upper 0.2.
			US: {deaths: []float64{66.4, 246.9}, population: usPop2016},
		},
	},
	Cardiovascular: {
		hr: Krewski2009Cardiovascular,
		baseline: [numRegions]whoDeaths{
			// Rheumatic 85.0, hypertensive 276.5, ischaemic 1927.8,
			// stroke 2018.0, cardiomyopathy 37.9, other circulatory 130.4.
			China: {deaths: []float64{4475.7}, population: chinaPop2016},
			// Rheumatic 3.7, hypertensive 46.5, ischaemic 500.3,
			// stroke 147.3, cardiomyopathy 32.5, other circulatory 107.0.
			US: {deaths: []float64{837.2}, population: usPop2016},
		},
	},
	LungCancer: {
		hr: Turner2016,
		baseline: [numRegions]whoDeaths{
			China: {deaths: []float64{637.7}, population: chinaPop2016},
			US:    {deaths: []float64{84.7}, population: usPop2016},
		},
	},
}

// HR returns the exposure-response model used for cause c.
func (c Cause) HR() HRer { return params[c].hr }

// BaselineRate returns the baseline mortality rate for cause c in region r,
// in deaths per person per year.
func BaselineRate(c Cause, r Region) (float64, error) {
	if !r.valid() {
		return 0, fmt.Errorf("epi: %w: %v", ErrInvalidRegion, r)
	}
	if c < 0 || c >= numCauses {
		return 0, fmt.Errorf("epi: invalid cause: %v", c)
	}
	return params[c].baseline[r].rate(), nil
}

// Mortality returns the number of deaths per year from cause c attributable
// to AMDA8 ozone concentration z (ppb) in a population of p people living
// in region r. Neither z nor p is range checked: negative populations
// give negative results.
func Mortality(c Cause, z, p float64, r Region) (float64, error) {
	y0, err := BaselineRate(c, r)
	if err != nil {
		return 0, err
	}
	return AttributableMortality(z, p, y0, params[c].hr), nil
}

// RespiratoryMortality returns respiratory deaths per year attributable to
// ozone concentration z (ppb) in population p of region r.
func RespiratoryMortality(z, p float64, r Region) (float64, error) {
	return Mortality(Respiratory, z, p, r)
}

// CardiovascularMortality returns cardiovascular deaths per year
// attributable to ozone concentration z (ppb) in population p of region r.
func CardiovascularMortality(z, p float64, r Region) (float64, error) {
	return Mortality(Cardiovascular, z, p, r)
}

// LungCancerMortality returns lung cancer deaths per year attributable to
// ozone concentration z (ppb) in population p of region r.
func LungCancerMortality(z, p float64, r Region) (float64, error) {
	return Mortality(LungCancer, z, p, r)
}
