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
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spatialmodel/o3mort/epi"
	"github.com/spf13/cast"
)

// scenarioFile is the TOML layout of a scenario file:
//
//	[[Scenario]]
//	Name = "Beijing"
//	Concentration = 120.0
//	Units = "ug/m3"
//	Population = 21500000
//	Region = "china"
type scenarioFile struct {
	Scenario []scenarioRecord
}

type scenarioRecord struct {
	Name string

	// Concentration and Population may be written as TOML integers or
	// floats.
	Concentration, Population interface{}

	// Units is "ppb" (the default) or "ug/m3".
	Units string

	Region string
}

// ReadScenarios reads scenarios from TOML-formatted r. Concentrations in
// μg/m³ are converted to ppb.
func ReadScenarios(r io.Reader) ([]Scenario, error) {
	var f scenarioFile
	if _, err := toml.DecodeReader(r, &f); err != nil {
		return nil, fmt.Errorf("o3mort: reading scenario file: %v", err)
	}
	if len(f.Scenario) == 0 {
		return nil, fmt.Errorf("o3mort: scenario file does not contain any [[Scenario]] tables")
	}
	o := make([]Scenario, len(f.Scenario))
	for i, rec := range f.Scenario {
		s, err := rec.scenario()
		if err != nil {
			name := rec.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i+1)
			}
			return nil, fmt.Errorf("o3mort: scenario %s: %w", name, err)
		}
		o[i] = s
	}
	return o, nil
}

func (rec scenarioRecord) scenario() (Scenario, error) {
	s := Scenario{Name: rec.Name}
	var err error
	if rec.Concentration == nil {
		return s, fmt.Errorf("missing Concentration")
	}
	if s.Concentration, err = cast.ToFloat64E(rec.Concentration); err != nil {
		return s, fmt.Errorf("Concentration: %v", err)
	}
	if s.Concentration, err = ConvertConcentration(s.Concentration, rec.Units); err != nil {
		return s, err
	}
	if rec.Population == nil {
		return s, fmt.Errorf("missing Population")
	}
	if s.Population, err = cast.ToFloat64E(rec.Population); err != nil {
		return s, fmt.Errorf("Population: %v", err)
	}
	if s.Region, err = epi.ParseRegion(rec.Region); err != nil {
		return s, err
	}
	return s, nil
}

// ConvertConcentration converts ozone concentration v in the given units
// to ppb. Accepted units are "ppb" (or "") and "ug/m3" (or "μg/m³").
func ConvertConcentration(v float64, units string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(units)) {
	case "", "ppb":
		return v, nil
	case "ug/m3", "μg/m3", "ug/m³", "μg/m³":
		return epi.ConcentrationPPB(epi.UGM3(v))
	default:
		return 0, fmt.Errorf("ozone concentration units must be ppb or ug/m3 but are %q", units)
	}
}
