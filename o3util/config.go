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

package o3util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/o3mort"
	"github.com/spatialmodel/o3mort/epi"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

// checkConcentration reads the concentration and its units from cfg and
// returns the concentration in ppb.
func checkConcentration(cfg *viper.Viper) (float64, error) {
	v, err := cast.ToFloat64E(cfg.Get("concentration"))
	if err != nil {
		return 0, fmt.Errorf("o3mort: reading 'concentration': %v", err)
	}
	z, err := o3mort.ConvertConcentration(v, os.ExpandEnv(cfg.GetString("units")))
	if err != nil {
		return 0, fmt.Errorf("o3mort: the 'units' variable %v", err)
	}
	return z, nil
}

// checkPopulation reads the population from cfg. Negative populations are
// allowed.
func checkPopulation(cfg *viper.Viper) (float64, error) {
	p, err := cast.ToFloat64E(cfg.Get("population"))
	if err != nil {
		return 0, fmt.Errorf("o3mort: reading 'population': %v", err)
	}
	return p, nil
}

// scenarioFromConfig creates a scenario from the concentration, units,
// population, region, and name variables in cfg.
func scenarioFromConfig(cfg *viper.Viper) (o3mort.Scenario, error) {
	var s o3mort.Scenario
	var err error
	if s.Concentration, err = checkConcentration(cfg); err != nil {
		return s, err
	}
	if s.Population, err = checkPopulation(cfg); err != nil {
		return s, err
	}
	if s.Region, err = epi.ParseRegion(os.ExpandEnv(cfg.GetString("region"))); err != nil {
		return s, fmt.Errorf("o3mort: the 'region' variable: %w", err)
	}
	s.Name = cfg.GetString("name")
	return s, nil
}

// readScenarioFile reads the scenarios in TOML file f, after expanding
// environment variables in the path.
func readScenarioFile(f string) ([]o3mort.Scenario, error) {
	if f == "" {
		return nil, fmt.Errorf(`you need to specify a scenario file configuration variable (for example: ScenarioFile="scenarios.toml")`)
	}
	f = os.ExpandEnv(f)
	r, err := os.Open(f)
	if err != nil {
		return nil, fmt.Errorf("o3mort: opening ScenarioFile: %v", err)
	}
	defer r.Close()
	s, err := o3mort.ReadScenarios(r)
	if err != nil {
		return nil, fmt.Errorf("o3mort: %s: %w", f, err)
	}
	Log.WithField("file", f).Infof("read %d scenarios", len(s))
	return s, nil
}

// checkOutputFile makes sure that the output file directory exists, and
// expands any environment variables.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", nil
	}
	f = os.ExpandEnv(f)
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("o3mort: the OutputFile directory doesn't exist: %v", err)
	}
	return f, nil
}

// writeEstimates writes estimates to outputFile as a spreadsheet or a
// text table depending on its extension, or to the command's output if
// outputFile is empty.
func writeEstimates(cmd *cobra.Command, estimates []*o3mort.Estimate, outputFile string) error {
	f, err := checkOutputFile(outputFile)
	if err != nil {
		return err
	}
	switch {
	case f == "":
		return o3mort.WriteTable(cmd.OutOrStdout(), estimates)
	case strings.EqualFold(filepath.Ext(f), ".xlsx"):
		if err := o3mort.WriteXLSX(f, estimates); err != nil {
			return err
		}
	default:
		w, err := os.Create(f)
		if err != nil {
			return fmt.Errorf("o3mort: creating OutputFile: %v", err)
		}
		if err := o3mort.WriteTable(w, estimates); err != nil {
			w.Close()
			return err
		}
		if err := w.Close(); err != nil {
			return err
		}
	}
	Log.WithField("file", f).Info("o3mort wrote results")
	return nil
}
