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

// Package o3util holds the command-line interface for the o3mort ozone
// mortality model.
package o3util

import (
	"fmt"
	"os"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/o3mort"
	"github.com/spatialmodel/o3mort/epi"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// Log is the logger used by the commands.
var Log = newLogger()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to o3mort.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel is the minimum level of log messages that are written
              to standard error. Options are "debug", "info", "warning", and "error".`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "concentration",
			usage: `
              concentration is the annual average daily maximum 8-hour (AMDA8)
              ozone concentration, in the units given by 'units'.`,
			shorthand:  "c",
			defaultVal: 60.0,
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), compareCmd.Flags()},
		},
		{
			name: "units",
			usage: `
              units are the units of 'concentration'. Acceptable values are
              'ppb' and 'ug/m3'. Concentrations in ug/m3 are converted at
              2.0 ug/m3 per ppb.`,
			shorthand:  "u",
			defaultVal: "ppb",
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), compareCmd.Flags()},
		},
		{
			name: "population",
			usage: `
              population is the number of people exposed.`,
			shorthand:  "p",
			defaultVal: 1000000.0,
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), compareCmd.Flags()},
		},
		{
			name: "region",
			usage: `
              region is the region whose baseline mortality rates should be
              used. Options are "china" and "us".`,
			shorthand:  "r",
			defaultVal: "china",
			flagsets:   []*pflag.FlagSet{calcCmd.Flags()},
		},
		{
			name: "name",
			usage: `
              name is the label for the scenario in the output.`,
			defaultVal: "scenario",
			flagsets:   []*pflag.FlagSet{calcCmd.Flags()},
		},
		{
			name: "ScenarioFile",
			usage: `
              ScenarioFile is the path to a TOML file containing [[Scenario]] tables,
              each with Name, Concentration, Units, Population, and Region fields.
              It can include environment variables.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{scenariosCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path where results should be written. If it ends
              in '.xlsx' a spreadsheet is created; otherwise a text table is written.
              If it is empty, the table is written to standard output. It can include
              environment variables.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), scenariosCmd.Flags(), demoCmd.Flags(), compareCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("O3MORT")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(calcCmd)
	Root.AddCommand(scenariosCmd)
	Root.AddCommand(demoCmd)
	Root.AddCommand(compareCmd)
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = os.Stderr
	l.Formatter = &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	}
	return l
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the log level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("o3mort: problem reading configuration file: %v", err)
		}
	}
	level, err := logrus.ParseLevel(Cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("o3mort: invalid LogLevel: %v", err)
	}
	Log.Level = level
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "o3mort",
	Short: "Premature mortality from ozone exposure.",
	Long: `o3mort estimates premature deaths caused by exposure to ground-level
ozone, by cause of death (respiratory disease, cardiovascular disease, and
lung cancer), using log-linear exposure-response functions with a 50 ppb
(100 ug/m3) threshold and WHO 2016 baseline mortality rates for China and
the United States.

Concentrations are annual averages of the daily maximum 8-hour ozone
concentration (AMDA8).

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'O3MORT_var' where 'var' is the
name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of o3mort.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "o3mort v%s\n", o3mort.Version)
	},
	DisableAutoGenTag: true,
}

// calcCmd estimates deaths for a single scenario.
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate deaths for one scenario.",
	Long: `calc estimates premature deaths from respiratory disease, cardiovascular
disease, and lung cancer for a population exposed to a single ozone concentration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scenarioFromConfig(Cfg)
		if err != nil {
			return err
		}
		return Calculate(cmd, []o3mort.Scenario{s}, Cfg.GetString("OutputFile"))
	},
	DisableAutoGenTag: true,
}

// scenariosCmd estimates deaths for scenarios in a file.
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Calculate deaths for scenarios in a file.",
	Long: `scenarios estimates premature deaths for each of the scenarios in the
TOML file given by the ScenarioFile configuration variable, for example:

	[[Scenario]]
	Name = "Beijing"
	Concentration = 120.0
	Units = "ug/m3"
	Population = 21500000
	Region = "china"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scenarios, err := readScenarioFile(Cfg.GetString("ScenarioFile"))
		if err != nil {
			return err
		}
		return Calculate(cmd, scenarios, Cfg.GetString("OutputFile"))
	},
	DisableAutoGenTag: true,
}

// demoCmd prints the example scenarios.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Calculate deaths for example scenarios.",
	Long: `demo estimates premature deaths for a set of example scenarios:
moderate exposure in China, high exposure in the United States, exposure below
the 50 ppb threshold, and a comparison of both regions at 65 ppb.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Calculate(cmd, o3mort.DemoScenarios(), Cfg.GetString("OutputFile"))
	},
	DisableAutoGenTag: true,
}

// compareCmd compares regions at the same exposure.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare regions at the same exposure.",
	Long: `compare estimates premature deaths in every region for the same
ozone concentration and population. Differences are caused only by
differences in baseline mortality rates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		z, err := checkConcentration(Cfg)
		if err != nil {
			return err
		}
		p, err := checkPopulation(Cfg)
		if err != nil {
			return err
		}
		return Calculate(cmd, o3mort.CompareRegions(z, p), Cfg.GetString("OutputFile"))
	},
	DisableAutoGenTag: true,
}

// Calculate estimates deaths for the given scenarios and writes them to
// outputFile, or to the command's output if outputFile is empty.
func Calculate(cmd *cobra.Command, scenarios []o3mort.Scenario, outputFile string) error {
	for _, s := range scenarios {
		Log.WithFields(logrus.Fields{
			"scenario":      s.Name,
			"region":        s.Region,
			"concentration": s.Concentration,
			"population":    s.Population,
		}).Debug("o3mort calculating scenario")
	}
	estimates, err := o3mort.CalculateAll(scenarios)
	if err != nil {
		Log.WithError(err).Error("o3mort calculation failed")
		return err
	}
	for _, e := range estimates {
		if e.Concentration <= epi.ThresholdPPB {
			Log.WithFields(logrus.Fields{
				"scenario":      e.Name,
				"concentration": e.Concentration,
				"threshold":     epi.ThresholdPPB,
			}).Info("concentration is at or below the threshold; no deaths are attributed to ozone")
		}
	}
	return writeEstimates(cmd, estimates, outputFile)
}
