// Package config defines the application configuration of pesa-dashboard and
// the functions for loading and checking it.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/ucb-pesa/pesa-dashboard/internal/impact"
	"github.com/ucb-pesa/pesa-dashboard/pkg/constants"
	"github.com/ucb-pesa/pesa-dashboard/pkg/validation"
)

// Configuration holds all configuration for pesa-dashboard.
type Configuration struct {
	Logging     LoggingConfig      `yaml:"logging,omitempty"`
	Output      OutputConfig       `yaml:"output,omitempty"`
	Assumptions impact.Assumptions `yaml:"assumptions"`
	Defaults    SelectionDefaults  `yaml:"defaults"`
	Links       LinksConfig        `yaml:"links,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// SelectionDefaults is the initial selection of a freshly opened dashboard.
type SelectionDefaults struct {
	Year     string `yaml:"year"`
	Scenario string `yaml:"scenario"`
	Section  string `yaml:"section"`
}

// LinksConfig holds outbound links shown on the page.
type LinksConfig struct {
	ExternalDashboard string `yaml:"externalDashboard,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Configuration {
	return &Configuration{
		Assumptions: impact.Default(),
		Defaults: SelectionDefaults{
			Year:     constants.DefaultYear,
			Scenario: constants.DefaultScenario,
			Section:  constants.DefaultSection,
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("assumptions.totalStudents", def.Assumptions.TotalStudents)
	v.SetDefault("assumptions.monthlyTuition", def.Assumptions.MonthlyTuition)
	v.SetDefault("assumptions.cac", def.Assumptions.CAC)
	v.SetDefault("assumptions.programCost", def.Assumptions.ProgramCost)
	v.SetDefault("defaults.year", def.Defaults.Year)
	v.SetDefault("defaults.scenario", def.Defaults.Scenario)
	v.SetDefault("defaults.section", def.Defaults.Section)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", "")
	v.SetDefault("links.externalDashboard", "")
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file is not an error: defaults (plus any
// PESA_* environment overrides) are returned instead.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("error reading config file, %w", err)
			}
			return decode(v)
		}

		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	if err := configuration.Assumptions.Validate(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

// ValidateConfiguration checks the selection defaults and links against the
// dataset and returns warnings. A warning never prevents the dashboard from
// starting: an unknown default simply renders as an empty selection.
func (c *Configuration) ValidateConfiguration() []string {
	validator := &validation.SelectionValidator{
		Year:     c.Defaults.Year,
		Scenario: c.Defaults.Scenario,
		Section:  c.Defaults.Section,
		Links: map[string]string{
			"External dashboard": c.Links.ExternalDashboard,
		},
	}
	return validator.ValidateAll()
}
