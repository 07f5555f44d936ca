// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Configuration holds all configuration for epf-calculator.
type Configuration struct {
	Defaults  Defaults      `yaml:"defaults,omitempty"`
	Scenarios []Scenario    `yaml:"scenarios,omitempty"`
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
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

// Defaults pre-fills calculator inputs for the web form and for scenarios
// started from scratch. Unset fields fall back to the built-in values.
type Defaults struct {
	MonthlySalary    float64 `yaml:"monthlySalary,omitempty"`
	CurrentAge       int     `yaml:"currentAge,omitempty"`
	RetirementAge    int     `yaml:"retirementAge,omitempty"`
	ContributionRate float64 `yaml:"contributionRate,omitempty"`
	AnnualIncrease   float64 `yaml:"annualIncrease,omitempty"`
	InterestRate     float64 `yaml:"interestRate,omitempty"`
}

// Scenario holds one self-contained projection run.
type Scenario struct {
	Name             string  `yaml:"name"`
	Active           bool    `yaml:"active"`
	MonthlySalary    float64 `yaml:"monthlySalary"`
	CurrentAge       int     `yaml:"currentAge"`
	RetirementAge    int     `yaml:"retirementAge"`
	ContributionRate float64 `yaml:"contributionRate"`
	AnnualIncrease   float64 `yaml:"annualIncrease"`
	InterestRate     float64 `yaml:"interestRate"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Scenarios) == 0 {
		warnings = append(warnings, "No scenarios are defined")
		return warnings
	}

	active := 0
	seen := make(map[string]bool)
	for _, scenario := range c.Scenarios {
		if seen[scenario.Name] {
			warnings = append(warnings, "Scenario '"+scenario.Name+"' is defined more than once")
		}
		seen[scenario.Name] = true

		if !scenario.Active {
			continue
		}
		active++

		if scenario.ContributionRate == 0 {
			warnings = append(warnings, "Scenario '"+scenario.Name+"' has a zero contribution rate; no balance will accumulate")
		}
		if scenario.InterestRate == 0 {
			warnings = append(warnings, "Scenario '"+scenario.Name+"' has a zero interest rate; contributions earn nothing")
		}
	}

	if active == 0 {
		warnings = append(warnings, "No scenarios are marked active; nothing will be projected")
	}

	return warnings
}
