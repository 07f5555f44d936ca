// Package config defines conversion utilities for configuration objects.
package config

import (
	"github.com/Amanile/epf-calculator/pkg/epf"
)

// Input converts the configured defaults into projection inputs, falling back
// to the built-in values for any field left unset.
func (d Defaults) Input() epf.Input {
	in := epf.DefaultInput()
	if d.MonthlySalary > 0 {
		in.MonthlySalary = d.MonthlySalary
	}
	if d.CurrentAge > 0 {
		in.CurrentAge = d.CurrentAge
	}
	if d.RetirementAge > 0 {
		in.RetirementAge = d.RetirementAge
	}
	if d.ContributionRate > 0 {
		in.ContributionRate = d.ContributionRate
	}
	if d.AnnualIncrease > 0 {
		in.AnnualIncrease = d.AnnualIncrease
	}
	if d.InterestRate > 0 {
		in.InterestRate = d.InterestRate
	}
	return in
}

// Input converts a scenario into projection inputs. Scenarios stand alone, so
// every field comes straight from the scenario itself.
func (s Scenario) Input() epf.Input {
	return epf.Input{
		MonthlySalary:    s.MonthlySalary,
		CurrentAge:       s.CurrentAge,
		RetirementAge:    s.RetirementAge,
		ContributionRate: s.ContributionRate,
		AnnualIncrease:   s.AnnualIncrease,
		InterestRate:     s.InterestRate,
	}
}
