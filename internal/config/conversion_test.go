package config

import (
	"testing"

	"github.com/Amanile/epf-calculator/pkg/constants"
)

func TestDefaultsInput(t *testing.T) {
	tests := []struct {
		name     string
		defaults Defaults
		check    func(t *testing.T, salary float64, currentAge, retirementAge int, rate float64)
	}{
		{
			name:     "Empty defaults fall back to built-ins",
			defaults: Defaults{},
			check: func(t *testing.T, salary float64, currentAge, retirementAge int, rate float64) {
				if salary != constants.DefaultMonthlySalary {
					t.Errorf("Expected MonthlySalary = %v, got %v", constants.DefaultMonthlySalary, salary)
				}
				if currentAge != constants.DefaultCurrentAge {
					t.Errorf("Expected CurrentAge = %d, got %d", constants.DefaultCurrentAge, currentAge)
				}
				if retirementAge != constants.DefaultRetirementAge {
					t.Errorf("Expected RetirementAge = %d, got %d", constants.DefaultRetirementAge, retirementAge)
				}
				if rate != constants.DefaultContributionRate {
					t.Errorf("Expected ContributionRate = %v, got %v", constants.DefaultContributionRate, rate)
				}
			},
		},
		{
			name:     "Partial defaults override only what they set",
			defaults: Defaults{MonthlySalary: 75000, RetirementAge: 58},
			check: func(t *testing.T, salary float64, currentAge, retirementAge int, rate float64) {
				if salary != 75000 {
					t.Errorf("Expected MonthlySalary = 75000, got %v", salary)
				}
				if retirementAge != 58 {
					t.Errorf("Expected RetirementAge = 58, got %d", retirementAge)
				}
				if currentAge != constants.DefaultCurrentAge {
					t.Errorf("Expected CurrentAge = %d, got %d", constants.DefaultCurrentAge, currentAge)
				}
				if rate != constants.DefaultContributionRate {
					t.Errorf("Expected ContributionRate = %v, got %v", constants.DefaultContributionRate, rate)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.defaults.Input()
			tt.check(t, in.MonthlySalary, in.CurrentAge, in.RetirementAge, in.ContributionRate)
		})
	}
}

func TestScenarioInput(t *testing.T) {
	scenario := Scenario{
		Name:             "aggressive saver",
		Active:           true,
		MonthlySalary:    65000,
		CurrentAge:       28,
		RetirementAge:    58,
		ContributionRate: 30,
		AnnualIncrease:   7,
		InterestRate:     8.25,
	}

	in := scenario.Input()
	if in.MonthlySalary != scenario.MonthlySalary {
		t.Errorf("Expected MonthlySalary = %v, got %v", scenario.MonthlySalary, in.MonthlySalary)
	}
	if in.CurrentAge != scenario.CurrentAge {
		t.Errorf("Expected CurrentAge = %d, got %d", scenario.CurrentAge, in.CurrentAge)
	}
	if in.RetirementAge != scenario.RetirementAge {
		t.Errorf("Expected RetirementAge = %d, got %d", scenario.RetirementAge, in.RetirementAge)
	}
	if in.ContributionRate != scenario.ContributionRate {
		t.Errorf("Expected ContributionRate = %v, got %v", scenario.ContributionRate, in.ContributionRate)
	}
	if in.AnnualIncrease != scenario.AnnualIncrease {
		t.Errorf("Expected AnnualIncrease = %v, got %v", scenario.AnnualIncrease, in.AnnualIncrease)
	}
	if in.InterestRate != scenario.InterestRate {
		t.Errorf("Expected InterestRate = %v, got %v", scenario.InterestRate, in.InterestRate)
	}

	// A scenario with unset numeric fields passes zeros through untouched;
	// validation rejects them later rather than silently substituting defaults.
	zero := Scenario{Name: "empty"}
	if zero.Input().MonthlySalary != 0 {
		t.Errorf("Expected zero salary to pass through, got %v", zero.Input().MonthlySalary)
	}
}
