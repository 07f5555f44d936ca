// Package epf implements the Employees' Provident Fund maturity projection.
package epf

import (
	"github.com/Amanile/epf-calculator/pkg/constants"
	"github.com/Amanile/epf-calculator/pkg/mathutil"
)

func percentToDecimal(percent float64) float64 {
	return percent / constants.PercentageMultiplier
}

// Input holds the scalars that drive a single projection. Rate fields are
// whole percentages, so a ContributionRate of 24 means 24%.
type Input struct {
	MonthlySalary    float64 `json:"monthly_salary" yaml:"monthlySalary" validate:"required,gt=0"`
	CurrentAge       int     `json:"current_age" yaml:"currentAge" validate:"required,gt=0,lte=100"`
	RetirementAge    int     `json:"retirement_age" yaml:"retirementAge" validate:"required,gt=0,lte=100,gtfield=CurrentAge"`
	ContributionRate float64 `json:"epf_contribution_rate" yaml:"epfContributionRate" validate:"gte=0,lte=100"`
	AnnualIncrease   float64 `json:"annual_increase" yaml:"annualIncrease" validate:"gte=0,lte=100"`
	InterestRate     float64 `json:"interest_rate" yaml:"interestRate" validate:"gte=0,lte=100"`
}

// YearRecord captures one projection year. Year is the age reached at the end
// of that year and MonthlySalary is the salary drawn during it.
type YearRecord struct {
	Year          int     `json:"year" yaml:"year"`
	MonthlySalary float64 `json:"monthly_salary" yaml:"monthlySalary"`
	Contribution  float64 `json:"annual_contribution" yaml:"annualContribution"`
	Interest      float64 `json:"interest_earned" yaml:"interestEarned"`
	Balance       float64 `json:"epf_balance" yaml:"epfBalance"`
}

// Result is the outcome of a projection. Maturity always equals
// TotalContribution + TotalInterest.
type Result struct {
	Years             []YearRecord `json:"yearly_data" yaml:"yearlyData"`
	TotalContribution float64      `json:"total_contribution" yaml:"totalContribution"`
	TotalInterest     float64      `json:"total_interest" yaml:"totalInterest"`
	Maturity          float64      `json:"final_amount" yaml:"finalAmount"`
}

// DefaultInput returns the stock projection inputs used when a caller
// supplies nothing.
func DefaultInput() Input {
	return Input{
		MonthlySalary:    constants.DefaultMonthlySalary,
		CurrentAge:       constants.DefaultCurrentAge,
		RetirementAge:    constants.DefaultRetirementAge,
		ContributionRate: constants.DefaultContributionRate,
		AnnualIncrease:   constants.DefaultAnnualIncrease,
		InterestRate:     constants.DefaultInterestRate,
	}
}

// Project runs the year-by-year EPF accumulation for
// RetirementAge - CurrentAge years. Each year contributes
// salary x 12 x rate and earns interest on the balance carried into the
// year; the salary then grows by AnnualIncrease for the next year.
// Values are carried at full precision; callers round for display.
func Project(in Input) Result {
	years := in.RetirementAge - in.CurrentAge
	if years <= 0 {
		return Result{Years: []YearRecord{}}
	}

	salary := in.MonthlySalary
	totalContribution := 0.0
	totalInterest := 0.0
	balance := 0.0
	records := make([]YearRecord, 0, years)

	for n := 1; n <= years; n++ {
		contribution := mathutil.ApplyPercentage(salary*constants.MonthsPerYear, in.ContributionRate)
		interest := mathutil.ApplyPercentage(balance, in.InterestRate)

		totalContribution += contribution
		totalInterest += interest
		balance = totalContribution + totalInterest

		records = append(records, YearRecord{
			Year:          in.CurrentAge + n,
			MonthlySalary: salary,
			Contribution:  contribution,
			Interest:      interest,
			Balance:       balance,
		})

		salary *= 1 + percentToDecimal(in.AnnualIncrease)
	}

	return Result{
		Years:             records,
		TotalContribution: totalContribution,
		TotalInterest:     totalInterest,
		Maturity:          balance,
	}
}

// ReturnOnInvestment reports total interest as a percentage of total
// contributions, or 0 when nothing was contributed.
func (r Result) ReturnOnInvestment() float64 {
	return mathutil.CalculatePercentage(r.TotalInterest, r.TotalContribution)
}
