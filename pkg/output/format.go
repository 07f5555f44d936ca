// Package output provides utilities for formatting and displaying projection results.
package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Amanile/epf-calculator/internal/projection"
	"github.com/Amanile/epf-calculator/pkg/epf"
	"github.com/Amanile/epf-calculator/pkg/format"
)

// elisionWindow is how many leading and trailing years the condensed table keeps.
const elisionWindow = 5

// PrettyFormat outputs a human-readable rather than machine-readable table.
// Long projections are condensed to the first and last years unless showAll
// is set.
func PrettyFormat(results []projection.ScenarioProjection, showAll bool) {
	for _, result := range results {
		fmt.Printf("--- Results for scenario %s ---\n", result.Name)
		fmt.Printf("Final EPF Balance at Retirement: %s\n", format.Rupees(result.Result.Maturity))
		fmt.Printf("Total Contributions Made:        %s\n", format.Rupees(result.Result.TotalContribution))
		fmt.Printf("Total Interest Earned:           %s\n", format.Rupees(result.Result.TotalInterest))
		if result.Result.TotalContribution > 0 {
			fmt.Printf("Return on Investment:            %.2f%%\n", result.Result.ReturnOnInvestment())
		}

		years := result.Result.Years
		if len(years) == 0 {
			fmt.Printf("No years remain before retirement.\n")
			continue
		}

		fmt.Printf("\n")
		fmt.Printf("Year | Age | Monthly Salary | Contribution   | Interest       | EPF Balance\n")
		fmt.Printf("____ | ___ | ______________ | ______________ | ______________ | _______________\n")

		if showAll || len(years) <= 2*elisionWindow {
			for i, year := range years {
				printYearRow(i+1, year)
			}
		} else {
			for i := 0; i < elisionWindow; i++ {
				printYearRow(i+1, years[i])
			}
			fmt.Printf("... (%d more years) ...\n", len(years)-2*elisionWindow)
			for i := len(years) - elisionWindow; i < len(years); i++ {
				printYearRow(i+1, years[i])
			}
		}

		if len(results) > 1 {
			fmt.Printf("\n")
		}
	}
}

func printYearRow(yearNumber int, year epf.YearRecord) {
	fmt.Printf("%-4d | %-3d | %-14s | %-14s | %-14s | %-15s\n",
		yearNumber,
		year.Year,
		format.Rupees(year.MonthlySalary),
		format.Rupees(year.Contribution),
		format.Rupees(year.Interest),
		format.Rupees(year.Balance),
	)
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []projection.ScenarioProjection) {
	fmt.Print(CsvString(results))
}

// CsvString renders the projections as CSV, one row per scenario year.
func CsvString(results []projection.ScenarioProjection) string {
	var builder strings.Builder
	builder.WriteString(`"scenario","year","monthly_salary","annual_contribution","interest_earned","epf_balance"`)
	builder.WriteString("\n")

	for _, result := range results {
		for _, year := range result.Result.Years {
			builder.WriteString(fmt.Sprintf(`"%s","%d","%s","%s","%s","%s"`,
				result.Name,
				year.Year,
				csvAmount(year.MonthlySalary),
				csvAmount(year.Contribution),
				csvAmount(year.Interest),
				csvAmount(year.Balance),
			))
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

func csvAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
