package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/Amanile/epf-calculator/internal/projection"
	"github.com/Amanile/epf-calculator/pkg/epf"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func shortProjection(name string) projection.ScenarioProjection {
	input := epf.Input{
		MonthlySalary:    10000,
		CurrentAge:       30,
		RetirementAge:    33,
		ContributionRate: 12,
		AnnualIncrease:   10,
		InterestRate:     10,
	}
	return projection.ScenarioProjection{
		Name:   name,
		Input:  input,
		Result: epf.Project(input),
	}
}

func TestPrettyFormat(t *testing.T) {
	results := []projection.ScenarioProjection{shortProjection("Test Scenario")}

	output := captureOutput(t, func() {
		PrettyFormat(results, false)
	})

	if !strings.Contains(output, "--- Results for scenario Test Scenario ---") {
		t.Errorf("PrettyFormat missing scenario header")
	}
	if !strings.Contains(output, "Final EPF Balance at Retirement: ₹52,272") {
		t.Errorf("PrettyFormat missing maturity line, got %q", output)
	}
	if !strings.Contains(output, "Total Contributions Made:        ₹47,664") {
		t.Errorf("PrettyFormat missing contribution line")
	}
	if !strings.Contains(output, "Total Interest Earned:           ₹4,608") {
		t.Errorf("PrettyFormat missing interest line")
	}
	if !strings.Contains(output, "Return on Investment:            9.67%") {
		t.Errorf("PrettyFormat missing ROI line")
	}
	if !strings.Contains(output, "Year | Age | Monthly Salary | Contribution") {
		t.Errorf("PrettyFormat missing table header")
	}
	if !strings.Contains(output, "₹14,400") {
		t.Errorf("PrettyFormat missing first year contribution")
	}
	if strings.Contains(output, "more years") {
		t.Errorf("Short projection should not be condensed")
	}
}

func TestPrettyFormatCondensesLongProjections(t *testing.T) {
	input := epf.DefaultInput()
	results := []projection.ScenarioProjection{
		{Name: "defaults", Input: input, Result: epf.Project(input)},
	}

	output := captureOutput(t, func() {
		PrettyFormat(results, false)
	})

	if !strings.Contains(output, "... (20 more years) ...") {
		t.Errorf("Expected elision marker for 30-year projection, got %q", output)
	}
	if !strings.Contains(output, "\n1    | 31 ") {
		t.Errorf("Expected first year row")
	}
	if !strings.Contains(output, "\n30   | 60 ") {
		t.Errorf("Expected last year row")
	}
	if strings.Contains(output, "\n6    | 36 ") {
		t.Errorf("Middle years should be elided")
	}
	if !strings.Contains(output, "₹28,638,187.57") {
		t.Errorf("Expected final balance in last row, got %q", output)
	}
}

func TestPrettyFormatShowAll(t *testing.T) {
	input := epf.DefaultInput()
	results := []projection.ScenarioProjection{
		{Name: "defaults", Input: input, Result: epf.Project(input)},
	}

	output := captureOutput(t, func() {
		PrettyFormat(results, true)
	})

	if strings.Contains(output, "more years") {
		t.Errorf("showAll should disable the elision marker")
	}
	if !strings.Contains(output, "\n6    | 36 ") {
		t.Errorf("showAll should include middle years")
	}
	if !strings.Contains(output, "\n30   | 60 ") {
		t.Errorf("showAll should include the final year")
	}
}

func TestPrettyFormatNoYears(t *testing.T) {
	input := epf.Input{
		MonthlySalary:    50000,
		CurrentAge:       60,
		RetirementAge:    60,
		ContributionRate: 24,
		InterestRate:     8.25,
	}
	results := []projection.ScenarioProjection{
		{Name: "retired", Input: input, Result: epf.Project(input)},
	}

	output := captureOutput(t, func() {
		PrettyFormat(results, false)
	})

	if !strings.Contains(output, "No years remain before retirement.") {
		t.Errorf("Expected empty projection notice, got %q", output)
	}
	if !strings.Contains(output, "Final EPF Balance at Retirement: ₹0") {
		t.Errorf("Expected zero maturity line, got %q", output)
	}
}

func TestCsvString(t *testing.T) {
	results := []projection.ScenarioProjection{shortProjection("Test Scenario")}

	got := CsvString(results)
	expected := `"scenario","year","monthly_salary","annual_contribution","interest_earned","epf_balance"
"Test Scenario","31","10000.00","14400.00","0.00","14400.00"
"Test Scenario","32","11000.00","15840.00","1440.00","31680.00"
"Test Scenario","33","12100.00","17424.00","3168.00","52272.00"
`
	if got != expected {
		t.Errorf("CsvString() = %q, expected %q", got, expected)
	}
}

func TestCsvStringMultipleScenarios(t *testing.T) {
	results := []projection.ScenarioProjection{
		shortProjection("first"),
		shortProjection("second"),
	}

	got := CsvString(results)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("Expected header plus 6 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], `"first"`) {
		t.Errorf("Expected first scenario rows before second, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[4], `"second"`) {
		t.Errorf("Expected second scenario rows after first, got %q", lines[4])
	}
}

func TestCsvFormat(t *testing.T) {
	results := []projection.ScenarioProjection{shortProjection("Test Scenario")}

	output := captureOutput(t, func() {
		CsvFormat(results)
	})

	if output != CsvString(results) {
		t.Errorf("CsvFormat output differs from CsvString")
	}
}
