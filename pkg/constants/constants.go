// Package constants provides shared constants for the epf-calculator application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 paisa)
	CurrencyTolerance = 0.01

	// ToleranceForComparison is the tolerance for financial comparisons
	ToleranceForComparison = 1.0

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Default projection inputs, used to pre-fill the calculator form and the
// parameterless CLI run.
const (
	// DefaultMonthlySalary is the default monthly basic salary in rupees
	DefaultMonthlySalary = 50000.0

	// DefaultCurrentAge is the default current age in years
	DefaultCurrentAge = 30

	// DefaultRetirementAge is the default retirement age in years
	DefaultRetirementAge = 60

	// DefaultContributionRate is the default combined EPF contribution rate (percent)
	DefaultContributionRate = 24.0

	// DefaultAnnualIncrease is the default annual salary increment rate (percent)
	DefaultAnnualIncrease = 5.0

	// DefaultInterestRate is the default annual EPF interest rate (percent)
	DefaultInterestRate = 8.25
)

// Input bounds enforced at the request boundary
const (
	// MinAgeYears is the lowest accepted age input
	MinAgeYears = 1

	// MaxAgeYears is the highest accepted age input
	MaxAgeYears = 100

	// MaxRatePercent is the highest accepted percentage rate input
	MaxRatePercent = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestBytes is the default maximum request body size for the JSON API (64 KB)
	DefaultMaxRequestBytes int64 = 64 * 1024

	// MaxScenariosPerRequest caps the number of scenarios accepted by the
	// comparison endpoint in a single call.
	MaxScenariosPerRequest = 10
)
