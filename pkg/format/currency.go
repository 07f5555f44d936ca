package format

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Rupees returns a currency string with a rupee sign and thousands separators
// (e.g., "₹1,234.56"). Whole amounts drop the decimal part, so ₹144,000.00
// renders as "₹144,000" and a zero amount renders as "₹0".
func Rupees(amount float64) string {
	if amount == 0 {
		return "₹0"
	}
	formatted := formatPositiveRupees(math.Abs(amount))
	if amount < 0 {
		return "-₹" + formatted
	}
	return "₹" + formatted
}

// NumericRupees returns a currency string without the rupee symbol but with
// separators (e.g., "-1,234.56").
func NumericRupees(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	formatted := formatPositiveRupees(math.Abs(amount))
	return sign + formatted
}

func formatPositiveRupees(value float64) string {
	formatted := printer.Sprintf("%.2f", value)
	return strings.TrimSuffix(formatted, ".00")
}
