// Package format renders amounts, rates and hours for display.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/salarymoon/pkg/constants"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "$1,234.56").
// Negative amounts are prefixed with a minus sign ("-$1,234.56"). Non-finite
// amounts are written without grouping ("$Inf", "-$Inf", "$NaN").
func Currency(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return "$NaN"
	case math.IsInf(amount, 1):
		return "$Inf"
	case math.IsInf(amount, -1):
		return "-$Inf"
	}

	formatted := groupDecimal(math.Abs(amount))
	if amount < 0 && formatted != "0.00" {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Percent renders a fractional rate as a percentage with two decimals (0.4341 -> "43.41%").
func Percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*constants.PercentageMultiplier)
}

// Hours renders an hour count with two decimals and no grouping.
func Hours(hours float64) string {
	return fmt.Sprintf("%.2f", hours)
}

// groupDecimal relies on %.2f so that rounding follows the exact binary value.
func groupDecimal(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	intPart, decPart, found := strings.Cut(formatted, ".")
	if !found {
		decPart = "00"
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
