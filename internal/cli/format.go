// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a currency amount. Whole amounts get thousands
// separators, small or fractional ones keep cents.
// e.g. 148800 -> "$148,800", -2500.5 -> "-$2,500.50"
func FormatMoney(v float64) string {
	if v < 0 {
		return "-" + FormatMoney(-v)
	}

	rounded := math.Round(v)
	if math.Abs(v-rounded) < 0.005 {
		return "$" + FormatNumber(int64(rounded))
	}

	whole := int64(v)
	cents := math.Round((v - float64(whole)) * 100)
	if cents >= 100 {
		whole++
		cents = 0
	}
	return fmt.Sprintf("$%s.%02d", FormatNumber(whole), int64(cents))
}

// FormatUnits formats a unit quantity. Quantities are usually whole, but a
// fractional inventory target keeps one decimal.
// e.g. 12400 -> "12,400", 2612.5 -> "2,612.5"
func FormatUnits(v float64) string {
	if v < 0 {
		return "-" + FormatUnits(-v)
	}

	rounded := math.Round(v)
	if math.Abs(v-rounded) < 0.05 {
		return FormatNumber(int64(rounded))
	}
	return fmt.Sprintf("%s.%d", FormatNumber(int64(v)), int64(math.Round((v-math.Trunc(v))*10)))
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 ratio as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatRatio formats a policy ratio compactly, dropping trailing zeros.
// e.g. 0.6 -> "0.6", 0.25 -> "0.25", 2 -> "2"
func FormatRatio(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatDelta formats a money delta with an explicit sign.
func FormatDelta(current, previous float64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatMoney(delta)
	}
	return "-" + FormatMoney(-delta)
}
