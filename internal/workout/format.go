package workout

import (
	"fmt"
	"strconv"
)

// FormatAmount renders an amount in its unit for display. Seconds of a
// minute or more collapse to minutes and seconds, distances show two
// decimals, everything else is the plain amount followed by the unit.
func FormatAmount(amount float64, unit string) string {
	switch unit {
	case UnitSeconds:
		total := int(amount)
		if total >= 60 {
			return fmt.Sprintf("%dm %ds", total/60, total%60)
		}
		return fmt.Sprintf("%ss", FormatNumber(amount))
	case UnitKm:
		return fmt.Sprintf("%.2f km", amount)
	default:
		return fmt.Sprintf("%s %s", FormatNumber(amount), unit)
	}
}

// FormatNumber renders a float without a trailing decimal part when the
// value is integral. 20 -> "20", 5.5 -> "5.5".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
