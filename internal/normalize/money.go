package normalize

import (
	"fmt"
	"math"
	"strings"
)

// FormatPesos renders an amount in the Chilean convention: "$" prefix,
// dot thousands separators, comma decimals only when the amount is
// fractional. Negative amounts keep the sign ahead of the "$".
func FormatPesos(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	whole := int64(v)
	frac := v - float64(whole)

	s := fmt.Sprintf("%d", whole)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := sign + "$" + strings.Join(parts, ".")

	if frac > 1e-9 {
		cents := int(math.Round(frac * 100))
		if cents == 100 {
			// Rounding carried over; display as whole.
			return FormatPesos(float64(whole + 1))
		}
		out += fmt.Sprintf(",%02d", cents)
	}
	return out
}
