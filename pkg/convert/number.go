package convert

import (
	"math"
	"strconv"
	"strings"
)

// formatNumber renders v the way JavaScript's Number.prototype.toString does:
// the shortest round-tripping digits, in positional notation for exponents
// from -7 to 20 and in exponential notation otherwise.
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	case v < 0:
		return "-" + formatNumber(-v)
	}

	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	digits := strings.Replace(mantissa, ".", "", 1)
	exp, _ := strconv.Atoi(exponent) //nolint:errcheck // FormatFloat always writes a valid exponent

	k, n := len(digits), exp+1

	switch {
	case k <= n && n <= 21:
		return digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return "0." + strings.Repeat("0", -n) + digits
	}

	sign := "+"
	if exp < 0 {
		sign = "-"
		exp = -exp
	}

	if k == 1 {
		return digits + "e" + sign + strconv.Itoa(exp)
	}

	return digits[:1] + "." + digits[1:] + "e" + sign + strconv.Itoa(exp)
}
