package rotate

import (
	"math"
	"strconv"
	"strings"
)

// formatNumber renders v with at most decimals fractional digits,
// trimming trailing zeros (and a then-bare trailing dot) and
// canonicalizing negative zero to "0" so rotated output never emits
// the visually-confusing "-0" (spec §4.7).
func formatNumber(v float64, decimals int) string {
	if v == 0 {
		v = 0 // collapse -0 to +0 before formatting
	}
	text := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.Contains(text, ".") {
		text = strings.TrimRight(text, "0")
		text = strings.TrimRight(text, ".")
	}
	if text == "" || text == "-0" {
		text = "0"
	}
	return text
}

// roundTo rounds v to the given number of decimal places, used before
// formatting and before equality comparisons that must agree with the
// textual output (e.g. the paired-emission "did this axis change"
// check operates on rounded values so visually-identical numbers don't
// spuriously count as a change).
func roundTo(v float64, decimals int) float64 {
	if decimals < 0 {
		return v
	}
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
