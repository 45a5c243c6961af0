package rotate

import "fmt"

// BuildHeader renders the work-offset header described by spec §6:
// given the current spindle machine position (mx, my) and a decimal
// budget, it documents the shift a fit applied (if any), then emits a
// G92 X0 Y0 so the machine's work coordinate system re-zeros at that
// position, matching the program's own (possibly shifted) origin.
// Purely string construction; it holds no state and parses nothing
// back out of the rewritten program.
func BuildHeader(o Outcome, mx, my float64, decimals int) []string {
	lines := []string{"(--- rotation work offset ---)"}

	if o.Normalized && (o.ShiftDX != 0 || o.ShiftDY != 0) {
		lines = append(lines, fmt.Sprintf("(shift applied: dx=%s dy=%s)",
			formatNumber(o.ShiftDX, decimals), formatNumber(o.ShiftDY, decimals)))
	}

	lines = append(lines,
		fmt.Sprintf("(machine position at zero: X%s Y%s)", formatNumber(mx, decimals), formatNumber(my, decimals)),
		"G92 X0 Y0",
		"(--- end work offset ---)",
	)

	return lines
}
