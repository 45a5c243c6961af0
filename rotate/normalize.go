package rotate

import "github.com/RefikCodes/raptorex-gcode/gcode"

// computeShift returns the translation that brings a rotated program's
// bounding box minimum to the origin: dx = -minX, dy = -minY. Applying
// it is a pure translation, so the after-fit bbox is just the
// before-fit bbox shifted by (dx, dy) (BoundingBox.Shift) rather than
// the result of re-running the rotation with the shift folded in —
// the two are mathematically identical and computing it this way
// avoids a second geometry pass that could drift from the first by a
// rounding epsilon.
func computeShift(recorded []recordedLine) (dx, dy float64) {
	box := bboxFromRecorded(recorded)
	return -box.MinX, -box.MinY
}

// applyShift rewrites every absolute-mode X/Y word in lines by adding
// (dx, dy). Incremental linear deltas and arc I/J offsets are
// translation-invariant and are left untouched. A running position is
// tracked across lines so that a line specifying only one of X/Y can
// still force-emit the other axis's shifted value, the same
// paired-emission rule the rotation pass applies (spec §4.7) — leaving
// an unshifted axis implicit would make the line's apparent position
// wrong until the next line that happens to restate it.
func applyShift(lines []string, dx, dy float64, decimals int) []string {
	if dx == 0 && dy == 0 {
		return lines
	}

	tracker := gcode.NewModalTracker()
	cx, cy := 0.0, 0.0
	out := make([]string, len(lines))

	for i, raw := range lines {
		codeRaw, tail := gcode.SplitRaw(raw)
		words := gcode.ScanWords(codeRaw)
		tracker.Advance(words)
		state := tracker.State()

		if !state.LinearAbsolute || len(words) == 0 {
			out[i] = raw
			continue
		}

		xVal, xPresent, xOK := wordValue(words, 'X')
		yVal, yPresent, yOK := wordValue(words, 'Y')
		if !xPresent && !yPresent {
			out[i] = raw
			continue
		}

		newX, newY := cx, cy
		if xPresent && xOK {
			newX = xVal
		}
		if yPresent && yOK {
			newY = yVal
		}
		cx, cy = newX, newY

		overrides := map[byte]string{}
		if shouldOverride(xPresent, xOK) {
			overrides['X'] = formatNumber(newX+dx, decimals)
		}
		if shouldOverride(yPresent, yOK) {
			overrides['Y'] = formatNumber(newY+dy, decimals)
		}
		if len(overrides) == 0 {
			out[i] = raw
			continue
		}

		out[i] = rebuildCodePart(words, overrides, []byte{'X', 'Y'}) + tail
	}

	return out
}
