package rotate

import "github.com/RefikCodes/raptorex-gcode/gcode"

// BoundingBox is an axis-aligned rectangle over observed X/Y coordinates.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// Shift returns a bbox translated by (dx, dy). A pure translation never
// changes a bbox's shape, only its min/max — used by the outcome
// assembler to derive the after-fit bbox without a second rotation pass.
func (b BoundingBox) Shift(dx, dy float64) BoundingBox {
	return BoundingBox{
		MinX: b.MinX + dx, MinY: b.MinY + dy,
		MaxX: b.MaxX + dx, MaxY: b.MaxY + dy,
	}
}

// ComputeBoundingBox replays the modal tracker over a program and
// accumulates the running absolute position (cx, cy), starting at
// (0, 0), to compute min/max X and Y (spec §4.4). Comment-only lines
// and lines with no X/Y word are skipped. Returns the zero box when no
// X/Y coordinate was ever observed.
func ComputeBoundingBox(lines []string) BoundingBox {
	tracker := gcode.NewModalTracker()
	cx, cy := 0.0, 0.0
	var box BoundingBox
	seen := false

	for _, raw := range lines {
		code, _, commentOnly := gcode.SplitLine(raw)
		if commentOnly {
			continue
		}

		words := gcode.ScanWords(code)
		tracker.Advance(words)
		state := tracker.State()

		xVal, xPresent, xOK := wordValue(words, 'X')
		yVal, yPresent, yOK := wordValue(words, 'Y')
		if !xPresent && !yPresent {
			continue
		}

		if state.LinearAbsolute {
			if xPresent && xOK {
				cx = xVal
			}
			if yPresent && yOK {
				cy = yVal
			}
		} else {
			if xPresent && xOK {
				cx += xVal
			}
			if yPresent && yOK {
				cy += yVal
			}
		}

		if !seen {
			box = BoundingBox{MinX: cx, MinY: cy, MaxX: cx, MaxY: cy}
			seen = true
			continue
		}
		if cx < box.MinX {
			box.MinX = cx
		}
		if cx > box.MaxX {
			box.MaxX = cx
		}
		if cy < box.MinY {
			box.MinY = cy
		}
		if cy > box.MaxY {
			box.MaxY = cy
		}
	}

	return box
}

// bboxFromRecorded computes the bounding box over a pass's recorded
// running positions, used to derive the rotated-before-fit bbox
// directly from runPass's output instead of replaying the program a
// second time. Every absolute-motion line counts, even one whose
// resolved position happens to equal the running position already (the
// pivot point, or an on-axis point under a 180-degree turn), matching
// ComputeBoundingBox's own gate on X/Y presence rather than on whether
// rotation actually changed anything.
func bboxFromRecorded(recorded []recordedLine) BoundingBox {
	var box BoundingBox
	seen := false
	for _, p := range recorded {
		if !p.counted {
			continue
		}
		if !seen {
			box = BoundingBox{MinX: p.x, MinY: p.y, MaxX: p.x, MaxY: p.y}
			seen = true
			continue
		}
		if p.x < box.MinX {
			box.MinX = p.x
		}
		if p.x > box.MaxX {
			box.MaxX = p.x
		}
		if p.y < box.MinY {
			box.MinY = p.y
		}
		if p.y > box.MaxY {
			box.MaxY = p.y
		}
	}
	return box
}
