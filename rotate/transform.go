package rotate

import (
	"math"

	"github.com/RefikCodes/raptorex-gcode/gcode"
)

// engineParams bundles everything a single rotation pass needs besides
// the program text itself.
type engineParams struct {
	pivot    ResolvedPivot
	decimals int
	useAngle bool    // true: rotate by angleDeg; false: rotate by quarterK*90
	angleDeg float64 // signed degrees, positive = counter-clockwise
	quarterK int     // normalized quarter turns, 0..3, counter-clockwise
}

// recordedLine is the rotated absolute position touched by one line,
// kept for the normalizer (to compute the fit shift) and for deriving
// the rotated bbox without re-running the geometry.
type recordedLine struct {
	x, y    float64
	counted bool // true if this line carried an X/Y word (an absolute or incremental motion)
}

// quarterTurnCCW rotates (x, y) about the origin by k quarter turns
// counter-clockwise, k in 0..3, using exact swaps/negations so the
// result never picks up floating-point rotation error the way a
// generic sin/cos rotation would.
func quarterTurnCCW(x, y float64, k int) (float64, float64) {
	switch ((k % 4) + 4) % 4 {
	case 0:
		return x, y
	case 1:
		return -y, x
	case 2:
		return -x, -y
	case 3:
		return y, -x
	default:
		return x, y
	}
}

// NormalizeQuarterTurns folds a turn count and a direction flag into a
// single counter-clockwise quarter-turn count in 0..3. A clockwise turn
// of n quarters is the same rotation as a counter-clockwise turn of -n.
func NormalizeQuarterTurns(quarterTurns int, clockwise bool) int {
	if clockwise {
		quarterTurns = -quarterTurns
	}
	k := quarterTurns % 4
	if k < 0 {
		k += 4
	}
	return k
}

// arbitraryRotate rotates (x, y) about the origin by angleDeg degrees
// counter-clockwise.
func arbitraryRotate(x, y, angleDeg float64) (float64, float64) {
	rad := angleDeg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	return x*cos - y*sin, x*sin + y*cos
}

func (p engineParams) rotateAboutPivot(x, y float64) (float64, float64) {
	relX, relY := x-p.pivot.X, y-p.pivot.Y
	var rotX, rotY float64
	if p.useAngle {
		rotX, rotY = arbitraryRotate(relX, relY, p.angleDeg)
	} else {
		rotX, rotY = quarterTurnCCW(relX, relY, p.quarterK)
	}
	return rotX + p.pivot.X, rotY + p.pivot.Y
}

// lineState carries the running position across lines of a pass: the
// source (pre-rotation) position sx/sy, which resolves an axis a line
// leaves implicit exactly as ComputeBoundingBox does, and the rotated
// position cx/cy the rewritten program reaches.
type lineState struct {
	sx, sy float64
	cx, cy float64
}

// runPass performs one full rotation pass over lines: it advances the
// modal tracker and running position per line exactly as
// ComputeBoundingBox does, but additionally rewrites any X/Y (linear
// moves) or I/J (arc centers) word it encounters, in the appropriate
// absolute/incremental interpretation for its axis (spec §4.5).
//
// Words whose letter isn't present, or whose value text failed to
// parse, are left untouched (spec §7): they are neither rotated nor
// allowed to advance the running position.
func runPass(lines []string, params engineParams, sink LogSink) (out []string, recorded []recordedLine) {
	tracker := gcode.NewModalTracker()
	pos := lineState{}
	out = make([]string, len(lines))
	recorded = make([]recordedLine, len(lines))

	for i, raw := range lines {
		codeRaw, tail := gcode.SplitRaw(raw)
		words := gcode.ScanWords(codeRaw)
		isArc := tracker.Advance(words)
		state := tracker.State()

		if len(words) == 0 {
			out[i] = raw
			recorded[i] = recordedLine{x: pos.cx, y: pos.cy}
			logTo(sink, DebugEntry{LineIndex: i, Original: raw, Rewritten: raw})
			continue
		}

		overrides := map[byte]string{}

		// X/Y endpoint coordinates are rewritten on every move, arc or
		// not; I/J centers only exist on arcs (spec §4.4/§4.5).
		xyTouched, xyMoved := rewriteLinearAxes(words, params, &pos, state, overrides)
		arcTouched := false
		if isArc {
			arcTouched = rewriteArcCenters(words, params, state, overrides)
		}
		touched := xyTouched || arcTouched

		var newCode string
		if touched {
			newCode = rebuildCodePart(words, overrides, []byte{'X', 'Y', 'I', 'J'})
		} else {
			newCode = codeRaw
		}

		line := newCode + tail
		out[i] = line
		recorded[i] = recordedLine{x: pos.cx, y: pos.cy, counted: xyMoved}

		logTo(sink, DebugEntry{
			LineIndex: i, Original: raw, Rewritten: line,
			IsArc: isArc, Rotated: touched,
			BeforeX: pos.sx, BeforeY: pos.sy,
			AfterX: pos.cx, AfterY: pos.cy,
		})
	}

	return out, recorded
}

// rewriteLinearAxes handles an X/Y linear-move word pair. In absolute
// mode the paired-emission rule applies: if either axis's rotated value
// differs from its rebuilt-but-unrotated counterpart, both X and Y are
// emitted together, because a rotation mixes the two axes and leaving
// one behind would silently desynchronize the path (spec §4.6). In
// incremental mode each axis is independent: its delta is rotated and
// kept only if the source word was present (or the resulting delta is
// non-negligible).
func rewriteLinearAxes(words []gcode.Word, params engineParams, pos *lineState, state gcode.ModalState, overrides map[byte]string) (touched, moved bool) {
	xVal, xPresent, xOK := wordValue(words, 'X')
	yVal, yPresent, yOK := wordValue(words, 'Y')
	if !xPresent && !yPresent {
		return false, false
	}
	moved = true

	if state.LinearAbsolute {
		newX, newY := pos.sx, pos.sy
		if xPresent && xOK {
			newX = xVal
		}
		if yPresent && yOK {
			newY = yVal
		}
		rotX, rotY := params.rotateAboutPivot(newX, newY)

		changed := roundTo(rotX, params.decimals) != roundTo(newX, params.decimals)
		changed = changed || roundTo(rotY, params.decimals) != roundTo(newY, params.decimals)

		pos.sx, pos.sy = newX, newY
		pos.cx, pos.cy = rotX, rotY

		if !changed {
			return false, moved
		}
		if shouldOverride(xPresent, xOK) {
			overrides['X'] = formatNumber(rotX, params.decimals)
		}
		if shouldOverride(yPresent, yOK) {
			overrides['Y'] = formatNumber(rotY, params.decimals)
		}
		return true, moved
	}

	// Incremental: rotate the delta vector about the origin (a
	// translation-invariant operation), not about the pivot.
	dx, dy := 0.0, 0.0
	if xPresent && xOK {
		dx = xVal
	}
	if yPresent && yOK {
		dy = yVal
	}
	var rotDX, rotDY float64
	if params.useAngle {
		rotDX, rotDY = arbitraryRotate(dx, dy, params.angleDeg)
	} else {
		rotDX, rotDY = quarterTurnCCW(dx, dy, params.quarterK)
	}

	pos.sx += dx
	pos.sy += dy
	pos.cx += rotDX
	pos.cy += rotDY

	if keepIncrementalAxis(xPresent, xOK, rotDX) {
		overrides['X'] = formatNumber(rotDX, params.decimals)
		touched = true
	}
	if keepIncrementalAxis(yPresent, yOK, rotDY) {
		overrides['Y'] = formatNumber(rotDY, params.decimals)
		touched = true
	}
	return touched, moved
}

// rewriteArcCenters handles an I/J arc-center word pair. Under
// G91.1 (the default), I/J are offsets from the arc's start point
// regardless of the linear G90/G91 mode, so they rotate as a delta
// vector about the origin. Under G90.1, I/J are absolute center
// coordinates in the same frame as X/Y and rotate about params.pivot
// like an absolute linear move (spec §4.5 step 4).
func rewriteArcCenters(words []gcode.Word, params engineParams, state gcode.ModalState, overrides map[byte]string) bool {
	iVal, iPresent, iOK := wordValue(words, 'I')
	jVal, jPresent, jOK := wordValue(words, 'J')
	if !iPresent && !jPresent {
		return false
	}

	i0, j0 := 0.0, 0.0
	if iPresent && iOK {
		i0 = iVal
	}
	if jPresent && jOK {
		j0 = jVal
	}

	if state.ArcCenterAbsolute {
		rotI, rotJ := params.rotateAboutPivot(i0, j0)

		touched := false
		if shouldOverride(iPresent, iOK) {
			overrides['I'] = formatNumber(rotI, params.decimals)
			touched = true
		}
		if shouldOverride(jPresent, jOK) {
			overrides['J'] = formatNumber(rotJ, params.decimals)
			touched = true
		}
		return touched
	}

	var rotI, rotJ float64
	if params.useAngle {
		rotI, rotJ = arbitraryRotate(i0, j0, params.angleDeg)
	} else {
		rotI, rotJ = quarterTurnCCW(i0, j0, params.quarterK)
	}

	touched := false
	if keepIncrementalAxis(iPresent, iOK, rotI) {
		overrides['I'] = formatNumber(rotI, params.decimals)
		touched = true
	}
	if keepIncrementalAxis(jPresent, jOK, rotJ) {
		overrides['J'] = formatNumber(rotJ, params.decimals)
		touched = true
	}
	return touched
}

// shouldOverride reports whether a word's letter should be replaced
// with rotated text: yes unless the source word was present but failed
// to parse, in which case spec §7 requires leaving it verbatim.
func shouldOverride(present, ok bool) bool {
	return !(present && !ok)
}

const incrementalKeepThreshold = 1e-12

// keepIncrementalAxis decides whether a rotated incremental/arc value
// should appear in the output: always when the source word was
// present and parsed, and also when it was absent but the rotated
// delta is non-negligible (spec §4.5 step 3/4) — a pure axis motion can
// rotate into a motion with a component on an axis the source never
// mentioned.
func keepIncrementalAxis(present, ok bool, rotated float64) bool {
	if present && !ok {
		return false
	}
	if present {
		return true
	}
	return math.Abs(rotated) > incrementalKeepThreshold
}
