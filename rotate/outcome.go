package rotate

// Outcome is the full result of a rotation that tracks metadata,
// returned by the *WithOutcome operations. The plain Rotate* operations
// return only the rewritten lines for callers that don't need it.
type Outcome struct {
	Lines []string

	SourceBBox  BoundingBox
	RotatedBBox BoundingBox // bbox immediately after rotation, before any fit shift
	ResultBBox  BoundingBox // RotatedBBox shifted by (ShiftDX, ShiftDY) when Normalized

	Pivot ResolvedPivot

	UsedAngle    bool
	AngleDeg     float64
	QuarterTurns int
	Clockwise    bool

	Decimals   int
	Normalized bool
	ShiftDX    float64
	ShiftDY    float64

	Debug []DebugEntry
}

// RotateQuarterTurns rotates lines by quarterTurns 90-degree steps
// about pivot, without normalization. It never rejects input: lines
// that carry no X/Y/I/J words, or words that fail to parse, pass
// through unchanged (spec §7).
func RotateQuarterTurns(lines []string, quarterTurns int, clockwise bool, pivot PivotSpec, decimals int) []string {
	sourceBBox := ComputeBoundingBox(lines)
	params := engineParams{
		pivot:    resolvePivot(pivot, sourceBBox),
		decimals: decimals,
		quarterK: NormalizeQuarterTurns(quarterTurns, clockwise),
	}
	out, _ := runPass(lines, params, nil)
	return out
}

// RotateWithOutcome performs a single 90-degree turn about pivot,
// optionally normalizing (fit) the result to non-negative coordinates,
// and returns full bbox/shift metadata alongside the rewritten lines.
// The clockwise flag is the only direction control this operation
// exposes; fixing the turn count at one quarter-turn matches the rest
// of the quarter-turn API while keeping this entry point's signature
// free of a redundant turn-count parameter.
func RotateWithOutcome(lines []string, clockwise bool, fit bool, pivot PivotSpec, decimals int, sink LogSink) Outcome {
	sourceBBox := ComputeBoundingBox(lines)
	resolved := resolvePivot(pivot, sourceBBox)
	params := engineParams{
		pivot:    resolved,
		decimals: decimals,
		quarterK: NormalizeQuarterTurns(1, clockwise),
	}

	out, _, rotatedBBox, resultBBox, dx, dy, debug := rotateAndFit(lines, params, fit, sink)

	return Outcome{
		Lines:        out,
		SourceBBox:   sourceBBox,
		RotatedBBox:  rotatedBBox,
		ResultBBox:   resultBBox,
		Pivot:        resolved,
		QuarterTurns: 1,
		Clockwise:    clockwise,
		Decimals:     decimals,
		Normalized:   fit,
		ShiftDX:      dx,
		ShiftDY:      dy,
		Debug:        debug,
	}
}

// RotateArbitraryAngle rotates lines by angleDeg degrees (positive
// counter-clockwise) about pivot, without normalization.
func RotateArbitraryAngle(lines []string, angleDeg float64, pivot PivotSpec, decimals int) []string {
	sourceBBox := ComputeBoundingBox(lines)
	params := engineParams{
		pivot:    resolvePivot(pivot, sourceBBox),
		decimals: decimals,
		useAngle: true,
		angleDeg: angleDeg,
	}
	out, _ := runPass(lines, params, nil)
	return out
}

// RotateArbitraryWithOutcome is the arbitrary-angle counterpart of
// RotateWithOutcome.
func RotateArbitraryWithOutcome(lines []string, angleDeg float64, fit bool, pivot PivotSpec, decimals int, sink LogSink) Outcome {
	sourceBBox := ComputeBoundingBox(lines)
	resolved := resolvePivot(pivot, sourceBBox)
	params := engineParams{
		pivot:    resolved,
		decimals: decimals,
		useAngle: true,
		angleDeg: angleDeg,
	}

	out, _, rotatedBBox, resultBBox, dx, dy, debug := rotateAndFit(lines, params, fit, sink)

	return Outcome{
		Lines:       out,
		SourceBBox:  sourceBBox,
		RotatedBBox: rotatedBBox,
		ResultBBox:  resultBBox,
		Pivot:       resolved,
		UsedAngle:   true,
		AngleDeg:    angleDeg,
		Decimals:    decimals,
		Normalized:  fit,
		ShiftDX:     dx,
		ShiftDY:     dy,
		Debug:       debug,
	}
}

// rotateAndFit is the shared assembler behind both *WithOutcome
// operations (spec §4.8): run one rotation pass, derive the rotated
// bbox from its recorded positions, and — if fit is requested —
// compute and apply the shift that brings that bbox's minimum to the
// origin, deriving the final bbox analytically via BoundingBox.Shift
// rather than re-running the rotation.
func rotateAndFit(lines []string, params engineParams, fit bool, sink LogSink) (out []string, recorded []recordedLine, rotatedBBox, resultBBox BoundingBox, dx, dy float64, debug []DebugEntry) {
	trace := &SliceSink{}
	out, recorded = runPass(lines, params, trace)
	rotatedBBox = bboxFromRecorded(recorded)
	resultBBox = rotatedBBox

	if fit {
		dx, dy = computeShift(recorded)
		out = applyShift(out, dx, dy, params.decimals)
		resultBBox = resultBBox.Shift(dx, dy)
	}

	debug = trace.Entries
	if sink != nil {
		for _, e := range debug {
			sink.Log(e)
		}
	}

	return out, recorded, rotatedBBox, resultBBox, dx, dy, debug
}
