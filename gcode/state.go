package gcode

import "strconv"

// ModalState is the pair of persistent interpretation flags carried
// across lines until explicitly changed.
type ModalState struct {
	LinearAbsolute    bool // controls interpretation of X/Y on linear moves
	ArcCenterAbsolute bool // controls interpretation of I/J on arcs
}

// DefaultModalState returns the initial modal state of a program:
// absolute linear positioning, incremental arc-center mode.
func DefaultModalState() ModalState {
	return ModalState{LinearAbsolute: true, ArcCenterAbsolute: false}
}

// ModalTracker replays G-word tokens to maintain ModalState across a
// program. It is the single source of truth both the bounding-box
// scanner and the rotation transformer drive, so the two passes can
// never diverge on G90/G91 interpretation.
type ModalTracker struct {
	state ModalState
}

// NewModalTracker creates a tracker starting from the initial modal
// state (absolute linear, incremental arc-center).
func NewModalTracker() *ModalTracker {
	return &ModalTracker{state: DefaultModalState()}
}

// State returns the tracker's current modal state.
func (t *ModalTracker) State() ModalState {
	return t.state
}

// Advance updates modal state from the G-words of a single line's
// scanned words. It must be called before that line's coordinates are
// interpreted (spec invariant 4). It returns whether the line contains
// an arc command (G2/G3, any leading-zero form).
func (t *ModalTracker) Advance(words []Word) (isArc bool) {
	for _, w := range words {
		if w.Letter != 'G' {
			continue
		}
		v, ok := ParseValue(w.ValueText)
		if !ok {
			continue
		}
		switch {
		case floatsEqual(v, gValueLinearAbsolute):
			t.state.LinearAbsolute = true
		case floatsEqual(v, gValueLinearIncr):
			t.state.LinearAbsolute = false
		case floatsEqual(v, gValueArcAbsolute):
			t.state.ArcCenterAbsolute = true
		case floatsEqual(v, gValueArcIncr):
			t.state.ArcCenterAbsolute = false
		case floatsEqual(v, gValueArcCW), floatsEqual(v, gValueArcCCW):
			isArc = true
		}
	}
	return isArc
}

// ParseValue parses a word's value text as a float64. It reports
// failure instead of panicking so callers can fall back to verbatim
// pass-through per spec §7.
func ParseValue(valueText string) (float64, bool) {
	v, err := strconv.ParseFloat(valueText, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func floatsEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < modalEpsilon
}
