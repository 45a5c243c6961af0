package gcode_test

import (
	"testing"

	"github.com/RefikCodes/raptorex-gcode/gcode"
)

func TestModalTracker_Defaults(t *testing.T) {
	tr := gcode.NewModalTracker()
	st := tr.State()
	if !st.LinearAbsolute {
		t.Error("expected initial linear mode absolute")
	}
	if st.ArcCenterAbsolute {
		t.Error("expected initial arc-center mode incremental")
	}
}

func TestModalTracker_G91SwitchesIncremental(t *testing.T) {
	tr := gcode.NewModalTracker()
	words := gcode.ScanWords("G91 X10 Y10")
	tr.Advance(words)
	if tr.State().LinearAbsolute {
		t.Error("expected incremental mode after G91")
	}
}

func TestModalTracker_G901DoesNotAffectLinearMode(t *testing.T) {
	tr := gcode.NewModalTracker()
	words := gcode.ScanWords("G90.1")
	tr.Advance(words)
	st := tr.State()
	if !st.LinearAbsolute {
		t.Error("G90.1 must not change linear mode")
	}
	if !st.ArcCenterAbsolute {
		t.Error("G90.1 must set arc-center mode absolute")
	}
}

func TestModalTracker_ArcDetection(t *testing.T) {
	tr := gcode.NewModalTracker()
	if isArc := tr.Advance(gcode.ScanWords("G1 X1 Y1")); isArc {
		t.Error("G1 should not be flagged as an arc")
	}
	if isArc := tr.Advance(gcode.ScanWords("G02 X1 Y1 I0 J1")); !isArc {
		t.Error("G02 (leading zero) should be flagged as an arc")
	}
	if isArc := tr.Advance(gcode.ScanWords("G3 X1 Y1 I0 J1")); !isArc {
		t.Error("G3 should be flagged as an arc")
	}
}

func TestModalTracker_SameLineModeAppliesBeforeCoordinates(t *testing.T) {
	// Invariant 4: modal transitions are computed before the line's own
	// coordinates are rotated, so "G90 X1 Y1" is read under absolute mode.
	tr := gcode.NewModalTracker()
	tr.Advance(gcode.ScanWords("G91"))
	tr.Advance(gcode.ScanWords("G90 X1 Y1"))
	if !tr.State().LinearAbsolute {
		t.Error("expected absolute mode to take effect for the same line's coordinates")
	}
}

func TestParseValue(t *testing.T) {
	if v, ok := gcode.ParseValue("10.5"); !ok || v != 10.5 {
		t.Errorf("expected 10.5, got %v %v", v, ok)
	}
	if _, ok := gcode.ParseValue("abc"); ok {
		t.Error("expected failure parsing non-numeric text")
	}
}
