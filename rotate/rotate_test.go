package rotate_test

import (
	"math"
	"strings"
	"testing"

	"github.com/RefikCodes/raptorex-gcode/rotate"
)

func TestRotateQuarterTurns_LengthPreserved(t *testing.T) {
	lines := []string{
		"G90",
		"G0 X10 Y20",
		"(a comment)",
		"; a tail comment",
		"G1 X-5 Y5",
		"",
	}
	out := rotate.RotateQuarterTurns(lines, 1, false, rotate.Origin(), 3)
	if len(out) != len(lines) {
		t.Fatalf("expected %d lines, got %d", len(lines), len(out))
	}
}

func TestRotateQuarterTurns_CommentsPreservedByteForByte(t *testing.T) {
	lines := []string{"(header note)", "G0 X1 Y1", "; trailing note"}
	out := rotate.RotateQuarterTurns(lines, 1, false, rotate.Origin(), 3)
	if out[0] != lines[0] {
		t.Errorf("expected comment-only line preserved, got %q", out[0])
	}
	if out[2] != lines[2] {
		t.Errorf("expected comment-only line preserved, got %q", out[2])
	}
}

func TestRotateQuarterTurns_IdentityAtZeroTurns(t *testing.T) {
	lines := []string{"G90", "G0 X10 Y20", "G1 X-5 Y5"}
	out := rotate.RotateQuarterTurns(lines, 0, false, rotate.Origin(), 3)
	for i := range lines {
		if out[i] != lines[i] {
			t.Errorf("line %d: expected %q unchanged, got %q", i, lines[i], out[i])
		}
	}
}

func TestRotateQuarterTurns_FourQuarterTurnsIsIdentity(t *testing.T) {
	lines := []string{"G90", "G0 X10 Y20", "G1 X-5.5 Y5.25"}
	out := rotate.RotateQuarterTurns(lines, 4, false, rotate.Origin(), 3)
	for i := range lines {
		if out[i] != lines[i] {
			t.Errorf("line %d: expected %q after four turns, got %q", i, lines[i], out[i])
		}
	}
}

func TestRotateQuarterTurns_PairedEmission(t *testing.T) {
	// A 90 deg CCW turn about the origin sends (10, 0) to (0, 10): X
	// changes, so Y must be emitted too even though its source value
	// (an implicit carry of 0) never appeared on the line.
	lines := []string{"G90", "G0 X10"}
	out := rotate.RotateQuarterTurns(lines, 1, false, rotate.Origin(), 3)
	words := gcodeScan(out[1])
	if _, ok := words['X']; !ok {
		t.Errorf("expected X in rewritten line, got %q", out[1])
	}
	if _, ok := words['Y']; !ok {
		t.Errorf("expected paired Y in rewritten line, got %q", out[1])
	}
}

func TestRotateWithOutcome_FitProducesNonNegativeBBox(t *testing.T) {
	lines := []string{"G90", "G0 X10 Y5", "G1 X-8 Y-3"}
	outcome := rotate.RotateWithOutcome(lines, true, true, rotate.Origin(), 3, nil)
	if outcome.ResultBBox.MinX < -1e-9 || outcome.ResultBBox.MinY < -1e-9 {
		t.Errorf("expected non-negative result bbox after fit, got %+v", outcome.ResultBBox)
	}
}

func TestRotateWithOutcome_ShiftConsistency(t *testing.T) {
	lines := []string{"G90", "G0 X10 Y5", "G1 X-8 Y-3"}
	outcome := rotate.RotateWithOutcome(lines, false, true, rotate.Origin(), 4, nil)
	if math.Abs(outcome.ResultBBox.MinX) > 1e-6 {
		t.Errorf("expected shifted bbox min at 0, got %v", outcome.ResultBBox.MinX)
	}
	if math.Abs(outcome.ResultBBox.MinY) > 1e-6 {
		t.Errorf("expected shifted bbox min at 0, got %v", outcome.ResultBBox.MinY)
	}
	if math.Abs(outcome.ShiftDX-(outcome.ResultBBox.MinX-outcome.RotatedBBox.MinX)) > 1e-9 {
		t.Errorf("expected ShiftDX = after.MinX - before.MinX, got %v vs %v", outcome.ShiftDX, outcome.ResultBBox.MinX-outcome.RotatedBBox.MinX)
	}
	if math.Abs(outcome.ShiftDY-(outcome.ResultBBox.MinY-outcome.RotatedBBox.MinY)) > 1e-9 {
		t.Errorf("expected ShiftDY = after.MinY - before.MinY, got %v vs %v", outcome.ShiftDY, outcome.ResultBBox.MinY-outcome.RotatedBBox.MinY)
	}
}

func TestRotateWithOutcome_NoFitLeavesNegativeCoordinates(t *testing.T) {
	lines := []string{"G90", "G0 X-10 Y-5"}
	outcome := rotate.RotateWithOutcome(lines, false, false, rotate.Origin(), 3, nil)
	if outcome.Normalized {
		t.Error("expected Normalized=false when fit not requested")
	}
	if outcome.ShiftDX != 0 || outcome.ShiftDY != 0 {
		t.Errorf("expected zero shift without fit, got dx=%v dy=%v", outcome.ShiftDX, outcome.ShiftDY)
	}
}

func TestRotateArbitraryAngle_NinetyMatchesQuarterTurn(t *testing.T) {
	lines := []string{"G90", "G0 X10 Y3"}
	quarter := rotate.RotateQuarterTurns(lines, 1, false, rotate.Origin(), 3)
	angle := rotate.RotateArbitraryAngle(lines, 90, rotate.Origin(), 3)
	if quarter[1] != angle[1] {
		t.Errorf("expected 90deg arbitrary rotation to match one CCW quarter turn: %q vs %q", quarter[1], angle[1])
	}
}

func TestRotateArbitraryAngle_ZeroIsIdentity(t *testing.T) {
	lines := []string{"G90", "G0 X10 Y3", "G1 X-1 Y-1"}
	out := rotate.RotateArbitraryAngle(lines, 0, rotate.Origin(), 3)
	for i := range lines {
		if out[i] != lines[i] {
			t.Errorf("line %d: expected unchanged at angle 0, got %q", i, out[i])
		}
	}
}

func TestRotateQuarterTurns_UnparseableWordLeftVerbatim(t *testing.T) {
	// X overflows float64, so it scans as a word but fails to parse; it
	// must survive byte-for-byte even though Y on the same line
	// legitimately rotates (spec §7).
	badX := "X1" + strings.Repeat("0", 400)
	lines := []string{"G90", "G0 " + badX + " Y2"}
	out := rotate.RotateQuarterTurns(lines, 1, false, rotate.Origin(), 3)
	if !contains(out[1], badX) {
		t.Errorf("expected unparseable X word preserved verbatim, got %q", out[1])
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

func TestRotateQuarterTurns_IncrementalArcCenterRotates(t *testing.T) {
	lines := []string{"G91", "G2 X5 Y0 I5 J0"}
	out := rotate.RotateQuarterTurns(lines, 1, false, rotate.Origin(), 3)
	words := gcodeScan(out[1])
	if words['I'] != "0" && words['I'] != "-0" {
		t.Errorf("expected I to rotate toward 0, got %q", words['I'])
	}
	if words['J'] != "5" {
		t.Errorf("expected J to rotate toward 5, got %q", words['J'])
	}
}

// gcodeScan is a tiny test-local helper that maps letters to their
// value text for assertions, without pulling in the gcode package's
// full Word type.
func gcodeScan(line string) map[byte]string {
	result := map[byte]string{}
	var letter byte
	var val []byte
	flush := func() {
		if letter != 0 {
			result[letter] = string(val)
		}
		letter = 0
		val = nil
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c >= 'A' && c <= 'Z':
			flush()
			letter = c
		case c == '-' || c == '.' || (c >= '0' && c <= '9'):
			if letter != 0 {
				val = append(val, c)
			}
		default:
			flush()
		}
	}
	flush()
	return result
}
