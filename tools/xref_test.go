package tools

import "testing"

func TestBuildXref_CountsUsage(t *testing.T) {
	report := BuildXref([]string{"G90", "G0 X1", "G0 X2", "G1 X3", "M3 S1000"})

	g0, ok := report.Lookup('G', 0)
	if !ok {
		t.Fatal("expected G0 usage recorded")
	}
	if len(g0.Lines) != 2 {
		t.Errorf("expected G0 used on 2 lines, got %v", g0.Lines)
	}

	m3, ok := report.Lookup('M', 3)
	if !ok || len(m3.Lines) != 1 {
		t.Errorf("expected single M3 usage, got %+v ok=%v", m3, ok)
	}
}

func TestBuildXref_SortedCodes(t *testing.T) {
	report := BuildXref([]string{"G1 X1", "G0 X1", "M3"})
	codes := report.Codes()
	if len(codes) != 3 {
		t.Fatalf("expected 3 distinct codes, got %d", len(codes))
	}
	if codes[0].Key() != "G0" || codes[1].Key() != "G1" {
		t.Errorf("expected G codes sorted before M, got %s then %s", codes[0].Key(), codes[1].Key())
	}
}
