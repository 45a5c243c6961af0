package debugger

import (
	"testing"

	"github.com/RefikCodes/raptorex-gcode/rotate"
)

func sampleOutcome() rotate.Outcome {
	entries := make([]rotate.DebugEntry, 0, 5)
	for i := 0; i < 5; i++ {
		entries = append(entries, rotate.DebugEntry{
			LineIndex: i,
			Original:  "G1 X1 Y1",
			Rewritten: "G1 X-1 Y1",
			Rotated:   true,
			IsArc:     i == 2,
			BeforeX:   1,
			BeforeY:   1,
			AfterX:    -1,
			AfterY:    1,
		})
	}
	return rotate.Outcome{Debug: entries}
}

func TestDebugger_NextPrevGoto(t *testing.T) {
	dbg := NewDebugger(sampleOutcome())

	if err := dbg.ExecuteCommand("next"); err != nil {
		t.Fatalf("next: %v", err)
	}
	if dbg.Index != 1 {
		t.Errorf("Index = %d, want 1", dbg.Index)
	}

	if err := dbg.ExecuteCommand("next 2"); err != nil {
		t.Fatalf("next 2: %v", err)
	}
	if dbg.Index != 3 {
		t.Errorf("Index = %d, want 3", dbg.Index)
	}

	if err := dbg.ExecuteCommand("prev"); err != nil {
		t.Fatalf("prev: %v", err)
	}
	if dbg.Index != 2 {
		t.Errorf("Index = %d, want 2", dbg.Index)
	}

	if err := dbg.ExecuteCommand("goto 5"); err != nil {
		t.Fatalf("goto 5: %v", err)
	}
	if dbg.Index != 4 {
		t.Errorf("Index = %d, want 4", dbg.Index)
	}
}

func TestDebugger_PrevClampsAtZero(t *testing.T) {
	dbg := NewDebugger(sampleOutcome())

	if err := dbg.ExecuteCommand("prev 3"); err != nil {
		t.Fatalf("prev 3: %v", err)
	}
	if dbg.Index != 0 {
		t.Errorf("Index = %d, want 0", dbg.Index)
	}
}

func TestDebugger_BreakpointStopsRun(t *testing.T) {
	dbg := NewDebugger(sampleOutcome())

	if err := dbg.ExecuteCommand("break 3"); err != nil {
		t.Fatalf("break 3: %v", err)
	}
	if err := dbg.ExecuteCommand("run"); err != nil {
		t.Fatalf("run: %v", err)
	}

	if dbg.Index != 2 {
		t.Errorf("Index = %d, want 2 (0-based line 3)", dbg.Index)
	}

	bps := dbg.Breakpoints.GetAllBreakpoints()
	if len(bps) != 1 || bps[0].HitCount != 1 {
		t.Errorf("breakpoint hit count = %+v, want one hit", bps)
	}
}

func TestDebugger_TemporaryBreakpointIsRemovedAfterHit(t *testing.T) {
	dbg := NewDebugger(sampleOutcome())

	if err := dbg.ExecuteCommand("tbreak 1"); err != nil {
		t.Fatalf("tbreak 1: %v", err)
	}
	if err := dbg.ExecuteCommand("run"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if dbg.Breakpoints.Count() != 0 {
		t.Errorf("temporary breakpoint still present after hit")
	}
}

func TestDebugger_ArcOnlyBreakpointSkipsLineMoves(t *testing.T) {
	dbg := NewDebugger(sampleOutcome())
	dbg.Breakpoints.AddBreakpoint(0, false, true)
	dbg.Breakpoints.AddBreakpoint(2, false, true)

	if err := dbg.ExecuteCommand("run"); err != nil {
		t.Fatalf("run: %v", err)
	}

	if dbg.Index != 2 {
		t.Errorf("Index = %d, want 2 (first arc entry)", dbg.Index)
	}
}

func TestDebugger_RunWithNoBreakpointsReachesEnd(t *testing.T) {
	dbg := NewDebugger(sampleOutcome())

	if err := dbg.ExecuteCommand("run"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !dbg.AtEnd() {
		t.Errorf("expected cursor at end of trace, got index %d", dbg.Index)
	}
}

func TestDebugger_UnknownCommand(t *testing.T) {
	dbg := NewDebugger(sampleOutcome())
	if err := dbg.ExecuteCommand("frobnicate"); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestDebugger_QuitStopsRunning(t *testing.T) {
	dbg := NewDebugger(sampleOutcome())
	if err := dbg.ExecuteCommand("quit"); err != nil {
		t.Fatalf("quit: %v", err)
	}
	if dbg.Running {
		t.Error("Running should be false after quit")
	}
}
