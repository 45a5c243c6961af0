package debugger

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newTestTUI(t *testing.T) *TUI {
	t.Helper()
	dbg := NewDebugger(sampleOutcome())
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	return NewTUIWithScreen(dbg, screen)
}

func TestTUI_ExecuteCommandDoesNotBlock(t *testing.T) {
	tui := newTestTUI(t)

	done := make(chan bool, 1)
	go func() {
		tui.executeCommand("help")
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("executeCommand blocked for more than 2 seconds")
	}
}

func TestTUI_HandleCommandReturnsImmediately(t *testing.T) {
	tui := newTestTUI(t)
	tui.CommandInput.SetText("help")

	done := make(chan bool, 1)
	go func() {
		tui.handleCommand(tcell.KeyEnter)
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("handleCommand blocked for more than 100ms - should return immediately")
	}
}
