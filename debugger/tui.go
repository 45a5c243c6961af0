package debugger

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TUI is a text interface for stepping through a rotation's debug
// trace: a source/result view, a summary panel (bbox, pivot, shift),
// an output log, and a command line.
type TUI struct {
	Debugger *Debugger
	App      *tview.Application
	Pages    *tview.Pages

	MainLayout *tview.Flex

	TraceView   *tview.TextView
	SummaryView *tview.TextView
	OutputView  *tview.TextView
	CommandInput *tview.InputField
}

// NewTUI creates a text interface over a debugger's trace.
func NewTUI(dbg *Debugger) *TUI {
	return NewTUIWithScreen(dbg, nil)
}

// NewTUIWithScreen creates a text interface bound to a specific tcell
// screen, so tests can drive it against a simulation screen instead of
// a real terminal.
func NewTUIWithScreen(dbg *Debugger, screen tcell.Screen) *TUI {
	app := tview.NewApplication()
	if screen != nil {
		app.SetScreen(screen)
	}

	t := &TUI{
		Debugger: dbg,
		App:      app,
	}

	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()

	return t
}

func (t *TUI) initializeViews() {
	t.TraceView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.TraceView.SetBorder(true).SetTitle(" Trace ")

	t.SummaryView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	t.SummaryView.SetBorder(true).SetTitle(" Outcome ")

	t.OutputView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	t.OutputView.SetBorder(true).SetTitle(" Output ")

	t.CommandInput = tview.NewInputField().
		SetLabel("> ").
		SetFieldWidth(0)
	t.CommandInput.SetBorder(true).SetTitle(" Command ")
	t.CommandInput.SetDoneFunc(t.handleCommand)
}

func (t *TUI) buildLayout() {
	top := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(t.TraceView, 0, 3, false).
		AddItem(t.SummaryView, 0, 1, false)

	t.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(top, 0, 4, false).
		AddItem(t.OutputView, 8, 0, false).
		AddItem(t.CommandInput, 3, 0, true)

	t.Pages = tview.NewPages().
		AddPage("main", t.MainLayout, true, true)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF1:
			t.executeCommand("help")
			return nil
		case tcell.KeyF5:
			t.executeCommand("run")
			return nil
		case tcell.KeyF10:
			t.executeCommand("next")
			return nil
		case tcell.KeyF9:
			t.executeCommand("prev")
			return nil
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			t.RefreshAll()
			return nil
		}
		return event
	})
}

func (t *TUI) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	cmd := t.CommandInput.GetText()
	if cmd == "" {
		return
	}
	t.CommandInput.SetText("")
	go func() {
		t.App.QueueUpdateDraw(func() {
			t.executeCommand(cmd)
		})
	}()
}

// executeCommand runs a debugger command and refreshes every view.
func (t *TUI) executeCommand(cmd string) {
	err := t.Debugger.ExecuteCommand(cmd)
	output := t.Debugger.GetOutput()

	if err != nil {
		t.WriteOutput(fmt.Sprintf("[red]Error:[white] %v\n", err))
	}
	if output != "" {
		t.WriteOutput(output)
	}

	if !t.Debugger.Running {
		t.App.Stop()
		return
	}

	t.RefreshAll()
}

// WriteOutput appends text to the output log.
func (t *TUI) WriteOutput(text string) {
	_, _ = t.OutputView.Write([]byte(text))
	t.OutputView.ScrollToEnd()
}

// RefreshAll redraws the trace and summary views.
func (t *TUI) RefreshAll() {
	t.UpdateTraceView()
	t.UpdateSummaryView()
	t.App.Draw()
}

// UpdateTraceView shows trace entries around the cursor, highlighting
// the current one and any breakpoint.
func (t *TUI) UpdateTraceView() {
	t.TraceView.Clear()

	dbg := t.Debugger
	if len(dbg.Outcome.Debug) == 0 {
		t.TraceView.SetText("[yellow]trace is empty[white]")
		return
	}

	lo := dbg.Index - TraceContextLines
	if lo < 0 {
		lo = 0
	}
	hi := dbg.Index + TraceContextLines
	if hi > len(dbg.Outcome.Debug)-1 {
		hi = len(dbg.Outcome.Debug) - 1
	}

	var lines []string
	for i := lo; i <= hi; i++ {
		e := dbg.Outcome.Debug[i]
		marker := "  "
		color := "white"
		if i == dbg.Index {
			marker = "->"
			color = "yellow"
		}
		if dbg.Breakpoints.GetBreakpoint(i) != nil {
			marker = "* "
		}

		line := fmt.Sprintf("[%s]%s %4d: %s[white]", color, marker, i+1, e.Original)
		lines = append(lines, line)
		if e.Rotated {
			lines = append(lines, fmt.Sprintf("        -> %s", e.Rewritten))
		}
	}

	t.TraceView.SetText(strings.Join(lines, "\n"))
}

// UpdateSummaryView shows the outcome's bounding boxes, pivot, and shift.
func (t *TUI) UpdateSummaryView() {
	t.SummaryView.Clear()

	o := t.Debugger.Outcome
	var lines []string
	lines = append(lines, fmt.Sprintf("source bbox: %+v", o.SourceBBox))
	lines = append(lines, fmt.Sprintf("result bbox: %+v", o.ResultBBox))
	lines = append(lines, fmt.Sprintf("pivot: %+v", o.Pivot))
	if o.UsedAngle {
		lines = append(lines, fmt.Sprintf("angle: %.4g deg", o.AngleDeg))
	} else {
		lines = append(lines, fmt.Sprintf("quarter turns: %d cw=%v", o.QuarterTurns, o.Clockwise))
	}
	lines = append(lines, fmt.Sprintf("normalized: %v shift: (%.6g, %.6g)", o.Normalized, o.ShiftDX, o.ShiftDY))

	t.SummaryView.SetText(strings.Join(lines, "\n"))
}

// Run starts the TUI event loop.
func (t *TUI) Run() error {
	t.RefreshAll()

	t.WriteOutput("[green]rotation trace viewer[white]\n")
	t.WriteOutput("F1 help, F5 run, F9 prev, F10 next\n")
	t.WriteOutput("Type 'help' for the command list\n\n")

	return t.App.SetRoot(t.Pages, true).SetFocus(t.CommandInput).Run()
}

// Stop stops the TUI event loop.
func (t *TUI) Stop() {
	t.App.Stop()
}
