// Package debugger provides an interactive stepper over a completed
// rotation trace: the per-line debug log a rotate.Outcome carries,
// viewable one entry at a time from a CLI REPL or a tview TUI.
package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RefikCodes/raptorex-gcode/rotate"
)

// Debugger steps through a rotation outcome's debug trace. Unlike a
// live program debugger it has nothing to execute: the trace is fixed
// the moment the outcome is computed, so stepping only moves a cursor
// over it.
type Debugger struct {
	Outcome rotate.Outcome

	Index       int // current position in Outcome.Debug
	Breakpoints *BreakpointManager
	History     *CommandHistory

	Running     bool
	LastCommand string
	Output      strings.Builder
}

// NewDebugger creates a debugger positioned at the first trace entry.
func NewDebugger(outcome rotate.Outcome) *Debugger {
	return &Debugger{
		Outcome:     outcome,
		Index:       0,
		Breakpoints: NewBreakpointManager(),
		History:     NewCommandHistory(defaultHistorySize),
		Running:     true,
	}
}

// Entry returns the trace entry at the current index, if any.
func (d *Debugger) Entry() (rotate.DebugEntry, bool) {
	if d.Index < 0 || d.Index >= len(d.Outcome.Debug) {
		return rotate.DebugEntry{}, false
	}
	return d.Outcome.Debug[d.Index], true
}

// AtEnd reports whether the cursor has passed the last trace entry.
func (d *Debugger) AtEnd() bool {
	return d.Index >= len(d.Outcome.Debug)
}

// ShouldBreak reports whether the entry at the current index trips an
// enabled breakpoint, and if so, why.
func (d *Debugger) ShouldBreak() (bool, string) {
	entry, ok := d.Entry()
	if !ok {
		return false, ""
	}
	if bp := d.Breakpoints.ProcessHit(d.Index, entry.IsArc); bp != nil {
		return true, fmt.Sprintf("breakpoint %d at line %d", bp.ID, d.Index+1)
	}
	return false, ""
}

// ExecuteCommand parses and runs a single debugger command line,
// writing any result text to Output.
func (d *Debugger) ExecuteCommand(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		line = d.LastCommand
	}
	if line == "" {
		return nil
	}

	d.History.Add(line)
	d.LastCommand = line

	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "next", "n":
		return d.cmdNext(args)
	case "prev", "p":
		return d.cmdPrev(args)
	case "goto", "g":
		return d.cmdGoto(args)
	case "run", "r", "continue", "c":
		return d.cmdRun(args)
	case "reset":
		return d.cmdReset(args)
	case "list", "l":
		return d.cmdList(args)
	case "print", "info", "i":
		return d.cmdInfo(args)
	case "break", "b":
		return d.cmdBreak(args)
	case "tbreak":
		return d.cmdTBreak(args)
	case "delete", "d":
		return d.cmdDelete(args)
	case "enable":
		return d.cmdEnable(args)
	case "disable":
		return d.cmdDisable(args)
	case "help", "h", "?":
		return d.cmdHelp(args)
	case "quit", "q", "exit":
		d.Running = false
		return nil
	default:
		return fmt.Errorf("unknown command: %s (type 'help' for a list)", cmd)
	}
}

// GetOutput returns and clears the accumulated output buffer.
func (d *Debugger) GetOutput() string {
	s := d.Output.String()
	d.Output.Reset()
	return s
}

func (d *Debugger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(&d.Output, format, args...)
}

func (d *Debugger) Println(s string) {
	d.Output.WriteString(s)
	d.Output.WriteByte('\n')
}

func parseIndexArg(args []string, fallback int) (int, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid line number %q", args[0])
	}
	return n - 1, nil
}
