package debugger

import (
	"fmt"
	"strconv"
)

func parseCountArg(args []string, fallback int) (int, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid count %q", args[0])
	}
	return n, nil
}

// cmdNext advances the cursor by one trace entry (or N, if given).
func (d *Debugger) cmdNext(args []string) error {
	n, err := parseCountArg(args, 1)
	if err != nil {
		return err
	}

	d.Index += n
	if d.Index > len(d.Outcome.Debug) {
		d.Index = len(d.Outcome.Debug)
	}
	return d.cmdList(nil)
}

// cmdPrev moves the cursor back by one trace entry (or N, if given).
func (d *Debugger) cmdPrev(args []string) error {
	n, err := parseCountArg(args, 1)
	if err != nil {
		return err
	}

	d.Index -= n
	if d.Index < 0 {
		d.Index = 0
	}
	return d.cmdList(nil)
}

// cmdGoto jumps the cursor to a specific 1-based line number.
func (d *Debugger) cmdGoto(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: goto <line>")
	}
	idx, err := parseIndexArg(args, d.Index)
	if err != nil {
		return err
	}
	if idx < 0 || idx > len(d.Outcome.Debug) {
		return fmt.Errorf("line %d is out of range (1-%d)", idx+1, len(d.Outcome.Debug))
	}
	d.Index = idx
	return d.cmdList(nil)
}

// cmdRun advances the cursor until a breakpoint trips or the trace ends.
func (d *Debugger) cmdRun(args []string) error {
	for !d.AtEnd() {
		if hit, reason := d.ShouldBreak(); hit {
			d.Println(reason)
			return d.cmdList(nil)
		}
		d.Index++
	}
	d.Println("end of trace")
	return nil
}

// cmdReset returns the cursor to the first trace entry.
func (d *Debugger) cmdReset(args []string) error {
	d.Index = 0
	return d.cmdList(nil)
}

// cmdList prints the trace entries around the current cursor.
func (d *Debugger) cmdList(args []string) error {
	if len(d.Outcome.Debug) == 0 {
		d.Println("trace is empty")
		return nil
	}

	lo := d.Index - TraceContextLines
	if lo < 0 {
		lo = 0
	}
	hi := d.Index + TraceContextLines
	if hi > len(d.Outcome.Debug)-1 {
		hi = len(d.Outcome.Debug) - 1
	}

	for i := lo; i <= hi; i++ {
		e := d.Outcome.Debug[i]
		marker := "  "
		if i == d.Index {
			marker = "->"
		}
		d.Printf("%s %4d: %s\n", marker, i+1, e.Original)
		if e.Rotated {
			d.Printf("        -> %s\n", e.Rewritten)
		}
	}
	return nil
}

// cmdInfo prints details about the current entry, or a named summary
// field (bbox, pivot, shift, breakpoints) of the outcome.
func (d *Debugger) cmdInfo(args []string) error {
	if len(args) == 0 {
		entry, ok := d.Entry()
		if !ok {
			d.Println("end of trace")
			return nil
		}
		d.Printf("line %d\n", d.Index+1)
		d.Printf("  original:  %s\n", entry.Original)
		d.Printf("  rewritten: %s\n", entry.Rewritten)
		d.Printf("  rotated:   %v  arc: %v\n", entry.Rotated, entry.IsArc)
		if entry.Rotated {
			d.Printf("  before: (%.6g, %.6g)\n", entry.BeforeX, entry.BeforeY)
			d.Printf("  after:  (%.6g, %.6g)\n", entry.AfterX, entry.AfterY)
		}
		return nil
	}

	switch args[0] {
	case "bbox":
		d.Printf("source bbox: %+v\n", d.Outcome.SourceBBox)
		d.Printf("result bbox: %+v\n", d.Outcome.ResultBBox)
	case "pivot":
		d.Printf("pivot: %+v\n", d.Outcome.Pivot)
	case "shift":
		d.Printf("normalized: %v  shift: (%.6g, %.6g)\n", d.Outcome.Normalized, d.Outcome.ShiftDX, d.Outcome.ShiftDY)
	case "breakpoints":
		return d.showBreakpoints()
	default:
		return fmt.Errorf("unknown info field %q (bbox, pivot, shift, breakpoints)", args[0])
	}
	return nil
}

// cmdBreak sets a breakpoint at a trace line.
func (d *Debugger) cmdBreak(args []string) error {
	idx, err := parseIndexArg(args, d.Index)
	if err != nil {
		return err
	}
	bp := d.Breakpoints.AddBreakpoint(idx, false, false)
	d.Printf("breakpoint %d set at line %d\n", bp.ID, idx+1)
	return nil
}

// cmdTBreak sets a one-shot breakpoint at a trace line.
func (d *Debugger) cmdTBreak(args []string) error {
	idx, err := parseIndexArg(args, d.Index)
	if err != nil {
		return err
	}
	bp := d.Breakpoints.AddBreakpoint(idx, true, false)
	d.Printf("temporary breakpoint %d set at line %d\n", bp.ID, idx+1)
	return nil
}

// cmdDelete removes a breakpoint by ID.
func (d *Debugger) cmdDelete(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: delete <breakpoint-id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid breakpoint id %q", args[0])
	}
	if err := d.Breakpoints.DeleteBreakpoint(id); err != nil {
		return err
	}
	d.Printf("breakpoint %d deleted\n", id)
	return nil
}

// cmdEnable enables a breakpoint by ID.
func (d *Debugger) cmdEnable(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: enable <breakpoint-id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid breakpoint id %q", args[0])
	}
	return d.Breakpoints.EnableBreakpoint(id)
}

// cmdDisable disables a breakpoint by ID.
func (d *Debugger) cmdDisable(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: disable <breakpoint-id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid breakpoint id %q", args[0])
	}
	return d.Breakpoints.DisableBreakpoint(id)
}

func (d *Debugger) showBreakpoints() error {
	bps := d.Breakpoints.GetAllBreakpoints()
	if len(bps) == 0 {
		d.Println("no breakpoints set")
		return nil
	}
	for _, bp := range bps {
		status := "enabled"
		if !bp.Enabled {
			status = "disabled"
		}
		d.Printf("  %d: line %d (%s, hits: %d)\n", bp.ID, bp.Index+1, status, bp.HitCount)
	}
	return nil
}

// cmdHelp prints the command reference.
func (d *Debugger) cmdHelp(args []string) error {
	d.Println("commands:")
	d.Println("  next, n [count]      step forward one or more trace entries")
	d.Println("  prev, p [count]      step back one or more trace entries")
	d.Println("  goto, g <line>       jump to a 1-based line number")
	d.Println("  run, r, continue, c  advance until a breakpoint trips or the trace ends")
	d.Println("  reset                return to the first trace entry")
	d.Println("  list, l              show lines around the cursor")
	d.Println("  info, i [field]      show the current entry, or bbox/pivot/shift/breakpoints")
	d.Println("  break, b [line]      set a breakpoint at the cursor or a given line")
	d.Println("  tbreak [line]        set a one-shot breakpoint")
	d.Println("  delete, d <id>       remove a breakpoint")
	d.Println("  enable/disable <id>  toggle a breakpoint")
	d.Println("  help, h, ?           show this help")
	d.Println("  quit, q, exit        leave the debugger")
	return nil
}
