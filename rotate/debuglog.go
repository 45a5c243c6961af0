package rotate

// DebugEntry records one line's geometric transformation for trace
// tooling (the TUI debugger and the WebSocket debug-log stream both
// consume these). Only lines that touched a coordinate produce a
// meaningful before/after pair; other lines are still logged so a
// viewer can step through the whole program in order.
type DebugEntry struct {
	LineIndex  int
	Original   string
	Rewritten  string
	IsArc      bool
	Rotated    bool
	BeforeX    float64
	BeforeY    float64
	AfterX     float64
	AfterY     float64
}

// LogSink receives DebugEntry records as a rotation pass runs. Callers
// that don't need a trace pass nil; the engine treats a nil sink as a
// no-op rather than branching on it at every call site.
type LogSink interface {
	Log(entry DebugEntry)
}

// SliceSink is the simplest LogSink: it appends every entry in order.
// Used directly by tests and by callers who just want the full trace
// back without standing up anything fancier.
type SliceSink struct {
	Entries []DebugEntry
}

func (s *SliceSink) Log(entry DebugEntry) {
	s.Entries = append(s.Entries, entry)
}

func logTo(sink LogSink, entry DebugEntry) {
	if sink == nil {
		return
	}
	sink.Log(entry)
}
