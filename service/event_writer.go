package service

import (
	"sync"

	"github.com/RefikCodes/raptorex-gcode/rotate"
)

// EventSink receives a job's debug-log entries and status transitions
// as they happen, so a caller (the HTTP API's WebSocket broadcaster,
// the TUI) can stream progress instead of waiting for the job to
// finish.
type EventSink interface {
	EmitDebugEntry(jobID string, entry rotate.DebugEntry)
	EmitStatus(jobID string, status JobStatus)
}

// eventEmittingSink adapts an EventSink into a rotate.LogSink scoped
// to one job, so the rotation engine doesn't need to know about jobs
// or services at all.
type eventEmittingSink struct {
	jobID string
	sink  EventSink
	mu    sync.Mutex
	count int
}

func newEventEmittingSink(jobID string, sink EventSink) *eventEmittingSink {
	return &eventEmittingSink{jobID: jobID, sink: sink}
}

func (e *eventEmittingSink) Log(entry rotate.DebugEntry) {
	e.mu.Lock()
	e.count++
	e.mu.Unlock()
	if e.sink != nil {
		e.sink.EmitDebugEntry(e.jobID, entry)
	}
}

var _ rotate.LogSink = (*eventEmittingSink)(nil)
