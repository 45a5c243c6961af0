package service

import (
	"time"

	"github.com/RefikCodes/raptorex-gcode/rotate"
)

// JobStatus is the lifecycle state of a rotation job.
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusRunning   JobStatus = "running"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
)

// RotationRequest is the caller-facing description of a rotation to
// run, independent of whether it came from the CLI, the HTTP API, or
// the TUI.
type RotationRequest struct {
	Lines        []string
	UseAngle     bool
	AngleDeg     float64
	QuarterTurns int
	Clockwise    bool
	Fit          bool
	Pivot        rotate.PivotSpec
	Decimals     int
}

// Job tracks one rotation request's lifecycle and result, so long
// running API/TUI clients can poll or subscribe for its outcome
// instead of blocking on it synchronously.
type Job struct {
	ID        string
	Status    JobStatus
	Request   RotationRequest
	Outcome   rotate.Outcome
	Err       error
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot is a read-only copy of a Job safe to hand to callers
// outside the service's lock.
type Snapshot struct {
	ID        string    `json:"id"`
	Status    JobStatus `json:"status"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (j *Job) snapshot() Snapshot {
	s := Snapshot{ID: j.ID, Status: j.Status, CreatedAt: j.CreatedAt, UpdatedAt: j.UpdatedAt}
	if j.Err != nil {
		s.Error = j.Err.Error()
	}
	return s
}
