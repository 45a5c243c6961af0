package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/RefikCodes/raptorex-gcode/rotate"
)

var serviceLog *log.Logger

func init() {
	if os.Getenv("RAPTOREX_DEBUG") != "" {
		logPath := filepath.Join(os.TempDir(), "raptorex-gcode-service-debug.log")
		f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600) // #nosec G304 -- fixed filename in temp dir
		if err != nil {
			serviceLog = log.New(os.Stderr, "SERVICE: ", log.Ltime|log.Lmicroseconds|log.Lshortfile)
		} else {
			serviceLog = log.New(f, "SERVICE: ", log.Ltime|log.Lmicroseconds|log.Lshortfile)
		}
	} else {
		serviceLog = log.New(io.Discard, "", 0)
	}
}

// RotationService is a thread-safe, in-memory store of rotation jobs
// backing the HTTP API. Each job runs its
// rotation pass on its own goroutine so a slow or large program never
// blocks a caller polling for another job's status.
type RotationService struct {
	mu   sync.RWMutex
	jobs map[string]*Job
	sink EventSink
}

// NewRotationService creates an empty service. sink may be nil if no
// caller needs a live debug-log stream.
func NewRotationService(sink EventSink) *RotationService {
	return &RotationService{
		jobs: make(map[string]*Job),
		sink: sink,
	}
}

// Submit queues a rotation request and starts it running immediately
// on its own goroutine, returning the new job's ID.
func (s *RotationService) Submit(req RotationRequest) (string, error) {
	id, err := newJobID()
	if err != nil {
		return "", fmt.Errorf("failed to allocate job id: %w", err)
	}

	now := time.Now()
	job := &Job{
		ID:        id,
		Status:    StatusQueued,
		Request:   req,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.jobs[id] = job
	s.mu.Unlock()

	go s.run(job)

	return id, nil
}

func (s *RotationService) run(job *Job) {
	s.setStatus(job.ID, StatusRunning, nil)
	serviceLog.Printf("job %s: running (%d lines)", job.ID, len(job.Request.Lines))

	sink := newEventEmittingSink(job.ID, s.sink)
	outcome := runRotation(job.Request, sink)

	s.mu.Lock()
	j, ok := s.jobs[job.ID]
	if ok {
		j.Outcome = outcome
		j.Status = StatusCompleted
		j.UpdatedAt = time.Now()
	}
	s.mu.Unlock()

	if s.sink != nil {
		s.sink.EmitStatus(job.ID, StatusCompleted)
	}

	serviceLog.Printf("job %s: completed, %d debug entries", job.ID, sink.count)
}

// runRotation dispatches a request to the right rotate package entry
// point: an arbitrary angle when UseAngle is set, otherwise a single
// quarter turn in the Clockwise direction. QuarterTurns is not read.
func runRotation(req RotationRequest, sink rotate.LogSink) rotate.Outcome {
	if req.UseAngle {
		return rotate.RotateArbitraryWithOutcome(req.Lines, req.AngleDeg, req.Fit, req.Pivot, req.Decimals, sink)
	}
	return rotate.RotateWithOutcome(req.Lines, req.Clockwise, req.Fit, req.Pivot, req.Decimals, sink)
}

func (s *RotationService) setStatus(id string, status JobStatus, err error) {
	s.mu.Lock()
	if j, ok := s.jobs[id]; ok {
		j.Status = status
		j.Err = err
		j.UpdatedAt = time.Now()
	}
	s.mu.Unlock()

	if s.sink != nil {
		s.sink.EmitStatus(id, status)
	}
}

// Get returns the job with the given ID.
func (s *RotationService) Get(id string) (*Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	j, ok := s.jobs[id]
	return j, ok
}

// List returns a snapshot of every known job, most recently created
// first.
func (s *RotationService) List() []Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Snapshot, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, j.snapshot())
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.After(out[k].CreatedAt) })
	return out
}

func newJobID() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
