package service

import (
	"testing"
	"time"

	"github.com/RefikCodes/raptorex-gcode/rotate"
)

func TestSubmit_CompletesJob(t *testing.T) {
	svc := NewRotationService(nil)
	id, err := svc.Submit(RotationRequest{
		Lines:        []string{"G90", "G0 X10 Y0"},
		QuarterTurns: 1,
		Pivot:        rotate.Origin(),
		Decimals:     3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	job := waitForCompletion(t, svc, id)
	if job.Status != StatusCompleted {
		t.Fatalf("expected completed status, got %s", job.Status)
	}
	if len(job.Outcome.Lines) != 2 {
		t.Errorf("expected 2 output lines, got %d", len(job.Outcome.Lines))
	}
}

func TestList_OrdersByCreatedAtDescending(t *testing.T) {
	svc := NewRotationService(nil)
	id1, _ := svc.Submit(RotationRequest{Lines: []string{"G0 X1"}, Pivot: rotate.Origin(), Decimals: 3})
	waitForCompletion(t, svc, id1)
	id2, _ := svc.Submit(RotationRequest{Lines: []string{"G0 X2"}, Pivot: rotate.Origin(), Decimals: 3})
	waitForCompletion(t, svc, id2)

	list := svc.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(list))
	}
	if list[0].ID != id2 {
		t.Errorf("expected most recent job first, got %s", list[0].ID)
	}
}

func TestGet_UnknownJobNotFound(t *testing.T) {
	svc := NewRotationService(nil)
	if _, ok := svc.Get("does-not-exist"); ok {
		t.Error("expected unknown job id to be not found")
	}
}

func waitForCompletion(t *testing.T, svc *RotationService, id string) *Job {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		job, ok := svc.Get(id)
		if ok && (job.Status == StatusCompleted || job.Status == StatusFailed) {
			return job
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("job %s did not complete in time", id)
	return nil
}
