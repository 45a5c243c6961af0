package api

import (
	"time"

	"github.com/RefikCodes/raptorex-gcode/rotate"
	"github.com/RefikCodes/raptorex-gcode/service"
)

// PivotRequest is the wire form of a rotate.PivotSpec. Mode is one of
// "origin", "bbox-min", "bbox-center", "custom"; X/Y are only read
// when Mode is "custom".
type PivotRequest struct {
	Mode string  `json:"mode,omitempty"`
	X    float64 `json:"x,omitempty"`
	Y    float64 `json:"y,omitempty"`
}

// ToPivotSpec converts a PivotRequest to a rotate.PivotSpec, defaulting
// to the origin when Mode is empty or unrecognized.
func (p PivotRequest) ToPivotSpec() rotate.PivotSpec {
	switch p.Mode {
	case "bbox-min":
		return rotate.BoundingBoxMin()
	case "bbox-center":
		return rotate.BoundingBoxCenter()
	case "custom":
		return rotate.Custom(p.X, p.Y)
	default:
		return rotate.Origin()
	}
}

// JobCreateRequest represents a request to submit a rotation job.
type JobCreateRequest struct {
	Lines        []string     `json:"lines"`
	UseAngle     bool         `json:"useAngle,omitempty"`
	AngleDeg     float64      `json:"angleDeg,omitempty"`
	QuarterTurns int          `json:"quarterTurns,omitempty"`
	Clockwise    bool         `json:"clockwise,omitempty"`
	Fit          bool         `json:"fit,omitempty"`
	Pivot        PivotRequest `json:"pivot,omitempty"`
	Decimals     int          `json:"decimals,omitempty"`
}

// ToRotationRequest converts a JobCreateRequest into the service-layer
// request type, applying the config-driven default decimal count when
// the caller didn't specify one.
func (req JobCreateRequest) ToRotationRequest(defaultDecimals int) service.RotationRequest {
	decimals := req.Decimals
	if decimals == 0 {
		decimals = defaultDecimals
	}
	return service.RotationRequest{
		Lines:        req.Lines,
		UseAngle:     req.UseAngle,
		AngleDeg:     req.AngleDeg,
		QuarterTurns: req.QuarterTurns,
		Clockwise:    req.Clockwise,
		Fit:          req.Fit,
		Pivot:        req.Pivot.ToPivotSpec(),
		Decimals:     decimals,
	}
}

// JobCreateResponse is the response from submitting a job.
type JobCreateResponse struct {
	JobID     string    `json:"jobId"`
	CreatedAt time.Time `json:"createdAt"`
}

// JobStatusResponse reports a job's current status and, once
// completed, its outcome.
type JobStatusResponse struct {
	JobID     string           `json:"jobId"`
	Status    string           `json:"status"`
	Error     string           `json:"error,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
	Outcome   *OutcomeResponse `json:"outcome,omitempty"`
}

// OutcomeResponse is the JSON form of a rotate.Outcome.
type OutcomeResponse struct {
	Lines        []string             `json:"lines"`
	SourceBBox   rotate.BoundingBox   `json:"sourceBBox"`
	ResultBBox   rotate.BoundingBox   `json:"resultBBox"`
	Pivot        rotate.ResolvedPivot `json:"pivot"`
	UsedAngle    bool                 `json:"usedAngle"`
	AngleDeg     float64              `json:"angleDeg,omitempty"`
	QuarterTurns int                  `json:"quarterTurns,omitempty"`
	Clockwise    bool                 `json:"clockwise"`
	Decimals     int                  `json:"decimals"`
	Normalized   bool                 `json:"normalized"`
	ShiftDX      float64              `json:"shiftDx"`
	ShiftDY      float64              `json:"shiftDy"`
}

// ToOutcomeResponse drops the debug trace (served separately over the
// WebSocket stream and doesn't belong in a status poll response).
func ToOutcomeResponse(o rotate.Outcome) *OutcomeResponse {
	return &OutcomeResponse{
		Lines:        o.Lines,
		SourceBBox:   o.SourceBBox,
		ResultBBox:   o.ResultBBox,
		Pivot:        o.Pivot,
		UsedAngle:    o.UsedAngle,
		AngleDeg:     o.AngleDeg,
		QuarterTurns: o.QuarterTurns,
		Clockwise:    o.Clockwise,
		Decimals:     o.Decimals,
		Normalized:   o.Normalized,
		ShiftDX:      o.ShiftDX,
		ShiftDY:      o.ShiftDY,
	}
}

// ToJobStatusResponse converts a service.Job into its wire form.
func ToJobStatusResponse(j *service.Job) JobStatusResponse {
	resp := JobStatusResponse{
		JobID:     j.ID,
		Status:    string(j.Status),
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
	if j.Err != nil {
		resp.Error = j.Err.Error()
	}
	if j.Status == service.StatusCompleted {
		resp.Outcome = ToOutcomeResponse(j.Outcome)
	}
	return resp
}

// JobListResponse lists known jobs, most recent first.
type JobListResponse struct {
	Jobs  []service.Snapshot `json:"jobs"`
	Count int                `json:"count"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse represents a simple success response.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ExampleInfo describes one example G-code file.
type ExampleInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// ExamplesResponse lists the available example programs.
type ExamplesResponse struct {
	Examples []ExampleInfo `json:"examples"`
	Count    int           `json:"count"`
}

// ExampleContentResponse returns one example program's source.
type ExampleContentResponse struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	Size    int64  `json:"size"`
}
