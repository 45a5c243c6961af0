package rotate

// PivotMode selects how a pivot point is resolved.
type PivotMode int

const (
	PivotOrigin PivotMode = iota
	PivotBoundingBoxMin
	PivotBoundingBoxCenter
	PivotCustom
)

func (m PivotMode) String() string {
	switch m {
	case PivotOrigin:
		return "origin"
	case PivotBoundingBoxMin:
		return "bbox-min"
	case PivotBoundingBoxCenter:
		return "bbox-center"
	case PivotCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// PivotSpec is the caller-facing tagged pivot value. X/Y are only
// meaningful when Mode is PivotCustom.
type PivotSpec struct {
	Mode PivotMode
	X, Y float64
}

// Origin is the zero pivot.
func Origin() PivotSpec { return PivotSpec{Mode: PivotOrigin} }

// BoundingBoxMin pivots rotation about the source program's bbox minimum.
func BoundingBoxMin() PivotSpec { return PivotSpec{Mode: PivotBoundingBoxMin} }

// BoundingBoxCenter pivots rotation about the source program's bbox center.
func BoundingBoxCenter() PivotSpec { return PivotSpec{Mode: PivotBoundingBoxCenter} }

// Custom pivots rotation about a caller-supplied point.
func Custom(x, y float64) PivotSpec { return PivotSpec{Mode: PivotCustom, X: x, Y: y} }

// ResolvedPivot is a concrete point plus the mode it was resolved from,
// stored on Outcome for downstream reproducibility.
type ResolvedPivot struct {
	Mode PivotMode
	X, Y float64
}

// resolvePivot must always be evaluated against the SOURCE program's
// bounding box, never a rotated one (spec §9 "Pivot resolution timing").
func resolvePivot(spec PivotSpec, sourceBBox BoundingBox) ResolvedPivot {
	switch spec.Mode {
	case PivotBoundingBoxMin:
		return ResolvedPivot{Mode: spec.Mode, X: sourceBBox.MinX, Y: sourceBBox.MinY}
	case PivotBoundingBoxCenter:
		return ResolvedPivot{
			Mode: spec.Mode,
			X:    (sourceBBox.MinX + sourceBBox.MaxX) / 2,
			Y:    (sourceBBox.MinY + sourceBBox.MaxY) / 2,
		}
	case PivotCustom:
		return ResolvedPivot{Mode: spec.Mode, X: spec.X, Y: spec.Y}
	default:
		return ResolvedPivot{Mode: PivotOrigin, X: 0, Y: 0}
	}
}
