// Package gui is a small Fyne desktop preview of a rotation outcome:
// the source and rotated toolpaths, their bounding boxes, and the
// pivot point, laid out on a single scrollable canvas.
package gui

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/RefikCodes/raptorex-gcode/rotate"
)

var debugLog *log.Logger

func init() {
	if os.Getenv("RAPTOREX_DEBUG") != "" {
		logPath := filepath.Join(os.TempDir(), "raptorex-gcode-gui-debug.log")
		f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600) // #nosec G304 -- fixed filename in temp dir
		if err != nil {
			debugLog = log.New(os.Stderr, "GUI: ", log.Ltime|log.Lmicroseconds|log.Lshortfile)
		} else {
			debugLog = log.New(f, "GUI: ", log.Ltime|log.Lmicroseconds|log.Lshortfile)
		}
	} else {
		debugLog = log.New(io.Discard, "", 0)
	}
}

var (
	sourceColor = color.NRGBA{R: 160, G: 160, B: 160, A: 255}
	resultColor = color.NRGBA{R: 60, G: 140, B: 240, A: 255}
	pivotColor  = color.NRGBA{R: 220, G: 60, B: 60, A: 255}
	bboxColor   = color.NRGBA{R: 120, G: 200, B: 120, A: 160}
)

// App is the rotation preview application.
type App struct {
	Outcome rotate.Outcome

	fyneApp fyne.App
	window  fyne.Window

	statusLabel *widget.Label
}

// NewApp creates a preview application over a computed rotation outcome.
func NewApp(outcome rotate.Outcome) *App {
	return &App{
		Outcome: outcome,
		fyneApp: app.New(),
	}
}

// Run builds the window and blocks until it is closed.
func (a *App) Run() error {
	a.window = a.fyneApp.NewWindow("G-code Rotation Preview")
	a.window.SetContent(a.buildLayout())
	a.window.Resize(fyne.NewSize(900, 700))
	debugLog.Println("showing preview window")
	a.window.ShowAndRun()
	return nil
}

func (a *App) buildLayout() fyne.CanvasObject {
	preview := a.buildPreview()

	a.statusLabel = widget.NewLabel(a.summaryText())

	return container.NewBorder(nil, a.statusLabel, nil, nil,
		container.NewScroll(preview))
}

func (a *App) summaryText() string {
	o := a.Outcome
	mode := fmt.Sprintf("%d quarter turn(s), clockwise=%v", o.QuarterTurns, o.Clockwise)
	if o.UsedAngle {
		mode = fmt.Sprintf("%.4g degrees", o.AngleDeg)
	}
	return fmt.Sprintf(
		"pivot: %s (%.4g, %.4g)   rotation: %s   normalized: %v   shift: (%.4g, %.4g)",
		o.Pivot.Mode, o.Pivot.X, o.Pivot.Y, mode, o.Normalized, o.ShiftDX, o.ShiftDY,
	)
}

// buildPreview draws the source path (gray), the rotated path (blue),
// both bounding boxes, and the pivot point, scaled to fit a fixed
// canvas size with Y flipped to match screen coordinates.
func (a *App) buildPreview() fyne.CanvasObject {
	const canvasSize float32 = 640
	const margin float32 = 24

	sourcePts, resultPts := pathsFromDebug(a.Outcome.Debug)
	scale, originX, originY := fitTransform(a.Outcome.SourceBBox, a.Outcome.ResultBBox, canvasSize-2*margin)

	project := func(x, y float64) fyne.Position {
		return fyne.NewPos(
			margin+float32(x-originX)*scale,
			canvasSize-margin-float32(y-originY)*scale,
		)
	}

	objects := make([]fyne.CanvasObject, 0, len(sourcePts)+len(resultPts)+4)
	objects = append(objects, polyline(sourcePts, sourceColor, project)...)
	objects = append(objects, polyline(resultPts, resultColor, project)...)
	objects = append(objects, bboxRect(a.Outcome.SourceBBox, sourceColor, project))
	objects = append(objects, bboxRect(a.Outcome.ResultBBox, bboxColor, project))
	objects = append(objects, pivotMarker(a.Outcome.Pivot.X, a.Outcome.Pivot.Y, project))

	return container.NewWithoutLayout(objects...)
}

// point is a 2D coordinate in G-code space.
type point struct{ x, y float64 }

// pathsFromDebug extracts the before/after positions of every rotated
// entry in order, giving a simple polyline approximation of the source
// and result toolpaths for preview purposes.
func pathsFromDebug(entries []rotate.DebugEntry) (source, result []point) {
	for _, e := range entries {
		if !e.Rotated {
			continue
		}
		source = append(source, point{e.BeforeX, e.BeforeY})
		result = append(result, point{e.AfterX, e.AfterY})
	}
	return source, result
}

// fitTransform computes a uniform scale and origin so both bounding
// boxes fit within size pixels.
func fitTransform(a, b rotate.BoundingBox, size float32) (scale float32, originX, originY float64) {
	minX := minF(a.MinX, b.MinX)
	minY := minF(a.MinY, b.MinY)
	maxX := maxF(a.MaxX, b.MaxX)
	maxY := maxF(a.MaxY, b.MaxY)

	width := maxX - minX
	height := maxY - minY
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	scaleX := size / float32(width)
	scaleY := size / float32(height)
	scale = scaleX
	if scaleY < scale {
		scale = scaleY
	}

	return scale, minX, minY
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func polyline(pts []point, c color.Color, project func(x, y float64) fyne.Position) []fyne.CanvasObject {
	lines := make([]fyne.CanvasObject, 0, len(pts))
	for i := 1; i < len(pts); i++ {
		from := project(pts[i-1].x, pts[i-1].y)
		to := project(pts[i].x, pts[i].y)
		line := canvas.NewLine(c)
		line.StrokeWidth = 2
		line.Position1 = from
		line.Position2 = to
		lines = append(lines, line)
	}
	return lines
}

func bboxRect(b rotate.BoundingBox, c color.Color, project func(x, y float64) fyne.Position) fyne.CanvasObject {
	topLeft := project(b.MinX, b.MaxY)
	bottomRight := project(b.MaxX, b.MinY)

	rect := canvas.NewRectangle(color.Transparent)
	rect.StrokeColor = c
	rect.StrokeWidth = 1
	rect.Move(topLeft)
	rect.Resize(fyne.NewSize(bottomRight.X-topLeft.X, bottomRight.Y-topLeft.Y))
	return rect
}

func pivotMarker(x, y float64, project func(x, y float64) fyne.Position) fyne.CanvasObject {
	const radius float32 = 5
	pos := project(x, y)

	marker := canvas.NewCircle(pivotColor)
	marker.StrokeColor = pivotColor
	marker.StrokeWidth = 2
	marker.Move(fyne.NewPos(pos.X-radius, pos.Y-radius))
	marker.Resize(fyne.NewSize(radius*2, radius*2))
	return marker
}
