package gui

import "github.com/RefikCodes/raptorex-gcode/rotate"

// RunPreview opens the desktop preview window for a computed rotation
// outcome. It blocks until the window is closed.
func RunPreview(outcome rotate.Outcome) error {
	return NewApp(outcome).Run()
}
