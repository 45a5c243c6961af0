package gcode

import "regexp"

// RecognizedLetters is the set of word letters a controller-facing
// rewriter expects to see. Letters outside this set are still passed
// through unchanged (spec §7); the set only drives diagnostics.
var RecognizedLetters = map[byte]bool{
	'G': true, 'M': true, 'T': true,
	'X': true, 'Y': true, 'Z': true,
	'I': true, 'J': true, 'K': true,
	'F': true, 'R': true, 'S': true,
	'D': true, 'A': true, 'P': true,
}

// wordPattern matches a single letter followed by a signed decimal: an
// optional sign, then either digits with an optional fractional part or
// a bare fractional like ".5". No exponent form is accepted.
var wordPattern = regexp.MustCompile(`[A-Za-z][-+]?(?:\d+\.?\d*|\.\d+)`)

// G-code values recognized by the modal state tracker. Leading zeros
// ("G02", "G090") parse to the same float as the bare form, so the
// tracker compares parsed values rather than raw text.
const (
	gValueLinearAbsolute = 90.0
	gValueLinearIncr     = 91.0
	gValueArcAbsolute    = 90.1
	gValueArcIncr        = 91.1
	gValueArcCW          = 2.0
	gValueArcCCW         = 3.0
	modalEpsilon         = 1e-9
)
