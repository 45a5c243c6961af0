package tools

import (
	"fmt"

	"github.com/RefikCodes/raptorex-gcode/gcode"
)

// LintLevel represents the severity of a lint issue.
type LintLevel int

const (
	LintError   LintLevel = iota // unparseable numeric word
	LintWarning                  // unrecognized letter, arc without I/J
	LintInfo                     // style suggestions
)

func (l LintLevel) String() string {
	switch l {
	case LintError:
		return "error"
	case LintWarning:
		return "warning"
	case LintInfo:
		return "info"
	default:
		return "unknown"
	}
}

// LintIssue represents a single lint finding.
type LintIssue struct {
	Level   LintLevel
	Line    int // zero-based line index
	Message string
	Code    string
}

func (i *LintIssue) String() string {
	return fmt.Sprintf("line %d: %s: %s [%s]", i.Line+1, i.Level, i.Message, i.Code)
}

// LintOptions controls linter behavior.
type LintOptions struct {
	CheckUnknownLetters bool
	CheckUnparseable    bool
	CheckArcCenters     bool // arcs (G2/G3) should carry at least one of I/J
}

// DefaultLintOptions returns default linter options.
func DefaultLintOptions() *LintOptions {
	return &LintOptions{
		CheckUnknownLetters: true,
		CheckUnparseable:    true,
		CheckArcCenters:     true,
	}
}

// Linter analyzes a G-code program for issues that won't stop the
// rewriter (which never rejects input) but are worth surfacing.
type Linter struct {
	options *LintOptions
	issues  []*LintIssue
}

// NewLinter creates a new linter.
func NewLinter(options *LintOptions) *Linter {
	if options == nil {
		options = DefaultLintOptions()
	}
	return &Linter{options: options}
}

// Lint analyzes lines and returns all issues found, in line order.
func (l *Linter) Lint(lines []string) []*LintIssue {
	l.issues = nil
	tracker := gcode.NewModalTracker()

	for i, raw := range lines {
		codeRaw, _ := gcode.SplitRaw(raw)
		words := gcode.ScanWords(codeRaw)
		isArc := tracker.Advance(words)

		for _, w := range words {
			if l.options.CheckUnknownLetters && !gcode.RecognizedLetters[w.Letter] {
				l.add(LintWarning, i, "UNKNOWN_LETTER", fmt.Sprintf("unrecognized word letter %q", string(w.Letter)))
			}
			if l.options.CheckUnparseable {
				if _, ok := gcode.ParseValue(w.ValueText); !ok {
					l.add(LintError, i, "UNPARSEABLE_VALUE", fmt.Sprintf("word %s%s has an unparseable value", string(w.Letter), w.ValueText))
				}
			}
		}

		if l.options.CheckArcCenters && isArc {
			hasI := hasWordLetter(words, 'I')
			hasJ := hasWordLetter(words, 'J')
			if !hasI && !hasJ {
				l.add(LintWarning, i, "ARC_MISSING_CENTER", "arc move has neither I nor J")
			}
		}
	}

	return l.issues
}

func hasWordLetter(words []gcode.Word, letter byte) bool {
	for _, w := range words {
		if w.Letter == letter {
			return true
		}
	}
	return false
}

func (l *Linter) add(level LintLevel, line int, code, message string) {
	l.issues = append(l.issues, &LintIssue{Level: level, Line: line, Message: message, Code: code})
}

// LintLines is a convenience function using default options.
func LintLines(lines []string) []*LintIssue {
	return NewLinter(DefaultLintOptions()).Lint(lines)
}
