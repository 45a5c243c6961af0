package tools

import (
	"strconv"
	"strings"

	"github.com/RefikCodes/raptorex-gcode/gcode"
)

// FormatStyle selects a formatting preset.
type FormatStyle int

const (
	FormatDefault  FormatStyle = iota // single space between words, aligned comments
	FormatCompact                     // minimal whitespace, no comment alignment
	FormatExpanded                    // wider comment column
)

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	Style          FormatStyle
	CommentColumn  int  // column comments are padded to when AlignComments is set
	AlignComments  bool
	UppercaseWords bool // normalize letter case (e.g. "g0 x1" -> "G0 X1")
}

// DefaultFormatOptions returns the standard formatting preset.
func DefaultFormatOptions() *FormatOptions {
	return &FormatOptions{
		Style:          FormatDefault,
		CommentColumn:  32,
		AlignComments:  true,
		UppercaseWords: true,
	}
}

// CompactFormatOptions returns a minimal-whitespace preset.
func CompactFormatOptions() *FormatOptions {
	opts := DefaultFormatOptions()
	opts.Style = FormatCompact
	opts.AlignComments = false
	return opts
}

// ExpandedFormatOptions returns a wide-comment-column preset.
func ExpandedFormatOptions() *FormatOptions {
	opts := DefaultFormatOptions()
	opts.Style = FormatExpanded
	opts.CommentColumn = 48
	return opts
}

// Formatter rewrites G-code line spacing and comment alignment without
// touching any coordinate value — it is a pure text formatter, not a
// rotation or rewrite pass.
type Formatter struct {
	options *FormatOptions
}

// NewFormatter creates a formatter with the given options (nil uses
// DefaultFormatOptions).
func NewFormatter(options *FormatOptions) *Formatter {
	if options == nil {
		options = DefaultFormatOptions()
	}
	return &Formatter{options: options}
}

// Format rewrites every line's spacing and comment placement. It never
// fails: a line it cannot make sense of is passed through unchanged,
// matching the rewriter's never-reject posture.
func (f *Formatter) Format(lines []string) []string {
	out := make([]string, len(lines))
	for i, raw := range lines {
		out[i] = f.formatLine(raw)
	}
	return out
}

func (f *Formatter) formatLine(raw string) string {
	codeRaw, tail := gcode.SplitRaw(raw)
	words := gcode.ScanWords(codeRaw)
	if len(words) == 0 {
		return raw
	}

	tokens := make([]string, len(words))
	for i, w := range words {
		letter := string(w.Letter)
		if !f.options.UppercaseWords {
			letter = strings.ToLower(letter)
		}
		tokens[i] = letter + w.ValueText
	}

	sep := " "
	if f.options.Style == FormatCompact {
		sep = " "
	}
	code := strings.Join(tokens, sep)

	comment := formatTail(tail, f.options.UppercaseWords)
	if comment == "" {
		return code
	}

	line := &strings.Builder{}
	line.WriteString(code)
	if f.options.AlignComments {
		padToColumn(line, f.options.CommentColumn)
	} else {
		line.WriteString(" ")
	}
	line.WriteString(comment)
	return line.String()
}

// formatTail normalizes a comment tail to "; text" form regardless of
// whether the source used parens or a semicolon, stripping the
// delimiter and surrounding space but keeping the comment's own text
// exactly.
func formatTail(tail string, _ bool) string {
	tail = strings.TrimSpace(tail)
	if tail == "" {
		return ""
	}
	if strings.HasPrefix(tail, "(") {
		inner := strings.TrimSuffix(strings.TrimPrefix(tail, "("), ")")
		return "; " + strings.TrimSpace(inner)
	}
	inner := strings.TrimPrefix(tail, ";")
	return "; " + strings.TrimSpace(inner)
}

func padToColumn(sb *strings.Builder, column int) {
	current := sb.Len()
	if current >= column {
		sb.WriteString(" ")
		return
	}
	sb.WriteString(strings.Repeat(" ", column-current))
}

// FormatLines is a convenience function using default options.
func FormatLines(lines []string) []string {
	return NewFormatter(DefaultFormatOptions()).Format(lines)
}

// FormatLinesWithStyle formats with the given preset style.
func FormatLinesWithStyle(lines []string, style FormatStyle) []string {
	var options *FormatOptions
	switch style {
	case FormatCompact:
		options = CompactFormatOptions()
	case FormatExpanded:
		options = ExpandedFormatOptions()
	default:
		options = DefaultFormatOptions()
	}
	return NewFormatter(options).Format(lines)
}

// decimalsFromFlag parses a CLI/config decimals value, falling back to
// a sane default rather than rejecting the program.
func decimalsFromFlag(text string, fallback int) int {
	v, err := strconv.Atoi(text)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
