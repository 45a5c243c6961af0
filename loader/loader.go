package loader

import (
	"bufio"
	"fmt"
	"os"
)

// FileSpan records which source file a contiguous run of loaded lines
// came from, so diagnostics and the TUI trace viewer can report a
// path and a within-file line number instead of a flat global index.
type FileSpan struct {
	Path      string
	StartLine int // index into Program.Lines, inclusive
	EndLine   int // exclusive
}

// Program is a G-code program assembled from one or more files, in
// the order the caller supplied them.
type Program struct {
	Lines []string
	Spans []FileSpan
}

// LocateSpan returns the FileSpan containing the given line index, or
// the zero value and false if the index is out of range.
func (p *Program) LocateSpan(lineIndex int) (FileSpan, bool) {
	for _, s := range p.Spans {
		if lineIndex >= s.StartLine && lineIndex < s.EndLine {
			return s, true
		}
	}
	return FileSpan{}, false
}

// Load reads one or more G-code files and concatenates them in order
// into a single Program, recording each file's line span. It never
// fails on the content of a file — only on I/O errors opening or
// reading it — consistent with the rewriter's never-reject posture
// toward program text.
func Load(paths ...string) (*Program, error) {
	prog := &Program{}

	for _, path := range paths {
		lines, err := readLines(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %q: %w", path, err)
		}

		start := len(prog.Lines)
		prog.Lines = append(prog.Lines, lines...)
		prog.Spans = append(prog.Spans, FileSpan{
			Path:      path,
			StartLine: start,
			EndLine:   start + len(lines),
		})
	}

	return prog, nil
}

// LoadLines wraps an in-memory slice of lines as a single-span
// Program, for callers that already have text rather than a file
// path.
func LoadLines(label string, lines []string) *Program {
	return &Program{
		Lines: append([]string(nil), lines...),
		Spans: []FileSpan{{Path: label, StartLine: 0, EndLine: len(lines)}},
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- caller-supplied program path
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
