package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestLoad_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "a.gcode", "G90\nG0 X1 Y1\n")

	prog, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %+v", len(prog.Lines), prog.Lines)
	}
	if len(prog.Spans) != 1 || prog.Spans[0].Path != path {
		t.Errorf("unexpected spans: %+v", prog.Spans)
	}
}

func TestLoad_MultipleFilesConcatenateInOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeTemp(t, dir, "a.gcode", "G90\nG0 X1\n")
	b := writeTemp(t, dir, "b.gcode", "G0 X2\n")

	prog, err := Load(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(prog.Lines))
	}
	if prog.Lines[2] != "G0 X2" {
		t.Errorf("expected third line from b.gcode, got %q", prog.Lines[2])
	}

	span, ok := prog.LocateSpan(2)
	if !ok || span.Path != b {
		t.Errorf("expected line 2 to map to %q, got %+v ok=%v", b, span, ok)
	}
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.gcode"))
	if err == nil {
		t.Error("expected error loading a missing file")
	}
}

func TestLoadLines(t *testing.T) {
	prog := LoadLines("inline", []string{"G90", "G0 X1"})
	if len(prog.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(prog.Lines))
	}
	span, ok := prog.LocateSpan(1)
	if !ok || span.Path != "inline" {
		t.Errorf("expected inline span, got %+v ok=%v", span, ok)
	}
}
