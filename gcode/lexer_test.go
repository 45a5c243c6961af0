package gcode_test

import (
	"testing"

	"github.com/RefikCodes/raptorex-gcode/gcode"
)

func TestSplitLine_CodeOnly(t *testing.T) {
	code, comment, only := gcode.SplitLine("G0 X10 Y20")
	if code != "G0 X10 Y20" {
		t.Errorf("expected code part unchanged, got %q", code)
	}
	if comment != "" {
		t.Errorf("expected no comment, got %q", comment)
	}
	if only {
		t.Error("expected commentOnly=false")
	}
}

func TestSplitLine_Empty(t *testing.T) {
	code, comment, only := gcode.SplitLine("")
	if code != "" || comment != "" || !only {
		t.Errorf("expected all-empty commentOnly result, got %q %q %v", code, comment, only)
	}
}

func TestSplitLine_ParenComment(t *testing.T) {
	code, comment, only := gcode.SplitLine("(header) G0 X1 Y2")
	if code != " G0 X1 Y2" {
		t.Errorf("unexpected code part %q", code)
	}
	if comment != "header" {
		t.Errorf("unexpected comment %q", comment)
	}
	if only {
		t.Error("expected commentOnly=false")
	}
}

func TestSplitLine_SemicolonTail(t *testing.T) {
	code, comment, _ := gcode.SplitLine("G0 X1 ; tail comment")
	if code != "G0 X1 " {
		t.Errorf("unexpected code part %q", code)
	}
	if comment != "tail comment" {
		t.Errorf("unexpected comment %q", comment)
	}
}

func TestSplitLine_BothCommentForms(t *testing.T) {
	code, comment, _ := gcode.SplitLine("(header) G0 X1 Y2 ; tail")
	if code != " G0 X1 Y2 " {
		t.Errorf("unexpected code part %q", code)
	}
	if comment != "header tail" {
		t.Errorf("unexpected comment %q", comment)
	}
}

func TestSplitLine_UnterminatedParen(t *testing.T) {
	code, comment, only := gcode.SplitLine("G0 X1 (oops forgot to close")
	if code != "G0 X1 " {
		t.Errorf("unexpected code part %q", code)
	}
	if comment != "oops forgot to close" {
		t.Errorf("unexpected comment %q", comment)
	}
	if only {
		t.Error("expected commentOnly=false")
	}
}

func TestSplitLine_CommentOnlyLine(t *testing.T) {
	_, _, only := gcode.SplitLine("   ; just a comment")
	if !only {
		t.Error("expected commentOnly=true for a whitespace+comment line")
	}
}

func TestSplitLine_MultipleParenGroups(t *testing.T) {
	_, comment, _ := gcode.SplitLine("(a) G0 (b) X1")
	if comment != "a b" {
		t.Errorf("expected joined comment groups, got %q", comment)
	}
}

func TestScanWords_Basic(t *testing.T) {
	words := gcode.ScanWords("G0 X10 Y-20.5")
	if len(words) != 3 {
		t.Fatalf("expected 3 words, got %d", len(words))
	}
	if words[0].Letter != 'G' || words[0].ValueText != "0" {
		t.Errorf("unexpected word 0: %+v", words[0])
	}
	if words[1].Letter != 'X' || words[1].ValueText != "10" {
		t.Errorf("unexpected word 1: %+v", words[1])
	}
	if words[2].Letter != 'Y' || words[2].ValueText != "-20.5" {
		t.Errorf("unexpected word 2: %+v", words[2])
	}
}

func TestScanWords_BareFraction(t *testing.T) {
	words := gcode.ScanWords("G91.1 I.5 J-.25")
	if len(words) != 3 {
		t.Fatalf("expected 3 words, got %d: %+v", len(words), words)
	}
	if words[0].ValueText != "91.1" {
		t.Errorf("unexpected G value %q", words[0].ValueText)
	}
	if words[1].ValueText != ".5" {
		t.Errorf("unexpected I value %q", words[1].ValueText)
	}
	if words[2].ValueText != "-.25" {
		t.Errorf("unexpected J value %q", words[2].ValueText)
	}
}

func TestScanWords_LowercasePreservesRaw(t *testing.T) {
	words := gcode.ScanWords("g0 x10")
	if words[0].Letter != 'G' || words[0].OriginalRaw != "g0" {
		t.Errorf("expected normalized letter with preserved raw text, got %+v", words[0])
	}
}

func TestScanWords_NoWords(t *testing.T) {
	words := gcode.ScanWords("   ")
	if words != nil {
		t.Errorf("expected nil for whitespace-only code part, got %+v", words)
	}
}
