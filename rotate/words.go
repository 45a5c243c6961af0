package rotate

import "github.com/RefikCodes/raptorex-gcode/gcode"

// wordValue looks up the first word with the given letter. present
// reports whether the word exists at all; ok reports whether its value
// text parsed successfully. A present-but-unparseable word must be
// passed through verbatim and must not update any coordinate (spec §7).
func wordValue(words []gcode.Word, letter byte) (value float64, present bool, ok bool) {
	for _, w := range words {
		if w.Letter != letter {
			continue
		}
		v, parsed := gcode.ParseValue(w.ValueText)
		if parsed {
			return v, true, true
		}
		return 0, true, false
	}
	return 0, false, false
}

func hasLetter(words []gcode.Word, letter byte) bool {
	for _, w := range words {
		if w.Letter == letter {
			return true
		}
	}
	return false
}

// rebuildCodePart reconstructs a code part from the original scanned
// words, substituting the override text for any letter it names (first
// occurrence only) and passing every other word through via its exact
// original raw text. Overrides whose letter has no existing word are
// appended, in the order given by appendOrder. This is the Line
// Rebuilder of spec §4.6: output is built purely from tokens, so
// whitespace and non-token characters between them are dropped.
func rebuildCodePart(words []gcode.Word, overrides map[byte]string, appendOrder []byte) string {
	parts := make([]string, 0, len(words)+len(appendOrder))
	used := make(map[byte]bool, len(overrides))

	for _, w := range words {
		if text, ok := overrides[w.Letter]; ok && !used[w.Letter] {
			parts = append(parts, string(w.Letter)+text)
			used[w.Letter] = true
			continue
		}
		parts = append(parts, w.OriginalRaw)
	}

	for _, letter := range appendOrder {
		if used[letter] {
			continue
		}
		if text, ok := overrides[letter]; ok {
			parts = append(parts, string(letter)+text)
			used[letter] = true
		}
	}

	return joinTokens(parts)
}

func joinTokens(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out
}
