package gcode

import "strings"

// Word is a single letter-prefixed numeric token scanned from a code
// part, along with enough of its original text to pass it through
// byte-for-byte when its value isn't being rewritten.
type Word struct {
	Letter      byte   // normalized to uppercase for dispatch
	ValueText   string // signed decimal exactly as it appeared
	OriginalRaw string // Letter (original case) + ValueText
	Index       int    // position within the code part, for ordering
}

// SplitLine separates a raw line into its code part and comment part.
// Parenthesized comments (possibly several, possibly unterminated) and
// a trailing semicolon comment are extracted and joined by single
// spaces in the order they appear; everything else flows into the code
// part untouched.
func SplitLine(raw string) (codePart, commentPart string, commentOnly bool) {
	if raw == "" {
		return "", "", true
	}

	semiIdx := strings.IndexByte(raw, ';')
	prefix := raw
	var semiTail string
	hasSemiTail := false
	if semiIdx >= 0 {
		prefix = raw[:semiIdx]
		semiTail = strings.TrimSpace(raw[semiIdx+1:])
		hasSemiTail = true
	}

	var code strings.Builder
	var comments []string

	i := 0
	for i < len(prefix) {
		ch := prefix[i]
		if ch == '(' {
			start := i
			end := strings.IndexByte(prefix[i:], ')')
			if end < 0 {
				// Unterminated: runs to end of prefix.
				i = len(prefix)
			} else {
				i = start + end + 1
			}
			inner := prefix[start:i]
			inner = strings.TrimPrefix(inner, "(")
			inner = strings.TrimSuffix(inner, ")")
			segment := strings.TrimSpace(inner)
			if segment != "" {
				comments = append(comments, segment)
			}
			continue
		}
		code.WriteByte(ch)
		i++
	}

	if hasSemiTail {
		comments = append(comments, semiTail)
	}

	commentPart = strings.Join(comments, " ")
	codePart = code.String()
	commentOnly = strings.TrimSpace(codePart) == ""
	return codePart, commentPart, commentOnly
}

// SplitRaw divides a raw line at the first comment delimiter ('(' or
// ';'), returning the code portion and the comment-and-everything-after
// tail as exact substrings of raw. Unlike SplitLine it does no parsing
// of the tail at all, so a rewriter that only ever touches codeRaw can
// reattach tailRaw and reproduce the original comment syntax,
// delimiter, and spacing byte-for-byte.
func SplitRaw(raw string) (codeRaw, tailRaw string) {
	idx := strings.IndexAny(raw, "(;")
	if idx < 0 {
		return raw, ""
	}
	return raw[:idx], raw[idx:]
}

// ScanWords extracts the ordered list of letter+signed-decimal words
// from a code part. Characters between words (whitespace, stray
// punctuation) are dropped; they are not retained as tokens.
func ScanWords(codePart string) []Word {
	locs := wordPattern.FindAllStringIndex(codePart, -1)
	if len(locs) == 0 {
		return nil
	}

	words := make([]Word, 0, len(locs))
	for idx, loc := range locs {
		raw := codePart[loc[0]:loc[1]]
		letter := raw[0]
		upper := letter
		if upper >= 'a' && upper <= 'z' {
			upper -= 'a' - 'A'
		}
		words = append(words, Word{
			Letter:      upper,
			ValueText:   raw[1:],
			OriginalRaw: raw,
			Index:       idx,
		})
	}
	return words
}
