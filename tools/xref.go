package tools

import (
	"fmt"
	"sort"

	"github.com/RefikCodes/raptorex-gcode/gcode"
)

// CodeUsage tracks every line on which a particular G or M code value
// appears, in source order.
type CodeUsage struct {
	Letter byte
	Value  float64
	Lines  []int
}

// Key is the canonical "G1"/"M3" style label for a code usage,
// formatted without trailing zeros.
func (u *CodeUsage) Key() string {
	return fmt.Sprintf("%s%s", string(u.Letter), trimmedValueText(u.Value))
}

// XrefReport is a cross-reference of G/M code usage across a program,
// useful for spotting which modal codes a file actually exercises
// before rewriting it.
type XrefReport struct {
	usages map[string]*CodeUsage
}

// Codes returns all usages sorted by letter then numeric value.
func (r *XrefReport) Codes() []*CodeUsage {
	out := make([]*CodeUsage, 0, len(r.usages))
	for _, u := range r.usages {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Letter != out[j].Letter {
			return out[i].Letter < out[j].Letter
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// Lookup returns the usage for a given letter+value, if any appeared.
func (r *XrefReport) Lookup(letter byte, value float64) (*CodeUsage, bool) {
	u, ok := r.usages[fmt.Sprintf("%s%s", string(letter), trimmedValueText(value))]
	return u, ok
}

// BuildXref scans lines for G and M words and records every line on
// which each distinct code value appears.
func BuildXref(lines []string) *XrefReport {
	report := &XrefReport{usages: map[string]*CodeUsage{}}

	for i, raw := range lines {
		codeRaw, _ := gcode.SplitRaw(raw)
		words := gcode.ScanWords(codeRaw)
		for _, w := range words {
			if w.Letter != 'G' && w.Letter != 'M' {
				continue
			}
			v, ok := gcode.ParseValue(w.ValueText)
			if !ok {
				continue
			}
			key := fmt.Sprintf("%s%s", string(w.Letter), trimmedValueText(v))
			u, exists := report.usages[key]
			if !exists {
				u = &CodeUsage{Letter: w.Letter, Value: v}
				report.usages[key] = u
			}
			u.Lines = append(u.Lines, i)
		}
	}

	return report
}

func trimmedValueText(v float64) string {
	text := fmt.Sprintf("%g", v)
	return text
}
