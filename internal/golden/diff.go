package golden

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// lineType classifies one rendered diff line.
type lineType int

const (
	lineContext lineType = iota
	lineAdded
	lineRemoved
)

type diffLine struct {
	typ     lineType
	content string
}

// contextLines is the amount of unchanged context kept around each
// change when rendering a mismatch.
const contextLines = 3

// renderDiff produces a compact unified-style diff of expected vs
// actual, suitable for embedding in a MismatchError message. The
// line-level reduction avoids newline boundary artifacts when
// converting character diffs to line operations.
func renderDiff(expected, actual string) string {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0

	a, b, lineArray := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	lines := toLines(diffs)
	return renderHunks(lines)
}

func toLines(diffs []diffmatchpatch.Diff) []diffLine {
	var out []diffLine
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				out = append(out, diffLine{lineContext, line})
			case diffmatchpatch.DiffDelete:
				out = append(out, diffLine{lineRemoved, line})
			case diffmatchpatch.DiffInsert:
				out = append(out, diffLine{lineAdded, line})
			}
		}
	}
	return out
}

// renderHunks prints changed lines with surrounding context, collapsing
// long unchanged stretches into a separator.
func renderHunks(lines []diffLine) string {
	var sb strings.Builder
	lastPrinted := -1
	for i, line := range lines {
		if line.typ == lineContext && !nearChange(lines, i) {
			continue
		}
		if lastPrinted >= 0 && i > lastPrinted+1 {
			sb.WriteString("  ...\n")
		}
		switch line.typ {
		case lineAdded:
			fmt.Fprintf(&sb, "+ %s\n", line.content)
		case lineRemoved:
			fmt.Fprintf(&sb, "- %s\n", line.content)
		default:
			fmt.Fprintf(&sb, "  %s\n", line.content)
		}
		lastPrinted = i
	}
	return sb.String()
}

func nearChange(lines []diffLine, i int) bool {
	lo := i - contextLines
	if lo < 0 {
		lo = 0
	}
	hi := i + contextLines
	if hi > len(lines)-1 {
		hi = len(lines) - 1
	}
	for j := lo; j <= hi; j++ {
		if lines[j].typ != lineContext {
			return true
		}
	}
	return false
}
