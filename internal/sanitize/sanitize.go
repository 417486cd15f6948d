// Package sanitize normalizes test output text before golden-file
// comparison: line endings, trailing whitespace, and the end-of-file
// newline are unified so comparisons only see meaningful differences.
package sanitize

import "strings"

// Transform is a caller-supplied text rewrite applied after the default
// normalization. It must be a pure function of its input.
type Transform func(string) string

// Identity returns its input unchanged. It is the default Transform.
func Identity(s string) string { return s }

// Apply runs the default normalization pipeline and then custom (when
// non-nil). The pipeline: strip outer whitespace, unify line endings to
// "\n", strip trailing blanks from every line, and ensure the result is
// either empty or ends with exactly one newline. Apply is idempotent
// whenever custom is idempotent on its own output.
func Apply(text string, custom Transform) string {
	out := strings.TrimSpace(text)
	out = strings.ReplaceAll(out, "\r\n", "\n")
	out = strings.ReplaceAll(out, "\r", "\n")

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	out = strings.Join(lines, "\n")

	if out != "" {
		out += "\n"
	}
	if custom != nil {
		out = custom(out)
	}
	return out
}
