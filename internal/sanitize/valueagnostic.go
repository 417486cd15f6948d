package sanitize

import (
	"regexp"
	"strings"
)

// Placeholder tokens used by value-agnostic comparison. A golden file
// stores the shape of the output with these tokens standing in for
// concrete literal values.
const (
	PlaceholderInt    = "$INT$"
	PlaceholderReal   = "$REAL$"
	PlaceholderString = "$STRING$"
	PlaceholderID     = "$ID$"
)

// literalPattern finds concrete values eligible for placeholder
// substitution: quoted strings, hex identifiers, and numbers.
var literalPattern = regexp.MustCompile(
	`"(?:[^"\\]|\\.)*"|0x[0-9a-fA-F]+|\b[0-9a-fA-F]{8,}\b|-?\b\d+(?:\.\d+)?\b`)

// placeholderPatterns maps each token to the literal pattern it may
// stand in for when matching actual text against a golden template.
var placeholderPatterns = map[string]string{
	PlaceholderInt:    `-?\d+`,
	PlaceholderReal:   `-?\d+\.\d+`,
	PlaceholderString: `"(?:[^"\\]|\\.)*"`,
	PlaceholderID:     `(?:0x[0-9a-fA-F]+|[0-9a-fA-F]{8,})`,
}

// ValueAgnostic supports shape-equality comparison: concrete values in
// the actual output are abstracted to placeholders so goldens stay
// stable across runs that produce different ids, counts, or strings.
type ValueAgnostic struct {
	actualSanitized string
}

// NewValueAgnostic wraps the actual output, normalized through the
// default pipeline.
func NewValueAgnostic(actual string) *ValueAgnostic {
	return &ValueAgnostic{actualSanitized: Apply(actual, nil)}
}

// ActualSanitized returns the normalized actual text.
func (v *ValueAgnostic) ActualSanitized() string { return v.actualSanitized }

// ExpectedTemplate derives the golden template from the actual text:
// every literal value is replaced by its placeholder. This is the text
// written when a missing golden file is bootstrapped locally.
func (v *ValueAgnostic) ExpectedTemplate() string {
	return literalPattern.ReplaceAllStringFunc(v.actualSanitized, classify)
}

func classify(lit string) string {
	switch {
	case strings.HasPrefix(lit, `"`):
		return PlaceholderString
	case strings.HasPrefix(lit, "0x"):
		return PlaceholderID
	case len(lit) >= 8 && strings.ContainsAny(lit, "abcdefABCDEF"):
		return PlaceholderID
	case strings.Contains(lit, "."):
		return PlaceholderReal
	default:
		return PlaceholderInt
	}
}

// ActualAgainst rewrites the actual text against the golden's
// placeholders: for each line whose shape matches the expected line,
// the actual literals are folded into the expected placeholders, so two
// texts of equal shape compare equal. Lines that do not match the
// expected shape pass through unchanged and surface in the diff.
func (v *ValueAgnostic) ActualAgainst(expectedSanitized string) string {
	expectedLines := strings.Split(expectedSanitized, "\n")
	actualLines := strings.Split(v.actualSanitized, "\n")

	out := make([]string, len(actualLines))
	for i, actual := range actualLines {
		out[i] = actual
		if i >= len(expectedLines) {
			continue
		}
		expected := expectedLines[i]
		if expected == actual {
			continue
		}
		if re, ok := templateMatcher(expected); ok && re.MatchString(actual) {
			out[i] = expected
		}
	}
	return strings.Join(out, "\n")
}

// templateMatcher compiles an expected line containing placeholders
// into an anchored regexp; ok is false for lines without placeholders.
func templateMatcher(expectedLine string) (*regexp.Regexp, bool) {
	src := regexp.QuoteMeta(expectedLine)
	found := false
	for token, pat := range placeholderPatterns {
		esc := regexp.QuoteMeta(token)
		if strings.Contains(src, esc) {
			src = strings.ReplaceAll(src, esc, pat)
			found = true
		}
	}
	if !found {
		return nil, false
	}
	re, err := regexp.Compile("^" + src + "$")
	if err != nil {
		return nil, false
	}
	return re, true
}
