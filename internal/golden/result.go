// Package golden compares test output against stored golden files,
// bootstrapping missing artifacts outside CI and reporting mismatches
// with a full diffable payload.
package golden

// Result is the outcome of one golden-file comparison. It is an
// immutable value: equality is fixed at construction from the two
// sanitized texts and never recomputed from the raw text.
type Result struct {
	Path              string
	ExpectedText      string
	ExpectedSanitized string
	ActualSanitized   string

	equal bool
}

// NewResult derives the equality flag by exact string comparison of the
// sanitized texts; comparison is never fuzzy.
func NewResult(path, expectedText, expectedSanitized, actualSanitized string) Result {
	return Result{
		Path:              path,
		ExpectedText:      expectedText,
		ExpectedSanitized: expectedSanitized,
		ActualSanitized:   actualSanitized,
		equal:             expectedSanitized == actualSanitized,
	}
}

// Equal reports whether the sanitized texts matched exactly.
func (r Result) Equal() bool { return r.equal }

// ExpectedBytes exposes the raw golden payload as UTF-8 bytes for
// tooling that renders diffs or offers an accept-baseline action.
func (r Result) ExpectedBytes() []byte { return []byte(r.ExpectedText) }
