package golden

import (
	"errors"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"snapcheck/internal/sanitize"
)

// Comparator loads (or bootstraps) golden files and compares them with
// actual output through the shared sanitization pipeline. The zero
// value is usable and behaves like local mode with no logging.
type Comparator struct {
	// CI makes a missing golden file a hard failure instead of
	// generating a new baseline.
	CI bool

	log *zap.Logger
}

// NewComparator builds a comparator. log may be nil.
func NewComparator(ci bool, log *zap.Logger) *Comparator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Comparator{CI: ci, log: log}
}

func (c *Comparator) logger() *zap.Logger {
	if c.log == nil {
		return zap.NewNop()
	}
	return c.log
}

// Compare loads path and compares its sanitized content with the
// sanitized actual text, applying the same custom transform to both
// sides. A missing file yields *MissingFileError: in CI before any
// write happens; locally after the sanitized actual text has been
// written as the new baseline. Any other read error is returned
// unchanged.
func (c *Comparator) Compare(path, actual string, custom sanitize.Transform) (Result, error) {
	sanitizedActual := func() string { return sanitize.Apply(actual, custom) }
	return c.compare(path, custom, sanitizedActual, func(string) string {
		return sanitizedActual()
	})
}

// compare factors the load-or-bootstrap contract shared by plain and
// value-agnostic comparison. bootstrap produces the text written for a
// missing golden; actualFor produces the sanitized actual side, given
// the sanitized expected text.
func (c *Comparator) compare(path string, custom sanitize.Transform, bootstrap func() string, actualFor func(string) string) (Result, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if c.CI {
			return Result{}, &MissingFileError{Path: path}
		}
		if werr := WriteFileAtomic(path, []byte(bootstrap())); werr != nil {
			return Result{}, werr
		}
		c.logger().Info("generated missing golden file", zap.String("path", path))
		return Result{}, &MissingFileError{Path: path, Generated: true}
	}
	if err != nil {
		return Result{}, err
	}

	expectedText := string(raw)
	expectedSanitized := sanitize.Apply(expectedText, custom)
	return NewResult(path, expectedText, expectedSanitized, actualFor(expectedSanitized)), nil
}

// Assert compares and converts an unequal result into a *MismatchError
// carrying the full failure payload.
func (c *Comparator) Assert(path, actual string, custom sanitize.Transform) error {
	res, err := c.Compare(path, actual, custom)
	if err != nil {
		return err
	}
	return failIfNotEqual(res)
}

// AssertValueAgnostic compares shape instead of values: the actual text
// is folded into the golden's placeholders before the exact comparison,
// and a bootstrapped golden stores the placeholder template rather than
// the concrete values.
func (c *Comparator) AssertValueAgnostic(path, actual string) error {
	va := sanitize.NewValueAgnostic(actual)
	res, err := c.compare(path, nil, va.ExpectedTemplate, func(expectedSanitized string) string {
		return sanitize.Apply(va.ActualAgainst(expectedSanitized), nil)
	})
	if err != nil {
		return err
	}
	return failIfNotEqual(res)
}

func failIfNotEqual(res Result) error {
	if res.Equal() {
		return nil
	}
	return &MismatchError{
		Path:     res.Path,
		Expected: res.ExpectedBytes(),
		Actual:   res.ActualSanitized,
		Diff:     renderDiff(res.ExpectedSanitized, res.ActualSanitized),
	}
}
