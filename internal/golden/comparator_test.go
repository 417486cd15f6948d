package golden

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"snapcheck/internal/sanitize"
)

func writeGolden(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestCompare_Equal(t *testing.T) {
	dir := t.TempDir()
	path := writeGolden(t, dir, "box.golden", "fun box() = \"OK\"\n")

	c := NewComparator(true, nil)
	res, err := c.Compare(path, "fun box() = \"OK\"\n", nil)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if !res.Equal() {
		t.Errorf("expected equality, diff:\n%s", cmp.Diff(res.ExpectedSanitized, res.ActualSanitized))
	}
}

// Comparing a file against its own loaded text is always equal when no
// custom transform is supplied.
func TestCompare_Reflexive(t *testing.T) {
	dir := t.TempDir()
	path := writeGolden(t, dir, "box.golden", "line one  \r\nline two\n\n")

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	c := NewComparator(true, nil)
	res, err := c.Compare(path, string(raw), nil)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if !res.Equal() {
		t.Error("comparison against own content must be equal")
	}
}

func TestCompare_NormalizesIncidentalDifferences(t *testing.T) {
	dir := t.TempDir()
	path := writeGolden(t, dir, "box.golden", "a\r\nb  \r\n")

	c := NewComparator(true, nil)
	res, err := c.Compare(path, "a\nb", nil)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if !res.Equal() {
		t.Errorf("line endings and trailing blanks must not matter:\n%s",
			cmp.Diff(res.ExpectedSanitized, res.ActualSanitized))
	}
}

func TestCompare_CustomTransformAppliesToBothSides(t *testing.T) {
	dir := t.TempDir()
	path := writeGolden(t, dir, "box.golden", "took 100ms\n")

	mask := sanitize.Transform(func(s string) string {
		out := strings.ReplaceAll(s, "100ms", "<duration>")
		return strings.ReplaceAll(out, "250ms", "<duration>")
	})

	c := NewComparator(true, nil)
	res, err := c.Compare(path, "took 250ms\n", mask)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if !res.Equal() {
		t.Error("the same transform must apply to expected and actual")
	}
}

func TestCompare_MissingFileInCI(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "absent.golden")

	c := NewComparator(true, nil)
	_, err := c.Compare(path, "content\n", nil)

	var missing *MissingFileError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFileError, got %v", err)
	}
	if missing.Generated {
		t.Error("CI must never generate a golden file")
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("no file may be written in CI")
	}
}

func TestCompare_MissingFileLocalBootstraps(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "absent.golden")

	c := NewComparator(false, nil)
	_, err := c.Compare(path, "content  \r\n", nil)

	var missing *MissingFileError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFileError, got %v", err)
	}
	if !missing.Generated {
		t.Error("local mode must report the generated baseline")
	}
	if !strings.Contains(missing.Error(), path) {
		t.Errorf("error must name the generated path: %v", missing)
	}

	written, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("expected generated golden: %v", readErr)
	}
	if string(written) != "content\n" {
		t.Errorf("generated golden must hold sanitized text, got %q", written)
	}
}

func TestAssert_MismatchPayload(t *testing.T) {
	dir := t.TempDir()
	path := writeGolden(t, dir, "box.golden", "expected text\n")

	c := NewComparator(true, nil)
	err := c.Assert(path, "actual text\n", nil)

	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected MismatchError, got %v", err)
	}
	if string(mismatch.Expected) != "expected text\n" {
		t.Errorf("payload must carry raw expected bytes, got %q", mismatch.Expected)
	}
	if mismatch.Actual != "actual text\n" {
		t.Errorf("payload must carry sanitized actual text, got %q", mismatch.Actual)
	}
	if !strings.Contains(mismatch.Error(), "box.golden") {
		t.Errorf("message must name the golden file: %v", mismatch)
	}
	if !strings.Contains(mismatch.Diff, "- expected text") ||
		!strings.Contains(mismatch.Diff, "+ actual text") {
		t.Errorf("diff must show both sides:\n%s", mismatch.Diff)
	}
}

func TestAssert_EqualReturnsNil(t *testing.T) {
	dir := t.TempDir()
	path := writeGolden(t, dir, "box.golden", "same\n")

	c := NewComparator(true, nil)
	if err := c.Assert(path, "same\n", nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestAssertValueAgnostic(t *testing.T) {
	dir := t.TempDir()
	path := writeGolden(t, dir, "box.golden", "count = $INT$\nname = $STRING$\n")

	c := NewComparator(true, nil)
	if err := c.AssertValueAgnostic(path, "count = 7\nname = \"other\"\n"); err != nil {
		t.Errorf("shape-equal output must pass: %v", err)
	}
	if err := c.AssertValueAgnostic(path, "count = seven\nname = \"other\"\n"); err == nil {
		t.Error("shape mismatch must fail")
	}
}

func TestAssertValueAgnostic_BootstrapWritesTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "absent.golden")

	c := NewComparator(false, nil)
	err := c.AssertValueAgnostic(path, "count = 7\n")

	var missing *MissingFileError
	if !errors.As(err, &missing) || !missing.Generated {
		t.Fatalf("expected generated baseline, got %v", err)
	}
	written, _ := os.ReadFile(path)
	if string(written) != "count = $INT$\n" {
		t.Errorf("bootstrapped golden must hold the template, got %q", written)
	}
}

func TestCompare_ReadErrorPropagates(t *testing.T) {
	dir := t.TempDir()
	// A directory at the golden path forces a read error that is not
	// fs.ErrNotExist.
	path := filepath.Join(dir, "golden-as-dir")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}

	c := NewComparator(false, nil)
	_, err := c.Compare(path, "content\n", nil)
	if err == nil {
		t.Fatal("expected an I/O error")
	}
	var missing *MissingFileError
	if errors.As(err, &missing) {
		t.Error("I/O errors must not be mistaken for a missing file")
	}
}
