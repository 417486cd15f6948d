package sanitize

import "testing"

func TestExpectedTemplate_ReplacesLiterals(t *testing.T) {
	va := NewValueAgnostic("count = 42\nname = \"box\"\nhandle = 0xDEADBEEF\n")
	got := va.ExpectedTemplate()
	want := "count = $INT$\nname = $STRING$\nhandle = $ID$\n"
	if got != want {
		t.Errorf("template = %q, want %q", got, want)
	}
}

func TestExpectedTemplate_RealsAndBareHex(t *testing.T) {
	va := NewValueAgnostic("elapsed = 1.25\nid = deadbeef01\n")
	got := va.ExpectedTemplate()
	want := "elapsed = $REAL$\nid = $ID$\n"
	if got != want {
		t.Errorf("template = %q, want %q", got, want)
	}
}

func TestActualAgainst_FoldsMatchingShapes(t *testing.T) {
	va := NewValueAgnostic("count = 42\nname = \"box\"\n")
	expected := "count = $INT$\nname = $STRING$\n"

	if got := va.ActualAgainst(expected); got != expected {
		t.Errorf("shape-equal text should fold to the template, got %q", got)
	}
}

func TestActualAgainst_KeepsMismatchedLines(t *testing.T) {
	va := NewValueAgnostic("count = forty-two\n")
	expected := "count = $INT$\n"

	if got := va.ActualAgainst(expected); got != "count = forty-two\n" {
		t.Errorf("non-matching line must pass through, got %q", got)
	}
}

func TestActualAgainst_LiteralLinesStillCompared(t *testing.T) {
	// A golden line without placeholders requires an exact match; the
	// actual passes through so the comparison surfaces the difference.
	va := NewValueAgnostic("status = FAILED\n")
	expected := "status = OK\n"

	if got := va.ActualAgainst(expected); got != "status = FAILED\n" {
		t.Errorf("got %q", got)
	}
}

func TestActualAgainst_ExtraActualLines(t *testing.T) {
	va := NewValueAgnostic("count = 1\nextra line\n")
	expected := "count = $INT$\n"

	want := "count = $INT$\nextra line\n"
	if got := va.ActualAgainst(expected); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
