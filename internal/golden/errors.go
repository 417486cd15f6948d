package golden

import (
	"fmt"
	"path/filepath"
)

// MissingFileError reports an absent golden file. In CI the file is
// never created; locally the sanitized actual text is written as the
// new baseline first and Generated is set, but the invocation still
// fails so a human reviews the baseline before it is trusted.
type MissingFileError struct {
	Path      string
	Generated bool
}

func (e *MissingFileError) Error() string {
	if e.Generated {
		return fmt.Sprintf("golden file did not exist, generated: %s", e.Path)
	}
	return fmt.Sprintf("golden file did not exist: %s", e.Path)
}

// MismatchError reports sanitized texts that differ. It carries the
// golden file's location, the raw expected bytes in UTF-8, the
// sanitized actual text, and a rendered unified diff, so external
// tooling can display the failure or offer to accept the new baseline.
type MismatchError struct {
	Path     string
	Expected []byte
	Actual   string
	Diff     string
}

func (e *MismatchError) Error() string {
	abs, err := filepath.Abs(e.Path)
	if err != nil {
		abs = e.Path
	}
	return fmt.Sprintf("actual data differs from file content: %s (%s)\n%s",
		filepath.Base(e.Path), abs, e.Diff)
}
