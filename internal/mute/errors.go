package mute

import (
	"fmt"
	"strings"
)

// SpuriousPassError reports an ignored test that no longer fails. The
// message names the exact directive text so the operator can remove it.
type SpuriousPassError struct {
	Path       string
	Directives []string
}

func (e *SpuriousPassError) Error() string {
	return fmt.Sprintf("looks like this test can be unmuted: remove the %q directive from %s",
		strings.Join(e.Directives, ", "), e.Path)
}

// RewriteError reports an I/O failure while self-editing an artifact's
// directives. It carries the test failure that triggered the rewrite so
// the original problem is never masked by the bookkeeping one.
type RewriteError struct {
	Path    string
	Err     error // the I/O failure
	TestErr error // the failure being handled, nil on unmute rewrites
}

func (e *RewriteError) Error() string {
	if e.TestErr != nil {
		return fmt.Sprintf("rewriting directives in %s: %v (while handling test failure: %v)", e.Path, e.Err, e.TestErr)
	}
	return fmt.Sprintf("rewriting directives in %s: %v", e.Path, e.Err)
}

// Unwrap yields the original test failure when present, matching the
// propagation contract that the rewrite failure re-raises it.
func (e *RewriteError) Unwrap() error {
	if e.TestErr != nil {
		return e.TestErr
	}
	return e.Err
}
