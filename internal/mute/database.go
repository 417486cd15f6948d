package mute

import "github.com/google/uuid"

// TestID identifies one test invocation to the mute database.
type TestID struct {
	Suite string
	Name  string
	Run   uuid.UUID
}

// Database is the external mute-database collaborator. It tracks
// globally muted tests independent of inline directives; this package
// never duplicates that bookkeeping.
type Database interface {
	// WrapIfMuted returns a replacement body when the test is wrapped
	// by a mute override, and reports whether an override applies.
	WrapIfMuted(id TestID, body func() error) (func() error, bool)
}

// TestHandle names the test being run.
type TestHandle interface {
	Suite() string
	Name() string
}

// SelfManaged marks test handles that implement their own mute/retry
// lifecycle. The wrapper invokes such tests uninstrumented so bespoke
// logic is not double-wrapped.
type SelfManaged interface {
	ManagesOwnLifecycle() bool
}
