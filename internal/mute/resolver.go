// Package mute decides whether failing tests are suppressed by inline
// ignore directives and wraps test execution with that policy,
// self-editing directives when configured to.
package mute

import (
	"snapcheck/internal/backend"
	"snapcheck/internal/directive"
)

// Resolver answers whether an artifact declares a test ignored for a
// given backend.
type Resolver struct{}

// Match returns the first directive spelling that ignores b under one
// of the prefixes: for each prefix, in order, the backend's own
// spelling and then the ANY wildcard spelling.
func (Resolver) Match(b backend.Backend, artifactText string, prefixes []backend.Prefix) (string, bool) {
	dirs := directive.Parse(artifactText)
	for _, p := range prefixes {
		if spelling := p.For(b); dirs.ContainsText(spelling) {
			return spelling, true
		}
		if spelling := p.For(backend.Any); dirs.ContainsText(spelling) {
			return spelling, true
		}
	}
	return "", false
}

// IsIgnored reports whether the artifact declares the test ignored for
// b under any of the prefixes.
func (r Resolver) IsIgnored(b backend.Backend, artifactText string, prefixes []backend.Prefix) bool {
	_, ok := r.Match(b, artifactText, prefixes)
	return ok
}

// IsIgnoredRequiringCompatible additionally requires the backend's
// compatible counterpart to be ignored. A failure on b while the
// compatible backend works is something the team needs to know about,
// so it is not suppressed.
func (r Resolver) IsIgnoredRequiringCompatible(b backend.Backend, artifactText string, prefixes []backend.Prefix) bool {
	if !r.IsIgnored(b, artifactText, prefixes) {
		return false
	}
	return r.IsIgnored(b.Compatible(), artifactText, prefixes)
}

// Present lists the directive spellings for b that actually occur in
// the artifact, one per prefix at most, preferring the backend's own
// spelling over the wildcard.
func (Resolver) Present(b backend.Backend, artifactText string, prefixes []backend.Prefix) []string {
	dirs := directive.Parse(artifactText)
	var out []string
	for _, p := range prefixes {
		if spelling := p.For(b); dirs.ContainsText(spelling) {
			out = append(out, spelling)
			continue
		}
		if spelling := p.For(backend.Any); dirs.ContainsText(spelling) {
			out = append(out, spelling)
		}
	}
	return out
}
