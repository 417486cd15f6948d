// Package directive parses inline `// NAME: value` metadata directives
// embedded in test artifacts and models the artifact's leading comment
// block for directive rewrites.
package directive

import (
	"regexp"
	"strings"
)

// pattern matches one directive per physical line. The name is an
// uppercase token; the value, when present, is everything after the
// colon with surrounding blanks stripped.
var pattern = regexp.MustCompile(`(?m)^//[ \t]*([A-Z_0-9]+)(:[ \t]*(.*))?\r?$`)

// Entry is a single parsed directive occurrence.
type Entry struct {
	Name     string
	Value    string
	HasValue bool
}

// Text returns the canonical directive spelling: "NAME: value" when a
// value is present, otherwise just "NAME".
func (e Entry) Text() string {
	if !e.HasValue {
		return e.Name
	}
	return e.Name + ": " + e.Value
}

// Directives is an ordered multimap of directive name to values. A name
// may repeat; insertion order is preserved so first/last lookups are
// deterministic.
type Directives struct {
	entries []Entry
	index   map[string][]int
}

// New returns an empty Directives instance, usable as a seed for
// ParseInto when several artifacts form one logical test unit.
func New() *Directives {
	return &Directives{index: make(map[string][]int)}
}

// Parse scans text for directives. Parsing is total: text with no
// directives yields an empty map, never an error.
func Parse(text string) *Directives {
	return ParseInto(text, New())
}

// ParseInto appends all directives found in text to dirs and returns it.
func ParseInto(text string, dirs *Directives) *Directives {
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		e := Entry{Name: m[1]}
		if m[2] != "" {
			e.HasValue = true
			e.Value = strings.TrimSpace(m[3])
		}
		dirs.add(e)
	}
	return dirs
}

func (d *Directives) add(e Entry) {
	if d.index == nil {
		d.index = make(map[string][]int)
	}
	d.index[e.Name] = append(d.index[e.Name], len(d.entries))
	d.entries = append(d.entries, e)
}

// Len reports the number of parsed directive occurrences.
func (d *Directives) Len() int { return len(d.entries) }

// Contains reports whether at least one directive with the given name
// was parsed.
func (d *Directives) Contains(name string) bool {
	return len(d.index[name]) > 0
}

// ContainsText reports whether any parsed directive has the exact
// canonical spelling text (e.g. "IGNORE_BACKEND: JVM").
func (d *Directives) ContainsText(text string) bool {
	for _, e := range d.entries {
		if e.Text() == text {
			return true
		}
	}
	return false
}

// Values returns all values recorded for name, in parse order. Bare
// directives contribute an empty string.
func (d *Directives) Values(name string) []string {
	idx := d.index[name]
	if len(idx) == 0 {
		return nil
	}
	vals := make([]string, len(idx))
	for i, j := range idx {
		vals[i] = d.entries[j].Value
	}
	return vals
}

// First returns the first value recorded for name.
func (d *Directives) First(name string) (string, bool) {
	idx := d.index[name]
	if len(idx) == 0 {
		return "", false
	}
	return d.entries[idx[0]].Value, true
}

// Last returns the most recently recorded value for name.
func (d *Directives) Last(name string) (string, bool) {
	idx := d.index[name]
	if len(idx) == 0 {
		return "", false
	}
	return d.entries[idx[len(idx)-1]].Value, true
}

// Entries returns all parsed occurrences in order. The returned slice
// is a copy; Directives are immutable once parsed.
func (d *Directives) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}
