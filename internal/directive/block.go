package directive

import "strings"

// Block models the leading contiguous comment run of an artifact: the
// `//` lines starting at offset zero, followed by the untouched body.
// Directive insertion and removal are list operations on the run;
// Render serializes back to text exactly once, so a rewrite is a single
// well-defined transformation instead of ad hoc string splicing.
type Block struct {
	lines   []string // comment lines without line terminator
	body    string   // everything after the leading run, verbatim
	eol     string   // run line terminator, "\n" or "\r\n"
	bareEnd bool     // run ended at EOF without a newline
	changed bool
}

// ParseBlock splits text into its leading comment run and body. An
// artifact that does not start with a comment has an empty run. Run
// lines are stored without their terminator so matching agrees with
// directive parsing on CRLF artifacts; Render restores the terminator.
func ParseBlock(text string) *Block {
	b := &Block{eol: "\n"}
	rest := text
	for strings.HasPrefix(rest, "//") {
		nl := strings.IndexByte(rest, '\n')
		if nl < 0 {
			b.lines = append(b.lines, rest)
			b.bareEnd = true
			rest = ""
			break
		}
		line := rest[:nl]
		if strings.HasSuffix(line, "\r") {
			line = line[:len(line)-1]
			b.eol = "\r\n"
		}
		b.lines = append(b.lines, line)
		rest = rest[nl+1:]
	}
	b.body = rest
	return b
}

// Lines returns a copy of the comment run.
func (b *Block) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Contains reports whether the run already holds the exact line.
func (b *Block) Contains(line string) bool {
	for _, l := range b.lines {
		if l == line {
			return true
		}
	}
	return false
}

// Insert appends line at the end of the comment run, creating the run
// if the artifact has none. Inserting a line that is already present is
// a no-op so the rewrite never touches the file spuriously.
func (b *Block) Insert(line string) {
	if b.Contains(line) {
		return
	}
	b.lines = append(b.lines, line)
	b.changed = true
}

// Remove deletes every run line equal to line and reports whether
// anything was deleted. Matching is exact, including the backend name,
// so "// IGNORE_BACKEND: JVM" never removes "// IGNORE_BACKEND: JVM_IR".
func (b *Block) Remove(line string) bool {
	kept := b.lines[:0]
	removed := false
	for _, l := range b.lines {
		if l == line {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	b.lines = kept
	if removed {
		b.changed = true
	}
	return removed
}

// Changed reports whether Insert or Remove modified the run since
// parsing; callers skip the file write when it is false.
func (b *Block) Changed() bool { return b.changed }

// Render serializes the run and body back to artifact text, restoring
// the run's line terminator. For an unmodified block the output is
// byte-identical to the parsed input.
func (b *Block) Render() string {
	if len(b.lines) == 0 {
		return b.body
	}
	out := strings.Join(b.lines, b.eol)
	if b.bareEnd && !b.changed {
		return out
	}
	return out + b.eol + b.body
}
