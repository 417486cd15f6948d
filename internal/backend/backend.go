// Package backend identifies the execution targets a test can run
// against and the directive prefixes used to ignore a test per target.
package backend

// Backend is a named execution target. A backend may declare another
// backend it is compatible with; ignore resolution can then require
// both to agree before suppressing a failure.
type Backend struct {
	Name           string
	CompatibleWith *Backend
}

// Any matches regardless of the actual backend a test runs on.
var Any = Backend{Name: "ANY"}

// Stock variants. The IR backends declare their non-IR counterpart as
// compatible.
var (
	JVM    = Backend{Name: "JVM"}
	JVMIR  = Backend{Name: "JVM_IR", CompatibleWith: &JVM}
	JS     = Backend{Name: "JS"}
	JSIR   = Backend{Name: "JS_IR", CompatibleWith: &JS}
	Native = Backend{Name: "NATIVE"}
	Wasm   = Backend{Name: "WASM"}
)

// New returns a backend with no compatible counterpart.
func New(name string) Backend {
	return Backend{Name: name}
}

// NewCompatible returns a backend declaring compatibleWith as its
// counterpart.
func NewCompatible(name string, compatibleWith Backend) Backend {
	return Backend{Name: name, CompatibleWith: &compatibleWith}
}

// Compatible returns the declared compatible backend, or Any when none
// is declared.
func (b Backend) Compatible() Backend {
	if b.CompatibleWith == nil {
		return Any
	}
	return *b.CompatibleWith
}

// IsAny reports whether b is the wildcard backend.
func (b Backend) IsAny() bool { return b.Name == Any.Name }

// Prefix is one family of ignore directives. The full directive
// spelling is the prefix followed by the backend's canonical name.
type Prefix string

// Known prefixes: the generic family and the K2-frontend
// specialization. Write-back (directive self-editing) always uses the
// first prefix of the list handed to the resolver.
const (
	IgnorePrefix   Prefix = "IGNORE_BACKEND: "
	IgnorePrefixK2 Prefix = "IGNORE_BACKEND_K2: "
)

// DefaultPrefixes is the prefix list used when the caller does not
// narrow the set.
var DefaultPrefixes = []Prefix{IgnorePrefix, IgnorePrefixK2}

// For returns the canonical directive text ignoring b under this
// prefix, e.g. "IGNORE_BACKEND: JVM".
func (p Prefix) For(b Backend) string {
	return string(p) + b.Name
}
