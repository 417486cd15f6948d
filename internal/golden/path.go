package golden

import (
	"path/filepath"
	"strings"
)

// ReplaceExtension returns path with its extension swapped for newExt.
// An empty newExt strips the extension; a leading dot is optional.
func ReplaceExtension(path, newExt string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	if newExt != "" {
		base += "." + strings.TrimPrefix(newExt, ".")
	}
	return filepath.Join(dir, base)
}

// IsMultiExtensionName reports whether name carries more than one
// extension, e.g. "box.kt.txt".
func IsMultiExtensionName(name string) bool {
	first := strings.IndexByte(name, '.')
	if first < 0 {
		return false
	}
	return strings.IndexByte(name[first+1:], '.') >= 0
}
