// Package fsutil provides file system utility functions.
package fsutil

import (
	"path/filepath"
	"strings"
)

// DefaultExtension is used for derived paths when the source has none.
const DefaultExtension = ".csv"

// SplitExt splits path into its stem and final extension. Leading dots of the
// base name are not treated as an extension separator, so ".prices" has no
// extension.
func SplitExt(path string) (stem, ext string) {
	base := filepath.Base(path)
	trimmed := strings.TrimLeft(base, ".")
	dot := strings.LastIndex(trimmed, ".")
	if dot < 0 || path == "" || strings.HasSuffix(path, string(filepath.Separator)) {
		return path, ""
	}
	ext = trimmed[dot:]
	return path[:len(path)-len(ext)], ext
}

// WithSuffix inserts suffix between the stem and extension of path. A path
// without an extension gets DefaultExtension.
func WithSuffix(path, suffix string) string {
	stem, ext := SplitExt(path)
	if ext == "" {
		ext = DefaultExtension
	}
	return stem + suffix + ext
}
