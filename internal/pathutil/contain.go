package pathutil

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// Canonicalize expands a leading ~, makes the path absolute, and resolves
// symlinks. Containment decisions must operate on canonical paths so that
// .. traversal and symlink tricks cannot escape an allowed root.
func Canonicalize(path string) (string, error) {
	expanded := ExpandHome(path)
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, "make %q absolute", path)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.Wrapf(err, "resolve %q", path)
	}
	return resolved, nil
}

// IsWithin reports whether path equals root or is a descendant of root.
// Both arguments must already be canonical absolute paths.
func IsWithin(path, root string) bool {
	if path == root {
		return true
	}
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(path, prefix)
}
