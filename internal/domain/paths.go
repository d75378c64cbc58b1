package domain

import (
	"path/filepath"
	"strings"
)

// NativePath rewrites both slash styles to the platform separator.
func NativePath(p string) string {
	sep := string(filepath.Separator)
	p = strings.ReplaceAll(p, "/", sep)
	return strings.ReplaceAll(p, `\`, sep)
}

// NormalizeProjectPath returns the comparison form of a project path: native
// separators with leading separators removed. It is never used for display.
func NormalizeProjectPath(p string) string {
	return strings.TrimLeft(NativePath(p), string(filepath.Separator))
}

// ProjectKey is the comparison key of a project path: two paths refer to the
// same project when their keys are equal, whatever their separator style or
// letter case.
func ProjectKey(p string) string {
	return strings.ToLower(NormalizeProjectPath(p))
}

// RelativeToDir strips dir from the front of path, matching case-insensitively.
// A path outside dir is returned unchanged.
func RelativeToDir(path, dir string) string {
	sep := string(filepath.Separator)
	prefix := strings.TrimRight(dir, sep)
	if len(path) <= len(prefix) || !strings.EqualFold(path[:len(prefix)], prefix) {
		return path
	}
	rest := path[len(prefix):]
	if !strings.HasPrefix(rest, sep) {
		return path
	}
	return strings.TrimLeft(rest, sep)
}
