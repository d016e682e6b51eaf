// Package sanitize implements the defensive input layer of spec.md §4.5:
// path traversal protection, magic-byte format validation, and bounded
// text sanitization. It is grounded on security_utils.h/.cpp's
// SecurePathValidator, ContentSecurityScanner, and InputSanitizer from
// the pre-distillation reference implementation.
package sanitize

import (
	"net/url"
	"path/filepath"
	"strings"
)

// PathValidator rejects traversal attempts and confines file access to a
// configured allow-list of directory roots, per spec.md §4.5.
type PathValidator struct {
	allowRoots []string
	strict     bool
}

func NewPathValidator(allowRoots []string, strict bool) *PathValidator {
	resolved := make([]string, 0, len(allowRoots))
	for _, r := range allowRoots {
		if abs, err := filepath.Abs(filepath.Clean(r)); err == nil {
			resolved = append(resolved, abs)
		}
	}
	return &PathValidator{allowRoots: resolved, strict: strict}
}

// blockedSubstrings covers the raw traversal markers named in spec.md
// §4.5. Their percent-encoded equivalents are handled separately below
// (by percent-decoding and by an explicit list), so encoded variants are
// caught even when mixed with literal traversal segments.
var blockedSubstrings = []string{"..", "~", "//", "\x00"}

// IsSafe reports whether path is free of traversal markers and resolves
// to a location under one of the configured allow-roots. It never reads
// the filesystem: canonicalization is purely lexical (filepath.Clean),
// so a symlink escape is not this function's concern — that is the
// caller's responsibility if it matters for their deployment.
func (v *PathValidator) IsSafe(path string) bool {
	if path == "" {
		return false
	}
	if strings.ContainsRune(path, 0) {
		return false
	}
	for _, needle := range blockedSubstrings {
		if strings.Contains(path, needle) {
			return false
		}
	}
	if decoded, err := url.QueryUnescape(path); err == nil && decoded != path {
		for _, needle := range blockedSubstrings {
			if strings.Contains(decoded, needle) {
				return false
			}
		}
	}
	// Explicit percent-encoded traversal markers even when QueryUnescape
	// would fail to round-trip cleanly (stray '%').
	lower := strings.ToLower(path)
	for _, enc := range []string{"%2e%2e", "%2f", "%5c"} {
		if strings.Contains(lower, enc) {
			return false
		}
	}

	if len(v.allowRoots) == 0 {
		return !v.strict
	}

	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return false
	}

	for _, root := range v.allowRoots {
		if isUnderRoot(abs, root) {
			return true
		}
	}
	return false
}

// isUnderRoot reports whether abs is root itself or a path beneath it,
// matching only on a directory boundary (spec.md §4.5: "prefix match
// must end on a directory boundary, not a partial component") so
// "/srv-evil" is never accepted against allow-root "/srv".
func isUnderRoot(abs, root string) bool {
	if abs == root {
		return true
	}
	sep := string(filepath.Separator)
	return strings.HasPrefix(abs, strings.TrimSuffix(root, sep)+sep)
}

func (v *PathValidator) AddAllowedDirectory(dir string) {
	if abs, err := filepath.Abs(filepath.Clean(dir)); err == nil {
		v.allowRoots = append(v.allowRoots, abs)
	}
}

func (v *PathValidator) SetStrictMode(strict bool) { v.strict = strict }
