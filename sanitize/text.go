package sanitize

import (
	"strings"
	"unicode"
)

// StripControlChars removes control characters while keeping \t, \n, \r
// and anything >= 0x20, per spec.md §4.5.
func StripControlChars(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\t' || r == '\n' || r == '\r' || r >= 0x20 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CollapseWhitespace collapses runs of whitespace into a single space and
// trims the result.
func CollapseWhitespace(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return strings.TrimSpace(strings.Join(fields, " "))
}

// SanitizeText strips control characters, collapses whitespace, and
// trims, matching spec.md §4.5's default (non-HTML-escaping) text mode.
func SanitizeText(s string) string {
	return CollapseWhitespace(StripControlChars(s))
}

var htmlEntities = map[rune]string{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&quot;",
	'\'': "&#39;",
	'/':  "&#47;",
}

// EscapeHTML maps & < > " ' / to their entities, per spec.md §4.5's
// HTML-escape mode.
func EscapeHTML(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if e, ok := htmlEntities[r]; ok {
			b.WriteString(e)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var filenameReplacer = strings.NewReplacer(
	"\\", "_", "/", "_", ":", "_", "*", "_",
	"?", "_", "\"", "_", "<", "_", ">", "_", "|", "_",
)

// SanitizeFilename replaces \ / : * ? " < > | with _, rejects empty/./..,
// and caps the result at 255 bytes, per spec.md §4.5's filename mode.
func SanitizeFilename(name string) (string, bool) {
	cleaned := filenameReplacer.Replace(strings.TrimSpace(name))
	if cleaned == "" || cleaned == "." || cleaned == ".." {
		return "", false
	}
	if len(cleaned) > 255 {
		cleaned = cleaned[:255]
	}
	return cleaned, true
}
