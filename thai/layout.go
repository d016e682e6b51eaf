package thai

// Combining vowels (zero display width) and tone marks trigger "complex
// layout" per spec.md §4.3. Both ranges sit inside the Thai vowel/tone
// block; this list picks out the specific combining marks named there
// (U+0E34..U+0E3A) plus the four tone marks (U+0E48..U+0E4B).
const (
	combiningVowelStart = 0x0E34
	combiningVowelEnd   = 0x0E3A
)

// wideBases are visually wider base consonants that get a 10px width
// instead of the 8px default, per spec.md §4.3 ("ว, ม, อ").
var wideBases = map[rune]bool{
	'ว': true, 'ม': true, 'อ': true,
}

const (
	defaultGlyphWidth = 8
	wideGlyphWidth    = 10
	zeroWidth         = 0
)

// GlyphWidth returns the layout width in pixels for a single code point,
// per the per-code-point width table in spec.md §4.3: zero for combining
// vowels and tone marks, 10 for the visually wider bases, 8 otherwise.
func GlyphWidth(r rune) int {
	if isCombiningVowel(r) || isToneMark(r) {
		return zeroWidth
	}
	if wideBases[r] {
		return wideGlyphWidth
	}
	return defaultGlyphWidth
}

func isCombiningVowel(r rune) bool {
	return r >= combiningVowelStart && r <= combiningVowelEnd
}

func isToneMark(r rune) bool {
	return r >= toneStartUTF && r <= toneEndUTF
}

// RequiresComplexLayout reports whether text contains any combining
// vowel or tone mark, per spec.md §4.3.
func RequiresComplexLayout(text string) bool {
	for _, r := range text {
		if isCombiningVowel(r) || isToneMark(r) {
			return true
		}
	}
	return false
}

// TextWidth sums the glyph widths of text, ignoring explicit line breaks
// (each line's width should be measured separately via WrapLines).
func TextWidth(text string) int {
	total := 0
	for _, r := range text {
		if r == '\n' {
			continue
		}
		total += GlyphWidth(r)
	}
	return total
}

// WrapLines accumulates glyph widths and breaks a line whenever the next
// glyph would exceed maxWidthPixels, or on an explicit '\n', per spec.md
// §4.3's line-wrapping rule.
func WrapLines(text string, maxWidthPixels int) []string {
	if maxWidthPixels <= 0 {
		maxWidthPixels = 1
	}
	var lines []string
	var current []rune
	width := 0

	flush := func() {
		lines = append(lines, string(current))
		current = current[:0]
		width = 0
	}

	for _, r := range text {
		if r == '\n' {
			flush()
			continue
		}
		w := GlyphWidth(r)
		if width+w > maxWidthPixels && len(current) > 0 {
			flush()
		}
		current = append(current, r)
		width += w
	}
	if len(current) > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}
