// Package thai implements the ETSI TS 101 756 Thai-profile byte encoding,
// layout metrics, DLS formatting, cultural-compliance checks, number
// formatting, and Buddhist calendar arithmetic described in spec.md
// §4.3. Semantics for the pieces spec.md leaves under-specified (holiday
// table entries, abbreviation rules) are grounded on
// thai_rendering.h/.cpp from original_source/, the pre-distillation
// reference implementation.
package thai

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ThaiCharsetTag is the leading byte the DAB profile encoder prepends to
// every Thai-tagged caption's byte stream, per spec.md §4.3.
const ThaiCharsetTag byte = 0x0E

// QuestionMarkByte is the lossy fallback for any code point outside the
// mapped ranges.
const QuestionMarkByte byte = 0x3F

const (
	consonantStartUTF, consonantEndUTF = 0x0E01, 0x0E2E
	vowelStartUTF, vowelEndUTF         = 0x0E30, 0x0E4F
	toneStartUTF, toneEndUTF           = 0x0E48, 0x0E4B
	digitStartUTF, digitEndUTF         = 0x0E50, 0x0E59
	symbolStartUTF, symbolEndUTF       = 0x0E5A, 0x0E5B

	consonantStartByte = 0x01
	vowelStartByte     = 0x30
	toneStartByte      = 0x48
	digitStartByte     = 0x50
	symbolStartByte    = 0x5A
)

// codepointToDAB maps a single Unicode code point to its DAB Thai-profile
// byte, or QuestionMarkByte if it falls outside every mapped range and
// is not plain ASCII. Tone marks and vowels overlap in Unicode range
// (both fall within 0x0E30-0x0E4F) so tone marks are checked first,
// exactly as the ranges are listed in spec.md §4.3.
func codepointToDAB(r rune) byte {
	switch {
	case r < 0x80:
		return byte(r)
	case r >= toneStartUTF && r <= toneEndUTF:
		return toneStartByte + byte(r-toneStartUTF)
	case r >= consonantStartUTF && r <= consonantEndUTF:
		return consonantStartByte + byte(r-consonantStartUTF)
	case r >= vowelStartUTF && r <= vowelEndUTF:
		return vowelStartByte + byte(r-vowelStartUTF)
	case r >= digitStartUTF && r <= digitEndUTF:
		return digitStartByte + byte(r-digitStartUTF)
	case r >= symbolStartUTF && r <= symbolEndUTF:
		return symbolStartByte + byte(r-symbolStartUTF)
	default:
		return QuestionMarkByte
	}
}

// dabToCodepoint is the inverse of codepointToDAB. The Thai ranges share
// byte values with ASCII, so a byte inside a Thai range always decodes to
// the Thai character; only ASCII bytes outside those ranges (0x00, 0x2F,
// 0x5C-0x7F) decode to themselves. It is necessarily lossy at 0x3F, which
// may have originally been an out-of-range code point, U+0E3F or a
// literal ASCII '?' — spec.md §8 excludes that boundary from the
// round-trip property by design.
func dabToCodepoint(b byte) rune {
	switch {
	case b == QuestionMarkByte:
		return '?'
	case b >= toneStartByte && b <= toneStartByte+(toneEndUTF-toneStartUTF):
		return rune(toneStartUTF + int(b-toneStartByte))
	case b >= consonantStartByte && b <= consonantStartByte+(consonantEndUTF-consonantStartUTF):
		return rune(consonantStartUTF + int(b-consonantStartByte))
	case b >= vowelStartByte && b <= vowelStartByte+(vowelEndUTF-vowelStartUTF):
		return rune(vowelStartUTF + int(b-vowelStartByte))
	case b >= digitStartByte && b <= digitStartByte+(digitEndUTF-digitStartUTF):
		return rune(digitStartUTF + int(b-digitStartByte))
	case b >= symbolStartByte && b <= symbolStartByte+(symbolEndUTF-symbolStartUTF):
		return rune(symbolStartUTF + int(b-symbolStartByte))
	case b < 0x80:
		return rune(b)
	default:
		return '?'
	}
}

// Normalize applies Unicode NFC normalization before encoding so
// combining sequences produced by different input methods (e.g. a tone
// mark typed as a separate keystroke vs. a precomposed form) map to the
// same byte sequence. Thai script has no precomposed forms in Unicode,
// so this is mostly a no-op for pure-Thai text, but it protects mixed
// Thai/Latin captions from producing inconsistent content hashes.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Encode converts UTF-8 text to the DAB Thai-profile byte stream,
// prefixed with the 0x0E charset tag, per spec.md §4.3. The mapping is
// total: every rune produces exactly one output byte.
func Encode(text string) []byte {
	normalized := Normalize(text)
	out := make([]byte, 0, len(normalized)+1)
	out = append(out, ThaiCharsetTag)
	for _, r := range normalized {
		out = append(out, codepointToDAB(r))
	}
	return out
}

// EncodeBody is Encode without the leading charset tag, used where a
// caller manages the tag separately (e.g. computing byte-budget checks
// against the body alone).
func EncodeBody(text string) []byte {
	normalized := Normalize(text)
	out := make([]byte, 0, len(normalized))
	for _, r := range normalized {
		out = append(out, codepointToDAB(r))
	}
	return out
}

// Decode is the inverse of Encode, tolerating the presence or absence of
// the leading charset tag so it can round-trip either Encode's or
// EncodeBody's output. Thai text decodes back to itself; an ASCII
// character whose byte lies in a Thai range (space, digits, upper-case
// letters and most punctuation) decodes as the Thai character sharing
// that byte, so for mixed text only the byte stream round-trips.
func Decode(data []byte) string {
	if len(data) > 0 && data[0] == ThaiCharsetTag {
		data = data[1:]
	}
	var b strings.Builder
	b.Grow(len(data))
	for _, by := range data {
		b.WriteRune(dabToCodepoint(by))
	}
	return b.String()
}

// IsThai reports whether text contains any code point in the Thai script
// ranges spec.md §4.3 defines, used to derive Caption.IsThai.
func IsThai(text string) bool {
	for _, r := range text {
		if (r >= consonantStartUTF && r <= consonantEndUTF) ||
			(r >= vowelStartUTF && r <= symbolEndUTF) {
			return true
		}
	}
	return false
}
