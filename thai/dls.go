package thai

import (
	"strings"
)

// englishAbbreviations mirrors ThaiDLSOptimizer::UseCommonAbbreviations
// from the pre-distillation reference implementation: a small table of
// common broadcast-caption words shortened before resorting to
// hard truncation.
var englishAbbreviations = []struct {
	from, to string
}{
	{"Street", "St"},
	{"Avenue", "Ave"},
	{"Boulevard", "Blvd"},
	{"Number", "No"},
	{"Weather", "Wx"},
	{"Temperature", "Temp"},
	{"Government", "Govt"},
	{"Department", "Dept"},
	{"Association", "Assoc"},
	{"International", "Intl"},
	{"Kilometers", "km"},
	{"Kilometres", "km"},
	{"Degrees", "deg"},
	{"and", "&"},
}

// thaiAbbreviations mirrors the same table for the small set of Thai
// broadcast vocabulary common enough to be worth shortening (from
// thai_rendering.cpp's ExpandAbbreviations/UseCommonAbbreviations pair,
// used here in the compressing direction only).
var thaiAbbreviations = []struct {
	from, to string
}{
	{"กิโลเมตร", "กม."},
	{"อุณหภูมิ", "อุณหภูมิ"}, // no shorter common form; kept for parity with the reference table
	{"จังหวัด", "จ."},
	{"ถนน", "ถ."},
}

func abbreviate(text string, isThai bool) string {
	table := englishAbbreviations
	if isThai {
		table = thaiAbbreviations
	}
	out := text
	for _, rule := range table {
		out = strings.ReplaceAll(out, rule.from, rule.to)
	}
	return out
}

// encodedLen returns the byte length of text in the target wire
// encoding: Thai-profile bytes (body only, no tag) when isThai, plain
// UTF-8 bytes otherwise. The queue's max_text_length criterion is
// checked against this, not len(text), per spec.md §4.1 criterion 6.
func encodedLen(text string, isThai bool) int {
	if isThai {
		return len(EncodeBody(text))
	}
	return len(text)
}

// FormatForDLS implements the DLS formatter of spec.md §4.3: collapse
// whitespace, trim, abbreviate if still over budget, and if still over
// budget after that, truncate at a word boundary within [0.7*budget,
// budget minus the ellipsis's encoded length] (budget-3 in UTF-8,
// budget-1 in the Thai profile) and append an ellipsis.
func FormatForDLS(text string, budgetBytes int, isThai bool) string {
	out := CollapseWhitespace(text)
	if encodedLen(out, isThai) <= budgetBytes {
		return out
	}

	out = abbreviate(out, isThai)
	if encodedLen(out, isThai) <= budgetBytes {
		return out
	}

	return truncateAtWordBoundary(out, budgetBytes, isThai)
}

// CollapseWhitespace collapses runs of whitespace to a single space and
// trims — duplicated here (rather than imported from sanitize) to keep
// this package free of a dependency on the security layer; the
// operation itself is identical.
func CollapseWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

const ellipsis = "…"

// truncateAtWordBoundary cuts text at the last space inside
// [0.7*budget, budget-len(ellipsis-in-target-encoding)] and appends an
// ellipsis, per spec.md §4.3. If no space falls in that window it cuts
// at the hard byte boundary instead (still leaving room for the
// ellipsis), matching the boundary case in spec.md §8: "one byte more
// triggers the optimizer" rather than a silent overflow.
func truncateAtWordBoundary(text string, budgetBytes int, isThai bool) string {
	ellipsisLen := encodedLen(ellipsis, isThai)
	maxBody := budgetBytes - ellipsisLen
	if maxBody < 0 {
		maxBody = 0
	}
	minBody := int(0.7 * float64(budgetBytes))
	if minBody > maxBody {
		minBody = maxBody
	}

	runes := []rune(text)
	best := -1
	acc := 0
	for i, r := range runes {
		w := runeEncodedLen(r, isThai)
		if acc+w > maxBody {
			break
		}
		acc += w
		if r == ' ' && acc >= minBody {
			best = i
		}
	}

	var cut string
	if best >= 0 {
		cut = strings.TrimRight(string(runes[:best]), " ")
	} else {
		cut = hardCutToBytes(runes, maxBody, isThai)
	}
	return cut + ellipsis
}

func runeEncodedLen(r rune, isThai bool) int {
	if isThai {
		return 1 // every Thai-profile byte maps 1:1 from one rune
	}
	return len(string(r))
}

func hardCutToBytes(runes []rune, maxBytes int, isThai bool) string {
	acc := 0
	end := 0
	for i, r := range runes {
		w := runeEncodedLen(r, isThai)
		if acc+w > maxBytes {
			break
		}
		acc += w
		end = i + 1
	}
	return strings.TrimRight(string(runes[:end]), " ")
}
