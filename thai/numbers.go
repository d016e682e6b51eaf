package thai

import (
	"fmt"
	"strconv"
	"strings"
)

// NumberFormat selects one of the three number-formatting modes spec.md
// §4.3 names.
type NumberFormat uint8

const (
	NumberWestern NumberFormat = iota
	NumberThaiDigits
	NumberThaiWords
)

var thaiDigitRunes = []rune{'๐', '๑', '๒', '๓', '๔', '๕', '๖', '๗', '๘', '๙'}

// ToThaiDigits maps ASCII 0-9 to U+0E50..U+0E59, per spec.md §4.3.
func ToThaiDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(thaiDigitRunes[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// thaiWordsUnder100 is the small 0..99 lexicon spec.md §4.3 calls for,
// grounded on ThaiLanguageProcessor::FormatNumber's THAI_WORDS mode.
// Beyond 99 the spec explicitly permits falling back to Thai digits.
var thaiOnes = []string{"ศูนย์", "หนึ่ง", "สอง", "สาม", "สี่", "ห้า", "หก", "เจ็ด", "แปด", "เก้า"}
var thaiTens = []string{"", "สิบ", "ยี่สิบ", "สามสิบ", "สี่สิบ", "ห้าสิบ", "หกสิบ", "เจ็ดสิบ", "แปดสิบ", "เก้าสิบ"}

func thaiWordsUnder100(n int) string {
	if n < 10 {
		return thaiOnes[n]
	}
	tens, ones := n/10, n%10
	word := thaiTens[tens]
	if tens == 1 {
		word = "สิบ" // "สิบเอ็ด" style: 10 itself has no leading "หนึ่ง"
	}
	switch {
	case ones == 0:
		return word
	case ones == 1 && tens != 0:
		return word + "เอ็ด"
	default:
		return word + thaiOnes[ones]
	}
}

// FormatNumber renders n per the requested mode. THAI_WORDS falls back
// to Thai digits for |n| >= 100 or n < 0, as spec.md §4.3 permits
// ("falling back to Thai digits beyond").
func FormatNumber(n int, format NumberFormat) string {
	switch format {
	case NumberThaiDigits:
		return ToThaiDigits(strconv.Itoa(n))
	case NumberThaiWords:
		if n < 0 || n >= 100 {
			return ToThaiDigits(strconv.Itoa(n))
		}
		return thaiWordsUnder100(n)
	default:
		return strconv.Itoa(n)
	}
}

// FormatCurrency renders a Thai-baht amount, recovered from
// ThaiLanguageProcessor::FormatCurrency in thai_rendering.h (a feature
// spec.md's distillation dropped; see SPEC_FULL.md §4).
func FormatCurrency(amount float64, useThaiDigits bool) string {
	s := fmt.Sprintf("%.2f", amount)
	if useThaiDigits {
		s = ToThaiDigits(s)
	}
	return s + " บาท"
}
