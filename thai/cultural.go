package thai

import "strings"

// These curated token sets are deliberately small placeholders grounded
// on CulturalContentAnalyzer's royal_vocabulary_/religious_vocabulary_/
// formal_vocabulary_ members in thai_rendering.h: the reference
// implementation loads its real lists from a config file at runtime
// (LoadCulturalRules), which is out of scope here per spec.md's
// "configuration file loading" non-goal. A production deployment is
// expected to extend these via AddInappropriate/AddRoyal/AddReligious.
var (
	inappropriateTokens = []string{"ควย", "เหี้ย", "damn", "shit"}
	royalTokens         = []string{"พระบาทสมเด็จ", "พระราชินี", "in-royal-context"}
	religiousTokens     = []string{"พระพุทธเจ้า", "พระเจ้า", "วัด"}
)

// CulturalAnalyzer scans outgoing Thai text for the three curated token
// sets spec.md §4.3 lists. It is advisory-only by construction: it never
// mutates the text, matching "the verdict never mutates the text
// silently."
type CulturalAnalyzer struct {
	inappropriate []string
	royal         []string
	religious     []string
}

func NewCulturalAnalyzer() *CulturalAnalyzer {
	return &CulturalAnalyzer{
		inappropriate: append([]string(nil), inappropriateTokens...),
		royal:         append([]string(nil), royalTokens...),
		religious:     append([]string(nil), religiousTokens...),
	}
}

func (a *CulturalAnalyzer) AddInappropriate(tokens ...string) { a.inappropriate = append(a.inappropriate, tokens...) }
func (a *CulturalAnalyzer) AddRoyal(tokens ...string)         { a.royal = append(a.royal, tokens...) }
func (a *CulturalAnalyzer) AddReligious(tokens ...string)     { a.religious = append(a.religious, tokens...) }

// CulturalValidation is the verdict returned by Validate, mirroring
// CulturalValidation in thai_rendering.h.
type CulturalValidation struct {
	IsAppropriate     bool
	ContainsReligious bool
	ContainsRoyal     bool
	SensitivityScore  float64
	Suggestions       []string
}

// Validate scans text against the three curated sets. Sensitivity score
// starts at 1.0, drops 0.2 per inappropriate hit, floors at 0. Royal
// references add a formatting-review suggestion but do not by themselves
// lower the appropriateness verdict, per spec.md §4.3.
func (a *CulturalAnalyzer) Validate(text string) CulturalValidation {
	v := CulturalValidation{IsAppropriate: true, SensitivityScore: 1.0}
	lower := strings.ToLower(text)

	for _, t := range a.inappropriate {
		if strings.Contains(lower, strings.ToLower(t)) {
			v.IsAppropriate = false
			v.SensitivityScore -= 0.2
		}
	}
	if v.SensitivityScore < 0 {
		v.SensitivityScore = 0
	}

	for _, t := range a.royal {
		if strings.Contains(text, t) {
			v.ContainsRoyal = true
			v.Suggestions = append(v.Suggestions, "contains royal reference: review formatting per broadcast guidelines")
			break
		}
	}

	for _, t := range a.religious {
		if strings.Contains(text, t) {
			v.ContainsReligious = true
			break
		}
	}

	return v
}
