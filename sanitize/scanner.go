package sanitize

import (
	"bytes"
)

// ScanResult mirrors SecurityValidation in security_utils.h: a risk score
// clamped to [0,1] plus the safety verdict spec.md §4.5 defines.
type ScanResult struct {
	IsSafe    bool
	RiskScore float64
	Reasons   []string
}

var maliciousPatterns = [][]byte{
	[]byte("<script"),
	[]byte("javascript:"),
	[]byte("vbscript:"),
	[]byte("data:text/html"),
	[]byte("<?php"),
	[]byte("<?="),
	[]byte("<!--#"),
}

const maxFileSizeWarn = 50 * 1024 * 1024 // 50 MiB, spec.md §4.5

// ContentScanner scans a candidate file body for the literal malicious
// patterns spec.md §4.5 enumerates, after magic-byte validation has
// already run (this scanner does not itself validate image formats).
type ContentScanner struct {
	extraPatterns [][]byte
}

func NewContentScanner() *ContentScanner { return &ContentScanner{} }

func (s *ContentScanner) AddMaliciousPattern(pattern string) {
	s.extraPatterns = append(s.extraPatterns, []byte(pattern))
}

// Scan reports risk = 0 when nothing suspicious is found, +0.8 on a
// pattern hit (is_safe=false), +0.2 (non-fatal) when the body exceeds 50
// MiB, clamped to [0,1] as spec.md §4.5 requires.
func (s *ContentScanner) Scan(data []byte) ScanResult {
	res := ScanResult{IsSafe: true}
	lower := bytes.ToLower(data)

	for _, p := range maliciousPatterns {
		if bytes.Contains(lower, bytes.ToLower(p)) {
			res.IsSafe = false
			res.RiskScore += 0.8
			res.Reasons = append(res.Reasons, "malicious pattern: "+string(p))
			break
		}
	}
	for _, p := range s.extraPatterns {
		if bytes.Contains(lower, bytes.ToLower(p)) {
			res.IsSafe = false
			res.RiskScore += 0.8
			res.Reasons = append(res.Reasons, "malicious pattern: "+string(p))
			break
		}
	}

	if len(data) > maxFileSizeWarn {
		res.RiskScore += 0.2
		res.Reasons = append(res.Reasons, "file exceeds 50 MiB")
	}

	if res.RiskScore > 1 {
		res.RiskScore = 1
	}
	return res
}
