// Package hashing provides the deterministic content-hash used by the
// caption queue and the slideshow carousel for dedup, per spec.md §3
// ("content-hash deterministic over normalized text"). It is backed by
// xxhash rather than a cryptographic digest: dedup only needs a fast,
// stable, effectively-collision-free fingerprint, not collision
// resistance against an adversary.
package hashing

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ContentHashText collapses whitespace the same way the DLS formatter
// does, additionally lower-cases the text (so "Now  playing:  Song A" and
// "now playing: song a" dedup as the same content), and hashes the
// result.
func ContentHashText(text string) uint64 {
	return xxhash.Sum64String(normalizeForHash(text))
}

// ContentHashBytes hashes raw bytes, used by the carousel over transcoded
// image bytes (spec.md §4.2 step 5).
func ContentHashBytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

func normalizeForHash(text string) string {
	fields := strings.Fields(text)
	return strings.ToLower(strings.Join(fields, " "))
}
