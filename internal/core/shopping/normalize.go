package shopping

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize produces the matching key for an ingredient label: trimmed,
// lowercased, Unicode-decomposed with combining diacritical marks removed.
// Idempotent, so keys can be re-normalized safely.
func Normalize(label string) string {
	lowered := strings.ToLower(strings.TrimSpace(label))
	// Chained transformers carry internal state, so build one per call.
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(stripper, lowered)
	if err != nil {
		return lowered
	}
	return stripped
}
