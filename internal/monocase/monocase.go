// Package monocase implements the single-valued case fold the matcher uses
// on its hot path: every rune folds to exactly one lowercase rune. Full
// Unicode lowercasing (SpecialCasing) maps Turkish İ to two runes, "i" +
// U+0307 COMBINING DOT ABOVE; this fold keeps only the 'i'. Grounded on
// `_examples/original_source/ib-matcher/src/unicode/case/mod.rs`'s
// CharToMonoLowercase trait.
package monocase

import "unicode"

// Fold returns the single-rune lowercase form of r. For the one multi-rune
// exception in Unicode's case folding (Turkish İ, U+0130, which lowercases
// to "i" + U+0307 COMBINING DOT ABOVE), this returns plain 'i' and drops
// the combining mark, matching the Rust original's documented behavior.
func Fold(r rune) rune {
	if r == 'İ' {
		return 'i'
	}
	lower := unicode.ToLower(r)
	return lower
}

// FoldString applies Fold to every rune of s.
func FoldString(s string) string {
	rs := []rune(s)
	for i, r := range rs {
		rs[i] = Fold(r)
	}
	return string(rs)
}
