package matcher

import (
	"strings"

	"github.com/Chaoses-Ib/IbPinyinLib/internal/monocase"
)

// PatternChar is one frozen position of a compiled Pattern: the original
// codepoint, its lowercase fold, and the remaining pattern from this
// position onward in both cases (so sub-matching never has to re-slice
// rune-by-rune at query time).
type PatternChar struct {
	C         rune
	Lower     rune
	Tail      string
	LowerTail string
}

// Pattern is a frozen, already-folded query string. Grounded on
// `_examples/original_source/ib-matcher/src/pattern.rs`.
type Pattern []PatternChar

// ParsePattern folds pattern and freezes it into a Pattern.
func ParsePattern(pattern string) Pattern {
	runes := []rune(pattern)
	lower := []rune(monocase.FoldString(pattern))
	if len(lower) != len(runes) {
		// monocase.Fold is single-valued by construction; guard regardless.
		lower = runes
	}
	p := make(Pattern, len(runes))
	for i := range runes {
		p[i] = PatternChar{
			C:         runes[i],
			Lower:     lower[i],
			Tail:      string(runes[i:]),
			LowerTail: string(lower[i:]),
		}
	}
	return p
}

// LangOnly narrows a matcher's enabled strategies, as parsed from a pattern
// postmodifier.
type LangOnly int

const (
	// LangAny leaves plain, pinyin, and romaji as configured.
	LangAny LangOnly = iota
	// LangPlainOnly disables pinyin and romaji.
	LangPlainOnly
	// LangPinyinOnly disables plain and romaji.
	LangPinyinOnly
	// LangRomajiOnly disables plain and pinyin.
	LangRomajiOnly
)

// ParsePostmodifier strips a trailing `;en`, `;py`, or `;rm` suffix from
// pattern and reports the corresponding language restriction. Only the last
// recognized suffix is stripped (postmodifiers are not stacked). Grounded on
// `_examples/original_source/ib-matcher/src/syntax/mod.rs`.
func ParsePostmodifier(pattern string) (string, LangOnly) {
	suffixes := []struct {
		suffix string
		lang   LangOnly
	}{
		{";en", LangPlainOnly},
		{";py", LangPinyinOnly},
		{";rm", LangRomajiOnly},
	}
	for _, s := range suffixes {
		if strings.HasSuffix(pattern, s.suffix) {
			return strings.TrimSuffix(pattern, s.suffix), s.lang
		}
	}
	return pattern, LangAny
}
