package matcher

import (
	"unicode/utf8"

	"github.com/Chaoses-Ib/IbPinyinLib/internal/ahocorasick"
)

// asciiMatcher is the C6 fast path: a single-pattern byte automaton used
// whenever the (postmodifier-stripped) pattern is itself ASCII and plain
// matching is enabled. Grounded on
// `_examples/original_source/ib-matcher/src/matcher/ascii.rs`'s `Fail`/`Ac`
// variants; the regex-backed third variant described there is not wired
// here (spec.md §4.5 keeps it only "as a reserved alternative").
type asciiMatcher struct {
	automaton     *ahocorasick.Automaton[byte] // nil means Fail: never matches
	startsWith    bool
	endsWith      bool
	maxPatternLen int
}

func asciiFoldByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func isASCIIRune(r rune) bool {
	return r < utf8.RuneSelf
}

// newASCIIMatcher builds the fast path, or the Fail variant if pattern is
// not ASCII.
func newASCIIMatcher(pattern string, caseInsensitive, startsWith, endsWith bool) *asciiMatcher {
	if !isASCIIString(pattern) {
		return &asciiMatcher{}
	}
	var fold func(byte) byte
	if caseInsensitive {
		fold = asciiFoldByte
	}
	automaton := ahocorasick.BuildFold([][]byte{[]byte(pattern)}, ahocorasick.LeftmostLongest, fold)
	return &asciiMatcher{
		automaton:     automaton,
		startsWith:    startsWith,
		endsWith:      endsWith,
		maxPatternLen: len(pattern),
	}
}

// find reports the leftmost match (subject to startsWith/endsWith), or
// false for the Fail variant.
func (m *asciiMatcher) find(haystack []byte) (Match, bool) {
	if m.automaton == nil {
		return Match{}, false
	}
	base := 0
	hs := haystack
	if !m.startsWith && m.endsWith && len(haystack) > m.maxPatternLen {
		base = len(haystack) - m.maxPatternLen
		hs = haystack[base:]
	}
	got := m.automaton.FindAt(hs, 0, m.startsWith)
	if got == nil {
		return Match{}, false
	}
	match := Match{Start: got.Start + base, End: got.End + base}
	if m.endsWith && match.End != len(haystack) {
		return Match{}, false
	}
	return match, true
}

func (m *asciiMatcher) isMatch(haystack []byte) bool {
	_, ok := m.find(haystack)
	return ok
}
