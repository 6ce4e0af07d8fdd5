// Package matcher implements the substring matcher over plain ASCII,
// pinyin, and Hepburn romaji, with an optional pattern analyzer and an
// encoding-generic haystack abstraction. Grounded throughout on
// `_examples/original_source/ib-matcher/src/matcher/mod.rs`.
package matcher

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Chaoses-Ib/IbPinyinLib/internal/monocase"
	"github.com/Chaoses-Ib/IbPinyinLib/pinyin"
	"github.com/Chaoses-Ib/IbPinyinLib/romaji"
)

// langMask tracks which of the two alternating "language" branches (pinyin,
// romaji) a sub_test_pinyin recursion is still permitted to use. Plain
// matching is not part of this mask: a literal ASCII character match always
// resets both branches back to fully permitted, mix_lang or not.
type langMask uint8

const (
	langPinyin langMask = 1 << iota
	langRomaji
)

func (l langMask) has(f langMask) bool { return l&f != 0 }

// Input carries the haystack plus a hint that the caller already knows the
// current position cannot be a valid starts_with anchor (e.g. because it is
// mid-way through a larger scan).
type Input struct {
	Haystack EncodedString
	NoStart  bool
}

// NewInput wraps a plain Go string as a UTF-8 Input.
func NewInput(s string) Input {
	return Input{Haystack: StringHaystack(s)}
}

// Matcher is the immutable, query-only result of a Builder. It is safe for
// concurrent use by multiple goroutines.
type Matcher struct {
	pattern Pattern

	plain                bool
	plainCaseInsensitive bool

	pinyinData      *pinyin.Data
	pinyinNotations pinyin.Notation

	romajiTokenizer *romaji.Tokenizer
	romajiOn        bool

	startsWith       bool
	endsWith         bool
	mixLang          bool
	isPatternPartial bool

	minHaystackLen int
	ascii          *asciiMatcher
}

// Builder configures and constructs a Matcher. Every setter returns the
// receiver so calls chain, mirroring the functional-options builder style
// used throughout this repository's ambient stack.
type Builder struct {
	pattern              string
	plainEnabled         bool
	plainCaseInsensitive bool
	pinyinData           *pinyin.Data
	pinyinNotations      pinyin.Notation
	romajiTokenizer      *romaji.Tokenizer
	analyze              bool
	isPatternPartial     bool
	startsWith           bool
	endsWith             bool
	mixLang              bool
}

// New starts a Builder for pattern with plain, case-insensitive matching
// enabled and every other strategy off.
func New(pattern string) *Builder {
	return &Builder{pattern: pattern, plainEnabled: true, plainCaseInsensitive: true}
}

// Plain toggles literal ASCII-letter matching and its case sensitivity.
func (b *Builder) Plain(enabled, caseInsensitive bool) *Builder {
	b.plainEnabled = enabled
	b.plainCaseInsensitive = caseInsensitive
	return b
}

// Pinyin enables pinyin matching over data, considering only notations.
func (b *Builder) Pinyin(data *pinyin.Data, notations pinyin.Notation) *Builder {
	b.pinyinData = data
	b.pinyinNotations = notations
	return b
}

// Romaji enables romaji matching via tok.
func (b *Builder) Romaji(tok *romaji.Tokenizer) *Builder {
	b.romajiTokenizer = tok
	return b
}

// Analyze toggles the traversal-based Pattern Analyzer.
func (b *Builder) Analyze(v bool) *Builder { b.analyze = v; return b }

// PatternPartial allows a reading at the tail of the pattern to match a
// proper prefix of that reading (or vice versa).
func (b *Builder) PatternPartial(v bool) *Builder { b.isPatternPartial = v; return b }

// StartsWith anchors matching to the beginning of the haystack.
func (b *Builder) StartsWith(v bool) *Builder { b.startsWith = v; return b }

// EndsWith requires a match to reach the end of the haystack.
func (b *Builder) EndsWith(v bool) *Builder { b.endsWith = v; return b }

// MixLang allows a single match to alternate between pinyin and romaji.
func (b *Builder) MixLang(v bool) *Builder { b.mixLang = v; return b }

// Build validates the configuration and produces a Matcher.
func (b *Builder) Build() (*Matcher, error) {
	stripped, lang := ParsePostmodifier(b.pattern)

	plain := b.plainEnabled
	knownNotations := b.pinyinNotations.Intersection(pinyin.All)
	pinyinOn := b.pinyinData != nil && !knownNotations.IsEmpty()
	romajiOn := b.romajiTokenizer != nil

	switch lang {
	case LangPlainOnly:
		pinyinOn, romajiOn = false, false
	case LangPinyinOnly:
		plain, romajiOn = false, false
	case LangRomajiOnly:
		plain, pinyinOn = false, false
	}

	if !plain && !pinyinOn && !romajiOn {
		return nil, fmt.Errorf("%w: pattern %q", ErrNoLanguageEnabled, b.pattern)
	}

	pattern := ParsePattern(stripped)

	notations := pinyin.Notation(0)
	if pinyinOn {
		notations = knownNotations
	}

	var data *pinyin.Data
	if pinyinOn {
		data = b.pinyinData
	}

	result := Analyze(data, pattern, notations, romajiOn, b.isPatternPartial, b.analyze)

	var ascii *asciiMatcher
	if plain && isASCIIString(stripped) {
		ascii = newASCIIMatcher(stripped, b.plainCaseInsensitive, b.startsWith, b.endsWith)
	}

	m := &Matcher{
		pattern:              pattern,
		plain:                plain,
		plainCaseInsensitive: b.plainCaseInsensitive,
		pinyinData:           data,
		pinyinNotations:      result.UsedNotations,
		romajiTokenizer:      b.romajiTokenizer,
		romajiOn:             romajiOn,
		startsWith:           b.startsWith,
		endsWith:             b.endsWith,
		mixLang:              b.mixLang,
		isPatternPartial:     b.isPatternPartial,
		minHaystackLen:       result.MinHaystackLen,
		ascii:                ascii,
	}
	logger.Debug().Str("pattern", stripped).Int("min_haystack_len", m.minHaystackLen).
		Str("notations", m.pinyinNotations.String()).Msg("matcher built")
	return m, nil
}

// fullLang reports every language branch currently enabled on m.
func (m *Matcher) fullLang() langMask {
	var l langMask
	if m.pinyinData != nil && !m.pinyinNotations.IsEmpty() {
		l |= langPinyin
	}
	if m.romajiOn {
		l |= langRomaji
	}
	return l
}

// IsMatch reports whether pattern occurs in input, honoring starts_with.
func (m *Matcher) IsMatch(input Input) bool {
	if len(m.pattern) == 0 {
		return true
	}
	if m.startsWith && input.NoStart {
		return false
	}
	if m.ascii != nil && input.Haystack.IsASCII() {
		return m.ascii.isMatch(input.Haystack.Bytes())
	}
	_, ok := m.Find(input)
	return ok
}

// Test matches input only at its very start.
func (m *Matcher) Test(input Input) (Match, bool) {
	if len(m.pattern) == 0 {
		return Match{Start: 0, End: 0}, true
	}
	if input.Haystack.ByteLen() < m.minHaystackLen {
		return Match{}, false
	}
	sm, ok := m.subTest(m.pattern, input.Haystack, 0, m.fullLang())
	if !ok {
		return Match{}, false
	}
	return Match{Start: 0, End: sm.matchedLen, IsPatternPartial: sm.isPatternPartial}, true
}

// Find returns the first match in input, or false.
func (m *Matcher) Find(input Input) (Match, bool) {
	if len(m.pattern) == 0 {
		return Match{Start: 0, End: 0}, true
	}
	if m.startsWith && input.NoStart {
		return Match{}, false
	}
	if m.ascii != nil && input.Haystack.IsASCII() {
		return m.ascii.find(input.Haystack.Bytes())
	}

	hay := input.Haystack
	offset := 0
	for {
		if hay.ByteLen() < m.minHaystackLen {
			return Match{}, false
		}
		if sm, ok := m.subTest(m.pattern, hay, 0, m.fullLang()); ok {
			return Match{Start: offset, End: offset + sm.matchedLen, IsPatternPartial: sm.isPatternPartial}, true
		}
		if m.startsWith {
			return Match{}, false
		}
		_, n, rest, ok := hay.Next()
		if !ok {
			return Match{}, false
		}
		offset += n
		hay = rest
	}
}

// subTest is the heart of the engine: it tries, in order, a literal plain
// match, then (if hc is non-ASCII) the romaji and pinyin branches, exactly
// per spec.md §4.4.
func (m *Matcher) subTest(pattern Pattern, hay EncodedString, matchedLen int, lang langMask) (subMatch, bool) {
	if len(pattern) == 0 {
		if m.endsWith && hay.ByteLen() != 0 {
			return subMatch{}, false
		}
		return subMatch{matchedLen: matchedLen}, true
	}

	hc, hcl, hrest, ok := hay.Next()
	if !ok {
		return subMatch{}, false
	}

	pc := pattern[0]
	if m.plain {
		target, h := pc.C, hc
		if m.plainCaseInsensitive {
			target, h = pc.Lower, monocase.Fold(hc)
		}
		if h == target {
			return m.subTest(pattern[1:], hrest, matchedLen+hcl, m.fullLang())
		}
	}

	if isASCIIRune(hc) {
		return subMatch{}, false
	}

	if m.romajiOn && lang.has(langRomaji) {
		if sm, ok := m.tryRomaji(pattern, hay, matchedLen); ok {
			return sm, true
		}
	}

	if m.pinyinData != nil && !m.pinyinNotations.IsEmpty() && lang.has(langPinyin) {
		if sm, ok := m.tryPinyin(pattern, hc, hcl, hrest, matchedLen); ok {
			return sm, true
		}
	}

	return subMatch{}, false
}

// tryRomaji calls the romaji tokenizer anchored at hay's current position
// and recurses into subTestPinyin for every candidate reading.
func (m *Matcher) tryRomaji(pattern Pattern, hay EncodedString, matchedLen int) (subMatch, bool) {
	raw := string(hay.Bytes())
	var winner subMatch
	found := false
	_, _ = m.romajiTokenizer.RomanizeAndTryForEach(raw, func(c romaji.Candidate) (bool, error) {
		consumed := 0
		rest := hay
		for consumed < c.Len {
			_, n, next, ok := rest.Next()
			if !ok {
				break
			}
			consumed += n
			rest = next
		}
		matched, sm, ok := m.subTestPinyin(pattern, rest, matchedLen+consumed, c.Romaji, langRomaji)
		_ = matched
		if ok {
			winner = sm
			found = true
			return true, nil
		}
		return false, nil
	})
	return winner, found
}

// tryPinyin iterates every reading of hc, and for each, the prefix group
// (break on a definitive reject) then the independent group (always
// continue), per spec.md §4.4's ordering rules.
func (m *Matcher) tryPinyin(pattern Pattern, hc rune, hcl int, hrest EncodedString, matchedLen int) (subMatch, bool) {
	var winner subMatch
	found := false
	prefixGroup, independent := m.pinyinNotations.PrefixGroupAndIndependent()

	pinyin.GetPinyinsAndTryForEach(m.pinyinData, hc, func(p pinyin.Pinyin) (bool, struct{}) {
		for _, n := range prefixGroup {
			str, ok := p.Notation(n)
			if !ok {
				continue
			}
			matched, sm, ok2 := m.subTestPinyin(pattern, hrest, matchedLen+hcl, str, langPinyin)
			if ok2 {
				winner, found = sm, true
				return true, struct{}{}
			}
			if !matched {
				break
			}
		}
		for _, n := range independent {
			str, ok := p.Notation(n)
			if !ok {
				continue
			}
			_, sm, ok2 := m.subTestPinyin(pattern, hrest, matchedLen+hcl, str, langPinyin)
			if ok2 {
				winner, found = sm, true
				return true, struct{}{}
			}
		}
		return false, struct{}{}
	})
	return winner, found
}

// subTestPinyin tests one resolved notation/romaji reading string against
// the pattern's remaining (lowercase) tail. It reports (readingMatched,
// subMatch, ok): readingMatched=false with ok=false signals "reject this
// reading and everything sharing its prefix" (used by tryPinyin's prefix
// group to decide whether to break); readingMatched=true with ok=false
// means the reading itself lined up but a downstream step failed.
func (m *Matcher) subTestPinyin(pattern Pattern, hayNext EncodedString, matchedLenNext int, reading string, lang langMask) (bool, subMatch, bool) {
	if len(pattern) == 0 {
		return false, subMatch{}, false
	}
	tail := pattern[0].LowerTail

	if len(tail) < len(reading) {
		if m.isPatternPartial && strings.HasPrefix(reading, tail) {
			if m.endsWith && hayNext.ByteLen() != 0 {
				return true, subMatch{}, false
			}
			return true, subMatch{matchedLen: matchedLenNext, isPatternPartial: true}, true
		}
		return false, subMatch{}, false
	}

	if !strings.HasPrefix(tail, reading) {
		return false, subMatch{}, false
	}

	if len(tail) == len(reading) {
		if m.endsWith && hayNext.ByteLen() != 0 {
			return true, subMatch{}, false
		}
		return true, subMatch{matchedLen: matchedLenNext, isPatternPartial: false}, true
	}

	consumedChars := utf8.RuneCountInString(reading)
	nextLang := lang
	if m.mixLang {
		nextLang = m.fullLang()
	}
	sub, ok := m.subTest(pattern[consumedChars:], hayNext, matchedLenNext, nextLang)
	if !ok {
		return true, subMatch{}, false
	}
	return true, sub, true
}
