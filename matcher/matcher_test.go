package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chaoses-Ib/IbPinyinLib/pinyin"
	"github.com/Chaoses-Ib/IbPinyinLib/romaji"
)

func testPinyinData(t *testing.T) *pinyin.Data {
	t.Helper()
	return pinyin.New(pinyin.Ascii | pinyin.AsciiFirstLetter | pinyin.AsciiTone)
}

func testTokenizer(t *testing.T) *romaji.Tokenizer {
	t.Helper()
	return romaji.New(true, true, true)
}

// Scenario 1 (spec.md §8): the literal text conflates two distinct builders
// from the upstream test suite -- one exercising is_match over a CJK
// haystack via mixed AsciiFirstLetter/Ascii notations, the other exercising
// find over a plain ASCII haystack with no pinyin involved at all. Both are
// reproduced here rather than forced into a single matcher.
func TestScenario1IsMatchMixedNotations(t *testing.T) {
	data := testPinyinData(t)
	m, err := New("pysousuoeve").Pinyin(data, pinyin.Ascii|pinyin.AsciiFirstLetter).Build()
	require.NoError(t, err)
	assert.True(t, m.IsMatch(NewInput("拼音搜索Everything")))
}

func TestScenario1FindPlainAscii(t *testing.T) {
	data := testPinyinData(t)
	m, err := New("pysseve").Pinyin(data, pinyin.Ascii|pinyin.AsciiFirstLetter).Build()
	require.NoError(t, err)
	match, ok := m.Find(NewInput("pyssEverything"))
	require.True(t, ok)
	assert.Equal(t, 0, match.Start)
	assert.Equal(t, 7, match.End)
}

func TestScenario2AsciiAndUnicodeHaystack(t *testing.T) {
	data := testPinyinData(t)
	m, err := New("xing").Pinyin(data, pinyin.Ascii).Build()
	require.NoError(t, err)

	match, ok := m.Test(NewInput("行"))
	require.True(t, ok)
	assert.Equal(t, Match{Start: 0, End: 3}, match)

	match, ok = m.Test(NewInput("xing"))
	require.True(t, ok)
	assert.Equal(t, Match{Start: 0, End: 4}, match)

	match, ok = m.Test(NewInput("XiNG"))
	require.True(t, ok)
	assert.Equal(t, Match{Start: 0, End: 4}, match)

	_, ok = m.Test(NewInput(""))
	assert.False(t, ok)
}

func TestScenario3AsciiFirstLetterPreferredOverAscii(t *testing.T) {
	data := testPinyinData(t)
	m, err := New("ke").Pinyin(data, pinyin.Ascii|pinyin.AsciiFirstLetter).Build()
	require.NoError(t, err)
	match, ok := m.Test(NewInput("柯尔"))
	require.True(t, ok)
	assert.Equal(t, Match{Start: 0, End: 6}, match)
}

func TestScenario4RomajiPartialPattern(t *testing.T) {
	tok := testTokenizer(t)
	m, err := New("konosuba").Romaji(tok).PatternPartial(true).Build()
	require.NoError(t, err)
	match, ok := m.Find(NewInput("この素晴らしい世界に祝福を"))
	require.True(t, ok)
	assert.Equal(t, 0, match.Start)
	assert.Equal(t, 21, match.End)
	assert.True(t, match.IsPatternPartial)
}

func TestScenario4RomajiWithoutPartialDoesNotMatch(t *testing.T) {
	tok := testTokenizer(t)
	m, err := New("konosuba").Romaji(tok).Build()
	require.NoError(t, err)
	_, ok := m.Find(NewInput("この素晴らしい世界に祝福を"))
	assert.False(t, ok)
}

func TestScenario5MixLangPinyinRomajiAlternation(t *testing.T) {
	data := testPinyinData(t)
	tok := testTokenizer(t)
	m, err := New("hatsuneouda").
		Pinyin(data, pinyin.Ascii|pinyin.AsciiFirstLetter).
		Romaji(tok).
		MixLang(true).
		Analyze(true).
		Build()
	require.NoError(t, err)
	match, ok := m.Find(NewInput("初音殴打喜羊羊.gif"))
	require.True(t, ok)
	assert.Equal(t, 0, match.Start)
	assert.Equal(t, 12, match.End)
}

func TestScenario6EndsWith(t *testing.T) {
	data := testPinyinData(t)
	m, err := New("xing").Pinyin(data, pinyin.Ascii).EndsWith(true).Build()
	require.NoError(t, err)

	match, ok := m.Find(NewInput("1行"))
	require.True(t, ok)
	assert.Equal(t, 1, match.Start)
	assert.Equal(t, 4, match.End)

	_, ok = m.Find(NewInput("行1"))
	assert.False(t, ok)
}

func TestEmptyPatternAlwaysMatches(t *testing.T) {
	m, err := New("").StartsWith(true).EndsWith(true).Build()
	require.NoError(t, err)
	match, ok := m.Find(NewInput("anything"))
	require.True(t, ok)
	assert.Equal(t, Match{Start: 0, End: 0}, match)
}

func TestBuildErrorsWhenNoLanguageEnabled(t *testing.T) {
	_, err := New("pin;py").Plain(false, true).Build()
	require.Error(t, err)
}

func TestPostmodifierPinyinOnlyDisablesPlainAndRomaji(t *testing.T) {
	data := testPinyinData(t)
	m, err := New("pin;py").Pinyin(data, pinyin.Ascii).Build()
	require.NoError(t, err)
	// The literal ASCII substring "pin" must NOT match via plain, only via
	// pinyin (and it does not, since "pin;py" the pattern became just
	// "pin" with plain disabled -- so a haystack consisting of the raw
	// letters never plain-matches).
	assert.False(t, m.IsMatch(NewInput("spinning")))
	assert.True(t, m.IsMatch(NewInput("拼")))
}

func TestIsMatchSubstringEquivalenceForPlainAscii(t *testing.T) {
	m, err := New("Needle").Build()
	require.NoError(t, err)
	assert.True(t, m.IsMatch(NewInput("a haystack with needle inside")))
	assert.False(t, m.IsMatch(NewInput("no match here")))
}

func TestStartsWithRejectsNoStartInput(t *testing.T) {
	m, err := New("abc").StartsWith(true).Build()
	require.NoError(t, err)
	assert.False(t, m.IsMatch(Input{Haystack: StringHaystack("abc"), NoStart: true}))
}

func TestMinHaystackLenRejectsShortHaystack(t *testing.T) {
	data := testPinyinData(t)
	m, err := New("xingxingxingxing").Pinyin(data, pinyin.Ascii).Analyze(true).Build()
	require.NoError(t, err)
	_, ok := m.Find(NewInput("行"))
	assert.False(t, ok)
}

func TestAsciiMatcherFailVariantForNonASCIIPattern(t *testing.T) {
	am := newASCIIMatcher("拼", true, false, false)
	assert.False(t, am.isMatch([]byte("anything")))
}

func TestAsciiMatcherCaseInsensitive(t *testing.T) {
	am := newASCIIMatcher("needle", true, false, false)
	match, ok := am.find([]byte("a NEEDLE here"))
	require.True(t, ok)
	assert.Equal(t, 2, match.Start)
	assert.Equal(t, 8, match.End)
}

func TestParsePostmodifierStripsLastSuffixOnly(t *testing.T) {
	s, lang := ParsePostmodifier("pin;py")
	assert.Equal(t, "pin", s)
	assert.Equal(t, LangPinyinOnly, lang)

	s, lang = ParsePostmodifier("pin")
	assert.Equal(t, "pin", s)
	assert.Equal(t, LangAny, lang)
}

func TestAnalyzeNonTraversalCeiling(t *testing.T) {
	data := testPinyinData(t)
	p := ParsePattern("xing")
	res := Analyze(data, p, pinyin.Ascii, false, false, false)
	assert.Equal(t, 1, res.MinHaystackLen) // ceil(4/6)
}

func TestAnalyzeTraversalAgreesWithNonTraversalOnUsedNotations(t *testing.T) {
	data := testPinyinData(t)
	p := ParsePattern("xing")
	capped := Analyze(data, p, pinyin.Ascii, false, false, true)
	assert.True(t, capped.UsedNotations.Contains(pinyin.Ascii))
}
