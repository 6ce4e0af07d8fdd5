package romaji

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRomanizeKanaSingleMora(t *testing.T) {
	tok := New(true, true, true)
	c, ok := tok.RomanizeKana("この")
	require.True(t, ok)
	assert.Equal(t, "ko", c.Romaji)
	assert.Equal(t, len("こ"), c.Len)
}

func TestRomanizeKanaDigraphPreferredOverMora(t *testing.T) {
	tok := New(true, true, true)
	c, ok := tok.RomanizeKana("ジョン")
	require.True(t, ok)
	assert.Equal(t, "jo", c.Romaji)
	assert.Equal(t, len("ジョ"), c.Len)
}

func TestRomanizeKanaStringPassesCommaThrough(t *testing.T) {
	tok := New(true, true, true)
	out, ok := tok.RomanizeKanaString("この、")
	require.True(t, ok)
	assert.Equal(t, "kono、", out)
}

func TestRomanizeKanaStringFailsOnUnknownRune(t *testing.T) {
	tok := New(true, true, true)
	_, ok := tok.RomanizeKanaString("拼")
	assert.False(t, ok)
}

func TestRomanizeAndTryForEachPrefersWordOverKanji(t *testing.T) {
	tok := New(true, true, true)
	var got []string
	found, err := tok.RomanizeAndTryForEach("素晴らしい", func(c Candidate) (bool, error) {
		got = append(got, c.Romaji)
		return true, nil
	})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"subarashii"}, got)
}

func TestRomanizeAndTryForEachKanjiFallback(t *testing.T) {
	tok := New(true, true, true)
	var got []string
	found, err := tok.RomanizeAndTryForEach("初音殴打", func(c Candidate) (bool, error) {
		got = append(got, c.Romaji)
		return c.Romaji == "hatsu", nil
	})
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, got, "hatsu")
}

func TestRomanizeAndTryForEachNoMatch(t *testing.T) {
	tok := New(true, true, false)
	found, err := tok.RomanizeAndTryForEach("凱", func(c Candidate) (bool, error) {
		return true, nil
	})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestIsRomanizableWordDictionary(t *testing.T) {
	tok := New(true, true, true)
	assert.True(t, tok.IsRomanizable("この"))
	assert.True(t, tok.IsRomanizable("世界"))
}

func TestIsRomanizableToExactConcatenation(t *testing.T) {
	tok := New(false, false, true)
	assert.True(t, tok.IsRomanizableTo("初音殴打", "hatsuneouda"))
	assert.False(t, tok.IsRomanizableTo("初音殴打", "shoneounaguru"))
}
