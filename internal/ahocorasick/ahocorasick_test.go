package ahocorasick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPatterns(ss ...string) [][]rune {
	out := make([][]rune, len(ss))
	for i, s := range ss {
		out[i] = []rune(s)
	}
	return out
}

func TestFindLeftmostLongest(t *testing.T) {
	a := Build(strPatterns("he", "she", "his", "hers"), LeftmostLongest)
	m := a.Find([]rune("ushers"))
	require.NotNil(t, m)
	assert.Equal(t, 1, m.Start)
	assert.Equal(t, 4, m.End)
	assert.Equal(t, "she", string(a.Pattern(m.Pattern)))
}

func TestFindLeftmostFirst(t *testing.T) {
	a := Build(strPatterns("he", "hers"), LeftmostFirst)
	m := a.Find([]rune("ushers"))
	require.NotNil(t, m)
	assert.Equal(t, "he", string(a.Pattern(m.Pattern)))
}

func TestAnchoredPrefix(t *testing.T) {
	a := Build(strPatterns("ha", "hachi"), LeftmostLongest)
	m := a.FindAt([]rune("hachiko"), 0, true)
	require.NotNil(t, m)
	assert.Equal(t, 0, m.Start)
	assert.Equal(t, 5, m.End)

	none := a.FindAt([]rune("xachiko"), 0, true)
	assert.Nil(t, none)
}

func TestByteCaseInsensitive(t *testing.T) {
	fold := func(b byte) byte {
		if b >= 'A' && b <= 'Z' {
			return b - 'A' + 'a'
		}
		return b
	}
	a := BuildFold([][]byte{[]byte("xing")}, LeftmostFirst, fold)
	m := a.Find([]byte("XiNG"))
	require.NotNil(t, m)
	assert.Equal(t, 0, m.Start)
	assert.Equal(t, 4, m.End)
}

func TestEmptyAutomaton(t *testing.T) {
	a := Build[rune](nil, LeftmostLongest)
	assert.Nil(t, a.Find([]rune("abc")))
	assert.False(t, a.IsMatch([]rune("abc")))
}

func TestFindAllNonOverlapping(t *testing.T) {
	a := Build(strPatterns("ab", "ba"), LeftmostFirst)
	matches := a.FindAll([]rune("ababa"))
	require.Len(t, matches, 2)
}
