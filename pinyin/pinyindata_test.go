package pinyin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPinyinIndexOutOfRange(t *testing.T) {
	d := New(Ascii)
	_, ok := d.GetPinyinIndex('A')
	assert.False(t, ok)
	_, ok = d.GetPinyinIndex(rune(MaxCodepoint + 1))
	assert.False(t, ok)
}

func TestSingleReadingLookup(t *testing.T) {
	d := New(Ascii | AsciiFirstLetter)
	ok, readings := GetPinyinsAndTryForEach(d, '拼', func(p Pinyin) (bool, []string) {
		a, _ := p.Notation(Ascii)
		f, _ := p.Notation(AsciiFirstLetter)
		return true, []string{a, f}
	})
	require.True(t, ok)
	assert.Equal(t, "pin", readings[0])
	assert.Equal(t, "p", readings[1])
}

func TestPolyphoneLookup(t *testing.T) {
	d := New(Ascii)
	var seen []string
	GetPinyinsAndTryForEach(d, '行', func(p Pinyin) (bool, struct{}) {
		a, _ := p.Notation(Ascii)
		seen = append(seen, a)
		return false, struct{}{}
	})
	assert.Equal(t, []string{"xing", "hang"}, seen)
}

func TestAsciiFirstLetterDerivedFromAscii(t *testing.T) {
	d := New(Ascii)
	ok, fl := GetPinyinsAndTryForEach(d, '拼', func(p Pinyin) (bool, string) {
		f, _ := p.Notation(AsciiFirstLetter)
		return true, f
	})
	require.True(t, ok)
	a, _ := GetPinyinsAndTryForEach(d, '拼', func(p Pinyin) (bool, string) {
		s, _ := p.Notation(Ascii)
		return true, s
	})
	assert.Equal(t, a[:1], fl)
}

func TestInitNotationsIdempotent(t *testing.T) {
	d := New(Ascii)
	before := d.InitedNotations()
	d.InitNotations(Ascii)
	assert.Equal(t, before, d.InitedNotations())
}

func TestPinyinLowercaseInvariant(t *testing.T) {
	d := New(Ascii | AsciiTone | DiletterXiaohe)
	for notation, arr := range map[Notation][]string{Ascii: d.ascii, AsciiTone: d.asciiTone, DiletterXiaohe: d.diletter[DiletterXiaohe]} {
		for _, s := range arr {
			for _, r := range s {
				if r >= 'A' && r <= 'Z' {
					t.Fatalf("notation %v produced uppercase in %q", notation, s)
				}
			}
		}
	}
}

func TestMatchPinyinPartial(t *testing.T) {
	d := New(Ascii)
	matches, ok := d.MatchPinyinPartial(Ascii, "xi", true)
	require.True(t, ok)
	var gotPartial bool
	for _, m := range matches {
		if m.Reading == "xing" {
			gotPartial = true
			assert.True(t, m.Partial)
		}
	}
	assert.True(t, gotPartial)
}
