package pinyin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnicodeToAscii(t *testing.T) {
	assert.Equal(t, "pin", UnicodeToAscii("pīn"))
	assert.Equal(t, "lv", UnicodeToAscii("lǜ"))
	assert.Equal(t, "nv", UnicodeToAscii("nǚ"))
}

func TestUnicodeToAsciiTone(t *testing.T) {
	assert.Equal(t, "pin1", UnicodeToAsciiTone("pīn"))
	assert.Equal(t, "pin2", UnicodeToAsciiTone("pín"))
	assert.Equal(t, "pin5", UnicodeToAsciiTone("pin"))
}

func TestSplitInitialFinal(t *testing.T) {
	cases := []struct{ in, initial, final string }{
		{"an", "", "an"},
		{"zhong", "zh", "ong"},
		{"chi", "ch", "i"},
		{"shi", "sh", "i"},
		{"xing", "x", "ing"},
	}
	for _, c := range cases {
		i, f := splitInitialFinal(c.in)
		assert.Equal(t, c.initial, i, c.in)
		assert.Equal(t, c.final, f, c.in)
	}
}

func TestAsciiToDiletterMicrosoft(t *testing.T) {
	assert.Equal(t, "pn", asciiToDiletterMicrosoft("pin"))
	assert.Equal(t, "y;", asciiToDiletterMicrosoft("ying"))
}

func TestAsciiToDiletterXiaohe(t *testing.T) {
	assert.Equal(t, "pb", asciiToDiletterXiaohe("pin"))
	assert.Equal(t, "yb", asciiToDiletterXiaohe("yin"))
}

func TestDegenerateSyllables(t *testing.T) {
	assert.Equal(t, normalizeDegenerate("hm"), "hen")
	assert.Equal(t, normalizeDegenerate("hng"), "heng")
	assert.Equal(t, normalizeDegenerate("m"), "mu")
	assert.Equal(t, normalizeDegenerate("n"), "en")
	assert.Equal(t, normalizeDegenerate("ng"), "en")
}
