package pinyin

import "strings"

// UnicodeToAscii strips tone marks from a unicode pinyin syllable, yielding
// plain lowercase ASCII. Grounded on
// `_examples/original_source/src/pinyin/notation.rs`'s `unicode_to_ascii`.
func UnicodeToAscii(u string) string {
	var b strings.Builder
	b.Grow(len(u))
	runes := []rune(u)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c >= 'a' && c <= 'z':
			b.WriteRune(c)
			// a bare base letter may be followed by a combining grave
			// (U+0300), consumed silently.
			if i+1 < len(runes) && runes[i+1] == '̀' {
				i++
			}
		case c == 'ā' || c == 'á' || c == 'ǎ' || c == 'à':
			b.WriteByte('a')
		case c == 'ē' || c == 'é' || c == 'ě' || c == 'è' || c == 'ế' || c == 'ề':
			b.WriteByte('e')
		case c == 'ê':
			if i+1 < len(runes) && (runes[i+1] == '̄' || runes[i+1] == '̌') {
				i++
			}
			b.WriteByte('e')
		case c == 'ī' || c == 'í' || c == 'ǐ' || c == 'ì':
			b.WriteByte('i')
		case c == 'ō' || c == 'ó' || c == 'ǒ' || c == 'ò':
			b.WriteByte('o')
		case c == 'ū' || c == 'ú' || c == 'ǔ' || c == 'ù':
			b.WriteByte('u')
		case c == 'ü' || c == 'ǘ' || c == 'ǚ' || c == 'ǜ':
			b.WriteByte('v')
		case c == 'ń' || c == 'ň' || c == 'ǹ':
			b.WriteByte('n')
		case c == 'ḿ':
			b.WriteByte('m')
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// toneOf returns the tone digit (1-5) carried by a unicode pinyin syllable;
// 5 (neutral tone) if no accented vowel is present.
func toneOf(u string) byte {
	firstTone := map[rune]byte{
		'ā': '1', 'ē': '1', 'ī': '1', 'ō': '1', 'ū': '1', 'ǖ': '1',
		'á': '2', 'é': '2', 'í': '2', 'ó': '2', 'ú': '2', 'ǘ': '2', 'ế': '2',
		'ǎ': '3', 'ě': '3', 'ǐ': '3', 'ǒ': '3', 'ǔ': '3', 'ǚ': '3',
		'à': '4', 'è': '4', 'ì': '4', 'ò': '4', 'ù': '4', 'ǜ': '4', 'ề': '4',
		'ń': '2', 'ň': '3', 'ǹ': '4', 'ḿ': '2',
	}
	for _, c := range u {
		if t, ok := firstTone[c]; ok {
			return t
		}
	}
	return '5'
}

// UnicodeToAsciiTone is Ascii with the tone digit appended.
func UnicodeToAsciiTone(u string) string {
	return UnicodeToAscii(u) + string(toneOf(u))
}

// splitInitialFinal splits a bare ASCII syllable at the deterministic
// initial/final boundary: 0 letters if the syllable starts with a vowel
// (aeiouv), 2 if it starts with zh/ch/sh, 1 otherwise.
func splitInitialFinal(ascii string) (initial, final string) {
	if len(ascii) == 0 {
		return "", ""
	}
	switch ascii[0] {
	case 'a', 'e', 'i', 'o', 'u', 'v':
		return "", ascii
	}
	if len(ascii) >= 2 {
		switch ascii[:2] {
		case "zh", "ch", "sh":
			return ascii[:2], ascii[2:]
		}
	}
	return ascii[:1], ascii[1:]
}

// normalizeDegenerate rewrites the four degenerate syllables that have no
// clean initial/final split before it is attempted.
func normalizeDegenerate(ascii string) string {
	switch ascii {
	case "hm":
		return "hen"
	case "hng":
		return "heng"
	case "m":
		return "mu"
	case "n", "ng":
		return "en"
	}
	return ascii
}

type diletterTable struct {
	pinyin  map[string]string
	initial map[string]string
	final   map[string]string
}

// asciiToDiletter is shared by all six diletter encoders. Grounded on
// `_examples/original_source/src/pinyin/notation.rs`'s
// `ascii_to_diletter`.
func asciiToDiletter(ascii string, t diletterTable) string {
	ascii = normalizeDegenerate(ascii)
	if v, ok := t.pinyin[ascii]; ok {
		return v
	}
	initial, final := splitInitialFinal(ascii)
	if initial == "" {
		// Vowel-initial syllables outside the whole-syllable table (only
		// "er") take their final-table entry, or pass through unchanged.
		if v, ok := t.final[final]; ok {
			return v
		}
		return final
	}
	if v, ok := t.initial[initial]; ok {
		initial = v
	}
	if v, ok := t.final[final]; ok {
		final = v
	}
	return initial + final
}

var diletterAbcTable = diletterTable{
	pinyin: map[string]string{
		"e": "oe", "o": "oo", "a": "oa", "ei": "oq", "ai": "ol", "ou": "ob",
		"ao": "ok", "en": "of", "an": "oj", "eng": "og", "ang": "oh",
	},
	initial: map[string]string{"zh": "a", "ch": "e", "sh": "v"},
	final: map[string]string{
		"i": "i", "u": "u", "v": "v", "e": "e", "ie": "x", "o": "o", "uo": "o",
		"ue": "m", "ve": "m", "a": "a", "ia": "d", "ua": "d", "ei": "q",
		"ui": "m", "ai": "l", "uai": "c", "ou": "b", "iu": "r", "ao": "k",
		"iao": "z", "in": "c", "un": "n", "vn": "n", "en": "f", "an": "j",
		"ian": "w", "uan": "p", "van": "p", "ing": "y", "ong": "s",
		"iong": "s", "eng": "g", "ang": "h", "iang": "t", "uang": "t",
		"er": "or",
	},
}

var diletterJiajiaTable = diletterTable{
	pinyin: map[string]string{
		"e": "ee", "o": "oo", "a": "aa", "ei": "ew", "ai": "as", "ou": "op",
		"ao": "ad", "en": "er", "an": "af", "eng": "et", "ang": "ag",
	},
	initial: map[string]string{"zh": "v", "ch": "u", "sh": "i"},
	final: map[string]string{
		"i": "i", "u": "u", "v": "v", "e": "e", "ie": "m", "o": "o", "uo": "o",
		"ue": "x", "ve": "t", "a": "a", "ia": "b", "ua": "b", "ei": "w",
		"ui": "v", "ai": "s", "uai": "x", "ou": "p", "iu": "n", "ao": "d",
		"iao": "k", "in": "l", "un": "z", "vn": "z", "en": "r", "an": "f",
		"ian": "j", "uan": "c", "van": "c", "ing": "q", "ong": "y",
		"iong": "y", "eng": "t", "ang": "g", "iang": "h", "uang": "h",
		"er": "eq",
	},
}

var diletterMicrosoftTable = diletterTable{
	pinyin: map[string]string{
		"e": "oe", "o": "oo", "a": "oa", "ei": "oz", "ai": "ol", "ou": "ob",
		"ao": "ok", "en": "of", "an": "oj", "eng": "og", "ang": "oh",
	},
	initial: map[string]string{"zh": "v", "ch": "i", "sh": "u"},
	final: map[string]string{
		"i": "i", "u": "u", "v": "y", "e": "e", "ie": "x", "o": "o", "uo": "o",
		"ue": "t", "ve": "v", "a": "a", "ia": "w", "ua": "w", "ei": "z",
		"ui": "v", "ai": "l", "uai": "y", "ou": "b", "iu": "q", "ao": "k",
		"iao": "c", "in": "n", "un": "p", "vn": "p", "en": "f", "an": "j",
		"ian": "m", "uan": "r", "van": "r", "ing": ";", "ong": "s",
		"iong": "s", "eng": "g", "ang": "h", "iang": "d", "uang": "d",
		"er": "or",
	},
}

var diletterThunisoftTable = diletterTable{
	pinyin: map[string]string{
		"e": "oe", "o": "oo", "a": "oa", "ei": "ok", "ai": "op", "ou": "oz",
		"ao": "oq", "en": "ow", "an": "or", "eng": "ot", "ang": "os",
	},
	initial: map[string]string{"zh": "u", "ch": "a", "sh": "i"},
	final: map[string]string{
		"i": "i", "u": "u", "v": "v", "e": "e", "ie": "d", "o": "o", "uo": "o",
		"ue": "n", "ve": "n", "a": "a", "ia": "x", "ua": "x", "ei": "k",
		"ui": "n", "ai": "p", "uai": "y", "ou": "z", "iu": "j", "ao": "q",
		"iao": "b", "in": "y", "un": "m", "vn": "y", "en": "w", "an": "r",
		"ian": "f", "uan": "l", "van": "l", "ing": ";", "ong": "h",
		"iong": "h", "eng": "t", "ang": "s", "iang": "g", "uang": "g",
		"er": "oj",
	},
}

var diletterXiaoheTable = diletterTable{
	pinyin: map[string]string{
		"e": "ee", "o": "oo", "a": "aa", "ei": "ei", "ai": "ai", "ou": "ou",
		"ao": "ao", "en": "en", "an": "an", "eng": "eg", "ang": "ah",
	},
	initial: map[string]string{"zh": "v", "ch": "i", "sh": "u"},
	final: map[string]string{
		"i": "i", "u": "u", "v": "v", "e": "e", "ie": "p", "o": "o", "uo": "o",
		"ue": "t", "ve": "t", "a": "a", "ia": "x", "ua": "x", "ei": "w",
		"ui": "v", "ai": "d", "uai": "k", "ou": "z", "iu": "q", "ao": "c",
		"iao": "n", "in": "b", "un": "y", "vn": "y", "en": "f", "an": "j",
		"ian": "m", "uan": "r", "van": "r", "ing": "k", "ong": "s",
		"iong": "s", "eng": "g", "ang": "h", "iang": "l", "uang": "l",
		"er": "er",
	},
}

var diletterZrmTable = diletterTable{
	pinyin: map[string]string{
		"e": "ee", "o": "oo", "a": "aa", "ei": "ei", "ai": "ai", "ou": "ou",
		"ao": "ao", "en": "en", "an": "an", "eng": "eg", "ang": "ah",
	},
	initial: map[string]string{"zh": "v", "ch": "i", "sh": "u"},
	final: map[string]string{
		"i": "i", "u": "u", "v": "v", "e": "e", "ie": "x", "o": "o", "uo": "o",
		"ue": "t", "ve": "t", "a": "a", "ia": "w", "ua": "w", "ei": "z",
		"ui": "v", "ai": "l", "uai": "y", "ou": "b", "iu": "q", "ao": "k",
		"iao": "c", "in": "n", "un": "p", "vn": "p", "en": "f", "an": "j",
		"ian": "m", "uan": "r", "van": "r", "ing": ";", "ong": "s",
		"iong": "s", "eng": "g", "ang": "h", "iang": "d", "uang": "d",
		"er": "er",
	},
}

func asciiToDiletterAbc(ascii string) string       { return asciiToDiletter(ascii, diletterAbcTable) }
func asciiToDiletterJiajia(ascii string) string     { return asciiToDiletter(ascii, diletterJiajiaTable) }
func asciiToDiletterMicrosoft(ascii string) string  { return asciiToDiletter(ascii, diletterMicrosoftTable) }
func asciiToDiletterThunisoft(ascii string) string  { return asciiToDiletter(ascii, diletterThunisoftTable) }
func asciiToDiletterXiaohe(ascii string) string     { return asciiToDiletter(ascii, diletterXiaoheTable) }
func asciiToDiletterZrm(ascii string) string        { return asciiToDiletter(ascii, diletterZrmTable) }
