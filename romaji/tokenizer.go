// Package romaji implements the Hepburn romaji tokenizer: a character-wise
// multi-pattern automaton over kana, a word dictionary, and per-kanji
// reading lookups. Grounded on
// `_examples/original_source/ib-matcher/src/matcher/romaji.rs` and
// `_examples/original_source/ib-romaji/src/lib.rs`.
package romaji

import (
	"github.com/rivo/uniseg"

	"github.com/Chaoses-Ib/IbPinyinLib/internal/ahocorasick"
)

// Candidate is one romanization candidate produced while matching a single
// haystack position: Len is the number of haystack bytes consumed, Romaji
// is the candidate reading.
type Candidate struct {
	Len    int
	Romaji string
}

// Tokenizer wraps the anchored kana-only automaton (used by RomanizeKana)
// and the combined kana+word automaton (used by RomanizeAndTryForEach),
// plus the kanji reading fallback table.
type Tokenizer struct {
	kanaOnly   *ahocorasick.Automaton[rune]
	combined   *ahocorasick.Automaton[rune]
	kanaCount  int
	patternRom [][]string
	kanji      bool
}

// New builds a tokenizer. kana/word/kanji independently toggle which
// dictionary layers RomanizeAndTryForEach consults; at least one should be
// true for the tokenizer to be useful.
func New(kana, word, kanji bool) *Tokenizer {
	t := &Tokenizer{kanji: kanji}

	var kanaPatterns [][]rune
	for _, k := range hepburnKana {
		kanaPatterns = append(kanaPatterns, []rune(k.Kana))
	}
	t.kanaOnly = ahocorasick.Build(kanaPatterns, ahocorasick.LeftmostLongest)

	var patterns [][]rune
	var romajis [][]string
	if kana {
		for _, k := range hepburnKana {
			patterns = append(patterns, []rune(k.Kana))
			romajis = append(romajis, []string{k.Romaji})
		}
	}
	t.kanaCount = len(patterns)
	if word {
		for _, w := range wordEntries {
			patterns = append(patterns, []rune(w.Word))
			romajis = append(romajis, w.Romajis)
		}
	}
	t.combined = ahocorasick.Build(patterns, ahocorasick.LeftmostLongest)
	t.patternRom = romajis

	logger.Debug().Int("kana", len(hepburnKana)).Int("words", len(wordEntries)).Msg("romaji tokenizer built")
	return t
}

// floorRuneBoundary truncates s to its leading grapheme clusters, adding
// whole clusters (found with uniseg) while fewer than n runes are kept, so a
// cluster such as a kana + combining mark is never split. The result can
// exceed n runes when the last cluster added holds more than one rune.
func floorRuneBoundary(s string, n int) string {
	var out []rune
	remaining := s
	for len(out) < n && remaining != "" {
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(remaining, -1)
		out = append(out, []rune(cluster)...)
		remaining = rest
	}
	return string(out)
}

// RomanizeKana truncates s with floorRuneBoundary(s, KanaMaxLen) and reports the
// leftmost kana-only match anchored at offset 0, if any.
func (t *Tokenizer) RomanizeKana(s string) (Candidate, bool) {
	truncated := floorRuneBoundary(s, KanaMaxLen)
	runes := []rune(truncated)
	m := t.kanaOnly.FindAt(runes, 0, true)
	if m == nil {
		return Candidate{}, false
	}
	pattern := t.kanaOnly.Pattern(m.Pattern)
	byteLen := len(string(pattern))
	for i, k := range hepburnKana {
		if string([]rune(k.Kana)) == string(pattern) {
			return Candidate{Len: byteLen, Romaji: hepburnKana[i].Romaji}, true
		}
	}
	return Candidate{}, false
}

// RomanizeKanaString greedily concatenates kana romanizations across s,
// passing the ideographic comma through literally.
func (t *Tokenizer) RomanizeKanaString(s string) (string, bool) {
	var out []byte
	remaining := s
	for remaining != "" {
		if remaining[0] == 0xE3 && len(remaining) >= 3 && remaining[:3] == "、" {
			out = append(out, "、"...)
			remaining = remaining[3:]
			continue
		}
		c, ok := t.RomanizeKana(remaining)
		if !ok {
			return "", false
		}
		out = append(out, c.Romaji...)
		remaining = remaining[c.Len:]
	}
	return string(out), true
}

// RomanizeAndTryForEach attempts, in order: (a) an anchored match against
// the combined kana+word automaton at offset 0 of s, classifying the hit
// as kana (pattern id < kana count) or word, and invoking f for every
// candidate romaji reading of that entry; (b) if kanji is enabled and f
// never returned true, the static readings of the leading rune, with
// Len = that rune's UTF-8 byte length. It short-circuits on f's first
// true return.
func (t *Tokenizer) RomanizeAndTryForEach(s string, f func(Candidate) (bool, error)) (bool, error) {
	runes := []rune(s)
	if len(runes) == 0 {
		return false, nil
	}
	if m := t.combined.FindAt(runes, 0, true); m != nil {
		pattern := t.combined.Pattern(m.Pattern)
		byteLen := len(string(pattern))
		for _, romaji := range t.patternRom[m.Pattern] {
			if ok, err := f(Candidate{Len: byteLen, Romaji: romaji}); ok {
				return true, err
			} else if err != nil {
				return false, err
			}
		}
	}
	if t.kanji {
		leading := runes[0]
		leadingLen := len(string(leading))
		for _, reading := range kanjiReadings[leading] {
			if ok, err := f(Candidate{Len: leadingLen, Romaji: reading}); ok {
				return true, err
			} else if err != nil {
				return false, err
			}
		}
	}
	return false, nil
}

// IsRomanizable reports whether s can be fully decomposed into kana and/or
// kanji readings with no leftover characters. Used at generation time to
// prune word-dictionary entries that are already derivable compositionally.
func (t *Tokenizer) IsRomanizable(s string) bool {
	if s == "" {
		return true
	}
	found := false
	_, _ = t.RomanizeAndTryForEach(s, func(c Candidate) (bool, error) {
		if t.IsRomanizable(s[c.Len:]) {
			found = true
			return true, nil
		}
		return false, nil
	})
	return found
}

// IsRomanizableTo reports whether s can be decomposed into kana/kanji
// readings whose concatenation equals romaji exactly.
func (t *Tokenizer) IsRomanizableTo(s, romaji string) bool {
	if s == "" {
		return romaji == ""
	}
	found := false
	_, _ = t.RomanizeAndTryForEach(s, func(c Candidate) (bool, error) {
		if len(romaji) >= len(c.Romaji) && romaji[:len(c.Romaji)] == c.Romaji &&
			t.IsRomanizableTo(s[c.Len:], romaji[len(c.Romaji):]) {
			found = true
			return true, nil
		}
		return false, nil
	})
	return found
}
