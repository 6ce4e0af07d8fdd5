package matcher

import (
	"unicode/utf8"

	"github.com/Chaoses-Ib/IbPinyinLib/pinyin"
)

// TraversalLimit bounds the DFS step count before Analyze gives up and
// falls back to the non-traversal estimate. Grounded on
// `_examples/original_source/ib-matcher/src/matcher/analyzer.rs`'s
// `TRAVERSAL_LIMIT`.
const TraversalLimit = 100

// AnalysisResult is the Pattern Analyzer's (C5) output: the notations that
// can actually produce a match against pattern, and a lower bound on the
// haystack byte length a candidate slice must meet to possibly match.
type AnalysisResult struct {
	UsedNotations  pinyin.Notation
	MinHaystackLen int
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func patternByteLen(p Pattern) int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0].Tail)
}

// nonTraversalEstimate computes the cheap, always-available bound: for
// patterns with no enabled pinyin notation, every pattern byte must be
// present literally; otherwise the best case is one notation string
// covering maxNotationLen pattern bytes. Romaji can satisfy a prefix of the
// pattern in as little as 2 haystack bytes (a single kana), so its presence
// can only ever lower this estimate, never raise it.
func nonTraversalEstimate(pattern Pattern, notations pinyin.Notation, romajiEnabled bool) AnalysisResult {
	patternBytes := patternByteLen(pattern)
	maxLen := notations.MaxLen()
	minLen := patternBytes
	if maxLen > 0 {
		minLen = ceilDiv(patternBytes, maxLen)
	}
	if romajiEnabled {
		minLen = minInt(minLen, 2)
	}
	return AnalysisResult{UsedNotations: notations, MinHaystackLen: minLen}
}

// Analyze runs the Pattern Analyzer. When traversal is false it returns the
// cheap estimate directly. When true, it DFS-walks the pattern position by
// position using data's real notation strings (reusing
// pinyin.Data.MatchPinyinPartial, the same dedup/prefix logic the hot match
// path itself uses) to discover exactly which notations are load-bearing
// and a tighter minimum haystack length, aborting back to the cheap
// estimate if TraversalLimit is exceeded. data may be nil if no pinyin
// notation is enabled.
func Analyze(data *pinyin.Data, pattern Pattern, notations pinyin.Notation, romajiEnabled, isPatternPartial, traversal bool) AnalysisResult {
	if !traversal || len(pattern) == 0 {
		return nonTraversalEstimate(pattern, notations, romajiEnabled)
	}
	steps := 0
	used, minLen, ok := dfsAnalyze(data, pattern, 0, notations, isPatternPartial, &steps)
	if !ok || steps > TraversalLimit {
		return nonTraversalEstimate(pattern, notations, romajiEnabled)
	}
	if romajiEnabled {
		minLen = minInt(minLen, 2)
	}
	return AnalysisResult{UsedNotations: used, MinHaystackLen: minLen}
}

// dfsAnalyze explores every way the pattern starting at pos could be
// consumed by a notation string (or, failing that, by passing the literal
// pattern character through unmatched), returning the union of notations
// that contributed to some successful path and the cheapest (fewest
// haystack bytes) such path.
func dfsAnalyze(data *pinyin.Data, pattern Pattern, pos int, notations pinyin.Notation, isPatternPartial bool, steps *int) (pinyin.Notation, int, bool) {
	if pos >= len(pattern) {
		return 0, 0, true
	}
	*steps++
	if *steps > TraversalLimit {
		return 0, 0, false
	}

	tail := pattern[pos].LowerTail
	anySingleLetter := false
	var used pinyin.Notation
	best := -1
	considered := false

	considerNotationString := func(n pinyin.Notation, str string, isReverse bool) {
		isSingle := utf8.RuneCountInString(str) == 1
		byteAdd := 3
		if isSingle {
			anySingleLetter = true
			if rl := utf8.RuneLen(pattern[pos].Lower); rl < 3 {
				byteAdd = rl
			}
		}
		if isReverse {
			// str is longer than tail: the partial match consumes the
			// entire remaining pattern as a leaf.
			considered = true
			used = used.Union(n)
			if best == -1 || byteAdd < best {
				best = byteAdd
			}
			return
		}
		consumedChars := utf8.RuneCountInString(str)
		subUsed, subLen, ok := dfsAnalyze(data, pattern, pos+consumedChars, notations, isPatternPartial, steps)
		if !ok {
			return
		}
		considered = true
		used = used.Union(n).Union(subUsed)
		total := byteAdd + subLen
		if best == -1 || total < best {
			best = total
		}
	}

	skipBareAscii := notations.Contains(pinyin.Ascii) && notations.Contains(pinyin.AsciiFirstLetter)
	if data != nil {
		for _, n := range pinyin.OrderedNotations {
			if !notations.Contains(n) {
				continue
			}
			matches, found := data.MatchPinyinPartial(n, tail, isPatternPartial)
			if !found {
				continue
			}
			for _, m := range matches {
				if skipBareAscii && n == pinyin.Ascii && len(m.Reading) == 1 {
					continue
				}
				considerNotationString(n, m.Reading, m.Partial)
			}
		}
	}

	if !anySingleLetter {
		byteAdd := 3
		if rl := utf8.RuneLen(pattern[pos].C); rl < 3 {
			byteAdd = rl
		}
		subUsed, subLen, ok := dfsAnalyze(data, pattern, pos+1, notations, isPatternPartial, steps)
		if ok {
			considered = true
			used = used.Union(subUsed)
			total := byteAdd + subLen
			if best == -1 || total < best {
				best = total
			}
		}
	}

	if !considered {
		return 0, 0, false
	}
	return used, best, true
}
