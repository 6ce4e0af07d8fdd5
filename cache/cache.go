// Package cache provides the minimal cached matching API: a single
// shared-lock cache of the most recently built matcher, so repeated
// queries against the same (pattern, notations) pair skip
// re-construction. Grounded on
// `_examples/original_source/ib-matcher/src/minimal.rs`'s
// `get_or_init_matcher_cache`.
package cache

import (
	"sync"

	"github.com/Chaoses-Ib/IbPinyinLib/matcher"
	"github.com/Chaoses-Ib/IbPinyinLib/pinyin"
)

type cacheKey struct {
	pattern   string
	notations pinyin.Notation
}

var (
	mu    sync.RWMutex
	data  *pinyin.Data
	key   cacheKey
	built *matcher.Matcher
)

// SetData installs the shared PinyinData instance used to build cached
// matchers. Call this once at startup before IsPinyinMatch/FindPinyinMatch.
func SetData(d *pinyin.Data) {
	mu.Lock()
	defer mu.Unlock()
	data = d
	built = nil
}

func getOrBuild(pattern string, notations pinyin.Notation) (*matcher.Matcher, error) {
	mu.RLock()
	if built != nil && key == (cacheKey{pattern, notations}) {
		m := built
		mu.RUnlock()
		return m, nil
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if built != nil && key == (cacheKey{pattern, notations}) {
		return built, nil
	}
	m, err := matcher.New(pattern).Pinyin(data, notations).Build()
	if err != nil {
		return nil, err
	}
	key = cacheKey{pattern, notations}
	built = m
	return m, nil
}

// IsPinyinMatch reports whether pattern matches haystack under notations,
// building (or reusing) a cached matcher for this (pattern, notations)
// pair.
func IsPinyinMatch(pattern, haystack string, notations pinyin.Notation) bool {
	m, err := getOrBuild(pattern, notations)
	if err != nil {
		return false
	}
	return m.IsMatch(matcher.NewInput(haystack))
}

// FindPinyinMatch is IsPinyinMatch's find-and-report-range counterpart.
func FindPinyinMatch(pattern, haystack string, notations pinyin.Notation) (matcher.Match, bool) {
	m, err := getOrBuild(pattern, notations)
	if err != nil {
		return matcher.Match{}, false
	}
	return m.Find(matcher.NewInput(haystack))
}
