// Package common provides the small registry that lets a caller look up a
// language's matching provider by code, mirroring the shape of the
// teacher's token-pipeline provider registry but with a synchronous
// substring-match surface instead of a tokenizer/transliterator pipeline.
package common

import (
	"github.com/Chaoses-Ib/IbPinyinLib/matcher"
)

// ProviderType distinguishes what kind of romanization a MatchProvider
// understands. A language can register more than one provider (e.g. "zho"
// registers a pinyin provider), picked by name at Register time.
type ProviderType int

const (
	PinyinType ProviderType = iota
	RomajiType
)

func (t ProviderType) String() string {
	switch t {
	case PinyinType:
		return "pinyin"
	case RomajiType:
		return "romaji"
	default:
		return "unknown"
	}
}

// MatchProvider fronts a language-specific matcher so callers can query by
// language code without knowing which romanization scheme backs it.
type MatchProvider interface {
	Name() string
	GetType() ProviderType
	IsMatch(pattern, haystack string) bool
	Find(pattern, haystack string) (matcher.Match, bool)
}
