// Package zho registers the Chinese-language MatchProvider: pinyin
// substring matching over Han text, fronting the pinyin/matcher/cache
// stack the way the teacher's lang packages front their own providers.
package zho

import (
	"fmt"

	"github.com/Chaoses-Ib/IbPinyinLib/cache"
	"github.com/Chaoses-Ib/IbPinyinLib/common"
	"github.com/Chaoses-Ib/IbPinyinLib/matcher"
	"github.com/Chaoses-Ib/IbPinyinLib/pinyin"
)

// DefaultNotations is what Provider uses when callers don't need finer
// control over which pinyin spelling systems are searched.
const DefaultNotations = pinyin.Ascii | pinyin.AsciiFirstLetter | pinyin.AsciiTone

// Provider is the "zho" MatchProvider: pattern is an ASCII pinyin spelling
// (possibly abbreviated to first letters), haystack is Han text.
type Provider struct {
	notations pinyin.Notation
}

func NewProvider(notations pinyin.Notation) *Provider {
	return &Provider{notations: notations}
}

func (p *Provider) Name() string               { return "pinyin" }
func (p *Provider) GetType() common.ProviderType { return common.PinyinType }

func (p *Provider) IsMatch(pattern, haystack string) bool {
	return cache.IsPinyinMatch(pattern, haystack, p.notations)
}

func (p *Provider) Find(pattern, haystack string) (matcher.Match, bool) {
	return cache.FindPinyinMatch(pattern, haystack, p.notations)
}

func init() {
	cache.SetData(pinyin.New(DefaultNotations))
	if err := common.Register("zho", NewProvider(DefaultNotations)); err != nil {
		panic(fmt.Sprintf("zho: failed to register pinyin provider: %v", err))
	}
}
