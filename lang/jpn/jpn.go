// Package jpn registers the Japanese-language MatchProvider: romaji
// substring matching over kana/kanji text.
package jpn

import (
	"fmt"
	"sync"

	"github.com/Chaoses-Ib/IbPinyinLib/common"
	"github.com/Chaoses-Ib/IbPinyinLib/matcher"
	"github.com/Chaoses-Ib/IbPinyinLib/romaji"
)

// Provider is the "jpn" MatchProvider: pattern is a romaji spelling,
// haystack is kana/kanji text. It keeps a single cached matcher for the
// most recently used pattern, mirroring the pinyin cache's shape.
type Provider struct {
	tokenizer *romaji.Tokenizer
	partial   bool

	mu      sync.RWMutex
	pattern string
	built   *matcher.Matcher
}

func NewProvider(tok *romaji.Tokenizer, patternPartial bool) *Provider {
	return &Provider{tokenizer: tok, partial: patternPartial}
}

func (p *Provider) Name() string                 { return "romaji" }
func (p *Provider) GetType() common.ProviderType { return common.RomajiType }

func (p *Provider) getOrBuild(pattern string) (*matcher.Matcher, error) {
	p.mu.RLock()
	if p.built != nil && p.pattern == pattern {
		m := p.built
		p.mu.RUnlock()
		return m, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.built != nil && p.pattern == pattern {
		return p.built, nil
	}
	m, err := matcher.New(pattern).Romaji(p.tokenizer).PatternPartial(p.partial).Build()
	if err != nil {
		return nil, err
	}
	p.pattern = pattern
	p.built = m
	return m, nil
}

func (p *Provider) IsMatch(pattern, haystack string) bool {
	m, err := p.getOrBuild(pattern)
	if err != nil {
		return false
	}
	return m.IsMatch(matcher.NewInput(haystack))
}

func (p *Provider) Find(pattern, haystack string) (matcher.Match, bool) {
	m, err := p.getOrBuild(pattern)
	if err != nil {
		return matcher.Match{}, false
	}
	return m.Find(matcher.NewInput(haystack))
}

func init() {
	tok := romaji.New(true, true, true)
	if err := common.Register("jpn", NewProvider(tok, true)); err != nil {
		panic(fmt.Sprintf("jpn: failed to register romaji provider: %v", err))
	}
}
