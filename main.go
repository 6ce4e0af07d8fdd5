//go:generate go run ./cmd/gendata cmd/gendata/configs/default.yaml

// Package ibpinyinlib is the top-level entry point: a multilingual
// substring matcher over pinyin and romaji spellings. It re-exports the
// small registry surface from common so callers don't need to import the
// language packages themselves beyond the blank import that registers
// them.
package ibpinyinlib

import (
	"fmt"

	"github.com/Chaoses-Ib/IbPinyinLib/common"
	"github.com/Chaoses-Ib/IbPinyinLib/matcher"

	_ "github.com/Chaoses-Ib/IbPinyinLib/lang/jpn"
	_ "github.com/Chaoses-Ib/IbPinyinLib/lang/zho"
)

// IsMatch reports whether pattern matches somewhere in haystack under
// lang's registered provider (e.g. "zho" for pinyin, "jpn" for romaji).
func IsMatch(lang, pattern, haystack string) (bool, error) {
	providers, ok := common.Providers(lang)
	if !ok || len(providers) == 0 {
		return false, fmt.Errorf("ibpinyinlib: no provider registered for language %q", lang)
	}
	return providers[0].IsMatch(pattern, haystack), nil
}

// Find is IsMatch's range-reporting counterpart.
func Find(lang, pattern, haystack string) (matcher.Match, error) {
	providers, ok := common.Providers(lang)
	if !ok || len(providers) == 0 {
		return matcher.Match{}, fmt.Errorf("ibpinyinlib: no provider registered for language %q", lang)
	}
	m, found := providers[0].Find(pattern, haystack)
	if !found {
		return matcher.Match{}, fmt.Errorf("ibpinyinlib: no match for pattern %q", pattern)
	}
	return m, nil
}

// IsLanguageSupported reports whether lang has a registered provider.
func IsLanguageSupported(lang string) bool {
	return common.IsRegistered(lang)
}
