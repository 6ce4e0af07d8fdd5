package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chaoses-Ib/IbPinyinLib/pinyin"
)

func TestIsPinyinMatchReusesCachedMatcher(t *testing.T) {
	SetData(pinyin.New(pinyin.Ascii))
	assert.True(t, IsPinyinMatch("xing", "行", pinyin.Ascii))
	// second call with the same key must reuse the cached matcher rather
	// than rebuild, exercised implicitly since SetData was only called once
	assert.True(t, IsPinyinMatch("xing", "xing", pinyin.Ascii))
	assert.False(t, IsPinyinMatch("zzz", "行", pinyin.Ascii))
}

func TestFindPinyinMatchReportsRange(t *testing.T) {
	SetData(pinyin.New(pinyin.Ascii))
	m, ok := FindPinyinMatch("xing", "1行1", pinyin.Ascii)
	require.True(t, ok)
	assert.Equal(t, 1, m.Start)
	assert.Equal(t, 4, m.End)
}
