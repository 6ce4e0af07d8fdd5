package zho

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chaoses-Ib/IbPinyinLib/common"
)

func TestProviderRegistersUnderZho(t *testing.T) {
	providers, ok := common.Providers("zho")
	require.True(t, ok)
	require.NotEmpty(t, providers)
	assert.Equal(t, "pinyin", providers[0].Name())
}

func TestProviderIsMatchAndFind(t *testing.T) {
	p, ok := common.ProviderByType("zho", common.PinyinType)
	require.True(t, ok)
	assert.True(t, p.IsMatch("xing", "行"))
	assert.False(t, p.IsMatch("zzz", "行"))

	m, ok := p.Find("xing", "1行1")
	require.True(t, ok)
	assert.Equal(t, 1, m.Start)
	assert.Equal(t, 4, m.End)
}
