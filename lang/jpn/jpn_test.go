package jpn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chaoses-Ib/IbPinyinLib/common"
)

func TestProviderRegistersUnderJpn(t *testing.T) {
	providers, ok := common.Providers("jpn")
	require.True(t, ok)
	require.NotEmpty(t, providers)
	assert.Equal(t, "romaji", providers[0].Name())
}

func TestProviderIsMatchPartialWord(t *testing.T) {
	p, ok := common.ProviderByType("jpn", common.RomajiType)
	require.True(t, ok)
	assert.True(t, p.IsMatch("konosuba", "この素晴らしい世界に祝福を"))
}
