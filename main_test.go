package ibpinyinlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMatchDispatchesToRegisteredLanguage(t *testing.T) {
	ok, err := IsMatch("zho", "xing", "行")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFindDispatchesToRegisteredLanguage(t *testing.T) {
	m, err := Find("jpn", "konosuba", "この素晴らしい世界に祝福を")
	require.NoError(t, err)
	assert.Equal(t, 0, m.Start)
}

func TestIsMatchErrorsForUnknownLanguage(t *testing.T) {
	_, err := IsMatch("xyz", "abc", "abc")
	assert.Error(t, err)
}

func TestIsLanguageSupported(t *testing.T) {
	assert.True(t, IsLanguageSupported("zho"))
	assert.True(t, IsLanguageSupported("jpn"))
	assert.False(t, IsLanguageSupported("xyz"))
}
