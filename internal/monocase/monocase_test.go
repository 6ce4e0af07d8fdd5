package monocase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldTurkishDotted(t *testing.T) {
	assert.Equal(t, 'i', Fold('İ'))
}

func TestFoldAscii(t *testing.T) {
	assert.Equal(t, 'a', Fold('A'))
	assert.Equal(t, 'z', Fold('z'))
}

func TestFoldStringSingleRunePerInput(t *testing.T) {
	// Full Unicode lowercasing of "İ" yields two runes (i + U+0307); Fold
	// must never expand the rune count.
	out := FoldString("İSTANBUL")
	assert.Equal(t, 8, len([]rune(out)))
	assert.Equal(t, "istanbul", out)
}
