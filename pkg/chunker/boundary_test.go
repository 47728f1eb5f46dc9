package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitToSize_PreservesContent(t *testing.T) {
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 50)
	pieces := splitToSize(text, 120)
	require.NotEmpty(t, pieces)
	assert.Equal(t, text, strings.Join(pieces, ""))
	for _, p := range pieces {
		assert.LessOrEqual(t, charLen(p), 120)
	}
}

func TestSplitToSize_ParagraphBoundaryPreferred(t *testing.T) {
	text := "first paragraph here.\n\nsecond paragraph here."
	pieces := splitToSize(text, 30)
	require.GreaterOrEqual(t, len(pieces), 2)
	assert.Equal(t, text, strings.Join(pieces, ""))
}

func TestSplitToSize_IndivisibleToken(t *testing.T) {
	text := strings.Repeat("x", 50)
	pieces := splitToSize(text, 10)
	assert.Equal(t, text, strings.Join(pieces, ""))
	assert.Equal(t, 5, len(pieces))
}

func TestSplitToSize_FitsAlready(t *testing.T) {
	text := "short"
	pieces := splitToSize(text, 100)
	assert.Equal(t, []string{"short"}, pieces)
}

func TestSplitToSize_Empty(t *testing.T) {
	assert.Nil(t, splitToSize("", 100))
}
