package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuffixOverlap_IsATrueSuffix(t *testing.T) {
	s := "one two three. four five six. seven eight nine."
	got := suffixOverlap(s, 20)
	assert.True(t, strings.HasSuffix(s, got))
	assert.LessOrEqual(t, charLen(got), 20)
}

func TestPrefixOverlap_IsATruePrefix(t *testing.T) {
	s := "one two three. four five six. seven eight nine."
	got := prefixOverlap(s, 20)
	assert.True(t, strings.HasPrefix(s, got))
	assert.LessOrEqual(t, charLen(got), 20)
}

func TestOverlapCap_FortyPercentOfShorter(t *testing.T) {
	assert.Equal(t, 40, overlapCap(200, 100, 500))
	assert.Equal(t, 100, overlapCap(100, 1000, 1000))
}

func TestApplyOverlap_SkipsAtomicNeighbors(t *testing.T) {
	chunks := []Chunk{
		{Content: "prose one two three four five.", StartLine: 1, EndLine: 1, Metadata: map[string]any{"content_type": ContentText}},
		{Content: "```\ncode\n```", StartLine: 2, EndLine: 4, Metadata: map[string]any{"content_type": ContentCode}},
		{Content: "prose six seven eight nine ten.", StartLine: 5, EndLine: 5, Metadata: map[string]any{"content_type": ContentText}},
	}
	cfg := DefaultConfig()
	cfg.OverlapSize = 10
	applyOverlap(chunks, cfg)

	_, hasNext := chunks[0].Metadata["next_content"]
	assert.False(t, hasNext)
	_, hasPrev := chunks[2].Metadata["previous_content"]
	assert.False(t, hasPrev)
}
