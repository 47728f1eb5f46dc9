package chunker_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/mdchunk/pkg/chunker"
)

func TestAnalyze_EmptyInput(t *testing.T) {
	a, err := chunker.Analyze("")
	require.NoError(t, err)
	assert.Equal(t, 1, a.TotalLines)
	assert.Equal(t, 0, a.TotalChars)
	assert.Zero(t, a.HeaderCount)
	assert.Zero(t, a.CodeBlockCount)
}

func TestAnalyze_Headers(t *testing.T) {
	text := "# A\n\npara1\n\n## B\n\npara2\n\n## C\n\npara3"
	a, err := chunker.Analyze(text)
	require.NoError(t, err)
	require.Len(t, a.Headers, 3)
	assert.Equal(t, 1, a.Headers[0].Level)
	assert.Equal(t, "A", a.Headers[0].Text)
	assert.Equal(t, 2, a.Headers[1].Level)
	assert.Equal(t, "B", a.Headers[1].Text)
	assert.Equal(t, 2, a.MaxHeaderDepth)
	assert.False(t, a.HasPreamble)
}

func TestAnalyze_CodeBlock(t *testing.T) {
	text := "intro\n\n```python\nprint(1)\n```\n\noutro"
	a, err := chunker.Analyze(text)
	require.NoError(t, err)
	require.Len(t, a.CodeBlocks, 1)
	cb := a.CodeBlocks[0]
	assert.Equal(t, "python", cb.Language)
	assert.Equal(t, chunker.FenceBacktick, cb.FenceKind)
	assert.False(t, cb.Unterminated)
	assert.Greater(t, a.CodeRatio, 0.0)
}

func TestAnalyze_UnterminatedFence(t *testing.T) {
	text := "before\n\n```go\nfunc main() {}\n"
	a, err := chunker.Analyze(text)
	require.NoError(t, err)
	require.Len(t, a.CodeBlocks, 1)
	assert.True(t, a.CodeBlocks[0].Unterminated)
	assert.Equal(t, a.TotalLines, a.CodeBlocks[0].EndLine)
}

func TestAnalyze_FenceSuppressesHeadersAndTables(t *testing.T) {
	text := "```\n# not a header\n| not | a | table |\n| --- | --- | --- |\n```\n"
	a, err := chunker.Analyze(text)
	require.NoError(t, err)
	assert.Empty(t, a.Headers)
	assert.Empty(t, a.Tables)
}

func TestAnalyze_Table(t *testing.T) {
	text := "| A | B | C |\n| --- | --- | --- |\n| 1 | 2 | 3 |\n| 4 | 5 | 6 |\n"
	a, err := chunker.Analyze(text)
	require.NoError(t, err)
	require.Len(t, a.Tables, 1)
	assert.Equal(t, 1, a.Tables[0].StartLine)
	assert.Equal(t, 4, a.Tables[0].EndLine)
	assert.Equal(t, 3, a.Tables[0].ColumnCount)
}

func TestAnalyze_Preamble(t *testing.T) {
	text := "intro text\n\n# Heading\n\nbody"
	a, err := chunker.Analyze(text)
	require.NoError(t, err)
	assert.True(t, a.HasPreamble)
	assert.Equal(t, a.Headers[0].Line-1, a.PreambleEndLine)
}

func TestAnalyze_InvalidEncoding(t *testing.T) {
	bad := string([]byte{0xff, 0xfe, 0xfd})
	_, err := chunker.Analyze(bad)
	require.Error(t, err)
	var inputErr *chunker.InputError
	require.ErrorAs(t, err, &inputErr)
	assert.ErrorIs(t, err, chunker.ErrInvalidEncoding)
}

func TestAnalyze_SingleParagraph(t *testing.T) {
	text := strings.Repeat("word ", 24)
	a, err := chunker.Analyze(text)
	require.NoError(t, err)
	assert.Zero(t, a.HeaderCount)
	assert.Zero(t, a.CodeBlockCount)
}
