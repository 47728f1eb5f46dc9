package chunker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/mdchunk/pkg/chunker"
)

func TestSerializeDeserialize_RoundTrip(t *testing.T) {
	c := chunker.Chunk{
		Content:   "hello world",
		StartLine: 1,
		EndLine:   1,
		Metadata: map[string]any{
			"strategy":     "fallback",
			"content_type": chunker.ContentText,
			"custom_key":   "passthrough",
		},
	}

	m := chunker.Serialize(c)
	assert.Equal(t, "hello world", m["content"])
	assert.Equal(t, 1, m["start_line"])
	assert.Equal(t, 1, m["end_line"])
	assert.Equal(t, 11, m["size"])

	back, err := chunker.Deserialize(m)
	require.NoError(t, err)
	assert.Equal(t, c.Content, back.Content)
	assert.Equal(t, c.StartLine, back.StartLine)
	assert.Equal(t, c.EndLine, back.EndLine)
	assert.Equal(t, c.Metadata["custom_key"], back.Metadata["custom_key"])
	assert.Equal(t, c.Metadata["strategy"], back.Metadata["strategy"])
}

func TestSerialize_UnknownMetadataPreserved(t *testing.T) {
	c := chunker.Chunk{
		Content:   "x",
		StartLine: 1,
		EndLine:   1,
		Metadata:  map[string]any{"totally_unrecognized_key": 42},
	}
	m := chunker.Serialize(c)
	back, err := chunker.Deserialize(m)
	require.NoError(t, err)
	assert.Equal(t, 42, back.Metadata["totally_unrecognized_key"])
}
