package chunker

// Serialize converts a Chunk to the key-value form spec.md §6 defines for
// host integration. Unknown metadata keys pass through verbatim so
// Deserialize(Serialize(c)) round-trips (PROP-8).
func Serialize(c Chunk) map[string]any {
	m := map[string]any{
		"content":    c.Content,
		"start_line": c.StartLine,
		"end_line":   c.EndLine,
		"size":       charLen(c.Content),
		"metadata":   copyMetadata(c.Metadata),
	}
	return m
}

// Deserialize reconstructs a Chunk from the form Serialize produces.
func Deserialize(m map[string]any) (Chunk, error) {
	content, _ := m["content"].(string)
	c := Chunk{Content: content}

	if v, ok := m["start_line"].(int); ok {
		c.StartLine = v
	}
	if v, ok := m["end_line"].(int); ok {
		c.EndLine = v
	}
	if meta, ok := m["metadata"].(map[string]any); ok {
		c.Metadata = copyMetadata(meta)
	} else {
		c.Metadata = map[string]any{}
	}
	return c, nil
}

func copyMetadata(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
