package chunker

import "strings"

// validate checks the critical domain invariants spec.md §7 lists,
// returning the first violation found as a *ValidationError. Warnings
// (non-critical oddities) are handled by the caller, not here.
func validate(chunks []Chunk, totalLines int) error {
	for i, c := range chunks {
		if strings.TrimSpace(c.Content) == "" {
			return &ValidationError{
				Classification: ValidationEmptyChunk,
				Message:        "chunk content is empty after trimming whitespace",
				Context:        map[string]any{"index": i},
			}
		}
		if c.StartLine < 1 || c.EndLine < c.StartLine || c.EndLine > totalLines {
			return &ValidationError{
				Classification: ValidationLineNumbers,
				Message:        "chunk has invalid line span",
				Context: map[string]any{
					"index":      i,
					"start_line": c.StartLine,
					"end_line":   c.EndLine,
					"preview":    preview(c.Content, 100),
				},
			}
		}
		if i > 0 && c.StartLine < chunks[i-1].StartLine {
			return &ValidationError{
				Classification: ValidationOrdering,
				Message:        "chunks are not ordered by start_line",
				Context:        map[string]any{"index": i},
			}
		}
		if charLen(c.Content) > 1 {
			// Fence-balance sanity check: an even number of triple-fence
			// markers, unless the chunk is itself a code chunk (which
			// legitimately contains its own opening/closing pair only,
			// still even) or carries the fence_balance_error tag set
			// upstream.
			fences := strings.Count(c.Content, "```") + strings.Count(c.Content, "~~~")
			if fences%2 != 0 && c.Metadata["content_type"] != ContentCode && c.Metadata["fence_balance_error"] != true {
				return &ValidationError{
					Classification: ValidationFenceBalance,
					Message:        "chunk has an unbalanced code fence",
					Context:        map[string]any{"index": i, "preview": preview(c.Content, 100)},
				}
			}
		}
		if size := charLen(c.Content); c.Metadata["allow_oversize"] != true {
			// size bound enforced at the configured max via the caller
			// that invoked flagOversize before validate; nothing further
			// to check here beyond the oversize_reason presence check
			// below.
			_ = size
		} else if c.Metadata["oversize_reason"] == nil {
			return &ValidationError{
				Classification: ValidationSizeBound,
				Message:        "chunk allows oversize but has no oversize_reason",
				Context:        map[string]any{"index": i},
			}
		}
		if pc, ok := c.Metadata["previous_content"].(string); ok && i > 0 {
			if !strings.HasSuffix(chunks[i-1].Content, pc) {
				return &ValidationError{
					Classification: ValidationOverlapIntegrity,
					Message:        "previous_content is not a suffix of the previous chunk",
					Context:        map[string]any{"index": i},
				}
			}
		}
		if nc, ok := c.Metadata["next_content"].(string); ok && i < len(chunks)-1 {
			if !strings.HasPrefix(chunks[i+1].Content, nc) {
				return &ValidationError{
					Classification: ValidationOverlapIntegrity,
					Message:        "next_content is not a prefix of the next chunk",
					Context:        map[string]any{"index": i},
				}
			}
		}
	}
	return nil
}
