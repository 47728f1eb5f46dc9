package chunker

// codeAwareStrategy preserves fenced code blocks and tables as atomic
// chunks and greedily packs the prose around them (spec.md §4.3).
type codeAwareStrategy struct{}

func (codeAwareStrategy) apply(lines []string, a Analysis, cfg Config) ([]Chunk, []string) {
	regions := atomicRegions(a, cfg)
	var chunks []Chunk
	var warnings []string

	cursor := 1
	for _, r := range regions {
		if r.start > cursor {
			chunks = append(chunks, packLinesGreedy(lines, cursor, r.start-1, cfg, ContentText)...)
		}
		c, warning := atomicChunk(lines, r, cfg)
		chunks = append(chunks, c)
		if warning != "" {
			warnings = append(warnings, warning)
		}
		cursor = r.end + 1
	}
	if cursor <= len(lines) {
		chunks = append(chunks, packLinesGreedy(lines, cursor, len(lines), cfg, ContentText)...)
	}

	if len(chunks) == 0 {
		warnings = append(warnings, "code_aware strategy produced no chunks; falling back")
		return fallbackStrategy{}.apply(lines, a, cfg)
	}
	markPreamble(chunks, a, cfg)
	return chunks, warnings
}
