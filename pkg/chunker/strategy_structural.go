package chunker

// structuralStrategy splits the document by header hierarchy, subdividing
// oversized sections by paragraph (spec.md §4.4).
type structuralStrategy struct{}

// section is one header-delimited region, plus the header-path stack that
// dominates it (spec.md §4.4 step 2).
type section struct {
	headerLine int // 0 for the implicit preamble section
	level      int
	start, end int
	path       []string
}

func (structuralStrategy) apply(lines []string, a Analysis, cfg Config) ([]Chunk, []string) {
	secs := sectionize(lines, a)
	if len(secs) == 0 {
		return fallbackStrategy{}.apply(lines, a, cfg)
	}

	var chunks []Chunk
	var warnings []string
	regions := atomicRegions(a, cfg)
	effectiveMax := cfg.effectiveMax()

	for _, s := range secs {
		body := joinLines(lines, s.start, s.end)
		size := charLen(body)
		if size == 0 {
			continue
		}
		if size <= effectiveMax {
			ct := ContentText
			meta := map[string]any{"content_type": ct}
			if len(s.path) > 0 {
				meta["header_path"] = append([]string(nil), s.path...)
			}
			if size > cfg.MaxChunkSize {
				meta["allow_oversize"] = true
				meta["oversize_reason"] = OversizeSection
			}
			c := Chunk{Content: body, StartLine: s.start, EndLine: s.end, Metadata: meta}
			if ctc := classifyProse(body); ctc != ContentText {
				meta["content_type"] = ctc
			}
			chunks = append(chunks, c)
			continue
		}

		// Oversized section: respect any atomic regions inside it by
		// packing around them, then paragraph-pack the rest.
		sectionChunks, sectionWarnings := splitOversizedSection(lines, s, regions, cfg)
		chunks = append(chunks, sectionChunks...)
		warnings = append(warnings, sectionWarnings...)
	}

	if len(chunks) == 0 {
		warnings = append(warnings, "structural strategy found no usable section breaks; falling back")
		return fallbackStrategy{}.apply(lines, a, cfg)
	}
	markPreamble(chunks, a, cfg)
	return chunks, warnings
}

// sectionize partitions the document into header-delimited sections,
// maintaining the header-path stack spec.md §4.4 step 2 describes.
func sectionize(lines []string, a Analysis) []section {
	if len(a.Headers) == 0 {
		return nil
	}
	var secs []section
	var stack []string

	if a.Headers[0].Line > 1 {
		secs = append(secs, section{start: 1, end: a.Headers[0].Line - 1})
	}
	for i, h := range a.Headers {
		if len(stack) >= h.Level {
			stack = stack[:h.Level-1]
		}
		stack = append(stack, h.Text)
		end := len(lines)
		if i+1 < len(a.Headers) {
			end = a.Headers[i+1].Line - 1
		}
		secs = append(secs, section{
			headerLine: h.Line,
			level:      h.Level,
			start:      h.Line,
			end:        end,
			path:       append([]string(nil), stack...),
		})
	}
	return secs
}

// splitOversizedSection packs an oversized section's atomic regions as
// standalone chunks and paragraph-packs the surrounding prose (spec.md
// §4.4 step 4).
func splitOversizedSection(lines []string, s section, regions []atomicRegion, cfg Config) ([]Chunk, []string) {
	var chunks []Chunk
	var warnings []string
	cursor := s.start
	withPath := func(c Chunk) Chunk {
		if len(s.path) > 0 {
			if c.Metadata == nil {
				c.Metadata = map[string]any{}
			}
			c.Metadata["header_path"] = append([]string(nil), s.path...)
		}
		return c
	}

	for _, r := range regions {
		if r.start < s.start || r.end > s.end {
			continue
		}
		if r.start > cursor {
			for _, c := range packLinesGreedy(lines, cursor, r.start-1, cfg, ContentText) {
				chunks = append(chunks, withPath(c))
			}
		}
		c, warning := atomicChunk(lines, r, cfg)
		chunks = append(chunks, withPath(c))
		if warning != "" {
			warnings = append(warnings, warning)
		}
		cursor = r.end + 1
	}
	if cursor <= s.end {
		for _, c := range packLinesGreedy(lines, cursor, s.end, cfg, ContentText) {
			chunks = append(chunks, withPath(c))
		}
	}
	return chunks, warnings
}
