package chunker

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// strategyImpl is the common contract all three chunking algorithms
// satisfy (spec.md §4, §9 "dynamic dispatch ... sum type").
type strategyImpl interface {
	apply(lines []string, a Analysis, cfg Config) ([]Chunk, []string)
}

// atomicRegion is a code block or table, tagged with which it is so the
// strategies can set content_type/language/oversize_reason correctly.
type atomicRegion struct {
	start, end   int
	isTable      bool
	language     string
	fenceKind    FenceKind
	columns      int
	unterminated bool
}

// atomicRegions merges and sorts the analyzer's code blocks and tables
// into one ordered, non-overlapping list (spec.md §4.3 step 1). When
// cfg.PreserveAtomicBlocks is false, code blocks and tables are not
// treated as unsplittable and the strategies fall through to packing
// them as ordinary prose instead.
func atomicRegions(a Analysis, cfg Config) []atomicRegion {
	if !cfg.PreserveAtomicBlocks {
		return nil
	}
	regions := make([]atomicRegion, 0, len(a.CodeBlocks)+len(a.Tables))
	for _, cb := range a.CodeBlocks {
		regions = append(regions, atomicRegion{
			start: cb.StartLine, end: cb.EndLine,
			language: cb.Language, fenceKind: cb.FenceKind,
			unterminated: cb.Unterminated,
		})
	}
	for _, t := range a.Tables {
		regions = append(regions, atomicRegion{start: t.StartLine, end: t.EndLine, isTable: true, columns: t.ColumnCount})
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i].start < regions[j].start })
	return regions
}

// atomicChunk builds the single chunk an atomic region always becomes,
// plus a warning when the region is an unterminated fence (spec.md §7).
func atomicChunk(lines []string, r atomicRegion, cfg Config) (Chunk, string) {
	content := joinLines(lines, r.start, r.end)
	meta := map[string]any{}
	if r.isTable {
		meta["content_type"] = ContentTable
		meta["column_count"] = r.columns
	} else {
		meta["content_type"] = ContentCode
		if r.language != "" {
			meta["language"] = r.language
		}
	}
	if charLen(content) > cfg.MaxChunkSize {
		meta["allow_oversize"] = true
		if r.isTable {
			meta["oversize_reason"] = OversizeTable
		} else {
			meta["oversize_reason"] = OversizeCodeBlock
		}
	}

	var warning string
	if r.unterminated {
		meta["fence_balance_error"] = true
		warning = fmt.Sprintf("unterminated fence at lines %d-%d", r.start, r.end)
	}

	return Chunk{Content: content, StartLine: r.start, EndLine: r.end, Metadata: meta}, warning
}

var bulletRe = regexp.MustCompile(`(?m)^\s*([-*+]|\d+[.)])\s+\S`)

// classifyProse picks text/list/mixed for a prose segment: list when every
// non-blank line is a list item, mixed when list items sit alongside other
// lines or any line looks like a fence or a table row, text otherwise.
func classifyProse(content string) ContentType {
	lines := strings.Split(content, "\n")
	nonBlank, listLines := 0, 0
	hasOther := false
	for _, l := range lines {
		trimmed := strings.TrimSpace(l)
		if trimmed == "" {
			continue
		}
		nonBlank++
		switch {
		case bulletRe.MatchString(l):
			listLines++
		case strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") || strings.Count(trimmed, "|") >= 2:
			hasOther = true
		}
	}
	if nonBlank == 0 {
		return ContentText
	}
	switch {
	case hasOther && listLines > 0:
		return ContentMixed
	case hasOther:
		return ContentMixed
	case listLines == nonBlank:
		return ContentList
	case listLines > 0:
		return ContentMixed
	default:
		return ContentText
	}
}

// markPreamble retags the first chunk as content_type=preamble when it is
// ordinary text/list content starting at line 1 and the document has a
// preamble section the caller asked to extract (spec.md §3, §4.4 step 1).
func markPreamble(chunks []Chunk, a Analysis, cfg Config) {
	if !cfg.ExtractPreamble || !a.HasPreamble || len(chunks) == 0 {
		return
	}
	first := &chunks[0]
	if first.StartLine != 1 {
		return
	}
	switch first.Metadata["content_type"] {
	case ContentText, ContentList, ContentMixed, nil:
		first.Metadata["content_type"] = ContentPreamble
	}
}

// packLinesGreedy packs paragraphs (as returned by blankRunLines) into
// chunks of at most cfg.MaxChunkSize. A paragraph that would push the
// buffer past that limit is still appended while the result stays within
// MaxChunkSize*(1+OversizeTolerance); otherwise the buffer is flushed and
// the paragraph is split with splitToSize when it alone exceeds
// cfg.MaxChunkSize. Shared by the fallback strategy and by code-aware
// prose packing.
func packLinesGreedy(lines []string, start, end int, cfg Config, contentType ContentType) []Chunk {
	paras := blankRunLines(lines, start, end)
	var chunks []Chunk
	bufStart, bufEnd := 0, 0
	var buf strings.Builder

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		content := buf.String()
		meta := map[string]any{"content_type": contentType}
		ct := contentType
		if contentType == ContentText {
			ct = classifyProse(content)
			meta["content_type"] = ct
		}
		chunks = append(chunks, Chunk{Content: content, StartLine: bufStart, EndLine: bufEnd, Metadata: meta})
		buf.Reset()
	}

	for _, p := range paras {
		text := joinLines(lines, p[0], p[1])
		candidate := text
		if buf.Len() > 0 {
			candidate = buf.String() + "\n\n" + text
		}
		switch {
		case charLen(candidate) <= cfg.MaxChunkSize:
			if buf.Len() == 0 {
				bufStart = p[0]
			}
			if buf.Len() > 0 {
				buf.WriteString("\n\n")
			}
			buf.WriteString(text)
			bufEnd = p[1]
		case charLen(candidate) <= int(float64(cfg.MaxChunkSize)*(1+cfg.OversizeTolerance)):
			if buf.Len() == 0 {
				bufStart = p[0]
			}
			if buf.Len() > 0 {
				buf.WriteString("\n\n")
			}
			buf.WriteString(text)
			bufEnd = p[1]
			// flushed below with allow_oversize once size is checked by post-processor
		default:
			flush()
			if charLen(text) > cfg.MaxChunkSize {
				pStart := p[0]
				for _, piece := range splitToSize(text, cfg.MaxChunkSize) {
					pieceLines := strings.Count(piece, "\n")
					chunks = append(chunks, Chunk{
						Content:   piece,
						StartLine: pStart,
						EndLine:   pStart + pieceLines,
						Metadata:  map[string]any{"content_type": contentType},
					})
					pStart += pieceLines
				}
			} else {
				bufStart, bufEnd = p[0], p[1]
				buf.WriteString(text)
			}
		}
	}
	flush()
	return chunks
}
