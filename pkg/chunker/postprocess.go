package chunker

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	boldRe       = regexp.MustCompile(`\*\*[^*\n]+\*\*|__[^_\n]+__`)
	italicRe     = regexp.MustCompile(`(^|[^*])\*[^*\n]+\*([^*]|$)|_[^_\n]+_`)
	inlineCodeRe = regexp.MustCompile("`[^`\n]+`")
	urlRe        = regexp.MustCompile(`https?://[^\s)]+`)
	emailRe      = regexp.MustCompile(`[[:alnum:]._%+\-]+@[[:alnum:].\-]+\.[[:alpha:]]{2,}`)
	nestedListRe = regexp.MustCompile(`(?m)^(\s{2,}|\t)([-*+]|\d+[.)])\s+\S`)
)

// post runs the post-processing pipeline spec.md §4.7 describes: sort,
// normalize line endings, overlap, oversize flagging, metadata
// enrichment, and validation. Returns (chunks, warnings, error) where a
// non-nil error is always a *ValidationError and aborts the call.
func post(chunks []Chunk, total int, cfg Config) ([]Chunk, []string, error) {
	sort.SliceStable(chunks, func(i, j int) bool {
		if chunks[i].StartLine != chunks[j].StartLine {
			return chunks[i].StartLine < chunks[j].StartLine
		}
		return chunks[i].EndLine < chunks[j].EndLine
	})

	var warnings []string
	for i := range chunks {
		chunks[i].Content = strings.ReplaceAll(chunks[i].Content, "\r\n", "\n")
		chunks[i].Content = strings.ReplaceAll(chunks[i].Content, "\r", "\n")
		if chunks[i].Metadata == nil {
			chunks[i].Metadata = map[string]any{}
		}
	}

	chunks, mergeWarnings := mergeUndersized(chunks, cfg)
	warnings = append(warnings, mergeWarnings...)

	applyOverlap(chunks, cfg)

	for i := range chunks {
		flagOversize(&chunks[i], cfg, &warnings)
		enrichMetadata(&chunks[i])
		// With atomic blocks not preserved, a code block packed as prose can
		// leave a fence open in one chunk and closed in the next; such chunks
		// are tagged and reported instead of failing validation.
		if !cfg.PreserveAtomicBlocks && chunks[i].Metadata["content_type"] != ContentCode &&
			(strings.Count(chunks[i].Content, "```")+strings.Count(chunks[i].Content, "~~~"))%2 != 0 {
			chunks[i].Metadata["fence_balance_error"] = true
			warnings = append(warnings, fmt.Sprintf("unbalanced code fence in chunk at lines %d-%d",
				chunks[i].StartLine, chunks[i].EndLine))
		}
	}

	if err := validate(chunks, total); err != nil {
		return nil, nil, err
	}

	return chunks, warnings, nil
}

// mergeUndersized merges a chunk smaller than cfg.MinChunkSize into an
// adjacent, compatible chunk wherever possible (spec.md §3,
// min_chunk_size: "smaller chunks are merged when possible"). A chunk
// that cannot be merged — blocked by an atomic neighbor, a different
// header_path, or a combined size past the oversize-tolerant max —
// is left as-is and reported via the "unusually small chunks" warning
// spec.md §7 names.
func mergeUndersized(chunks []Chunk, cfg Config) ([]Chunk, []string) {
	if cfg.MinChunkSize <= 0 || len(chunks) < 2 {
		return chunks, nil
	}

	out := make([]Chunk, 0, len(chunks))
	blocked := make([]bool, 0, len(chunks))
	for _, c := range chunks {
		if len(out) > 0 {
			if merged, ok := mergeIfUndersized(out[len(out)-1], c, cfg); ok {
				out[len(out)-1] = merged
				continue
			}
			blocked[len(out)-1] = true
		}
		out = append(out, c)
		blocked = append(blocked, len(out) > 1)
	}

	var warnings []string
	for i, c := range out {
		if blocked[i] && charLen(c.Content) < cfg.MinChunkSize && !isAtomic(c) {
			warnings = append(warnings, fmt.Sprintf(
				"strategy produced unusually small chunk at lines %d-%d (below min_chunk_size)",
				c.StartLine, c.EndLine))
		}
	}
	return out, warnings
}

// mergeIfUndersized merges b into a when at least one is below
// min_chunk_size, neither is atomic, they share the same header_path,
// and the combined content still fits within the effective max size.
func mergeIfUndersized(a, b Chunk, cfg Config) (Chunk, bool) {
	if isAtomic(a) || isAtomic(b) {
		return Chunk{}, false
	}
	if charLen(a.Content) >= cfg.MinChunkSize && charLen(b.Content) >= cfg.MinChunkSize {
		return Chunk{}, false
	}
	if headerPathKey(a.Metadata) != headerPathKey(b.Metadata) {
		return Chunk{}, false
	}

	combined := a.Content + "\n\n" + b.Content
	if charLen(combined) > cfg.effectiveMax() {
		return Chunk{}, false
	}

	meta := map[string]any{}
	for k, v := range a.Metadata {
		meta[k] = v
	}
	delete(meta, "allow_oversize")
	delete(meta, "oversize_reason")
	meta["content_type"] = classifyProse(combined)
	if hp, ok := a.Metadata["header_path"].([]string); ok {
		meta["header_path"] = append([]string(nil), hp...)
	}

	return Chunk{
		Content:   combined,
		StartLine: a.StartLine,
		EndLine:   b.EndLine,
		Metadata:  meta,
	}, true
}

// headerPathKey renders a chunk's header_path metadata (or its absence)
// as a comparable string, so mergeIfUndersized never blends content from
// two different sections into one chunk.
func headerPathKey(meta map[string]any) string {
	hp, _ := meta["header_path"].([]string)
	return strings.Join(hp, "/")
}

// flagOversize ensures every chunk bigger than max_chunk_size carries
// allow_oversize + a reason (spec.md §4.7 step 4, §7 PROP-2). Strategies
// already set this for atomic and section-integrity chunks; this is the
// backstop for anything left unflagged, plus the oversize-tolerance
// warning.
func flagOversize(c *Chunk, cfg Config, warnings *[]string) {
	size := charLen(c.Content)
	if size <= cfg.MaxChunkSize {
		return
	}
	if c.Metadata["allow_oversize"] != true {
		c.Metadata["allow_oversize"] = true
		if c.Metadata["oversize_reason"] == nil {
			c.Metadata["oversize_reason"] = OversizeSection
		}
	}
	if float64(size) > float64(cfg.MaxChunkSize)*1.05 {
		*warnings = append(*warnings, "chunk exceeds max_chunk_size by more than 5%")
	}
}

// enrichMetadata populates the sparse boolean/count keys spec.md §4.7
// step 5 names, only when true/non-zero.
func enrichMetadata(c *Chunk) {
	content := c.Content
	if boldRe.MatchString(content) {
		c.Metadata["has_bold"] = true
	}
	if italicRe.MatchString(content) {
		c.Metadata["has_italic"] = true
	}
	if inlineCodeRe.MatchString(content) && c.Metadata["content_type"] != ContentCode {
		c.Metadata["has_inline_code"] = true
	}
	if urlRe.MatchString(content) {
		c.Metadata["has_urls"] = true
	}
	if emailRe.MatchString(content) {
		c.Metadata["has_emails"] = true
	}
	if nestedListRe.MatchString(content) {
		c.Metadata["has_nested_lists"] = true
	}
	if c.Metadata["content_type"] == ContentList {
		c.Metadata["list_type"] = listType(content)
	}
	if c.Metadata["content_type"] == ContentTable {
		if c.Metadata["column_count"] != nil {
			rows := strings.Count(strings.TrimSpace(content), "\n") + 1 - 2 // header + separator excluded
			if rows > 0 {
				c.Metadata["row_count"] = rows
			}
		}
	}
}

var orderedListRe = regexp.MustCompile(`^\s*\d+[.)]\s+`)

func listType(content string) string {
	for _, l := range strings.Split(content, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		if orderedListRe.MatchString(l) {
			return "ordered"
		}
		return "unordered"
	}
	return "unordered"
}
