package chunker

import "strings"

// normalizeLines splits text into 1-based-addressable lines, accepting
// \r\n, \n, and \r line terminators on input (spec.md §6) and stripping
// \r so downstream code only ever sees \n-joined content. Empty input
// yields a single empty line, matching analyze's "empty input yields
// total_lines=1" contract (spec.md §4.1).
func normalizeLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// joinLines reconstructs the content spanning 1-based inclusive line
// numbers [start, end] from a normalized line slice.
func joinLines(lines []string, start, end int) string {
	if start < 1 {
		start = 1
	}
	if end > len(lines) {
		end = len(lines)
	}
	if start > end {
		return ""
	}
	return strings.Join(lines[start-1:end], "\n")
}

// charLen counts Unicode code points, the unit spec.md uses for
// max_chunk_size, min_chunk_size, and overlap_size.
func charLen(s string) int {
	return len([]rune(s))
}
