package chunker

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	headerRe     = regexp.MustCompile(`^#{1,6}[ \t]+\S.*$`)
	listItemRe   = regexp.MustCompile(`^\s*([-*+]|\d+[.)])\s+\S`)
	tableSepRe   = regexp.MustCompile(`^\s*\|?\s*:?-{1,}:?\s*(\|\s*:?-{1,}:?\s*)*\|?\s*$`)
)

// Analyze scans text once and returns the structural summary that drives
// strategy selection. It never fails on well-formed UTF-8; malformed
// bytes are reported as an *InputError wrapping ErrInvalidEncoding.
func Analyze(text string) (Analysis, error) {
	if !utf8.ValidString(text) {
		return Analysis{}, &InputError{Field: "text", Err: ErrInvalidEncoding}
	}

	lines := normalizeLines(text)
	a := Analysis{
		TotalChars: charLen(text),
		TotalLines: len(lines),
	}

	type fenceState struct {
		active    bool
		kind      FenceKind
		length    int
		startLine int
		lang      string
	}
	var fence fenceState
	consumed := make([]bool, len(lines)+1) // 1-indexed; true once claimed by a table

	codeChars := 0
	inList := false

	for i := 1; i <= len(lines); i++ {
		line := lines[i-1]

		if fence.active {
			if kind, length, ok := matchFence(line); ok && kind == fence.kind && length >= fence.length {
				a.CodeBlocks = append(a.CodeBlocks, CodeBlock{
					StartLine: fence.startLine,
					EndLine:   i,
					Language:  fence.lang,
					FenceKind: fence.kind,
				})
				codeChars += charLen(joinLines(lines, fence.startLine, i))
				fence = fenceState{}
				continue
			}
			continue
		}

		if kind, length, ok := matchFence(line); ok {
			fence = fenceState{active: true, kind: kind, length: length, startLine: i, lang: fenceInfo(line, length)}
			continue
		}

		if consumed[i] {
			continue
		}

		if headerRe.MatchString(strings.TrimRight(line, " \t")) {
			level := 0
			for level < len(line) && line[level] == '#' {
				level++
			}
			text := strings.TrimSpace(line[level:])
			a.Headers = append(a.Headers, Header{Line: i, Level: level, Text: text})
			if level > a.MaxHeaderDepth {
				a.MaxHeaderDepth = level
			}
			continue
		}

		if isPipeRow(line) && i+1 <= len(lines) && tableSepRe.MatchString(lines[i]) {
			cols := countColumns(line)
			end := i + 1
			for end+1 <= len(lines) && isPipeRow(lines[end]) && countColumns(lines[end]) == cols {
				end++
			}
			a.Tables = append(a.Tables, Table{StartLine: i, EndLine: end, ColumnCount: cols})
			for l := i; l <= end && l < len(consumed); l++ {
				consumed[l] = true
			}
			continue
		}

		switch {
		case listItemRe.MatchString(line):
			if !inList {
				a.ListCount++
				inList = true
			}
		case strings.TrimSpace(line) == "":
			// a blank line inside a loose list does not end it
		default:
			inList = false
		}
	}

	if fence.active {
		a.CodeBlocks = append(a.CodeBlocks, CodeBlock{
			StartLine:    fence.startLine,
			EndLine:      len(lines),
			Language:     fence.lang,
			FenceKind:    fence.kind,
			Unterminated: true,
		})
		codeChars += charLen(joinLines(lines, fence.startLine, len(lines)))
	}

	a.CodeBlockCount = len(a.CodeBlocks)
	a.HeaderCount = len(a.Headers)
	a.TableCount = len(a.Tables)

	if a.TotalChars > 0 {
		a.CodeRatio = float64(codeChars) / float64(a.TotalChars)
	}

	if len(a.Headers) > 0 && a.Headers[0].Line > 1 {
		a.HasPreamble = true
		a.PreambleEndLine = a.Headers[0].Line - 1
	}

	return a, nil
}

// matchFence reports whether line opens/closes a fenced code block: up to
// three leading spaces, then a run of three or more identical backticks or
// tildes.
func matchFence(line string) (kind FenceKind, length int, ok bool) {
	trimmed := line
	indent := 0
	for indent < len(trimmed) && indent < 4 && trimmed[indent] == ' ' {
		indent++
	}
	if indent > 3 {
		return "", 0, false
	}
	rest := trimmed[indent:]
	if rest == "" {
		return "", 0, false
	}
	ch := rest[0]
	if ch != '`' && ch != '~' {
		return "", 0, false
	}
	n := 0
	for n < len(rest) && rest[n] == ch {
		n++
	}
	if n < 3 {
		return "", 0, false
	}
	if ch == '`' {
		kind = FenceBacktick
	} else {
		kind = FenceTilde
	}
	return kind, n, true
}

// fenceInfo extracts the info-string language tag following the opening
// fence run, e.g. "```python" -> "python".
func fenceInfo(line string, fenceLen int) string {
	idx := strings.IndexAny(line, "`~")
	if idx < 0 {
		return ""
	}
	rest := line[idx:]
	ch := rest[0]
	n := 0
	for n < len(rest) && rest[n] == ch {
		n++
	}
	lang := strings.TrimSpace(rest[n:])
	if sp := strings.IndexAny(lang, " \t"); sp >= 0 {
		lang = lang[:sp]
	}
	_ = fenceLen
	return lang
}

// countColumns counts the data columns in a pipe-delimited row, dropping
// the empty fields produced by leading/trailing pipe delimiters so a row
// like "| A | B | C |" reports 3, not the 4 pipe characters it contains.
func countColumns(line string) int {
	trimmed := strings.TrimSpace(line)
	parts := strings.Split(trimmed, "|")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	return len(parts)
}

// isPipeRow reports whether line looks like a pipe-delimited table row:
// non-blank and containing at least one pipe character (escaped pipes
// count too).
func isPipeRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	return strings.Contains(trimmed, "|")
}
