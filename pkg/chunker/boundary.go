package chunker

import (
	"strings"
	"unicode"

	"github.com/neurosnap/sentences"
)

// splitToSize breaks text into ordered pieces that concatenate back to
// text exactly, each at most maxSize code points (spec.md §4.6); a stretch
// with no break point is hard-split at maxSize. Split points are tried in
// priority order: paragraph ("\n\n"), sentence, word, then a hard split.
func splitToSize(text string, maxSize int) []string {
	if maxSize < 1 {
		maxSize = 1
	}
	r := []rune(text)
	if len(r) <= maxSize {
		if len(r) == 0 {
			return nil
		}
		return []string{text}
	}

	if idx := rightmostParagraphBreak(r, maxSize); idx > 0 {
		return append(splitToSize(string(r[:idx]), maxSize), splitToSize(string(r[idx:]), maxSize)...)
	}
	if idx := rightmostSentenceBreak(r, maxSize); idx > 0 {
		return append(splitToSize(string(r[:idx]), maxSize), splitToSize(string(r[idx:]), maxSize)...)
	}
	if idx := rightmostWordBreak(r, maxSize); idx > 0 {
		return append(splitToSize(string(r[:idx]), maxSize), splitToSize(string(r[idx:]), maxSize)...)
	}
	// No break point at or below maxSize: hard split, aligned to a
	// code-point boundary by construction since we operate on []rune.
	return append([]string{string(r[:maxSize])}, splitToSize(string(r[maxSize:]), maxSize)...)
}

// rightmostParagraphBreak finds the rightmost "\n\n" that ends at or
// before limit, returning an index into r that keeps the separating
// blank line attached to the left piece (so content is fully preserved).
func rightmostParagraphBreak(r []rune, limit int) int {
	if limit > len(r) {
		limit = len(r)
	}
	for i := limit; i >= 2; i-- {
		if i <= len(r) && r[i-2] == '\n' && r[i-1] == '\n' {
			return i
		}
	}
	return 0
}

// rightmostSentenceBreak finds the rightmost ". ", "! ", or "? " at or
// before limit using a Unicode sentence tokenizer, falling back to a
// simple punctuation scan when the tokenizer cannot be built (mirrors the
// teacher's calculateSentenceOverlap fallback).
func rightmostSentenceBreak(r []rune, limit int) int {
	if limit > len(r) {
		limit = len(r)
	}
	text := string(r[:limit])

	tokenizer := sentences.NewSentenceTokenizer(nil)
	if tokenizer != nil {
		sents := tokenizer.Tokenize(text)
		if len(sents) > 1 {
			// Sum rune lengths of all but the last detected sentence; the
			// tokenizer reports byte-string fragments that concatenate
			// back to (a prefix of) text.
			count := 0
			for i := 0; i < len(sents)-1; i++ {
				count += len([]rune(sents[i].Text))
			}
			if count > 0 && count <= limit {
				return count
			}
		}
	}

	best := 0
	for i := 1; i < limit; i++ {
		if (r[i-1] == '.' || r[i-1] == '!' || r[i-1] == '?') && unicode.IsSpace(r[i]) {
			best = i + 1
		}
	}
	return best
}

// rightmostWordBreak finds the rightmost whitespace rune at or before
// limit.
func rightmostWordBreak(r []rune, limit int) int {
	if limit > len(r) {
		limit = len(r)
	}
	for i := limit - 1; i > 0; i-- {
		if unicode.IsSpace(r[i]) {
			return i + 1
		}
	}
	return 0
}

// blankRunLines splits lines[start,end] (1-based inclusive) into
// paragraphs at blank-line boundaries, used by the structural and
// fallback strategies before falling back to splitToSize.
func blankRunLines(lines []string, start, end int) [][2]int {
	var paras [][2]int
	i := start
	for i <= end {
		if strings.TrimSpace(lines[i-1]) == "" {
			i++
			continue
		}
		j := i
		for j+1 <= end && strings.TrimSpace(lines[j]) != "" {
			j++
		}
		paras = append(paras, [2]int{i, j})
		i = j + 1
	}
	return paras
}
