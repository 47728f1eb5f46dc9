// Package chunker turns a Markdown document into an ordered sequence of
// text chunks sized for retrieval-augmented generation ingestion.
//
// The engine is a pure, synchronous transformation of (text, Config) into
// a ChunkingResult: analyze once, pick a strategy, split, then post-process
// (sort, overlap, enrich, validate). No package-level state is read or
// written, and no goroutines are spawned; callers parallelize across
// documents themselves.
package chunker

import "time"

// ContentType classifies what a Chunk primarily contains.
type ContentType string

const (
	ContentText     ContentType = "text"
	ContentCode     ContentType = "code"
	ContentTable    ContentType = "table"
	ContentList     ContentType = "list"
	ContentMixed    ContentType = "mixed"
	ContentPreamble ContentType = "preamble"
)

// OversizeReason explains why a Chunk was allowed to exceed max_chunk_size.
type OversizeReason string

const (
	OversizeCodeBlock OversizeReason = "code_block_integrity"
	OversizeTable     OversizeReason = "table_integrity"
	OversizeSection   OversizeReason = "section_integrity"
)

// Strategy names one of the three chunking algorithms.
type Strategy string

const (
	StrategyCodeAware  Strategy = "code_aware"
	StrategyStructural Strategy = "structural"
	StrategyFallback   Strategy = "fallback"
	// strategyNone is only a valid value of Config.StrategyOverride; it is
	// never returned by Select.
	strategyNone Strategy = "none"
)

// FenceKind is the delimiter character that opened a fenced code block.
type FenceKind string

const (
	FenceBacktick FenceKind = "backtick"
	FenceTilde    FenceKind = "tilde"
)

// Chunk is one contiguous substring of the source document plus the
// metadata the post-processor has attached to it. Line numbers are
// 1-based and inclusive on both ends.
type Chunk struct {
	Content   string
	StartLine int
	EndLine   int
	Metadata  map[string]any
}

// Header is one ATX heading found by the analyzer.
type Header struct {
	Line  int
	Level int
	Text  string
}

// CodeBlock is one fenced code block found by the analyzer.
type CodeBlock struct {
	StartLine    int
	EndLine      int
	Language     string
	FenceKind    FenceKind
	Unterminated bool
}

// Table is one pipe-table region found by the analyzer.
type Table struct {
	StartLine   int
	EndLine     int
	ColumnCount int
}

// Analysis is the structural summary the analyzer produces in a single
// pass over the document. It is immutable once returned.
type Analysis struct {
	TotalChars      int
	TotalLines      int
	CodeRatio       float64
	CodeBlockCount  int
	HeaderCount     int
	TableCount      int
	ListCount       int
	MaxHeaderDepth  int
	CodeBlocks      []CodeBlock
	Headers         []Header
	Tables          []Table
	HasPreamble     bool
	PreambleEndLine int
}

// ChunkingResult is the top-level return value of Chunk.
type ChunkingResult struct {
	Chunks         []Chunk
	StrategyUsed   Strategy
	ProcessingTime time.Duration
	Warnings       []string
}
