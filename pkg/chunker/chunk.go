package chunker

import (
	"strings"
	"time"
)

// Chunk is the primary host-facing operation (spec.md §6): analyze once,
// select a strategy, apply it, then post-process. It is deterministic and
// allocates no external resources; ProcessingTime is a diagnostic
// wall-clock measurement only and never influences which chunks are
// produced.
func Chunk(text string, cfg Config) (ChunkingResult, error) {
	start := time.Now()

	if strings.TrimSpace(text) == "" {
		return ChunkingResult{}, &InputError{Field: "text", Err: ErrEmptyInput}
	}

	if err := cfg.Validate(); err != nil {
		return ChunkingResult{}, err
	}

	a, err := Analyze(text)
	if err != nil {
		return ChunkingResult{}, err
	}

	strat := Select(a, cfg)
	lines := normalizeLines(text)
	rawChunks, warnings := implFor(strat).apply(lines, a, cfg)

	chunks, postWarnings, err := post(rawChunks, a.TotalLines, cfg)
	if err != nil {
		return ChunkingResult{}, err
	}

	return ChunkingResult{
		Chunks:         chunks,
		StrategyUsed:   strat,
		ProcessingTime: time.Since(start),
		Warnings:       append(warnings, postWarnings...),
	}, nil
}
