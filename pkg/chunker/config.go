package chunker

// Config holds the thresholds and toggles a chunking run is parametrized
// by. A Config is constructed once (via DefaultConfig or a zero value plus
// field overrides) and never mutated afterward; Validate applies the
// auto-adjustments spec.md §3 allows and reports anything it cannot fix.
type Config struct {
	MaxChunkSize         int
	MinChunkSize         int
	OverlapSize          int
	PreserveAtomicBlocks bool
	ExtractPreamble      bool
	CodeThreshold        float64
	StructureThreshold   int
	OversizeTolerance    float64
	StrategyOverride     Strategy
}

// DefaultConfig returns the named defaults from spec.md §3.
func DefaultConfig() Config {
	return Config{
		MaxChunkSize:         4096,
		MinChunkSize:         512,
		OverlapSize:          200,
		PreserveAtomicBlocks: true,
		ExtractPreamble:      true,
		CodeThreshold:        0.3,
		StructureThreshold:   3,
		OversizeTolerance:    0.2,
		StrategyOverride:     strategyNone,
	}
}

// Validate checks the ranges spec.md §3 requires, auto-adjusting the minor
// contradictions the spec names and returning a *ConfigError for anything
// it cannot reconcile.
func (c *Config) Validate() error {
	if c.MaxChunkSize < 1 {
		return &ConfigError{Field: "max_chunk_size", Message: "must be >= 1"}
	}
	if c.MinChunkSize < 1 {
		return &ConfigError{Field: "min_chunk_size", Message: "must be >= 1"}
	}
	if c.OverlapSize < 0 {
		return &ConfigError{Field: "overlap_size", Message: "must be >= 0"}
	}
	if c.OverlapSize >= c.MaxChunkSize {
		return &ConfigError{Field: "overlap_size", Message: "must be less than max_chunk_size"}
	}
	if c.CodeThreshold < 0 || c.CodeThreshold > 1 {
		return &ConfigError{Field: "code_threshold", Message: "must be in [0,1]"}
	}
	if c.StructureThreshold < 1 {
		return &ConfigError{Field: "structure_threshold", Message: "must be >= 1"}
	}
	if c.OversizeTolerance < 0 || c.OversizeTolerance > 1 {
		return &ConfigError{Field: "oversize_tolerance", Message: "must be in [0,1]"}
	}
	switch c.StrategyOverride {
	case strategyNone, StrategyCodeAware, StrategyStructural, StrategyFallback, "":
		if c.StrategyOverride == "" {
			c.StrategyOverride = strategyNone
		}
	default:
		return &ConfigError{Field: "strategy_override", Message: "must be one of code_aware, structural, fallback, none"}
	}

	// Minor contradiction: min > max auto-adjusts rather than erroring.
	if c.MinChunkSize > c.MaxChunkSize {
		c.MinChunkSize = c.MaxChunkSize / 2
		if c.MinChunkSize < 1 {
			c.MinChunkSize = 1
		}
	}
	return nil
}

// effectiveMax returns max_chunk_size inflated by oversize_tolerance,
// floored to an integer, as used by the structural and fallback
// strategies when deciding whether a section/paragraph still fits without
// a further split (spec.md §4.4, §4.5).
func (c Config) effectiveMax() int {
	return int(float64(c.MaxChunkSize) * (1 + c.OversizeTolerance))
}
