package chunker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotcommander/mdchunk/pkg/chunker"
)

func TestSelect_Override(t *testing.T) {
	cfg := chunker.DefaultConfig()
	cfg.StrategyOverride = chunker.StrategyFallback
	a := chunker.Analysis{CodeBlockCount: 5}
	assert.Equal(t, chunker.StrategyFallback, chunker.Select(a, cfg))
}

func TestSelect_CodeAwareByRatio(t *testing.T) {
	cfg := chunker.DefaultConfig()
	a := chunker.Analysis{CodeRatio: 0.5}
	assert.Equal(t, chunker.StrategyCodeAware, chunker.Select(a, cfg))
}

func TestSelect_CodeAwareByTable(t *testing.T) {
	cfg := chunker.DefaultConfig()
	a := chunker.Analysis{TableCount: 1}
	assert.Equal(t, chunker.StrategyCodeAware, chunker.Select(a, cfg))
}

func TestSelect_Structural(t *testing.T) {
	cfg := chunker.DefaultConfig()
	a := chunker.Analysis{HeaderCount: 3, MaxHeaderDepth: 2}
	assert.Equal(t, chunker.StrategyStructural, chunker.Select(a, cfg))
}

func TestSelect_FallbackByDefault(t *testing.T) {
	cfg := chunker.DefaultConfig()
	a := chunker.Analysis{HeaderCount: 1, MaxHeaderDepth: 1}
	assert.Equal(t, chunker.StrategyFallback, chunker.Select(a, cfg))
}

func TestSelect_CodeAwarePriorityOverStructural(t *testing.T) {
	cfg := chunker.DefaultConfig()
	a := chunker.Analysis{HeaderCount: 5, MaxHeaderDepth: 3, CodeBlockCount: 1}
	assert.Equal(t, chunker.StrategyCodeAware, chunker.Select(a, cfg))
}
