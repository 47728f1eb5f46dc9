package chunker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/mdchunk/pkg/chunker"
)

func TestDefaultConfig_Validates(t *testing.T) {
	cfg := chunker.DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate_RejectsBadOverlap(t *testing.T) {
	cfg := chunker.DefaultConfig()
	cfg.OverlapSize = cfg.MaxChunkSize
	err := cfg.Validate()
	require.Error(t, err)
	var cfgErr *chunker.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestConfig_Validate_AutoAdjustsMinAboveMax(t *testing.T) {
	cfg := chunker.DefaultConfig()
	cfg.MaxChunkSize = 100
	cfg.MinChunkSize = 900
	require.NoError(t, cfg.Validate())
	assert.LessOrEqual(t, cfg.MinChunkSize, cfg.MaxChunkSize)
}

func TestConfig_Validate_RejectsBadStrategyOverride(t *testing.T) {
	cfg := chunker.DefaultConfig()
	cfg.StrategyOverride = "bogus"
	require.Error(t, cfg.Validate())
}
