package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/dotcommander/mdchunk/pkg/chunker"
)

// Config holds the CLI's view of chunking settings plus output
// preferences. Chunking mirrors pkg/chunker.Config field-for-field so a
// config.yaml (or MDCHUNK_* env var) can drive the engine directly.
type Config struct {
	Chunking struct {
		MaxChunkSize         int     `mapstructure:"max_chunk_size"`
		MinChunkSize         int     `mapstructure:"min_chunk_size"`
		OverlapSize          int     `mapstructure:"overlap_size"`
		PreserveAtomicBlocks bool    `mapstructure:"preserve_atomic_blocks"`
		ExtractPreamble      bool    `mapstructure:"extract_preamble"`
		CodeThreshold        float64 `mapstructure:"code_threshold"`
		StructureThreshold   int     `mapstructure:"structure_threshold"`
		OversizeTolerance    float64 `mapstructure:"oversize_tolerance"`
		StrategyOverride     string  `mapstructure:"strategy_override"`
	} `mapstructure:"chunking"`

	Output struct {
		Format string `mapstructure:"format"` // "json", "text", or "table"
		Color  bool   `mapstructure:"color"`
	} `mapstructure:"output"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

// LoadConfig reads config.yaml from the current directory (if present),
// layers in MDCHUNK_*-prefixed environment variables, and unmarshals the
// result. A missing config file is not an error; the engine defaults
// still apply.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("MDCHUNK")
	viper.AutomaticEnv()

	def := chunker.DefaultConfig()
	viper.SetDefault("chunking.max_chunk_size", def.MaxChunkSize)
	viper.SetDefault("chunking.min_chunk_size", def.MinChunkSize)
	viper.SetDefault("chunking.overlap_size", def.OverlapSize)
	viper.SetDefault("chunking.preserve_atomic_blocks", def.PreserveAtomicBlocks)
	viper.SetDefault("chunking.extract_preamble", def.ExtractPreamble)
	viper.SetDefault("chunking.code_threshold", def.CodeThreshold)
	viper.SetDefault("chunking.structure_threshold", def.StructureThreshold)
	viper.SetDefault("chunking.oversize_tolerance", def.OversizeTolerance)
	viper.SetDefault("output.format", "text")
	viper.SetDefault("output.color", true)
	viper.SetDefault("log.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// ChunkerConfig projects the CLI config down to the engine's Config type.
func (c *Config) ChunkerConfig() chunker.Config {
	return chunker.Config{
		MaxChunkSize:         c.Chunking.MaxChunkSize,
		MinChunkSize:         c.Chunking.MinChunkSize,
		OverlapSize:          c.Chunking.OverlapSize,
		PreserveAtomicBlocks: c.Chunking.PreserveAtomicBlocks,
		ExtractPreamble:      c.Chunking.ExtractPreamble,
		CodeThreshold:        c.Chunking.CodeThreshold,
		StructureThreshold:   c.Chunking.StructureThreshold,
		OversizeTolerance:    c.Chunking.OversizeTolerance,
		StrategyOverride:     chunker.Strategy(c.Chunking.StrategyOverride),
	}
}
