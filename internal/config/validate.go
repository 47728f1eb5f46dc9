package config

import (
	"errors"
	"fmt"
)

// Validate checks the CLI-level configuration fields that the engine's
// own Config.Validate does not see: output format and log level. Engine
// thresholds are validated separately, by the engine, once projected via
// ChunkerConfig.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "json", "text", "table":
	default:
		return fmt.Errorf("output.format %q must be one of json, text, table", c.Output.Format)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("log.level must be one of debug, info, warn, error")
	}

	return nil
}
