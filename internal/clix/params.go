package clix

import (
	"fmt"

	"github.com/spf13/pflag"
)

// OutputFormat is the set of renderings the CLI commands support.
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatText  OutputFormat = "text"
	FormatTable OutputFormat = "table"
)

// ParseOutputFormat reads the --format flag and falls back to def when
// unset, rejecting anything outside the supported set.
func ParseOutputFormat(flags *pflag.FlagSet, def OutputFormat) (OutputFormat, error) {
	raw, _ := flags.GetString("format")
	if raw == "" {
		return def, nil
	}
	switch OutputFormat(raw) {
	case FormatJSON, FormatText, FormatTable:
		return OutputFormat(raw), nil
	default:
		return "", fmt.Errorf("unsupported --format %q: want json, text, or table", raw)
	}
}
