package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/dotcommander/mdchunk/pkg/chunker"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Report the structural summary a chunking run would use",
	Long:  `Scans a Markdown file (or stdin, with "-") and prints header, code block, table, and list counts without producing chunks.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := configFromContext(cmd.Context()); err != nil {
			return err
		}

		text, err := readInput(args)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		a, err := chunker.Analyze(text)
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Metric", "Value"})
		table.Append([]string{"total_lines", strconv.Itoa(a.TotalLines)})
		table.Append([]string{"total_chars", strconv.Itoa(a.TotalChars)})
		table.Append([]string{"code_ratio", fmt.Sprintf("%.2f", a.CodeRatio)})
		table.Append([]string{"code_blocks", strconv.Itoa(a.CodeBlockCount)})
		table.Append([]string{"headers", strconv.Itoa(a.HeaderCount)})
		table.Append([]string{"max_header_depth", strconv.Itoa(a.MaxHeaderDepth)})
		table.Append([]string{"tables", strconv.Itoa(a.TableCount)})
		table.Append([]string{"lists", strconv.Itoa(a.ListCount)})
		table.Append([]string{"has_preamble", strconv.FormatBool(a.HasPreamble)})
		table.Render()

		return nil
	},
}
