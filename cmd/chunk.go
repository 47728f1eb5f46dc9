package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dotcommander/mdchunk/internal/clix"
	"github.com/dotcommander/mdchunk/pkg/chunker"
)

var (
	chunkMaxSize    int
	chunkMinSize    int
	chunkOverlap    int
	chunkStrategy   string
	chunkOutputPath string
)

var chunkCmd = &cobra.Command{
	Use:   "chunk [file]",
	Short: "Split a Markdown file into retrieval-sized chunks",
	Long:  `Reads a Markdown file (or stdin, with "-") and writes the resulting chunks as text by default, or with --format json as JSON, one object per line, ready for downstream ingestion.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFromContext(cmd.Context())
		if err != nil {
			return err
		}

		runID := uuid.New().String()
		log.WithField("run_id", runID).Debug("starting chunk command")

		text, err := readInput(args)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		cc := cfg.ChunkerConfig()
		if cmd.Flags().Changed("max-size") {
			cc.MaxChunkSize = chunkMaxSize
		}
		if cmd.Flags().Changed("min-size") {
			cc.MinChunkSize = chunkMinSize
		}
		if cmd.Flags().Changed("overlap") {
			cc.OverlapSize = chunkOverlap
		}
		if chunkStrategy != "" {
			cc.StrategyOverride = chunker.Strategy(chunkStrategy)
		}

		result, err := chunker.Chunk(text, cc)
		if err != nil {
			log.WithField("run_id", runID).WithError(err).Error("chunking failed")
			return fmt.Errorf("chunking failed: %w", err)
		}

		for _, w := range result.Warnings {
			log.WithField("run_id", runID).Warn(w)
		}

		format, err := clix.ParseOutputFormat(cmd.Flags(), clix.OutputFormat(cfg.Output.Format))
		if err != nil {
			return err
		}

		out := os.Stdout
		if chunkOutputPath != "" {
			f, err := os.Create(chunkOutputPath)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			return writeChunks(f, result, format, cfg.Output.Color)
		}
		return writeChunks(out, result, format, cfg.Output.Color)
	},
}

func writeChunks(w io.Writer, result chunker.ChunkingResult, format clix.OutputFormat, useColor bool) error {
	switch format {
	case clix.FormatJSON:
		enc := json.NewEncoder(w)
		for _, c := range result.Chunks {
			if err := enc.Encode(chunker.Serialize(c)); err != nil {
				return err
			}
		}
		return nil
	case clix.FormatTable, clix.FormatText:
		label := color.New(color.FgCyan, color.Bold)
		if !useColor {
			label.DisableColor()
		}
		for i, c := range result.Chunks {
			label.Fprintf(w, "--- chunk %d (lines %d-%d, %s) ---\n", i, c.StartLine, c.EndLine, result.StrategyUsed)
			fmt.Fprintln(w, c.Content)
		}
		fmt.Fprintf(w, "\n%d chunks, strategy=%s, took=%s\n", len(result.Chunks), result.StrategyUsed, result.ProcessingTime)
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func init() {
	chunkCmd.Flags().IntVar(&chunkMaxSize, "max-size", 0, "maximum chunk size in characters")
	chunkCmd.Flags().IntVar(&chunkMinSize, "min-size", 0, "minimum chunk size in characters")
	chunkCmd.Flags().IntVar(&chunkOverlap, "overlap", 0, "overlap size in characters")
	chunkCmd.Flags().StringVar(&chunkStrategy, "strategy", "", "force a strategy: code_aware, structural, fallback")
	chunkCmd.Flags().StringVarP(&chunkOutputPath, "output", "o", "", "write output to a file instead of stdout")
	chunkCmd.Flags().String("format", "", "output format: json, text, or table")
}
