package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/leapstack-labs/sqlsplit/internal/cli/output"
	"github.com/leapstack-labs/sqlsplit/internal/splitter"
	"github.com/leapstack-labs/sqlsplit/internal/writer"
	"github.com/spf13/cobra"
)

// NewSplitCommand creates the split command.
func NewSplitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split <input-file>",
		Short: "Split a SQL dump into per-object files",
		Long: `Split a SQL dump file into multiple .sql files.

A new file is cut each time the configured number of condition hits is
reached. Output files are named after the table, view, function, or
procedure found in the matching statement; when no name can be extracted
the file gets a sequential file_<n> name.`,
		Example: `  # One file per DDL statement (default conditions)
  sqlsplit split dump.sql

  # Cut every second DDL statement, skipping blank lines
  sqlsplit split dump.sql --trigger-count 2 --ignore-blank-lines

  # Custom conditions and a summary report
  sqlsplit split dump.sql -c "DROP TABLE" -c "ALTER TABLE" --report`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, args[0])
		},
	}
	return cmd
}

func runSplit(cmd *cobra.Command, inputPath string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file %s: %w", inputPath, err)
	}
	defer in.Close()

	sink, err := writer.NewSink(outputDir)
	if err != nil {
		return err
	}

	eng, err := splitter.New(splitter.Config{
		Conditions:       cfg.Conditions,
		TriggerCount:     cfg.TriggerCount,
		IgnoreBlankLines: cfg.IgnoreBlankLines,
		Logger:           cmdCtx.Logger,
	})
	if err != nil {
		return err
	}

	start := time.Now()
	var failed int
	emitted, err := eng.Split(in, func(u splitter.Unit) error {
		if saveErr := sink.Save(u.Name, u.Lines); saveErr != nil {
			// Write failures are isolated per unit; report and keep going.
			failed++
			cmdCtx.Renderer.Errorf("%v", saveErr)
			return nil
		}
		cmdCtx.Logger.Debug("unit written", "name", u.Name, "lines", len(u.Lines))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", inputPath, err)
	}

	if cfg.Report {
		return cmdCtx.Renderer.RenderReport(&output.Report{
			InputFile:        inputPath,
			OutputDir:        sink.Dir(),
			TotalFiles:       emitted - failed,
			FailedWrites:     failed,
			Elapsed:          time.Since(start),
			TriggerCount:     cfg.TriggerCount,
			IgnoreBlankLines: cfg.IgnoreBlankLines,
			Conditions:       cfg.Conditions,
		})
	}

	return nil
}
