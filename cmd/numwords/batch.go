package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/az-ai-labs/numwords/internal/batch"
)

type batchFlags struct {
	input       string
	direction   string
	format      string
	workers     int
	metricsFile string
}

func newBatchCmd(a *app) *cobra.Command {
	var f batchFlags

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Convert one phrase or number per line",
		Long: `Batch reads one item per line from --input (or stdin) and converts every
line concurrently. Blank lines and lines starting with "#" are skipped.
Failed lines are reported in the output and do not stop the run.

  numwords batch --input phrases.txt --format json
  numwords batch --direction render --metrics-file numwords.prom < numbers.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.input, "input", "i", "", "input file (default stdin)")
	cmd.Flags().StringVar(&f.direction, "direction", "", "parse (phrase to number) or render (number to phrase)")
	cmd.Flags().StringVar(&f.format, "format", "", "output format: text, json or yaml")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "number of concurrent workers")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, f batchFlags) error {
	bc := a.cfg.Batch
	if cmd.Flags().Changed("direction") {
		bc.Direction = f.direction
	}
	if cmd.Flags().Changed("format") {
		bc.Format = f.format
	}
	if cmd.Flags().Changed("workers") {
		bc.Workers = f.workers
	}
	cfg := *a.cfg
	cfg.Batch = bc
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("batch flags: %w", err)
	}

	var in io.Reader = cmd.InOrStdin()
	if f.input != "" {
		file, err := os.Open(filepath.Clean(f.input))
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer func() { _ = file.Close() }()
		in = file
	}

	items, err := batch.ReadItems(in)
	if err != nil {
		return err
	}

	var metrics *batch.Metrics
	if f.metricsFile != "" {
		metrics = batch.NewMetrics()
	}

	runner, err := batch.New(batch.Options{
		Workers:   bc.Workers,
		Direction: bc.Direction,
		Mode:      renderMode(a.cfg.Render.Mode),
		Logger:    a.logger,
		Metrics:   metrics,
	})
	if err != nil {
		return err
	}

	results, err := runner.Run(cmd.Context(), items)
	if err != nil {
		return err
	}

	if err := batch.WriteResults(cmd.OutOrStdout(), results, bc.Format); err != nil {
		return err
	}

	if metrics != nil {
		if err := metrics.WriteFile(f.metricsFile); err != nil {
			return err
		}
		a.logger.Debug("metrics written", zap.String("path", f.metricsFile))
	}
	return nil
}
