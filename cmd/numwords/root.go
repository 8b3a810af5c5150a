package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/az-ai-labs/numwords/internal/config"
	"github.com/az-ai-labs/numwords/internal/logging"
	"github.com/az-ai-labs/numwords/numtext"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app holds state shared by all subcommands. It is filled in by the root
// command's PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "numwords",
		Short: "Convert between numbers and English number phrases",
		Long: `numwords parses English number phrases into numbers and renders numbers
as English phrases.

  numwords parse two million three thousand and five
  numwords render 1234567
  numwords batch --input phrases.txt --format json`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to YAML config (default $"+config.EnvPath+" or ./numwords.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newParseCmd(a),
		newRenderCmd(a),
		newBatchCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	logger.Debug("config loaded",
		zap.String("render_mode", cfg.Render.Mode),
		zap.Int("batch_workers", cfg.Batch.Workers))
	return nil
}

// renderMode maps the configured render mode to numtext.Mode.
func renderMode(mode string) numtext.Mode {
	if mode == config.RenderDigits {
		return numtext.DigitWords
	}
	return numtext.FractionWords
}
