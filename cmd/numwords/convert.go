package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/az-ai-labs/numwords/internal/config"
	"github.com/az-ai-labs/numwords/numtext"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <phrase...>",
		Short: "Convert an English phrase to a number",
		Long: `Parse joins its arguments with spaces and prints the number they spell.

  numwords parse "four hundred and twelve"   # 412
  numwords parse two thirds                  # 0.6666666666666666
  numwords parse minus seventy-five point two`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase := strings.Join(args, " ")
			n, err := numtext.Parse(phrase)
			if err != nil {
				a.logger.Debug("parse failed", zap.String("phrase", phrase), zap.Error(err))
				return fmt.Errorf("parse %q: %w", phrase, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), n.String())
			return nil
		},
	}
}

func newRenderCmd(a *app) *cobra.Command {
	var digits bool

	cmd := &cobra.Command{
		Use:   "render <number>",
		Short: "Convert a number to an English phrase",
		Long: `Render prints the English phrase for an integer of any size or a decimal.

  numwords render 2003984            # two million three thousand nine hundred and eighty four
  numwords render 0.25               # one quarter
  numwords render --digits 0.25      # zero point two five`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := renderMode(a.cfg.Render.Mode)
			if digits {
				mode = renderMode(config.RenderDigits)
			}
			phrase, err := numtext.RenderString(args[0], mode)
			if err != nil {
				return fmt.Errorf("render %q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), phrase)
			return nil
		},
	}

	cmd.Flags().BoolVar(&digits, "digits", false, "read fractional digits one by one instead of using fraction words")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the numwords version",
		Args:  cobra.NoArgs,
		// The version command needs no config or logger.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "numwords %s\n", version)
		},
	}
}
