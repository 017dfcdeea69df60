// Package app contains the Cobra command tree for psyscore.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/psyscore/internal/config"
	"github.com/blackwell-systems/psyscore/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "psyscore",
	Short: "Psychosocial-risk assessment scoring and action plans",
	Long: `psyscore turns raw questionnaire answers into per-question and
per-category scores, sentiment distributions, risk bands and an overall
company score, and attaches the action plans that match each category.

Run 'psyscore' with no arguments to list the available commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(w, "psyscore", appVersion)
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, "Use a subcommand:")
		_, _ = fmt.Fprintln(w, "  import    Load a snapshot file into the database")
		_, _ = fmt.Fprintln(w, "  report    Score one company and resolve its action plans")
		_, _ = fmt.Fprintln(w, "  batch     Score every company of a partner")
		_, _ = fmt.Fprintln(w, "  bands     Show the answer scale and risk thresholds")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/psyscore/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}

// setup loads configuration, applies the color settings and returns a
// logger writing to the command's error stream.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	output.SetNoColor(flagNoColor || !cfg.Output.Color || !isTerminal(cmd.OutOrStdout()))

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return cfg, logger, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
