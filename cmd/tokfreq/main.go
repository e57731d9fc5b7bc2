// Package main provides the CLI entrypoint for tokfreq.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tokfreq/internal/analysis"
	"github.com/verte-zerg/tokfreq/internal/chart"
	"github.com/verte-zerg/tokfreq/internal/config"
	"github.com/verte-zerg/tokfreq/internal/logging"
	"github.com/verte-zerg/tokfreq/internal/model"
	"github.com/verte-zerg/tokfreq/internal/report"
	"github.com/verte-zerg/tokfreq/internal/stats"
	"github.com/verte-zerg/tokfreq/internal/store"
	"github.com/verte-zerg/tokfreq/internal/wordlist"
)

const defaultConfigName = "tokfreq.toml"

var (
	flagPunctuation bool
	flagLower       bool
	flagStem        bool
	flagStop        bool
	flagProper      bool
	flagNFC         bool
	flagStopFile    string

	flagOutput   string
	flagFormat   string
	flagPlot     string
	flagNoPlot   bool
	flagTop      int
	flagTermPlot bool

	flagConfig   string
	flagLogLevel string

	configForce bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tokfreq FILE",
		Short: "Rank word frequencies in a text file and plot them against Zipf's law",
		Long: `tokfreq reads one text file, normalizes and counts its tokens, prints
"<token> <count>" lines in descending frequency, and writes a log-log
rank/frequency chart with a Zipf reference curve.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: false,
		RunE:          runRootCmd,
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&flagPunctuation, "punctuation", "p", false, "retain punctuation (split on word boundaries instead of stripping)")
	flags.BoolVarP(&flagLower, "lower", "l", false, "lowercase ASCII letters")
	flags.BoolVarP(&flagStem, "stem", "s", false, "reduce tokens to their English Snowball stem")
	flags.BoolVarP(&flagStop, "stop", "t", false, "remove English stop words")
	flags.BoolVarP(&flagProper, "proper", "n", false, "keep only suspected proper nouns")
	flags.BoolVar(&flagNFC, "nfc", false, "apply Unicode NFC normalization before anything else")
	flags.StringVar(&flagStopFile, "stop-file", "", "extra stop words, one per line (used with --stop)")
	flags.StringVarP(&flagOutput, "output", "o", "", "report destination (default: stdout)")
	flags.StringVarP(&flagFormat, "format", "f", string(model.FormatText), "report format: text or sqlite")
	flags.StringVar(&flagPlot, "plot", chart.DefaultPath, "chart destination (.html, .svg or .png)")
	flags.BoolVar(&flagNoPlot, "no-plot", false, "do not write the chart")
	flags.IntVar(&flagTop, "top", 0, "print the N most frequent tokens to stderr")
	flags.BoolVar(&flagTermPlot, "term-plot", false, "print a rank/frequency plot to stderr")
	flags.StringVar(&flagConfig, "config", "", "TOML file with default options")
	flags.StringVar(&flagLogLevel, "log-level", logging.DefaultLevel, "log level: debug, info, warn or error")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFileConfig(cmd, fileCfg)

	cfg := model.RunConfig{
		InputPath:        args[0],
		StripPunctuation: !flagPunctuation,
		Lowercase:        flagLower,
		Stem:             flagStem,
		RemoveStopWords:  flagStop,
		ProperNouns:      flagProper,
		NFC:              flagNFC,
		StopWordsFile:    flagStopFile,
		OutputPath:       flagOutput,
		Format:           model.Format(flagFormat),
		Top:              flagTop,
		TermPlot:         flagTermPlot,
	}
	if !flagNoPlot {
		cfg.PlotPath = flagPlot
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), flagLogLevel)
	if err != nil {
		return err
	}

	cmd.SilenceUsage = true
	return run(cmd.Context(), cfg, logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func run(ctx context.Context, cfg model.RunConfig, logger *log.Logger, stdout, stderr io.Writer) (err error) {
	raw, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if cfg.StopWordsFile != "" && !cfg.RemoveStopWords {
		logger.Warn("ignoring stop-word file without --stop", "path", cfg.StopWordsFile)
	}
	stop, err := wordlist.StopWords(cfg.RemoveStopWords, cfg.StopWordsFile)
	if err != nil {
		return fmt.Errorf("failed to load stop words: %w", err)
	}
	logger.Debug("loaded input", "path", cfg.InputPath, "bytes", len(raw), "stop_words", stop.Len())

	result := analysis.New(cfg, stop, logger).Run(string(raw))
	logger.Debug("ranked", "types", len(result.Entries), "tokens", result.Tokens)

	writer, err := openWriter(ctx, cfg, stdout)
	if err != nil {
		return err
	}
	writeErr := writer.Write(result.Entries)
	closeErr := writer.Close()
	if writeErr != nil {
		return writeErr
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close output: %w", closeErr)
	}
	if !cfg.WritesStdout() {
		logger.Info("wrote report", "path", cfg.OutputPath, "format", cfg.Format, "entries", len(result.Entries))
	}

	counts := result.Counts()
	if cfg.PlotPath != "" {
		if err := chart.WriteFile(cfg.PlotPath, counts, filepath.Base(cfg.InputPath)); err != nil {
			return err
		}
		logger.Info("wrote chart", "path", cfg.PlotPath)
	}

	useColor := stats.ShouldUseColor(stderr, false)
	if cfg.Top > 0 {
		if err := stats.RenderTop(stderr, result.Entries, stats.Total(result.Entries), cfg.Top, useColor); err != nil {
			return fmt.Errorf("failed to print summary: %w", err)
		}
	}
	if cfg.TermPlot {
		if err := stats.RenderRankPlot(stderr, counts, 0, 0, useColor); err != nil {
			return fmt.Errorf("failed to print plot: %w", err)
		}
	}
	return nil
}

func openWriter(ctx context.Context, cfg model.RunConfig, stdout io.Writer) (report.Writer, error) {
	switch cfg.Format {
	case model.FormatSQLite:
		st, err := store.Open(cfg.OutputPath, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open db: %w", err)
		}
		return report.NewStoreWriter(ctx, st), nil
	default:
		dest, err := report.Open(cfg.OutputPath, stdout)
		if err != nil {
			return nil, err
		}
		return report.NewTextWriter(dest), nil
	}
}

func applyFileConfig(cmd *cobra.Command, fileCfg config.FileConfig) {
	applyBoolConfig(cmd, "punctuation", &flagPunctuation, fileCfg.Analysis.Punctuation)
	applyBoolConfig(cmd, "lower", &flagLower, fileCfg.Analysis.Lower)
	applyBoolConfig(cmd, "stem", &flagStem, fileCfg.Analysis.Stem)
	applyBoolConfig(cmd, "stop", &flagStop, fileCfg.Analysis.Stop)
	applyBoolConfig(cmd, "proper", &flagProper, fileCfg.Analysis.Proper)
	applyBoolConfig(cmd, "nfc", &flagNFC, fileCfg.Analysis.NFC)
	applyStringConfig(cmd, "stop-file", &flagStopFile, fileCfg.Analysis.StopFile)
	applyStringConfig(cmd, "output", &flagOutput, fileCfg.Output.Output)
	applyStringConfig(cmd, "format", &flagFormat, fileCfg.Output.Format)
	applyStringConfig(cmd, "plot", &flagPlot, fileCfg.Output.Plot)
	applyBoolConfig(cmd, "no-plot", &flagNoPlot, fileCfg.Output.NoPlot)
	applyIntConfig(cmd, "top", &flagTop, fileCfg.Output.Top)
	applyBoolConfig(cmd, "term-plot", &flagTermPlot, fileCfg.Output.TermPlot)
	applyStringConfig(cmd, "log-level", &flagLogLevel, fileCfg.Log.Level)
}

func validateConfig(cfg model.RunConfig) error {
	switch cfg.Format {
	case model.FormatText:
	case model.FormatSQLite:
		if cfg.WritesStdout() {
			return errors.New("--format sqlite needs --output FILE")
		}
	default:
		return fmt.Errorf("unknown format %q (want text or sqlite)", cfg.Format)
	}
	if cfg.Top < 0 {
		return errors.New("--top must be >= 0")
	}
	if cfg.PlotPath != "" && cfg.PlotPath == cfg.OutputPath {
		return errors.New("--plot and --output must differ")
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config [PATH]",
		Short: "Write a commented config file template",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigCmd,
	}
	cmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	return cmd
}

func runConfigCmd(cmd *cobra.Command, args []string) error {
	path := defaultConfigName
	if len(args) == 1 {
		path = args[0]
	}
	if !configForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s (use --force to overwrite)", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), path); err != nil {
		// Best-effort path echo.
		_ = err
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tokfreq configuration
# Pass with --config. Uncomment a value to enable it. CLI flags override config values.

[analysis]
# punctuation = false
# lower = false
# stem = false
# stop = false
# proper = false
# nfc = false
# stop-file = "extra-stop-words.txt"

[output]
# output = "-"
# format = %q
# plot = %q
# no-plot = false
# top = 0
# term-plot = false

[log]
# level = %q
`, model.FormatText, chart.DefaultPath, logging.DefaultLevel)
}
