package main

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/TrevorS/groupsimilar"
)

func newRootCommand() *cobra.Command {
	flagValues := defaultOptions()
	threshold := groupsimilar.DefaultThreshold()
	var configFlag string
	var jsonFlag bool
	var verboseFlag bool

	rootCmd := &cobra.Command{
		Use:   "group-similar [flags] [file...]",
		Short: "Group similar lines of text",
		Long: `Reads newline-separated records from the given files, or from stdin, and
prints groups of similar records. Each group is keyed by a representative;
records that match nothing are omitted unless --all is set.

Settings are also read from $XDG_CONFIG_HOME/group-similar/config.toml when it
exists. Flags given on the command line take precedence over the file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, path, loaded, err := loadOptions(configFlag)
			if err != nil {
				return err
			}
			applyFlags(cmd.Flags(), &opts, flagValues, threshold)
			if jsonFlag {
				opts.Format = formatJSON
			}
			if verboseFlag {
				opts.LogLevel = zerolog.LevelDebugValue
			}
			opts.normalize()
			if err := opts.validate(); err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), opts.LogLevel)
			if loaded {
				logger.Debug().Str("path", path).Msg("loaded config")
			}
			return run(cmd, args, opts, logger)
		},
	}

	flags := rootCmd.Flags()
	flags.Var(&threshold, "threshold", "Largest dissimilarity (0 to 1) at which records are grouped")
	flags.BoolVar(&flagValues.All, "all", false, "Include records that matched nothing")
	flags.BoolVar(&jsonFlag, "json", false, "Shorthand for --format json")
	flags.StringVar(&flagValues.Format, "format", flagValues.Format, "Output format: text, json or table")
	flags.StringVar(&flagValues.Method, "method", flagValues.Method, "Linkage method: complete, single, average, weighted or ward")
	flags.IntVar(&flagValues.Workers, "workers", 0, "Goroutines used to compare records (0 = number of CPUs)")
	flags.StringVar(&flagValues.Color, "color", flagValues.Color, "Color output: auto, always or never")
	flags.BoolVar(&flagValues.IgnoreCase, "ignore-case", false, "Compare records case-insensitively")
	flags.BoolVar(&flagValues.Normalize, "normalize", false, "Compare records after Unicode NFC normalization")
	flags.BoolVar(&flagValues.Progress, "progress", false, "Show a progress bar on stderr while comparing")
	flags.BoolVar(&flagValues.Summary, "summary", false, "Print summary statistics after the groups")
	flags.StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging on stderr")

	return rootCmd
}

// applyFlags copies every flag the user set onto opts.
func applyFlags(flags *pflag.FlagSet, opts *options, set options, threshold groupsimilar.Threshold) {
	if flags.Changed("threshold") {
		opts.Threshold = threshold.Value()
	}
	if flags.Changed("all") {
		opts.All = set.All
	}
	if flags.Changed("format") {
		opts.Format = set.Format
	}
	if flags.Changed("method") {
		opts.Method = set.Method
	}
	if flags.Changed("workers") {
		opts.Workers = set.Workers
	}
	if flags.Changed("color") {
		opts.Color = set.Color
	}
	if flags.Changed("ignore-case") {
		opts.IgnoreCase = set.IgnoreCase
	}
	if flags.Changed("normalize") {
		opts.Normalize = set.Normalize
	}
	if flags.Changed("progress") {
		opts.Progress = set.Progress
	}
	if flags.Changed("summary") {
		opts.Summary = set.Summary
	}
}

func run(cmd *cobra.Command, args []string, opts options, logger zerolog.Logger) error {
	lines, err := readRecords(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	records := toRecords(lines, newKeyFunc(opts.IgnoreCase, opts.Normalize))

	method, err := groupsimilar.ParseMethod(opts.Method)
	if err != nil {
		return err
	}
	threshold, err := groupsimilar.NewThreshold(opts.Threshold)
	if err != nil {
		return err
	}

	cfg := groupsimilar.DefaultConfig(groupsimilar.JaroWinklerNamed[record]())
	cfg.Threshold = threshold
	cfg.Method = method
	cfg.Workers = opts.Workers

	finish := func() {}
	if opts.Progress && len(records) > 1 {
		cfg.Progress, finish = newProgress(cmd.ErrOrStderr(), len(records))
	}

	logger.Debug().
		Int("records", len(records)).
		Int("pairs", groupsimilar.CondensedLen(len(records))).
		Str("method", string(method)).
		Stringer("threshold", threshold).
		Msg("grouping")

	start := time.Now()
	result, err := groupsimilar.Group(records, cfg)
	finish()
	if err != nil {
		return fmt.Errorf("group records: %w", err)
	}

	logger.Debug().
		Int("steps", len(result.Steps)).
		Int("clusters", len(result.Clusters)).
		Dur("elapsed", time.Since(start)).
		Msg("grouped")

	out := cmd.OutOrStdout()
	view := lineResult(result, opts.All)

	switch opts.Format {
	case formatJSON:
		err = renderJSON(out, view)
	case formatTable:
		err = renderGroupTable(out, view)
	default:
		colorize := shouldColorize(opts.Color, out)
		if colorize && opts.Color == colorAlways {
			text.EnableColors()
		}
		err = renderText(out, view, colorize)
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if opts.Summary {
		// Keep stdout a single JSON document.
		w := out
		if opts.Format == formatJSON {
			w = cmd.ErrOrStderr()
		}
		if err := renderSummary(w, groupsimilar.Summarize(result)); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	return nil
}
