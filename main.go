// Package main provides the entry point for the timerange CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/timerange/internal/logger"
	"github.com/sgaunet/timerange/internal/ui"
	"github.com/sgaunet/timerange/pkg/config"
	"github.com/sgaunet/timerange/pkg/timerange"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	log      *bullets.Logger

	flagResolution  int64
	flagMinInterval string
)

var rootCmd = &cobra.Command{
	Use:   "timerange",
	Short: "Dashboard time range utilities",
	Long: `timerange parses, describes and resolves dashboard time range
expressions like "now-6h to now", and picks display intervals for
time-series charts.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		log = logger.NewLogger(logLevel)
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe <expression>",
	Short: "Describe a shorthand range expression",
	Long: `Describe a shorthand expression such as "6h", "now-7d" or "+30m".
Preset expressions resolve to their catalog label; fresh now±N<unit>
expressions get a derived label; anything else is reported as invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runDescribe(args[0])
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <from> <to>",
	Short: "Resolve a raw range to absolute instants",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return runResolve(args[0], args[1])
	},
}

var intervalCmd = &cobra.Command{
	Use:   "interval <from> <to>",
	Short: "Pick a display interval for a range",
	Long: `Pick the chart bucket size for a range shown at the configured
resolution, clamped below by the configured minimum interval.`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return runInterval(args[0], args[1])
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the preset catalog",
	Run: func(_ *cobra.Command, _ []string) {
		for _, opt := range timerange.RangeOptions() {
			fmt.Printf("%-22s %-12s %s\n", opt.From, opt.To, opt.Display)
		}
	},
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively pick a preset and resolve it",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runPick()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info",
		"Set log level (debug, info, warn, error)")
	intervalCmd.Flags().Int64Var(&flagResolution, "resolution", 0,
		"Number of display buckets (defaults from config)")
	intervalCmd.Flags().StringVar(&flagMinInterval, "min-interval", "",
		"Lower clamp for the interval, e.g. 10s (defaults from config)")

	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(intervalCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(pickCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func resolveOptions(cfg *config.Config) timerange.ResolveOptions {
	return timerange.ResolveOptions{
		Location:             cfg.Location(),
		WeekStart:            cfg.WeekStartDay(),
		FiscalYearStartMonth: cfg.FiscalStartMonth(),
	}
}

func runDescribe(expr string) error {
	opt, kind := timerange.DescribeTextRange(expr)

	switch kind {
	case timerange.MatchPreset:
		log.Debugf("Catalog hit: from=%s to=%s", opt.From, opt.To)
	case timerange.MatchPattern:
		log.Debugf("Derived label: from=%s to=%s", opt.From, opt.To)
	case timerange.MatchNone:
		log.Warnf("Expression not recognized: expression=%s", expr)
	}

	fmt.Printf("%s\n", opt.Display)
	fmt.Printf("from: %s\nto:   %s\n", opt.From, opt.To)
	if opt.Invalid {
		fmt.Println("valid: false")
	}
	return nil
}

func runResolve(from, to string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	raw := timerange.RawTimeRange{From: from, To: to}
	opts := resolveOptions(cfg)

	tr, err := timerange.Resolve(raw, opts)
	if err != nil {
		return fmt.Errorf("failed to resolve range: %w", err)
	}

	log.Debugf("Range resolved: timezone=%s", cfg.Timezone)
	fmt.Printf("%s\n", timerange.DescribeTimeRange(raw, opts))
	fmt.Printf("from: %s\nto:   %s\n",
		tr.From.In(cfg.Location()).Format("2006-01-02 15:04:05"),
		tr.To.In(cfg.Location()).Format("2006-01-02 15:04:05"))
	return nil
}

func runInterval(from, to string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	resolution := cfg.Resolution
	if flagResolution > 0 {
		resolution = flagResolution
	}
	minInterval := cfg.MinInterval
	if flagMinInterval != "" {
		minInterval = flagMinInterval
	}

	tr, err := timerange.Resolve(timerange.RawTimeRange{From: from, To: to}, resolveOptions(cfg))
	if err != nil {
		return fmt.Errorf("failed to resolve range: %w", err)
	}

	values, err := timerange.CalculateInterval(tr, resolution, minInterval)
	if err != nil {
		return fmt.Errorf("failed to calculate interval: %w", err)
	}

	log.Debugf("Interval calculated: resolution=%d min=%s", resolution, minInterval)
	fmt.Printf("interval:   %s\nintervalMs: %d\n", values.Interval, values.IntervalMs)
	return nil
}

func runPick() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	selector := ui.NewRangeSelector()
	opt, err := selector.SelectRange(timerange.RangeOptions())
	if err != nil {
		return fmt.Errorf("failed to pick a preset: %w", err)
	}

	opts := resolveOptions(cfg)
	tr, err := timerange.Resolve(timerange.RawTimeRange{From: opt.From, To: opt.To}, opts)
	if err != nil {
		return fmt.Errorf("failed to resolve preset: %w", err)
	}

	fmt.Printf("%s\n", opt.Display)
	fmt.Printf("from: %s\nto:   %s\n",
		tr.From.In(cfg.Location()).Format("2006-01-02 15:04:05"),
		tr.To.In(cfg.Location()).Format("2006-01-02 15:04:05"))
	return nil
}
