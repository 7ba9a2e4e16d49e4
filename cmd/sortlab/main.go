package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortlab/internal/config"
	"github.com/san-kum/sortlab/internal/experiment"
	"github.com/san-kum/sortlab/internal/export"
	"github.com/san-kum/sortlab/internal/sorting"
	"github.com/san-kum/sortlab/internal/viz"
)

var (
	configFile string
	presetName string
	verbose    bool
	logFile    string

	size    int
	speed   int
	pattern string
	seed    int64
	theme   string

	noDelay bool
	plot    bool
	gifPath string
	svgPath string
	format  string
	force   bool
	trials  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "sortlab",
		Short:        "sorting algorithm visualizer and benchmark",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, args, false)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file for the interactive UI")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "animate one algorithm in the interactive UI",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, args, true)
		},
	}
	runCmd.Flags().IntVar(&size, "size", experiment.DefaultSize, "array size")
	runCmd.Flags().IntVar(&speed, "speed", experiment.DefaultSpeed, "animation speed (1-10)")
	runCmd.Flags().StringVar(&pattern, "pattern", config.DefaultPattern, "array pattern")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	runCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "print every step of a sort without the UI",
		Args:  cobra.MaximumNArgs(1),
		RunE:  traceSort,
	}
	traceCmd.Flags().IntVar(&size, "size", experiment.DefaultSize, "array size")
	traceCmd.Flags().IntVar(&speed, "speed", experiment.DefaultSpeed, "pace (1-10)")
	traceCmd.Flags().StringVar(&pattern, "pattern", config.DefaultPattern, "array pattern")
	traceCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	traceCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme for --gif")
	traceCmd.Flags().BoolVar(&noDelay, "no-delay", false, "print steps as fast as possible")
	traceCmd.Flags().BoolVar(&plot, "plot", false, "plot cumulative comparisons and swaps")
	traceCmd.Flags().StringVar(&gifPath, "gif", "", "write the animation to a GIF file")
	traceCmd.Flags().StringVar(&svgPath, "svg", "", "write the count curves to an SVG file")

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm...]",
		Short: "benchmark algorithms on the same random array",
		RunE:  compareAlgorithms,
	}
	compareCmd.Flags().IntVar(&size, "size", experiment.DefaultCompareSize, "array size")
	compareCmd.Flags().StringVar(&format, "format", "table", "output format: table, csv or json")
	compareCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	compareCmd.Flags().StringVar(&svgPath, "svg", "", "write a time chart to an SVG file")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tSPEED\tALGORITHM\tPATTERN\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\t%s\n",
					name, p.Config.Size, p.Config.Speed, p.Config.Algorithm, p.Config.Pattern, p.Description)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config (or --preset) as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "check every algorithm against random arrays",
		Args:  cobra.NoArgs,
		RunE:  verifyAlgorithms,
	}
	verifyCmd.Flags().IntVar(&trials, "trials", 100, "random arrays per algorithm")
	verifyCmd.Flags().IntVar(&size, "size", 50, "array size")
	verifyCmd.Flags().Int64Var(&seed, "seed", 1, "seed of the first trial")

	rootCmd.AddCommand(runCmd, traceCmd, compareCmd, listCmd, presetsCmd, configCmd, verifyCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig applies, in order: defaults, --preset, --config, then the
// algorithm argument and any flag the user set on cmd. On compare, --size
// sets the comparison array length.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if presetName != "" {
		cfg = config.GetPreset(presetName)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Algorithm = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("size") {
		if cmd.Name() == "compare" {
			cfg.Compare.Size = size
		} else {
			cfg.Size = size
		}
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("pattern") {
		cfg.Pattern = pattern
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runInteractive(cmd *cobra.Command, args []string, autoStart bool) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errors.New("interactive mode needs a terminal; use trace or compare for plain output")
	}

	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	if _, err := viz.LookupTheme(cfg.Theme); err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = newLogger(f)
	}

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	session, err := experiment.NewSession(settings, nil, logger)
	if err != nil {
		return err
	}
	selected, err := cfg.CompareAlgorithms()
	if err != nil {
		return err
	}

	return viz.Run(cmd.Context(), session, viz.Options{
		Theme:     cfg.Theme,
		AutoStart: autoStart,
		Compare:   selected,
		Logger:    logger,
	})
}

func traceSort(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr)
	session, err := experiment.NewSession(settings, nil, logger)
	if err != nil {
		return err
	}

	info := settings.Algorithm.Info()
	initial := session.Array().Clone()
	fmt.Printf("%s on %d %s values: %v\n\n", info.Name, len(initial), settings.Pattern, initial.Values())
	fmt.Printf("%5s  %-7s  %-10s  %11s  %6s\n", "STEP", "KIND", "INDICES", "COMPARISONS", "SWAPS")

	keep := plot || gifPath != "" || svgPath != ""
	var steps []sorting.Step
	emit := func(st sorting.Step) error {
		fmt.Printf("%5d  %-7s  %-10s  %11d  %6d\n", st.Seq, st.Kind, formatIndices(st.Indices), st.Counts.Comparisons, st.Counts.Swaps)
		if keep {
			steps = append(steps, st)
		}
		return nil
	}
	if !noDelay {
		emit = experiment.Paced(cmd.Context(), settings.Speed, emit)
	}

	stats, err := session.Run(cmd.Context(), emit)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println("\ninterrupted")
			return nil
		}
		return err
	}
	fmt.Printf("\n%s finished: %d comparisons, %d swaps in %v\n",
		info.Name, stats.Comparisons, stats.Swaps, stats.Elapsed(stats.End))
	fmt.Printf("result: %v\n", session.Array().Values())

	if plot && len(steps) > 1 {
		comps := make([]float64, len(steps))
		swaps := make([]float64, len(steps))
		for i, st := range steps {
			comps[i] = float64(st.Counts.Comparisons)
			swaps[i] = float64(st.Counts.Swaps)
		}
		graph := asciigraph.PlotMany([][]float64{comps, swaps},
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
			asciigraph.Caption("comparisons (blue) and swaps (red) per step"),
		)
		fmt.Println()
		fmt.Println(graph)
	}

	if gifPath != "" {
		f, err := os.Create(gifPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.WriteGIF(f, export.StepFrames(initial, steps), viz.GetTheme(cfg.Theme)); err != nil {
			return fmt.Errorf("write gif: %w", err)
		}
		fmt.Printf("animation saved to %s\n", gifPath)
	}
	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.CountsSVG(steps, 800, 300)), 0644); err != nil {
			return err
		}
		fmt.Printf("chart saved to %s\n", svgPath)
	}
	return nil
}

func formatIndices(idx []int) string {
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ",")
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	selected, err := cfg.CompareAlgorithms()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		selected = make([]sorting.Algorithm, 0, len(args))
		for _, name := range args {
			a, err := sorting.ParseAlgorithm(name)
			if err != nil {
				return err
			}
			selected = append(selected, a)
		}
	}

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	session, err := experiment.NewSession(settings, nil, newLogger(os.Stderr))
	if err != nil {
		return err
	}
	results, err := session.Compare(selected)
	if err != nil {
		return err
	}

	switch format {
	case "table":
		fmt.Printf("comparing %d algorithms on %d random values\n\n", len(results), settings.CompareSize)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "RANK\tALGORITHM\tTIME\tCOMPARISONS\tSWAPS\tEFFICIENCY\tBADGE")
		for _, r := range results {
			fmt.Fprintf(w, "%d\t%s\t%.3fms\t%d\t%d\t%d\t%s\n",
				r.Rank, r.Name, r.Millis, r.Counts.Comparisons, r.Counts.Swaps, r.Efficiency, r.Badge)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	case "csv":
		if err := export.WriteCSV(os.Stdout, results); err != nil {
			return err
		}
	case "json":
		if err := export.WriteJSON(os.Stdout, results); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s (want table, csv or json)", format)
	}

	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.ChartSVG(results, 800, 60+40*len(results))), 0644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "chart saved to %s\n", svgPath)
	}
	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME\tTIME\tSPACE\tDESCRIPTION")
	for _, a := range sorting.Algorithms() {
		info := a.Info()
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a, info.Name, info.TimeComplexity, info.SpaceComplexity, info.Description)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "sortlab.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	if presetName != "" {
		cfg = config.GetPreset(presetName)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("config written to %s\n", path)
	return nil
}

func verifyAlgorithms(cmd *cobra.Command, args []string) error {
	if trials <= 0 {
		return fmt.Errorf("--trials must be positive")
	}
	registry := experiment.NewRegistry()
	fmt.Printf("verifying %d algorithms on %d arrays of %d values...\n", len(registry.List()), trials, size)

	report, err := experiment.NewEnsemble(registry, trials, seed).Run(cmd.Context(), size)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tCHECKS\tFAILURES")
	failures := make(map[sorting.Algorithm]int)
	for _, m := range report.Mismatches {
		failures[m.Algorithm]++
	}
	for _, a := range registry.List() {
		fmt.Fprintf(w, "%s\t%d\t%d\n", a.Info().Name, report.Trials, failures[a])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if report.OK() {
		fmt.Printf("\nok: %d checks passed\n", report.Checks)
		return nil
	}
	for _, m := range report.Mismatches {
		fmt.Printf("  %v\n", m)
	}
	return fmt.Errorf("%d of %d checks failed", len(report.Mismatches), report.Checks)
}
