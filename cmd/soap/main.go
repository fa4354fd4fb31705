package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/salt-die/soap/internal/analysis"
	"github.com/salt-die/soap/internal/arena"
	"github.com/salt-die/soap/internal/config"
	"github.com/salt-die/soap/internal/experiment"
	"github.com/salt-die/soap/internal/export"
	"github.com/salt-die/soap/internal/gui"
	"github.com/salt-die/soap/internal/palette"
	"github.com/salt-die/soap/internal/partition"
	"github.com/salt-die/soap/internal/tui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configFile  string
	presetName  string
	seed        int64
	centers     int
	paletteName string
	dual        bool
	fps         int
	// Headless frame counts and poke cadences per command
	benchFrames   int
	benchPoke     int
	analyzeFrames int
	analyzePoke   int
	snapFrames    int
	snapPoke      int
	// Output paths
	snapOut string
	cfgOut  string
)

// main is the entry point for the soap CLI; it registers commands and flags
// and opens the interactive window when no subcommand is given.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "soap",
		Short: "interactive dynamic voronoi toy",
		RunE:  runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")
	rootCmd.PersistentFlags().IntVar(&centers, "centers", arena.DefaultCenters, "number of moving centers")
	rootCmd.PersistentFlags().StringVar(&paletteName, "palette", "rainbow", "color palette")
	rootCmd.PersistentFlags().BoolVar(&dual, "dual", false, "start on the delaunay triangulation")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", 60, "target frame rate")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the interactive window",
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal",
		RunE:  runTUI,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark partition builds across center counts",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchFrames, "frames", 300, "frames per run")
	benchCmd.Flags().IntVar(&benchPoke, "poke-every", 25, "scripted poke cadence in frames")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "frequency analysis of the mean center speed",
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().IntVar(&analyzeFrames, "frames", 512, "frames to simulate")
	analyzeCmd.Flags().IntVar(&analyzePoke, "poke-every", 32, "scripted poke cadence in frames")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render a frame to svg",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&snapFrames, "frames", 120, "frames to simulate before the snapshot")
	snapshotCmd.Flags().IntVar(&snapPoke, "poke-every", 40, "scripted poke cadence in frames")
	snapshotCmd.Flags().StringVar(&snapOut, "out", "soap.svg", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCENTERS\tFRICTION\tMODE\tPALETTE")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%.3f\t%s\t%s\n",
					name, p.Centers, p.Friction, partition.ModeFor(p.Dual), p.Palette)
			}
			return w.Flush()
		},
	}

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list color palettes",
		Run: func(cmd *cobra.Command, args []string) {
			for i, name := range palette.Names() {
				fmt.Printf("  %d  %s\n", i, name)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the resolved configuration",
		RunE:  runConfig,
	}
	configCmd.Flags().StringVar(&cfgOut, "out", "", "write to file instead of stdout")

	rootCmd.AddCommand(guiCmd, tuiCmd, benchCmd, analyzeCmd, snapshotCmd, presetsCmd, palettesCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers configuration sources: defaults, then preset, then
// config file, then explicit flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if presetName != "" {
		p := config.GetPreset(presetName)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("centers") {
		cfg.Centers = centers
	}
	if flags.Changed("palette") {
		if !knownPalette(paletteName) {
			return nil, fmt.Errorf("unknown palette: %s (available: %v)", paletteName, palette.Names())
		}
		cfg.Palette = paletteName
	}
	if flags.Changed("dual") {
		cfg.Dual = dual
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func knownPalette(name string) bool {
	for _, n := range palette.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// loadConfig is resolveConfig plus seeding: a zero seed is replaced from the
// clock so every run opens on a fresh layout.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gui.Run(cfg)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return tui.Run(cfg)
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	counts := []int{10, 50, 100, 250, 500}

	fmt.Printf("benchmarking partition builds, %d frames per run, seed %d\n\n", benchFrames, cfg.Seed)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CENTERS\tMODE\tAVG BUILD\tMAX BUILD\tREGIONS")

	var (
		heavy     []time.Duration
		heavyDesc string
	)
	for _, n := range counts {
		for _, mode := range []partition.Mode{partition.ModeVoronoi, partition.ModeDelaunay} {
			params := cfg.Params()
			params.Centers = n

			result, err := experiment.Run(context.Background(), experiment.Config{
				Frames:    benchFrames,
				Seed:      cfg.Seed,
				Params:    params,
				Dual:      mode == partition.ModeDelaunay,
				FocusCell: cfg.FocusCell,
				PokeEvery: benchPoke,
			})
			if err != nil {
				return err
			}

			avg, peak := buildStats(result.BuildTime)
			regions := 0
			if len(result.Regions) > 0 {
				regions = result.Regions[len(result.Regions)-1]
			}
			fmt.Fprintf(w, "%d\t%s\t%v\t%v\t%d\n", n, mode, avg, peak, regions)

			heavy = result.BuildTime
			heavyDesc = fmt.Sprintf("%d centers, %s", n, mode)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	data := make([]float64, len(heavy))
	for i, d := range heavy {
		data[i] = float64(d.Microseconds())
	}
	fmt.Println()
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("build time per frame, "+heavyDesc+" (µs)"),
	)
	fmt.Println(graph)

	return nil
}

func buildStats(times []time.Duration) (avg, peak time.Duration) {
	if len(times) == 0 {
		return 0, 0
	}
	var total time.Duration
	for _, d := range times {
		total += d
		if d > peak {
			peak = d
		}
	}
	return total / time.Duration(len(times)), peak
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("simulating %d frames, poke every %d, seed %d\n\n", analyzeFrames, analyzePoke, cfg.Seed)

	result, err := experiment.Run(context.Background(), experiment.Config{
		Frames:    analyzeFrames,
		Seed:      cfg.Seed,
		Params:    cfg.Params(),
		Dual:      cfg.Dual,
		FocusCell: cfg.FocusCell,
		PokeEvery: analyzePoke,
	})
	if err != nil {
		return err
	}

	ps := analysis.PowerSpectrum(result.MeanSpeed)
	if len(ps) < 2 {
		return fmt.Errorf("not enough frames")
	}

	graph := asciigraph.Plot(ps[1:],
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("mean speed power spectrum"),
	)
	fmt.Println(graph)
	fmt.Println()

	bin, power := analysis.Dominant(ps)
	if bin == 0 {
		fmt.Println("no dominant frequency")
		return nil
	}
	period := float64(len(result.MeanSpeed)) / float64(bin)
	fmt.Printf("dominant ripple: every %.1f frames (power %.1f)\n", period, power)

	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	result, err := experiment.Run(context.Background(), experiment.Config{
		Frames:    snapFrames,
		Seed:      cfg.Seed,
		Params:    cfg.Params(),
		Dual:      cfg.Dual,
		FocusCell: cfg.FocusCell,
		PokeEvery: snapPoke,
	})
	if err != nil {
		return err
	}

	field := result.Field
	sites := field.Points()
	if cfg.FocusCell {
		sites = append(sites, field.Focus.Pos)
	}
	regions := partition.Build(partition.ModeFor(cfg.Dual), sites, field.Focus.Pos, field.Params.Bounds())

	f, err := os.Create(snapOut)
	if err != nil {
		return err
	}
	defer f.Close()

	export.WriteSVG(f, regions, field.Points(), field.Focus.Pos, cfg.Toggles(), int(cfg.Width), int(cfg.Height))
	fmt.Printf("wrote %s (%d regions)\n", snapOut, len(regions))

	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if cfgOut != "" {
		if err := config.Save(cfgOut, cfg); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", cfgOut)
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
