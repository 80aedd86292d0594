package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/export"
	"github.com/san-kum/gravsim/internal/gui"
	"github.com/san-kum/gravsim/internal/metrics"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/sim"
	"github.com/san-kum/gravsim/internal/storage"
	"github.com/san-kum/gravsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool

	count   int
	gravity float64
	boxSize float64
	forceX  float64
	forceY  float64
	forceZ  float64
	ticks   int
	every   int
	seed    int64
	fps     int
	colorBy string
	record  bool

	svgTick   int
	svgWidth  int
	svgHeight int
	svgOut    string
	plotSVG   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravsim",
		Short: "n-body gravity sandbox",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: runLive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravsim", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	simFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and store it",
		RunE:  runSimulation,
	}
	simFlags(runCmd)
	runCmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "number of ticks")
	runCmd.Flags().IntVar(&every, "every", 1, "record a frame every n ticks (0 disables)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live terminal visualization",
		RunE:  runLive,
	}
	simFlags(liveCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run simulation in a 3D window",
		RunE:  runGUI,
	}
	simFlags(guiCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot energy and speed of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&plotSVG, "svg", "", "also write each series as an SVG into this directory")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a stored frame to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgTick, "tick", -1, "frame tick (default last)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 600, "image height")
	exportSVGCmd.Flags().StringVarP(&svgOut, "output", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().StringVar(&colorBy, "color-by", "speed", "speed, acceleration or constant")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-8s %3d particles  gravity %5.1f  box %.2f\n", name, p.Count, p.Gravity, p.BoxSize)
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a config file with default or preset values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	initCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, listCmd, plotCmd, exportCmd, exportSVGCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func simFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.IntVarP(&count, "count", "n", config.DefaultCount, "number of particles")
	f.Float64Var(&gravity, "gravity", config.DefaultGravity, "gravitational constant before scaling")
	f.Float64Var(&boxSize, "box", config.DefaultBoxSize, "bounding box half-size")
	f.Float64Var(&forceX, "force-x", 0, "external force x before scaling")
	f.Float64Var(&forceY, "force-y", 0, "external force y before scaling")
	f.Float64Var(&forceZ, "force-z", 0, "external force z before scaling")
	f.Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	f.IntVar(&fps, "fps", config.DefaultFPS, "render frame rate")
	f.StringVar(&colorBy, "color-by", "speed", "speed, acceleration or constant")
	f.BoolVar(&record, "record", false, "record viewer session to the data directory")
}

// loadConfig layers defaults, preset, config file and explicitly set flags,
// in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Count = count
	}
	if flags.Changed("gravity") {
		cfg.Gravity = gravity
	}
	if flags.Changed("box") {
		cfg.BoxSize = boxSize
	}
	if flags.Changed("force-x") {
		cfg.Force.X = forceX
	}
	if flags.Changed("force-y") {
		cfg.Force.Y = forceY
	}
	if flags.Changed("force-z") {
		cfg.Force.Z = forceZ
	}
	if flags.Changed("ticks") {
		cfg.Ticks = ticks
	}
	if flags.Changed("every") {
		cfg.RecordEvery = every
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("color-by") {
		cfg.ColorBy = colorBy
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newSimulator(cfg *config.Config) (*sim.Simulator, *rand.Rand, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	set, err := cfg.Generate(rng)
	if err != nil {
		return nil, nil, err
	}
	return sim.New(set, cfg.Params()), rng, nil
}

func metadata(cfg *config.Config) storage.RunMetadata {
	return storage.RunMetadata{
		Preset:  preset,
		Seed:    cfg.Seed,
		Count:   cfg.Count,
		Ticks:   cfg.Ticks,
		G:       cfg.Params().G,
		BoxSize: cfg.BoxSize,
		Force:   [3]float64{cfg.Force.X, cfg.Force.Y, cfg.Force.Z},
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	s, _, err := newSimulator(cfg)
	if err != nil {
		return err
	}
	g := func() float64 { return s.Params().G }
	s.AddMetric(metrics.NewEnergy(g))
	s.AddMetric(metrics.NewEnergyDrift(g))
	s.AddMetric(metrics.NewPeakSpeed())
	s.AddMetric(metrics.NewMeanSpeed())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("starting headless simulation",
		"particles", cfg.Count,
		"ticks", cfg.Ticks,
		"g", cfg.Params().G,
		"seed", cfg.Seed,
	)
	start := time.Now()

	result, err := s.Run(ctx, sim.Config{
		Ticks:         cfg.Ticks,
		ValidateState: cfg.ValidateState,
		RecordEvery:   cfg.RecordEvery,
	})
	if err != nil && result == nil {
		return err
	}
	if err != nil {
		slog.Warn("simulation interrupted", "tick", s.Tick(), "error", err)
	}
	for _, e := range result.Errors {
		slog.Error("simulation error", "error", e)
	}

	elapsed := time.Since(start)

	meta := metadata(cfg)
	meta.Ticks = result.TicksTaken
	meta.Wraps = result.Wraps
	meta.Metrics = result.Metrics
	runID, err := st.Save(meta, result.Frames)
	if err != nil {
		return err
	}
	slog.Debug("run saved", "id", runID, "frames", len(result.Frames), "elapsed", elapsed)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("ticks: %d\n", result.TicksTaken)
	fmt.Printf("wraps: %d\n", result.Wraps)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}

	return nil
}

// attachRecorder starts a recording when --record is set. The returned
// function finishes it and must be called once the viewer exits.
func attachRecorder(s *sim.Simulator, cfg *config.Config) (func(), error) {
	if !record {
		return func() {}, nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return nil, err
	}
	rec, err := st.NewRecorder(metadata(cfg), cfg.RecordEvery)
	if err != nil {
		return nil, err
	}
	peak := metrics.NewPeakSpeed()
	s.AddMetric(peak)
	s.AddObserver(rec)
	slog.Info("recording", "id", rec.ID())
	return func() {
		if err := rec.Close(map[string]float64{peak.Name(): peak.Value()}); err != nil {
			slog.Error("failed to finish recording", "id", rec.ID(), "error", err)
		}
	}, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, rng, err := newSimulator(cfg)
	if err != nil {
		return err
	}
	finish, err := attachRecorder(s, cfg)
	if err != nil {
		return err
	}
	defer finish()

	return viz.Run(viz.NewModel(s, cfg, rng))
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, rng, err := newSimulator(cfg)
	if err != nil {
		return err
	}
	finish, err := attachRecorder(s, cfg)
	if err != nil {
		return err
	}
	defer finish()

	gui.Run(s, cfg, rng)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tPARTICLES\tTICKS\tG\tBOX\tWRAPS")

	for _, run := range runs {
		name := run.Preset
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.2e\t%.2f\t%d\n",
			run.ID,
			name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Count,
			run.Ticks,
			run.G,
			run.BoxSize,
			run.Wraps,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(frames) < 2 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("particles: %d\n", meta.Count)
	fmt.Printf("frames: %d\n\n", len(frames))

	kinetic := make([]float64, len(frames))
	total := make([]float64, len(frames))
	peak := make([]float64, len(frames))
	for i, f := range frames {
		kinetic[i] = physics.KineticEnergy(f.Particles)
		total[i] = kinetic[i] + physics.PotentialEnergy(f.Particles, meta.G)
		for j := range f.Particles {
			if v := f.Particles[j].Speed(); v > peak[i] {
				peak[i] = v
			}
		}
	}

	series := []struct {
		data    []float64
		caption string
		file    string
		color   string
	}{
		{kinetic, "kinetic energy", "kinetic_energy.svg", "#00ff9f"},
		{total, "total energy", "total_energy.svg", "#b4b4b4"},
		{peak, "peak speed", "peak_speed.svg", "#ff5f87"},
	}
	for _, s := range series {
		graph := asciigraph.Plot(s.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	if plotSVG == "" {
		return nil
	}
	if err := os.MkdirAll(plotSVG, 0755); err != nil {
		return err
	}
	for _, s := range series {
		path := filepath.Join(plotSVG, s.file)
		if err := os.WriteFile(path, []byte(export.SeriesToSVG(s.data, 800, 300, s.color)), 0644); err != nil {
			return err
		}
		slog.Info("exported", "run", runID, "series", s.caption, "path", path)
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	src, err := physics.ParseColorSource(colorBy)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("run %s has no frames", runID)
	}

	frame := frames[len(frames)-1]
	if svgTick >= 0 {
		found := false
		for _, f := range frames {
			if f.Tick == svgTick {
				frame, found = f, true
				break
			}
		}
		if !found {
			return fmt.Errorf("no frame at tick %d", svgTick)
		}
	}

	svg := export.SnapshotToSVG(frame.Particles, meta.BoxSize, viz.NewCamera(meta.BoxSize), src, svgWidth, svgHeight)
	if svgOut == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	slog.Info("exported", "run", runID, "tick", frame.Tick, "path", svgOut)
	return nil
}
