package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/avask/h2lab/internal/analysis"
	"github.com/avask/h2lab/internal/config"
	"github.com/avask/h2lab/internal/export"
	"github.com/avask/h2lab/internal/orbital"
	"github.com/avask/h2lab/internal/storage"
	"github.com/avask/h2lab/internal/sweep"
	"github.com/avask/h2lab/internal/viz"
)

var (
	dataDir    string
	alpha      float64
	r          float64
	halfWidth  float64
	resolution int
	normalized bool
	gamma      float64
	save       bool
	configFile string
	preset     string
	// sweep bounds
	rMin   float64
	rMax   float64
	steps  int
	passes int
	// list filter; separate from the sweep bounds so the differing
	// defaults cannot clobber each other at registration
	listRMin float64
	listRMax float64
	// svg output
	outPath string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "h2lab",
		Short: "hydrogen molecule electron density lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(cfg.Alpha, cfg.R, cfg.HalfWidth, cfg.Normalized)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".h2lab", "data directory")
	rootCmd.PersistentFlags().Float64Var(&alpha, "alpha", orbital.DefaultAlpha, "orbital exponent")
	rootCmd.PersistentFlags().Float64Var(&r, "r", orbital.DefaultR, "internuclear distance")
	rootCmd.PersistentFlags().Float64Var(&halfWidth, "halfwidth", orbital.DefaultHalfWidth, "spatial half-width of the sample domain")
	rootCmd.PersistentFlags().IntVar(&resolution, "res", orbital.DefaultResolution, "grid points per axis")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	fieldCmd := &cobra.Command{
		Use:   "field",
		Short: "compute the 2D density field",
		RunE:  runField,
	}
	fieldCmd.Flags().BoolVar(&normalized, "normalized", true, "apply the alpha³/(π(1+S)) prefactor")
	fieldCmd.Flags().Float64Var(&gamma, "gamma", 0.45, "shade gamma for the terminal heatmap")
	fieldCmd.Flags().BoolVar(&save, "save", false, "save the run")

	sliceCmd := &cobra.Command{
		Use:   "slice",
		Short: "compute the 1D cross-section along the bond axis",
		RunE:  runSlice,
	}
	sliceCmd.Flags().BoolVar(&save, "save", false, "save the run")

	overlapCmd := &cobra.Command{
		Use:   "overlap",
		Short: "plot the overlap integral S(R)",
		RunE:  runOverlap,
	}
	overlapCmd.Flags().Float64Var(&rMin, "r-min", 0, "sweep lower bound")
	overlapCmd.Flags().Float64Var(&rMax, "r-max", 3.0, "sweep upper bound")
	overlapCmd.Flags().IntVar(&steps, "steps", 60, "sweep steps")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep density metrics over R",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&rMin, "r-min", 0, "sweep lower bound")
	sweepCmd.Flags().Float64Var(&rMax, "r-max", 3.0, "sweep upper bound")
	sweepCmd.Flags().IntVar(&steps, "steps", 60, "sweep steps")
	sweepCmd.Flags().BoolVar(&save, "save", false, "save the run")

	splitCmd := &cobra.Command{
		Use:   "split",
		Short: "find the smallest R with two resolved density lobes",
		RunE:  runSplit,
	}
	splitCmd.Flags().Float64Var(&rMin, "r-min", 0, "search lower bound")
	splitCmd.Flags().Float64Var(&rMax, "r-max", 3.0, "search upper bound")
	splitCmd.Flags().IntVar(&steps, "steps", 60, "grid steps per pass")
	splitCmd.Flags().IntVar(&passes, "passes", 3, "refinement passes")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive viewer with parameter tuning",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(cfg.Alpha, cfg.R, cfg.HalfWidth, cfg.Normalized)
		},
	}
	liveCmd.Flags().BoolVar(&normalized, "normalized", true, "apply the alpha³/(π(1+S)) prefactor")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}
	listCmd.Flags().Float64Var(&listRMin, "r-min", 0, "filter: minimum R")
	listCmd.Flags().Float64Var(&listRMax, "r-max", -1, "filter: maximum R (negative disables the filter)")

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "dump run data as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "dump run data as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a saved run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (defaults to <run_id>.svg)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-14s R=%.1f  d=%.1f  res=%d\n", name, cfg.R, cfg.HalfWidth, cfg.Resolution)
			}
		},
	}

	rootCmd.AddCommand(fieldCmd, sliceCmd, overlapCmd, sweepCmd, splitCmd, liveCmd,
		listCmd, showCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd)

	return rootCmd
}

// resolveConfig merges preset, config file and CLI flags, flags winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("alpha") {
		cfg.Alpha = alpha
	}
	if cmd.Flags().Changed("r") {
		cfg.R = r
	}
	if cmd.Flags().Changed("halfwidth") {
		cfg.HalfWidth = halfWidth
	}
	if cmd.Flags().Changed("res") {
		cfg.Resolution = resolution
	}
	if cmd.Flags().Changed("normalized") {
		cfg.Normalized = normalized
	}
	return cfg, nil
}

// resolveSweepConfig builds the sweep bounds from the config file's sweep
// section, with the r-min/r-max/steps flags winning when set.
func resolveSweepConfig(cmd *cobra.Command, cfg *config.Config) sweep.Config {
	scfg := sweep.Config{
		Alpha:      cfg.Alpha,
		RMin:       cfg.Sweep.RMin,
		RMax:       cfg.Sweep.RMax,
		Steps:      cfg.Sweep.Steps,
		HalfWidth:  cfg.HalfWidth,
		Resolution: cfg.Resolution,
	}
	if cmd.Flags().Changed("r-min") {
		scfg.RMin = rMin
	}
	if cmd.Flags().Changed("r-max") {
		scfg.RMax = rMax
	}
	if cmd.Flags().Changed("steps") {
		scfg.Steps = steps
	}
	return scfg
}

func runField(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	xs := cfg.Axis()
	ys := cfg.Axis()
	field, err := orbital.Evaluate2D(cfg.Alpha, cfg.R, xs, ys, cfg.Normalized)
	if err != nil {
		return err
	}

	// downsample to a terminal-sized raster for display
	viewXs := orbital.SymmetricRange(cfg.HalfWidth, 38)
	viewYs := orbital.SymmetricRange(cfg.HalfWidth, 28)
	view, err := orbital.Evaluate2D(cfg.Alpha, cfg.R, viewXs, viewYs, cfg.Normalized)
	if err != nil {
		return err
	}
	fmt.Print(viz.Heatmap(view, gamma))

	s, err := orbital.Overlap(cfg.Alpha, cfg.R)
	if err != nil {
		return err
	}
	fmt.Printf("\nalpha=%.3f  R=%.3f  S(R)=%.4f  grid=%dx%d\n",
		cfg.Alpha, cfg.R, s, field.NX, field.NY)

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		defer st.Close()
		id, err := st.SaveField(cfg.Alpha, cfg.R, cfg.HalfWidth, cfg.Normalized, xs, ys, field)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", id)
	}
	return nil
}

func runSlice(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	xs := cfg.Axis()
	ds, err := orbital.Evaluate1D(cfg.Alpha, cfg.R, xs)
	if err != nil {
		return err
	}

	graph := asciigraph.Plot(ds,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("density along bond axis (R=%.2f)", cfg.R)),
	)
	fmt.Println(graph)

	peaks := analysis.LocalMaxima(xs, ds)
	for _, p := range peaks {
		fmt.Printf("peak at x=%+.3f  density=%.4f\n", p.X, p.Value)
	}
	if sep := analysis.PeakSeparation(xs, ds); sep > 0 {
		fmt.Printf("peak separation: %.3f\n", sep)
	} else {
		fmt.Println("lobes merged")
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		defer st.Close()
		id, err := st.SaveSlice(cfg.Alpha, cfg.R, cfg.HalfWidth, xs, ds)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", id)
	}
	return nil
}

func runOverlap(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	scfg := resolveSweepConfig(cmd, cfg)
	rs := orbital.Linspace(scfg.RMin, scfg.RMax, scfg.Steps)
	ss := make([]float64, len(rs))
	for i, rv := range rs {
		s, err := orbital.Overlap(cfg.Alpha, rv)
		if err != nil {
			return err
		}
		ss[i] = s
	}

	graph := asciigraph.Plot(ss,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("S(R), R in [%.1f, %.1f], alpha=%.2f", scfg.RMin, scfg.RMax, cfg.Alpha)),
	)
	fmt.Println(graph)

	s, err := orbital.Overlap(cfg.Alpha, cfg.R)
	if err != nil {
		return err
	}
	fmt.Printf("S(%.2f) = %.6f\n", cfg.R, s)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	scfg := resolveSweepConfig(cmd, cfg)

	points, err := sweep.Run(context.Background(), scfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "R\tS(R)\tPEAK_SEP\tMID_RATIO\tMAX_DENSITY")
	for _, p := range points {
		fmt.Fprintf(w, "%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			p.R, p.Overlap, p.PeakSeparation, p.MidpointRatio, p.MaxDensity)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		defer st.Close()
		id, err := st.SaveSweep(scfg, points)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", id)
	}
	return nil
}

func runSplit(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	scfg := resolveSweepConfig(cmd, cfg)

	split, err := sweep.FindSplit(context.Background(), scfg, passes)
	if err != nil {
		return err
	}
	fmt.Printf("lobes first resolve at R ≈ %.4f (grid %d points over ±%.1f)\n",
		split, cfg.Resolution, cfg.HalfWidth)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	defer st.Close()

	var runs []storage.RunMetadata
	var err error
	if listRMax >= 0 {
		runs, err = st.ListByR(listRMin, listRMax)
	} else {
		runs, err = st.List()
	}
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tTIME\tALPHA\tR\tS(R)\tRES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.3f\t%.3f\t%.4f\t%d\n",
			run.ID,
			run.Kind,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Alpha,
			run.R,
			run.Overlap,
			run.Resolution,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	defer st.Close()

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("id:         %s\n", meta.ID)
	fmt.Printf("kind:       %s\n", meta.Kind)
	fmt.Printf("time:       %s\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("alpha:      %.4f\n", meta.Alpha)
	fmt.Printf("R:          %.4f\n", meta.R)
	fmt.Printf("halfwidth:  %.2f\n", meta.HalfWidth)
	fmt.Printf("resolution: %d\n", meta.Resolution)
	fmt.Printf("normalized: %v\n", meta.Normalized)
	fmt.Printf("S(R):       %.6f\n", meta.Overlap)
	return nil
}

func runDataFile(kind string) string {
	switch kind {
	case storage.KindField:
		return "field.csv"
	case storage.KindSweep:
		return "sweep.csv"
	default:
		return "slice.csv"
	}
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	defer st.Close()

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filepath.Join(dataDir, meta.ID, runDataFile(meta.Kind)))
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	defer st.Close()

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	switch meta.Kind {
	case storage.KindField:
		xs, ys, field, err := st.LoadField(meta.ID)
		if err != nil {
			return err
		}
		return export.WriteFieldJSON(os.Stdout, meta.Alpha, meta.R, meta.Normalized, xs, ys, field)
	case storage.KindSlice:
		xs, ds, err := st.LoadSlice(meta.ID)
		if err != nil {
			return err
		}
		return export.WriteSliceJSON(os.Stdout, meta.Alpha, meta.R, xs, ds)
	default:
		return fmt.Errorf("export-json supports field and slice runs, %s is a %s", meta.ID, meta.Kind)
	}
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	defer st.Close()

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	var svg string
	switch meta.Kind {
	case storage.KindField:
		_, _, field, err := st.LoadField(meta.ID)
		if err != nil {
			return err
		}
		svg = export.FieldToSVG(field, 6)
	case storage.KindSlice:
		xs, ds, err := st.LoadSlice(meta.ID)
		if err != nil {
			return err
		}
		svg = export.SliceToSVG(xs, ds, 800, 300, "#00ffcc")
	default:
		return fmt.Errorf("export-svg supports field and slice runs, %s is a %s", meta.ID, meta.Kind)
	}

	path := outPath
	if path == "" {
		path = meta.ID + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
