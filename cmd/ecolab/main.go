package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/ecolab-sim/ecolab/internal/analysis"
	"github.com/ecolab-sim/ecolab/internal/backend"
	"github.com/ecolab-sim/ecolab/internal/config"
	"github.com/ecolab-sim/ecolab/internal/ecodyn"
	"github.com/ecolab-sim/ecolab/internal/experiment"
	"github.com/ecolab-sim/ecolab/internal/export"
	"github.com/ecolab-sim/ecolab/internal/logger"
	"github.com/ecolab-sim/ecolab/internal/sim"
	"github.com/ecolab-sim/ecolab/internal/storage"
	"github.com/ecolab-sim/ecolab/internal/tui"
	"github.com/ecolab-sim/ecolab/internal/viz"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	prey0      float64
	pred0      float64
	integrator string
	// rate parameters
	birth      float64
	predation  float64
	efficiency float64
	loss       float64
	capacity   float64
	// batch settings
	runs    int
	seed    int64
	workers int
	// config file and preset
	configFile string
	preset     string
	logLevel   string
	// plot and live options
	svgOut    string
	frameRate int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ecolab",
		Short: "predator-prey simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ecolab", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run one simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)

	batchCmd := &cobra.Command{
		Use:   "batch [model]",
		Short: "run a sampled experiment design",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().IntVar(&runs, "runs", config.DefaultRuns, "sampled parameter combinations")
	batchCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "sampling seed")
	batchCmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "parallel workers")
	batchCmd.Flags().StringVar(&integrator, "integrator", "euler", "integrator")
	batchCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	compareCmd := &cobra.Command{
		Use:   "compare [model] [integrator1] [integrator2] ...",
		Short: "compare integrators on the same model",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareIntegrators,
	}
	compareCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	compareCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	compareCmd.Flags().Float64Var(&prey0, "prey", config.DefaultPrey, "initial prey")
	compareCmd.Flags().Float64Var(&pred0, "predator", config.DefaultPredator, "initial predator")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run populations",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "prey vs predator phase portrait",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().StringVar(&svgOut, "svg", "", "write portrait to SVG file")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "run simulation with live visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, batchCmd, compareCmd, listCmd, plotCmd, phaseCmd, liveCmd, exportJSONCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Float64Var(&prey0, "prey", config.DefaultPrey, "initial prey")
	cmd.Flags().Float64Var(&pred0, "predator", config.DefaultPredator, "initial predator")
	cmd.Flags().StringVar(&integrator, "integrator", "euler", "integrator")
	cmd.Flags().Float64Var(&birth, "birth", 0.025, "prey birth rate")
	cmd.Flags().Float64Var(&predation, "predation", 0.001, "predation rate")
	cmd.Flags().Float64Var(&efficiency, "efficiency", 0.002, "predator efficiency")
	cmd.Flags().Float64Var(&loss, "loss", 0.05, "predator loss rate")
	cmd.Flags().Float64Var(&capacity, "capacity", 2000, "carrying capacity (logistic_prey)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig folds preset, config file, and CLI flags into one
// configuration; flags win over the file, the file wins over the preset.
func resolveConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Model = model

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		cfg.Model = model
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("integrator") || cfg.Integrator == "" {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("prey") {
		cfg.InitState.Prey = prey0
	}
	if cmd.Flags().Changed("predator") {
		cfg.InitState.Predator = pred0
	}

	if cfg.Params == nil {
		cfg.Params = make(map[string]float64)
	}
	rateFlags := map[string]string{
		"birth":      "prey_birth_rate",
		"predation":  "predation_rate",
		"efficiency": "predator_efficiency",
		"loss":       "predator_loss_rate",
		"capacity":   "carrying_capacity",
	}
	for flag, param := range rateFlags {
		if cmd.Flags().Changed(flag) {
			v, err := cmd.Flags().GetFloat64(flag)
			if err != nil {
				return nil, err
			}
			cfg.Params[param] = v
		}
	}

	return cfg, nil
}

func buildSimulation(cfg *config.Config) (ecodyn.System, ecodyn.Integrator, error) {
	registry := experiment.NewRegistry()

	sys, err := registry.GetModel(cfg.Model)
	if err != nil {
		return nil, nil, err
	}
	integ, err := registry.GetIntegrator(cfg.Integrator)
	if err != nil {
		return nil, nil, err
	}

	if len(cfg.Params) > 0 {
		c, ok := sys.(ecodyn.Configurable)
		if !ok {
			return nil, nil, fmt.Errorf("model %s has no adjustable parameters", cfg.Model)
		}
		for name, v := range cfg.Params {
			if name == "carrying_capacity" && cfg.Model != "logistic_prey" {
				continue
			}
			if err := c.SetParam(name, v); err != nil {
				return nil, nil, err
			}
		}
	}

	return sys, integ, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	sys, integ, err := buildSimulation(cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	s := sim.New(sys, integ)
	for _, m := range registry.DefaultMetrics() {
		s.AddMetric(m)
	}

	fmt.Printf("running %s simulation...\n", cfg.Model)
	start := time.Now()

	simCfg := ecodyn.Config{Dt: cfg.Dt, Duration: cfg.Duration, ValidateState: true}
	result, err := s.Run(context.Background(), cfg.GetInitState(), simCfg)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	var params map[string]float64
	if c, ok := sys.(ecodyn.Configurable); ok {
		params = c.Params()
	}
	runID, err := st.Save(cfg.Model, cfg.Integrator, cfg.Dt, cfg.Duration, params, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(result.Times))
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.4f\n", name, val)
	}

	if p := analysis.Period(result.Times, result.Series(0)); p > 0 {
		fmt.Printf("\nprey oscillation period: %.1f\n", p)
	}

	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	model := args[0]
	log := logger.New(logLevel, os.Stderr)

	design := experiment.DefaultDesign()
	design.Runs = runs
	design.Seed = seed
	wanted := []string{backend.VarTime, backend.VarPrey, backend.VarPredator}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if len(cfg.Experiment.Ranges) > 0 {
			// fixed order so a given seed always yields the same samples
			names := make([]string, 0, len(cfg.Experiment.Ranges))
			for name := range cfg.Experiment.Ranges {
				names = append(names, name)
			}
			sort.Strings(names)
			design.Uncertainties = design.Uncertainties[:0]
			for _, name := range names {
				r := cfg.Experiment.Ranges[name]
				design.Uncertainties = append(design.Uncertainties,
					experiment.Uncertainty{Name: name, Min: r.Min, Max: r.Max})
			}
		}
		if !cmd.Flags().Changed("runs") {
			design.Runs = cfg.Experiment.Runs
		}
		if !cmd.Flags().Changed("seed") {
			design.Seed = cfg.Experiment.Seed
		}
		if !cmd.Flags().Changed("workers") {
			workers = cfg.Experiment.Workers
		}
		if len(cfg.Experiment.Outputs) > 0 {
			wanted = cfg.Experiment.Outputs
		}
	}

	registry := experiment.NewRegistry()
	b, err := registry.GetBackend(model, integrator)
	if err != nil {
		return err
	}

	samples, err := design.Sample()
	if err != nil {
		return err
	}

	log.Info("running design", "backend", b.Name(), "runs", len(samples), "workers", workers)
	start := time.Now()

	results := experiment.NewRunner(log, workers).Evaluate(context.Background(), b, samples, wanted)

	log.Info("design complete", "elapsed", time.Since(start), "failed", experiment.Failed(results))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OUTPUT\tRUNS\tMEAN\tSTDDEV\tMIN\tMEDIAN\tMAX")
	reducers := []struct {
		label  string
		reduce analysis.Reduce
	}{
		{"final", analysis.Final},
		{"peak", analysis.Peak},
	}
	for _, name := range wanted {
		if name == backend.VarTime {
			continue
		}
		for _, r := range reducers {
			s := analysis.Summarize(name, results, r.reduce)
			fmt.Fprintf(w, "%s %s\t%d\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\n",
				r.label, s.Name, s.Runs, s.Mean, s.StdDev, s.Min, s.Median, s.Max)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	// distribution of final prey counts across the design
	finals := make([]float64, 0, len(results))
	for _, res := range results {
		if res.Err == nil {
			finals = append(finals, analysis.Final(res.Outputs[backend.VarPrey]))
		}
	}
	if len(finals) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(finals,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("final prey per run"),
		))
	}

	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	model := args[0]
	registry := experiment.NewRegistry()

	fmt.Printf("comparing integrators on %s (dt=%.2f, t=%.0f)\n\n", model, dt, duration)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tFINAL PREY\tFINAL PREDATOR\tPREY PERIOD")

	for _, name := range args[1:] {
		sys, err := registry.GetModel(model)
		if err != nil {
			return err
		}
		integ, err := registry.GetIntegrator(name)
		if err != nil {
			return err
		}

		cfg := ecodyn.Config{Dt: dt, Duration: duration, ValidateState: true}
		result, err := sim.New(sys, integ).Run(context.Background(), ecodyn.State{prey0, pred0}, cfg)
		if err != nil {
			return err
		}

		final := result.States[len(result.States)-1]
		period := analysis.Period(result.Times, result.Series(0))
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.1f\n", name, final[0], final[1], period)
	}

	return w.Flush()
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
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tDURATION\tDT\tINTEG")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0f\t%.2f\t%s\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Integrator,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	_, states, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	prey := make([]float64, len(states))
	predator := make([]float64, len(states))
	for i, s := range states {
		prey[i] = s[0]
		predator[i] = s[1]
	}

	fmt.Println(asciigraph.Plot(prey,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("prey"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(predator,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("predator"),
	))

	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	_, states, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	prey := make([]float64, len(states))
	predator := make([]float64, len(states))
	for i, s := range states {
		prey[i] = s[0]
		predator[i] = s[1]
	}

	canvas := viz.PhasePortrait(prey, predator, 60, 18)
	fmt.Print(canvas.String())
	fmt.Println("prey → / predator ↑")

	if svgOut != "" {
		svg := export.CanvasToSVG(canvas, 4.0)
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	sys, integ, err := buildSimulation(cfg)
	if err != nil {
		return err
	}

	simCfg := ecodyn.Config{Dt: cfg.Dt, Duration: cfg.Duration, ValidateState: true}
	m := tui.NewLive(cfg.Model, sys, integ, cfg.GetInitState(), simCfg, frameRate)
	return tui.RunLive(m)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	times, states, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	result := &ecodyn.Result{Times: times, States: states, Metrics: meta.Metrics}
	return storage.ExportJSON(os.Stdout, meta.Model, meta.Integrator, meta.Dt, meta.Duration, meta.Params, result)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	times, states, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "prey", "predator"}); err != nil {
		return err
	}
	for i := range times {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, v := range states[i] {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
