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

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/samuelgirmametaferia/Oil-dropv2/internal/analysis"
	"github.com/samuelgirmametaferia/Oil-dropv2/internal/config"
	"github.com/samuelgirmametaferia/Oil-dropv2/internal/drop"
	"github.com/samuelgirmametaferia/Oil-dropv2/internal/export"
	"github.com/samuelgirmametaferia/Oil-dropv2/internal/metrics"
	"github.com/samuelgirmametaferia/Oil-dropv2/internal/sim"
	"github.com/samuelgirmametaferia/Oil-dropv2/internal/storage"
	"github.com/samuelgirmametaferia/Oil-dropv2/internal/viz"
)

var (
	dataDir    string
	voltage    float64 // V
	gapMM      float64 // mm
	radiusUM   float64 // um
	charge     int     // multiple of e
	temp       float64 // K
	noiseBoost float64
	fieldOn    bool
	duration   float64
	frameRate  float64
	seed       int64
	configFile string
	preset     string
	label      string
	// analyze inputs, um/s magnitudes
	fallSpeed float64
	riseSpeed float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "oildrop",
		Short: "Millikan oil-drop experiment simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live view when no command is given
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".oildrop", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and record it",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)
	runCmd.Flags().Float64Var(&duration, "time", 10.0, "simulated duration (s)")
	runCmd.Flags().Float64Var(&frameRate, "fps", 60.0, "driver frame rate")
	runCmd.Flags().StringVar(&label, "label", "drop", "run label")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive live view of the cell",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a run's trajectory as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			fmt.Println("presets:")
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	balanceCmd := &cobra.Command{
		Use:   "balance",
		Short: "balancing voltage for the configured drop",
		RunE:  balanceDrop,
	}
	addSimFlags(balanceCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "estimate radius and charge from fall/rise speeds",
		RunE:  analyzeSpeeds,
	}
	analyzeCmd.Flags().Float64Var(&fallSpeed, "fall", 0, "field-free terminal fall speed (um/s)")
	analyzeCmd.Flags().Float64Var(&riseSpeed, "rise", 0, "terminal rise speed under the field (um/s)")
	analyzeCmd.Flags().Float64Var(&voltage, "voltage", drop.DefaultVoltage, "plate voltage (V)")
	analyzeCmd.Flags().Float64Var(&gapMM, "gap", drop.DefaultPlateGap*1e3, "plate gap (mm)")

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, presetsCmd, balanceCmd, analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&voltage, "voltage", drop.DefaultVoltage, "plate voltage (V)")
	cmd.Flags().Float64Var(&gapMM, "gap", drop.DefaultPlateGap*1e3, "plate gap (mm)")
	cmd.Flags().Float64Var(&radiusUM, "radius", drop.DefaultRadius*1e6, "drop radius (um)")
	cmd.Flags().IntVar(&charge, "charge", drop.DefaultChargeCount, "charge as a multiple of e")
	cmd.Flags().Float64Var(&temp, "temp", drop.DefaultTemperature, "air temperature (K)")
	cmd.Flags().Float64Var(&noiseBoost, "noise", drop.DefaultNoiseBoost, "thermal noise boost [0,2]")
	cmd.Flags().BoolVar(&fieldOn, "field", true, "enable the electric field")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "preset scenario name")
}

// buildConfig resolves precedence: CLI flag > config file > preset >
// default, mirroring flag handling across commands.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
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

	if cmd.Flags().Changed("voltage") {
		cfg.Voltage = voltage
	}
	if cmd.Flags().Changed("gap") {
		cfg.PlateGap = gapMM * 1e-3
	}
	if cmd.Flags().Changed("radius") {
		cfg.Radius = radiusUM * 1e-6
	}
	if cmd.Flags().Changed("charge") {
		cfg.ChargeCount = charge
	}
	if cmd.Flags().Changed("temp") {
		cfg.Temperature = temp
	}
	if cmd.Flags().Changed("noise") {
		cfg.NoiseBoost = noiseBoost
	}
	if cmd.Flags().Changed("field") {
		cfg.FieldOn = fieldOn
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("fps") {
		cfg.FrameRate = frameRate
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	params, state := cfg.Build()
	noise := drop.NewGaussianNoise(cfg.Seed)

	simulator := sim.New(state, params, noise)
	simulator.AddMetric(metrics.NewTerminalError(params))
	simulator.AddMetric(metrics.NewPositionVariance())
	simulator.AddMetric(metrics.NewMeanSpeed())

	runCfg := sim.Config{Duration: cfg.Duration, FrameRate: cfg.FrameRate, Seed: cfg.Seed}

	fmt.Printf("simulating %.1fs of drop motion...\n", runCfg.Duration)
	start := time.Now()

	result, err := simulator.Run(context.Background(), runCfg)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(label, cfg, runCfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", len(result.Samples))
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	params, state := cfg.Build()
	noise := drop.NewGaussianNoise(cfg.Seed)

	m := viz.NewModel(params, state, noise, cfg.Seed)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
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
	fmt.Fprintln(w, "ID\tLABEL\tTIME\tDURATION\tVOLTAGE\tCHARGE")

	for _, run := range runs {
		voltage, chargeCount := 0.0, 0
		if run.Config != nil {
			voltage = run.Config.Voltage
			chargeCount = run.Config.ChargeCount
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.0fV\t%+de\n",
			run.ID,
			run.Label,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			voltage,
			chargeCount,
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

	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(samples))

	positions := make([]float64, len(samples))
	velocities := make([]float64, len(samples))
	for i, s := range samples {
		positions[i] = s.Position * 1e3  // mm
		velocities[i] = s.Velocity * 1e6 // um/s
	}

	fmt.Println(asciigraph.Plot(positions,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("height above lower plate (mm)"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(velocities,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("velocity (um/s)"),
	))

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, samples)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "position", "velocity", "field"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.Time, 'f', 6, 64),
			strconv.FormatFloat(s.Position, 'e', 9, 64),
			strconv.FormatFloat(s.Velocity, 'e', 9, 64),
			strconv.FormatFloat(s.Field, 'e', 9, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	gap := drop.DefaultPlateGap
	if meta.Config != nil && meta.Config.PlateGap > 0 {
		gap = meta.Config.PlateGap
	}

	svg := export.TrajectorySVG(samples, gap, 800, 400)
	if svg == "" {
		return fmt.Errorf("no data to export")
	}
	fmt.Println(svg)
	return nil
}

func balanceDrop(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	params, state := cfg.Build()
	v, ok := analysis.BalancingVoltage(state, params)
	if !ok {
		return fmt.Errorf("an uncharged drop cannot be balanced")
	}

	fmt.Printf("drop: radius %.2f um, charge %+de, mass %.3g kg\n",
		state.Radius*1e6, state.ChargeCount, state.Mass)
	fmt.Printf("balancing voltage across %.1f mm gap: %.2f V\n",
		params.PlateGap*1e3, v)
	if v > drop.MaxVoltage {
		fmt.Println("note: above the supply limit, this drop cannot be suspended")
	}
	return nil
}

func analyzeSpeeds(cmd *cobra.Command, args []string) error {
	if fallSpeed <= 0 {
		return fmt.Errorf("--fall must be a positive speed in um/s")
	}

	gap := gapMM * 1e-3
	if gap < drop.MinGap {
		gap = drop.MinGap
	}
	field := voltage / gap

	est, ok := analysis.EstimateCharge(
		fallSpeed*1e-6, riseSpeed*1e-6, field,
		drop.DefaultViscosity, drop.DefaultGravity,
	)
	if !ok {
		return fmt.Errorf("could not reduce measurement (check --fall and --voltage)")
	}

	fmt.Printf("radius: %.3f um\n", est.Radius*1e6)
	fmt.Printf("charge: %.4g C\n", est.Charge)
	fmt.Printf("nearest multiple of e: %d\n", est.Multiple)
	return nil
}
