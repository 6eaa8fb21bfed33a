package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/docksim/internal/config"
	"github.com/san-kum/docksim/internal/dynamo"
	"github.com/san-kum/docksim/internal/experiment"
	"github.com/san-kum/docksim/internal/export"
	"github.com/san-kum/docksim/internal/storage"
	"github.com/san-kum/docksim/internal/telemetry"
	"github.com/san-kum/docksim/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dataDir  string
	logLevel string
	columns  []string
	scenario scenarioFlags
)

// main registers the docksim commands and exits with status 1 when the
// selected command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "docksim",
		Short:         "planar rendezvous and docking control lab",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".docksim", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug logs every controller tick)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a docking scenario and store the trace",
		Args:  cobra.NoArgs,
		RunE:  runScenario,
	}
	scenario.register(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a docking scenario with live visualization",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	scenario.register(liveCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [controller...]",
		Short: "run one scenario under several controllers in parallel",
		RunE:  compareControllers,
	}
	scenario.register(compareCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run trace columns",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringSliceVar(&columns, "columns", []string{"chase_x", "chase_y", "f_x", "f_y"}, "columns to plot")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export the run trace as csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id] [file]",
		Short: "render the approach path as svg",
		Args:  cobra.ExactArgs(2),
		RunE:  exportSVG,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named scenarios",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, liveCmd, compareCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, name, err := scenario.load(cmd)
	if err != nil {
		return err
	}

	log, err := telemetry.NewZap(logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	exp, err := experiment.New(experiment.NewRegistry(), cfg, telemetry.NewLogger(log))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fields := []zap.Field{
		zap.String("scenario", name),
		zap.String("controller", cfg.Controller),
		zap.String("integrator", cfg.Integrator),
		zap.Float64("duration", cfg.Duration),
	}
	if s := exp.Session(); s != nil {
		fields = append(fields, zap.Stringer("bias", s.Strategy().Law.Bias))
	}
	log.Info("running scenario", fields...)
	start := time.Now()
	result, err := exp.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if result == nil {
		return err
	}
	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Scenario:   name,
		Dt:         cfg.Dt,
		Duration:   cfg.Duration,
		Integrator: cfg.Integrator,
		Controller: cfg.Controller,
		Team:       cfg.Team.Name,
		TeamID:     cfg.Team.ID,
	}, result)
	if err != nil {
		return err
	}

	log.Info("run stored",
		zap.String("run_id", runID),
		zap.Int("steps", result.StepsTaken),
		zap.Duration("elapsed", elapsed),
	)
	logRunErrors(log, result, zap.String("run_id", runID))

	fmt.Printf("run id: %s\n", runID)
	fmt.Println(metricsTable(result.Metrics))
	return nil
}

// logRunErrors warns once per error that ended a run early.
func logRunErrors(log *zap.Logger, result *dynamo.Result, fields ...zap.Field) {
	for _, e := range result.Errors {
		log.Warn("run stopped early", append(fields, zap.Error(e))...)
	}
}

func metricsTable(m map[string]float64) string {
	rows := make([][]string, 0, len(m))
	for _, name := range slices.Sorted(maps.Keys(m)) {
		rows = append(rows, []string{name, strconv.FormatFloat(m[name], 'g', 6, 64)})
	}
	return viz.Table([]string{"metric", "value"}, rows)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, name, err := scenario.load(cmd)
	if err != nil {
		return err
	}

	// The terminal belongs to the view, so the session reports only to the
	// experiment's recorder.
	exp, err := experiment.New(experiment.NewRegistry(), cfg, nil)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(exp, name+" / "+cfg.Controller), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

var compareMetrics = []string{"standoff_error", "min_separation", "control_effort", "safety_warnings", "gated_ticks", "mode_changes"}

func compareControllers(cmd *cobra.Command, args []string) error {
	base, name, err := scenario.load(cmd)
	if err != nil {
		return err
	}

	log, err := telemetry.NewZap(logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	reg := experiment.NewRegistry()
	names := args
	if len(names) == 0 {
		names = reg.ListControllers()
	}

	exps := make([]*experiment.Experiment, len(names))
	jobs := make([]dynamo.Job, len(names))
	for i, ctrl := range names {
		cfg := *base
		cfg.Controller = ctrl
		exp, err := experiment.New(reg, &cfg, nil)
		if err != nil {
			return err
		}
		exps[i], jobs[i] = exp, exp.Job()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	results, err := dynamo.RunParallel(ctx, jobs, base.SimConfig())
	if err != nil {
		return err
	}

	rows := make([][]string, len(names))
	for i, ctrl := range names {
		maps.Copy(results[i].Metrics, exps[i].Summary().Metrics())
		logRunErrors(log, results[i], zap.String("controller", ctrl))
		row := []string{ctrl, strconv.Itoa(results[i].StepsTaken)}
		for _, metric := range compareMetrics {
			row = append(row, strconv.FormatFloat(results[i].Metrics[metric], 'g', 5, 64))
		}
		row = append(row, strconv.FormatFloat(results[i].EnergyDrift, 'e', 2, 64))
		rows[i] = row
	}

	fmt.Printf("scenario %s (dt=%.3f, duration=%.1fs, integrator=%s)\n", name, base.Dt, base.Duration, base.Integrator)
	fmt.Println(viz.Table(append(append([]string{"controller", "steps"}, compareMetrics...), "energy_drift"), rows))
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
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tDURATION\tDT\tINTEG\tCTRL\tTEAM")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%s\t%s\t%s #%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Integrator,
			run.Controller,
			run.Team,
			run.TeamID,
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

	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(trace.Times) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s (%s)\n", meta.Scenario, meta.Controller)
	fmt.Printf("samples: %d\n\n", len(trace.Times))

	for _, name := range columns {
		data, ok := trace.Column(name)
		if !ok {
			return fmt.Errorf("unknown column %q (available: %s, %s)", name,
				strings.Join(storage.StateColumns, ", "), strings.Join(storage.ControlColumns, ", "))
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name+" vs time"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	if len(trace.Times) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)

	header := append([]string{"time"}, storage.StateColumns...)
	header = append(header, storage.ControlColumns...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i, t := range trace.Times {
		row := []string{strconv.FormatFloat(t, 'f', 6, 64)}
		for _, v := range trace.States[i] {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		for _, v := range trace.Controls[i] {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	svg := export.ApproachSVG(trace, 800, 800)
	if svg == "" {
		return fmt.Errorf("not enough samples to draw")
	}
	if err := os.WriteFile(args[1], []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[1])
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCONTROLLER\tDURATION\tCHASE\tTARGET")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%.0fs\t(%.2f, %.2f, %.2f)\t(%.2f, %.2f, %.2f)\n",
			name,
			cfg.Controller,
			cfg.Duration,
			cfg.Chase.X, cfg.Chase.Y, cfg.Chase.Theta,
			cfg.Target.X, cfg.Target.Y, cfg.Target.Theta,
		)
	}
	return w.Flush()
}
