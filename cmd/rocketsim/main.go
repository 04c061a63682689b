package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/rocketsim/internal/config"
	"github.com/san-kum/rocketsim/internal/env"
	"github.com/san-kum/rocketsim/internal/metrics"
	"github.com/san-kum/rocketsim/internal/policy"
	"github.com/san-kum/rocketsim/internal/runner"
	"github.com/san-kum/rocketsim/internal/storage"
	"github.com/san-kum/rocketsim/internal/tui"
)

var (
	dataDir    string
	dt         float64
	maxTime    float64
	seed       int64
	policyName string
	altitude   float64
	startX     float64
	fuel       float64
	gravity    float64
	windMax    float64
	episodes   int
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rocketsim",
		Short: "reusable rocket flight simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to interactive flight when no command given
			return playFlight(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".rocketsim", "data directory")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "fly the rocket interactively",
		RunE:  playFlight,
	}
	addRunFlags(playCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run one episode under a policy",
		RunE:  runEpisode,
	}
	addRunFlags(runCmd)
	runCmd.Flags().StringVar(&policyName, "policy", "descent", "flight policy (descent, random)")

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "run seeded episodes in parallel",
		RunE:  runBatch,
	}
	addRunFlags(batchCmd)
	batchCmd.Flags().StringVar(&policyName, "policy", "descent", "flight policy (descent, random)")
	batchCmd.Flags().IntVarP(&episodes, "episodes", "n", 10, "number of episodes")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored trajectory to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportCSV(args[0], os.Stdout)
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(args[0], os.Stdout)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenario presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tGRAVITY\tWIND\tFUEL\tMAX TIME")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.2f\t%.1f\t%.0fkg\t%.0fs\n",
					name, p.Gravity, p.WindMax, p.InitState.Fuel, p.MaxTime)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(playCmd, runCmd, batchCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	cmd.Flags().Float64Var(&maxTime, "max-time", config.DefaultMaxTime, "episode time limit (s)")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().Float64Var(&altitude, "altitude", 0, "initial altitude (m)")
	cmd.Flags().Float64Var(&startX, "x", 0, "initial downrange position (m)")
	cmd.Flags().Float64Var(&fuel, "fuel", -1, "initial fuel (kg, -1 = full)")
	cmd.Flags().Float64Var(&gravity, "gravity", 9.81, "surface gravity (m/s²)")
	cmd.Flags().Float64Var(&windMax, "wind-max", config.DefaultWindMax, "max base wind (m/s)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
}

// buildConfig layers preset, config file, then CLI flags, the latest
// winning.
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

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("max-time") {
		cfg.MaxTime = maxTime
	}
	if cmd.Flags().Changed("gravity") {
		cfg.Gravity = gravity
	}
	if cmd.Flags().Changed("wind-max") {
		cfg.WindMax = windMax
	}
	if cmd.Flags().Changed("altitude") {
		cfg.InitState.Altitude = altitude
	}
	if cmd.Flags().Changed("x") {
		cfg.InitState.X = startX
	}
	if cmd.Flags().Changed("fuel") && fuel >= 0 {
		cfg.InitState.Fuel = fuel
	}
	if cmd.Flags().Changed("policy") {
		cfg.Policy = policyName
	}
	if cfg.Seed == 0 || cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	return cfg, nil
}

func newPolicy(name string, cfg env.Config) (func() policy.Policy, error) {
	switch name {
	case "descent":
		return func() policy.Policy { return policy.NewDescent(cfg.Params) }, nil
	case "random":
		return func() policy.Policy { return policy.NewRandom(cfg.Seed) }, nil
	default:
		return nil, fmt.Errorf("unknown policy: %s (available: descent, random)", name)
	}
}

func playFlight(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	ec, err := cfg.EnvConfig()
	if err != nil {
		return err
	}
	e, err := env.New(ec)
	if err != nil {
		return err
	}
	defer e.Close()

	return tui.Play(e, cfg.Seed)
}

func runEpisode(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	ec, err := cfg.EnvConfig()
	if err != nil {
		return err
	}

	e, err := env.New(ec)
	if err != nil {
		return err
	}
	defer e.Close()

	factory, err := newPolicy(cfg.Policy, ec)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s policy (seed %d)...\n", cfg.Policy, cfg.Seed)
	start := time.Now()

	result, err := runner.RunEpisode(context.Background(), e, factory(), cfg.Seed, metrics.Defaults())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Policy, cfg.Dt, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("outcome: %s", result.Phase)
	if result.ReachedSpace {
		fmt.Printf(" (reached space)")
	}
	fmt.Println()
	fmt.Printf("flight time: %.1fs over %d steps\n", result.Duration, result.Steps)
	fmt.Printf("total reward: %.2f\n", result.TotalReward)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.3f\n", name, val)
	}

	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	ec, err := cfg.EnvConfig()
	if err != nil {
		return err
	}

	factory, err := newPolicy(cfg.Policy, ec)
	if err != nil {
		return err
	}

	fmt.Printf("running %d episodes of %s policy (seeds %d..%d)...\n",
		episodes, cfg.Policy, cfg.Seed, cfg.Seed+int64(episodes)-1)
	start := time.Now()

	batch := runner.NewBatch(ec, episodes, cfg.Seed, factory)
	results, err := batch.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tOUTCOME\tSPACE\tTIME\tREWARD\tFUEL USED\tAPOGEE")

	landed, reachedSpace := 0, 0
	var rewardSum float64
	for _, r := range results {
		space := ""
		if r.ReachedSpace {
			space = "yes"
			reachedSpace++
		}
		if r.Phase == env.PhaseLanded {
			landed++
		}
		rewardSum += r.TotalReward
		fmt.Fprintf(w, "%d\t%s\t%s\t%.1fs\t%.1f\t%.0fkg\t%.0fm\n",
			r.Seed, r.Phase, space, r.Duration, r.TotalReward,
			r.Metrics["fuel_used"], r.Metrics["apogee"])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nlanded %d/%d  reached space %d/%d  mean reward %.2f\n",
		landed, len(results), reachedSpace, len(results),
		rewardSum/float64(len(results)))

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
	fmt.Fprintln(w, "ID\tPOLICY\tTIME\tOUTCOME\tSPACE\tFLIGHT\tREWARD")

	for _, run := range runs {
		space := ""
		if run.ReachedSpace {
			space = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.1fs\t%.1f\n",
			run.ID,
			run.Policy,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Phase,
			space,
			run.Duration,
			run.TotalReward,
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

	rows, _, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("policy: %s  outcome: %s\n", meta.Policy, meta.Phase)
	fmt.Printf("samples: %d\n\n", len(rows))

	channels := []struct {
		col     int
		caption string
	}{
		{1, "altitude (m)"},
		{3, "vertical velocity (m/s)"},
		{2, "horizontal velocity (m/s)"},
		{6, "fuel (kg)"},
		{7, "reward per step"},
	}

	for _, ch := range channels {
		data := make([]float64, len(rows))
		for i := range rows {
			if ch.col < len(rows[i]) {
				data[i] = rows[i][ch.col]
			}
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(ch.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}
