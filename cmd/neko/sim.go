package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neko-runner/internal/telemetry"
)

var (
	flagRuns    int
	flagTicks   int
	flagOut     string
	flagWorkers int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot simulations",
	Long: `Play many runs without a terminal using a scripted autopilot and
report score, level and survival statistics. Use it to check how config
changes affect balance.

Run i uses seed+i, so a fixed --seed reproduces the whole batch.

Examples:
  neko sim --runs 100
  neko sim --runs 500 --ticks 36000 --seed 7 --out runs.csv
  neko sim --difficulty hard --config ./tuned.yaml`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 100, "Number of runs to simulate")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 18000, "Tick limit per run")
	simCmd.Flags().StringVar(&flagOut, "out", "", "Write per-run CSV to this path")
	simCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Parallel workers (0 = GOMAXPROCS)")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(cmd *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("neko-sim", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Info("simulating", "runs", flagRuns, "ticks", flagTicks, "seed", seed,
		"policy", gameCfg.Difficulty.Policy)
	start := time.Now()
	records, err := telemetry.Batch(ctx, gameCfg, telemetry.BatchOptions{
		Runs:     flagRuns,
		MaxTicks: flagTicks,
		Seed:     seed,
		Workers:  flagWorkers,
	})
	if err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
	logger.Info("done", "elapsed", time.Since(start).Round(time.Millisecond))

	if flagOut != "" {
		if err := telemetry.WriteCSVFile(flagOut, records); err != nil {
			logger.Error("could not write runs", "error", err)
			os.Exit(1)
		}
		logger.Info("wrote runs", "path", flagOut)
	}

	if err := telemetry.WriteSummary(os.Stdout, telemetry.Summarize(records)); err != nil {
		logger.Error("could not write summary", "error", err)
		os.Exit(1)
	}
}
