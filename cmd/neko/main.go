// neko is a terminal endless runner: a cat jumps cucumbers, levels up and
// stacks perks.
//
// Usage:
//
//	neko play              - Play in this terminal
//	neko serve             - Start SSH server for remote play
//	neko scores            - Show past runs
//	neko perks             - List the perk pool
//	neko sim               - Run headless autopilot simulations
//	neko config            - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.neko/runs.db)
//	--log <path>    - Write logs to a file
//	--debug         - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neko",
	Short: "Neko Runner - an endless runner for your terminal",
	Long: `Neko Runner is a terminal endless runner. Hold to charge a jump,
clear cucumbers, collect cat cans and stars, and pick a perk every
level.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View past runs
  perks    - List every perk
  sim      - Balance-test with a headless autopilot
  config   - Print the default configuration

Examples:
  neko play
  neko play --difficulty hard --seed 42
  neko serve --ssh :2222
  neko sim --runs 200 --out runs.csv`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.neko/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(perksCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. With --log it writes to that
// file; otherwise it writes to fallback, which may be io.Discard while
// the terminal belongs to the game.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
