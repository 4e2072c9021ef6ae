package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neko-runner/internal/platform/tui"
	"github.com/vovakirdan/neko-runner/internal/storage"
)

var (
	flagPlayer string
	flagLimit  int
	flagPlain  bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show past runs",
	Long: `Display recorded runs. In a terminal this opens an interactive
scoreboard; with --plain or when piped it prints the top runs.

Examples:
  neko scores
  neko scores --plain --limit 20
  neko scores --player alice
  neko scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show runs by this player")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print in plain mode")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive board")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All runs deleted.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, flagPlayer, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.Run
	if flagPlayer != "" {
		runs, err = store.PlayerRuns(flagPlayer, flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Neko Runner - Top Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'neko play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-12s  %-16s  %s\n", "Rank", "Score", "Level", "Player", "Date", "Perks")
	fmt.Printf("  %-4s  %-8s  %-5s  %-12s  %-16s  %s\n", "----", "-----", "-----", "------", "----", "-----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-5d  %-12s  %-16s  %s\n",
			i+1, r.Score, r.Level, r.Player, r.CreatedAt.Format("2006-01-02 15:04"), r.Perks)
	}

	if stats, err := store.GetStats(); err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Best: %d   Runs: %d   Average: %.0f   Highest level: %d\n",
			stats.BestScore, stats.Runs, stats.AvgScore, stats.BestLevel)
	}
}
