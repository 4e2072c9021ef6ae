package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neko-runner/internal/config"
	"github.com/vovakirdan/neko-runner/internal/core"
	"github.com/vovakirdan/neko-runner/internal/platform/tui"
	"github.com/vovakirdan/neko-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Neko Runner",
	Long: `Start a run in this terminal.

Controls:
  Space (hold)  - Charge jump, release to leap; press in the air to air-jump
  Up/W          - Quick hop
  Enter         - Start / continue
  1-3, click    - Pick a perk on level up
  R             - Reroll perk choices
  P/Esc         - Pause
  Ctrl+S        - Save a screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Slow start, an extra life
  normal - Default pacing
  hard   - Starts faster with fewer lives
  fixed  - No difficulty progression

Examples:
  neko play
  neko play --difficulty easy
  neko play --config ./my-neko.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadGameConfig loads the YAML config and applies the difficulty preset.
func loadGameConfig() (config.NekoConfig, error) {
	cfg, err := config.LoadNeko(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		config.ApplyNekoPreset(&cfg, preset)
	}
	return cfg, cfg.Validate()
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("neko", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
