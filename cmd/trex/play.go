package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tuigames/trex-runner/internal/config"
	"github.com/tuigames/trex-runner/internal/core"
	"github.com/tuigames/trex-runner/internal/platform/tui"
	"github.com/tuigames/trex-runner/internal/runner"
	"github.com/tuigames/trex-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the runner",
	Long: `Start a run.

Controls:
  Space/Up/W - Jump (also starts the run)
  Down/S     - Duck, or fast-fall while airborne
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower speed progression
  normal - Default progression
  hard   - Faster start, steeper progression
  fixed  - No progression, stays at initial speed

Examples:
  trex play
  trex play --difficulty easy
  trex play --config ./my-runner.yaml
  trex play --seed 12345`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}

	// Get terminal size for the render target
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open run storage
	var store runner.ScoreStore
	sqlStore, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
	} else {
		store = sqlStore
	}

	runErr := tui.Run(&cfg, store, rt)

	if sqlStore != nil {
		sqlStore.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
