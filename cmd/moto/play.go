package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vkomarov/tui-moto/internal/core"
	"github.com/vkomarov/tui-moto/internal/games/moto"
	"github.com/vkomarov/tui-moto/internal/platform/tui"
	"github.com/vkomarov/tui-moto/internal/registry"
	"github.com/vkomarov/tui-moto/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Ride a randomly generated track",
	Long: `Start riding a procedurally generated track.

Controls:
  W/Up/Space   - Throttle
  S/Down       - Brake
  A/Left       - Tilt back
  D/Right      - Tilt forward
  P            - Pause
  R            - Restart (after a crash)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Gentle slopes, progresses with distance
  normal - Moderate slopes, progresses with distance
  hard   - Steep slopes from the start
  fixed  - No progression, stays at config's initial level

Examples:
  moto play
  moto play --difficulty easy
  moto play --seed 42
  moto play --config ./my-moto.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	moto.SetConfigPath(flagConfig)
	moto.SetDifficultyPreset(flagDifficulty)

	// Create game instance
	game, err := registry.Create("moto")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
