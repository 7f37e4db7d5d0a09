// moto is a terminal motorcycle trials game with physics-based riding
// over procedurally generated terrain.
//
// Usage:
//
//	moto play                - Ride a randomly generated track
//	moto menu                - Pick a difficulty interactively
//	moto track               - Preview a generated track's elevation
//	moto list                - List available games
//	moto scores              - Show best runs
//	moto serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set track seed for reproducible terrain
//	--db <path>     - Set database path (default: ~/.moto/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vkomarov/tui-moto/internal/games/moto"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "moto",
	Short: "Moto Trials - Ride procedural terrain in your terminal",
	Long: `Moto Trials is a terminal motorcycle game. Throttle, brake, and tilt
your way across procedurally generated hills without crashing.

Available commands:
  play     - Ride a randomly generated track
  menu     - Interactive difficulty picker
  track    - Preview a generated track's elevation profile
  list     - Show registered games
  scores   - View best runs
  serve    - Start SSH server for remote play

Examples:
  moto play
  moto play --difficulty hard
  moto play --seed 42
  moto track --seed 42
  moto serve --ssh :2222
  moto scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Track seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.moto/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
