package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkomarov/tui-moto/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs",
	Long: `Display the top 10 runs by distance.

Examples:
  moto scores
  moto scores --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	const gameID = "moto"

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top runs
	runs, err := store.TopRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Moto Trials")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'moto play' to set the first record!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-8s  %-10s  %s\n", "Rank", "Distance", "Time", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-10s  %s\n", "----", "--------", "----", "----------", "----")

	// Print runs
	for i, entry := range runs {
		diff := entry.Difficulty
		if diff == "" {
			diff = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		durStr := fmt.Sprintf("%d:%02d", entry.DurationSecs/60, entry.DurationSecs%60)
		fmt.Printf("  %-4d  %-10s  %-8s  %-10s  %s\n", i+1, fmt.Sprintf("%dm", entry.Distance), durStr, diff, dateStr)
	}

	// Show best distance
	fmt.Println()
	best, err := store.BestDistance(gameID)
	if err == nil {
		fmt.Printf("Best: %dm\n", best)
	}
}
