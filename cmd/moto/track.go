package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vkomarov/tui-moto/internal/config"
	"github.com/vkomarov/tui-moto/internal/sim"
)

var (
	flagTrackConfig     string
	flagTrackDifficulty string
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Preview a generated track's elevation profile",
	Long: `Generate a track and print its elevation profile as ASCII art.

Useful for checking what a seed produces before riding it.

Examples:
  moto track
  moto track --seed 42
  moto track --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runTrack,
}

func init() {
	trackCmd.Flags().StringVar(&flagTrackConfig, "config", "", "Path to custom game config YAML")
	trackCmd.Flags().StringVar(&flagTrackDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runTrack(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadMoto(flagTrackConfig)
	if err != nil {
		cfg = config.DefaultMotoConfig()
	}
	if flagTrackDifficulty != "" {
		config.ApplyMotoPreset(&cfg, config.DifficultyPreset(flagTrackDifficulty))
	}
	difficulty := config.NewDifficultyManager(cfg.Difficulty)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	track := sim.TrackConfig{
		SegmentCount:  cfg.Track.SegmentCount,
		SegmentLength: cfg.Track.SegmentLength,
		StartY:        cfg.Track.StartY,
		SlopeRange:    difficulty.SlopeRange(cfg.Track.SlopeRange),
	}

	terrain := sim.GenerateTerrain(track, rand.New(rand.NewSource(seed)))

	// Terminal width sets the horizontal resolution
	width := 80
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && w > 20 {
		width = w
	}

	const chartHeight = 16

	step := terrain.Length() / float64(width-1)
	points := terrain.Profile(0, terrain.Length(), step)
	if len(points) == 0 {
		fmt.Fprintln(os.Stderr, "Error: could not sample terrain")
		os.Exit(1)
	}
	if len(points) > width {
		points = points[:width]
	}

	// Find elevation range; y grows downward, so low Y means high ground
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	span := maxY - minY
	if span < 1e-9 {
		span = 1
	}

	// Render columns top-down
	rows := make([][]byte, chartHeight)
	for r := range rows {
		rows[r] = []byte(strings.Repeat(" ", len(points)))
	}
	for c, p := range points {
		// Row 0 is the highest elevation
		r := int((p.Y - minY) / span * float64(chartHeight-1))
		rows[r][c] = '#'
		for below := r + 1; below < chartHeight; below++ {
			rows[below][c] = '.'
		}
	}

	fmt.Printf("Track preview (seed %d)\n", seed)
	fmt.Printf("Length: %.0f units, %d segments, slope range %.2f\n\n",
		terrain.Length(), cfg.Track.SegmentCount, track.SlopeRange)
	for _, row := range rows {
		fmt.Println(string(row))
	}
	fmt.Printf("\nElevation span: %.1f units\n", span)
	fmt.Printf("Ride it with: moto play --seed %d\n", seed)
}
