package config

import "math"

// DifficultyManager calculates dynamic game parameters based on distance
// traveled.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for the given
// distance in meters.
func (d *DifficultyManager) Level(distance int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type != "distance" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	progress := clampF(float64(distance)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SlopeRange returns the track slope range scaled for the starting
// difficulty. Terrain is immutable once generated, so this uses the initial
// level rather than the live distance.
func (d *DifficultyManager) SlopeRange(base float64) float64 {
	return base * (1.0 + d.initialLevel*d.cfg.Scaling.SlopeMultiplier)
}

// ScoreMultiplier returns the score multiplier for the given distance.
// Riding at higher difficulty is worth more.
func (d *DifficultyManager) ScoreMultiplier(distance int) float64 {
	return 1.0 + d.Level(distance)*d.cfg.Scaling.BonusMultiplier
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
