// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// MotoConfig contains all configuration for the Moto Trials game.
type MotoConfig struct {
	Physics    MotoPhysics      `yaml:"physics"`
	Bike       MotoBike         `yaml:"bike"`
	Track      MotoTrack        `yaml:"track"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MotoPhysics defines the simulation tuning constants.
type MotoPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	EngineForce float64 `yaml:"engine_force"`
	BrakeForce  float64 `yaml:"brake_force"` // negative: opposes motion
	Friction    float64 `yaml:"friction"`    // per-step vx multiplier on contact
	SlopeBlend  float64 `yaml:"slope_blend"` // heading fraction blended toward the slope
	TiltStep    float64 `yaml:"tilt_step"`   // radians per tick per held tilt key
	MaxStep     float64 `yaml:"max_step"`    // dt clamp ceiling, seconds
}

// MotoBike defines the rigid frame geometry.
type MotoBike struct {
	WheelDistance float64 `yaml:"wheel_distance"`
	WheelRadius   float64 `yaml:"wheel_radius"`
	WheelMass     float64 `yaml:"wheel_mass"`
	StartX        float64 `yaml:"start_x"`
}

// MotoTrack defines procedural track generation parameters.
type MotoTrack struct {
	SegmentCount  int     `yaml:"segment_count"`
	SegmentLength float64 `yaml:"segment_length"`
	StartY        float64 `yaml:"start_y"`
	SlopeRange    float64 `yaml:"slope_range"`
}

// DifficultyConfig defines the difficulty system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "distance" or "none"
	MaxAt int    `yaml:"max_at"` // distance in meters at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SlopeMultiplier float64 `yaml:"slope_multiplier"` // slope range scale added at max difficulty
	BonusMultiplier float64 `yaml:"bonus_multiplier"` // score multiplier added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyMotoPreset modifies the config based on a difficulty preset.
func ApplyMotoPreset(cfg *MotoConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
