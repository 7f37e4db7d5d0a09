package config

import (
	_ "embed"
)

//go:embed defaults/moto.yaml
var defaultMotoYAML []byte

// DefaultMotoConfig returns the default Moto Trials configuration.
func DefaultMotoConfig() MotoConfig {
	return MotoConfig{
		Physics: MotoPhysics{
			Gravity:     900,
			EngineForce: 400,
			BrakeForce:  -300,
			Friction:    0.98,
			SlopeBlend:  0.2,
			TiltStep:    0.06,
			MaxStep:     0.033,
		},
		Bike: MotoBike{
			WheelDistance: 40,
			WheelRadius:   10,
			WheelMass:     1,
			StartX:        100,
		},
		Track: MotoTrack{
			SegmentCount:  64,
			SegmentLength: 120,
			StartY:        300,
			SlopeRange:    1.2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "distance",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SlopeMultiplier: 0.6,
				BonusMultiplier: 1.0,
			},
		},
	}
}
