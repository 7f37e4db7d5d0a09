package sim

// Params holds the physics tuning constants for a session. Zero values are
// not meaningful; start from DefaultParams and override.
type Params struct {
	Gravity     float64 // downward acceleration, units/s^2 (y grows down)
	EngineForce float64 // horizontal acceleration while accelerating, units/s^2
	BrakeForce  float64 // horizontal acceleration while braking, negative
	Friction    float64 // per-step vx multiplier while a wheel is in contact
	SlopeBlend  float64 // fraction of the heading blended toward the slope on contact
	TiltStep    float64 // radians rotated per step per held tilt flag

	WheelDistance float64
	WheelRadius   float64
	WheelMass     float64
	StartX        float64 // initial rear wheel x

	MaxStep float64 // dt clamp ceiling in seconds; bounds scheduling gaps
}

// DefaultParams returns the standard bike tuning.
func DefaultParams() Params {
	return Params{
		Gravity:       900,
		EngineForce:   400,
		BrakeForce:    -300,
		Friction:      0.98,
		SlopeBlend:    0.2,
		TiltStep:      0.06,
		WheelDistance: 40,
		WheelRadius:   10,
		WheelMass:     1,
		StartX:        100,
		MaxStep:       0.033,
	}
}

// DefaultTrack returns the standard track generation settings.
func DefaultTrack() TrackConfig {
	return TrackConfig{
		SegmentCount:  64,
		SegmentLength: 120,
		StartY:        300,
		SlopeRange:    1.2,
	}
}
