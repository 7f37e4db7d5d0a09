package sim

// Control identifies one of the four rider inputs.
type Control int

const (
	ControlAccelerate Control = iota
	ControlBrake
	ControlTiltLeft
	ControlTiltRight
)

// String returns a human-readable name for the control.
func (c Control) String() string {
	switch c {
	case ControlAccelerate:
		return "accelerate"
	case ControlBrake:
		return "brake"
	case ControlTiltLeft:
		return "tilt_left"
	case ControlTiltRight:
		return "tilt_right"
	default:
		return "unknown"
	}
}

// Controls holds the rider's input flags. The host sets flags from its input
// events; the session only reads them during a step. Opposing flags are not
// mutually exclusive: accelerate and brake held together net a smaller force,
// and both tilts held in one step cancel out.
type Controls struct {
	Accelerate bool
	Brake      bool
	TiltLeft   bool
	TiltRight  bool
}

// Set updates a single flag. Unknown controls are ignored.
func (c *Controls) Set(control Control, pressed bool) {
	switch control {
	case ControlAccelerate:
		c.Accelerate = pressed
	case ControlBrake:
		c.Brake = pressed
	case ControlTiltLeft:
		c.TiltLeft = pressed
	case ControlTiltRight:
		c.TiltRight = pressed
	}
}

// applyDrive adds the horizontal control forces to both wheels, scaled by dt.
// Called once per step before integration. Tilt is handled separately after
// collision resolution, see Session.Advance.
func (c *Controls) applyDrive(f *Frame, engineForce, brakeForce, dt float64) {
	accel := 0.0
	if c.Accelerate {
		accel += engineForce
	}
	if c.Brake {
		accel += brakeForce // negative constant
	}
	if accel == 0 {
		return
	}
	f.Front.VX += accel * dt
	f.Rear.VX += accel * dt
}

// tiltAngle returns the net rotation for this step: each held tilt flag
// contributes a fixed step angle, and the two compose.
func (c *Controls) tiltAngle(tiltStep float64) float64 {
	theta := 0.0
	if c.TiltLeft {
		theta -= tiltStep
	}
	if c.TiltRight {
		theta += tiltStep
	}
	return theta
}
