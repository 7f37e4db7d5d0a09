package sim

import (
	"math"
	"math/rand"
	"time"
)

// Session owns one terrain, one rigid frame, and one set of control flags.
// Sessions are independent: nothing is shared between them, so multiple
// simulations can run side by side (and tests never touch globals).
//
// A session is single-threaded by contract. The host calls Advance or StepAt
// once per tick; control flags set between ticks take effect on the next
// step. There is no terminal state: the simulation runs for as long as the
// host keeps ticking.
type Session struct {
	terrain  *Terrain
	frame    *Frame
	controls Controls
	params   Params

	lastTime    time.Time
	hasLastTime bool
}

// NewSession generates a track from cfg, places the bike resting on it, and
// returns a session ready to step. The same seed reproduces the same track.
func NewSession(cfg TrackConfig, params Params, seed int64) *Session {
	rng := rand.New(rand.NewSource(seed))
	terrain := GenerateTerrain(cfg, rng)
	frame := NewFrame(terrain, params.StartX, params.WheelDistance, params.WheelRadius, params.WheelMass)
	return &Session{
		terrain: terrain,
		frame:   frame,
		params:  params,
	}
}

// Terrain returns the session's track for read-only queries.
func (s *Session) Terrain() *Terrain {
	return s.terrain
}

// Frame returns the rigid frame. External readers must not mutate it; only
// the session advances frame state.
func (s *Session) Frame() *Frame {
	return s.frame
}

// Params returns the session's tuning constants.
func (s *Session) Params() Params {
	return s.params
}

// SetControl updates one input flag. Safe to call between steps; a flag set
// mid-tick takes effect on the next step.
func (s *Session) SetControl(control Control, pressed bool) {
	s.controls.Set(control, pressed)
}

// Controls returns the current input flags.
func (s *Session) Controls() Controls {
	return s.controls
}

// StepAt advances the simulation by the wall-clock time elapsed since the
// previous call, clamped to the configured maximum. The first call records
// the timestamp and advances by zero.
func (s *Session) StepAt(now time.Time) Snapshot {
	dt := 0.0
	if s.hasLastTime {
		dt = now.Sub(s.lastTime).Seconds()
	}
	s.lastTime = now
	s.hasLastTime = true
	return s.Advance(dt)
}

// Advance runs one fixed-order simulation step with the given elapsed time in
// seconds: gravity, control forces, Euler integration, distance constraint,
// collision resolution, tilt rotation. It never fails; a NaN or negative dt
// is treated as zero and dt above the clamp ceiling is truncated, so a
// scheduling gap cannot tunnel a wheel through the track or blow up
// velocities.
func (s *Session) Advance(dt float64) Snapshot {
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}
	if dt > s.params.MaxStep {
		dt = s.params.MaxStep
	}

	f := s.frame
	p := s.params

	// Gravity. Y grows downward, so falling means vy increasing.
	f.Front.VY += p.Gravity * dt
	f.Rear.VY += p.Gravity * dt

	s.controls.applyDrive(f, p.EngineForce, p.BrakeForce, dt)

	// Forward Euler position integration.
	f.Front.X += f.Front.VX * dt
	f.Front.Y += f.Front.VY * dt
	f.Rear.X += f.Rear.VX * dt
	f.Rear.Y += f.Rear.VY * dt

	f.enforceDistance()

	frontGrounded := resolveWheel(&f.Front, s.terrain, f.WheelRadius, p.Friction, p.SlopeBlend)
	rearGrounded := resolveWheel(&f.Rear, s.terrain, f.WheelRadius, p.Friction, p.SlopeBlend)

	if theta := s.controls.tiltAngle(p.TiltStep); theta != 0 {
		f.rotate(theta)
	}

	return s.snapshot(frontGrounded, rearGrounded)
}
