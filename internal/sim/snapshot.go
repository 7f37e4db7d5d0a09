package sim

import "math"

// Snapshot is the read-only frame state published after each step. It carries
// everything a renderer needs to draw the frame, wheels, and a rider without
// reaching into session internals.
type Snapshot struct {
	FrontX float64
	FrontY float64
	RearX  float64
	RearY  float64

	MidX  float64
	MidY  float64
	Angle float64 // atan2 of the rear-to-front vector
	Speed float64 // midpoint speed magnitude

	FrontGrounded bool
	RearGrounded  bool
}

func (s *Session) snapshot(frontGrounded, rearGrounded bool) Snapshot {
	f := s.frame
	cx, cy := f.Midpoint()
	return Snapshot{
		FrontX:        f.Front.X,
		FrontY:        f.Front.Y,
		RearX:         f.Rear.X,
		RearY:         f.Rear.Y,
		MidX:          cx,
		MidY:          cy,
		Angle:         f.Angle(),
		Speed:         math.Hypot((f.Front.VX+f.Rear.VX)/2, (f.Front.VY+f.Rear.VY)/2),
		FrontGrounded: frontGrounded,
		RearGrounded:  rearGrounded,
	}
}

// Snapshot returns the current frame state without advancing the simulation.
// Grounded flags are recomputed from the current positions.
func (s *Session) Snapshot() Snapshot {
	f := s.frame
	front := f.Front.Y+f.WheelRadius >= s.terrain.HeightAt(f.Front.X)-1e-9
	rear := f.Rear.Y+f.WheelRadius >= s.terrain.HeightAt(f.Rear.X)-1e-9
	return s.snapshot(front, rear)
}
