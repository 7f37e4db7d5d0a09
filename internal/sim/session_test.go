package sim

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

const testDt = 1.0 / 60

// sessionOn assembles a session around a hand-made terrain, with the bike
// resting at startX.
func sessionOn(terrain *Terrain, params Params, startX float64) *Session {
	return &Session{
		terrain: terrain,
		frame:   NewFrame(terrain, startX, params.WheelDistance, params.WheelRadius, params.WheelMass),
		params:  params,
	}
}

func TestSessionSettlesOnFlatGround(t *testing.T) {
	// Bike dropped from the sky over flat ground must come to rest tangent
	// to the surface with no vertical velocity.
	terrain := flatTerrain(3, 400, 500)
	params := DefaultParams()
	s := sessionOn(terrain, params, 150)
	s.frame.Front.Y = 0
	s.frame.Rear.Y = 0

	var snap Snapshot
	for i := 0; i < 300; i++ {
		snap = s.Advance(testDt)
	}

	wantY := 500 - params.WheelRadius
	if math.Abs(s.frame.Rear.Y-wantY) > 1e-6 {
		t.Errorf("rear wheel settled at y=%f, want %f", s.frame.Rear.Y, wantY)
	}
	if math.Abs(s.frame.Front.Y-wantY) > 1e-6 {
		t.Errorf("front wheel settled at y=%f, want %f", s.frame.Front.Y, wantY)
	}
	if s.frame.Rear.VY != 0 || s.frame.Front.VY != 0 {
		t.Errorf("settled wheels still have vertical velocity: %f, %f", s.frame.Rear.VY, s.frame.Front.VY)
	}
	if !snap.FrontGrounded || !snap.RearGrounded {
		t.Error("settled bike should report both wheels grounded")
	}
}

func TestSessionAccelerationReachesEngineForce(t *testing.T) {
	// With friction disabled, holding accelerate for one simulated second at
	// engineForce=1000 brings vx to 1000 within integration error.
	terrain := flatTerrain(10, 400, 500)
	params := DefaultParams()
	params.EngineForce = 1000
	params.Friction = 1
	s := sessionOn(terrain, params, 150)

	s.SetControl(ControlAccelerate, true)
	for i := 0; i < 60; i++ {
		s.Advance(testDt)
	}

	if math.Abs(s.frame.Rear.VX-1000) > 1e-6 {
		t.Errorf("rear vx after 1s = %f, want 1000", s.frame.Rear.VX)
	}
	if math.Abs(s.frame.Front.VX-1000) > 1e-6 {
		t.Errorf("front vx after 1s = %f, want 1000", s.frame.Front.VX)
	}
}

func TestSessionBrakeOpposesAccelerate(t *testing.T) {
	terrain := flatTerrain(10, 400, 500)
	params := DefaultParams()
	params.EngineForce = 1000
	params.BrakeForce = -400
	params.Friction = 1
	s := sessionOn(terrain, params, 150)

	// Both flags held: effects are additive, netting engine+brake.
	s.SetControl(ControlAccelerate, true)
	s.SetControl(ControlBrake, true)
	for i := 0; i < 60; i++ {
		s.Advance(testDt)
	}

	if math.Abs(s.frame.Rear.VX-600) > 1e-6 {
		t.Errorf("vx with both pedals held = %f, want 600", s.frame.Rear.VX)
	}
}

func TestSessionGravityMonotonicWhileAirborne(t *testing.T) {
	terrain := flatTerrain(3, 400, 1e7)
	s := sessionOn(terrain, DefaultParams(), 150)
	s.frame.Front.Y = 0
	s.frame.Rear.Y = 0

	prev := s.frame.Rear.VY
	for i := 0; i < 100; i++ {
		s.Advance(testDt)
		if s.frame.Rear.VY <= prev {
			t.Fatalf("step %d: airborne vy did not increase: %f -> %f", i, prev, s.frame.Rear.VY)
		}
		prev = s.frame.Rear.VY
	}
}

func TestSessionFrictionDampsGroundedSpeed(t *testing.T) {
	terrain := flatTerrain(10, 400, 500)
	s := sessionOn(terrain, DefaultParams(), 150)
	s.frame.Front.VX = 50
	s.frame.Rear.VX = 50

	prev := 50.0
	for i := 0; i < 120; i++ {
		s.Advance(testDt)
		cur := math.Abs(s.frame.Rear.VX)
		if cur > prev+1e-9 {
			t.Fatalf("step %d: |vx| increased without input: %f -> %f", i, prev, cur)
		}
		prev = cur
	}
	if prev >= 50 {
		t.Errorf("friction should have reduced |vx| below 50, got %f", prev)
	}
}

func TestSessionTiltRotatesAirborneFrame(t *testing.T) {
	terrain := flatTerrain(3, 400, 500)
	params := DefaultParams()
	s := sessionOn(terrain, params, 150)
	s.frame.Front.Y = 100
	s.frame.Rear.Y = 100

	s.SetControl(ControlTiltRight, true)
	const n = 10
	for i := 0; i < n; i++ {
		// dt=0 isolates the tilt: no gravity, no integration, no contact.
		s.Advance(0)
		if math.Abs(s.frame.Distance()-params.WheelDistance) > distanceEpsilon {
			t.Fatalf("step %d: tilt broke wheel distance: %f", i, s.frame.Distance())
		}
	}

	want := n * params.TiltStep
	if math.Abs(s.frame.Angle()-want) > 1e-9 {
		t.Errorf("angle after %d tilt steps = %f, want %f", n, s.frame.Angle(), want)
	}
}

func TestSessionOpposingTiltsCancel(t *testing.T) {
	terrain := flatTerrain(3, 400, 500)
	s := sessionOn(terrain, DefaultParams(), 150)
	s.frame.Front.Y = 100
	s.frame.Rear.Y = 100

	s.SetControl(ControlTiltLeft, true)
	s.SetControl(ControlTiltRight, true)
	s.Advance(0)

	if s.frame.Angle() != 0 {
		t.Errorf("opposing tilts should cancel, angle = %f", s.frame.Angle())
	}
}

func TestSessionNoTunnelingAtClampCeiling(t *testing.T) {
	// Even at the dt clamp ceiling a wheel never ends a step penetrating
	// the surface.
	params := DefaultParams()
	s := NewSession(TrackConfig{SegmentCount: 40, SegmentLength: 80, StartY: 300, SlopeRange: 1.4}, params, 11)
	s.SetControl(ControlAccelerate, true)

	for i := 0; i < 400; i++ {
		s.Advance(params.MaxStep)
		for name, w := range map[string]Wheel{"front": s.frame.Front, "rear": s.frame.Rear} {
			depth := (w.Y + params.WheelRadius) - s.terrain.HeightAt(w.X)
			if depth > 1e-6 {
				t.Fatalf("step %d: %s wheel penetrates terrain by %f", i, name, depth)
			}
		}
	}
}

func TestSessionConstraintBoundedDuringPlay(t *testing.T) {
	// Collision clamping runs after the constraint pass, so the distance can
	// deviate within one step, but never by more than one frame's worst-case
	// displacement.
	params := DefaultParams()
	s := NewSession(TrackConfig{SegmentCount: 40, SegmentLength: 100, StartY: 300, SlopeRange: 1.2}, params, 23)
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 600; i++ {
		s.SetControl(ControlAccelerate, rng.Intn(2) == 0)
		s.SetControl(ControlTiltLeft, rng.Intn(4) == 0)
		s.SetControl(ControlTiltRight, rng.Intn(4) == 0)

		speedBefore := math.Max(
			math.Hypot(s.frame.Front.VX, s.frame.Front.VY),
			math.Hypot(s.frame.Rear.VX, s.frame.Rear.VY),
		)
		s.Advance(testDt)

		// Displacement this frame is bounded by pre-step speed plus the
		// velocity gained in-step from gravity and throttle.
		err := math.Abs(s.frame.Distance() - params.WheelDistance)
		inStepGain := (params.Gravity + params.EngineForce) * testDt * testDt
		bound := 2*(speedBefore*testDt+inStepGain) + distanceEpsilon
		if err > bound {
			t.Fatalf("step %d: distance error %f exceeds per-frame bound %f", i, err, bound)
		}
	}
}

func TestSessionConstraintExactWhenAirborne(t *testing.T) {
	terrain := flatTerrain(3, 400, 1e7)
	params := DefaultParams()
	s := sessionOn(terrain, params, 150)
	s.frame.Front.Y = 0
	s.frame.Rear.Y = 0
	s.SetControl(ControlTiltRight, true)

	for i := 0; i < 200; i++ {
		s.Advance(testDt)
		if err := math.Abs(s.frame.Distance() - params.WheelDistance); err > distanceEpsilon {
			t.Fatalf("step %d: airborne distance error %f exceeds tolerance", i, err)
		}
	}
}

func TestSessionAdvanceRejectsBadDt(t *testing.T) {
	terrain := flatTerrain(3, 400, 500)
	s := sessionOn(terrain, DefaultParams(), 150)
	s.frame.Front.Y = 100
	s.frame.Rear.Y = 100
	before := *s.frame

	s.Advance(math.NaN())
	s.Advance(-1)

	if *s.frame != before {
		t.Error("NaN or negative dt must not change the frame state")
	}
}

func TestSessionAdvanceClampsLargeDt(t *testing.T) {
	terrain := flatTerrain(3, 400, 1e7)
	params := DefaultParams()
	s := sessionOn(terrain, params, 150)
	s.frame.Front.Y = 0
	s.frame.Rear.Y = 0

	s.Advance(10) // multi-second scheduling gap

	want := params.Gravity * params.MaxStep
	if math.Abs(s.frame.Rear.VY-want) > 1e-9 {
		t.Errorf("vy after clamped step = %f, want %f", s.frame.Rear.VY, want)
	}
}

func TestSessionStepAtUsesElapsedTime(t *testing.T) {
	terrain := flatTerrain(3, 400, 1e7)
	params := DefaultParams()
	s := sessionOn(terrain, params, 150)
	s.frame.Front.Y = 0
	s.frame.Rear.Y = 0

	t0 := time.Unix(100, 0)
	s.StepAt(t0)
	if s.frame.Rear.VY != 0 {
		t.Errorf("first StepAt should advance by zero, vy = %f", s.frame.Rear.VY)
	}

	s.StepAt(t0.Add(16 * time.Millisecond))
	want := params.Gravity * 0.016
	if math.Abs(s.frame.Rear.VY-want) > 1e-9 {
		t.Errorf("vy after 16ms = %f, want %f", s.frame.Rear.VY, want)
	}

	// A long gap (backgrounded host) is clamped, not applied raw.
	vyBefore := s.frame.Rear.VY
	s.StepAt(t0.Add(10 * time.Second))
	gained := s.frame.Rear.VY - vyBefore
	if math.Abs(gained-params.Gravity*params.MaxStep) > 1e-9 {
		t.Errorf("clamped gap added vy %f, want %f", gained, params.Gravity*params.MaxStep)
	}
}

func TestSessionDeterminism(t *testing.T) {
	cfg := TrackConfig{SegmentCount: 30, SegmentLength: 100, StartY: 300, SlopeRange: 1.0}
	run := func() Snapshot {
		s := NewSession(cfg, DefaultParams(), 77)
		s.SetControl(ControlAccelerate, true)
		var snap Snapshot
		for i := 0; i < 240; i++ {
			if i == 120 {
				s.SetControl(ControlTiltLeft, true)
			}
			snap = s.Advance(testDt)
		}
		return snap
	}

	if a, b := run(), run(); a != b {
		t.Errorf("identically seeded sessions diverged:\n%+v\n%+v", a, b)
	}
}

func TestSnapshotFields(t *testing.T) {
	terrain := flatTerrain(3, 400, 500)
	params := DefaultParams()
	s := sessionOn(terrain, params, 150)

	snap := s.Snapshot()
	if snap.RearX != 150 || snap.FrontX != 150+params.WheelDistance {
		t.Errorf("snapshot wheel x = %f, %f", snap.RearX, snap.FrontX)
	}
	if snap.MidX != 150+params.WheelDistance/2 {
		t.Errorf("snapshot midpoint x = %f", snap.MidX)
	}
	if snap.Angle != 0 {
		t.Errorf("level bike angle = %f, want 0", snap.Angle)
	}
	if !snap.FrontGrounded || !snap.RearGrounded {
		t.Error("resting bike should report grounded wheels")
	}
}
