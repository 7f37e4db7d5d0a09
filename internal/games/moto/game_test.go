package moto

import (
	"strings"
	"testing"

	"github.com/vkomarov/tui-moto/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Given the same seed and inputs, the game produces identical results.
	inputSequence := make([]core.InputFrame, 400)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		inputSequence[i].Set(core.ActionThrottle)
		if i%30 == 0 {
			inputSequence[i].Set(core.ActionTiltLeft)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testConfig(12345))
		for _, in := range inputSequence {
			g.Step(in)
			if g.gameOver {
				break
			}
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1 != s2 {
		t.Errorf("determinism failed:\n%+v\n%+v", s1, s2)
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	// Ride a while
	in := core.NewInputFrame()
	in.Set(core.ActionThrottle)
	for i := 0; i < 120; i++ {
		g.Step(in)
	}

	g.Reset(testConfig(42))

	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
	if g.maxDistance != 0 {
		t.Errorf("Reset should clear distance, got %f", g.maxDistance)
	}
	if g.gameOver {
		t.Error("Reset should clear gameOver flag")
	}
	if g.paused {
		t.Error("Reset should clear paused flag")
	}
}

func TestGameThrottleMovesForward(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	in := core.NewInputFrame()
	in.Set(core.ActionThrottle)
	for i := 0; i < 300; i++ {
		g.Step(in)
	}

	if g.maxDistance <= 0 {
		t.Errorf("throttle for 5s should move the bike forward, distance = %f", g.maxDistance)
	}
}

func TestGameIdleStaysPut(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	in := core.NewInputFrame()
	for i := 0; i < 120; i++ {
		g.Step(in)
	}

	// Without throttle the bike may roll a little on a slope but should not
	// cover real distance.
	if g.DistanceMeters() > 5 {
		t.Errorf("idle bike traveled %dm", g.DistanceMeters())
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.paused {
		t.Fatal("pause action should pause")
	}

	before := g.Snapshot()
	throttle := core.NewInputFrame()
	throttle.Set(core.ActionThrottle)
	for i := 0; i < 30; i++ {
		g.Step(throttle)
	}
	after := g.Snapshot()

	if before.MidX != after.MidX || before.Tick != after.Tick {
		t.Error("paused game should not advance the simulation")
	}

	g.Step(pause)
	if g.paused {
		t.Error("second pause action should unpause")
	}
}

func TestGameHoldWindowSustainsControl(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	// A single throttle press keeps the control engaged for the hold window,
	// then it decays.
	in := core.NewInputFrame()
	in.Set(core.ActionThrottle)
	g.Step(in)
	if !g.session.Controls().Accelerate {
		t.Fatal("throttle should engage on press")
	}

	empty := core.NewInputFrame()
	for i := 0; i < holdTicks-1; i++ {
		g.Step(empty)
	}
	if !g.session.Controls().Accelerate {
		t.Error("throttle should stay engaged within the hold window")
	}

	for i := 0; i < holdTicks; i++ {
		g.Step(empty)
	}
	if g.session.Controls().Accelerate {
		t.Error("throttle should disengage after the hold window")
	}
}

func TestGameRenderDrawsTerrainAndHUD(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Bottom row should be ground fill somewhere under the bike.
	found := false
	for x := 0; x < 80; x++ {
		if screen.Get(x, 23) == GroundFill {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected ground fill on the bottom row")
	}

	if !strings.Contains(screen.Row(0), "Dist:") {
		t.Errorf("expected HUD on top row, got %q", screen.Row(0))
	}
}

func TestGameStateScoreMatchesDistance(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	in := core.NewInputFrame()
	in.Set(core.ActionThrottle)
	for i := 0; i < 300; i++ {
		g.Step(in)
	}

	state := g.State()
	if state.Score < g.DistanceMeters() {
		t.Errorf("score %d should be at least raw distance %d", state.Score, g.DistanceMeters())
	}
}
