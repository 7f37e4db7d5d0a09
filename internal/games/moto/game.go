// Package moto implements the Moto Trials game: a motorcycle riding over
// procedurally generated hills, powered by the rigid-body simulation in
// internal/sim. Ride as far as you can without ending up on your head.
package moto

import (
	"github.com/vkomarov/tui-moto/internal/config"
	"github.com/vkomarov/tui-moto/internal/core"
	"github.com/vkomarov/tui-moto/internal/registry"
	"github.com/vkomarov/tui-moto/internal/sim"
)

// unitsPerMeter converts simulation units to the meters shown in the HUD
// and used for scoring.
const unitsPerMeter = 10.0

// holdTicks is how many ticks a control stays engaged after its key was last
// seen. Terminals deliver key repeats, not press/release pairs, so a held key
// arrives as a stream of presses; this window bridges the gaps between
// repeats.
const holdTicks = 6

// crashGraceTicks is how long the bike may stay inverted on the ground
// before the run ends. Brief contact mid-flip is forgiven.
const crashGraceTicks = 30

// fixedDt returns the simulation step for a tick rate.
func fixedDt(tickRate int) float64 {
	if tickRate <= 0 {
		tickRate = 60
	}
	return 1.0 / float64(tickRate)
}

// Game implements the Moto Trials game logic.
type Game struct {
	session    *sim.Session
	snap       sim.Snapshot
	runtime    core.RuntimeConfig
	cfg        config.MotoConfig
	difficulty *config.DifficultyManager

	dt          float64
	tickCount   int
	startX      float64
	maxDistance float64 // farthest midpoint x reached, world units

	hold       map[sim.Control]int
	crashTicks int
	gameOver   bool
	paused     bool
}

// configPath stores the custom config path set via CLI.
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// DifficultyName returns the active preset name, empty for config default.
func DifficultyName() string {
	return string(difficultyPreset)
}

// New creates a new Moto Trials game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "moto"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Moto Trials"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadMoto(configPath)
	if err != nil {
		cfg = config.DefaultMotoConfig()
	}
	if difficultyPreset != "" {
		config.ApplyMotoPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	params := sim.Params{
		Gravity:       cfg.Physics.Gravity,
		EngineForce:   cfg.Physics.EngineForce,
		BrakeForce:    cfg.Physics.BrakeForce,
		Friction:      cfg.Physics.Friction,
		SlopeBlend:    cfg.Physics.SlopeBlend,
		TiltStep:      cfg.Physics.TiltStep,
		WheelDistance: cfg.Bike.WheelDistance,
		WheelRadius:   cfg.Bike.WheelRadius,
		WheelMass:     cfg.Bike.WheelMass,
		StartX:        cfg.Bike.StartX,
		MaxStep:       cfg.Physics.MaxStep,
	}
	track := sim.TrackConfig{
		SegmentCount:  cfg.Track.SegmentCount,
		SegmentLength: cfg.Track.SegmentLength,
		StartY:        cfg.Track.StartY,
		SlopeRange:    g.difficulty.SlopeRange(cfg.Track.SlopeRange),
	}

	g.session = sim.NewSession(track, params, runtime.Seed)
	g.snap = g.session.Snapshot()
	g.dt = fixedDt(runtime.TickRate)
	g.tickCount = 0
	g.startX = g.snap.MidX
	g.maxDistance = 0
	g.hold = make(map[sim.Control]int)
	g.crashTicks = 0
	g.gameOver = false
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.applyInput(in)
	g.snap = g.session.Advance(g.dt)

	if d := g.snap.MidX - g.startX; d > g.maxDistance {
		g.maxDistance = d
	}

	g.updateCrash()

	return core.StepResult{State: g.State()}
}

// applyInput refreshes the hold windows from this frame's actions and pushes
// the resulting flags into the session.
func (g *Game) applyInput(in core.InputFrame) {
	actions := map[core.Action]sim.Control{
		core.ActionThrottle:  sim.ControlAccelerate,
		core.ActionBrake:     sim.ControlBrake,
		core.ActionTiltLeft:  sim.ControlTiltLeft,
		core.ActionTiltRight: sim.ControlTiltRight,
	}

	for action, control := range actions {
		if in.Has(action) {
			g.hold[control] = holdTicks
		} else if g.hold[control] > 0 {
			g.hold[control]--
		}
		g.session.SetControl(control, g.hold[control] > 0)
	}
}

// updateCrash ends the run when the bike stays inverted on the ground.
// The simulation itself has no terminal state; the crash rule lives here in
// the game layer.
func (g *Game) updateCrash() {
	inverted := g.snap.Angle > 2.6 || g.snap.Angle < -2.6
	grounded := g.snap.FrontGrounded || g.snap.RearGrounded

	if inverted && grounded {
		g.crashTicks++
		if g.crashTicks >= crashGraceTicks {
			g.gameOver = true
		}
	} else {
		g.crashTicks = 0
	}
}

// DistanceMeters returns the farthest distance reached in meters.
func (g *Game) DistanceMeters() int {
	return int(g.maxDistance / unitsPerMeter)
}

// score applies the difficulty bonus to the distance.
func (g *Game) score() int {
	meters := g.DistanceMeters()
	if g.difficulty == nil {
		return meters
	}
	return int(float64(meters) * g.difficulty.ScoreMultiplier(meters))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("moto", func() registry.Game {
		return New()
	})
}
