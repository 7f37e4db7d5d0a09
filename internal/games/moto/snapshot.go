package moto

// GameStateType represents the current game state.
type GameStateType string

const (
	StateRiding  GameStateType = "riding"
	StatePaused  GameStateType = "paused"
	StateCrashed GameStateType = "crashed"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      int
	DistanceM int
	Score     int
	MidX      float64
	MidY      float64
	Angle     float64
	Speed     float64
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateRiding
	switch {
	case g.gameOver:
		state = StateCrashed
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:      g.tickCount,
		DistanceM: g.DistanceMeters(),
		Score:     g.score(),
		MidX:      g.snap.MidX,
		MidY:      g.snap.MidY,
		Angle:     g.snap.Angle,
		Speed:     g.snap.Speed,
		State:     state,
	}
}
