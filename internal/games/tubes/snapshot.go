package tubes

import "github.com/vovakirdan/tui-tubes/internal/games/tubes/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
	StateError        GameStateType = "error"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	ID       string
	Level    int   // Zero-based level index
	Seed     int64 // Seed the level was generated from
	Moves    int
	Solved   int
	Cursor   int
	Selected int // Pending tube, -1 when idle
	Tubes    [][]engine.Segment
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{ID: g.id, Cursor: g.cursor, Selected: -1}
	if g.session == nil {
		snap.State = StateError
		return snap
	}

	snap.Level = g.session.LevelIndex()
	snap.Seed = g.session.Seed()
	snap.Moves = g.session.Moves()
	snap.Solved = g.session.Solved()
	if i, ok := g.session.Selection(); ok {
		snap.Selected = i
	}

	level := g.session.Level()
	snap.Tubes = make([][]engine.Segment, level.Len())
	for i := range snap.Tubes {
		snap.Tubes[i] = level.Tube(i).Segments()
	}

	switch {
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.paused:
		snap.State = StatePaused
	case g.cleared:
		snap.State = StateLevelCleared
	default:
		snap.State = StatePlaying
	}
	return snap
}
