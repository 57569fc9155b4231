package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use it to size their layout and to seed level generation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // Seed base for level generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int     // Levels solved this session
	Level      int     // Zero-based current level index
	Moves      int     // Successful transfers on the current level
	Completion float64 // Aggregate completion in [0, 1]
	GameOver   bool    // Whether the session has ended
	Paused     bool    // Whether the game is paused
}

// StepResult is returned by Game.Step() after each input event.
type StepResult struct {
	State        GameState
	LevelCleared bool // The current level became solved on this step
	Changed      bool // Something visible changed
}
