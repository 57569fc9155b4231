package engine

import (
	"errors"
	"fmt"
)

// ErrLevelIncomplete is returned by Next while the level is not solved.
var ErrLevelIncomplete = errors.New("engine: level not complete")

// Flags are transient UI requests. The session stores them for the
// platform layer and never acts on them itself.
type Flags struct {
	Restart    bool
	Skip       bool
	Fullscreen bool
}

// SessionParams configures a game session.
type SessionParams struct {
	Gen        GenParams // Seed is ignored; it is derived per level
	SeedBase   int64     // Level seed = SeedBase + level index
	StartLevel int       // Zero-based level index to start from
}

// Session owns one level and the selection state for a single player.
// It is not safe for concurrent use; events are processed one at a time.
type Session struct {
	params    SessionParams
	level     *Level
	selection Selection
	moves     int
	solved    int

	// Flags is read and written by the platform layer.
	Flags Flags
}

// NewSession generates the starting level.
func NewSession(p SessionParams) (*Session, error) {
	if p.StartLevel < 0 {
		p.StartLevel = 0
	}
	s := &Session{params: p}
	if err := s.load(p.StartLevel); err != nil {
		return nil, err
	}
	return s, nil
}

// load replaces the level and resets all per-level state.
func (s *Session) load(index int) error {
	gen := s.params.Gen
	gen.Seed = s.params.SeedBase + int64(index)

	level, err := Generate(index, gen)
	if err != nil {
		return fmt.Errorf("generate level %d: %w", index, err)
	}

	s.level = level
	s.selection = Selection{}
	s.moves = 0
	return nil
}

// Level returns the current level for read access.
func (s *Session) Level() *Level {
	return s.level
}

// LevelIndex returns the zero-based index of the current level.
func (s *Session) LevelIndex() int {
	return s.level.Index()
}

// Seed returns the seed the current level was generated from.
func (s *Session) Seed() int64 {
	return s.params.SeedBase + int64(s.level.Index())
}

// Selection returns the pending tube index, if any.
func (s *Session) Selection() (int, bool) {
	return s.selection.Selected()
}

// Moves returns the number of successful transfers on this level.
func (s *Session) Moves() int {
	return s.moves
}

// Solved returns how many levels were advanced past with Next.
func (s *Session) Solved() int {
	return s.solved
}

// Completion returns the aggregate completion of the current level.
func (s *Session) Completion() float64 {
	return s.level.Completion()
}

// Won reports whether the current level is solved.
func (s *Session) Won() bool {
	return s.level.Won()
}

// Activate processes one "tube i activated" event.
func (s *Session) Activate(i int) Outcome {
	out := s.selection.Activate(s.level, i)
	if out.Kind == OutcomeTransferred {
		s.moves++
	}
	return out
}

// Restart rebuilds the current level from its seed.
func (s *Session) Restart() error {
	s.Flags.Restart = false
	return s.load(s.level.Index())
}

// Skip advances to the next level regardless of completion.
func (s *Session) Skip() error {
	s.Flags.Skip = false
	return s.load(s.level.Index() + 1)
}

// Next advances to the next level once the current one is solved.
func (s *Session) Next() error {
	if !s.Won() {
		return ErrLevelIncomplete
	}
	if err := s.load(s.level.Index() + 1); err != nil {
		return err
	}
	s.solved++
	return nil
}
