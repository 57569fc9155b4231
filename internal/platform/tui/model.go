package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tubes/internal/core"
	"github.com/vovakirdan/tui-tubes/internal/registry"
	"github.com/vovakirdan/tui-tubes/internal/storage"
)

// seeder is implemented by games that can report the seed of the current level.
type seeder interface {
	Seed() int64
}

// Model is the Bubble Tea model for playing one puzzle variant.
// There is no tick loop: every key or mouse event is one game step.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	gameState core.GameState

	pressed    int  // Tube under a held mouse button, or core.NoTube
	altScreen  bool // Whether the program is on the alternate screen
	embedded   bool // Hosted by a SessionModel; Back does not quit the program
	quitting   bool
	back       bool
	scoreSaved bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		pressed:   core.NoTube,
		altScreen: true,
	}
}

// newEmbeddedModel creates a game model hosted inside another model.
func newEmbeddedModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	m := NewModel(game, store, cfg)
	m.embedded = true
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// The game is a pointer, so Reset survives the value receiver.
	m.game.Reset(m.config)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	frame, isQuit, ok := m.keyMapper.MapKeyToFrame(msg, m.game)
	if isQuit {
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	}
	if !ok {
		return m, nil
	}
	if frame.Has(core.ActionBack) {
		m.saveScore()
		m.back = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	return m.step(frame)
}

// handleMouse turns a click on a tube into a tube activation.
// The tube is pressed on button down and activated on release over the same tube.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ptr, ok := m.game.(registry.Pointer)
	if !ok {
		return m, nil
	}
	tube, hit := ptr.HitTest(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		if hit {
			ptr.Hover(tube)
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.pressed = core.NoTube
		if hit {
			ptr.Press(tube)
			m.pressed = tube
		}
	case tea.MouseActionRelease:
		pressed := m.pressed
		m.pressed = core.NoTube
		if hit && tube == pressed {
			return m.step(core.TubeFrame(tube))
		}
	}
	return m, nil
}

// step runs one game step and handles its side effects.
func (m Model) step(frame core.InputFrame) (tea.Model, tea.Cmd) {
	result := m.game.Step(frame)
	m.gameState = result.State

	if result.LevelCleared {
		m.saveSolve(result.State)
	}

	cmd := m.syncFullscreen()
	return m, cmd
}

// syncFullscreen enters or leaves the alternate screen to match the game's request.
func (m *Model) syncFullscreen() tea.Cmd {
	fs, ok := m.game.(registry.Fullscreener)
	if !ok || fs.Fullscreen() == m.altScreen {
		return nil
	}
	m.altScreen = fs.Fullscreen()
	if m.altScreen {
		return tea.EnterAltScreen
	}
	return tea.ExitAltScreen
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Puzzles keep their level across resizes when they can.
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else {
		m.game.Reset(m.config)
	}
	m.gameState = m.game.State()

	return m, nil
}

// saveSolve records a solved level.
func (m *Model) saveSolve(state core.GameState) {
	if m.store == nil {
		return
	}
	solve := storage.Solve{
		GameID: m.game.ID(),
		Level:  state.Level,
		Moves:  state.Moves,
	}
	if s, ok := m.game.(seeder); ok {
		solve.Seed = s.Seed()
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveSolve(solve)
}

// saveScore records the number of levels solved this session, once.
func (m *Model) saveScore() {
	score := m.game.State().Score
	if m.scoreSaved || score <= 0 {
		return
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), score)
	}
	m.scoreSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".tubes", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// State returns the game state after the last step.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Hover follows the pointer
	)

	_, err := p.Run()
	return err
}
