package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tubes/internal/config"
	"github.com/vovakirdan/tui-tubes/internal/core"
	"github.com/vovakirdan/tui-tubes/internal/storage"
)

// levelPickCount is how many levels the level picker offers.
// Levels are generated from seeds, so any index is playable.
const levelPickCount = 99

var difficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// LevelSelection holds the user's choices before a variant starts.
type LevelSelection struct {
	Level      int // Zero-based start level
	Difficulty config.DifficultyPreset
}

// LevelMenuModel lets users choose difficulty and starting level for a variant.
type LevelMenuModel struct {
	gameID        string
	title         string
	store         *storage.Store
	cursor        int
	levelCursor   int
	difficulty    int // Index into difficulties
	inLevelSelect bool
	scrollOffset  int
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     LevelSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewLevelMenuModel creates a level menu preselecting the given choices.
func NewLevelMenuModel(gameID, title string, store *storage.Store, initial LevelSelection, width, height int) LevelMenuModel {
	m := LevelMenuModel{
		gameID:      gameID,
		title:       title,
		store:       store,
		levelCursor: core.Clamp(initial.Level, 0, levelPickCount-1),
		difficulty:  1,
		width:       width,
		height:      height,
		keyMapper:   NewKeyMapper(),
		choosing:    true,
	}
	for i, d := range difficulties {
		if d == initial.Difficulty {
			m.difficulty = i
		}
	}
	m.updateScroll()
	return m
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleModeSelectKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 2 { // Play, Difficulty, Select Level
			m.cursor++
		}
	case MenuActionLeft:
		if m.cursor == 1 {
			m.difficulty = (m.difficulty + len(difficulties) - 1) % len(difficulties)
		}
	case MenuActionRight:
		if m.cursor == 1 {
			m.difficulty = (m.difficulty + 1) % len(difficulties)
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0:
			return m.choose(m.levelCursor)
		case 1:
			m.difficulty = (m.difficulty + 1) % len(difficulties)
		case 2:
			m.inLevelSelect = true
			m.updateScroll()
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m LevelMenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.levelCursor < levelPickCount-1 {
			m.levelCursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		return m.choose(m.levelCursor)
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

func (m LevelMenuModel) choose(level int) (tea.Model, tea.Cmd) {
	m.choosing = false
	m.selection = LevelSelection{
		Level:      level,
		Difficulty: difficulties[m.difficulty],
	}
	return m, tea.Quit
}

// visibleLevels is the number of level rows that fit on screen.
func (m LevelMenuModel) visibleLevels() int {
	return max(3, m.height-8) // Header and footer
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *LevelMenuModel) updateScroll() {
	visible := m.visibleLevels()
	if m.levelCursor < m.scrollOffset {
		m.scrollOffset = m.levelCursor
	} else if m.levelCursor >= m.scrollOffset+visible {
		m.scrollOffset = m.levelCursor - visible + 1
	}
}

// View renders the mode/level selection.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m LevelMenuModel) viewModeSelect() string {
	t := GetTheme()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(t.MenuTitle.Render(strings.ToUpper(m.title)), m.width))
	b.WriteString("\n\n")

	options := []string{
		fmt.Sprintf("Play from level %d", m.levelCursor+1),
		fmt.Sprintf("Difficulty: < %s >", difficulties[m.difficulty]),
		"Select level...",
	}

	for i, opt := range options {
		cursor := "  "
		style := t.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = t.MenuItemActive
		}
		b.WriteString(centerText(style.Render(cursor+opt), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	spare := config.SpareForPreset(difficulties[m.difficulty])
	b.WriteString(centerText(t.MenuDescription.Render(fmt.Sprintf("%d spare tubes", spare)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(t.Dim.Render("Enter: Select  |  Left/Right: Difficulty  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

func (m LevelMenuModel) viewLevelSelect() string {
	t := GetTheme()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(t.MenuTitle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	if m.scrollOffset > 0 {
		b.WriteString(centerText(t.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}

	end := min(m.scrollOffset+m.visibleLevels(), levelPickCount)
	for i := m.scrollOffset; i < end; i++ {
		cursor := "  "
		style := t.MenuItemNormal
		if i == m.levelCursor {
			cursor = "> "
			style = t.MenuItemActive
		}

		line := style.Render(fmt.Sprintf("%sLevel %2d", cursor, i+1))
		if best := m.bestMoves(i); best > 0 {
			line += t.MenuDescription.Render(fmt.Sprintf("  best %d moves", best))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if end < levelPickCount {
		b.WriteString(centerText(t.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(t.Dim.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// bestMoves returns the fewest moves recorded for a level, or 0.
func (m LevelMenuModel) bestMoves(level int) int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.BestSolve(m.gameID, level)
	if err != nil || best == nil {
		return 0
	}
	return best.Moves
}

// Selected returns the selection, or nil if still choosing.
func (m LevelMenuModel) Selected() *LevelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level selection and returns the selection.
// A nil selection means the user backed out or quit.
func RunLevelSelector(gameID, title string, store *storage.Store, initial LevelSelection, cfg core.RuntimeConfig) (*LevelSelection, core.RuntimeConfig, error) {
	model := NewLevelMenuModel(gameID, title, store, initial, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok {
		return nil, cfg, nil
	}
	cfg.ScreenW, cfg.ScreenH = m.width, m.height

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
